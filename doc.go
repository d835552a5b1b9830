/*
Package sprout is a minimal unidirectional-data-flow UI kernel for building
small interactive terminal flows.

It implements the classic three-part contract: an initial state, a pure
transition function, and a pure render function that returns a declarative
UI description. The kernel owns the driver loop — it holds the state,
dispatches one message at a time, and reconciles the rendered description
against the terminal. Flow code never touches the live display.

# Concept

A flow exposes exactly three values (ports.App):

  - Init: produces the initial state
  - Update: maps (message, state) to the next state
  - View: maps state to a ui.Node description

Because Update and View are pure, the whole flow is testable without any
terminal: feed messages through Update, inspect the Node tree from View.

# Usage

The built-in mirror flow echoes a text input into a text node:

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/sprout"
		"github.com/aretw0/sprout/pkg/mirror"
		"github.com/aretw0/sprout/pkg/ports"
	)

	func main() {
		flow := mirror.New()

		program, err := sprout.New(ports.App[mirror.State]{
			Init:   flow.Init,
			Update: flow.Update,
			View:   flow.View,
		})
		if err != nil {
			log.Fatal(err)
		}

		if err := program.Run(context.Background()); err != nil {
			log.Fatal(err)
		}
	}
*/
package sprout
