package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/sprout/internal/presentation/tui"
)

const aboutText = `# Sprout

Sprout demonstrates the unidirectional-data-flow architecture in its
smallest useful form.

A flow is three values:

- **Init** — the initial state
- **Update** — a pure function from (message, state) to the next state
- **View** — a pure function from state to a declarative UI description

The kernel owns the loop: it holds the state, feeds each user event
through Update, and reconciles the View output against your terminal.

The built-in *mirror* flow is one string field and one message variant:
whatever you type into the input is echoed into a text node below it.
`

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Explain the architecture sprout demonstrates",
	Run: func(cmd *cobra.Command, args []string) {
		render := tui.NewMarkdownRenderer()
		out, err := render(aboutText)
		if err != nil {
			fmt.Print(aboutText + "\n")
			return
		}
		fmt.Println(out)
	},
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
