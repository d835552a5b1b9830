package ports

import (
	"context"

	"github.com/aretw0/sprout/pkg/ui"
)

// App is the complete integration contract between a flow and a driver
// loop: exactly three values. The driver owns the state between
// transitions; the flow never sees the live display.
//
//   - Init produces the initial state.
//   - Update computes the next state from a message and the current state.
//     It must be pure, total and deterministic.
//   - View projects a state into a declarative UI description.
type App[S any] struct {
	Init   func() S
	Update func(msg ui.Msg, state S) S
	View   func(state S) ui.Node
}

// Valid reports whether all three values of the contract are present.
func (a App[S]) Valid() bool {
	return a.Init != nil && a.Update != nil && a.View != nil
}

// Host is a driver loop implementation. It owns the state, dispatches
// messages through Update one at a time, and reconciles View output
// against its display until the user quits or the context ends.
type Host interface {
	Run(ctx context.Context) error
}
