package host

import (
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/ui"
)

// dispatchEdit routes a new field value through the current view's input
// binding and applies the resulting message to the state. If the view has
// no bound input the state is returned unchanged.
func dispatchEdit[S any](app ports.App[S], state S, text string) S {
	in, ok := ui.FindInput(app.View(state))
	if !ok || in.OnInput == nil {
		return state
	}
	return app.Update(in.OnInput(text), state)
}
