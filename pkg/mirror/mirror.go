package mirror

import "github.com/aretw0/sprout/pkg/ui"

// Default display strings for the flow. A Flow can override both.
const (
	DefaultPlaceholder = "Say something..."
	DefaultCaption     = "You wrote:"
)

// State is the complete state of the mirror flow: the current text.
// Content is always a fully-formed string. It starts empty and every
// transition replaces it wholesale; there are no partial updates.
type State struct {
	Content string
}

// InputChanged is the only message of the flow. It carries the full new
// text as typed by the user.
type InputChanged struct {
	Text string
}

// Init returns the initial state: empty content.
func Init() State {
	return State{Content: ""}
}

// Update computes the next state from a message and the current state.
// It is pure, total and deterministic. InputChanged replaces Content with
// the carried text exactly — no trimming, casing or validation. Any other
// message leaves the state unchanged.
func Update(msg ui.Msg, state State) State {
	switch m := msg.(type) {
	case InputChanged:
		state.Content = m.Text
	}
	return state
}

// View projects a state into the default flow's UI description.
func View(state State) ui.Node {
	return New().View(state)
}

// Flow bundles the mirror program with its display strings, so hosts can
// run it with custom prompts without touching the transition logic.
type Flow struct {
	Placeholder string
	Caption     string
}

// New returns a Flow with the default display strings.
func New() Flow {
	return Flow{
		Placeholder: DefaultPlaceholder,
		Caption:     DefaultCaption,
	}
}

// Init returns the initial state of the flow.
func (f Flow) Init() State {
	return Init()
}

// Update applies a message to the state. Display strings play no part in
// transitions, so this is the package-level Update.
func (f Flow) Update(msg ui.Msg, state State) State {
	return Update(msg, state)
}

// View is a pure projection of the state: a text input bound to Content,
// a static caption and a text node echoing Content.
func (f Flow) View(state State) ui.Node {
	return ui.Group(
		ui.TextInput{
			Placeholder: f.Placeholder,
			Value:       state.Content,
			OnInput: func(text string) ui.Msg {
				return InputChanged{Text: text}
			},
		},
		ui.Label{Content: f.Caption},
		ui.Text{Content: state.Content},
	)
}
