// Package ui defines the declarative UI description vocabulary used by
// sprout view functions.
//
// A view function is a pure projection from state to a Node tree. The tree
// is plain data: it can be inspected in tests, rendered by any host, and
// rebuilt wholesale on every transition. Event bindings (like
// TextInput.OnInput) are message constructors, not callbacks into the UI;
// the host calls them to produce the message it dispatches.
package ui
