package ui

// Msg is a message produced by a UI event binding. Flows define their own
// concrete message types; the kernel and hosts only route them.
type Msg interface{}

// Node is one element of a declarative UI description. A view function
// returns a Node tree; it never touches a live display. Reconciling the
// tree against a real terminal or screen is the host's job.
type Node interface {
	node()
}

// Box is an ordered container of child nodes.
type Box struct {
	Children []Node
}

// TextInput describes an editable single-line text control.
// Value is the bound state value, not an internal buffer: the host feeds
// every edit through OnInput and the next view carries the new Value.
type TextInput struct {
	// Placeholder is the hint shown while Value is empty.
	Placeholder string

	// Value is the current text, bound to flow state.
	Value string

	// OnInput produces the message to dispatch when the user edits the
	// control. It receives the full new text, not a delta.
	OnInput func(text string) Msg
}

// Label is a static caption line.
type Label struct {
	Content string
}

// Text is a dynamic text node whose content is a projection of state.
type Text struct {
	Content string
}

func (Box) node()       {}
func (TextInput) node() {}
func (Label) node()     {}
func (Text) node()      {}

// Group is a convenience constructor for a Box.
func Group(children ...Node) Box {
	return Box{Children: children}
}

// Walk visits every node in the tree depth-first, parents before children.
func Walk(root Node, visit func(Node)) {
	if root == nil {
		return
	}
	visit(root)
	if box, ok := root.(Box); ok {
		for _, child := range box.Children {
			Walk(child, visit)
		}
	}
}

// FindInput returns the first TextInput in the tree, if any.
func FindInput(root Node) (TextInput, bool) {
	var found TextInput
	ok := false
	Walk(root, func(n Node) {
		if ok {
			return
		}
		if in, isInput := n.(TextInput); isInput {
			found = in
			ok = true
		}
	})
	return found, ok
}

// Texts collects the content of every dynamic Text node, in tree order.
func Texts(root Node) []string {
	var out []string
	Walk(root, func(n Node) {
		if txt, isText := n.(Text); isText {
			out = append(out, txt.Content)
		}
	})
	return out
}

// Labels collects the content of every static Label node, in tree order.
func Labels(root Node) []string {
	var out []string
	Walk(root, func(n Node) {
		if lbl, isLabel := n.(Label); isLabel {
			out = append(out, lbl.Content)
		}
	})
	return out
}
