package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/sprout/pkg/ui"
)

var (
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	captionStyle     = lipgloss.NewStyle().Bold(true)
	echoStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
)

// Render projects a declarative node tree into terminal text.
// It is deterministic for a given tree and color profile.
func Render(root ui.Node) string {
	return renderNode(root, nil)
}

// RenderWithWidget renders the tree but substitutes widgetView for every
// text-input node. Interactive hosts use this to splice a live editing
// widget into the otherwise static projection.
func RenderWithWidget(root ui.Node, widgetView string) string {
	return renderNode(root, &widgetView)
}

func renderNode(n ui.Node, widget *string) string {
	switch node := n.(type) {
	case ui.Box:
		var b strings.Builder
		for _, child := range node.Children {
			b.WriteString(renderNode(child, widget))
		}
		return b.String()
	case ui.TextInput:
		if widget != nil {
			return *widget + "\n"
		}
		if node.Value == "" {
			return placeholderStyle.Render(node.Placeholder) + "\n"
		}
		return valueStyle.Render(node.Value) + "\n"
	case ui.Label:
		return captionStyle.Render(node.Content) + "\n"
	case ui.Text:
		return echoStyle.Render(node.Content) + "\n"
	}
	return ""
}
