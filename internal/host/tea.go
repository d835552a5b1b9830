package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aretw0/sprout/internal/presentation/tui"
	"github.com/aretw0/sprout/pkg/ports"
	"github.com/aretw0/sprout/pkg/ui"
)

// Tea is the interactive host. It binds an app into a Bubble Tea program,
// using a textinput widget for the editable control. The widget owns the
// cursor and keystroke handling; every edit is fed through the view's
// OnInput binding so the app state stays the single source of truth.
type Tea[S any] struct {
	app    ports.App[S]
	logger *slog.Logger
	input  io.Reader
	output io.Writer
}

// NewTea creates an interactive host for the given app.
func NewTea[S any](app ports.App[S], logger *slog.Logger, in io.Reader, out io.Writer) *Tea[S] {
	return &Tea[S]{app: app, logger: logger, input: in, output: out}
}

// Run blocks until the user quits (Esc or Ctrl+C) or ctx is cancelled.
func (h *Tea[S]) Run(ctx context.Context) error {
	p := tea.NewProgram(
		NewTeaModel(h.app, h.logger),
		tea.WithContext(ctx),
		tea.WithInput(h.input),
		tea.WithOutput(h.output),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive host: %w", err)
	}
	return nil
}

// TeaModel adapts a ports.App into a tea.Model. Exported for host tests.
type TeaModel[S any] struct {
	app    ports.App[S]
	state  S
	field  textinput.Model
	logger *slog.Logger
}

// NewTeaModel initializes the model from the app's initial state and
// seeds the input widget from the first view.
func NewTeaModel[S any](app ports.App[S], logger *slog.Logger) TeaModel[S] {
	state := app.Init()

	field := textinput.New()
	field.Prompt = "> "
	if in, ok := ui.FindInput(app.View(state)); ok {
		field.Placeholder = in.Placeholder
		field.SetValue(in.Value)
	}
	field.Focus()

	return TeaModel[S]{app: app, state: state, field: field, logger: logger}
}

// State returns the current app state.
func (m TeaModel[S]) State() S {
	return m.state
}

func (m TeaModel[S]) Init() tea.Cmd {
	return textinput.Blink
}

func (m TeaModel[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		}
	}

	before := m.field.Value()
	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)

	// One transition per edit, strictly sequential.
	if after := m.field.Value(); after != before {
		m.state = dispatchEdit(m.app, m.state, after)
		m.logger.Debug("transition", "input_len", len(after))
	}
	return m, cmd
}

func (m TeaModel[S]) View() string {
	tree := m.app.View(m.state)
	return tui.RenderWithWidget(tree, m.field.View()) + "\n(esc to quit)\n"
}
