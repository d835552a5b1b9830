package sprout

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/sprout/internal/host"
	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/ports"
)

// Program owns the driver loop for one app. It holds the current state
// between transitions, dispatches exactly one message at a time, and
// reconciles the view against its display. The app itself stays pure.
type Program[S any] struct {
	app      ports.App[S]
	logger   *slog.Logger
	input    io.Reader
	output   io.Writer
	headless bool
}

// Option defines a functional option for configuring the Program.
type Option[S any] func(*Program[S])

// WithLogger sets a custom structured logger for the program.
func WithLogger[S any](logger *slog.Logger) Option[S] {
	return func(p *Program[S]) {
		p.logger = logger
	}
}

// WithInput overrides the input stream (default: Stdin).
func WithInput[S any](r io.Reader) Option[S] {
	return func(p *Program[S]) {
		p.input = r
	}
}

// WithOutput overrides the output stream (default: Stdout).
func WithOutput[S any](w io.Writer) Option[S] {
	return func(p *Program[S]) {
		p.output = w
	}
}

// WithHeadless forces the line-oriented host even on a terminal.
func WithHeadless[S any]() Option[S] {
	return func(p *Program[S]) {
		p.headless = true
	}
}

// New validates the app contract and builds a Program around it.
func New[S any](app ports.App[S], opts ...Option[S]) (*Program[S], error) {
	if !app.Valid() {
		return nil, fmt.Errorf("app must provide Init, Update and View")
	}

	p := &Program[S]{
		app:    app,
		input:  os.Stdin,
		output: os.Stdout,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run blocks until the host terminates: user quit, end of input, or ctx
// cancellation. The interactive host is chosen only when input is a real
// terminal; pipes and tests get the line host.
func (p *Program[S]) Run(ctx context.Context) error {
	return p.selectHost().Run(ctx)
}

func (p *Program[S]) selectHost() ports.Host {
	if p.headless || !isTerminal(p.input) {
		p.logger.Debug("host selected", "host", "line")
		return host.NewLine(p.app, p.logger, p.input, p.output)
	}
	p.logger.Debug("host selected", "host", "tea")
	return host.NewTea(p.app, p.logger, p.input, p.output)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
