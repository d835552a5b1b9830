package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/sprout/internal/presentation/tui"
	"github.com/aretw0/sprout/pkg/ports"
)

// Line is the non-interactive host, used when stdin is not a terminal
// (pipes, CI) or when headless mode is requested. Each input line is
// treated as the field's new full value; the view is re-rendered after
// every transition.
type Line[S any] struct {
	app    ports.App[S]
	logger *slog.Logger
	reader *bufio.Reader
	writer io.Writer
}

// NewLine creates a line-oriented host for the given app.
func NewLine[S any](app ports.App[S], logger *slog.Logger, in io.Reader, out io.Writer) *Line[S] {
	return &Line[S]{
		app:    app,
		logger: logger,
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// Run drives the loop until EOF, an explicit exit word, or ctx ends.
func (h *Line[S]) Run(ctx context.Context) error {
	state := h.app.Init()
	fmt.Fprint(h.writer, tui.Render(h.app.View(state)))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		fmt.Fprint(h.writer, "> ")
		line, err := h.reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("line host: read input: %w", err)
		}
		atEOF := err != nil

		// A final line without a trailing newline still counts as an
		// edit: ReadString hands it back together with EOF.
		text := strings.TrimRight(line, "\r\n")
		if atEOF && text == "" {
			fmt.Fprintln(h.writer)
			return nil
		}

		if text == "exit" || text == "quit" {
			return nil
		}

		state = dispatchEdit(h.app, state, text)
		h.logger.Debug("transition", "input_len", len(text))
		fmt.Fprint(h.writer, tui.Render(h.app.View(state)))

		if atEOF {
			fmt.Fprintln(h.writer)
			return nil
		}
	}
}
