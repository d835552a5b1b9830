package host_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sprout/internal/host"
	"github.com/aretw0/sprout/internal/logging"
	"github.com/aretw0/sprout/pkg/mirror"
	"github.com/aretw0/sprout/pkg/ports"
)

func mirrorApp() ports.App[mirror.State] {
	flow := mirror.New()
	return ports.App[mirror.State]{
		Init:   flow.Init,
		Update: flow.Update,
		View:   flow.View,
	}
}

func TestLine_EchoesInput(t *testing.T) {
	in := strings.NewReader("hello\n")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	err := h.Run(context.Background())
	require.NoError(t, err)

	rendered := out.String()
	assert.Contains(t, rendered, mirror.DefaultCaption)
	// "hello" appears in the re-rendered view (input line and echo line).
	assert.GreaterOrEqual(t, strings.Count(rendered, "hello"), 2)
}

func TestLine_FinalLineWithoutNewlineIsDispatched(t *testing.T) {
	in := strings.NewReader("hello")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	require.NoError(t, h.Run(context.Background()))

	rendered := out.String()
	assert.Contains(t, rendered, "hello")
	assert.GreaterOrEqual(t, strings.Count(rendered, "hello"), 2)
}

func TestLine_ExitWordWithoutNewlineStopsQuietly(t *testing.T) {
	in := strings.NewReader("exit")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	require.NoError(t, h.Run(context.Background()))

	// The exit word is host policy, never an edit: only the initial
	// view is rendered and "exit" is never echoed.
	assert.NotContains(t, out.String(), "exit")
	assert.Equal(t, 1, strings.Count(out.String(), mirror.DefaultPlaceholder))
}

func TestLine_EmptyLineResetsEcho(t *testing.T) {
	in := strings.NewReader("hello\n\n")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	require.NoError(t, h.Run(context.Background()))

	// After the reset the placeholder is shown again.
	last := out.String()
	idx := strings.LastIndex(last, mirror.DefaultPlaceholder)
	assert.Greater(t, idx, strings.Index(last, "hello"))
}

func TestLine_ExitWordStopsLoop(t *testing.T) {
	in := strings.NewReader("exit\nignored\n")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	require.NoError(t, h.Run(context.Background()))

	assert.NotContains(t, out.String(), "ignored")
}

func TestLine_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader("never read\n")
	var out strings.Builder

	h := host.NewLine(mirrorApp(), logging.NewNop(), in, &out)
	err := h.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
