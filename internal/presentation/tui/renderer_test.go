package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sprout/internal/presentation/tui"
	"github.com/aretw0/sprout/pkg/mirror"
	"github.com/aretw0/sprout/pkg/ui"
)

func TestRender_EmptyStateShowsPlaceholder(t *testing.T) {
	out := tui.Render(mirror.View(mirror.Init()))

	assert.Contains(t, out, mirror.DefaultPlaceholder)
	assert.Contains(t, out, mirror.DefaultCaption)
}

func TestRender_ValueReplacesPlaceholder(t *testing.T) {
	out := tui.Render(mirror.View(mirror.State{Content: "typed"}))

	assert.Contains(t, out, "typed")
	assert.NotContains(t, out, mirror.DefaultPlaceholder)
}

func TestRender_OneLinePerLeaf(t *testing.T) {
	out := tui.Render(mirror.View(mirror.State{Content: "x"}))

	// input, caption, echo
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
}

func TestRender_EchoFollowsCaption(t *testing.T) {
	out := tui.Render(mirror.View(mirror.State{Content: "echoed"}))

	captionAt := strings.Index(out, mirror.DefaultCaption)
	echoAt := strings.LastIndex(out, "echoed")
	require.GreaterOrEqual(t, captionAt, 0)
	assert.Greater(t, echoAt, captionAt)
}

func TestRenderWithWidget_SplicesWidgetView(t *testing.T) {
	widget := "> live widget"
	out := tui.RenderWithWidget(mirror.View(mirror.State{Content: "bound"}), widget)

	assert.Contains(t, out, widget)
	// The static projection of the input is replaced, not duplicated.
	assert.NotContains(t, out, mirror.DefaultPlaceholder)
}

func TestRender_UnknownTreeIsEmpty(t *testing.T) {
	assert.Equal(t, "", tui.Render(ui.Box{}))
}
