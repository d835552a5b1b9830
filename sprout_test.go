package sprout_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sprout"
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

func TestNew_RejectsIncompleteApp(t *testing.T) {
	cases := []struct {
		name string
		app  ports.App[mirror.State]
	}{
		{"empty", ports.App[mirror.State]{}},
		{"missing view", ports.App[mirror.State]{Init: mirror.Init, Update: mirror.Update}},
		{"missing update", ports.App[mirror.State]{Init: mirror.Init, View: mirror.View}},
		{"missing init", ports.App[mirror.State]{Update: mirror.Update, View: mirror.View}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sprout.New(tc.app)
			assert.Error(t, err)
		})
	}
}

func TestProgram_RunsMirrorScenario(t *testing.T) {
	in := strings.NewReader("hello\n")
	var out strings.Builder

	program, err := sprout.New(mirrorApp(),
		sprout.WithInput[mirror.State](in),
		sprout.WithOutput[mirror.State](&out),
	)
	require.NoError(t, err)

	require.NoError(t, program.Run(context.Background()))

	rendered := out.String()
	assert.Contains(t, rendered, mirror.DefaultCaption)
	assert.Contains(t, rendered, "hello")
}

func TestProgram_NonFileInputUsesLineHost(t *testing.T) {
	// A bytes-backed reader is never a terminal; Run must terminate at EOF
	// instead of trying to start a full-screen program.
	program, err := sprout.New(mirrorApp(),
		sprout.WithInput[mirror.State](strings.NewReader("")),
		sprout.WithOutput[mirror.State](&strings.Builder{}),
	)
	require.NoError(t, err)
	assert.NoError(t, program.Run(context.Background()))
}

func TestProgram_HeadlessOption(t *testing.T) {
	in := strings.NewReader("one\ntwo\n")
	var out strings.Builder

	program, err := sprout.New(mirrorApp(),
		sprout.WithHeadless[mirror.State](),
		sprout.WithInput[mirror.State](in),
		sprout.WithOutput[mirror.State](&out),
	)
	require.NoError(t, err)
	require.NoError(t, program.Run(context.Background()))

	// The second edit overwrites the first wholesale.
	last := out.String()
	assert.Greater(t, strings.LastIndex(last, "two"), strings.LastIndex(last, "one"))
}
