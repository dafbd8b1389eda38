package tui

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberharvest/pkg/game/machine"
	"cyberharvest/pkg/game/rooms"
	"cyberharvest/pkg/game/state"
)

func assets() fstest.MapFS {
	return fstest.MapFS{
		"texts/intro.txt":  {Data: []byte("Line one.\nLine two.\n")},
		"dives/map0-0.txt": {Data: []byte("#####\n#.~.#\n#..$#\n#.@.#\n#####\n")},
	}
}

func newHost(keys ...string) (*TUIRenderer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	h := New()
	h.Init()
	h.out = out
	h.clearing = false
	h.width = func() int { return 40 }
	h.readKey = func() (string, error) {
		if len(keys) == 0 {
			return "", errors.New("no more keys")
		}
		k := keys[0]
		keys = keys[1:]
		return k, nil
	}
	return h, out
}

func newMachine(t *testing.T, start state.RoomKind) *machine.Machine {
	t.Helper()
	m := machine.New(machine.Options{Assets: assets(), Start: start, Debug: true, DumpDir: t.TempDir()})
	require.NoError(t, m.Start())
	return m
}

func TestRun_StoryAdvancesAndQuits(t *testing.T) {
	h, out := newHost("e", "q")
	m := machine.New(machine.Options{Assets: assets(), Start: state.Intro})

	require.NoError(t, h.Run(m))

	text := color.ClearCode(out.String())
	assert.Contains(t, text, "Line one.")
	assert.Contains(t, text, "Line two.")
	assert.Equal(t, state.Intro, m.Session().Current)
}

func TestRun_ReadErrorStops(t *testing.T) {
	h, _ := newHost()
	m := machine.New(machine.Options{Assets: assets(), Start: state.Intro})
	assert.Error(t, h.Run(m))
}

func TestStep_WalkThroughDoor(t *testing.T) {
	h, _ := newHost()
	m := newMachine(t, state.TechShop)
	o := m.Current().(*rooms.Overworld)
	start := o.State().X

	require.NoError(t, h.Step(m, "d"))
	assert.Greater(t, o.State().X, start, "a press walks right for a few ticks")
	assert.Greater(t, o.State().X, 350.0)

	require.NoError(t, h.Step(m, "w"))
	assert.Equal(t, state.Alleyway, m.Session().Current)
}

func TestRender_Overworld(t *testing.T) {
	h, out := newHost()
	m := newMachine(t, state.TechShop)
	require.NoError(t, h.settle(m))

	h.Render(m)
	text := color.ClearCode(out.String())
	assert.Contains(t, text, "Tech Shop")
	assert.Contains(t, text, PlayerIcon)
	assert.Contains(t, text, DoorIcon)
}

func TestRender_Dive(t *testing.T) {
	h, out := newHost()
	m := newMachine(t, state.Pod)
	require.NoError(t, h.Step(m, "p"))
	require.Equal(t, state.DeepDive, m.Session().Current)

	h.Render(m)
	text := color.ClearCode(out.String())
	assert.Contains(t, text, "#####")
	assert.Contains(t, text, DivePlayerIcon)
	assert.Contains(t, text, "$")
}

func TestSpeakerName(t *testing.T) {
	assert.Equal(t, "", speakerName("-1"))
	assert.Equal(t, "You", speakerName("0"))
	assert.Equal(t, "Stranger", speakerName("2"))
}
