package rooms

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/gameplay"
	"cyberharvest/pkg/game/state"
)

type recorder struct {
	requests []state.RoomKind
}

func (r *recorder) request(kind state.RoomKind) {
	r.requests = append(r.requests, kind)
}

func (r *recorder) last() (state.RoomKind, bool) {
	if len(r.requests) == 0 {
		return 0, false
	}
	return r.requests[len(r.requests)-1], true
}

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"texts/alleyway/Start/dialog1-0.txt":        {Data: []byte("Hey, runner.\nWho are you?\nA friend.\nOkay.\n")},
		"texts/alleyway/Start/dialog1-1.txt":        {Data: []byte("Go on then.\n")},
		"texts/alleyway/TalkToFigure/dialog1-0.txt": {Data: []byte("Still here?\nYes.\n")},
		"texts/intro.txt":                           {Data: []byte("Neo Lycia, 2089.\nYou fix what others break.\n")},
		"texts/helionix.txt":                        {Data: []byte("Helionix uplink.\n")},
		"texts/end.txt":                             {Data: []byte("The end.\n")},
		"dives/map0-0.txt":                          {Data: []byte("#####\n#.~.#\n#..$#\n#.@.#\n#####\n")},
	}
}

func newEnv(fsys fs.FS) (*Env, *recorder) {
	rec := &recorder{}
	return &Env{
		Scene:   scene.NewRegistry(),
		Dialog:  dialog.NewEngine(dialog.NewSource(fsys)),
		Assets:  fsys,
		Request: rec.request,
	}, rec
}

func startOverworld(t *testing.T, env *Env, kind state.RoomKind, p Params) *Overworld {
	t.Helper()
	o := NewOverworld(Definitions[kind])
	require.NoError(t, o.Start(env, p))
	return o
}

func at(x float64, progress state.Progress) Params {
	return Params{Progress: progress, Spawn: x, HasSpawn: true}
}

// Walking right from 340 commits 346 and stays short of the door.
func TestOverworld_TechShopApproach(t *testing.T) {
	env, rec := newEnv(testAssets())
	o := startOverworld(t, env, state.TechShop, at(340, state.Start))

	require.NoError(t, o.Run(env, input.Holding("d")))
	assert.Equal(t, 346.0, o.State().X)
	assert.True(t, o.State().HasMoved)
	assert.Empty(t, rec.requests)
	assert.NotEqual(t, gameplay.DoorPrompt(state.Alleyway), o.State().Message.Target())
}

func TestOverworld_ForwardAtDoorRequestsRoom(t *testing.T) {
	env, rec := newEnv(testAssets())
	o := startOverworld(t, env, state.TechShop, at(351, state.Start))

	require.NoError(t, o.Run(env, input.Pressed("w")))
	got, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, state.Alleyway, got)
	assert.Equal(t, gameplay.DoorPrompt(state.Alleyway), o.State().Message.Target())
	assert.Equal(t, state.Start, o.Close(env), "tech shop has no ladder")
}

func TestOverworld_DoorPromptWithoutForward(t *testing.T) {
	env, rec := newEnv(testAssets())
	o := startOverworld(t, env, state.Cyberway, at(480, state.Start))

	require.NoError(t, o.Run(env, input.NewFrame()))
	assert.Empty(t, rec.requests)
	assert.Equal(t, gameplay.DoorPrompt(state.Cafe), o.State().Message.Target())
}

func TestOverworld_StartSpawnsAndCloseFlushes(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Alleyway, Params{Progress: state.Start})

	assert.Equal(t, 210.0, o.State().X, "default spawn")
	assert.Equal(t, 5, env.Scene.Len())
	assert.Equal(t, 1, env.Scene.CountByTag(TagNPC))
	assert.Equal(t, 1, env.Scene.CountByTag(TagPortrait))
	assert.Equal(t, gameplay.Banner(state.Alleyway), o.State().Message.Target())

	o.Close(env)
	assert.Equal(t, 0, env.Scene.Len())
}

func TestOverworld_ConversationAdvancesLadder(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Alleyway, at(-300, state.Start))

	require.NoError(t, o.Run(env, input.NewFrame()))
	assert.Equal(t, gameplay.TalkPrompt(), o.State().Message.Target())

	wantPortraits := []int{1, dialog.PlayerPortrait, 1, dialog.PlayerPortrait}
	for i, want := range wantPortraits {
		require.NoError(t, o.Run(env, input.Pressed("e")))
		assert.Equal(t, want, o.State().PortraitID, "line %d", i)
		assert.True(t, o.State().Dialog.Talking)
	}
	assert.Equal(t, "Okay.", o.State().Message.Target())

	require.NoError(t, o.Run(env, input.Pressed("e")))
	rs := o.State()
	assert.False(t, rs.Dialog.Talking)
	assert.Equal(t, 1, rs.Dialog.State)
	assert.Equal(t, dialog.NoPortrait, rs.PortraitID)
	assert.Equal(t, 1, env.Scene.CountByTag(TagPortrait))

	assert.Equal(t, state.TalkToFigure, o.Close(env))
}

func TestOverworld_SecondPassLoadsFollowUpScript(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Alleyway, at(-300, state.Start))
	for i := 0; i < 5; i++ {
		require.NoError(t, o.Run(env, input.Pressed("e")))
	}
	require.NoError(t, o.Run(env, input.Pressed("e")))
	assert.Equal(t, "Go on then.", o.State().Message.Target())

	require.NoError(t, o.Run(env, input.Pressed("e")))
	assert.Equal(t, 1, o.State().Dialog.State)
	assert.Equal(t, state.TalkToFigure, o.Close(env))
}

// Completing the conversation again on a later visit must not move the
// ladder a second time.
func TestOverworld_ReentryDoesNotBumpTwice(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Alleyway, at(-300, state.Start))
	for i := 0; i < 5; i++ {
		require.NoError(t, o.Run(env, input.Pressed("e")))
	}
	progress := o.Close(env)
	require.Equal(t, state.TalkToFigure, progress)

	require.NoError(t, o.Start(env, at(-300, progress)))
	assert.Equal(t, 0, o.State().Dialog.State)
	for i := 0; i < 3; i++ {
		require.NoError(t, o.Run(env, input.Pressed("e")))
	}
	assert.Equal(t, 1, o.State().Dialog.State)
	assert.Equal(t, state.TalkToFigure, o.Close(env))
}

func TestOverworld_MovementInterruptsDialog(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Alleyway, at(-300, state.Start))

	require.NoError(t, o.Run(env, input.Pressed("e")))
	require.True(t, o.State().Dialog.Talking)

	require.NoError(t, o.Run(env, input.Holding("d")))
	rs := o.State()
	assert.False(t, rs.Dialog.Talking)
	assert.Equal(t, 0, rs.Dialog.Line)
	assert.Nil(t, rs.Dialog.Texts)
	assert.Equal(t, dialog.NoPortrait, rs.PortraitID)
	assert.Equal(t, 0, rs.Dialog.State)
	assert.Equal(t, state.Start, o.Close(env))
}

func TestOverworld_MissingDialogIsAnError(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.Cafe, at(60, state.Start))
	err := o.Run(env, input.Pressed("e"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOverworld_BannerStaysUntilMoved(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.TechShop, at(0, state.Start))
	banner := gameplay.Banner(state.TechShop)

	for i := 0; i < 100; i++ {
		require.NoError(t, o.Run(env, input.NewFrame()))
	}
	assert.Equal(t, banner, o.State().Message.Target())
	assert.Equal(t, banner, o.State().Message.Displayed())
	assert.Equal(t, banner, env.Scene.FindByTag(TagTextbox).Text)

	require.NoError(t, o.Run(env, input.Holding("a")))
	assert.True(t, o.State().Message.Empty())
}

func TestOverworld_PodChair(t *testing.T) {
	tests := []struct {
		progress state.Progress
		want     state.RoomKind
		ok       bool
	}{
		{state.Start, 0, false},
		{state.GetFirstKey, state.Helionix, true},
		{state.GetFirstData, 0, false},
		{state.GetSecondKey, state.Helionix, true},
		{state.GetFinalKey, state.Fusiogenic, true},
	}
	for _, tt := range tests {
		t.Run(tt.progress.String(), func(t *testing.T) {
			env, rec := newEnv(testAssets())
			o := startOverworld(t, env, state.Pod, at(50, tt.progress))
			require.NoError(t, o.Run(env, input.Pressed("w")))
			got, ok := rec.last()
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOverworld_BoundsDiscard(t *testing.T) {
	env, _ := newEnv(testAssets())
	o := startOverworld(t, env, state.PartsShop, at(250, state.Start))
	o.State().X = 255 // pushed past the clamp from outside
	require.NoError(t, o.Run(env, input.Holding("d")))
	assert.Equal(t, 255.0, o.State().X)
	assert.False(t, o.State().HasMoved)
}

func TestOverworld_DebugKeyRequestsDive(t *testing.T) {
	env, rec := newEnv(testAssets())
	env.Debug = true
	o := startOverworld(t, env, state.TechShop, at(0, state.Start))
	require.NoError(t, o.Run(env, input.Pressed("p")))
	got, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, state.DeepDive, got)
}

func TestOverworld_DebugKeyIgnoredWithoutDebug(t *testing.T) {
	env, rec := newEnv(testAssets())
	o := startOverworld(t, env, state.TechShop, at(0, state.Start))
	require.NoError(t, o.Run(env, input.Pressed("p")))
	assert.Empty(t, rec.requests)
}

func TestStory_IntroAdvancesToTechShop(t *testing.T) {
	env, rec := newEnv(testAssets())
	s := NewStory(state.Intro)
	require.NoError(t, s.Start(env, Params{}))
	assert.Equal(t, "Neo Lycia, 2089.", s.Message.Target())

	require.NoError(t, s.Run(env, input.Pressed("e")))
	assert.Equal(t, 1, s.Line())
	assert.Empty(t, rec.requests)

	require.NoError(t, s.Run(env, input.Pressed("e")))
	got, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, state.TechShop, got)
}

func TestStory_PreludeBackAndForward(t *testing.T) {
	env, rec := newEnv(testAssets())
	s := NewStory(state.Helionix)
	require.NoError(t, s.Start(env, Params{Progress: state.GetFirstKey}))

	require.NoError(t, s.Run(env, input.Pressed("a")))
	got, _ := rec.last()
	assert.Equal(t, state.Pod, got)

	require.NoError(t, s.Run(env, input.Pressed("e")))
	got, _ = rec.last()
	assert.Equal(t, state.DeepDive, got)
	assert.Equal(t, state.GetFirstKey, s.Close(env))
}

func TestStory_EndIsASink(t *testing.T) {
	env, rec := newEnv(testAssets())
	s := NewStory(state.End)
	require.NoError(t, s.Start(env, Params{}))
	for i := 0; i < 3; i++ {
		require.NoError(t, s.Run(env, input.Pressed("e", "a", "w")))
	}
	assert.Empty(t, rec.requests)
}

func TestStory_MissingText(t *testing.T) {
	env, _ := newEnv(testAssets())
	err := NewStory(state.Fusiogenic).Start(env, Params{})
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestDive_LavaRequestsRestart(t *testing.T) {
	env, rec := newEnv(testAssets())
	d := NewDive()
	require.NoError(t, d.Start(env, Params{}))
	assert.Equal(t, 19, env.Scene.CountByTag(TagTile))

	require.NoError(t, d.Run(env, input.Pressed("w")))
	got, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, state.DeepDive, got)
	assert.Equal(t, 16.0, d.Actor.Y)

	d.Close(env)
	assert.Equal(t, 0, env.Scene.Len())
}

func TestDive_DataPortBumpsLevel(t *testing.T) {
	env, rec := newEnv(testAssets())
	d := NewDive()
	require.NoError(t, d.Start(env, Params{}))

	require.NoError(t, d.Run(env, input.Pressed("s")))
	assert.Equal(t, 1, d.LevelIndex())
	got, _ := rec.last()
	assert.Equal(t, state.DeepDive, got)

	d.ResetLevel()
	assert.Equal(t, 0, d.LevelIndex())
}

func TestDive_PortalBumpsBank(t *testing.T) {
	env, rec := newEnv(testAssets())
	d := NewDive()
	require.NoError(t, d.Start(env, Params{Progress: state.GetFirstKey}))

	require.NoError(t, d.Run(env, input.Pressed("d")))
	assert.Equal(t, 1, d.DataBank())
	got, _ := rec.last()
	assert.Equal(t, state.Pod, got)
	assert.Equal(t, state.GetFirstKey, d.Close(env))
}

func TestDive_DebugKeyLeavesToTechShop(t *testing.T) {
	env, rec := newEnv(testAssets())
	d := NewDive()
	require.NoError(t, d.Start(env, Params{}))
	require.NoError(t, d.Run(env, input.Pressed("p")))
	assert.Empty(t, rec.requests)

	env.Debug = true
	require.NoError(t, d.Run(env, input.Pressed("p")))
	got, ok := rec.last()
	require.True(t, ok)
	assert.Equal(t, state.TechShop, got)
}

func TestDive_StartLogsDiveLevel(t *testing.T) {
	env, _ := newEnv(testAssets())
	log, hook := test.NewNullLogger()
	env.Log = logrus.NewEntry(log)

	require.NoError(t, NewDive().Start(env, Params{}))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "dive started", entry.Message)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 0, entry.Data["dive_level"])
	assert.NotContains(t, entry.Data, "level")
}

func TestDive_MissingMap(t *testing.T) {
	env, _ := newEnv(testAssets())
	err := NewDive().Start(env, Params{DataBank: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dives/map1-0.txt")
}

func TestCollection(t *testing.T) {
	c := NewCollection()
	assert.Equal(t, len(state.AllRooms()), c.Len())
	for _, kind := range state.AllRooms() {
		r, ok := c.Get(kind)
		require.True(t, ok, kind.String())
		assert.Equal(t, kind, r.Kind())
	}
	dive, _ := c.Get(state.DeepDive)
	assert.Same(t, c.Dive(), dive)
}
