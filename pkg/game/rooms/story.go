package rooms

import (
	"image/color"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/gameplay"
	"cyberharvest/pkg/game/state"
)

// Story is a text screen: the intro, the ending and the two uplink rooms
// shown before a dive.
type Story struct {
	kind state.RoomKind
	// next is requested after the last line; End has none.
	next    state.RoomKind
	hasNext bool
	// back is requested on MoveLeft; only the uplink rooms have it.
	back    state.RoomKind
	hasBack bool

	lines    []string
	line     int
	progress state.Progress
	Message  dialog.Typewriter

	text scene.Handle
	hint scene.Handle
	stage
}

// NewStory creates the story screen for kind.
func NewStory(kind state.RoomKind) *Story {
	s := &Story{kind: kind}
	switch kind {
	case state.Intro:
		s.next, s.hasNext = state.TechShop, true
	case state.Helionix, state.Fusiogenic:
		s.next, s.hasNext = state.DeepDive, true
		s.back, s.hasBack = state.Pod, true
	}
	return s
}

// Kind implements Room.
func (s *Story) Kind() state.RoomKind { return s.kind }

// Line returns the index of the line being shown.
func (s *Story) Line() int { return s.line }

// Start implements Room.
func (s *Story) Start(env *Env, p Params) error {
	s.stage.flush(env)

	lines, err := env.Dialog.Source().Story(s.kind.Dir())
	if err != nil {
		return err
	}
	s.lines = lines
	s.line = 0
	s.progress = p.Progress
	s.Message = dialog.Typewriter{}
	if len(lines) > 0 {
		s.Message.Set(lines[0])
	}

	s.spawn(env, scene.Visual{
		Kind:    scene.KindSprite,
		Tag:     TagBackground,
		Texture: "backgrounds/story.png",
		W:       1280,
		H:       720,
		Color:   color.Black,
	})
	s.text = s.spawn(env, scene.Visual{Kind: scene.KindText, Tag: TagTextbox, Z: 200})
	if s.hasNext {
		s.hint = s.spawn(env, scene.Visual{Kind: scene.KindText, Tag: "hint", Y: -300, Z: 200, Text: gameplay.ContinuePrompt()})
	}

	env.logger().WithField("room", s.kind.String()).WithField("lines", len(lines)).Info("story started")
	return nil
}

// Run implements Room.
func (s *Story) Run(env *Env, frame input.Frame) error {
	if s.hasBack && frame.JustPressed(input.ActionMoveLeft) {
		env.Request(s.back)
	}

	if frame.JustPressed(input.ActionInteract) {
		if s.line+1 < len(s.lines) {
			s.line++
			s.Message.Set(s.lines[s.line])
		} else if s.hasNext {
			env.Request(s.next)
		}
	}

	s.Message.Step()
	env.Scene.SetText(s.text, s.Message.Displayed())
	return nil
}

// Close implements Room.
func (s *Story) Close(env *Env) state.Progress {
	s.stage.flush(env)
	s.text, s.hint = 0, 0
	return s.progress
}
