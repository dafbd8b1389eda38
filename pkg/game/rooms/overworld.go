package rooms

import (
	"fmt"
	"image/color"

	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/gameplay"
	"cyberharvest/pkg/game/state"
)

const (
	// GroundY is the fixed height the player walks at in overworld rooms.
	GroundY = -160.0

	playerFrames = 8
	playerPeriod = 6 // ticks per frame
	npcFrames    = 4
	npcPeriod    = 12
)

// Visual tags understood by the hosts.
const (
	TagBackground = "background"
	TagPlayer     = "player"
	TagNPC        = "npc"
	TagTextbox    = "textbox"
	TagPortrait   = "portrait"
	TagTile       = "tile"
)

// RuntimeState is the per-visit state of an overworld room.
type RuntimeState struct {
	HasMoved bool
	Message  dialog.Typewriter
	Dialog   dialog.Session
	Bounds   gameplay.Bounds
	Progress state.Progress

	X     float64
	FlipX bool

	// PortraitID is the portrait currently shown, dialog.NoPortrait when
	// nobody is speaking.
	PortraitID int

	player   scene.Handle
	textbox  scene.Handle
	portrait scene.Handle
}

// Overworld is a walkable room laid out by a Definition.
type Overworld struct {
	def Definition
	rs  RuntimeState
	stage
}

// NewOverworld creates a room from its definition.
func NewOverworld(def Definition) *Overworld {
	return &Overworld{def: def}
}

// Kind implements Room.
func (o *Overworld) Kind() state.RoomKind { return o.def.Kind }

// State exposes the runtime state for hosts and tests.
func (o *Overworld) State() *RuntimeState { return &o.rs }

// Definition returns the static layout of the room.
func (o *Overworld) Definition() Definition { return o.def }

// Start implements Room.
func (o *Overworld) Start(env *Env, p Params) error {
	o.stage.flush(env)

	x := o.def.SpawnX
	if p.HasSpawn {
		x = p.Spawn
	}
	o.rs = RuntimeState{
		Bounds:     o.def.Bounds,
		Progress:   p.Progress,
		X:          o.def.Bounds.Clamp(x),
		PortraitID: dialog.NoPortrait,
	}
	o.rs.Message.Set(gameplay.Banner(o.def.Kind))

	o.spawn(env, scene.Visual{
		Kind:    scene.KindSprite,
		Tag:     TagBackground,
		Texture: fmt.Sprintf("backgrounds/%s.png", o.def.Kind.Dir()),
		W:       o.def.Bounds.Max - o.def.Bounds.Min,
		H:       400,
		Color:   color.RGBA{R: 0x10, G: 0x10, B: 0x28, A: 0xff},
	})
	if npc := o.def.NPC; npc != nil {
		anim := scene.NewAnimator(npcFrames, npcPeriod)
		anim.Resume()
		o.spawn(env, scene.Visual{
			Kind:    scene.KindSprite,
			Tag:     TagNPC,
			Texture: npc.Texture,
			X:       npc.X,
			Y:       GroundY,
			Z:       50,
			W:       32,
			H:       64,
			Color:   color.RGBA{R: 0xc0, G: 0x40, B: 0xc0, A: 0xff},
			Anim:    anim,
		})
	}
	o.rs.player = o.spawn(env, scene.Visual{
		Kind:    scene.KindSprite,
		Tag:     TagPlayer,
		Texture: "textures/player_walk.png",
		X:       o.rs.X,
		Y:       GroundY,
		Z:       100,
		W:       32,
		H:       64,
		Color:   color.RGBA{R: 0x20, G: 0xe0, B: 0xe0, A: 0xff},
		Anim:    scene.NewAnimator(playerFrames, playerPeriod),
	})
	o.rs.textbox = o.spawn(env, scene.Visual{
		Kind: scene.KindText,
		Tag:  TagTextbox,
		Z:    200,
	})
	o.showPortrait(env, dialog.NoPortrait)

	env.logger().WithFields(logrus.Fields{
		"room":     o.def.Kind.String(),
		"x":        o.rs.X,
		"progress": p.Progress.String(),
	}).Info("room started")
	return nil
}

// Run implements Room.
func (o *Overworld) Run(env *Env, frame input.Frame) error {
	rs := &o.rs

	motion := gameplay.ResolveMovement(rs.X, rs.Bounds, frame)
	if motion.Moved {
		rs.HasMoved = true
	}
	switch motion.Facing {
	case gameplay.FacingLeft:
		rs.FlipX = true
	case gameplay.FacingRight:
		rs.FlipX = false
	}
	if v := env.Scene.Get(rs.player); v != nil && v.Anim != nil {
		if motion.Moved {
			v.Anim.Resume()
		} else {
			v.Anim.Pause()
		}
	}

	// walking away ends the conversation
	if motion.Moved && rs.Dialog.Talking {
		o.endDialog(env)
	}

	x := motion.X
	npc := o.def.NPC
	switch {
	case npc != nil && npc.Zone.Contains(x):
		if err := o.runNPC(env, frame, motion.Moved); err != nil {
			return err
		}
	case o.runDoors(env, frame, x):
	default:
		if rs.Message.HasPlayed && rs.HasMoved {
			rs.Message.Clear()
		}
	}

	if env.Debug && frame.JustPressed(input.ActionDebugDeepDive) {
		env.Request(state.DeepDive)
	}

	rs.Message.Step()
	env.Scene.SetText(rs.textbox, rs.Message.Displayed())

	rs.X = motion.X
	env.Scene.Move(rs.player, rs.X, GroundY, rs.FlipX)
	return nil
}

func (o *Overworld) runNPC(env *Env, frame input.Frame, moved bool) error {
	rs := &o.rs
	if moved {
		return nil
	}
	if !rs.Dialog.Talking {
		rs.Message.Set(gameplay.TalkPrompt())
	}
	if !frame.JustPressed(input.ActionInteract) {
		return nil
	}

	key := dialog.Key{Room: o.def.Kind, Stage: rs.Progress, NPC: o.def.NPC.ID}
	step, err := env.Dialog.Advance(key, &rs.Dialog)
	if err != nil {
		return err
	}
	if step.Ended {
		rs.Message.Clear()
		o.showPortrait(env, dialog.NoPortrait)
		env.logger().WithField("room", o.def.Kind.String()).WithField("dialog_state", rs.Dialog.State).Debug("conversation ended")
		return nil
	}
	rs.Message.Set(step.Message)
	o.showPortrait(env, step.Portrait)
	return nil
}

// runDoors shows the prompt of the door zone the player stands in and
// follows it on forward. It reports whether the player was in a zone.
func (o *Overworld) runDoors(env *Env, frame input.Frame, x float64) bool {
	rs := &o.rs
	for _, door := range o.def.Doors {
		if !door.Zone.Contains(x) {
			continue
		}
		rs.Message.Set(gameplay.DoorPrompt(door.To))
		if frame.JustPressed(input.ActionForward) {
			env.Request(door.To)
		}
		return true
	}

	if o.def.Chair == nil || !o.def.Chair.Contains(x) {
		return false
	}
	to, ok := ChairDestination(rs.Progress)
	if !ok {
		// no key: the chair behaves like open floor
		return false
	}
	rs.Message.Set(gameplay.DoorPrompt(to))
	if frame.JustPressed(input.ActionForward) {
		env.Request(to)
	}
	return true
}

func (o *Overworld) endDialog(env *Env) {
	o.rs.Dialog.Reset()
	o.rs.Message.Clear()
	o.showPortrait(env, dialog.NoPortrait)
}

// showPortrait replaces the portrait visual. NoPortrait shows the idle
// frame.
func (o *Overworld) showPortrait(env *Env, id int) {
	o.despawn(env, o.rs.portrait)
	texture := "portraits/idle.png"
	if id != dialog.NoPortrait {
		texture = fmt.Sprintf("portraits/%d.png", id)
	}
	o.rs.PortraitID = id
	o.rs.portrait = o.spawn(env, scene.Visual{
		Kind:    scene.KindSprite,
		Tag:     TagPortrait,
		Texture: texture,
		Z:       210,
		W:       96,
		H:       96,
		Text:    fmt.Sprint(id),
	})
}

// Close implements Room.
func (o *Overworld) Close(env *Env) state.Progress {
	o.stage.flush(env)
	o.rs.player, o.rs.textbox, o.rs.portrait = 0, 0, 0

	progress := o.rs.Progress
	if next, ok := o.def.Ladder[progress]; ok && o.rs.Dialog.Completed() {
		progress = next
	}
	env.logger().WithFields(logrus.Fields{
		"room":     o.def.Kind.String(),
		"progress": progress.String(),
	}).Info("room closed")
	return progress
}
