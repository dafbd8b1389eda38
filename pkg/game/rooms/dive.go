package rooms

import (
	"image/color"

	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/deepdive"
	"cyberharvest/pkg/game/devtools"
	"cyberharvest/pkg/game/state"
)

var tileColors = map[deepdive.Tile]color.RGBA{
	deepdive.TileWall:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	deepdive.TileLava:     {R: 0xff, A: 0xff},
	deepdive.TileDataPort: {G: 0xff, B: 0xff, A: 0xff},
	deepdive.TilePortal:   {G: 0xff, A: 0xff},
}

// Dive is the Deep Dive maze. Its level index survives restarts so a data
// port can move the player on; the data bank is a local copy that the
// state machine reads back when the room closes.
type Dive struct {
	level    int
	bank     int
	progress state.Progress

	Level *deepdive.Level
	Actor deepdive.Actor

	player scene.Handle
	stage
}

// NewDive creates the dive room at level 0.
func NewDive() *Dive {
	return &Dive{}
}

// Kind implements Room.
func (d *Dive) Kind() state.RoomKind { return state.DeepDive }

// LevelIndex returns the level the next start will load.
func (d *Dive) LevelIndex() int { return d.level }

// DataBank returns the data bank as changed by this visit.
func (d *Dive) DataBank() int { return d.bank }

// ResetLevel sends the next dive back to the first level.
func (d *Dive) ResetLevel() { d.level = 0 }

// Start implements Room.
func (d *Dive) Start(env *Env, p Params) error {
	d.stage.flush(env)
	d.bank = p.DataBank
	d.progress = p.Progress

	lvl, err := deepdive.Load(env.Assets, d.bank, d.level)
	if err != nil {
		return err
	}
	d.Level = lvl
	d.Actor = deepdive.Actor{}

	for _, t := range lvl.Tiles() {
		d.spawn(env, scene.Visual{
			Kind:  scene.KindTile,
			Tag:   TagTile,
			X:     t.Box.X,
			Y:     t.Box.Y,
			W:     t.Box.W,
			H:     t.Box.H,
			Color: tileColors[t.Tile],
			Text:  string(t.Tile.Glyph()),
		})
	}
	d.player = d.spawn(env, scene.Visual{
		Kind:    scene.KindSprite,
		Tag:     TagPlayer,
		Texture: "textures/player_walk.png",
		Z:       100,
		W:       deepdive.TileScale,
		H:       deepdive.TileScale,
		Color:   color.RGBA{R: 0x20, G: 0xe0, B: 0xe0, A: 0xff},
		Anim:    scene.NewAnimator(playerFrames, playerPeriod),
	})

	env.logger().WithFields(logrus.Fields{
		"room":       state.DeepDive.String(),
		"bank":       d.bank,
		"dive_level": d.level,
		"tiles":      len(lvl.Tiles()),
	}).Info("dive started")
	return nil
}

// Run implements Room.
func (d *Dive) Run(env *Env, frame input.Frame) error {
	d.Actor.Steer(frame)

	c := deepdive.Counters{Bank: d.bank, Level: d.level}
	out := d.Level.Advance(&d.Actor, &c)
	d.bank, d.level = c.Bank, c.Level
	if out.HasRequest {
		env.logger().WithFields(logrus.Fields{
			"portal":   out.HitPortal,
			"dataport": out.HitDataPort,
			"lava":     out.HitLava,
			"off_map":  out.OffMap,
			"to":       out.Request.String(),
		}).Debug("dive collision")
		env.Request(out.Request)
	}

	if v := env.Scene.Get(d.player); v != nil {
		if d.Actor.Idle() {
			v.Anim.Pause()
		} else {
			v.Anim.Resume()
		}
		env.Scene.Move(d.player, d.Actor.X, d.Actor.Y, d.Actor.VX < 0)
	}

	if env.Debug && frame.JustPressed(input.ActionDebugDeepDive) {
		env.Request(state.TechShop)
	}

	if env.Debug && frame.JustPressed(input.ActionDebugMapDump) {
		path, err := devtools.DumpDiveMap(env.DumpDir, d.Level, &d.Actor)
		if err != nil {
			env.logger().WithError(err).Warn("dive map dump failed")
		} else {
			env.logger().WithField("path", path).Info("dive map dumped")
		}
	}
	return nil
}

// Close implements Room.
func (d *Dive) Close(env *Env) state.Progress {
	d.stage.flush(env)
	d.player = 0
	return d.progress
}
