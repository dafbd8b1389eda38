// Package rooms implements every location of the game behind one Room
// interface: the walkable overworld rooms, the story screens and the
// Deep Dive maze.
package rooms

import (
	"io/fs"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/state"
	"cyberharvest/pkg/logger"
)

// Env carries the collaborators a room may use. It is shared by all rooms
// and owned by the state machine.
type Env struct {
	Scene  *scene.Registry
	Dialog *dialog.Engine
	// Assets is the filesystem holding dives/ maps.
	Assets fs.FS
	Debug  bool
	// DumpDir receives dive map dumps.
	DumpDir string
	// Request asks the state machine for a room change on the next tick.
	Request func(state.RoomKind)
	Log     *logrus.Entry
}

// Params are the values handed to a room when it starts. They are copies;
// a room reports changes only through Close.
type Params struct {
	Progress state.Progress
	DataBank int
	// Spawn overrides the room's default player x when HasSpawn is set.
	Spawn    float64
	HasSpawn bool
}

// Room is one location of the game.
type Room interface {
	Kind() state.RoomKind
	Start(env *Env, p Params) error
	Run(env *Env, frame input.Frame) error
	Close(env *Env) state.Progress
}

// stage tracks the visuals a room has spawned so Close can remove them.
type stage struct {
	visuals *mapset.Set[scene.Handle]
}

func (s *stage) spawn(env *Env, v scene.Visual) scene.Handle {
	if s.visuals == nil {
		set := mapset.New[scene.Handle]()
		s.visuals = &set
	}
	h := env.Scene.Spawn(v)
	s.visuals.Put(h)
	return h
}

func (s *stage) despawn(env *Env, h scene.Handle) {
	if h == 0 {
		return
	}
	env.Scene.Despawn(h)
	if s.visuals != nil {
		s.visuals.Remove(h)
	}
}

func (s *stage) flush(env *Env) {
	if s.visuals == nil {
		return
	}
	s.visuals.Each(func(h scene.Handle) {
		env.Scene.Despawn(h)
	})
	s.visuals = nil
}

func (s *stage) count() int {
	if s.visuals == nil {
		return 0
	}
	return s.visuals.Size()
}

func (e *Env) logger() *logrus.Entry {
	if e.Log == nil {
		return logrus.NewEntry(logger.Log)
	}
	return e.Log
}
