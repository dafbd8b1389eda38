// Package machine drives the game: it owns the session, decides which room
// is current and runs one tick of the game at a time.
package machine

import (
	"io/fs"

	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/rooms"
	"cyberharvest/pkg/game/state"
	"cyberharvest/pkg/logger"
)

// Options configure a Machine.
type Options struct {
	// Assets holds the texts/ and dives/ trees.
	Assets fs.FS
	Start  state.RoomKind
	Debug  bool
	// DumpDir receives developer map dumps.
	DumpDir string
}

// Status is a snapshot of the session for hosts to display.
type Status struct {
	SessionID string
	Room      state.RoomKind
	Progress  state.Progress
	DataBank  int
	Ticks     uint64
}

// Machine is the top-level game state machine.
type Machine struct {
	session *state.Session
	rooms   *rooms.Collection
	env     *rooms.Env
	debug   bool
	log     *logrus.Entry

	started bool
	ticks   uint64
}

// New creates a machine positioned in opts.Start. Call Start (or Tick)
// to start the first room.
func New(opts Options) *Machine {
	session := state.NewSession(opts.Start)
	log := logger.Log.WithField("session", session.ID)
	m := &Machine{
		session: session,
		rooms:   rooms.NewCollection(),
		debug:   opts.Debug,
		log:     log,
	}
	m.env = &rooms.Env{
		Scene:   scene.NewRegistry(),
		Dialog:  dialog.NewEngine(dialog.NewSource(opts.Assets)),
		Assets:  opts.Assets,
		Debug:   opts.Debug,
		DumpDir: opts.DumpDir,
		Request: session.Request,
		Log:     log,
	}
	return m
}

// Session returns the live session.
func (m *Machine) Session() *state.Session { return m.session }

// Scene returns the visual registry the rooms draw into.
func (m *Machine) Scene() *scene.Registry { return m.env.Scene }

// Rooms returns every room of the session.
func (m *Machine) Rooms() *rooms.Collection { return m.rooms }

// Current returns the current room.
func (m *Machine) Current() rooms.Room {
	r, _ := m.rooms.Get(m.session.Current)
	return r
}

// Status returns a snapshot for display.
func (m *Machine) Status() Status {
	return Status{
		SessionID: m.session.ID,
		Room:      m.session.Current,
		Progress:  m.session.Progress,
		DataBank:  m.session.DataBank,
		Ticks:     m.ticks,
	}
}

// Start starts the initial room. It is a no-op once the machine runs.
func (m *Machine) Start() error {
	if m.started {
		return nil
	}
	m.started = true
	m.log.WithField("room", m.session.Current.String()).Info("session started")
	return m.Current().Start(m.env, rooms.Params{
		Progress: m.session.Progress,
		DataBank: m.session.DataBank,
	})
}

// Tick runs one fixed step: the transition check, the current room and
// the animation timers, in that order. An error means a resource could
// not be loaded and the game cannot continue.
func (m *Machine) Tick(frame input.Frame) error {
	if err := m.Start(); err != nil {
		return err
	}
	m.ticks++

	if err := m.transitionCheck(); err != nil {
		return err
	}

	if frame.JustPressed(input.ActionMenu) {
		// no menu yet
		m.log.WithField("room", m.session.Current.String()).Debug("menu requested")
	}

	if err := m.Current().Run(m.env, frame); err != nil {
		return err
	}

	m.env.Scene.Animate()
	return nil
}

func (m *Machine) transitionCheck() error {
	s := m.session
	to, ok := s.TakeRequest()
	if !ok {
		return nil
	}

	from := s.Current
	t, ok := Lookup(from, to)
	if !ok || (t.Debug && !m.debug) {
		m.log.WithFields(logrus.Fields{
			"from":  from.String(),
			"to":    to.String(),
			"debug": t.Debug,
		}).Debug("transition ignored")
		return nil
	}

	s.Advance(m.Current().Close(m.env))
	if from == state.DeepDive {
		s.DataBank = m.rooms.Dive().DataBank()
	}

	dest := to
	params := rooms.Params{Spawn: t.Spawn, HasSpawn: t.HasSpawn}
	if t.Rule == RuleDiveReturn {
		m.rooms.Dive().ResetLevel()
		var progress state.Progress
		progress, dest = diveReturn(s.Progress)
		s.Advance(progress)
		if dest != to {
			params = rooms.Params{}
		}
	}
	params.Progress = s.Progress
	params.DataBank = s.DataBank

	s.Current = dest
	m.log.WithFields(logrus.Fields{
		"from":      from.String(),
		"to":        dest.String(),
		"progress":  s.Progress.String(),
		"data_bank": s.DataBank,
	}).Info("transition")

	return m.Current().Start(m.env, params)
}
