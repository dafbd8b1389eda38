package deepdive

import (
	"cyberharvest/pkg/engine/input"
	"cyberharvest/pkg/engine/world"
	"cyberharvest/pkg/game/state"
)

const (
	// MaxLevel is the last level index of a data bank.
	MaxLevel = 2
	// MaxBank is the last data bank.
	MaxBank = 1
)

// Counters are the progress values a collision may bump.
type Counters struct {
	Bank  int
	Level int
}

// Outcome reports what a tentative move ran into.
type Outcome struct {
	// Blocked is set when a wall stopped the move.
	Blocked bool

	HitPortal   bool
	HitDataPort bool
	HitLava     bool
	OffMap      bool

	// Request is the room to switch to, valid when HasRequest is set.
	Request    state.RoomKind
	HasRequest bool
}

func (o *Outcome) request(room state.RoomKind) {
	o.Request = room
	o.HasRequest = true
}

// Check runs the collision rules for an actor box at the tentative
// position, in priority order: portal, data port, lava, wall. Only a wall
// blocks; the others are all evaluated and the last request wins.
func (l *Level) Check(target world.Box, c *Counters) Outcome {
	var out Outcome

	if len(l.Hits(TilePortal, target)) > 0 {
		out.HitPortal = true
		if c.Bank < MaxBank {
			c.Bank++
		}
		out.request(state.Pod)
	}

	if len(l.Hits(TileDataPort, target)) > 0 {
		out.HitDataPort = true
		if c.Level < MaxLevel {
			c.Level++
		}
		out.request(state.DeepDive)
	}

	if len(l.Hits(TileLava, target)) > 0 {
		out.HitLava = true
		out.request(state.DeepDive)
	}

	if len(l.Hits(TileWall, target)) > 0 {
		out.Blocked = true
	}
	return out
}

// Actor is the player inside a dive.
type Actor struct {
	X, Y   float64
	VX, VY float64
}

// Idle reports whether the actor has no velocity.
func (a *Actor) Idle() bool {
	return a.VX == 0 && a.VY == 0
}

// Steer reads a direction from the frame. Input is only taken while the
// actor is idle; A, W, S and D are checked in that order.
func (a *Actor) Steer(frame input.Frame) bool {
	if !a.Idle() {
		return false
	}
	var dir world.Direction
	switch {
	case frame.JustPressed(input.ActionMoveLeft):
		dir = world.West
	case frame.JustPressed(input.ActionMoveUp):
		dir = world.North
	case frame.JustPressed(input.ActionMoveDown):
		dir = world.South
	case frame.JustPressed(input.ActionMoveRight):
		dir = world.East
	default:
		return false
	}
	a.VX, a.VY = dir.Velocity(TileScale)
	return true
}

// Box returns the actor's collision box at its current position.
func (a *Actor) Box() world.Box {
	return world.Square(a.X, a.Y, TileScale)
}

// Advance moves the actor one step along its velocity. A blocked move
// zeroes the velocity and leaves the position unchanged. An actor that
// leaves the map asks for a restart of the level.
func (l *Level) Advance(a *Actor, c *Counters) Outcome {
	if a.Idle() {
		return Outcome{}
	}
	tx, ty := a.X+a.VX, a.Y+a.VY
	out := l.Check(world.Square(tx, ty, TileScale), c)
	if out.Blocked {
		a.VX, a.VY = 0, 0
		return out
	}
	a.X, a.Y = tx, ty
	if !l.Contains(a.X, a.Y) {
		out.OffMap = true
		out.request(state.DeepDive)
	}
	return out
}
