// Package gameplay provides the shared overworld rules: horizontal player
// movement, trigger zones and the prompts shown inside them.
package gameplay

import (
	"cyberharvest/pkg/engine/input"
)

const (
	// PlayerSpeed is the horizontal distance walked per tick.
	PlayerSpeed = 6.0
	// Margin is how far past the bounds a tentative position may land
	// before the move is thrown away instead of clamped.
	Margin = 7.0
)

// Bounds is the walkable x range of a room.
type Bounds struct {
	Min, Max float64
}

// Clamp limits x to the bounds.
func (b Bounds) Clamp(x float64) float64 {
	if x < b.Min {
		return b.Min
	}
	if x > b.Max {
		return b.Max
	}
	return x
}

// WithinMargin reports whether x lies in [Min-Margin, Max+Margin].
func (b Bounds) WithinMargin(x float64) bool {
	return x >= b.Min-Margin && x <= b.Max+Margin
}

// Facing is the horizontal direction the player sprite looks.
type Facing int

const (
	FacingUnchanged Facing = iota
	FacingLeft
	FacingRight
)

// Motion is the result of one tick of overworld movement.
type Motion struct {
	// X is the position to commit. It is the clamped tentative position,
	// or the old position when the move was discarded.
	X        float64
	Velocity float64
	Moved    bool
	Facing   Facing
}

// Velocity returns the horizontal velocity requested by the held keys.
// Left wins when both directions are held.
func Velocity(frame input.Frame) (float64, Facing) {
	switch {
	case frame.Held(input.ActionMoveLeft):
		return -PlayerSpeed, FacingLeft
	case frame.Held(input.ActionMoveRight):
		return PlayerSpeed, FacingRight
	}
	return 0, FacingUnchanged
}

// ResolveMovement computes the player's new x from the held keys.
func ResolveMovement(x float64, bounds Bounds, frame input.Frame) Motion {
	v, facing := Velocity(frame)
	return Step(x, v, facing, bounds)
}

// Step applies velocity v to x. A tentative position beyond the margin is
// discarded; otherwise it is clamped to the bounds.
func Step(x, v float64, facing Facing, bounds Bounds) Motion {
	m := Motion{X: x, Velocity: v, Facing: facing, Moved: v != 0}
	tentative := x + v
	if !bounds.WithinMargin(tentative) {
		m.Moved = false
		m.Velocity = 0
		return m
	}
	m.X = bounds.Clamp(tentative)
	return m
}
