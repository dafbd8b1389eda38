package input

import (
	"github.com/zyedidia/generic/mapset"
)

// Action represents a high-level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown

	// Interaction
	ActionInteract // Talk / continue story text (E, Space)
	ActionForward  // Enter the door the player is standing at (W)

	// Meta / UI
	ActionMenu
	ActionQuit

	// Developer
	ActionDebugDeepDive // Force a deep dive from an overworld room (P)
	ActionDebugMapDump  // Dump the current dive map to disk (F8)
)

// bindings maps raw key codes to actions. A code may drive more than one
// action: W is both "up" inside a dive and "forward" in the overworld.
var bindings = map[string][]Action{
	"a":           {ActionMoveLeft},
	"arrow_left":  {ActionMoveLeft},
	"d":           {ActionMoveRight},
	"arrow_right": {ActionMoveRight},
	"w":           {ActionMoveUp, ActionForward},
	"arrow_up":    {ActionMoveUp, ActionForward},
	"s":           {ActionMoveDown},
	"arrow_down":  {ActionMoveDown},

	"e":     {ActionInteract},
	"space": {ActionInteract},

	"escape": {ActionMenu},
	"q":      {ActionQuit},

	"p":  {ActionDebugDeepDive},
	"f8": {ActionDebugMapDump},
}

// MapToActions applies the bindings to a raw code.
func MapToActions(code string) []Action {
	return bindings[code]
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionInteract:
		return "Interact"
	case ActionForward:
		return "Forward"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionDebugDeepDive:
		return "Force Deep Dive"
	case ActionDebugMapDump:
		return "Dump Dive Map"
	default:
		return "None"
	}
}

// Frame is the polled input state for a single tick: which actions are
// held down and which went down on this tick.
type Frame struct {
	held    mapset.Set[Action]
	pressed mapset.Set[Action]
}

// NewFrame creates an empty frame ready to receive key codes.
func NewFrame() Frame {
	return Frame{
		held:    mapset.New[Action](),
		pressed: mapset.New[Action](),
	}
}

// Hold records a key code that is down on this tick.
func (f Frame) Hold(code string) {
	for _, a := range MapToActions(code) {
		f.held.Put(a)
	}
}

// Press records a key code that went down on this tick. A pressed key is
// also held.
func (f Frame) Press(code string) {
	for _, a := range MapToActions(code) {
		f.held.Put(a)
		f.pressed.Put(a)
	}
}

// Held reports whether the action is down on this tick.
func (f Frame) Held(a Action) bool {
	return f.held.Has(a)
}

// JustPressed reports whether the action went down on this tick.
func (f Frame) JustPressed(a Action) bool {
	return f.pressed.Has(a)
}

// Empty reports whether nothing is held.
func (f Frame) Empty() bool {
	return f.held.Size() == 0
}

// Pressed is a convenience for tests and the terminal driver: a frame in
// which every given code went down this tick.
func Pressed(codes ...string) Frame {
	f := NewFrame()
	for _, c := range codes {
		f.Press(c)
	}
	return f
}

// Holding builds a frame in which every given code is held but none was
// pressed this tick.
func Holding(codes ...string) Frame {
	f := NewFrame()
	for _, c := range codes {
		f.Hold(c)
	}
	return f
}
