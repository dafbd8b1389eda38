package renderer

import (
	"errors"

	"cyberharvest/pkg/game/machine"
)

// ErrNoHost is returned by Run when no host has been selected.
var ErrNoHost = errors.New("no renderer host selected")

// Host drives a Machine and presents its scene. Implementations include
// the Ebiten window and the terminal front end.
type Host interface {
	// Init prepares the host (window, colors, terminal) before the loop.
	Init()

	// Run ticks the machine until the player quits. It blocks.
	Run(m *machine.Machine) error

	// Name identifies the host in logs.
	Name() string
}

// Current holds the active host instance
var Current Host

// SetRenderer sets the active host
func SetRenderer(h Host) {
	Current = h
}

// Run initializes the current host and hands it the machine.
func Run(m *machine.Machine) error {
	if Current == nil {
		return ErrNoHost
	}
	Current.Init()
	return Current.Run(m)
}
