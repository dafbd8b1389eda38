package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "cyberharvest/pkg/engine/input"
)

// keyCodes maps Ebiten keys onto the raw codes the input bindings use.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyA:          "a",
	ebiten.KeyD:          "d",
	ebiten.KeyW:          "w",
	ebiten.KeyS:          "s",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyE:          "e",
	ebiten.KeySpace:      "space",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyQ:          "q",
	ebiten.KeyP:          "p",
	ebiten.KeyF8:         "f8",
}

// pollFrame reads the keyboard into a frame for this tick.
func pollFrame() engineinput.Frame {
	frame := engineinput.NewFrame()
	for key, code := range keyCodes {
		switch {
		case inpututil.IsKeyJustPressed(key):
			frame.Press(code)
		case ebiten.IsKeyPressed(key):
			frame.Hold(code)
		}
	}
	return frame
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Infof("main window opened (%dx%d)", w, h)
	}

	frame := pollFrame()
	if frame.JustPressed(engineinput.ActionQuit) || ebiten.IsWindowBeingClosed() {
		e.log.Info("quit requested")
		return ebiten.Termination
	}
	return e.machine.Tick(frame)
}
