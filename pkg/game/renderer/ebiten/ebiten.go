package ebiten

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"cyberharvest/pkg/game/config"
	"cyberharvest/pkg/game/machine"
	"cyberharvest/pkg/game/renderer"
	"cyberharvest/pkg/logger"
)

// New creates a window host for the given settings.
func New(cfg config.Config) *EbitenRenderer {
	scale := cfg.Window.Scale
	if scale <= 0 {
		scale = 1
	}
	return &EbitenRenderer{
		cfg:      cfg.Window,
		tickRate: cfg.TickRate,
		viewport: renderer.Viewport{
			Width:  float64(cfg.Window.Width),
			Height: float64(cfg.Window.Height),
			Scale:  scale,
		},
		log: logger.Log.WithField("host", "ebiten"),
	}
}

// Name implements renderer.Host.
func (e *EbitenRenderer) Name() string { return "ebiten" }

// Init sets up the window and loads the font.
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowTitle(e.cfg.Title)
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)

	if err := e.loadFonts(); err != nil {
		e.log.WithError(err).Warn("falling back to the debug font")
	}
}

// Run implements renderer.Host. The game advances exactly once per
// Ebiten update.
func (e *EbitenRenderer) Run(m *machine.Machine) error {
	if err := m.Start(); err != nil {
		return fmt.Errorf("starting game: %w", err)
	}
	e.machine = m
	ebiten.SetTPS(e.tickRate)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Layout implements ebiten.Game. The logical screen never changes size.
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}
