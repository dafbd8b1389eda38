package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"

	"cyberharvest/pkg/game/config"
	"cyberharvest/pkg/game/machine"
	"cyberharvest/pkg/game/renderer"
)

// EbitenRenderer hosts the game in a window.
type EbitenRenderer struct {
	cfg      config.Window
	tickRate int

	machine  *machine.Machine
	viewport renderer.Viewport
	log      *logrus.Entry

	monoFontSource *text.GoTextFaceSource
	face           *text.GoTextFace
	smallFace      *text.GoTextFace

	windowOpenedLogged bool
}
