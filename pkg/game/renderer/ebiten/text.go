package ebiten

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

func (e *EbitenRenderer) loadFonts() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return err
	}
	e.monoFontSource = src
	e.face = &text.GoTextFace{Source: src, Size: baseFontSize * e.viewport.Scale}
	e.smallFace = &text.GoTextFace{Source: src, Size: baseFontSize * 0.75 * e.viewport.Scale}
	return nil
}

// drawText draws str with its top-left corner at (x, y). Without a loaded
// font the built-in debug font is used and col is ignored.
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawTextCentered draws str centered horizontally on cx.
func (e *EbitenRenderer) drawTextCentered(screen *ebiten.Image, str string, cx, y float64, col color.Color, face *text.GoTextFace) {
	w := float64(len(str) * 6)
	if face != nil {
		w, _ = text.Measure(str, face, 0)
	}
	e.drawText(screen, str, cx-w/2, y, col, face)
}

// columns returns how many monospace characters fit in width pixels.
func (e *EbitenRenderer) columns(width float64) int {
	cw := 6.0
	if e.face != nil {
		cw, _ = text.Measure("M", e.face, 0)
	}
	if cw <= 0 {
		return 0
	}
	return int(width / cw)
}
