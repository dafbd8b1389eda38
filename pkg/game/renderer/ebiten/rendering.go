package ebiten

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"cyberharvest/pkg/engine/scene"
	"cyberharvest/pkg/game/dialog"
	"cyberharvest/pkg/game/renderer"
	"cyberharvest/pkg/game/rooms"
)

// Draw renders the scene registry (Ebiten interface). World visuals are
// placed through the viewport; the textbox and portrait are screen-space
// UI drawn last.
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.machine == nil {
		return
	}

	var textbox, portrait *scene.Visual
	for _, v := range e.machine.Scene().Ordered() {
		switch {
		case v.Tag == rooms.TagTextbox:
			textbox = v
		case v.Tag == rooms.TagPortrait:
			portrait = v
		case v.Kind == scene.KindText:
			e.drawWorldText(screen, v)
		default:
			e.drawRect(screen, v)
		}
	}

	e.drawTextbox(screen, textbox, portrait)
	e.drawText(screen, renderer.Header(e.machine.Status()), panelMargin, panelMargin/2, colorSubtle, e.smallFace)
}

func (e *EbitenRenderer) drawRect(screen *ebiten.Image, v *scene.Visual) {
	x, y, w, h := e.viewport.Rect(v)
	col := v.Color
	if col == nil {
		col = colorSprite
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), col, false)

	if v.Kind == scene.KindTile && v.Text != "" && v.Text != " " {
		e.drawTextCentered(screen, v.Text, x+w/2, y, colorBackground, e.smallFace)
	}
	if v.Kind != scene.KindSprite || v.Anim == nil {
		return
	}

	// A stripe marks the facing side and bobs with the walk cycle.
	sw := max(w/6, 2)
	sx := x + w - sw
	if v.FlipX {
		sx = x
	}
	bob := float64(v.Anim.Frame%2) * 2
	vector.DrawFilledRect(screen, float32(sx), float32(y+h/4+bob), float32(sw), float32(h/6), colorFacing, false)
}

func (e *EbitenRenderer) drawWorldText(screen *ebiten.Image, v *scene.Visual) {
	if v.Text == "" {
		return
	}
	x, y, _, _ := e.viewport.Rect(v)
	e.drawTextCentered(screen, v.Text, x, y, colorSubtle, e.smallFace)
}

// drawTextbox draws the dialog panel along the bottom of the screen with
// the speaker portrait on its left.
func (e *EbitenRenderer) drawTextbox(screen *ebiten.Image, textbox, portrait *scene.Visual) {
	if textbox == nil || textbox.Text == "" {
		return
	}
	sw, sh := e.viewport.Width, e.viewport.Height
	px, py := panelMargin, sh-panelHeight-panelMargin
	pw := sw - 2*panelMargin
	drawPanel(screen, float32(px), float32(py), float32(pw), panelHeight, 10, 2, colorPanelBackground, colorPanelBorder)

	tx := px + panelPadding
	if portrait != nil {
		id, _ := strconv.Atoi(portrait.Text)
		vector.DrawFilledRect(screen, float32(tx), float32(py+(panelHeight-portraitSize)/2), portraitSize, portraitSize, portraitColor(id), false)
		tx += portraitSize + panelPadding
	}

	width := e.columns(px + pw - panelPadding - tx)
	for i, line := range renderer.Wrap(textbox.Text, width) {
		y := py + panelPadding + float64(i)*lineHeight
		if y+lineHeight > py+panelHeight {
			break
		}
		e.drawText(screen, line, tx, y, colorText, e.face)
	}
}

func portraitColor(id int) color.Color {
	switch id {
	case dialog.NoPortrait:
		return colorPortraitIdle
	case dialog.PlayerPortrait:
		return colorPortraitPlayer
	default:
		return colorPortraitNPC
	}
}
