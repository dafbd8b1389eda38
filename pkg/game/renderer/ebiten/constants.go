// Package ebiten provides an Ebiten-based 2D graphical host for CyberHarvest.
package ebiten

import "image/color"

// Color palette, neon on near-black
var (
	colorBackground      = color.RGBA{10, 10, 22, 255}
	colorSprite          = color.RGBA{200, 200, 220, 255} // Fallback for visuals without a color
	colorFacing          = color.RGBA{255, 255, 255, 200}
	colorText            = color.RGBA{200, 210, 245, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255}
	colorPanelBackground = color.RGBA{20, 16, 40, 230}
	colorPanelBorder     = color.RGBA{255, 60, 200, 255}
	colorPortraitIdle    = color.RGBA{60, 60, 90, 255}
	colorPortraitPlayer  = color.RGBA{32, 224, 224, 255}
	colorPortraitNPC     = color.RGBA{192, 64, 192, 255}
)

const (
	baseFontSize = 18.0
	lineHeight   = 24.0
	panelHeight  = 150.0
	panelMargin  = 20.0
	panelPadding = 16.0
	portraitSize = 96.0
)
