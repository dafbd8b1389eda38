package renderer

import "cyberharvest/pkg/engine/scene"

// Viewport maps scene coordinates onto a screen. The scene origin sits at
// the center of the screen and y grows upwards; visuals are centered on
// their position.
type Viewport struct {
	Width, Height float64
	Scale         float64
}

// Rect returns the top-left corner and size of v on screen.
func (vp Viewport) Rect(v *scene.Visual) (x, y, w, h float64) {
	s := vp.Scale
	if s <= 0 {
		s = 1
	}
	w, h = v.W*s, v.H*s
	x = vp.Width/2 + v.X*s - w/2
	y = vp.Height/2 - v.Y*s - h/2
	return x, y, w, h
}

// Column maps a scene x onto one of cols character columns spanning
// [min, max]. The result is clamped to the track.
func Column(x, min, max float64, cols int) int {
	if cols <= 1 || max <= min {
		return 0
	}
	c := int((x - min) / (max - min) * float64(cols-1))
	if c < 0 {
		return 0
	}
	if c > cols-1 {
		return cols - 1
	}
	return c
}
