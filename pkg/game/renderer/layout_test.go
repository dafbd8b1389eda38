package renderer

import (
	"testing"

	"cyberharvest/pkg/engine/scene"
)

func TestViewportRect(t *testing.T) {
	vp := Viewport{Width: 1280, Height: 720, Scale: 1}

	x, y, w, h := vp.Rect(&scene.Visual{W: 1280, H: 720})
	if x != 0 || y != 0 || w != 1280 || h != 720 {
		t.Errorf("full-screen visual at origin: got %v,%v %vx%v", x, y, w, h)
	}

	// y up: a visual below the origin lands in the lower half
	_, y, _, _ = vp.Rect(&scene.Visual{Y: -160, W: 32, H: 64})
	if y != 360+160-32 {
		t.Errorf("expected y=%v, got %v", 360+160-32, y)
	}

	vp.Scale = 2
	x, _, w, _ = vp.Rect(&scene.Visual{X: 10, W: 16, H: 16})
	if w != 32 || x != 640+20-16 {
		t.Errorf("scaled rect: x=%v w=%v", x, w)
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		x    float64
		want int
	}{
		{-100, 0},
		{-200, 0},
		{100, 10},
		{500, 10},
		{0, 5},
	}
	for _, tt := range tests {
		if got := Column(tt.x, -100, 100, 11); got != tt.want {
			t.Errorf("Column(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
	if Column(5, 0, 0, 10) != 0 {
		t.Error("degenerate track should map to column 0")
	}
}
