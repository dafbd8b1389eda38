// Package terminal reports the size of the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// maxTextWidth caps the wrapped dialog width on very wide terminals.
	maxTextWidth = 72
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// TextWidth returns the column count dialog text should be wrapped to.
func TextWidth() int {
	width, _ := GetSize()
	width -= 4
	if width > maxTextWidth {
		return maxTextWidth
	}
	if width < 20 {
		return 20
	}
	return width
}
