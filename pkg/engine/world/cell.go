// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Cell represents a single cell/tile in the grid.
// This is a generic engine primitive that can be extended by games.
type Cell struct {
	// Grid position
	Row int
	Col int

	// Glyph is the character the cell was built from ('\x00' for padding
	// cells created to square off ragged map lines).
	Glyph rune

	// GameData holds game-specific extensions.
	// Games should cast this to their specific type.
	GameData interface{}
}

// NewCell creates a new cell at the given position
func NewCell(row, col int, glyph rune) *Cell {
	return &Cell{
		Row:   row,
		Col:   col,
		Glyph: glyph,
	}
}

// IsBlank returns true if the cell carries no glyph or whitespace
func (c *Cell) IsBlank() bool {
	return c == nil || c.Glyph == 0 || c.Glyph == ' '
}
