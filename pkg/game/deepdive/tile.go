// Package deepdive implements the tile maze of the Deep Dive: map parsing,
// grid-stepped movement and the collision rules that drive level progress.
package deepdive

// TileScale is the side length of one tile in world units.
const TileScale = 16.0

// Tile is the type of a map cell.
type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TileLava
	TileDataPort
	TilePortal
)

// TileFor maps a map glyph to its tile. Unknown glyphs are empty.
func TileFor(r rune) Tile {
	switch r {
	case '#':
		return TileWall
	case '~':
		return TileLava
	case '@':
		return TileDataPort
	case '$':
		return TilePortal
	default:
		return TileEmpty
	}
}

// Glyph returns the map character for the tile.
func (t Tile) Glyph() rune {
	switch t {
	case TileWall:
		return '#'
	case TileLava:
		return '~'
	case TileDataPort:
		return '@'
	case TilePortal:
		return '$'
	default:
		return ' '
	}
}

func (t Tile) String() string {
	switch t {
	case TileWall:
		return "Wall"
	case TileLava:
		return "Lava"
	case TileDataPort:
		return "DataPort"
	case TilePortal:
		return "Portal"
	default:
		return "Empty"
	}
}
