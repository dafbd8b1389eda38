package deepdive

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"cyberharvest/pkg/engine/world"
	"cyberharvest/pkg/game/dialog"
)

// DivesDir is the root of the dive maps inside the asset filesystem.
const DivesDir = "dives"

// ErrEmptyMap is returned for a map file with no tiles.
var ErrEmptyMap = errors.New("dive map is empty")

// MapPath returns the resource path of a dive map, e.g. dives/map0-1.txt.
func MapPath(bank, level int) string {
	return path.Join(DivesDir, fmt.Sprintf("map%d-%d.txt", bank, level))
}

// Placed is one non-empty tile at its world position.
type Placed struct {
	Tile     Tile
	Row, Col int
	Box      world.Box
}

// Level is a parsed dive map. It is immutable once built.
type Level struct {
	Bank  int
	Index int
	Grid  *world.Grid

	tiles  []Placed
	byKind map[Tile][]int
}

// Load reads and parses the map for the given bank and level.
func Load(fsys fs.FS, bank, level int) (*Level, error) {
	name := MapPath(bank, level)
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("loading dive map %s: %w", name, err)
	}
	l, err := Parse(dialog.SplitLines(string(data)), bank, level)
	if err != nil {
		return nil, fmt.Errorf("parsing dive map %s: %w", name, err)
	}
	return l, nil
}

// Parse builds a level from map lines. The map is centered on the origin.
func Parse(lines []string, bank, level int) (*Level, error) {
	grid, err := world.ParseGrid(lines)
	if err != nil {
		return nil, ErrEmptyMap
	}

	l := &Level{Bank: bank, Index: level, Grid: grid, byKind: make(map[Tile][]int)}
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		t := TileFor(cell.Glyph)
		cell.GameData = t
		if t == TileEmpty {
			return
		}
		x, y := grid.WorldPosition(row, col, TileScale)
		l.byKind[t] = append(l.byKind[t], len(l.tiles))
		l.tiles = append(l.tiles, Placed{Tile: t, Row: row, Col: col, Box: world.Square(x, y, TileScale)})
	})
	return l, nil
}

// Tiles returns every non-empty tile in map order.
func (l *Level) Tiles() []Placed {
	return l.tiles
}

// Count returns the number of tiles of the given kind.
func (l *Level) Count(t Tile) int {
	return len(l.byKind[t])
}

// TileAt returns the tile of the cell at row/col.
func (l *Level) TileAt(row, col int) Tile {
	cell := l.Grid.GetCell(row, col)
	if cell == nil {
		return TileEmpty
	}
	t, _ := cell.GameData.(Tile)
	return t
}

// Hits returns the tiles of kind t overlapping box.
func (l *Level) Hits(t Tile, box world.Box) []Placed {
	var out []Placed
	for _, i := range l.byKind[t] {
		if l.tiles[i].Box.Overlaps(box) {
			out = append(out, l.tiles[i])
		}
	}
	return out
}

// Contains reports whether a world position lies on the map.
func (l *Level) Contains(x, y float64) bool {
	row, col := l.Grid.CellAt(x, y, TileScale)
	return l.Grid.IsValidPosition(row, col)
}

// Render draws the map as text with the actor marked at its cell.
func (l *Level) Render(a *Actor) []string {
	lines := make([][]rune, l.Grid.Rows())
	l.Grid.ForEachCell(func(row, col int, cell *world.Cell) {
		lines[row] = append(lines[row], l.TileAt(row, col).Glyph())
	})
	if a != nil {
		row, col := l.Grid.CellAt(a.X, a.Y, TileScale)
		if l.Grid.IsValidPosition(row, col) {
			lines[row][col] = 'P'
		}
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = string(line)
	}
	return out
}
