package world

import (
	"errors"
	"math"
)

// ErrEmptyGrid is returned when a grid is built from no rows.
var ErrEmptyGrid = errors.New("grid has no rows")

// Grid represents a tile map with encapsulated cell storage
type Grid struct {
	cells [][]*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions, every cell blank
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// ParseGrid builds a grid from text lines, one cell per rune. Ragged lines
// are padded with blank cells up to the widest line.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cols := 0
	runes := make([][]rune, len(lines))
	for i, line := range lines {
		runes[i] = []rune(line)
		if len(runes[i]) > cols {
			cols = len(runes[i])
		}
	}
	if cols == 0 {
		return nil, ErrEmptyGrid
	}

	g := NewGrid(len(lines), cols)
	for row, line := range runes {
		for col, r := range line {
			g.cells[row][col].Glyph = r
		}
	}
	return g, nil
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Half returns the centering offset. The map is centered on its row count
// in both axes so square maps put their middle cell on the origin.
func (g *Grid) Half() int {
	return g.rows / 2
}

// WorldPosition returns the world-space center of a cell at the given
// tile scale. Row 0 is the top of the map, so y decreases with row.
func (g *Grid) WorldPosition(row, col int, scale float64) (x, y float64) {
	half := float64(g.Half())
	return (float64(col) - half) * scale, (half - float64(row)) * scale
}

// CellAt returns the row/col whose center is nearest the world position.
// The result may be outside the grid.
func (g *Grid) CellAt(x, y, scale float64) (row, col int) {
	half := float64(g.Half())
	col = int(math.Round(x/scale + half))
	row = int(math.Round(half - y/scale))
	return row, col
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]*Cell, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]*Cell, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells[currentRow][currentCol] = NewCell(currentRow, currentCol, 0)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Lines renders the grid back to text, one line per row, blank cells as
// spaces and trailing blanks trimmed.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	for row := 0; row < g.rows; row++ {
		line := make([]rune, 0, g.cols)
		for col := 0; col < g.cols; col++ {
			c := g.cells[row][col]
			if c.IsBlank() {
				line = append(line, ' ')
			} else {
				line = append(line, c.Glyph)
			}
		}
		end := len(line)
		for end > 0 && line[end-1] == ' ' {
			end--
		}
		out[row] = string(line[:end])
	}
	return out
}
