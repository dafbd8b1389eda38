// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"

	"cyberharvest/pkg/game/deepdive"
)

const mapDumpFilename = "dive-map.txt"

// WriteDiveMap writes a debug dump of a dive level: metadata, legend, the
// map with the actor overlaid and a list of every special tile.
func WriteDiveMap(f *os.File, lvl *deepdive.Level, a *deepdive.Actor) {
	row, col := -1, -1
	if a != nil {
		row, col = lvl.Grid.CellAt(a.X, a.Y, deepdive.TileScale)
	}

	fmt.Fprintln(f, "=== DIVE MAP DUMP ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "map: %s\n", deepdive.MapPath(lvl.Bank, lvl.Index))
	fmt.Fprintf(f, "data_bank: %d\n", lvl.Bank)
	fmt.Fprintf(f, "level: %d\n", lvl.Index)
	fmt.Fprintf(f, "grid_rows: %d\n", lvl.Grid.Rows())
	fmt.Fprintf(f, "grid_cols: %d\n", lvl.Grid.Cols())
	fmt.Fprintf(f, "coordinate_system: row,col (0-based); world x,y centered, y up\n")
	if a != nil {
		fmt.Fprintf(f, "player_world: %.0f,%.0f\n", a.X, a.Y)
		fmt.Fprintf(f, "player_velocity: %.0f,%.0f\n", a.VX, a.VY)
	}
	fmt.Fprintf(f, "player_cell: %d,%d\n", row, col)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend ---")
	fmt.Fprintln(f, "# = wall  ~ = lava  @ = data port  $ = portal  P = player")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Map ---")
	for _, line := range lvl.Render(a) {
		fmt.Fprintln(f, line)
	}
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Tiles ---")
	for _, kind := range []deepdive.Tile{deepdive.TilePortal, deepdive.TileDataPort, deepdive.TileLava} {
		fmt.Fprintf(f, "%s:\n", kind)
		for _, t := range lvl.Tiles() {
			if t.Tile != kind {
				continue
			}
			fmt.Fprintf(f, "  row: %d col: %d world: %.0f,%.0f\n", t.Row, t.Col, t.Box.X, t.Box.Y)
		}
	}
}

// DumpDiveMap writes the dump to dive-map.txt in dir (the working
// directory when empty) and returns the absolute path.
func DumpDiveMap(dir string, lvl *deepdive.Level, a *deepdive.Actor) (string, error) {
	if lvl == nil {
		return "", fmt.Errorf("no dive level loaded")
	}

	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	WriteDiveMap(f, lvl, a)
	return absPath, nil
}
