package devtools

import (
	"os"
	"strings"
	"testing"

	"cyberharvest/pkg/game/deepdive"
)

func TestDumpDiveMap(t *testing.T) {
	lvl, err := deepdive.Parse([]string{
		"#####",
		"#.~.#",
		"#@.$#",
		"#...#",
		"#####",
	}, 1, 2)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	path, err := DumpDiveMap(t.TempDir(), lvl, &deepdive.Actor{})
	if err != nil {
		t.Fatalf("DumpDiveMap() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	out := string(data)

	for _, want := range []string{
		"map: dives/map1-2.txt",
		"player_cell: 2,2",
		"#@P$#",
		"Portal:\n  row: 2 col: 3 world: 16,0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q\n%s", want, out)
		}
	}
}

func TestDumpDiveMap_NoLevel(t *testing.T) {
	if _, err := DumpDiveMap(t.TempDir(), nil, nil); err == nil {
		t.Error("DumpDiveMap(nil) error = nil, want error")
	}
}
