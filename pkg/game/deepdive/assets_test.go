package deepdive

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyberharvest/pkg/engine/input"
)

type point struct{ x, y float64 }

// slide pushes an idle actor in one direction until it stops, returning
// the last outcome that carried a request, if any.
func slide(l *Level, a Actor, key string) (Actor, Outcome) {
	a.Steer(input.Pressed(key))
	var c Counters
	for i := 0; i < 100 && !a.Idle(); i++ {
		out := l.Advance(&a, &c)
		if out.HasRequest {
			return a, out
		}
	}
	return a, Outcome{}
}

// solvable searches the slides reachable from the origin for an exit.
func solvable(l *Level) bool {
	seen := map[point]bool{{0, 0}: true}
	queue := []Actor{{}}
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		for _, key := range []string{"a", "w", "s", "d"} {
			next, out := slide(l, a, key)
			switch {
			case out.HitDataPort || out.HitPortal:
				return true
			case out.HasRequest:
				continue
			}
			p := point{next.X, next.Y}
			if !seen[p] {
				seen[p] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}

func TestShippedMaps(t *testing.T) {
	assets := os.DirFS("../../../assets")
	for bank := 0; bank <= MaxBank; bank++ {
		for level := 0; level <= MaxLevel; level++ {
			t.Run(MapPath(bank, level), func(t *testing.T) {
				l, err := Load(assets, bank, level)
				require.NoError(t, err)

				half := l.Grid.Half()
				assert.Equal(t, TileEmpty, l.TileAt(half, half), "the actor starts on an empty cell")

				if level == MaxLevel {
					assert.Positive(t, l.Count(TilePortal), "the last level leads out")
				} else {
					assert.Positive(t, l.Count(TileDataPort), "inner levels lead deeper")
				}
				assert.True(t, solvable(l), "no exit reachable from the start")
			})
		}
	}
}
