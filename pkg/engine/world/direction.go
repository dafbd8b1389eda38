package world

// Direction is one of the four grid headings.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// steps holds the row and column change of one move per direction.
var steps = [...][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

// Velocity returns the world-space step for this direction at the given
// scale. World y grows upward, so North is +y. Unknown directions do not
// move.
func (d Direction) Velocity(scale float64) (vx, vy float64) {
	if d < North || d > West {
		return 0, 0
	}
	s := steps[d]
	return float64(s[1]) * scale, float64(-s[0]) * scale
}
