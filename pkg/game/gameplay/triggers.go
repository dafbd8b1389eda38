package gameplay

import "math"

// Zone is an open x interval that activates a door or NPC prompt.
type Zone struct {
	Min, Max float64
}

// Between returns the zone lo < x < hi.
func Between(lo, hi float64) Zone {
	return Zone{Min: lo, Max: hi}
}

// Above returns the zone x > lo.
func Above(lo float64) Zone {
	return Zone{Min: lo, Max: math.Inf(1)}
}

// Below returns the zone x < hi.
func Below(hi float64) Zone {
	return Zone{Min: math.Inf(-1), Max: hi}
}

// Contains reports whether x is strictly inside the zone.
func (z Zone) Contains(x float64) bool {
	return x > z.Min && x < z.Max
}
