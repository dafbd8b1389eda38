package world

// Box is an axis-aligned bounding box given by its center and full size.
type Box struct {
	X, Y float64
	W, H float64
}

// Square returns a box of equal width and height centered on (x, y).
func Square(x, y, size float64) Box {
	return Box{X: x, Y: y, W: size, H: size}
}

// Overlaps reports whether the two boxes intersect with positive area.
// Boxes that only share an edge do not overlap, so neighbouring tiles on a
// grid never collide with each other.
func (b Box) Overlaps(o Box) bool {
	aMinX, aMaxX := b.X-b.W/2, b.X+b.W/2
	aMinY, aMaxY := b.Y-b.H/2, b.Y+b.H/2
	bMinX, bMaxX := o.X-o.W/2, o.X+o.W/2
	bMinY, bMaxY := o.Y-o.H/2, o.Y+o.H/2
	return aMinX < bMaxX && aMaxX > bMinX && aMinY < bMaxY && aMaxY > bMinY
}
