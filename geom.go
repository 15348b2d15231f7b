package corral

import "math"

// Vec2 is a 2D vector used for positions, velocities, sizes, and directions
// throughout the game. It is a value type: every assignment is a copy, so
// stored vectors can never be mutated through a returned value.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// Canonical vectors. The coordinate system has its origin at the center of
// the play field with Y increasing downward, so up is {0, -1}.
var (
	VecZero  = Vec2{0, 0}
	VecOne   = Vec2{1, 1}
	VecLeft  = Vec2{-1, 0}
	VecRight = Vec2{1, 0}
	VecUp    = Vec2{0, -1}
	VecDown  = Vec2{0, 1}
)

// InBounds reports whether p lies strictly inside the axis-aligned rectangle
// centered at center with full extents size. Points exactly on an edge are
// outside.
func InBounds(p, center, size Vec2) bool {
	return p.X > center.X-size.X/2 && p.X < center.X+size.X/2 &&
		p.Y > center.Y-size.Y/2 && p.Y < center.Y+size.Y/2
}
