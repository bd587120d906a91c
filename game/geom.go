package game

import "math"

// Vec2i is an integer pair used for world positions and sizes
type Vec2i struct {
	X, Y int
}

// Sub returns v - o
func (v Vec2i) Sub(o Vec2i) Vec2i {
	return Vec2i{X: v.X - o.X, Y: v.Y - o.Y}
}

// Float converts v to a float vector
func (v Vec2i) Float() Vec2f {
	return Vec2f{X: float64(v.X), Y: float64(v.Y)}
}

// Vec2f is a floating point pair used for directions
type Vec2f struct {
	X, Y float64
}

// Normalize scales v to unit length. A vector with either component
// exactly zero is returned unchanged, so (5, 0) stays (5, 0).
func Normalize(v Vec2f) Vec2f {
	if v.X == 0 || v.Y == 0 {
		return v
	}
	length := math.Sqrt(v.X*v.X + v.Y*v.Y)
	return Vec2f{X: v.X / length, Y: v.Y / length}
}

// BoxesOverlap reports whether two axis-aligned boxes overlap with positive
// area. Positions are top-left corners. Touching edges do not overlap.
func BoxesOverlap(posA, posB, sizeA, sizeB Vec2i) bool {
	return posA.X+sizeA.X > posB.X &&
		posA.Y+sizeA.Y > posB.Y &&
		posA.X < posB.X+sizeB.X &&
		posA.Y < posB.Y+sizeB.Y
}

// advance moves pos along dir at speed for dt seconds. The delta is
// truncated every call, so slow movers can stall and fast ones drift.
func advance(pos Vec2i, dir Vec2f, speed, dt float64) Vec2i {
	return Vec2i{
		X: pos.X + int(dir.X*speed*dt),
		Y: pos.Y + int(dir.Y*speed*dt),
	}
}
