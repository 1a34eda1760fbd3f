package game

import "math"

// Vec is a 2D vector in court space.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing the same way. A zero vector
// stays zero rather than dividing by zero.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// WithLen rescales v to the given magnitude, preserving direction.
// A zero vector is returned unchanged.
func (v Vec) WithLen(l float64) Vec {
	return v.Normalize().Scale(l)
}

// Body is a kinematic position/velocity pair.
type Body struct {
	Pos Vec
	Vel Vec
}

// Integrate advances position by velocity over dt seconds.
func (b *Body) Integrate(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
