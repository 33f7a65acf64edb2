package vmath

import (
	"math"
)

// Vec2 is a float64 2D vector value type
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Div divides both components by s, zero-safe (returns zero vector for s == 0)
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the z component of the 3D cross product (2D determinant)
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSq())
}

// Normalize returns the unit vector, zero vector stays zero
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// WithMagnitude rescales v to length m, zero vector stays zero
func (v Vec2) WithMagnitude(m float64) Vec2 {
	return v.Normalize().Scale(m)
}

// Rotate rotates counter-clockwise by angle radians
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Perpendicular returns (y, -x), the clockwise right-hand normal
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{v.Y, -v.X}
}

// Distance returns Euclidean distance between two points
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Magnitude()
}

// ApproxEqual compares component-wise within eps
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// Cell returns the integer grid cell containing the point
func (v Vec2) Cell() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}
