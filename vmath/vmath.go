// Package vmath holds the float64 vector and grid traversal math shared by the
// camera, renderer and entity simulation.
package vmath

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
