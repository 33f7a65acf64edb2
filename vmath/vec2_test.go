package vmath

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestVec2Arithmetic(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -4)

	if got := a.Add(b); got != V2(4, -2) {
		t.Errorf("Expected Add (4,-2), got %v", got)
	}
	if got := a.Sub(b); got != V2(-2, 6) {
		t.Errorf("Expected Sub (-2,6), got %v", got)
	}
	if got := a.Scale(2.5); got != V2(2.5, 5) {
		t.Errorf("Expected Scale (2.5,5), got %v", got)
	}
	if got := b.Div(2); got != V2(1.5, -2) {
		t.Errorf("Expected Div (1.5,-2), got %v", got)
	}
	if got := b.Div(0); got != (Vec2{}) {
		t.Errorf("Expected Div by zero to return zero vector, got %v", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Expected Dot -5, got %f", got)
	}
	if got := b.Magnitude(); got != 5 {
		t.Errorf("Expected Magnitude 5, got %f", got)
	}
}

// TestNormalizeZero verifies the zero vector normalizes to itself without NaN
func TestNormalizeZero(t *testing.T) {
	n := Vec2{}.Normalize()
	if n != (Vec2{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Normalize produced NaN")
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec2{V2(3, 4), V2(-0.001, 0), V2(1e6, -1e6)} {
		if m := v.Normalize().Magnitude(); math.Abs(m-1) > eps {
			t.Errorf("Expected unit magnitude for %v, got %f", v, m)
		}
	}
}

func TestRotate(t *testing.T) {
	v := V2(1, 0)

	if got := v.Rotate(0); !got.ApproxEqual(v, eps) {
		t.Errorf("Expected rotate(0) identity, got %v", got)
	}
	if got := v.Rotate(math.Pi / 2); !got.ApproxEqual(V2(0, 1), eps) {
		t.Errorf("Expected (0,1) after quarter turn, got %v", got)
	}

	w := V2(-0.3, 0.66)
	for _, theta := range []float64{0.01, 0.12, 1.5, -2.7, math.Pi} {
		back := w.Rotate(theta).Rotate(-theta)
		if !back.ApproxEqual(w, eps) {
			t.Errorf("Rotate(%f) then inverse drifted: %v vs %v", theta, back, w)
		}
		if math.Abs(w.Rotate(theta).Magnitude()-w.Magnitude()) > eps {
			t.Errorf("Rotate(%f) changed magnitude", theta)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	d := V2(-1, 0)
	p := d.Perpendicular()
	if p != V2(0, 1) {
		t.Errorf("Expected (0,1), got %v", p)
	}
	if d.Dot(p) != 0 {
		t.Error("Expected perpendicular dot product 0")
	}
}

func TestCell(t *testing.T) {
	tests := []struct {
		v      Vec2
		cx, cy int
	}{
		{V2(1.5, 2.5), 1, 2},
		{V2(0.0, 0.999), 0, 0},
		{V2(-0.5, 3), -1, 3},
	}
	for _, tt := range tests {
		x, y := tt.v.Cell()
		if x != tt.cx || y != tt.cy {
			t.Errorf("Cell(%v): expected (%d,%d), got (%d,%d)", tt.v, tt.cx, tt.cy, x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 1) != 1 || Clamp(-5, 0, 1) != 0 || Clamp(0.5, 0, 1) != 0.5 {
		t.Error("Clamp returned unexpected value")
	}
	if ClampInt(12, 0, 10) != 10 || ClampInt(-1, 0, 10) != 0 {
		t.Error("ClampInt returned unexpected value")
	}
}
