package geom

import (
	"math"
	"testing"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(3, 4)
	b := NewVec2(-1, 2)

	if got := a.Add(b); got != (Vec2{2, 6}) {
		t.Errorf("Add: expected {2 6}, got %v", got)
	}
	if got := a.Sub(b); got != (Vec2{4, 2}) {
		t.Errorf("Sub: expected {4 2}, got %v", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale: expected {6 8}, got %v", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot: expected 5, got %v", got)
	}
}

func TestVec2_Length(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		expected float64
	}{
		{"3-4-5 triangle", Vec2{3, 4}, 5},
		{"unit x", Vec2{1, 0}, 1},
		{"zero", Vec2{0, 0}, 0},
		{"negative components", Vec2{-3, -4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Length(); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("expected length %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec2_Normalize(t *testing.T) {
	v := NewVec2(3, 4).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("expected unit length, got %v", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("expected {0.6 0.8}, got %v", v)
	}
}

func TestVec2_NormalizeZero(t *testing.T) {
	// The zero vector has no direction; Normalize must return it unchanged
	// rather than dividing by zero.
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("expected zero vector, got %v", got)
	}
}
