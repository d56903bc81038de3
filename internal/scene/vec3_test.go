package scene

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y is z", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y cross z is x", Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"anticommutes", Vec3{0, 1, 0}, Vec3{1, 0, 0}, Vec3{0, 0, -1}},
		{"parallel is zero", Vec3{2, 2, 2}, Vec3{1, 1, 1}, Vec3{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("%v x %v = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if math.Abs(v.Norm()-1) > 1e-15 {
		t.Errorf("|normalized| = %g, want 1", v.Norm())
	}
	if v != (Vec3{0.6, 0.8, 0}) {
		t.Errorf("normalized = %v, want {0.6 0.8 0}", v)
	}

	// Zero vector stays zero instead of dividing by zero.
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize(zero) = %v, want zero", z)
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 5, 6}
	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Vec3{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %g, want 32", got)
	}
}
