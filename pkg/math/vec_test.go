package math

import (
	gomath "math"
	"testing"
)

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", Vec3{1, 0, 0}, Vec3{0, 1, 0}, Vec3{0, 0, 1}},
		{"y cross z", Vec3{0, 1, 0}, Vec3{0, 0, 1}, Vec3{1, 0, 0}},
		{"parallel", Vec3{2, 0, 0}, Vec3{5, 0, 0}, Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); got != tt.want {
				t.Errorf("Cross() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}.Normalize()
	if gomath.Abs(float64(v.Length())-1) > 1e-6 {
		t.Errorf("normalized length = %f, want 1", v.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero", zero)
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot() = %f, want 32", got)
	}
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length() = %f, want 5", got)
	}
}

func TestVec3_Distance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{1, 1, 6}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance() = %f, want 5", got)
	}
}
