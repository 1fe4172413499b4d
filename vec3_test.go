package curve3

import (
	"math"
	"slices"
	"testing"
)

func TestVec3Arithmetic(t *testing.T) {
	diff(t, Vec(1, 2, 3).Add(Vec(-1, 0, 1)), Vec(0, 2, 4))
	diff(t, Vec(1, 2, 3).Sub(Vec(1, 2, 3)), Vec3{})
	diff(t, Vec(1, -2, 0.5).Mul(2), Vec(2, -4, 1))
	if h := Vec(2, 3, 6).Hypot(); h != 7 {
		t.Errorf("got magnitude %v, want 7", h)
	}
}

func TestVec3Compare(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want int
	}{
		{Vec(0, 0, 0), Vec(0, 0, 0), 0},
		{Vec(0, 9, 9), Vec(1, 0, 0), -1},
		{Vec(1, 0, 9), Vec(1, 1, 0), -1},
		{Vec(1, 1, 1), Vec(1, 1, 0), 1},
		{Vec(math.NaN(), 0, 0), Vec(-math.MaxFloat64, 0, 0), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Compare(tt.a); got != -tt.want {
			t.Errorf("%v.Compare(%v) = %d, want %d", tt.b, tt.a, got, -tt.want)
		}
		if got := tt.a.Less(tt.b); got != (tt.want < 0) {
			t.Errorf("%v.Less(%v) = %t", tt.a, tt.b, got)
		}
	}

	vs := []Vec3{Vec(1, 0, 0), Vec(0, 1, 1), Vec(0, 1, 0), Vec(0, 0, 5)}
	slices.SortFunc(vs, Vec3.Compare)
	diff(t, []Vec3{Vec(0, 0, 5), Vec(0, 1, 0), Vec(0, 1, 1), Vec(1, 0, 0)}, vs)
}

func TestVec3String(t *testing.T) {
	if s := Vec(1, -2.5, 0).String(); s != "(1, -2.5, 0)" {
		t.Errorf("got %q", s)
	}
}

func TestVec3NaNInf(t *testing.T) {
	if Vec(1, 2, 3).IsNaN() || Vec(1, 2, 3).IsInf() {
		t.Error("finite vector reported as NaN or Inf")
	}
	if !Vec(0, 0, math.NaN()).IsNaN() {
		t.Error("expected NaN")
	}
	if !Vec(0, math.Inf(-1), 0).IsInf() {
		t.Error("expected Inf")
	}
	if !Vec(1, 2, 3).IsFinite() || Vec(math.NaN(), 0, 0).IsFinite() || Vec(0, 0, math.Inf(1)).IsFinite() {
		t.Error("IsFinite disagrees with IsNaN and IsInf")
	}
}
