package curve3

import (
	"math"
	"testing"
)

var testCurves = []Curve{
	NewCircle("c", 1, Circle{Center: Vec(1, 2, 3), Radius: 2}),
	NewCircle("c0", 2, Circle{Radius: 0}),
	NewEllipse("e", 3, Ellipse{Center: Vec(-1, 0, 4), MinorRadius: 1.5, MajorRadius: 4}),
	NewHelix("h", 4, Helix{Center: Vec(0, 0, -2), Radius: 3, Step: 5}),
	NewHelix("hneg", 5, Helix{Center: Vec(1, 1, 1), Radius: 0.5, Step: -2}),
	NewHelix("hflat", 6, Helix{Radius: 1, Step: 0}),
}

var sampleParams = []float64{-7.5, -math.Pi, -1, 0, 0.3, math.Pi / 4, 2, math.Pi, 2 * math.Pi, 13}

func TestCircleAtZero(t *testing.T) {
	for _, r := range []float64{0, 0.5, 2, 100} {
		o := Vec(3, -1, 7)
		c := NewCircle("c", 1, Circle{Center: o, Radius: r})
		diff(t, o.Add(Vec(r, 0, 0)), c.Point(0))
		diff(t, Vec(0, r, 0), c.Derivative(0))
	}
}

func TestEllipseAxes(t *testing.T) {
	e := Ellipse{Center: Vec(1, 1, 1), MinorRadius: 2, MajorRadius: 5}
	diff(t, Vec(6, 1, 1), e.Point(0), approx)
	diff(t, Vec(1, 3, 1), e.Point(math.Pi/2), approx)
	diff(t, Vec(0, 2, 0), e.Derivative(0), approx)
	diff(t, Vec(-5, 0, 0), e.Derivative(math.Pi/2), approx)
}

func TestHelixFullTurn(t *testing.T) {
	for _, step := range []float64{0, 1, 5, -3.25} {
		for _, r := range []float64{0, 1, 10} {
			h := NewHelix("h", 1, Helix{Center: Vec(2, 4, 8), Radius: r, Step: step})
			got := h.Point(2 * math.Pi).Sub(h.Point(0))
			diff(t, Vec(0, 0, step), got, approx)
		}
	}
}

func TestHelixDerivativeRise(t *testing.T) {
	h := Helix{Radius: 1, Step: 4 * math.Pi}
	for _, p := range sampleParams {
		if dz := h.Derivative(p).Z; dz != 2 {
			t.Errorf("Derivative(%v).Z = %v, want 2", p, dz)
		}
	}
}

func TestDerivativeMatchesFiniteDifference(t *testing.T) {
	const h = 1e-6
	for _, c := range testCurves {
		for _, p := range sampleParams {
			fd := c.Point(p + h).Sub(c.Point(p - h)).Mul(1 / (2 * h))
			if d := fd.Sub(c.Derivative(p)).Hypot(); d > 1e-6 {
				t.Errorf("%v: derivative at %v is %v, finite difference gives %v", c, p, c.Derivative(p), fd)
			}
		}
	}
}

func TestEvaluationIsPure(t *testing.T) {
	for _, c := range testCurves {
		for _, p := range sampleParams {
			p1, d1 := c.Point(p), c.Derivative(p)
			p2, d2 := c.Point(p), c.Derivative(p)
			if math.Float64bits(p1.X) != math.Float64bits(p2.X) ||
				math.Float64bits(p1.Y) != math.Float64bits(p2.Y) ||
				math.Float64bits(p1.Z) != math.Float64bits(p2.Z) ||
				d1 != d2 {
				t.Errorf("%v: evaluation at %v is not repeatable", c, p)
			}
		}
	}
}

func TestPlanarCurvesArePeriodic(t *testing.T) {
	for _, c := range testCurves {
		if c.Kind() == HelixKind {
			continue
		}
		for _, p := range sampleParams {
			diff(t, c.Point(p), c.Point(p+2*math.Pi), approx)
			diff(t, c.Point(p), c.Point(p-4*math.Pi), approx)
		}
	}
}

func TestCurveMatchesVariant(t *testing.T) {
	for _, c := range testCurves {
		var v ParametricCurve3
		switch c.Kind() {
		case CircleKind:
			v, _ = c.Circle()
		case EllipseKind:
			v, _ = c.Ellipse()
		case HelixKind:
			v, _ = c.Helix()
		}
		for _, p := range sampleParams {
			diff(t, v.Point(p), c.Point(p))
			diff(t, v.Derivative(p), c.Derivative(p))
		}
	}
}

func TestCurveAccessors(t *testing.T) {
	c := Ellipse{Center: Vec(1, 2, 3), MinorRadius: 1, MajorRadius: 2}.Curve("ell", 42)
	if c.Name() != "ell" || c.ID() != 42 || c.Origin() != Vec(1, 2, 3) || c.Kind() != EllipseKind {
		t.Errorf("unexpected accessors for %v", c)
	}
	if _, ok := c.Circle(); ok {
		t.Error("ellipse reported as circle")
	}
	if _, ok := c.Helix(); ok {
		t.Error("ellipse reported as helix")
	}
	e, ok := c.Ellipse()
	if !ok {
		t.Fatal("ellipse not reported as ellipse")
	}
	diff(t, Ellipse{Center: Vec(1, 2, 3), MinorRadius: 1, MajorRadius: 2}, e)

	if s := c.String(); s != `Ellipse{ID: 42, Name: "ell"}` {
		t.Errorf("got %q", s)
	}
}

func TestZeroCurve(t *testing.T) {
	var c Curve
	diff(t, Vec3{}, c.Point(1))
	diff(t, Vec3{}, c.Derivative(1))
	if s := c.Kind().String(); s != "CurveKind(0)" {
		t.Errorf("got %q", s)
	}
}

func TestRadiusSum(t *testing.T) {
	want := []float64{2, 0, 5.5, 3, 0.5, 1}
	for i, c := range testCurves {
		if got := c.RadiusSum(); got != want[i] {
			t.Errorf("%v: got radius sum %v, want %v", c, got, want[i])
		}
	}
}

func TestDescriptors(t *testing.T) {
	for _, k := range []CurveKind{CircleKind, EllipseKind, HelixKind} {
		got, ok := KindFromDescriptor(k.Descriptor())
		if !ok || got != k {
			t.Errorf("descriptor %q maps to %v, want %v", k.Descriptor(), got, k)
		}
	}
	for _, d := range []byte{0, 'c', 'X', 'S'} {
		if _, ok := KindFromDescriptor(d); ok {
			t.Errorf("descriptor %q unexpectedly accepted", d)
		}
	}
}
