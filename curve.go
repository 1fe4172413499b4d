package curve3

import (
	"fmt"
	"strconv"
)

// ParametricCurve3 describes a curve in 3D space parametrized by a scalar.
//
// Unlike the curves of a Bézier path, t is not restricted to [0, 1]. All
// curves in this package are periodic in x and y and accept any real t.
type ParametricCurve3 interface {
	// Point evaluates the curve at parameter t.
	Point(t float64) Vec3
	// Derivative returns the first derivative of Point with respect to t.
	Derivative(t float64) Vec3
}

// CurveKind identifies the variant held by a [Curve].
type CurveKind int

const (
	// A circle, see [Circle].
	CircleKind CurveKind = iota + 1
	// An axis-aligned ellipse, see [Ellipse].
	EllipseKind
	// A circular helix, see [Helix].
	HelixKind
)

func (k CurveKind) String() string {
	switch k {
	case CircleKind:
		return "Circle"
	case EllipseKind:
		return "Ellipse"
	case HelixKind:
		return "Helix"
	default:
		return "CurveKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Descriptor returns the single character that introduces a curve of this
// kind in the text format, or 0 for invalid kinds.
func (k CurveKind) Descriptor() byte {
	switch k {
	case CircleKind:
		return 'C'
	case EllipseKind:
		return 'E'
	case HelixKind:
		return 'H'
	default:
		return 0
	}
}

// KindFromDescriptor maps a descriptor character to its curve kind.
func KindFromDescriptor(d byte) (CurveKind, bool) {
	switch d {
	case 'C':
		return CircleKind, true
	case 'E':
		return EllipseKind, true
	case 'H':
		return HelixKind, true
	default:
		return 0, false
	}
}

// Curve is a named curve read from a curve description. This type acts as a
// tagged union of all supported curves ([Circle], [Ellipse], and [Helix]).
//
// Curves are immutable. The zero value is not a valid curve; use
// [NewCircle], [NewEllipse], [NewHelix] or the variants' Curve methods.
type Curve struct {
	// We don't use an interface for the variants so that the set stays
	// closed and every switch over kind can be checked for exhaustiveness.
	// It also keeps a slice of curves free of per-element allocations.
	//
	// r0 and r1 hold the variant parameters:
	//   Circle:  radius, unused
	//   Ellipse: minor radius, major radius
	//   Helix:   radius, step

	kind   CurveKind
	name   string
	id     uint64
	origin Vec3
	r0     float64
	r1     float64
}

var _ ParametricCurve3 = Curve{}

// NewCircle returns a curve holding the circle c.
func NewCircle(name string, id uint64, c Circle) Curve {
	return Curve{kind: CircleKind, name: name, id: id, origin: c.Center, r0: c.Radius}
}

// NewEllipse returns a curve holding the ellipse e.
func NewEllipse(name string, id uint64, e Ellipse) Curve {
	return Curve{kind: EllipseKind, name: name, id: id, origin: e.Center, r0: e.MinorRadius, r1: e.MajorRadius}
}

// NewHelix returns a curve holding the helix h.
func NewHelix(name string, id uint64, h Helix) Curve {
	return Curve{kind: HelixKind, name: name, id: id, origin: h.Center, r0: h.Radius, r1: h.Step}
}

func (c Curve) Kind() CurveKind { return c.kind }
func (c Curve) Name() string    { return c.name }
func (c Curve) ID() uint64      { return c.id }
func (c Curve) Origin() Vec3    { return c.origin }

func (c Curve) String() string {
	return fmt.Sprintf("%s{ID: %d, Name: %q}", c.kind, c.id, c.name)
}

// Circle returns the curve's geometry if it is a circle.
func (c Curve) Circle() (Circle, bool) {
	if c.kind != CircleKind {
		return Circle{}, false
	}
	return Circle{Center: c.origin, Radius: c.r0}, true
}

// Ellipse returns the curve's geometry if it is an ellipse.
func (c Curve) Ellipse() (Ellipse, bool) {
	if c.kind != EllipseKind {
		return Ellipse{}, false
	}
	return Ellipse{Center: c.origin, MinorRadius: c.r0, MajorRadius: c.r1}, true
}

// Helix returns the curve's geometry if it is a helix.
func (c Curve) Helix() (Helix, bool) {
	if c.kind != HelixKind {
		return Helix{}, false
	}
	return Helix{Center: c.origin, Radius: c.r0, Step: c.r1}, true
}

// Point implements ParametricCurve3. It returns the zero vector for the zero
// Curve.
func (c Curve) Point(t float64) Vec3 {
	switch c.kind {
	case CircleKind:
		return Circle{Center: c.origin, Radius: c.r0}.Point(t)
	case EllipseKind:
		return Ellipse{Center: c.origin, MinorRadius: c.r0, MajorRadius: c.r1}.Point(t)
	case HelixKind:
		return Helix{Center: c.origin, Radius: c.r0, Step: c.r1}.Point(t)
	default:
		return Vec3{}
	}
}

// Derivative implements ParametricCurve3. It returns the zero vector for the
// zero Curve.
func (c Curve) Derivative(t float64) Vec3 {
	switch c.kind {
	case CircleKind:
		return Circle{Center: c.origin, Radius: c.r0}.Derivative(t)
	case EllipseKind:
		return Ellipse{Center: c.origin, MinorRadius: c.r0, MajorRadius: c.r1}.Derivative(t)
	case HelixKind:
		return Helix{Center: c.origin, Radius: c.r0, Step: c.r1}.Derivative(t)
	default:
		return Vec3{}
	}
}

// RadiusSum returns the sum of the curve's radii: the radius of circles and
// helices, and minor plus major radius of ellipses.
func (c Curve) RadiusSum() float64 {
	switch c.kind {
	case CircleKind, HelixKind:
		return c.r0
	case EllipseKind:
		return c.r0 + c.r1
	default:
		return 0
	}
}
