package curve3

import (
	"math"
)

// Helix is a circular helix around the vertical axis through Center.
//
// Step is the rise per full turn, i.e. per 2π of the parameter. It may be
// zero, which degenerates to a circle, or negative, which makes the helix
// descend.
type Helix struct {
	Center Vec3
	Radius float64
	Step   float64
}

var _ ParametricCurve3 = Helix{}

// Point implements ParametricCurve3.
func (h Helix) Point(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return h.Center.Add(Vec3{
		X: h.Radius * cos,
		Y: h.Radius * sin,
		Z: h.pitch() * t,
	})
}

// Derivative implements ParametricCurve3.
func (h Helix) Derivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -h.Radius * sin,
		Y: h.Radius * cos,
		Z: h.pitch(),
	}
}

// pitch is the rise per radian.
func (h Helix) pitch() float64 {
	return h.Step / (2 * math.Pi)
}

// Curve wraps the helix in a [Curve] with the given name and identifier.
func (h Helix) Curve(name string, id uint64) Curve {
	return NewHelix(name, id, h)
}
