package curve3

import (
	"math"
)

// Ellipse is an axis-aligned ellipse in the plane z = Center.Z.
//
// MajorRadius is the semi-axis along x and MinorRadius the semi-axis along y.
// Neither is required to be the larger of the two; the names follow the
// order in which the input format lists them.
type Ellipse struct {
	Center      Vec3
	MinorRadius float64
	MajorRadius float64
}

var _ ParametricCurve3 = Ellipse{}

// Point implements ParametricCurve3.
func (e Ellipse) Point(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return e.Center.Add(Vec3{
		X: e.MajorRadius * cos,
		Y: e.MinorRadius * sin,
	})
}

// Derivative implements ParametricCurve3.
func (e Ellipse) Derivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -e.MajorRadius * sin,
		Y: e.MinorRadius * cos,
	}
}

// Curve wraps the ellipse in a [Curve] with the given name and identifier.
func (e Ellipse) Curve(name string, id uint64) Curve {
	return NewEllipse(name, id, e)
}
