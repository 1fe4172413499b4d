package curve3

import (
	"math"
)

// Circle is a circle in the plane z = Center.Z.
type Circle struct {
	Center Vec3
	Radius float64
}

var _ ParametricCurve3 = Circle{}

// Point implements ParametricCurve3.
func (c Circle) Point(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return c.Center.Add(Vec3{
		X: c.Radius * cos,
		Y: c.Radius * sin,
	})
}

// Derivative implements ParametricCurve3.
func (c Circle) Derivative(t float64) Vec3 {
	sin, cos := math.Sincos(t)
	return Vec3{
		X: -c.Radius * sin,
		Y: c.Radius * cos,
	}
}

// Curve wraps the circle in a [Curve] with the given name and identifier.
func (c Circle) Curve(name string, id uint64) Curve {
	return NewCircle(name, id, c)
}
