package curve3

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Report summarizes a set of curves evaluated at a single parameter.
type Report struct {
	Param     float64        `json:"t" yaml:"t"`
	Curves    []CurveReport  `json:"curves" yaml:"curves"`
	Circles   []CircleRadius `json:"circles" yaml:"circles"`
	RadiusSum float64        `json:"radius_sum" yaml:"radius_sum"`
}

// CurveReport is the evaluation of a single curve.
type CurveReport struct {
	ID         uint64 `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	Kind       string `json:"kind" yaml:"kind"`
	Point      Vec3   `json:"point" yaml:"point,flow"`
	Derivative Vec3   `json:"derivative" yaml:"derivative,flow"`
	// Overflow is set when Point or Derivative has an infinite or NaN
	// component. Both are zeroed in that case.
	Overflow bool `json:"overflow,omitempty" yaml:"overflow,omitempty"`
}

// CircleRadius names a circle and its radius.
type CircleRadius struct {
	ID     uint64  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// Summarize evaluates every curve at t, lists the circles ordered by
// increasing radius and adds up the radii of all curves as defined by
// [Curve.RadiusSum].
//
// Circles with equal radii keep their input order. Curves whose evaluation
// overflows are reported with [CurveReport.Overflow] set, so that the report
// can always be encoded as JSON.
func Summarize(curves []Curve, t float64) Report {
	r := Report{
		Param:  t,
		Curves: make([]CurveReport, 0, len(curves)),
	}
	for _, c := range curves {
		cr := CurveReport{
			ID:         c.ID(),
			Name:       c.Name(),
			Kind:       c.Kind().String(),
			Point:      c.Point(t),
			Derivative: c.Derivative(t),
		}
		if !cr.Point.IsFinite() || !cr.Derivative.IsFinite() {
			cr.Point, cr.Derivative, cr.Overflow = Vec3{}, Vec3{}, true
		}
		r.Curves = append(r.Curves, cr)
		if circ, ok := c.Circle(); ok {
			r.Circles = append(r.Circles, CircleRadius{
				ID:     c.ID(),
				Name:   c.Name(),
				Radius: circ.Radius,
			})
		}
		r.RadiusSum += c.RadiusSum()
	}
	slices.SortStableFunc(r.Circles, func(a, b CircleRadius) int {
		return cmp.Compare(a.Radius, b.Radius)
	})
	return r
}

// WriteText writes the report in a human-readable form.
func (r Report) WriteText(w io.Writer) error {
	ew := &errWriter{w: w}
	for _, c := range r.Curves {
		ew.printf("%s { ID: %d, Name: %s }\n", c.Kind, c.ID, c.Name)
		if c.Overflow {
			ew.printf("Point(%g) and Derivative(%g) are out of range\n\n", r.Param, r.Param)
			continue
		}
		ew.printf("Point(%g) = %s, Derivative(%g) = %s\n\n", r.Param, c.Point, r.Param, c.Derivative)
	}
	if len(r.Circles) == 0 {
		ew.printf("No circles found\n")
	} else {
		ew.printf("Circles' radii\n")
		for _, c := range r.Circles {
			ew.printf("Circle { ID: %d, Radius: %g }\n", c.ID, c.Radius)
		}
		ew.printf("\n")
	}
	ew.printf("Total sum of radii of all curves = %g\n", r.RadiusSum)
	return ew.err
}

// errWriter remembers the first write error and drops all later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
