// Package curve3 reads descriptions of 3D curves and evaluates them.
//
// # Curves
//
// The package supports a closed set of parametric curves: [Circle],
// [Ellipse], and [Helix]. Each of them implements [ParametricCurve3] and can
// be evaluated at any real parameter t, returning a position
// ([ParametricCurve3.Point]) or the first derivative with respect to t
// ([ParametricCurve3.Derivative]). Circles and
// ellipses lie in a plane parallel to z = 0; a helix climbs by its step for
// every full turn.
//
// [Curve] is a tagged union of the three variants that additionally carries
// a name and a numeric identifier. Curves are immutable values; evaluating
// them has no side effects.
//
// # Curve descriptions
//
// [Parse] and [ParseReader] read curve descriptions, a line-based text
// format. The first line holds the number of records, and every following
// line describes one curve:
//
//	3
//	C 1 "wheel" 0 0 0 2.5
//	E 2 "orbit" 1 1 0 3 4
//	H 3 "spring" 0 0 -1 1 0.5
//
// A record consists of a descriptor (C for circles, E for ellipses, H for
// helices), an unsigned 64-bit identifier, a name in double quotes, the
// three coordinates of the origin, and the variant's parameters: the radius
// of a circle, the minor and major radius of an ellipse, or the radius and
// step of a helix. Radii must not be negative.
//
// How invalid records are handled depends on the [ErrorPolicy]. With
// [SkipPolicy], the record is reported and parsing continues with the next
// line. With [PanicPolicy], the first invalid record aborts the whole parse.
// Either way, the parser never terminates the process; that decision is left
// to the caller.
package curve3
