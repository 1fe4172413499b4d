package curve3

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// record holds the validated fields of one input line. It is only turned
// into a Curve once every field has passed validation.
type record struct {
	kind   CurveKind
	id     uint64
	name   string
	origin Vec3
	params [2]float64
}

// paramNames lists the variant parameters in input order.
var paramNames = map[CurveKind][]string{
	CircleKind:  {"radius"},
	EllipseKind: {"minor radius", "major radius"},
	HelixKind:   {"radius", "step"},
}

// parseRecord validates the fields of a record line:
//
//	<descriptor> <id> "<name>" <x> <y> <z> <params...>
func parseRecord(fields []string) (record, error) {
	fr := fieldReader{fields: fields}
	var rec record

	tok, err := fr.take("descriptor")
	if err != nil {
		return record{}, err
	}
	kind, ok := checkDescriptor(tok)
	if !ok {
		return record{}, fieldError(ErrInvalidDescriptor, "descriptor", tok)
	}
	rec.kind = kind

	if tok, err = fr.take("id"); err != nil {
		return record{}, err
	}
	if rec.id, err = parseID(tok); err != nil {
		return record{}, err
	}

	if tok, err = fr.take("name"); err != nil {
		return record{}, err
	}
	name, ok := checkQuoted(tok)
	if !ok {
		return record{}, fieldError(ErrNameNotQuoted, "name", tok)
	}
	if !checkName(name) {
		return record{}, fieldError(ErrInvalidName, "name", tok)
	}
	rec.name = name

	var origin [3]float64
	for i, axis := range [...]string{"origin x", "origin y", "origin z"} {
		if origin[i], err = takeScalar(&fr, axis); err != nil {
			return record{}, err
		}
	}
	rec.origin = Vec(origin[0], origin[1], origin[2])

	for i, what := range paramNames[kind] {
		if rec.params[i], err = takeScalar(&fr, what); err != nil {
			return record{}, err
		}
	}
	if err := checkParams(kind, rec.params); err != nil {
		return record{}, err
	}

	if err := fr.done(); err != nil {
		return record{}, err
	}
	return rec, nil
}

func (rec record) curve() Curve {
	switch rec.kind {
	case CircleKind:
		return NewCircle(rec.name, rec.id, Circle{Center: rec.origin, Radius: rec.params[0]})
	case EllipseKind:
		return NewEllipse(rec.name, rec.id, Ellipse{Center: rec.origin, MinorRadius: rec.params[0], MajorRadius: rec.params[1]})
	case HelixKind:
		return NewHelix(rec.name, rec.id, Helix{Center: rec.origin, Radius: rec.params[0], Step: rec.params[1]})
	default:
		panic("unreachable: record of invalid kind")
	}
}

// checkDescriptor reports whether tok is a single descriptor character.
func checkDescriptor(tok string) (CurveKind, bool) {
	if len(tok) != 1 {
		return 0, false
	}
	return KindFromDescriptor(tok[0])
}

// checkQuoted strips the double quotes around a name token.
func checkQuoted(tok string) (string, bool) {
	if len(tok) < 2 || !strings.HasPrefix(tok, `"`) || !strings.HasSuffix(tok, `"`) {
		return "", false
	}
	return tok[1 : len(tok)-1], true
}

// checkName reports whether name contains at least one letter, digit or
// underscore. Other characters are allowed alongside.
func checkName(name string) bool {
	return strings.ContainsFunc(name, func(r rune) bool {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

// checkParams enforces non-negative radii. A helix's step may have any sign.
func checkParams(kind CurveKind, params [2]float64) error {
	switch kind {
	case CircleKind, HelixKind:
		if params[0] < 0 {
			return ErrNegativeRadius
		}
	case EllipseKind:
		if params[0] < 0 || params[1] < 0 {
			return ErrNegativeRadius
		}
	}
	return nil
}

func parseID(tok string) (uint64, error) {
	id, err := strconv.ParseUint(tok, 10, 64)
	if err != nil {
		return 0, fieldError(ErrMalformedNumber, "id", tok)
	}
	return id, nil
}

func takeScalar(fr *fieldReader, what string) (float64, error) {
	tok, err := fr.take(what)
	if err != nil {
		return 0, err
	}
	if isHexLiteral(tok) {
		return 0, fieldError(ErrMalformedNumber, what, tok)
	}
	f, err := cast.ToFloat64E(tok)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fieldError(ErrMalformedNumber, what, tok)
	}
	return f, nil
}

// isHexLiteral reports whether tok, after an optional sign, starts with a
// 0x prefix. Scalars are decimal only.
func isHexLiteral(tok string) bool {
	tok = strings.TrimLeft(tok, "+-")
	return len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X')
}
