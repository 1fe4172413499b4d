package curve3

import (
	"fmt"
	"io"
	"strconv"
)

// ErrorPolicy selects what the parser does with a rejected record.
type ErrorPolicy int

const (
	// SkipPolicy reports the rejected record and continues with the next one.
	SkipPolicy ErrorPolicy = iota
	// PanicPolicy aborts the whole parse at the first rejected record.
	PanicPolicy
)

func (p ErrorPolicy) String() string {
	switch p {
	case SkipPolicy:
		return "skip"
	case PanicPolicy:
		return "panic"
	default:
		return "ErrorPolicy(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParseErrorPolicy parses "skip" or "panic".
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch s {
	case "skip":
		return SkipPolicy, nil
	case "panic":
		return PanicPolicy, nil
	default:
		return 0, fmt.Errorf("invalid error policy %q", s)
	}
}

// Parse reads the curve description in the file at path. See [ParseReader]
// for the format and the meaning of policy.
//
// Files named *.zst or *.lz4 are decompressed while reading.
func Parse(path string, policy ErrorPolicy, opts ...Option) (curves []Curve, err error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			curves, err = nil, fmt.Errorf("close input: %w", cerr)
		}
	}()

	o := newOptions(opts)
	o.logger = o.logger.WithSource(path)
	return parse(in, policy, o)
}

// ParseReader reads a curve description from r.
//
// The first line holds the number N of records that follow. Each of the
// next N non-blank lines describes one curve:
//
//	<descriptor> <id> "<name>" <x> <y> <z> <params...>
//
// The descriptor is C (circle, params: radius), E (ellipse, params: minor
// radius, major radius) or H (helix, params: radius, step).
//
// Curves are returned in input order. A record that fails validation is
// handled according to policy: under [SkipPolicy] it is logged, passed to the
// diagnostics function and left out of the result; under [PanicPolicy]
// parsing stops and the returned error wraps [ErrAborted] and the
// [*RecordError]. An input that ends before N records is not an error.
// A line longer than the configured maximum (see [WithMaxLineLength]) is
// rejected with [ErrLineTooLong] like any other invalid record.
//
// Any non-nil error is fatal and comes with a nil slice of curves.
func ParseReader(r io.Reader, policy ErrorPolicy, opts ...Option) ([]Curve, error) {
	return parse(r, policy, newOptions(opts))
}

func parse(r io.Reader, policy ErrorPolicy, o options) ([]Curve, error) {
	ls := newLineScanner(r, o.maxLineLength)

	n, err := readHeader(ls)
	if err != nil {
		o.logger.LogParsed(0, 0, 0, err)
		return nil, err
	}

	// Don't trust the header for the allocation size.
	curves := make([]Curve, 0, min(n, 1024))
	rejected := 0
	for read := 0; read < n; read++ {
		sl, ok := ls.next()
		if !ok {
			if ls.err != nil {
				err := fmt.Errorf("read input: %w", ls.err)
				o.logger.LogParsed(n, len(curves), rejected, err)
				return nil, err
			}
			o.logger.LogTruncated(n, read)
			break
		}

		var rec record
		if sl.tooLong {
			err = ErrLineTooLong
		} else {
			rec, err = parseRecord(sl.fields)
		}
		if err != nil {
			recErr := &RecordError{Line: sl.number, Err: err}
			if policy == PanicPolicy {
				err := fmt.Errorf("%w: %w", ErrAborted, recErr)
				o.logger.LogParsed(n, len(curves), rejected+1, err)
				return nil, err
			}
			rejected++
			o.logger.LogRecordRejected(recErr)
			if o.diagnostics != nil {
				o.diagnostics(recErr)
			}
			continue
		}
		curves = append(curves, rec.curve())
	}

	o.logger.LogParsed(n, len(curves), rejected, nil)
	return curves, nil
}

// readHeader reads the record count, which must be alone on its line.
func readHeader(ls *lineScanner) (int, error) {
	sl, ok := ls.next()
	if !ok {
		if ls.err != nil {
			return 0, fmt.Errorf("read input: %w", ls.err)
		}
		return 0, &HeaderError{Line: max(sl.number, 1)}
	}
	if sl.tooLong {
		return 0, &HeaderError{Line: sl.number, cause: ErrLineTooLong}
	}
	if len(sl.fields) != 1 {
		return 0, &HeaderError{Line: sl.number, Token: sl.fields[len(sl.fields)-1], cause: ErrTrailingData}
	}
	// Capping the bit size at IntSize-1 keeps the count within int.
	n, err := strconv.ParseUint(sl.fields[0], 10, strconv.IntSize-1)
	if err != nil {
		return 0, &HeaderError{Line: sl.number, Token: sl.fields[0], cause: err}
	}
	return int(n), nil
}
