package curve3

import (
	"errors"
	"fmt"
)

// Reasons for rejecting a single record. They are wrapped in a
// [*RecordError] carrying the line number.
var (
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrNameNotQuoted     = errors.New("name must be quoted")
	ErrInvalidName       = errors.New("invalid name")
	ErrNegativeRadius    = errors.New("radius must be a positive number")
	ErrMalformedNumber   = errors.New("malformed number")
	ErrMissingField      = errors.New("missing field")
	ErrTrailingData      = errors.New("unexpected trailing data")
	ErrLineTooLong       = errors.New("line too long")
)

var (
	// ErrInvalidHeader is returned when the first line isn't a record count.
	ErrInvalidHeader = errors.New("invalid header")

	// ErrAborted is returned when a record was rejected under [PanicPolicy].
	// The error also wraps the [*RecordError] describing the rejection.
	ErrAborted = errors.New("parse aborted")
)

// RecordError describes a rejected record.
type RecordError struct {
	// Line is the 1-based line number of the record. The header is line 1.
	Line int
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// HeaderError describes a malformed record count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type HeaderError struct {
	Line  int
	Token string
	cause error
}

func (e *HeaderError) Error() string {
	if e.Token == "" {
		if e.cause != nil {
			return fmt.Sprintf("line %d: %s: %s", e.Line, ErrInvalidHeader, e.cause)
		}
		return fmt.Sprintf("line %d: %s: missing record count", e.Line, ErrInvalidHeader)
	}
	return fmt.Sprintf("line %d: %s: %q is not a record count", e.Line, ErrInvalidHeader, e.Token)
}

func (e *HeaderError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidHeader}
	}
	return []error{ErrInvalidHeader, e.cause}
}

// fieldError attaches the name of the offending field to a rejection reason.
func fieldError(reason error, field, token string) error {
	if token == "" {
		return fmt.Errorf("%w: %s", reason, field)
	}
	return fmt.Errorf("%w: %s %q", reason, field, token)
}
