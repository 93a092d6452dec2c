package civiltime

import (
	"errors"
	"strconv"
)

// ErrInvalidInput is the sentinel wrapped by every user-correctable
// input failure. Internal faults never wrap it.
var ErrInvalidInput = errors.New("invalid civil time input")

// Field identifies which input component an InputError refers to.
type Field string

const (
	// FieldDate marks a problem with the civil date string.
	FieldDate Field = "date"
	// FieldTime marks a problem with the time-of-day string.
	FieldTime Field = "time"
	// FieldZone marks a problem with the timezone identifier.
	FieldZone Field = "timezone"
)

// InputError records a rejected input with the offending value and a
// human-readable reason. It wraps ErrInvalidInput for errors.Is checks.
type InputError struct {
	Field  Field
	Value  string
	Reason string
}

// Error returns a human-readable string naming field, value, and reason.
func (e *InputError) Error() string {
	return "invalid " + string(e.Field) + " " + strconv.Quote(e.Value) + ": " + e.Reason
}

// Unwrap returns ErrInvalidInput for use with errors.Is.
func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}
