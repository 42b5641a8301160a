package fixedwidth

import (
	"errors"
	"fmt"
)

var (
	errUnitTooShort  = errors.New("column shorter than unit suffix")
	errFieldOverflow = errors.New("formatted value exceeds column width")
	errNotInteger    = errors.New("value is not an integer")
)

// LengthError reports a line whose length is not LineLength.
type LengthError struct {
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("line is %d characters, want %d", e.Length, LineLength)
}

// FieldError reports a single field that could not be parsed during decode
// or rendered within its column during encode. Field is the logical field
// name and Raw the offending text.
type FieldError struct {
	Field string
	Raw   string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s %q: %v", e.Field, e.Raw, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
