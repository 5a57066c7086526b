// Package envbool parses boolean switches the way environment overrides
// spell them: "true"/"false", or an unsigned 8-bit integer where any
// non-zero value is true.
package envbool

import (
	"fmt"
	"strconv"
)

// ParseError is returned when a value is neither a boolean literal nor an
// 8-bit unsigned integer. It carries both underlying failures.
type ParseError struct {
	BoolErr error
	IntErr  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse boolean: %v, %v", e.BoolErr, e.IntErr)
}

// Unwrap exposes both parse failures to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{e.BoolErr, e.IntErr}
}

// Parse interprets s as "true" or "false" (case-sensitive), falling back to
// an unsigned 8-bit integer with truth meaning non-zero.
func Parse(s string) (bool, error) {
	b, boolErr := parseLiteral(s)
	if boolErr == nil {
		return b, nil
	}

	v, intErr := strconv.ParseUint(s, 10, 8)
	if intErr != nil {
		return false, &ParseError{BoolErr: boolErr, IntErr: intErr}
	}
	return v != 0, nil
}

// parseLiteral accepts only the two canonical spellings. strconv.ParseBool
// is not used because it also accepts "1", "T", "TRUE" and friends.
func parseLiteral(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: s, Err: strconv.ErrSyntax}
}
