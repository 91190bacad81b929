// Package errors defines the error values reported while decoding FCubed.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is reported for a non-blank line without a '=' separator.
	ErrMalformedLine = errors.New("malformed line")
	// ErrInvalidChar is reported for a single-quoted value that does not
	// hold exactly one character.
	ErrInvalidChar = errors.New("invalid character literal")
)

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error.
type ParseError struct {
	Message string
	Line    int
	Column  int
	// Err is the sentinel classifying the error, if any.
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("fcubed: parsing error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e ParseError) Unwrap() error { return e.Err }

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all syntax errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection reports the first error only.
	return p[0].Error()
}

// Unwrap exposes every collected error to errors.Is and errors.As.
func (p ParseErrors) Unwrap() []error {
	errs := make([]error, len(p))
	for i := range p {
		errs[i] = p[i]
	}
	return errs
}
