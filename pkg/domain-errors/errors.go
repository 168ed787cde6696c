// Package domainerrors provides coded errors for domain validation failures.
//
// Every failure surfaced by this module carries exactly one Code so callers
// can branch on the failure class rather than matching message strings:
//
//   - CodeNullInput and CodeInvalidFormat are caller-contract violations
//     (absent or structurally malformed input). Treat these as bugs at the
//     call site.
//   - CodeInvalidValue is routine bad business data (a well-formed but
//     checksum-failing identifier). Callers are expected to handle it, e.g.
//     by rejecting a form field, not by crashing.
//
// Use HasCode to test for a class anywhere in a wrap chain.
package domainerrors

import "errors"

// Code classifies a domain validation failure.
type Code string

// Failure classes, from hardest (contract violation) to softest (bad data).
const (
	CodeNullInput     Code = "null_input"
	CodeInvalidFormat Code = "invalid_format"
	CodeInvalidValue  Code = "invalid_value"
)

// Error is a coded domain error, optionally wrapping a cause.
type Error struct {
	code    Code
	message string
	cause   error
}

// New creates a coded error with the given message.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Wrap creates a coded error around a cause. The cause stays reachable
// through errors.Unwrap, so codes deeper in the chain remain observable
// via HasCode.
func Wrap(err error, code Code, message string) *Error {
	return &Error{code: code, message: message, cause: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Code returns the failure class of this error.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// HasCode reports whether any error in err's wrap chain carries the given
// code.
func HasCode(err error, code Code) bool {
	for err != nil {
		if de, ok := err.(*Error); ok && de.code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// CodeOf returns the outermost code in err's wrap chain, or the empty Code
// if no coded error is present.
func CodeOf(err error) Code {
	for err != nil {
		if de, ok := err.(*Error); ok {
			return de.code
		}
		err = errors.Unwrap(err)
	}
	return ""
}

// Is reports whether any error in err's chain matches target.
// Passthrough to the standard library for caller convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// Passthrough to the standard library for caller convenience.
func As(err error, target any) bool {
	return errors.As(err, target)
}
