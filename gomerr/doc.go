// Package gomerr provides the error framework used throughout the module. A
// Gomerr captures a typed error, its attributes, a stack trace, and an
// optional wrapped cause, and renders all of it as JSON via Error() (compact)
// or String() (indented).
//
// Specific error kinds embed Gomerr and are created with Build, which assigns
// the remaining arguments to the kind's fields in declaration order:
//
//   type OverflowError struct {
//     Gomerr
//     Limit string
//   }
//
//   func Overflow(limit string) *OverflowError {
//     return Build(new(OverflowError), limit).(*OverflowError)
//   }
//
// Two Gomerrs satisfy errors.Is when they are of the same kind, so callers can
// test with errors.Is(err, new(OverflowError)) or extract the value with
// ErrorAs[*OverflowError](err).
package gomerr
