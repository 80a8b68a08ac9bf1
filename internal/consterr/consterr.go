// Package consterr lets packages declare their sentinel errors with the const keyword.
//
//	TL;DR:
//	  const ErrSomething consterr.Error = "something is an error"
//
// A const sentinel cannot be reassigned by package users,
// which keeps errors.Is comparisons trustworthy.
package consterr

import "fmt"

// Error is an implementation of the error interface,
// with a string as its underlying type.
type Error string

// Error implements the error interface.
func (err Error) Error() string { return string(err) }

// F formats additional details into a new error value
// that errors.Is still matches against the sentinel.
func (err Error) F(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{error(err)}, a...)...)
}
