// Package errs provides the single error shape shared by every satlogic
// package, so callers can errors.As against one type regardless of which
// package raised it.
package errs

import "fmt"

// Error reports a failure from a specific package and operation. Wrapped
// holds a sentinel the caller can match with errors.Is, if one applies.
type Error struct {
	Package string
	Op      string
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Package, e.Op, e.Message)
}

// Unwrap lets errors.Is/errors.As see through to Wrapped.
func (e *Error) Unwrap() error { return e.Wrapped }

// New builds an Error for the given package/operation.
func New(pkg, op, message string) *Error {
	return &Error{Package: pkg, Op: op, Message: message}
}

// Newf builds an Error with a formatted message.
func Newf(pkg, op, format string, args ...interface{}) *Error {
	return &Error{Package: pkg, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error that wraps sentinel, with a formatted message.
func Wrap(pkg, op string, sentinel error, format string, args ...interface{}) *Error {
	return &Error{Package: pkg, Op: op, Message: fmt.Sprintf(format, args...), Wrapped: sentinel}
}
