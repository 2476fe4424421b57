package rngcore

import (
	"errors"
	"syscall"

	"github.com/lox/randcompat/internal/errcode"
)

// Error is the failure type returned by TryFillBytes.
//
// An Error either wraps an opaque cause or carries a non-zero numeric code
// following the convention in which codes below 1<<31 are OS error numbers.
type Error struct {
	code  uint32
	inner error
}

// NewError wraps an arbitrary cause.
func NewError(err error) *Error {
	return &Error{inner: err}
}

// FromCode constructs an Error from a structured code. It panics if code is
// zero, which is never a valid error code.
func FromCode(code uint32) *Error {
	if code == 0 {
		panic("rngcore: error code must be non-zero")
	}
	return &Error{code: code}
}

// Code returns the structured error code, if there is one. A wrapped
// syscall.Errno counts as a structured code.
func (e *Error) Code() (uint32, bool) {
	if e.code != 0 {
		return e.code, true
	}
	var errno syscall.Errno
	if errors.As(e.inner, &errno) && errno != 0 {
		return uint32(errno), true
	}
	return 0, false
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.inner != nil {
		return e.inner.Error()
	}
	return errcode.Describe(e.code)
}

// Unwrap returns the wrapped cause, or nil for code-only errors.
func (e *Error) Unwrap() error {
	return e.inner
}
