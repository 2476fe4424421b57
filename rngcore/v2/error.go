package rngcore

import (
	"errors"
	"syscall"

	"github.com/lox/randcompat/internal/errcode"
)

const (
	// InternalStart is the first code reserved for entropy-source internals.
	// Codes below it are raw OS error numbers.
	InternalStart = errcode.InternalStart

	// CustomStart is the first code available to custom generators.
	CustomStart = errcode.CustomStart
)

// Error is the failure type returned by TryFill. It carries either an opaque
// cause or a non-zero structured code.
type Error struct {
	code  uint32
	inner error
}

// NewError wraps an arbitrary cause.
func NewError(err error) *Error {
	return &Error{inner: err}
}

// FromCode constructs an Error from a structured code. It panics if code is
// zero.
func FromCode(code uint32) *Error {
	if code == 0 {
		panic("rngcore/v2: error code must be non-zero")
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

// RawOSError returns the OS error number when the code lies in the OS range.
func (e *Error) RawOSError() (int, bool) {
	code, ok := e.Code()
	if !ok || !errcode.IsOS(code) {
		return 0, false
	}
	return int(code), true
}

func (e *Error) Error() string {
	if e.inner != nil {
		return e.inner.Error()
	}
	return errcode.Describe(e.code)
}

func (e *Error) Unwrap() error {
	return e.inner
}
