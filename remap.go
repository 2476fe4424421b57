package randcompat

import (
	"errors"
	"syscall"

	"github.com/lox/randcompat/internal/errcode"
)

// UnknownErrorCode is reported by an adapter when the wrapped generator
// fails without a structured error code. It is the first code of the custom
// range, so it never collides with an OS error number.
const UnknownErrorCode = errcode.CustomStart

// codedError is satisfied by the Error types of both interface versions.
type codedError interface {
	error
	Code() (uint32, bool)
}

// remapCode picks the code the target-version error is built from: the
// first structured code found along err's Unwrap chain, else
// UnknownErrorCode. The result is never zero.
func remapCode(err error) uint32 {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if coded, ok := e.(codedError); ok {
			if code, ok := coded.Code(); ok && code != 0 {
				return code
			}
		}
		if errno, ok := e.(syscall.Errno); ok && errno != 0 {
			return uint32(errno)
		}
	}
	return UnknownErrorCode
}
