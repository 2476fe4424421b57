// Package errcode describes the 32-bit error code space shared by both
// generator interface versions.
//
// Codes below InternalStart are raw OS error numbers. Codes in
// [InternalStart, CustomStart) are reserved for entropy-source internals and
// codes from CustomStart upwards are free for custom sources.
package errcode

import (
	"fmt"
	"syscall"
)

const (
	// InternalStart is the first code reserved for entropy-source internals.
	InternalStart uint32 = 1 << 31

	// CustomStart is the first code available to custom sources. It doubles
	// as the "custom error, origin unspecified" sentinel.
	CustomStart uint32 = InternalStart + (1 << 30)
)

// IsOS reports whether code is a raw OS error number.
func IsOS(code uint32) bool {
	return code != 0 && code < InternalStart
}

// IsInternal reports whether code lies in the internal range.
func IsInternal(code uint32) bool {
	return code >= InternalStart && code < CustomStart
}

// IsCustom reports whether code lies in the custom range.
func IsCustom(code uint32) bool {
	return code >= CustomStart
}

// Describe renders code for use in error strings.
func Describe(code uint32) string {
	switch {
	case code == 0:
		return "invalid error code 0"
	case IsOS(code):
		return fmt.Sprintf("os error %d: %s", code, syscall.Errno(code).Error())
	case IsInternal(code):
		return fmt.Sprintf("internal error %d", code-InternalStart)
	default:
		return fmt.Sprintf("custom error %d", code-CustomStart)
	}
}
