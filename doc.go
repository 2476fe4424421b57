// Package randcompat adapts between the two generations of the generator
// interface: the original github.com/lox/randcompat/rngcore and the current
// github.com/lox/randcompat/rngcore/v2.
//
// NewForward wraps an original Source so it can be passed to code expecting
// the current interface; NewBackward does the reverse. Every call is
// forwarded verbatim to the wrapped generator, so adapted and unadapted
// generators seeded identically produce identical output.
//
// The only translation performed is on TryFill/TryFillBytes failures: a
// structured error code is carried across unchanged, and a failure without
// one is reported as UnknownErrorCode.
//
// Go cannot implement an interface conditionally on a type parameter, so the
// cryptographically-secure marker is carried by separate types:
// NewSecureForward and NewSecureBackward only accept crypto-marked
// generators, and the adapters they return are crypto-marked in the target
// interface. ForwardSource and BackwardSource make the same choice at run
// time for callers holding an interface value.
//
// Build with the randcompat_freestanding tag to leave out the OS-backed
// generators; the adapters are unaffected.
package randcompat
