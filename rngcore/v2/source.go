// Package rngcore defines the current generator interface.
//
// Import it as rngcorev2 alongside the original
// github.com/lox/randcompat/rngcore package. Every Source here is also a
// math/rand/v2 Source, so New(src) gives access to the standard library's
// distribution helpers.
package rngcore

// Source is a generator of uniformly distributed random data.
//
// Implementations are not required to be safe for concurrent use.
type Source interface {
	Uint32() uint32
	Uint64() uint64

	// Fill fills dst with random data, panicking if the generator fails.
	Fill(dst []byte)

	// TryFill fills dst with random data, returning an *Error on failure.
	TryFill(dst []byte) error
}

// CryptoSource marks a Source as suitable for security-sensitive use.
type CryptoSource interface {
	Source
	CryptoRNG()
}
