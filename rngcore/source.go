// Package rngcore defines the original generator interface: the contract
// older code in this ecosystem was written against.
//
// The newer contract lives in github.com/lox/randcompat/rngcore/v2; the two
// differ in method names and error types, so a value implementing one does
// not implement the other. The randcompat package adapts between them.
package rngcore

// Source is a generator of uniformly distributed random data.
//
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// NextUint32 returns the next random uint32.
	NextUint32() uint32

	// NextUint64 returns the next random uint64.
	NextUint64() uint64

	// FillBytes fills dst with random data. Implementations that can fail
	// panic on failure; use TryFillBytes to observe the error instead.
	FillBytes(dst []byte)

	// TryFillBytes fills dst with random data, returning an *Error on
	// failure.
	TryFillBytes(dst []byte) error
}

// CryptoSource is a Source suitable for security-sensitive use.
//
// The marker method carries no behaviour; implementing it is a promise made
// by the generator's author.
type CryptoSource interface {
	Source
	CryptoRng()
}
