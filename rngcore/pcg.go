package rngcore

import "fmt"

// PCG32 is a fast, small, statistically good RNG.
// Based on PCG-XSH-RR with 64-bit state and 32-bit output.
//
// It is deterministic for a given seed and is not suitable for
// security-sensitive use.
type PCG32 struct {
	state uint64
}

// NewPCG32 creates a new PCG32 RNG with the given seed.
func NewPCG32(seed int64) *PCG32 {
	return &PCG32{state: uint64(seed)*2 + 1}
}

// InitSeed reinitializes with a new seed (avoids allocation).
func (r *PCG32) InitSeed(seed int64) {
	r.state = uint64(seed)*2 + 1
}

// NextUint32 generates a random uint32.
func (r *PCG32) NextUint32() uint32 {
	oldstate := r.state
	r.state = oldstate*6364136223846793005 + 1442695040888963407
	xorshifted := uint32(((oldstate >> 18) ^ oldstate) >> 27)
	rot := uint32(oldstate >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// NextUint64 generates a random uint64 from two 32-bit outputs, high word
// first.
func (r *PCG32) NextUint64() uint64 {
	hi := uint64(r.NextUint32())
	lo := uint64(r.NextUint32())
	return hi<<32 | lo
}

// FillBytes fills dst with random data.
func (r *PCG32) FillBytes(dst []byte) {
	FillBytesViaNext(r, dst)
}

// TryFillBytes fills dst with random data. It never fails.
func (r *PCG32) TryFillBytes(dst []byte) error {
	r.FillBytes(dst)
	return nil
}

// Clone returns an independent generator in the same state.
func (r *PCG32) Clone() *PCG32 {
	c := *r
	return &c
}

// Equal reports whether both generators are in the same state.
func (r *PCG32) Equal(other *PCG32) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.state == other.state
}

func (r *PCG32) String() string {
	return fmt.Sprintf("PCG32{state: %#016x}", r.state)
}
