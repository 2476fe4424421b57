package rngcore

import (
	"encoding/binary"
	"math/rand/v2"
)

// FillViaUint64 fills dst from successive Uint64 calls, using a final
// Uint32 when four or fewer bytes remain. Output is little-endian.
func FillViaUint64(src Source, dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, src.Uint64())
		dst = dst[8:]
	}
	switch {
	case len(dst) > 4:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], src.Uint64())
		copy(dst, buf[:])
	case len(dst) > 0:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], src.Uint32())
		copy(dst, buf[:])
	}
}

// Uint64ViaUint32 builds a uint64 from two Uint32 calls, low word first.
func Uint64ViaUint32(src Source) uint64 {
	lo := uint64(src.Uint32())
	hi := uint64(src.Uint32())
	return hi<<32 | lo
}

// Reader adapts a Source to io.Reader.
type Reader struct {
	Source Source
}

// Read fills p in full or returns the generator's error.
func (r Reader) Read(p []byte) (int, error) {
	if err := r.Source.TryFill(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// New returns a *rand.Rand from math/rand/v2 that draws from src.
func New(src Source) *rand.Rand {
	return rand.New(src)
}
