package rngcore

import "encoding/binary"

// FillBytesViaNext fills dst from successive NextUint64 calls, using a final
// NextUint32 when four or fewer bytes remain. Bytes are little-endian so the
// output is identical on every platform.
func FillBytesViaNext(src Source, dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, src.NextUint64())
		dst = dst[8:]
	}
	switch {
	case len(dst) > 4:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], src.NextUint64())
		copy(dst, buf[:])
	case len(dst) > 0:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], src.NextUint32())
		copy(dst, buf[:])
	}
}

// NextUint64ViaUint32 builds a uint64 from two NextUint32 calls, low word
// first.
func NextUint64ViaUint32(src Source) uint64 {
	lo := uint64(src.NextUint32())
	hi := uint64(src.NextUint32())
	return hi<<32 | lo
}

// Reader adapts a Source to io.Reader.
type Reader struct {
	Source Source
}

// Read fills p in full or returns the generator's error.
func (r Reader) Read(p []byte) (int, error) {
	if err := r.Source.TryFillBytes(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
