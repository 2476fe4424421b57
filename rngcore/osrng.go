//go:build !randcompat_freestanding

package rngcore

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"syscall"
)

// OSRng draws from the operating system's entropy source via crypto/rand.
//
// NextUint32, NextUint64 and FillBytes panic if the entropy source fails.
type OSRng struct{}

var _ CryptoSource = OSRng{}

func (OSRng) CryptoRng() {}

func (o OSRng) NextUint32() uint32 {
	var buf [4]byte
	o.FillBytes(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (o OSRng) NextUint64() uint64 {
	var buf [8]byte
	o.FillBytes(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (o OSRng) FillBytes(dst []byte) {
	if err := o.TryFillBytes(dst); err != nil {
		panic("rngcore: OSRng: " + err.Error())
	}
}

func (OSRng) TryFillBytes(dst []byte) error {
	if _, err := rand.Read(dst); err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) && errno != 0 {
			return FromCode(uint32(errno))
		}
		return NewError(err)
	}
	return nil
}
