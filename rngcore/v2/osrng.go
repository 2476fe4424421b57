//go:build !randcompat_freestanding

package rngcore

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"syscall"
)

// OSRng reads from the operating system's entropy source via crypto/rand.
// Uint32, Uint64 and Fill panic if the entropy source fails.
type OSRng struct{}

var _ CryptoSource = OSRng{}

func (OSRng) CryptoRNG() {}

func (o OSRng) Uint32() uint32 {
	var buf [4]byte
	o.Fill(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (o OSRng) Uint64() uint64 {
	var buf [8]byte
	o.Fill(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (o OSRng) Fill(dst []byte) {
	if err := o.TryFill(dst); err != nil {
		panic("rngcore/v2: OSRng: " + err.Error())
	}
}

func (OSRng) TryFill(dst []byte) error {
	if _, err := rand.Read(dst); err != nil {
		var errno syscall.Errno
		if errors.As(err, &errno) && errno != 0 {
			return FromCode(uint32(errno))
		}
		return NewError(err)
	}
	return nil
}
