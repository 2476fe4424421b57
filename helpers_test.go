package randcompat

import (
	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

// failingV1 is an original-interface generator whose TryFillBytes always
// fails with err.
type failingV1 struct {
	rngcore.Step
	err   error
	calls int
}

func (f *failingV1) TryFillBytes([]byte) error {
	f.calls++
	return f.err
}

type failingV2 struct {
	rngcorev2.Step
	err   error
	calls int
}

func (f *failingV2) TryFill([]byte) error {
	f.calls++
	return f.err
}

// cryptoV1 pretends a deterministic generator is crypto-marked so tests can
// check the marker without depending on the OS.
type cryptoV1 struct {
	*rngcore.PCG32
}

func (cryptoV1) CryptoRng() {}

type cryptoV2 struct {
	*rngcorev2.PCG
}

func (cryptoV2) CryptoRNG() {}

// drawOriginal is written against the original interface only.
func drawOriginal(r rngcore.Source) (uint32, uint64) {
	return r.NextUint32(), r.NextUint64()
}

// drawCurrent is written against the current interface only.
func drawCurrent(r rngcorev2.Source) (uint32, uint64) {
	return r.Uint32(), r.Uint64()
}

func keyFromOriginal(r rngcore.CryptoSource) []byte {
	key := make([]byte, 32)
	r.FillBytes(key)
	return key
}

func keyFromCurrent(r rngcorev2.CryptoSource) []byte {
	key := make([]byte, 32)
	r.Fill(key)
	return key
}
