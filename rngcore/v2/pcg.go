package rngcore

import (
	"fmt"
	"math/rand/v2"

	"github.com/lox/randcompat/internal/randutil"
)

// PCG wraps the standard library's rand/v2 PCG so that it satisfies Source.
// Two PCGs built from the same seed produce the same sequence.
type PCG struct {
	src *rand.PCG
}

// NewPCG returns a PCG seeded deterministically from seed.
func NewPCG(seed int64) *PCG {
	s1, s2 := randutil.SeedPair(seed)
	return &PCG{src: rand.NewPCG(s1, s2)}
}

// InitSeed reseeds in place.
func (p *PCG) InitSeed(seed int64) {
	s1, s2 := randutil.SeedPair(seed)
	p.src.Seed(s1, s2)
}

// Uint32 returns the high half of the next 64-bit output.
func (p *PCG) Uint32() uint32 {
	return uint32(p.src.Uint64() >> 32)
}

func (p *PCG) Uint64() uint64 {
	return p.src.Uint64()
}

func (p *PCG) Fill(dst []byte) {
	FillViaUint64(p, dst)
}

// TryFill never fails.
func (p *PCG) TryFill(dst []byte) error {
	p.Fill(dst)
	return nil
}

// Clone returns an independent generator in the same state.
func (p *PCG) Clone() *PCG {
	c := *p.src
	return &PCG{src: &c}
}

// Equal reports whether both generators are in the same state.
func (p *PCG) Equal(other *PCG) bool {
	if p == nil || other == nil {
		return p == other
	}
	return *p.src == *other.src
}

func (p *PCG) String() string {
	state, _ := p.src.MarshalBinary()
	return fmt.Sprintf("PCG{state: %x}", state[len(state)-16:])
}
