package rngcore

import "math/rand"

// Seeder is implemented by generators that can be reseeded in place.
type Seeder interface {
	InitSeed(seed int64)
}

// AsMathRand returns a *rand.Rand from the standard library's math/rand
// package that draws from src.
//
// Calling Seed on the result reseeds src if it implements Seeder and is
// ignored otherwise.
func AsMathRand(src Source) *rand.Rand {
	return rand.New(&mathSource{src: src})
}

// mathSource adapts a Source to rand.Source64.
type mathSource struct {
	src Source
}

var _ rand.Source64 = (*mathSource)(nil)

func (s *mathSource) Int63() int64 {
	return int64(s.src.NextUint64() >> 1)
}

func (s *mathSource) Uint64() uint64 {
	return s.src.NextUint64()
}

func (s *mathSource) Seed(seed int64) {
	if seeder, ok := s.src.(Seeder); ok {
		seeder.InitSeed(seed)
	}
}
