package rngcore

// Step is a mock generator that returns an arithmetic sequence: Value,
// Value+Increment, and so on, wrapping on overflow. NextUint32 truncates
// the next 64-bit value.
//
// It is only useful for tests that need fully predictable output.
type Step struct {
	Value     uint64
	Increment uint64
}

// NewStep returns a Step starting at initial.
func NewStep(initial, increment uint64) *Step {
	return &Step{Value: initial, Increment: increment}
}

func (s *Step) NextUint32() uint32 {
	return uint32(s.NextUint64())
}

func (s *Step) NextUint64() uint64 {
	v := s.Value
	s.Value += s.Increment
	return v
}

func (s *Step) FillBytes(dst []byte) {
	FillBytesViaNext(s, dst)
}

func (s *Step) TryFillBytes(dst []byte) error {
	s.FillBytes(dst)
	return nil
}

// Clone returns an independent copy.
func (s *Step) Clone() *Step {
	c := *s
	return &c
}

// Equal reports whether both generators would produce the same sequence.
func (s *Step) Equal(other *Step) bool {
	if s == nil || other == nil {
		return s == other
	}
	return *s == *other
}
