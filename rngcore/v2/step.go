package rngcore

// Step is a mock generator yielding Value, Value+Increment, ... (wrapping).
// Uint32 truncates the next 64-bit value.
type Step struct {
	Value     uint64
	Increment uint64
}

// NewStep returns a Step starting at initial.
func NewStep(initial, increment uint64) *Step {
	return &Step{Value: initial, Increment: increment}
}

func (s *Step) Uint32() uint32 { return uint32(s.Uint64()) }

func (s *Step) Uint64() uint64 {
	v := s.Value
	s.Value += s.Increment
	return v
}

func (s *Step) Fill(dst []byte) { FillViaUint64(s, dst) }

func (s *Step) TryFill(dst []byte) error {
	s.Fill(dst)
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
