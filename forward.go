package randcompat

import (
	"fmt"

	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

// Forward exposes an original-interface generator through the current
// interface.
type Forward[T rngcore.Source] struct {
	Inner T
}

var _ rngcorev2.Source = (*Forward[rngcore.Source])(nil)

// NewForward wraps inner. It never fails and does not touch inner's state.
func NewForward[T rngcore.Source](inner T) *Forward[T] {
	return &Forward[T]{Inner: inner}
}

func (f *Forward[T]) Uint32() uint32 {
	return f.Inner.NextUint32()
}

func (f *Forward[T]) Uint64() uint64 {
	return f.Inner.NextUint64()
}

func (f *Forward[T]) Fill(dst []byte) {
	f.Inner.FillBytes(dst)
}

// TryFill delegates to TryFillBytes and re-expresses any failure as a
// *rngcorev2.Error.
func (f *Forward[T]) TryFill(dst []byte) error {
	if err := f.Inner.TryFillBytes(dst); err != nil {
		return rngcorev2.FromCode(remapCode(err))
	}
	return nil
}

// Equal reports whether both adapters wrap equal generators.
func (f *Forward[T]) Equal(other *Forward[T]) bool {
	if f == nil || other == nil {
		return f == other
	}
	return equalValues(f.Inner, other.Inner)
}

// Clone duplicates the adapter and, where the generator supports it, the
// generator's state.
func (f *Forward[T]) Clone() *Forward[T] {
	return &Forward[T]{Inner: cloneValue(f.Inner)}
}

func (f *Forward[T]) String() string {
	if f == nil {
		return "Forward(<nil>)"
	}
	return fmt.Sprintf("Forward(%v)", f.Inner)
}

// SecureForward is a Forward over a crypto-marked generator. It is itself
// crypto-marked in the current interface.
type SecureForward[T rngcore.CryptoSource] struct {
	Forward[T]
}

var _ rngcorev2.CryptoSource = (*SecureForward[rngcore.CryptoSource])(nil)

// NewSecureForward wraps a crypto-marked generator.
func NewSecureForward[T rngcore.CryptoSource](inner T) *SecureForward[T] {
	return &SecureForward[T]{Forward: Forward[T]{Inner: inner}}
}

func (*SecureForward[T]) CryptoRNG() {}

func (f *SecureForward[T]) Equal(other *SecureForward[T]) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Forward.Equal(&other.Forward)
}

func (f *SecureForward[T]) Clone() *SecureForward[T] {
	return &SecureForward[T]{Forward: *f.Forward.Clone()}
}

func (f *SecureForward[T]) String() string {
	if f == nil {
		return "SecureForward(<nil>)"
	}
	return fmt.Sprintf("SecureForward(%v)", f.Inner)
}
