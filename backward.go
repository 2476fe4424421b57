package randcompat

import (
	"fmt"

	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

// Backward exposes a current-interface generator through the original
// interface.
type Backward[T rngcorev2.Source] struct {
	Inner T
}

var _ rngcore.Source = (*Backward[rngcorev2.Source])(nil)

// NewBackward wraps inner. It never fails and does not touch inner's state.
func NewBackward[T rngcorev2.Source](inner T) *Backward[T] {
	return &Backward[T]{Inner: inner}
}

func (b *Backward[T]) NextUint32() uint32 {
	return b.Inner.Uint32()
}

func (b *Backward[T]) NextUint64() uint64 {
	return b.Inner.Uint64()
}

func (b *Backward[T]) FillBytes(dst []byte) {
	b.Inner.Fill(dst)
}

// TryFillBytes delegates to TryFill and re-expresses any failure as a
// *rngcore.Error.
func (b *Backward[T]) TryFillBytes(dst []byte) error {
	if err := b.Inner.TryFill(dst); err != nil {
		return rngcore.FromCode(remapCode(err))
	}
	return nil
}

func (b *Backward[T]) Equal(other *Backward[T]) bool {
	if b == nil || other == nil {
		return b == other
	}
	return equalValues(b.Inner, other.Inner)
}

func (b *Backward[T]) Clone() *Backward[T] {
	return &Backward[T]{Inner: cloneValue(b.Inner)}
}

func (b *Backward[T]) String() string {
	if b == nil {
		return "Backward(<nil>)"
	}
	return fmt.Sprintf("Backward(%v)", b.Inner)
}

// SecureBackward is a Backward over a crypto-marked generator and is
// crypto-marked in the original interface.
type SecureBackward[T rngcorev2.CryptoSource] struct {
	Backward[T]
}

var _ rngcore.CryptoSource = (*SecureBackward[rngcorev2.CryptoSource])(nil)

func NewSecureBackward[T rngcorev2.CryptoSource](inner T) *SecureBackward[T] {
	return &SecureBackward[T]{Backward: Backward[T]{Inner: inner}}
}

func (*SecureBackward[T]) CryptoRng() {}

func (b *SecureBackward[T]) Equal(other *SecureBackward[T]) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Backward.Equal(&other.Backward)
}

func (b *SecureBackward[T]) Clone() *SecureBackward[T] {
	return &SecureBackward[T]{Backward: *b.Backward.Clone()}
}

func (b *SecureBackward[T]) String() string {
	if b == nil {
		return "SecureBackward(<nil>)"
	}
	return fmt.Sprintf("SecureBackward(%v)", b.Inner)
}
