package randcompat

import (
	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

// ForwardSource adapts src to the current interface, preserving the crypto
// marker when src's dynamic type carries it. A src produced by
// BackwardSource or NewBackward is unwrapped instead of double-wrapped: the
// wrapped generator is returned as is, so its TryFill errors reach the
// caller unremapped and need not be *rngcorev2.Error values.
func ForwardSource(src rngcore.Source) rngcorev2.Source {
	if w, ok := src.(interface{ wrappedV2() rngcorev2.Source }); ok {
		return w.wrappedV2()
	}
	if c, ok := src.(rngcore.CryptoSource); ok {
		return NewSecureForward(c)
	}
	return NewForward(src)
}

// BackwardSource adapts src to the original interface, preserving the crypto
// marker when present. Forward adapters are unwrapped; as with ForwardSource,
// errors from an unwrapped generator are passed through unremapped.
func BackwardSource(src rngcorev2.Source) rngcore.Source {
	if w, ok := src.(interface{ wrappedV1() rngcore.Source }); ok {
		return w.wrappedV1()
	}
	if c, ok := src.(rngcorev2.CryptoSource); ok {
		return NewSecureBackward(c)
	}
	return NewBackward(src)
}

func (f *Forward[T]) wrappedV1() rngcore.Source { return f.Inner }

func (b *Backward[T]) wrappedV2() rngcorev2.Source { return b.Inner }
