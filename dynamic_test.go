package randcompat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

func TestForwardSourceChoosesVariant(t *testing.T) {
	t.Parallel()

	plain := ForwardSource(rngcore.NewPCG32(1))
	assert.IsType(t, &Forward[rngcore.Source]{}, plain)
	_, ok := plain.(rngcorev2.CryptoSource)
	assert.False(t, ok)

	secure := ForwardSource(cryptoV1{rngcore.NewPCG32(1)})
	assert.IsType(t, &SecureForward[rngcore.CryptoSource]{}, secure)
	_, ok = secure.(rngcorev2.CryptoSource)
	assert.True(t, ok)
}

func TestBackwardSourceChoosesVariant(t *testing.T) {
	t.Parallel()

	plain := BackwardSource(rngcorev2.NewPCG(1))
	_, ok := plain.(rngcore.CryptoSource)
	assert.False(t, ok)

	secure := BackwardSource(cryptoV2{rngcorev2.NewPCG(1)})
	_, ok = secure.(rngcore.CryptoSource)
	assert.True(t, ok)
}

func TestDynamicUnwrapsAdapters(t *testing.T) {
	t.Parallel()

	pcg := rngcorev2.NewPCG(3)
	assert.Same(t, pcg, ForwardSource(NewBackward(pcg)))
	assert.Same(t, pcg, ForwardSource(BackwardSource(pcg)))

	orig := rngcore.NewPCG32(3)
	assert.Same(t, orig, BackwardSource(NewForward(orig)))

	marked := cryptoV1{orig}
	unwrapped := BackwardSource(ForwardSource(marked))
	_, ok := unwrapped.(rngcore.CryptoSource)
	require.True(t, ok)
	assert.Equal(t, marked, unwrapped)
}

func TestDynamicUnwrapPassesErrorsThrough(t *testing.T) {
	t.Parallel()

	bare := errors.New("device gone")
	src := &failingV2{err: bare}
	unwrapped := ForwardSource(NewBackward(src))
	require.Same(t, src, unwrapped)

	err := unwrapped.TryFill(make([]byte, 4))
	assert.Same(t, bare, err)

	// A fresh adapter still remaps.
	var target *rngcorev2.Error
	assert.ErrorAs(t, NewForward(NewBackward(src)).TryFill(nil), &target)
}
