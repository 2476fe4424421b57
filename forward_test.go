package randcompat

import (
	"errors"
	"fmt"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/randcompat/rngcore"
	rngcorev2 "github.com/lox/randcompat/rngcore/v2"
)

func TestForwardDelegatesUint32(t *testing.T) {
	t.Parallel()

	for seed := range int64(32) {
		direct := rngcore.NewPCG32(seed)
		adapted := NewForward(direct.Clone())
		for range 16 {
			require.Equal(t, direct.NextUint32(), adapted.Uint32(), "seed %d", seed)
		}
	}
}

func TestForwardFixedSeedUint64(t *testing.T) {
	t.Parallel()

	direct := rngcore.NewPCG32(42).NextUint64()
	adapted := NewForward(rngcore.NewPCG32(42)).Uint64()
	assert.Equal(t, direct, adapted)
}

func TestForwardPreservesSequence(t *testing.T) {
	t.Parallel()

	direct := rngcore.NewPCG32(99)
	adapted := NewForward(direct.Clone())

	// Interleave every operation; any buffering or extra consumption in the
	// adapter would desynchronise the two generators.
	for i := range 50 {
		switch i % 4 {
		case 0:
			require.Equal(t, direct.NextUint32(), adapted.Uint32())
		case 1:
			require.Equal(t, direct.NextUint64(), adapted.Uint64())
		case 2:
			want := make([]byte, i)
			got := make([]byte, i)
			direct.FillBytes(want)
			adapted.Fill(got)
			require.Equal(t, want, got)
		case 3:
			want := make([]byte, i)
			got := make([]byte, i)
			require.NoError(t, direct.TryFillBytes(want))
			require.NoError(t, adapted.TryFill(got))
			require.Equal(t, want, got)
		}
	}
	assert.True(t, direct.Equal(adapted.Inner))
}

func TestForwardIntoCurrentAPI(t *testing.T) {
	t.Parallel()

	u32, u64 := drawCurrent(NewForward(rngcore.NewStep(1, 1)))
	assert.Equal(t, uint32(1), u32)
	assert.Equal(t, uint64(2), u64)

	// The adapter is a math/rand/v2 source as well.
	r := rngcorev2.New(NewForward(rngcore.NewPCG32(4)))
	assert.Equal(t, rngcore.NewPCG32(4).NextUint64(), r.Uint64())
}

func TestForwardTryFillRemapsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want uint32
	}{
		{"structured custom code", rngcore.FromCode(rngcorev2.CustomStart + 9), rngcorev2.CustomStart + 9},
		{"structured internal code", rngcore.FromCode(rngcorev2.InternalStart + 1), rngcorev2.InternalStart + 1},
		{"wrapped errno", rngcore.NewError(syscall.EAGAIN), uint32(syscall.EAGAIN)},
		{"opaque cause", rngcore.NewError(errors.New("device unplugged")), UnknownErrorCode},
		{"bare error", errors.New("not an rngcore error"), UnknownErrorCode},
		{"coded error behind opaque wrapper", rngcore.NewError(fmt.Errorf("read: %w", rngcorev2.FromCode(77))), 77},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := &failingV1{err: tt.err}
			adapted := NewForward(src)

			// The mapping must be stable across repeated failures.
			for range 3 {
				err := adapted.TryFill(make([]byte, 8))
				var target *rngcorev2.Error
				require.ErrorAs(t, err, &target)
				code, ok := target.Code()
				require.True(t, ok)
				assert.Equal(t, tt.want, code)
			}
			assert.Equal(t, 3, src.calls)
		})
	}
}

func TestForwardUnknownCodeIsCustom(t *testing.T) {
	t.Parallel()

	err := NewForward(&failingV1{err: rngcore.NewError(errors.New("x"))}).TryFill(nil)
	var target *rngcorev2.Error
	require.ErrorAs(t, err, &target)
	_, isOS := target.RawOSError()
	assert.False(t, isOS)
	assert.Equal(t, "custom error 0", target.Error())
}

func TestForwardCryptoMarker(t *testing.T) {
	t.Parallel()

	plain := NewForward(rngcore.NewPCG32(1))
	_, ok := any(plain).(rngcorev2.CryptoSource)
	assert.False(t, ok, "plain generator must not gain the crypto marker")

	secure := NewSecureForward(cryptoV1{rngcore.NewPCG32(1)})
	_, ok = any(secure).(rngcorev2.CryptoSource)
	assert.True(t, ok)

	key := keyFromCurrent(secure)
	want := make([]byte, 32)
	rngcore.NewPCG32(1).FillBytes(want)
	assert.Equal(t, want, key)
}

func TestForwardEqualCloneString(t *testing.T) {
	t.Parallel()

	a := NewForward(rngcore.NewPCG32(5))
	b := NewForward(rngcore.NewPCG32(5))
	assert.True(t, a.Equal(b))

	c := a.Clone()
	require.True(t, a.Equal(c))
	require.NotSame(t, a.Inner, c.Inner)
	assert.Equal(t, a.Uint64(), c.Uint64())

	a.Uint32()
	assert.False(t, a.Equal(c))

	assert.Equal(t, fmt.Sprintf("Forward(%v)", a.Inner), a.String())
	assert.Contains(t, a.String(), "PCG32{state: ")

	steps := NewForward(rngcore.NewStep(1, 1))
	assert.True(t, steps.Equal(steps.Clone()))

	var nilAdapter *Forward[*rngcore.PCG32]
	assert.False(t, a.Equal(nilAdapter))
}

func TestSecureForwardEqualClone(t *testing.T) {
	t.Parallel()

	a := NewSecureForward(cryptoV1{rngcore.NewPCG32(3)})
	c := a.Clone()
	// cryptoV1 has no Clone of its own, so the copy shares the generator.
	assert.Same(t, a.Inner.PCG32, c.Inner.PCG32)
	assert.True(t, a.Equal(c))
	assert.Contains(t, a.String(), "SecureForward(PCG32{state: ")
}

func TestForwardOverInterfaceUsesGeneratorMethods(t *testing.T) {
	t.Parallel()

	dynamic, ok := ForwardSource(rngcore.NewPCG32(5)).(*Forward[rngcore.Source])
	require.True(t, ok)

	for _, a := range []*Forward[rngcore.Source]{
		NewForward[rngcore.Source](rngcore.NewPCG32(5)),
		dynamic,
	} {
		b := NewForward[rngcore.Source](rngcore.NewPCG32(5))
		assert.True(t, a.Equal(b))

		c := a.Clone()
		require.NotSame(t, a.Inner, c.Inner)
		assert.True(t, a.Equal(c))
		assert.Equal(t, a.Uint64(), c.Uint64())

		a.Uint32()
		assert.False(t, a.Equal(c))
	}
}

func TestForwardEqualUncomparableInner(t *testing.T) {
	t.Parallel()

	a := NewForward[rngcore.Source](boxed{sliceSource{}})
	b := NewForward[rngcore.Source](boxed{sliceSource{}})
	assert.NotPanics(t, func() { assert.True(t, a.Equal(b)) })

	other := NewForward[rngcore.Source](boxed{sliceSource{[]uint64{1}}})
	assert.NotPanics(t, func() { assert.False(t, a.Equal(other)) })
}

func TestForwardStringNil(t *testing.T) {
	t.Parallel()

	var f *Forward[*rngcore.PCG32]
	assert.Equal(t, "Forward(<nil>)", f.String())

	var s *SecureForward[cryptoV1]
	assert.Equal(t, "SecureForward(<nil>)", s.String())
}
