package effects_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/cauchy_ive_go/effects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireAndForgetEffect_NoHandler(t *testing.T) {
	ok, err := effects.FireAndForgetEffect(context.Background(), effects.EffectLog, "payload")
	assert.False(t, ok)
	assert.ErrorIs(t, err, effects.ErrNoEffectHandler)
}

func TestFireAndForgetEffect_PayloadTypeMismatch(t *testing.T) {
	ctx, end := effects.WithFireAndForgetEffectHandler(
		context.Background(),
		1,
		effects.EffectLog,
		func(ctx context.Context, n int) {},
	)
	defer end()

	ok, err := effects.FireAndForgetEffect(ctx, effects.EffectLog, "not an int")
	assert.False(t, ok)
	assert.ErrorContains(t, err, "unexpected type")
}

func TestFireAndForgetEffect_TeardownRunsOnEnd(t *testing.T) {
	received := make(chan int, 1)
	tornDown := false

	ctx, end := effects.WithFireAndForgetEffectHandler(
		context.Background(),
		1,
		effects.EffectLog,
		func(ctx context.Context, n int) { received <- n },
		func() { tornDown = true },
	)

	ok, err := effects.FireAndForgetEffect(ctx, effects.EffectLog, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	select {
	case n := <-received:
		assert.Equal(t, 7, n)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for handler")
	}

	end()
	assert.True(t, tornDown)
}

func TestWithFireAndForgetEffectHandler_TooManyTeardownsPanics(t *testing.T) {
	assert.Panics(t, func() {
		effects.WithFireAndForgetEffectHandler(
			context.Background(),
			1,
			effects.EffectLog,
			func(ctx context.Context, n int) {},
			func() {},
			func() {},
		)
	})
}
