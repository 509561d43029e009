package effects

import (
	"context"

	"github.com/on-the-ground/cauchy_ive_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/cauchy_ive_go/effects/internal/model"
)

type EffectEnum = effectmodel.EffectEnum

const EffectLog = effectmodel.EffectLog

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging, where the caller never waits
// for a result. Payloads are handled one at a time, in arrival order.
//
// The teardown function closes the handler: buffered payloads are handled,
// then the optional teardown passed here runs. It returns the context the
// handler was registered on, which should be used for further operations.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetEffectHandler(ctx, bufferSize, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)

	return ctxWith, func() context.Context {
		handler.Close()
		return ctx
	}
}

// FireAndForgetEffect hands payload to the handler registered for enum.
//
// It returns an error wrapping ErrNoEffectHandler when ctx carries no handler
// for enum, and reports whether the payload was accepted otherwise.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum EffectEnum,
	payload P,
) (bool, error) {
	handler, err := getTypedValueOf[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	if err != nil {
		return false, err
	}
	return handler.FireAndForgetEffect(ctx, payload), nil
}

// EffectIdOf returns the id of the fire-and-forget handler registered for enum
// in ctx.
func EffectIdOf[P any](ctx context.Context, enum EffectEnum) (string, error) {
	handler, err := getTypedValueOf[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return getHandler(ctx, enum)
		},
	)
	if err != nil {
		return "", err
	}
	return handler.EffectId, nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
