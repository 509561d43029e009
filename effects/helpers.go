package effects

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/cauchy_ive_go/effects/internal/model"
)

var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

// getHandler checks whether a handler for the given EffectEnum is registered in the context.
// Returns an error if not found.
func getHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEffectHandler, enum)
	}
	return raw, nil
}

// getTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func getTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}
