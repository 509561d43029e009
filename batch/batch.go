// Package batch evaluates the Cauchy density at many points concurrently.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/cauchy_ive_go/cauchy"
	"github.com/on-the-ground/cauchy_ive_go/config"
	"github.com/on-the-ground/cauchy_ive_go/effects/log"
	"golang.org/x/sync/errgroup"
)

var ErrShortOutput = errors.New("output shorter than input")

// Evaluate returns the density of the Cauchy distribution (x0, gamma) at
// every point of xs, in order. xs is not modified.
func Evaluate(
	ctx context.Context,
	cfg config.BatchConfig,
	x0, gamma float64,
	xs []float64,
) ([]float64, error) {
	out := make([]float64, len(xs))
	if err := EvaluateInto(ctx, cfg, x0, gamma, xs, out); err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluateInto is Evaluate writing into out, which must be at least as long
// as xs. On error the content of out is unspecified.
//
// Points are split into chunks of cfg.ChunkSize, evaluated by at most
// cfg.NumWorkers goroutines. A cancelled ctx stops chunks that have not
// started yet and its error is returned. With cfg.TableSize > 0 the points go
// through a memo table shared by the workers.
func EvaluateInto(
	ctx context.Context,
	cfg config.BatchConfig,
	x0, gamma float64,
	xs, out []float64,
) error {
	if len(out) < len(xs) {
		return fmt.Errorf("%w: %d < %d", ErrShortOutput, len(out), len(xs))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"x0":     x0,
		"gamma":  gamma,
		"points": len(xs),
	}
	if !(cauchy.Cauchy{X0: x0, Gamma: gamma}).Valid() {
		log.Effect(ctx, log.LogWarn, "invalid cauchy parameters, every density is NaN", fields)
	}
	log.Effect(ctx, log.LogDebug, "batch evaluation started", fields)

	pdf := evaluator(x0, gamma, cfg.TableSize)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.NumWorkers)
	var stopErr error
	for start := 0; start < len(xs); start += cfg.ChunkSize {
		if stopErr = egCtx.Err(); stopErr != nil {
			break
		}
		end := min(start+cfg.ChunkSize, len(xs))
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = pdf(xs[i])
			}
			return nil
		})
	}

	err := eg.Wait()
	if err == nil {
		err = stopErr
	}
	if err != nil {
		log.Effect(context.WithoutCancel(ctx), log.LogWarn, "batch evaluation stopped", map[string]interface{}{
			"points": len(xs),
			"error":  err.Error(),
		})
		return fmt.Errorf("batch evaluation: %w", err)
	}

	log.Effect(ctx, log.LogDebug, "batch evaluation finished", fields)
	return nil
}

func evaluator(x0, gamma float64, tableSize uint32) func(float64) float64 {
	if tableSize == 0 {
		return cauchy.Factory(x0, gamma)
	}
	return cauchy.TableizedFactory(x0, gamma, tableSize)
}
