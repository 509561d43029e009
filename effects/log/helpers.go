package log

import (
	"context"
	"fmt"
	"os"

	"github.com/on-the-ground/cauchy_ive_go/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, func() context.Context) {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return WithZapEffectHandler(
		ctx,
		1,
		zap.New(consoleCore),
	)
}

// NewLogger builds a production JSON logger at the given level, or a
// development console logger when development is set.
func NewLogger(level string, development bool, opts ...zap.Option) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(level))
	return cfg.Build(opts...)
}

// WithConfiguredZapEffectHandler registers the log effect handler described by
// cfg: Level and Development select the logger, BufferSize the handler buffer.
func WithConfiguredZapEffectHandler(
	ctx context.Context,
	cfg config.LogConfig,
	opts ...zap.Option,
) (context.Context, func() context.Context, error) {
	logger, err := NewLogger(cfg.Level, cfg.Development, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	ctxWith, endOfLog := WithZapEffectHandler(ctx, cfg.BufferSize, logger)
	return ctxWith, endOfLog, nil
}
