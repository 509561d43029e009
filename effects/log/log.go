package log

import (
	"context"

	"github.com/on-the-ground/cauchy_ive_go/effects"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// ParseLevel maps a configured level name to a zap level.
// Unknown names fall back to info.
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// LogPayload is the payload structure for logging effect.
// It contains the log level, message string, and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapEffectHandler registers a fire-and-forget log effect handler using zap.Logger.
// The returned context includes the handler under the EffectLog enum.
// The teardown function flushes pending entries and syncs the logger; the
// context it returns should be used for further operations.
func WithZapEffectHandler(
	ctx context.Context,
	bufferSize int,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	ctxWith, endOfHandler := effects.WithFireAndForgetEffectHandler(
		ctx,
		bufferSize,
		effects.EffectLog,
		func(ctx context.Context, payload LogPayload) {
			fields := make([]zap.Field, 0, len(payload.Fields))
			for k, v := range payload.Fields {
				fields = append(fields, zap.Any(k, v))
			}

			switch payload.Level {
			case LogInfo:
				logger.Info(payload.Message, fields...)
			case LogWarn:
				logger.Warn(payload.Message, fields...)
			case LogError:
				logger.Error(payload.Message, fields...)
			case LogDebug:
				logger.Debug(payload.Message, fields...)
			default:
				logger.Info(payload.Message, fields...)
			}
		},
	)

	effectId, _ := effects.EffectIdOf[LogPayload](ctxWith, effects.EffectLog)
	logger.Debug("created log effect handler",
		zap.String("effectId", effectId),
		zap.String("enum", string(effects.EffectLog)),
	)

	return ctxWith, func() context.Context {
		parent := endOfHandler()
		logger.Debug("closed log effect handler",
			zap.String("effectId", effectId),
			zap.String("enum", string(effects.EffectLog)),
		)
		// stdout/stderr syncers return EINVAL on some platforms
		_ = logger.Sync()
		return parent
	}
}

// Effect performs a fire-and-forget log effect using the EffectLog handler in the context.
// Without a registered handler the entry is discarded: logging never changes
// the outcome of the caller.
func Effect(ctx context.Context, level LogLevel, msg string, fields map[string]interface{}) {
	_, _ = effects.FireAndForgetEffect(ctx, effects.EffectLog, LogPayload{
		Level:   level,
		Message: msg,
		Fields:  fields,
	})
}
