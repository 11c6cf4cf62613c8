package zaplog

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/krew-solutions/eos-go/eos/registry"
)

// Component tags every log line the registry produces. Add it once, to the
// base logger.
var Component = zap.String("component", "eos")

// New builds a JSON production logger writing to stdout, and additionally to
// $LOG_FILE when set.
func New(level string, fields ...zap.Field) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrapf(err, "zaplog: level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stdout"}

	if logFile := os.Getenv("LOG_FILE"); logFile != "" {
		if err := ensureLogFile(logFile); err != nil {
			return nil, errors.Wrap(err, "zaplog: prepare log file")
		}
		cfg.OutputPaths = append(cfg.OutputPaths, logFile)
		cfg.ErrorOutputPaths = append(cfg.ErrorOutputPaths, logFile)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "zaplog: build")
	}
	return l.With(fields...), nil
}

// Interceptor logs every observer invocation at debug level and failures at
// error level. The error is passed through unchanged. logger is used as is;
// build it with Component to tag the lines.
func Interceptor(logger *zap.Logger) registry.Interceptor {
	return func(ctx context.Context, inv registry.Invocation, next func(context.Context) error) error {
		start := time.Now()
		err := next(ctx)
		fields := []zap.Field{
			zap.String("event", string(inv.Event)),
			zap.String("kind", string(inv.Handle.Kind())),
			zap.Stringer("handle", inv.Handle.ID()),
			zap.Int("position", inv.Position),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			logger.Error("observer_failed", append(fields, zap.Error(err))...)
			return err
		}
		logger.Debug("observer_invoked", fields...)
		return nil
	}
}

func ensureLogFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	return f.Close()
}
