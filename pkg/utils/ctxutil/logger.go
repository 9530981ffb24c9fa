package ctxutil

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/psdemo/pkg/utils/logging"
)

type ctxLoggerKey struct{}

// Logger returns the logger carried by ctx, or the process default.
func Logger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return logging.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// WithLogAttrs derives a logger with args from the one in ctx and returns both.
func WithLogAttrs(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	logger := Logger(ctx).With(args...)
	return WithLogger(ctx, logger), logger
}
