package logging

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

type contextKey struct{}

var ErrNoLoggerInContext = errors.New("no logger in context")

// ContextWithLogger stores logger in ctx. The cli commands use it to
// hand the root logger from the app's Before hook to their actions.
func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

func LoggerFromContext(ctx context.Context) (*zap.Logger, error) {
	if logger, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return logger, nil
	}

	return nil, ErrNoLoggerInContext
}
