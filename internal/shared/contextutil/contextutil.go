package contextutil

import (
	"context"

	"go.uber.org/zap"
)

type (
	requestIDKey struct{}
	loggerKey    struct{}
)

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// GetRequestID returns "" outside a request.
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger prefers the request-scoped logger stored by WithLogger. Without
// one it returns fallback tagged with the request id when there is one, or
// the zap global when fallback is nil.
func GetLogger(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if fallback == nil {
		fallback = zap.L()
	}
	if rid := GetRequestID(ctx); rid != "" {
		return fallback.With(zap.String("request_id", rid))
	}
	return fallback
}
