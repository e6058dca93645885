package contextutil_test

import (
	"context"
	"testing"

	"geo-attend/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetLogger(t *testing.T) {
	t.Run("request logger wins", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := contextutil.WithLogger(context.Background(), zap.New(core))

		contextutil.GetLogger(ctx, zap.NewNop()).Info("hello")

		assert.Equal(t, 1, logs.Len())
	})

	t.Run("fallback tagged with request id", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		ctx := contextutil.WithRequestID(context.Background(), "req-7")

		contextutil.GetLogger(ctx, zap.New(core)).Info("hello")

		if assert.Equal(t, 1, logs.Len()) {
			assert.Equal(t, "req-7", logs.All()[0].ContextMap()["request_id"])
		}
	})

	t.Run("nil context and fallback", func(t *testing.T) {
		assert.NotNil(t, contextutil.GetLogger(nil, nil))
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, contextutil.GetRequestID(context.Background()))
}
