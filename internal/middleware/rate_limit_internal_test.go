package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestClientLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	l := NewClientLimiter(rate.Limit(1), 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.Equal(t, 1, l.Len())

	now = now.Add(clientIdleTTL + time.Second)
	assert.True(t, l.Allow("10.0.0.2"))
	assert.Equal(t, 1, l.Len())

	assert.True(t, l.Allow("10.0.0.1"), "evicted client starts with a fresh bucket")
	assert.Equal(t, 2, l.Len())
}
