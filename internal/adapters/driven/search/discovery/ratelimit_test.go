package discovery

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_AllowWithinBurst(t *testing.T) {
	limiter := NewRateLimiter(100)

	// Burst allows up to defaultBurstSize immediate requests
	for i := 0; i < defaultBurstSize; i++ {
		assert.True(t, limiter.Allow(), "request %d should be allowed", i)
	}
}

func TestRateLimiter_WaitRespectsContext(t *testing.T) {
	limiter := NewRateLimiter(0.001)

	// Drain the burst
	for limiter.Allow() {
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.Error(t, err)
}

func TestRateLimiter_RecordRateLimitError(t *testing.T) {
	limiter := NewRateLimiter(100)

	limiter.RecordRateLimitError(60)

	assert.False(t, limiter.Allow())
}

func TestRateLimiter_RecordRateLimitError_DefaultBackoff(t *testing.T) {
	limiter := NewRateLimiter(100)

	limiter.RecordRateLimitError(0)

	assert.False(t, limiter.Allow())
}

func TestRateLimiter_BackoffExpires(t *testing.T) {
	limiter := NewRateLimiter(100)

	limiter.mu.Lock()
	limiter.retryAt = time.Now().Add(10 * time.Millisecond)
	limiter.mu.Unlock()

	assert.False(t, limiter.Allow())

	require.Eventually(t, func() bool {
		return limiter.Allow()
	}, time.Second, 5*time.Millisecond)
}

func TestNewRateLimiter_NonPositiveRateUsesDefault(t *testing.T) {
	limiter := NewRateLimiter(0)

	require.NotNil(t, limiter)
	assert.True(t, limiter.Allow())
}
