package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/probeworks/diligent/pkg/config"
)

func TestPoolRegisterAndCancelScan(t *testing.T) {
	pool := &WorkerPool{
		activeScans: make(map[string]context.CancelFunc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterScan("scan-1", cancel)

	assert.True(t, pool.CancelScan("scan-1"))
	assert.Error(t, ctx.Err())

	assert.False(t, pool.CancelScan("unknown"))
}

func TestPoolUnregisterScan(t *testing.T) {
	pool := &WorkerPool{
		activeScans: make(map[string]context.CancelFunc),
	}

	_, cancel := context.WithCancel(context.Background())
	pool.RegisterScan("scan-1", cancel)
	assert.True(t, pool.CancelScan("scan-1"))

	pool.UnregisterScan("scan-1")
	assert.False(t, pool.CancelScan("scan-1"))
}

func TestRetryDelayBackoff(t *testing.T) {
	s := &Service{cfg: &config.QueueConfig{
		RetryInitialDelay: 2 * time.Second,
		RetryMaxDelay:     30 * time.Second,
		BackoffFactor:     2,
	}}

	assert.Equal(t, 2*time.Second, s.retryDelay(1))
	assert.Equal(t, 4*time.Second, s.retryDelay(2))
	assert.Equal(t, 8*time.Second, s.retryDelay(3))
	assert.Equal(t, 16*time.Second, s.retryDelay(4))
	// Capped at the max delay.
	assert.Equal(t, 30*time.Second, s.retryDelay(5))
	assert.Equal(t, 30*time.Second, s.retryDelay(10))
	// Degenerate attempt counts fall back to the initial delay.
	assert.Equal(t, 2*time.Second, s.retryDelay(0))
}

func TestWorkerPollIntervalJitter(t *testing.T) {
	w := &Worker{cfg: &config.QueueConfig{PollInterval: time.Second}}
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.Less(t, d, 1500*time.Millisecond)
	}
}
