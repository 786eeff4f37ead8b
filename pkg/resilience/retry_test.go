package resilience

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/errkind"
)

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:    3,
		InitialDelay:  time.Millisecond,
		MaxDelay:      2 * time.Millisecond,
		BackoffFactor: 2,
	}
}

func TestRetrySucceedsAfterTransientFailures(t *testing.T) {
	calls := 0
	attempts, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errkind.Newf(errkind.TransientNetwork, "flaky")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetryExhaustsBudget(t *testing.T) {
	attempts, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
		return errkind.Newf(errkind.Timeout, "slow upstream")
	})
	require.Error(t, err)
	assert.Equal(t, 4, attempts) // maxRetries + 1
	assert.Equal(t, errkind.Timeout, errkind.Of(err))
}

func TestRetryNonRetriableBypassesRetry(t *testing.T) {
	for _, kind := range []errkind.Kind{errkind.AuthFailure, errkind.InvalidInput, errkind.UpstreamMalformed} {
		calls := 0
		attempts, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
			calls++
			return errkind.Newf(kind, "fatal")
		})
		require.Error(t, err)
		assert.Equal(t, 1, attempts, "kind %v", kind)
		assert.Equal(t, 1, calls, "kind %v", kind)
	}
}

func TestRetryInternalRetriedOnce(t *testing.T) {
	attempts, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
		return errors.New("unexpected state")
	})
	require.Error(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRetryStopsOnCircuitOpen(t *testing.T) {
	calls := 0
	attempts, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
		calls++
		return ErrCircuitOpen
	})
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, 1, calls)
}

func TestRetryHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, err := Retry(ctx, testPolicy(), func(ctx context.Context) error {
		calls++
		cancel()
		return errkind.Newf(errkind.TransientNetwork, "flaky")
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestRetryRateLimitHintExtendsDelay(t *testing.T) {
	hint := 20 * time.Millisecond
	start := time.Now()
	calls := 0
	_, err := Retry(context.Background(), testPolicy(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return errkind.RateLimitedAfter(errors.New("429"), hint)
		}
		return nil
	})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), hint)
}
