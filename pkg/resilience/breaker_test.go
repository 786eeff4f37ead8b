package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/config"
)

// fakeClock advances only when told to.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time                  { return c.now }
func (c *fakeClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
func (c *fakeClock) Advance(d time.Duration)         { c.now = c.now.Add(d) }

func testResilienceConfig() *config.ResilienceConfig {
	return &config.ResilienceConfig{
		MaxRetries:          3,
		RetryInitialDelay:   time.Millisecond,
		RetryMaxDelay:       5 * time.Millisecond,
		BackoffFactor:       2,
		BreakerThreshold:    5,
		BreakerWindow:       2 * time.Minute,
		BreakerCooldown:     30 * time.Second,
		BreakerMaxCooldown:  8 * time.Minute,
		HealthDegradedBelow: 0.7,
		HealthCriticalBelow: 0.3,
	}
}

func tripBreaker(b *Breaker) {
	for i := 0; i < 5; i++ {
		b.OnFailure()
	}
}

func TestBreakerOpensAfterThresholdFailures(t *testing.T) {
	clock := newFakeClock()
	b := newBreaker(testResilienceConfig(), clock)

	for i := 0; i < 4; i++ {
		b.OnFailure()
		assert.Equal(t, StateClosed, b.State())
	}
	b.OnFailure()
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestBreakerWindowResetsFailureCount(t *testing.T) {
	clock := newFakeClock()
	b := newBreaker(testResilienceConfig(), clock)

	for i := 0; i < 4; i++ {
		b.OnFailure()
	}
	// Failures outside the rolling window start a fresh count.
	clock.Advance(3 * time.Minute)
	b.OnFailure()
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerSuccessResetsFailureCount(t *testing.T) {
	clock := newFakeClock()
	b := newBreaker(testResilienceConfig(), clock)

	for i := 0; i < 4; i++ {
		b.OnFailure()
	}
	b.OnSuccess()
	for i := 0; i < 4; i++ {
		b.OnFailure()
	}
	assert.Equal(t, StateClosed, b.State())
}

func TestBreakerHalfOpenProbeAndRecovery(t *testing.T) {
	clock := newFakeClock()
	b := newBreaker(testResilienceConfig(), clock)
	tripBreaker(b)

	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	clock.Advance(31 * time.Second)
	require.NoError(t, b.Allow())
	assert.Equal(t, StateHalfOpen, b.State())

	// Only one probe is admitted until it resolves.
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	b.OnSuccess()
	assert.Equal(t, StateClosed, b.State())
	require.NoError(t, b.Allow())
}

func TestBreakerHalfOpenFailureDoublesCooldown(t *testing.T) {
	clock := newFakeClock()
	b := newBreaker(testResilienceConfig(), clock)
	tripBreaker(b)

	clock.Advance(31 * time.Second)
	require.NoError(t, b.Allow())
	b.OnFailure()
	assert.Equal(t, StateOpen, b.State())

	// The doubled cooldown (60s) has not elapsed after 31s more.
	clock.Advance(31 * time.Second)
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	clock.Advance(30 * time.Second)
	require.NoError(t, b.Allow())
	b.OnSuccess()

	// Recovery restores the base cooldown.
	tripBreaker(b)
	clock.Advance(31 * time.Second)
	require.NoError(t, b.Allow())
}

func TestBreakerCooldownCap(t *testing.T) {
	cfg := testResilienceConfig()
	cfg.BreakerCooldown = 3 * time.Minute
	cfg.BreakerMaxCooldown = 4 * time.Minute
	clock := newFakeClock()
	b := newBreaker(cfg, clock)
	tripBreaker(b)

	// Fail the probe twice; cooldown would be 12m uncapped.
	for i := 0; i < 2; i++ {
		clock.Advance(cfg.BreakerMaxCooldown + time.Second)
		require.NoError(t, b.Allow())
		b.OnFailure()
	}
	clock.Advance(4*time.Minute + time.Second)
	require.NoError(t, b.Allow())
}

func TestBreakerSetKeysAndOpenCount(t *testing.T) {
	clock := newFakeClock()
	set := NewBreakerSet(testResilienceConfig(), clock)

	a := set.For("web-crawler", "scan-1")
	b := set.For("web-crawler", "scan-2")
	assert.NotSame(t, a, b)
	assert.Same(t, a, set.For("web-crawler", "scan-1"))

	tripBreaker(a)
	assert.Equal(t, 1, set.OpenCount())
	assert.Equal(t, StateOpen, set.States()["web-crawler|scan-1"])
	assert.Equal(t, StateClosed, set.States()["web-crawler|scan-2"])
}
