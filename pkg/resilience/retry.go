package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
)

// RetryPolicy bounds the retry loop around one collector invocation.
type RetryPolicy struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// PolicyFromConfig maps the resilience configuration onto a RetryPolicy.
func PolicyFromConfig(cfg *config.ResilienceConfig) RetryPolicy {
	return RetryPolicy{
		MaxRetries:    cfg.MaxRetries,
		InitialDelay:  cfg.RetryInitialDelay,
		MaxDelay:      cfg.RetryMaxDelay,
		BackoffFactor: cfg.BackoffFactor,
	}
}

func (p RetryPolicy) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialDelay
	b.MaxInterval = p.MaxDelay
	b.Multiplier = p.BackoffFactor
	b.RandomizationFactor = 0.25
	b.MaxElapsedTime = 0 // attempts are bounded by MaxRetries, not wall time
	b.Reset()
	return b
}

// attemptsFor returns the total attempt budget for an error kind. Internal
// errors get a single retry regardless of policy; non-retriable kinds get
// none.
func (p RetryPolicy) attemptsFor(kind errkind.Kind) int {
	switch {
	case !errkind.Retriable(kind):
		return 1
	case kind == errkind.Internal:
		return 2
	default:
		return p.MaxRetries + 1
	}
}

// Retry runs op until it succeeds, exhausts the attempt budget for the
// error kind it keeps returning, or the context ends. Delays follow
// exponential backoff with jitter; a RateLimited error carrying a
// retry-after hint overrides the computed delay when the hint is longer.
func Retry(ctx context.Context, p RetryPolicy, op func(ctx context.Context) error) (attempts int, err error) {
	bo := p.newBackOff()

	for {
		attempts++
		err = op(ctx)
		if err == nil {
			return attempts, nil
		}
		if ctx.Err() != nil {
			return attempts, ctx.Err()
		}
		if errors.Is(err, ErrCircuitOpen) {
			// Fast-fail: an open breaker will not close between attempts.
			return attempts, err
		}

		kind := errkind.Of(err)
		if attempts >= p.attemptsFor(kind) {
			return attempts, err
		}

		delay := bo.NextBackOff()
		if delay == backoff.Stop {
			return attempts, err
		}
		if hint, ok := errkind.RetryAfterHint(err); ok && hint > delay {
			delay = hint
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return attempts, ctx.Err()
		case <-timer.C:
		}
	}
}
