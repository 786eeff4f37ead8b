package resilience

import "time"

// Clock abstracts time for breaker and health bookkeeping so state
// transitions can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// SystemClock returns the wall clock.
func SystemClock() Clock { return systemClock{} }
