// Package errkind classifies collector and pipeline errors into the kinds
// the resilience layer and queue subsystem act on: what is retriable, what
// counts toward the circuit breaker, and what must surface to the caller.
package errkind

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// Kind is the error classification.
type Kind string

// Error kinds.
const (
	// TransientNetwork is retriable and counts toward the circuit breaker.
	TransientNetwork Kind = "transient_network"

	// RateLimited is retriable with a longer backoff; may carry a retry-after hint.
	RateLimited Kind = "rate_limited"

	// Timeout is retriable up to maxRetries, then recorded as a stage failure.
	Timeout Kind = "timeout"

	// AuthFailure is non-retriable; the collector is unavailable for this scan.
	AuthFailure Kind = "auth_failure"

	// InvalidInput is non-retriable; surfaced to the caller.
	InvalidInput Kind = "invalid_input"

	// UpstreamMalformed is non-retriable for this attempt; collectors return
	// partialOk with whatever evidence survived parsing.
	UpstreamMalformed Kind = "upstream_malformed"

	// Canceled propagates; never retried, never counted toward the breaker.
	Canceled Kind = "canceled"

	// Internal is unexpected; retried once, then fatal.
	Internal Kind = "internal"
)

// Error pairs an underlying error with its kind and an optional backoff hint.
type Error struct {
	Kind       Kind
	RetryAfter time.Duration // only meaningful for RateLimited
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a classified error.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Newf creates a classified error from a format string.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// RateLimitedAfter creates a RateLimited error carrying the upstream's
// retry-after hint.
func RateLimitedAfter(err error, after time.Duration) *Error {
	return &Error{Kind: RateLimited, RetryAfter: after, Err: err}
}

// Of returns the kind of err. Unclassified errors map to Internal;
// context cancellation and deadline errors map to Canceled and Timeout.
func Of(err error) Kind {
	if err == nil {
		return ""
	}
	var ke *Error
	if errors.As(err, &ke) {
		return ke.Kind
	}
	if errors.Is(err, context.Canceled) {
		return Canceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	var ne net.Error
	if errors.As(err, &ne) {
		if ne.Timeout() {
			return Timeout
		}
		return TransientNetwork
	}
	return Internal
}

// Retriable reports whether the resilience layer may reattempt after this kind.
// Internal is retriable once; the retry policy enforces the single attempt.
func Retriable(kind Kind) bool {
	switch kind {
	case TransientNetwork, RateLimited, Timeout, Internal:
		return true
	}
	return false
}

// CountsTowardBreaker reports whether a failure of this kind advances the
// circuit breaker's consecutive-failure count.
func CountsTowardBreaker(kind Kind) bool {
	switch kind {
	case Canceled, InvalidInput:
		return false
	}
	return true
}

// RetryAfterHint extracts the rate-limit backoff hint, if err carries one.
func RetryAfterHint(err error) (time.Duration, bool) {
	var ke *Error
	if errors.As(err, &ke) && ke.Kind == RateLimited && ke.RetryAfter > 0 {
		return ke.RetryAfter, true
	}
	return 0, false
}
