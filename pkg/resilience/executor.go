package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// Outcome is the result of one resilient capability execution.
type Outcome struct {
	Items     []models.EvidenceItem
	Collector string
	Attempts  int

	// Fallback is true when the evidence came from the heuristic
	// collector after the whole chain failed.
	Fallback bool

	// Partial is true when the collector succeeded with an incomplete
	// result set.
	Partial bool
}

// Executor wraps collector invocations with, outermost first: a deadline,
// a circuit breaker, bounded retries, and a capability fallback chain
// ending in the heuristic collector.
type Executor struct {
	registry *collector.Registry
	breakers *BreakerSet
	health   *HealthMonitor
	policy   RetryPolicy
	fallback collector.Collector
	clock    Clock
	logger   *slog.Logger

	mu          sync.Mutex
	unavailable map[string]struct{} // "scanID|collector", set on auth failure
}

func NewExecutor(
	cfg *config.ResilienceConfig,
	registry *collector.Registry,
	breakers *BreakerSet,
	health *HealthMonitor,
	fallback collector.Collector,
	clock Clock,
	logger *slog.Logger,
) *Executor {
	if clock == nil {
		clock = SystemClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		registry:    registry,
		breakers:    breakers,
		health:      health,
		policy:      PolicyFromConfig(cfg),
		fallback:    fallback,
		clock:       clock,
		logger:      logger,
		unavailable: make(map[string]struct{}),
	}
}

// Health exposes the monitor for orchestrator gating.
func (e *Executor) Health() *HealthMonitor { return e.health }

// Execute runs the fallback chain for cap until one collector yields
// evidence. stageBudget caps each invocation's deadline when it is shorter
// than the collector's own timeout. The heuristic fallback, when set, is
// tried last and its items are marked as fallback evidence.
func (e *Executor) Execute(ctx context.Context, cap collector.Capability, in collector.Input, stageBudget time.Duration) (Outcome, error) {
	chain, err := e.registry.ByCapability(cap)
	if err != nil && e.fallback == nil {
		return Outcome{}, err
	}

	var lastErr error
	totalAttempts := 0
	for _, c := range chain {
		if e.fallback != nil && c.Name() == e.fallback.Name() {
			continue
		}
		if err := ctx.Err(); err != nil {
			return Outcome{Attempts: totalAttempts}, err
		}
		if e.isUnavailable(in.ScanID, c.Name()) {
			continue
		}

		out, err := e.runCollector(ctx, c, in, stageBudget)
		totalAttempts += out.Attempts
		if err == nil {
			out.Attempts = totalAttempts
			return out, nil
		}
		if errors.Is(err, context.Canceled) || errkind.Of(err) == errkind.Canceled {
			return Outcome{Attempts: totalAttempts}, err
		}
		lastErr = err
		e.logger.Warn("Collector failed, trying next in chain",
			"collector", c.Name(), "capability", string(cap), "error", err)
	}

	if e.fallback != nil {
		items, _, ferr := e.fallback.Collect(ctx, in)
		if ferr == nil {
			return Outcome{
				Items:     items,
				Collector: e.fallback.Name(),
				Attempts:  totalAttempts + 1,
				Fallback:  true,
			}, nil
		}
		e.logger.Error("Heuristic fallback failed", "error", ferr)
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no collector available for capability %q", cap)
	}
	return Outcome{Attempts: totalAttempts}, lastErr
}

// ExecuteNamed runs a single named collector with the full resilience
// treatment but no fallback chain. Used when a stage needs a specific
// collector rather than the best available for a capability.
func (e *Executor) ExecuteNamed(ctx context.Context, name string, in collector.Input, stageBudget time.Duration) (Outcome, error) {
	c, err := e.registry.Get(name)
	if err != nil {
		return Outcome{}, err
	}
	if e.isUnavailable(in.ScanID, name) {
		return Outcome{}, errkind.Newf(errkind.AuthFailure, "collector %s marked unavailable for scan", name)
	}
	return e.runCollector(ctx, c, in, stageBudget)
}

// runCollector applies timeout, breaker, and retry to a single collector.
func (e *Executor) runCollector(ctx context.Context, c collector.Collector, in collector.Input, stageBudget time.Duration) (Outcome, error) {
	name := c.Name()
	breaker := e.breakers.For(name, in.ScanID)

	timeout := e.registry.Timeout(name)
	if stageBudget > 0 && (timeout == 0 || stageBudget < timeout) {
		timeout = stageBudget
	}

	var (
		items   []models.EvidenceItem
		partial bool
	)
	attempts, err := Retry(ctx, e.policy, func(ctx context.Context) error {
		if err := breaker.Allow(); err != nil {
			return err
		}

		attemptCtx := ctx
		cancel := context.CancelFunc(func() {})
		if timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		}
		start := e.clock.Now()
		gotItems, gotPartial, callErr := c.Collect(attemptCtx, in)
		cancel()
		latency := e.clock.Since(start)

		if callErr == nil {
			e.health.Observe(name, true, latency)
			breaker.OnSuccess()
			items, partial = gotItems, gotPartial
			return nil
		}

		kind := errkind.Of(callErr)
		e.health.Observe(name, false, latency)
		if errkind.CountsTowardBreaker(kind) {
			breaker.OnFailure()
		}
		switch kind {
		case errkind.AuthFailure:
			e.markUnavailable(in.ScanID, name)
		case errkind.UpstreamMalformed:
			// The attempt is unusable but the collector is fine: report
			// an empty partial result instead of failing the chain.
			e.logger.Warn("Collector returned malformed upstream data",
				"collector", name, "error", callErr)
			items, partial = nil, true
			return nil
		}
		return callErr
	})
	if err != nil {
		return Outcome{Attempts: attempts}, err
	}
	return Outcome{Items: items, Collector: name, Attempts: attempts, Partial: partial}, nil
}

// ReleaseScan forgets per-scan collector availability state.
func (e *Executor) ReleaseScan(scanID string) {
	prefix := scanID + "|"
	e.mu.Lock()
	defer e.mu.Unlock()
	for k := range e.unavailable {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			delete(e.unavailable, k)
		}
	}
}

func (e *Executor) markUnavailable(scanID, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.unavailable[scanID+"|"+name] = struct{}{}
}

func (e *Executor) isUnavailable(scanID, name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.unavailable[scanID+"|"+name]
	return ok
}
