package resilience

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/probeworks/diligent/pkg/config"
)

// ErrCircuitOpen is returned by Allow while a breaker is open and its
// cooldown has not elapsed. Callers fast-fail without invoking the
// collector.
var ErrCircuitOpen = errors.New("circuit open")

// BreakerState enumerates the three breaker states.
type BreakerState int

const (
	StateClosed BreakerState = iota
	StateOpen
	StateHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Breaker is a circuit breaker for one (collector, scan-family) pair.
//
// Closed: failures are counted; threshold consecutive failures inside the
// rolling window trip it open. Open: Allow fast-fails until the cooldown
// elapses, then admits a single probe in half-open. A half-open success
// closes the breaker and resets the cooldown; a half-open failure reopens
// it with the cooldown doubled, capped at maxCooldown.
type Breaker struct {
	clock        Clock
	threshold    int
	window       time.Duration
	baseCooldown time.Duration
	maxCooldown  time.Duration

	mu          sync.Mutex
	state       BreakerState
	consecFails int
	firstFailAt time.Time
	openedAt    time.Time
	cooldown    time.Duration
	probing     bool
}

func newBreaker(cfg *config.ResilienceConfig, clock Clock) *Breaker {
	return &Breaker{
		clock:        clock,
		threshold:    cfg.BreakerThreshold,
		window:       cfg.BreakerWindow,
		baseCooldown: cfg.BreakerCooldown,
		maxCooldown:  cfg.BreakerMaxCooldown,
		state:        StateClosed,
		cooldown:     cfg.BreakerCooldown,
	}
}

// Allow reports whether a call may proceed. In the open state it returns
// ErrCircuitOpen until the cooldown elapses, then transitions to half-open
// and admits exactly one probe.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if b.clock.Since(b.openedAt) < b.cooldown {
			return ErrCircuitOpen
		}
		b.state = StateHalfOpen
		b.probing = true
		return nil
	case StateHalfOpen:
		if b.probing {
			return ErrCircuitOpen
		}
		b.probing = true
		return nil
	}
	return fmt.Errorf("breaker in unknown state %d", b.state)
}

// OnSuccess records a successful call.
func (b *Breaker) OnSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen {
		b.state = StateClosed
		b.cooldown = b.baseCooldown
	}
	b.consecFails = 0
	b.probing = false
}

// OnFailure records a failed call that counts toward tripping.
func (b *Breaker) OnFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.clock.Now()
	switch b.state {
	case StateHalfOpen:
		// Probe failed: reopen with doubled cooldown.
		b.cooldown *= 2
		if b.cooldown > b.maxCooldown {
			b.cooldown = b.maxCooldown
		}
		b.open(now)
	case StateClosed:
		if b.consecFails == 0 || now.Sub(b.firstFailAt) > b.window {
			b.consecFails = 0
			b.firstFailAt = now
		}
		b.consecFails++
		if b.consecFails >= b.threshold {
			b.open(now)
		}
	}
}

func (b *Breaker) open(now time.Time) {
	b.state = StateOpen
	b.openedAt = now
	b.consecFails = 0
	b.probing = false
}

// State returns the current state without side effects.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// BreakerSet lazily creates one breaker per key. Keys combine collector
// name and scan family so one noisy scan cannot trip collectors globally.
type BreakerSet struct {
	cfg   *config.ResilienceConfig
	clock Clock

	mu       sync.Mutex
	breakers map[string]*Breaker
}

func NewBreakerSet(cfg *config.ResilienceConfig, clock Clock) *BreakerSet {
	if clock == nil {
		clock = SystemClock()
	}
	return &BreakerSet{
		cfg:      cfg,
		clock:    clock,
		breakers: make(map[string]*Breaker),
	}
}

// For returns the breaker for the given collector and scan family,
// creating it on first use.
func (s *BreakerSet) For(collectorName, scanFamily string) *Breaker {
	key := collectorName + "|" + scanFamily
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.breakers[key]
	if !ok {
		b = newBreaker(s.cfg, s.clock)
		s.breakers[key] = b
	}
	return b
}

// OpenCount returns how many breakers are currently open.
func (s *BreakerSet) OpenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.breakers {
		if b.State() == StateOpen {
			n++
		}
	}
	return n
}

// States returns a snapshot of breaker states keyed by "collector|family".
func (s *BreakerSet) States() map[string]BreakerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]BreakerState, len(s.breakers))
	for k, b := range s.breakers {
		out[k] = b.State()
	}
	return out
}
