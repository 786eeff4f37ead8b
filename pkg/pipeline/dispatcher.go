package pipeline

import (
	"sync"

	"github.com/probeworks/diligent/pkg/resilience"
)

// TaskResult is what a job handler reports back to the orchestrator
// waiting on the same pod.
type TaskResult struct {
	Outcome  resilience.Outcome
	ReportID string
	Err      error

	// Remote marks a job that completed on another pod: its evidence was
	// persisted there and is not in the Outcome.
	Remote bool
}

// Dispatcher is the pod-local mailbox between the orchestrator and the
// collector job handlers. The orchestrator registers a waiter under the
// job's dedup key before enqueueing; the handler that claims the job
// derives the same key and delivers its result. When the job was claimed
// on a different pod than the orchestrator's, Deliver finds no waiter and
// the handler falls back to persisting evidence directly.
type Dispatcher struct {
	mu      sync.Mutex
	waiters map[string]chan TaskResult
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{waiters: make(map[string]chan TaskResult)}
}

// Register installs a waiter for key and returns its result channel plus
// a removal func. Must be called before the job is enqueued.
func (d *Dispatcher) Register(key string) (<-chan TaskResult, func()) {
	ch := make(chan TaskResult, 1)
	d.mu.Lock()
	d.waiters[key] = ch
	d.mu.Unlock()

	return ch, func() {
		d.mu.Lock()
		delete(d.waiters, key)
		d.mu.Unlock()
	}
}

// Deliver hands a result to the waiter registered under key. Returns
// false when no waiter exists on this pod.
func (d *Dispatcher) Deliver(key string, res TaskResult) bool {
	if key == "" {
		return false
	}
	d.mu.Lock()
	ch, ok := d.waiters[key]
	if ok {
		delete(d.waiters, key)
	}
	d.mu.Unlock()
	if !ok {
		return false
	}
	ch <- res
	return true
}
