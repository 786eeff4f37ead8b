// Package queue provides the durable collector job queue and its worker
// infrastructure.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/probeworks/diligent/ent"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates the queue has no claimable jobs.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent scan limit has been
	// reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrDuplicateJob indicates an active job with the same dedup key
	// already exists; Enqueue returns it alongside this error.
	ErrDuplicateJob = errors.New("duplicate job")
)

// Handler processes one claimed job. A nil return acks the job; an error
// nacks it into retry or the dead-letter state. The job's visibility
// deadline is extended by heartbeat while the handler runs, so handlers
// may exceed the visibility timeout.
type Handler interface {
	Handle(ctx context.Context, job *ent.CollectorJob) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, job *ent.CollectorJob) error

func (f HandlerFunc) Handle(ctx context.Context, job *ent.CollectorJob) error {
	return f(ctx, job)
}

// EnqueueParams describes a job to enqueue.
type EnqueueParams struct {
	Queue         string
	ScanID        string
	CollectorName string
	Payload       map[string]any
	Priority      int

	// DedupKey suppresses duplicate active jobs when non-empty.
	DedupKey string

	// Delay postpones eligibility for claiming.
	Delay time.Duration

	// MaxAttempts overrides the configured default when positive.
	MaxAttempts int
}

// PoolHealth is the health snapshot of the whole worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveScans      int            `json:"active_scans"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepths      map[string]int `json:"queue_depths"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is the health snapshot of a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Queue         string    `json:"queue"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
