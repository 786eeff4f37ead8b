package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/probeworks/diligent/pkg/config"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker polls one queue and dispatches claimed jobs to its handler.
type Worker struct {
	id       string
	podID    string
	queue    string
	service  *Service
	cfg      *config.QueueConfig
	handler  Handler
	capacity capacityChecker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// capacityChecker gates claiming; the pool uses it to enforce the global
// concurrent scan limit on the orchestrate queue.
type capacityChecker interface {
	HasCapacity(ctx context.Context, queueName string) (bool, error)
}

func NewWorker(id, podID, queueName string, service *Service, cfg *config.QueueConfig, handler Handler, capacity capacityChecker) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		queue:        queueName,
		service:      service,
		cfg:          cfg,
		handler:      handler,
		capacity:     capacity,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for its current job to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Queue:         w.queue,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "queue", w.queue, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the configured interval with jitter so workers do
// not poll in lockstep.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := time.Duration(rand.Int64N(int64(base))) - base/2
	return base + jitter
}

func (w *Worker) pollAndProcess(ctx context.Context) error {
	if w.capacity != nil {
		ok, err := w.capacity.HasCapacity(ctx, w.queue)
		if err != nil {
			return err
		}
		if !ok {
			return ErrAtCapacity
		}
	}

	job, err := w.service.Claim(ctx, w.queue, w.id)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "queue", w.queue, "worker_id", w.id)
	log.Info("Job claimed", "collector", job.CollectorName, "attempt", job.Attempt)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// Job context ends on shutdown so handlers stop at their next
	// suspension point.
	jobCtx, cancelJob := context.WithCancel(ctx)
	defer cancelJob()
	go func() {
		select {
		case <-w.stopCh:
			cancelJob()
		case <-jobCtx.Done():
		}
	}()

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	handleErr := w.handler.Handle(jobCtx, job)
	cancelHeartbeat()

	// Terminal updates use a background context: the job context may
	// already be cancelled by shutdown.
	finalCtx := context.Background()
	switch {
	case handleErr == nil:
		if err := w.service.Ack(finalCtx, job.ID); err != nil {
			log.Error("Failed to ack job", "error", err)
			return err
		}
	case errors.Is(handleErr, context.Canceled) && ctx.Err() == nil && jobCtx.Err() != nil:
		// Shutdown interrupted the handler; return the job untouched.
		if err := w.service.Release(finalCtx, job); err != nil {
			log.Error("Failed to release job on shutdown", "error", err)
			return err
		}
		log.Info("Job released on shutdown")
	default:
		if err := w.service.Nack(finalCtx, job, handleErr); err != nil {
			log.Error("Failed to nack job", "error", err)
			return err
		}
		log.Warn("Job attempt failed", "error", handleErr)
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()
	return nil
}

// runHeartbeat extends the visibility deadline while the handler runs so
// orphan recovery does not reclaim a live job.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.service.ExtendVisibility(ctx, jobID, w.id); err != nil {
				slog.Warn("Heartbeat extension failed", "job_id", jobID, "error", err)
			}
		}
	}
}

func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
