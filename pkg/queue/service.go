package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/pkg/config"
)

// Service implements the durable job queue on top of the collector_jobs
// table. Claims use SELECT ... FOR UPDATE SKIP LOCKED so multiple pods can
// poll the same queue safely.
type Service struct {
	client *ent.Client
	cfg    *config.QueueConfig
}

func NewService(client *ent.Client, cfg *config.QueueConfig) *Service {
	return &Service{client: client, cfg: cfg}
}

// Enqueue inserts a pending job. When params.DedupKey is set and an active
// job (pending or running) with the same key exists on the queue, the
// existing job is returned with ErrDuplicateJob.
func (s *Service) Enqueue(ctx context.Context, params EnqueueParams) (*ent.CollectorJob, error) {
	if params.Queue == "" {
		return nil, fmt.Errorf("queue name is required")
	}

	if params.DedupKey != "" {
		existing, err := s.client.CollectorJob.Query().
			Where(
				collectorjob.QueueEQ(params.Queue),
				collectorjob.DedupKeyEQ(params.DedupKey),
				collectorjob.StatusIn(collectorjob.StatusPending, collectorjob.StatusRunning),
			).
			First(ctx)
		if err == nil {
			return existing, ErrDuplicateJob
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("checking dedup key: %w", err)
		}
	}

	maxAttempts := params.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = s.cfg.MaxAttempts
	}

	create := s.client.CollectorJob.Create().
		SetID(uuid.NewString()).
		SetQueue(params.Queue).
		SetScanID(params.ScanID).
		SetCollectorName(params.CollectorName).
		SetPayload(params.Payload).
		SetPriority(params.Priority).
		SetMaxAttempts(maxAttempts).
		SetStatus(collectorjob.StatusPending).
		SetScheduledAt(time.Now().Add(params.Delay))
	if params.DedupKey != "" {
		create = create.SetDedupKey(params.DedupKey)
	}

	job, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("enqueueing job: %w", err)
	}
	return job, nil
}

// Claim atomically claims the next eligible job on the queue: highest
// priority first, oldest scheduled time within a priority. The claim marks
// the job running, stamps the worker, bumps the attempt counter, and sets
// the visibility deadline.
func (s *Service) Claim(ctx context.Context, queueName, workerID string) (*ent.CollectorJob, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.CollectorJob.Query().
		Where(
			collectorjob.QueueEQ(queueName),
			collectorjob.StatusEQ(collectorjob.StatusPending),
			collectorjob.ScheduledAtLTE(time.Now()),
		).
		Order(
			ent.Desc(collectorjob.FieldPriority),
			ent.Asc(collectorjob.FieldScheduledAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("querying pending jobs: %w", err)
	}

	job, err = job.Update().
		SetStatus(collectorjob.StatusRunning).
		SetClaimedBy(workerID).
		AddAttempt(1).
		SetVisibilityDeadline(time.Now().Add(s.cfg.VisibilityTimeout)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("claiming job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing claim: %w", err)
	}
	return job, nil
}

// ExtendVisibility pushes the visibility deadline forward for a running
// job still held by workerID. Called by the worker heartbeat.
func (s *Service) ExtendVisibility(ctx context.Context, jobID, workerID string) error {
	n, err := s.client.CollectorJob.Update().
		Where(
			collectorjob.IDEQ(jobID),
			collectorjob.StatusEQ(collectorjob.StatusRunning),
			collectorjob.ClaimedByEQ(workerID),
		).
		SetVisibilityDeadline(time.Now().Add(s.cfg.VisibilityTimeout)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("extending visibility: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s no longer held by %s", jobID, workerID)
	}
	return nil
}

// Ack marks a job succeeded.
func (s *Service) Ack(ctx context.Context, jobID string) error {
	return s.client.CollectorJob.UpdateOneID(jobID).
		SetStatus(collectorjob.StatusSucceeded).
		SetCompletedAt(time.Now()).
		ClearVisibilityDeadline().
		Exec(ctx)
}

// Nack records a failed attempt. Jobs with attempts remaining go back to
// pending with an exponential retry delay; exhausted jobs are dead
// lettered.
func (s *Service) Nack(ctx context.Context, job *ent.CollectorJob, cause error) error {
	msg := "unknown failure"
	if cause != nil {
		msg = cause.Error()
	}

	if job.Attempt >= job.MaxAttempts {
		slog.Warn("Job dead-lettered",
			"job_id", job.ID, "queue", job.Queue,
			"attempts", job.Attempt, "error", msg)
		return job.Update().
			SetStatus(collectorjob.StatusDeadLettered).
			SetLastError(msg).
			SetCompletedAt(time.Now()).
			ClearVisibilityDeadline().
			Exec(ctx)
	}

	delay := s.retryDelay(job.Attempt)
	return job.Update().
		SetStatus(collectorjob.StatusPending).
		SetLastError(msg).
		SetScheduledAt(time.Now().Add(delay)).
		ClearVisibilityDeadline().
		ClearClaimedBy().
		Exec(ctx)
}

// Release returns a claimed job to the queue without consuming an
// attempt. Used on graceful shutdown when the handler never ran to
// completion.
func (s *Service) Release(ctx context.Context, job *ent.CollectorJob) error {
	return job.Update().
		SetStatus(collectorjob.StatusPending).
		AddAttempt(-1).
		SetScheduledAt(time.Now()).
		ClearVisibilityDeadline().
		ClearClaimedBy().
		Exec(ctx)
}

// retryDelay computes the backoff before the next attempt: initial delay
// doubled per prior attempt (per the configured factor), capped.
func (s *Service) retryDelay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := time.Duration(float64(s.cfg.RetryInitialDelay) * math.Pow(s.cfg.BackoffFactor, float64(attempt-1)))
	if d > s.cfg.RetryMaxDelay {
		d = s.cfg.RetryMaxDelay
	}
	return d
}

// Depth returns the number of claimable jobs on the queue.
func (s *Service) Depth(ctx context.Context, queueName string) (int, error) {
	return s.client.CollectorJob.Query().
		Where(
			collectorjob.QueueEQ(queueName),
			collectorjob.StatusEQ(collectorjob.StatusPending),
		).
		Count(ctx)
}

// DeadLettered lists dead-lettered jobs for a scan, newest first.
func (s *Service) DeadLettered(ctx context.Context, scanID string) ([]*ent.CollectorJob, error) {
	return s.client.CollectorJob.Query().
		Where(
			collectorjob.ScanIDEQ(scanID),
			collectorjob.StatusEQ(collectorjob.StatusDeadLettered),
		).
		Order(ent.Desc(collectorjob.FieldCompletedAt)).
		All(ctx)
}

// PurgeCompleted removes terminal jobs older than the retention window.
func (s *Service) PurgeCompleted(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.JobRetention)
	return s.client.CollectorJob.Delete().
		Where(
			collectorjob.StatusIn(collectorjob.StatusSucceeded, collectorjob.StatusDeadLettered),
			collectorjob.CompletedAtLT(cutoff),
		).
		Exec(ctx)
}
