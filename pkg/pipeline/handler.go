package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/pkg/collector"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/events"
	"github.com/probeworks/diligent/pkg/evidence"
	"github.com/probeworks/diligent/pkg/models"
	"github.com/probeworks/diligent/pkg/resilience"
	"github.com/probeworks/diligent/pkg/services"
)

// CollectorHandler processes jobs on the collector queues (web-scrape,
// tech-detect, search, security-scan, tls-scan, vuln-scan). It runs the
// task through the resilience executor and delivers the outcome to the
// orchestrator's dispatcher, or persists the evidence directly when the
// orchestrator lives on another pod.
type CollectorHandler struct {
	scans      *services.ScanService
	executor   *resilience.Executor
	dispatcher *Dispatcher
	store      *evidence.EntStore
	pub        *events.Publisher
	logger     *slog.Logger
}

func NewCollectorHandler(
	scans *services.ScanService,
	executor *resilience.Executor,
	dispatcher *Dispatcher,
	store *evidence.EntStore,
	pub *events.Publisher,
	logger *slog.Logger,
) *CollectorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CollectorHandler{
		scans:      scans,
		executor:   executor,
		dispatcher: dispatcher,
		store:      store,
		pub:        pub,
		logger:     logger,
	}
}

func (h *CollectorHandler) Handle(ctx context.Context, job *ent.CollectorJob) error {
	log := h.logger.With("job_id", job.ID, "scan_id", job.ScanID, "queue", job.Queue)

	task, err := decodeTaskPayload(job.Payload)
	if err != nil {
		// Poison payload: retrying cannot help, drop it.
		log.Error("Dropping malformed collector job", "error", err)
		return nil
	}
	key := dedupKeyOf(job)

	// Scan-scope cancellation is a suspension point: do not start work for
	// a cancelled scan.
	cancelled, err := h.scans.CancelRequested(ctx, job.ScanID)
	if err != nil {
		return err
	}
	if cancelled {
		h.dispatcher.Deliver(key, TaskResult{Err: errkind.Newf(errkind.Canceled, "scan cancelled")})
		return nil
	}

	scan, err := h.scans.GetScan(ctx, job.ScanID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Collector job for unknown scan, dropping")
			return nil
		}
		return err
	}

	in := collector.Input{
		ScanID:  job.ScanID,
		Company: companyOf(scan),
		Depth:   models.AnalysisDepth(scan.AnalysisDepth),
		Options: task.Options,
	}

	var out resilience.Outcome
	if task.Collector != "" {
		out, err = h.executor.ExecuteNamed(ctx, task.Collector, in, task.Budget)
	} else {
		out, err = h.executor.Execute(ctx, collector.Capability(task.Capability), in, task.Budget)
	}

	if err != nil {
		kind := errkind.Of(err)
		h.pub.CollectorError(ctx, job.ScanID, task.Stage, taskLabel(task), string(kind), err.Error())

		// Deliver on the final attempt (or when retrying the job cannot
		// change the answer) so the orchestrator stops waiting.
		if job.Attempt >= job.MaxAttempts || !errkind.Retriable(kind) {
			h.dispatcher.Deliver(key, TaskResult{Outcome: out, Err: err})
		}
		return err
	}

	h.pub.CollectorSuccess(ctx, job.ScanID, task.Stage, out.Collector, len(out.Items), out.Fallback)

	if h.dispatcher.Deliver(key, TaskResult{Outcome: out}) {
		return nil
	}

	// The orchestrator is not on this pod: persist the evidence directly.
	// The (scan_id, fingerprint) index absorbs any overlap with the pool's
	// own flush.
	if err := h.persistRemote(ctx, job.ScanID, out.Items); err != nil {
		return err
	}
	log.Info("Delivered collector outcome remotely", "items", len(out.Items), "collector", out.Collector)
	return nil
}

func (h *CollectorHandler) persistRemote(ctx context.Context, scanID string, items []models.EvidenceItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ScanID = scanID
		items[i].Fingerprint = evidence.Fingerprint(items[i])
		items[i].Score = evidence.Score(items[i])
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
	}
	if err := h.store.EnsureCollection(ctx, scanID); err != nil {
		return err
	}
	return h.store.InsertEvidence(ctx, scanID, items)
}

func companyOf(scan *ent.ScanRequest) models.Company {
	return models.Company{
		Name:    scan.CompanyName,
		Website: scan.Website,
	}
}

func taskLabel(p taskPayload) string {
	if p.Collector != "" {
		return p.Collector
	}
	return p.Capability
}

func dedupKeyOf(job *ent.CollectorJob) string {
	if job.DedupKey == nil {
		return ""
	}
	return *job.DedupKey
}
