package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/pkg/events"
	"github.com/probeworks/diligent/pkg/evidence"
	"github.com/probeworks/diligent/pkg/models"
	"github.com/probeworks/diligent/pkg/services"
	"github.com/probeworks/diligent/pkg/synthesis"
)

// SynthesizeHandler processes report-generation jobs. It loads the scan's
// persisted evidence, runs the synthesizer, and persists the report.
// Running as a queue job makes report generation survive an orchestrator
// crash: a retried job finds the evidence already in place.
type SynthesizeHandler struct {
	scans      *services.ScanService
	store      *evidence.EntStore
	synth      *synthesis.Synthesizer
	reports    *synthesis.Store
	dispatcher *Dispatcher
	pub        *events.Publisher
	logger     *slog.Logger
}

func NewSynthesizeHandler(
	scans *services.ScanService,
	store *evidence.EntStore,
	synth *synthesis.Synthesizer,
	reports *synthesis.Store,
	dispatcher *Dispatcher,
	pub *events.Publisher,
	logger *slog.Logger,
) *SynthesizeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SynthesizeHandler{
		scans:      scans,
		store:      store,
		synth:      synth,
		reports:    reports,
		dispatcher: dispatcher,
		pub:        pub,
		logger:     logger,
	}
}

func (h *SynthesizeHandler) Handle(ctx context.Context, job *ent.CollectorJob) error {
	scanID := job.ScanID
	key := dedupKeyOf(job)
	log := h.logger.With("job_id", job.ID, "scan_id", scanID)

	// A crashed-and-retried job may have persisted the report already.
	if reportID, err := h.reports.ExistingFor(ctx, scanID); err != nil {
		return err
	} else if reportID != "" {
		h.dispatcher.Deliver(key, TaskResult{ReportID: reportID})
		return nil
	}

	scan, err := h.scans.GetScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Synthesize job for unknown scan, dropping")
			return nil
		}
		return err
	}
	thesis, err := services.ThesisFor(scan)
	if err != nil {
		return err
	}

	items, err := h.store.PersistedItems(ctx, scanID)
	if err != nil {
		return err
	}

	quality := qualityFromPayload(job.Payload)
	if quality == nil {
		// Resumed jobs may predate the stage-9 payload; recompute from
		// the persisted set.
		quality = categoryAverages(items)
	}

	h.pub.AnalysisStart(ctx, scanID)
	draft, err := h.synth.BuildReport(ctx, synthesis.Input{
		ScanID:   scanID,
		Company:  companyOf(scan),
		Thesis:   *thesis,
		Evidence: items,
		Quality:  quality,
		Hooks: &synthesis.Hooks{
			SectionDone: func(pillarID string, score float64, degraded bool) {
				h.pub.CategoryAnalyzed(ctx, scanID, pillarID, score, degraded)
			},
			OverallStart: func() {
				h.pub.SynthesisStart(ctx, scanID)
			},
		},
	})
	if err != nil {
		deliverFinal := job.Attempt >= job.MaxAttempts || ctx.Err() != nil
		if deliverFinal {
			h.dispatcher.Deliver(key, TaskResult{Err: err})
		}
		return err
	}

	reportID, err := h.reports.Persist(ctx, draft)
	if err != nil {
		if job.Attempt >= job.MaxAttempts {
			h.dispatcher.Deliver(key, TaskResult{Err: err})
		}
		return err
	}

	h.pub.ReportPersisted(ctx, scanID, reportID, draft.InvestmentScore)
	if !h.dispatcher.Deliver(key, TaskResult{ReportID: reportID}) {
		log.Info("Report persisted for remote orchestrator", "report_id", reportID)
	}
	return nil
}

// qualityFromPayload decodes the per-category average scores the
// orchestrator captured from the evidence pool at stage 9.
func qualityFromPayload(payload map[string]any) map[string]float64 {
	raw, ok := payload["quality"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]float64, len(raw))
	for cat, v := range raw {
		if f, ok := asFloat(v); ok {
			out[cat] = f
		}
	}
	return out
}

func categoryAverages(items []models.EvidenceItem) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, item := range items {
		sums[item.Category] += item.Score
		counts[item.Category]++
	}
	out := make(map[string]float64, len(sums))
	for cat, sum := range sums {
		out[cat] = sum / float64(counts[cat])
	}
	return out
}
