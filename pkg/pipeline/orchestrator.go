package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/events"
	"github.com/probeworks/diligent/pkg/evidence"
	"github.com/probeworks/diligent/pkg/models"
	"github.com/probeworks/diligent/pkg/queue"
	"github.com/probeworks/diligent/pkg/resilience"
	"github.com/probeworks/diligent/pkg/services"
)

var (
	errScanDeadline = errors.New("scan deadline exceeded")
	errClientCancel = errors.New("scan cancelled by client")
)

// CancelRegistry is where a running scan's cancel func is parked so the
// cancel endpoint can reach scans orchestrated on this pod.
type CancelRegistry interface {
	RegisterScan(scanID string, cancel context.CancelFunc)
	UnregisterScan(scanID string)
}

// Orchestrator is the handler for the orchestrate queue: one job per
// scan, driving it through the canonical stages to a terminal status.
type Orchestrator struct {
	podID      string
	cfg        *config.PipelineConfig
	queueCfg   *config.QueueConfig
	client     *ent.Client
	scans      *services.ScanService
	queue      *queue.Service
	store      *evidence.EntStore
	dispatcher *Dispatcher
	executor   *resilience.Executor
	pub        *events.Publisher
	events     *services.EventService
	cancels    CancelRegistry
	logger     *slog.Logger
}

func NewOrchestrator(
	podID string,
	cfg *config.PipelineConfig,
	queueCfg *config.QueueConfig,
	client *ent.Client,
	scans *services.ScanService,
	queueService *queue.Service,
	store *evidence.EntStore,
	dispatcher *Dispatcher,
	executor *resilience.Executor,
	pub *events.Publisher,
	eventService *services.EventService,
	cancels CancelRegistry,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		podID:      podID,
		cfg:        cfg,
		queueCfg:   queueCfg,
		client:     client,
		scans:      scans,
		queue:      queueService,
		store:      store,
		dispatcher: dispatcher,
		executor:   executor,
		pub:        pub,
		events:     eventService,
		cancels:    cancels,
		logger:     logger,
	}
}

// scanRun is the per-scan working state of one Handle invocation.
type scanRun struct {
	scanID   string
	company  models.Company
	depth    models.AnalysisDepth
	thesis   *models.Thesis
	priority int
	pool     *evidence.Pool
	log      *slog.Logger

	completed      int
	anyFailed      bool
	stage1Evidence int
	merged         int
}

// Handle drives one scan end to end. It always acks the orchestrate job:
// scan-level failures become a terminal scan status, not a job retry.
// Only infra errors before the scan is claimed bubble up for a retry.
func (o *Orchestrator) Handle(ctx context.Context, job *ent.CollectorJob) error {
	scanID := job.ScanID
	log := o.logger.With("scan_id", scanID, "pod_id", o.podID)

	scan, err := o.scans.GetScan(ctx, scanID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			log.Warn("Orchestrate job for unknown scan, dropping")
			return nil
		}
		return err
	}

	deadline := time.Now().Add(o.cfg.ScanDeadline)
	switch scan.Status {
	case scanrequest.StatusPending:
		if err := o.scans.MarkStarted(ctx, scanID, o.podID, deadline); err != nil {
			return err
		}
	case scanrequest.StatusInProgress, scanrequest.StatusCancelling:
		// Resuming after a crash, or carrying out a cancel that arrived
		// before the scan started. Keep the original deadline.
		if scan.DeadlineAt != nil {
			deadline = *scan.DeadlineAt
		}
	default:
		log.Info("Scan already terminal, dropping orchestrate job", "status", scan.Status)
		return nil
	}

	thesis, err := services.ThesisFor(scan)
	if err != nil {
		// A corrupt thesis snapshot cannot heal on retry.
		log.Error("Invalid thesis snapshot, failing scan", "error", err)
		evCtx := context.WithoutCancel(ctx)
		_ = o.scans.MarkTerminal(evCtx, scanID, scanrequest.StatusFailed, "invalid thesis snapshot", "")
		o.pub.Error(evCtx, scanID, string(errkind.InvalidInput), "invalid thesis snapshot")
		o.events.ScheduleCleanup(scanID, o.cfg.EventRetentionGrace)
		return nil
	}

	scanCtx, cancelCause := context.WithCancelCause(ctx)
	defer cancelCause(nil)
	scanCtx, cancelTimer := context.WithDeadlineCause(scanCtx, deadline, errScanDeadline)
	defer cancelTimer()

	o.cancels.RegisterScan(scanID, func() { cancelCause(errClientCancel) })
	defer o.cancels.UnregisterScan(scanID)
	if scan.Status == scanrequest.StatusCancelling {
		cancelCause(errClientCancel)
	}
	o.watchCancel(scanCtx, scanID, cancelCause)

	// Publishes and stage records must survive scan cancellation: the
	// terminal events are emitted after the cancel fires.
	evCtx := context.WithoutCancel(ctx)

	run := &scanRun{
		scanID:   scanID,
		company:  companyOf(scan),
		depth:    models.AnalysisDepth(scan.AnalysisDepth),
		thesis:   thesis,
		priority: job.Priority,
		pool:     evidence.NewPool(scanID, o.store, o.cfg.EvidenceBatchSize, o.cfg.QualityThreshold, log),
		log:      log,
	}

	// Prior stage results mean a resumed scan: carry them and skip ahead.
	done, err := o.priorResults(ctx, run)
	if err != nil {
		return err
	}
	if len(done) == 0 {
		o.pub.Start(evCtx, scanID, scan.CompanyName, string(scan.AnalysisDepth))
	} else {
		log.Info("Resuming scan", "recorded_stages", len(done))
	}

	stages := stageTable()
	for _, st := range stages[:8] {
		if _, ok := done[st.Index]; ok {
			continue
		}
		if scanCtx.Err() != nil {
			o.recordStage(evCtx, run, st, stageresult.StatusSkipped, 0, 0, 0, skipReason(context.Cause(scanCtx)))
			continue
		}
		if skip, reason := o.gate(st, run); skip {
			o.recordStage(evCtx, run, st, stageresult.StatusSkipped, 0, 0, 0, reason)
			o.pub.PhaseComplete(evCtx, scanID, st.Name, string(stageresult.StatusSkipped), 0)
			continue
		}

		status := o.runStage(scanCtx, evCtx, run, st)
		if st.Index == 1 {
			run.stage1Evidence = run.pool.Count()
		}
		if status == stageresult.StatusFailed {
			run.anyFailed = true
			if !o.cfg.ContinueOnErrorEnabled() {
				o.skipRemaining(evCtx, run, stages[:8], st.Index, "aborted after stage failure")
				break
			}
		}
		o.heartbeat(evCtx, run, st.Name)
	}

	cancelled := errors.Is(context.Cause(scanCtx), errClientCancel)
	deadlineHit := errors.Is(context.Cause(scanCtx), errScanDeadline)
	if cancelled || deadlineHit {
		run.anyFailed = true
	}

	// A client cancel still runs evidence processing and report
	// generation: the report covers what the completed stages collected.
	// A lapsed deadline does not.
	procCtx := scanCtx
	if cancelled {
		var cancelProc context.CancelFunc
		procCtx, cancelProc = context.WithDeadline(context.WithoutCancel(scanCtx), deadline)
		defer cancelProc()
	}

	var reportID string
	if deadlineHit {
		for _, st := range stages[8:] {
			if _, ok := done[st.Index]; ok {
				continue
			}
			o.recordStage(evCtx, run, st, stageresult.StatusSkipped, 0, 0, 0, errScanDeadline.Error())
		}
	} else {
		quality := o.runEvidenceStage(procCtx, evCtx, run, stages[8], done)
		reportID = o.runReportStage(procCtx, evCtx, run, stages[9], done, scan, quality)
	}

	o.finish(evCtx, run, reportID, cancelled, deadlineHit)
	return nil
}

// priorResults loads already-recorded stages for resume and seeds the run
// counters from them.
func (o *Orchestrator) priorResults(ctx context.Context, run *scanRun) (map[int]*ent.StageResult, error) {
	prior, err := o.scans.StageResults(ctx, run.scanID)
	if err != nil {
		return nil, err
	}
	done := make(map[int]*ent.StageResult, len(prior))
	for _, r := range prior {
		done[r.StageIndex] = r
		run.completed++
		if r.Status == stageresult.StatusFailed {
			run.anyFailed = true
		}
		if r.StageIndex == 1 {
			run.stage1Evidence = r.EvidenceCount
		}
	}
	return done, nil
}

// gate decides stage skips: optional stages under critical collector
// health, the deep-crawl threshold, and thesis presence.
func (o *Orchestrator) gate(st Stage, run *scanRun) (bool, string) {
	if st.Optional && o.executor.Health().Level() == resilience.Critical {
		return true, "collector health critical"
	}
	switch st.Index {
	case 2:
		if run.depth == models.DepthShallow {
			return true, "shallow scan"
		}
		if run.depth != models.DepthExhaustive && run.stage1Evidence < o.cfg.MinEvidenceForDeepCrawl {
			return true, fmt.Sprintf("initial evidence %d below threshold %d",
				run.stage1Evidence, o.cfg.MinEvidenceForDeepCrawl)
		}
	case 8:
		if run.thesis == nil || run.thesis.ID == "default" {
			return true, "no investment thesis supplied"
		}
	}
	return false, ""
}

// runStage dispatches the stage's tasks concurrently, pools the evidence,
// and records the StageResult.
func (o *Orchestrator) runStage(ctx, evCtx context.Context, run *scanRun, st Stage) stageresult.Status {
	o.pub.PhaseStart(evCtx, run.scanID, st.Name)
	start := time.Now()

	tasks := st.Tasks(run.depth, run.thesis)
	results := make([]TaskResult, len(tasks))
	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t Task) {
			defer wg.Done()
			results[i] = o.dispatchTask(ctx, evCtx, run, st, t)
		}(i, t)
	}
	wg.Wait()

	var (
		succeeded, failed int
		attempts          int
		stageEvidence     int
		partial           bool
		firstErr          error
	)
	for _, res := range results {
		attempts += res.Outcome.Attempts
		if res.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		succeeded++
		if res.Remote {
			// Evidence was persisted by another pod; it rejoins the scan
			// at synthesis time.
			continue
		}
		if res.Outcome.Partial {
			partial = true
		}
		added, merged := run.pool.Add(res.Outcome.Items...)
		stageEvidence += added
		run.merged += merged
	}

	status := stageresult.StatusSuccess
	switch {
	case failed > 0 && succeeded == 0:
		status = stageresult.StatusFailed
	case failed > 0 || partial:
		status = stageresult.StatusPartial
	}

	retries := attempts - len(tasks)
	if retries < 0 {
		retries = 0
	}
	errMsg := ""
	if firstErr != nil {
		errMsg = firstErr.Error()
	}
	o.recordStage(evCtx, run, st, status, retries, time.Since(start), stageEvidence, errMsg)
	o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(status), stageEvidence)
	return status
}

// dispatchTask enqueues one collector job and waits for its outcome via
// the pod-local dispatcher, falling back to a job-status poll when the
// job ran on another pod.
func (o *Orchestrator) dispatchTask(ctx, evCtx context.Context, run *scanRun, st Stage, t Task) TaskResult {
	if t.Budget <= 0 {
		t.Budget = o.cfg.StageTimeout
	}
	label := t.Label()
	key := fmt.Sprintf("%s:%s:%s", run.scanID, st.Name, label)

	ch, forget := o.dispatcher.Register(key)
	defer forget()

	o.pub.CollectorStart(evCtx, run.scanID, st.Name, label)
	job, err := o.queue.Enqueue(ctx, queue.EnqueueParams{
		Queue:         t.Queue,
		ScanID:        run.scanID,
		CollectorName: t.Collector,
		Priority:      run.priority,
		DedupKey:      key,
		Payload:       encodeTaskPayload(st.Name, t),
	})
	if err != nil && !errors.Is(err, queue.ErrDuplicateJob) {
		o.pub.CollectorError(evCtx, run.scanID, st.Name, label, string(errkind.Internal), err.Error())
		return TaskResult{Err: err}
	}

	return o.awaitTask(ctx, evCtx, run, st.Name, label, job, ch, t.Budget)
}

// awaitTask waits for a dispatched job: local delivery, cancellation, or
// a timeout sized to cover the job's full retry budget.
func (o *Orchestrator) awaitTask(
	ctx, evCtx context.Context,
	run *scanRun,
	stageName, label string,
	job *ent.CollectorJob,
	ch <-chan TaskResult,
	budget time.Duration,
) TaskResult {
	maxAttempts := job.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	wait := budget*time.Duration(maxAttempts) +
		o.queueCfg.RetryMaxDelay*time.Duration(maxAttempts) +
		30*time.Second

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case res := <-ch:
		return res

	case <-ctx.Done():
		return TaskResult{Err: errkind.New(errkind.Canceled, context.Cause(ctx))}

	case <-timer.C:
		// The job may have been claimed by another pod whose handler has
		// no waiter to deliver to.
		refreshed, err := o.client.CollectorJob.Get(evCtx, job.ID)
		if err == nil {
			switch refreshed.Status {
			case collectorjob.StatusSucceeded:
				run.log.Info("Collector job completed remotely", "job_id", job.ID, "stage", stageName)
				return TaskResult{Remote: true}
			case collectorjob.StatusDeadLettered:
				msg := "job dead-lettered"
				if refreshed.LastError != nil {
					msg = *refreshed.LastError
				}
				return TaskResult{Err: errkind.Newf(errkind.Internal, "%s", msg)}
			}
		}
		o.pub.CollectorError(evCtx, run.scanID, stageName, label, string(errkind.Timeout), "task wait timed out")
		return TaskResult{Err: errkind.Newf(errkind.Timeout, "stage %s task %s timed out after %s", stageName, label, wait)}
	}
}

// runEvidenceStage is stage 9: flush the pool, close the collection, and
// report the quality summary. Returns the per-category average scores for
// the synthesize payload.
func (o *Orchestrator) runEvidenceStage(
	ctx, evCtx context.Context,
	run *scanRun,
	st Stage,
	done map[int]*ent.StageResult,
) map[string]float64 {
	if _, ok := done[st.Index]; ok {
		return nil
	}

	o.pub.PhaseStart(evCtx, run.scanID, st.Name)
	start := time.Now()

	collStatus, err := run.pool.Close(ctx)
	quality := make(map[string]float64)
	for cat, q := range run.pool.QualitySummary() {
		quality[cat] = q.AverageScore
	}
	total := run.pool.Count()
	o.pub.EvidenceCollected(evCtx, run.scanID, total, run.merged)

	status := stageresult.StatusSuccess
	errMsg := ""
	switch {
	case err != nil:
		status = stageresult.StatusFailed
		errMsg = err.Error()
		run.anyFailed = true
	case collStatus == evidence.CollectionPartial:
		status = stageresult.StatusPartial
	}

	o.recordStage(evCtx, run, st, status, 0, time.Since(start), total, errMsg)
	o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(status), total)
	o.heartbeat(evCtx, run, st.Name)
	return quality
}

// runReportStage is stage 10: enqueue the synthesize job and wait for the
// report. Its failure is fatal for the scan.
func (o *Orchestrator) runReportStage(
	ctx, evCtx context.Context,
	run *scanRun,
	st Stage,
	done map[int]*ent.StageResult,
	scan *ent.ScanRequest,
	quality map[string]float64,
) string {
	if _, ok := done[st.Index]; ok {
		if scan.ReportID != nil {
			return *scan.ReportID
		}
		return ""
	}

	o.pub.PhaseStart(evCtx, run.scanID, st.Name)
	start := time.Now()

	key := fmt.Sprintf("%s:%s", run.scanID, st.Name)
	ch, forget := o.dispatcher.Register(key)
	defer forget()

	payload := map[string]any{}
	if len(quality) > 0 {
		payload["quality"] = quality
	}
	job, err := o.queue.Enqueue(ctx, queue.EnqueueParams{
		Queue:    config.QueueSynthesize,
		ScanID:   run.scanID,
		Priority: run.priority,
		DedupKey: key,
		Payload:  payload,
	})
	if err != nil && !errors.Is(err, queue.ErrDuplicateJob) {
		run.anyFailed = true
		o.recordStage(evCtx, run, st, stageresult.StatusFailed, 0, time.Since(start), 0, err.Error())
		o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(stageresult.StatusFailed), 0)
		return ""
	}

	res := o.awaitTask(ctx, evCtx, run, st.Name, "synthesizer", job, ch, 2*o.cfg.StageTimeout)
	if res.Err != nil {
		run.anyFailed = true
		o.recordStage(evCtx, run, st, stageresult.StatusFailed, 0, time.Since(start), 0, res.Err.Error())
		o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(stageresult.StatusFailed), 0)
		return ""
	}

	reportID := res.ReportID
	if reportID == "" {
		// Remote completion: the report row is the source of truth.
		if r, err := o.client.ScanRequest.Get(evCtx, run.scanID); err == nil && r.ReportID != nil {
			reportID = *r.ReportID
		}
		if reportID == "" {
			reportID = o.lookupReportID(evCtx, run.scanID)
		}
	}
	if reportID == "" {
		run.anyFailed = true
		o.recordStage(evCtx, run, st, stageresult.StatusFailed, 0, time.Since(start), 0, "synthesize job finished without a report")
		o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(stageresult.StatusFailed), 0)
		return ""
	}

	o.recordStage(evCtx, run, st, stageresult.StatusSuccess, 0, time.Since(start), 0, "")
	o.pub.PhaseComplete(evCtx, run.scanID, st.Name, string(stageresult.StatusSuccess), 0)
	o.heartbeat(evCtx, run, st.Name)
	return reportID
}

// terminalFor maps a finished run to the scan's terminal status: any
// stage failed with a report means completed_with_errors, all succeeded
// with a report means awaiting_review, no report means failed.
func terminalFor(reportID string, anyFailed, cancelled, deadlineHit bool) (scanrequest.Status, string) {
	switch {
	case reportID == "":
		message := "no report produced"
		if cancelled {
			message = "scan cancelled"
		}
		if deadlineHit {
			message = errScanDeadline.Error()
		}
		return scanrequest.StatusFailed, message
	case anyFailed:
		message := "completed with stage failures"
		if cancelled {
			message = "scan cancelled; report covers completed stages"
		}
		return scanrequest.StatusCompletedWithErrors, message
	default:
		return scanrequest.StatusAwaitingReview, "report ready for review"
	}
}

// finish records the terminal scan status and closes the stream.
func (o *Orchestrator) finish(ctx context.Context, run *scanRun, reportID string, cancelled, deadlineHit bool) {
	status, message := terminalFor(reportID, run.anyFailed, cancelled, deadlineHit)

	if err := o.scans.MarkTerminal(ctx, run.scanID, status, message, reportID); err != nil &&
		!errors.Is(err, services.ErrScanTerminal) {
		run.log.Error("Failed to mark scan terminal", "status", status, "error", err)
	}

	switch {
	case cancelled:
		// The cancellation error is the stream's final event.
		o.pub.Error(ctx, run.scanID, string(errkind.Canceled), message)
	case status == scanrequest.StatusFailed:
		kind := errkind.Internal
		if deadlineHit {
			kind = errkind.Timeout
		}
		o.pub.Error(ctx, run.scanID, string(kind), message)
	default:
		o.pub.Complete(ctx, run.scanID, string(status), reportID)
	}

	if err := o.pub.NotifyScanList(ctx, run.scanID, string(status), message); err != nil {
		run.log.Warn("Failed to notify scan list", "error", err)
	}
	o.events.ScheduleCleanup(run.scanID, o.cfg.EventRetentionGrace)
	o.executor.ReleaseScan(run.scanID)

	run.log.Info("Scan finished",
		"status", status, "report_id", reportID,
		"evidence", run.pool.Count(), "stages_recorded", run.completed)
}

// skipRemaining records skipped results for stages after a fatal stage
// failure when continue-on-error is off.
func (o *Orchestrator) skipRemaining(ctx context.Context, run *scanRun, stages []Stage, after int, reason string) {
	for _, st := range stages {
		if st.Index <= after {
			continue
		}
		o.recordStage(ctx, run, st, stageresult.StatusSkipped, 0, 0, 0, reason)
	}
}

// recordStage appends one StageResult row. Conflicts mean a resumed scan
// re-recording a stage and are ignored.
func (o *Orchestrator) recordStage(
	ctx context.Context,
	run *scanRun,
	st Stage,
	status stageresult.Status,
	retries int,
	dur time.Duration,
	evidenceCount int,
	errMsg string,
) {
	create := o.client.StageResult.Create().
		SetID(uuid.NewString()).
		SetScanID(run.scanID).
		SetStageName(st.Name).
		SetStageIndex(st.Index).
		SetStatus(status).
		SetRetries(retries).
		SetDurationMs(int(dur.Milliseconds())).
		SetEvidenceCount(evidenceCount)
	if errMsg != "" {
		create.SetErrorMessage(errMsg)
	}
	if err := create.Exec(ctx); err != nil {
		if !ent.IsConstraintError(err) {
			run.log.Error("Failed to record stage result", "stage", st.Name, "error", err)
		}
		return
	}
	run.completed++
}

// watchCancel polls for an API-side cancel reaching this scan from
// another pod. Same-pod cancels go through the CancelRegistry directly.
func (o *Orchestrator) watchCancel(ctx context.Context, scanID string, cancel context.CancelCauseFunc) {
	go func() {
		ticker := time.NewTicker(o.queueCfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				requested, err := o.scans.CancelRequested(ctx, scanID)
				if err != nil {
					continue
				}
				if requested {
					cancel(errClientCancel)
					return
				}
			}
		}
	}()
}

func (o *Orchestrator) heartbeat(ctx context.Context, run *scanRun, stageName string) {
	if err := o.scans.Heartbeat(ctx, run.scanID, stageName, run.completed); err != nil {
		run.log.Warn("Failed to heartbeat scan", "error", err)
	}
}

func skipReason(cause error) string {
	if errors.Is(cause, errClientCancel) {
		return "scan cancelled"
	}
	if errors.Is(cause, errScanDeadline) {
		return errScanDeadline.Error()
	}
	return "scan context closed"
}

// lookupReportID finds a scan's report when the synthesize job finished
// on another pod before the scan row was updated.
func (o *Orchestrator) lookupReportID(ctx context.Context, scanID string) string {
	r, err := o.client.Report.Query().
		Where(report.ScanID(scanID)).
		Only(ctx)
	if err != nil {
		return ""
	}
	return r.ID
}
