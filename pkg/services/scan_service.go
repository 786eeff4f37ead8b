package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	entevidence "github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/ent/stageresult"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/models"
	"github.com/probeworks/diligent/pkg/queue"
)

// ScanService owns scan intake and lifecycle queries.
type ScanService struct {
	client *ent.Client
	queue  *queue.Service
}

// NewScanService creates a new ScanService.
func NewScanService(client *ent.Client, queueService *queue.Service) *ScanService {
	return &ScanService{client: client, queue: queueService}
}

// CreateScan validates intake, persists the pending scan with its thesis
// snapshot, and enqueues the orchestrate job that drives it.
func (s *ScanService) CreateScan(httpCtx context.Context, input models.ScanInput) (*ent.ScanRequest, error) {
	if strings.TrimSpace(input.Company.Name) == "" {
		return nil, NewValidationError("company.name", "required")
	}
	website, err := normalizeWebsite(input.Company.Website)
	if err != nil {
		return nil, NewValidationError("company.website", err.Error())
	}

	depth := input.Depth
	if depth == "" {
		depth = models.DepthDeep
	}
	if !depth.Valid() {
		return nil, NewValidationError("analysis_depth", fmt.Sprintf("unknown depth %q", depth))
	}

	thesis := input.Thesis
	if thesis == nil {
		thesis = models.DefaultThesis(input.Company.Name)
	} else {
		thesis.Normalize()
		if err := thesis.Validate(); err != nil {
			return nil, NewValidationError("thesis", err.Error())
		}
	}
	thesisSnapshot, err := thesisToMap(thesis)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot thesis: %w", err)
	}

	// Background context with timeout so a dropped HTTP client does not
	// leave a half-created scan.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	scanID := input.ScanID
	if scanID == "" {
		scanID = uuid.New().String()
	}
	builder := s.client.ScanRequest.Create().
		SetID(scanID).
		SetCompanyName(strings.TrimSpace(input.Company.Name)).
		SetWebsite(website).
		SetAnalysisDepth(scanrequest.AnalysisDepth(depth)).
		SetThesis(thesisSnapshot).
		SetStatus(scanrequest.StatusPending)
	if input.InvestorProfile != "" {
		builder.SetInvestorProfile(input.InvestorProfile)
	}

	scan, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create scan: %w", err)
	}

	_, err = s.queue.Enqueue(ctx, queue.EnqueueParams{
		Queue:    config.QueueOrchestrate,
		ScanID:   scanID,
		Priority: priorityForDepth(depth),
		DedupKey: "orchestrate:" + scanID,
		Payload:  map[string]any{"depth": string(depth)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue scan: %w", err)
	}

	return scan, nil
}

// GetScan fetches a scan by id.
func (s *ScanService) GetScan(ctx context.Context, scanID string) (*ent.ScanRequest, error) {
	scan, err := s.client.ScanRequest.Get(ctx, scanID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}
	return scan, nil
}

// ListScans returns scans newest-first, optionally filtered by status.
func (s *ScanService) ListScans(ctx context.Context, status string, limit, offset int) ([]*ent.ScanRequest, int, error) {
	query := s.client.ScanRequest.Query()
	if status != "" {
		query = query.Where(scanrequest.StatusEQ(scanrequest.Status(status)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count scans: %w", err)
	}

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	scans, err := query.
		Order(ent.Desc(scanrequest.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list scans: %w", err)
	}
	return scans, total, nil
}

// CancelScan flips the scan-scope cancellation flag. Workers observe it
// at the next suspension point; the orchestrator records the terminal
// status.
func (s *ScanService) CancelScan(ctx context.Context, scanID string) error {
	n, err := s.client.ScanRequest.Update().
		Where(
			scanrequest.IDEQ(scanID),
			scanrequest.StatusIn(scanrequest.StatusPending, scanrequest.StatusInProgress),
		).
		SetStatus(scanrequest.StatusCancelling).
		SetStatusMessage("cancellation requested").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel scan: %w", err)
	}
	if n == 0 {
		exists, err := s.client.ScanRequest.Query().Where(scanrequest.IDEQ(scanID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check scan: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return ErrScanTerminal
	}
	return nil
}

// CancelRequested reports whether the scan has a pending cancellation.
func (s *ScanService) CancelRequested(ctx context.Context, scanID string) (bool, error) {
	return s.client.ScanRequest.Query().
		Where(
			scanrequest.IDEQ(scanID),
			scanrequest.StatusEQ(scanrequest.StatusCancelling),
		).
		Exist(ctx)
}

// MarkStarted transitions a claimed scan into in_progress, stamping the
// owning pod and the hard deadline. A scan in cancelling keeps that
// status so the cancel is not lost.
func (s *ScanService) MarkStarted(ctx context.Context, scanID, podID string, deadline time.Time) error {
	_, err := s.client.ScanRequest.Update().
		Where(
			scanrequest.IDEQ(scanID),
			scanrequest.StatusEQ(scanrequest.StatusPending),
		).
		SetStatus(scanrequest.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(time.Now()).
		SetDeadlineAt(deadline).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark scan started: %w", err)
	}
	return nil
}

// Heartbeat refreshes the scan heartbeat and stage progress markers.
func (s *ScanService) Heartbeat(ctx context.Context, scanID, currentStage string, completedStages int) error {
	_, err := s.client.ScanRequest.UpdateOneID(scanID).
		SetLastHeartbeatAt(time.Now()).
		SetCurrentStage(currentStage).
		SetCompletedStages(completedStages).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to heartbeat scan: %w", err)
	}
	return nil
}

// MarkTerminal records the scan's terminal status exactly once. Later
// calls for an already terminal scan are rejected by the status guard.
func (s *ScanService) MarkTerminal(ctx context.Context, scanID string, status scanrequest.Status, message, reportID string) error {
	update := s.client.ScanRequest.Update().
		Where(
			scanrequest.IDEQ(scanID),
			scanrequest.StatusIn(
				scanrequest.StatusPending,
				scanrequest.StatusInProgress,
				scanrequest.StatusCancelling,
			),
		).
		SetStatus(status).
		SetCompletedAt(time.Now())
	if message != "" {
		update.SetStatusMessage(message)
	}
	if reportID != "" {
		update.SetReportID(reportID)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark scan terminal: %w", err)
	}
	if n == 0 {
		return ErrScanTerminal
	}
	return nil
}

// ScanProgress is the pull-status payload.
type ScanProgress struct {
	ScanID          string    `json:"scan_id"`
	Status          string    `json:"status"`
	StatusMessage   string    `json:"status_message,omitempty"`
	Percentage      float64   `json:"percentage"`
	CompletedStages int       `json:"completed_stages"`
	TotalStages     int       `json:"total_stages"`
	CurrentStage    string    `json:"current_stage,omitempty"`
	TotalEvidence   int       `json:"total_evidence"`
	ReportID        string    `json:"report_id,omitempty"`
	LastUpdated     time.Time `json:"last_updated"`
}

// Status assembles the progress snapshot for a scan. totalStages comes
// from the pipeline's canonical stage count.
func (s *ScanService) Status(ctx context.Context, scanID string, totalStages int) (*ScanProgress, error) {
	scan, err := s.GetScan(ctx, scanID)
	if err != nil {
		return nil, err
	}

	evidenceCount, err := s.client.Evidence.Query().
		Where(entevidence.ScanIDEQ(scanID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count evidence: %w", err)
	}

	progress := &ScanProgress{
		ScanID:          scan.ID,
		Status:          string(scan.Status),
		CompletedStages: scan.CompletedStages,
		TotalStages:     totalStages,
		TotalEvidence:   evidenceCount,
		LastUpdated:     scan.CreatedAt,
	}
	if totalStages > 0 {
		progress.Percentage = float64(scan.CompletedStages) / float64(totalStages) * 100
	}
	if scan.StatusMessage != nil {
		progress.StatusMessage = *scan.StatusMessage
	}
	if scan.CurrentStage != nil {
		progress.CurrentStage = *scan.CurrentStage
	}
	if scan.ReportID != nil {
		progress.ReportID = *scan.ReportID
	}
	if scan.LastHeartbeatAt != nil {
		progress.LastUpdated = *scan.LastHeartbeatAt
	}
	if scan.CompletedAt != nil {
		progress.LastUpdated = *scan.CompletedAt
	}
	return progress, nil
}

// StageResults returns a scan's stage log in canonical order.
func (s *ScanService) StageResults(ctx context.Context, scanID string) ([]*ent.StageResult, error) {
	results, err := s.client.StageResult.Query().
		Where(stageresult.ScanIDEQ(scanID)).
		Order(ent.Asc(stageresult.FieldStageIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load stage results: %w", err)
	}
	return results, nil
}

// ThesisFor reconstructs the thesis snapshot stored on the scan.
func ThesisFor(scan *ent.ScanRequest) (*models.Thesis, error) {
	if len(scan.Thesis) == 0 {
		return models.DefaultThesis(scan.CompanyName), nil
	}
	raw, err := json.Marshal(scan.Thesis)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal thesis snapshot: %w", err)
	}
	var thesis models.Thesis
	if err := json.Unmarshal(raw, &thesis); err != nil {
		return nil, fmt.Errorf("failed to decode thesis snapshot: %w", err)
	}
	return &thesis, nil
}

// --- Helpers ---

func normalizeWebsite(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("required")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host")
	}
	return u.String(), nil
}

func priorityForDepth(depth models.AnalysisDepth) int {
	switch depth {
	case models.DepthShallow:
		return 6
	case models.DepthExhaustive:
		return 4
	default:
		return 5
	}
}

func thesisToMap(thesis *models.Thesis) (map[string]any, error) {
	raw, err := json.Marshal(thesis)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
