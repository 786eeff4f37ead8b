package api

import (
	"time"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/pkg/database"
	"github.com/probeworks/diligent/pkg/queue"
)

// ScanResponse is the API shape of a scan request.
type ScanResponse struct {
	ScanID          string     `json:"scan_id"`
	CompanyName     string     `json:"company_name"`
	Website         string     `json:"website"`
	AnalysisDepth   string     `json:"analysis_depth"`
	Status          string     `json:"status"`
	StatusMessage   string     `json:"status_message,omitempty"`
	CurrentStage    string     `json:"current_stage,omitempty"`
	CompletedStages int        `json:"completed_stages"`
	ReportID        string     `json:"report_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func scanResponse(scan *ent.ScanRequest) ScanResponse {
	resp := ScanResponse{
		ScanID:          scan.ID,
		CompanyName:     scan.CompanyName,
		Website:         scan.Website,
		AnalysisDepth:   string(scan.AnalysisDepth),
		Status:          string(scan.Status),
		CompletedStages: scan.CompletedStages,
		CreatedAt:       scan.CreatedAt,
		StartedAt:       scan.StartedAt,
		CompletedAt:     scan.CompletedAt,
	}
	if scan.StatusMessage != nil {
		resp.StatusMessage = *scan.StatusMessage
	}
	if scan.CurrentStage != nil {
		resp.CurrentStage = *scan.CurrentStage
	}
	if scan.ReportID != nil {
		resp.ReportID = *scan.ReportID
	}
	return resp
}

// ScanListResponse is returned by GET /api/v1/scans.
type ScanListResponse struct {
	Scans []ScanResponse `json:"scans"`
	Total int            `json:"total"`
}

// StageResultResponse is one entry of the scan's stage log.
type StageResultResponse struct {
	StageIndex    int       `json:"stage_index"`
	StageName     string    `json:"stage_name"`
	Status        string    `json:"status"`
	EvidenceCount int       `json:"evidence_count"`
	Retries       int       `json:"retries"`
	DurationMs    int       `json:"duration_ms"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

func stageResultResponse(r *ent.StageResult) StageResultResponse {
	resp := StageResultResponse{
		StageIndex:    r.StageIndex,
		StageName:     r.StageName,
		Status:        string(r.Status),
		EvidenceCount: r.EvidenceCount,
		Retries:       r.Retries,
		DurationMs:    r.DurationMs,
		RecordedAt:    r.CreatedAt,
	}
	if r.ErrorMessage != nil {
		resp.ErrorMessage = *r.ErrorMessage
	}
	return resp
}

// CancelResponse is returned by POST /api/v1/scans/:id/cancel.
type CancelResponse struct {
	ScanID  string `json:"scan_id"`
	Message string `json:"message"`
}

// EvidenceListResponse pages a scan's persisted evidence.
type EvidenceListResponse struct {
	Evidence []*ent.Evidence `json:"evidence"`
	Total    int             `json:"total"`
}

// ReportResponse bundles a report with its sections, citations, and a
// top-scored evidence slice.
type ReportResponse struct {
	Report    *ent.Report          `json:"report"`
	Sections  []*ent.ReportSection `json:"sections"`
	Citations []*ent.Citation      `json:"citations"`
	Evidence  []*ent.Evidence      `json:"evidence"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Database   *database.HealthStatus `json:"database,omitempty"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
	Checks     map[string]HealthCheck `json:"checks"`
}
