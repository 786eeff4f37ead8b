package services

import (
	"context"
	"fmt"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/ent/citation"
	entevidence "github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/ent/reportsection"
)

// evidenceSliceLimit bounds the evidence rows attached to a report
// response. The full set stays queryable through the evidence endpoint.
const evidenceSliceLimit = 50

// ReportService assembles persisted reports for the API.
type ReportService struct {
	client *ent.Client
}

// NewReportService creates a new ReportService.
func NewReportService(client *ent.Client) *ReportService {
	return &ReportService{client: client}
}

// FullReport is a report with its sections, citations, and a bounded
// slice of top-scored evidence.
type FullReport struct {
	Report    *ent.Report
	Sections  []*ent.ReportSection
	Citations []*ent.Citation
	Evidence  []*ent.Evidence
}

// GetByScan loads the report emitted for a scan.
func (s *ReportService) GetByScan(ctx context.Context, scanID string) (*FullReport, error) {
	rpt, err := s.client.Report.Query().
		Where(report.ScanIDEQ(scanID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return s.assemble(ctx, rpt)
}

// Get loads a report by id.
func (s *ReportService) Get(ctx context.Context, reportID string) (*FullReport, error) {
	rpt, err := s.client.Report.Get(ctx, reportID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load report: %w", err)
	}
	return s.assemble(ctx, rpt)
}

func (s *ReportService) assemble(ctx context.Context, rpt *ent.Report) (*FullReport, error) {
	sections, err := s.client.ReportSection.Query().
		Where(reportsection.ReportIDEQ(rpt.ID)).
		Order(ent.Asc(reportsection.FieldOrderIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load report sections: %w", err)
	}

	citations, err := s.client.Citation.Query().
		Where(citation.ReportIDEQ(rpt.ID)).
		Order(ent.Asc(citation.FieldCitationNumber)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load citations: %w", err)
	}

	// Top-scored evidence slice for quick inspection alongside the report.
	evidence, err := s.client.Evidence.Query().
		Where(entevidence.ScanIDEQ(rpt.ScanID)).
		Order(ent.Desc(entevidence.FieldScore)).
		Limit(evidenceSliceLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load evidence slice: %w", err)
	}

	return &FullReport{
		Report:    rpt,
		Sections:  sections,
		Citations: citations,
		Evidence:  evidence,
	}, nil
}

// EvidenceForScan pages a scan's persisted evidence, score-descending.
func (s *ReportService) EvidenceForScan(ctx context.Context, scanID string, limit, offset int) ([]*ent.Evidence, int, error) {
	query := s.client.Evidence.Query().
		Where(entevidence.ScanIDEQ(scanID))

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count evidence: %w", err)
	}

	if limit <= 0 || limit > 200 {
		limit = evidenceSliceLimit
	}
	items, err := query.
		Order(ent.Desc(entevidence.FieldScore), ent.Asc(entevidence.FieldID)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list evidence: %w", err)
	}
	return items, total, nil
}
