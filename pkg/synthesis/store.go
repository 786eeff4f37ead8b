package synthesis

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/ent/report"
	"github.com/probeworks/diligent/pkg/models"
)

// Store persists finished report drafts.
type Store struct {
	client *ent.Client
}

func NewStore(client *ent.Client) *Store {
	return &Store{client: client}
}

// ExistingFor returns the id of the scan's report when one was already
// persisted, or empty. Lets a retried synthesize job stay idempotent.
func (s *Store) ExistingFor(ctx context.Context, scanID string) (string, error) {
	r, err := s.client.Report.Query().
		Where(report.ScanID(scanID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to look up report: %w", err)
	}
	return r.ID, nil
}

// Persist writes the report, its sections, and its citations in one
// transaction. A second report for the same scan is rejected.
func (s *Store) Persist(ctx context.Context, draft *models.ReportDraft) (string, error) {
	exists, err := s.client.Report.Query().
		Where(report.ScanID(draft.ScanID)).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing report: %w", err)
	}
	if exists {
		return "", fmt.Errorf("report already exists for scan %s", draft.ScanID)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	reportID := uuid.NewString()
	create := tx.Report.Create().
		SetID(reportID).
		SetScanID(draft.ScanID).
		SetExecutiveSummary(draft.ExecutiveSummary).
		SetInvestmentScore(draft.InvestmentScore).
		SetQualityScore(draft.QualityScore).
		SetEvidenceCount(draft.EvidenceCount).
		SetDegraded(draft.Degraded)
	if draft.Rationale != "" {
		create = create.SetRationale(draft.Rationale)
	}
	if len(draft.Generator) > 0 {
		create = create.SetGenerator(draft.Generator)
	}
	if _, err := create.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}

	sectionIDs := make([]string, len(draft.Sections))
	for i, section := range draft.Sections {
		sectionIDs[i] = uuid.NewString()
		sc := tx.ReportSection.Create().
			SetID(sectionIDs[i]).
			SetReportID(reportID).
			SetPillarID(section.PillarID).
			SetTitle(section.Title).
			SetContent(section.Content).
			SetScore(section.Score).
			SetDegraded(section.Degraded).
			SetOrderIndex(i)
		if len(section.Findings) > 0 {
			sc = sc.SetKeyFindings(findingsToMaps(section.Findings))
		}
		if len(section.Risks) > 0 {
			sc = sc.SetRisks(section.Risks)
		}
		if len(section.Opportunities) > 0 {
			sc = sc.SetOpportunities(section.Opportunities)
		}
		if len(section.Recommendations) > 0 {
			sc = sc.SetRecommendations(section.Recommendations)
		}
		if _, err := sc.Save(ctx); err != nil {
			return "", fmt.Errorf("failed to insert section %s: %w", section.PillarID, err)
		}
	}

	for _, citation := range draft.Citations {
		if citation.SectionIdx < 0 || citation.SectionIdx >= len(sectionIDs) {
			return "", fmt.Errorf("citation %d references unknown section index %d",
				citation.Number, citation.SectionIdx)
		}
		cc := tx.Citation.Create().
			SetID(uuid.NewString()).
			SetReportID(reportID).
			SetSectionID(sectionIDs[citation.SectionIdx]).
			SetCitationNumber(citation.Number).
			SetClaim(citation.Claim).
			SetEvidenceID(citation.EvidenceID).
			SetConfidence(citation.Confidence).
			SetWeakAnchor(citation.WeakAnchor)
		if citation.Quote != "" {
			cc = cc.SetQuote(citation.Quote)
		}
		if citation.Context != "" {
			cc = cc.SetContext(citation.Context)
		}
		if _, err := cc.Save(ctx); err != nil {
			return "", fmt.Errorf("failed to insert citation %d: %w", citation.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit report: %w", err)
	}
	return reportID, nil
}

func findingsToMaps(findings []models.Finding) []map[string]interface{} {
	out := make([]map[string]interface{}, len(findings))
	for i, f := range findings {
		out[i] = map[string]interface{}{
			"claim":        f.Claim,
			"evidence_ids": f.EvidenceIDs,
			"confidence":   f.Confidence,
		}
	}
	return out
}
