// Package analyzer defines the model-agnostic analysis surface used by
// the report synthesizer, plus the built-in implementations.
package analyzer

import (
	"context"

	"github.com/probeworks/diligent/pkg/models"
)

// SectionRequest asks for the analysis of one thesis pillar.
type SectionRequest struct {
	Company  models.Company
	Pillar   models.Pillar
	Evidence []models.EvidenceItem
}

// SectionResult is the analyzer's verdict for one pillar.
type SectionResult struct {
	Summary         string           `json:"summary"`
	Findings        []models.Finding `json:"findings"`
	Risks           []string         `json:"risks"`
	Opportunities   []string         `json:"opportunities"`
	Recommendations []string         `json:"recommendations"`

	// Score is the analyzer's confidence-weighted aggregate in [0,100],
	// not a recount of the evidence.
	Score float64 `json:"score"`
}

// OverallRequest asks for the executive synthesis across all sections.
type OverallRequest struct {
	Company     models.Company
	Thesis      models.Thesis
	Sections    map[string]*SectionResult // keyed by pillar id
	TopEvidence []models.EvidenceItem
}

// OverallResult is the executive-level synthesis.
type OverallResult struct {
	ExecutiveSummary string  `json:"executive_summary"`
	InvestmentScore  float64 `json:"investment_score"` // [0,100]
	Rationale        string  `json:"rationale"`
}

// Analyzer turns scored evidence into section and report conclusions.
type Analyzer interface {
	AnalyzeSection(ctx context.Context, req SectionRequest) (*SectionResult, error)
	Synthesize(ctx context.Context, req OverallRequest) (*OverallResult, error)
}
