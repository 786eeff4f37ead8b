package models

// Finding is a single claim produced by the analyzer for a section,
// bound to the evidence items that support it.
type Finding struct {
	Claim       string   `json:"claim"`
	EvidenceIDs []string `json:"evidence_ids"`
	Confidence  float64  `json:"confidence"`
}

// SectionDraft is the analyzer output for one thesis pillar, before
// citation injection and persistence.
type SectionDraft struct {
	PillarID        string    `json:"pillar_id"`
	Title           string    `json:"title"`
	Content         string    `json:"content"` // markdown
	Score           float64   `json:"score"`   // [0,100]
	Findings        []Finding `json:"findings,omitempty"`
	Risks           []string  `json:"risks,omitempty"`
	Opportunities   []string  `json:"opportunities,omitempty"`
	Recommendations []string  `json:"recommendations,omitempty"`
	Degraded        bool      `json:"degraded,omitempty"`
}

// CitationDraft is a citation before persistence: the claim, the evidence it
// resolves to, and where in the section content it was anchored.
type CitationDraft struct {
	Number     int     `json:"number"` // monotonic per report
	SectionIdx int     `json:"section_idx"`
	Claim      string  `json:"claim"`
	EvidenceID string  `json:"evidence_id"`
	Quote      string  `json:"quote,omitempty"`
	Context    string  `json:"context,omitempty"`
	Confidence float64 `json:"confidence"`
	WeakAnchor bool    `json:"weak_anchor,omitempty"`
}

// ReportDraft is the fully synthesized report prior to persistence.
type ReportDraft struct {
	ScanID           string          `json:"scan_id"`
	ExecutiveSummary string          `json:"executive_summary"`
	InvestmentScore  float64         `json:"investment_score"` // [0,100]
	Rationale        string          `json:"rationale,omitempty"`
	QualityScore     float64         `json:"quality_score"`
	EvidenceCount    int             `json:"evidence_count"`
	Degraded         bool            `json:"degraded,omitempty"`
	Sections         []SectionDraft  `json:"sections"`
	Citations        []CitationDraft `json:"citations,omitempty"`
	Generator        map[string]any  `json:"generator,omitempty"`
}
