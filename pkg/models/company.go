// Package models contains domain types shared across the pipeline:
// scan intake, thesis, in-flight evidence, and report drafts.
package models

// AnalysisDepth controls how aggressive the pipeline is.
type AnalysisDepth string

// Analysis depth values.
const (
	DepthShallow    AnalysisDepth = "shallow"
	DepthDeep       AnalysisDepth = "deep"
	DepthExhaustive AnalysisDepth = "exhaustive"
)

// Valid reports whether d is a known depth.
func (d AnalysisDepth) Valid() bool {
	switch d {
	case DepthShallow, DepthDeep, DepthExhaustive:
		return true
	}
	return false
}

// Company identifies the scan target.
type Company struct {
	Name    string `json:"name"`
	Website string `json:"website"`
}

// ScanInput is the domain-level intake for a new scan.
type ScanInput struct {
	// ScanID is assigned by the caller when the scan id must be known
	// before creation (streaming intake). Empty means generate one.
	ScanID string `json:"-"`

	Company         Company       `json:"company"`
	InvestorProfile string        `json:"investor_profile,omitempty"`
	Depth           AnalysisDepth `json:"analysis_depth"`
	Thesis          *Thesis       `json:"thesis,omitempty"`
}
