package api

import "github.com/probeworks/diligent/pkg/models"

// CreateScanRequest is the HTTP request body for POST /api/v1/scans.
// Append ?stream=sse to receive the progress stream on the response
// instead of the created scan.
type CreateScanRequest struct {
	Company         models.Company `json:"company"`
	AnalysisDepth   string         `json:"analysis_depth,omitempty"`
	InvestorProfile string         `json:"investor_profile,omitempty"`
	Thesis          *models.Thesis `json:"thesis,omitempty"`
}

func (r CreateScanRequest) toInput() models.ScanInput {
	return models.ScanInput{
		Company:         r.Company,
		InvestorProfile: r.InvestorProfile,
		Depth:           models.AnalysisDepth(r.AnalysisDepth),
		Thesis:          r.Thesis,
	}
}
