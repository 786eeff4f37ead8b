package analyzer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/models"
)

func pillarEvidence() []models.EvidenceItem {
	return []models.EvidenceItem{
		{ID: "e1", Title: "React detected", Category: models.CategoryTechnology, Type: models.TypeTechStack, Score: 0.9, Confidence: 0.8, Fingerprint: "fp1"},
		{ID: "e2", Title: "Kubernetes on GKE", Category: models.CategoryTechnology, Type: models.TypeTechStack, Score: 0.85, Confidence: 0.8, Fingerprint: "fp2"},
		{ID: "e3", Summary: "The platform exposes a public REST API. Further detail follows.", Category: models.CategoryTechnology, Type: models.TypeAPIEndpoint, Score: 0.7, Confidence: 0.7, Fingerprint: "fp3"},
		{ID: "e4", Title: "Legacy jQuery usage", Category: models.CategoryTechnology, Type: models.TypeTechStack, Score: 0.4, Confidence: 0.5, Fingerprint: "fp4"},
	}
}

func techRequest() SectionRequest {
	return SectionRequest{
		Company:  models.Company{Name: "Acme", Website: "https://acme.test"},
		Pillar:   models.Pillar{ID: "technology", Name: "Technology", Weight: 0.35},
		Evidence: pillarEvidence(),
	}
}

func TestHeuristicSectionDeterministic(t *testing.T) {
	h := NewHeuristic()

	a, err := h.AnalyzeSection(context.Background(), techRequest())
	require.NoError(t, err)
	b, err := h.AnalyzeSection(context.Background(), techRequest())
	require.NoError(t, err)

	assert.Equal(t, a, b, "identical input must produce identical sections")
}

func TestHeuristicSectionContent(t *testing.T) {
	h := NewHeuristic()
	res, err := h.AnalyzeSection(context.Background(), techRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Summary)
	assert.Greater(t, res.Score, 0.0)
	assert.LessOrEqual(t, res.Score, 100.0)

	require.NotEmpty(t, res.Findings)
	// Findings come in score order, each bound to its evidence id.
	assert.Equal(t, "React detected", res.Findings[0].Claim)
	assert.Equal(t, []string{"e1"}, res.Findings[0].EvidenceIDs)
	// A summary-derived claim stops at the first sentence.
	found := false
	for _, f := range res.Findings {
		if f.EvidenceIDs[0] == "e3" {
			assert.Equal(t, "The platform exposes a public REST API.", f.Claim)
			found = true
		}
	}
	assert.True(t, found)
}

func TestHeuristicEmptyEvidenceScoresZero(t *testing.T) {
	h := NewHeuristic()
	req := techRequest()
	req.Evidence = nil

	res, err := h.AnalyzeSection(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Findings)
	assert.NotEmpty(t, res.Risks, "thin coverage must be flagged")
}

func TestHeuristicFallbackEvidenceFlaggedAsRisk(t *testing.T) {
	h := NewHeuristic()
	req := techRequest()
	req.Evidence = append(req.Evidence, models.EvidenceItem{
		ID: "e5", Title: "Inferred profile", Fallback: true, Score: 0.3, Fingerprint: "fp5",
	})

	res, err := h.AnalyzeSection(context.Background(), req)
	require.NoError(t, err)

	joined := ""
	for _, r := range res.Risks {
		joined += r + "\n"
	}
	assert.Contains(t, joined, "fallback")
}

func TestHeuristicSynthesizeWeightedScore(t *testing.T) {
	h := NewHeuristic()
	thesis := models.DefaultThesis("Acme")

	sections := map[string]*SectionResult{}
	for _, p := range thesis.Pillars {
		sections[p.ID] = &SectionResult{Score: 80}
	}

	res, err := h.Synthesize(context.Background(), OverallRequest{
		Company:  models.Company{Name: "Acme"},
		Thesis:   *thesis,
		Sections: sections,
	})
	require.NoError(t, err)

	// Uniform 80/100 sections give a weighted mean of 80 regardless of
	// the weight split.
	assert.InDelta(t, 80, res.InvestmentScore, 1e-9)
	assert.NotEmpty(t, res.ExecutiveSummary)
	assert.NotEmpty(t, res.Rationale)
}

func TestHeuristicSynthesizeMissingSectionContributesZero(t *testing.T) {
	h := NewHeuristic()
	thesis := models.DefaultThesis("Acme")

	sections := map[string]*SectionResult{
		"technology": {Score: 100},
	}
	res, err := h.Synthesize(context.Background(), OverallRequest{
		Company: models.Company{Name: "Acme"}, Thesis: *thesis, Sections: sections,
	})
	require.NoError(t, err)
	assert.InDelta(t, 35, res.InvestmentScore, 1e-9) // 0.35 * 100
}
