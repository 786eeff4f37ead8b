package synthesis

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/analyzer"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// fakeAnalyzer scripts per-pillar section results and a fixed overall
// result, recording the evidence it was handed.
type fakeAnalyzer struct {
	sections     map[string]*analyzer.SectionResult
	sectionErrs  map[string][]error // consumed per call
	overall      *analyzer.OverallResult
	overallErr   error
	sectionCalls map[string]int
	evidenceSeen map[string]int
}

func newFakeAnalyzer() *fakeAnalyzer {
	return &fakeAnalyzer{
		sections:     make(map[string]*analyzer.SectionResult),
		sectionErrs:  make(map[string][]error),
		sectionCalls: make(map[string]int),
		evidenceSeen: make(map[string]int),
	}
}

func (f *fakeAnalyzer) AnalyzeSection(_ context.Context, req analyzer.SectionRequest) (*analyzer.SectionResult, error) {
	f.sectionCalls[req.Pillar.ID]++
	f.evidenceSeen[req.Pillar.ID] = len(req.Evidence)
	if errs := f.sectionErrs[req.Pillar.ID]; len(errs) > 0 {
		err := errs[0]
		f.sectionErrs[req.Pillar.ID] = errs[1:]
		return nil, err
	}
	if result, ok := f.sections[req.Pillar.ID]; ok {
		return result, nil
	}
	return &analyzer.SectionResult{Summary: "No evidence to analyze.", Score: 0}, nil
}

func (f *fakeAnalyzer) Synthesize(_ context.Context, _ analyzer.OverallRequest) (*analyzer.OverallResult, error) {
	if f.overallErr != nil {
		return nil, f.overallErr
	}
	if f.overall != nil {
		return f.overall, nil
	}
	return &analyzer.OverallResult{ExecutiveSummary: "Summary.", InvestmentScore: 50}, nil
}

func twoPillarThesis() models.Thesis {
	return models.Thesis{
		ID:        "t1",
		Statement: "Assess Acme",
		Pillars: []models.Pillar{
			{ID: "technology", Name: "Technology", Weight: 0.6},
			{ID: "market", Name: "Market", Weight: 0.4},
		},
	}
}

func techEvidence(id string, score float64) models.EvidenceItem {
	return models.EvidenceItem{
		ID:       id,
		Category: models.CategoryTechnology,
		Type:     models.TypeTechStack,
		Title:    "React detected",
		Summary:  "The platform uses React with a modern frontend.",
		Score:    score,
	}
}

func testSynthesizer(a analyzer.Analyzer) *Synthesizer {
	return NewSynthesizer(a, config.DefaultSynthesisConfig(), nil)
}

func TestBuildReportSectionsAndScore(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sections["technology"] = &analyzer.SectionResult{
		Summary: "The platform uses React with a modern frontend.",
		Score:   80,
		Findings: []models.Finding{
			{Claim: "The platform uses React with a modern frontend", EvidenceIDs: []string{"e1"}, Confidence: 0.9},
		},
		Risks: []string{"Single region deployment"},
	}
	fake.sections["market"] = &analyzer.SectionResult{Summary: "Competitive market.", Score: 50}
	fake.overall = &analyzer.OverallResult{
		ExecutiveSummary: "Solid technology, crowded market.",
		InvestmentScore:  68, // weighted mean: 0.6*80 + 0.4*50
		Rationale:        "Technology strength offsets market risk.",
	}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID:   "scan-1",
		Company:  models.Company{Name: "Acme", Website: "https://acme.test"},
		Thesis:   twoPillarThesis(),
		Evidence: []models.EvidenceItem{techEvidence("e1", 0.9)},
		Quality:  map[string]float64{"technology": 0.8, "market": 0.6},
	})
	require.NoError(t, err)

	require.Len(t, draft.Sections, 2)
	assert.Equal(t, "technology", draft.Sections[0].PillarID)
	assert.Equal(t, "market", draft.Sections[1].PillarID)
	assert.False(t, draft.Degraded)
	assert.InDelta(t, 68, draft.InvestmentScore, 1e-9)
	assert.InDelta(t, 0.7, draft.QualityScore, 1e-9)
	assert.Equal(t, 1, draft.EvidenceCount)

	// Section markdown carries the summary and the risks list.
	assert.Contains(t, draft.Sections[0].Content, "## Technology")
	assert.Contains(t, draft.Sections[0].Content, "### Risks")
	assert.Contains(t, draft.Sections[0].Content, "Single region deployment")

	// The finding resolved and was injected inline.
	require.Len(t, draft.Citations, 1)
	citation := draft.Citations[0]
	assert.Equal(t, 1, citation.Number)
	assert.Equal(t, "e1", citation.EvidenceID)
	assert.False(t, citation.WeakAnchor)
	assert.Contains(t, draft.Sections[0].Content, "[[1]](#citation-1)")
	assert.Contains(t, citation.Context, "[[1]](#citation-1)")
}

func TestBuildReportRenormalizesInconsistentScore(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sections["technology"] = &analyzer.SectionResult{Summary: "Fine.", Score: 80}
	fake.sections["market"] = &analyzer.SectionResult{Summary: "Fine.", Score: 50}
	fake.overall = &analyzer.OverallResult{ExecutiveSummary: "S.", InvestmentScore: 99}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID: "scan-2",
		Thesis: twoPillarThesis(),
	})
	require.NoError(t, err)

	// 99 drifts more than 1.0 from the weighted mean 68, so the weighted
	// mean wins.
	assert.InDelta(t, 68, draft.InvestmentScore, 1e-9)
}

func TestBuildReportDegradedSection(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sectionErrs["technology"] = []error{
		errkind.Newf(errkind.TransientNetwork, "analyzer unavailable"),
		errkind.Newf(errkind.TransientNetwork, "analyzer unavailable"),
		errkind.Newf(errkind.TransientNetwork, "analyzer unavailable"),
	}
	fake.sections["market"] = &analyzer.SectionResult{Summary: "Fine.", Score: 60}
	fake.overall = &analyzer.OverallResult{ExecutiveSummary: "S.", InvestmentScore: 24}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID: "scan-3",
		Thesis: twoPillarThesis(),
	})
	require.NoError(t, err)

	// Initial attempt plus two retries, then the placeholder section.
	assert.Equal(t, 3, fake.sectionCalls["technology"])
	require.Len(t, draft.Sections, 2)
	tech := draft.Sections[0]
	assert.True(t, tech.Degraded)
	assert.Zero(t, tech.Score)
	assert.Empty(t, tech.Findings)
	assert.Contains(t, tech.Content, "could not be completed")
	assert.True(t, draft.Degraded)

	// Weighted mean counts the degraded section as zero: 0.4*60 = 24.
	assert.InDelta(t, 24, draft.InvestmentScore, 1e-9)
}

func TestBuildReportNonRetriableSectionFailsOnce(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sectionErrs["technology"] = []error{
		errkind.Newf(errkind.AuthFailure, "bad key"),
	}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID: "scan-4",
		Thesis: twoPillarThesis(),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, fake.sectionCalls["technology"])
	assert.True(t, draft.Sections[0].Degraded)
}

func TestBuildReportOverallFailureIsFatal(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.overallErr = errkind.Newf(errkind.Internal, "synthesis crashed")

	s := testSynthesizer(fake)
	_, err := s.BuildReport(context.Background(), Input{
		ScanID: "scan-5",
		Thesis: twoPillarThesis(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overall synthesis")
}

func TestBuildReportTopKCapsSectionEvidence(t *testing.T) {
	items := make([]models.EvidenceItem, 0, 40)
	for i := 0; i < 40; i++ {
		items = append(items, techEvidence(fmt.Sprintf("e%d", i), 0.5))
	}

	fake := newFakeAnalyzer()
	s := testSynthesizer(fake)
	_, err := s.BuildReport(context.Background(), Input{
		ScanID:   "scan-6",
		Thesis:   twoPillarThesis(),
		Evidence: items,
	})
	require.NoError(t, err)
	assert.Equal(t, 30, fake.evidenceSeen["technology"])
}

func TestBuildReportDropsUnresolvableCitation(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sections["technology"] = &analyzer.SectionResult{
		Summary: "The platform uses React with a modern frontend.",
		Score:   70,
		Findings: []models.Finding{
			{Claim: "The platform uses React with a modern frontend", EvidenceIDs: []string{"e1", "ghost"}, Confidence: 0.8},
		},
	}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID:   "scan-7",
		Thesis:   twoPillarThesis(),
		Evidence: []models.EvidenceItem{techEvidence("e1", 0.9)},
	})
	require.NoError(t, err)

	// Only the resolvable reference survives binding.
	require.Len(t, draft.Citations, 1)
	assert.Equal(t, "e1", draft.Citations[0].EvidenceID)
}

func TestBuildReportDuplicateClaimCitedOnce(t *testing.T) {
	// Two findings anchoring to the same sentence: the proximity guard keeps
	// the second marker out of the text, but the citation row is still
	// recorded against its own evidence.
	fake := newFakeAnalyzer()
	fake.sections["technology"] = &analyzer.SectionResult{
		Summary: "The platform uses React with a modern frontend.",
		Score:   70,
		Findings: []models.Finding{
			{Claim: "platform uses React frontend", EvidenceIDs: []string{"e1"}, Confidence: 0.8},
			{Claim: "platform uses React frontend", EvidenceIDs: []string{"e2"}, Confidence: 0.7},
		},
	}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID: "scan-8",
		Thesis: twoPillarThesis(),
		Evidence: []models.EvidenceItem{
			techEvidence("e1", 0.9),
			techEvidence("e2", 0.8),
		},
	})
	require.NoError(t, err)

	require.Len(t, draft.Citations, 2)
	content := draft.Sections[0].Content
	assert.Equal(t, 1, strings.Count(content, "[[1]](#citation-1)"))
	assert.NotContains(t, content, "[[2]](#citation-2)")
}

func TestBuildReportWeakAnchorFooter(t *testing.T) {
	fake := newFakeAnalyzer()
	fake.sections["technology"] = &analyzer.SectionResult{
		Summary: "General remarks about the company.",
		Score:   40,
		Findings: []models.Finding{
			{Claim: "quantum blockchain synergy pivots", EvidenceIDs: []string{"e1"}, Confidence: 0.5},
		},
	}

	s := testSynthesizer(fake)
	draft, err := s.BuildReport(context.Background(), Input{
		ScanID:   "scan-9",
		Thesis:   twoPillarThesis(),
		Evidence: []models.EvidenceItem{techEvidence("e1", 0.9)},
	})
	require.NoError(t, err)

	require.Len(t, draft.Citations, 1)
	assert.True(t, draft.Citations[0].WeakAnchor)
	// The marker still appears, appended as a footer reference.
	assert.Contains(t, draft.Sections[0].Content, "[[1]](#citation-1) quantum blockchain synergy pivots")
}

func TestBuildReportCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := testSynthesizer(newFakeAnalyzer())
	_, err := s.BuildReport(ctx, Input{ScanID: "scan-10", Thesis: twoPillarThesis()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestPartitionByPillar(t *testing.T) {
	thesis := models.Thesis{
		Pillars: []models.Pillar{
			{ID: "technology", Name: "Technology"},
			{ID: "security", Name: "Security"},
		},
	}
	items := []models.EvidenceItem{
		{ID: "a", Category: models.CategoryTechnology, Summary: "anything"},
		{ID: "b", Category: models.CategoryGeneral, Summary: "Missing TLS encryption headers found"},
		{ID: "c", Category: models.CategoryGeneral, Summary: "Framework and API architecture notes"},
		{ID: "d", Category: models.CategoryGeneral, Summary: "Completely unrelated trivia"},
	}

	parts := PartitionByPillar(thesis, items)

	ids := func(items []models.EvidenceItem) []string {
		out := make([]string, len(items))
		for i, it := range items {
			out[i] = it.ID
		}
		return out
	}
	assert.Equal(t, []string{"a", "c"}, ids(parts["technology"]))
	assert.Equal(t, []string{"b"}, ids(parts["security"]))
	// Unmatched evidence stays out of every section.
	assert.NotContains(t, ids(parts["technology"]), "d")
	assert.NotContains(t, ids(parts["security"]), "d")
}

func TestQuoteForTruncatesOnRuneBoundary(t *testing.T) {
	item := models.EvidenceItem{Summary: strings.Repeat("a", maxQuoteBytes-1) + "é"}

	quote := quoteFor(item)
	assert.True(t, utf8.ValidString(quote))
	assert.Len(t, quote, maxQuoteBytes-1)

	short := models.EvidenceItem{Summary: "  héllo  "}
	assert.Equal(t, "héllo", quoteFor(short))
}
