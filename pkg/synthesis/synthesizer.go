package synthesis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/probeworks/diligent/pkg/analyzer"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// Synthesizer assembles the report: per-pillar sections through the
// analyzer, an executive synthesis, then citation binding and injection.
type Synthesizer struct {
	analyzer analyzer.Analyzer
	cfg      *config.SynthesisConfig
	logger   *slog.Logger
}

func NewSynthesizer(a analyzer.Analyzer, cfg *config.SynthesisConfig, logger *slog.Logger) *Synthesizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Synthesizer{analyzer: a, cfg: cfg, logger: logger}
}

// Input carries everything the synthesizer needs. Evidence must already
// be persisted: citation binding resolves against these ids.
type Input struct {
	ScanID   string
	Company  models.Company
	Thesis   models.Thesis
	Evidence []models.EvidenceItem // scored, deduplicated, persisted
	Quality  map[string]float64    // per-category average score
	Hooks    *Hooks
}

// Hooks receive synthesis progress for the progress channel. All fields
// are optional.
type Hooks struct {
	SectionDone  func(pillarID string, score float64, degraded bool)
	OverallStart func()
}

func (h *Hooks) sectionDone(pillarID string, score float64, degraded bool) {
	if h != nil && h.SectionDone != nil {
		h.SectionDone(pillarID, score, degraded)
	}
}

func (h *Hooks) overallStart() {
	if h != nil && h.OverallStart != nil {
		h.OverallStart()
	}
}

// BuildReport runs the full synthesis procedure. Individual section
// failures degrade that section; only a failure of the overall synthesis
// is returned as an error.
func (s *Synthesizer) BuildReport(ctx context.Context, in Input) (*models.ReportDraft, error) {
	partitions := PartitionByPillar(in.Thesis, in.Evidence)

	sections := make([]models.SectionDraft, 0, len(in.Thesis.Pillars))
	analyzerSections := make(map[string]*analyzer.SectionResult, len(in.Thesis.Pillars))
	degradedAny := false

	for _, pillar := range in.Thesis.Pillars {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		evidence := topK(partitions[pillar.ID], s.cfg.TopKPerSection)
		result, err := s.analyzeWithRetries(ctx, analyzer.SectionRequest{
			Company:  in.Company,
			Pillar:   pillar,
			Evidence: evidence,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.logger.Warn("Section analysis degraded",
				"scan_id", in.ScanID, "pillar", pillar.ID, "error", err)
			sections = append(sections, degradedSection(pillar))
			degradedAny = true
			in.Hooks.sectionDone(pillar.ID, 0, true)
			continue
		}

		analyzerSections[pillar.ID] = result
		sections = append(sections, models.SectionDraft{
			PillarID:        pillar.ID,
			Title:           pillar.Name,
			Content:         renderSection(pillar, result),
			Score:           result.Score,
			Findings:        result.Findings,
			Risks:           result.Risks,
			Opportunities:   result.Opportunities,
			Recommendations: result.Recommendations,
		})
		in.Hooks.sectionDone(pillar.ID, result.Score, false)
	}

	in.Hooks.overallStart()
	overall, err := s.analyzer.Synthesize(ctx, analyzer.OverallRequest{
		Company:     in.Company,
		Thesis:      in.Thesis,
		Sections:    analyzerSections,
		TopEvidence: topK(in.Evidence, s.cfg.TopNOverall),
	})
	if err != nil {
		return nil, fmt.Errorf("overall synthesis: %w", err)
	}

	score := s.consistentScore(in.Thesis, sections, overall.InvestmentScore, in.ScanID)

	draft := &models.ReportDraft{
		ScanID:           in.ScanID,
		ExecutiveSummary: overall.ExecutiveSummary,
		InvestmentScore:  score,
		Rationale:        overall.Rationale,
		QualityScore:     meanQuality(in.Quality),
		EvidenceCount:    len(in.Evidence),
		Degraded:         degradedAny,
		Sections:         sections,
	}

	s.bindAndInject(draft, in.Evidence)
	return draft, nil
}

// analyzeWithRetries retries retriable analyzer failures up to the
// configured section retry budget.
func (s *Synthesizer) analyzeWithRetries(ctx context.Context, req analyzer.SectionRequest) (*analyzer.SectionResult, error) {
	var lastErr error
	for attempt := 0; attempt <= s.cfg.SectionRetries; attempt++ {
		result, err := s.analyzer.AnalyzeSection(ctx, req)
		if err == nil {
			return result, nil
		}
		lastErr = err
		if ctx.Err() != nil || !errkind.Retriable(errkind.Of(err)) {
			break
		}
	}
	return nil, lastErr
}

// consistentScore enforces the score consistency bound: when the overall
// score drifts more than the tolerance from the pillar-weighted mean, the
// weighted mean wins.
func (s *Synthesizer) consistentScore(thesis models.Thesis, sections []models.SectionDraft, overall float64, scanID string) float64 {
	weighted := 0.0
	for _, section := range sections {
		if pillar, ok := thesis.PillarByID(section.PillarID); ok {
			weighted += pillar.Weight * section.Score
		}
	}

	if math.Abs(overall-weighted) > s.cfg.ScoreTolerance {
		s.logger.Warn("Overall score inconsistent with weighted sections, re-normalizing",
			"scan_id", scanID, "overall", overall, "weighted", weighted)
		return weighted
	}
	return overall
}

// bindAndInject resolves every finding's evidence references against the
// persisted set, drops unresolvable citations, and injects the survivors
// into section content. Numbering is monotonic across the whole report.
func (s *Synthesizer) bindAndInject(draft *models.ReportDraft, persisted []models.EvidenceItem) {
	byID := make(map[string]models.EvidenceItem, len(persisted))
	for _, item := range persisted {
		byID[item.ID] = item
	}

	number := 0
	for si := range draft.Sections {
		section := &draft.Sections[si]
		for _, finding := range section.Findings {
			for _, evidenceID := range finding.EvidenceIDs {
				item, ok := byID[evidenceID]
				if !ok {
					s.logger.Warn("Dropping citation with unresolvable evidence",
						"scan_id", draft.ScanID, "evidence_id", evidenceID)
					continue
				}

				number++
				citation := models.CitationDraft{
					Number:     number,
					SectionIdx: si,
					Claim:      finding.Claim,
					EvidenceID: evidenceID,
					Quote:      quoteFor(item),
					Confidence: finding.Confidence,
				}

				content, anchored := InjectCitation(section.Content, finding.Claim, number)
				if anchored {
					section.Content = content
				} else {
					// No anchor found anywhere in the section: reference
					// from a footer instead and mark the anchor weak.
					citation.WeakAnchor = true
					section.Content = appendFooterReference(section.Content, number, finding.Claim)
				}
				citation.Context = contextAround(section.Content, number)
				draft.Citations = append(draft.Citations, citation)
			}
		}
	}
}

func degradedSection(pillar models.Pillar) models.SectionDraft {
	return models.SectionDraft{
		PillarID: pillar.ID,
		Title:    pillar.Name,
		Content: fmt.Sprintf(
			"## %s\n\nAnalysis for this pillar could not be completed; the section is reported without findings.\n",
			pillar.Name),
		Score:    0,
		Degraded: true,
	}
}

// renderSection produces the section markdown the citations are injected
// into.
func renderSection(pillar models.Pillar, result *analyzer.SectionResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n%s\n", pillar.Name, result.Summary)

	writeList := func(heading string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintf(&b, "\n### %s\n\n", heading)
		for _, line := range lines {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	writeList("Risks", result.Risks)
	writeList("Opportunities", result.Opportunities)
	writeList("Recommendations", result.Recommendations)
	return b.String()
}

// topK returns the first k items of an already score-ordered slice.
func topK(items []models.EvidenceItem, k int) []models.EvidenceItem {
	if k <= 0 || k > len(items) {
		k = len(items)
	}
	return items[:k]
}

func meanQuality(quality map[string]float64) float64 {
	if len(quality) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range quality {
		sum += v
	}
	return sum / float64(len(quality))
}

// maxQuoteBytes bounds the evidence quote stored with each citation.
const maxQuoteBytes = 240

func quoteFor(item models.EvidenceItem) string {
	quote := strings.TrimSpace(item.Summary)
	if len(quote) > maxQuoteBytes {
		// Back off to a rune boundary so the persisted quote stays valid
		// UTF-8.
		cut := maxQuoteBytes
		for cut > 0 && !utf8.RuneStart(quote[cut]) {
			cut--
		}
		quote = quote[:cut]
	}
	return quote
}

func appendFooterReference(content string, number int, claim string) string {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + fmt.Sprintf("\n%s %s\n", marker(number), claim)
}

// contextAround returns the text surrounding the citation marker, for
// storage alongside the citation.
func contextAround(content string, number int) string {
	idx := strings.Index(content, marker(number))
	if idx < 0 {
		return ""
	}
	lo := idx - 80
	if lo < 0 {
		lo = 0
	}
	hi := idx + len(marker(number)) + 80
	if hi > len(content) {
		hi = len(content)
	}
	return content[lo:hi]
}
