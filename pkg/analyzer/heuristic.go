package analyzer

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/probeworks/diligent/pkg/models"
)

// maxFindingsPerSection bounds how many findings the heuristic analyzer
// derives from a pillar's evidence.
const maxFindingsPerSection = 5

// Heuristic is the built-in deterministic analyzer. It derives sections
// purely from evidence scores and counts, so two runs over the same
// evidence produce identical reports. It is the default when no language
// model endpoint is configured, and the implementation used in tests.
type Heuristic struct{}

func NewHeuristic() *Heuristic { return &Heuristic{} }

func (h *Heuristic) AnalyzeSection(ctx context.Context, req SectionRequest) (*SectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	items := make([]models.EvidenceItem, len(req.Evidence))
	copy(items, req.Evidence)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].Fingerprint < items[j].Fingerprint
	})

	res := &SectionResult{
		Summary: h.sectionSummary(req, items),
		Score:   sectionScore(items),
	}

	for i, item := range items {
		if i == maxFindingsPerSection {
			break
		}
		res.Findings = append(res.Findings, models.Finding{
			Claim:       claimFor(item),
			EvidenceIDs: []string{item.ID},
			Confidence:  item.Confidence,
		})
	}

	res.Risks = h.risks(req.Pillar, items)
	res.Opportunities = h.opportunities(req.Pillar, items)
	res.Recommendations = h.recommendations(req.Pillar, items)
	return res, nil
}

func (h *Heuristic) Synthesize(ctx context.Context, req OverallRequest) (*OverallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Sections score on [0,100]; the weighted mean keeps the overall score
	// on the same scale. A missing section contributes zero.
	weighted := 0.0
	for _, pillar := range req.Thesis.Pillars {
		if section, ok := req.Sections[pillar.ID]; ok {
			weighted += pillar.Weight * section.Score
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s was assessed against %d thesis pillars using %d top evidence items. ",
		req.Company.Name, len(req.Thesis.Pillars), len(req.TopEvidence))
	for _, pillar := range req.Thesis.Pillars {
		section, ok := req.Sections[pillar.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "%s scored %.0f/100. ", pillar.Name, section.Score)
	}

	rationale := fmt.Sprintf(
		"The investment score is the pillar-weighted mean of section scores under the thesis %q.",
		req.Thesis.Statement)

	return &OverallResult{
		ExecutiveSummary: strings.TrimSpace(b.String()),
		InvestmentScore:  weighted,
		Rationale:        rationale,
	}, nil
}

func (h *Heuristic) sectionSummary(req SectionRequest, items []models.EvidenceItem) string {
	if len(items) == 0 {
		return fmt.Sprintf("No evidence was collected for the %s pillar of %s.",
			req.Pillar.Name, req.Company.Name)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Assessment of %s for the %s pillar draws on %d evidence items.",
		req.Company.Name, req.Pillar.Name, len(items))
	limit := 3
	if len(items) < limit {
		limit = len(items)
	}
	for _, item := range items[:limit] {
		b.WriteString(" ")
		b.WriteString(claimFor(item))
		if !strings.HasSuffix(b.String(), ".") {
			b.WriteString(".")
		}
	}
	return b.String()
}

// sectionScore maps evidence quality to [0,100]: mean score weighted up by
// evidence volume, saturating at 10 items.
func sectionScore(items []models.EvidenceItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0.0
	for _, item := range items {
		sum += item.Score
	}
	mean := sum / float64(len(items))

	volume := float64(len(items)) / 10
	if volume > 1 {
		volume = 1
	}
	score := mean * 100 * (0.5 + 0.5*volume)
	if score > 100 {
		score = 100
	}
	return score
}

// claimFor derives a finding claim from an item: its title, or the first
// sentence of its summary.
func claimFor(item models.EvidenceItem) string {
	if item.Title != "" {
		return item.Title
	}
	summary := strings.TrimSpace(item.Summary)
	if idx := strings.IndexAny(summary, ".!?"); idx > 0 {
		return summary[:idx+1]
	}
	return summary
}

func (h *Heuristic) risks(pillar models.Pillar, items []models.EvidenceItem) []string {
	var risks []string
	if len(items) < 3 {
		risks = append(risks, fmt.Sprintf(
			"Evidence coverage for the %s pillar is thin (%d items); conclusions carry low confidence.",
			pillar.Name, len(items)))
	}
	fallbacks := 0
	for _, item := range items {
		if item.Fallback {
			fallbacks++
		}
	}
	if fallbacks > 0 {
		risks = append(risks, fmt.Sprintf(
			"%d of %d evidence items were inferred by fallback heuristics rather than collected directly.",
			fallbacks, len(items)))
	}
	return risks
}

func (h *Heuristic) opportunities(pillar models.Pillar, items []models.EvidenceItem) []string {
	strong := 0
	for _, item := range items {
		if item.Score >= 0.8 {
			strong++
		}
	}
	if strong == 0 {
		return nil
	}
	return []string{fmt.Sprintf(
		"%d high-scoring evidence items support further diligence on the %s pillar.",
		strong, pillar.Name)}
}

func (h *Heuristic) recommendations(pillar models.Pillar, items []models.EvidenceItem) []string {
	if len(items) < 3 {
		return []string{fmt.Sprintf(
			"Commission targeted follow-up collection for the %s pillar before relying on this section.",
			pillar.Name)}
	}
	return []string{fmt.Sprintf(
		"Validate the top findings of the %s pillar with primary sources during confirmatory diligence.",
		pillar.Name)}
}
