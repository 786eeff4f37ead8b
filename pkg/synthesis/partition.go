// Package synthesis turns a thesis and a scored evidence set into a
// report draft with bound, injected citations.
package synthesis

import (
	"strings"

	"github.com/probeworks/diligent/pkg/models"
)

// pillarKeywords supplements the category match with terms that map loose
// evidence onto pillars.
var pillarKeywords = map[string][]string{
	"technology": {"stack", "framework", "infrastructure", "api", "architecture", "platform", "engineering"},
	"market":     {"competitor", "customer", "market", "industry", "segment", "demand", "growth"},
	"security":   {"security", "vulnerability", "tls", "encryption", "breach", "compliance", "header"},
	"financial":  {"funding", "revenue", "valuation", "investor", "pricing", "margin", "burn"},
}

// PartitionByPillar assigns evidence to thesis pillars. The evidence
// category wins when it names a pillar directly; otherwise the item goes
// to the pillar whose keyword set best matches its text, in thesis order
// on ties. Items matching nothing are left out of all sections (they can
// still surface in the overall top-N).
func PartitionByPillar(thesis models.Thesis, items []models.EvidenceItem) map[string][]models.EvidenceItem {
	out := make(map[string][]models.EvidenceItem, len(thesis.Pillars))
	byID := make(map[string]bool, len(thesis.Pillars))
	for _, p := range thesis.Pillars {
		out[p.ID] = nil
		byID[p.ID] = true
	}

	for _, item := range items {
		if byID[item.Category] {
			out[item.Category] = append(out[item.Category], item)
			continue
		}
		if id := bestKeywordPillar(thesis, item); id != "" {
			out[id] = append(out[id], item)
		}
	}
	return out
}

func bestKeywordPillar(thesis models.Thesis, item models.EvidenceItem) string {
	text := strings.ToLower(item.Title + " " + item.Summary + " " + item.Source.Kind)

	bestID := ""
	bestHits := 0
	for _, p := range thesis.Pillars {
		hits := 0
		for _, kw := range keywordsFor(p) {
			if strings.Contains(text, kw) {
				hits++
			}
		}
		if hits > bestHits {
			bestHits = hits
			bestID = p.ID
		}
	}
	return bestID
}

// keywordsFor merges the built-in keyword list with terms drawn from the
// pillar's own name and questions, so custom thesis pillars partition too.
func keywordsFor(p models.Pillar) []string {
	kws := append([]string{}, pillarKeywords[p.ID]...)
	kws = append(kws, strings.ToLower(p.Name))
	for _, q := range p.Questions {
		for _, term := range significantTerms(q) {
			kws = append(kws, term)
		}
	}
	return kws
}
