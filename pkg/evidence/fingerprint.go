// Package evidence implements the in-memory evidence pool: fingerprint
// deduplication, scoring, quality summaries, and batched persistence.
package evidence

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/probeworks/diligent/pkg/models"
)

// summaryPrefixLen bounds how much of the summary feeds the fingerprint,
// so trailing boilerplate differences do not defeat deduplication.
const summaryPrefixLen = 200

// Fingerprint derives the stable dedup key of an evidence item from its
// type, locator (URL or query), and summary prefix.
func Fingerprint(item models.EvidenceItem) string {
	locator := item.Source.URL
	if locator == "" {
		locator = item.Source.Query
	}

	h := sha256.New()
	h.Write([]byte(normalize(item.Type)))
	h.Write([]byte{0})
	h.Write([]byte(normalize(locator)))
	h.Write([]byte{0})
	summary := item.Summary
	if len(summary) > summaryPrefixLen {
		summary = summary[:summaryPrefixLen]
	}
	h.Write([]byte(normalize(summary)))
	return hex.EncodeToString(h.Sum(nil))
}

// normalize lowercases, trims, and collapses internal whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// highValueTypes earn the scoring type boost.
var highValueTypes = map[string]struct{}{
	models.TypeTechStack:       {},
	models.TypeFinancialMetric: {},
	models.TypeTeamInfo:        {},
	models.TypeSecurity:        {},
	models.TypeAPIEndpoint:     {},
	models.TypeCustomer:        {},
}

// Score computes base_confidence * type_boost * source_boost, clamped to
// [0,1]. Generic web search results are discounted.
func Score(item models.EvidenceItem) float64 {
	score := item.Confidence

	if _, ok := highValueTypes[item.Type]; ok {
		score *= 1.5
	}
	if item.Source.Kind == "search" {
		score *= 0.8
	}

	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}
