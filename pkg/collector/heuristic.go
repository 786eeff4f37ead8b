package collector

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/probeworks/diligent/pkg/models"
)

// HeuristicCollector is the fallback of last resort. It derives low
// confidence evidence from the scan input alone and never fails, so a
// fallback chain that reaches it always yields something. Everything it
// emits is flagged as fallback evidence with confidence capped at 0.5.
type HeuristicCollector struct{}

func NewHeuristicCollector() *HeuristicCollector { return &HeuristicCollector{} }

func (h *HeuristicCollector) Name() string { return "heuristic-fallback" }
func (h *HeuristicCollector) Capabilities() []Capability {
	return []Capability{
		CapWeb, CapTech, CapSecurity, CapMarket, CapFinancial,
		CapTeam, CapVulnerability, CapTLS, CapPerformance, CapDeepResearch,
	}
}
func (h *HeuristicCollector) Cost() float64                   { return 0 }
func (h *HeuristicCollector) SuggestedTimeout() time.Duration { return 5 * time.Second }
func (h *HeuristicCollector) MaxConcurrency() int             { return 16 }

func (h *HeuristicCollector) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	now := time.Now().UTC()
	src := models.SourceDescriptor{
		Kind:        "heuristic",
		URL:         in.Company.Website,
		Tool:        h.Name(),
		CollectedAt: now,
	}
	trail := []string{"heuristic-inference"}

	items := []models.EvidenceItem{{
		ScanID:   in.ScanID,
		Category: models.CategoryGeneral,
		Type:     models.TypeWebpage,
		Title:    fmt.Sprintf("Company profile: %s", in.Company.Name),
		Summary: fmt.Sprintf("%s operates a web presence at %s. No direct collection succeeded; this record is inferred from the scan input.",
			in.Company.Name, in.Company.Website),
		Source:          src,
		Confidence:      0.3,
		Relevance:       0.3,
		Fallback:        true,
		ProcessingTrail: trail,
	}}

	if u, err := url.Parse(in.Company.Website); err == nil && u.Host != "" {
		scheme := "does not serve HTTPS by default"
		conf := 0.25
		if u.Scheme == "https" {
			scheme = "serves HTTPS by default"
			conf = 0.4
		}
		items = append(items, models.EvidenceItem{
			ScanID:   in.ScanID,
			Category: models.CategorySecurity,
			Type:     models.TypeSecurity,
			Title:    fmt.Sprintf("Transport baseline for %s", u.Host),
			Summary:  fmt.Sprintf("The published website URL %s, based on its scheme alone.", scheme),
			Source:   src,
			Confidence:      conf,
			Relevance:       0.3,
			Fallback:        true,
			ProcessingTrail: trail,
		})

		if tld := lastLabel(u.Host); tld != "" {
			items = append(items, models.EvidenceItem{
				ScanID:   in.ScanID,
				Category: models.CategoryMarket,
				Type:     models.TypeSearchResult,
				Title:    fmt.Sprintf("Domain registration signal (.%s)", tld),
				Summary: fmt.Sprintf("The company domain %s uses the .%s top-level domain, a weak signal for its primary market.",
					u.Host, tld),
				Source:          src,
				Confidence:      0.2,
				Relevance:       0.2,
				Fallback:        true,
				ProcessingTrail: trail,
			})
		}
	}

	return items, true, nil
}

func lastLabel(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-1]
}
