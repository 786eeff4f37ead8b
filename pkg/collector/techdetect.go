package collector

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// techSignal names one detectable technology and where it was seen.
type techSignal struct {
	Name   string
	Origin string
}

// scriptPatterns maps substrings of script src attributes to the framework
// or platform they indicate.
var scriptPatterns = map[string]string{
	"react":      "React",
	"_next/":     "Next.js",
	"vue":        "Vue.js",
	"angular":    "Angular",
	"jquery":     "jQuery",
	"gatsby":     "Gatsby",
	"wp-content": "WordPress",
	"shopify":    "Shopify",
	"squarespace": "Squarespace",
	"hubspot":    "HubSpot",
	"segment":    "Segment",
	"gtag":       "Google Analytics",
	"stripe":     "Stripe",
	"intercom":   "Intercom",
}

// TechDetector fingerprints the technology stack from the homepage markup
// and response headers.
type TechDetector struct {
	client *http.Client
}

func NewTechDetector(client *http.Client) *TechDetector {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &TechDetector{client: client}
}

func (t *TechDetector) Name() string                    { return "tech-detector" }
func (t *TechDetector) Capabilities() []Capability      { return []Capability{CapTech} }
func (t *TechDetector) Cost() float64                   { return 0.5 }
func (t *TechDetector) SuggestedTimeout() time.Duration { return 30 * time.Second }
func (t *TechDetector) MaxConcurrency() int             { return 4 }

func (t *TechDetector) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in.Company.Website, nil)
	if err != nil {
		return nil, false, errkind.Newf(errkind.InvalidInput, "invalid website %q", in.Company.Website)
	}
	req.Header.Set("User-Agent", "diligent-scanner/1.0")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return nil, false, errkind.Newf(errkind.TransientNetwork, "homepage returned %d", resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		return nil, false, errkind.Newf(errkind.InvalidInput, "homepage returned %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, false, errkind.New(errkind.UpstreamMalformed, err)
	}

	signals := detectFromHeaders(resp.Header)
	signals = append(signals, detectFromDocument(doc)...)
	if len(signals) == 0 {
		return nil, false, errkind.Newf(errkind.UpstreamMalformed, "no technology signals at %s", in.Company.Website)
	}

	now := time.Now().UTC()
	items := make([]models.EvidenceItem, 0, len(signals))
	for _, sig := range dedupeSignals(signals) {
		conf := 0.8
		if sig.Origin == "header" {
			conf = 0.85
		}
		items = append(items, models.EvidenceItem{
			ScanID:   in.ScanID,
			Category: models.CategoryTechnology,
			Type:     models.TypeTechStack,
			Title:    sig.Name,
			Summary:  fmt.Sprintf("%s detected via %s inspection of %s", sig.Name, sig.Origin, in.Company.Website),
			Source: models.SourceDescriptor{
				Kind:        "tech-fingerprint",
				URL:         in.Company.Website,
				Tool:        t.Name(),
				CollectedAt: now,
			},
			Confidence:      conf,
			Relevance:       0.8,
			ProcessingTrail: []string{"fetch", "fingerprint:" + sig.Origin},
		})
	}
	return items, true, nil
}

func detectFromHeaders(h http.Header) []techSignal {
	var out []techSignal
	if v := h.Get("Server"); v != "" {
		out = append(out, techSignal{Name: firstToken(v), Origin: "header"})
	}
	if v := h.Get("X-Powered-By"); v != "" {
		out = append(out, techSignal{Name: firstToken(v), Origin: "header"})
	}
	if h.Get("CF-Ray") != "" {
		out = append(out, techSignal{Name: "Cloudflare", Origin: "header"})
	}
	if h.Get("X-Vercel-Id") != "" {
		out = append(out, techSignal{Name: "Vercel", Origin: "header"})
	}
	if h.Get("X-Amz-Cf-Id") != "" {
		out = append(out, techSignal{Name: "Amazon CloudFront", Origin: "header"})
	}
	return out
}

func detectFromDocument(doc *goquery.Document) []techSignal {
	var out []techSignal
	if gen, ok := doc.Find(`meta[name="generator"]`).Attr("content"); ok && gen != "" {
		out = append(out, techSignal{Name: firstToken(gen), Origin: "meta"})
	}
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		lower := strings.ToLower(src)
		for pattern, name := range scriptPatterns {
			if strings.Contains(lower, pattern) {
				out = append(out, techSignal{Name: name, Origin: "script"})
			}
		}
	})
	return out
}

// dedupeSignals keeps one signal per technology, preferring header origin,
// and returns them in stable name order.
func dedupeSignals(in []techSignal) []techSignal {
	byName := make(map[string]techSignal, len(in))
	for _, s := range in {
		prev, ok := byName[s.Name]
		if !ok || (prev.Origin != "header" && s.Origin == "header") {
			byName[s.Name] = s
		}
	}
	out := make([]techSignal, 0, len(byName))
	for _, s := range byName {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// firstToken strips version suffixes like "nginx/1.25.3" down to "nginx".
func firstToken(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, "/ "); i > 0 {
		return v[:i]
	}
	return v
}
