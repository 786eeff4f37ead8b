package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// SearchResult is one hit returned by a SearchProvider.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchProvider abstracts the external web search backend.
type SearchProvider interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// categoryQueries templates the queries issued per capability category.
// %s is the company name.
var categoryQueries = map[string][]string{
	models.CategoryMarket: {
		"%s competitors",
		"%s market size industry",
		"%s customers case study",
	},
	models.CategoryFinancial: {
		"%s funding round revenue",
		"%s valuation investors",
	},
	models.CategoryTeam: {
		"%s founders leadership team",
		"%s engineering team hiring",
	},
	models.CategorySecurity: {
		"%s security breach vulnerability disclosure",
	},
	models.CategoryGeneral: {
		"%s company overview",
	},
}

// SearchCollector gathers public signal through a search backend. The
// pipeline dispatches it once per category via the "category" option.
type SearchCollector struct {
	provider SearchProvider
	perQuery int
}

func NewSearchCollector(provider SearchProvider) *SearchCollector {
	return &SearchCollector{provider: provider, perQuery: 5}
}

func (s *SearchCollector) Name() string { return "web-search" }
func (s *SearchCollector) Capabilities() []Capability {
	return []Capability{CapMarket, CapFinancial, CapTeam, CapWeb}
}
func (s *SearchCollector) Cost() float64                   { return 1.0 }
func (s *SearchCollector) SuggestedTimeout() time.Duration { return 60 * time.Second }
func (s *SearchCollector) MaxConcurrency() int             { return 3 }

// Collect runs the category's query set. Individual query failures do not
// abort the batch; the collector reports partial success as long as one
// query produced hits, and surfaces the first error only when all failed.
func (s *SearchCollector) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	category := models.CategoryGeneral
	if c, ok := in.Options["category"].(string); ok && c != "" {
		category = c
	}
	queries := queriesFor(category, in)

	var (
		items    []models.EvidenceItem
		firstErr error
	)
	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return items, len(items) > 0, err
		}
		hits, err := s.provider.Search(ctx, q, s.perQuery)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		now := time.Now().UTC()
		for _, h := range hits {
			items = append(items, models.EvidenceItem{
				ScanID:   in.ScanID,
				Category: category,
				Type:     models.TypeSearchResult,
				Title:    h.Title,
				Summary:  h.Snippet,
				Source: models.SourceDescriptor{
					Kind:        "search",
					URL:         h.URL,
					Query:       q,
					Tool:        s.Name(),
					CollectedAt: now,
				},
				Confidence:      0.6,
				Relevance:       0.5,
				ProcessingTrail: []string{"search:" + category},
			})
		}
	}

	if len(items) == 0 {
		if firstErr != nil {
			return nil, false, firstErr
		}
		return nil, false, errkind.Newf(errkind.UpstreamMalformed, "search returned no results for %s", in.Company.Name)
	}
	// At least one query produced hits; failed queries were absorbed above.
	return items, true, nil
}

func queriesFor(category string, in Input) []string {
	if raw, ok := in.Options["queries"].([]string); ok && len(raw) > 0 {
		return raw
	}
	templates, ok := categoryQueries[category]
	if !ok {
		templates = categoryQueries[models.CategoryGeneral]
	}
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = fmt.Sprintf(t, in.Company.Name)
	}
	return out
}

// HTTPSearchProvider talks to a JSON search API: GET {base}/search?q=...&limit=N
// returning {"results": [{"title","url","snippet"}]}.
type HTTPSearchProvider struct {
	baseURL   string
	apiKeyEnv string
	client    *http.Client
}

func NewHTTPSearchProvider(baseURL, apiKeyEnv string, client *http.Client) *HTTPSearchProvider {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPSearchProvider{baseURL: baseURL, apiKeyEnv: apiKeyEnv, client: client}
}

func (p *HTTPSearchProvider) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	u, err := url.Parse(p.baseURL + "/search")
	if err != nil {
		return nil, errkind.Newf(errkind.InvalidInput, "invalid search base url %q", p.baseURL)
	}
	q := u.Query()
	q.Set("q", query)
	q.Set("limit", strconv.Itoa(limit))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errkind.New(errkind.InvalidInput, err)
	}
	if p.apiKeyEnv != "" {
		if key := os.Getenv(p.apiKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errkind.RateLimitedAfter(fmt.Errorf("search rate limited"), retryAfter(resp))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errkind.Newf(errkind.AuthFailure, "search auth failed: %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return nil, errkind.Newf(errkind.TransientNetwork, "search backend error: %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, errkind.Newf(errkind.InvalidInput, "search rejected query: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errkind.New(errkind.TransientNetwork, err)
	}
	var parsed struct {
		Results []SearchResult `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errkind.New(errkind.UpstreamMalformed, err)
	}
	return parsed.Results, nil
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 0
}
