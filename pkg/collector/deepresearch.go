package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// ResearchFinding is one synthesized finding from the research backend.
type ResearchFinding struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Category   string  `json:"category"`
	URL        string  `json:"url"`
	Confidence float64 `json:"confidence"`
}

// ResearchService abstracts the asynchronous deep-research backend:
// Submit starts a job, Poll reports status and, once done, findings.
type ResearchService interface {
	Submit(ctx context.Context, company models.Company) (jobID string, err error)
	Poll(ctx context.Context, jobID string) (done bool, findings []ResearchFinding, err error)
}

// DeepResearchCollector drives a submit-then-poll research job. It is the
// slowest and most expensive collector and only runs at exhaustive depth.
type DeepResearchCollector struct {
	service      ResearchService
	pollInterval time.Duration
}

func NewDeepResearchCollector(service ResearchService) *DeepResearchCollector {
	return &DeepResearchCollector{service: service, pollInterval: 15 * time.Second}
}

func (d *DeepResearchCollector) Name() string                    { return "deep-research" }
func (d *DeepResearchCollector) Capabilities() []Capability      { return []Capability{CapDeepResearch} }
func (d *DeepResearchCollector) Cost() float64                   { return 25.0 }
func (d *DeepResearchCollector) SuggestedTimeout() time.Duration { return 15 * time.Minute }
func (d *DeepResearchCollector) MaxConcurrency() int             { return 1 }

func (d *DeepResearchCollector) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	jobID, err := d.service.Submit(ctx, in.Company)
	if err != nil {
		return nil, false, err
	}

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, false, ctx.Err()
		case <-ticker.C:
		}

		done, findings, err := d.service.Poll(ctx, jobID)
		if err != nil {
			// Poll failures are retried on the next tick unless fatal.
			if !errkind.Retriable(errkind.Of(err)) {
				return nil, false, err
			}
			continue
		}
		if !done {
			continue
		}
		return d.toEvidence(in, findings), len(findings) > 0, nil
	}
}

func (d *DeepResearchCollector) toEvidence(in Input, findings []ResearchFinding) []models.EvidenceItem {
	now := time.Now().UTC()
	items := make([]models.EvidenceItem, 0, len(findings))
	for _, f := range findings {
		category := f.Category
		if !validCategory(category) {
			category = models.CategoryGeneral
		}
		conf := f.Confidence
		if conf <= 0 || conf > 1 {
			conf = 0.7
		}
		items = append(items, models.EvidenceItem{
			ScanID:   in.ScanID,
			Category: category,
			Type:     models.TypeDeepResearch,
			Title:    f.Title,
			Summary:  f.Summary,
			Source: models.SourceDescriptor{
				Kind:        "deep-research",
				URL:         f.URL,
				Tool:        d.Name(),
				CollectedAt: now,
			},
			Confidence:      conf,
			Relevance:       0.8,
			ProcessingTrail: []string{"deep-research"},
		})
	}
	return items
}

func validCategory(c string) bool {
	switch c {
	case models.CategoryTechnology, models.CategoryMarket, models.CategorySecurity,
		models.CategoryFinancial, models.CategoryTeam, models.CategoryGeneral:
		return true
	}
	return false
}

// HTTPResearchService implements ResearchService against a JSON API:
// POST {base}/v1/research and GET {base}/v1/research/{id}.
type HTTPResearchService struct {
	baseURL   string
	apiKeyEnv string
	client    *http.Client
}

func NewHTTPResearchService(baseURL, apiKeyEnv string, client *http.Client) *HTTPResearchService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPResearchService{baseURL: baseURL, apiKeyEnv: apiKeyEnv, client: client}
}

func (s *HTTPResearchService) Submit(ctx context.Context, company models.Company) (string, error) {
	payload, _ := json.Marshal(map[string]string{
		"company": company.Name,
		"website": company.Website,
	})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/research", bytes.NewReader(payload))
	if err != nil {
		return "", errkind.New(errkind.InvalidInput, err)
	}
	req.Header.Set("Content-Type", "application/json")
	s.authorize(req)

	var parsed struct {
		JobID string `json:"job_id"`
	}
	if err := s.do(req, &parsed); err != nil {
		return "", err
	}
	if parsed.JobID == "" {
		return "", errkind.Newf(errkind.UpstreamMalformed, "research submit returned no job id")
	}
	return parsed.JobID, nil
}

func (s *HTTPResearchService) Poll(ctx context.Context, jobID string) (bool, []ResearchFinding, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/v1/research/"+jobID, nil)
	if err != nil {
		return false, nil, errkind.New(errkind.InvalidInput, err)
	}
	s.authorize(req)

	var parsed struct {
		Status   string            `json:"status"`
		Findings []ResearchFinding `json:"findings"`
	}
	if err := s.do(req, &parsed); err != nil {
		return false, nil, err
	}
	switch parsed.Status {
	case "completed":
		return true, parsed.Findings, nil
	case "failed":
		return false, nil, errkind.Newf(errkind.UpstreamMalformed, "research job %s failed upstream", jobID)
	default:
		return false, nil, nil
	}
}

func (s *HTTPResearchService) authorize(req *http.Request) {
	if s.apiKeyEnv != "" {
		if key := os.Getenv(s.apiKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}
}

func (s *HTTPResearchService) do(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return errkind.RateLimitedAfter(fmt.Errorf("research rate limited"), retryAfter(resp))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errkind.Newf(errkind.AuthFailure, "research auth failed: %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return errkind.Newf(errkind.TransientNetwork, "research backend error: %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return errkind.Newf(errkind.InvalidInput, "research rejected request: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return errkind.New(errkind.TransientNetwork, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errkind.New(errkind.UpstreamMalformed, err)
	}
	return nil
}
