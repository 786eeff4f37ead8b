package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// evidenceForPrompt is the trimmed evidence form sent to the endpoint:
// raw bodies stay home.
type evidenceForPrompt struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Type       string  `json:"type"`
	Title      string  `json:"title,omitempty"`
	Summary    string  `json:"summary"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"`
	URL        string  `json:"url,omitempty"`
}

// LLM analyzes sections through an HTTP model endpoint that accepts the
// section/synthesis payloads and returns structured JSON. The endpoint is
// expected to enforce the schema; malformed responses are classified
// upstream-malformed and lead to section degradation after retries.
type LLM struct {
	baseURL   string
	model     string
	apiKeyEnv string
	client    *http.Client
}

func NewLLM(cfg *config.AnalyzerConfig) *LLM {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 90 * time.Second
	}
	return &LLM{
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		apiKeyEnv: cfg.APIKeyEnv,
		client:    &http.Client{Timeout: timeout},
	}
}

func (l *LLM) AnalyzeSection(ctx context.Context, req SectionRequest) (*SectionResult, error) {
	payload := map[string]any{
		"model":   l.model,
		"company": req.Company,
		"pillar": map[string]any{
			"id":        req.Pillar.ID,
			"name":      req.Pillar.Name,
			"questions": req.Pillar.Questions,
		},
		"evidence": trimEvidence(req.Evidence),
	}

	var result SectionResult
	if err := l.post(ctx, "/v1/analyze/section", payload, &result); err != nil {
		return nil, err
	}
	if result.Score < 0 || result.Score > 100 {
		return nil, errkind.Newf(errkind.UpstreamMalformed,
			"section score %.2f outside [0,100]", result.Score)
	}
	return &result, nil
}

func (l *LLM) Synthesize(ctx context.Context, req OverallRequest) (*OverallResult, error) {
	sections := make(map[string]any, len(req.Sections))
	for pillarID, s := range req.Sections {
		sections[pillarID] = map[string]any{
			"summary": s.Summary,
			"score":   s.Score,
			"risks":   s.Risks,
		}
	}
	payload := map[string]any{
		"model":    l.model,
		"company":  req.Company,
		"thesis":   req.Thesis,
		"sections": sections,
		"evidence": trimEvidence(req.TopEvidence),
	}

	var result OverallResult
	if err := l.post(ctx, "/v1/analyze/overall", payload, &result); err != nil {
		return nil, err
	}
	if result.InvestmentScore < 0 || result.InvestmentScore > 100 {
		return nil, errkind.Newf(errkind.UpstreamMalformed,
			"investment score %.2f outside [0,100]", result.InvestmentScore)
	}
	return &result, nil
}

func (l *LLM) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errkind.New(errkind.Internal, fmt.Errorf("encoding analyzer payload: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, l.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return errkind.New(errkind.InvalidInput, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if l.apiKeyEnv != "" {
		if key := os.Getenv(l.apiKeyEnv); key != "" {
			req.Header.Set("Authorization", "Bearer "+key)
		}
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		var after time.Duration
		if v := resp.Header.Get("Retry-After"); v != "" {
			if secs, convErr := strconv.Atoi(v); convErr == nil && secs > 0 {
				after = time.Duration(secs) * time.Second
			}
		}
		return errkind.RateLimitedAfter(fmt.Errorf("analyzer rate limited"), after)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errkind.Newf(errkind.AuthFailure, "analyzer auth failed: %d", resp.StatusCode)
	case resp.StatusCode >= 500:
		return errkind.Newf(errkind.TransientNetwork, "analyzer backend error: %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return errkind.Newf(errkind.InvalidInput, "analyzer rejected request: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return errkind.New(errkind.TransientNetwork, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errkind.New(errkind.UpstreamMalformed, err)
	}
	return nil
}

func trimEvidence(items []models.EvidenceItem) []evidenceForPrompt {
	out := make([]evidenceForPrompt, len(items))
	for i, item := range items {
		out[i] = evidenceForPrompt{
			ID:         item.ID,
			Category:   item.Category,
			Type:       item.Type,
			Title:      item.Title,
			Summary:    item.Summary,
			Score:      item.Score,
			Confidence: item.Confidence,
			URL:        item.Source.URL,
		}
	}
	return out
}
