package collector

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// securityHeaders lists the response headers checked by the scanner, in
// report order.
var securityHeaders = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Frame-Options",
	"X-Content-Type-Options",
	"Referrer-Policy",
	"Permissions-Policy",
}

// SecurityHeadersCollector grades the HTTP security header posture of the
// company website.
type SecurityHeadersCollector struct {
	client *http.Client
}

func NewSecurityHeadersCollector(client *http.Client) *SecurityHeadersCollector {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &SecurityHeadersCollector{client: client}
}

func (s *SecurityHeadersCollector) Name() string                    { return "security-headers" }
func (s *SecurityHeadersCollector) Capabilities() []Capability      { return []Capability{CapSecurity} }
func (s *SecurityHeadersCollector) Cost() float64                   { return 0.2 }
func (s *SecurityHeadersCollector) SuggestedTimeout() time.Duration { return 20 * time.Second }
func (s *SecurityHeadersCollector) MaxConcurrency() int             { return 8 }

func (s *SecurityHeadersCollector) Collect(ctx context.Context, in Input) ([]models.EvidenceItem, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in.Company.Website, nil)
	if err != nil {
		return nil, false, errkind.Newf(errkind.InvalidInput, "invalid website %q", in.Company.Website)
	}
	req.Header.Set("User-Agent", "diligent-scanner/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, false, err
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return nil, false, errkind.Newf(errkind.TransientNetwork, "homepage returned %d", resp.StatusCode)
	}

	var present, missing []string
	for _, h := range securityHeaders {
		if resp.Header.Get(h) != "" {
			present = append(present, h)
		} else {
			missing = append(missing, h)
		}
	}

	grade := float64(len(present)) / float64(len(securityHeaders))
	summary := fmt.Sprintf(
		"Security headers on %s: %d of %d present. Present: %s. Missing: %s.",
		in.Company.Website, len(present), len(securityHeaders),
		orNone(present), orNone(missing),
	)

	item := models.EvidenceItem{
		ScanID:   in.ScanID,
		Category: models.CategorySecurity,
		Type:     models.TypeSecurity,
		Title:    fmt.Sprintf("Security header posture (%d/%d)", len(present), len(securityHeaders)),
		Summary:  summary,
		Source: models.SourceDescriptor{
			Kind:        "header-scan",
			URL:         in.Company.Website,
			Tool:        s.Name(),
			CollectedAt: time.Now().UTC(),
		},
		Confidence: 0.9,
		Relevance:  0.7,
		Metadata: map[string]any{
			"present": present,
			"missing": missing,
			"grade":   grade,
		},
		ProcessingTrail: []string{"fetch", "header-audit"},
	}
	return []models.EvidenceItem{item}, true, nil
}

func orNone(hs []string) string {
	if len(hs) == 0 {
		return "none"
	}
	return strings.Join(hs, ", ")
}
