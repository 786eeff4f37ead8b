package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

func TestTechDetectorCollect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", "nginx/1.25.3")
		w.Header().Set("CF-Ray", "abc123")
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head>
			<meta name="generator" content="Hugo 0.120">
			<script src="/static/react.production.min.js"></script>
			<script src="https://js.stripe.com/v3/"></script>
		</head><body></body></html>`))
	}))
	defer srv.Close()

	d := NewTechDetector(srv.Client())
	items, ok, err := d.Collect(context.Background(), Input{
		ScanID:  "scan-1",
		Company: models.Company{Name: "Acme", Website: srv.URL},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	names := make(map[string]models.EvidenceItem, len(items))
	for _, it := range items {
		names[it.Title] = it
		assert.Equal(t, models.CategoryTechnology, it.Category)
		assert.Equal(t, models.TypeTechStack, it.Type)
	}
	assert.Contains(t, names, "nginx")
	assert.Contains(t, names, "Cloudflare")
	assert.Contains(t, names, "Hugo")
	assert.Contains(t, names, "React")
	assert.Contains(t, names, "Stripe")

	// Header-derived signals carry higher confidence than markup signals.
	assert.Greater(t, names["nginx"].Confidence, names["React"].Confidence)
}

func TestTechDetectorServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	d := NewTechDetector(srv.Client())
	_, _, err := d.Collect(context.Background(), Input{
		Company: models.Company{Website: srv.URL},
	})
	require.Error(t, err)
	assert.Equal(t, errkind.TransientNetwork, errkind.Of(err))
}

func TestDedupeSignalsPrefersHeaderOrigin(t *testing.T) {
	out := dedupeSignals([]techSignal{
		{Name: "React", Origin: "script"},
		{Name: "nginx", Origin: "header"},
		{Name: "React", Origin: "header"},
	})
	require.Len(t, out, 2)
	assert.Equal(t, "React", out[0].Name)
	assert.Equal(t, "header", out[0].Origin)
	assert.Equal(t, "nginx", out[1].Name)
}

func TestFirstToken(t *testing.T) {
	assert.Equal(t, "nginx", firstToken("nginx/1.25.3"))
	assert.Equal(t, "Hugo", firstToken("Hugo 0.120"))
	assert.Equal(t, "cloudflare", firstToken("cloudflare"))
}

func TestSecurityHeadersCollect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Strict-Transport-Security", "max-age=63072000")
		w.Header().Set("X-Content-Type-Options", "nosniff")
	}))
	defer srv.Close()

	c := NewSecurityHeadersCollector(srv.Client())
	items, ok, err := c.Collect(context.Background(), Input{
		ScanID:  "scan-1",
		Company: models.Company{Website: srv.URL},
	})
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, items, 1)

	it := items[0]
	assert.Equal(t, models.CategorySecurity, it.Category)
	assert.Contains(t, it.Summary, "2 of 6 present")
	assert.ElementsMatch(t, []string{"Strict-Transport-Security", "X-Content-Type-Options"}, it.Metadata["present"])
}
