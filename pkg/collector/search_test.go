package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/errkind"
	"github.com/probeworks/diligent/pkg/models"
)

// scriptedSearch returns canned hits or errors per query.
type scriptedSearch struct {
	results map[string][]SearchResult
	errs    map[string]error
}

func (s *scriptedSearch) Search(_ context.Context, query string, _ int) ([]SearchResult, error) {
	if err, ok := s.errs[query]; ok {
		return nil, err
	}
	return s.results[query], nil
}

func searchInput(queries ...string) Input {
	return Input{
		ScanID:  "scan-1",
		Company: models.Company{Name: "Acme"},
		Options: map[string]any{
			"category": models.CategoryMarket,
			"queries":  queries,
		},
	}
}

func TestSearchCollectorPartialQueryFailure(t *testing.T) {
	c := NewSearchCollector(&scriptedSearch{
		results: map[string][]SearchResult{
			"good": {{Title: "Acme raises round", URL: "https://news.test/a", Snippet: "Acme raised."}},
		},
		errs: map[string]error{
			"bad": errkind.Newf(errkind.TransientNetwork, "search backend unavailable"),
		},
	})

	items, ok, err := c.Collect(context.Background(), searchInput("good", "bad"))
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, models.CategoryMarket, items[0].Category)
	assert.Equal(t, "https://news.test/a", items[0].Source.URL)
}

func TestSearchCollectorAllQueriesFailSurfacesFirstError(t *testing.T) {
	first := errkind.Newf(errkind.TransientNetwork, "search backend unavailable")
	c := NewSearchCollector(&scriptedSearch{
		errs: map[string]error{
			"q1": first,
			"q2": errkind.Newf(errkind.AuthFailure, "bad key"),
		},
	})

	items, ok, err := c.Collect(context.Background(), searchInput("q1", "q2"))
	assert.Empty(t, items)
	assert.False(t, ok)
	assert.ErrorIs(t, err, first)
}

func TestSearchCollectorNoHitsIsMalformed(t *testing.T) {
	c := NewSearchCollector(&scriptedSearch{})

	items, ok, err := c.Collect(context.Background(), searchInput("empty"))
	assert.Empty(t, items)
	assert.False(t, ok)
	assert.Equal(t, errkind.UpstreamMalformed, errkind.Of(err))
}
