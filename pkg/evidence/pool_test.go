package evidence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probeworks/diligent/pkg/models"
)

func webItem(url, summary string, confidence float64) models.EvidenceItem {
	return models.EvidenceItem{
		Category:   models.CategoryGeneral,
		Type:       models.TypeWebpage,
		Summary:    summary,
		Confidence: confidence,
		Source: models.SourceDescriptor{
			Kind:        "web-crawl",
			URL:         url,
			Tool:        "web-crawler",
			CollectedAt: time.Now(),
		},
	}
}

func TestFingerprintStability(t *testing.T) {
	a := webItem("https://acme.test/about", "Acme builds robots.", 0.7)
	b := webItem("https://acme.test/about", "Acme builds robots.", 0.3)
	assert.Equal(t, Fingerprint(a), Fingerprint(b), "confidence must not affect the fingerprint")

	// Normalization: case and whitespace differences collapse.
	c := webItem("HTTPS://ACME.TEST/ABOUT", "  Acme   builds robots. ", 0.7)
	assert.Equal(t, Fingerprint(a), Fingerprint(c))

	d := webItem("https://acme.test/team", "Acme builds robots.", 0.7)
	assert.NotEqual(t, Fingerprint(a), Fingerprint(d))

	// Summary differences beyond the fingerprint prefix are ignored.
	long := make([]byte, summaryPrefixLen)
	for i := range long {
		long[i] = 'x'
	}
	e := webItem("https://acme.test/about", string(long)+" tail one", 0.7)
	f := webItem("https://acme.test/about", string(long)+" tail two", 0.7)
	assert.Equal(t, Fingerprint(e), Fingerprint(f))
}

func TestFingerprintUsesQueryWhenNoURL(t *testing.T) {
	a := models.EvidenceItem{
		Type:    models.TypeSearchResult,
		Summary: "snippet",
		Source:  models.SourceDescriptor{Kind: "search", Query: "acme funding"},
	}
	b := a
	b.Source.Query = "acme revenue"
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestScoreBoostsAndClamp(t *testing.T) {
	base := webItem("https://acme.test", "page", 0.6)
	assert.InDelta(t, 0.6, Score(base), 1e-9)

	tech := base
	tech.Type = models.TypeTechStack
	assert.InDelta(t, 0.9, Score(tech), 1e-9)

	search := base
	search.Type = models.TypeSearchResult
	search.Source.Kind = "search"
	assert.InDelta(t, 0.48, Score(search), 1e-9)

	// High-value type at high confidence clamps to 1.
	hot := base
	hot.Type = models.TypeFinancialMetric
	hot.Confidence = 0.9
	assert.Equal(t, 1.0, Score(hot))
}

func TestPoolDeduplicationKeepsHighestConfidence(t *testing.T) {
	p := NewPool("scan-1", nil, 50, 0.7, nil)

	low := webItem("https://acme.test/about", "Acme builds robots.", 0.5)
	low.ProcessingTrail = []string{"crawl"}
	high := webItem("https://acme.test/about", "Acme builds robots.", 0.9)
	high.Source.Tool = "deep-crawler"
	high.ProcessingTrail = []string{"deep-crawl"}

	added, merged := p.Add(low, high)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, merged)
	require.Equal(t, 1, p.Count())

	item := p.Items()[0]
	assert.InDelta(t, 0.9, item.Confidence, 1e-9)
	assert.Equal(t, "deep-crawler", item.Source.Tool)
	// The losing source descriptor is preserved.
	require.Len(t, item.MergedSources, 1)
	assert.Equal(t, "web-crawler", item.MergedSources[0].Tool)
	// Trails are unioned.
	assert.ElementsMatch(t, []string{"crawl", "deep-crawl"}, item.ProcessingTrail)
}

func TestPoolDuplicateLowerConfidenceMergesSources(t *testing.T) {
	p := NewPool("scan-1", nil, 50, 0.7, nil)

	first := webItem("https://acme.test", "Acme builds robots.", 0.8)
	dup := webItem("https://acme.test", "Acme builds robots.", 0.4)
	dup.Source.Tool = "web-search"

	p.Add(first)
	p.Add(dup)

	item := p.Items()[0]
	assert.InDelta(t, 0.8, item.Confidence, 1e-9)
	require.Len(t, item.MergedSources, 1)
	assert.Equal(t, "web-search", item.MergedSources[0].Tool)
}

func TestPoolQualitySummary(t *testing.T) {
	p := NewPool("scan-1", nil, 50, 0.7, nil)

	tech := webItem("https://acme.test/a", "stack", 0.6)
	tech.Category = models.CategoryTechnology
	tech.Type = models.TypeTechStack // scores 0.9
	weak := webItem("https://acme.test/b", "page", 0.4)
	weak.Category = models.CategoryTechnology // scores 0.4
	market := webItem("https://acme.test/c", "market", 0.5)
	market.Category = models.CategoryMarket

	p.Add(tech, weak, market)

	q := p.QualitySummary()
	techQ := q[models.CategoryTechnology]
	assert.Equal(t, 2, techQ.Count)
	assert.InDelta(t, 0.65, techQ.AverageScore, 1e-9)
	assert.Equal(t, 1, techQ.AboveThreshold)
	assert.Equal(t, 1, q[models.CategoryMarket].Count)
}

// recordingStore captures flush calls and can fail a set number of times.
type recordingStore struct {
	failures  int
	ensured   int
	batches   [][]models.EvidenceItem
	closed    []CollectionStatus
	lastCount int
}

func (r *recordingStore) EnsureCollection(ctx context.Context, scanID string) error {
	r.ensured++
	return nil
}

func (r *recordingStore) InsertEvidence(ctx context.Context, scanID string, items []models.EvidenceItem) error {
	if r.failures > 0 {
		r.failures--
		return errors.New("db down")
	}
	r.batches = append(r.batches, items)
	return nil
}

func (r *recordingStore) CloseCollection(ctx context.Context, scanID string, status CollectionStatus, count int) error {
	r.closed = append(r.closed, status)
	r.lastCount = count
	return nil
}

func TestPoolFlushBatching(t *testing.T) {
	store := &recordingStore{}
	p := NewPool("scan-1", store, 2, 0.7, nil)

	for i := 0; i < 5; i++ {
		p.Add(webItem("https://acme.test/"+string(rune('a'+i)), "page", 0.5))
	}
	require.NoError(t, p.Flush(context.Background()))

	require.Len(t, store.batches, 3) // 2 + 2 + 1
	assert.Len(t, store.batches[0], 2)
	assert.Len(t, store.batches[2], 1)
	assert.Equal(t, 1, store.ensured)

	// A second flush with nothing new writes nothing.
	require.NoError(t, p.Flush(context.Background()))
	assert.Len(t, store.batches, 3)
}

func TestPoolCloseMarksPartialOnPersistentFailure(t *testing.T) {
	store := &recordingStore{failures: 1000}
	p := NewPool("scan-1", store, 2, 0.7, nil)
	p.retryInitial = time.Millisecond
	p.retryMaxElapsed = 10 * time.Millisecond
	p.Add(webItem("https://acme.test", "page", 0.5))

	status, err := p.Close(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CollectionPartial, status)
	require.Len(t, store.closed, 1)
	assert.Equal(t, CollectionPartial, store.closed[0])
}

func TestPoolCloseHappyPath(t *testing.T) {
	store := &recordingStore{}
	p := NewPool("scan-1", store, 50, 0.7, nil)
	p.Add(webItem("https://acme.test", "page", 0.5))
	p.Add(webItem("https://acme.test/b", "other", 0.5))

	status, err := p.Close(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CollectionClosed, status)
	assert.Equal(t, 2, store.lastCount)
}
