package evidence

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"

	"github.com/probeworks/diligent/pkg/models"
)

// CollectionStatus mirrors the persisted evidence_collections status enum.
type CollectionStatus string

const (
	CollectionOpen    CollectionStatus = "open"
	CollectionClosed  CollectionStatus = "closed"
	CollectionPartial CollectionStatus = "partial"
)

// Store is the persistence surface the pool flushes to.
type Store interface {
	// EnsureCollection creates the scan's evidence collection if absent.
	EnsureCollection(ctx context.Context, scanID string) error

	// InsertEvidence upserts a batch keyed by (scan_id, fingerprint).
	InsertEvidence(ctx context.Context, scanID string, items []models.EvidenceItem) error

	// CloseCollection records the terminal collection status and count.
	CloseCollection(ctx context.Context, scanID string, status CollectionStatus, count int) error
}

// CategoryQuality summarizes evidence quality for one category.
type CategoryQuality struct {
	Count          int     `json:"count"`
	AverageScore   float64 `json:"average_score"`
	AboveThreshold int     `json:"above_threshold"`
}

// Pool accumulates a scan's evidence: it fingerprints, deduplicates, and
// scores incoming items and flushes them to the Store in batches. The pool
// is the single writer to its scan's evidence collection; the fingerprint
// index is guarded by one mutex.
type Pool struct {
	scanID           string
	store            Store
	batchSize        int
	qualityThreshold float64
	logger           *slog.Logger

	// flush retry knobs, overridable in tests
	retryInitial    time.Duration
	retryMaxElapsed time.Duration

	mu      sync.Mutex
	byFP    map[string]*models.EvidenceItem
	order   []string // fingerprints in first-seen order
	flushed map[string]bool
	partial bool
	ensured bool
}

func NewPool(scanID string, store Store, batchSize int, qualityThreshold float64, logger *slog.Logger) *Pool {
	if batchSize <= 0 {
		batchSize = 50
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		scanID:           scanID,
		store:            store,
		batchSize:        batchSize,
		qualityThreshold: qualityThreshold,
		logger:           logger.With("scan_id", scanID),
		retryInitial:     500 * time.Millisecond,
		retryMaxElapsed:  20 * time.Second,
		byFP:             make(map[string]*models.EvidenceItem),
		flushed:          make(map[string]bool),
	}
}

// Add fingerprints, scores, and deduplicates items into the pool. It
// returns how many items were new and how many merged into existing
// entries.
func (p *Pool) Add(items ...models.EvidenceItem) (added, merged int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range items {
		item := items[i]
		item.ScanID = p.scanID
		item.Fingerprint = Fingerprint(item)
		item.Score = Score(item)
		if item.ID == "" {
			item.ID = uuid.NewString()
		}

		existing, dup := p.byFP[item.Fingerprint]
		if !dup {
			copied := item
			p.byFP[item.Fingerprint] = &copied
			p.order = append(p.order, item.Fingerprint)
			added++
			continue
		}
		mergeInto(existing, item)
		merged++
	}
	return added, merged
}

// mergeInto folds a duplicate into the kept entry: the higher-confidence
// item wins the content fields, source descriptors are merged, and
// processing trails are unioned.
func mergeInto(kept *models.EvidenceItem, dup models.EvidenceItem) {
	if dup.Confidence > kept.Confidence {
		prevID := kept.ID
		prevSource := kept.Source
		prevMerged := kept.MergedSources
		prevTrail := kept.ProcessingTrail

		*kept = dup
		// The first-seen id sticks so already-flushed rows stay addressable.
		kept.ID = prevID
		kept.MergedSources = append(prevMerged, prevSource)
		kept.ProcessingTrail = unionTrails(prevTrail, dup.ProcessingTrail)
	} else {
		kept.MergedSources = append(kept.MergedSources, dup.Source)
		kept.ProcessingTrail = unionTrails(kept.ProcessingTrail, dup.ProcessingTrail)
	}
	if dup.Score > kept.Score {
		kept.Score = dup.Score
	}
}

func unionTrails(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, s := range append(append([]string{}, a...), b...) {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Count returns the number of distinct evidence items in the pool.
func (p *Pool) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.byFP)
}

// Items returns a snapshot ordered by score descending, ties broken by
// first-seen order for determinism.
func (p *Pool) Items() []models.EvidenceItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]models.EvidenceItem, 0, len(p.order))
	for _, fp := range p.order {
		out = append(out, *p.byFP[fp])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// QualitySummary aggregates per-category counts, average score, and how
// many items clear the quality threshold.
func (p *Pool) QualitySummary() map[string]CategoryQuality {
	p.mu.Lock()
	defer p.mu.Unlock()

	sums := make(map[string]float64)
	out := make(map[string]CategoryQuality)
	for _, item := range p.byFP {
		q := out[item.Category]
		q.Count++
		sums[item.Category] += item.Score
		if item.Score >= p.qualityThreshold {
			q.AboveThreshold++
		}
		out[item.Category] = q
	}
	for cat, q := range out {
		q.AverageScore = sums[cat] / float64(q.Count)
		out[cat] = q
	}
	return out
}

// Flush persists all unflushed items in batches. A batch that keeps
// failing after backoff retries marks the collection partial but does not
// abort: remaining batches are still attempted.
func (p *Pool) Flush(ctx context.Context) error {
	if err := p.ensureCollection(ctx); err != nil {
		return err
	}

	for {
		batch := p.nextBatch()
		if len(batch) == 0 {
			return ctx.Err()
		}

		err := p.insertWithRetry(ctx, batch)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Error("Evidence batch persist failed after retries",
				"batch_size", len(batch), "error", err)
			p.mu.Lock()
			p.partial = true
			// Drop the batch from the unflushed set so Flush terminates.
			for _, item := range batch {
				p.flushed[item.Fingerprint] = true
			}
			p.mu.Unlock()
			continue
		}

		p.mu.Lock()
		for _, item := range batch {
			p.flushed[item.Fingerprint] = true
		}
		p.mu.Unlock()
	}
}

// Close flushes the pool and records the collection's terminal status:
// closed, or partial when any batch was lost.
func (p *Pool) Close(ctx context.Context) (CollectionStatus, error) {
	if err := p.Flush(ctx); err != nil {
		return CollectionPartial, err
	}

	p.mu.Lock()
	status := CollectionClosed
	if p.partial {
		status = CollectionPartial
	}
	count := len(p.byFP)
	p.mu.Unlock()

	if err := p.store.CloseCollection(ctx, p.scanID, status, count); err != nil {
		return status, err
	}
	return status, nil
}

func (p *Pool) ensureCollection(ctx context.Context) error {
	p.mu.Lock()
	done := p.ensured
	p.mu.Unlock()
	if done {
		return nil
	}
	if err := p.store.EnsureCollection(ctx, p.scanID); err != nil {
		return err
	}
	p.mu.Lock()
	p.ensured = true
	p.mu.Unlock()
	return nil
}

func (p *Pool) nextBatch() []models.EvidenceItem {
	p.mu.Lock()
	defer p.mu.Unlock()

	batch := make([]models.EvidenceItem, 0, p.batchSize)
	for _, fp := range p.order {
		if p.flushed[fp] {
			continue
		}
		batch = append(batch, *p.byFP[fp])
		if len(batch) == p.batchSize {
			break
		}
	}
	return batch
}

func (p *Pool) insertWithRetry(ctx context.Context, batch []models.EvidenceItem) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.retryInitial
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = p.retryMaxElapsed

	return backoff.Retry(func() error {
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		return p.store.InsertEvidence(ctx, p.scanID, batch)
	}, backoff.WithContext(bo, ctx))
}
