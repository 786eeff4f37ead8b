package evidence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/probeworks/diligent/ent"
	entevidence "github.com/probeworks/diligent/ent/evidence"
	"github.com/probeworks/diligent/ent/evidencecollection"
	"github.com/probeworks/diligent/pkg/models"
)

// EntStore persists evidence through the ent client. Inserts are keyed by
// (scan_id, fingerprint); conflicting rows are left untouched so re-flushes
// are idempotent.
type EntStore struct {
	client *ent.Client
}

func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) EnsureCollection(ctx context.Context, scanID string) error {
	err := s.client.EvidenceCollection.Create().
		SetID(uuid.NewString()).
		SetScanID(scanID).
		SetStatus(evidencecollection.StatusOpen).
		OnConflictColumns(evidencecollection.FieldScanID).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("ensuring evidence collection: %w", err)
	}
	return nil
}

func (s *EntStore) InsertEvidence(ctx context.Context, scanID string, items []models.EvidenceItem) error {
	if len(items) == 0 {
		return nil
	}

	coll, err := s.client.EvidenceCollection.Query().
		Where(evidencecollection.ScanIDEQ(scanID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("loading evidence collection: %w", err)
	}

	builders := make([]*ent.EvidenceCreate, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.NewString()
		}
		builders[i] = s.client.Evidence.Create().
			SetID(id).
			SetScanID(scanID).
			SetCollectionID(coll.ID).
			SetCategory(item.Category).
			SetEvidenceType(item.Type).
			SetTitle(item.Title).
			SetRaw(item.Raw).
			SetSummary(item.Summary).
			SetSource(sourceToMap(item.Source)).
			SetMergedSources(sourcesToMaps(item.MergedSources)).
			SetConfidence(item.Confidence).
			SetRelevance(item.Relevance).
			SetScore(item.Score).
			SetTokens(item.Tokens).
			SetFallback(item.Fallback).
			SetProcessingTrail(item.ProcessingTrail).
			SetMetadata(item.Metadata).
			SetEmbedding(item.Embedding).
			SetFingerprint(item.Fingerprint)
	}

	err = s.client.Evidence.CreateBulk(builders...).
		OnConflictColumns(entevidence.FieldScanID, entevidence.FieldFingerprint).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("inserting evidence batch: %w", err)
	}

	return s.client.EvidenceCollection.UpdateOneID(coll.ID).
		SetEvidenceCount(countFor(ctx, s.client, scanID)).
		Exec(ctx)
}

func (s *EntStore) CloseCollection(ctx context.Context, scanID string, status CollectionStatus, count int) error {
	entStatus := evidencecollection.StatusClosed
	if status == CollectionPartial {
		entStatus = evidencecollection.StatusPartial
	}
	n, err := s.client.EvidenceCollection.Update().
		Where(evidencecollection.ScanIDEQ(scanID)).
		SetStatus(entStatus).
		SetEvidenceCount(count).
		SetClosedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("closing evidence collection: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no evidence collection for scan %s", scanID)
	}
	return nil
}

// PersistedItems loads a scan's persisted evidence ordered by score
// descending, ties broken by id. The synthesizer binds citations against
// exactly this set.
func (s *EntStore) PersistedItems(ctx context.Context, scanID string) ([]models.EvidenceItem, error) {
	rows, err := s.client.Evidence.Query().
		Where(entevidence.ScanIDEQ(scanID)).
		Order(ent.Desc(entevidence.FieldScore), ent.Asc(entevidence.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading persisted evidence: %w", err)
	}

	items := make([]models.EvidenceItem, len(rows))
	for i, row := range rows {
		items[i] = models.EvidenceItem{
			ID:              row.ID,
			ScanID:          row.ScanID,
			Category:        row.Category,
			Type:            row.EvidenceType,
			Title:           row.Title,
			Raw:             row.Raw,
			Summary:         row.Summary,
			Source:          mapToSource(row.Source),
			MergedSources:   mapsToSources(row.MergedSources),
			Confidence:      row.Confidence,
			Relevance:       row.Relevance,
			Score:           row.Score,
			Tokens:          row.Tokens,
			Fallback:        row.Fallback,
			ProcessingTrail: row.ProcessingTrail,
			Metadata:        row.Metadata,
			Embedding:       row.Embedding,
			Fingerprint:     row.Fingerprint,
		}
	}
	return items, nil
}

func countFor(ctx context.Context, client *ent.Client, scanID string) int {
	n, err := client.Evidence.Query().
		Where(entevidence.ScanIDEQ(scanID)).
		Count(ctx)
	if err != nil {
		return 0
	}
	return n
}

func sourceToMap(s models.SourceDescriptor) map[string]any {
	m := map[string]any{
		"kind":         s.Kind,
		"collected_at": s.CollectedAt.Format(time.RFC3339Nano),
	}
	if s.URL != "" {
		m["url"] = s.URL
	}
	if s.Query != "" {
		m["query"] = s.Query
	}
	if s.Tool != "" {
		m["tool"] = s.Tool
	}
	return m
}

func sourcesToMaps(in []models.SourceDescriptor) []map[string]any {
	if len(in) == 0 {
		return nil
	}
	out := make([]map[string]any, len(in))
	for i, s := range in {
		out[i] = sourceToMap(s)
	}
	return out
}

func mapToSource(m map[string]any) models.SourceDescriptor {
	var s models.SourceDescriptor
	if v, ok := m["kind"].(string); ok {
		s.Kind = v
	}
	if v, ok := m["url"].(string); ok {
		s.URL = v
	}
	if v, ok := m["query"].(string); ok {
		s.Query = v
	}
	if v, ok := m["tool"].(string); ok {
		s.Tool = v
	}
	if v, ok := m["collected_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			s.CollectedAt = t
		}
	}
	return s
}

func mapsToSources(in []map[string]any) []models.SourceDescriptor {
	if len(in) == 0 {
		return nil
	}
	out := make([]models.SourceDescriptor, len(in))
	for i, m := range in {
		out[i] = mapToSource(m)
	}
	return out
}
