package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Evidence holds the schema definition for the Evidence entity.
// Immutable once persisted; deduplicated by (scan_id, fingerprint).
type Evidence struct {
	ent.Schema
}

// Annotations of the Evidence.
func (Evidence) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "evidence"},
	}
}

// Fields of the Evidence.
func (Evidence) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("evidence_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.String("collection_id").
			Immutable(),
		field.String("category").
			Comment("Pillar/category tag (technology, market, financial, team, security, general)"),
		field.String("evidence_type").
			Comment("Fine-grained type (tech-stack, financial-metric, webpage, tls-config, ...)"),
		field.String("title").
			Optional(),
		field.Text("raw").
			Optional().
			Comment("Raw collected content (bounded; large payloads are summarized before persistence)"),
		field.Text("summary").
			Comment("Processed summary used for scoring, fingerprinting, and synthesis"),
		field.JSON("source", map[string]interface{}{}).
			Comment("Primary source descriptor: kind, url/query/tool, collected_at"),
		field.JSON("merged_sources", []map[string]interface{}{}).
			Optional().
			Comment("Source descriptors absorbed from deduplicated duplicates"),
		field.Float("confidence").
			Comment("[0,1]"),
		field.Float("relevance").
			Comment("[0,1]"),
		field.Float("score").
			Comment("base_confidence * type_boost * source_boost, clamped to [0,1]"),
		field.Int("tokens").
			Default(0),
		field.Bool("fallback").
			Default(false).
			Comment("True when produced by the heuristic fallback collector"),
		field.JSON("processing_trail", []string{}).
			Optional().
			Comment("Union of processing steps across merged duplicates"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.JSON("embedding", []float64{}).
			Optional(),
		field.String("fingerprint").
			Comment("hash(normalized type ‖ url|query ‖ summary prefix)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Evidence.
func (Evidence) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("evidence").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
		edge.From("collection", EvidenceCollection.Type).
			Ref("items").
			Field("collection_id").
			Unique().
			Required().
			Immutable(),
		edge.To("citations", Citation.Type),
	}
}

// Indexes of the Evidence.
func (Evidence) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id", "fingerprint").
			Unique(),
		index.Fields("scan_id", "category"),
		index.Fields("collection_id"),
	}
}
