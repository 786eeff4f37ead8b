package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StageResult holds the schema definition for the StageResult entity.
// Append-only log, one row per stage per scan, written in canonical stage order.
type StageResult struct {
	ent.Schema
}

// Fields of the StageResult.
func (StageResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("stage_result_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.String("stage_name"),
		field.Int("stage_index").
			Comment("Position in the canonical stage order, 1-based"),
		field.Enum("status").
			Values("success", "partial", "failed", "skipped"),
		field.Int("retries").
			Default(0),
		field.Int("duration_ms").
			Default(0),
		field.Int("evidence_count").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the StageResult.
func (StageResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("stage_results").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the StageResult.
func (StageResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id", "stage_index").
			Unique(),
	}
}
