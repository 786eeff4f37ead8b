package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScanRequest holds the schema definition for the ScanRequest entity.
// Exactly one per scan; status transitions are owned by the orchestrator.
type ScanRequest struct {
	ent.Schema
}

// Fields of the ScanRequest.
func (ScanRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("scan_id").
			Unique().
			Immutable(),
		field.String("company_name").
			Comment("Target company name"),
		field.String("website").
			Comment("Target company website URL"),
		field.String("investor_profile").
			Optional().
			Nillable().
			Comment("Free-form investor profile supplied at intake"),
		field.Enum("analysis_depth").
			Values("shallow", "deep", "exhaustive").
			Default("deep"),
		field.JSON("thesis", map[string]interface{}{}).
			Optional().
			Comment("Investment thesis snapshot (statement, weighted pillars); immutable after scan start"),
		field.Enum("status").
			Values("pending", "in_progress", "cancelling", "awaiting_review", "completed_with_errors", "failed").
			Default("pending"),
		field.String("status_message").
			Optional().
			Nillable().
			Comment("Human-readable reason for the current status"),
		field.String("report_id").
			Optional().
			Nillable().
			Comment("Set once report generation succeeds"),
		field.String("current_stage").
			Optional().
			Nillable(),
		field.Int("completed_stages").
			Default(0),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When the orchestrate worker claimed the scan"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("deadline_at").
			Optional().
			Nillable().
			Comment("Hard scan deadline; the orchestrator fails the scan past this point"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
	}
}

// Edges of the ScanRequest.
func (ScanRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", CollectorJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evidence_collection", EvidenceCollection.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("evidence", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("stage_results", StageResult.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ScanRequest.
func (ScanRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
		index.Fields("status", "last_heartbeat_at"),
		index.Fields("company_name"),
	}
}
