package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report holds the schema definition for the Report entity.
// One per successful scan; immutable once emitted.
type Report struct {
	ent.Schema
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.Text("executive_summary"),
		field.Float("investment_score").
			Comment("[0,100], weighted mean of section scores by pillar weight"),
		field.Text("rationale").
			Optional().
			Comment("Investment rationale from overall synthesis"),
		field.Float("quality_score").
			Default(0).
			Comment("Aggregate evidence quality [0,1]"),
		field.Int("evidence_count").
			Default(0),
		field.Bool("degraded").
			Default(false).
			Comment("True when any section was emitted with a placeholder after analyzer failure"),
		field.JSON("generator", map[string]interface{}{}).
			Optional().
			Comment("Generator metadata: analyzer name/model, durations, evidence selection counts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("reports").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
		edge.To("sections", ReportSection.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("citations", Citation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id"),
	}
}
