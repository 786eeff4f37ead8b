package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReportSection holds the schema definition for the ReportSection entity.
type ReportSection struct {
	ent.Schema
}

// Fields of the ReportSection.
func (ReportSection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("section_id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("pillar_id").
			Comment("Thesis pillar this section answers"),
		field.String("title"),
		field.Text("content").
			Comment("Markdown, with citation links injected"),
		field.Float("score").
			Comment("[0,100], analyzer's confidence-weighted aggregate"),
		field.JSON("key_findings", []map[string]interface{}{}).
			Optional().
			Comment("Findings: claim, supporting evidence ids, confidence"),
		field.JSON("risks", []string{}).
			Optional(),
		field.JSON("opportunities", []string{}).
			Optional(),
		field.JSON("recommendations", []string{}).
			Optional(),
		field.Bool("degraded").
			Default(false).
			Comment("Placeholder section emitted after analyzer failure"),
		field.Int("order_index").
			Comment("Render order within the report"),
	}
}

// Edges of the ReportSection.
func (ReportSection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("sections").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.To("citations", Citation.Type),
	}
}

// Indexes of the ReportSection.
func (ReportSection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "order_index").
			Unique(),
	}
}
