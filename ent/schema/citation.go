package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Citation holds the schema definition for the Citation entity.
// Each citation binds a claim in a report section to a persisted Evidence row.
type Citation struct {
	ent.Schema
}

// Fields of the Citation.
func (Citation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("citation_id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("section_id").
			Immutable(),
		field.Int("citation_number").
			Comment("Monotonic per report"),
		field.Text("claim"),
		field.String("evidence_id").
			Immutable(),
		field.Text("quote").
			Optional().
			Comment("Supporting excerpt from the evidence summary"),
		field.Text("context").
			Optional().
			Comment("Anchor sentence the citation was attached to"),
		field.Float("confidence").
			Default(0),
		field.Bool("weak_anchor").
			Default(false).
			Comment("No in-text anchor found; citation attached to the section footer"),
	}
}

// Edges of the Citation.
func (Citation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("citations").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.From("section", ReportSection.Type).
			Ref("citations").
			Field("section_id").
			Unique().
			Required().
			Immutable(),
		edge.From("evidence", Evidence.Type).
			Ref("citations").
			Field("evidence_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Citation.
func (Citation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id", "citation_number").
			Unique(),
		index.Fields("section_id"),
		index.Fields("evidence_id"),
	}
}
