package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvidenceCollection holds the schema definition for the EvidenceCollection
// entity. One per scan; created when the first evidence batch lands and
// closed when the pipeline terminates.
type EvidenceCollection struct {
	ent.Schema
}

// Fields of the EvidenceCollection.
func (EvidenceCollection) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("collection_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Unique().
			Immutable(),
		field.Enum("status").
			Values("open", "closed", "partial").
			Default("open").
			Comment("'partial' when a flush batch was lost after retries"),
		field.Int("evidence_count").
			Default(0),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("closed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the EvidenceCollection.
func (EvidenceCollection) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("evidence_collection").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
		edge.To("items", Evidence.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the EvidenceCollection.
func (EvidenceCollection) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
