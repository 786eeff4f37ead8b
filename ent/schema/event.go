package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity, the persisted
// progress event stream backing NOTIFY delivery and reconnect catchup.
// Rows are transient: cleaned up after a grace window past scan termination.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			Unique().
			Immutable().
			Comment("Serial; doubles as the catchup cursor"),
		field.String("scan_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the event was broadcast on"),
		field.Int64("sequence").
			Comment("Monotonic per scan"),
		field.JSON("payload", map[string]interface{}{}),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("events").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scan_id", "sequence"),
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
