package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CollectorJob holds the schema definition for the CollectorJob entity.
// One row per unit of queued work; the queue subsystem owns all mutations
// after creation (claim, visibility extension, ack/nack, dead-letter).
type CollectorJob struct {
	ent.Schema
}

// Fields of the CollectorJob.
func (CollectorJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("scan_id").
			Immutable(),
		field.String("queue").
			Comment("Named queue / job kind (e.g. 'web-scrape', 'tls-scan', 'orchestrate')"),
		field.String("collector_name").
			Optional().
			Comment("Target collector; empty for orchestrate/synthesize jobs"),
		field.JSON("payload", map[string]interface{}{}).
			Optional(),
		field.Int("priority").
			Default(5).
			Comment("0-9, higher first; FIFO tie-break by enqueue time"),
		field.Int("attempt").
			Default(0).
			Comment("Delivery attempts so far"),
		field.Int("max_attempts").
			Default(3),
		field.Enum("status").
			Values("pending", "running", "succeeded", "failed", "dead_lettered").
			Default("pending"),
		field.String("dedup_key").
			Optional().
			Nillable().
			Comment("Advisory only; duplicates are absorbed by evidence fingerprinting"),
		field.Time("scheduled_at").
			Default(time.Now).
			Comment("Earliest claim time; pushed forward by retry backoff"),
		field.Time("visibility_deadline").
			Optional().
			Nillable().
			Comment("While running, the claim expires past this point and the job is re-enqueued"),
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("worker id that holds the claim"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the CollectorJob.
func (CollectorJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("scan", ScanRequest.Type).
			Ref("jobs").
			Field("scan_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CollectorJob.
func (CollectorJob) Indexes() []ent.Index {
	return []ent.Index{
		// Claim query: pending jobs per queue ordered by priority then enqueue time.
		index.Fields("queue", "status", "priority", "scheduled_at"),
		index.Fields("scan_id", "status"),
		// Orphan scan over running jobs with lapsed visibility.
		index.Fields("status", "visibility_deadline"),
	}
}
