package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledEntry holds the schema definition for the ScheduledEntry entity.
// One row per pending dispatch of a DELAYED or RECURRING integration.
type ScheduledEntry struct {
	ent.Schema
}

// Fields of the ScheduledEntry.
func (ScheduledEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("schedule_id").
			Unique().
			Immutable(),
		field.String("integration_id").
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("original_event_id").
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.Time("scheduled_for"),
		field.Enum("status").
			Values("pending", "processing", "sent", "failed", "cancelled", "overdue").
			Default("pending"),
		field.JSON("payload", map[string]interface{}{}),
		field.String("target_url"),
		field.String("http_method").
			Default("POST"),
		field.Int("attempt_count").
			Default(0),
		field.JSON("recurring", map[string]interface{}{}).
			Optional().
			Comment("first_occurrence, interval_ms, max_occurrences|end_date, occurrence"),
		field.JSON("cancellation", map[string]interface{}{}).
			Optional().
			Comment("Who/when/why a pending entry was cancelled"),
		field.String("leased_by").
			Optional().
			Nillable().
			Comment("Worker holding the dispatch lease"),
		field.Time("leased_until").
			Optional().
			Nillable(),
		field.Time("next_attempt_at").
			Optional().
			Nillable().
			Comment("Backoff target after a retryable dispatch failure"),
		field.String("last_error").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ScheduledEntry.
func (ScheduledEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Due scan
		index.Fields("status", "scheduled_for"),
		index.Fields("org_id", "status", "created_at"),
		index.Fields("integration_id", "status"),
		index.Fields("original_event_id"),
	}
}
