package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProcessedEvent holds the schema definition for the ProcessedEvent entity.
// Short-lived dedup table for events without a source row ID; rows expire
// after 6 hours.
type ProcessedEvent struct {
	ent.Schema
}

// Fields of the ProcessedEvent.
func (ProcessedEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("processed_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("event_key").
			Immutable(),
		field.Time("bucket").
			Immutable().
			Comment("Minute-truncated receipt time"),
		field.String("event_id").
			Immutable().
			Comment("The EventAudit row that won the insert race"),
		field.Time("expires_at").
			Immutable(),
	}
}

// Indexes of the ProcessedEvent.
func (ProcessedEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "event_key", "bucket").
			Unique(),
		index.Fields("expires_at"),
	}
}
