package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DLQEntry holds the schema definition for the DLQEntry entity.
// Durable parking lot for failed deliveries awaiting retry or manual replay.
type DLQEntry struct {
	ent.Schema
}

// Fields of the DLQEntry.
func (DLQEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("dlq_id").
			Unique().
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("message_id").
			Immutable(),
		field.String("integration_id").
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.Enum("direction").
			Values("outbound", "inbound", "scheduled").
			Immutable(),
		field.Int("action_index").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("payload", map[string]interface{}{}).
			Comment("Transformed request body; replay reconstructs the request from this"),
		field.String("error_message"),
		field.String("error_code").
			Comment("Error kind at parking time (NETWORK_ERROR, HTTP_TRANSIENT_ERROR, ...)"),
		field.Int("status_code").
			Optional().
			Nillable(),
		field.Int("max_retries"),
		field.String("retry_strategy").
			Default("exponential"),
		field.Time("next_attempt_at").
			Optional().
			Nillable(),
		field.Int("attempts").
			Default(0),
		field.Enum("status").
			Values("queued", "retrying", "abandoned", "replayed").
			Default("queued"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the DLQEntry.
func (DLQEntry) Indexes() []ent.Index {
	return []ent.Index{
		// Retry scan
		index.Fields("status", "next_attempt_at"),
		index.Fields("org_id", "status", "created_at"),
		index.Fields("trace_id"),
		index.Fields("integration_id"),
	}
}
