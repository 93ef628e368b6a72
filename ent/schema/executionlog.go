package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for the ExecutionLog entity.
// One row per (event, integration) or (event, integration, action) execution,
// identified by its trace ID.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("trace_id").
			Unique().
			Immutable(),
		field.String("parent_trace_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Set on manual replays; links back to the original trace"),
		field.Enum("direction").
			Values("outbound", "inbound", "scheduled").
			Immutable(),
		field.Enum("trigger_type").
			Values("event", "schedule", "replay", "proxy").
			Immutable(),
		field.String("integration_id").
			Immutable(),
		field.String("integration_name").
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("event_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("message_id").
			Optional().
			Nillable().
			Immutable(),
		field.Int("action_index").
			Optional().
			Nillable().
			Immutable().
			Comment("Position within a multi-action integration; nil for single-action"),
		field.JSON("request", map[string]interface{}{}).
			Optional().
			Comment("URL/method/headers/body snapshot (secrets redacted)"),
		field.JSON("steps", []map[string]interface{}{}).
			Optional().
			Comment("Step entries {name, ts, duration_ms, status, metadata}"),
		field.JSON("response", map[string]interface{}{}).
			Optional().
			Comment("Status/headers(truncated)/body(size-capped)"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_kind").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "success", "failed", "skipped").
			Default("pending"),
		field.String("skip_reason").
			Optional().
			Nillable().
			Comment("circuit_open, condition_false, ..."),
		field.Int("attempts").
			Default(0),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
		field.Int64("duration_ms").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionLog.
func (ExecutionLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("delivery_attempts", DeliveryAttempt.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "status", "started_at"),
		index.Fields("integration_id", "started_at"),
		index.Fields("event_id"),
		index.Fields("started_at"),
	}
}
