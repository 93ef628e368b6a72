package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryAttempt holds the schema definition for the DeliveryAttempt entity.
// One row per physical HTTP try.
type DeliveryAttempt struct {
	ent.Schema
}

// Fields of the DeliveryAttempt.
func (DeliveryAttempt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("attempt_id").
			Unique().
			Immutable(),
		field.String("delivery_log_id").
			Immutable(),
		field.Int("attempt_number").
			Immutable().
			Comment("Strictly increasing per delivery_log_id"),
		field.Enum("status").
			Values("success", "failed").
			Immutable(),
		field.Int("response_status").
			Optional().
			Nillable().
			Immutable(),
		field.Int64("response_time_ms").
			Immutable(),
		field.String("error_message").
			Optional().
			Nillable().
			Immutable(),
		field.String("retry_reason").
			Optional().
			Nillable().
			Immutable(),
		field.JSON("request_payload", map[string]interface{}{}).
			Optional().
			Immutable(),
		field.Time("attempted_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DeliveryAttempt.
func (DeliveryAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("execution_log", ExecutionLog.Type).
			Ref("delivery_attempts").
			Field("delivery_log_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DeliveryAttempt.
func (DeliveryAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("delivery_log_id", "attempt_number").
			Unique(),
		// Retention sweep (90 days)
		index.Fields("attempted_at"),
	}
}
