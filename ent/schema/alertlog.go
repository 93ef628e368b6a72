package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AlertLog holds the schema definition for the AlertLog entity.
// One row per digest send through a channel adapter.
type AlertLog struct {
	ent.Schema
}

// Fields of the AlertLog.
func (AlertLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("alert_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Immutable(),
		field.String("integration_id").
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("channel:provider, e.g. EMAIL:SMTP or SLACK:API"),
		field.Enum("status").
			Values("sent", "failed", "skipped").
			Immutable(),
		field.JSON("recipients", []string{}).
			Optional().
			Immutable(),
		field.Int("total_failures").
			Immutable(),
		field.Time("window_start").
			Immutable(),
		field.Time("window_end").
			Immutable(),
		field.String("provider_response").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AlertLog.
func (AlertLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id", "integration_id", "window_end"),
		index.Fields("created_at"),
	}
}
