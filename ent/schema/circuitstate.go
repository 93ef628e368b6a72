package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CircuitState holds the schema definition for the CircuitState entity.
// Snapshot of the in-process breaker registry, rebuilt lazily on boot.
type CircuitState struct {
	ent.Schema
}

// Fields of the CircuitState.
func (CircuitState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("circuit_id").
			Unique().
			Immutable(),
		field.String("integration_id").
			Unique(),
		field.Int("consecutive_failures").
			Default(0),
		field.Enum("state").
			Values("closed", "open", "half_open").
			Default("closed"),
		field.Time("opened_at").
			Optional().
			Nillable(),
		field.Time("next_probe_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CircuitState.
func (CircuitState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
	}
}
