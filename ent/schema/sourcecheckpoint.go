package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SourceCheckpoint holds the schema definition for the SourceCheckpoint entity.
// Tracks the high-water mark of each (source, org) poll stream.
type SourceCheckpoint struct {
	ent.Schema
}

// Fields of the SourceCheckpoint.
func (SourceCheckpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("checkpoint_id").
			Unique().
			Immutable(),
		field.String("source").
			Immutable(),
		field.String("source_identifier").
			Immutable().
			Comment("Table/collection/URL the rows were read from"),
		field.String("org_id").
			Immutable(),
		field.Int64("last_processed_id").
			Default(0).
			Comment("Non-decreasing; rows at or below are never re-read"),
		field.Time("last_processed_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SourceCheckpoint.
func (SourceCheckpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source", "source_identifier", "org_id").
			Unique(),
	}
}
