package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EventAudit holds the schema definition for the EventAudit entity.
// One row per ingested event; the unique indexes are the dedup guarantee.
type EventAudit struct {
	ent.Schema
}

// Fields of the EventAudit.
func (EventAudit) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("source").
			Immutable().
			Comment("Source config ID the event was pulled from"),
		field.String("source_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Upstream row identifier when the source provides one"),
		field.String("org_id").
			Immutable(),
		field.String("org_unit_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("event_type").
			Immutable(),
		field.JSON("payload", map[string]interface{}{}),
		field.String("payload_hash").
			Immutable().
			Comment("SHA-256 of the canonical payload"),
		field.String("event_key").
			Optional().
			Nillable().
			Immutable().
			Comment("Fallback dedup key when source_id is absent"),
		field.Time("received_at_bucket").
			Optional().
			Nillable().
			Immutable().
			Comment("Minute-truncated receipt time for fallback dedup"),
		field.Enum("status").
			Values("received", "processing", "delivered", "skipped", "failed", "stuck").
			Default("received"),
		field.JSON("timeline", []map[string]interface{}{}).
			Optional().
			Comment("Append-only lifecycle entries {ts, stage, details}"),
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("expires_at").
			Comment("Retention boundary; swept by the janitor"),
	}
}

// Indexes of the EventAudit.
func (EventAudit) Indexes() []ent.Index {
	return []ent.Index{
		// Primary dedup key. NULL source_id rows fall through to the
		// fallback key below (Postgres treats NULLs as distinct).
		index.Fields("source", "source_id").
			Unique().
			Annotations(entsql.IndexWhere("source_id IS NOT NULL")),
		// Fallback dedup key.
		index.Fields("org_id", "event_key", "received_at_bucket").
			Unique().
			Annotations(entsql.IndexWhere("event_key IS NOT NULL")),
		index.Fields("org_id", "status", "received_at"),
		index.Fields("status", "updated_at"),
		index.Fields("expires_at"),
	}
}
