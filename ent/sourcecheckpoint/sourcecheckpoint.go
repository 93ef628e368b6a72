// Code generated by ent, DO NOT EDIT.

package sourcecheckpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sourcecheckpoint type in the database.
	Label = "source_checkpoint"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "checkpoint_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceIdentifier holds the string denoting the source_identifier field in the database.
	FieldSourceIdentifier = "source_identifier"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldLastProcessedID holds the string denoting the last_processed_id field in the database.
	FieldLastProcessedID = "last_processed_id"
	// FieldLastProcessedAt holds the string denoting the last_processed_at field in the database.
	FieldLastProcessedAt = "last_processed_at"
	// Table holds the table name of the sourcecheckpoint in the database.
	Table = "source_checkpoints"
)

// Columns holds all SQL columns for sourcecheckpoint fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldSourceIdentifier,
	FieldOrgID,
	FieldLastProcessedID,
	FieldLastProcessedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultLastProcessedID holds the default value on creation for the "last_processed_id" field.
	DefaultLastProcessedID int64
	// DefaultLastProcessedAt holds the default value on creation for the "last_processed_at" field.
	DefaultLastProcessedAt func() time.Time
	// UpdateDefaultLastProcessedAt holds the default value on update for the "last_processed_at" field.
	UpdateDefaultLastProcessedAt func() time.Time
)

// OrderOption defines the ordering options for the SourceCheckpoint queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceIdentifier orders the results by the source_identifier field.
func BySourceIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceIdentifier, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByLastProcessedID orders the results by the last_processed_id field.
func ByLastProcessedID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedID, opts...).ToFunc()
}

// ByLastProcessedAt orders the results by the last_processed_at field.
func ByLastProcessedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessedAt, opts...).ToFunc()
}
