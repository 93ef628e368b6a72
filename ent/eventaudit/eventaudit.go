// Code generated by ent, DO NOT EDIT.

package eventaudit

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the eventaudit type in the database.
	Label = "event_audit"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "event_id"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldOrgUnitID holds the string denoting the org_unit_id field in the database.
	FieldOrgUnitID = "org_unit_id"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldPayloadHash holds the string denoting the payload_hash field in the database.
	FieldPayloadHash = "payload_hash"
	// FieldEventKey holds the string denoting the event_key field in the database.
	FieldEventKey = "event_key"
	// FieldReceivedAtBucket holds the string denoting the received_at_bucket field in the database.
	FieldReceivedAtBucket = "received_at_bucket"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTimeline holds the string denoting the timeline field in the database.
	FieldTimeline = "timeline"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// Table holds the table name of the eventaudit in the database.
	Table = "event_audits"
)

// Columns holds all SQL columns for eventaudit fields.
var Columns = []string{
	FieldID,
	FieldSource,
	FieldSourceID,
	FieldOrgID,
	FieldOrgUnitID,
	FieldEventType,
	FieldPayload,
	FieldPayloadHash,
	FieldEventKey,
	FieldReceivedAtBucket,
	FieldStatus,
	FieldTimeline,
	FieldReceivedAt,
	FieldUpdatedAt,
	FieldExpiresAt,
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
	// DefaultReceivedAt holds the default value on creation for the "received_at" field.
	DefaultReceivedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusReceived is the default value of the Status enum.
const DefaultStatus = StatusReceived

// Status values.
const (
	StatusReceived   Status = "received"
	StatusProcessing Status = "processing"
	StatusDelivered  Status = "delivered"
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
	StatusStuck      Status = "stuck"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusReceived, StatusProcessing, StatusDelivered, StatusSkipped, StatusFailed, StatusStuck:
		return nil
	default:
		return fmt.Errorf("eventaudit: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the EventAudit queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByOrgUnitID orders the results by the org_unit_id field.
func ByOrgUnitID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgUnitID, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByPayloadHash orders the results by the payload_hash field.
func ByPayloadHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayloadHash, opts...).ToFunc()
}

// ByEventKey orders the results by the event_key field.
func ByEventKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventKey, opts...).ToFunc()
}

// ByReceivedAtBucket orders the results by the received_at_bucket field.
func ByReceivedAtBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAtBucket, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}
