// Code generated by ent, DO NOT EDIT.

package alertlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the alertlog type in the database.
	Label = "alert_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "alert_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldIntegrationID holds the string denoting the integration_id field in the database.
	FieldIntegrationID = "integration_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRecipients holds the string denoting the recipients field in the database.
	FieldRecipients = "recipients"
	// FieldTotalFailures holds the string denoting the total_failures field in the database.
	FieldTotalFailures = "total_failures"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldProviderResponse holds the string denoting the provider_response field in the database.
	FieldProviderResponse = "provider_response"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the alertlog in the database.
	Table = "alert_logs"
)

// Columns holds all SQL columns for alertlog fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldIntegrationID,
	FieldChannel,
	FieldStatus,
	FieldRecipients,
	FieldTotalFailures,
	FieldWindowStart,
	FieldWindowEnd,
	FieldProviderResponse,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSent, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("alertlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AlertLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByIntegrationID orders the results by the integration_id field.
func ByIntegrationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTotalFailures orders the results by the total_failures field.
func ByTotalFailures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalFailures, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByProviderResponse orders the results by the provider_response field.
func ByProviderResponse(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProviderResponse, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
