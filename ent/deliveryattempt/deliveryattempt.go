// Code generated by ent, DO NOT EDIT.

package deliveryattempt

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the deliveryattempt type in the database.
	Label = "delivery_attempt"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "attempt_id"
	// FieldDeliveryLogID holds the string denoting the delivery_log_id field in the database.
	FieldDeliveryLogID = "delivery_log_id"
	// FieldAttemptNumber holds the string denoting the attempt_number field in the database.
	FieldAttemptNumber = "attempt_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldResponseStatus holds the string denoting the response_status field in the database.
	FieldResponseStatus = "response_status"
	// FieldResponseTimeMs holds the string denoting the response_time_ms field in the database.
	FieldResponseTimeMs = "response_time_ms"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldRetryReason holds the string denoting the retry_reason field in the database.
	FieldRetryReason = "retry_reason"
	// FieldRequestPayload holds the string denoting the request_payload field in the database.
	FieldRequestPayload = "request_payload"
	// FieldAttemptedAt holds the string denoting the attempted_at field in the database.
	FieldAttemptedAt = "attempted_at"
	// EdgeExecutionLog holds the string denoting the execution_log edge name in mutations.
	EdgeExecutionLog = "execution_log"
	// ExecutionLogFieldID holds the string denoting the ID field of the ExecutionLog.
	ExecutionLogFieldID = "trace_id"
	// Table holds the table name of the deliveryattempt in the database.
	Table = "delivery_attempts"
	// ExecutionLogTable is the table that holds the execution_log relation/edge.
	ExecutionLogTable = "delivery_attempts"
	// ExecutionLogInverseTable is the table name for the ExecutionLog entity.
	// It exists in this package in order to avoid circular dependency with the "executionlog" package.
	ExecutionLogInverseTable = "execution_logs"
	// ExecutionLogColumn is the table column denoting the execution_log relation/edge.
	ExecutionLogColumn = "delivery_log_id"
)

// Columns holds all SQL columns for deliveryattempt fields.
var Columns = []string{
	FieldID,
	FieldDeliveryLogID,
	FieldAttemptNumber,
	FieldStatus,
	FieldResponseStatus,
	FieldResponseTimeMs,
	FieldErrorMessage,
	FieldRetryReason,
	FieldRequestPayload,
	FieldAttemptedAt,
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
	// DefaultAttemptedAt holds the default value on creation for the "attempted_at" field.
	DefaultAttemptedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSuccess, StatusFailed:
		return nil
	default:
		return fmt.Errorf("deliveryattempt: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeliveryAttempt queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeliveryLogID orders the results by the delivery_log_id field.
func ByDeliveryLogID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeliveryLogID, opts...).ToFunc()
}

// ByAttemptNumber orders the results by the attempt_number field.
func ByAttemptNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByResponseStatus orders the results by the response_status field.
func ByResponseStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseStatus, opts...).ToFunc()
}

// ByResponseTimeMs orders the results by the response_time_ms field.
func ByResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResponseTimeMs, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByRetryReason orders the results by the retry_reason field.
func ByRetryReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryReason, opts...).ToFunc()
}

// ByAttemptedAt orders the results by the attempted_at field.
func ByAttemptedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptedAt, opts...).ToFunc()
}

// ByExecutionLogField orders the results by execution_log field.
func ByExecutionLogField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExecutionLogStep(), sql.OrderByField(field, opts...))
	}
}
func newExecutionLogStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExecutionLogInverseTable, ExecutionLogFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExecutionLogTable, ExecutionLogColumn),
	)
}
