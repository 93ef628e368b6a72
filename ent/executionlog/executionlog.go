// Code generated by ent, DO NOT EDIT.

package executionlog

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the executionlog type in the database.
	Label = "execution_log"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "trace_id"
	// FieldParentTraceID holds the string denoting the parent_trace_id field in the database.
	FieldParentTraceID = "parent_trace_id"
	// FieldDirection holds the string denoting the direction field in the database.
	FieldDirection = "direction"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldIntegrationID holds the string denoting the integration_id field in the database.
	FieldIntegrationID = "integration_id"
	// FieldIntegrationName holds the string denoting the integration_name field in the database.
	FieldIntegrationName = "integration_name"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldActionIndex holds the string denoting the action_index field in the database.
	FieldActionIndex = "action_index"
	// FieldRequest holds the string denoting the request field in the database.
	FieldRequest = "request"
	// FieldSteps holds the string denoting the steps field in the database.
	FieldSteps = "steps"
	// FieldResponse holds the string denoting the response field in the database.
	FieldResponse = "response"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSkipReason holds the string denoting the skip_reason field in the database.
	FieldSkipReason = "skip_reason"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// FieldDurationMs holds the string denoting the duration_ms field in the database.
	FieldDurationMs = "duration_ms"
	// EdgeDeliveryAttempts holds the string denoting the delivery_attempts edge name in mutations.
	EdgeDeliveryAttempts = "delivery_attempts"
	// DeliveryAttemptFieldID holds the string denoting the ID field of the DeliveryAttempt.
	DeliveryAttemptFieldID = "attempt_id"
	// Table holds the table name of the executionlog in the database.
	Table = "execution_logs"
	// DeliveryAttemptsTable is the table that holds the delivery_attempts relation/edge.
	DeliveryAttemptsTable = "delivery_attempts"
	// DeliveryAttemptsInverseTable is the table name for the DeliveryAttempt entity.
	// It exists in this package in order to avoid circular dependency with the "deliveryattempt" package.
	DeliveryAttemptsInverseTable = "delivery_attempts"
	// DeliveryAttemptsColumn is the table column denoting the delivery_attempts relation/edge.
	DeliveryAttemptsColumn = "delivery_log_id"
)

// Columns holds all SQL columns for executionlog fields.
var Columns = []string{
	FieldID,
	FieldParentTraceID,
	FieldDirection,
	FieldTriggerType,
	FieldIntegrationID,
	FieldIntegrationName,
	FieldOrgID,
	FieldEventID,
	FieldMessageID,
	FieldActionIndex,
	FieldRequest,
	FieldSteps,
	FieldResponse,
	FieldErrorMessage,
	FieldErrorKind,
	FieldStatus,
	FieldSkipReason,
	FieldAttempts,
	FieldStartedAt,
	FieldFinishedAt,
	FieldDurationMs,
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
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// Direction defines the type for the "direction" enum field.
type Direction string

// Direction values.
const (
	DirectionOutbound  Direction = "outbound"
	DirectionInbound   Direction = "inbound"
	DirectionScheduled Direction = "scheduled"
)

func (d Direction) String() string {
	return string(d)
}

// DirectionValidator is a validator for the "direction" field enum values. It is called by the builders before save.
func DirectionValidator(d Direction) error {
	switch d {
	case DirectionOutbound, DirectionInbound, DirectionScheduled:
		return nil
	default:
		return fmt.Errorf("executionlog: invalid enum value for direction field: %q", d)
	}
}

// TriggerType defines the type for the "trigger_type" enum field.
type TriggerType string

// TriggerType values.
const (
	TriggerTypeEvent    TriggerType = "event"
	TriggerTypeSchedule TriggerType = "schedule"
	TriggerTypeReplay   TriggerType = "replay"
	TriggerTypeProxy    TriggerType = "proxy"
)

func (tt TriggerType) String() string {
	return string(tt)
}

// TriggerTypeValidator is a validator for the "trigger_type" field enum values. It is called by the builders before save.
func TriggerTypeValidator(tt TriggerType) error {
	switch tt {
	case TriggerTypeEvent, TriggerTypeSchedule, TriggerTypeReplay, TriggerTypeProxy:
		return nil
	default:
		return fmt.Errorf("executionlog: invalid enum value for trigger_type field: %q", tt)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("executionlog: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExecutionLog queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByParentTraceID orders the results by the parent_trace_id field.
func ByParentTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentTraceID, opts...).ToFunc()
}

// ByDirection orders the results by the direction field.
func ByDirection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDirection, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByIntegrationID orders the results by the integration_id field.
func ByIntegrationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationID, opts...).ToFunc()
}

// ByIntegrationName orders the results by the integration_name field.
func ByIntegrationName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntegrationName, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByActionIndex orders the results by the action_index field.
func ByActionIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActionIndex, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySkipReason orders the results by the skip_reason field.
func BySkipReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipReason, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByDurationMs orders the results by the duration_ms field.
func ByDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDurationMs, opts...).ToFunc()
}

// ByDeliveryAttemptsCount orders the results by delivery_attempts count.
func ByDeliveryAttemptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDeliveryAttemptsStep(), opts...)
	}
}

// ByDeliveryAttempts orders the results by delivery_attempts terms.
func ByDeliveryAttempts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDeliveryAttemptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDeliveryAttemptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DeliveryAttemptsInverseTable, DeliveryAttemptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DeliveryAttemptsTable, DeliveryAttemptsColumn),
	)
}
