// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/executionlog"
)

// ExecutionLog is the model entity for the ExecutionLog schema.
type ExecutionLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Set on manual replays; links back to the original trace
	ParentTraceID *string `json:"parent_trace_id,omitempty"`
	// Direction holds the value of the "direction" field.
	Direction executionlog.Direction `json:"direction,omitempty"`
	// TriggerType holds the value of the "trigger_type" field.
	TriggerType executionlog.TriggerType `json:"trigger_type,omitempty"`
	// IntegrationID holds the value of the "integration_id" field.
	IntegrationID string `json:"integration_id,omitempty"`
	// IntegrationName holds the value of the "integration_name" field.
	IntegrationName string `json:"integration_name,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// EventID holds the value of the "event_id" field.
	EventID *string `json:"event_id,omitempty"`
	// MessageID holds the value of the "message_id" field.
	MessageID *string `json:"message_id,omitempty"`
	// Position within a multi-action integration; nil for single-action
	ActionIndex *int `json:"action_index,omitempty"`
	// URL/method/headers/body snapshot (secrets redacted)
	Request map[string]interface{} `json:"request,omitempty"`
	// Step entries {name, ts, duration_ms, status, metadata}
	Steps []map[string]interface{} `json:"steps,omitempty"`
	// Status/headers(truncated)/body(size-capped)
	Response map[string]interface{} `json:"response,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// Status holds the value of the "status" field.
	Status executionlog.Status `json:"status,omitempty"`
	// circuit_open, condition_false, ...
	SkipReason *string `json:"skip_reason,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs *int64 `json:"duration_ms,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExecutionLogQuery when eager-loading is set.
	Edges        ExecutionLogEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExecutionLogEdges holds the relations/edges for other nodes in the graph.
type ExecutionLogEdges struct {
	// DeliveryAttempts holds the value of the delivery_attempts edge.
	DeliveryAttempts []*DeliveryAttempt `json:"delivery_attempts,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DeliveryAttemptsOrErr returns the DeliveryAttempts value or an error if the edge
// was not loaded in eager-loading.
func (e ExecutionLogEdges) DeliveryAttemptsOrErr() ([]*DeliveryAttempt, error) {
	if e.loadedTypes[0] {
		return e.DeliveryAttempts, nil
	}
	return nil, &NotLoadedError{edge: "delivery_attempts"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExecutionLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldRequest, executionlog.FieldSteps, executionlog.FieldResponse:
			values[i] = new([]byte)
		case executionlog.FieldActionIndex, executionlog.FieldAttempts, executionlog.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case executionlog.FieldID, executionlog.FieldParentTraceID, executionlog.FieldDirection, executionlog.FieldTriggerType, executionlog.FieldIntegrationID, executionlog.FieldIntegrationName, executionlog.FieldOrgID, executionlog.FieldEventID, executionlog.FieldMessageID, executionlog.FieldErrorMessage, executionlog.FieldErrorKind, executionlog.FieldStatus, executionlog.FieldSkipReason:
			values[i] = new(sql.NullString)
		case executionlog.FieldStartedAt, executionlog.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExecutionLog fields.
func (_m *ExecutionLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case executionlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case executionlog.FieldParentTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_trace_id", values[i])
			} else if value.Valid {
				_m.ParentTraceID = new(string)
				*_m.ParentTraceID = value.String
			}
		case executionlog.FieldDirection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direction", values[i])
			} else if value.Valid {
				_m.Direction = executionlog.Direction(value.String)
			}
		case executionlog.FieldTriggerType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger_type", values[i])
			} else if value.Valid {
				_m.TriggerType = executionlog.TriggerType(value.String)
			}
		case executionlog.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = value.String
			}
		case executionlog.FieldIntegrationName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_name", values[i])
			} else if value.Valid {
				_m.IntegrationName = value.String
			}
		case executionlog.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case executionlog.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = new(string)
				*_m.EventID = value.String
			}
		case executionlog.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = new(string)
				*_m.MessageID = value.String
			}
		case executionlog.FieldActionIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field action_index", values[i])
			} else if value.Valid {
				_m.ActionIndex = new(int)
				*_m.ActionIndex = int(value.Int64)
			}
		case executionlog.FieldRequest:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Request); err != nil {
					return fmt.Errorf("unmarshal field request: %w", err)
				}
			}
		case executionlog.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case executionlog.FieldResponse:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field response", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Response); err != nil {
					return fmt.Errorf("unmarshal field response: %w", err)
				}
			}
		case executionlog.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case executionlog.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case executionlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = executionlog.Status(value.String)
			}
		case executionlog.FieldSkipReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reason", values[i])
			} else if value.Valid {
				_m.SkipReason = new(string)
				*_m.SkipReason = value.String
			}
		case executionlog.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case executionlog.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case executionlog.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		case executionlog.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = new(int64)
				*_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExecutionLog.
// This includes values selected through modifiers, order, etc.
func (_m *ExecutionLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDeliveryAttempts queries the "delivery_attempts" edge of the ExecutionLog entity.
func (_m *ExecutionLog) QueryDeliveryAttempts() *DeliveryAttemptQuery {
	return NewExecutionLogClient(_m.config).QueryDeliveryAttempts(_m)
}

// Update returns a builder for updating this ExecutionLog.
// Note that you need to call ExecutionLog.Unwrap() before calling this method if this ExecutionLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExecutionLog) Update() *ExecutionLogUpdateOne {
	return NewExecutionLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExecutionLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExecutionLog) Unwrap() *ExecutionLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExecutionLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExecutionLog) String() string {
	var builder strings.Builder
	builder.WriteString("ExecutionLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ParentTraceID; v != nil {
		builder.WriteString("parent_trace_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("direction=")
	builder.WriteString(fmt.Sprintf("%v", _m.Direction))
	builder.WriteString(", ")
	builder.WriteString("trigger_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriggerType))
	builder.WriteString(", ")
	builder.WriteString("integration_id=")
	builder.WriteString(_m.IntegrationID)
	builder.WriteString(", ")
	builder.WriteString("integration_name=")
	builder.WriteString(_m.IntegrationName)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	if v := _m.EventID; v != nil {
		builder.WriteString("event_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MessageID; v != nil {
		builder.WriteString("message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ActionIndex; v != nil {
		builder.WriteString("action_index=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("request=")
	builder.WriteString(fmt.Sprintf("%v", _m.Request))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", _m.Steps))
	builder.WriteString(", ")
	builder.WriteString("response=")
	builder.WriteString(fmt.Sprintf("%v", _m.Response))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.SkipReason; v != nil {
		builder.WriteString("skip_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.DurationMs; v != nil {
		builder.WriteString("duration_ms=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// ExecutionLogs is a parsable slice of ExecutionLog.
type ExecutionLogs []*ExecutionLog
