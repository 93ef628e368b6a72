// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/executionlog"
)

// DeliveryAttempt is the model entity for the DeliveryAttempt schema.
type DeliveryAttempt struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// DeliveryLogID holds the value of the "delivery_log_id" field.
	DeliveryLogID string `json:"delivery_log_id,omitempty"`
	// Strictly increasing per delivery_log_id
	AttemptNumber int `json:"attempt_number,omitempty"`
	// Status holds the value of the "status" field.
	Status deliveryattempt.Status `json:"status,omitempty"`
	// ResponseStatus holds the value of the "response_status" field.
	ResponseStatus *int `json:"response_status,omitempty"`
	// ResponseTimeMs holds the value of the "response_time_ms" field.
	ResponseTimeMs int64 `json:"response_time_ms,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// RetryReason holds the value of the "retry_reason" field.
	RetryReason *string `json:"retry_reason,omitempty"`
	// RequestPayload holds the value of the "request_payload" field.
	RequestPayload map[string]interface{} `json:"request_payload,omitempty"`
	// AttemptedAt holds the value of the "attempted_at" field.
	AttemptedAt time.Time `json:"attempted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeliveryAttemptQuery when eager-loading is set.
	Edges        DeliveryAttemptEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeliveryAttemptEdges holds the relations/edges for other nodes in the graph.
type DeliveryAttemptEdges struct {
	// ExecutionLog holds the value of the execution_log edge.
	ExecutionLog *ExecutionLog `json:"execution_log,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ExecutionLogOrErr returns the ExecutionLog value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeliveryAttemptEdges) ExecutionLogOrErr() (*ExecutionLog, error) {
	if e.ExecutionLog != nil {
		return e.ExecutionLog, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: executionlog.Label}
	}
	return nil, &NotLoadedError{edge: "execution_log"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryAttempt) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliveryattempt.FieldRequestPayload:
			values[i] = new([]byte)
		case deliveryattempt.FieldAttemptNumber, deliveryattempt.FieldResponseStatus, deliveryattempt.FieldResponseTimeMs:
			values[i] = new(sql.NullInt64)
		case deliveryattempt.FieldID, deliveryattempt.FieldDeliveryLogID, deliveryattempt.FieldStatus, deliveryattempt.FieldErrorMessage, deliveryattempt.FieldRetryReason:
			values[i] = new(sql.NullString)
		case deliveryattempt.FieldAttemptedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryAttempt fields.
func (_m *DeliveryAttempt) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliveryattempt.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliveryattempt.FieldDeliveryLogID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field delivery_log_id", values[i])
			} else if value.Valid {
				_m.DeliveryLogID = value.String
			}
		case deliveryattempt.FieldAttemptNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_number", values[i])
			} else if value.Valid {
				_m.AttemptNumber = int(value.Int64)
			}
		case deliveryattempt.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deliveryattempt.Status(value.String)
			}
		case deliveryattempt.FieldResponseStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_status", values[i])
			} else if value.Valid {
				_m.ResponseStatus = new(int)
				*_m.ResponseStatus = int(value.Int64)
			}
		case deliveryattempt.FieldResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field response_time_ms", values[i])
			} else if value.Valid {
				_m.ResponseTimeMs = value.Int64
			}
		case deliveryattempt.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case deliveryattempt.FieldRetryReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field retry_reason", values[i])
			} else if value.Valid {
				_m.RetryReason = new(string)
				*_m.RetryReason = value.String
			}
		case deliveryattempt.FieldRequestPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestPayload); err != nil {
					return fmt.Errorf("unmarshal field request_payload: %w", err)
				}
			}
		case deliveryattempt.FieldAttemptedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field attempted_at", values[i])
			} else if value.Valid {
				_m.AttemptedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryAttempt.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryAttempt) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExecutionLog queries the "execution_log" edge of the DeliveryAttempt entity.
func (_m *DeliveryAttempt) QueryExecutionLog() *ExecutionLogQuery {
	return NewDeliveryAttemptClient(_m.config).QueryExecutionLog(_m)
}

// Update returns a builder for updating this DeliveryAttempt.
// Note that you need to call DeliveryAttempt.Unwrap() before calling this method if this DeliveryAttempt
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryAttempt) Update() *DeliveryAttemptUpdateOne {
	return NewDeliveryAttemptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryAttempt entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryAttempt) Unwrap() *DeliveryAttempt {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryAttempt is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryAttempt) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryAttempt(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("delivery_log_id=")
	builder.WriteString(_m.DeliveryLogID)
	builder.WriteString(", ")
	builder.WriteString("attempt_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptNumber))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ResponseStatus; v != nil {
		builder.WriteString("response_status=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResponseTimeMs))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RetryReason; v != nil {
		builder.WriteString("retry_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("request_payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestPayload))
	builder.WriteString(", ")
	builder.WriteString("attempted_at=")
	builder.WriteString(_m.AttemptedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryAttempts is a parsable slice of DeliveryAttempt.
type DeliveryAttempts []*DeliveryAttempt
