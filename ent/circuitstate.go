// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/circuitstate"
)

// CircuitState is the model entity for the CircuitState schema.
type CircuitState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IntegrationID holds the value of the "integration_id" field.
	IntegrationID string `json:"integration_id,omitempty"`
	// ConsecutiveFailures holds the value of the "consecutive_failures" field.
	ConsecutiveFailures int `json:"consecutive_failures,omitempty"`
	// State holds the value of the "state" field.
	State circuitstate.State `json:"state,omitempty"`
	// OpenedAt holds the value of the "opened_at" field.
	OpenedAt *time.Time `json:"opened_at,omitempty"`
	// NextProbeAt holds the value of the "next_probe_at" field.
	NextProbeAt *time.Time `json:"next_probe_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CircuitState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case circuitstate.FieldConsecutiveFailures:
			values[i] = new(sql.NullInt64)
		case circuitstate.FieldID, circuitstate.FieldIntegrationID, circuitstate.FieldState:
			values[i] = new(sql.NullString)
		case circuitstate.FieldOpenedAt, circuitstate.FieldNextProbeAt, circuitstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CircuitState fields.
func (_m *CircuitState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case circuitstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case circuitstate.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = value.String
			}
		case circuitstate.FieldConsecutiveFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field consecutive_failures", values[i])
			} else if value.Valid {
				_m.ConsecutiveFailures = int(value.Int64)
			}
		case circuitstate.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = circuitstate.State(value.String)
			}
		case circuitstate.FieldOpenedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field opened_at", values[i])
			} else if value.Valid {
				_m.OpenedAt = new(time.Time)
				*_m.OpenedAt = value.Time
			}
		case circuitstate.FieldNextProbeAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_probe_at", values[i])
			} else if value.Valid {
				_m.NextProbeAt = new(time.Time)
				*_m.NextProbeAt = value.Time
			}
		case circuitstate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CircuitState.
// This includes values selected through modifiers, order, etc.
func (_m *CircuitState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CircuitState.
// Note that you need to call CircuitState.Unwrap() before calling this method if this CircuitState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CircuitState) Update() *CircuitStateUpdateOne {
	return NewCircuitStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CircuitState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CircuitState) Unwrap() *CircuitState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CircuitState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CircuitState) String() string {
	var builder strings.Builder
	builder.WriteString("CircuitState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(_m.IntegrationID)
	builder.WriteString(", ")
	builder.WriteString("consecutive_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConsecutiveFailures))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	if v := _m.OpenedAt; v != nil {
		builder.WriteString("opened_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextProbeAt; v != nil {
		builder.WriteString("next_probe_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CircuitStates is a parsable slice of CircuitState.
type CircuitStates []*CircuitState
