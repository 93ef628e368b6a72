// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// SourceCheckpoint is the model entity for the SourceCheckpoint schema.
type SourceCheckpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Table/collection/URL the rows were read from
	SourceIdentifier string `json:"source_identifier,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// Non-decreasing; rows at or below are never re-read
	LastProcessedID int64 `json:"last_processed_id,omitempty"`
	// LastProcessedAt holds the value of the "last_processed_at" field.
	LastProcessedAt time.Time `json:"last_processed_at,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SourceCheckpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sourcecheckpoint.FieldLastProcessedID:
			values[i] = new(sql.NullInt64)
		case sourcecheckpoint.FieldID, sourcecheckpoint.FieldSource, sourcecheckpoint.FieldSourceIdentifier, sourcecheckpoint.FieldOrgID:
			values[i] = new(sql.NullString)
		case sourcecheckpoint.FieldLastProcessedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SourceCheckpoint fields.
func (_m *SourceCheckpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sourcecheckpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case sourcecheckpoint.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case sourcecheckpoint.FieldSourceIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_identifier", values[i])
			} else if value.Valid {
				_m.SourceIdentifier = value.String
			}
		case sourcecheckpoint.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case sourcecheckpoint.FieldLastProcessedID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_id", values[i])
			} else if value.Valid {
				_m.LastProcessedID = value.Int64
			}
		case sourcecheckpoint.FieldLastProcessedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed_at", values[i])
			} else if value.Valid {
				_m.LastProcessedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SourceCheckpoint.
// This includes values selected through modifiers, order, etc.
func (_m *SourceCheckpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SourceCheckpoint.
// Note that you need to call SourceCheckpoint.Unwrap() before calling this method if this SourceCheckpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SourceCheckpoint) Update() *SourceCheckpointUpdateOne {
	return NewSourceCheckpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SourceCheckpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SourceCheckpoint) Unwrap() *SourceCheckpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SourceCheckpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SourceCheckpoint) String() string {
	var builder strings.Builder
	builder.WriteString("SourceCheckpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("source_identifier=")
	builder.WriteString(_m.SourceIdentifier)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("last_processed_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LastProcessedID))
	builder.WriteString(", ")
	builder.WriteString("last_processed_at=")
	builder.WriteString(_m.LastProcessedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SourceCheckpoints is a parsable slice of SourceCheckpoint.
type SourceCheckpoints []*SourceCheckpoint
