// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/scheduledentry"
)

// ScheduledEntry is the model entity for the ScheduledEntry schema.
type ScheduledEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// IntegrationID holds the value of the "integration_id" field.
	IntegrationID string `json:"integration_id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// OriginalEventID holds the value of the "original_event_id" field.
	OriginalEventID string `json:"original_event_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// ScheduledFor holds the value of the "scheduled_for" field.
	ScheduledFor time.Time `json:"scheduled_for,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduledentry.Status `json:"status,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// TargetURL holds the value of the "target_url" field.
	TargetURL string `json:"target_url,omitempty"`
	// HTTPMethod holds the value of the "http_method" field.
	HTTPMethod string `json:"http_method,omitempty"`
	// AttemptCount holds the value of the "attempt_count" field.
	AttemptCount int `json:"attempt_count,omitempty"`
	// first_occurrence, interval_ms, max_occurrences|end_date, occurrence
	Recurring map[string]interface{} `json:"recurring,omitempty"`
	// Who/when/why a pending entry was cancelled
	Cancellation map[string]interface{} `json:"cancellation,omitempty"`
	// Worker holding the dispatch lease
	LeasedBy *string `json:"leased_by,omitempty"`
	// LeasedUntil holds the value of the "leased_until" field.
	LeasedUntil *time.Time `json:"leased_until,omitempty"`
	// Backoff target after a retryable dispatch failure
	NextAttemptAt *time.Time `json:"next_attempt_at,omitempty"`
	// LastError holds the value of the "last_error" field.
	LastError *string `json:"last_error,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledentry.FieldPayload, scheduledentry.FieldRecurring, scheduledentry.FieldCancellation:
			values[i] = new([]byte)
		case scheduledentry.FieldAttemptCount:
			values[i] = new(sql.NullInt64)
		case scheduledentry.FieldID, scheduledentry.FieldIntegrationID, scheduledentry.FieldOrgID, scheduledentry.FieldOriginalEventID, scheduledentry.FieldEventType, scheduledentry.FieldStatus, scheduledentry.FieldTargetURL, scheduledentry.FieldHTTPMethod, scheduledentry.FieldLeasedBy, scheduledentry.FieldLastError:
			values[i] = new(sql.NullString)
		case scheduledentry.FieldScheduledFor, scheduledentry.FieldLeasedUntil, scheduledentry.FieldNextAttemptAt, scheduledentry.FieldCreatedAt, scheduledentry.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledEntry fields.
func (_m *ScheduledEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledentry.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledentry.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = value.String
			}
		case scheduledentry.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case scheduledentry.FieldOriginalEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_event_id", values[i])
			} else if value.Valid {
				_m.OriginalEventID = value.String
			}
		case scheduledentry.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case scheduledentry.FieldScheduledFor:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field scheduled_for", values[i])
			} else if value.Valid {
				_m.ScheduledFor = value.Time
			}
		case scheduledentry.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledentry.Status(value.String)
			}
		case scheduledentry.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case scheduledentry.FieldTargetURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_url", values[i])
			} else if value.Valid {
				_m.TargetURL = value.String
			}
		case scheduledentry.FieldHTTPMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field http_method", values[i])
			} else if value.Valid {
				_m.HTTPMethod = value.String
			}
		case scheduledentry.FieldAttemptCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt_count", values[i])
			} else if value.Valid {
				_m.AttemptCount = int(value.Int64)
			}
		case scheduledentry.FieldRecurring:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recurring", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recurring); err != nil {
					return fmt.Errorf("unmarshal field recurring: %w", err)
				}
			}
		case scheduledentry.FieldCancellation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field cancellation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Cancellation); err != nil {
					return fmt.Errorf("unmarshal field cancellation: %w", err)
				}
			}
		case scheduledentry.FieldLeasedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field leased_by", values[i])
			} else if value.Valid {
				_m.LeasedBy = new(string)
				*_m.LeasedBy = value.String
			}
		case scheduledentry.FieldLeasedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field leased_until", values[i])
			} else if value.Valid {
				_m.LeasedUntil = new(time.Time)
				*_m.LeasedUntil = value.Time
			}
		case scheduledentry.FieldNextAttemptAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field next_attempt_at", values[i])
			} else if value.Valid {
				_m.NextAttemptAt = new(time.Time)
				*_m.NextAttemptAt = value.Time
			}
		case scheduledentry.FieldLastError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field last_error", values[i])
			} else if value.Valid {
				_m.LastError = new(string)
				*_m.LastError = value.String
			}
		case scheduledentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scheduledentry.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ScheduledEntry.
// Note that you need to call ScheduledEntry.Unwrap() before calling this method if this ScheduledEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledEntry) Update() *ScheduledEntryUpdateOne {
	return NewScheduledEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledEntry) Unwrap() *ScheduledEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("integration_id=")
	builder.WriteString(_m.IntegrationID)
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("original_event_id=")
	builder.WriteString(_m.OriginalEventID)
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("scheduled_for=")
	builder.WriteString(_m.ScheduledFor.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("target_url=")
	builder.WriteString(_m.TargetURL)
	builder.WriteString(", ")
	builder.WriteString("http_method=")
	builder.WriteString(_m.HTTPMethod)
	builder.WriteString(", ")
	builder.WriteString("attempt_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttemptCount))
	builder.WriteString(", ")
	builder.WriteString("recurring=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recurring))
	builder.WriteString(", ")
	builder.WriteString("cancellation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Cancellation))
	builder.WriteString(", ")
	if v := _m.LeasedBy; v != nil {
		builder.WriteString("leased_by=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LeasedUntil; v != nil {
		builder.WriteString("leased_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.NextAttemptAt; v != nil {
		builder.WriteString("next_attempt_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastError; v != nil {
		builder.WriteString("last_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledEntries is a parsable slice of ScheduledEntry.
type ScheduledEntries []*ScheduledEntry
