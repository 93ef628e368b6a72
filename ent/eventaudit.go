// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/eventaudit"
)

// EventAudit is the model entity for the EventAudit schema.
type EventAudit struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Source config ID the event was pulled from
	Source string `json:"source,omitempty"`
	// Upstream row identifier when the source provides one
	SourceID *string `json:"source_id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// OrgUnitID holds the value of the "org_unit_id" field.
	OrgUnitID *string `json:"org_unit_id,omitempty"`
	// EventType holds the value of the "event_type" field.
	EventType string `json:"event_type,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload map[string]interface{} `json:"payload,omitempty"`
	// SHA-256 of the canonical payload
	PayloadHash string `json:"payload_hash,omitempty"`
	// Fallback dedup key when source_id is absent
	EventKey *string `json:"event_key,omitempty"`
	// Minute-truncated receipt time for fallback dedup
	ReceivedAtBucket *time.Time `json:"received_at_bucket,omitempty"`
	// Status holds the value of the "status" field.
	Status eventaudit.Status `json:"status,omitempty"`
	// Append-only lifecycle entries {ts, stage, details}
	Timeline []map[string]interface{} `json:"timeline,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Retention boundary; swept by the janitor
	ExpiresAt    time.Time `json:"expires_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*EventAudit) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case eventaudit.FieldPayload, eventaudit.FieldTimeline:
			values[i] = new([]byte)
		case eventaudit.FieldID, eventaudit.FieldSource, eventaudit.FieldSourceID, eventaudit.FieldOrgID, eventaudit.FieldOrgUnitID, eventaudit.FieldEventType, eventaudit.FieldPayloadHash, eventaudit.FieldEventKey, eventaudit.FieldStatus:
			values[i] = new(sql.NullString)
		case eventaudit.FieldReceivedAtBucket, eventaudit.FieldReceivedAt, eventaudit.FieldUpdatedAt, eventaudit.FieldExpiresAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the EventAudit fields.
func (_m *EventAudit) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case eventaudit.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case eventaudit.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case eventaudit.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = new(string)
				*_m.SourceID = value.String
			}
		case eventaudit.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case eventaudit.FieldOrgUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_unit_id", values[i])
			} else if value.Valid {
				_m.OrgUnitID = new(string)
				*_m.OrgUnitID = value.String
			}
		case eventaudit.FieldEventType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_type", values[i])
			} else if value.Valid {
				_m.EventType = value.String
			}
		case eventaudit.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case eventaudit.FieldPayloadHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload_hash", values[i])
			} else if value.Valid {
				_m.PayloadHash = value.String
			}
		case eventaudit.FieldEventKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_key", values[i])
			} else if value.Valid {
				_m.EventKey = new(string)
				*_m.EventKey = value.String
			}
		case eventaudit.FieldReceivedAtBucket:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at_bucket", values[i])
			} else if value.Valid {
				_m.ReceivedAtBucket = new(time.Time)
				*_m.ReceivedAtBucket = value.Time
			}
		case eventaudit.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = eventaudit.Status(value.String)
			}
		case eventaudit.FieldTimeline:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field timeline", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Timeline); err != nil {
					return fmt.Errorf("unmarshal field timeline: %w", err)
				}
			}
		case eventaudit.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case eventaudit.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case eventaudit.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the EventAudit.
// This includes values selected through modifiers, order, etc.
func (_m *EventAudit) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this EventAudit.
// Note that you need to call EventAudit.Unwrap() before calling this method if this EventAudit
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *EventAudit) Update() *EventAuditUpdateOne {
	return NewEventAuditClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the EventAudit entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *EventAudit) Unwrap() *EventAudit {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: EventAudit is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *EventAudit) String() string {
	var builder strings.Builder
	builder.WriteString("EventAudit(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	if v := _m.SourceID; v != nil {
		builder.WriteString("source_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	if v := _m.OrgUnitID; v != nil {
		builder.WriteString("org_unit_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("event_type=")
	builder.WriteString(_m.EventType)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("payload_hash=")
	builder.WriteString(_m.PayloadHash)
	builder.WriteString(", ")
	if v := _m.EventKey; v != nil {
		builder.WriteString("event_key=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ReceivedAtBucket; v != nil {
		builder.WriteString("received_at_bucket=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("timeline=")
	builder.WriteString(fmt.Sprintf("%v", _m.Timeline))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// EventAudits is a parsable slice of EventAudit.
type EventAudits []*EventAudit
