// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/alertlog"
)

// AlertLog is the model entity for the AlertLog schema.
type AlertLog struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// IntegrationID holds the value of the "integration_id" field.
	IntegrationID string `json:"integration_id,omitempty"`
	// channel:provider, e.g. EMAIL:SMTP or SLACK:API
	Channel string `json:"channel,omitempty"`
	// Status holds the value of the "status" field.
	Status alertlog.Status `json:"status,omitempty"`
	// Recipients holds the value of the "recipients" field.
	Recipients []string `json:"recipients,omitempty"`
	// TotalFailures holds the value of the "total_failures" field.
	TotalFailures int `json:"total_failures,omitempty"`
	// WindowStart holds the value of the "window_start" field.
	WindowStart time.Time `json:"window_start,omitempty"`
	// WindowEnd holds the value of the "window_end" field.
	WindowEnd time.Time `json:"window_end,omitempty"`
	// ProviderResponse holds the value of the "provider_response" field.
	ProviderResponse *string `json:"provider_response,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AlertLog) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case alertlog.FieldRecipients:
			values[i] = new([]byte)
		case alertlog.FieldTotalFailures:
			values[i] = new(sql.NullInt64)
		case alertlog.FieldID, alertlog.FieldOrgID, alertlog.FieldIntegrationID, alertlog.FieldChannel, alertlog.FieldStatus, alertlog.FieldProviderResponse:
			values[i] = new(sql.NullString)
		case alertlog.FieldWindowStart, alertlog.FieldWindowEnd, alertlog.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AlertLog fields.
func (_m *AlertLog) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case alertlog.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case alertlog.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case alertlog.FieldIntegrationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field integration_id", values[i])
			} else if value.Valid {
				_m.IntegrationID = value.String
			}
		case alertlog.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case alertlog.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = alertlog.Status(value.String)
			}
		case alertlog.FieldRecipients:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recipients", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recipients); err != nil {
					return fmt.Errorf("unmarshal field recipients: %w", err)
				}
			}
		case alertlog.FieldTotalFailures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_failures", values[i])
			} else if value.Valid {
				_m.TotalFailures = int(value.Int64)
			}
		case alertlog.FieldWindowStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_start", values[i])
			} else if value.Valid {
				_m.WindowStart = value.Time
			}
		case alertlog.FieldWindowEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_end", values[i])
			} else if value.Valid {
				_m.WindowEnd = value.Time
			}
		case alertlog.FieldProviderResponse:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider_response", values[i])
			} else if value.Valid {
				_m.ProviderResponse = new(string)
				*_m.ProviderResponse = value.String
			}
		case alertlog.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AlertLog.
// This includes values selected through modifiers, order, etc.
func (_m *AlertLog) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this AlertLog.
// Note that you need to call AlertLog.Unwrap() before calling this method if this AlertLog
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AlertLog) Update() *AlertLogUpdateOne {
	return NewAlertLogClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AlertLog entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AlertLog) Unwrap() *AlertLog {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AlertLog is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AlertLog) String() string {
	var builder strings.Builder
	builder.WriteString("AlertLog(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("integration_id=")
	builder.WriteString(_m.IntegrationID)
	builder.WriteString(", ")
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("recipients=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recipients))
	builder.WriteString(", ")
	builder.WriteString("total_failures=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalFailures))
	builder.WriteString(", ")
	builder.WriteString("window_start=")
	builder.WriteString(_m.WindowStart.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("window_end=")
	builder.WriteString(_m.WindowEnd.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ProviderResponse; v != nil {
		builder.WriteString("provider_response=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AlertLogs is a parsable slice of AlertLog.
type AlertLogs []*AlertLog
