// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/relayforge/relayforge/ent/alertlog"
	"github.com/relayforge/relayforge/ent/circuitstate"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/predicate"
	"github.com/relayforge/relayforge/ent/processedevent"
	"github.com/relayforge/relayforge/ent/scheduledentry"
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAlertLog         = "AlertLog"
	TypeCircuitState     = "CircuitState"
	TypeDLQEntry         = "DLQEntry"
	TypeDeliveryAttempt  = "DeliveryAttempt"
	TypeEventAudit       = "EventAudit"
	TypeExecutionLog     = "ExecutionLog"
	TypeProcessedEvent   = "ProcessedEvent"
	TypeScheduledEntry   = "ScheduledEntry"
	TypeSourceCheckpoint = "SourceCheckpoint"
)

// AlertLogMutation represents an operation that mutates the AlertLog nodes in the graph.
type AlertLogMutation struct {
	config
	op                Op
	typ               string
	id                *string
	org_id            *string
	integration_id    *string
	channel           *string
	status            *alertlog.Status
	recipients        *[]string
	appendrecipients  []string
	total_failures    *int
	addtotal_failures *int
	window_start      *time.Time
	window_end        *time.Time
	provider_response *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*AlertLog, error)
	predicates        []predicate.AlertLog
}

var _ ent.Mutation = (*AlertLogMutation)(nil)

// alertlogOption allows management of the mutation configuration using functional options.
type alertlogOption func(*AlertLogMutation)

// newAlertLogMutation creates new mutation for the AlertLog entity.
func newAlertLogMutation(c config, op Op, opts ...alertlogOption) *AlertLogMutation {
	m := &AlertLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAlertLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAlertLogID sets the ID field of the mutation.
func withAlertLogID(id string) alertlogOption {
	return func(m *AlertLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AlertLog
		)
		m.oldValue = func(ctx context.Context) (*AlertLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AlertLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAlertLog sets the old AlertLog of the mutation.
func withAlertLog(node *AlertLog) alertlogOption {
	return func(m *AlertLogMutation) {
		m.oldValue = func(context.Context) (*AlertLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AlertLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AlertLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AlertLog entities.
func (m *AlertLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AlertLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AlertLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AlertLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *AlertLogMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *AlertLogMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *AlertLogMutation) ResetOrgID() {
	m.org_id = nil
}

// SetIntegrationID sets the "integration_id" field.
func (m *AlertLogMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *AlertLogMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *AlertLogMutation) ResetIntegrationID() {
	m.integration_id = nil
}

// SetChannel sets the "channel" field.
func (m *AlertLogMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AlertLogMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AlertLogMutation) ResetChannel() {
	m.channel = nil
}

// SetStatus sets the "status" field.
func (m *AlertLogMutation) SetStatus(a alertlog.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AlertLogMutation) Status() (r alertlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldStatus(ctx context.Context) (v alertlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AlertLogMutation) ResetStatus() {
	m.status = nil
}

// SetRecipients sets the "recipients" field.
func (m *AlertLogMutation) SetRecipients(s []string) {
	m.recipients = &s
	m.appendrecipients = nil
}

// Recipients returns the value of the "recipients" field in the mutation.
func (m *AlertLogMutation) Recipients() (r []string, exists bool) {
	v := m.recipients
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipients returns the old "recipients" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldRecipients(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipients is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipients requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipients: %w", err)
	}
	return oldValue.Recipients, nil
}

// AppendRecipients adds s to the "recipients" field.
func (m *AlertLogMutation) AppendRecipients(s []string) {
	m.appendrecipients = append(m.appendrecipients, s...)
}

// AppendedRecipients returns the list of values that were appended to the "recipients" field in this mutation.
func (m *AlertLogMutation) AppendedRecipients() ([]string, bool) {
	if len(m.appendrecipients) == 0 {
		return nil, false
	}
	return m.appendrecipients, true
}

// ClearRecipients clears the value of the "recipients" field.
func (m *AlertLogMutation) ClearRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	m.clearedFields[alertlog.FieldRecipients] = struct{}{}
}

// RecipientsCleared returns if the "recipients" field was cleared in this mutation.
func (m *AlertLogMutation) RecipientsCleared() bool {
	_, ok := m.clearedFields[alertlog.FieldRecipients]
	return ok
}

// ResetRecipients resets all changes to the "recipients" field.
func (m *AlertLogMutation) ResetRecipients() {
	m.recipients = nil
	m.appendrecipients = nil
	delete(m.clearedFields, alertlog.FieldRecipients)
}

// SetTotalFailures sets the "total_failures" field.
func (m *AlertLogMutation) SetTotalFailures(i int) {
	m.total_failures = &i
	m.addtotal_failures = nil
}

// TotalFailures returns the value of the "total_failures" field in the mutation.
func (m *AlertLogMutation) TotalFailures() (r int, exists bool) {
	v := m.total_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalFailures returns the old "total_failures" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldTotalFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalFailures: %w", err)
	}
	return oldValue.TotalFailures, nil
}

// AddTotalFailures adds i to the "total_failures" field.
func (m *AlertLogMutation) AddTotalFailures(i int) {
	if m.addtotal_failures != nil {
		*m.addtotal_failures += i
	} else {
		m.addtotal_failures = &i
	}
}

// AddedTotalFailures returns the value that was added to the "total_failures" field in this mutation.
func (m *AlertLogMutation) AddedTotalFailures() (r int, exists bool) {
	v := m.addtotal_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalFailures resets all changes to the "total_failures" field.
func (m *AlertLogMutation) ResetTotalFailures() {
	m.total_failures = nil
	m.addtotal_failures = nil
}

// SetWindowStart sets the "window_start" field.
func (m *AlertLogMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *AlertLogMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *AlertLogMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *AlertLogMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *AlertLogMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *AlertLogMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetProviderResponse sets the "provider_response" field.
func (m *AlertLogMutation) SetProviderResponse(s string) {
	m.provider_response = &s
}

// ProviderResponse returns the value of the "provider_response" field in the mutation.
func (m *AlertLogMutation) ProviderResponse() (r string, exists bool) {
	v := m.provider_response
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderResponse returns the old "provider_response" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldProviderResponse(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderResponse: %w", err)
	}
	return oldValue.ProviderResponse, nil
}

// ClearProviderResponse clears the value of the "provider_response" field.
func (m *AlertLogMutation) ClearProviderResponse() {
	m.provider_response = nil
	m.clearedFields[alertlog.FieldProviderResponse] = struct{}{}
}

// ProviderResponseCleared returns if the "provider_response" field was cleared in this mutation.
func (m *AlertLogMutation) ProviderResponseCleared() bool {
	_, ok := m.clearedFields[alertlog.FieldProviderResponse]
	return ok
}

// ResetProviderResponse resets all changes to the "provider_response" field.
func (m *AlertLogMutation) ResetProviderResponse() {
	m.provider_response = nil
	delete(m.clearedFields, alertlog.FieldProviderResponse)
}

// SetCreatedAt sets the "created_at" field.
func (m *AlertLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AlertLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AlertLog entity.
// If the AlertLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AlertLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AlertLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AlertLogMutation builder.
func (m *AlertLogMutation) Where(ps ...predicate.AlertLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AlertLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AlertLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AlertLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AlertLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AlertLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AlertLog).
func (m *AlertLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AlertLogMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.org_id != nil {
		fields = append(fields, alertlog.FieldOrgID)
	}
	if m.integration_id != nil {
		fields = append(fields, alertlog.FieldIntegrationID)
	}
	if m.channel != nil {
		fields = append(fields, alertlog.FieldChannel)
	}
	if m.status != nil {
		fields = append(fields, alertlog.FieldStatus)
	}
	if m.recipients != nil {
		fields = append(fields, alertlog.FieldRecipients)
	}
	if m.total_failures != nil {
		fields = append(fields, alertlog.FieldTotalFailures)
	}
	if m.window_start != nil {
		fields = append(fields, alertlog.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, alertlog.FieldWindowEnd)
	}
	if m.provider_response != nil {
		fields = append(fields, alertlog.FieldProviderResponse)
	}
	if m.created_at != nil {
		fields = append(fields, alertlog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AlertLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case alertlog.FieldOrgID:
		return m.OrgID()
	case alertlog.FieldIntegrationID:
		return m.IntegrationID()
	case alertlog.FieldChannel:
		return m.Channel()
	case alertlog.FieldStatus:
		return m.Status()
	case alertlog.FieldRecipients:
		return m.Recipients()
	case alertlog.FieldTotalFailures:
		return m.TotalFailures()
	case alertlog.FieldWindowStart:
		return m.WindowStart()
	case alertlog.FieldWindowEnd:
		return m.WindowEnd()
	case alertlog.FieldProviderResponse:
		return m.ProviderResponse()
	case alertlog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AlertLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case alertlog.FieldOrgID:
		return m.OldOrgID(ctx)
	case alertlog.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case alertlog.FieldChannel:
		return m.OldChannel(ctx)
	case alertlog.FieldStatus:
		return m.OldStatus(ctx)
	case alertlog.FieldRecipients:
		return m.OldRecipients(ctx)
	case alertlog.FieldTotalFailures:
		return m.OldTotalFailures(ctx)
	case alertlog.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case alertlog.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case alertlog.FieldProviderResponse:
		return m.OldProviderResponse(ctx)
	case alertlog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AlertLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case alertlog.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case alertlog.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case alertlog.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case alertlog.FieldStatus:
		v, ok := value.(alertlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case alertlog.FieldRecipients:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipients(v)
		return nil
	case alertlog.FieldTotalFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalFailures(v)
		return nil
	case alertlog.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case alertlog.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case alertlog.FieldProviderResponse:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderResponse(v)
		return nil
	case alertlog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AlertLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AlertLogMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_failures != nil {
		fields = append(fields, alertlog.FieldTotalFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AlertLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case alertlog.FieldTotalFailures:
		return m.AddedTotalFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AlertLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case alertlog.FieldTotalFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalFailures(v)
		return nil
	}
	return fmt.Errorf("unknown AlertLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AlertLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(alertlog.FieldRecipients) {
		fields = append(fields, alertlog.FieldRecipients)
	}
	if m.FieldCleared(alertlog.FieldProviderResponse) {
		fields = append(fields, alertlog.FieldProviderResponse)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AlertLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AlertLogMutation) ClearField(name string) error {
	switch name {
	case alertlog.FieldRecipients:
		m.ClearRecipients()
		return nil
	case alertlog.FieldProviderResponse:
		m.ClearProviderResponse()
		return nil
	}
	return fmt.Errorf("unknown AlertLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AlertLogMutation) ResetField(name string) error {
	switch name {
	case alertlog.FieldOrgID:
		m.ResetOrgID()
		return nil
	case alertlog.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case alertlog.FieldChannel:
		m.ResetChannel()
		return nil
	case alertlog.FieldStatus:
		m.ResetStatus()
		return nil
	case alertlog.FieldRecipients:
		m.ResetRecipients()
		return nil
	case alertlog.FieldTotalFailures:
		m.ResetTotalFailures()
		return nil
	case alertlog.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case alertlog.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case alertlog.FieldProviderResponse:
		m.ResetProviderResponse()
		return nil
	case alertlog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AlertLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AlertLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AlertLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AlertLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AlertLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AlertLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AlertLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AlertLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AlertLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AlertLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AlertLog edge %s", name)
}

// CircuitStateMutation represents an operation that mutates the CircuitState nodes in the graph.
type CircuitStateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	integration_id          *string
	consecutive_failures    *int
	addconsecutive_failures *int
	state                   *circuitstate.State
	opened_at               *time.Time
	next_probe_at           *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*CircuitState, error)
	predicates              []predicate.CircuitState
}

var _ ent.Mutation = (*CircuitStateMutation)(nil)

// circuitstateOption allows management of the mutation configuration using functional options.
type circuitstateOption func(*CircuitStateMutation)

// newCircuitStateMutation creates new mutation for the CircuitState entity.
func newCircuitStateMutation(c config, op Op, opts ...circuitstateOption) *CircuitStateMutation {
	m := &CircuitStateMutation{
		config:        c,
		op:            op,
		typ:           TypeCircuitState,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCircuitStateID sets the ID field of the mutation.
func withCircuitStateID(id string) circuitstateOption {
	return func(m *CircuitStateMutation) {
		var (
			err   error
			once  sync.Once
			value *CircuitState
		)
		m.oldValue = func(ctx context.Context) (*CircuitState, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CircuitState.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCircuitState sets the old CircuitState of the mutation.
func withCircuitState(node *CircuitState) circuitstateOption {
	return func(m *CircuitStateMutation) {
		m.oldValue = func(context.Context) (*CircuitState, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CircuitStateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CircuitStateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CircuitState entities.
func (m *CircuitStateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CircuitStateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CircuitStateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CircuitState.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationID sets the "integration_id" field.
func (m *CircuitStateMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *CircuitStateMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *CircuitStateMutation) ResetIntegrationID() {
	m.integration_id = nil
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (m *CircuitStateMutation) SetConsecutiveFailures(i int) {
	m.consecutive_failures = &i
	m.addconsecutive_failures = nil
}

// ConsecutiveFailures returns the value of the "consecutive_failures" field in the mutation.
func (m *CircuitStateMutation) ConsecutiveFailures() (r int, exists bool) {
	v := m.consecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// OldConsecutiveFailures returns the old "consecutive_failures" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldConsecutiveFailures(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsecutiveFailures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsecutiveFailures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsecutiveFailures: %w", err)
	}
	return oldValue.ConsecutiveFailures, nil
}

// AddConsecutiveFailures adds i to the "consecutive_failures" field.
func (m *CircuitStateMutation) AddConsecutiveFailures(i int) {
	if m.addconsecutive_failures != nil {
		*m.addconsecutive_failures += i
	} else {
		m.addconsecutive_failures = &i
	}
}

// AddedConsecutiveFailures returns the value that was added to the "consecutive_failures" field in this mutation.
func (m *CircuitStateMutation) AddedConsecutiveFailures() (r int, exists bool) {
	v := m.addconsecutive_failures
	if v == nil {
		return
	}
	return *v, true
}

// ResetConsecutiveFailures resets all changes to the "consecutive_failures" field.
func (m *CircuitStateMutation) ResetConsecutiveFailures() {
	m.consecutive_failures = nil
	m.addconsecutive_failures = nil
}

// SetState sets the "state" field.
func (m *CircuitStateMutation) SetState(c circuitstate.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *CircuitStateMutation) State() (r circuitstate.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldState(ctx context.Context) (v circuitstate.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *CircuitStateMutation) ResetState() {
	m.state = nil
}

// SetOpenedAt sets the "opened_at" field.
func (m *CircuitStateMutation) SetOpenedAt(t time.Time) {
	m.opened_at = &t
}

// OpenedAt returns the value of the "opened_at" field in the mutation.
func (m *CircuitStateMutation) OpenedAt() (r time.Time, exists bool) {
	v := m.opened_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOpenedAt returns the old "opened_at" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldOpenedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpenedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpenedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpenedAt: %w", err)
	}
	return oldValue.OpenedAt, nil
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (m *CircuitStateMutation) ClearOpenedAt() {
	m.opened_at = nil
	m.clearedFields[circuitstate.FieldOpenedAt] = struct{}{}
}

// OpenedAtCleared returns if the "opened_at" field was cleared in this mutation.
func (m *CircuitStateMutation) OpenedAtCleared() bool {
	_, ok := m.clearedFields[circuitstate.FieldOpenedAt]
	return ok
}

// ResetOpenedAt resets all changes to the "opened_at" field.
func (m *CircuitStateMutation) ResetOpenedAt() {
	m.opened_at = nil
	delete(m.clearedFields, circuitstate.FieldOpenedAt)
}

// SetNextProbeAt sets the "next_probe_at" field.
func (m *CircuitStateMutation) SetNextProbeAt(t time.Time) {
	m.next_probe_at = &t
}

// NextProbeAt returns the value of the "next_probe_at" field in the mutation.
func (m *CircuitStateMutation) NextProbeAt() (r time.Time, exists bool) {
	v := m.next_probe_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextProbeAt returns the old "next_probe_at" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldNextProbeAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextProbeAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextProbeAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextProbeAt: %w", err)
	}
	return oldValue.NextProbeAt, nil
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (m *CircuitStateMutation) ClearNextProbeAt() {
	m.next_probe_at = nil
	m.clearedFields[circuitstate.FieldNextProbeAt] = struct{}{}
}

// NextProbeAtCleared returns if the "next_probe_at" field was cleared in this mutation.
func (m *CircuitStateMutation) NextProbeAtCleared() bool {
	_, ok := m.clearedFields[circuitstate.FieldNextProbeAt]
	return ok
}

// ResetNextProbeAt resets all changes to the "next_probe_at" field.
func (m *CircuitStateMutation) ResetNextProbeAt() {
	m.next_probe_at = nil
	delete(m.clearedFields, circuitstate.FieldNextProbeAt)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CircuitStateMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CircuitStateMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CircuitState entity.
// If the CircuitState object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CircuitStateMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CircuitStateMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CircuitStateMutation builder.
func (m *CircuitStateMutation) Where(ps ...predicate.CircuitState) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CircuitStateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CircuitStateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CircuitState, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CircuitStateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CircuitStateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CircuitState).
func (m *CircuitStateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CircuitStateMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.integration_id != nil {
		fields = append(fields, circuitstate.FieldIntegrationID)
	}
	if m.consecutive_failures != nil {
		fields = append(fields, circuitstate.FieldConsecutiveFailures)
	}
	if m.state != nil {
		fields = append(fields, circuitstate.FieldState)
	}
	if m.opened_at != nil {
		fields = append(fields, circuitstate.FieldOpenedAt)
	}
	if m.next_probe_at != nil {
		fields = append(fields, circuitstate.FieldNextProbeAt)
	}
	if m.updated_at != nil {
		fields = append(fields, circuitstate.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CircuitStateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case circuitstate.FieldIntegrationID:
		return m.IntegrationID()
	case circuitstate.FieldConsecutiveFailures:
		return m.ConsecutiveFailures()
	case circuitstate.FieldState:
		return m.State()
	case circuitstate.FieldOpenedAt:
		return m.OpenedAt()
	case circuitstate.FieldNextProbeAt:
		return m.NextProbeAt()
	case circuitstate.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CircuitStateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case circuitstate.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case circuitstate.FieldConsecutiveFailures:
		return m.OldConsecutiveFailures(ctx)
	case circuitstate.FieldState:
		return m.OldState(ctx)
	case circuitstate.FieldOpenedAt:
		return m.OldOpenedAt(ctx)
	case circuitstate.FieldNextProbeAt:
		return m.OldNextProbeAt(ctx)
	case circuitstate.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CircuitState field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitStateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case circuitstate.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case circuitstate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsecutiveFailures(v)
		return nil
	case circuitstate.FieldState:
		v, ok := value.(circuitstate.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case circuitstate.FieldOpenedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpenedAt(v)
		return nil
	case circuitstate.FieldNextProbeAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextProbeAt(v)
		return nil
	case circuitstate.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitState field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CircuitStateMutation) AddedFields() []string {
	var fields []string
	if m.addconsecutive_failures != nil {
		fields = append(fields, circuitstate.FieldConsecutiveFailures)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CircuitStateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case circuitstate.FieldConsecutiveFailures:
		return m.AddedConsecutiveFailures()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CircuitStateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case circuitstate.FieldConsecutiveFailures:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConsecutiveFailures(v)
		return nil
	}
	return fmt.Errorf("unknown CircuitState numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CircuitStateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(circuitstate.FieldOpenedAt) {
		fields = append(fields, circuitstate.FieldOpenedAt)
	}
	if m.FieldCleared(circuitstate.FieldNextProbeAt) {
		fields = append(fields, circuitstate.FieldNextProbeAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CircuitStateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CircuitStateMutation) ClearField(name string) error {
	switch name {
	case circuitstate.FieldOpenedAt:
		m.ClearOpenedAt()
		return nil
	case circuitstate.FieldNextProbeAt:
		m.ClearNextProbeAt()
		return nil
	}
	return fmt.Errorf("unknown CircuitState nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CircuitStateMutation) ResetField(name string) error {
	switch name {
	case circuitstate.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case circuitstate.FieldConsecutiveFailures:
		m.ResetConsecutiveFailures()
		return nil
	case circuitstate.FieldState:
		m.ResetState()
		return nil
	case circuitstate.FieldOpenedAt:
		m.ResetOpenedAt()
		return nil
	case circuitstate.FieldNextProbeAt:
		m.ResetNextProbeAt()
		return nil
	case circuitstate.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CircuitState field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CircuitStateMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CircuitStateMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CircuitStateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CircuitStateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CircuitStateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CircuitStateMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CircuitStateMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CircuitState unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CircuitStateMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CircuitState edge %s", name)
}

// DLQEntryMutation represents an operation that mutates the DLQEntry nodes in the graph.
type DLQEntryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	trace_id        *string
	message_id      *string
	integration_id  *string
	org_id          *string
	direction       *dlqentry.Direction
	action_index    *int
	addaction_index *int
	payload         *map[string]interface{}
	error_message   *string
	error_code      *string
	status_code     *int
	addstatus_code  *int
	max_retries     *int
	addmax_retries  *int
	retry_strategy  *string
	next_attempt_at *time.Time
	attempts        *int
	addattempts     *int
	status          *dlqentry.Status
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*DLQEntry, error)
	predicates      []predicate.DLQEntry
}

var _ ent.Mutation = (*DLQEntryMutation)(nil)

// dlqentryOption allows management of the mutation configuration using functional options.
type dlqentryOption func(*DLQEntryMutation)

// newDLQEntryMutation creates new mutation for the DLQEntry entity.
func newDLQEntryMutation(c config, op Op, opts ...dlqentryOption) *DLQEntryMutation {
	m := &DLQEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDLQEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDLQEntryID sets the ID field of the mutation.
func withDLQEntryID(id string) dlqentryOption {
	return func(m *DLQEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DLQEntry
		)
		m.oldValue = func(ctx context.Context) (*DLQEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DLQEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDLQEntry sets the old DLQEntry of the mutation.
func withDLQEntry(node *DLQEntry) dlqentryOption {
	return func(m *DLQEntryMutation) {
		m.oldValue = func(context.Context) (*DLQEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DLQEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DLQEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DLQEntry entities.
func (m *DLQEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DLQEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DLQEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DLQEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTraceID sets the "trace_id" field.
func (m *DLQEntryMutation) SetTraceID(s string) {
	m.trace_id = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *DLQEntryMutation) TraceID() (r string, exists bool) {
	v := m.trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldTraceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *DLQEntryMutation) ResetTraceID() {
	m.trace_id = nil
}

// SetMessageID sets the "message_id" field.
func (m *DLQEntryMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *DLQEntryMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *DLQEntryMutation) ResetMessageID() {
	m.message_id = nil
}

// SetIntegrationID sets the "integration_id" field.
func (m *DLQEntryMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *DLQEntryMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *DLQEntryMutation) ResetIntegrationID() {
	m.integration_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *DLQEntryMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *DLQEntryMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *DLQEntryMutation) ResetOrgID() {
	m.org_id = nil
}

// SetDirection sets the "direction" field.
func (m *DLQEntryMutation) SetDirection(d dlqentry.Direction) {
	m.direction = &d
}

// Direction returns the value of the "direction" field in the mutation.
func (m *DLQEntryMutation) Direction() (r dlqentry.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldDirection(ctx context.Context) (v dlqentry.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *DLQEntryMutation) ResetDirection() {
	m.direction = nil
}

// SetActionIndex sets the "action_index" field.
func (m *DLQEntryMutation) SetActionIndex(i int) {
	m.action_index = &i
	m.addaction_index = nil
}

// ActionIndex returns the value of the "action_index" field in the mutation.
func (m *DLQEntryMutation) ActionIndex() (r int, exists bool) {
	v := m.action_index
	if v == nil {
		return
	}
	return *v, true
}

// OldActionIndex returns the old "action_index" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldActionIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionIndex: %w", err)
	}
	return oldValue.ActionIndex, nil
}

// AddActionIndex adds i to the "action_index" field.
func (m *DLQEntryMutation) AddActionIndex(i int) {
	if m.addaction_index != nil {
		*m.addaction_index += i
	} else {
		m.addaction_index = &i
	}
}

// AddedActionIndex returns the value that was added to the "action_index" field in this mutation.
func (m *DLQEntryMutation) AddedActionIndex() (r int, exists bool) {
	v := m.addaction_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearActionIndex clears the value of the "action_index" field.
func (m *DLQEntryMutation) ClearActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
	m.clearedFields[dlqentry.FieldActionIndex] = struct{}{}
}

// ActionIndexCleared returns if the "action_index" field was cleared in this mutation.
func (m *DLQEntryMutation) ActionIndexCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldActionIndex]
	return ok
}

// ResetActionIndex resets all changes to the "action_index" field.
func (m *DLQEntryMutation) ResetActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
	delete(m.clearedFields, dlqentry.FieldActionIndex)
}

// SetPayload sets the "payload" field.
func (m *DLQEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *DLQEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *DLQEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DLQEntryMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DLQEntryMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DLQEntryMutation) ResetErrorMessage() {
	m.error_message = nil
}

// SetErrorCode sets the "error_code" field.
func (m *DLQEntryMutation) SetErrorCode(s string) {
	m.error_code = &s
}

// ErrorCode returns the value of the "error_code" field in the mutation.
func (m *DLQEntryMutation) ErrorCode() (r string, exists bool) {
	v := m.error_code
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorCode returns the old "error_code" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldErrorCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorCode: %w", err)
	}
	return oldValue.ErrorCode, nil
}

// ResetErrorCode resets all changes to the "error_code" field.
func (m *DLQEntryMutation) ResetErrorCode() {
	m.error_code = nil
}

// SetStatusCode sets the "status_code" field.
func (m *DLQEntryMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *DLQEntryMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *DLQEntryMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *DLQEntryMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearStatusCode clears the value of the "status_code" field.
func (m *DLQEntryMutation) ClearStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	m.clearedFields[dlqentry.FieldStatusCode] = struct{}{}
}

// StatusCodeCleared returns if the "status_code" field was cleared in this mutation.
func (m *DLQEntryMutation) StatusCodeCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldStatusCode]
	return ok
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *DLQEntryMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	delete(m.clearedFields, dlqentry.FieldStatusCode)
}

// SetMaxRetries sets the "max_retries" field.
func (m *DLQEntryMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *DLQEntryMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *DLQEntryMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *DLQEntryMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *DLQEntryMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetRetryStrategy sets the "retry_strategy" field.
func (m *DLQEntryMutation) SetRetryStrategy(s string) {
	m.retry_strategy = &s
}

// RetryStrategy returns the value of the "retry_strategy" field in the mutation.
func (m *DLQEntryMutation) RetryStrategy() (r string, exists bool) {
	v := m.retry_strategy
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryStrategy returns the old "retry_strategy" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldRetryStrategy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryStrategy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryStrategy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryStrategy: %w", err)
	}
	return oldValue.RetryStrategy, nil
}

// ResetRetryStrategy resets all changes to the "retry_strategy" field.
func (m *DLQEntryMutation) ResetRetryStrategy() {
	m.retry_strategy = nil
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *DLQEntryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *DLQEntryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *DLQEntryMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[dlqentry.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *DLQEntryMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[dlqentry.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *DLQEntryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, dlqentry.FieldNextAttemptAt)
}

// SetAttempts sets the "attempts" field.
func (m *DLQEntryMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DLQEntryMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DLQEntryMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DLQEntryMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DLQEntryMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetStatus sets the "status" field.
func (m *DLQEntryMutation) SetStatus(d dlqentry.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DLQEntryMutation) Status() (r dlqentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldStatus(ctx context.Context) (v dlqentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DLQEntryMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *DLQEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DLQEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DLQEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DLQEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DLQEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DLQEntry entity.
// If the DLQEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DLQEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DLQEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the DLQEntryMutation builder.
func (m *DLQEntryMutation) Where(ps ...predicate.DLQEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DLQEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DLQEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DLQEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DLQEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DLQEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DLQEntry).
func (m *DLQEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DLQEntryMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.trace_id != nil {
		fields = append(fields, dlqentry.FieldTraceID)
	}
	if m.message_id != nil {
		fields = append(fields, dlqentry.FieldMessageID)
	}
	if m.integration_id != nil {
		fields = append(fields, dlqentry.FieldIntegrationID)
	}
	if m.org_id != nil {
		fields = append(fields, dlqentry.FieldOrgID)
	}
	if m.direction != nil {
		fields = append(fields, dlqentry.FieldDirection)
	}
	if m.action_index != nil {
		fields = append(fields, dlqentry.FieldActionIndex)
	}
	if m.payload != nil {
		fields = append(fields, dlqentry.FieldPayload)
	}
	if m.error_message != nil {
		fields = append(fields, dlqentry.FieldErrorMessage)
	}
	if m.error_code != nil {
		fields = append(fields, dlqentry.FieldErrorCode)
	}
	if m.status_code != nil {
		fields = append(fields, dlqentry.FieldStatusCode)
	}
	if m.max_retries != nil {
		fields = append(fields, dlqentry.FieldMaxRetries)
	}
	if m.retry_strategy != nil {
		fields = append(fields, dlqentry.FieldRetryStrategy)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, dlqentry.FieldNextAttemptAt)
	}
	if m.attempts != nil {
		fields = append(fields, dlqentry.FieldAttempts)
	}
	if m.status != nil {
		fields = append(fields, dlqentry.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, dlqentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dlqentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DLQEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldTraceID:
		return m.TraceID()
	case dlqentry.FieldMessageID:
		return m.MessageID()
	case dlqentry.FieldIntegrationID:
		return m.IntegrationID()
	case dlqentry.FieldOrgID:
		return m.OrgID()
	case dlqentry.FieldDirection:
		return m.Direction()
	case dlqentry.FieldActionIndex:
		return m.ActionIndex()
	case dlqentry.FieldPayload:
		return m.Payload()
	case dlqentry.FieldErrorMessage:
		return m.ErrorMessage()
	case dlqentry.FieldErrorCode:
		return m.ErrorCode()
	case dlqentry.FieldStatusCode:
		return m.StatusCode()
	case dlqentry.FieldMaxRetries:
		return m.MaxRetries()
	case dlqentry.FieldRetryStrategy:
		return m.RetryStrategy()
	case dlqentry.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case dlqentry.FieldAttempts:
		return m.Attempts()
	case dlqentry.FieldStatus:
		return m.Status()
	case dlqentry.FieldCreatedAt:
		return m.CreatedAt()
	case dlqentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DLQEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dlqentry.FieldTraceID:
		return m.OldTraceID(ctx)
	case dlqentry.FieldMessageID:
		return m.OldMessageID(ctx)
	case dlqentry.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case dlqentry.FieldOrgID:
		return m.OldOrgID(ctx)
	case dlqentry.FieldDirection:
		return m.OldDirection(ctx)
	case dlqentry.FieldActionIndex:
		return m.OldActionIndex(ctx)
	case dlqentry.FieldPayload:
		return m.OldPayload(ctx)
	case dlqentry.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case dlqentry.FieldErrorCode:
		return m.OldErrorCode(ctx)
	case dlqentry.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case dlqentry.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case dlqentry.FieldRetryStrategy:
		return m.OldRetryStrategy(ctx)
	case dlqentry.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case dlqentry.FieldAttempts:
		return m.OldAttempts(ctx)
	case dlqentry.FieldStatus:
		return m.OldStatus(ctx)
	case dlqentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dlqentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DLQEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case dlqentry.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case dlqentry.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case dlqentry.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case dlqentry.FieldDirection:
		v, ok := value.(dlqentry.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case dlqentry.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionIndex(v)
		return nil
	case dlqentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case dlqentry.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case dlqentry.FieldErrorCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorCode(v)
		return nil
	case dlqentry.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case dlqentry.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case dlqentry.FieldRetryStrategy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryStrategy(v)
		return nil
	case dlqentry.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case dlqentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case dlqentry.FieldStatus:
		v, ok := value.(dlqentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case dlqentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dlqentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DLQEntryMutation) AddedFields() []string {
	var fields []string
	if m.addaction_index != nil {
		fields = append(fields, dlqentry.FieldActionIndex)
	}
	if m.addstatus_code != nil {
		fields = append(fields, dlqentry.FieldStatusCode)
	}
	if m.addmax_retries != nil {
		fields = append(fields, dlqentry.FieldMaxRetries)
	}
	if m.addattempts != nil {
		fields = append(fields, dlqentry.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DLQEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dlqentry.FieldActionIndex:
		return m.AddedActionIndex()
	case dlqentry.FieldStatusCode:
		return m.AddedStatusCode()
	case dlqentry.FieldMaxRetries:
		return m.AddedMaxRetries()
	case dlqentry.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DLQEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dlqentry.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionIndex(v)
		return nil
	case dlqentry.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	case dlqentry.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case dlqentry.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown DLQEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DLQEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dlqentry.FieldActionIndex) {
		fields = append(fields, dlqentry.FieldActionIndex)
	}
	if m.FieldCleared(dlqentry.FieldStatusCode) {
		fields = append(fields, dlqentry.FieldStatusCode)
	}
	if m.FieldCleared(dlqentry.FieldNextAttemptAt) {
		fields = append(fields, dlqentry.FieldNextAttemptAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DLQEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DLQEntryMutation) ClearField(name string) error {
	switch name {
	case dlqentry.FieldActionIndex:
		m.ClearActionIndex()
		return nil
	case dlqentry.FieldStatusCode:
		m.ClearStatusCode()
		return nil
	case dlqentry.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DLQEntryMutation) ResetField(name string) error {
	switch name {
	case dlqentry.FieldTraceID:
		m.ResetTraceID()
		return nil
	case dlqentry.FieldMessageID:
		m.ResetMessageID()
		return nil
	case dlqentry.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case dlqentry.FieldOrgID:
		m.ResetOrgID()
		return nil
	case dlqentry.FieldDirection:
		m.ResetDirection()
		return nil
	case dlqentry.FieldActionIndex:
		m.ResetActionIndex()
		return nil
	case dlqentry.FieldPayload:
		m.ResetPayload()
		return nil
	case dlqentry.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case dlqentry.FieldErrorCode:
		m.ResetErrorCode()
		return nil
	case dlqentry.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case dlqentry.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case dlqentry.FieldRetryStrategy:
		m.ResetRetryStrategy()
		return nil
	case dlqentry.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case dlqentry.FieldAttempts:
		m.ResetAttempts()
		return nil
	case dlqentry.FieldStatus:
		m.ResetStatus()
		return nil
	case dlqentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dlqentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DLQEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DLQEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DLQEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DLQEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DLQEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DLQEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DLQEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DLQEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DLQEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DLQEntry edge %s", name)
}

// DeliveryAttemptMutation represents an operation that mutates the DeliveryAttempt nodes in the graph.
type DeliveryAttemptMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	attempt_number       *int
	addattempt_number    *int
	status               *deliveryattempt.Status
	response_status      *int
	addresponse_status   *int
	response_time_ms     *int64
	addresponse_time_ms  *int64
	error_message        *string
	retry_reason         *string
	request_payload      *map[string]interface{}
	attempted_at         *time.Time
	clearedFields        map[string]struct{}
	execution_log        *string
	clearedexecution_log bool
	done                 bool
	oldValue             func(context.Context) (*DeliveryAttempt, error)
	predicates           []predicate.DeliveryAttempt
}

var _ ent.Mutation = (*DeliveryAttemptMutation)(nil)

// deliveryattemptOption allows management of the mutation configuration using functional options.
type deliveryattemptOption func(*DeliveryAttemptMutation)

// newDeliveryAttemptMutation creates new mutation for the DeliveryAttempt entity.
func newDeliveryAttemptMutation(c config, op Op, opts ...deliveryattemptOption) *DeliveryAttemptMutation {
	m := &DeliveryAttemptMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliveryAttempt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliveryAttemptID sets the ID field of the mutation.
func withDeliveryAttemptID(id string) deliveryattemptOption {
	return func(m *DeliveryAttemptMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliveryAttempt
		)
		m.oldValue = func(ctx context.Context) (*DeliveryAttempt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliveryAttempt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliveryAttempt sets the old DeliveryAttempt of the mutation.
func withDeliveryAttempt(node *DeliveryAttempt) deliveryattemptOption {
	return func(m *DeliveryAttemptMutation) {
		m.oldValue = func(context.Context) (*DeliveryAttempt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliveryAttemptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliveryAttemptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliveryAttempt entities.
func (m *DeliveryAttemptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliveryAttemptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliveryAttemptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliveryAttempt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeliveryLogID sets the "delivery_log_id" field.
func (m *DeliveryAttemptMutation) SetDeliveryLogID(s string) {
	m.execution_log = &s
}

// DeliveryLogID returns the value of the "delivery_log_id" field in the mutation.
func (m *DeliveryAttemptMutation) DeliveryLogID() (r string, exists bool) {
	v := m.execution_log
	if v == nil {
		return
	}
	return *v, true
}

// OldDeliveryLogID returns the old "delivery_log_id" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldDeliveryLogID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeliveryLogID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeliveryLogID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeliveryLogID: %w", err)
	}
	return oldValue.DeliveryLogID, nil
}

// ResetDeliveryLogID resets all changes to the "delivery_log_id" field.
func (m *DeliveryAttemptMutation) ResetDeliveryLogID() {
	m.execution_log = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *DeliveryAttemptMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *DeliveryAttemptMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *DeliveryAttemptMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *DeliveryAttemptMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *DeliveryAttemptMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetStatus sets the "status" field.
func (m *DeliveryAttemptMutation) SetStatus(d deliveryattempt.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeliveryAttemptMutation) Status() (r deliveryattempt.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldStatus(ctx context.Context) (v deliveryattempt.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeliveryAttemptMutation) ResetStatus() {
	m.status = nil
}

// SetResponseStatus sets the "response_status" field.
func (m *DeliveryAttemptMutation) SetResponseStatus(i int) {
	m.response_status = &i
	m.addresponse_status = nil
}

// ResponseStatus returns the value of the "response_status" field in the mutation.
func (m *DeliveryAttemptMutation) ResponseStatus() (r int, exists bool) {
	v := m.response_status
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseStatus returns the old "response_status" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldResponseStatus(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseStatus: %w", err)
	}
	return oldValue.ResponseStatus, nil
}

// AddResponseStatus adds i to the "response_status" field.
func (m *DeliveryAttemptMutation) AddResponseStatus(i int) {
	if m.addresponse_status != nil {
		*m.addresponse_status += i
	} else {
		m.addresponse_status = &i
	}
}

// AddedResponseStatus returns the value that was added to the "response_status" field in this mutation.
func (m *DeliveryAttemptMutation) AddedResponseStatus() (r int, exists bool) {
	v := m.addresponse_status
	if v == nil {
		return
	}
	return *v, true
}

// ClearResponseStatus clears the value of the "response_status" field.
func (m *DeliveryAttemptMutation) ClearResponseStatus() {
	m.response_status = nil
	m.addresponse_status = nil
	m.clearedFields[deliveryattempt.FieldResponseStatus] = struct{}{}
}

// ResponseStatusCleared returns if the "response_status" field was cleared in this mutation.
func (m *DeliveryAttemptMutation) ResponseStatusCleared() bool {
	_, ok := m.clearedFields[deliveryattempt.FieldResponseStatus]
	return ok
}

// ResetResponseStatus resets all changes to the "response_status" field.
func (m *DeliveryAttemptMutation) ResetResponseStatus() {
	m.response_status = nil
	m.addresponse_status = nil
	delete(m.clearedFields, deliveryattempt.FieldResponseStatus)
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *DeliveryAttemptMutation) SetResponseTimeMs(i int64) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *DeliveryAttemptMutation) ResponseTimeMs() (r int64, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *DeliveryAttemptMutation) AddResponseTimeMs(i int64) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *DeliveryAttemptMutation) AddedResponseTimeMs() (r int64, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *DeliveryAttemptMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DeliveryAttemptMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DeliveryAttemptMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DeliveryAttemptMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[deliveryattempt.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DeliveryAttemptMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[deliveryattempt.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DeliveryAttemptMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, deliveryattempt.FieldErrorMessage)
}

// SetRetryReason sets the "retry_reason" field.
func (m *DeliveryAttemptMutation) SetRetryReason(s string) {
	m.retry_reason = &s
}

// RetryReason returns the value of the "retry_reason" field in the mutation.
func (m *DeliveryAttemptMutation) RetryReason() (r string, exists bool) {
	v := m.retry_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryReason returns the old "retry_reason" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldRetryReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryReason: %w", err)
	}
	return oldValue.RetryReason, nil
}

// ClearRetryReason clears the value of the "retry_reason" field.
func (m *DeliveryAttemptMutation) ClearRetryReason() {
	m.retry_reason = nil
	m.clearedFields[deliveryattempt.FieldRetryReason] = struct{}{}
}

// RetryReasonCleared returns if the "retry_reason" field was cleared in this mutation.
func (m *DeliveryAttemptMutation) RetryReasonCleared() bool {
	_, ok := m.clearedFields[deliveryattempt.FieldRetryReason]
	return ok
}

// ResetRetryReason resets all changes to the "retry_reason" field.
func (m *DeliveryAttemptMutation) ResetRetryReason() {
	m.retry_reason = nil
	delete(m.clearedFields, deliveryattempt.FieldRetryReason)
}

// SetRequestPayload sets the "request_payload" field.
func (m *DeliveryAttemptMutation) SetRequestPayload(value map[string]interface{}) {
	m.request_payload = &value
}

// RequestPayload returns the value of the "request_payload" field in the mutation.
func (m *DeliveryAttemptMutation) RequestPayload() (r map[string]interface{}, exists bool) {
	v := m.request_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestPayload returns the old "request_payload" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldRequestPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestPayload: %w", err)
	}
	return oldValue.RequestPayload, nil
}

// ClearRequestPayload clears the value of the "request_payload" field.
func (m *DeliveryAttemptMutation) ClearRequestPayload() {
	m.request_payload = nil
	m.clearedFields[deliveryattempt.FieldRequestPayload] = struct{}{}
}

// RequestPayloadCleared returns if the "request_payload" field was cleared in this mutation.
func (m *DeliveryAttemptMutation) RequestPayloadCleared() bool {
	_, ok := m.clearedFields[deliveryattempt.FieldRequestPayload]
	return ok
}

// ResetRequestPayload resets all changes to the "request_payload" field.
func (m *DeliveryAttemptMutation) ResetRequestPayload() {
	m.request_payload = nil
	delete(m.clearedFields, deliveryattempt.FieldRequestPayload)
}

// SetAttemptedAt sets the "attempted_at" field.
func (m *DeliveryAttemptMutation) SetAttemptedAt(t time.Time) {
	m.attempted_at = &t
}

// AttemptedAt returns the value of the "attempted_at" field in the mutation.
func (m *DeliveryAttemptMutation) AttemptedAt() (r time.Time, exists bool) {
	v := m.attempted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptedAt returns the old "attempted_at" field's value of the DeliveryAttempt entity.
// If the DeliveryAttempt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryAttemptMutation) OldAttemptedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptedAt: %w", err)
	}
	return oldValue.AttemptedAt, nil
}

// ResetAttemptedAt resets all changes to the "attempted_at" field.
func (m *DeliveryAttemptMutation) ResetAttemptedAt() {
	m.attempted_at = nil
}

// SetExecutionLogID sets the "execution_log" edge to the ExecutionLog entity by id.
func (m *DeliveryAttemptMutation) SetExecutionLogID(id string) {
	m.execution_log = &id
}

// ClearExecutionLog clears the "execution_log" edge to the ExecutionLog entity.
func (m *DeliveryAttemptMutation) ClearExecutionLog() {
	m.clearedexecution_log = true
	m.clearedFields[deliveryattempt.FieldDeliveryLogID] = struct{}{}
}

// ExecutionLogCleared reports if the "execution_log" edge to the ExecutionLog entity was cleared.
func (m *DeliveryAttemptMutation) ExecutionLogCleared() bool {
	return m.clearedexecution_log
}

// ExecutionLogID returns the "execution_log" edge ID in the mutation.
func (m *DeliveryAttemptMutation) ExecutionLogID() (id string, exists bool) {
	if m.execution_log != nil {
		return *m.execution_log, true
	}
	return
}

// ExecutionLogIDs returns the "execution_log" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionLogID instead. It exists only for internal usage by the builders.
func (m *DeliveryAttemptMutation) ExecutionLogIDs() (ids []string) {
	if id := m.execution_log; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecutionLog resets all changes to the "execution_log" edge.
func (m *DeliveryAttemptMutation) ResetExecutionLog() {
	m.execution_log = nil
	m.clearedexecution_log = false
}

// Where appends a list predicates to the DeliveryAttemptMutation builder.
func (m *DeliveryAttemptMutation) Where(ps ...predicate.DeliveryAttempt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliveryAttemptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliveryAttemptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliveryAttempt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliveryAttemptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliveryAttemptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliveryAttempt).
func (m *DeliveryAttemptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliveryAttemptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.execution_log != nil {
		fields = append(fields, deliveryattempt.FieldDeliveryLogID)
	}
	if m.attempt_number != nil {
		fields = append(fields, deliveryattempt.FieldAttemptNumber)
	}
	if m.status != nil {
		fields = append(fields, deliveryattempt.FieldStatus)
	}
	if m.response_status != nil {
		fields = append(fields, deliveryattempt.FieldResponseStatus)
	}
	if m.response_time_ms != nil {
		fields = append(fields, deliveryattempt.FieldResponseTimeMs)
	}
	if m.error_message != nil {
		fields = append(fields, deliveryattempt.FieldErrorMessage)
	}
	if m.retry_reason != nil {
		fields = append(fields, deliveryattempt.FieldRetryReason)
	}
	if m.request_payload != nil {
		fields = append(fields, deliveryattempt.FieldRequestPayload)
	}
	if m.attempted_at != nil {
		fields = append(fields, deliveryattempt.FieldAttemptedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliveryAttemptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliveryattempt.FieldDeliveryLogID:
		return m.DeliveryLogID()
	case deliveryattempt.FieldAttemptNumber:
		return m.AttemptNumber()
	case deliveryattempt.FieldStatus:
		return m.Status()
	case deliveryattempt.FieldResponseStatus:
		return m.ResponseStatus()
	case deliveryattempt.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case deliveryattempt.FieldErrorMessage:
		return m.ErrorMessage()
	case deliveryattempt.FieldRetryReason:
		return m.RetryReason()
	case deliveryattempt.FieldRequestPayload:
		return m.RequestPayload()
	case deliveryattempt.FieldAttemptedAt:
		return m.AttemptedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliveryAttemptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliveryattempt.FieldDeliveryLogID:
		return m.OldDeliveryLogID(ctx)
	case deliveryattempt.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case deliveryattempt.FieldStatus:
		return m.OldStatus(ctx)
	case deliveryattempt.FieldResponseStatus:
		return m.OldResponseStatus(ctx)
	case deliveryattempt.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case deliveryattempt.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case deliveryattempt.FieldRetryReason:
		return m.OldRetryReason(ctx)
	case deliveryattempt.FieldRequestPayload:
		return m.OldRequestPayload(ctx)
	case deliveryattempt.FieldAttemptedAt:
		return m.OldAttemptedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeliveryAttempt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryAttemptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliveryattempt.FieldDeliveryLogID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeliveryLogID(v)
		return nil
	case deliveryattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case deliveryattempt.FieldStatus:
		v, ok := value.(deliveryattempt.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deliveryattempt.FieldResponseStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseStatus(v)
		return nil
	case deliveryattempt.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case deliveryattempt.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case deliveryattempt.FieldRetryReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryReason(v)
		return nil
	case deliveryattempt.FieldRequestPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestPayload(v)
		return nil
	case deliveryattempt.FieldAttemptedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliveryAttemptMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, deliveryattempt.FieldAttemptNumber)
	}
	if m.addresponse_status != nil {
		fields = append(fields, deliveryattempt.FieldResponseStatus)
	}
	if m.addresponse_time_ms != nil {
		fields = append(fields, deliveryattempt.FieldResponseTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliveryAttemptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deliveryattempt.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	case deliveryattempt.FieldResponseStatus:
		return m.AddedResponseStatus()
	case deliveryattempt.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryAttemptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deliveryattempt.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	case deliveryattempt.FieldResponseStatus:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseStatus(v)
		return nil
	case deliveryattempt.FieldResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliveryAttemptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliveryattempt.FieldResponseStatus) {
		fields = append(fields, deliveryattempt.FieldResponseStatus)
	}
	if m.FieldCleared(deliveryattempt.FieldErrorMessage) {
		fields = append(fields, deliveryattempt.FieldErrorMessage)
	}
	if m.FieldCleared(deliveryattempt.FieldRetryReason) {
		fields = append(fields, deliveryattempt.FieldRetryReason)
	}
	if m.FieldCleared(deliveryattempt.FieldRequestPayload) {
		fields = append(fields, deliveryattempt.FieldRequestPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliveryAttemptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliveryAttemptMutation) ClearField(name string) error {
	switch name {
	case deliveryattempt.FieldResponseStatus:
		m.ClearResponseStatus()
		return nil
	case deliveryattempt.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case deliveryattempt.FieldRetryReason:
		m.ClearRetryReason()
		return nil
	case deliveryattempt.FieldRequestPayload:
		m.ClearRequestPayload()
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliveryAttemptMutation) ResetField(name string) error {
	switch name {
	case deliveryattempt.FieldDeliveryLogID:
		m.ResetDeliveryLogID()
		return nil
	case deliveryattempt.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case deliveryattempt.FieldStatus:
		m.ResetStatus()
		return nil
	case deliveryattempt.FieldResponseStatus:
		m.ResetResponseStatus()
		return nil
	case deliveryattempt.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case deliveryattempt.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case deliveryattempt.FieldRetryReason:
		m.ResetRetryReason()
		return nil
	case deliveryattempt.FieldRequestPayload:
		m.ResetRequestPayload()
		return nil
	case deliveryattempt.FieldAttemptedAt:
		m.ResetAttemptedAt()
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliveryAttemptMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution_log != nil {
		edges = append(edges, deliveryattempt.EdgeExecutionLog)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliveryAttemptMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case deliveryattempt.EdgeExecutionLog:
		if id := m.execution_log; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliveryAttemptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliveryAttemptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliveryAttemptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution_log {
		edges = append(edges, deliveryattempt.EdgeExecutionLog)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliveryAttemptMutation) EdgeCleared(name string) bool {
	switch name {
	case deliveryattempt.EdgeExecutionLog:
		return m.clearedexecution_log
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliveryAttemptMutation) ClearEdge(name string) error {
	switch name {
	case deliveryattempt.EdgeExecutionLog:
		m.ClearExecutionLog()
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliveryAttemptMutation) ResetEdge(name string) error {
	switch name {
	case deliveryattempt.EdgeExecutionLog:
		m.ResetExecutionLog()
		return nil
	}
	return fmt.Errorf("unknown DeliveryAttempt edge %s", name)
}

// EventAuditMutation represents an operation that mutates the EventAudit nodes in the graph.
type EventAuditMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	source             *string
	source_id          *string
	org_id             *string
	org_unit_id        *string
	event_type         *string
	payload            *map[string]interface{}
	payload_hash       *string
	event_key          *string
	received_at_bucket *time.Time
	status             *eventaudit.Status
	timeline           *[]map[string]interface{}
	appendtimeline     []map[string]interface{}
	received_at        *time.Time
	updated_at         *time.Time
	expires_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*EventAudit, error)
	predicates         []predicate.EventAudit
}

var _ ent.Mutation = (*EventAuditMutation)(nil)

// eventauditOption allows management of the mutation configuration using functional options.
type eventauditOption func(*EventAuditMutation)

// newEventAuditMutation creates new mutation for the EventAudit entity.
func newEventAuditMutation(c config, op Op, opts ...eventauditOption) *EventAuditMutation {
	m := &EventAuditMutation{
		config:        c,
		op:            op,
		typ:           TypeEventAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventAuditID sets the ID field of the mutation.
func withEventAuditID(id string) eventauditOption {
	return func(m *EventAuditMutation) {
		var (
			err   error
			once  sync.Once
			value *EventAudit
		)
		m.oldValue = func(ctx context.Context) (*EventAudit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EventAudit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEventAudit sets the old EventAudit of the mutation.
func withEventAudit(node *EventAudit) eventauditOption {
	return func(m *EventAuditMutation) {
		m.oldValue = func(context.Context) (*EventAudit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventAuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventAuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EventAudit entities.
func (m *EventAuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventAuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventAuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EventAudit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *EventAuditMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *EventAuditMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *EventAuditMutation) ResetSource() {
	m.source = nil
}

// SetSourceID sets the "source_id" field.
func (m *EventAuditMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *EventAuditMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldSourceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ClearSourceID clears the value of the "source_id" field.
func (m *EventAuditMutation) ClearSourceID() {
	m.source_id = nil
	m.clearedFields[eventaudit.FieldSourceID] = struct{}{}
}

// SourceIDCleared returns if the "source_id" field was cleared in this mutation.
func (m *EventAuditMutation) SourceIDCleared() bool {
	_, ok := m.clearedFields[eventaudit.FieldSourceID]
	return ok
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *EventAuditMutation) ResetSourceID() {
	m.source_id = nil
	delete(m.clearedFields, eventaudit.FieldSourceID)
}

// SetOrgID sets the "org_id" field.
func (m *EventAuditMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *EventAuditMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *EventAuditMutation) ResetOrgID() {
	m.org_id = nil
}

// SetOrgUnitID sets the "org_unit_id" field.
func (m *EventAuditMutation) SetOrgUnitID(s string) {
	m.org_unit_id = &s
}

// OrgUnitID returns the value of the "org_unit_id" field in the mutation.
func (m *EventAuditMutation) OrgUnitID() (r string, exists bool) {
	v := m.org_unit_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgUnitID returns the old "org_unit_id" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldOrgUnitID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgUnitID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgUnitID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgUnitID: %w", err)
	}
	return oldValue.OrgUnitID, nil
}

// ClearOrgUnitID clears the value of the "org_unit_id" field.
func (m *EventAuditMutation) ClearOrgUnitID() {
	m.org_unit_id = nil
	m.clearedFields[eventaudit.FieldOrgUnitID] = struct{}{}
}

// OrgUnitIDCleared returns if the "org_unit_id" field was cleared in this mutation.
func (m *EventAuditMutation) OrgUnitIDCleared() bool {
	_, ok := m.clearedFields[eventaudit.FieldOrgUnitID]
	return ok
}

// ResetOrgUnitID resets all changes to the "org_unit_id" field.
func (m *EventAuditMutation) ResetOrgUnitID() {
	m.org_unit_id = nil
	delete(m.clearedFields, eventaudit.FieldOrgUnitID)
}

// SetEventType sets the "event_type" field.
func (m *EventAuditMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *EventAuditMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *EventAuditMutation) ResetEventType() {
	m.event_type = nil
}

// SetPayload sets the "payload" field.
func (m *EventAuditMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventAuditMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventAuditMutation) ResetPayload() {
	m.payload = nil
}

// SetPayloadHash sets the "payload_hash" field.
func (m *EventAuditMutation) SetPayloadHash(s string) {
	m.payload_hash = &s
}

// PayloadHash returns the value of the "payload_hash" field in the mutation.
func (m *EventAuditMutation) PayloadHash() (r string, exists bool) {
	v := m.payload_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadHash returns the old "payload_hash" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldPayloadHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadHash: %w", err)
	}
	return oldValue.PayloadHash, nil
}

// ResetPayloadHash resets all changes to the "payload_hash" field.
func (m *EventAuditMutation) ResetPayloadHash() {
	m.payload_hash = nil
}

// SetEventKey sets the "event_key" field.
func (m *EventAuditMutation) SetEventKey(s string) {
	m.event_key = &s
}

// EventKey returns the value of the "event_key" field in the mutation.
func (m *EventAuditMutation) EventKey() (r string, exists bool) {
	v := m.event_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKey returns the old "event_key" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldEventKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKey: %w", err)
	}
	return oldValue.EventKey, nil
}

// ClearEventKey clears the value of the "event_key" field.
func (m *EventAuditMutation) ClearEventKey() {
	m.event_key = nil
	m.clearedFields[eventaudit.FieldEventKey] = struct{}{}
}

// EventKeyCleared returns if the "event_key" field was cleared in this mutation.
func (m *EventAuditMutation) EventKeyCleared() bool {
	_, ok := m.clearedFields[eventaudit.FieldEventKey]
	return ok
}

// ResetEventKey resets all changes to the "event_key" field.
func (m *EventAuditMutation) ResetEventKey() {
	m.event_key = nil
	delete(m.clearedFields, eventaudit.FieldEventKey)
}

// SetReceivedAtBucket sets the "received_at_bucket" field.
func (m *EventAuditMutation) SetReceivedAtBucket(t time.Time) {
	m.received_at_bucket = &t
}

// ReceivedAtBucket returns the value of the "received_at_bucket" field in the mutation.
func (m *EventAuditMutation) ReceivedAtBucket() (r time.Time, exists bool) {
	v := m.received_at_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAtBucket returns the old "received_at_bucket" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldReceivedAtBucket(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAtBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAtBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAtBucket: %w", err)
	}
	return oldValue.ReceivedAtBucket, nil
}

// ClearReceivedAtBucket clears the value of the "received_at_bucket" field.
func (m *EventAuditMutation) ClearReceivedAtBucket() {
	m.received_at_bucket = nil
	m.clearedFields[eventaudit.FieldReceivedAtBucket] = struct{}{}
}

// ReceivedAtBucketCleared returns if the "received_at_bucket" field was cleared in this mutation.
func (m *EventAuditMutation) ReceivedAtBucketCleared() bool {
	_, ok := m.clearedFields[eventaudit.FieldReceivedAtBucket]
	return ok
}

// ResetReceivedAtBucket resets all changes to the "received_at_bucket" field.
func (m *EventAuditMutation) ResetReceivedAtBucket() {
	m.received_at_bucket = nil
	delete(m.clearedFields, eventaudit.FieldReceivedAtBucket)
}

// SetStatus sets the "status" field.
func (m *EventAuditMutation) SetStatus(e eventaudit.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EventAuditMutation) Status() (r eventaudit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldStatus(ctx context.Context) (v eventaudit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EventAuditMutation) ResetStatus() {
	m.status = nil
}

// SetTimeline sets the "timeline" field.
func (m *EventAuditMutation) SetTimeline(value []map[string]interface{}) {
	m.timeline = &value
	m.appendtimeline = nil
}

// Timeline returns the value of the "timeline" field in the mutation.
func (m *EventAuditMutation) Timeline() (r []map[string]interface{}, exists bool) {
	v := m.timeline
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeline returns the old "timeline" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldTimeline(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeline: %w", err)
	}
	return oldValue.Timeline, nil
}

// AppendTimeline adds value to the "timeline" field.
func (m *EventAuditMutation) AppendTimeline(value []map[string]interface{}) {
	m.appendtimeline = append(m.appendtimeline, value...)
}

// AppendedTimeline returns the list of values that were appended to the "timeline" field in this mutation.
func (m *EventAuditMutation) AppendedTimeline() ([]map[string]interface{}, bool) {
	if len(m.appendtimeline) == 0 {
		return nil, false
	}
	return m.appendtimeline, true
}

// ClearTimeline clears the value of the "timeline" field.
func (m *EventAuditMutation) ClearTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	m.clearedFields[eventaudit.FieldTimeline] = struct{}{}
}

// TimelineCleared returns if the "timeline" field was cleared in this mutation.
func (m *EventAuditMutation) TimelineCleared() bool {
	_, ok := m.clearedFields[eventaudit.FieldTimeline]
	return ok
}

// ResetTimeline resets all changes to the "timeline" field.
func (m *EventAuditMutation) ResetTimeline() {
	m.timeline = nil
	m.appendtimeline = nil
	delete(m.clearedFields, eventaudit.FieldTimeline)
}

// SetReceivedAt sets the "received_at" field.
func (m *EventAuditMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *EventAuditMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *EventAuditMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EventAuditMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EventAuditMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EventAuditMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *EventAuditMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *EventAuditMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the EventAudit entity.
// If the EventAudit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventAuditMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *EventAuditMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the EventAuditMutation builder.
func (m *EventAuditMutation) Where(ps ...predicate.EventAudit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventAuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventAuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EventAudit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventAuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventAuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EventAudit).
func (m *EventAuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventAuditMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.source != nil {
		fields = append(fields, eventaudit.FieldSource)
	}
	if m.source_id != nil {
		fields = append(fields, eventaudit.FieldSourceID)
	}
	if m.org_id != nil {
		fields = append(fields, eventaudit.FieldOrgID)
	}
	if m.org_unit_id != nil {
		fields = append(fields, eventaudit.FieldOrgUnitID)
	}
	if m.event_type != nil {
		fields = append(fields, eventaudit.FieldEventType)
	}
	if m.payload != nil {
		fields = append(fields, eventaudit.FieldPayload)
	}
	if m.payload_hash != nil {
		fields = append(fields, eventaudit.FieldPayloadHash)
	}
	if m.event_key != nil {
		fields = append(fields, eventaudit.FieldEventKey)
	}
	if m.received_at_bucket != nil {
		fields = append(fields, eventaudit.FieldReceivedAtBucket)
	}
	if m.status != nil {
		fields = append(fields, eventaudit.FieldStatus)
	}
	if m.timeline != nil {
		fields = append(fields, eventaudit.FieldTimeline)
	}
	if m.received_at != nil {
		fields = append(fields, eventaudit.FieldReceivedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, eventaudit.FieldUpdatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, eventaudit.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventAuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case eventaudit.FieldSource:
		return m.Source()
	case eventaudit.FieldSourceID:
		return m.SourceID()
	case eventaudit.FieldOrgID:
		return m.OrgID()
	case eventaudit.FieldOrgUnitID:
		return m.OrgUnitID()
	case eventaudit.FieldEventType:
		return m.EventType()
	case eventaudit.FieldPayload:
		return m.Payload()
	case eventaudit.FieldPayloadHash:
		return m.PayloadHash()
	case eventaudit.FieldEventKey:
		return m.EventKey()
	case eventaudit.FieldReceivedAtBucket:
		return m.ReceivedAtBucket()
	case eventaudit.FieldStatus:
		return m.Status()
	case eventaudit.FieldTimeline:
		return m.Timeline()
	case eventaudit.FieldReceivedAt:
		return m.ReceivedAt()
	case eventaudit.FieldUpdatedAt:
		return m.UpdatedAt()
	case eventaudit.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventAuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case eventaudit.FieldSource:
		return m.OldSource(ctx)
	case eventaudit.FieldSourceID:
		return m.OldSourceID(ctx)
	case eventaudit.FieldOrgID:
		return m.OldOrgID(ctx)
	case eventaudit.FieldOrgUnitID:
		return m.OldOrgUnitID(ctx)
	case eventaudit.FieldEventType:
		return m.OldEventType(ctx)
	case eventaudit.FieldPayload:
		return m.OldPayload(ctx)
	case eventaudit.FieldPayloadHash:
		return m.OldPayloadHash(ctx)
	case eventaudit.FieldEventKey:
		return m.OldEventKey(ctx)
	case eventaudit.FieldReceivedAtBucket:
		return m.OldReceivedAtBucket(ctx)
	case eventaudit.FieldStatus:
		return m.OldStatus(ctx)
	case eventaudit.FieldTimeline:
		return m.OldTimeline(ctx)
	case eventaudit.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case eventaudit.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case eventaudit.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown EventAudit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventAuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case eventaudit.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case eventaudit.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case eventaudit.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case eventaudit.FieldOrgUnitID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgUnitID(v)
		return nil
	case eventaudit.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case eventaudit.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case eventaudit.FieldPayloadHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadHash(v)
		return nil
	case eventaudit.FieldEventKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKey(v)
		return nil
	case eventaudit.FieldReceivedAtBucket:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAtBucket(v)
		return nil
	case eventaudit.FieldStatus:
		v, ok := value.(eventaudit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case eventaudit.FieldTimeline:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeline(v)
		return nil
	case eventaudit.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case eventaudit.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case eventaudit.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown EventAudit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventAuditMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventAuditMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventAuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown EventAudit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventAuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(eventaudit.FieldSourceID) {
		fields = append(fields, eventaudit.FieldSourceID)
	}
	if m.FieldCleared(eventaudit.FieldOrgUnitID) {
		fields = append(fields, eventaudit.FieldOrgUnitID)
	}
	if m.FieldCleared(eventaudit.FieldEventKey) {
		fields = append(fields, eventaudit.FieldEventKey)
	}
	if m.FieldCleared(eventaudit.FieldReceivedAtBucket) {
		fields = append(fields, eventaudit.FieldReceivedAtBucket)
	}
	if m.FieldCleared(eventaudit.FieldTimeline) {
		fields = append(fields, eventaudit.FieldTimeline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventAuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventAuditMutation) ClearField(name string) error {
	switch name {
	case eventaudit.FieldSourceID:
		m.ClearSourceID()
		return nil
	case eventaudit.FieldOrgUnitID:
		m.ClearOrgUnitID()
		return nil
	case eventaudit.FieldEventKey:
		m.ClearEventKey()
		return nil
	case eventaudit.FieldReceivedAtBucket:
		m.ClearReceivedAtBucket()
		return nil
	case eventaudit.FieldTimeline:
		m.ClearTimeline()
		return nil
	}
	return fmt.Errorf("unknown EventAudit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventAuditMutation) ResetField(name string) error {
	switch name {
	case eventaudit.FieldSource:
		m.ResetSource()
		return nil
	case eventaudit.FieldSourceID:
		m.ResetSourceID()
		return nil
	case eventaudit.FieldOrgID:
		m.ResetOrgID()
		return nil
	case eventaudit.FieldOrgUnitID:
		m.ResetOrgUnitID()
		return nil
	case eventaudit.FieldEventType:
		m.ResetEventType()
		return nil
	case eventaudit.FieldPayload:
		m.ResetPayload()
		return nil
	case eventaudit.FieldPayloadHash:
		m.ResetPayloadHash()
		return nil
	case eventaudit.FieldEventKey:
		m.ResetEventKey()
		return nil
	case eventaudit.FieldReceivedAtBucket:
		m.ResetReceivedAtBucket()
		return nil
	case eventaudit.FieldStatus:
		m.ResetStatus()
		return nil
	case eventaudit.FieldTimeline:
		m.ResetTimeline()
		return nil
	case eventaudit.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case eventaudit.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case eventaudit.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown EventAudit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventAuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventAuditMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventAuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventAuditMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventAuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventAuditMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventAuditMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown EventAudit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventAuditMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown EventAudit edge %s", name)
}

// ExecutionLogMutation represents an operation that mutates the ExecutionLog nodes in the graph.
type ExecutionLogMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	parent_trace_id          *string
	direction                *executionlog.Direction
	trigger_type             *executionlog.TriggerType
	integration_id           *string
	integration_name         *string
	org_id                   *string
	event_id                 *string
	message_id               *string
	action_index             *int
	addaction_index          *int
	request                  *map[string]interface{}
	steps                    *[]map[string]interface{}
	appendsteps              []map[string]interface{}
	response                 *map[string]interface{}
	error_message            *string
	error_kind               *string
	status                   *executionlog.Status
	skip_reason              *string
	attempts                 *int
	addattempts              *int
	started_at               *time.Time
	finished_at              *time.Time
	duration_ms              *int64
	addduration_ms           *int64
	clearedFields            map[string]struct{}
	delivery_attempts        map[string]struct{}
	removeddelivery_attempts map[string]struct{}
	cleareddelivery_attempts bool
	done                     bool
	oldValue                 func(context.Context) (*ExecutionLog, error)
	predicates               []predicate.ExecutionLog
}

var _ ent.Mutation = (*ExecutionLogMutation)(nil)

// executionlogOption allows management of the mutation configuration using functional options.
type executionlogOption func(*ExecutionLogMutation)

// newExecutionLogMutation creates new mutation for the ExecutionLog entity.
func newExecutionLogMutation(c config, op Op, opts ...executionlogOption) *ExecutionLogMutation {
	m := &ExecutionLogMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionLogID sets the ID field of the mutation.
func withExecutionLogID(id string) executionlogOption {
	return func(m *ExecutionLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionLog
		)
		m.oldValue = func(ctx context.Context) (*ExecutionLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionLog sets the old ExecutionLog of the mutation.
func withExecutionLog(node *ExecutionLog) executionlogOption {
	return func(m *ExecutionLogMutation) {
		m.oldValue = func(context.Context) (*ExecutionLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionLog entities.
func (m *ExecutionLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetParentTraceID sets the "parent_trace_id" field.
func (m *ExecutionLogMutation) SetParentTraceID(s string) {
	m.parent_trace_id = &s
}

// ParentTraceID returns the value of the "parent_trace_id" field in the mutation.
func (m *ExecutionLogMutation) ParentTraceID() (r string, exists bool) {
	v := m.parent_trace_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentTraceID returns the old "parent_trace_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldParentTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentTraceID: %w", err)
	}
	return oldValue.ParentTraceID, nil
}

// ClearParentTraceID clears the value of the "parent_trace_id" field.
func (m *ExecutionLogMutation) ClearParentTraceID() {
	m.parent_trace_id = nil
	m.clearedFields[executionlog.FieldParentTraceID] = struct{}{}
}

// ParentTraceIDCleared returns if the "parent_trace_id" field was cleared in this mutation.
func (m *ExecutionLogMutation) ParentTraceIDCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldParentTraceID]
	return ok
}

// ResetParentTraceID resets all changes to the "parent_trace_id" field.
func (m *ExecutionLogMutation) ResetParentTraceID() {
	m.parent_trace_id = nil
	delete(m.clearedFields, executionlog.FieldParentTraceID)
}

// SetDirection sets the "direction" field.
func (m *ExecutionLogMutation) SetDirection(e executionlog.Direction) {
	m.direction = &e
}

// Direction returns the value of the "direction" field in the mutation.
func (m *ExecutionLogMutation) Direction() (r executionlog.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldDirection(ctx context.Context) (v executionlog.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *ExecutionLogMutation) ResetDirection() {
	m.direction = nil
}

// SetTriggerType sets the "trigger_type" field.
func (m *ExecutionLogMutation) SetTriggerType(et executionlog.TriggerType) {
	m.trigger_type = &et
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *ExecutionLogMutation) TriggerType() (r executionlog.TriggerType, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldTriggerType(ctx context.Context) (v executionlog.TriggerType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *ExecutionLogMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetIntegrationID sets the "integration_id" field.
func (m *ExecutionLogMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *ExecutionLogMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *ExecutionLogMutation) ResetIntegrationID() {
	m.integration_id = nil
}

// SetIntegrationName sets the "integration_name" field.
func (m *ExecutionLogMutation) SetIntegrationName(s string) {
	m.integration_name = &s
}

// IntegrationName returns the value of the "integration_name" field in the mutation.
func (m *ExecutionLogMutation) IntegrationName() (r string, exists bool) {
	v := m.integration_name
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationName returns the old "integration_name" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldIntegrationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationName: %w", err)
	}
	return oldValue.IntegrationName, nil
}

// ResetIntegrationName resets all changes to the "integration_name" field.
func (m *ExecutionLogMutation) ResetIntegrationName() {
	m.integration_name = nil
}

// SetOrgID sets the "org_id" field.
func (m *ExecutionLogMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ExecutionLogMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ExecutionLogMutation) ResetOrgID() {
	m.org_id = nil
}

// SetEventID sets the "event_id" field.
func (m *ExecutionLogMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ExecutionLogMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldEventID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ClearEventID clears the value of the "event_id" field.
func (m *ExecutionLogMutation) ClearEventID() {
	m.event_id = nil
	m.clearedFields[executionlog.FieldEventID] = struct{}{}
}

// EventIDCleared returns if the "event_id" field was cleared in this mutation.
func (m *ExecutionLogMutation) EventIDCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldEventID]
	return ok
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ExecutionLogMutation) ResetEventID() {
	m.event_id = nil
	delete(m.clearedFields, executionlog.FieldEventID)
}

// SetMessageID sets the "message_id" field.
func (m *ExecutionLogMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *ExecutionLogMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ClearMessageID clears the value of the "message_id" field.
func (m *ExecutionLogMutation) ClearMessageID() {
	m.message_id = nil
	m.clearedFields[executionlog.FieldMessageID] = struct{}{}
}

// MessageIDCleared returns if the "message_id" field was cleared in this mutation.
func (m *ExecutionLogMutation) MessageIDCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldMessageID]
	return ok
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *ExecutionLogMutation) ResetMessageID() {
	m.message_id = nil
	delete(m.clearedFields, executionlog.FieldMessageID)
}

// SetActionIndex sets the "action_index" field.
func (m *ExecutionLogMutation) SetActionIndex(i int) {
	m.action_index = &i
	m.addaction_index = nil
}

// ActionIndex returns the value of the "action_index" field in the mutation.
func (m *ExecutionLogMutation) ActionIndex() (r int, exists bool) {
	v := m.action_index
	if v == nil {
		return
	}
	return *v, true
}

// OldActionIndex returns the old "action_index" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldActionIndex(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionIndex: %w", err)
	}
	return oldValue.ActionIndex, nil
}

// AddActionIndex adds i to the "action_index" field.
func (m *ExecutionLogMutation) AddActionIndex(i int) {
	if m.addaction_index != nil {
		*m.addaction_index += i
	} else {
		m.addaction_index = &i
	}
}

// AddedActionIndex returns the value that was added to the "action_index" field in this mutation.
func (m *ExecutionLogMutation) AddedActionIndex() (r int, exists bool) {
	v := m.addaction_index
	if v == nil {
		return
	}
	return *v, true
}

// ClearActionIndex clears the value of the "action_index" field.
func (m *ExecutionLogMutation) ClearActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
	m.clearedFields[executionlog.FieldActionIndex] = struct{}{}
}

// ActionIndexCleared returns if the "action_index" field was cleared in this mutation.
func (m *ExecutionLogMutation) ActionIndexCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldActionIndex]
	return ok
}

// ResetActionIndex resets all changes to the "action_index" field.
func (m *ExecutionLogMutation) ResetActionIndex() {
	m.action_index = nil
	m.addaction_index = nil
	delete(m.clearedFields, executionlog.FieldActionIndex)
}

// SetRequest sets the "request" field.
func (m *ExecutionLogMutation) SetRequest(value map[string]interface{}) {
	m.request = &value
}

// Request returns the value of the "request" field in the mutation.
func (m *ExecutionLogMutation) Request() (r map[string]interface{}, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldRequest(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ClearRequest clears the value of the "request" field.
func (m *ExecutionLogMutation) ClearRequest() {
	m.request = nil
	m.clearedFields[executionlog.FieldRequest] = struct{}{}
}

// RequestCleared returns if the "request" field was cleared in this mutation.
func (m *ExecutionLogMutation) RequestCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldRequest]
	return ok
}

// ResetRequest resets all changes to the "request" field.
func (m *ExecutionLogMutation) ResetRequest() {
	m.request = nil
	delete(m.clearedFields, executionlog.FieldRequest)
}

// SetSteps sets the "steps" field.
func (m *ExecutionLogMutation) SetSteps(value []map[string]interface{}) {
	m.steps = &value
	m.appendsteps = nil
}

// Steps returns the value of the "steps" field in the mutation.
func (m *ExecutionLogMutation) Steps() (r []map[string]interface{}, exists bool) {
	v := m.steps
	if v == nil {
		return
	}
	return *v, true
}

// OldSteps returns the old "steps" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldSteps(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSteps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSteps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSteps: %w", err)
	}
	return oldValue.Steps, nil
}

// AppendSteps adds value to the "steps" field.
func (m *ExecutionLogMutation) AppendSteps(value []map[string]interface{}) {
	m.appendsteps = append(m.appendsteps, value...)
}

// AppendedSteps returns the list of values that were appended to the "steps" field in this mutation.
func (m *ExecutionLogMutation) AppendedSteps() ([]map[string]interface{}, bool) {
	if len(m.appendsteps) == 0 {
		return nil, false
	}
	return m.appendsteps, true
}

// ClearSteps clears the value of the "steps" field.
func (m *ExecutionLogMutation) ClearSteps() {
	m.steps = nil
	m.appendsteps = nil
	m.clearedFields[executionlog.FieldSteps] = struct{}{}
}

// StepsCleared returns if the "steps" field was cleared in this mutation.
func (m *ExecutionLogMutation) StepsCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldSteps]
	return ok
}

// ResetSteps resets all changes to the "steps" field.
func (m *ExecutionLogMutation) ResetSteps() {
	m.steps = nil
	m.appendsteps = nil
	delete(m.clearedFields, executionlog.FieldSteps)
}

// SetResponse sets the "response" field.
func (m *ExecutionLogMutation) SetResponse(value map[string]interface{}) {
	m.response = &value
}

// Response returns the value of the "response" field in the mutation.
func (m *ExecutionLogMutation) Response() (r map[string]interface{}, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldResponse(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *ExecutionLogMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[executionlog.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *ExecutionLogMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *ExecutionLogMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, executionlog.FieldResponse)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExecutionLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExecutionLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExecutionLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[executionlog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExecutionLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExecutionLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, executionlog.FieldErrorMessage)
}

// SetErrorKind sets the "error_kind" field.
func (m *ExecutionLogMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *ExecutionLogMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *ExecutionLogMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[executionlog.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *ExecutionLogMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *ExecutionLogMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, executionlog.FieldErrorKind)
}

// SetStatus sets the "status" field.
func (m *ExecutionLogMutation) SetStatus(e executionlog.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExecutionLogMutation) Status() (r executionlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStatus(ctx context.Context) (v executionlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExecutionLogMutation) ResetStatus() {
	m.status = nil
}

// SetSkipReason sets the "skip_reason" field.
func (m *ExecutionLogMutation) SetSkipReason(s string) {
	m.skip_reason = &s
}

// SkipReason returns the value of the "skip_reason" field in the mutation.
func (m *ExecutionLogMutation) SkipReason() (r string, exists bool) {
	v := m.skip_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReason returns the old "skip_reason" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldSkipReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReason: %w", err)
	}
	return oldValue.SkipReason, nil
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (m *ExecutionLogMutation) ClearSkipReason() {
	m.skip_reason = nil
	m.clearedFields[executionlog.FieldSkipReason] = struct{}{}
}

// SkipReasonCleared returns if the "skip_reason" field was cleared in this mutation.
func (m *ExecutionLogMutation) SkipReasonCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldSkipReason]
	return ok
}

// ResetSkipReason resets all changes to the "skip_reason" field.
func (m *ExecutionLogMutation) ResetSkipReason() {
	m.skip_reason = nil
	delete(m.clearedFields, executionlog.FieldSkipReason)
}

// SetAttempts sets the "attempts" field.
func (m *ExecutionLogMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *ExecutionLogMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *ExecutionLogMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *ExecutionLogMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *ExecutionLogMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionLogMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionLogMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionLogMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExecutionLogMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExecutionLogMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExecutionLogMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[executionlog.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExecutionLogMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExecutionLogMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, executionlog.FieldFinishedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *ExecutionLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ExecutionLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ExecutionLog entity.
// If the ExecutionLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionLogMutation) OldDurationMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ExecutionLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ExecutionLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *ExecutionLogMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[executionlog.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *ExecutionLogMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[executionlog.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ExecutionLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, executionlog.FieldDurationMs)
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the DeliveryAttempt entity by ids.
func (m *ExecutionLogMutation) AddDeliveryAttemptIDs(ids ...string) {
	if m.delivery_attempts == nil {
		m.delivery_attempts = make(map[string]struct{})
	}
	for i := range ids {
		m.delivery_attempts[ids[i]] = struct{}{}
	}
}

// ClearDeliveryAttempts clears the "delivery_attempts" edge to the DeliveryAttempt entity.
func (m *ExecutionLogMutation) ClearDeliveryAttempts() {
	m.cleareddelivery_attempts = true
}

// DeliveryAttemptsCleared reports if the "delivery_attempts" edge to the DeliveryAttempt entity was cleared.
func (m *ExecutionLogMutation) DeliveryAttemptsCleared() bool {
	return m.cleareddelivery_attempts
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to the DeliveryAttempt entity by IDs.
func (m *ExecutionLogMutation) RemoveDeliveryAttemptIDs(ids ...string) {
	if m.removeddelivery_attempts == nil {
		m.removeddelivery_attempts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.delivery_attempts, ids[i])
		m.removeddelivery_attempts[ids[i]] = struct{}{}
	}
}

// RemovedDeliveryAttempts returns the removed IDs of the "delivery_attempts" edge to the DeliveryAttempt entity.
func (m *ExecutionLogMutation) RemovedDeliveryAttemptsIDs() (ids []string) {
	for id := range m.removeddelivery_attempts {
		ids = append(ids, id)
	}
	return
}

// DeliveryAttemptsIDs returns the "delivery_attempts" edge IDs in the mutation.
func (m *ExecutionLogMutation) DeliveryAttemptsIDs() (ids []string) {
	for id := range m.delivery_attempts {
		ids = append(ids, id)
	}
	return
}

// ResetDeliveryAttempts resets all changes to the "delivery_attempts" edge.
func (m *ExecutionLogMutation) ResetDeliveryAttempts() {
	m.delivery_attempts = nil
	m.cleareddelivery_attempts = false
	m.removeddelivery_attempts = nil
}

// Where appends a list predicates to the ExecutionLogMutation builder.
func (m *ExecutionLogMutation) Where(ps ...predicate.ExecutionLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionLog).
func (m *ExecutionLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionLogMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.parent_trace_id != nil {
		fields = append(fields, executionlog.FieldParentTraceID)
	}
	if m.direction != nil {
		fields = append(fields, executionlog.FieldDirection)
	}
	if m.trigger_type != nil {
		fields = append(fields, executionlog.FieldTriggerType)
	}
	if m.integration_id != nil {
		fields = append(fields, executionlog.FieldIntegrationID)
	}
	if m.integration_name != nil {
		fields = append(fields, executionlog.FieldIntegrationName)
	}
	if m.org_id != nil {
		fields = append(fields, executionlog.FieldOrgID)
	}
	if m.event_id != nil {
		fields = append(fields, executionlog.FieldEventID)
	}
	if m.message_id != nil {
		fields = append(fields, executionlog.FieldMessageID)
	}
	if m.action_index != nil {
		fields = append(fields, executionlog.FieldActionIndex)
	}
	if m.request != nil {
		fields = append(fields, executionlog.FieldRequest)
	}
	if m.steps != nil {
		fields = append(fields, executionlog.FieldSteps)
	}
	if m.response != nil {
		fields = append(fields, executionlog.FieldResponse)
	}
	if m.error_message != nil {
		fields = append(fields, executionlog.FieldErrorMessage)
	}
	if m.error_kind != nil {
		fields = append(fields, executionlog.FieldErrorKind)
	}
	if m.status != nil {
		fields = append(fields, executionlog.FieldStatus)
	}
	if m.skip_reason != nil {
		fields = append(fields, executionlog.FieldSkipReason)
	}
	if m.attempts != nil {
		fields = append(fields, executionlog.FieldAttempts)
	}
	if m.started_at != nil {
		fields = append(fields, executionlog.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, executionlog.FieldFinishedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldParentTraceID:
		return m.ParentTraceID()
	case executionlog.FieldDirection:
		return m.Direction()
	case executionlog.FieldTriggerType:
		return m.TriggerType()
	case executionlog.FieldIntegrationID:
		return m.IntegrationID()
	case executionlog.FieldIntegrationName:
		return m.IntegrationName()
	case executionlog.FieldOrgID:
		return m.OrgID()
	case executionlog.FieldEventID:
		return m.EventID()
	case executionlog.FieldMessageID:
		return m.MessageID()
	case executionlog.FieldActionIndex:
		return m.ActionIndex()
	case executionlog.FieldRequest:
		return m.Request()
	case executionlog.FieldSteps:
		return m.Steps()
	case executionlog.FieldResponse:
		return m.Response()
	case executionlog.FieldErrorMessage:
		return m.ErrorMessage()
	case executionlog.FieldErrorKind:
		return m.ErrorKind()
	case executionlog.FieldStatus:
		return m.Status()
	case executionlog.FieldSkipReason:
		return m.SkipReason()
	case executionlog.FieldAttempts:
		return m.Attempts()
	case executionlog.FieldStartedAt:
		return m.StartedAt()
	case executionlog.FieldFinishedAt:
		return m.FinishedAt()
	case executionlog.FieldDurationMs:
		return m.DurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionlog.FieldParentTraceID:
		return m.OldParentTraceID(ctx)
	case executionlog.FieldDirection:
		return m.OldDirection(ctx)
	case executionlog.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case executionlog.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case executionlog.FieldIntegrationName:
		return m.OldIntegrationName(ctx)
	case executionlog.FieldOrgID:
		return m.OldOrgID(ctx)
	case executionlog.FieldEventID:
		return m.OldEventID(ctx)
	case executionlog.FieldMessageID:
		return m.OldMessageID(ctx)
	case executionlog.FieldActionIndex:
		return m.OldActionIndex(ctx)
	case executionlog.FieldRequest:
		return m.OldRequest(ctx)
	case executionlog.FieldSteps:
		return m.OldSteps(ctx)
	case executionlog.FieldResponse:
		return m.OldResponse(ctx)
	case executionlog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case executionlog.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case executionlog.FieldStatus:
		return m.OldStatus(ctx)
	case executionlog.FieldSkipReason:
		return m.OldSkipReason(ctx)
	case executionlog.FieldAttempts:
		return m.OldAttempts(ctx)
	case executionlog.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionlog.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case executionlog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldParentTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentTraceID(v)
		return nil
	case executionlog.FieldDirection:
		v, ok := value.(executionlog.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case executionlog.FieldTriggerType:
		v, ok := value.(executionlog.TriggerType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case executionlog.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case executionlog.FieldIntegrationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationName(v)
		return nil
	case executionlog.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case executionlog.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case executionlog.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case executionlog.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionIndex(v)
		return nil
	case executionlog.FieldRequest:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case executionlog.FieldSteps:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSteps(v)
		return nil
	case executionlog.FieldResponse:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case executionlog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case executionlog.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case executionlog.FieldStatus:
		v, ok := value.(executionlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case executionlog.FieldSkipReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReason(v)
		return nil
	case executionlog.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case executionlog.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionlog.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionLogMutation) AddedFields() []string {
	var fields []string
	if m.addaction_index != nil {
		fields = append(fields, executionlog.FieldActionIndex)
	}
	if m.addattempts != nil {
		fields = append(fields, executionlog.FieldAttempts)
	}
	if m.addduration_ms != nil {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionlog.FieldActionIndex:
		return m.AddedActionIndex()
	case executionlog.FieldAttempts:
		return m.AddedAttempts()
	case executionlog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionlog.FieldActionIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActionIndex(v)
		return nil
	case executionlog.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case executionlog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionlog.FieldParentTraceID) {
		fields = append(fields, executionlog.FieldParentTraceID)
	}
	if m.FieldCleared(executionlog.FieldEventID) {
		fields = append(fields, executionlog.FieldEventID)
	}
	if m.FieldCleared(executionlog.FieldMessageID) {
		fields = append(fields, executionlog.FieldMessageID)
	}
	if m.FieldCleared(executionlog.FieldActionIndex) {
		fields = append(fields, executionlog.FieldActionIndex)
	}
	if m.FieldCleared(executionlog.FieldRequest) {
		fields = append(fields, executionlog.FieldRequest)
	}
	if m.FieldCleared(executionlog.FieldSteps) {
		fields = append(fields, executionlog.FieldSteps)
	}
	if m.FieldCleared(executionlog.FieldResponse) {
		fields = append(fields, executionlog.FieldResponse)
	}
	if m.FieldCleared(executionlog.FieldErrorMessage) {
		fields = append(fields, executionlog.FieldErrorMessage)
	}
	if m.FieldCleared(executionlog.FieldErrorKind) {
		fields = append(fields, executionlog.FieldErrorKind)
	}
	if m.FieldCleared(executionlog.FieldSkipReason) {
		fields = append(fields, executionlog.FieldSkipReason)
	}
	if m.FieldCleared(executionlog.FieldFinishedAt) {
		fields = append(fields, executionlog.FieldFinishedAt)
	}
	if m.FieldCleared(executionlog.FieldDurationMs) {
		fields = append(fields, executionlog.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ClearField(name string) error {
	switch name {
	case executionlog.FieldParentTraceID:
		m.ClearParentTraceID()
		return nil
	case executionlog.FieldEventID:
		m.ClearEventID()
		return nil
	case executionlog.FieldMessageID:
		m.ClearMessageID()
		return nil
	case executionlog.FieldActionIndex:
		m.ClearActionIndex()
		return nil
	case executionlog.FieldRequest:
		m.ClearRequest()
		return nil
	case executionlog.FieldSteps:
		m.ClearSteps()
		return nil
	case executionlog.FieldResponse:
		m.ClearResponse()
		return nil
	case executionlog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case executionlog.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case executionlog.FieldSkipReason:
		m.ClearSkipReason()
		return nil
	case executionlog.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case executionlog.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionLogMutation) ResetField(name string) error {
	switch name {
	case executionlog.FieldParentTraceID:
		m.ResetParentTraceID()
		return nil
	case executionlog.FieldDirection:
		m.ResetDirection()
		return nil
	case executionlog.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case executionlog.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case executionlog.FieldIntegrationName:
		m.ResetIntegrationName()
		return nil
	case executionlog.FieldOrgID:
		m.ResetOrgID()
		return nil
	case executionlog.FieldEventID:
		m.ResetEventID()
		return nil
	case executionlog.FieldMessageID:
		m.ResetMessageID()
		return nil
	case executionlog.FieldActionIndex:
		m.ResetActionIndex()
		return nil
	case executionlog.FieldRequest:
		m.ResetRequest()
		return nil
	case executionlog.FieldSteps:
		m.ResetSteps()
		return nil
	case executionlog.FieldResponse:
		m.ResetResponse()
		return nil
	case executionlog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case executionlog.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case executionlog.FieldStatus:
		m.ResetStatus()
		return nil
	case executionlog.FieldSkipReason:
		m.ResetSkipReason()
		return nil
	case executionlog.FieldAttempts:
		m.ResetAttempts()
		return nil
	case executionlog.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionlog.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case executionlog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.delivery_attempts != nil {
		edges = append(edges, executionlog.EdgeDeliveryAttempts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionlog.EdgeDeliveryAttempts:
		ids := make([]ent.Value, 0, len(m.delivery_attempts))
		for id := range m.delivery_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeddelivery_attempts != nil {
		edges = append(edges, executionlog.EdgeDeliveryAttempts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionLogMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case executionlog.EdgeDeliveryAttempts:
		ids := make([]ent.Value, 0, len(m.removeddelivery_attempts))
		for id := range m.removeddelivery_attempts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddelivery_attempts {
		edges = append(edges, executionlog.EdgeDeliveryAttempts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionLogMutation) EdgeCleared(name string) bool {
	switch name {
	case executionlog.EdgeDeliveryAttempts:
		return m.cleareddelivery_attempts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionLogMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown ExecutionLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionLogMutation) ResetEdge(name string) error {
	switch name {
	case executionlog.EdgeDeliveryAttempts:
		m.ResetDeliveryAttempts()
		return nil
	}
	return fmt.Errorf("unknown ExecutionLog edge %s", name)
}

// ProcessedEventMutation represents an operation that mutates the ProcessedEvent nodes in the graph.
type ProcessedEventMutation struct {
	config
	op            Op
	typ           string
	id            *string
	org_id        *string
	event_key     *string
	bucket        *time.Time
	event_id      *string
	expires_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ProcessedEvent, error)
	predicates    []predicate.ProcessedEvent
}

var _ ent.Mutation = (*ProcessedEventMutation)(nil)

// processedeventOption allows management of the mutation configuration using functional options.
type processedeventOption func(*ProcessedEventMutation)

// newProcessedEventMutation creates new mutation for the ProcessedEvent entity.
func newProcessedEventMutation(c config, op Op, opts ...processedeventOption) *ProcessedEventMutation {
	m := &ProcessedEventMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedEventID sets the ID field of the mutation.
func withProcessedEventID(id string) processedeventOption {
	return func(m *ProcessedEventMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedEvent
		)
		m.oldValue = func(ctx context.Context) (*ProcessedEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedEvent sets the old ProcessedEvent of the mutation.
func withProcessedEvent(node *ProcessedEvent) processedeventOption {
	return func(m *ProcessedEventMutation) {
		m.oldValue = func(context.Context) (*ProcessedEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedEvent entities.
func (m *ProcessedEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *ProcessedEventMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ProcessedEventMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ProcessedEventMutation) ResetOrgID() {
	m.org_id = nil
}

// SetEventKey sets the "event_key" field.
func (m *ProcessedEventMutation) SetEventKey(s string) {
	m.event_key = &s
}

// EventKey returns the value of the "event_key" field in the mutation.
func (m *ProcessedEventMutation) EventKey() (r string, exists bool) {
	v := m.event_key
	if v == nil {
		return
	}
	return *v, true
}

// OldEventKey returns the old "event_key" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldEventKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventKey: %w", err)
	}
	return oldValue.EventKey, nil
}

// ResetEventKey resets all changes to the "event_key" field.
func (m *ProcessedEventMutation) ResetEventKey() {
	m.event_key = nil
}

// SetBucket sets the "bucket" field.
func (m *ProcessedEventMutation) SetBucket(t time.Time) {
	m.bucket = &t
}

// Bucket returns the value of the "bucket" field in the mutation.
func (m *ProcessedEventMutation) Bucket() (r time.Time, exists bool) {
	v := m.bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldBucket returns the old "bucket" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldBucket(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBucket: %w", err)
	}
	return oldValue.Bucket, nil
}

// ResetBucket resets all changes to the "bucket" field.
func (m *ProcessedEventMutation) ResetBucket() {
	m.bucket = nil
}

// SetEventID sets the "event_id" field.
func (m *ProcessedEventMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ProcessedEventMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ProcessedEventMutation) ResetEventID() {
	m.event_id = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ProcessedEventMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ProcessedEventMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ProcessedEvent entity.
// If the ProcessedEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedEventMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ProcessedEventMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// Where appends a list predicates to the ProcessedEventMutation builder.
func (m *ProcessedEventMutation) Where(ps ...predicate.ProcessedEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedEvent).
func (m *ProcessedEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedEventMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.org_id != nil {
		fields = append(fields, processedevent.FieldOrgID)
	}
	if m.event_key != nil {
		fields = append(fields, processedevent.FieldEventKey)
	}
	if m.bucket != nil {
		fields = append(fields, processedevent.FieldBucket)
	}
	if m.event_id != nil {
		fields = append(fields, processedevent.FieldEventID)
	}
	if m.expires_at != nil {
		fields = append(fields, processedevent.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processedevent.FieldOrgID:
		return m.OrgID()
	case processedevent.FieldEventKey:
		return m.EventKey()
	case processedevent.FieldBucket:
		return m.Bucket()
	case processedevent.FieldEventID:
		return m.EventID()
	case processedevent.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processedevent.FieldOrgID:
		return m.OldOrgID(ctx)
	case processedevent.FieldEventKey:
		return m.OldEventKey(ctx)
	case processedevent.FieldBucket:
		return m.OldBucket(ctx)
	case processedevent.FieldEventID:
		return m.OldEventID(ctx)
	case processedevent.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processedevent.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case processedevent.FieldEventKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventKey(v)
		return nil
	case processedevent.FieldBucket:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBucket(v)
		return nil
	case processedevent.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case processedevent.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProcessedEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProcessedEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedEventMutation) ResetField(name string) error {
	switch name {
	case processedevent.FieldOrgID:
		m.ResetOrgID()
		return nil
	case processedevent.FieldEventKey:
		m.ResetEventKey()
		return nil
	case processedevent.FieldBucket:
		m.ResetBucket()
		return nil
	case processedevent.FieldEventID:
		m.ResetEventID()
		return nil
	case processedevent.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessedEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedEvent edge %s", name)
}

// ScheduledEntryMutation represents an operation that mutates the ScheduledEntry nodes in the graph.
type ScheduledEntryMutation struct {
	config
	op                Op
	typ               string
	id                *string
	integration_id    *string
	org_id            *string
	original_event_id *string
	event_type        *string
	scheduled_for     *time.Time
	status            *scheduledentry.Status
	payload           *map[string]interface{}
	target_url        *string
	http_method       *string
	attempt_count     *int
	addattempt_count  *int
	recurring         *map[string]interface{}
	cancellation      *map[string]interface{}
	leased_by         *string
	leased_until      *time.Time
	next_attempt_at   *time.Time
	last_error        *string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*ScheduledEntry, error)
	predicates        []predicate.ScheduledEntry
}

var _ ent.Mutation = (*ScheduledEntryMutation)(nil)

// scheduledentryOption allows management of the mutation configuration using functional options.
type scheduledentryOption func(*ScheduledEntryMutation)

// newScheduledEntryMutation creates new mutation for the ScheduledEntry entity.
func newScheduledEntryMutation(c config, op Op, opts ...scheduledentryOption) *ScheduledEntryMutation {
	m := &ScheduledEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledEntryID sets the ID field of the mutation.
func withScheduledEntryID(id string) scheduledentryOption {
	return func(m *ScheduledEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledEntry
		)
		m.oldValue = func(ctx context.Context) (*ScheduledEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledEntry sets the old ScheduledEntry of the mutation.
func withScheduledEntry(node *ScheduledEntry) scheduledentryOption {
	return func(m *ScheduledEntryMutation) {
		m.oldValue = func(context.Context) (*ScheduledEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledEntry entities.
func (m *ScheduledEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetIntegrationID sets the "integration_id" field.
func (m *ScheduledEntryMutation) SetIntegrationID(s string) {
	m.integration_id = &s
}

// IntegrationID returns the value of the "integration_id" field in the mutation.
func (m *ScheduledEntryMutation) IntegrationID() (r string, exists bool) {
	v := m.integration_id
	if v == nil {
		return
	}
	return *v, true
}

// OldIntegrationID returns the old "integration_id" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldIntegrationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntegrationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntegrationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntegrationID: %w", err)
	}
	return oldValue.IntegrationID, nil
}

// ResetIntegrationID resets all changes to the "integration_id" field.
func (m *ScheduledEntryMutation) ResetIntegrationID() {
	m.integration_id = nil
}

// SetOrgID sets the "org_id" field.
func (m *ScheduledEntryMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ScheduledEntryMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ScheduledEntryMutation) ResetOrgID() {
	m.org_id = nil
}

// SetOriginalEventID sets the "original_event_id" field.
func (m *ScheduledEntryMutation) SetOriginalEventID(s string) {
	m.original_event_id = &s
}

// OriginalEventID returns the value of the "original_event_id" field in the mutation.
func (m *ScheduledEntryMutation) OriginalEventID() (r string, exists bool) {
	v := m.original_event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalEventID returns the old "original_event_id" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldOriginalEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalEventID: %w", err)
	}
	return oldValue.OriginalEventID, nil
}

// ResetOriginalEventID resets all changes to the "original_event_id" field.
func (m *ScheduledEntryMutation) ResetOriginalEventID() {
	m.original_event_id = nil
}

// SetEventType sets the "event_type" field.
func (m *ScheduledEntryMutation) SetEventType(s string) {
	m.event_type = &s
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *ScheduledEntryMutation) EventType() (r string, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldEventType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *ScheduledEntryMutation) ResetEventType() {
	m.event_type = nil
}

// SetScheduledFor sets the "scheduled_for" field.
func (m *ScheduledEntryMutation) SetScheduledFor(t time.Time) {
	m.scheduled_for = &t
}

// ScheduledFor returns the value of the "scheduled_for" field in the mutation.
func (m *ScheduledEntryMutation) ScheduledFor() (r time.Time, exists bool) {
	v := m.scheduled_for
	if v == nil {
		return
	}
	return *v, true
}

// OldScheduledFor returns the old "scheduled_for" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldScheduledFor(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScheduledFor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScheduledFor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScheduledFor: %w", err)
	}
	return oldValue.ScheduledFor, nil
}

// ResetScheduledFor resets all changes to the "scheduled_for" field.
func (m *ScheduledEntryMutation) ResetScheduledFor() {
	m.scheduled_for = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledEntryMutation) SetStatus(s scheduledentry.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledEntryMutation) Status() (r scheduledentry.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldStatus(ctx context.Context) (v scheduledentry.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledEntryMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *ScheduledEntryMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *ScheduledEntryMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *ScheduledEntryMutation) ResetPayload() {
	m.payload = nil
}

// SetTargetURL sets the "target_url" field.
func (m *ScheduledEntryMutation) SetTargetURL(s string) {
	m.target_url = &s
}

// TargetURL returns the value of the "target_url" field in the mutation.
func (m *ScheduledEntryMutation) TargetURL() (r string, exists bool) {
	v := m.target_url
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetURL returns the old "target_url" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldTargetURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetURL: %w", err)
	}
	return oldValue.TargetURL, nil
}

// ResetTargetURL resets all changes to the "target_url" field.
func (m *ScheduledEntryMutation) ResetTargetURL() {
	m.target_url = nil
}

// SetHTTPMethod sets the "http_method" field.
func (m *ScheduledEntryMutation) SetHTTPMethod(s string) {
	m.http_method = &s
}

// HTTPMethod returns the value of the "http_method" field in the mutation.
func (m *ScheduledEntryMutation) HTTPMethod() (r string, exists bool) {
	v := m.http_method
	if v == nil {
		return
	}
	return *v, true
}

// OldHTTPMethod returns the old "http_method" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldHTTPMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTTPMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTTPMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTTPMethod: %w", err)
	}
	return oldValue.HTTPMethod, nil
}

// ResetHTTPMethod resets all changes to the "http_method" field.
func (m *ScheduledEntryMutation) ResetHTTPMethod() {
	m.http_method = nil
}

// SetAttemptCount sets the "attempt_count" field.
func (m *ScheduledEntryMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *ScheduledEntryMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *ScheduledEntryMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *ScheduledEntryMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *ScheduledEntryMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetRecurring sets the "recurring" field.
func (m *ScheduledEntryMutation) SetRecurring(value map[string]interface{}) {
	m.recurring = &value
}

// Recurring returns the value of the "recurring" field in the mutation.
func (m *ScheduledEntryMutation) Recurring() (r map[string]interface{}, exists bool) {
	v := m.recurring
	if v == nil {
		return
	}
	return *v, true
}

// OldRecurring returns the old "recurring" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldRecurring(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecurring is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecurring requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecurring: %w", err)
	}
	return oldValue.Recurring, nil
}

// ClearRecurring clears the value of the "recurring" field.
func (m *ScheduledEntryMutation) ClearRecurring() {
	m.recurring = nil
	m.clearedFields[scheduledentry.FieldRecurring] = struct{}{}
}

// RecurringCleared returns if the "recurring" field was cleared in this mutation.
func (m *ScheduledEntryMutation) RecurringCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldRecurring]
	return ok
}

// ResetRecurring resets all changes to the "recurring" field.
func (m *ScheduledEntryMutation) ResetRecurring() {
	m.recurring = nil
	delete(m.clearedFields, scheduledentry.FieldRecurring)
}

// SetCancellation sets the "cancellation" field.
func (m *ScheduledEntryMutation) SetCancellation(value map[string]interface{}) {
	m.cancellation = &value
}

// Cancellation returns the value of the "cancellation" field in the mutation.
func (m *ScheduledEntryMutation) Cancellation() (r map[string]interface{}, exists bool) {
	v := m.cancellation
	if v == nil {
		return
	}
	return *v, true
}

// OldCancellation returns the old "cancellation" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldCancellation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancellation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancellation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancellation: %w", err)
	}
	return oldValue.Cancellation, nil
}

// ClearCancellation clears the value of the "cancellation" field.
func (m *ScheduledEntryMutation) ClearCancellation() {
	m.cancellation = nil
	m.clearedFields[scheduledentry.FieldCancellation] = struct{}{}
}

// CancellationCleared returns if the "cancellation" field was cleared in this mutation.
func (m *ScheduledEntryMutation) CancellationCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldCancellation]
	return ok
}

// ResetCancellation resets all changes to the "cancellation" field.
func (m *ScheduledEntryMutation) ResetCancellation() {
	m.cancellation = nil
	delete(m.clearedFields, scheduledentry.FieldCancellation)
}

// SetLeasedBy sets the "leased_by" field.
func (m *ScheduledEntryMutation) SetLeasedBy(s string) {
	m.leased_by = &s
}

// LeasedBy returns the value of the "leased_by" field in the mutation.
func (m *ScheduledEntryMutation) LeasedBy() (r string, exists bool) {
	v := m.leased_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedBy returns the old "leased_by" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldLeasedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedBy: %w", err)
	}
	return oldValue.LeasedBy, nil
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (m *ScheduledEntryMutation) ClearLeasedBy() {
	m.leased_by = nil
	m.clearedFields[scheduledentry.FieldLeasedBy] = struct{}{}
}

// LeasedByCleared returns if the "leased_by" field was cleared in this mutation.
func (m *ScheduledEntryMutation) LeasedByCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldLeasedBy]
	return ok
}

// ResetLeasedBy resets all changes to the "leased_by" field.
func (m *ScheduledEntryMutation) ResetLeasedBy() {
	m.leased_by = nil
	delete(m.clearedFields, scheduledentry.FieldLeasedBy)
}

// SetLeasedUntil sets the "leased_until" field.
func (m *ScheduledEntryMutation) SetLeasedUntil(t time.Time) {
	m.leased_until = &t
}

// LeasedUntil returns the value of the "leased_until" field in the mutation.
func (m *ScheduledEntryMutation) LeasedUntil() (r time.Time, exists bool) {
	v := m.leased_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedUntil returns the old "leased_until" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldLeasedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedUntil: %w", err)
	}
	return oldValue.LeasedUntil, nil
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (m *ScheduledEntryMutation) ClearLeasedUntil() {
	m.leased_until = nil
	m.clearedFields[scheduledentry.FieldLeasedUntil] = struct{}{}
}

// LeasedUntilCleared returns if the "leased_until" field was cleared in this mutation.
func (m *ScheduledEntryMutation) LeasedUntilCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldLeasedUntil]
	return ok
}

// ResetLeasedUntil resets all changes to the "leased_until" field.
func (m *ScheduledEntryMutation) ResetLeasedUntil() {
	m.leased_until = nil
	delete(m.clearedFields, scheduledentry.FieldLeasedUntil)
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (m *ScheduledEntryMutation) SetNextAttemptAt(t time.Time) {
	m.next_attempt_at = &t
}

// NextAttemptAt returns the value of the "next_attempt_at" field in the mutation.
func (m *ScheduledEntryMutation) NextAttemptAt() (r time.Time, exists bool) {
	v := m.next_attempt_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextAttemptAt returns the old "next_attempt_at" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldNextAttemptAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextAttemptAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextAttemptAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextAttemptAt: %w", err)
	}
	return oldValue.NextAttemptAt, nil
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (m *ScheduledEntryMutation) ClearNextAttemptAt() {
	m.next_attempt_at = nil
	m.clearedFields[scheduledentry.FieldNextAttemptAt] = struct{}{}
}

// NextAttemptAtCleared returns if the "next_attempt_at" field was cleared in this mutation.
func (m *ScheduledEntryMutation) NextAttemptAtCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldNextAttemptAt]
	return ok
}

// ResetNextAttemptAt resets all changes to the "next_attempt_at" field.
func (m *ScheduledEntryMutation) ResetNextAttemptAt() {
	m.next_attempt_at = nil
	delete(m.clearedFields, scheduledentry.FieldNextAttemptAt)
}

// SetLastError sets the "last_error" field.
func (m *ScheduledEntryMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ScheduledEntryMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ScheduledEntryMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[scheduledentry.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ScheduledEntryMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[scheduledentry.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ScheduledEntryMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, scheduledentry.FieldLastError)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduledEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduledEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ScheduledEntry entity.
// If the ScheduledEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ScheduledEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScheduledEntryMutation builder.
func (m *ScheduledEntryMutation) Where(ps ...predicate.ScheduledEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledEntry).
func (m *ScheduledEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledEntryMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.integration_id != nil {
		fields = append(fields, scheduledentry.FieldIntegrationID)
	}
	if m.org_id != nil {
		fields = append(fields, scheduledentry.FieldOrgID)
	}
	if m.original_event_id != nil {
		fields = append(fields, scheduledentry.FieldOriginalEventID)
	}
	if m.event_type != nil {
		fields = append(fields, scheduledentry.FieldEventType)
	}
	if m.scheduled_for != nil {
		fields = append(fields, scheduledentry.FieldScheduledFor)
	}
	if m.status != nil {
		fields = append(fields, scheduledentry.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, scheduledentry.FieldPayload)
	}
	if m.target_url != nil {
		fields = append(fields, scheduledentry.FieldTargetURL)
	}
	if m.http_method != nil {
		fields = append(fields, scheduledentry.FieldHTTPMethod)
	}
	if m.attempt_count != nil {
		fields = append(fields, scheduledentry.FieldAttemptCount)
	}
	if m.recurring != nil {
		fields = append(fields, scheduledentry.FieldRecurring)
	}
	if m.cancellation != nil {
		fields = append(fields, scheduledentry.FieldCancellation)
	}
	if m.leased_by != nil {
		fields = append(fields, scheduledentry.FieldLeasedBy)
	}
	if m.leased_until != nil {
		fields = append(fields, scheduledentry.FieldLeasedUntil)
	}
	if m.next_attempt_at != nil {
		fields = append(fields, scheduledentry.FieldNextAttemptAt)
	}
	if m.last_error != nil {
		fields = append(fields, scheduledentry.FieldLastError)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, scheduledentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledentry.FieldIntegrationID:
		return m.IntegrationID()
	case scheduledentry.FieldOrgID:
		return m.OrgID()
	case scheduledentry.FieldOriginalEventID:
		return m.OriginalEventID()
	case scheduledentry.FieldEventType:
		return m.EventType()
	case scheduledentry.FieldScheduledFor:
		return m.ScheduledFor()
	case scheduledentry.FieldStatus:
		return m.Status()
	case scheduledentry.FieldPayload:
		return m.Payload()
	case scheduledentry.FieldTargetURL:
		return m.TargetURL()
	case scheduledentry.FieldHTTPMethod:
		return m.HTTPMethod()
	case scheduledentry.FieldAttemptCount:
		return m.AttemptCount()
	case scheduledentry.FieldRecurring:
		return m.Recurring()
	case scheduledentry.FieldCancellation:
		return m.Cancellation()
	case scheduledentry.FieldLeasedBy:
		return m.LeasedBy()
	case scheduledentry.FieldLeasedUntil:
		return m.LeasedUntil()
	case scheduledentry.FieldNextAttemptAt:
		return m.NextAttemptAt()
	case scheduledentry.FieldLastError:
		return m.LastError()
	case scheduledentry.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledentry.FieldIntegrationID:
		return m.OldIntegrationID(ctx)
	case scheduledentry.FieldOrgID:
		return m.OldOrgID(ctx)
	case scheduledentry.FieldOriginalEventID:
		return m.OldOriginalEventID(ctx)
	case scheduledentry.FieldEventType:
		return m.OldEventType(ctx)
	case scheduledentry.FieldScheduledFor:
		return m.OldScheduledFor(ctx)
	case scheduledentry.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledentry.FieldPayload:
		return m.OldPayload(ctx)
	case scheduledentry.FieldTargetURL:
		return m.OldTargetURL(ctx)
	case scheduledentry.FieldHTTPMethod:
		return m.OldHTTPMethod(ctx)
	case scheduledentry.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case scheduledentry.FieldRecurring:
		return m.OldRecurring(ctx)
	case scheduledentry.FieldCancellation:
		return m.OldCancellation(ctx)
	case scheduledentry.FieldLeasedBy:
		return m.OldLeasedBy(ctx)
	case scheduledentry.FieldLeasedUntil:
		return m.OldLeasedUntil(ctx)
	case scheduledentry.FieldNextAttemptAt:
		return m.OldNextAttemptAt(ctx)
	case scheduledentry.FieldLastError:
		return m.OldLastError(ctx)
	case scheduledentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledentry.FieldIntegrationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntegrationID(v)
		return nil
	case scheduledentry.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case scheduledentry.FieldOriginalEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalEventID(v)
		return nil
	case scheduledentry.FieldEventType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case scheduledentry.FieldScheduledFor:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScheduledFor(v)
		return nil
	case scheduledentry.FieldStatus:
		v, ok := value.(scheduledentry.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledentry.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case scheduledentry.FieldTargetURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetURL(v)
		return nil
	case scheduledentry.FieldHTTPMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTTPMethod(v)
		return nil
	case scheduledentry.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case scheduledentry.FieldRecurring:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecurring(v)
		return nil
	case scheduledentry.FieldCancellation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancellation(v)
		return nil
	case scheduledentry.FieldLeasedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedBy(v)
		return nil
	case scheduledentry.FieldLeasedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedUntil(v)
		return nil
	case scheduledentry.FieldNextAttemptAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextAttemptAt(v)
		return nil
	case scheduledentry.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case scheduledentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledEntryMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_count != nil {
		fields = append(fields, scheduledentry.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scheduledentry.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scheduledentry.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledentry.FieldRecurring) {
		fields = append(fields, scheduledentry.FieldRecurring)
	}
	if m.FieldCleared(scheduledentry.FieldCancellation) {
		fields = append(fields, scheduledentry.FieldCancellation)
	}
	if m.FieldCleared(scheduledentry.FieldLeasedBy) {
		fields = append(fields, scheduledentry.FieldLeasedBy)
	}
	if m.FieldCleared(scheduledentry.FieldLeasedUntil) {
		fields = append(fields, scheduledentry.FieldLeasedUntil)
	}
	if m.FieldCleared(scheduledentry.FieldNextAttemptAt) {
		fields = append(fields, scheduledentry.FieldNextAttemptAt)
	}
	if m.FieldCleared(scheduledentry.FieldLastError) {
		fields = append(fields, scheduledentry.FieldLastError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledEntryMutation) ClearField(name string) error {
	switch name {
	case scheduledentry.FieldRecurring:
		m.ClearRecurring()
		return nil
	case scheduledentry.FieldCancellation:
		m.ClearCancellation()
		return nil
	case scheduledentry.FieldLeasedBy:
		m.ClearLeasedBy()
		return nil
	case scheduledentry.FieldLeasedUntil:
		m.ClearLeasedUntil()
		return nil
	case scheduledentry.FieldNextAttemptAt:
		m.ClearNextAttemptAt()
		return nil
	case scheduledentry.FieldLastError:
		m.ClearLastError()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledEntryMutation) ResetField(name string) error {
	switch name {
	case scheduledentry.FieldIntegrationID:
		m.ResetIntegrationID()
		return nil
	case scheduledentry.FieldOrgID:
		m.ResetOrgID()
		return nil
	case scheduledentry.FieldOriginalEventID:
		m.ResetOriginalEventID()
		return nil
	case scheduledentry.FieldEventType:
		m.ResetEventType()
		return nil
	case scheduledentry.FieldScheduledFor:
		m.ResetScheduledFor()
		return nil
	case scheduledentry.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledentry.FieldPayload:
		m.ResetPayload()
		return nil
	case scheduledentry.FieldTargetURL:
		m.ResetTargetURL()
		return nil
	case scheduledentry.FieldHTTPMethod:
		m.ResetHTTPMethod()
		return nil
	case scheduledentry.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case scheduledentry.FieldRecurring:
		m.ResetRecurring()
		return nil
	case scheduledentry.FieldCancellation:
		m.ResetCancellation()
		return nil
	case scheduledentry.FieldLeasedBy:
		m.ResetLeasedBy()
		return nil
	case scheduledentry.FieldLeasedUntil:
		m.ResetLeasedUntil()
		return nil
	case scheduledentry.FieldNextAttemptAt:
		m.ResetNextAttemptAt()
		return nil
	case scheduledentry.FieldLastError:
		m.ResetLastError()
		return nil
	case scheduledentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ScheduledEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ScheduledEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ScheduledEntry edge %s", name)
}

// SourceCheckpointMutation represents an operation that mutates the SourceCheckpoint nodes in the graph.
type SourceCheckpointMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	source               *string
	source_identifier    *string
	org_id               *string
	last_processed_id    *int64
	addlast_processed_id *int64
	last_processed_at    *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*SourceCheckpoint, error)
	predicates           []predicate.SourceCheckpoint
}

var _ ent.Mutation = (*SourceCheckpointMutation)(nil)

// sourcecheckpointOption allows management of the mutation configuration using functional options.
type sourcecheckpointOption func(*SourceCheckpointMutation)

// newSourceCheckpointMutation creates new mutation for the SourceCheckpoint entity.
func newSourceCheckpointMutation(c config, op Op, opts ...sourcecheckpointOption) *SourceCheckpointMutation {
	m := &SourceCheckpointMutation{
		config:        c,
		op:            op,
		typ:           TypeSourceCheckpoint,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSourceCheckpointID sets the ID field of the mutation.
func withSourceCheckpointID(id string) sourcecheckpointOption {
	return func(m *SourceCheckpointMutation) {
		var (
			err   error
			once  sync.Once
			value *SourceCheckpoint
		)
		m.oldValue = func(ctx context.Context) (*SourceCheckpoint, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SourceCheckpoint.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSourceCheckpoint sets the old SourceCheckpoint of the mutation.
func withSourceCheckpoint(node *SourceCheckpoint) sourcecheckpointOption {
	return func(m *SourceCheckpointMutation) {
		m.oldValue = func(context.Context) (*SourceCheckpoint, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SourceCheckpointMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SourceCheckpointMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SourceCheckpoint entities.
func (m *SourceCheckpointMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SourceCheckpointMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SourceCheckpointMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SourceCheckpoint.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSource sets the "source" field.
func (m *SourceCheckpointMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *SourceCheckpointMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the SourceCheckpoint entity.
// If the SourceCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCheckpointMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *SourceCheckpointMutation) ResetSource() {
	m.source = nil
}

// SetSourceIdentifier sets the "source_identifier" field.
func (m *SourceCheckpointMutation) SetSourceIdentifier(s string) {
	m.source_identifier = &s
}

// SourceIdentifier returns the value of the "source_identifier" field in the mutation.
func (m *SourceCheckpointMutation) SourceIdentifier() (r string, exists bool) {
	v := m.source_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceIdentifier returns the old "source_identifier" field's value of the SourceCheckpoint entity.
// If the SourceCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCheckpointMutation) OldSourceIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceIdentifier: %w", err)
	}
	return oldValue.SourceIdentifier, nil
}

// ResetSourceIdentifier resets all changes to the "source_identifier" field.
func (m *SourceCheckpointMutation) ResetSourceIdentifier() {
	m.source_identifier = nil
}

// SetOrgID sets the "org_id" field.
func (m *SourceCheckpointMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *SourceCheckpointMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the SourceCheckpoint entity.
// If the SourceCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCheckpointMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *SourceCheckpointMutation) ResetOrgID() {
	m.org_id = nil
}

// SetLastProcessedID sets the "last_processed_id" field.
func (m *SourceCheckpointMutation) SetLastProcessedID(i int64) {
	m.last_processed_id = &i
	m.addlast_processed_id = nil
}

// LastProcessedID returns the value of the "last_processed_id" field in the mutation.
func (m *SourceCheckpointMutation) LastProcessedID() (r int64, exists bool) {
	v := m.last_processed_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedID returns the old "last_processed_id" field's value of the SourceCheckpoint entity.
// If the SourceCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCheckpointMutation) OldLastProcessedID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedID: %w", err)
	}
	return oldValue.LastProcessedID, nil
}

// AddLastProcessedID adds i to the "last_processed_id" field.
func (m *SourceCheckpointMutation) AddLastProcessedID(i int64) {
	if m.addlast_processed_id != nil {
		*m.addlast_processed_id += i
	} else {
		m.addlast_processed_id = &i
	}
}

// AddedLastProcessedID returns the value that was added to the "last_processed_id" field in this mutation.
func (m *SourceCheckpointMutation) AddedLastProcessedID() (r int64, exists bool) {
	v := m.addlast_processed_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastProcessedID resets all changes to the "last_processed_id" field.
func (m *SourceCheckpointMutation) ResetLastProcessedID() {
	m.last_processed_id = nil
	m.addlast_processed_id = nil
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (m *SourceCheckpointMutation) SetLastProcessedAt(t time.Time) {
	m.last_processed_at = &t
}

// LastProcessedAt returns the value of the "last_processed_at" field in the mutation.
func (m *SourceCheckpointMutation) LastProcessedAt() (r time.Time, exists bool) {
	v := m.last_processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessedAt returns the old "last_processed_at" field's value of the SourceCheckpoint entity.
// If the SourceCheckpoint object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SourceCheckpointMutation) OldLastProcessedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessedAt: %w", err)
	}
	return oldValue.LastProcessedAt, nil
}

// ResetLastProcessedAt resets all changes to the "last_processed_at" field.
func (m *SourceCheckpointMutation) ResetLastProcessedAt() {
	m.last_processed_at = nil
}

// Where appends a list predicates to the SourceCheckpointMutation builder.
func (m *SourceCheckpointMutation) Where(ps ...predicate.SourceCheckpoint) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SourceCheckpointMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SourceCheckpointMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SourceCheckpoint, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SourceCheckpointMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SourceCheckpointMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SourceCheckpoint).
func (m *SourceCheckpointMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SourceCheckpointMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.source != nil {
		fields = append(fields, sourcecheckpoint.FieldSource)
	}
	if m.source_identifier != nil {
		fields = append(fields, sourcecheckpoint.FieldSourceIdentifier)
	}
	if m.org_id != nil {
		fields = append(fields, sourcecheckpoint.FieldOrgID)
	}
	if m.last_processed_id != nil {
		fields = append(fields, sourcecheckpoint.FieldLastProcessedID)
	}
	if m.last_processed_at != nil {
		fields = append(fields, sourcecheckpoint.FieldLastProcessedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SourceCheckpointMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sourcecheckpoint.FieldSource:
		return m.Source()
	case sourcecheckpoint.FieldSourceIdentifier:
		return m.SourceIdentifier()
	case sourcecheckpoint.FieldOrgID:
		return m.OrgID()
	case sourcecheckpoint.FieldLastProcessedID:
		return m.LastProcessedID()
	case sourcecheckpoint.FieldLastProcessedAt:
		return m.LastProcessedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SourceCheckpointMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sourcecheckpoint.FieldSource:
		return m.OldSource(ctx)
	case sourcecheckpoint.FieldSourceIdentifier:
		return m.OldSourceIdentifier(ctx)
	case sourcecheckpoint.FieldOrgID:
		return m.OldOrgID(ctx)
	case sourcecheckpoint.FieldLastProcessedID:
		return m.OldLastProcessedID(ctx)
	case sourcecheckpoint.FieldLastProcessedAt:
		return m.OldLastProcessedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SourceCheckpoint field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceCheckpointMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sourcecheckpoint.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case sourcecheckpoint.FieldSourceIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceIdentifier(v)
		return nil
	case sourcecheckpoint.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case sourcecheckpoint.FieldLastProcessedID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedID(v)
		return nil
	case sourcecheckpoint.FieldLastProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SourceCheckpoint field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SourceCheckpointMutation) AddedFields() []string {
	var fields []string
	if m.addlast_processed_id != nil {
		fields = append(fields, sourcecheckpoint.FieldLastProcessedID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SourceCheckpointMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sourcecheckpoint.FieldLastProcessedID:
		return m.AddedLastProcessedID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SourceCheckpointMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sourcecheckpoint.FieldLastProcessedID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastProcessedID(v)
		return nil
	}
	return fmt.Errorf("unknown SourceCheckpoint numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SourceCheckpointMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SourceCheckpointMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SourceCheckpointMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SourceCheckpoint nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SourceCheckpointMutation) ResetField(name string) error {
	switch name {
	case sourcecheckpoint.FieldSource:
		m.ResetSource()
		return nil
	case sourcecheckpoint.FieldSourceIdentifier:
		m.ResetSourceIdentifier()
		return nil
	case sourcecheckpoint.FieldOrgID:
		m.ResetOrgID()
		return nil
	case sourcecheckpoint.FieldLastProcessedID:
		m.ResetLastProcessedID()
		return nil
	case sourcecheckpoint.FieldLastProcessedAt:
		m.ResetLastProcessedAt()
		return nil
	}
	return fmt.Errorf("unknown SourceCheckpoint field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SourceCheckpointMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SourceCheckpointMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SourceCheckpointMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SourceCheckpointMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SourceCheckpointMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SourceCheckpointMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SourceCheckpointMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SourceCheckpoint unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SourceCheckpointMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SourceCheckpoint edge %s", name)
}
