// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/relayforge/relayforge/ent/scheduledentry"
)

// ScheduledEntryCreate is the builder for creating a ScheduledEntry entity.
type ScheduledEntryCreate struct {
	config
	mutation *ScheduledEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntegrationID sets the "integration_id" field.
func (_c *ScheduledEntryCreate) SetIntegrationID(v string) *ScheduledEntryCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ScheduledEntryCreate) SetOrgID(v string) *ScheduledEntryCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetOriginalEventID sets the "original_event_id" field.
func (_c *ScheduledEntryCreate) SetOriginalEventID(v string) *ScheduledEntryCreate {
	_c.mutation.SetOriginalEventID(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *ScheduledEntryCreate) SetEventType(v string) *ScheduledEntryCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *ScheduledEntryCreate) SetScheduledFor(v time.Time) *ScheduledEntryCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledEntryCreate) SetStatus(v scheduledentry.Status) *ScheduledEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableStatus(v *scheduledentry.Status) *ScheduledEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *ScheduledEntryCreate) SetPayload(v map[string]interface{}) *ScheduledEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetTargetURL sets the "target_url" field.
func (_c *ScheduledEntryCreate) SetTargetURL(v string) *ScheduledEntryCreate {
	_c.mutation.SetTargetURL(v)
	return _c
}

// SetHTTPMethod sets the "http_method" field.
func (_c *ScheduledEntryCreate) SetHTTPMethod(v string) *ScheduledEntryCreate {
	_c.mutation.SetHTTPMethod(v)
	return _c
}

// SetNillableHTTPMethod sets the "http_method" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableHTTPMethod(v *string) *ScheduledEntryCreate {
	if v != nil {
		_c.SetHTTPMethod(*v)
	}
	return _c
}

// SetAttemptCount sets the "attempt_count" field.
func (_c *ScheduledEntryCreate) SetAttemptCount(v int) *ScheduledEntryCreate {
	_c.mutation.SetAttemptCount(v)
	return _c
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableAttemptCount(v *int) *ScheduledEntryCreate {
	if v != nil {
		_c.SetAttemptCount(*v)
	}
	return _c
}

// SetRecurring sets the "recurring" field.
func (_c *ScheduledEntryCreate) SetRecurring(v map[string]interface{}) *ScheduledEntryCreate {
	_c.mutation.SetRecurring(v)
	return _c
}

// SetCancellation sets the "cancellation" field.
func (_c *ScheduledEntryCreate) SetCancellation(v map[string]interface{}) *ScheduledEntryCreate {
	_c.mutation.SetCancellation(v)
	return _c
}

// SetLeasedBy sets the "leased_by" field.
func (_c *ScheduledEntryCreate) SetLeasedBy(v string) *ScheduledEntryCreate {
	_c.mutation.SetLeasedBy(v)
	return _c
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableLeasedBy(v *string) *ScheduledEntryCreate {
	if v != nil {
		_c.SetLeasedBy(*v)
	}
	return _c
}

// SetLeasedUntil sets the "leased_until" field.
func (_c *ScheduledEntryCreate) SetLeasedUntil(v time.Time) *ScheduledEntryCreate {
	_c.mutation.SetLeasedUntil(v)
	return _c
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableLeasedUntil(v *time.Time) *ScheduledEntryCreate {
	if v != nil {
		_c.SetLeasedUntil(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *ScheduledEntryCreate) SetNextAttemptAt(v time.Time) *ScheduledEntryCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableNextAttemptAt(v *time.Time) *ScheduledEntryCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *ScheduledEntryCreate) SetLastError(v string) *ScheduledEntryCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableLastError(v *string) *ScheduledEntryCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledEntryCreate) SetCreatedAt(v time.Time) *ScheduledEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableCreatedAt(v *time.Time) *ScheduledEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduledEntryCreate) SetUpdatedAt(v time.Time) *ScheduledEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduledEntryCreate) SetNillableUpdatedAt(v *time.Time) *ScheduledEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledEntryCreate) SetID(v string) *ScheduledEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ScheduledEntryMutation object of the builder.
func (_c *ScheduledEntryCreate) Mutation() *ScheduledEntryMutation {
	return _c.mutation
}

// Save creates the ScheduledEntry in the database.
func (_c *ScheduledEntryCreate) Save(ctx context.Context) (*ScheduledEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledEntryCreate) SaveX(ctx context.Context) *ScheduledEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledEntryCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HTTPMethod(); !ok {
		v := scheduledentry.DefaultHTTPMethod
		_c.mutation.SetHTTPMethod(v)
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		v := scheduledentry.DefaultAttemptCount
		_c.mutation.SetAttemptCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduledentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledEntryCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "ScheduledEntry.integration_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ScheduledEntry.org_id"`)}
	}
	if _, ok := _c.mutation.OriginalEventID(); !ok {
		return &ValidationError{Name: "original_event_id", err: errors.New(`ent: missing required field "ScheduledEntry.original_event_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "ScheduledEntry.event_type"`)}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "ScheduledEntry.scheduled_for"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "ScheduledEntry.payload"`)}
	}
	if _, ok := _c.mutation.TargetURL(); !ok {
		return &ValidationError{Name: "target_url", err: errors.New(`ent: missing required field "ScheduledEntry.target_url"`)}
	}
	if _, ok := _c.mutation.HTTPMethod(); !ok {
		return &ValidationError{Name: "http_method", err: errors.New(`ent: missing required field "ScheduledEntry.http_method"`)}
	}
	if _, ok := _c.mutation.AttemptCount(); !ok {
		return &ValidationError{Name: "attempt_count", err: errors.New(`ent: missing required field "ScheduledEntry.attempt_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ScheduledEntry.updated_at"`)}
	}
	return nil
}

func (_c *ScheduledEntryCreate) sqlSave(ctx context.Context) (*ScheduledEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ScheduledEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledEntryCreate) createSpec() (*ScheduledEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledentry.Table, sqlgraph.NewFieldSpec(scheduledentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(scheduledentry.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(scheduledentry.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.OriginalEventID(); ok {
		_spec.SetField(scheduledentry.FieldOriginalEventID, field.TypeString, value)
		_node.OriginalEventID = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(scheduledentry.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledentry.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(scheduledentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.TargetURL(); ok {
		_spec.SetField(scheduledentry.FieldTargetURL, field.TypeString, value)
		_node.TargetURL = value
	}
	if value, ok := _c.mutation.HTTPMethod(); ok {
		_spec.SetField(scheduledentry.FieldHTTPMethod, field.TypeString, value)
		_node.HTTPMethod = value
	}
	if value, ok := _c.mutation.AttemptCount(); ok {
		_spec.SetField(scheduledentry.FieldAttemptCount, field.TypeInt, value)
		_node.AttemptCount = value
	}
	if value, ok := _c.mutation.Recurring(); ok {
		_spec.SetField(scheduledentry.FieldRecurring, field.TypeJSON, value)
		_node.Recurring = value
	}
	if value, ok := _c.mutation.Cancellation(); ok {
		_spec.SetField(scheduledentry.FieldCancellation, field.TypeJSON, value)
		_node.Cancellation = value
	}
	if value, ok := _c.mutation.LeasedBy(); ok {
		_spec.SetField(scheduledentry.FieldLeasedBy, field.TypeString, value)
		_node.LeasedBy = &value
	}
	if value, ok := _c.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledentry.FieldLeasedUntil, field.TypeTime, value)
		_node.LeasedUntil = &value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(scheduledentry.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(scheduledentry.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledEntry.Create().
//		SetIntegrationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledEntryUpsert) {
//			SetIntegrationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledEntryCreate) OnConflict(opts ...sql.ConflictOption) *ScheduledEntryUpsertOne {
	_c.conflict = opts
	return &ScheduledEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledEntryCreate) OnConflictColumns(columns ...string) *ScheduledEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledEntryUpsertOne{
		create: _c,
	}
}

type (
	// ScheduledEntryUpsertOne is the builder for "upsert"-ing
	//  one ScheduledEntry node.
	ScheduledEntryUpsertOne struct {
		create *ScheduledEntryCreate
	}

	// ScheduledEntryUpsert is the "OnConflict" setter.
	ScheduledEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetScheduledFor sets the "scheduled_for" field.
func (u *ScheduledEntryUpsert) SetScheduledFor(v time.Time) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldScheduledFor, v)
	return u
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateScheduledFor() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldScheduledFor)
	return u
}

// SetStatus sets the "status" field.
func (u *ScheduledEntryUpsert) SetStatus(v scheduledentry.Status) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateStatus() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldStatus)
	return u
}

// SetPayload sets the "payload" field.
func (u *ScheduledEntryUpsert) SetPayload(v map[string]interface{}) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdatePayload() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldPayload)
	return u
}

// SetTargetURL sets the "target_url" field.
func (u *ScheduledEntryUpsert) SetTargetURL(v string) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldTargetURL, v)
	return u
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateTargetURL() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldTargetURL)
	return u
}

// SetHTTPMethod sets the "http_method" field.
func (u *ScheduledEntryUpsert) SetHTTPMethod(v string) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldHTTPMethod, v)
	return u
}

// UpdateHTTPMethod sets the "http_method" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateHTTPMethod() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldHTTPMethod)
	return u
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ScheduledEntryUpsert) SetAttemptCount(v int) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldAttemptCount, v)
	return u
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateAttemptCount() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldAttemptCount)
	return u
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ScheduledEntryUpsert) AddAttemptCount(v int) *ScheduledEntryUpsert {
	u.Add(scheduledentry.FieldAttemptCount, v)
	return u
}

// SetRecurring sets the "recurring" field.
func (u *ScheduledEntryUpsert) SetRecurring(v map[string]interface{}) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldRecurring, v)
	return u
}

// UpdateRecurring sets the "recurring" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateRecurring() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldRecurring)
	return u
}

// ClearRecurring clears the value of the "recurring" field.
func (u *ScheduledEntryUpsert) ClearRecurring() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldRecurring)
	return u
}

// SetCancellation sets the "cancellation" field.
func (u *ScheduledEntryUpsert) SetCancellation(v map[string]interface{}) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldCancellation, v)
	return u
}

// UpdateCancellation sets the "cancellation" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateCancellation() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldCancellation)
	return u
}

// ClearCancellation clears the value of the "cancellation" field.
func (u *ScheduledEntryUpsert) ClearCancellation() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldCancellation)
	return u
}

// SetLeasedBy sets the "leased_by" field.
func (u *ScheduledEntryUpsert) SetLeasedBy(v string) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldLeasedBy, v)
	return u
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateLeasedBy() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldLeasedBy)
	return u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *ScheduledEntryUpsert) ClearLeasedBy() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldLeasedBy)
	return u
}

// SetLeasedUntil sets the "leased_until" field.
func (u *ScheduledEntryUpsert) SetLeasedUntil(v time.Time) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldLeasedUntil, v)
	return u
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateLeasedUntil() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldLeasedUntil)
	return u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *ScheduledEntryUpsert) ClearLeasedUntil() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldLeasedUntil)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *ScheduledEntryUpsert) SetNextAttemptAt(v time.Time) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateNextAttemptAt() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldNextAttemptAt)
	return u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *ScheduledEntryUpsert) ClearNextAttemptAt() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldNextAttemptAt)
	return u
}

// SetLastError sets the "last_error" field.
func (u *ScheduledEntryUpsert) SetLastError(v string) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldLastError, v)
	return u
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateLastError() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldLastError)
	return u
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledEntryUpsert) ClearLastError() *ScheduledEntryUpsert {
	u.SetNull(scheduledentry.FieldLastError)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduledEntryUpsert) SetUpdatedAt(v time.Time) *ScheduledEntryUpsert {
	u.Set(scheduledentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsert) UpdateUpdatedAt() *ScheduledEntryUpsert {
	u.SetExcluded(scheduledentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledEntryUpsertOne) UpdateNewValues() *ScheduledEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(scheduledentry.FieldID)
		}
		if _, exists := u.create.mutation.IntegrationID(); exists {
			s.SetIgnore(scheduledentry.FieldIntegrationID)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(scheduledentry.FieldOrgID)
		}
		if _, exists := u.create.mutation.OriginalEventID(); exists {
			s.SetIgnore(scheduledentry.FieldOriginalEventID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(scheduledentry.FieldEventType)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(scheduledentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ScheduledEntryUpsertOne) Ignore() *ScheduledEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledEntryUpsertOne) DoNothing() *ScheduledEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledEntryCreate.OnConflict
// documentation for more info.
func (u *ScheduledEntryUpsertOne) Update(set func(*ScheduledEntryUpsert)) *ScheduledEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *ScheduledEntryUpsertOne) SetScheduledFor(v time.Time) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateScheduledFor() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateScheduledFor()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduledEntryUpsertOne) SetStatus(v scheduledentry.Status) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateStatus() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *ScheduledEntryUpsertOne) SetPayload(v map[string]interface{}) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdatePayload() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetTargetURL sets the "target_url" field.
func (u *ScheduledEntryUpsertOne) SetTargetURL(v string) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetTargetURL(v)
	})
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateTargetURL() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateTargetURL()
	})
}

// SetHTTPMethod sets the "http_method" field.
func (u *ScheduledEntryUpsertOne) SetHTTPMethod(v string) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetHTTPMethod(v)
	})
}

// UpdateHTTPMethod sets the "http_method" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateHTTPMethod() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateHTTPMethod()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ScheduledEntryUpsertOne) SetAttemptCount(v int) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ScheduledEntryUpsertOne) AddAttemptCount(v int) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateAttemptCount() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetRecurring sets the "recurring" field.
func (u *ScheduledEntryUpsertOne) SetRecurring(v map[string]interface{}) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetRecurring(v)
	})
}

// UpdateRecurring sets the "recurring" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateRecurring() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateRecurring()
	})
}

// ClearRecurring clears the value of the "recurring" field.
func (u *ScheduledEntryUpsertOne) ClearRecurring() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearRecurring()
	})
}

// SetCancellation sets the "cancellation" field.
func (u *ScheduledEntryUpsertOne) SetCancellation(v map[string]interface{}) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetCancellation(v)
	})
}

// UpdateCancellation sets the "cancellation" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateCancellation() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateCancellation()
	})
}

// ClearCancellation clears the value of the "cancellation" field.
func (u *ScheduledEntryUpsertOne) ClearCancellation() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearCancellation()
	})
}

// SetLeasedBy sets the "leased_by" field.
func (u *ScheduledEntryUpsertOne) SetLeasedBy(v string) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLeasedBy(v)
	})
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateLeasedBy() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLeasedBy()
	})
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *ScheduledEntryUpsertOne) ClearLeasedBy() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLeasedBy()
	})
}

// SetLeasedUntil sets the "leased_until" field.
func (u *ScheduledEntryUpsertOne) SetLeasedUntil(v time.Time) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLeasedUntil(v)
	})
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateLeasedUntil() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLeasedUntil()
	})
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *ScheduledEntryUpsertOne) ClearLeasedUntil() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLeasedUntil()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *ScheduledEntryUpsertOne) SetNextAttemptAt(v time.Time) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateNextAttemptAt() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *ScheduledEntryUpsertOne) ClearNextAttemptAt() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *ScheduledEntryUpsertOne) SetLastError(v string) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateLastError() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledEntryUpsertOne) ClearLastError() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduledEntryUpsertOne) SetUpdatedAt(v time.Time) *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsertOne) UpdateUpdatedAt() *ScheduledEntryUpsertOne {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScheduledEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ScheduledEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ScheduledEntryUpsertOne.ID is not supported by MySQL driver. Use ScheduledEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ScheduledEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ScheduledEntryCreateBulk is the builder for creating many ScheduledEntry entities in bulk.
type ScheduledEntryCreateBulk struct {
	config
	err      error
	builders []*ScheduledEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the ScheduledEntry entities in the database.
func (_c *ScheduledEntryCreateBulk) Save(ctx context.Context) ([]*ScheduledEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ScheduledEntryCreateBulk) SaveX(ctx context.Context) []*ScheduledEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ScheduledEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ScheduledEntryUpsert) {
//			SetIntegrationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ScheduledEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *ScheduledEntryUpsertBulk {
	_c.conflict = opts
	return &ScheduledEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ScheduledEntryCreateBulk) OnConflictColumns(columns ...string) *ScheduledEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ScheduledEntryUpsertBulk{
		create: _c,
	}
}

// ScheduledEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of ScheduledEntry nodes.
type ScheduledEntryUpsertBulk struct {
	create *ScheduledEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(scheduledentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ScheduledEntryUpsertBulk) UpdateNewValues() *ScheduledEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(scheduledentry.FieldID)
			}
			if _, exists := b.mutation.IntegrationID(); exists {
				s.SetIgnore(scheduledentry.FieldIntegrationID)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(scheduledentry.FieldOrgID)
			}
			if _, exists := b.mutation.OriginalEventID(); exists {
				s.SetIgnore(scheduledentry.FieldOriginalEventID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(scheduledentry.FieldEventType)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(scheduledentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ScheduledEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ScheduledEntryUpsertBulk) Ignore() *ScheduledEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ScheduledEntryUpsertBulk) DoNothing() *ScheduledEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ScheduledEntryCreateBulk.OnConflict
// documentation for more info.
func (u *ScheduledEntryUpsertBulk) Update(set func(*ScheduledEntryUpsert)) *ScheduledEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ScheduledEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetScheduledFor sets the "scheduled_for" field.
func (u *ScheduledEntryUpsertBulk) SetScheduledFor(v time.Time) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetScheduledFor(v)
	})
}

// UpdateScheduledFor sets the "scheduled_for" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateScheduledFor() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateScheduledFor()
	})
}

// SetStatus sets the "status" field.
func (u *ScheduledEntryUpsertBulk) SetStatus(v scheduledentry.Status) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateStatus() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetPayload sets the "payload" field.
func (u *ScheduledEntryUpsertBulk) SetPayload(v map[string]interface{}) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdatePayload() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetTargetURL sets the "target_url" field.
func (u *ScheduledEntryUpsertBulk) SetTargetURL(v string) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetTargetURL(v)
	})
}

// UpdateTargetURL sets the "target_url" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateTargetURL() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateTargetURL()
	})
}

// SetHTTPMethod sets the "http_method" field.
func (u *ScheduledEntryUpsertBulk) SetHTTPMethod(v string) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetHTTPMethod(v)
	})
}

// UpdateHTTPMethod sets the "http_method" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateHTTPMethod() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateHTTPMethod()
	})
}

// SetAttemptCount sets the "attempt_count" field.
func (u *ScheduledEntryUpsertBulk) SetAttemptCount(v int) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetAttemptCount(v)
	})
}

// AddAttemptCount adds v to the "attempt_count" field.
func (u *ScheduledEntryUpsertBulk) AddAttemptCount(v int) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.AddAttemptCount(v)
	})
}

// UpdateAttemptCount sets the "attempt_count" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateAttemptCount() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateAttemptCount()
	})
}

// SetRecurring sets the "recurring" field.
func (u *ScheduledEntryUpsertBulk) SetRecurring(v map[string]interface{}) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetRecurring(v)
	})
}

// UpdateRecurring sets the "recurring" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateRecurring() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateRecurring()
	})
}

// ClearRecurring clears the value of the "recurring" field.
func (u *ScheduledEntryUpsertBulk) ClearRecurring() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearRecurring()
	})
}

// SetCancellation sets the "cancellation" field.
func (u *ScheduledEntryUpsertBulk) SetCancellation(v map[string]interface{}) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetCancellation(v)
	})
}

// UpdateCancellation sets the "cancellation" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateCancellation() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateCancellation()
	})
}

// ClearCancellation clears the value of the "cancellation" field.
func (u *ScheduledEntryUpsertBulk) ClearCancellation() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearCancellation()
	})
}

// SetLeasedBy sets the "leased_by" field.
func (u *ScheduledEntryUpsertBulk) SetLeasedBy(v string) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLeasedBy(v)
	})
}

// UpdateLeasedBy sets the "leased_by" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateLeasedBy() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLeasedBy()
	})
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (u *ScheduledEntryUpsertBulk) ClearLeasedBy() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLeasedBy()
	})
}

// SetLeasedUntil sets the "leased_until" field.
func (u *ScheduledEntryUpsertBulk) SetLeasedUntil(v time.Time) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLeasedUntil(v)
	})
}

// UpdateLeasedUntil sets the "leased_until" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateLeasedUntil() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLeasedUntil()
	})
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (u *ScheduledEntryUpsertBulk) ClearLeasedUntil() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLeasedUntil()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *ScheduledEntryUpsertBulk) SetNextAttemptAt(v time.Time) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateNextAttemptAt() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *ScheduledEntryUpsertBulk) ClearNextAttemptAt() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetLastError sets the "last_error" field.
func (u *ScheduledEntryUpsertBulk) SetLastError(v string) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetLastError(v)
	})
}

// UpdateLastError sets the "last_error" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateLastError() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateLastError()
	})
}

// ClearLastError clears the value of the "last_error" field.
func (u *ScheduledEntryUpsertBulk) ClearLastError() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.ClearLastError()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ScheduledEntryUpsertBulk) SetUpdatedAt(v time.Time) *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ScheduledEntryUpsertBulk) UpdateUpdatedAt() *ScheduledEntryUpsertBulk {
	return u.Update(func(s *ScheduledEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ScheduledEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ScheduledEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ScheduledEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ScheduledEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
