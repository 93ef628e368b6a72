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
	"github.com/relayforge/relayforge/ent/dlqentry"
)

// DLQEntryCreate is the builder for creating a DLQEntry entity.
type DLQEntryCreate struct {
	config
	mutation *DLQEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTraceID sets the "trace_id" field.
func (_c *DLQEntryCreate) SetTraceID(v string) *DLQEntryCreate {
	_c.mutation.SetTraceID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *DLQEntryCreate) SetMessageID(v string) *DLQEntryCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *DLQEntryCreate) SetIntegrationID(v string) *DLQEntryCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *DLQEntryCreate) SetOrgID(v string) *DLQEntryCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetDirection sets the "direction" field.
func (_c *DLQEntryCreate) SetDirection(v dlqentry.Direction) *DLQEntryCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetActionIndex sets the "action_index" field.
func (_c *DLQEntryCreate) SetActionIndex(v int) *DLQEntryCreate {
	_c.mutation.SetActionIndex(v)
	return _c
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableActionIndex(v *int) *DLQEntryCreate {
	if v != nil {
		_c.SetActionIndex(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *DLQEntryCreate) SetPayload(v map[string]interface{}) *DLQEntryCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DLQEntryCreate) SetErrorMessage(v string) *DLQEntryCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetErrorCode sets the "error_code" field.
func (_c *DLQEntryCreate) SetErrorCode(v string) *DLQEntryCreate {
	_c.mutation.SetErrorCode(v)
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *DLQEntryCreate) SetStatusCode(v int) *DLQEntryCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableStatusCode(v *int) *DLQEntryCreate {
	if v != nil {
		_c.SetStatusCode(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *DLQEntryCreate) SetMaxRetries(v int) *DLQEntryCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_c *DLQEntryCreate) SetRetryStrategy(v string) *DLQEntryCreate {
	_c.mutation.SetRetryStrategy(v)
	return _c
}

// SetNillableRetryStrategy sets the "retry_strategy" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableRetryStrategy(v *string) *DLQEntryCreate {
	if v != nil {
		_c.SetRetryStrategy(*v)
	}
	return _c
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_c *DLQEntryCreate) SetNextAttemptAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetNextAttemptAt(v)
	return _c
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableNextAttemptAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetNextAttemptAt(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DLQEntryCreate) SetAttempts(v int) *DLQEntryCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableAttempts(v *int) *DLQEntryCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DLQEntryCreate) SetStatus(v dlqentry.Status) *DLQEntryCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableStatus(v *dlqentry.Status) *DLQEntryCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DLQEntryCreate) SetCreatedAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableCreatedAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DLQEntryCreate) SetUpdatedAt(v time.Time) *DLQEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DLQEntryCreate) SetNillableUpdatedAt(v *time.Time) *DLQEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DLQEntryCreate) SetID(v string) *DLQEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_c *DLQEntryCreate) Mutation() *DLQEntryMutation {
	return _c.mutation
}

// Save creates the DLQEntry in the database.
func (_c *DLQEntryCreate) Save(ctx context.Context) (*DLQEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DLQEntryCreate) SaveX(ctx context.Context) *DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DLQEntryCreate) defaults() {
	if _, ok := _c.mutation.RetryStrategy(); !ok {
		v := dlqentry.DefaultRetryStrategy
		_c.mutation.SetRetryStrategy(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := dlqentry.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := dlqentry.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dlqentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dlqentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DLQEntryCreate) check() error {
	if _, ok := _c.mutation.TraceID(); !ok {
		return &ValidationError{Name: "trace_id", err: errors.New(`ent: missing required field "DLQEntry.trace_id"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "DLQEntry.message_id"`)}
	}
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "DLQEntry.integration_id"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "DLQEntry.org_id"`)}
	}
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "DLQEntry.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := dlqentry.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "DLQEntry.payload"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "DLQEntry.error_message"`)}
	}
	if _, ok := _c.mutation.ErrorCode(); !ok {
		return &ValidationError{Name: "error_code", err: errors.New(`ent: missing required field "DLQEntry.error_code"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "DLQEntry.max_retries"`)}
	}
	if _, ok := _c.mutation.RetryStrategy(); !ok {
		return &ValidationError{Name: "retry_strategy", err: errors.New(`ent: missing required field "DLQEntry.retry_strategy"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "DLQEntry.attempts"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DLQEntry.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := dlqentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DLQEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DLQEntry.updated_at"`)}
	}
	return nil
}

func (_c *DLQEntryCreate) sqlSave(ctx context.Context) (*DLQEntry, error) {
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
			return nil, fmt.Errorf("unexpected DLQEntry.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DLQEntryCreate) createSpec() (*DLQEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DLQEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dlqentry.Table, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TraceID(); ok {
		_spec.SetField(dlqentry.FieldTraceID, field.TypeString, value)
		_node.TraceID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(dlqentry.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(dlqentry.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(dlqentry.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(dlqentry.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.ActionIndex(); ok {
		_spec.SetField(dlqentry.FieldActionIndex, field.TypeInt, value)
		_node.ActionIndex = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ErrorCode(); ok {
		_spec.SetField(dlqentry.FieldErrorCode, field.TypeString, value)
		_node.ErrorCode = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(dlqentry.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = &value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(dlqentry.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.RetryStrategy(); ok {
		_spec.SetField(dlqentry.FieldRetryStrategy, field.TypeString, value)
		_node.RetryStrategy = value
	}
	if value, ok := _c.mutation.NextAttemptAt(); ok {
		_spec.SetField(dlqentry.FieldNextAttemptAt, field.TypeTime, value)
		_node.NextAttemptAt = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(dlqentry.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(dlqentry.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dlqentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dlqentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DLQEntry.Create().
//		SetTraceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DLQEntryUpsert) {
//			SetTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DLQEntryCreate) OnConflict(opts ...sql.ConflictOption) *DLQEntryUpsertOne {
	_c.conflict = opts
	return &DLQEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DLQEntryCreate) OnConflictColumns(columns ...string) *DLQEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DLQEntryUpsertOne{
		create: _c,
	}
}

type (
	// DLQEntryUpsertOne is the builder for "upsert"-ing
	//  one DLQEntry node.
	DLQEntryUpsertOne struct {
		create *DLQEntryCreate
	}

	// DLQEntryUpsert is the "OnConflict" setter.
	DLQEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetPayload sets the "payload" field.
func (u *DLQEntryUpsert) SetPayload(v map[string]interface{}) *DLQEntryUpsert {
	u.Set(dlqentry.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdatePayload() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldPayload)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DLQEntryUpsert) SetErrorMessage(v string) *DLQEntryUpsert {
	u.Set(dlqentry.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateErrorMessage() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldErrorMessage)
	return u
}

// SetErrorCode sets the "error_code" field.
func (u *DLQEntryUpsert) SetErrorCode(v string) *DLQEntryUpsert {
	u.Set(dlqentry.FieldErrorCode, v)
	return u
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateErrorCode() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldErrorCode)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *DLQEntryUpsert) SetStatusCode(v int) *DLQEntryUpsert {
	u.Set(dlqentry.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateStatusCode() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldStatusCode)
	return u
}

// AddStatusCode adds v to the "status_code" field.
func (u *DLQEntryUpsert) AddStatusCode(v int) *DLQEntryUpsert {
	u.Add(dlqentry.FieldStatusCode, v)
	return u
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *DLQEntryUpsert) ClearStatusCode() *DLQEntryUpsert {
	u.SetNull(dlqentry.FieldStatusCode)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *DLQEntryUpsert) SetMaxRetries(v int) *DLQEntryUpsert {
	u.Set(dlqentry.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateMaxRetries() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *DLQEntryUpsert) AddMaxRetries(v int) *DLQEntryUpsert {
	u.Add(dlqentry.FieldMaxRetries, v)
	return u
}

// SetRetryStrategy sets the "retry_strategy" field.
func (u *DLQEntryUpsert) SetRetryStrategy(v string) *DLQEntryUpsert {
	u.Set(dlqentry.FieldRetryStrategy, v)
	return u
}

// UpdateRetryStrategy sets the "retry_strategy" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateRetryStrategy() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldRetryStrategy)
	return u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *DLQEntryUpsert) SetNextAttemptAt(v time.Time) *DLQEntryUpsert {
	u.Set(dlqentry.FieldNextAttemptAt, v)
	return u
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateNextAttemptAt() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldNextAttemptAt)
	return u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *DLQEntryUpsert) ClearNextAttemptAt() *DLQEntryUpsert {
	u.SetNull(dlqentry.FieldNextAttemptAt)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *DLQEntryUpsert) SetAttempts(v int) *DLQEntryUpsert {
	u.Set(dlqentry.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateAttempts() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *DLQEntryUpsert) AddAttempts(v int) *DLQEntryUpsert {
	u.Add(dlqentry.FieldAttempts, v)
	return u
}

// SetStatus sets the "status" field.
func (u *DLQEntryUpsert) SetStatus(v dlqentry.Status) *DLQEntryUpsert {
	u.Set(dlqentry.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateStatus() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldStatus)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLQEntryUpsert) SetUpdatedAt(v time.Time) *DLQEntryUpsert {
	u.Set(dlqentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLQEntryUpsert) UpdateUpdatedAt() *DLQEntryUpsert {
	u.SetExcluded(dlqentry.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dlqentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DLQEntryUpsertOne) UpdateNewValues() *DLQEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dlqentry.FieldID)
		}
		if _, exists := u.create.mutation.TraceID(); exists {
			s.SetIgnore(dlqentry.FieldTraceID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(dlqentry.FieldMessageID)
		}
		if _, exists := u.create.mutation.IntegrationID(); exists {
			s.SetIgnore(dlqentry.FieldIntegrationID)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(dlqentry.FieldOrgID)
		}
		if _, exists := u.create.mutation.Direction(); exists {
			s.SetIgnore(dlqentry.FieldDirection)
		}
		if _, exists := u.create.mutation.ActionIndex(); exists {
			s.SetIgnore(dlqentry.FieldActionIndex)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dlqentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DLQEntryUpsertOne) Ignore() *DLQEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DLQEntryUpsertOne) DoNothing() *DLQEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DLQEntryCreate.OnConflict
// documentation for more info.
func (u *DLQEntryUpsertOne) Update(set func(*DLQEntryUpsert)) *DLQEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DLQEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *DLQEntryUpsertOne) SetPayload(v map[string]interface{}) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdatePayload() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DLQEntryUpsertOne) SetErrorMessage(v string) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateErrorMessage() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *DLQEntryUpsertOne) SetErrorCode(v string) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateErrorCode() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateErrorCode()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *DLQEntryUpsertOne) SetStatusCode(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *DLQEntryUpsertOne) AddStatusCode(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateStatusCode() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *DLQEntryUpsertOne) ClearStatusCode() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.ClearStatusCode()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *DLQEntryUpsertOne) SetMaxRetries(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *DLQEntryUpsertOne) AddMaxRetries(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateMaxRetries() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetRetryStrategy sets the "retry_strategy" field.
func (u *DLQEntryUpsertOne) SetRetryStrategy(v string) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetRetryStrategy(v)
	})
}

// UpdateRetryStrategy sets the "retry_strategy" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateRetryStrategy() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateRetryStrategy()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *DLQEntryUpsertOne) SetNextAttemptAt(v time.Time) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateNextAttemptAt() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *DLQEntryUpsertOne) ClearNextAttemptAt() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DLQEntryUpsertOne) SetAttempts(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DLQEntryUpsertOne) AddAttempts(v int) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateAttempts() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *DLQEntryUpsertOne) SetStatus(v dlqentry.Status) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateStatus() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLQEntryUpsertOne) SetUpdatedAt(v time.Time) *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLQEntryUpsertOne) UpdateUpdatedAt() *DLQEntryUpsertOne {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DLQEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DLQEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DLQEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DLQEntryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DLQEntryUpsertOne.ID is not supported by MySQL driver. Use DLQEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DLQEntryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DLQEntryCreateBulk is the builder for creating many DLQEntry entities in bulk.
type DLQEntryCreateBulk struct {
	config
	err      error
	builders []*DLQEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the DLQEntry entities in the database.
func (_c *DLQEntryCreateBulk) Save(ctx context.Context) ([]*DLQEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DLQEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DLQEntryMutation)
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
func (_c *DLQEntryCreateBulk) SaveX(ctx context.Context) []*DLQEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DLQEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DLQEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DLQEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DLQEntryUpsert) {
//			SetTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *DLQEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *DLQEntryUpsertBulk {
	_c.conflict = opts
	return &DLQEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DLQEntryCreateBulk) OnConflictColumns(columns ...string) *DLQEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DLQEntryUpsertBulk{
		create: _c,
	}
}

// DLQEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of DLQEntry nodes.
type DLQEntryUpsertBulk struct {
	create *DLQEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dlqentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DLQEntryUpsertBulk) UpdateNewValues() *DLQEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dlqentry.FieldID)
			}
			if _, exists := b.mutation.TraceID(); exists {
				s.SetIgnore(dlqentry.FieldTraceID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(dlqentry.FieldMessageID)
			}
			if _, exists := b.mutation.IntegrationID(); exists {
				s.SetIgnore(dlqentry.FieldIntegrationID)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(dlqentry.FieldOrgID)
			}
			if _, exists := b.mutation.Direction(); exists {
				s.SetIgnore(dlqentry.FieldDirection)
			}
			if _, exists := b.mutation.ActionIndex(); exists {
				s.SetIgnore(dlqentry.FieldActionIndex)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dlqentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DLQEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DLQEntryUpsertBulk) Ignore() *DLQEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DLQEntryUpsertBulk) DoNothing() *DLQEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DLQEntryCreateBulk.OnConflict
// documentation for more info.
func (u *DLQEntryUpsertBulk) Update(set func(*DLQEntryUpsert)) *DLQEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DLQEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *DLQEntryUpsertBulk) SetPayload(v map[string]interface{}) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdatePayload() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdatePayload()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DLQEntryUpsertBulk) SetErrorMessage(v string) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateErrorMessage() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateErrorMessage()
	})
}

// SetErrorCode sets the "error_code" field.
func (u *DLQEntryUpsertBulk) SetErrorCode(v string) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetErrorCode(v)
	})
}

// UpdateErrorCode sets the "error_code" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateErrorCode() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateErrorCode()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *DLQEntryUpsertBulk) SetStatusCode(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *DLQEntryUpsertBulk) AddStatusCode(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateStatusCode() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateStatusCode()
	})
}

// ClearStatusCode clears the value of the "status_code" field.
func (u *DLQEntryUpsertBulk) ClearStatusCode() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.ClearStatusCode()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *DLQEntryUpsertBulk) SetMaxRetries(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *DLQEntryUpsertBulk) AddMaxRetries(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateMaxRetries() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetRetryStrategy sets the "retry_strategy" field.
func (u *DLQEntryUpsertBulk) SetRetryStrategy(v string) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetRetryStrategy(v)
	})
}

// UpdateRetryStrategy sets the "retry_strategy" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateRetryStrategy() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateRetryStrategy()
	})
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (u *DLQEntryUpsertBulk) SetNextAttemptAt(v time.Time) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetNextAttemptAt(v)
	})
}

// UpdateNextAttemptAt sets the "next_attempt_at" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateNextAttemptAt() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateNextAttemptAt()
	})
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (u *DLQEntryUpsertBulk) ClearNextAttemptAt() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.ClearNextAttemptAt()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DLQEntryUpsertBulk) SetAttempts(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DLQEntryUpsertBulk) AddAttempts(v int) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateAttempts() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateAttempts()
	})
}

// SetStatus sets the "status" field.
func (u *DLQEntryUpsertBulk) SetStatus(v dlqentry.Status) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateStatus() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateStatus()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DLQEntryUpsertBulk) SetUpdatedAt(v time.Time) *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DLQEntryUpsertBulk) UpdateUpdatedAt() *DLQEntryUpsertBulk {
	return u.Update(func(s *DLQEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DLQEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DLQEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DLQEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DLQEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
