// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/relayforge/relayforge/ent/dlqentry"
	"github.com/relayforge/relayforge/ent/predicate"
)

// DLQEntryUpdate is the builder for updating DLQEntry entities.
type DLQEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DLQEntryMutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdate) Where(ps ...predicate.DLQEntry) *DLQEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *DLQEntryUpdate) SetPayload(v map[string]interface{}) *DLQEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DLQEntryUpdate) SetErrorMessage(v string) *DLQEntryUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableErrorMessage(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DLQEntryUpdate) SetErrorCode(v string) *DLQEntryUpdate {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableErrorCode(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *DLQEntryUpdate) SetStatusCode(v int) *DLQEntryUpdate {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableStatusCode(v *int) *DLQEntryUpdate {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *DLQEntryUpdate) AddStatusCode(v int) *DLQEntryUpdate {
	_u.mutation.AddStatusCode(v)
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *DLQEntryUpdate) ClearStatusCode() *DLQEntryUpdate {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *DLQEntryUpdate) SetMaxRetries(v int) *DLQEntryUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableMaxRetries(v *int) *DLQEntryUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *DLQEntryUpdate) AddMaxRetries(v int) *DLQEntryUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_u *DLQEntryUpdate) SetRetryStrategy(v string) *DLQEntryUpdate {
	_u.mutation.SetRetryStrategy(v)
	return _u
}

// SetNillableRetryStrategy sets the "retry_strategy" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableRetryStrategy(v *string) *DLQEntryUpdate {
	if v != nil {
		_u.SetRetryStrategy(*v)
	}
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *DLQEntryUpdate) SetNextAttemptAt(v time.Time) *DLQEntryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableNextAttemptAt(v *time.Time) *DLQEntryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *DLQEntryUpdate) ClearNextAttemptAt() *DLQEntryUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DLQEntryUpdate) SetAttempts(v int) *DLQEntryUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableAttempts(v *int) *DLQEntryUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DLQEntryUpdate) AddAttempts(v int) *DLQEntryUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DLQEntryUpdate) SetStatus(v dlqentry.Status) *DLQEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DLQEntryUpdate) SetNillableStatus(v *dlqentry.Status) *DLQEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DLQEntryUpdate) SetUpdatedAt(v time.Time) *DLQEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdate) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DLQEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DLQEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DLQEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dlqentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLQEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dlqentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DLQEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActionIndexCleared() {
		_spec.ClearField(dlqentry.FieldActionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(dlqentry.FieldErrorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(dlqentry.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(dlqentry.FieldStatusCode, field.TypeInt, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(dlqentry.FieldStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(dlqentry.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(dlqentry.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryStrategy(); ok {
		_spec.SetField(dlqentry.FieldRetryStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(dlqentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(dlqentry.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(dlqentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(dlqentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dlqentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dlqentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DLQEntryUpdateOne is the builder for updating a single DLQEntry entity.
type DLQEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DLQEntryMutation
}

// SetPayload sets the "payload" field.
func (_u *DLQEntryUpdateOne) SetPayload(v map[string]interface{}) *DLQEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DLQEntryUpdateOne) SetErrorMessage(v string) *DLQEntryUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableErrorMessage(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetErrorCode sets the "error_code" field.
func (_u *DLQEntryUpdateOne) SetErrorCode(v string) *DLQEntryUpdateOne {
	_u.mutation.SetErrorCode(v)
	return _u
}

// SetNillableErrorCode sets the "error_code" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableErrorCode(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetErrorCode(*v)
	}
	return _u
}

// SetStatusCode sets the "status_code" field.
func (_u *DLQEntryUpdateOne) SetStatusCode(v int) *DLQEntryUpdateOne {
	_u.mutation.ResetStatusCode()
	_u.mutation.SetStatusCode(v)
	return _u
}

// SetNillableStatusCode sets the "status_code" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableStatusCode(v *int) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetStatusCode(*v)
	}
	return _u
}

// AddStatusCode adds value to the "status_code" field.
func (_u *DLQEntryUpdateOne) AddStatusCode(v int) *DLQEntryUpdateOne {
	_u.mutation.AddStatusCode(v)
	return _u
}

// ClearStatusCode clears the value of the "status_code" field.
func (_u *DLQEntryUpdateOne) ClearStatusCode() *DLQEntryUpdateOne {
	_u.mutation.ClearStatusCode()
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *DLQEntryUpdateOne) SetMaxRetries(v int) *DLQEntryUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableMaxRetries(v *int) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *DLQEntryUpdateOne) AddMaxRetries(v int) *DLQEntryUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetRetryStrategy sets the "retry_strategy" field.
func (_u *DLQEntryUpdateOne) SetRetryStrategy(v string) *DLQEntryUpdateOne {
	_u.mutation.SetRetryStrategy(v)
	return _u
}

// SetNillableRetryStrategy sets the "retry_strategy" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableRetryStrategy(v *string) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetRetryStrategy(*v)
	}
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *DLQEntryUpdateOne) SetNextAttemptAt(v time.Time) *DLQEntryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *DLQEntryUpdateOne) ClearNextAttemptAt() *DLQEntryUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *DLQEntryUpdateOne) SetAttempts(v int) *DLQEntryUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableAttempts(v *int) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *DLQEntryUpdateOne) AddAttempts(v int) *DLQEntryUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DLQEntryUpdateOne) SetStatus(v dlqentry.Status) *DLQEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DLQEntryUpdateOne) SetNillableStatus(v *dlqentry.Status) *DLQEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DLQEntryUpdateOne) SetUpdatedAt(v time.Time) *DLQEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DLQEntryMutation object of the builder.
func (_u *DLQEntryUpdateOne) Mutation() *DLQEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DLQEntryUpdate builder.
func (_u *DLQEntryUpdateOne) Where(ps ...predicate.DLQEntry) *DLQEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DLQEntryUpdateOne) Select(field string, fields ...string) *DLQEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DLQEntry entity.
func (_u *DLQEntryUpdateOne) Save(ctx context.Context) (*DLQEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) SaveX(ctx context.Context) *DLQEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DLQEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DLQEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DLQEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dlqentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DLQEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := dlqentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DLQEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DLQEntryUpdateOne) sqlSave(ctx context.Context) (_node *DLQEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dlqentry.Table, dlqentry.Columns, sqlgraph.NewFieldSpec(dlqentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DLQEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dlqentry.FieldID)
		for _, f := range fields {
			if !dlqentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dlqentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ActionIndexCleared() {
		_spec.ClearField(dlqentry.FieldActionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(dlqentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(dlqentry.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorCode(); ok {
		_spec.SetField(dlqentry.FieldErrorCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.StatusCode(); ok {
		_spec.SetField(dlqentry.FieldStatusCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatusCode(); ok {
		_spec.AddField(dlqentry.FieldStatusCode, field.TypeInt, value)
	}
	if _u.mutation.StatusCodeCleared() {
		_spec.ClearField(dlqentry.FieldStatusCode, field.TypeInt)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(dlqentry.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(dlqentry.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetryStrategy(); ok {
		_spec.SetField(dlqentry.FieldRetryStrategy, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(dlqentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(dlqentry.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(dlqentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(dlqentry.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(dlqentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dlqentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DLQEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dlqentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
