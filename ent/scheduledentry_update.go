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
	"github.com/relayforge/relayforge/ent/predicate"
	"github.com/relayforge/relayforge/ent/scheduledentry"
)

// ScheduledEntryUpdate is the builder for updating ScheduledEntry entities.
type ScheduledEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledEntryMutation
}

// Where appends a list predicates to the ScheduledEntryUpdate builder.
func (_u *ScheduledEntryUpdate) Where(ps ...predicate.ScheduledEntry) *ScheduledEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledEntryUpdate) SetScheduledFor(v time.Time) *ScheduledEntryUpdate {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableScheduledFor(v *time.Time) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledEntryUpdate) SetStatus(v scheduledentry.Status) *ScheduledEntryUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableStatus(v *scheduledentry.Status) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledEntryUpdate) SetPayload(v map[string]interface{}) *ScheduledEntryUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *ScheduledEntryUpdate) SetTargetURL(v string) *ScheduledEntryUpdate {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableTargetURL(v *string) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetHTTPMethod sets the "http_method" field.
func (_u *ScheduledEntryUpdate) SetHTTPMethod(v string) *ScheduledEntryUpdate {
	_u.mutation.SetHTTPMethod(v)
	return _u
}

// SetNillableHTTPMethod sets the "http_method" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableHTTPMethod(v *string) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetHTTPMethod(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ScheduledEntryUpdate) SetAttemptCount(v int) *ScheduledEntryUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableAttemptCount(v *int) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ScheduledEntryUpdate) AddAttemptCount(v int) *ScheduledEntryUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetRecurring sets the "recurring" field.
func (_u *ScheduledEntryUpdate) SetRecurring(v map[string]interface{}) *ScheduledEntryUpdate {
	_u.mutation.SetRecurring(v)
	return _u
}

// ClearRecurring clears the value of the "recurring" field.
func (_u *ScheduledEntryUpdate) ClearRecurring() *ScheduledEntryUpdate {
	_u.mutation.ClearRecurring()
	return _u
}

// SetCancellation sets the "cancellation" field.
func (_u *ScheduledEntryUpdate) SetCancellation(v map[string]interface{}) *ScheduledEntryUpdate {
	_u.mutation.SetCancellation(v)
	return _u
}

// ClearCancellation clears the value of the "cancellation" field.
func (_u *ScheduledEntryUpdate) ClearCancellation() *ScheduledEntryUpdate {
	_u.mutation.ClearCancellation()
	return _u
}

// SetLeasedBy sets the "leased_by" field.
func (_u *ScheduledEntryUpdate) SetLeasedBy(v string) *ScheduledEntryUpdate {
	_u.mutation.SetLeasedBy(v)
	return _u
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableLeasedBy(v *string) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetLeasedBy(*v)
	}
	return _u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (_u *ScheduledEntryUpdate) ClearLeasedBy() *ScheduledEntryUpdate {
	_u.mutation.ClearLeasedBy()
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *ScheduledEntryUpdate) SetLeasedUntil(v time.Time) *ScheduledEntryUpdate {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableLeasedUntil(v *time.Time) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *ScheduledEntryUpdate) ClearLeasedUntil() *ScheduledEntryUpdate {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *ScheduledEntryUpdate) SetNextAttemptAt(v time.Time) *ScheduledEntryUpdate {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableNextAttemptAt(v *time.Time) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *ScheduledEntryUpdate) ClearNextAttemptAt() *ScheduledEntryUpdate {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledEntryUpdate) SetLastError(v string) *ScheduledEntryUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledEntryUpdate) SetNillableLastError(v *string) *ScheduledEntryUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledEntryUpdate) ClearLastError() *ScheduledEntryUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledEntryUpdate) SetUpdatedAt(v time.Time) *ScheduledEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledEntryMutation object of the builder.
func (_u *ScheduledEntryUpdate) Mutation() *ScheduledEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEntryUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledentry.Table, scheduledentry.Columns, sqlgraph.NewFieldSpec(scheduledentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledentry.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(scheduledentry.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HTTPMethod(); ok {
		_spec.SetField(scheduledentry.FieldHTTPMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(scheduledentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(scheduledentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recurring(); ok {
		_spec.SetField(scheduledentry.FieldRecurring, field.TypeJSON, value)
	}
	if _u.mutation.RecurringCleared() {
		_spec.ClearField(scheduledentry.FieldRecurring, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancellation(); ok {
		_spec.SetField(scheduledentry.FieldCancellation, field.TypeJSON, value)
	}
	if _u.mutation.CancellationCleared() {
		_spec.ClearField(scheduledentry.FieldCancellation, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeasedBy(); ok {
		_spec.SetField(scheduledentry.FieldLeasedBy, field.TypeString, value)
	}
	if _u.mutation.LeasedByCleared() {
		_spec.ClearField(scheduledentry.FieldLeasedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledentry.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(scheduledentry.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(scheduledentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(scheduledentry.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledEntryUpdateOne is the builder for updating a single ScheduledEntry entity.
type ScheduledEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledEntryMutation
}

// SetScheduledFor sets the "scheduled_for" field.
func (_u *ScheduledEntryUpdateOne) SetScheduledFor(v time.Time) *ScheduledEntryUpdateOne {
	_u.mutation.SetScheduledFor(v)
	return _u
}

// SetNillableScheduledFor sets the "scheduled_for" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableScheduledFor(v *time.Time) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetScheduledFor(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledEntryUpdateOne) SetStatus(v scheduledentry.Status) *ScheduledEntryUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableStatus(v *scheduledentry.Status) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *ScheduledEntryUpdateOne) SetPayload(v map[string]interface{}) *ScheduledEntryUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetTargetURL sets the "target_url" field.
func (_u *ScheduledEntryUpdateOne) SetTargetURL(v string) *ScheduledEntryUpdateOne {
	_u.mutation.SetTargetURL(v)
	return _u
}

// SetNillableTargetURL sets the "target_url" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableTargetURL(v *string) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetTargetURL(*v)
	}
	return _u
}

// SetHTTPMethod sets the "http_method" field.
func (_u *ScheduledEntryUpdateOne) SetHTTPMethod(v string) *ScheduledEntryUpdateOne {
	_u.mutation.SetHTTPMethod(v)
	return _u
}

// SetNillableHTTPMethod sets the "http_method" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableHTTPMethod(v *string) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetHTTPMethod(*v)
	}
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *ScheduledEntryUpdateOne) SetAttemptCount(v int) *ScheduledEntryUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableAttemptCount(v *int) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *ScheduledEntryUpdateOne) AddAttemptCount(v int) *ScheduledEntryUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetRecurring sets the "recurring" field.
func (_u *ScheduledEntryUpdateOne) SetRecurring(v map[string]interface{}) *ScheduledEntryUpdateOne {
	_u.mutation.SetRecurring(v)
	return _u
}

// ClearRecurring clears the value of the "recurring" field.
func (_u *ScheduledEntryUpdateOne) ClearRecurring() *ScheduledEntryUpdateOne {
	_u.mutation.ClearRecurring()
	return _u
}

// SetCancellation sets the "cancellation" field.
func (_u *ScheduledEntryUpdateOne) SetCancellation(v map[string]interface{}) *ScheduledEntryUpdateOne {
	_u.mutation.SetCancellation(v)
	return _u
}

// ClearCancellation clears the value of the "cancellation" field.
func (_u *ScheduledEntryUpdateOne) ClearCancellation() *ScheduledEntryUpdateOne {
	_u.mutation.ClearCancellation()
	return _u
}

// SetLeasedBy sets the "leased_by" field.
func (_u *ScheduledEntryUpdateOne) SetLeasedBy(v string) *ScheduledEntryUpdateOne {
	_u.mutation.SetLeasedBy(v)
	return _u
}

// SetNillableLeasedBy sets the "leased_by" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableLeasedBy(v *string) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetLeasedBy(*v)
	}
	return _u
}

// ClearLeasedBy clears the value of the "leased_by" field.
func (_u *ScheduledEntryUpdateOne) ClearLeasedBy() *ScheduledEntryUpdateOne {
	_u.mutation.ClearLeasedBy()
	return _u
}

// SetLeasedUntil sets the "leased_until" field.
func (_u *ScheduledEntryUpdateOne) SetLeasedUntil(v time.Time) *ScheduledEntryUpdateOne {
	_u.mutation.SetLeasedUntil(v)
	return _u
}

// SetNillableLeasedUntil sets the "leased_until" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableLeasedUntil(v *time.Time) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetLeasedUntil(*v)
	}
	return _u
}

// ClearLeasedUntil clears the value of the "leased_until" field.
func (_u *ScheduledEntryUpdateOne) ClearLeasedUntil() *ScheduledEntryUpdateOne {
	_u.mutation.ClearLeasedUntil()
	return _u
}

// SetNextAttemptAt sets the "next_attempt_at" field.
func (_u *ScheduledEntryUpdateOne) SetNextAttemptAt(v time.Time) *ScheduledEntryUpdateOne {
	_u.mutation.SetNextAttemptAt(v)
	return _u
}

// SetNillableNextAttemptAt sets the "next_attempt_at" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableNextAttemptAt(v *time.Time) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetNextAttemptAt(*v)
	}
	return _u
}

// ClearNextAttemptAt clears the value of the "next_attempt_at" field.
func (_u *ScheduledEntryUpdateOne) ClearNextAttemptAt() *ScheduledEntryUpdateOne {
	_u.mutation.ClearNextAttemptAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *ScheduledEntryUpdateOne) SetLastError(v string) *ScheduledEntryUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *ScheduledEntryUpdateOne) SetNillableLastError(v *string) *ScheduledEntryUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *ScheduledEntryUpdateOne) ClearLastError() *ScheduledEntryUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduledEntryUpdateOne) SetUpdatedAt(v time.Time) *ScheduledEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduledEntryMutation object of the builder.
func (_u *ScheduledEntryUpdateOne) Mutation() *ScheduledEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledEntryUpdate builder.
func (_u *ScheduledEntryUpdateOne) Where(ps ...predicate.ScheduledEntry) *ScheduledEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledEntryUpdateOne) Select(field string, fields ...string) *ScheduledEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledEntry entity.
func (_u *ScheduledEntryUpdateOne) Save(ctx context.Context) (*ScheduledEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledEntryUpdateOne) SaveX(ctx context.Context) *ScheduledEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduledEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduledentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledentry.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledEntry.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduledEntryUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledentry.Table, scheduledentry.Columns, sqlgraph.NewFieldSpec(scheduledentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledentry.FieldID)
		for _, f := range fields {
			if !scheduledentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledentry.FieldID {
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
	if value, ok := _u.mutation.ScheduledFor(); ok {
		_spec.SetField(scheduledentry.FieldScheduledFor, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledentry.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(scheduledentry.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.TargetURL(); ok {
		_spec.SetField(scheduledentry.FieldTargetURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HTTPMethod(); ok {
		_spec.SetField(scheduledentry.FieldHTTPMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(scheduledentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(scheduledentry.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Recurring(); ok {
		_spec.SetField(scheduledentry.FieldRecurring, field.TypeJSON, value)
	}
	if _u.mutation.RecurringCleared() {
		_spec.ClearField(scheduledentry.FieldRecurring, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancellation(); ok {
		_spec.SetField(scheduledentry.FieldCancellation, field.TypeJSON, value)
	}
	if _u.mutation.CancellationCleared() {
		_spec.ClearField(scheduledentry.FieldCancellation, field.TypeJSON)
	}
	if value, ok := _u.mutation.LeasedBy(); ok {
		_spec.SetField(scheduledentry.FieldLeasedBy, field.TypeString, value)
	}
	if _u.mutation.LeasedByCleared() {
		_spec.ClearField(scheduledentry.FieldLeasedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedUntil(); ok {
		_spec.SetField(scheduledentry.FieldLeasedUntil, field.TypeTime, value)
	}
	if _u.mutation.LeasedUntilCleared() {
		_spec.ClearField(scheduledentry.FieldLeasedUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.NextAttemptAt(); ok {
		_spec.SetField(scheduledentry.FieldNextAttemptAt, field.TypeTime, value)
	}
	if _u.mutation.NextAttemptAtCleared() {
		_spec.ClearField(scheduledentry.FieldNextAttemptAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(scheduledentry.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(scheduledentry.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduledentry.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ScheduledEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
