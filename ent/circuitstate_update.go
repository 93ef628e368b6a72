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
	"github.com/relayforge/relayforge/ent/circuitstate"
	"github.com/relayforge/relayforge/ent/predicate"
)

// CircuitStateUpdate is the builder for updating CircuitState entities.
type CircuitStateUpdate struct {
	config
	hooks    []Hook
	mutation *CircuitStateMutation
}

// Where appends a list predicates to the CircuitStateUpdate builder.
func (_u *CircuitStateUpdate) Where(ps ...predicate.CircuitState) *CircuitStateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntegrationID sets the "integration_id" field.
func (_u *CircuitStateUpdate) SetIntegrationID(v string) *CircuitStateUpdate {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *CircuitStateUpdate) SetNillableIntegrationID(v *string) *CircuitStateUpdate {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *CircuitStateUpdate) SetConsecutiveFailures(v int) *CircuitStateUpdate {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *CircuitStateUpdate) SetNillableConsecutiveFailures(v *int) *CircuitStateUpdate {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *CircuitStateUpdate) AddConsecutiveFailures(v int) *CircuitStateUpdate {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CircuitStateUpdate) SetState(v circuitstate.State) *CircuitStateUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CircuitStateUpdate) SetNillableState(v *circuitstate.State) *CircuitStateUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CircuitStateUpdate) SetOpenedAt(v time.Time) *CircuitStateUpdate {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CircuitStateUpdate) SetNillableOpenedAt(v *time.Time) *CircuitStateUpdate {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CircuitStateUpdate) ClearOpenedAt() *CircuitStateUpdate {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetNextProbeAt sets the "next_probe_at" field.
func (_u *CircuitStateUpdate) SetNextProbeAt(v time.Time) *CircuitStateUpdate {
	_u.mutation.SetNextProbeAt(v)
	return _u
}

// SetNillableNextProbeAt sets the "next_probe_at" field if the given value is not nil.
func (_u *CircuitStateUpdate) SetNillableNextProbeAt(v *time.Time) *CircuitStateUpdate {
	if v != nil {
		_u.SetNextProbeAt(*v)
	}
	return _u
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (_u *CircuitStateUpdate) ClearNextProbeAt() *CircuitStateUpdate {
	_u.mutation.ClearNextProbeAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CircuitStateUpdate) SetUpdatedAt(v time.Time) *CircuitStateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CircuitStateMutation object of the builder.
func (_u *CircuitStateUpdate) Mutation() *CircuitStateMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CircuitStateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitStateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CircuitStateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitStateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CircuitStateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := circuitstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitStateUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := circuitstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CircuitStateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitstate.Table, circuitstate.Columns, sqlgraph.NewFieldSpec(circuitstate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(circuitstate.FieldIntegrationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(circuitstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(circuitstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(circuitstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(circuitstate.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(circuitstate.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextProbeAt(); ok {
		_spec.SetField(circuitstate.FieldNextProbeAt, field.TypeTime, value)
	}
	if _u.mutation.NextProbeAtCleared() {
		_spec.ClearField(circuitstate.FieldNextProbeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(circuitstate.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CircuitStateUpdateOne is the builder for updating a single CircuitState entity.
type CircuitStateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CircuitStateMutation
}

// SetIntegrationID sets the "integration_id" field.
func (_u *CircuitStateUpdateOne) SetIntegrationID(v string) *CircuitStateUpdateOne {
	_u.mutation.SetIntegrationID(v)
	return _u
}

// SetNillableIntegrationID sets the "integration_id" field if the given value is not nil.
func (_u *CircuitStateUpdateOne) SetNillableIntegrationID(v *string) *CircuitStateUpdateOne {
	if v != nil {
		_u.SetIntegrationID(*v)
	}
	return _u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_u *CircuitStateUpdateOne) SetConsecutiveFailures(v int) *CircuitStateUpdateOne {
	_u.mutation.ResetConsecutiveFailures()
	_u.mutation.SetConsecutiveFailures(v)
	return _u
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_u *CircuitStateUpdateOne) SetNillableConsecutiveFailures(v *int) *CircuitStateUpdateOne {
	if v != nil {
		_u.SetConsecutiveFailures(*v)
	}
	return _u
}

// AddConsecutiveFailures adds value to the "consecutive_failures" field.
func (_u *CircuitStateUpdateOne) AddConsecutiveFailures(v int) *CircuitStateUpdateOne {
	_u.mutation.AddConsecutiveFailures(v)
	return _u
}

// SetState sets the "state" field.
func (_u *CircuitStateUpdateOne) SetState(v circuitstate.State) *CircuitStateUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *CircuitStateUpdateOne) SetNillableState(v *circuitstate.State) *CircuitStateUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetOpenedAt sets the "opened_at" field.
func (_u *CircuitStateUpdateOne) SetOpenedAt(v time.Time) *CircuitStateUpdateOne {
	_u.mutation.SetOpenedAt(v)
	return _u
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_u *CircuitStateUpdateOne) SetNillableOpenedAt(v *time.Time) *CircuitStateUpdateOne {
	if v != nil {
		_u.SetOpenedAt(*v)
	}
	return _u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (_u *CircuitStateUpdateOne) ClearOpenedAt() *CircuitStateUpdateOne {
	_u.mutation.ClearOpenedAt()
	return _u
}

// SetNextProbeAt sets the "next_probe_at" field.
func (_u *CircuitStateUpdateOne) SetNextProbeAt(v time.Time) *CircuitStateUpdateOne {
	_u.mutation.SetNextProbeAt(v)
	return _u
}

// SetNillableNextProbeAt sets the "next_probe_at" field if the given value is not nil.
func (_u *CircuitStateUpdateOne) SetNillableNextProbeAt(v *time.Time) *CircuitStateUpdateOne {
	if v != nil {
		_u.SetNextProbeAt(*v)
	}
	return _u
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (_u *CircuitStateUpdateOne) ClearNextProbeAt() *CircuitStateUpdateOne {
	_u.mutation.ClearNextProbeAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CircuitStateUpdateOne) SetUpdatedAt(v time.Time) *CircuitStateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CircuitStateMutation object of the builder.
func (_u *CircuitStateUpdateOne) Mutation() *CircuitStateMutation {
	return _u.mutation
}

// Where appends a list predicates to the CircuitStateUpdate builder.
func (_u *CircuitStateUpdateOne) Where(ps ...predicate.CircuitState) *CircuitStateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CircuitStateUpdateOne) Select(field string, fields ...string) *CircuitStateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CircuitState entity.
func (_u *CircuitStateUpdateOne) Save(ctx context.Context) (*CircuitState, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CircuitStateUpdateOne) SaveX(ctx context.Context) *CircuitState {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CircuitStateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CircuitStateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CircuitStateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := circuitstate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CircuitStateUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := circuitstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitState.state": %w`, err)}
		}
	}
	return nil
}

func (_u *CircuitStateUpdateOne) sqlSave(ctx context.Context) (_node *CircuitState, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(circuitstate.Table, circuitstate.Columns, sqlgraph.NewFieldSpec(circuitstate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CircuitState.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, circuitstate.FieldID)
		for _, f := range fields {
			if !circuitstate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != circuitstate.FieldID {
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
	if value, ok := _u.mutation.IntegrationID(); ok {
		_spec.SetField(circuitstate.FieldIntegrationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(circuitstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConsecutiveFailures(); ok {
		_spec.AddField(circuitstate.FieldConsecutiveFailures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(circuitstate.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.OpenedAt(); ok {
		_spec.SetField(circuitstate.FieldOpenedAt, field.TypeTime, value)
	}
	if _u.mutation.OpenedAtCleared() {
		_spec.ClearField(circuitstate.FieldOpenedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextProbeAt(); ok {
		_spec.SetField(circuitstate.FieldNextProbeAt, field.TypeTime, value)
	}
	if _u.mutation.NextProbeAtCleared() {
		_spec.ClearField(circuitstate.FieldNextProbeAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(circuitstate.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CircuitState{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{circuitstate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
