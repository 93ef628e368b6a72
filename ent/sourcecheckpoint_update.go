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
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// SourceCheckpointUpdate is the builder for updating SourceCheckpoint entities.
type SourceCheckpointUpdate struct {
	config
	hooks    []Hook
	mutation *SourceCheckpointMutation
}

// Where appends a list predicates to the SourceCheckpointUpdate builder.
func (_u *SourceCheckpointUpdate) Where(ps ...predicate.SourceCheckpoint) *SourceCheckpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_u *SourceCheckpointUpdate) SetLastProcessedID(v int64) *SourceCheckpointUpdate {
	_u.mutation.ResetLastProcessedID()
	_u.mutation.SetLastProcessedID(v)
	return _u
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_u *SourceCheckpointUpdate) SetNillableLastProcessedID(v *int64) *SourceCheckpointUpdate {
	if v != nil {
		_u.SetLastProcessedID(*v)
	}
	return _u
}

// AddLastProcessedID adds value to the "last_processed_id" field.
func (_u *SourceCheckpointUpdate) AddLastProcessedID(v int64) *SourceCheckpointUpdate {
	_u.mutation.AddLastProcessedID(v)
	return _u
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_u *SourceCheckpointUpdate) SetLastProcessedAt(v time.Time) *SourceCheckpointUpdate {
	_u.mutation.SetLastProcessedAt(v)
	return _u
}

// Mutation returns the SourceCheckpointMutation object of the builder.
func (_u *SourceCheckpointUpdate) Mutation() *SourceCheckpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SourceCheckpointUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceCheckpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SourceCheckpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceCheckpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceCheckpointUpdate) defaults() {
	if _, ok := _u.mutation.LastProcessedAt(); !ok {
		v := sourcecheckpoint.UpdateDefaultLastProcessedAt()
		_u.mutation.SetLastProcessedAt(v)
	}
}

func (_u *SourceCheckpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourcecheckpoint.Table, sourcecheckpoint.Columns, sqlgraph.NewFieldSpec(sourcecheckpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LastProcessedID(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedID(); ok {
		_spec.AddField(sourcecheckpoint.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedAt(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcecheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SourceCheckpointUpdateOne is the builder for updating a single SourceCheckpoint entity.
type SourceCheckpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SourceCheckpointMutation
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_u *SourceCheckpointUpdateOne) SetLastProcessedID(v int64) *SourceCheckpointUpdateOne {
	_u.mutation.ResetLastProcessedID()
	_u.mutation.SetLastProcessedID(v)
	return _u
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_u *SourceCheckpointUpdateOne) SetNillableLastProcessedID(v *int64) *SourceCheckpointUpdateOne {
	if v != nil {
		_u.SetLastProcessedID(*v)
	}
	return _u
}

// AddLastProcessedID adds value to the "last_processed_id" field.
func (_u *SourceCheckpointUpdateOne) AddLastProcessedID(v int64) *SourceCheckpointUpdateOne {
	_u.mutation.AddLastProcessedID(v)
	return _u
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_u *SourceCheckpointUpdateOne) SetLastProcessedAt(v time.Time) *SourceCheckpointUpdateOne {
	_u.mutation.SetLastProcessedAt(v)
	return _u
}

// Mutation returns the SourceCheckpointMutation object of the builder.
func (_u *SourceCheckpointUpdateOne) Mutation() *SourceCheckpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the SourceCheckpointUpdate builder.
func (_u *SourceCheckpointUpdateOne) Where(ps ...predicate.SourceCheckpoint) *SourceCheckpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SourceCheckpointUpdateOne) Select(field string, fields ...string) *SourceCheckpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SourceCheckpoint entity.
func (_u *SourceCheckpointUpdateOne) Save(ctx context.Context) (*SourceCheckpoint, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SourceCheckpointUpdateOne) SaveX(ctx context.Context) *SourceCheckpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SourceCheckpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SourceCheckpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SourceCheckpointUpdateOne) defaults() {
	if _, ok := _u.mutation.LastProcessedAt(); !ok {
		v := sourcecheckpoint.UpdateDefaultLastProcessedAt()
		_u.mutation.SetLastProcessedAt(v)
	}
}

func (_u *SourceCheckpointUpdateOne) sqlSave(ctx context.Context) (_node *SourceCheckpoint, err error) {
	_spec := sqlgraph.NewUpdateSpec(sourcecheckpoint.Table, sourcecheckpoint.Columns, sqlgraph.NewFieldSpec(sourcecheckpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SourceCheckpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sourcecheckpoint.FieldID)
		for _, f := range fields {
			if !sourcecheckpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sourcecheckpoint.FieldID {
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
	if value, ok := _u.mutation.LastProcessedID(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastProcessedID(); ok {
		_spec.AddField(sourcecheckpoint.FieldLastProcessedID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastProcessedAt(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedAt, field.TypeTime, value)
	}
	_node = &SourceCheckpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sourcecheckpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
