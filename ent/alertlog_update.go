// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/relayforge/relayforge/ent/alertlog"
	"github.com/relayforge/relayforge/ent/predicate"
)

// AlertLogUpdate is the builder for updating AlertLog entities.
type AlertLogUpdate struct {
	config
	hooks    []Hook
	mutation *AlertLogMutation
}

// Where appends a list predicates to the AlertLogUpdate builder.
func (_u *AlertLogUpdate) Where(ps ...predicate.AlertLog) *AlertLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the AlertLogMutation object of the builder.
func (_u *AlertLogUpdate) Mutation() *AlertLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AlertLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AlertLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertlog.Table, alertlog.Columns, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(alertlog.FieldRecipients, field.TypeJSON)
	}
	if _u.mutation.ProviderResponseCleared() {
		_spec.ClearField(alertlog.FieldProviderResponse, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AlertLogUpdateOne is the builder for updating a single AlertLog entity.
type AlertLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AlertLogMutation
}

// Mutation returns the AlertLogMutation object of the builder.
func (_u *AlertLogUpdateOne) Mutation() *AlertLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the AlertLogUpdate builder.
func (_u *AlertLogUpdateOne) Where(ps ...predicate.AlertLog) *AlertLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AlertLogUpdateOne) Select(field string, fields ...string) *AlertLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AlertLog entity.
func (_u *AlertLogUpdateOne) Save(ctx context.Context) (*AlertLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AlertLogUpdateOne) SaveX(ctx context.Context) *AlertLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AlertLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AlertLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AlertLogUpdateOne) sqlSave(ctx context.Context) (_node *AlertLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(alertlog.Table, alertlog.Columns, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AlertLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, alertlog.FieldID)
		for _, f := range fields {
			if !alertlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != alertlog.FieldID {
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
	if _u.mutation.RecipientsCleared() {
		_spec.ClearField(alertlog.FieldRecipients, field.TypeJSON)
	}
	if _u.mutation.ProviderResponseCleared() {
		_spec.ClearField(alertlog.FieldProviderResponse, field.TypeString)
	}
	_node = &AlertLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{alertlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
