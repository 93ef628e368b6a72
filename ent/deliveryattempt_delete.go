// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/predicate"
)

// DeliveryAttemptDelete is the builder for deleting a DeliveryAttempt entity.
type DeliveryAttemptDelete struct {
	config
	hooks    []Hook
	mutation *DeliveryAttemptMutation
}

// Where appends a list predicates to the DeliveryAttemptDelete builder.
func (_d *DeliveryAttemptDelete) Where(ps ...predicate.DeliveryAttempt) *DeliveryAttemptDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeliveryAttemptDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryAttemptDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeliveryAttemptDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deliveryattempt.Table, sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeliveryAttemptDeleteOne is the builder for deleting a single DeliveryAttempt entity.
type DeliveryAttemptDeleteOne struct {
	_d *DeliveryAttemptDelete
}

// Where appends a list predicates to the DeliveryAttemptDelete builder.
func (_d *DeliveryAttemptDeleteOne) Where(ps ...predicate.DeliveryAttempt) *DeliveryAttemptDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeliveryAttemptDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deliveryattempt.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeliveryAttemptDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
