// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/relayforge/relayforge/ent/eventaudit"
	"github.com/relayforge/relayforge/ent/predicate"
)

// EventAuditUpdate is the builder for updating EventAudit entities.
type EventAuditUpdate struct {
	config
	hooks    []Hook
	mutation *EventAuditMutation
}

// Where appends a list predicates to the EventAuditUpdate builder.
func (_u *EventAuditUpdate) Where(ps ...predicate.EventAudit) *EventAuditUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPayload sets the "payload" field.
func (_u *EventAuditUpdate) SetPayload(v map[string]interface{}) *EventAuditUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventAuditUpdate) SetStatus(v eventaudit.Status) *EventAuditUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventAuditUpdate) SetNillableStatus(v *eventaudit.Status) *EventAuditUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *EventAuditUpdate) SetTimeline(v []map[string]interface{}) *EventAuditUpdate {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *EventAuditUpdate) AppendTimeline(v []map[string]interface{}) *EventAuditUpdate {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *EventAuditUpdate) ClearTimeline() *EventAuditUpdate {
	_u.mutation.ClearTimeline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventAuditUpdate) SetUpdatedAt(v time.Time) *EventAuditUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EventAuditUpdate) SetExpiresAt(v time.Time) *EventAuditUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EventAuditUpdate) SetNillableExpiresAt(v *time.Time) *EventAuditUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the EventAuditMutation object of the builder.
func (_u *EventAuditUpdate) Mutation() *EventAuditMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EventAuditUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventAuditUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EventAuditUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventAuditUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventAuditUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventaudit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventAuditUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventaudit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventAudit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventAuditUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventaudit.Table, eventaudit.Columns, sqlgraph.NewFieldSpec(eventaudit.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(eventaudit.FieldSourceID, field.TypeString)
	}
	if _u.mutation.OrgUnitIDCleared() {
		_spec.ClearField(eventaudit.FieldOrgUnitID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(eventaudit.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.EventKeyCleared() {
		_spec.ClearField(eventaudit.FieldEventKey, field.TypeString)
	}
	if _u.mutation.ReceivedAtBucketCleared() {
		_spec.ClearField(eventaudit.FieldReceivedAtBucket, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventaudit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(eventaudit.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventaudit.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(eventaudit.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventaudit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(eventaudit.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EventAuditUpdateOne is the builder for updating a single EventAudit entity.
type EventAuditUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EventAuditMutation
}

// SetPayload sets the "payload" field.
func (_u *EventAuditUpdateOne) SetPayload(v map[string]interface{}) *EventAuditUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *EventAuditUpdateOne) SetStatus(v eventaudit.Status) *EventAuditUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *EventAuditUpdateOne) SetNillableStatus(v *eventaudit.Status) *EventAuditUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTimeline sets the "timeline" field.
func (_u *EventAuditUpdateOne) SetTimeline(v []map[string]interface{}) *EventAuditUpdateOne {
	_u.mutation.SetTimeline(v)
	return _u
}

// AppendTimeline appends value to the "timeline" field.
func (_u *EventAuditUpdateOne) AppendTimeline(v []map[string]interface{}) *EventAuditUpdateOne {
	_u.mutation.AppendTimeline(v)
	return _u
}

// ClearTimeline clears the value of the "timeline" field.
func (_u *EventAuditUpdateOne) ClearTimeline() *EventAuditUpdateOne {
	_u.mutation.ClearTimeline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EventAuditUpdateOne) SetUpdatedAt(v time.Time) *EventAuditUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *EventAuditUpdateOne) SetExpiresAt(v time.Time) *EventAuditUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *EventAuditUpdateOne) SetNillableExpiresAt(v *time.Time) *EventAuditUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the EventAuditMutation object of the builder.
func (_u *EventAuditUpdateOne) Mutation() *EventAuditMutation {
	return _u.mutation
}

// Where appends a list predicates to the EventAuditUpdate builder.
func (_u *EventAuditUpdateOne) Where(ps ...predicate.EventAudit) *EventAuditUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EventAuditUpdateOne) Select(field string, fields ...string) *EventAuditUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EventAudit entity.
func (_u *EventAuditUpdateOne) Save(ctx context.Context) (*EventAudit, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EventAuditUpdateOne) SaveX(ctx context.Context) *EventAudit {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EventAuditUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EventAuditUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *EventAuditUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := eventaudit.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EventAuditUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := eventaudit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventAudit.status": %w`, err)}
		}
	}
	return nil
}

func (_u *EventAuditUpdateOne) sqlSave(ctx context.Context) (_node *EventAudit, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(eventaudit.Table, eventaudit.Columns, sqlgraph.NewFieldSpec(eventaudit.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EventAudit.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, eventaudit.FieldID)
		for _, f := range fields {
			if !eventaudit.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != eventaudit.FieldID {
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
	if _u.mutation.SourceIDCleared() {
		_spec.ClearField(eventaudit.FieldSourceID, field.TypeString)
	}
	if _u.mutation.OrgUnitIDCleared() {
		_spec.ClearField(eventaudit.FieldOrgUnitID, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(eventaudit.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.EventKeyCleared() {
		_spec.ClearField(eventaudit.FieldEventKey, field.TypeString)
	}
	if _u.mutation.ReceivedAtBucketCleared() {
		_spec.ClearField(eventaudit.FieldReceivedAtBucket, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(eventaudit.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Timeline(); ok {
		_spec.SetField(eventaudit.FieldTimeline, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTimeline(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, eventaudit.FieldTimeline, value)
		})
	}
	if _u.mutation.TimelineCleared() {
		_spec.ClearField(eventaudit.FieldTimeline, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(eventaudit.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(eventaudit.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &EventAudit{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{eventaudit.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
