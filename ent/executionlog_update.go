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
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/executionlog"
	"github.com/relayforge/relayforge/ent/predicate"
)

// ExecutionLogUpdate is the builder for updating ExecutionLog entities.
type ExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdate) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequest sets the "request" field.
func (_u *ExecutionLogUpdate) SetRequest(v map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *ExecutionLogUpdate) ClearRequest() *ExecutionLogUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionLogUpdate) SetSteps(v []map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ExecutionLogUpdate) AppendSteps(v []map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *ExecutionLogUpdate) ClearSteps() *ExecutionLogUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// SetResponse sets the "response" field.
func (_u *ExecutionLogUpdate) SetResponse(v map[string]interface{}) *ExecutionLogUpdate {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ExecutionLogUpdate) ClearResponse() *ExecutionLogUpdate {
	_u.mutation.ClearResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionLogUpdate) SetErrorMessage(v string) *ExecutionLogUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableErrorMessage(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionLogUpdate) ClearErrorMessage() *ExecutionLogUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExecutionLogUpdate) SetErrorKind(v string) *ExecutionLogUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableErrorKind(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExecutionLogUpdate) ClearErrorKind() *ExecutionLogUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdate) SetStatus(v executionlog.Status) *ExecutionLogUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableStatus(v *executionlog.Status) *ExecutionLogUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionLogUpdate) SetSkipReason(v string) *ExecutionLogUpdate {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableSkipReason(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionLogUpdate) ClearSkipReason() *ExecutionLogUpdate {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExecutionLogUpdate) SetAttempts(v int) *ExecutionLogUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableAttempts(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExecutionLogUpdate) AddAttempts(v int) *ExecutionLogUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExecutionLogUpdate) SetFinishedAt(v time.Time) *ExecutionLogUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableFinishedAt(v *time.Time) *ExecutionLogUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExecutionLogUpdate) ClearFinishedAt() *ExecutionLogUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdate) SetDurationMs(v int64) *ExecutionLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableDurationMs(v *int64) *ExecutionLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdate) AddDurationMs(v int64) *ExecutionLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionLogUpdate) ClearDurationMs() *ExecutionLogUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the DeliveryAttempt entity by IDs.
func (_u *ExecutionLogUpdate) AddDeliveryAttemptIDs(ids ...string) *ExecutionLogUpdate {
	_u.mutation.AddDeliveryAttemptIDs(ids...)
	return _u
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the DeliveryAttempt entity.
func (_u *ExecutionLogUpdate) AddDeliveryAttempts(v ...*DeliveryAttempt) *ExecutionLogUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdate) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// ClearDeliveryAttempts clears all "delivery_attempts" edges to the DeliveryAttempt entity.
func (_u *ExecutionLogUpdate) ClearDeliveryAttempts() *ExecutionLogUpdate {
	_u.mutation.ClearDeliveryAttempts()
	return _u
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to DeliveryAttempt entities by IDs.
func (_u *ExecutionLogUpdate) RemoveDeliveryAttemptIDs(ids ...string) *ExecutionLogUpdate {
	_u.mutation.RemoveDeliveryAttemptIDs(ids...)
	return _u
}

// RemoveDeliveryAttempts removes "delivery_attempts" edges to DeliveryAttempt entities.
func (_u *ExecutionLogUpdate) RemoveDeliveryAttempts(v ...*DeliveryAttempt) *ExecutionLogUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryAttemptIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentTraceIDCleared() {
		_spec.ClearField(executionlog.FieldParentTraceID, field.TypeString)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(executionlog.FieldEventID, field.TypeString)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(executionlog.FieldMessageID, field.TypeString)
	}
	if _u.mutation.ActionIndexCleared() {
		_spec.ClearField(executionlog.FieldActionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(executionlog.FieldRequest, field.TypeJSON, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(executionlog.FieldRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(executionlog.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(executionlog.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(executionlog.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(executionlog.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(executionlog.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(executionlog.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(executionlog.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(executionlog.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(executionlog.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(executionlog.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(executionlog.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executionlog.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveryAttemptsIDs(); len(nodes) > 0 && !_u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionLogUpdateOne is the builder for updating a single ExecutionLog entity.
type ExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// SetRequest sets the "request" field.
func (_u *ExecutionLogUpdateOne) SetRequest(v map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// ClearRequest clears the value of the "request" field.
func (_u *ExecutionLogUpdateOne) ClearRequest() *ExecutionLogUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// SetSteps sets the "steps" field.
func (_u *ExecutionLogUpdateOne) SetSteps(v []map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.SetSteps(v)
	return _u
}

// AppendSteps appends value to the "steps" field.
func (_u *ExecutionLogUpdateOne) AppendSteps(v []map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.AppendSteps(v)
	return _u
}

// ClearSteps clears the value of the "steps" field.
func (_u *ExecutionLogUpdateOne) ClearSteps() *ExecutionLogUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// SetResponse sets the "response" field.
func (_u *ExecutionLogUpdateOne) SetResponse(v map[string]interface{}) *ExecutionLogUpdateOne {
	_u.mutation.SetResponse(v)
	return _u
}

// ClearResponse clears the value of the "response" field.
func (_u *ExecutionLogUpdateOne) ClearResponse() *ExecutionLogUpdateOne {
	_u.mutation.ClearResponse()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExecutionLogUpdateOne) SetErrorMessage(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableErrorMessage(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExecutionLogUpdateOne) ClearErrorMessage() *ExecutionLogUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *ExecutionLogUpdateOne) SetErrorKind(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableErrorKind(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *ExecutionLogUpdateOne) ClearErrorKind() *ExecutionLogUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExecutionLogUpdateOne) SetStatus(v executionlog.Status) *ExecutionLogUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableStatus(v *executionlog.Status) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSkipReason sets the "skip_reason" field.
func (_u *ExecutionLogUpdateOne) SetSkipReason(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetSkipReason(v)
	return _u
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableSkipReason(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetSkipReason(*v)
	}
	return _u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (_u *ExecutionLogUpdateOne) ClearSkipReason() *ExecutionLogUpdateOne {
	_u.mutation.ClearSkipReason()
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *ExecutionLogUpdateOne) SetAttempts(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableAttempts(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *ExecutionLogUpdateOne) AddAttempts(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *ExecutionLogUpdateOne) SetFinishedAt(v time.Time) *ExecutionLogUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableFinishedAt(v *time.Time) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *ExecutionLogUpdateOne) ClearFinishedAt() *ExecutionLogUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) SetDurationMs(v int64) *ExecutionLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableDurationMs(v *int64) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) AddDurationMs(v int64) *ExecutionLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) ClearDurationMs() *ExecutionLogUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the DeliveryAttempt entity by IDs.
func (_u *ExecutionLogUpdateOne) AddDeliveryAttemptIDs(ids ...string) *ExecutionLogUpdateOne {
	_u.mutation.AddDeliveryAttemptIDs(ids...)
	return _u
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the DeliveryAttempt entity.
func (_u *ExecutionLogUpdateOne) AddDeliveryAttempts(v ...*DeliveryAttempt) *ExecutionLogUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdateOne) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// ClearDeliveryAttempts clears all "delivery_attempts" edges to the DeliveryAttempt entity.
func (_u *ExecutionLogUpdateOne) ClearDeliveryAttempts() *ExecutionLogUpdateOne {
	_u.mutation.ClearDeliveryAttempts()
	return _u
}

// RemoveDeliveryAttemptIDs removes the "delivery_attempts" edge to DeliveryAttempt entities by IDs.
func (_u *ExecutionLogUpdateOne) RemoveDeliveryAttemptIDs(ids ...string) *ExecutionLogUpdateOne {
	_u.mutation.RemoveDeliveryAttemptIDs(ids...)
	return _u
}

// RemoveDeliveryAttempts removes "delivery_attempts" edges to DeliveryAttempt entities.
func (_u *ExecutionLogUpdateOne) RemoveDeliveryAttempts(v ...*DeliveryAttempt) *ExecutionLogUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDeliveryAttemptIDs(ids...)
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdateOne) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionLogUpdateOne) Select(field string, fields ...string) *ExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionLog entity.
func (_u *ExecutionLogUpdateOne) Save(ctx context.Context) (*ExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) SaveX(ctx context.Context) *ExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExecutionLogUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionlog.FieldID)
		for _, f := range fields {
			if !executionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionlog.FieldID {
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
	if _u.mutation.ParentTraceIDCleared() {
		_spec.ClearField(executionlog.FieldParentTraceID, field.TypeString)
	}
	if _u.mutation.EventIDCleared() {
		_spec.ClearField(executionlog.FieldEventID, field.TypeString)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(executionlog.FieldMessageID, field.TypeString)
	}
	if _u.mutation.ActionIndexCleared() {
		_spec.ClearField(executionlog.FieldActionIndex, field.TypeInt)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(executionlog.FieldRequest, field.TypeJSON, value)
	}
	if _u.mutation.RequestCleared() {
		_spec.ClearField(executionlog.FieldRequest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, executionlog.FieldSteps, value)
		})
	}
	if _u.mutation.StepsCleared() {
		_spec.ClearField(executionlog.FieldSteps, field.TypeJSON)
	}
	if value, ok := _u.mutation.Response(); ok {
		_spec.SetField(executionlog.FieldResponse, field.TypeJSON, value)
	}
	if _u.mutation.ResponseCleared() {
		_spec.ClearField(executionlog.FieldResponse, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(executionlog.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(executionlog.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(executionlog.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(executionlog.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.SkipReason(); ok {
		_spec.SetField(executionlog.FieldSkipReason, field.TypeString, value)
	}
	if _u.mutation.SkipReasonCleared() {
		_spec.ClearField(executionlog.FieldSkipReason, field.TypeString)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(executionlog.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(executionlog.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(executionlog.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(executionlog.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(executionlog.FieldDurationMs, field.TypeInt64)
	}
	if _u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDeliveryAttemptsIDs(); len(nodes) > 0 && !_u.mutation.DeliveryAttemptsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   executionlog.DeliveryAttemptsTable,
			Columns: []string{executionlog.DeliveryAttemptsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
