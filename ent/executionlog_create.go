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
	"github.com/relayforge/relayforge/ent/deliveryattempt"
	"github.com/relayforge/relayforge/ent/executionlog"
)

// ExecutionLogCreate is the builder for creating a ExecutionLog entity.
type ExecutionLogCreate struct {
	config
	mutation *ExecutionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetParentTraceID sets the "parent_trace_id" field.
func (_c *ExecutionLogCreate) SetParentTraceID(v string) *ExecutionLogCreate {
	_c.mutation.SetParentTraceID(v)
	return _c
}

// SetNillableParentTraceID sets the "parent_trace_id" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableParentTraceID(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetParentTraceID(*v)
	}
	return _c
}

// SetDirection sets the "direction" field.
func (_c *ExecutionLogCreate) SetDirection(v executionlog.Direction) *ExecutionLogCreate {
	_c.mutation.SetDirection(v)
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *ExecutionLogCreate) SetTriggerType(v executionlog.TriggerType) *ExecutionLogCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *ExecutionLogCreate) SetIntegrationID(v string) *ExecutionLogCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetIntegrationName sets the "integration_name" field.
func (_c *ExecutionLogCreate) SetIntegrationName(v string) *ExecutionLogCreate {
	_c.mutation.SetIntegrationName(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *ExecutionLogCreate) SetOrgID(v string) *ExecutionLogCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *ExecutionLogCreate) SetEventID(v string) *ExecutionLogCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetNillableEventID sets the "event_id" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableEventID(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetEventID(*v)
	}
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ExecutionLogCreate) SetMessageID(v string) *ExecutionLogCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableMessageID(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetActionIndex sets the "action_index" field.
func (_c *ExecutionLogCreate) SetActionIndex(v int) *ExecutionLogCreate {
	_c.mutation.SetActionIndex(v)
	return _c
}

// SetNillableActionIndex sets the "action_index" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableActionIndex(v *int) *ExecutionLogCreate {
	if v != nil {
		_c.SetActionIndex(*v)
	}
	return _c
}

// SetRequest sets the "request" field.
func (_c *ExecutionLogCreate) SetRequest(v map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetSteps sets the "steps" field.
func (_c *ExecutionLogCreate) SetSteps(v []map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetSteps(v)
	return _c
}

// SetResponse sets the "response" field.
func (_c *ExecutionLogCreate) SetResponse(v map[string]interface{}) *ExecutionLogCreate {
	_c.mutation.SetResponse(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ExecutionLogCreate) SetErrorMessage(v string) *ExecutionLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableErrorMessage(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *ExecutionLogCreate) SetErrorKind(v string) *ExecutionLogCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableErrorKind(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExecutionLogCreate) SetStatus(v executionlog.Status) *ExecutionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableStatus(v *executionlog.Status) *ExecutionLogCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSkipReason sets the "skip_reason" field.
func (_c *ExecutionLogCreate) SetSkipReason(v string) *ExecutionLogCreate {
	_c.mutation.SetSkipReason(v)
	return _c
}

// SetNillableSkipReason sets the "skip_reason" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableSkipReason(v *string) *ExecutionLogCreate {
	if v != nil {
		_c.SetSkipReason(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *ExecutionLogCreate) SetAttempts(v int) *ExecutionLogCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableAttempts(v *int) *ExecutionLogCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExecutionLogCreate) SetStartedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableStartedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *ExecutionLogCreate) SetFinishedAt(v time.Time) *ExecutionLogCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableFinishedAt(v *time.Time) *ExecutionLogCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ExecutionLogCreate) SetDurationMs(v int64) *ExecutionLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ExecutionLogCreate) SetNillableDurationMs(v *int64) *ExecutionLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExecutionLogCreate) SetID(v string) *ExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDeliveryAttemptIDs adds the "delivery_attempts" edge to the DeliveryAttempt entity by IDs.
func (_c *ExecutionLogCreate) AddDeliveryAttemptIDs(ids ...string) *ExecutionLogCreate {
	_c.mutation.AddDeliveryAttemptIDs(ids...)
	return _c
}

// AddDeliveryAttempts adds the "delivery_attempts" edges to the DeliveryAttempt entity.
func (_c *ExecutionLogCreate) AddDeliveryAttempts(v ...*DeliveryAttempt) *ExecutionLogCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDeliveryAttemptIDs(ids...)
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_c *ExecutionLogCreate) Mutation() *ExecutionLogMutation {
	return _c.mutation
}

// Save creates the ExecutionLog in the database.
func (_c *ExecutionLogCreate) Save(ctx context.Context) (*ExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExecutionLogCreate) SaveX(ctx context.Context) *ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := executionlog.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := executionlog.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := executionlog.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExecutionLogCreate) check() error {
	if _, ok := _c.mutation.Direction(); !ok {
		return &ValidationError{Name: "direction", err: errors.New(`ent: missing required field "ExecutionLog.direction"`)}
	}
	if v, ok := _c.mutation.Direction(); ok {
		if err := executionlog.DirectionValidator(v); err != nil {
			return &ValidationError{Name: "direction", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.direction": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "ExecutionLog.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := executionlog.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "ExecutionLog.integration_id"`)}
	}
	if _, ok := _c.mutation.IntegrationName(); !ok {
		return &ValidationError{Name: "integration_name", err: errors.New(`ent: missing required field "ExecutionLog.integration_name"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ExecutionLog.org_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExecutionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := executionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExecutionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "ExecutionLog.attempts"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExecutionLog.started_at"`)}
	}
	return nil
}

func (_c *ExecutionLogCreate) sqlSave(ctx context.Context) (*ExecutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExecutionLogCreate) createSpec() (*ExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(executionlog.Table, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentTraceID(); ok {
		_spec.SetField(executionlog.FieldParentTraceID, field.TypeString, value)
		_node.ParentTraceID = &value
	}
	if value, ok := _c.mutation.Direction(); ok {
		_spec.SetField(executionlog.FieldDirection, field.TypeEnum, value)
		_node.Direction = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(executionlog.FieldTriggerType, field.TypeEnum, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(executionlog.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.IntegrationName(); ok {
		_spec.SetField(executionlog.FieldIntegrationName, field.TypeString, value)
		_node.IntegrationName = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(executionlog.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(executionlog.FieldEventID, field.TypeString, value)
		_node.EventID = &value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(executionlog.FieldMessageID, field.TypeString, value)
		_node.MessageID = &value
	}
	if value, ok := _c.mutation.ActionIndex(); ok {
		_spec.SetField(executionlog.FieldActionIndex, field.TypeInt, value)
		_node.ActionIndex = &value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(executionlog.FieldRequest, field.TypeJSON, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Steps(); ok {
		_spec.SetField(executionlog.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := _c.mutation.Response(); ok {
		_spec.SetField(executionlog.FieldResponse, field.TypeJSON, value)
		_node.Response = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(executionlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(executionlog.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(executionlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SkipReason(); ok {
		_spec.SetField(executionlog.FieldSkipReason, field.TypeString, value)
		_node.SkipReason = &value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(executionlog.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(executionlog.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(executionlog.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = &value
	}
	if nodes := _c.mutation.DeliveryAttemptsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionLog.Create().
//		SetParentTraceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionLogUpsert) {
//			SetParentTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionLogCreate) OnConflict(opts ...sql.ConflictOption) *ExecutionLogUpsertOne {
	_c.conflict = opts
	return &ExecutionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionLogCreate) OnConflictColumns(columns ...string) *ExecutionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionLogUpsertOne{
		create: _c,
	}
}

type (
	// ExecutionLogUpsertOne is the builder for "upsert"-ing
	//  one ExecutionLog node.
	ExecutionLogUpsertOne struct {
		create *ExecutionLogCreate
	}

	// ExecutionLogUpsert is the "OnConflict" setter.
	ExecutionLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetRequest sets the "request" field.
func (u *ExecutionLogUpsert) SetRequest(v map[string]interface{}) *ExecutionLogUpsert {
	u.Set(executionlog.FieldRequest, v)
	return u
}

// UpdateRequest sets the "request" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateRequest() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldRequest)
	return u
}

// ClearRequest clears the value of the "request" field.
func (u *ExecutionLogUpsert) ClearRequest() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldRequest)
	return u
}

// SetSteps sets the "steps" field.
func (u *ExecutionLogUpsert) SetSteps(v []map[string]interface{}) *ExecutionLogUpsert {
	u.Set(executionlog.FieldSteps, v)
	return u
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateSteps() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldSteps)
	return u
}

// ClearSteps clears the value of the "steps" field.
func (u *ExecutionLogUpsert) ClearSteps() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldSteps)
	return u
}

// SetResponse sets the "response" field.
func (u *ExecutionLogUpsert) SetResponse(v map[string]interface{}) *ExecutionLogUpsert {
	u.Set(executionlog.FieldResponse, v)
	return u
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateResponse() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldResponse)
	return u
}

// ClearResponse clears the value of the "response" field.
func (u *ExecutionLogUpsert) ClearResponse() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldResponse)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionLogUpsert) SetErrorMessage(v string) *ExecutionLogUpsert {
	u.Set(executionlog.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateErrorMessage() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionLogUpsert) ClearErrorMessage() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldErrorMessage)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *ExecutionLogUpsert) SetErrorKind(v string) *ExecutionLogUpsert {
	u.Set(executionlog.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateErrorKind() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ExecutionLogUpsert) ClearErrorKind() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldErrorKind)
	return u
}

// SetStatus sets the "status" field.
func (u *ExecutionLogUpsert) SetStatus(v executionlog.Status) *ExecutionLogUpsert {
	u.Set(executionlog.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateStatus() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldStatus)
	return u
}

// SetSkipReason sets the "skip_reason" field.
func (u *ExecutionLogUpsert) SetSkipReason(v string) *ExecutionLogUpsert {
	u.Set(executionlog.FieldSkipReason, v)
	return u
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateSkipReason() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldSkipReason)
	return u
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ExecutionLogUpsert) ClearSkipReason() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldSkipReason)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *ExecutionLogUpsert) SetAttempts(v int) *ExecutionLogUpsert {
	u.Set(executionlog.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateAttempts() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *ExecutionLogUpsert) AddAttempts(v int) *ExecutionLogUpsert {
	u.Add(executionlog.FieldAttempts, v)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExecutionLogUpsert) SetFinishedAt(v time.Time) *ExecutionLogUpsert {
	u.Set(executionlog.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateFinishedAt() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExecutionLogUpsert) ClearFinishedAt() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldFinishedAt)
	return u
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionLogUpsert) SetDurationMs(v int64) *ExecutionLogUpsert {
	u.Set(executionlog.FieldDurationMs, v)
	return u
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionLogUpsert) UpdateDurationMs() *ExecutionLogUpsert {
	u.SetExcluded(executionlog.FieldDurationMs)
	return u
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionLogUpsert) AddDurationMs(v int64) *ExecutionLogUpsert {
	u.Add(executionlog.FieldDurationMs, v)
	return u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ExecutionLogUpsert) ClearDurationMs() *ExecutionLogUpsert {
	u.SetNull(executionlog.FieldDurationMs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionLogUpsertOne) UpdateNewValues() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(executionlog.FieldID)
		}
		if _, exists := u.create.mutation.ParentTraceID(); exists {
			s.SetIgnore(executionlog.FieldParentTraceID)
		}
		if _, exists := u.create.mutation.Direction(); exists {
			s.SetIgnore(executionlog.FieldDirection)
		}
		if _, exists := u.create.mutation.TriggerType(); exists {
			s.SetIgnore(executionlog.FieldTriggerType)
		}
		if _, exists := u.create.mutation.IntegrationID(); exists {
			s.SetIgnore(executionlog.FieldIntegrationID)
		}
		if _, exists := u.create.mutation.IntegrationName(); exists {
			s.SetIgnore(executionlog.FieldIntegrationName)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(executionlog.FieldOrgID)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(executionlog.FieldEventID)
		}
		if _, exists := u.create.mutation.MessageID(); exists {
			s.SetIgnore(executionlog.FieldMessageID)
		}
		if _, exists := u.create.mutation.ActionIndex(); exists {
			s.SetIgnore(executionlog.FieldActionIndex)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(executionlog.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExecutionLogUpsertOne) Ignore() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionLogUpsertOne) DoNothing() *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionLogCreate.OnConflict
// documentation for more info.
func (u *ExecutionLogUpsertOne) Update(set func(*ExecutionLogUpsert)) *ExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequest sets the "request" field.
func (u *ExecutionLogUpsertOne) SetRequest(v map[string]interface{}) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetRequest(v)
	})
}

// UpdateRequest sets the "request" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateRequest() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateRequest()
	})
}

// ClearRequest clears the value of the "request" field.
func (u *ExecutionLogUpsertOne) ClearRequest() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearRequest()
	})
}

// SetSteps sets the "steps" field.
func (u *ExecutionLogUpsertOne) SetSteps(v []map[string]interface{}) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateSteps() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *ExecutionLogUpsertOne) ClearSteps() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearSteps()
	})
}

// SetResponse sets the "response" field.
func (u *ExecutionLogUpsertOne) SetResponse(v map[string]interface{}) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateResponse() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *ExecutionLogUpsertOne) ClearResponse() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionLogUpsertOne) SetErrorMessage(v string) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateErrorMessage() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionLogUpsertOne) ClearErrorMessage() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ExecutionLogUpsertOne) SetErrorKind(v string) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateErrorKind() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ExecutionLogUpsertOne) ClearErrorKind() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearErrorKind()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionLogUpsertOne) SetStatus(v executionlog.Status) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateStatus() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *ExecutionLogUpsertOne) SetSkipReason(v string) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateSkipReason() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ExecutionLogUpsertOne) ClearSkipReason() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearSkipReason()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExecutionLogUpsertOne) SetAttempts(v int) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExecutionLogUpsertOne) AddAttempts(v int) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateAttempts() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateAttempts()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExecutionLogUpsertOne) SetFinishedAt(v time.Time) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateFinishedAt() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExecutionLogUpsertOne) ClearFinishedAt() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearFinishedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionLogUpsertOne) SetDurationMs(v int64) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionLogUpsertOne) AddDurationMs(v int64) *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionLogUpsertOne) UpdateDurationMs() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ExecutionLogUpsertOne) ClearDurationMs() *ExecutionLogUpsertOne {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *ExecutionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExecutionLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExecutionLogUpsertOne.ID is not supported by MySQL driver. Use ExecutionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExecutionLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExecutionLogCreateBulk is the builder for creating many ExecutionLog entities in bulk.
type ExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ExecutionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ExecutionLog entities in the database.
func (_c *ExecutionLogCreateBulk) Save(ctx context.Context) ([]*ExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExecutionLogMutation)
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
func (_c *ExecutionLogCreateBulk) SaveX(ctx context.Context) []*ExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExecutionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExecutionLogUpsert) {
//			SetParentTraceID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExecutionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExecutionLogUpsertBulk {
	_c.conflict = opts
	return &ExecutionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExecutionLogCreateBulk) OnConflictColumns(columns ...string) *ExecutionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExecutionLogUpsertBulk{
		create: _c,
	}
}

// ExecutionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ExecutionLog nodes.
type ExecutionLogUpsertBulk struct {
	create *ExecutionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(executionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExecutionLogUpsertBulk) UpdateNewValues() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(executionlog.FieldID)
			}
			if _, exists := b.mutation.ParentTraceID(); exists {
				s.SetIgnore(executionlog.FieldParentTraceID)
			}
			if _, exists := b.mutation.Direction(); exists {
				s.SetIgnore(executionlog.FieldDirection)
			}
			if _, exists := b.mutation.TriggerType(); exists {
				s.SetIgnore(executionlog.FieldTriggerType)
			}
			if _, exists := b.mutation.IntegrationID(); exists {
				s.SetIgnore(executionlog.FieldIntegrationID)
			}
			if _, exists := b.mutation.IntegrationName(); exists {
				s.SetIgnore(executionlog.FieldIntegrationName)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(executionlog.FieldOrgID)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(executionlog.FieldEventID)
			}
			if _, exists := b.mutation.MessageID(); exists {
				s.SetIgnore(executionlog.FieldMessageID)
			}
			if _, exists := b.mutation.ActionIndex(); exists {
				s.SetIgnore(executionlog.FieldActionIndex)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(executionlog.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExecutionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExecutionLogUpsertBulk) Ignore() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExecutionLogUpsertBulk) DoNothing() *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExecutionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ExecutionLogUpsertBulk) Update(set func(*ExecutionLogUpsert)) *ExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetRequest sets the "request" field.
func (u *ExecutionLogUpsertBulk) SetRequest(v map[string]interface{}) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetRequest(v)
	})
}

// UpdateRequest sets the "request" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateRequest() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateRequest()
	})
}

// ClearRequest clears the value of the "request" field.
func (u *ExecutionLogUpsertBulk) ClearRequest() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearRequest()
	})
}

// SetSteps sets the "steps" field.
func (u *ExecutionLogUpsertBulk) SetSteps(v []map[string]interface{}) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetSteps(v)
	})
}

// UpdateSteps sets the "steps" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateSteps() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateSteps()
	})
}

// ClearSteps clears the value of the "steps" field.
func (u *ExecutionLogUpsertBulk) ClearSteps() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearSteps()
	})
}

// SetResponse sets the "response" field.
func (u *ExecutionLogUpsertBulk) SetResponse(v map[string]interface{}) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetResponse(v)
	})
}

// UpdateResponse sets the "response" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateResponse() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateResponse()
	})
}

// ClearResponse clears the value of the "response" field.
func (u *ExecutionLogUpsertBulk) ClearResponse() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearResponse()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *ExecutionLogUpsertBulk) SetErrorMessage(v string) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateErrorMessage() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *ExecutionLogUpsertBulk) ClearErrorMessage() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearErrorMessage()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *ExecutionLogUpsertBulk) SetErrorKind(v string) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateErrorKind() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *ExecutionLogUpsertBulk) ClearErrorKind() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearErrorKind()
	})
}

// SetStatus sets the "status" field.
func (u *ExecutionLogUpsertBulk) SetStatus(v executionlog.Status) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateStatus() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateStatus()
	})
}

// SetSkipReason sets the "skip_reason" field.
func (u *ExecutionLogUpsertBulk) SetSkipReason(v string) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetSkipReason(v)
	})
}

// UpdateSkipReason sets the "skip_reason" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateSkipReason() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateSkipReason()
	})
}

// ClearSkipReason clears the value of the "skip_reason" field.
func (u *ExecutionLogUpsertBulk) ClearSkipReason() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearSkipReason()
	})
}

// SetAttempts sets the "attempts" field.
func (u *ExecutionLogUpsertBulk) SetAttempts(v int) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *ExecutionLogUpsertBulk) AddAttempts(v int) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateAttempts() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateAttempts()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *ExecutionLogUpsertBulk) SetFinishedAt(v time.Time) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateFinishedAt() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *ExecutionLogUpsertBulk) ClearFinishedAt() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearFinishedAt()
	})
}

// SetDurationMs sets the "duration_ms" field.
func (u *ExecutionLogUpsertBulk) SetDurationMs(v int64) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.SetDurationMs(v)
	})
}

// AddDurationMs adds v to the "duration_ms" field.
func (u *ExecutionLogUpsertBulk) AddDurationMs(v int64) *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.AddDurationMs(v)
	})
}

// UpdateDurationMs sets the "duration_ms" field to the value that was provided on create.
func (u *ExecutionLogUpsertBulk) UpdateDurationMs() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.UpdateDurationMs()
	})
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (u *ExecutionLogUpsertBulk) ClearDurationMs() *ExecutionLogUpsertBulk {
	return u.Update(func(s *ExecutionLogUpsert) {
		s.ClearDurationMs()
	})
}

// Exec executes the query.
func (u *ExecutionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExecutionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExecutionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExecutionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
