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

// DeliveryAttemptCreate is the builder for creating a DeliveryAttempt entity.
type DeliveryAttemptCreate struct {
	config
	mutation *DeliveryAttemptMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDeliveryLogID sets the "delivery_log_id" field.
func (_c *DeliveryAttemptCreate) SetDeliveryLogID(v string) *DeliveryAttemptCreate {
	_c.mutation.SetDeliveryLogID(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *DeliveryAttemptCreate) SetAttemptNumber(v int) *DeliveryAttemptCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeliveryAttemptCreate) SetStatus(v deliveryattempt.Status) *DeliveryAttemptCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetResponseStatus sets the "response_status" field.
func (_c *DeliveryAttemptCreate) SetResponseStatus(v int) *DeliveryAttemptCreate {
	_c.mutation.SetResponseStatus(v)
	return _c
}

// SetNillableResponseStatus sets the "response_status" field if the given value is not nil.
func (_c *DeliveryAttemptCreate) SetNillableResponseStatus(v *int) *DeliveryAttemptCreate {
	if v != nil {
		_c.SetResponseStatus(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *DeliveryAttemptCreate) SetResponseTimeMs(v int64) *DeliveryAttemptCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DeliveryAttemptCreate) SetErrorMessage(v string) *DeliveryAttemptCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DeliveryAttemptCreate) SetNillableErrorMessage(v *string) *DeliveryAttemptCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetRetryReason sets the "retry_reason" field.
func (_c *DeliveryAttemptCreate) SetRetryReason(v string) *DeliveryAttemptCreate {
	_c.mutation.SetRetryReason(v)
	return _c
}

// SetNillableRetryReason sets the "retry_reason" field if the given value is not nil.
func (_c *DeliveryAttemptCreate) SetNillableRetryReason(v *string) *DeliveryAttemptCreate {
	if v != nil {
		_c.SetRetryReason(*v)
	}
	return _c
}

// SetRequestPayload sets the "request_payload" field.
func (_c *DeliveryAttemptCreate) SetRequestPayload(v map[string]interface{}) *DeliveryAttemptCreate {
	_c.mutation.SetRequestPayload(v)
	return _c
}

// SetAttemptedAt sets the "attempted_at" field.
func (_c *DeliveryAttemptCreate) SetAttemptedAt(v time.Time) *DeliveryAttemptCreate {
	_c.mutation.SetAttemptedAt(v)
	return _c
}

// SetNillableAttemptedAt sets the "attempted_at" field if the given value is not nil.
func (_c *DeliveryAttemptCreate) SetNillableAttemptedAt(v *time.Time) *DeliveryAttemptCreate {
	if v != nil {
		_c.SetAttemptedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryAttemptCreate) SetID(v string) *DeliveryAttemptCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetExecutionLogID sets the "execution_log" edge to the ExecutionLog entity by ID.
func (_c *DeliveryAttemptCreate) SetExecutionLogID(id string) *DeliveryAttemptCreate {
	_c.mutation.SetExecutionLogID(id)
	return _c
}

// SetExecutionLog sets the "execution_log" edge to the ExecutionLog entity.
func (_c *DeliveryAttemptCreate) SetExecutionLog(v *ExecutionLog) *DeliveryAttemptCreate {
	return _c.SetExecutionLogID(v.ID)
}

// Mutation returns the DeliveryAttemptMutation object of the builder.
func (_c *DeliveryAttemptCreate) Mutation() *DeliveryAttemptMutation {
	return _c.mutation
}

// Save creates the DeliveryAttempt in the database.
func (_c *DeliveryAttemptCreate) Save(ctx context.Context) (*DeliveryAttempt, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryAttemptCreate) SaveX(ctx context.Context) *DeliveryAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryAttemptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryAttemptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryAttemptCreate) defaults() {
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		v := deliveryattempt.DefaultAttemptedAt()
		_c.mutation.SetAttemptedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryAttemptCreate) check() error {
	if _, ok := _c.mutation.DeliveryLogID(); !ok {
		return &ValidationError{Name: "delivery_log_id", err: errors.New(`ent: missing required field "DeliveryAttempt.delivery_log_id"`)}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "DeliveryAttempt.attempt_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeliveryAttempt.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deliveryattempt.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryAttempt.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "DeliveryAttempt.response_time_ms"`)}
	}
	if _, ok := _c.mutation.AttemptedAt(); !ok {
		return &ValidationError{Name: "attempted_at", err: errors.New(`ent: missing required field "DeliveryAttempt.attempted_at"`)}
	}
	if len(_c.mutation.ExecutionLogIDs()) == 0 {
		return &ValidationError{Name: "execution_log", err: errors.New(`ent: missing required edge "DeliveryAttempt.execution_log"`)}
	}
	return nil
}

func (_c *DeliveryAttemptCreate) sqlSave(ctx context.Context) (*DeliveryAttempt, error) {
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
			return nil, fmt.Errorf("unexpected DeliveryAttempt.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryAttemptCreate) createSpec() (*DeliveryAttempt, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryAttempt{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliveryattempt.Table, sqlgraph.NewFieldSpec(deliveryattempt.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(deliveryattempt.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deliveryattempt.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ResponseStatus(); ok {
		_spec.SetField(deliveryattempt.FieldResponseStatus, field.TypeInt, value)
		_node.ResponseStatus = &value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(deliveryattempt.FieldResponseTimeMs, field.TypeInt64, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(deliveryattempt.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.RetryReason(); ok {
		_spec.SetField(deliveryattempt.FieldRetryReason, field.TypeString, value)
		_node.RetryReason = &value
	}
	if value, ok := _c.mutation.RequestPayload(); ok {
		_spec.SetField(deliveryattempt.FieldRequestPayload, field.TypeJSON, value)
		_node.RequestPayload = value
	}
	if value, ok := _c.mutation.AttemptedAt(); ok {
		_spec.SetField(deliveryattempt.FieldAttemptedAt, field.TypeTime, value)
		_node.AttemptedAt = value
	}
	if nodes := _c.mutation.ExecutionLogIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deliveryattempt.ExecutionLogTable,
			Columns: []string{deliveryattempt.ExecutionLogColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DeliveryLogID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeliveryAttempt.Create().
//		SetDeliveryLogID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeliveryAttemptUpsert) {
//			SetDeliveryLogID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeliveryAttemptCreate) OnConflict(opts ...sql.ConflictOption) *DeliveryAttemptUpsertOne {
	_c.conflict = opts
	return &DeliveryAttemptUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeliveryAttemptCreate) OnConflictColumns(columns ...string) *DeliveryAttemptUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeliveryAttemptUpsertOne{
		create: _c,
	}
}

type (
	// DeliveryAttemptUpsertOne is the builder for "upsert"-ing
	//  one DeliveryAttempt node.
	DeliveryAttemptUpsertOne struct {
		create *DeliveryAttemptCreate
	}

	// DeliveryAttemptUpsert is the "OnConflict" setter.
	DeliveryAttemptUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deliveryattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeliveryAttemptUpsertOne) UpdateNewValues() *DeliveryAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deliveryattempt.FieldID)
		}
		if _, exists := u.create.mutation.DeliveryLogID(); exists {
			s.SetIgnore(deliveryattempt.FieldDeliveryLogID)
		}
		if _, exists := u.create.mutation.AttemptNumber(); exists {
			s.SetIgnore(deliveryattempt.FieldAttemptNumber)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(deliveryattempt.FieldStatus)
		}
		if _, exists := u.create.mutation.ResponseStatus(); exists {
			s.SetIgnore(deliveryattempt.FieldResponseStatus)
		}
		if _, exists := u.create.mutation.ResponseTimeMs(); exists {
			s.SetIgnore(deliveryattempt.FieldResponseTimeMs)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(deliveryattempt.FieldErrorMessage)
		}
		if _, exists := u.create.mutation.RetryReason(); exists {
			s.SetIgnore(deliveryattempt.FieldRetryReason)
		}
		if _, exists := u.create.mutation.RequestPayload(); exists {
			s.SetIgnore(deliveryattempt.FieldRequestPayload)
		}
		if _, exists := u.create.mutation.AttemptedAt(); exists {
			s.SetIgnore(deliveryattempt.FieldAttemptedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeliveryAttemptUpsertOne) Ignore() *DeliveryAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeliveryAttemptUpsertOne) DoNothing() *DeliveryAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeliveryAttemptCreate.OnConflict
// documentation for more info.
func (u *DeliveryAttemptUpsertOne) Update(set func(*DeliveryAttemptUpsert)) *DeliveryAttemptUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeliveryAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DeliveryAttemptUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeliveryAttemptCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeliveryAttemptUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeliveryAttemptUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DeliveryAttemptUpsertOne.ID is not supported by MySQL driver. Use DeliveryAttemptUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeliveryAttemptUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeliveryAttemptCreateBulk is the builder for creating many DeliveryAttempt entities in bulk.
type DeliveryAttemptCreateBulk struct {
	config
	err      error
	builders []*DeliveryAttemptCreate
	conflict []sql.ConflictOption
}

// Save creates the DeliveryAttempt entities in the database.
func (_c *DeliveryAttemptCreateBulk) Save(ctx context.Context) ([]*DeliveryAttempt, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryAttempt, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryAttemptMutation)
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
func (_c *DeliveryAttemptCreateBulk) SaveX(ctx context.Context) []*DeliveryAttempt {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryAttemptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryAttemptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeliveryAttempt.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeliveryAttemptUpsert) {
//			SetDeliveryLogID(v+v).
//		}).
//		Exec(ctx)
func (_c *DeliveryAttemptCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeliveryAttemptUpsertBulk {
	_c.conflict = opts
	return &DeliveryAttemptUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeliveryAttemptCreateBulk) OnConflictColumns(columns ...string) *DeliveryAttemptUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeliveryAttemptUpsertBulk{
		create: _c,
	}
}

// DeliveryAttemptUpsertBulk is the builder for "upsert"-ing
// a bulk of DeliveryAttempt nodes.
type DeliveryAttemptUpsertBulk struct {
	create *DeliveryAttemptCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deliveryattempt.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeliveryAttemptUpsertBulk) UpdateNewValues() *DeliveryAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deliveryattempt.FieldID)
			}
			if _, exists := b.mutation.DeliveryLogID(); exists {
				s.SetIgnore(deliveryattempt.FieldDeliveryLogID)
			}
			if _, exists := b.mutation.AttemptNumber(); exists {
				s.SetIgnore(deliveryattempt.FieldAttemptNumber)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(deliveryattempt.FieldStatus)
			}
			if _, exists := b.mutation.ResponseStatus(); exists {
				s.SetIgnore(deliveryattempt.FieldResponseStatus)
			}
			if _, exists := b.mutation.ResponseTimeMs(); exists {
				s.SetIgnore(deliveryattempt.FieldResponseTimeMs)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(deliveryattempt.FieldErrorMessage)
			}
			if _, exists := b.mutation.RetryReason(); exists {
				s.SetIgnore(deliveryattempt.FieldRetryReason)
			}
			if _, exists := b.mutation.RequestPayload(); exists {
				s.SetIgnore(deliveryattempt.FieldRequestPayload)
			}
			if _, exists := b.mutation.AttemptedAt(); exists {
				s.SetIgnore(deliveryattempt.FieldAttemptedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeliveryAttempt.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeliveryAttemptUpsertBulk) Ignore() *DeliveryAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeliveryAttemptUpsertBulk) DoNothing() *DeliveryAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeliveryAttemptCreateBulk.OnConflict
// documentation for more info.
func (u *DeliveryAttemptUpsertBulk) Update(set func(*DeliveryAttemptUpsert)) *DeliveryAttemptUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeliveryAttemptUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *DeliveryAttemptUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DeliveryAttemptCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DeliveryAttemptCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeliveryAttemptUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
