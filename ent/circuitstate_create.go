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
	"github.com/relayforge/relayforge/ent/circuitstate"
)

// CircuitStateCreate is the builder for creating a CircuitState entity.
type CircuitStateCreate struct {
	config
	mutation *CircuitStateMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetIntegrationID sets the "integration_id" field.
func (_c *CircuitStateCreate) SetIntegrationID(v string) *CircuitStateCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (_c *CircuitStateCreate) SetConsecutiveFailures(v int) *CircuitStateCreate {
	_c.mutation.SetConsecutiveFailures(v)
	return _c
}

// SetNillableConsecutiveFailures sets the "consecutive_failures" field if the given value is not nil.
func (_c *CircuitStateCreate) SetNillableConsecutiveFailures(v *int) *CircuitStateCreate {
	if v != nil {
		_c.SetConsecutiveFailures(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *CircuitStateCreate) SetState(v circuitstate.State) *CircuitStateCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *CircuitStateCreate) SetNillableState(v *circuitstate.State) *CircuitStateCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetOpenedAt sets the "opened_at" field.
func (_c *CircuitStateCreate) SetOpenedAt(v time.Time) *CircuitStateCreate {
	_c.mutation.SetOpenedAt(v)
	return _c
}

// SetNillableOpenedAt sets the "opened_at" field if the given value is not nil.
func (_c *CircuitStateCreate) SetNillableOpenedAt(v *time.Time) *CircuitStateCreate {
	if v != nil {
		_c.SetOpenedAt(*v)
	}
	return _c
}

// SetNextProbeAt sets the "next_probe_at" field.
func (_c *CircuitStateCreate) SetNextProbeAt(v time.Time) *CircuitStateCreate {
	_c.mutation.SetNextProbeAt(v)
	return _c
}

// SetNillableNextProbeAt sets the "next_probe_at" field if the given value is not nil.
func (_c *CircuitStateCreate) SetNillableNextProbeAt(v *time.Time) *CircuitStateCreate {
	if v != nil {
		_c.SetNextProbeAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CircuitStateCreate) SetUpdatedAt(v time.Time) *CircuitStateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CircuitStateCreate) SetNillableUpdatedAt(v *time.Time) *CircuitStateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CircuitStateCreate) SetID(v string) *CircuitStateCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CircuitStateMutation object of the builder.
func (_c *CircuitStateCreate) Mutation() *CircuitStateMutation {
	return _c.mutation
}

// Save creates the CircuitState in the database.
func (_c *CircuitStateCreate) Save(ctx context.Context) (*CircuitState, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CircuitStateCreate) SaveX(ctx context.Context) *CircuitState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitStateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitStateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CircuitStateCreate) defaults() {
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		v := circuitstate.DefaultConsecutiveFailures
		_c.mutation.SetConsecutiveFailures(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := circuitstate.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := circuitstate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CircuitStateCreate) check() error {
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "CircuitState.integration_id"`)}
	}
	if _, ok := _c.mutation.ConsecutiveFailures(); !ok {
		return &ValidationError{Name: "consecutive_failures", err: errors.New(`ent: missing required field "CircuitState.consecutive_failures"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "CircuitState.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := circuitstate.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "CircuitState.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CircuitState.updated_at"`)}
	}
	return nil
}

func (_c *CircuitStateCreate) sqlSave(ctx context.Context) (*CircuitState, error) {
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
			return nil, fmt.Errorf("unexpected CircuitState.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CircuitStateCreate) createSpec() (*CircuitState, *sqlgraph.CreateSpec) {
	var (
		_node = &CircuitState{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(circuitstate.Table, sqlgraph.NewFieldSpec(circuitstate.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(circuitstate.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.ConsecutiveFailures(); ok {
		_spec.SetField(circuitstate.FieldConsecutiveFailures, field.TypeInt, value)
		_node.ConsecutiveFailures = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(circuitstate.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.OpenedAt(); ok {
		_spec.SetField(circuitstate.FieldOpenedAt, field.TypeTime, value)
		_node.OpenedAt = &value
	}
	if value, ok := _c.mutation.NextProbeAt(); ok {
		_spec.SetField(circuitstate.FieldNextProbeAt, field.TypeTime, value)
		_node.NextProbeAt = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(circuitstate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CircuitState.Create().
//		SetIntegrationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircuitStateUpsert) {
//			SetIntegrationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CircuitStateCreate) OnConflict(opts ...sql.ConflictOption) *CircuitStateUpsertOne {
	_c.conflict = opts
	return &CircuitStateUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircuitStateCreate) OnConflictColumns(columns ...string) *CircuitStateUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircuitStateUpsertOne{
		create: _c,
	}
}

type (
	// CircuitStateUpsertOne is the builder for "upsert"-ing
	//  one CircuitState node.
	CircuitStateUpsertOne struct {
		create *CircuitStateCreate
	}

	// CircuitStateUpsert is the "OnConflict" setter.
	CircuitStateUpsert struct {
		*sql.UpdateSet
	}
)

// SetIntegrationID sets the "integration_id" field.
func (u *CircuitStateUpsert) SetIntegrationID(v string) *CircuitStateUpsert {
	u.Set(circuitstate.FieldIntegrationID, v)
	return u
}

// UpdateIntegrationID sets the "integration_id" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateIntegrationID() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldIntegrationID)
	return u
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *CircuitStateUpsert) SetConsecutiveFailures(v int) *CircuitStateUpsert {
	u.Set(circuitstate.FieldConsecutiveFailures, v)
	return u
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateConsecutiveFailures() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldConsecutiveFailures)
	return u
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *CircuitStateUpsert) AddConsecutiveFailures(v int) *CircuitStateUpsert {
	u.Add(circuitstate.FieldConsecutiveFailures, v)
	return u
}

// SetState sets the "state" field.
func (u *CircuitStateUpsert) SetState(v circuitstate.State) *CircuitStateUpsert {
	u.Set(circuitstate.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateState() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldState)
	return u
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitStateUpsert) SetOpenedAt(v time.Time) *CircuitStateUpsert {
	u.Set(circuitstate.FieldOpenedAt, v)
	return u
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateOpenedAt() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldOpenedAt)
	return u
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitStateUpsert) ClearOpenedAt() *CircuitStateUpsert {
	u.SetNull(circuitstate.FieldOpenedAt)
	return u
}

// SetNextProbeAt sets the "next_probe_at" field.
func (u *CircuitStateUpsert) SetNextProbeAt(v time.Time) *CircuitStateUpsert {
	u.Set(circuitstate.FieldNextProbeAt, v)
	return u
}

// UpdateNextProbeAt sets the "next_probe_at" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateNextProbeAt() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldNextProbeAt)
	return u
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (u *CircuitStateUpsert) ClearNextProbeAt() *CircuitStateUpsert {
	u.SetNull(circuitstate.FieldNextProbeAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircuitStateUpsert) SetUpdatedAt(v time.Time) *CircuitStateUpsert {
	u.Set(circuitstate.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircuitStateUpsert) UpdateUpdatedAt() *CircuitStateUpsert {
	u.SetExcluded(circuitstate.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circuitstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircuitStateUpsertOne) UpdateNewValues() *CircuitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(circuitstate.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CircuitStateUpsertOne) Ignore() *CircuitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircuitStateUpsertOne) DoNothing() *CircuitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircuitStateCreate.OnConflict
// documentation for more info.
func (u *CircuitStateUpsertOne) Update(set func(*CircuitStateUpsert)) *CircuitStateUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircuitStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntegrationID sets the "integration_id" field.
func (u *CircuitStateUpsertOne) SetIntegrationID(v string) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetIntegrationID(v)
	})
}

// UpdateIntegrationID sets the "integration_id" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateIntegrationID() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateIntegrationID()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *CircuitStateUpsertOne) SetConsecutiveFailures(v int) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *CircuitStateUpsertOne) AddConsecutiveFailures(v int) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateConsecutiveFailures() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetState sets the "state" field.
func (u *CircuitStateUpsertOne) SetState(v circuitstate.State) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateState() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateState()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitStateUpsertOne) SetOpenedAt(v time.Time) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateOpenedAt() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateOpenedAt()
	})
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitStateUpsertOne) ClearOpenedAt() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.ClearOpenedAt()
	})
}

// SetNextProbeAt sets the "next_probe_at" field.
func (u *CircuitStateUpsertOne) SetNextProbeAt(v time.Time) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetNextProbeAt(v)
	})
}

// UpdateNextProbeAt sets the "next_probe_at" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateNextProbeAt() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateNextProbeAt()
	})
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (u *CircuitStateUpsertOne) ClearNextProbeAt() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.ClearNextProbeAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircuitStateUpsertOne) SetUpdatedAt(v time.Time) *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircuitStateUpsertOne) UpdateUpdatedAt() *CircuitStateUpsertOne {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CircuitStateUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircuitStateCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircuitStateUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CircuitStateUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CircuitStateUpsertOne.ID is not supported by MySQL driver. Use CircuitStateUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CircuitStateUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CircuitStateCreateBulk is the builder for creating many CircuitState entities in bulk.
type CircuitStateCreateBulk struct {
	config
	err      error
	builders []*CircuitStateCreate
	conflict []sql.ConflictOption
}

// Save creates the CircuitState entities in the database.
func (_c *CircuitStateCreateBulk) Save(ctx context.Context) ([]*CircuitState, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CircuitState, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CircuitStateMutation)
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
func (_c *CircuitStateCreateBulk) SaveX(ctx context.Context) []*CircuitState {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CircuitStateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CircuitStateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CircuitState.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CircuitStateUpsert) {
//			SetIntegrationID(v+v).
//		}).
//		Exec(ctx)
func (_c *CircuitStateCreateBulk) OnConflict(opts ...sql.ConflictOption) *CircuitStateUpsertBulk {
	_c.conflict = opts
	return &CircuitStateUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CircuitStateCreateBulk) OnConflictColumns(columns ...string) *CircuitStateUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CircuitStateUpsertBulk{
		create: _c,
	}
}

// CircuitStateUpsertBulk is the builder for "upsert"-ing
// a bulk of CircuitState nodes.
type CircuitStateUpsertBulk struct {
	create *CircuitStateCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(circuitstate.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CircuitStateUpsertBulk) UpdateNewValues() *CircuitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(circuitstate.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CircuitState.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CircuitStateUpsertBulk) Ignore() *CircuitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CircuitStateUpsertBulk) DoNothing() *CircuitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CircuitStateCreateBulk.OnConflict
// documentation for more info.
func (u *CircuitStateUpsertBulk) Update(set func(*CircuitStateUpsert)) *CircuitStateUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CircuitStateUpsert{UpdateSet: update})
	}))
	return u
}

// SetIntegrationID sets the "integration_id" field.
func (u *CircuitStateUpsertBulk) SetIntegrationID(v string) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetIntegrationID(v)
	})
}

// UpdateIntegrationID sets the "integration_id" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateIntegrationID() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateIntegrationID()
	})
}

// SetConsecutiveFailures sets the "consecutive_failures" field.
func (u *CircuitStateUpsertBulk) SetConsecutiveFailures(v int) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetConsecutiveFailures(v)
	})
}

// AddConsecutiveFailures adds v to the "consecutive_failures" field.
func (u *CircuitStateUpsertBulk) AddConsecutiveFailures(v int) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.AddConsecutiveFailures(v)
	})
}

// UpdateConsecutiveFailures sets the "consecutive_failures" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateConsecutiveFailures() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateConsecutiveFailures()
	})
}

// SetState sets the "state" field.
func (u *CircuitStateUpsertBulk) SetState(v circuitstate.State) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateState() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateState()
	})
}

// SetOpenedAt sets the "opened_at" field.
func (u *CircuitStateUpsertBulk) SetOpenedAt(v time.Time) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetOpenedAt(v)
	})
}

// UpdateOpenedAt sets the "opened_at" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateOpenedAt() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateOpenedAt()
	})
}

// ClearOpenedAt clears the value of the "opened_at" field.
func (u *CircuitStateUpsertBulk) ClearOpenedAt() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.ClearOpenedAt()
	})
}

// SetNextProbeAt sets the "next_probe_at" field.
func (u *CircuitStateUpsertBulk) SetNextProbeAt(v time.Time) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetNextProbeAt(v)
	})
}

// UpdateNextProbeAt sets the "next_probe_at" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateNextProbeAt() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateNextProbeAt()
	})
}

// ClearNextProbeAt clears the value of the "next_probe_at" field.
func (u *CircuitStateUpsertBulk) ClearNextProbeAt() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.ClearNextProbeAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CircuitStateUpsertBulk) SetUpdatedAt(v time.Time) *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CircuitStateUpsertBulk) UpdateUpdatedAt() *CircuitStateUpsertBulk {
	return u.Update(func(s *CircuitStateUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CircuitStateUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CircuitStateCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CircuitStateCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CircuitStateUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
