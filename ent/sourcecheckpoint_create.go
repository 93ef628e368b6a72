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
	"github.com/relayforge/relayforge/ent/sourcecheckpoint"
)

// SourceCheckpointCreate is the builder for creating a SourceCheckpoint entity.
type SourceCheckpointCreate struct {
	config
	mutation *SourceCheckpointMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSource sets the "source" field.
func (_c *SourceCheckpointCreate) SetSource(v string) *SourceCheckpointCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceIdentifier sets the "source_identifier" field.
func (_c *SourceCheckpointCreate) SetSourceIdentifier(v string) *SourceCheckpointCreate {
	_c.mutation.SetSourceIdentifier(v)
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *SourceCheckpointCreate) SetOrgID(v string) *SourceCheckpointCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetLastProcessedID sets the "last_processed_id" field.
func (_c *SourceCheckpointCreate) SetLastProcessedID(v int64) *SourceCheckpointCreate {
	_c.mutation.SetLastProcessedID(v)
	return _c
}

// SetNillableLastProcessedID sets the "last_processed_id" field if the given value is not nil.
func (_c *SourceCheckpointCreate) SetNillableLastProcessedID(v *int64) *SourceCheckpointCreate {
	if v != nil {
		_c.SetLastProcessedID(*v)
	}
	return _c
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (_c *SourceCheckpointCreate) SetLastProcessedAt(v time.Time) *SourceCheckpointCreate {
	_c.mutation.SetLastProcessedAt(v)
	return _c
}

// SetNillableLastProcessedAt sets the "last_processed_at" field if the given value is not nil.
func (_c *SourceCheckpointCreate) SetNillableLastProcessedAt(v *time.Time) *SourceCheckpointCreate {
	if v != nil {
		_c.SetLastProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SourceCheckpointCreate) SetID(v string) *SourceCheckpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the SourceCheckpointMutation object of the builder.
func (_c *SourceCheckpointCreate) Mutation() *SourceCheckpointMutation {
	return _c.mutation
}

// Save creates the SourceCheckpoint in the database.
func (_c *SourceCheckpointCreate) Save(ctx context.Context) (*SourceCheckpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SourceCheckpointCreate) SaveX(ctx context.Context) *SourceCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCheckpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCheckpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SourceCheckpointCreate) defaults() {
	if _, ok := _c.mutation.LastProcessedID(); !ok {
		v := sourcecheckpoint.DefaultLastProcessedID
		_c.mutation.SetLastProcessedID(v)
	}
	if _, ok := _c.mutation.LastProcessedAt(); !ok {
		v := sourcecheckpoint.DefaultLastProcessedAt()
		_c.mutation.SetLastProcessedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SourceCheckpointCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "SourceCheckpoint.source"`)}
	}
	if _, ok := _c.mutation.SourceIdentifier(); !ok {
		return &ValidationError{Name: "source_identifier", err: errors.New(`ent: missing required field "SourceCheckpoint.source_identifier"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "SourceCheckpoint.org_id"`)}
	}
	if _, ok := _c.mutation.LastProcessedID(); !ok {
		return &ValidationError{Name: "last_processed_id", err: errors.New(`ent: missing required field "SourceCheckpoint.last_processed_id"`)}
	}
	if _, ok := _c.mutation.LastProcessedAt(); !ok {
		return &ValidationError{Name: "last_processed_at", err: errors.New(`ent: missing required field "SourceCheckpoint.last_processed_at"`)}
	}
	return nil
}

func (_c *SourceCheckpointCreate) sqlSave(ctx context.Context) (*SourceCheckpoint, error) {
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
			return nil, fmt.Errorf("unexpected SourceCheckpoint.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SourceCheckpointCreate) createSpec() (*SourceCheckpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &SourceCheckpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sourcecheckpoint.Table, sqlgraph.NewFieldSpec(sourcecheckpoint.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(sourcecheckpoint.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceIdentifier(); ok {
		_spec.SetField(sourcecheckpoint.FieldSourceIdentifier, field.TypeString, value)
		_node.SourceIdentifier = value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(sourcecheckpoint.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.LastProcessedID(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedID, field.TypeInt64, value)
		_node.LastProcessedID = value
	}
	if value, ok := _c.mutation.LastProcessedAt(); ok {
		_spec.SetField(sourcecheckpoint.FieldLastProcessedAt, field.TypeTime, value)
		_node.LastProcessedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceCheckpoint.Create().
//		SetSource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceCheckpointUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCheckpointCreate) OnConflict(opts ...sql.ConflictOption) *SourceCheckpointUpsertOne {
	_c.conflict = opts
	return &SourceCheckpointUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCheckpointCreate) OnConflictColumns(columns ...string) *SourceCheckpointUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceCheckpointUpsertOne{
		create: _c,
	}
}

type (
	// SourceCheckpointUpsertOne is the builder for "upsert"-ing
	//  one SourceCheckpoint node.
	SourceCheckpointUpsertOne struct {
		create *SourceCheckpointCreate
	}

	// SourceCheckpointUpsert is the "OnConflict" setter.
	SourceCheckpointUpsert struct {
		*sql.UpdateSet
	}
)

// SetLastProcessedID sets the "last_processed_id" field.
func (u *SourceCheckpointUpsert) SetLastProcessedID(v int64) *SourceCheckpointUpsert {
	u.Set(sourcecheckpoint.FieldLastProcessedID, v)
	return u
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *SourceCheckpointUpsert) UpdateLastProcessedID() *SourceCheckpointUpsert {
	u.SetExcluded(sourcecheckpoint.FieldLastProcessedID)
	return u
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *SourceCheckpointUpsert) AddLastProcessedID(v int64) *SourceCheckpointUpsert {
	u.Add(sourcecheckpoint.FieldLastProcessedID, v)
	return u
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (u *SourceCheckpointUpsert) SetLastProcessedAt(v time.Time) *SourceCheckpointUpsert {
	u.Set(sourcecheckpoint.FieldLastProcessedAt, v)
	return u
}

// UpdateLastProcessedAt sets the "last_processed_at" field to the value that was provided on create.
func (u *SourceCheckpointUpsert) UpdateLastProcessedAt() *SourceCheckpointUpsert {
	u.SetExcluded(sourcecheckpoint.FieldLastProcessedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcecheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceCheckpointUpsertOne) UpdateNewValues() *SourceCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(sourcecheckpoint.FieldID)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(sourcecheckpoint.FieldSource)
		}
		if _, exists := u.create.mutation.SourceIdentifier(); exists {
			s.SetIgnore(sourcecheckpoint.FieldSourceIdentifier)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(sourcecheckpoint.FieldOrgID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SourceCheckpointUpsertOne) Ignore() *SourceCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceCheckpointUpsertOne) DoNothing() *SourceCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCheckpointCreate.OnConflict
// documentation for more info.
func (u *SourceCheckpointUpsertOne) Update(set func(*SourceCheckpointUpsert)) *SourceCheckpointUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (u *SourceCheckpointUpsertOne) SetLastProcessedID(v int64) *SourceCheckpointUpsertOne {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.SetLastProcessedID(v)
	})
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *SourceCheckpointUpsertOne) AddLastProcessedID(v int64) *SourceCheckpointUpsertOne {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.AddLastProcessedID(v)
	})
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *SourceCheckpointUpsertOne) UpdateLastProcessedID() *SourceCheckpointUpsertOne {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.UpdateLastProcessedID()
	})
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (u *SourceCheckpointUpsertOne) SetLastProcessedAt(v time.Time) *SourceCheckpointUpsertOne {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.SetLastProcessedAt(v)
	})
}

// UpdateLastProcessedAt sets the "last_processed_at" field to the value that was provided on create.
func (u *SourceCheckpointUpsertOne) UpdateLastProcessedAt() *SourceCheckpointUpsertOne {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.UpdateLastProcessedAt()
	})
}

// Exec executes the query.
func (u *SourceCheckpointUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCheckpointCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceCheckpointUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SourceCheckpointUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: SourceCheckpointUpsertOne.ID is not supported by MySQL driver. Use SourceCheckpointUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SourceCheckpointUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SourceCheckpointCreateBulk is the builder for creating many SourceCheckpoint entities in bulk.
type SourceCheckpointCreateBulk struct {
	config
	err      error
	builders []*SourceCheckpointCreate
	conflict []sql.ConflictOption
}

// Save creates the SourceCheckpoint entities in the database.
func (_c *SourceCheckpointCreateBulk) Save(ctx context.Context) ([]*SourceCheckpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SourceCheckpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SourceCheckpointMutation)
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
func (_c *SourceCheckpointCreateBulk) SaveX(ctx context.Context) []*SourceCheckpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SourceCheckpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SourceCheckpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SourceCheckpoint.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SourceCheckpointUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *SourceCheckpointCreateBulk) OnConflict(opts ...sql.ConflictOption) *SourceCheckpointUpsertBulk {
	_c.conflict = opts
	return &SourceCheckpointUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SourceCheckpointCreateBulk) OnConflictColumns(columns ...string) *SourceCheckpointUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SourceCheckpointUpsertBulk{
		create: _c,
	}
}

// SourceCheckpointUpsertBulk is the builder for "upsert"-ing
// a bulk of SourceCheckpoint nodes.
type SourceCheckpointUpsertBulk struct {
	create *SourceCheckpointCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(sourcecheckpoint.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SourceCheckpointUpsertBulk) UpdateNewValues() *SourceCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(sourcecheckpoint.FieldID)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(sourcecheckpoint.FieldSource)
			}
			if _, exists := b.mutation.SourceIdentifier(); exists {
				s.SetIgnore(sourcecheckpoint.FieldSourceIdentifier)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(sourcecheckpoint.FieldOrgID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SourceCheckpoint.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SourceCheckpointUpsertBulk) Ignore() *SourceCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SourceCheckpointUpsertBulk) DoNothing() *SourceCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SourceCheckpointCreateBulk.OnConflict
// documentation for more info.
func (u *SourceCheckpointUpsertBulk) Update(set func(*SourceCheckpointUpsert)) *SourceCheckpointUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SourceCheckpointUpsert{UpdateSet: update})
	}))
	return u
}

// SetLastProcessedID sets the "last_processed_id" field.
func (u *SourceCheckpointUpsertBulk) SetLastProcessedID(v int64) *SourceCheckpointUpsertBulk {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.SetLastProcessedID(v)
	})
}

// AddLastProcessedID adds v to the "last_processed_id" field.
func (u *SourceCheckpointUpsertBulk) AddLastProcessedID(v int64) *SourceCheckpointUpsertBulk {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.AddLastProcessedID(v)
	})
}

// UpdateLastProcessedID sets the "last_processed_id" field to the value that was provided on create.
func (u *SourceCheckpointUpsertBulk) UpdateLastProcessedID() *SourceCheckpointUpsertBulk {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.UpdateLastProcessedID()
	})
}

// SetLastProcessedAt sets the "last_processed_at" field.
func (u *SourceCheckpointUpsertBulk) SetLastProcessedAt(v time.Time) *SourceCheckpointUpsertBulk {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.SetLastProcessedAt(v)
	})
}

// UpdateLastProcessedAt sets the "last_processed_at" field to the value that was provided on create.
func (u *SourceCheckpointUpsertBulk) UpdateLastProcessedAt() *SourceCheckpointUpsertBulk {
	return u.Update(func(s *SourceCheckpointUpsert) {
		s.UpdateLastProcessedAt()
	})
}

// Exec executes the query.
func (u *SourceCheckpointUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the SourceCheckpointCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for SourceCheckpointCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SourceCheckpointUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
