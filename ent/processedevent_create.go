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
	"github.com/relayforge/relayforge/ent/processedevent"
)

// ProcessedEventCreate is the builder for creating a ProcessedEvent entity.
type ProcessedEventCreate struct {
	config
	mutation *ProcessedEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrgID sets the "org_id" field.
func (_c *ProcessedEventCreate) SetOrgID(v string) *ProcessedEventCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetEventKey sets the "event_key" field.
func (_c *ProcessedEventCreate) SetEventKey(v string) *ProcessedEventCreate {
	_c.mutation.SetEventKey(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *ProcessedEventCreate) SetBucket(v time.Time) *ProcessedEventCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetEventID sets the "event_id" field.
func (_c *ProcessedEventCreate) SetEventID(v string) *ProcessedEventCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ProcessedEventCreate) SetExpiresAt(v time.Time) *ProcessedEventCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedEventCreate) SetID(v string) *ProcessedEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProcessedEventMutation object of the builder.
func (_c *ProcessedEventCreate) Mutation() *ProcessedEventMutation {
	return _c.mutation
}

// Save creates the ProcessedEvent in the database.
func (_c *ProcessedEventCreate) Save(ctx context.Context) (*ProcessedEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedEventCreate) SaveX(ctx context.Context) *ProcessedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedEventCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "ProcessedEvent.org_id"`)}
	}
	if _, ok := _c.mutation.EventKey(); !ok {
		return &ValidationError{Name: "event_key", err: errors.New(`ent: missing required field "ProcessedEvent.event_key"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "ProcessedEvent.bucket"`)}
	}
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ProcessedEvent.event_id"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ProcessedEvent.expires_at"`)}
	}
	return nil
}

func (_c *ProcessedEventCreate) sqlSave(ctx context.Context) (*ProcessedEvent, error) {
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
			return nil, fmt.Errorf("unexpected ProcessedEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedEventCreate) createSpec() (*ProcessedEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedevent.Table, sqlgraph.NewFieldSpec(processedevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(processedevent.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.EventKey(); ok {
		_spec.SetField(processedevent.FieldEventKey, field.TypeString, value)
		_node.EventKey = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(processedevent.FieldBucket, field.TypeTime, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(processedevent.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(processedevent.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessedEvent.Create().
//		SetOrgID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedEventUpsert) {
//			SetOrgID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedEventCreate) OnConflict(opts ...sql.ConflictOption) *ProcessedEventUpsertOne {
	_c.conflict = opts
	return &ProcessedEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedEventCreate) OnConflictColumns(columns ...string) *ProcessedEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedEventUpsertOne{
		create: _c,
	}
}

type (
	// ProcessedEventUpsertOne is the builder for "upsert"-ing
	//  one ProcessedEvent node.
	ProcessedEventUpsertOne struct {
		create *ProcessedEventCreate
	}

	// ProcessedEventUpsert is the "OnConflict" setter.
	ProcessedEventUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processedevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessedEventUpsertOne) UpdateNewValues() *ProcessedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(processedevent.FieldID)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(processedevent.FieldOrgID)
		}
		if _, exists := u.create.mutation.EventKey(); exists {
			s.SetIgnore(processedevent.FieldEventKey)
		}
		if _, exists := u.create.mutation.Bucket(); exists {
			s.SetIgnore(processedevent.FieldBucket)
		}
		if _, exists := u.create.mutation.EventID(); exists {
			s.SetIgnore(processedevent.FieldEventID)
		}
		if _, exists := u.create.mutation.ExpiresAt(); exists {
			s.SetIgnore(processedevent.FieldExpiresAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessedEventUpsertOne) Ignore() *ProcessedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedEventUpsertOne) DoNothing() *ProcessedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedEventCreate.OnConflict
// documentation for more info.
func (u *ProcessedEventUpsertOne) Update(set func(*ProcessedEventUpsert)) *ProcessedEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProcessedEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessedEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProcessedEventUpsertOne.ID is not supported by MySQL driver. Use ProcessedEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessedEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessedEventCreateBulk is the builder for creating many ProcessedEvent entities in bulk.
type ProcessedEventCreateBulk struct {
	config
	err      error
	builders []*ProcessedEventCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessedEvent entities in the database.
func (_c *ProcessedEventCreateBulk) Save(ctx context.Context) ([]*ProcessedEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedEventMutation)
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
func (_c *ProcessedEventCreateBulk) SaveX(ctx context.Context) []*ProcessedEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessedEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessedEventUpsert) {
//			SetOrgID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessedEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessedEventUpsertBulk {
	_c.conflict = opts
	return &ProcessedEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessedEventCreateBulk) OnConflictColumns(columns ...string) *ProcessedEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessedEventUpsertBulk{
		create: _c,
	}
}

// ProcessedEventUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessedEvent nodes.
type ProcessedEventUpsertBulk struct {
	create *ProcessedEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processedevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessedEventUpsertBulk) UpdateNewValues() *ProcessedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(processedevent.FieldID)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(processedevent.FieldOrgID)
			}
			if _, exists := b.mutation.EventKey(); exists {
				s.SetIgnore(processedevent.FieldEventKey)
			}
			if _, exists := b.mutation.Bucket(); exists {
				s.SetIgnore(processedevent.FieldBucket)
			}
			if _, exists := b.mutation.EventID(); exists {
				s.SetIgnore(processedevent.FieldEventID)
			}
			if _, exists := b.mutation.ExpiresAt(); exists {
				s.SetIgnore(processedevent.FieldExpiresAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessedEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessedEventUpsertBulk) Ignore() *ProcessedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessedEventUpsertBulk) DoNothing() *ProcessedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessedEventCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessedEventUpsertBulk) Update(set func(*ProcessedEventUpsert)) *ProcessedEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessedEventUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProcessedEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessedEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessedEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessedEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
