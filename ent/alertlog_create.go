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
	"github.com/relayforge/relayforge/ent/alertlog"
)

// AlertLogCreate is the builder for creating a AlertLog entity.
type AlertLogCreate struct {
	config
	mutation *AlertLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetOrgID sets the "org_id" field.
func (_c *AlertLogCreate) SetOrgID(v string) *AlertLogCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetIntegrationID sets the "integration_id" field.
func (_c *AlertLogCreate) SetIntegrationID(v string) *AlertLogCreate {
	_c.mutation.SetIntegrationID(v)
	return _c
}

// SetChannel sets the "channel" field.
func (_c *AlertLogCreate) SetChannel(v string) *AlertLogCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AlertLogCreate) SetStatus(v alertlog.Status) *AlertLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRecipients sets the "recipients" field.
func (_c *AlertLogCreate) SetRecipients(v []string) *AlertLogCreate {
	_c.mutation.SetRecipients(v)
	return _c
}

// SetTotalFailures sets the "total_failures" field.
func (_c *AlertLogCreate) SetTotalFailures(v int) *AlertLogCreate {
	_c.mutation.SetTotalFailures(v)
	return _c
}

// SetWindowStart sets the "window_start" field.
func (_c *AlertLogCreate) SetWindowStart(v time.Time) *AlertLogCreate {
	_c.mutation.SetWindowStart(v)
	return _c
}

// SetWindowEnd sets the "window_end" field.
func (_c *AlertLogCreate) SetWindowEnd(v time.Time) *AlertLogCreate {
	_c.mutation.SetWindowEnd(v)
	return _c
}

// SetProviderResponse sets the "provider_response" field.
func (_c *AlertLogCreate) SetProviderResponse(v string) *AlertLogCreate {
	_c.mutation.SetProviderResponse(v)
	return _c
}

// SetNillableProviderResponse sets the "provider_response" field if the given value is not nil.
func (_c *AlertLogCreate) SetNillableProviderResponse(v *string) *AlertLogCreate {
	if v != nil {
		_c.SetProviderResponse(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AlertLogCreate) SetCreatedAt(v time.Time) *AlertLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AlertLogCreate) SetNillableCreatedAt(v *time.Time) *AlertLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AlertLogCreate) SetID(v string) *AlertLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the AlertLogMutation object of the builder.
func (_c *AlertLogCreate) Mutation() *AlertLogMutation {
	return _c.mutation
}

// Save creates the AlertLog in the database.
func (_c *AlertLogCreate) Save(ctx context.Context) (*AlertLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AlertLogCreate) SaveX(ctx context.Context) *AlertLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AlertLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := alertlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AlertLogCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "AlertLog.org_id"`)}
	}
	if _, ok := _c.mutation.IntegrationID(); !ok {
		return &ValidationError{Name: "integration_id", err: errors.New(`ent: missing required field "AlertLog.integration_id"`)}
	}
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "AlertLog.channel"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AlertLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := alertlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AlertLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalFailures(); !ok {
		return &ValidationError{Name: "total_failures", err: errors.New(`ent: missing required field "AlertLog.total_failures"`)}
	}
	if _, ok := _c.mutation.WindowStart(); !ok {
		return &ValidationError{Name: "window_start", err: errors.New(`ent: missing required field "AlertLog.window_start"`)}
	}
	if _, ok := _c.mutation.WindowEnd(); !ok {
		return &ValidationError{Name: "window_end", err: errors.New(`ent: missing required field "AlertLog.window_end"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AlertLog.created_at"`)}
	}
	return nil
}

func (_c *AlertLogCreate) sqlSave(ctx context.Context) (*AlertLog, error) {
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
			return nil, fmt.Errorf("unexpected AlertLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AlertLogCreate) createSpec() (*AlertLog, *sqlgraph.CreateSpec) {
	var (
		_node = &AlertLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(alertlog.Table, sqlgraph.NewFieldSpec(alertlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(alertlog.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.IntegrationID(); ok {
		_spec.SetField(alertlog.FieldIntegrationID, field.TypeString, value)
		_node.IntegrationID = value
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(alertlog.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(alertlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Recipients(); ok {
		_spec.SetField(alertlog.FieldRecipients, field.TypeJSON, value)
		_node.Recipients = value
	}
	if value, ok := _c.mutation.TotalFailures(); ok {
		_spec.SetField(alertlog.FieldTotalFailures, field.TypeInt, value)
		_node.TotalFailures = value
	}
	if value, ok := _c.mutation.WindowStart(); ok {
		_spec.SetField(alertlog.FieldWindowStart, field.TypeTime, value)
		_node.WindowStart = value
	}
	if value, ok := _c.mutation.WindowEnd(); ok {
		_spec.SetField(alertlog.FieldWindowEnd, field.TypeTime, value)
		_node.WindowEnd = value
	}
	if value, ok := _c.mutation.ProviderResponse(); ok {
		_spec.SetField(alertlog.FieldProviderResponse, field.TypeString, value)
		_node.ProviderResponse = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(alertlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlertLog.Create().
//		SetOrgID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertLogUpsert) {
//			SetOrgID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertLogCreate) OnConflict(opts ...sql.ConflictOption) *AlertLogUpsertOne {
	_c.conflict = opts
	return &AlertLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertLogCreate) OnConflictColumns(columns ...string) *AlertLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertLogUpsertOne{
		create: _c,
	}
}

type (
	// AlertLogUpsertOne is the builder for "upsert"-ing
	//  one AlertLog node.
	AlertLogUpsertOne struct {
		create *AlertLogCreate
	}

	// AlertLogUpsert is the "OnConflict" setter.
	AlertLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alertlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertLogUpsertOne) UpdateNewValues() *AlertLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(alertlog.FieldID)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(alertlog.FieldOrgID)
		}
		if _, exists := u.create.mutation.IntegrationID(); exists {
			s.SetIgnore(alertlog.FieldIntegrationID)
		}
		if _, exists := u.create.mutation.Channel(); exists {
			s.SetIgnore(alertlog.FieldChannel)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(alertlog.FieldStatus)
		}
		if _, exists := u.create.mutation.Recipients(); exists {
			s.SetIgnore(alertlog.FieldRecipients)
		}
		if _, exists := u.create.mutation.TotalFailures(); exists {
			s.SetIgnore(alertlog.FieldTotalFailures)
		}
		if _, exists := u.create.mutation.WindowStart(); exists {
			s.SetIgnore(alertlog.FieldWindowStart)
		}
		if _, exists := u.create.mutation.WindowEnd(); exists {
			s.SetIgnore(alertlog.FieldWindowEnd)
		}
		if _, exists := u.create.mutation.ProviderResponse(); exists {
			s.SetIgnore(alertlog.FieldProviderResponse)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(alertlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AlertLogUpsertOne) Ignore() *AlertLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertLogUpsertOne) DoNothing() *AlertLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertLogCreate.OnConflict
// documentation for more info.
func (u *AlertLogUpsertOne) Update(set func(*AlertLogUpsert)) *AlertLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AlertLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AlertLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AlertLogUpsertOne.ID is not supported by MySQL driver. Use AlertLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AlertLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AlertLogCreateBulk is the builder for creating many AlertLog entities in bulk.
type AlertLogCreateBulk struct {
	config
	err      error
	builders []*AlertLogCreate
	conflict []sql.ConflictOption
}

// Save creates the AlertLog entities in the database.
func (_c *AlertLogCreateBulk) Save(ctx context.Context) ([]*AlertLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AlertLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AlertLogMutation)
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
func (_c *AlertLogCreateBulk) SaveX(ctx context.Context) []*AlertLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AlertLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AlertLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AlertLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AlertLogUpsert) {
//			SetOrgID(v+v).
//		}).
//		Exec(ctx)
func (_c *AlertLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *AlertLogUpsertBulk {
	_c.conflict = opts
	return &AlertLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AlertLogCreateBulk) OnConflictColumns(columns ...string) *AlertLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AlertLogUpsertBulk{
		create: _c,
	}
}

// AlertLogUpsertBulk is the builder for "upsert"-ing
// a bulk of AlertLog nodes.
type AlertLogUpsertBulk struct {
	create *AlertLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(alertlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AlertLogUpsertBulk) UpdateNewValues() *AlertLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(alertlog.FieldID)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(alertlog.FieldOrgID)
			}
			if _, exists := b.mutation.IntegrationID(); exists {
				s.SetIgnore(alertlog.FieldIntegrationID)
			}
			if _, exists := b.mutation.Channel(); exists {
				s.SetIgnore(alertlog.FieldChannel)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(alertlog.FieldStatus)
			}
			if _, exists := b.mutation.Recipients(); exists {
				s.SetIgnore(alertlog.FieldRecipients)
			}
			if _, exists := b.mutation.TotalFailures(); exists {
				s.SetIgnore(alertlog.FieldTotalFailures)
			}
			if _, exists := b.mutation.WindowStart(); exists {
				s.SetIgnore(alertlog.FieldWindowStart)
			}
			if _, exists := b.mutation.WindowEnd(); exists {
				s.SetIgnore(alertlog.FieldWindowEnd)
			}
			if _, exists := b.mutation.ProviderResponse(); exists {
				s.SetIgnore(alertlog.FieldProviderResponse)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(alertlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AlertLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AlertLogUpsertBulk) Ignore() *AlertLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AlertLogUpsertBulk) DoNothing() *AlertLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AlertLogCreateBulk.OnConflict
// documentation for more info.
func (u *AlertLogUpsertBulk) Update(set func(*AlertLogUpsert)) *AlertLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AlertLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *AlertLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AlertLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AlertLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AlertLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
