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
	"github.com/relayforge/relayforge/ent/eventaudit"
)

// EventAuditCreate is the builder for creating a EventAudit entity.
type EventAuditCreate struct {
	config
	mutation *EventAuditMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSource sets the "source" field.
func (_c *EventAuditCreate) SetSource(v string) *EventAuditCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceID sets the "source_id" field.
func (_c *EventAuditCreate) SetSourceID(v string) *EventAuditCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetNillableSourceID sets the "source_id" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableSourceID(v *string) *EventAuditCreate {
	if v != nil {
		_c.SetSourceID(*v)
	}
	return _c
}

// SetOrgID sets the "org_id" field.
func (_c *EventAuditCreate) SetOrgID(v string) *EventAuditCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetOrgUnitID sets the "org_unit_id" field.
func (_c *EventAuditCreate) SetOrgUnitID(v string) *EventAuditCreate {
	_c.mutation.SetOrgUnitID(v)
	return _c
}

// SetNillableOrgUnitID sets the "org_unit_id" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableOrgUnitID(v *string) *EventAuditCreate {
	if v != nil {
		_c.SetOrgUnitID(*v)
	}
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *EventAuditCreate) SetEventType(v string) *EventAuditCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EventAuditCreate) SetPayload(v map[string]interface{}) *EventAuditCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPayloadHash sets the "payload_hash" field.
func (_c *EventAuditCreate) SetPayloadHash(v string) *EventAuditCreate {
	_c.mutation.SetPayloadHash(v)
	return _c
}

// SetEventKey sets the "event_key" field.
func (_c *EventAuditCreate) SetEventKey(v string) *EventAuditCreate {
	_c.mutation.SetEventKey(v)
	return _c
}

// SetNillableEventKey sets the "event_key" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableEventKey(v *string) *EventAuditCreate {
	if v != nil {
		_c.SetEventKey(*v)
	}
	return _c
}

// SetReceivedAtBucket sets the "received_at_bucket" field.
func (_c *EventAuditCreate) SetReceivedAtBucket(v time.Time) *EventAuditCreate {
	_c.mutation.SetReceivedAtBucket(v)
	return _c
}

// SetNillableReceivedAtBucket sets the "received_at_bucket" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableReceivedAtBucket(v *time.Time) *EventAuditCreate {
	if v != nil {
		_c.SetReceivedAtBucket(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *EventAuditCreate) SetStatus(v eventaudit.Status) *EventAuditCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableStatus(v *eventaudit.Status) *EventAuditCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTimeline sets the "timeline" field.
func (_c *EventAuditCreate) SetTimeline(v []map[string]interface{}) *EventAuditCreate {
	_c.mutation.SetTimeline(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *EventAuditCreate) SetReceivedAt(v time.Time) *EventAuditCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableReceivedAt(v *time.Time) *EventAuditCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EventAuditCreate) SetUpdatedAt(v time.Time) *EventAuditCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EventAuditCreate) SetNillableUpdatedAt(v *time.Time) *EventAuditCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *EventAuditCreate) SetExpiresAt(v time.Time) *EventAuditCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EventAuditCreate) SetID(v string) *EventAuditCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EventAuditMutation object of the builder.
func (_c *EventAuditCreate) Mutation() *EventAuditMutation {
	return _c.mutation
}

// Save creates the EventAudit in the database.
func (_c *EventAuditCreate) Save(ctx context.Context) (*EventAudit, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventAuditCreate) SaveX(ctx context.Context) *EventAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventAuditCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventAuditCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventAuditCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := eventaudit.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := eventaudit.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := eventaudit.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventAuditCreate) check() error {
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "EventAudit.source"`)}
	}
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "EventAudit.org_id"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "EventAudit.event_type"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "EventAudit.payload"`)}
	}
	if _, ok := _c.mutation.PayloadHash(); !ok {
		return &ValidationError{Name: "payload_hash", err: errors.New(`ent: missing required field "EventAudit.payload_hash"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "EventAudit.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := eventaudit.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "EventAudit.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "EventAudit.received_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "EventAudit.updated_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "EventAudit.expires_at"`)}
	}
	return nil
}

func (_c *EventAuditCreate) sqlSave(ctx context.Context) (*EventAudit, error) {
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
			return nil, fmt.Errorf("unexpected EventAudit.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EventAuditCreate) createSpec() (*EventAudit, *sqlgraph.CreateSpec) {
	var (
		_node = &EventAudit{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(eventaudit.Table, sqlgraph.NewFieldSpec(eventaudit.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(eventaudit.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(eventaudit.FieldSourceID, field.TypeString, value)
		_node.SourceID = &value
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(eventaudit.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.OrgUnitID(); ok {
		_spec.SetField(eventaudit.FieldOrgUnitID, field.TypeString, value)
		_node.OrgUnitID = &value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(eventaudit.FieldEventType, field.TypeString, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(eventaudit.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.PayloadHash(); ok {
		_spec.SetField(eventaudit.FieldPayloadHash, field.TypeString, value)
		_node.PayloadHash = value
	}
	if value, ok := _c.mutation.EventKey(); ok {
		_spec.SetField(eventaudit.FieldEventKey, field.TypeString, value)
		_node.EventKey = &value
	}
	if value, ok := _c.mutation.ReceivedAtBucket(); ok {
		_spec.SetField(eventaudit.FieldReceivedAtBucket, field.TypeTime, value)
		_node.ReceivedAtBucket = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(eventaudit.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Timeline(); ok {
		_spec.SetField(eventaudit.FieldTimeline, field.TypeJSON, value)
		_node.Timeline = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(eventaudit.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(eventaudit.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(eventaudit.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventAudit.Create().
//		SetSource(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventAuditUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *EventAuditCreate) OnConflict(opts ...sql.ConflictOption) *EventAuditUpsertOne {
	_c.conflict = opts
	return &EventAuditUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventAuditCreate) OnConflictColumns(columns ...string) *EventAuditUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventAuditUpsertOne{
		create: _c,
	}
}

type (
	// EventAuditUpsertOne is the builder for "upsert"-ing
	//  one EventAudit node.
	EventAuditUpsertOne struct {
		create *EventAuditCreate
	}

	// EventAuditUpsert is the "OnConflict" setter.
	EventAuditUpsert struct {
		*sql.UpdateSet
	}
)

// SetPayload sets the "payload" field.
func (u *EventAuditUpsert) SetPayload(v map[string]interface{}) *EventAuditUpsert {
	u.Set(eventaudit.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventAuditUpsert) UpdatePayload() *EventAuditUpsert {
	u.SetExcluded(eventaudit.FieldPayload)
	return u
}

// SetStatus sets the "status" field.
func (u *EventAuditUpsert) SetStatus(v eventaudit.Status) *EventAuditUpsert {
	u.Set(eventaudit.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventAuditUpsert) UpdateStatus() *EventAuditUpsert {
	u.SetExcluded(eventaudit.FieldStatus)
	return u
}

// SetTimeline sets the "timeline" field.
func (u *EventAuditUpsert) SetTimeline(v []map[string]interface{}) *EventAuditUpsert {
	u.Set(eventaudit.FieldTimeline, v)
	return u
}

// UpdateTimeline sets the "timeline" field to the value that was provided on create.
func (u *EventAuditUpsert) UpdateTimeline() *EventAuditUpsert {
	u.SetExcluded(eventaudit.FieldTimeline)
	return u
}

// ClearTimeline clears the value of the "timeline" field.
func (u *EventAuditUpsert) ClearTimeline() *EventAuditUpsert {
	u.SetNull(eventaudit.FieldTimeline)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventAuditUpsert) SetUpdatedAt(v time.Time) *EventAuditUpsert {
	u.Set(eventaudit.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventAuditUpsert) UpdateUpdatedAt() *EventAuditUpsert {
	u.SetExcluded(eventaudit.FieldUpdatedAt)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *EventAuditUpsert) SetExpiresAt(v time.Time) *EventAuditUpsert {
	u.Set(eventaudit.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EventAuditUpsert) UpdateExpiresAt() *EventAuditUpsert {
	u.SetExcluded(eventaudit.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventAuditUpsertOne) UpdateNewValues() *EventAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(eventaudit.FieldID)
		}
		if _, exists := u.create.mutation.Source(); exists {
			s.SetIgnore(eventaudit.FieldSource)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(eventaudit.FieldSourceID)
		}
		if _, exists := u.create.mutation.OrgID(); exists {
			s.SetIgnore(eventaudit.FieldOrgID)
		}
		if _, exists := u.create.mutation.OrgUnitID(); exists {
			s.SetIgnore(eventaudit.FieldOrgUnitID)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(eventaudit.FieldEventType)
		}
		if _, exists := u.create.mutation.PayloadHash(); exists {
			s.SetIgnore(eventaudit.FieldPayloadHash)
		}
		if _, exists := u.create.mutation.EventKey(); exists {
			s.SetIgnore(eventaudit.FieldEventKey)
		}
		if _, exists := u.create.mutation.ReceivedAtBucket(); exists {
			s.SetIgnore(eventaudit.FieldReceivedAtBucket)
		}
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(eventaudit.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventAuditUpsertOne) Ignore() *EventAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventAuditUpsertOne) DoNothing() *EventAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventAuditCreate.OnConflict
// documentation for more info.
func (u *EventAuditUpsertOne) Update(set func(*EventAuditUpsert)) *EventAuditUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *EventAuditUpsertOne) SetPayload(v map[string]interface{}) *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventAuditUpsertOne) UpdatePayload() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *EventAuditUpsertOne) SetStatus(v eventaudit.Status) *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventAuditUpsertOne) UpdateStatus() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateStatus()
	})
}

// SetTimeline sets the "timeline" field.
func (u *EventAuditUpsertOne) SetTimeline(v []map[string]interface{}) *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetTimeline(v)
	})
}

// UpdateTimeline sets the "timeline" field to the value that was provided on create.
func (u *EventAuditUpsertOne) UpdateTimeline() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateTimeline()
	})
}

// ClearTimeline clears the value of the "timeline" field.
func (u *EventAuditUpsertOne) ClearTimeline() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.ClearTimeline()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventAuditUpsertOne) SetUpdatedAt(v time.Time) *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventAuditUpsertOne) UpdateUpdatedAt() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *EventAuditUpsertOne) SetExpiresAt(v time.Time) *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EventAuditUpsertOne) UpdateExpiresAt() *EventAuditUpsertOne {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *EventAuditUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventAuditCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventAuditUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventAuditUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EventAuditUpsertOne.ID is not supported by MySQL driver. Use EventAuditUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventAuditUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventAuditCreateBulk is the builder for creating many EventAudit entities in bulk.
type EventAuditCreateBulk struct {
	config
	err      error
	builders []*EventAuditCreate
	conflict []sql.ConflictOption
}

// Save creates the EventAudit entities in the database.
func (_c *EventAuditCreateBulk) Save(ctx context.Context) ([]*EventAudit, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EventAudit, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventAuditMutation)
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
func (_c *EventAuditCreateBulk) SaveX(ctx context.Context) []*EventAudit {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventAuditCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventAuditCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.EventAudit.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventAuditUpsert) {
//			SetSource(v+v).
//		}).
//		Exec(ctx)
func (_c *EventAuditCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventAuditUpsertBulk {
	_c.conflict = opts
	return &EventAuditUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventAuditCreateBulk) OnConflictColumns(columns ...string) *EventAuditUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventAuditUpsertBulk{
		create: _c,
	}
}

// EventAuditUpsertBulk is the builder for "upsert"-ing
// a bulk of EventAudit nodes.
type EventAuditUpsertBulk struct {
	create *EventAuditCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(eventaudit.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventAuditUpsertBulk) UpdateNewValues() *EventAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(eventaudit.FieldID)
			}
			if _, exists := b.mutation.Source(); exists {
				s.SetIgnore(eventaudit.FieldSource)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(eventaudit.FieldSourceID)
			}
			if _, exists := b.mutation.OrgID(); exists {
				s.SetIgnore(eventaudit.FieldOrgID)
			}
			if _, exists := b.mutation.OrgUnitID(); exists {
				s.SetIgnore(eventaudit.FieldOrgUnitID)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(eventaudit.FieldEventType)
			}
			if _, exists := b.mutation.PayloadHash(); exists {
				s.SetIgnore(eventaudit.FieldPayloadHash)
			}
			if _, exists := b.mutation.EventKey(); exists {
				s.SetIgnore(eventaudit.FieldEventKey)
			}
			if _, exists := b.mutation.ReceivedAtBucket(); exists {
				s.SetIgnore(eventaudit.FieldReceivedAtBucket)
			}
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(eventaudit.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.EventAudit.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventAuditUpsertBulk) Ignore() *EventAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventAuditUpsertBulk) DoNothing() *EventAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventAuditCreateBulk.OnConflict
// documentation for more info.
func (u *EventAuditUpsertBulk) Update(set func(*EventAuditUpsert)) *EventAuditUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventAuditUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *EventAuditUpsertBulk) SetPayload(v map[string]interface{}) *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *EventAuditUpsertBulk) UpdatePayload() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdatePayload()
	})
}

// SetStatus sets the "status" field.
func (u *EventAuditUpsertBulk) SetStatus(v eventaudit.Status) *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *EventAuditUpsertBulk) UpdateStatus() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateStatus()
	})
}

// SetTimeline sets the "timeline" field.
func (u *EventAuditUpsertBulk) SetTimeline(v []map[string]interface{}) *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetTimeline(v)
	})
}

// UpdateTimeline sets the "timeline" field to the value that was provided on create.
func (u *EventAuditUpsertBulk) UpdateTimeline() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateTimeline()
	})
}

// ClearTimeline clears the value of the "timeline" field.
func (u *EventAuditUpsertBulk) ClearTimeline() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.ClearTimeline()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *EventAuditUpsertBulk) SetUpdatedAt(v time.Time) *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *EventAuditUpsertBulk) UpdateUpdatedAt() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *EventAuditUpsertBulk) SetExpiresAt(v time.Time) *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *EventAuditUpsertBulk) UpdateExpiresAt() *EventAuditUpsertBulk {
	return u.Update(func(s *EventAuditUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *EventAuditUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EventAuditCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EventAuditCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventAuditUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
