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
	"github.com/google/uuid"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/itemstat"
)

// ItemStatCreate is the builder for creating a ItemStat entity.
type ItemStatCreate struct {
	config
	mutation *ItemStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetScope sets the "scope" field.
func (_c *ItemStatCreate) SetScope(v string) *ItemStatCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetItemKey sets the "item_key" field.
func (_c *ItemStatCreate) SetItemKey(v string) *ItemStatCreate {
	_c.mutation.SetItemKey(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *ItemStatCreate) SetCount(v int64) *ItemStatCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetTotalSpend sets the "total_spend" field.
func (_c *ItemStatCreate) SetTotalSpend(v float64) *ItemStatCreate {
	_c.mutation.SetTotalSpend(v)
	return _c
}

// SetMinPrice sets the "min_price" field.
func (_c *ItemStatCreate) SetMinPrice(v float64) *ItemStatCreate {
	_c.mutation.SetMinPrice(v)
	return _c
}

// SetMaxPrice sets the "max_price" field.
func (_c *ItemStatCreate) SetMaxPrice(v float64) *ItemStatCreate {
	_c.mutation.SetMaxPrice(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ItemStatCreate) SetLastSeen(v time.Time) *ItemStatCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ItemStatCreate) SetUpdatedAt(v time.Time) *ItemStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableUpdatedAt(v *time.Time) *ItemStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ItemStatCreate) SetID(v uuid.UUID) *ItemStatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ItemStatCreate) SetNillableID(v *uuid.UUID) *ItemStatCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ItemStatMutation object of the builder.
func (_c *ItemStatCreate) Mutation() *ItemStatMutation {
	return _c.mutation
}

// Save creates the ItemStat in the database.
func (_c *ItemStatCreate) Save(ctx context.Context) (*ItemStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ItemStatCreate) SaveX(ctx context.Context) *ItemStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ItemStatCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := itemstat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := itemstat.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ItemStatCreate) check() error {
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "ItemStat.scope"`)}
	}
	if v, ok := _c.mutation.Scope(); ok {
		if err := itemstat.ScopeValidator(v); err != nil {
			return &ValidationError{Name: "scope", err: fmt.Errorf(`ent: validator failed for field "ItemStat.scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemKey(); !ok {
		return &ValidationError{Name: "item_key", err: errors.New(`ent: missing required field "ItemStat.item_key"`)}
	}
	if v, ok := _c.mutation.ItemKey(); ok {
		if err := itemstat.ItemKeyValidator(v); err != nil {
			return &ValidationError{Name: "item_key", err: fmt.Errorf(`ent: validator failed for field "ItemStat.item_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "ItemStat.count"`)}
	}
	if v, ok := _c.mutation.Count(); ok {
		if err := itemstat.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ItemStat.count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalSpend(); !ok {
		return &ValidationError{Name: "total_spend", err: errors.New(`ent: missing required field "ItemStat.total_spend"`)}
	}
	if _, ok := _c.mutation.MinPrice(); !ok {
		return &ValidationError{Name: "min_price", err: errors.New(`ent: missing required field "ItemStat.min_price"`)}
	}
	if _, ok := _c.mutation.MaxPrice(); !ok {
		return &ValidationError{Name: "max_price", err: errors.New(`ent: missing required field "ItemStat.max_price"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "ItemStat.last_seen"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ItemStat.updated_at"`)}
	}
	return nil
}

func (_c *ItemStatCreate) sqlSave(ctx context.Context) (*ItemStat, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ItemStatCreate) createSpec() (*ItemStat, *sqlgraph.CreateSpec) {
	var (
		_node = &ItemStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(itemstat.Table, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(itemstat.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.ItemKey(); ok {
		_spec.SetField(itemstat.FieldItemKey, field.TypeString, value)
		_node.ItemKey = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(itemstat.FieldCount, field.TypeInt64, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.TotalSpend(); ok {
		_spec.SetField(itemstat.FieldTotalSpend, field.TypeFloat64, value)
		_node.TotalSpend = value
	}
	if value, ok := _c.mutation.MinPrice(); ok {
		_spec.SetField(itemstat.FieldMinPrice, field.TypeFloat64, value)
		_node.MinPrice = value
	}
	if value, ok := _c.mutation.MaxPrice(); ok {
		_spec.SetField(itemstat.FieldMaxPrice, field.TypeFloat64, value)
		_node.MaxPrice = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(itemstat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemStat.Create().
//		SetScope(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemStatUpsert) {
//			SetScope(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemStatCreate) OnConflict(opts ...sql.ConflictOption) *ItemStatUpsertOne {
	_c.conflict = opts
	return &ItemStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemStatCreate) OnConflictColumns(columns ...string) *ItemStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemStatUpsertOne{
		create: _c,
	}
}

type (
	// ItemStatUpsertOne is the builder for "upsert"-ing
	//  one ItemStat node.
	ItemStatUpsertOne struct {
		create *ItemStatCreate
	}

	// ItemStatUpsert is the "OnConflict" setter.
	ItemStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetCount sets the "count" field.
func (u *ItemStatUpsert) SetCount(v int64) *ItemStatUpsert {
	u.Set(itemstat.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateCount() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *ItemStatUpsert) AddCount(v int64) *ItemStatUpsert {
	u.Add(itemstat.FieldCount, v)
	return u
}

// SetTotalSpend sets the "total_spend" field.
func (u *ItemStatUpsert) SetTotalSpend(v float64) *ItemStatUpsert {
	u.Set(itemstat.FieldTotalSpend, v)
	return u
}

// UpdateTotalSpend sets the "total_spend" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateTotalSpend() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldTotalSpend)
	return u
}

// AddTotalSpend adds v to the "total_spend" field.
func (u *ItemStatUpsert) AddTotalSpend(v float64) *ItemStatUpsert {
	u.Add(itemstat.FieldTotalSpend, v)
	return u
}

// SetMinPrice sets the "min_price" field.
func (u *ItemStatUpsert) SetMinPrice(v float64) *ItemStatUpsert {
	u.Set(itemstat.FieldMinPrice, v)
	return u
}

// UpdateMinPrice sets the "min_price" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateMinPrice() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldMinPrice)
	return u
}

// AddMinPrice adds v to the "min_price" field.
func (u *ItemStatUpsert) AddMinPrice(v float64) *ItemStatUpsert {
	u.Add(itemstat.FieldMinPrice, v)
	return u
}

// SetMaxPrice sets the "max_price" field.
func (u *ItemStatUpsert) SetMaxPrice(v float64) *ItemStatUpsert {
	u.Set(itemstat.FieldMaxPrice, v)
	return u
}

// UpdateMaxPrice sets the "max_price" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateMaxPrice() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldMaxPrice)
	return u
}

// AddMaxPrice adds v to the "max_price" field.
func (u *ItemStatUpsert) AddMaxPrice(v float64) *ItemStatUpsert {
	u.Add(itemstat.FieldMaxPrice, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *ItemStatUpsert) SetLastSeen(v time.Time) *ItemStatUpsert {
	u.Set(itemstat.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateLastSeen() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldLastSeen)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemStatUpsert) SetUpdatedAt(v time.Time) *ItemStatUpsert {
	u.Set(itemstat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemStatUpsert) UpdateUpdatedAt() *ItemStatUpsert {
	u.SetExcluded(itemstat.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(itemstat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemStatUpsertOne) UpdateNewValues() *ItemStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(itemstat.FieldID)
		}
		if _, exists := u.create.mutation.Scope(); exists {
			s.SetIgnore(itemstat.FieldScope)
		}
		if _, exists := u.create.mutation.ItemKey(); exists {
			s.SetIgnore(itemstat.FieldItemKey)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ItemStatUpsertOne) Ignore() *ItemStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemStatUpsertOne) DoNothing() *ItemStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemStatCreate.OnConflict
// documentation for more info.
func (u *ItemStatUpsertOne) Update(set func(*ItemStatUpsert)) *ItemStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetCount sets the "count" field.
func (u *ItemStatUpsertOne) SetCount(v int64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *ItemStatUpsertOne) AddCount(v int64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateCount() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateCount()
	})
}

// SetTotalSpend sets the "total_spend" field.
func (u *ItemStatUpsertOne) SetTotalSpend(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetTotalSpend(v)
	})
}

// AddTotalSpend adds v to the "total_spend" field.
func (u *ItemStatUpsertOne) AddTotalSpend(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddTotalSpend(v)
	})
}

// UpdateTotalSpend sets the "total_spend" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateTotalSpend() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateTotalSpend()
	})
}

// SetMinPrice sets the "min_price" field.
func (u *ItemStatUpsertOne) SetMinPrice(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetMinPrice(v)
	})
}

// AddMinPrice adds v to the "min_price" field.
func (u *ItemStatUpsertOne) AddMinPrice(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddMinPrice(v)
	})
}

// UpdateMinPrice sets the "min_price" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateMinPrice() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateMinPrice()
	})
}

// SetMaxPrice sets the "max_price" field.
func (u *ItemStatUpsertOne) SetMaxPrice(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetMaxPrice(v)
	})
}

// AddMaxPrice adds v to the "max_price" field.
func (u *ItemStatUpsertOne) AddMaxPrice(v float64) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddMaxPrice(v)
	})
}

// UpdateMaxPrice sets the "max_price" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateMaxPrice() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateMaxPrice()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ItemStatUpsertOne) SetLastSeen(v time.Time) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateLastSeen() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateLastSeen()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemStatUpsertOne) SetUpdatedAt(v time.Time) *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemStatUpsertOne) UpdateUpdatedAt() *ItemStatUpsertOne {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ItemStatUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ItemStatUpsertOne.ID is not supported by MySQL driver. Use ItemStatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ItemStatUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ItemStatCreateBulk is the builder for creating many ItemStat entities in bulk.
type ItemStatCreateBulk struct {
	config
	err      error
	builders []*ItemStatCreate
	conflict []sql.ConflictOption
}

// Save creates the ItemStat entities in the database.
func (_c *ItemStatCreateBulk) Save(ctx context.Context) ([]*ItemStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ItemStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ItemStatMutation)
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
func (_c *ItemStatCreateBulk) SaveX(ctx context.Context) []*ItemStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ItemStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ItemStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ItemStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ItemStatUpsert) {
//			SetScope(v+v).
//		}).
//		Exec(ctx)
func (_c *ItemStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *ItemStatUpsertBulk {
	_c.conflict = opts
	return &ItemStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ItemStatCreateBulk) OnConflictColumns(columns ...string) *ItemStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ItemStatUpsertBulk{
		create: _c,
	}
}

// ItemStatUpsertBulk is the builder for "upsert"-ing
// a bulk of ItemStat nodes.
type ItemStatUpsertBulk struct {
	create *ItemStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(itemstat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ItemStatUpsertBulk) UpdateNewValues() *ItemStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(itemstat.FieldID)
			}
			if _, exists := b.mutation.Scope(); exists {
				s.SetIgnore(itemstat.FieldScope)
			}
			if _, exists := b.mutation.ItemKey(); exists {
				s.SetIgnore(itemstat.FieldItemKey)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ItemStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ItemStatUpsertBulk) Ignore() *ItemStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ItemStatUpsertBulk) DoNothing() *ItemStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ItemStatCreateBulk.OnConflict
// documentation for more info.
func (u *ItemStatUpsertBulk) Update(set func(*ItemStatUpsert)) *ItemStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ItemStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetCount sets the "count" field.
func (u *ItemStatUpsertBulk) SetCount(v int64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *ItemStatUpsertBulk) AddCount(v int64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateCount() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateCount()
	})
}

// SetTotalSpend sets the "total_spend" field.
func (u *ItemStatUpsertBulk) SetTotalSpend(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetTotalSpend(v)
	})
}

// AddTotalSpend adds v to the "total_spend" field.
func (u *ItemStatUpsertBulk) AddTotalSpend(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddTotalSpend(v)
	})
}

// UpdateTotalSpend sets the "total_spend" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateTotalSpend() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateTotalSpend()
	})
}

// SetMinPrice sets the "min_price" field.
func (u *ItemStatUpsertBulk) SetMinPrice(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetMinPrice(v)
	})
}

// AddMinPrice adds v to the "min_price" field.
func (u *ItemStatUpsertBulk) AddMinPrice(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddMinPrice(v)
	})
}

// UpdateMinPrice sets the "min_price" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateMinPrice() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateMinPrice()
	})
}

// SetMaxPrice sets the "max_price" field.
func (u *ItemStatUpsertBulk) SetMaxPrice(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetMaxPrice(v)
	})
}

// AddMaxPrice adds v to the "max_price" field.
func (u *ItemStatUpsertBulk) AddMaxPrice(v float64) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.AddMaxPrice(v)
	})
}

// UpdateMaxPrice sets the "max_price" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateMaxPrice() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateMaxPrice()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ItemStatUpsertBulk) SetLastSeen(v time.Time) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateLastSeen() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateLastSeen()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ItemStatUpsertBulk) SetUpdatedAt(v time.Time) *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ItemStatUpsertBulk) UpdateUpdatedAt() *ItemStatUpsertBulk {
	return u.Update(func(s *ItemStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ItemStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ItemStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ItemStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ItemStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
