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
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/account"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/extraction"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/receiptitem"
)

// ReceiptItemCreate is the builder for creating a ReceiptItem entity.
type ReceiptItemCreate struct {
	config
	mutation *ReceiptItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetExtractionID sets the "extraction_id" field.
func (_c *ReceiptItemCreate) SetExtractionID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetExtractionID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *ReceiptItemCreate) SetAccountID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetLineIndex sets the "line_index" field.
func (_c *ReceiptItemCreate) SetLineIndex(v int) *ReceiptItemCreate {
	_c.mutation.SetLineIndex(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ReceiptItemCreate) SetName(v string) *ReceiptItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetItemKey sets the "item_key" field.
func (_c *ReceiptItemCreate) SetItemKey(v string) *ReceiptItemCreate {
	_c.mutation.SetItemKey(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ReceiptItemCreate) SetQuantity(v float64) *ReceiptItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ReceiptItemCreate) SetUnitPrice(v float64) *ReceiptItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetLineTotal sets the "line_total" field.
func (_c *ReceiptItemCreate) SetLineTotal(v float64) *ReceiptItemCreate {
	_c.mutation.SetLineTotal(v)
	return _c
}

// SetPurchasedAt sets the "purchased_at" field.
func (_c *ReceiptItemCreate) SetPurchasedAt(v time.Time) *ReceiptItemCreate {
	_c.mutation.SetPurchasedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ReceiptItemCreate) SetID(v uuid.UUID) *ReceiptItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ReceiptItemCreate) SetNillableID(v *uuid.UUID) *ReceiptItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetExtraction sets the "extraction" edge to the Extraction entity.
func (_c *ReceiptItemCreate) SetExtraction(v *Extraction) *ReceiptItemCreate {
	return _c.SetExtractionID(v.ID)
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *ReceiptItemCreate) SetAccount(v *Account) *ReceiptItemCreate {
	return _c.SetAccountID(v.ID)
}

// Mutation returns the ReceiptItemMutation object of the builder.
func (_c *ReceiptItemCreate) Mutation() *ReceiptItemMutation {
	return _c.mutation
}

// Save creates the ReceiptItem in the database.
func (_c *ReceiptItemCreate) Save(ctx context.Context) (*ReceiptItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReceiptItemCreate) SaveX(ctx context.Context) *ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReceiptItemCreate) defaults() {
	if _, ok := _c.mutation.ID(); !ok {
		v := receiptitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReceiptItemCreate) check() error {
	if _, ok := _c.mutation.ExtractionID(); !ok {
		return &ValidationError{Name: "extraction_id", err: errors.New(`ent: missing required field "ReceiptItem.extraction_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "ReceiptItem.account_id"`)}
	}
	if _, ok := _c.mutation.LineIndex(); !ok {
		return &ValidationError{Name: "line_index", err: errors.New(`ent: missing required field "ReceiptItem.line_index"`)}
	}
	if v, ok := _c.mutation.LineIndex(); ok {
		if err := receiptitem.LineIndexValidator(v); err != nil {
			return &ValidationError{Name: "line_index", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.line_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ReceiptItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := receiptitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ItemKey(); !ok {
		return &ValidationError{Name: "item_key", err: errors.New(`ent: missing required field "ReceiptItem.item_key"`)}
	}
	if v, ok := _c.mutation.ItemKey(); ok {
		if err := receiptitem.ItemKeyValidator(v); err != nil {
			return &ValidationError{Name: "item_key", err: fmt.Errorf(`ent: validator failed for field "ReceiptItem.item_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ReceiptItem.quantity"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "ReceiptItem.unit_price"`)}
	}
	if _, ok := _c.mutation.LineTotal(); !ok {
		return &ValidationError{Name: "line_total", err: errors.New(`ent: missing required field "ReceiptItem.line_total"`)}
	}
	if _, ok := _c.mutation.PurchasedAt(); !ok {
		return &ValidationError{Name: "purchased_at", err: errors.New(`ent: missing required field "ReceiptItem.purchased_at"`)}
	}
	if len(_c.mutation.ExtractionIDs()) == 0 {
		return &ValidationError{Name: "extraction", err: errors.New(`ent: missing required edge "ReceiptItem.extraction"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "ReceiptItem.account"`)}
	}
	return nil
}

func (_c *ReceiptItemCreate) sqlSave(ctx context.Context) (*ReceiptItem, error) {
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

func (_c *ReceiptItemCreate) createSpec() (*ReceiptItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ReceiptItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(receiptitem.Table, sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LineIndex(); ok {
		_spec.SetField(receiptitem.FieldLineIndex, field.TypeInt, value)
		_node.LineIndex = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(receiptitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.ItemKey(); ok {
		_spec.SetField(receiptitem.FieldItemKey, field.TypeString, value)
		_node.ItemKey = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(receiptitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(receiptitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.LineTotal(); ok {
		_spec.SetField(receiptitem.FieldLineTotal, field.TypeFloat64, value)
		_node.LineTotal = value
	}
	if value, ok := _c.mutation.PurchasedAt(); ok {
		_spec.SetField(receiptitem.FieldPurchasedAt, field.TypeTime, value)
		_node.PurchasedAt = value
	}
	if nodes := _c.mutation.ExtractionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptitem.ExtractionTable,
			Columns: []string{receiptitem.ExtractionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ExtractionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   receiptitem.AccountTable,
			Columns: []string{receiptitem.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReceiptItem.Create().
//		SetExtractionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptItemUpsert) {
//			SetExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptItemCreate) OnConflict(opts ...sql.ConflictOption) *ReceiptItemUpsertOne {
	_c.conflict = opts
	return &ReceiptItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptItemCreate) OnConflictColumns(columns ...string) *ReceiptItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptItemUpsertOne{
		create: _c,
	}
}

type (
	// ReceiptItemUpsertOne is the builder for "upsert"-ing
	//  one ReceiptItem node.
	ReceiptItemUpsertOne struct {
		create *ReceiptItemCreate
	}

	// ReceiptItemUpsert is the "OnConflict" setter.
	ReceiptItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetExtractionID sets the "extraction_id" field.
func (u *ReceiptItemUpsert) SetExtractionID(v uuid.UUID) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldExtractionID, v)
	return u
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateExtractionID() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldExtractionID)
	return u
}

// SetAccountID sets the "account_id" field.
func (u *ReceiptItemUpsert) SetAccountID(v uuid.UUID) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateAccountID() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldAccountID)
	return u
}

// SetName sets the "name" field.
func (u *ReceiptItemUpsert) SetName(v string) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateName() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldName)
	return u
}

// SetItemKey sets the "item_key" field.
func (u *ReceiptItemUpsert) SetItemKey(v string) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldItemKey, v)
	return u
}

// UpdateItemKey sets the "item_key" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateItemKey() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldItemKey)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *ReceiptItemUpsert) SetQuantity(v float64) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateQuantity() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *ReceiptItemUpsert) AddQuantity(v float64) *ReceiptItemUpsert {
	u.Add(receiptitem.FieldQuantity, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *ReceiptItemUpsert) SetUnitPrice(v float64) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateUnitPrice() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ReceiptItemUpsert) AddUnitPrice(v float64) *ReceiptItemUpsert {
	u.Add(receiptitem.FieldUnitPrice, v)
	return u
}

// SetLineTotal sets the "line_total" field.
func (u *ReceiptItemUpsert) SetLineTotal(v float64) *ReceiptItemUpsert {
	u.Set(receiptitem.FieldLineTotal, v)
	return u
}

// UpdateLineTotal sets the "line_total" field to the value that was provided on create.
func (u *ReceiptItemUpsert) UpdateLineTotal() *ReceiptItemUpsert {
	u.SetExcluded(receiptitem.FieldLineTotal)
	return u
}

// AddLineTotal adds v to the "line_total" field.
func (u *ReceiptItemUpsert) AddLineTotal(v float64) *ReceiptItemUpsert {
	u.Add(receiptitem.FieldLineTotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receiptitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptItemUpsertOne) UpdateNewValues() *ReceiptItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(receiptitem.FieldID)
		}
		if _, exists := u.create.mutation.LineIndex(); exists {
			s.SetIgnore(receiptitem.FieldLineIndex)
		}
		if _, exists := u.create.mutation.PurchasedAt(); exists {
			s.SetIgnore(receiptitem.FieldPurchasedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ReceiptItemUpsertOne) Ignore() *ReceiptItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptItemUpsertOne) DoNothing() *ReceiptItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptItemCreate.OnConflict
// documentation for more info.
func (u *ReceiptItemUpsertOne) Update(set func(*ReceiptItemUpsert)) *ReceiptItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetExtractionID sets the "extraction_id" field.
func (u *ReceiptItemUpsertOne) SetExtractionID(v uuid.UUID) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetExtractionID(v)
	})
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateExtractionID() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateExtractionID()
	})
}

// SetAccountID sets the "account_id" field.
func (u *ReceiptItemUpsertOne) SetAccountID(v uuid.UUID) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateAccountID() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *ReceiptItemUpsertOne) SetName(v string) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateName() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateName()
	})
}

// SetItemKey sets the "item_key" field.
func (u *ReceiptItemUpsertOne) SetItemKey(v string) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetItemKey(v)
	})
}

// UpdateItemKey sets the "item_key" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateItemKey() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateItemKey()
	})
}

// SetQuantity sets the "quantity" field.
func (u *ReceiptItemUpsertOne) SetQuantity(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *ReceiptItemUpsertOne) AddQuantity(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateQuantity() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *ReceiptItemUpsertOne) SetUnitPrice(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ReceiptItemUpsertOne) AddUnitPrice(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateUnitPrice() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetLineTotal sets the "line_total" field.
func (u *ReceiptItemUpsertOne) SetLineTotal(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetLineTotal(v)
	})
}

// AddLineTotal adds v to the "line_total" field.
func (u *ReceiptItemUpsertOne) AddLineTotal(v float64) *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddLineTotal(v)
	})
}

// UpdateLineTotal sets the "line_total" field to the value that was provided on create.
func (u *ReceiptItemUpsertOne) UpdateLineTotal() *ReceiptItemUpsertOne {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateLineTotal()
	})
}

// Exec executes the query.
func (u *ReceiptItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ReceiptItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ReceiptItemUpsertOne.ID is not supported by MySQL driver. Use ReceiptItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ReceiptItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ReceiptItemCreateBulk is the builder for creating many ReceiptItem entities in bulk.
type ReceiptItemCreateBulk struct {
	config
	err      error
	builders []*ReceiptItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ReceiptItem entities in the database.
func (_c *ReceiptItemCreateBulk) Save(ctx context.Context) ([]*ReceiptItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReceiptItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReceiptItemMutation)
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
func (_c *ReceiptItemCreateBulk) SaveX(ctx context.Context) []*ReceiptItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReceiptItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReceiptItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ReceiptItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ReceiptItemUpsert) {
//			SetExtractionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ReceiptItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ReceiptItemUpsertBulk {
	_c.conflict = opts
	return &ReceiptItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ReceiptItemCreateBulk) OnConflictColumns(columns ...string) *ReceiptItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ReceiptItemUpsertBulk{
		create: _c,
	}
}

// ReceiptItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ReceiptItem nodes.
type ReceiptItemUpsertBulk struct {
	create *ReceiptItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(receiptitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ReceiptItemUpsertBulk) UpdateNewValues() *ReceiptItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(receiptitem.FieldID)
			}
			if _, exists := b.mutation.LineIndex(); exists {
				s.SetIgnore(receiptitem.FieldLineIndex)
			}
			if _, exists := b.mutation.PurchasedAt(); exists {
				s.SetIgnore(receiptitem.FieldPurchasedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ReceiptItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ReceiptItemUpsertBulk) Ignore() *ReceiptItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ReceiptItemUpsertBulk) DoNothing() *ReceiptItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ReceiptItemCreateBulk.OnConflict
// documentation for more info.
func (u *ReceiptItemUpsertBulk) Update(set func(*ReceiptItemUpsert)) *ReceiptItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ReceiptItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetExtractionID sets the "extraction_id" field.
func (u *ReceiptItemUpsertBulk) SetExtractionID(v uuid.UUID) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetExtractionID(v)
	})
}

// UpdateExtractionID sets the "extraction_id" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateExtractionID() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateExtractionID()
	})
}

// SetAccountID sets the "account_id" field.
func (u *ReceiptItemUpsertBulk) SetAccountID(v uuid.UUID) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateAccountID() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateAccountID()
	})
}

// SetName sets the "name" field.
func (u *ReceiptItemUpsertBulk) SetName(v string) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateName() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateName()
	})
}

// SetItemKey sets the "item_key" field.
func (u *ReceiptItemUpsertBulk) SetItemKey(v string) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetItemKey(v)
	})
}

// UpdateItemKey sets the "item_key" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateItemKey() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateItemKey()
	})
}

// SetQuantity sets the "quantity" field.
func (u *ReceiptItemUpsertBulk) SetQuantity(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *ReceiptItemUpsertBulk) AddQuantity(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateQuantity() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *ReceiptItemUpsertBulk) SetUnitPrice(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ReceiptItemUpsertBulk) AddUnitPrice(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateUnitPrice() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetLineTotal sets the "line_total" field.
func (u *ReceiptItemUpsertBulk) SetLineTotal(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.SetLineTotal(v)
	})
}

// AddLineTotal adds v to the "line_total" field.
func (u *ReceiptItemUpsertBulk) AddLineTotal(v float64) *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.AddLineTotal(v)
	})
}

// UpdateLineTotal sets the "line_total" field to the value that was provided on create.
func (u *ReceiptItemUpsertBulk) UpdateLineTotal() *ReceiptItemUpsertBulk {
	return u.Update(func(s *ReceiptItemUpsert) {
		s.UpdateLineTotal()
	})
}

// Exec executes the query.
func (u *ReceiptItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ReceiptItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ReceiptItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ReceiptItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
