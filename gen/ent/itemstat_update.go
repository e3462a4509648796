// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/itemstat"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/predicate"
)

// ItemStatUpdate is the builder for updating ItemStat entities.
type ItemStatUpdate struct {
	config
	hooks    []Hook
	mutation *ItemStatMutation
}

// Where appends a list predicates to the ItemStatUpdate builder.
func (_u *ItemStatUpdate) Where(ps ...predicate.ItemStat) *ItemStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCount sets the "count" field.
func (_u *ItemStatUpdate) SetCount(v int64) *ItemStatUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableCount(v *int64) *ItemStatUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *ItemStatUpdate) AddCount(v int64) *ItemStatUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetTotalSpend sets the "total_spend" field.
func (_u *ItemStatUpdate) SetTotalSpend(v float64) *ItemStatUpdate {
	_u.mutation.ResetTotalSpend()
	_u.mutation.SetTotalSpend(v)
	return _u
}

// SetNillableTotalSpend sets the "total_spend" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableTotalSpend(v *float64) *ItemStatUpdate {
	if v != nil {
		_u.SetTotalSpend(*v)
	}
	return _u
}

// AddTotalSpend adds value to the "total_spend" field.
func (_u *ItemStatUpdate) AddTotalSpend(v float64) *ItemStatUpdate {
	_u.mutation.AddTotalSpend(v)
	return _u
}

// SetMinPrice sets the "min_price" field.
func (_u *ItemStatUpdate) SetMinPrice(v float64) *ItemStatUpdate {
	_u.mutation.ResetMinPrice()
	_u.mutation.SetMinPrice(v)
	return _u
}

// SetNillableMinPrice sets the "min_price" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableMinPrice(v *float64) *ItemStatUpdate {
	if v != nil {
		_u.SetMinPrice(*v)
	}
	return _u
}

// AddMinPrice adds value to the "min_price" field.
func (_u *ItemStatUpdate) AddMinPrice(v float64) *ItemStatUpdate {
	_u.mutation.AddMinPrice(v)
	return _u
}

// SetMaxPrice sets the "max_price" field.
func (_u *ItemStatUpdate) SetMaxPrice(v float64) *ItemStatUpdate {
	_u.mutation.ResetMaxPrice()
	_u.mutation.SetMaxPrice(v)
	return _u
}

// SetNillableMaxPrice sets the "max_price" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableMaxPrice(v *float64) *ItemStatUpdate {
	if v != nil {
		_u.SetMaxPrice(*v)
	}
	return _u
}

// AddMaxPrice adds value to the "max_price" field.
func (_u *ItemStatUpdate) AddMaxPrice(v float64) *ItemStatUpdate {
	_u.mutation.AddMaxPrice(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemStatUpdate) SetLastSeen(v time.Time) *ItemStatUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemStatUpdate) SetNillableLastSeen(v *time.Time) *ItemStatUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemStatUpdate) SetUpdatedAt(v time.Time) *ItemStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemStatMutation object of the builder.
func (_u *ItemStatUpdate) Mutation() *ItemStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ItemStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ItemStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemStatUpdate) check() error {
	if v, ok := _u.mutation.Count(); ok {
		if err := itemstat.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ItemStat.count": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemstat.Table, itemstat.Columns, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(itemstat.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(itemstat.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalSpend(); ok {
		_spec.SetField(itemstat.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpend(); ok {
		_spec.AddField(itemstat.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinPrice(); ok {
		_spec.SetField(itemstat.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinPrice(); ok {
		_spec.AddField(itemstat.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPrice(); ok {
		_spec.SetField(itemstat.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPrice(); ok {
		_spec.AddField(itemstat.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemstat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ItemStatUpdateOne is the builder for updating a single ItemStat entity.
type ItemStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ItemStatMutation
}

// SetCount sets the "count" field.
func (_u *ItemStatUpdateOne) SetCount(v int64) *ItemStatUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableCount(v *int64) *ItemStatUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *ItemStatUpdateOne) AddCount(v int64) *ItemStatUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetTotalSpend sets the "total_spend" field.
func (_u *ItemStatUpdateOne) SetTotalSpend(v float64) *ItemStatUpdateOne {
	_u.mutation.ResetTotalSpend()
	_u.mutation.SetTotalSpend(v)
	return _u
}

// SetNillableTotalSpend sets the "total_spend" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableTotalSpend(v *float64) *ItemStatUpdateOne {
	if v != nil {
		_u.SetTotalSpend(*v)
	}
	return _u
}

// AddTotalSpend adds value to the "total_spend" field.
func (_u *ItemStatUpdateOne) AddTotalSpend(v float64) *ItemStatUpdateOne {
	_u.mutation.AddTotalSpend(v)
	return _u
}

// SetMinPrice sets the "min_price" field.
func (_u *ItemStatUpdateOne) SetMinPrice(v float64) *ItemStatUpdateOne {
	_u.mutation.ResetMinPrice()
	_u.mutation.SetMinPrice(v)
	return _u
}

// SetNillableMinPrice sets the "min_price" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableMinPrice(v *float64) *ItemStatUpdateOne {
	if v != nil {
		_u.SetMinPrice(*v)
	}
	return _u
}

// AddMinPrice adds value to the "min_price" field.
func (_u *ItemStatUpdateOne) AddMinPrice(v float64) *ItemStatUpdateOne {
	_u.mutation.AddMinPrice(v)
	return _u
}

// SetMaxPrice sets the "max_price" field.
func (_u *ItemStatUpdateOne) SetMaxPrice(v float64) *ItemStatUpdateOne {
	_u.mutation.ResetMaxPrice()
	_u.mutation.SetMaxPrice(v)
	return _u
}

// SetNillableMaxPrice sets the "max_price" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableMaxPrice(v *float64) *ItemStatUpdateOne {
	if v != nil {
		_u.SetMaxPrice(*v)
	}
	return _u
}

// AddMaxPrice adds value to the "max_price" field.
func (_u *ItemStatUpdateOne) AddMaxPrice(v float64) *ItemStatUpdateOne {
	_u.mutation.AddMaxPrice(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ItemStatUpdateOne) SetLastSeen(v time.Time) *ItemStatUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ItemStatUpdateOne) SetNillableLastSeen(v *time.Time) *ItemStatUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ItemStatUpdateOne) SetUpdatedAt(v time.Time) *ItemStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ItemStatMutation object of the builder.
func (_u *ItemStatUpdateOne) Mutation() *ItemStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the ItemStatUpdate builder.
func (_u *ItemStatUpdateOne) Where(ps ...predicate.ItemStat) *ItemStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ItemStatUpdateOne) Select(field string, fields ...string) *ItemStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ItemStat entity.
func (_u *ItemStatUpdateOne) Save(ctx context.Context) (*ItemStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ItemStatUpdateOne) SaveX(ctx context.Context) *ItemStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ItemStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ItemStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ItemStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := itemstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ItemStatUpdateOne) check() error {
	if v, ok := _u.mutation.Count(); ok {
		if err := itemstat.CountValidator(v); err != nil {
			return &ValidationError{Name: "count", err: fmt.Errorf(`ent: validator failed for field "ItemStat.count": %w`, err)}
		}
	}
	return nil
}

func (_u *ItemStatUpdateOne) sqlSave(ctx context.Context) (_node *ItemStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(itemstat.Table, itemstat.Columns, sqlgraph.NewFieldSpec(itemstat.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ItemStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, itemstat.FieldID)
		for _, f := range fields {
			if !itemstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != itemstat.FieldID {
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
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(itemstat.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(itemstat.FieldCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalSpend(); ok {
		_spec.SetField(itemstat.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalSpend(); ok {
		_spec.AddField(itemstat.FieldTotalSpend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MinPrice(); ok {
		_spec.SetField(itemstat.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinPrice(); ok {
		_spec.AddField(itemstat.FieldMinPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MaxPrice(); ok {
		_spec.SetField(itemstat.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxPrice(); ok {
		_spec.AddField(itemstat.FieldMaxPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(itemstat.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(itemstat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ItemStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{itemstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
