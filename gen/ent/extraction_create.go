// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
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

// ExtractionCreate is the builder for creating a Extraction entity.
type ExtractionCreate struct {
	config
	mutation *ExtractionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *ExtractionCreate) SetAccountID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *ExtractionCreate) SetBucket(v string) *ExtractionCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetObjectName sets the "object_name" field.
func (_c *ExtractionCreate) SetObjectName(v string) *ExtractionCreate {
	_c.mutation.SetObjectName(v)
	return _c
}

// SetGeneration sets the "generation" field.
func (_c *ExtractionCreate) SetGeneration(v string) *ExtractionCreate {
	_c.mutation.SetGeneration(v)
	return _c
}

// SetMetageneration sets the "metageneration" field.
func (_c *ExtractionCreate) SetMetageneration(v string) *ExtractionCreate {
	_c.mutation.SetMetageneration(v)
	return _c
}

// SetNillableMetageneration sets the "metageneration" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableMetageneration(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetMetageneration(*v)
	}
	return _c
}

// SetContentType sets the "content_type" field.
func (_c *ExtractionCreate) SetContentType(v string) *ExtractionCreate {
	_c.mutation.SetContentType(v)
	return _c
}

// SetNillableContentType sets the "content_type" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableContentType(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetContentType(*v)
	}
	return _c
}

// SetSize sets the "size" field.
func (_c *ExtractionCreate) SetSize(v int64) *ExtractionCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableSize(v *int64) *ExtractionCreate {
	if v != nil {
		_c.SetSize(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionCreate) SetStatus(v string) *ExtractionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableStatus(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ExtractionCreate) SetFailureReason(v string) *ExtractionCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableFailureReason(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetRawOutput sets the "raw_output" field.
func (_c *ExtractionCreate) SetRawOutput(v string) *ExtractionCreate {
	_c.mutation.SetRawOutput(v)
	return _c
}

// SetNillableRawOutput sets the "raw_output" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableRawOutput(v *string) *ExtractionCreate {
	if v != nil {
		_c.SetRawOutput(*v)
	}
	return _c
}

// SetExtractedJSON sets the "extracted_json" field.
func (_c *ExtractionCreate) SetExtractedJSON(v json.RawMessage) *ExtractionCreate {
	_c.mutation.SetExtractedJSON(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionCreate) SetCreatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableCreatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionCreate) SetUpdatedAt(v time.Time) *ExtractionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionCreate) SetID(v uuid.UUID) *ExtractionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ExtractionCreate) SetNillableID(v *uuid.UUID) *ExtractionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *ExtractionCreate) SetAccount(v *Account) *ExtractionCreate {
	return _c.SetAccountID(v.ID)
}

// AddItemIDs adds the "items" edge to the ReceiptItem entity by IDs.
func (_c *ExtractionCreate) AddItemIDs(ids ...uuid.UUID) *ExtractionCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ReceiptItem entity.
func (_c *ExtractionCreate) AddItems(v ...*ReceiptItem) *ExtractionCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the ExtractionMutation object of the builder.
func (_c *ExtractionCreate) Mutation() *ExtractionMutation {
	return _c.mutation
}

// Save creates the Extraction in the database.
func (_c *ExtractionCreate) Save(ctx context.Context) (*Extraction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionCreate) SaveX(ctx context.Context) *Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extraction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extraction.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := extraction.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Extraction.account_id"`)}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "Extraction.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := extraction.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Extraction.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ObjectName(); !ok {
		return &ValidationError{Name: "object_name", err: errors.New(`ent: missing required field "Extraction.object_name"`)}
	}
	if v, ok := _c.mutation.ObjectName(); ok {
		if err := extraction.ObjectNameValidator(v); err != nil {
			return &ValidationError{Name: "object_name", err: fmt.Errorf(`ent: validator failed for field "Extraction.object_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Generation(); !ok {
		return &ValidationError{Name: "generation", err: errors.New(`ent: missing required field "Extraction.generation"`)}
	}
	if v, ok := _c.mutation.Generation(); ok {
		if err := extraction.GenerationValidator(v); err != nil {
			return &ValidationError{Name: "generation", err: fmt.Errorf(`ent: validator failed for field "Extraction.generation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Extraction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extraction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Extraction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Extraction.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Extraction.updated_at"`)}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Extraction.account"`)}
	}
	return nil
}

func (_c *ExtractionCreate) sqlSave(ctx context.Context) (*Extraction, error) {
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

func (_c *ExtractionCreate) createSpec() (*Extraction, *sqlgraph.CreateSpec) {
	var (
		_node = &Extraction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraction.Table, sqlgraph.NewFieldSpec(extraction.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(extraction.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.ObjectName(); ok {
		_spec.SetField(extraction.FieldObjectName, field.TypeString, value)
		_node.ObjectName = value
	}
	if value, ok := _c.mutation.Generation(); ok {
		_spec.SetField(extraction.FieldGeneration, field.TypeString, value)
		_node.Generation = value
	}
	if value, ok := _c.mutation.Metageneration(); ok {
		_spec.SetField(extraction.FieldMetageneration, field.TypeString, value)
		_node.Metageneration = &value
	}
	if value, ok := _c.mutation.ContentType(); ok {
		_spec.SetField(extraction.FieldContentType, field.TypeString, value)
		_node.ContentType = &value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(extraction.FieldSize, field.TypeInt64, value)
		_node.Size = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extraction.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(extraction.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = &value
	}
	if value, ok := _c.mutation.RawOutput(); ok {
		_spec.SetField(extraction.FieldRawOutput, field.TypeString, value)
		_node.RawOutput = &value
	}
	if value, ok := _c.mutation.ExtractedJSON(); ok {
		_spec.SetField(extraction.FieldExtractedJSON, field.TypeJSON, value)
		_node.ExtractedJSON = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extraction.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraction.AccountTable,
			Columns: []string{extraction.AccountColumn},
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
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   extraction.ItemsTable,
			Columns: []string{extraction.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(receiptitem.FieldID, field.TypeUUID),
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
//	client.Extraction.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertOne {
	_c.conflict = opts
	return &ExtractionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreate) OnConflictColumns(columns ...string) *ExtractionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertOne{
		create: _c,
	}
}

type (
	// ExtractionUpsertOne is the builder for "upsert"-ing
	//  one Extraction node.
	ExtractionUpsertOne struct {
		create *ExtractionCreate
	}

	// ExtractionUpsert is the "OnConflict" setter.
	ExtractionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *ExtractionUpsert) SetAccountID(v uuid.UUID) *ExtractionUpsert {
	u.Set(extraction.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateAccountID() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldAccountID)
	return u
}

// SetMetageneration sets the "metageneration" field.
func (u *ExtractionUpsert) SetMetageneration(v string) *ExtractionUpsert {
	u.Set(extraction.FieldMetageneration, v)
	return u
}

// UpdateMetageneration sets the "metageneration" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateMetageneration() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldMetageneration)
	return u
}

// ClearMetageneration clears the value of the "metageneration" field.
func (u *ExtractionUpsert) ClearMetageneration() *ExtractionUpsert {
	u.SetNull(extraction.FieldMetageneration)
	return u
}

// SetContentType sets the "content_type" field.
func (u *ExtractionUpsert) SetContentType(v string) *ExtractionUpsert {
	u.Set(extraction.FieldContentType, v)
	return u
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateContentType() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldContentType)
	return u
}

// ClearContentType clears the value of the "content_type" field.
func (u *ExtractionUpsert) ClearContentType() *ExtractionUpsert {
	u.SetNull(extraction.FieldContentType)
	return u
}

// SetSize sets the "size" field.
func (u *ExtractionUpsert) SetSize(v int64) *ExtractionUpsert {
	u.Set(extraction.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateSize() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *ExtractionUpsert) AddSize(v int64) *ExtractionUpsert {
	u.Add(extraction.FieldSize, v)
	return u
}

// ClearSize clears the value of the "size" field.
func (u *ExtractionUpsert) ClearSize() *ExtractionUpsert {
	u.SetNull(extraction.FieldSize)
	return u
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsert) SetStatus(v string) *ExtractionUpsert {
	u.Set(extraction.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateStatus() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldStatus)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *ExtractionUpsert) SetFailureReason(v string) *ExtractionUpsert {
	u.Set(extraction.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateFailureReason() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ExtractionUpsert) ClearFailureReason() *ExtractionUpsert {
	u.SetNull(extraction.FieldFailureReason)
	return u
}

// SetRawOutput sets the "raw_output" field.
func (u *ExtractionUpsert) SetRawOutput(v string) *ExtractionUpsert {
	u.Set(extraction.FieldRawOutput, v)
	return u
}

// UpdateRawOutput sets the "raw_output" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateRawOutput() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldRawOutput)
	return u
}

// ClearRawOutput clears the value of the "raw_output" field.
func (u *ExtractionUpsert) ClearRawOutput() *ExtractionUpsert {
	u.SetNull(extraction.FieldRawOutput)
	return u
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ExtractionUpsert) SetExtractedJSON(v json.RawMessage) *ExtractionUpsert {
	u.Set(extraction.FieldExtractedJSON, v)
	return u
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateExtractedJSON() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldExtractedJSON)
	return u
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ExtractionUpsert) ClearExtractedJSON() *ExtractionUpsert {
	u.SetNull(extraction.FieldExtractedJSON)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionUpsert) SetCreatedAt(v time.Time) *ExtractionUpsert {
	u.Set(extraction.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateCreatedAt() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsert) SetUpdatedAt(v time.Time) *ExtractionUpsert {
	u.Set(extraction.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsert) UpdateUpdatedAt() *ExtractionUpsert {
	u.SetExcluded(extraction.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertOne) UpdateNewValues() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(extraction.FieldID)
		}
		if _, exists := u.create.mutation.Bucket(); exists {
			s.SetIgnore(extraction.FieldBucket)
		}
		if _, exists := u.create.mutation.ObjectName(); exists {
			s.SetIgnore(extraction.FieldObjectName)
		}
		if _, exists := u.create.mutation.Generation(); exists {
			s.SetIgnore(extraction.FieldGeneration)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractionUpsertOne) Ignore() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertOne) DoNothing() *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreate.OnConflict
// documentation for more info.
func (u *ExtractionUpsertOne) Update(set func(*ExtractionUpsert)) *ExtractionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *ExtractionUpsertOne) SetAccountID(v uuid.UUID) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateAccountID() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateAccountID()
	})
}

// SetMetageneration sets the "metageneration" field.
func (u *ExtractionUpsertOne) SetMetageneration(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetMetageneration(v)
	})
}

// UpdateMetageneration sets the "metageneration" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateMetageneration() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateMetageneration()
	})
}

// ClearMetageneration clears the value of the "metageneration" field.
func (u *ExtractionUpsertOne) ClearMetageneration() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearMetageneration()
	})
}

// SetContentType sets the "content_type" field.
func (u *ExtractionUpsertOne) SetContentType(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateContentType() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *ExtractionUpsertOne) ClearContentType() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearContentType()
	})
}

// SetSize sets the "size" field.
func (u *ExtractionUpsertOne) SetSize(v int64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ExtractionUpsertOne) AddSize(v int64) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateSize() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *ExtractionUpsertOne) ClearSize() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearSize()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertOne) SetStatus(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateStatus() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *ExtractionUpsertOne) SetFailureReason(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateFailureReason() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ExtractionUpsertOne) ClearFailureReason() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFailureReason()
	})
}

// SetRawOutput sets the "raw_output" field.
func (u *ExtractionUpsertOne) SetRawOutput(v string) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetRawOutput(v)
	})
}

// UpdateRawOutput sets the "raw_output" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateRawOutput() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateRawOutput()
	})
}

// ClearRawOutput clears the value of the "raw_output" field.
func (u *ExtractionUpsertOne) ClearRawOutput() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearRawOutput()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ExtractionUpsertOne) SetExtractedJSON(v json.RawMessage) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateExtractedJSON() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ExtractionUpsertOne) ClearExtractedJSON() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionUpsertOne) SetCreatedAt(v time.Time) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateCreatedAt() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsertOne) SetUpdatedAt(v time.Time) *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsertOne) UpdateUpdatedAt() *ExtractionUpsertOne {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ExtractionUpsertOne.ID is not supported by MySQL driver. Use ExtractionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractionCreateBulk is the builder for creating many Extraction entities in bulk.
type ExtractionCreateBulk struct {
	config
	err      error
	builders []*ExtractionCreate
	conflict []sql.ConflictOption
}

// Save creates the Extraction entities in the database.
func (_c *ExtractionCreateBulk) Save(ctx context.Context) ([]*Extraction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Extraction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionMutation)
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
func (_c *ExtractionCreateBulk) SaveX(ctx context.Context) []*Extraction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Extraction.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractionUpsertBulk {
	_c.conflict = opts
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractionCreateBulk) OnConflictColumns(columns ...string) *ExtractionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractionUpsertBulk{
		create: _c,
	}
}

// ExtractionUpsertBulk is the builder for "upsert"-ing
// a bulk of Extraction nodes.
type ExtractionUpsertBulk struct {
	create *ExtractionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(extraction.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) UpdateNewValues() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(extraction.FieldID)
			}
			if _, exists := b.mutation.Bucket(); exists {
				s.SetIgnore(extraction.FieldBucket)
			}
			if _, exists := b.mutation.ObjectName(); exists {
				s.SetIgnore(extraction.FieldObjectName)
			}
			if _, exists := b.mutation.Generation(); exists {
				s.SetIgnore(extraction.FieldGeneration)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Extraction.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractionUpsertBulk) Ignore() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractionUpsertBulk) DoNothing() *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractionCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractionUpsertBulk) Update(set func(*ExtractionUpsert)) *ExtractionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *ExtractionUpsertBulk) SetAccountID(v uuid.UUID) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateAccountID() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateAccountID()
	})
}

// SetMetageneration sets the "metageneration" field.
func (u *ExtractionUpsertBulk) SetMetageneration(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetMetageneration(v)
	})
}

// UpdateMetageneration sets the "metageneration" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateMetageneration() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateMetageneration()
	})
}

// ClearMetageneration clears the value of the "metageneration" field.
func (u *ExtractionUpsertBulk) ClearMetageneration() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearMetageneration()
	})
}

// SetContentType sets the "content_type" field.
func (u *ExtractionUpsertBulk) SetContentType(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetContentType(v)
	})
}

// UpdateContentType sets the "content_type" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateContentType() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateContentType()
	})
}

// ClearContentType clears the value of the "content_type" field.
func (u *ExtractionUpsertBulk) ClearContentType() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearContentType()
	})
}

// SetSize sets the "size" field.
func (u *ExtractionUpsertBulk) SetSize(v int64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *ExtractionUpsertBulk) AddSize(v int64) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateSize() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateSize()
	})
}

// ClearSize clears the value of the "size" field.
func (u *ExtractionUpsertBulk) ClearSize() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearSize()
	})
}

// SetStatus sets the "status" field.
func (u *ExtractionUpsertBulk) SetStatus(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateStatus() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateStatus()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *ExtractionUpsertBulk) SetFailureReason(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateFailureReason() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ExtractionUpsertBulk) ClearFailureReason() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearFailureReason()
	})
}

// SetRawOutput sets the "raw_output" field.
func (u *ExtractionUpsertBulk) SetRawOutput(v string) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetRawOutput(v)
	})
}

// UpdateRawOutput sets the "raw_output" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateRawOutput() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateRawOutput()
	})
}

// ClearRawOutput clears the value of the "raw_output" field.
func (u *ExtractionUpsertBulk) ClearRawOutput() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearRawOutput()
	})
}

// SetExtractedJSON sets the "extracted_json" field.
func (u *ExtractionUpsertBulk) SetExtractedJSON(v json.RawMessage) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetExtractedJSON(v)
	})
}

// UpdateExtractedJSON sets the "extracted_json" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateExtractedJSON() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateExtractedJSON()
	})
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (u *ExtractionUpsertBulk) ClearExtractedJSON() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.ClearExtractedJSON()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ExtractionUpsertBulk) SetCreatedAt(v time.Time) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateCreatedAt() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtractionUpsertBulk) SetUpdatedAt(v time.Time) *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtractionUpsertBulk) UpdateUpdatedAt() *ExtractionUpsertBulk {
	return u.Update(func(s *ExtractionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtractionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
