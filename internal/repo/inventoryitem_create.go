// Code generated by ent, DO NOT EDIT.

package repo

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
	"github.com/omrozmn/x-ear-sub003/internal/repo/branch"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
)

// InventoryItemCreate is the builder for creating a InventoryItem entity.
type InventoryItemCreate struct {
	config
	mutation *InventoryItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InventoryItemCreate) SetCreatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCreatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InventoryItemCreate) SetUpdatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUpdatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InventoryItemCreate) SetDeletedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableDeletedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetBranchID sets the "branch_id" field.
func (_c *InventoryItemCreate) SetBranchID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetBranchID(v)
	return _c
}

// SetBrand sets the "brand" field.
func (_c *InventoryItemCreate) SetBrand(v string) *InventoryItemCreate {
	_c.mutation.SetBrand(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *InventoryItemCreate) SetModel(v string) *InventoryItemCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *InventoryItemCreate) SetCategory(v inventoryitem.Category) *InventoryItemCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCategory(v *inventoryitem.Category) *InventoryItemCreate {
	if v != nil {
		_c.SetCategory(*v)
	}
	return _c
}

// SetEar sets the "ear" field.
func (_c *InventoryItemCreate) SetEar(v inventoryitem.Ear) *InventoryItemCreate {
	_c.mutation.SetEar(v)
	return _c
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableEar(v *inventoryitem.Ear) *InventoryItemCreate {
	if v != nil {
		_c.SetEar(*v)
	}
	return _c
}

// SetPrice sets the "price" field.
func (_c *InventoryItemCreate) SetPrice(v float64) *InventoryItemCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillablePrice(v *float64) *InventoryItemCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetBarcode sets the "barcode" field.
func (_c *InventoryItemCreate) SetBarcode(v string) *InventoryItemCreate {
	_c.mutation.SetBarcode(v)
	return _c
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableBarcode(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetBarcode(*v)
	}
	return _c
}

// SetAvailableQuantity sets the "available_quantity" field.
func (_c *InventoryItemCreate) SetAvailableQuantity(v int) *InventoryItemCreate {
	_c.mutation.SetAvailableQuantity(v)
	return _c
}

// SetNillableAvailableQuantity sets the "available_quantity" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableAvailableQuantity(v *int) *InventoryItemCreate {
	if v != nil {
		_c.SetAvailableQuantity(*v)
	}
	return _c
}

// SetAvailableSerials sets the "available_serials" field.
func (_c *InventoryItemCreate) SetAvailableSerials(v []string) *InventoryItemCreate {
	_c.mutation.SetAvailableSerials(v)
	return _c
}

// SetID sets the "id" field.
func (_c *InventoryItemCreate) SetID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableID(v *uuid.UUID) *InventoryItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_c *InventoryItemCreate) SetBranch(v *Branch) *InventoryItemCreate {
	return _c.SetBranchID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the DeviceAssignment entity by IDs.
func (_c *InventoryItemCreate) AddAssignmentIDs(ids ...uuid.UUID) *InventoryItemCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the DeviceAssignment entity.
func (_c *InventoryItemCreate) AddAssignments(v ...*DeviceAssignment) *InventoryItemCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_c *InventoryItemCreate) Mutation() *InventoryItemMutation {
	return _c.mutation
}

// Save creates the InventoryItem in the database.
func (_c *InventoryItemCreate) Save(ctx context.Context) (*InventoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryItemCreate) SaveX(ctx context.Context) *InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inventoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inventoryitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Category(); !ok {
		v := inventoryitem.DefaultCategory
		_c.mutation.SetCategory(v)
	}
	if _, ok := _c.mutation.Ear(); !ok {
		v := inventoryitem.DefaultEar
		_c.mutation.SetEar(v)
	}
	if _, ok := _c.mutation.Price(); !ok {
		v := inventoryitem.DefaultPrice
		_c.mutation.SetPrice(v)
	}
	if _, ok := _c.mutation.AvailableQuantity(); !ok {
		v := inventoryitem.DefaultAvailableQuantity
		_c.mutation.SetAvailableQuantity(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inventoryitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InventoryItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InventoryItem.updated_at"`)}
	}
	if _, ok := _c.mutation.BranchID(); !ok {
		return &ValidationError{Name: "branch_id", err: errors.New(`repo: missing required field "InventoryItem.branch_id"`)}
	}
	if _, ok := _c.mutation.Brand(); !ok {
		return &ValidationError{Name: "brand", err: errors.New(`repo: missing required field "InventoryItem.brand"`)}
	}
	if v, ok := _c.mutation.Brand(); ok {
		if err := inventoryitem.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.brand": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`repo: missing required field "InventoryItem.model"`)}
	}
	if v, ok := _c.mutation.Model(); ok {
		if err := inventoryitem.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.model": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`repo: missing required field "InventoryItem.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ear(); !ok {
		return &ValidationError{Name: "ear", err: errors.New(`repo: missing required field "InventoryItem.ear"`)}
	}
	if v, ok := _c.mutation.Ear(); ok {
		if err := inventoryitem.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.ear": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`repo: missing required field "InventoryItem.price"`)}
	}
	if v, ok := _c.mutation.Barcode(); ok {
		if err := inventoryitem.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.barcode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvailableQuantity(); !ok {
		return &ValidationError{Name: "available_quantity", err: errors.New(`repo: missing required field "InventoryItem.available_quantity"`)}
	}
	if len(_c.mutation.BranchIDs()) == 0 {
		return &ValidationError{Name: "branch", err: errors.New(`repo: missing required edge "InventoryItem.branch"`)}
	}
	return nil
}

func (_c *InventoryItemCreate) sqlSave(ctx context.Context) (*InventoryItem, error) {
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

func (_c *InventoryItemCreate) createSpec() (*InventoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventoryitem.Table, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(inventoryitem.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Brand(); ok {
		_spec.SetField(inventoryitem.FieldBrand, field.TypeString, value)
		_node.Brand = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(inventoryitem.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeEnum, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Ear(); ok {
		_spec.SetField(inventoryitem.FieldEar, field.TypeEnum, value)
		_node.Ear = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(inventoryitem.FieldPrice, field.TypeFloat64, value)
		_node.Price = value
	}
	if value, ok := _c.mutation.Barcode(); ok {
		_spec.SetField(inventoryitem.FieldBarcode, field.TypeString, value)
		_node.Barcode = &value
	}
	if value, ok := _c.mutation.AvailableQuantity(); ok {
		_spec.SetField(inventoryitem.FieldAvailableQuantity, field.TypeInt, value)
		_node.AvailableQuantity = value
	}
	if value, ok := _c.mutation.AvailableSerials(); ok {
		_spec.SetField(inventoryitem.FieldAvailableSerials, field.TypeJSON, value)
		_node.AvailableSerials = value
	}
	if nodes := _c.mutation.BranchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   inventoryitem.BranchTable,
			Columns: []string{inventoryitem.BranchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(branch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BranchID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   inventoryitem.AssignmentsTable,
			Columns: []string{inventoryitem.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID),
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
//	client.InventoryItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertOne {
	_c.conflict = opts
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflictColumns(columns ...string) *InventoryItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

type (
	// InventoryItemUpsertOne is the builder for "upsert"-ing
	//  one InventoryItem node.
	InventoryItemUpsertOne struct {
		create *InventoryItemCreate
	}

	// InventoryItemUpsert is the "OnConflict" setter.
	InventoryItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsert) SetUpdatedAt(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateUpdatedAt() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InventoryItemUpsert) SetDeletedAt(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateDeletedAt() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InventoryItemUpsert) ClearDeletedAt() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldDeletedAt)
	return u
}

// SetBranchID sets the "branch_id" field.
func (u *InventoryItemUpsert) SetBranchID(v uuid.UUID) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldBranchID, v)
	return u
}

// UpdateBranchID sets the "branch_id" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateBranchID() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldBranchID)
	return u
}

// SetBrand sets the "brand" field.
func (u *InventoryItemUpsert) SetBrand(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldBrand, v)
	return u
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateBrand() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldBrand)
	return u
}

// SetModel sets the "model" field.
func (u *InventoryItemUpsert) SetModel(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateModel() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldModel)
	return u
}

// SetCategory sets the "category" field.
func (u *InventoryItemUpsert) SetCategory(v inventoryitem.Category) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldCategory, v)
	return u
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateCategory() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldCategory)
	return u
}

// SetEar sets the "ear" field.
func (u *InventoryItemUpsert) SetEar(v inventoryitem.Ear) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldEar, v)
	return u
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateEar() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldEar)
	return u
}

// SetPrice sets the "price" field.
func (u *InventoryItemUpsert) SetPrice(v float64) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldPrice, v)
	return u
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdatePrice() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldPrice)
	return u
}

// AddPrice adds v to the "price" field.
func (u *InventoryItemUpsert) AddPrice(v float64) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldPrice, v)
	return u
}

// SetBarcode sets the "barcode" field.
func (u *InventoryItemUpsert) SetBarcode(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldBarcode, v)
	return u
}

// UpdateBarcode sets the "barcode" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateBarcode() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldBarcode)
	return u
}

// ClearBarcode clears the value of the "barcode" field.
func (u *InventoryItemUpsert) ClearBarcode() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldBarcode)
	return u
}

// SetAvailableQuantity sets the "available_quantity" field.
func (u *InventoryItemUpsert) SetAvailableQuantity(v int) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldAvailableQuantity, v)
	return u
}

// UpdateAvailableQuantity sets the "available_quantity" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateAvailableQuantity() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldAvailableQuantity)
	return u
}

// AddAvailableQuantity adds v to the "available_quantity" field.
func (u *InventoryItemUpsert) AddAvailableQuantity(v int) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldAvailableQuantity, v)
	return u
}

// SetAvailableSerials sets the "available_serials" field.
func (u *InventoryItemUpsert) SetAvailableSerials(v []string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldAvailableSerials, v)
	return u
}

// UpdateAvailableSerials sets the "available_serials" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateAvailableSerials() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldAvailableSerials)
	return u
}

// ClearAvailableSerials clears the value of the "available_serials" field.
func (u *InventoryItemUpsert) ClearAvailableSerials() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldAvailableSerials)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inventoryitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertOne) UpdateNewValues() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inventoryitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(inventoryitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InventoryItemUpsertOne) Ignore() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertOne) DoNothing() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreate.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertOne) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertOne) SetUpdatedAt(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateUpdatedAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InventoryItemUpsertOne) SetDeletedAt(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateDeletedAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InventoryItemUpsertOne) ClearDeletedAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearDeletedAt()
	})
}

// SetBranchID sets the "branch_id" field.
func (u *InventoryItemUpsertOne) SetBranchID(v uuid.UUID) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBranchID(v)
	})
}

// UpdateBranchID sets the "branch_id" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateBranchID() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBranchID()
	})
}

// SetBrand sets the "brand" field.
func (u *InventoryItemUpsertOne) SetBrand(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateBrand() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBrand()
	})
}

// SetModel sets the "model" field.
func (u *InventoryItemUpsertOne) SetModel(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateModel() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateModel()
	})
}

// SetCategory sets the "category" field.
func (u *InventoryItemUpsertOne) SetCategory(v inventoryitem.Category) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateCategory() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateCategory()
	})
}

// SetEar sets the "ear" field.
func (u *InventoryItemUpsertOne) SetEar(v inventoryitem.Ear) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateEar() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateEar()
	})
}

// SetPrice sets the "price" field.
func (u *InventoryItemUpsertOne) SetPrice(v float64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *InventoryItemUpsertOne) AddPrice(v float64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdatePrice() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdatePrice()
	})
}

// SetBarcode sets the "barcode" field.
func (u *InventoryItemUpsertOne) SetBarcode(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBarcode(v)
	})
}

// UpdateBarcode sets the "barcode" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateBarcode() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBarcode()
	})
}

// ClearBarcode clears the value of the "barcode" field.
func (u *InventoryItemUpsertOne) ClearBarcode() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearBarcode()
	})
}

// SetAvailableQuantity sets the "available_quantity" field.
func (u *InventoryItemUpsertOne) SetAvailableQuantity(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetAvailableQuantity(v)
	})
}

// AddAvailableQuantity adds v to the "available_quantity" field.
func (u *InventoryItemUpsertOne) AddAvailableQuantity(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddAvailableQuantity(v)
	})
}

// UpdateAvailableQuantity sets the "available_quantity" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateAvailableQuantity() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateAvailableQuantity()
	})
}

// SetAvailableSerials sets the "available_serials" field.
func (u *InventoryItemUpsertOne) SetAvailableSerials(v []string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetAvailableSerials(v)
	})
}

// UpdateAvailableSerials sets the "available_serials" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateAvailableSerials() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateAvailableSerials()
	})
}

// ClearAvailableSerials clears the value of the "available_serials" field.
func (u *InventoryItemUpsertOne) ClearAvailableSerials() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearAvailableSerials()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InventoryItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InventoryItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InventoryItemUpsertOne.ID is not supported by MySQL driver. Use InventoryItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InventoryItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InventoryItemCreateBulk is the builder for creating many InventoryItem entities in bulk.
type InventoryItemCreateBulk struct {
	config
	err      error
	builders []*InventoryItemCreate
	conflict []sql.ConflictOption
}

// Save creates the InventoryItem entities in the database.
func (_c *InventoryItemCreateBulk) Save(ctx context.Context) ([]*InventoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryItemMutation)
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
func (_c *InventoryItemCreateBulk) SaveX(ctx context.Context) []*InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InventoryItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertBulk {
	_c.conflict = opts
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflictColumns(columns ...string) *InventoryItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// InventoryItemUpsertBulk is the builder for "upsert"-ing
// a bulk of InventoryItem nodes.
type InventoryItemUpsertBulk struct {
	create *InventoryItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inventoryitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) UpdateNewValues() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inventoryitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(inventoryitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) Ignore() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertBulk) DoNothing() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreateBulk.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertBulk) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertBulk) SetUpdatedAt(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateUpdatedAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InventoryItemUpsertBulk) SetDeletedAt(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateDeletedAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InventoryItemUpsertBulk) ClearDeletedAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearDeletedAt()
	})
}

// SetBranchID sets the "branch_id" field.
func (u *InventoryItemUpsertBulk) SetBranchID(v uuid.UUID) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBranchID(v)
	})
}

// UpdateBranchID sets the "branch_id" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateBranchID() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBranchID()
	})
}

// SetBrand sets the "brand" field.
func (u *InventoryItemUpsertBulk) SetBrand(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBrand(v)
	})
}

// UpdateBrand sets the "brand" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateBrand() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBrand()
	})
}

// SetModel sets the "model" field.
func (u *InventoryItemUpsertBulk) SetModel(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateModel() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateModel()
	})
}

// SetCategory sets the "category" field.
func (u *InventoryItemUpsertBulk) SetCategory(v inventoryitem.Category) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetCategory(v)
	})
}

// UpdateCategory sets the "category" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateCategory() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateCategory()
	})
}

// SetEar sets the "ear" field.
func (u *InventoryItemUpsertBulk) SetEar(v inventoryitem.Ear) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateEar() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateEar()
	})
}

// SetPrice sets the "price" field.
func (u *InventoryItemUpsertBulk) SetPrice(v float64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetPrice(v)
	})
}

// AddPrice adds v to the "price" field.
func (u *InventoryItemUpsertBulk) AddPrice(v float64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddPrice(v)
	})
}

// UpdatePrice sets the "price" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdatePrice() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdatePrice()
	})
}

// SetBarcode sets the "barcode" field.
func (u *InventoryItemUpsertBulk) SetBarcode(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBarcode(v)
	})
}

// UpdateBarcode sets the "barcode" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateBarcode() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBarcode()
	})
}

// ClearBarcode clears the value of the "barcode" field.
func (u *InventoryItemUpsertBulk) ClearBarcode() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearBarcode()
	})
}

// SetAvailableQuantity sets the "available_quantity" field.
func (u *InventoryItemUpsertBulk) SetAvailableQuantity(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetAvailableQuantity(v)
	})
}

// AddAvailableQuantity adds v to the "available_quantity" field.
func (u *InventoryItemUpsertBulk) AddAvailableQuantity(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddAvailableQuantity(v)
	})
}

// UpdateAvailableQuantity sets the "available_quantity" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateAvailableQuantity() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateAvailableQuantity()
	})
}

// SetAvailableSerials sets the "available_serials" field.
func (u *InventoryItemUpsertBulk) SetAvailableSerials(v []string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetAvailableSerials(v)
	})
}

// UpdateAvailableSerials sets the "available_serials" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateAvailableSerials() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateAvailableSerials()
	})
}

// ClearAvailableSerials clears the value of the "available_serials" field.
func (u *InventoryItemUpsertBulk) ClearAvailableSerials() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearAvailableSerials()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InventoryItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InventoryItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
