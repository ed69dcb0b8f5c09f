// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/branch"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InventoryItemUpdate) SetDeletedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableDeletedAt(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InventoryItemUpdate) ClearDeletedAt() *InventoryItemUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *InventoryItemUpdate) SetBranchID(v uuid.UUID) *InventoryItemUpdate {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableBranchID(v *uuid.UUID) *InventoryItemUpdate {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *InventoryItemUpdate) SetBrand(v string) *InventoryItemUpdate {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableBrand(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *InventoryItemUpdate) SetModel(v string) *InventoryItemUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableModel(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdate) SetCategory(v inventoryitem.Category) *InventoryItemUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableCategory(v *inventoryitem.Category) *InventoryItemUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEar sets the "ear" field.
func (_u *InventoryItemUpdate) SetEar(v inventoryitem.Ear) *InventoryItemUpdate {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableEar(v *inventoryitem.Ear) *InventoryItemUpdate {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *InventoryItemUpdate) SetPrice(v float64) *InventoryItemUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillablePrice(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *InventoryItemUpdate) AddPrice(v float64) *InventoryItemUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *InventoryItemUpdate) SetBarcode(v string) *InventoryItemUpdate {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableBarcode(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *InventoryItemUpdate) ClearBarcode() *InventoryItemUpdate {
	_u.mutation.ClearBarcode()
	return _u
}

// SetAvailableQuantity sets the "available_quantity" field.
func (_u *InventoryItemUpdate) SetAvailableQuantity(v int) *InventoryItemUpdate {
	_u.mutation.ResetAvailableQuantity()
	_u.mutation.SetAvailableQuantity(v)
	return _u
}

// SetNillableAvailableQuantity sets the "available_quantity" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableAvailableQuantity(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetAvailableQuantity(*v)
	}
	return _u
}

// AddAvailableQuantity adds value to the "available_quantity" field.
func (_u *InventoryItemUpdate) AddAvailableQuantity(v int) *InventoryItemUpdate {
	_u.mutation.AddAvailableQuantity(v)
	return _u
}

// SetAvailableSerials sets the "available_serials" field.
func (_u *InventoryItemUpdate) SetAvailableSerials(v []string) *InventoryItemUpdate {
	_u.mutation.SetAvailableSerials(v)
	return _u
}

// AppendAvailableSerials appends value to the "available_serials" field.
func (_u *InventoryItemUpdate) AppendAvailableSerials(v []string) *InventoryItemUpdate {
	_u.mutation.AppendAvailableSerials(v)
	return _u
}

// ClearAvailableSerials clears the value of the "available_serials" field.
func (_u *InventoryItemUpdate) ClearAvailableSerials() *InventoryItemUpdate {
	_u.mutation.ClearAvailableSerials()
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *InventoryItemUpdate) SetBranch(v *Branch) *InventoryItemUpdate {
	return _u.SetBranchID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the DeviceAssignment entity by IDs.
func (_u *InventoryItemUpdate) AddAssignmentIDs(ids ...uuid.UUID) *InventoryItemUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the DeviceAssignment entity.
func (_u *InventoryItemUpdate) AddAssignments(v ...*DeviceAssignment) *InventoryItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *InventoryItemUpdate) ClearBranch() *InventoryItemUpdate {
	_u.mutation.ClearBranch()
	return _u
}

// ClearAssignments clears all "assignments" edges to the DeviceAssignment entity.
func (_u *InventoryItemUpdate) ClearAssignments() *InventoryItemUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to DeviceAssignment entities by IDs.
func (_u *InventoryItemUpdate) RemoveAssignmentIDs(ids ...uuid.UUID) *InventoryItemUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to DeviceAssignment entities.
func (_u *InventoryItemUpdate) RemoveAssignments(v ...*DeviceAssignment) *InventoryItemUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.Brand(); ok {
		if err := inventoryitem.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := inventoryitem.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := inventoryitem.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Barcode(); ok {
		if err := inventoryitem.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.barcode": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InventoryItem.branch"`)
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(inventoryitem.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(inventoryitem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(inventoryitem.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(inventoryitem.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(inventoryitem.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(inventoryitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(inventoryitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(inventoryitem.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(inventoryitem.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.AvailableQuantity(); ok {
		_spec.SetField(inventoryitem.FieldAvailableQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvailableQuantity(); ok {
		_spec.AddField(inventoryitem.FieldAvailableQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableSerials(); ok {
		_spec.SetField(inventoryitem.FieldAvailableSerials, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailableSerials(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, inventoryitem.FieldAvailableSerials, value)
		})
	}
	if _u.mutation.AvailableSerialsCleared() {
		_spec.ClearField(inventoryitem.FieldAvailableSerials, field.TypeJSON)
	}
	if _u.mutation.BranchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InventoryItemUpdateOne) SetDeletedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableDeletedAt(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InventoryItemUpdateOne) ClearDeletedAt() *InventoryItemUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetBranchID sets the "branch_id" field.
func (_u *InventoryItemUpdateOne) SetBranchID(v uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.SetBranchID(v)
	return _u
}

// SetNillableBranchID sets the "branch_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableBranchID(v *uuid.UUID) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetBranchID(*v)
	}
	return _u
}

// SetBrand sets the "brand" field.
func (_u *InventoryItemUpdateOne) SetBrand(v string) *InventoryItemUpdateOne {
	_u.mutation.SetBrand(v)
	return _u
}

// SetNillableBrand sets the "brand" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableBrand(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetBrand(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *InventoryItemUpdateOne) SetModel(v string) *InventoryItemUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableModel(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *InventoryItemUpdateOne) SetCategory(v inventoryitem.Category) *InventoryItemUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableCategory(v *inventoryitem.Category) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEar sets the "ear" field.
func (_u *InventoryItemUpdateOne) SetEar(v inventoryitem.Ear) *InventoryItemUpdateOne {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableEar(v *inventoryitem.Ear) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *InventoryItemUpdateOne) SetPrice(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillablePrice(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *InventoryItemUpdateOne) AddPrice(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// SetBarcode sets the "barcode" field.
func (_u *InventoryItemUpdateOne) SetBarcode(v string) *InventoryItemUpdateOne {
	_u.mutation.SetBarcode(v)
	return _u
}

// SetNillableBarcode sets the "barcode" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableBarcode(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetBarcode(*v)
	}
	return _u
}

// ClearBarcode clears the value of the "barcode" field.
func (_u *InventoryItemUpdateOne) ClearBarcode() *InventoryItemUpdateOne {
	_u.mutation.ClearBarcode()
	return _u
}

// SetAvailableQuantity sets the "available_quantity" field.
func (_u *InventoryItemUpdateOne) SetAvailableQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetAvailableQuantity()
	_u.mutation.SetAvailableQuantity(v)
	return _u
}

// SetNillableAvailableQuantity sets the "available_quantity" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableAvailableQuantity(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetAvailableQuantity(*v)
	}
	return _u
}

// AddAvailableQuantity adds value to the "available_quantity" field.
func (_u *InventoryItemUpdateOne) AddAvailableQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.AddAvailableQuantity(v)
	return _u
}

// SetAvailableSerials sets the "available_serials" field.
func (_u *InventoryItemUpdateOne) SetAvailableSerials(v []string) *InventoryItemUpdateOne {
	_u.mutation.SetAvailableSerials(v)
	return _u
}

// AppendAvailableSerials appends value to the "available_serials" field.
func (_u *InventoryItemUpdateOne) AppendAvailableSerials(v []string) *InventoryItemUpdateOne {
	_u.mutation.AppendAvailableSerials(v)
	return _u
}

// ClearAvailableSerials clears the value of the "available_serials" field.
func (_u *InventoryItemUpdateOne) ClearAvailableSerials() *InventoryItemUpdateOne {
	_u.mutation.ClearAvailableSerials()
	return _u
}

// SetBranch sets the "branch" edge to the Branch entity.
func (_u *InventoryItemUpdateOne) SetBranch(v *Branch) *InventoryItemUpdateOne {
	return _u.SetBranchID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the DeviceAssignment entity by IDs.
func (_u *InventoryItemUpdateOne) AddAssignmentIDs(ids ...uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the DeviceAssignment entity.
func (_u *InventoryItemUpdateOne) AddAssignments(v ...*DeviceAssignment) *InventoryItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearBranch clears the "branch" edge to the Branch entity.
func (_u *InventoryItemUpdateOne) ClearBranch() *InventoryItemUpdateOne {
	_u.mutation.ClearBranch()
	return _u
}

// ClearAssignments clears all "assignments" edges to the DeviceAssignment entity.
func (_u *InventoryItemUpdateOne) ClearAssignments() *InventoryItemUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to DeviceAssignment entities by IDs.
func (_u *InventoryItemUpdateOne) RemoveAssignmentIDs(ids ...uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to DeviceAssignment entities.
func (_u *InventoryItemUpdateOne) RemoveAssignments(v ...*DeviceAssignment) *InventoryItemUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Brand(); ok {
		if err := inventoryitem.BrandValidator(v); err != nil {
			return &ValidationError{Name: "brand", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.brand": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Model(); ok {
		if err := inventoryitem.ModelValidator(v); err != nil {
			return &ValidationError{Name: "model", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.model": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := inventoryitem.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := inventoryitem.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Barcode(); ok {
		if err := inventoryitem.BarcodeValidator(v); err != nil {
			return &ValidationError{Name: "barcode", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.barcode": %w`, err)}
		}
	}
	if _u.mutation.BranchCleared() && len(_u.mutation.BranchIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InventoryItem.branch"`)
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(inventoryitem.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(inventoryitem.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Brand(); ok {
		_spec.SetField(inventoryitem.FieldBrand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(inventoryitem.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(inventoryitem.FieldCategory, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(inventoryitem.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(inventoryitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(inventoryitem.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Barcode(); ok {
		_spec.SetField(inventoryitem.FieldBarcode, field.TypeString, value)
	}
	if _u.mutation.BarcodeCleared() {
		_spec.ClearField(inventoryitem.FieldBarcode, field.TypeString)
	}
	if value, ok := _u.mutation.AvailableQuantity(); ok {
		_spec.SetField(inventoryitem.FieldAvailableQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAvailableQuantity(); ok {
		_spec.AddField(inventoryitem.FieldAvailableQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvailableSerials(); ok {
		_spec.SetField(inventoryitem.FieldAvailableSerials, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAvailableSerials(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, inventoryitem.FieldAvailableSerials, value)
		})
	}
	if _u.mutation.AvailableSerialsCleared() {
		_spec.ClearField(inventoryitem.FieldAvailableSerials, field.TypeJSON)
	}
	if _u.mutation.BranchCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BranchIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
