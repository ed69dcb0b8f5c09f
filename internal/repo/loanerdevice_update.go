// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// LoanerDeviceUpdate is the builder for updating LoanerDevice entities.
type LoanerDeviceUpdate struct {
	config
	hooks    []Hook
	mutation *LoanerDeviceMutation
}

// Where appends a list predicates to the LoanerDeviceUpdate builder.
func (_u *LoanerDeviceUpdate) Where(ps ...predicate.LoanerDevice) *LoanerDeviceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoanerDeviceUpdate) SetUpdatedAt(v time.Time) *LoanerDeviceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LoanerDeviceUpdate) SetPatientID(v uuid.UUID) *LoanerDeviceUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillablePatientID(v *uuid.UUID) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *LoanerDeviceUpdate) SetInventoryItemID(v uuid.UUID) *LoanerDeviceUpdate {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableInventoryItemID(v *uuid.UUID) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *LoanerDeviceUpdate) SetSerialNumber(v string) *LoanerDeviceUpdate {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableSerialNumber(v *string) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *LoanerDeviceUpdate) ClearSerialNumber() *LoanerDeviceUpdate {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetEar sets the "ear" field.
func (_u *LoanerDeviceUpdate) SetEar(v loanerdevice.Ear) *LoanerDeviceUpdate {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableEar(v *loanerdevice.Ear) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LoanerDeviceUpdate) SetStatus(v loanerdevice.Status) *LoanerDeviceUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableStatus(v *loanerdevice.Status) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *LoanerDeviceUpdate) SetIssuedAt(v time.Time) *LoanerDeviceUpdate {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableIssuedAt(v *time.Time) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetReturnedAt sets the "returned_at" field.
func (_u *LoanerDeviceUpdate) SetReturnedAt(v time.Time) *LoanerDeviceUpdate {
	_u.mutation.SetReturnedAt(v)
	return _u
}

// SetNillableReturnedAt sets the "returned_at" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableReturnedAt(v *time.Time) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetReturnedAt(*v)
	}
	return _u
}

// ClearReturnedAt clears the value of the "returned_at" field.
func (_u *LoanerDeviceUpdate) ClearReturnedAt() *LoanerDeviceUpdate {
	_u.mutation.ClearReturnedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LoanerDeviceUpdate) SetNotes(v string) *LoanerDeviceUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LoanerDeviceUpdate) SetNillableNotes(v *string) *LoanerDeviceUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LoanerDeviceUpdate) ClearNotes() *LoanerDeviceUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LoanerDeviceUpdate) SetPatient(v *Patient) *LoanerDeviceUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LoanerDeviceMutation object of the builder.
func (_u *LoanerDeviceUpdate) Mutation() *LoanerDeviceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LoanerDeviceUpdate) ClearPatient() *LoanerDeviceUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LoanerDeviceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanerDeviceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LoanerDeviceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanerDeviceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoanerDeviceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loanerdevice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanerDeviceUpdate) check() error {
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := loanerdevice.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := loanerdevice.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := loanerdevice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LoanerDevice.patient"`)
	}
	return nil
}

func (_u *LoanerDeviceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loanerdevice.Table, loanerdevice.Columns, sqlgraph.NewFieldSpec(loanerdevice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(loanerdevice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InventoryItemID(); ok {
		_spec.SetField(loanerdevice.FieldInventoryItemID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(loanerdevice.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(loanerdevice.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(loanerdevice.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(loanerdevice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(loanerdevice.FieldIssuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReturnedAt(); ok {
		_spec.SetField(loanerdevice.FieldReturnedAt, field.TypeTime, value)
	}
	if _u.mutation.ReturnedAtCleared() {
		_spec.ClearField(loanerdevice.FieldReturnedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(loanerdevice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(loanerdevice.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loanerdevice.PatientTable,
			Columns: []string{loanerdevice.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loanerdevice.PatientTable,
			Columns: []string{loanerdevice.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loanerdevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LoanerDeviceUpdateOne is the builder for updating a single LoanerDevice entity.
type LoanerDeviceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LoanerDeviceMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LoanerDeviceUpdateOne) SetUpdatedAt(v time.Time) *LoanerDeviceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *LoanerDeviceUpdateOne) SetPatientID(v uuid.UUID) *LoanerDeviceUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillablePatientID(v *uuid.UUID) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *LoanerDeviceUpdateOne) SetInventoryItemID(v uuid.UUID) *LoanerDeviceUpdateOne {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableInventoryItemID(v *uuid.UUID) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *LoanerDeviceUpdateOne) SetSerialNumber(v string) *LoanerDeviceUpdateOne {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableSerialNumber(v *string) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *LoanerDeviceUpdateOne) ClearSerialNumber() *LoanerDeviceUpdateOne {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetEar sets the "ear" field.
func (_u *LoanerDeviceUpdateOne) SetEar(v loanerdevice.Ear) *LoanerDeviceUpdateOne {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableEar(v *loanerdevice.Ear) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *LoanerDeviceUpdateOne) SetStatus(v loanerdevice.Status) *LoanerDeviceUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableStatus(v *loanerdevice.Status) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIssuedAt sets the "issued_at" field.
func (_u *LoanerDeviceUpdateOne) SetIssuedAt(v time.Time) *LoanerDeviceUpdateOne {
	_u.mutation.SetIssuedAt(v)
	return _u
}

// SetNillableIssuedAt sets the "issued_at" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableIssuedAt(v *time.Time) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetIssuedAt(*v)
	}
	return _u
}

// SetReturnedAt sets the "returned_at" field.
func (_u *LoanerDeviceUpdateOne) SetReturnedAt(v time.Time) *LoanerDeviceUpdateOne {
	_u.mutation.SetReturnedAt(v)
	return _u
}

// SetNillableReturnedAt sets the "returned_at" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableReturnedAt(v *time.Time) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetReturnedAt(*v)
	}
	return _u
}

// ClearReturnedAt clears the value of the "returned_at" field.
func (_u *LoanerDeviceUpdateOne) ClearReturnedAt() *LoanerDeviceUpdateOne {
	_u.mutation.ClearReturnedAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *LoanerDeviceUpdateOne) SetNotes(v string) *LoanerDeviceUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *LoanerDeviceUpdateOne) SetNillableNotes(v *string) *LoanerDeviceUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *LoanerDeviceUpdateOne) ClearNotes() *LoanerDeviceUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *LoanerDeviceUpdateOne) SetPatient(v *Patient) *LoanerDeviceUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the LoanerDeviceMutation object of the builder.
func (_u *LoanerDeviceUpdateOne) Mutation() *LoanerDeviceMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *LoanerDeviceUpdateOne) ClearPatient() *LoanerDeviceUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the LoanerDeviceUpdate builder.
func (_u *LoanerDeviceUpdateOne) Where(ps ...predicate.LoanerDevice) *LoanerDeviceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LoanerDeviceUpdateOne) Select(field string, fields ...string) *LoanerDeviceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LoanerDevice entity.
func (_u *LoanerDeviceUpdateOne) Save(ctx context.Context) (*LoanerDevice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LoanerDeviceUpdateOne) SaveX(ctx context.Context) *LoanerDevice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LoanerDeviceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LoanerDeviceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LoanerDeviceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := loanerdevice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LoanerDeviceUpdateOne) check() error {
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := loanerdevice.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := loanerdevice.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := loanerdevice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "LoanerDevice.patient"`)
	}
	return nil
}

func (_u *LoanerDeviceUpdateOne) sqlSave(ctx context.Context) (_node *LoanerDevice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(loanerdevice.Table, loanerdevice.Columns, sqlgraph.NewFieldSpec(loanerdevice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "LoanerDevice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, loanerdevice.FieldID)
		for _, f := range fields {
			if !loanerdevice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != loanerdevice.FieldID {
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
		_spec.SetField(loanerdevice.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.InventoryItemID(); ok {
		_spec.SetField(loanerdevice.FieldInventoryItemID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(loanerdevice.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(loanerdevice.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(loanerdevice.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(loanerdevice.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IssuedAt(); ok {
		_spec.SetField(loanerdevice.FieldIssuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ReturnedAt(); ok {
		_spec.SetField(loanerdevice.FieldReturnedAt, field.TypeTime, value)
	}
	if _u.mutation.ReturnedAtCleared() {
		_spec.ClearField(loanerdevice.FieldReturnedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(loanerdevice.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(loanerdevice.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loanerdevice.PatientTable,
			Columns: []string{loanerdevice.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   loanerdevice.PatientTable,
			Columns: []string{loanerdevice.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LoanerDevice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{loanerdevice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
