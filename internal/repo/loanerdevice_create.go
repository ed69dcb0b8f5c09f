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
	"github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
)

// LoanerDeviceCreate is the builder for creating a LoanerDevice entity.
type LoanerDeviceCreate struct {
	config
	mutation *LoanerDeviceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *LoanerDeviceCreate) SetCreatedAt(v time.Time) *LoanerDeviceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableCreatedAt(v *time.Time) *LoanerDeviceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LoanerDeviceCreate) SetUpdatedAt(v time.Time) *LoanerDeviceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableUpdatedAt(v *time.Time) *LoanerDeviceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *LoanerDeviceCreate) SetPatientID(v uuid.UUID) *LoanerDeviceCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_c *LoanerDeviceCreate) SetInventoryItemID(v uuid.UUID) *LoanerDeviceCreate {
	_c.mutation.SetInventoryItemID(v)
	return _c
}

// SetSerialNumber sets the "serial_number" field.
func (_c *LoanerDeviceCreate) SetSerialNumber(v string) *LoanerDeviceCreate {
	_c.mutation.SetSerialNumber(v)
	return _c
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableSerialNumber(v *string) *LoanerDeviceCreate {
	if v != nil {
		_c.SetSerialNumber(*v)
	}
	return _c
}

// SetEar sets the "ear" field.
func (_c *LoanerDeviceCreate) SetEar(v loanerdevice.Ear) *LoanerDeviceCreate {
	_c.mutation.SetEar(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *LoanerDeviceCreate) SetStatus(v loanerdevice.Status) *LoanerDeviceCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableStatus(v *loanerdevice.Status) *LoanerDeviceCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetIssuedAt sets the "issued_at" field.
func (_c *LoanerDeviceCreate) SetIssuedAt(v time.Time) *LoanerDeviceCreate {
	_c.mutation.SetIssuedAt(v)
	return _c
}

// SetReturnedAt sets the "returned_at" field.
func (_c *LoanerDeviceCreate) SetReturnedAt(v time.Time) *LoanerDeviceCreate {
	_c.mutation.SetReturnedAt(v)
	return _c
}

// SetNillableReturnedAt sets the "returned_at" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableReturnedAt(v *time.Time) *LoanerDeviceCreate {
	if v != nil {
		_c.SetReturnedAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *LoanerDeviceCreate) SetNotes(v string) *LoanerDeviceCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableNotes(v *string) *LoanerDeviceCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *LoanerDeviceCreate) SetID(v uuid.UUID) *LoanerDeviceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *LoanerDeviceCreate) SetNillableID(v *uuid.UUID) *LoanerDeviceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *LoanerDeviceCreate) SetPatient(v *Patient) *LoanerDeviceCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the LoanerDeviceMutation object of the builder.
func (_c *LoanerDeviceCreate) Mutation() *LoanerDeviceMutation {
	return _c.mutation
}

// Save creates the LoanerDevice in the database.
func (_c *LoanerDeviceCreate) Save(ctx context.Context) (*LoanerDevice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LoanerDeviceCreate) SaveX(ctx context.Context) *LoanerDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanerDeviceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanerDeviceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LoanerDeviceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := loanerdevice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := loanerdevice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := loanerdevice.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := loanerdevice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LoanerDeviceCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "LoanerDevice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "LoanerDevice.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "LoanerDevice.patient_id"`)}
	}
	if _, ok := _c.mutation.InventoryItemID(); !ok {
		return &ValidationError{Name: "inventory_item_id", err: errors.New(`repo: missing required field "LoanerDevice.inventory_item_id"`)}
	}
	if v, ok := _c.mutation.SerialNumber(); ok {
		if err := loanerdevice.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.serial_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ear(); !ok {
		return &ValidationError{Name: "ear", err: errors.New(`repo: missing required field "LoanerDevice.ear"`)}
	}
	if v, ok := _c.mutation.Ear(); ok {
		if err := loanerdevice.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.ear": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "LoanerDevice.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := loanerdevice.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "LoanerDevice.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`repo: missing required field "LoanerDevice.issued_at"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "LoanerDevice.patient"`)}
	}
	return nil
}

func (_c *LoanerDeviceCreate) sqlSave(ctx context.Context) (*LoanerDevice, error) {
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

func (_c *LoanerDeviceCreate) createSpec() (*LoanerDevice, *sqlgraph.CreateSpec) {
	var (
		_node = &LoanerDevice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(loanerdevice.Table, sqlgraph.NewFieldSpec(loanerdevice.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(loanerdevice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(loanerdevice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.InventoryItemID(); ok {
		_spec.SetField(loanerdevice.FieldInventoryItemID, field.TypeUUID, value)
		_node.InventoryItemID = value
	}
	if value, ok := _c.mutation.SerialNumber(); ok {
		_spec.SetField(loanerdevice.FieldSerialNumber, field.TypeString, value)
		_node.SerialNumber = &value
	}
	if value, ok := _c.mutation.Ear(); ok {
		_spec.SetField(loanerdevice.FieldEar, field.TypeEnum, value)
		_node.Ear = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(loanerdevice.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.IssuedAt(); ok {
		_spec.SetField(loanerdevice.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	if value, ok := _c.mutation.ReturnedAt(); ok {
		_spec.SetField(loanerdevice.FieldReturnedAt, field.TypeTime, value)
		_node.ReturnedAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(loanerdevice.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LoanerDevice.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoanerDeviceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LoanerDeviceCreate) OnConflict(opts ...sql.ConflictOption) *LoanerDeviceUpsertOne {
	_c.conflict = opts
	return &LoanerDeviceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoanerDeviceCreate) OnConflictColumns(columns ...string) *LoanerDeviceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoanerDeviceUpsertOne{
		create: _c,
	}
}

type (
	// LoanerDeviceUpsertOne is the builder for "upsert"-ing
	//  one LoanerDevice node.
	LoanerDeviceUpsertOne struct {
		create *LoanerDeviceCreate
	}

	// LoanerDeviceUpsert is the "OnConflict" setter.
	LoanerDeviceUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *LoanerDeviceUpsert) SetUpdatedAt(v time.Time) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateUpdatedAt() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldUpdatedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *LoanerDeviceUpsert) SetPatientID(v uuid.UUID) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdatePatientID() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldPatientID)
	return u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *LoanerDeviceUpsert) SetInventoryItemID(v uuid.UUID) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldInventoryItemID, v)
	return u
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateInventoryItemID() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldInventoryItemID)
	return u
}

// SetSerialNumber sets the "serial_number" field.
func (u *LoanerDeviceUpsert) SetSerialNumber(v string) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldSerialNumber, v)
	return u
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateSerialNumber() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldSerialNumber)
	return u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *LoanerDeviceUpsert) ClearSerialNumber() *LoanerDeviceUpsert {
	u.SetNull(loanerdevice.FieldSerialNumber)
	return u
}

// SetEar sets the "ear" field.
func (u *LoanerDeviceUpsert) SetEar(v loanerdevice.Ear) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldEar, v)
	return u
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateEar() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldEar)
	return u
}

// SetStatus sets the "status" field.
func (u *LoanerDeviceUpsert) SetStatus(v loanerdevice.Status) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateStatus() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldStatus)
	return u
}

// SetIssuedAt sets the "issued_at" field.
func (u *LoanerDeviceUpsert) SetIssuedAt(v time.Time) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldIssuedAt, v)
	return u
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateIssuedAt() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldIssuedAt)
	return u
}

// SetReturnedAt sets the "returned_at" field.
func (u *LoanerDeviceUpsert) SetReturnedAt(v time.Time) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldReturnedAt, v)
	return u
}

// UpdateReturnedAt sets the "returned_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateReturnedAt() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldReturnedAt)
	return u
}

// ClearReturnedAt clears the value of the "returned_at" field.
func (u *LoanerDeviceUpsert) ClearReturnedAt() *LoanerDeviceUpsert {
	u.SetNull(loanerdevice.FieldReturnedAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *LoanerDeviceUpsert) SetNotes(v string) *LoanerDeviceUpsert {
	u.Set(loanerdevice.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LoanerDeviceUpsert) UpdateNotes() *LoanerDeviceUpsert {
	u.SetExcluded(loanerdevice.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *LoanerDeviceUpsert) ClearNotes() *LoanerDeviceUpsert {
	u.SetNull(loanerdevice.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(loanerdevice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoanerDeviceUpsertOne) UpdateNewValues() *LoanerDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(loanerdevice.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(loanerdevice.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LoanerDeviceUpsertOne) Ignore() *LoanerDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoanerDeviceUpsertOne) DoNothing() *LoanerDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoanerDeviceCreate.OnConflict
// documentation for more info.
func (u *LoanerDeviceUpsertOne) Update(set func(*LoanerDeviceUpsert)) *LoanerDeviceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoanerDeviceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LoanerDeviceUpsertOne) SetUpdatedAt(v time.Time) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateUpdatedAt() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LoanerDeviceUpsertOne) SetPatientID(v uuid.UUID) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdatePatientID() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdatePatientID()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *LoanerDeviceUpsertOne) SetInventoryItemID(v uuid.UUID) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateInventoryItemID() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateInventoryItemID()
	})
}

// SetSerialNumber sets the "serial_number" field.
func (u *LoanerDeviceUpsertOne) SetSerialNumber(v string) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetSerialNumber(v)
	})
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateSerialNumber() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateSerialNumber()
	})
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *LoanerDeviceUpsertOne) ClearSerialNumber() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearSerialNumber()
	})
}

// SetEar sets the "ear" field.
func (u *LoanerDeviceUpsertOne) SetEar(v loanerdevice.Ear) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateEar() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateEar()
	})
}

// SetStatus sets the "status" field.
func (u *LoanerDeviceUpsertOne) SetStatus(v loanerdevice.Status) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateStatus() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateStatus()
	})
}

// SetIssuedAt sets the "issued_at" field.
func (u *LoanerDeviceUpsertOne) SetIssuedAt(v time.Time) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateIssuedAt() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateIssuedAt()
	})
}

// SetReturnedAt sets the "returned_at" field.
func (u *LoanerDeviceUpsertOne) SetReturnedAt(v time.Time) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetReturnedAt(v)
	})
}

// UpdateReturnedAt sets the "returned_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateReturnedAt() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateReturnedAt()
	})
}

// ClearReturnedAt clears the value of the "returned_at" field.
func (u *LoanerDeviceUpsertOne) ClearReturnedAt() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearReturnedAt()
	})
}

// SetNotes sets the "notes" field.
func (u *LoanerDeviceUpsertOne) SetNotes(v string) *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LoanerDeviceUpsertOne) UpdateNotes() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *LoanerDeviceUpsertOne) ClearNotes() *LoanerDeviceUpsertOne {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *LoanerDeviceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LoanerDeviceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoanerDeviceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LoanerDeviceUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: LoanerDeviceUpsertOne.ID is not supported by MySQL driver. Use LoanerDeviceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LoanerDeviceUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LoanerDeviceCreateBulk is the builder for creating many LoanerDevice entities in bulk.
type LoanerDeviceCreateBulk struct {
	config
	err      error
	builders []*LoanerDeviceCreate
	conflict []sql.ConflictOption
}

// Save creates the LoanerDevice entities in the database.
func (_c *LoanerDeviceCreateBulk) Save(ctx context.Context) ([]*LoanerDevice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LoanerDevice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LoanerDeviceMutation)
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
func (_c *LoanerDeviceCreateBulk) SaveX(ctx context.Context) []*LoanerDevice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LoanerDeviceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LoanerDeviceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LoanerDevice.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LoanerDeviceUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *LoanerDeviceCreateBulk) OnConflict(opts ...sql.ConflictOption) *LoanerDeviceUpsertBulk {
	_c.conflict = opts
	return &LoanerDeviceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LoanerDeviceCreateBulk) OnConflictColumns(columns ...string) *LoanerDeviceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LoanerDeviceUpsertBulk{
		create: _c,
	}
}

// LoanerDeviceUpsertBulk is the builder for "upsert"-ing
// a bulk of LoanerDevice nodes.
type LoanerDeviceUpsertBulk struct {
	create *LoanerDeviceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(loanerdevice.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *LoanerDeviceUpsertBulk) UpdateNewValues() *LoanerDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(loanerdevice.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(loanerdevice.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LoanerDevice.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LoanerDeviceUpsertBulk) Ignore() *LoanerDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LoanerDeviceUpsertBulk) DoNothing() *LoanerDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LoanerDeviceCreateBulk.OnConflict
// documentation for more info.
func (u *LoanerDeviceUpsertBulk) Update(set func(*LoanerDeviceUpsert)) *LoanerDeviceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LoanerDeviceUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LoanerDeviceUpsertBulk) SetUpdatedAt(v time.Time) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateUpdatedAt() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *LoanerDeviceUpsertBulk) SetPatientID(v uuid.UUID) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdatePatientID() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdatePatientID()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *LoanerDeviceUpsertBulk) SetInventoryItemID(v uuid.UUID) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateInventoryItemID() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateInventoryItemID()
	})
}

// SetSerialNumber sets the "serial_number" field.
func (u *LoanerDeviceUpsertBulk) SetSerialNumber(v string) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetSerialNumber(v)
	})
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateSerialNumber() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateSerialNumber()
	})
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *LoanerDeviceUpsertBulk) ClearSerialNumber() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearSerialNumber()
	})
}

// SetEar sets the "ear" field.
func (u *LoanerDeviceUpsertBulk) SetEar(v loanerdevice.Ear) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateEar() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateEar()
	})
}

// SetStatus sets the "status" field.
func (u *LoanerDeviceUpsertBulk) SetStatus(v loanerdevice.Status) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateStatus() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateStatus()
	})
}

// SetIssuedAt sets the "issued_at" field.
func (u *LoanerDeviceUpsertBulk) SetIssuedAt(v time.Time) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateIssuedAt() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateIssuedAt()
	})
}

// SetReturnedAt sets the "returned_at" field.
func (u *LoanerDeviceUpsertBulk) SetReturnedAt(v time.Time) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetReturnedAt(v)
	})
}

// UpdateReturnedAt sets the "returned_at" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateReturnedAt() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateReturnedAt()
	})
}

// ClearReturnedAt clears the value of the "returned_at" field.
func (u *LoanerDeviceUpsertBulk) ClearReturnedAt() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearReturnedAt()
	})
}

// SetNotes sets the "notes" field.
func (u *LoanerDeviceUpsertBulk) SetNotes(v string) *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *LoanerDeviceUpsertBulk) UpdateNotes() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *LoanerDeviceUpsertBulk) ClearNotes() *LoanerDeviceUpsertBulk {
	return u.Update(func(s *LoanerDeviceUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *LoanerDeviceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the LoanerDeviceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for LoanerDeviceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LoanerDeviceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
