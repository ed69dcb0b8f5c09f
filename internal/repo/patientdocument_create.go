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
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientdocument"
)

// PatientDocumentCreate is the builder for creating a PatientDocument entity.
type PatientDocumentCreate struct {
	config
	mutation *PatientDocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientDocumentCreate) SetCreatedAt(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableCreatedAt(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientDocumentCreate) SetUpdatedAt(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableUpdatedAt(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientDocumentCreate) SetDeletedAt(v time.Time) *PatientDocumentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableDeletedAt(v *time.Time) *PatientDocumentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientDocumentCreate) SetPatientID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetStorageKey sets the "storage_key" field.
func (_c *PatientDocumentCreate) SetStorageKey(v string) *PatientDocumentCreate {
	_c.mutation.SetStorageKey(v)
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *PatientDocumentCreate) SetFileName(v string) *PatientDocumentCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *PatientDocumentCreate) SetSizeBytes(v int64) *PatientDocumentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *PatientDocumentCreate) SetMimeType(v string) *PatientDocumentCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PatientDocumentCreate) SetKind(v patientdocument.Kind) *PatientDocumentCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableKind(v *patientdocument.Kind) *PatientDocumentCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetUploadedBy sets the "uploaded_by" field.
func (_c *PatientDocumentCreate) SetUploadedBy(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetUploadedBy(v)
	return _c
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableUploadedBy(v *uuid.UUID) *PatientDocumentCreate {
	if v != nil {
		_c.SetUploadedBy(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *PatientDocumentCreate) SetDescription(v string) *PatientDocumentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableDescription(v *string) *PatientDocumentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientDocumentCreate) SetID(v uuid.UUID) *PatientDocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientDocumentCreate) SetNillableID(v *uuid.UUID) *PatientDocumentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientDocumentCreate) SetPatient(v *Patient) *PatientDocumentCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_c *PatientDocumentCreate) Mutation() *PatientDocumentMutation {
	return _c.mutation
}

// Save creates the PatientDocument in the database.
func (_c *PatientDocumentCreate) Save(ctx context.Context) (*PatientDocument, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientDocumentCreate) SaveX(ctx context.Context) *PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientDocumentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientdocument.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientdocument.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Kind(); !ok {
		v := patientdocument.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientdocument.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientDocumentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientDocument.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientDocument.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientDocument.patient_id"`)}
	}
	if _, ok := _c.mutation.StorageKey(); !ok {
		return &ValidationError{Name: "storage_key", err: errors.New(`repo: missing required field "PatientDocument.storage_key"`)}
	}
	if v, ok := _c.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`repo: missing required field "PatientDocument.file_name"`)}
	}
	if v, ok := _c.mutation.FileName(); ok {
		if err := patientdocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`repo: missing required field "PatientDocument.size_bytes"`)}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`repo: missing required field "PatientDocument.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := patientdocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`repo: missing required field "PatientDocument.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := patientdocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.kind": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientDocument.patient"`)}
	}
	return nil
}

func (_c *PatientDocumentCreate) sqlSave(ctx context.Context) (*PatientDocument, error) {
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

func (_c *PatientDocumentCreate) createSpec() (*PatientDocument, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientDocument{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientdocument.Table, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientdocument.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientdocument.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patientdocument.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
		_node.StorageKey = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(patientdocument.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(patientdocument.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(patientdocument.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.UploadedBy(); ok {
		_spec.SetField(patientdocument.FieldUploadedBy, field.TypeUUID, value)
		_node.UploadedBy = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientdocument.PatientTable,
			Columns: []string{patientdocument.PatientColumn},
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
//	client.PatientDocument.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientDocumentCreate) OnConflict(opts ...sql.ConflictOption) *PatientDocumentUpsertOne {
	_c.conflict = opts
	return &PatientDocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientDocumentCreate) OnConflictColumns(columns ...string) *PatientDocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientDocumentUpsertOne{
		create: _c,
	}
}

type (
	// PatientDocumentUpsertOne is the builder for "upsert"-ing
	//  one PatientDocument node.
	PatientDocumentUpsertOne struct {
		create *PatientDocumentCreate
	}

	// PatientDocumentUpsert is the "OnConflict" setter.
	PatientDocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientDocumentUpsert) SetUpdatedAt(v time.Time) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateUpdatedAt() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientDocumentUpsert) SetDeletedAt(v time.Time) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateDeletedAt() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientDocumentUpsert) ClearDeletedAt() *PatientDocumentUpsert {
	u.SetNull(patientdocument.FieldDeletedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsert) SetPatientID(v uuid.UUID) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdatePatientID() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldPatientID)
	return u
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsert) SetStorageKey(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldStorageKey, v)
	return u
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateStorageKey() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldStorageKey)
	return u
}

// SetFileName sets the "file_name" field.
func (u *PatientDocumentUpsert) SetFileName(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldFileName, v)
	return u
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateFileName() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldFileName)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *PatientDocumentUpsert) SetSizeBytes(v int64) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateSizeBytes() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *PatientDocumentUpsert) AddSizeBytes(v int64) *PatientDocumentUpsert {
	u.Add(patientdocument.FieldSizeBytes, v)
	return u
}

// SetMimeType sets the "mime_type" field.
func (u *PatientDocumentUpsert) SetMimeType(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldMimeType, v)
	return u
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateMimeType() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldMimeType)
	return u
}

// SetKind sets the "kind" field.
func (u *PatientDocumentUpsert) SetKind(v patientdocument.Kind) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateKind() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldKind)
	return u
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *PatientDocumentUpsert) SetUploadedBy(v uuid.UUID) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldUploadedBy, v)
	return u
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateUploadedBy() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldUploadedBy)
	return u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (u *PatientDocumentUpsert) ClearUploadedBy() *PatientDocumentUpsert {
	u.SetNull(patientdocument.FieldUploadedBy)
	return u
}

// SetDescription sets the "description" field.
func (u *PatientDocumentUpsert) SetDescription(v string) *PatientDocumentUpsert {
	u.Set(patientdocument.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PatientDocumentUpsert) UpdateDescription() *PatientDocumentUpsert {
	u.SetExcluded(patientdocument.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *PatientDocumentUpsert) ClearDescription() *PatientDocumentUpsert {
	u.SetNull(patientdocument.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientDocumentUpsertOne) UpdateNewValues() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientdocument.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientdocument.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientDocumentUpsertOne) Ignore() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientDocumentUpsertOne) DoNothing() *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientDocumentCreate.OnConflict
// documentation for more info.
func (u *PatientDocumentUpsertOne) Update(set func(*PatientDocumentUpsert)) *PatientDocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientDocumentUpsertOne) SetUpdatedAt(v time.Time) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateUpdatedAt() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientDocumentUpsertOne) SetDeletedAt(v time.Time) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateDeletedAt() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientDocumentUpsertOne) ClearDeletedAt() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsertOne) SetPatientID(v uuid.UUID) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdatePatientID() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdatePatientID()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsertOne) SetStorageKey(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateStorageKey() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *PatientDocumentUpsertOne) SetFileName(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateFileName() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFileName()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *PatientDocumentUpsertOne) SetSizeBytes(v int64) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *PatientDocumentUpsertOne) AddSizeBytes(v int64) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateSizeBytes() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *PatientDocumentUpsertOne) SetMimeType(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateMimeType() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateMimeType()
	})
}

// SetKind sets the "kind" field.
func (u *PatientDocumentUpsertOne) SetKind(v patientdocument.Kind) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateKind() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateKind()
	})
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *PatientDocumentUpsertOne) SetUploadedBy(v uuid.UUID) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUploadedBy(v)
	})
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateUploadedBy() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUploadedBy()
	})
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (u *PatientDocumentUpsertOne) ClearUploadedBy() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearUploadedBy()
	})
}

// SetDescription sets the "description" field.
func (u *PatientDocumentUpsertOne) SetDescription(v string) *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PatientDocumentUpsertOne) UpdateDescription() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PatientDocumentUpsertOne) ClearDescription() *PatientDocumentUpsertOne {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *PatientDocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientDocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientDocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientDocumentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientDocumentUpsertOne.ID is not supported by MySQL driver. Use PatientDocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientDocumentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientDocumentCreateBulk is the builder for creating many PatientDocument entities in bulk.
type PatientDocumentCreateBulk struct {
	config
	err      error
	builders []*PatientDocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientDocument entities in the database.
func (_c *PatientDocumentCreateBulk) Save(ctx context.Context) ([]*PatientDocument, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientDocument, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientDocumentMutation)
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
func (_c *PatientDocumentCreateBulk) SaveX(ctx context.Context) []*PatientDocument {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientDocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientDocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientDocument.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientDocumentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientDocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientDocumentUpsertBulk {
	_c.conflict = opts
	return &PatientDocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientDocumentCreateBulk) OnConflictColumns(columns ...string) *PatientDocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientDocumentUpsertBulk{
		create: _c,
	}
}

// PatientDocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientDocument nodes.
type PatientDocumentUpsertBulk struct {
	create *PatientDocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientdocument.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientDocumentUpsertBulk) UpdateNewValues() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientdocument.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientdocument.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientDocument.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientDocumentUpsertBulk) Ignore() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientDocumentUpsertBulk) DoNothing() *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientDocumentCreateBulk.OnConflict
// documentation for more info.
func (u *PatientDocumentUpsertBulk) Update(set func(*PatientDocumentUpsert)) *PatientDocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientDocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientDocumentUpsertBulk) SetUpdatedAt(v time.Time) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateUpdatedAt() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientDocumentUpsertBulk) SetDeletedAt(v time.Time) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateDeletedAt() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientDocumentUpsertBulk) ClearDeletedAt() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientDocumentUpsertBulk) SetPatientID(v uuid.UUID) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdatePatientID() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdatePatientID()
	})
}

// SetStorageKey sets the "storage_key" field.
func (u *PatientDocumentUpsertBulk) SetStorageKey(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetStorageKey(v)
	})
}

// UpdateStorageKey sets the "storage_key" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateStorageKey() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateStorageKey()
	})
}

// SetFileName sets the "file_name" field.
func (u *PatientDocumentUpsertBulk) SetFileName(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetFileName(v)
	})
}

// UpdateFileName sets the "file_name" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateFileName() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateFileName()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *PatientDocumentUpsertBulk) SetSizeBytes(v int64) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *PatientDocumentUpsertBulk) AddSizeBytes(v int64) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateSizeBytes() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetMimeType sets the "mime_type" field.
func (u *PatientDocumentUpsertBulk) SetMimeType(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetMimeType(v)
	})
}

// UpdateMimeType sets the "mime_type" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateMimeType() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateMimeType()
	})
}

// SetKind sets the "kind" field.
func (u *PatientDocumentUpsertBulk) SetKind(v patientdocument.Kind) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateKind() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateKind()
	})
}

// SetUploadedBy sets the "uploaded_by" field.
func (u *PatientDocumentUpsertBulk) SetUploadedBy(v uuid.UUID) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetUploadedBy(v)
	})
}

// UpdateUploadedBy sets the "uploaded_by" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateUploadedBy() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateUploadedBy()
	})
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (u *PatientDocumentUpsertBulk) ClearUploadedBy() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearUploadedBy()
	})
}

// SetDescription sets the "description" field.
func (u *PatientDocumentUpsertBulk) SetDescription(v string) *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PatientDocumentUpsertBulk) UpdateDescription() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *PatientDocumentUpsertBulk) ClearDescription() *PatientDocumentUpsertBulk {
	return u.Update(func(s *PatientDocumentUpsert) {
		s.ClearDescription()
	})
}

// Exec executes the query.
func (u *PatientDocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientDocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientDocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientDocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
