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
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientdocument"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// PatientDocumentUpdate is the builder for updating PatientDocument entities.
type PatientDocumentUpdate struct {
	config
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdate) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientDocumentUpdate) SetUpdatedAt(v time.Time) *PatientDocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientDocumentUpdate) SetDeletedAt(v time.Time) *PatientDocumentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableDeletedAt(v *time.Time) *PatientDocumentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientDocumentUpdate) ClearDeletedAt() *PatientDocumentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdate) SetPatientID(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *PatientDocumentUpdate) SetStorageKey(v string) *PatientDocumentUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableStorageKey(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PatientDocumentUpdate) SetFileName(v string) *PatientDocumentUpdate {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableFileName(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PatientDocumentUpdate) SetSizeBytes(v int64) *PatientDocumentUpdate {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableSizeBytes(v *int64) *PatientDocumentUpdate {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PatientDocumentUpdate) AddSizeBytes(v int64) *PatientDocumentUpdate {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PatientDocumentUpdate) SetMimeType(v string) *PatientDocumentUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableMimeType(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PatientDocumentUpdate) SetKind(v patientdocument.Kind) *PatientDocumentUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableKind(v *patientdocument.Kind) *PatientDocumentUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *PatientDocumentUpdate) SetUploadedBy(v uuid.UUID) *PatientDocumentUpdate {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableUploadedBy(v *uuid.UUID) *PatientDocumentUpdate {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *PatientDocumentUpdate) ClearUploadedBy() *PatientDocumentUpdate {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatientDocumentUpdate) SetDescription(v string) *PatientDocumentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatientDocumentUpdate) SetNillableDescription(v *string) *PatientDocumentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PatientDocumentUpdate) ClearDescription() *PatientDocumentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) SetPatient(v *Patient) *PatientDocumentUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdate) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdate) ClearPatient() *PatientDocumentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientDocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientDocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientDocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdate) check() error {
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := patientdocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := patientdocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := patientdocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.kind": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	return nil
}

func (_u *PatientDocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientdocument.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientdocument.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(patientdocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(patientdocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(patientdocument.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(patientdocument.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(patientdocument.FieldUploadedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(patientdocument.FieldDescription, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientDocumentUpdateOne is the builder for updating a single PatientDocument entity.
type PatientDocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientDocumentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientDocumentUpdateOne) SetUpdatedAt(v time.Time) *PatientDocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientDocumentUpdateOne) SetDeletedAt(v time.Time) *PatientDocumentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientDocumentUpdateOne) ClearDeletedAt() *PatientDocumentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientDocumentUpdateOne) SetPatientID(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *PatientDocumentUpdateOne) SetStorageKey(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableStorageKey(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// SetFileName sets the "file_name" field.
func (_u *PatientDocumentUpdateOne) SetFileName(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetFileName(v)
	return _u
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableFileName(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetFileName(*v)
	}
	return _u
}

// SetSizeBytes sets the "size_bytes" field.
func (_u *PatientDocumentUpdateOne) SetSizeBytes(v int64) *PatientDocumentUpdateOne {
	_u.mutation.ResetSizeBytes()
	_u.mutation.SetSizeBytes(v)
	return _u
}

// SetNillableSizeBytes sets the "size_bytes" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableSizeBytes(v *int64) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetSizeBytes(*v)
	}
	return _u
}

// AddSizeBytes adds value to the "size_bytes" field.
func (_u *PatientDocumentUpdateOne) AddSizeBytes(v int64) *PatientDocumentUpdateOne {
	_u.mutation.AddSizeBytes(v)
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *PatientDocumentUpdateOne) SetMimeType(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableMimeType(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PatientDocumentUpdateOne) SetKind(v patientdocument.Kind) *PatientDocumentUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableKind(v *patientdocument.Kind) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetUploadedBy sets the "uploaded_by" field.
func (_u *PatientDocumentUpdateOne) SetUploadedBy(v uuid.UUID) *PatientDocumentUpdateOne {
	_u.mutation.SetUploadedBy(v)
	return _u
}

// SetNillableUploadedBy sets the "uploaded_by" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableUploadedBy(v *uuid.UUID) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetUploadedBy(*v)
	}
	return _u
}

// ClearUploadedBy clears the value of the "uploaded_by" field.
func (_u *PatientDocumentUpdateOne) ClearUploadedBy() *PatientDocumentUpdateOne {
	_u.mutation.ClearUploadedBy()
	return _u
}

// SetDescription sets the "description" field.
func (_u *PatientDocumentUpdateOne) SetDescription(v string) *PatientDocumentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PatientDocumentUpdateOne) SetNillableDescription(v *string) *PatientDocumentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PatientDocumentUpdateOne) ClearDescription() *PatientDocumentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) SetPatient(v *Patient) *PatientDocumentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientDocumentMutation object of the builder.
func (_u *PatientDocumentUpdateOne) Mutation() *PatientDocumentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientDocumentUpdateOne) ClearPatient() *PatientDocumentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PatientDocumentUpdate builder.
func (_u *PatientDocumentUpdateOne) Where(ps ...predicate.PatientDocument) *PatientDocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientDocumentUpdateOne) Select(field string, fields ...string) *PatientDocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientDocument entity.
func (_u *PatientDocumentUpdateOne) Save(ctx context.Context) (*PatientDocument, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) SaveX(ctx context.Context) *PatientDocument {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientDocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientDocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientDocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientdocument.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientDocumentUpdateOne) check() error {
	if v, ok := _u.mutation.StorageKey(); ok {
		if err := patientdocument.StorageKeyValidator(v); err != nil {
			return &ValidationError{Name: "storage_key", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.storage_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileName(); ok {
		if err := patientdocument.FileNameValidator(v); err != nil {
			return &ValidationError{Name: "file_name", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.file_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := patientdocument.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := patientdocument.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`repo: validator failed for field "PatientDocument.kind": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientDocument.patient"`)
	}
	return nil
}

func (_u *PatientDocumentUpdateOne) sqlSave(ctx context.Context) (_node *PatientDocument, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientdocument.Table, patientdocument.Columns, sqlgraph.NewFieldSpec(patientdocument.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientDocument.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientdocument.FieldID)
		for _, f := range fields {
			if !patientdocument.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientdocument.FieldID {
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
		_spec.SetField(patientdocument.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientdocument.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientdocument.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(patientdocument.FieldStorageKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileName(); ok {
		_spec.SetField(patientdocument.FieldFileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.SizeBytes(); ok {
		_spec.SetField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSizeBytes(); ok {
		_spec.AddField(patientdocument.FieldSizeBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(patientdocument.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(patientdocument.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UploadedBy(); ok {
		_spec.SetField(patientdocument.FieldUploadedBy, field.TypeUUID, value)
	}
	if _u.mutation.UploadedByCleared() {
		_spec.ClearField(patientdocument.FieldUploadedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(patientdocument.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(patientdocument.FieldDescription, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PatientDocument{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientdocument.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
