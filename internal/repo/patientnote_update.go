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
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientnote"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// PatientNoteUpdate is the builder for updating PatientNote entities.
type PatientNoteUpdate struct {
	config
	hooks    []Hook
	mutation *PatientNoteMutation
}

// Where appends a list predicates to the PatientNoteUpdate builder.
func (_u *PatientNoteUpdate) Where(ps ...predicate.PatientNote) *PatientNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientNoteUpdate) SetUpdatedAt(v time.Time) *PatientNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientNoteUpdate) SetDeletedAt(v time.Time) *PatientNoteUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientNoteUpdate) SetNillableDeletedAt(v *time.Time) *PatientNoteUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientNoteUpdate) ClearDeletedAt() *PatientNoteUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientNoteUpdate) SetPatientID(v uuid.UUID) *PatientNoteUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientNoteUpdate) SetNillablePatientID(v *uuid.UUID) *PatientNoteUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PatientNoteUpdate) SetContent(v string) *PatientNoteUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PatientNoteUpdate) SetNillableContent(v *string) *PatientNoteUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *PatientNoteUpdate) SetAuthorID(v uuid.UUID) *PatientNoteUpdate {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *PatientNoteUpdate) SetNillableAuthorID(v *uuid.UUID) *PatientNoteUpdate {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *PatientNoteUpdate) ClearAuthorID() *PatientNoteUpdate {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetPinned sets the "pinned" field.
func (_u *PatientNoteUpdate) SetPinned(v bool) *PatientNoteUpdate {
	_u.mutation.SetPinned(v)
	return _u
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_u *PatientNoteUpdate) SetNillablePinned(v *bool) *PatientNoteUpdate {
	if v != nil {
		_u.SetPinned(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientNoteUpdate) SetPatient(v *Patient) *PatientNoteUpdate {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientNoteMutation object of the builder.
func (_u *PatientNoteUpdate) Mutation() *PatientNoteMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientNoteUpdate) ClearPatient() *PatientNoteUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientNoteUpdate) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientNote.patient"`)
	}
	return nil
}

func (_u *PatientNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientnote.Table, patientnote.Columns, sqlgraph.NewFieldSpec(patientnote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patientnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientnote.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientnote.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(patientnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(patientnote.FieldAuthorID, field.TypeUUID, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(patientnote.FieldAuthorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Pinned(); ok {
		_spec.SetField(patientnote.FieldPinned, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientnote.PatientTable,
			Columns: []string{patientnote.PatientColumn},
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
			Table:   patientnote.PatientTable,
			Columns: []string{patientnote.PatientColumn},
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
			err = &NotFoundError{patientnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientNoteUpdateOne is the builder for updating a single PatientNote entity.
type PatientNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientNoteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientNoteUpdateOne) SetUpdatedAt(v time.Time) *PatientNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientNoteUpdateOne) SetDeletedAt(v time.Time) *PatientNoteUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientNoteUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientNoteUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientNoteUpdateOne) ClearDeletedAt() *PatientNoteUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PatientNoteUpdateOne) SetPatientID(v uuid.UUID) *PatientNoteUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PatientNoteUpdateOne) SetNillablePatientID(v *uuid.UUID) *PatientNoteUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PatientNoteUpdateOne) SetContent(v string) *PatientNoteUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PatientNoteUpdateOne) SetNillableContent(v *string) *PatientNoteUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetAuthorID sets the "author_id" field.
func (_u *PatientNoteUpdateOne) SetAuthorID(v uuid.UUID) *PatientNoteUpdateOne {
	_u.mutation.SetAuthorID(v)
	return _u
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_u *PatientNoteUpdateOne) SetNillableAuthorID(v *uuid.UUID) *PatientNoteUpdateOne {
	if v != nil {
		_u.SetAuthorID(*v)
	}
	return _u
}

// ClearAuthorID clears the value of the "author_id" field.
func (_u *PatientNoteUpdateOne) ClearAuthorID() *PatientNoteUpdateOne {
	_u.mutation.ClearAuthorID()
	return _u
}

// SetPinned sets the "pinned" field.
func (_u *PatientNoteUpdateOne) SetPinned(v bool) *PatientNoteUpdateOne {
	_u.mutation.SetPinned(v)
	return _u
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_u *PatientNoteUpdateOne) SetNillablePinned(v *bool) *PatientNoteUpdateOne {
	if v != nil {
		_u.SetPinned(*v)
	}
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PatientNoteUpdateOne) SetPatient(v *Patient) *PatientNoteUpdateOne {
	return _u.SetPatientID(v.ID)
}

// Mutation returns the PatientNoteMutation object of the builder.
func (_u *PatientNoteUpdateOne) Mutation() *PatientNoteMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PatientNoteUpdateOne) ClearPatient() *PatientNoteUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// Where appends a list predicates to the PatientNoteUpdate builder.
func (_u *PatientNoteUpdateOne) Where(ps ...predicate.PatientNote) *PatientNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientNoteUpdateOne) Select(field string, fields ...string) *PatientNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PatientNote entity.
func (_u *PatientNoteUpdateOne) Save(ctx context.Context) (*PatientNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientNoteUpdateOne) SaveX(ctx context.Context) *PatientNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patientnote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientNoteUpdateOne) check() error {
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PatientNote.patient"`)
	}
	return nil
}

func (_u *PatientNoteUpdateOne) sqlSave(ctx context.Context) (_node *PatientNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patientnote.Table, patientnote.Columns, sqlgraph.NewFieldSpec(patientnote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PatientNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patientnote.FieldID)
		for _, f := range fields {
			if !patientnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patientnote.FieldID {
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
		_spec.SetField(patientnote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patientnote.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patientnote.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(patientnote.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthorID(); ok {
		_spec.SetField(patientnote.FieldAuthorID, field.TypeUUID, value)
	}
	if _u.mutation.AuthorIDCleared() {
		_spec.ClearField(patientnote.FieldAuthorID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Pinned(); ok {
		_spec.SetField(patientnote.FieldPinned, field.TypeBool, value)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   patientnote.PatientTable,
			Columns: []string{patientnote.PatientColumn},
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
			Table:   patientnote.PatientTable,
			Columns: []string{patientnote.PatientColumn},
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
	_node = &PatientNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patientnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
