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
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
)

// PromissoryNoteUpdate is the builder for updating PromissoryNote entities.
type PromissoryNoteUpdate struct {
	config
	hooks    []Hook
	mutation *PromissoryNoteMutation
}

// Where appends a list predicates to the PromissoryNoteUpdate builder.
func (_u *PromissoryNoteUpdate) Where(ps ...predicate.PromissoryNote) *PromissoryNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromissoryNoteUpdate) SetUpdatedAt(v time.Time) *PromissoryNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *PromissoryNoteUpdate) SetAssignmentID(v uuid.UUID) *PromissoryNoteUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillableAssignmentID(v *uuid.UUID) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PromissoryNoteUpdate) SetAmount(v float64) *PromissoryNoteUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillableAmount(v *float64) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PromissoryNoteUpdate) AddAmount(v float64) *PromissoryNoteUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PromissoryNoteUpdate) SetDueDate(v time.Time) *PromissoryNoteUpdate {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillableDueDate(v *time.Time) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromissoryNoteUpdate) SetStatus(v promissorynote.Status) *PromissoryNoteUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillableStatus(v *promissorynote.Status) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PromissoryNoteUpdate) SetPaidAt(v time.Time) *PromissoryNoteUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillablePaidAt(v *time.Time) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *PromissoryNoteUpdate) ClearPaidAt() *PromissoryNoteUpdate {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PromissoryNoteUpdate) SetNotes(v string) *PromissoryNoteUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PromissoryNoteUpdate) SetNillableNotes(v *string) *PromissoryNoteUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PromissoryNoteUpdate) ClearNotes() *PromissoryNoteUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_u *PromissoryNoteUpdate) SetAssignment(v *DeviceAssignment) *PromissoryNoteUpdate {
	return _u.SetAssignmentID(v.ID)
}

// Mutation returns the PromissoryNoteMutation object of the builder.
func (_u *PromissoryNoteUpdate) Mutation() *PromissoryNoteMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the DeviceAssignment entity.
func (_u *PromissoryNoteUpdate) ClearAssignment() *PromissoryNoteUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PromissoryNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromissoryNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PromissoryNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromissoryNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromissoryNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promissorynote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromissoryNoteUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promissorynote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PromissoryNote.status": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PromissoryNote.assignment"`)
	}
	return nil
}

func (_u *PromissoryNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promissorynote.Table, promissorynote.Columns, sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(promissorynote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(promissorynote.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(promissorynote.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(promissorynote.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promissorynote.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(promissorynote.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(promissorynote.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(promissorynote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(promissorynote.FieldNotes, field.TypeString)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promissorynote.AssignmentTable,
			Columns: []string{promissorynote.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promissorynote.AssignmentTable,
			Columns: []string{promissorynote.AssignmentColumn},
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
			err = &NotFoundError{promissorynote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PromissoryNoteUpdateOne is the builder for updating a single PromissoryNote entity.
type PromissoryNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PromissoryNoteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PromissoryNoteUpdateOne) SetUpdatedAt(v time.Time) *PromissoryNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *PromissoryNoteUpdateOne) SetAssignmentID(v uuid.UUID) *PromissoryNoteUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillableAssignmentID(v *uuid.UUID) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PromissoryNoteUpdateOne) SetAmount(v float64) *PromissoryNoteUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillableAmount(v *float64) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PromissoryNoteUpdateOne) AddAmount(v float64) *PromissoryNoteUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetDueDate sets the "due_date" field.
func (_u *PromissoryNoteUpdateOne) SetDueDate(v time.Time) *PromissoryNoteUpdateOne {
	_u.mutation.SetDueDate(v)
	return _u
}

// SetNillableDueDate sets the "due_date" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillableDueDate(v *time.Time) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetDueDate(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PromissoryNoteUpdateOne) SetStatus(v promissorynote.Status) *PromissoryNoteUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillableStatus(v *promissorynote.Status) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PromissoryNoteUpdateOne) SetPaidAt(v time.Time) *PromissoryNoteUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillablePaidAt(v *time.Time) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (_u *PromissoryNoteUpdateOne) ClearPaidAt() *PromissoryNoteUpdateOne {
	_u.mutation.ClearPaidAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PromissoryNoteUpdateOne) SetNotes(v string) *PromissoryNoteUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PromissoryNoteUpdateOne) SetNillableNotes(v *string) *PromissoryNoteUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PromissoryNoteUpdateOne) ClearNotes() *PromissoryNoteUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_u *PromissoryNoteUpdateOne) SetAssignment(v *DeviceAssignment) *PromissoryNoteUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// Mutation returns the PromissoryNoteMutation object of the builder.
func (_u *PromissoryNoteUpdateOne) Mutation() *PromissoryNoteMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the DeviceAssignment entity.
func (_u *PromissoryNoteUpdateOne) ClearAssignment() *PromissoryNoteUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// Where appends a list predicates to the PromissoryNoteUpdate builder.
func (_u *PromissoryNoteUpdateOne) Where(ps ...predicate.PromissoryNote) *PromissoryNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PromissoryNoteUpdateOne) Select(field string, fields ...string) *PromissoryNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PromissoryNote entity.
func (_u *PromissoryNoteUpdateOne) Save(ctx context.Context) (*PromissoryNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PromissoryNoteUpdateOne) SaveX(ctx context.Context) *PromissoryNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PromissoryNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PromissoryNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PromissoryNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := promissorynote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PromissoryNoteUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := promissorynote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PromissoryNote.status": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PromissoryNote.assignment"`)
	}
	return nil
}

func (_u *PromissoryNoteUpdateOne) sqlSave(ctx context.Context) (_node *PromissoryNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(promissorynote.Table, promissorynote.Columns, sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PromissoryNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, promissorynote.FieldID)
		for _, f := range fields {
			if !promissorynote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != promissorynote.FieldID {
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
		_spec.SetField(promissorynote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(promissorynote.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(promissorynote.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DueDate(); ok {
		_spec.SetField(promissorynote.FieldDueDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(promissorynote.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(promissorynote.FieldPaidAt, field.TypeTime, value)
	}
	if _u.mutation.PaidAtCleared() {
		_spec.ClearField(promissorynote.FieldPaidAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(promissorynote.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(promissorynote.FieldNotes, field.TypeString)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promissorynote.AssignmentTable,
			Columns: []string{promissorynote.AssignmentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   promissorynote.AssignmentTable,
			Columns: []string{promissorynote.AssignmentColumn},
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
	_node = &PromissoryNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{promissorynote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
