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
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// PaymentRecordUpdate is the builder for updating PaymentRecord entities.
type PaymentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdate) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *PaymentRecordUpdate) SetAssignmentID(v uuid.UUID) *PaymentRecordUpdate {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableAssignmentID(v *uuid.UUID) *PaymentRecordUpdate {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentRecordUpdate) SetAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableAmount(v *float64) *PaymentRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentRecordUpdate) AddAmount(v float64) *PaymentRecordUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentRecordUpdate) SetMethod(v paymentrecord.Method) *PaymentRecordUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableMethod(v *paymentrecord.Method) *PaymentRecordUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PaymentRecordUpdate) SetPaidAt(v time.Time) *PaymentRecordUpdate {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillablePaidAt(v *time.Time) *PaymentRecordUpdate {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *PaymentRecordUpdate) SetReference(v string) *PaymentRecordUpdate {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableReference(v *string) *PaymentRecordUpdate {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *PaymentRecordUpdate) ClearReference() *PaymentRecordUpdate {
	_u.mutation.ClearReference()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *PaymentRecordUpdate) SetRecordedBy(v uuid.UUID) *PaymentRecordUpdate {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *PaymentRecordUpdate) SetNillableRecordedBy(v *uuid.UUID) *PaymentRecordUpdate {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *PaymentRecordUpdate) ClearRecordedBy() *PaymentRecordUpdate {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_u *PaymentRecordUpdate) SetAssignment(v *DeviceAssignment) *PaymentRecordUpdate {
	return _u.SetAssignmentID(v.ID)
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdate) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the DeviceAssignment entity.
func (_u *PaymentRecordUpdate) ClearAssignment() *PaymentRecordUpdate {
	_u.mutation.ClearAssignment()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdate) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := paymentrecord.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := paymentrecord.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.reference": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentRecord.assignment"`)
	}
	return nil
}

func (_u *PaymentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(paymentrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(paymentrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(paymentrecord.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(paymentrecord.FieldPaidAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(paymentrecord.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(paymentrecord.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(paymentrecord.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(paymentrecord.FieldRecordedBy, field.TypeUUID)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentrecord.AssignmentTable,
			Columns: []string{paymentrecord.AssignmentColumn},
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
			Table:   paymentrecord.AssignmentTable,
			Columns: []string{paymentrecord.AssignmentColumn},
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
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentRecordUpdateOne is the builder for updating a single PaymentRecord entity.
type PaymentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentRecordMutation
}

// SetAssignmentID sets the "assignment_id" field.
func (_u *PaymentRecordUpdateOne) SetAssignmentID(v uuid.UUID) *PaymentRecordUpdateOne {
	_u.mutation.SetAssignmentID(v)
	return _u
}

// SetNillableAssignmentID sets the "assignment_id" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableAssignmentID(v *uuid.UUID) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetAssignmentID(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PaymentRecordUpdateOne) SetAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableAmount(v *float64) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *PaymentRecordUpdateOne) AddAmount(v float64) *PaymentRecordUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentRecordUpdateOne) SetMethod(v paymentrecord.Method) *PaymentRecordUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableMethod(v *paymentrecord.Method) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetPaidAt sets the "paid_at" field.
func (_u *PaymentRecordUpdateOne) SetPaidAt(v time.Time) *PaymentRecordUpdateOne {
	_u.mutation.SetPaidAt(v)
	return _u
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillablePaidAt(v *time.Time) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetPaidAt(*v)
	}
	return _u
}

// SetReference sets the "reference" field.
func (_u *PaymentRecordUpdateOne) SetReference(v string) *PaymentRecordUpdateOne {
	_u.mutation.SetReference(v)
	return _u
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableReference(v *string) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetReference(*v)
	}
	return _u
}

// ClearReference clears the value of the "reference" field.
func (_u *PaymentRecordUpdateOne) ClearReference() *PaymentRecordUpdateOne {
	_u.mutation.ClearReference()
	return _u
}

// SetRecordedBy sets the "recorded_by" field.
func (_u *PaymentRecordUpdateOne) SetRecordedBy(v uuid.UUID) *PaymentRecordUpdateOne {
	_u.mutation.SetRecordedBy(v)
	return _u
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_u *PaymentRecordUpdateOne) SetNillableRecordedBy(v *uuid.UUID) *PaymentRecordUpdateOne {
	if v != nil {
		_u.SetRecordedBy(*v)
	}
	return _u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (_u *PaymentRecordUpdateOne) ClearRecordedBy() *PaymentRecordUpdateOne {
	_u.mutation.ClearRecordedBy()
	return _u
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_u *PaymentRecordUpdateOne) SetAssignment(v *DeviceAssignment) *PaymentRecordUpdateOne {
	return _u.SetAssignmentID(v.ID)
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_u *PaymentRecordUpdateOne) Mutation() *PaymentRecordMutation {
	return _u.mutation
}

// ClearAssignment clears the "assignment" edge to the DeviceAssignment entity.
func (_u *PaymentRecordUpdateOne) ClearAssignment() *PaymentRecordUpdateOne {
	_u.mutation.ClearAssignment()
	return _u
}

// Where appends a list predicates to the PaymentRecordUpdate builder.
func (_u *PaymentRecordUpdateOne) Where(ps ...predicate.PaymentRecord) *PaymentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentRecordUpdateOne) Select(field string, fields ...string) *PaymentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentRecord entity.
func (_u *PaymentRecordUpdateOne) Save(ctx context.Context) (*PaymentRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) SaveX(ctx context.Context) *PaymentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Method(); ok {
		if err := paymentrecord.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reference(); ok {
		if err := paymentrecord.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.reference": %w`, err)}
		}
	}
	if _u.mutation.AssignmentCleared() && len(_u.mutation.AssignmentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "PaymentRecord.assignment"`)
	}
	return nil
}

func (_u *PaymentRecordUpdateOne) sqlSave(ctx context.Context) (_node *PaymentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentrecord.Table, paymentrecord.Columns, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "PaymentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentrecord.FieldID)
		for _, f := range fields {
			if !paymentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != paymentrecord.FieldID {
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
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(paymentrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(paymentrecord.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(paymentrecord.FieldMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PaidAt(); ok {
		_spec.SetField(paymentrecord.FieldPaidAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Reference(); ok {
		_spec.SetField(paymentrecord.FieldReference, field.TypeString, value)
	}
	if _u.mutation.ReferenceCleared() {
		_spec.ClearField(paymentrecord.FieldReference, field.TypeString)
	}
	if value, ok := _u.mutation.RecordedBy(); ok {
		_spec.SetField(paymentrecord.FieldRecordedBy, field.TypeUUID, value)
	}
	if _u.mutation.RecordedByCleared() {
		_spec.ClearField(paymentrecord.FieldRecordedBy, field.TypeUUID)
	}
	if _u.mutation.AssignmentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentrecord.AssignmentTable,
			Columns: []string{paymentrecord.AssignmentColumn},
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
			Table:   paymentrecord.AssignmentTable,
			Columns: []string{paymentrecord.AssignmentColumn},
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
	_node = &PaymentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
