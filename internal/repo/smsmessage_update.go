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
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
	"github.com/omrozmn/x-ear-sub003/internal/repo/smsmessage"
)

// SmsMessageUpdate is the builder for updating SmsMessage entities.
type SmsMessageUpdate struct {
	config
	hooks    []Hook
	mutation *SmsMessageMutation
}

// Where appends a list predicates to the SmsMessageUpdate builder.
func (_u *SmsMessageUpdate) Where(ps ...predicate.SmsMessage) *SmsMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *SmsMessageUpdate) SetPatientID(v uuid.UUID) *SmsMessageUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillablePatientID(v *uuid.UUID) *SmsMessageUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *SmsMessageUpdate) ClearPatientID() *SmsMessageUpdate {
	_u.mutation.ClearPatientID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SmsMessageUpdate) SetPhone(v string) *SmsMessageUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillablePhone(v *string) *SmsMessageUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SmsMessageUpdate) SetBody(v string) *SmsMessageUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillableBody(v *string) *SmsMessageUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SmsMessageUpdate) SetStatus(v smsmessage.Status) *SmsMessageUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillableStatus(v *smsmessage.Status) *SmsMessageUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SmsMessageUpdate) SetError(v string) *SmsMessageUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillableError(v *string) *SmsMessageUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SmsMessageUpdate) ClearError() *SmsMessageUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *SmsMessageUpdate) SetBatchID(v string) *SmsMessageUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillableBatchID(v *string) *SmsMessageUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *SmsMessageUpdate) ClearBatchID() *SmsMessageUpdate {
	_u.mutation.ClearBatchID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SmsMessageUpdate) SetSentAt(v time.Time) *SmsMessageUpdate {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SmsMessageUpdate) SetNillableSentAt(v *time.Time) *SmsMessageUpdate {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SmsMessageUpdate) ClearSentAt() *SmsMessageUpdate {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the SmsMessageMutation object of the builder.
func (_u *SmsMessageUpdate) Mutation() *SmsMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SmsMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmsMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SmsMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmsMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmsMessageUpdate) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := smsmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Error(); ok {
		if err := smsmessage.ErrorValidator(v); err != nil {
			return &ValidationError{Name: "error", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.error": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchID(); ok {
		if err := smsmessage.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SmsMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(smsmessage.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(smsmessage.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(smsmessage.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(smsmessage.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(smsmessage.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(smsmessage.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(smsmessage.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SmsMessageUpdateOne is the builder for updating a single SmsMessage entity.
type SmsMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SmsMessageMutation
}

// SetPatientID sets the "patient_id" field.
func (_u *SmsMessageUpdateOne) SetPatientID(v uuid.UUID) *SmsMessageUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillablePatientID(v *uuid.UUID) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// ClearPatientID clears the value of the "patient_id" field.
func (_u *SmsMessageUpdateOne) ClearPatientID() *SmsMessageUpdateOne {
	_u.mutation.ClearPatientID()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SmsMessageUpdateOne) SetPhone(v string) *SmsMessageUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillablePhone(v *string) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *SmsMessageUpdateOne) SetBody(v string) *SmsMessageUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillableBody(v *string) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SmsMessageUpdateOne) SetStatus(v smsmessage.Status) *SmsMessageUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillableStatus(v *smsmessage.Status) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SmsMessageUpdateOne) SetError(v string) *SmsMessageUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillableError(v *string) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SmsMessageUpdateOne) ClearError() *SmsMessageUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *SmsMessageUpdateOne) SetBatchID(v string) *SmsMessageUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillableBatchID(v *string) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// ClearBatchID clears the value of the "batch_id" field.
func (_u *SmsMessageUpdateOne) ClearBatchID() *SmsMessageUpdateOne {
	_u.mutation.ClearBatchID()
	return _u
}

// SetSentAt sets the "sent_at" field.
func (_u *SmsMessageUpdateOne) SetSentAt(v time.Time) *SmsMessageUpdateOne {
	_u.mutation.SetSentAt(v)
	return _u
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_u *SmsMessageUpdateOne) SetNillableSentAt(v *time.Time) *SmsMessageUpdateOne {
	if v != nil {
		_u.SetSentAt(*v)
	}
	return _u
}

// ClearSentAt clears the value of the "sent_at" field.
func (_u *SmsMessageUpdateOne) ClearSentAt() *SmsMessageUpdateOne {
	_u.mutation.ClearSentAt()
	return _u
}

// Mutation returns the SmsMessageMutation object of the builder.
func (_u *SmsMessageUpdateOne) Mutation() *SmsMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the SmsMessageUpdate builder.
func (_u *SmsMessageUpdateOne) Where(ps ...predicate.SmsMessage) *SmsMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SmsMessageUpdateOne) Select(field string, fields ...string) *SmsMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SmsMessage entity.
func (_u *SmsMessageUpdateOne) Save(ctx context.Context) (*SmsMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SmsMessageUpdateOne) SaveX(ctx context.Context) *SmsMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SmsMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SmsMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SmsMessageUpdateOne) check() error {
	if v, ok := _u.mutation.Phone(); ok {
		if err := smsmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Error(); ok {
		if err := smsmessage.ErrorValidator(v); err != nil {
			return &ValidationError{Name: "error", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.error": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchID(); ok {
		if err := smsmessage.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SmsMessageUpdateOne) sqlSave(ctx context.Context) (_node *SmsMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(smsmessage.Table, smsmessage.Columns, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "SmsMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, smsmessage.FieldID)
		for _, f := range fields {
			if !smsmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != smsmessage.FieldID {
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
	if value, ok := _u.mutation.PatientID(); ok {
		_spec.SetField(smsmessage.FieldPatientID, field.TypeUUID, value)
	}
	if _u.mutation.PatientIDCleared() {
		_spec.ClearField(smsmessage.FieldPatientID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(smsmessage.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(smsmessage.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(smsmessage.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.BatchID(); ok {
		_spec.SetField(smsmessage.FieldBatchID, field.TypeString, value)
	}
	if _u.mutation.BatchIDCleared() {
		_spec.ClearField(smsmessage.FieldBatchID, field.TypeString)
	}
	if value, ok := _u.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
	}
	if _u.mutation.SentAtCleared() {
		_spec.ClearField(smsmessage.FieldSentAt, field.TypeTime)
	}
	_node = &SmsMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{smsmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
