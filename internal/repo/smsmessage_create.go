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
	"github.com/omrozmn/x-ear-sub003/internal/repo/smsmessage"
)

// SmsMessageCreate is the builder for creating a SmsMessage entity.
type SmsMessageCreate struct {
	config
	mutation *SmsMessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *SmsMessageCreate) SetCreatedAt(v time.Time) *SmsMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableCreatedAt(v *time.Time) *SmsMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *SmsMessageCreate) SetPatientID(v uuid.UUID) *SmsMessageCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillablePatientID(v *uuid.UUID) *SmsMessageCreate {
	if v != nil {
		_c.SetPatientID(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *SmsMessageCreate) SetPhone(v string) *SmsMessageCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *SmsMessageCreate) SetBody(v string) *SmsMessageCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SmsMessageCreate) SetStatus(v smsmessage.Status) *SmsMessageCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableStatus(v *smsmessage.Status) *SmsMessageCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *SmsMessageCreate) SetError(v string) *SmsMessageCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableError(v *string) *SmsMessageCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetBatchID sets the "batch_id" field.
func (_c *SmsMessageCreate) SetBatchID(v string) *SmsMessageCreate {
	_c.mutation.SetBatchID(v)
	return _c
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableBatchID(v *string) *SmsMessageCreate {
	if v != nil {
		_c.SetBatchID(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *SmsMessageCreate) SetSentAt(v time.Time) *SmsMessageCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableSentAt(v *time.Time) *SmsMessageCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SmsMessageCreate) SetID(v uuid.UUID) *SmsMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SmsMessageCreate) SetNillableID(v *uuid.UUID) *SmsMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SmsMessageMutation object of the builder.
func (_c *SmsMessageCreate) Mutation() *SmsMessageMutation {
	return _c.mutation
}

// Save creates the SmsMessage in the database.
func (_c *SmsMessageCreate) Save(ctx context.Context) (*SmsMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SmsMessageCreate) SaveX(ctx context.Context) *SmsMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmsMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmsMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SmsMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := smsmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := smsmessage.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := smsmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SmsMessageCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "SmsMessage.created_at"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "SmsMessage.phone"`)}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := smsmessage.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`repo: missing required field "SmsMessage.body"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "SmsMessage.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := smsmessage.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Error(); ok {
		if err := smsmessage.ErrorValidator(v); err != nil {
			return &ValidationError{Name: "error", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.error": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BatchID(); ok {
		if err := smsmessage.BatchIDValidator(v); err != nil {
			return &ValidationError{Name: "batch_id", err: fmt.Errorf(`repo: validator failed for field "SmsMessage.batch_id": %w`, err)}
		}
	}
	return nil
}

func (_c *SmsMessageCreate) sqlSave(ctx context.Context) (*SmsMessage, error) {
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

func (_c *SmsMessageCreate) createSpec() (*SmsMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &SmsMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(smsmessage.Table, sqlgraph.NewFieldSpec(smsmessage.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(smsmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PatientID(); ok {
		_spec.SetField(smsmessage.FieldPatientID, field.TypeUUID, value)
		_node.PatientID = &value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(smsmessage.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(smsmessage.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(smsmessage.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(smsmessage.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.BatchID(); ok {
		_spec.SetField(smsmessage.FieldBatchID, field.TypeString, value)
		_node.BatchID = &value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(smsmessage.FieldSentAt, field.TypeTime, value)
		_node.SentAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmsMessage.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmsMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SmsMessageCreate) OnConflict(opts ...sql.ConflictOption) *SmsMessageUpsertOne {
	_c.conflict = opts
	return &SmsMessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SmsMessageCreate) OnConflictColumns(columns ...string) *SmsMessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SmsMessageUpsertOne{
		create: _c,
	}
}

type (
	// SmsMessageUpsertOne is the builder for "upsert"-ing
	//  one SmsMessage node.
	SmsMessageUpsertOne struct {
		create *SmsMessageCreate
	}

	// SmsMessageUpsert is the "OnConflict" setter.
	SmsMessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetPatientID sets the "patient_id" field.
func (u *SmsMessageUpsert) SetPatientID(v uuid.UUID) *SmsMessageUpsert {
	u.Set(smsmessage.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdatePatientID() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldPatientID)
	return u
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SmsMessageUpsert) ClearPatientID() *SmsMessageUpsert {
	u.SetNull(smsmessage.FieldPatientID)
	return u
}

// SetPhone sets the "phone" field.
func (u *SmsMessageUpsert) SetPhone(v string) *SmsMessageUpsert {
	u.Set(smsmessage.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdatePhone() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldPhone)
	return u
}

// SetBody sets the "body" field.
func (u *SmsMessageUpsert) SetBody(v string) *SmsMessageUpsert {
	u.Set(smsmessage.FieldBody, v)
	return u
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdateBody() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldBody)
	return u
}

// SetStatus sets the "status" field.
func (u *SmsMessageUpsert) SetStatus(v smsmessage.Status) *SmsMessageUpsert {
	u.Set(smsmessage.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdateStatus() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldStatus)
	return u
}

// SetError sets the "error" field.
func (u *SmsMessageUpsert) SetError(v string) *SmsMessageUpsert {
	u.Set(smsmessage.FieldError, v)
	return u
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdateError() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldError)
	return u
}

// ClearError clears the value of the "error" field.
func (u *SmsMessageUpsert) ClearError() *SmsMessageUpsert {
	u.SetNull(smsmessage.FieldError)
	return u
}

// SetBatchID sets the "batch_id" field.
func (u *SmsMessageUpsert) SetBatchID(v string) *SmsMessageUpsert {
	u.Set(smsmessage.FieldBatchID, v)
	return u
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdateBatchID() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldBatchID)
	return u
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *SmsMessageUpsert) ClearBatchID() *SmsMessageUpsert {
	u.SetNull(smsmessage.FieldBatchID)
	return u
}

// SetSentAt sets the "sent_at" field.
func (u *SmsMessageUpsert) SetSentAt(v time.Time) *SmsMessageUpsert {
	u.Set(smsmessage.FieldSentAt, v)
	return u
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SmsMessageUpsert) UpdateSentAt() *SmsMessageUpsert {
	u.SetExcluded(smsmessage.FieldSentAt)
	return u
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SmsMessageUpsert) ClearSentAt() *SmsMessageUpsert {
	u.SetNull(smsmessage.FieldSentAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmsMessageUpsertOne) UpdateNewValues() *SmsMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(smsmessage.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(smsmessage.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *SmsMessageUpsertOne) Ignore() *SmsMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmsMessageUpsertOne) DoNothing() *SmsMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmsMessageCreate.OnConflict
// documentation for more info.
func (u *SmsMessageUpsertOne) Update(set func(*SmsMessageUpsert)) *SmsMessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmsMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *SmsMessageUpsertOne) SetPatientID(v uuid.UUID) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdatePatientID() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SmsMessageUpsertOne) ClearPatientID() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearPatientID()
	})
}

// SetPhone sets the "phone" field.
func (u *SmsMessageUpsertOne) SetPhone(v string) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdatePhone() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdatePhone()
	})
}

// SetBody sets the "body" field.
func (u *SmsMessageUpsertOne) SetBody(v string) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdateBody() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *SmsMessageUpsertOne) SetStatus(v smsmessage.Status) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdateStatus() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *SmsMessageUpsertOne) SetError(v string) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdateError() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SmsMessageUpsertOne) ClearError() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearError()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *SmsMessageUpsertOne) SetBatchID(v string) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdateBatchID() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *SmsMessageUpsertOne) ClearBatchID() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearBatchID()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *SmsMessageUpsertOne) SetSentAt(v time.Time) *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SmsMessageUpsertOne) UpdateSentAt() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SmsMessageUpsertOne) ClearSentAt() *SmsMessageUpsertOne {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *SmsMessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SmsMessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmsMessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *SmsMessageUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: SmsMessageUpsertOne.ID is not supported by MySQL driver. Use SmsMessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *SmsMessageUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// SmsMessageCreateBulk is the builder for creating many SmsMessage entities in bulk.
type SmsMessageCreateBulk struct {
	config
	err      error
	builders []*SmsMessageCreate
	conflict []sql.ConflictOption
}

// Save creates the SmsMessage entities in the database.
func (_c *SmsMessageCreateBulk) Save(ctx context.Context) ([]*SmsMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SmsMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SmsMessageMutation)
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
func (_c *SmsMessageCreateBulk) SaveX(ctx context.Context) []*SmsMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SmsMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SmsMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.SmsMessage.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.SmsMessageUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *SmsMessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *SmsMessageUpsertBulk {
	_c.conflict = opts
	return &SmsMessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *SmsMessageCreateBulk) OnConflictColumns(columns ...string) *SmsMessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &SmsMessageUpsertBulk{
		create: _c,
	}
}

// SmsMessageUpsertBulk is the builder for "upsert"-ing
// a bulk of SmsMessage nodes.
type SmsMessageUpsertBulk struct {
	create *SmsMessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(smsmessage.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *SmsMessageUpsertBulk) UpdateNewValues() *SmsMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(smsmessage.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(smsmessage.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.SmsMessage.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *SmsMessageUpsertBulk) Ignore() *SmsMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *SmsMessageUpsertBulk) DoNothing() *SmsMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the SmsMessageCreateBulk.OnConflict
// documentation for more info.
func (u *SmsMessageUpsertBulk) Update(set func(*SmsMessageUpsert)) *SmsMessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&SmsMessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *SmsMessageUpsertBulk) SetPatientID(v uuid.UUID) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdatePatientID() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdatePatientID()
	})
}

// ClearPatientID clears the value of the "patient_id" field.
func (u *SmsMessageUpsertBulk) ClearPatientID() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearPatientID()
	})
}

// SetPhone sets the "phone" field.
func (u *SmsMessageUpsertBulk) SetPhone(v string) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdatePhone() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdatePhone()
	})
}

// SetBody sets the "body" field.
func (u *SmsMessageUpsertBulk) SetBody(v string) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetBody(v)
	})
}

// UpdateBody sets the "body" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdateBody() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateBody()
	})
}

// SetStatus sets the "status" field.
func (u *SmsMessageUpsertBulk) SetStatus(v smsmessage.Status) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdateStatus() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateStatus()
	})
}

// SetError sets the "error" field.
func (u *SmsMessageUpsertBulk) SetError(v string) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetError(v)
	})
}

// UpdateError sets the "error" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdateError() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateError()
	})
}

// ClearError clears the value of the "error" field.
func (u *SmsMessageUpsertBulk) ClearError() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearError()
	})
}

// SetBatchID sets the "batch_id" field.
func (u *SmsMessageUpsertBulk) SetBatchID(v string) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetBatchID(v)
	})
}

// UpdateBatchID sets the "batch_id" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdateBatchID() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateBatchID()
	})
}

// ClearBatchID clears the value of the "batch_id" field.
func (u *SmsMessageUpsertBulk) ClearBatchID() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearBatchID()
	})
}

// SetSentAt sets the "sent_at" field.
func (u *SmsMessageUpsertBulk) SetSentAt(v time.Time) *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.SetSentAt(v)
	})
}

// UpdateSentAt sets the "sent_at" field to the value that was provided on create.
func (u *SmsMessageUpsertBulk) UpdateSentAt() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.UpdateSentAt()
	})
}

// ClearSentAt clears the value of the "sent_at" field.
func (u *SmsMessageUpsertBulk) ClearSentAt() *SmsMessageUpsertBulk {
	return u.Update(func(s *SmsMessageUpsert) {
		s.ClearSentAt()
	})
}

// Exec executes the query.
func (u *SmsMessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the SmsMessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for SmsMessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *SmsMessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
