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
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
)

// PaymentRecordCreate is the builder for creating a PaymentRecord entity.
type PaymentRecordCreate struct {
	config
	mutation *PaymentRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaymentRecordCreate) SetCreatedAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableCreatedAt(v *time.Time) *PaymentRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *PaymentRecordCreate) SetAssignmentID(v uuid.UUID) *PaymentRecordCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PaymentRecordCreate) SetAmount(v float64) *PaymentRecordCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetMethod sets the "method" field.
func (_c *PaymentRecordCreate) SetMethod(v paymentrecord.Method) *PaymentRecordCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *PaymentRecordCreate) SetPaidAt(v time.Time) *PaymentRecordCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetReference sets the "reference" field.
func (_c *PaymentRecordCreate) SetReference(v string) *PaymentRecordCreate {
	_c.mutation.SetReference(v)
	return _c
}

// SetNillableReference sets the "reference" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableReference(v *string) *PaymentRecordCreate {
	if v != nil {
		_c.SetReference(*v)
	}
	return _c
}

// SetRecordedBy sets the "recorded_by" field.
func (_c *PaymentRecordCreate) SetRecordedBy(v uuid.UUID) *PaymentRecordCreate {
	_c.mutation.SetRecordedBy(v)
	return _c
}

// SetNillableRecordedBy sets the "recorded_by" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableRecordedBy(v *uuid.UUID) *PaymentRecordCreate {
	if v != nil {
		_c.SetRecordedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentRecordCreate) SetID(v uuid.UUID) *PaymentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentRecordCreate) SetNillableID(v *uuid.UUID) *PaymentRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_c *PaymentRecordCreate) SetAssignment(v *DeviceAssignment) *PaymentRecordCreate {
	return _c.SetAssignmentID(v.ID)
}

// Mutation returns the PaymentRecordMutation object of the builder.
func (_c *PaymentRecordCreate) Mutation() *PaymentRecordMutation {
	return _c.mutation
}

// Save creates the PaymentRecord in the database.
func (_c *PaymentRecordCreate) Save(ctx context.Context) (*PaymentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentRecordCreate) SaveX(ctx context.Context) *PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paymentrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paymentrecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PaymentRecord.created_at"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`repo: missing required field "PaymentRecord.assignment_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "PaymentRecord.amount"`)}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`repo: missing required field "PaymentRecord.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := paymentrecord.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PaidAt(); !ok {
		return &ValidationError{Name: "paid_at", err: errors.New(`repo: missing required field "PaymentRecord.paid_at"`)}
	}
	if v, ok := _c.mutation.Reference(); ok {
		if err := paymentrecord.ReferenceValidator(v); err != nil {
			return &ValidationError{Name: "reference", err: fmt.Errorf(`repo: validator failed for field "PaymentRecord.reference": %w`, err)}
		}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`repo: missing required edge "PaymentRecord.assignment"`)}
	}
	return nil
}

func (_c *PaymentRecordCreate) sqlSave(ctx context.Context) (*PaymentRecord, error) {
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

func (_c *PaymentRecordCreate) createSpec() (*PaymentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentrecord.Table, sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paymentrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(paymentrecord.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(paymentrecord.FieldMethod, field.TypeEnum, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(paymentrecord.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = value
	}
	if value, ok := _c.mutation.Reference(); ok {
		_spec.SetField(paymentrecord.FieldReference, field.TypeString, value)
		_node.Reference = &value
	}
	if value, ok := _c.mutation.RecordedBy(); ok {
		_spec.SetField(paymentrecord.FieldRecordedBy, field.TypeUUID, value)
		_node.RecordedBy = &value
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertOne {
	_c.conflict = opts
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreate) OnConflictColumns(columns ...string) *PaymentRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertOne{
		create: _c,
	}
}

type (
	// PaymentRecordUpsertOne is the builder for "upsert"-ing
	//  one PaymentRecord node.
	PaymentRecordUpsertOne struct {
		create *PaymentRecordCreate
	}

	// PaymentRecordUpsert is the "OnConflict" setter.
	PaymentRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetAssignmentID sets the "assignment_id" field.
func (u *PaymentRecordUpsert) SetAssignmentID(v uuid.UUID) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldAssignmentID, v)
	return u
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateAssignmentID() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldAssignmentID)
	return u
}

// SetAmount sets the "amount" field.
func (u *PaymentRecordUpsert) SetAmount(v float64) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateAmount() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *PaymentRecordUpsert) AddAmount(v float64) *PaymentRecordUpsert {
	u.Add(paymentrecord.FieldAmount, v)
	return u
}

// SetMethod sets the "method" field.
func (u *PaymentRecordUpsert) SetMethod(v paymentrecord.Method) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldMethod, v)
	return u
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateMethod() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldMethod)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentRecordUpsert) SetPaidAt(v time.Time) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdatePaidAt() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldPaidAt)
	return u
}

// SetReference sets the "reference" field.
func (u *PaymentRecordUpsert) SetReference(v string) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldReference, v)
	return u
}

// UpdateReference sets the "reference" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateReference() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldReference)
	return u
}

// ClearReference clears the value of the "reference" field.
func (u *PaymentRecordUpsert) ClearReference() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldReference)
	return u
}

// SetRecordedBy sets the "recorded_by" field.
func (u *PaymentRecordUpsert) SetRecordedBy(v uuid.UUID) *PaymentRecordUpsert {
	u.Set(paymentrecord.FieldRecordedBy, v)
	return u
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *PaymentRecordUpsert) UpdateRecordedBy() *PaymentRecordUpsert {
	u.SetExcluded(paymentrecord.FieldRecordedBy)
	return u
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *PaymentRecordUpsert) ClearRecordedBy() *PaymentRecordUpsert {
	u.SetNull(paymentrecord.FieldRecordedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertOne) UpdateNewValues() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentrecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(paymentrecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentRecordUpsertOne) Ignore() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertOne) DoNothing() *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreate.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertOne) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *PaymentRecordUpsertOne) SetAssignmentID(v uuid.UUID) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateAssignmentID() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentRecordUpsertOne) SetAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PaymentRecordUpsertOne) AddAmount(v float64) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateAmount() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateAmount()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentRecordUpsertOne) SetMethod(v paymentrecord.Method) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateMethod() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateMethod()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentRecordUpsertOne) SetPaidAt(v time.Time) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdatePaidAt() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaidAt()
	})
}

// SetReference sets the "reference" field.
func (u *PaymentRecordUpsertOne) SetReference(v string) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetReference(v)
	})
}

// UpdateReference sets the "reference" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateReference() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateReference()
	})
}

// ClearReference clears the value of the "reference" field.
func (u *PaymentRecordUpsertOne) ClearReference() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearReference()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *PaymentRecordUpsertOne) SetRecordedBy(v uuid.UUID) *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *PaymentRecordUpsertOne) UpdateRecordedBy() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *PaymentRecordUpsertOne) ClearRecordedBy() *PaymentRecordUpsertOne {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearRecordedBy()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentRecordUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PaymentRecordUpsertOne.ID is not supported by MySQL driver. Use PaymentRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentRecordUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentRecordCreateBulk is the builder for creating many PaymentRecord entities in bulk.
type PaymentRecordCreateBulk struct {
	config
	err      error
	builders []*PaymentRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentRecord entities in the database.
func (_c *PaymentRecordCreateBulk) Save(ctx context.Context) ([]*PaymentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentRecordMutation)
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
func (_c *PaymentRecordCreateBulk) SaveX(ctx context.Context) []*PaymentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentRecordUpsertBulk {
	_c.conflict = opts
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentRecordCreateBulk) OnConflictColumns(columns ...string) *PaymentRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentRecordUpsertBulk{
		create: _c,
	}
}

// PaymentRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentRecord nodes.
type PaymentRecordUpsertBulk struct {
	create *PaymentRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) UpdateNewValues() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentrecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(paymentrecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentRecordUpsertBulk) Ignore() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentRecordUpsertBulk) DoNothing() *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentRecordCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentRecordUpsertBulk) Update(set func(*PaymentRecordUpsert)) *PaymentRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *PaymentRecordUpsertBulk) SetAssignmentID(v uuid.UUID) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateAssignmentID() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetAmount sets the "amount" field.
func (u *PaymentRecordUpsertBulk) SetAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PaymentRecordUpsertBulk) AddAmount(v float64) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateAmount() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateAmount()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentRecordUpsertBulk) SetMethod(v paymentrecord.Method) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateMethod() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateMethod()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PaymentRecordUpsertBulk) SetPaidAt(v time.Time) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdatePaidAt() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdatePaidAt()
	})
}

// SetReference sets the "reference" field.
func (u *PaymentRecordUpsertBulk) SetReference(v string) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetReference(v)
	})
}

// UpdateReference sets the "reference" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateReference() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateReference()
	})
}

// ClearReference clears the value of the "reference" field.
func (u *PaymentRecordUpsertBulk) ClearReference() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearReference()
	})
}

// SetRecordedBy sets the "recorded_by" field.
func (u *PaymentRecordUpsertBulk) SetRecordedBy(v uuid.UUID) *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.SetRecordedBy(v)
	})
}

// UpdateRecordedBy sets the "recorded_by" field to the value that was provided on create.
func (u *PaymentRecordUpsertBulk) UpdateRecordedBy() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.UpdateRecordedBy()
	})
}

// ClearRecordedBy clears the value of the "recorded_by" field.
func (u *PaymentRecordUpsertBulk) ClearRecordedBy() *PaymentRecordUpsertBulk {
	return u.Update(func(s *PaymentRecordUpsert) {
		s.ClearRecordedBy()
	})
}

// Exec executes the query.
func (u *PaymentRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PaymentRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PaymentRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
