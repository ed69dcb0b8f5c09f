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
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
)

// PromissoryNoteCreate is the builder for creating a PromissoryNote entity.
type PromissoryNoteCreate struct {
	config
	mutation *PromissoryNoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PromissoryNoteCreate) SetCreatedAt(v time.Time) *PromissoryNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillableCreatedAt(v *time.Time) *PromissoryNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PromissoryNoteCreate) SetUpdatedAt(v time.Time) *PromissoryNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillableUpdatedAt(v *time.Time) *PromissoryNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *PromissoryNoteCreate) SetAssignmentID(v uuid.UUID) *PromissoryNoteCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PromissoryNoteCreate) SetAmount(v float64) *PromissoryNoteCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetDueDate sets the "due_date" field.
func (_c *PromissoryNoteCreate) SetDueDate(v time.Time) *PromissoryNoteCreate {
	_c.mutation.SetDueDate(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PromissoryNoteCreate) SetStatus(v promissorynote.Status) *PromissoryNoteCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillableStatus(v *promissorynote.Status) *PromissoryNoteCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPaidAt sets the "paid_at" field.
func (_c *PromissoryNoteCreate) SetPaidAt(v time.Time) *PromissoryNoteCreate {
	_c.mutation.SetPaidAt(v)
	return _c
}

// SetNillablePaidAt sets the "paid_at" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillablePaidAt(v *time.Time) *PromissoryNoteCreate {
	if v != nil {
		_c.SetPaidAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *PromissoryNoteCreate) SetNotes(v string) *PromissoryNoteCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillableNotes(v *string) *PromissoryNoteCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PromissoryNoteCreate) SetID(v uuid.UUID) *PromissoryNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PromissoryNoteCreate) SetNillableID(v *uuid.UUID) *PromissoryNoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAssignment sets the "assignment" edge to the DeviceAssignment entity.
func (_c *PromissoryNoteCreate) SetAssignment(v *DeviceAssignment) *PromissoryNoteCreate {
	return _c.SetAssignmentID(v.ID)
}

// Mutation returns the PromissoryNoteMutation object of the builder.
func (_c *PromissoryNoteCreate) Mutation() *PromissoryNoteMutation {
	return _c.mutation
}

// Save creates the PromissoryNote in the database.
func (_c *PromissoryNoteCreate) Save(ctx context.Context) (*PromissoryNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PromissoryNoteCreate) SaveX(ctx context.Context) *PromissoryNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromissoryNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromissoryNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PromissoryNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := promissorynote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := promissorynote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := promissorynote.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := promissorynote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PromissoryNoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PromissoryNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PromissoryNote.updated_at"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`repo: missing required field "PromissoryNote.assignment_id"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`repo: missing required field "PromissoryNote.amount"`)}
	}
	if _, ok := _c.mutation.DueDate(); !ok {
		return &ValidationError{Name: "due_date", err: errors.New(`repo: missing required field "PromissoryNote.due_date"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "PromissoryNote.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := promissorynote.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "PromissoryNote.status": %w`, err)}
		}
	}
	if len(_c.mutation.AssignmentIDs()) == 0 {
		return &ValidationError{Name: "assignment", err: errors.New(`repo: missing required edge "PromissoryNote.assignment"`)}
	}
	return nil
}

func (_c *PromissoryNoteCreate) sqlSave(ctx context.Context) (*PromissoryNote, error) {
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

func (_c *PromissoryNoteCreate) createSpec() (*PromissoryNote, *sqlgraph.CreateSpec) {
	var (
		_node = &PromissoryNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(promissorynote.Table, sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(promissorynote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(promissorynote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(promissorynote.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.DueDate(); ok {
		_spec.SetField(promissorynote.FieldDueDate, field.TypeTime, value)
		_node.DueDate = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(promissorynote.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PaidAt(); ok {
		_spec.SetField(promissorynote.FieldPaidAt, field.TypeTime, value)
		_node.PaidAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(promissorynote.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.AssignmentIDs(); len(nodes) > 0 {
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
		_node.AssignmentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromissoryNote.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromissoryNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PromissoryNoteCreate) OnConflict(opts ...sql.ConflictOption) *PromissoryNoteUpsertOne {
	_c.conflict = opts
	return &PromissoryNoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromissoryNoteCreate) OnConflictColumns(columns ...string) *PromissoryNoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromissoryNoteUpsertOne{
		create: _c,
	}
}

type (
	// PromissoryNoteUpsertOne is the builder for "upsert"-ing
	//  one PromissoryNote node.
	PromissoryNoteUpsertOne struct {
		create *PromissoryNoteCreate
	}

	// PromissoryNoteUpsert is the "OnConflict" setter.
	PromissoryNoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PromissoryNoteUpsert) SetUpdatedAt(v time.Time) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateUpdatedAt() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldUpdatedAt)
	return u
}

// SetAssignmentID sets the "assignment_id" field.
func (u *PromissoryNoteUpsert) SetAssignmentID(v uuid.UUID) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldAssignmentID, v)
	return u
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateAssignmentID() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldAssignmentID)
	return u
}

// SetAmount sets the "amount" field.
func (u *PromissoryNoteUpsert) SetAmount(v float64) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateAmount() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *PromissoryNoteUpsert) AddAmount(v float64) *PromissoryNoteUpsert {
	u.Add(promissorynote.FieldAmount, v)
	return u
}

// SetDueDate sets the "due_date" field.
func (u *PromissoryNoteUpsert) SetDueDate(v time.Time) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldDueDate, v)
	return u
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateDueDate() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldDueDate)
	return u
}

// SetStatus sets the "status" field.
func (u *PromissoryNoteUpsert) SetStatus(v promissorynote.Status) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateStatus() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldStatus)
	return u
}

// SetPaidAt sets the "paid_at" field.
func (u *PromissoryNoteUpsert) SetPaidAt(v time.Time) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldPaidAt, v)
	return u
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdatePaidAt() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldPaidAt)
	return u
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PromissoryNoteUpsert) ClearPaidAt() *PromissoryNoteUpsert {
	u.SetNull(promissorynote.FieldPaidAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *PromissoryNoteUpsert) SetNotes(v string) *PromissoryNoteUpsert {
	u.Set(promissorynote.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PromissoryNoteUpsert) UpdateNotes() *PromissoryNoteUpsert {
	u.SetExcluded(promissorynote.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *PromissoryNoteUpsert) ClearNotes() *PromissoryNoteUpsert {
	u.SetNull(promissorynote.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(promissorynote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromissoryNoteUpsertOne) UpdateNewValues() *PromissoryNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(promissorynote.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(promissorynote.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PromissoryNoteUpsertOne) Ignore() *PromissoryNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromissoryNoteUpsertOne) DoNothing() *PromissoryNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromissoryNoteCreate.OnConflict
// documentation for more info.
func (u *PromissoryNoteUpsertOne) Update(set func(*PromissoryNoteUpsert)) *PromissoryNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromissoryNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PromissoryNoteUpsertOne) SetUpdatedAt(v time.Time) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateUpdatedAt() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *PromissoryNoteUpsertOne) SetAssignmentID(v uuid.UUID) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateAssignmentID() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetAmount sets the "amount" field.
func (u *PromissoryNoteUpsertOne) SetAmount(v float64) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PromissoryNoteUpsertOne) AddAmount(v float64) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateAmount() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateAmount()
	})
}

// SetDueDate sets the "due_date" field.
func (u *PromissoryNoteUpsertOne) SetDueDate(v time.Time) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateDueDate() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateDueDate()
	})
}

// SetStatus sets the "status" field.
func (u *PromissoryNoteUpsertOne) SetStatus(v promissorynote.Status) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateStatus() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateStatus()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PromissoryNoteUpsertOne) SetPaidAt(v time.Time) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdatePaidAt() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PromissoryNoteUpsertOne) ClearPaidAt() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.ClearPaidAt()
	})
}

// SetNotes sets the "notes" field.
func (u *PromissoryNoteUpsertOne) SetNotes(v string) *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PromissoryNoteUpsertOne) UpdateNotes() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PromissoryNoteUpsertOne) ClearNotes() *PromissoryNoteUpsertOne {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PromissoryNoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PromissoryNoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromissoryNoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PromissoryNoteUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PromissoryNoteUpsertOne.ID is not supported by MySQL driver. Use PromissoryNoteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PromissoryNoteUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PromissoryNoteCreateBulk is the builder for creating many PromissoryNote entities in bulk.
type PromissoryNoteCreateBulk struct {
	config
	err      error
	builders []*PromissoryNoteCreate
	conflict []sql.ConflictOption
}

// Save creates the PromissoryNote entities in the database.
func (_c *PromissoryNoteCreateBulk) Save(ctx context.Context) ([]*PromissoryNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PromissoryNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PromissoryNoteMutation)
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
func (_c *PromissoryNoteCreateBulk) SaveX(ctx context.Context) []*PromissoryNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PromissoryNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PromissoryNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PromissoryNote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PromissoryNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PromissoryNoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *PromissoryNoteUpsertBulk {
	_c.conflict = opts
	return &PromissoryNoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PromissoryNoteCreateBulk) OnConflictColumns(columns ...string) *PromissoryNoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PromissoryNoteUpsertBulk{
		create: _c,
	}
}

// PromissoryNoteUpsertBulk is the builder for "upsert"-ing
// a bulk of PromissoryNote nodes.
type PromissoryNoteUpsertBulk struct {
	create *PromissoryNoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(promissorynote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PromissoryNoteUpsertBulk) UpdateNewValues() *PromissoryNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(promissorynote.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(promissorynote.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PromissoryNote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PromissoryNoteUpsertBulk) Ignore() *PromissoryNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PromissoryNoteUpsertBulk) DoNothing() *PromissoryNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PromissoryNoteCreateBulk.OnConflict
// documentation for more info.
func (u *PromissoryNoteUpsertBulk) Update(set func(*PromissoryNoteUpsert)) *PromissoryNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PromissoryNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PromissoryNoteUpsertBulk) SetUpdatedAt(v time.Time) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateUpdatedAt() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAssignmentID sets the "assignment_id" field.
func (u *PromissoryNoteUpsertBulk) SetAssignmentID(v uuid.UUID) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetAssignmentID(v)
	})
}

// UpdateAssignmentID sets the "assignment_id" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateAssignmentID() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateAssignmentID()
	})
}

// SetAmount sets the "amount" field.
func (u *PromissoryNoteUpsertBulk) SetAmount(v float64) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *PromissoryNoteUpsertBulk) AddAmount(v float64) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateAmount() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateAmount()
	})
}

// SetDueDate sets the "due_date" field.
func (u *PromissoryNoteUpsertBulk) SetDueDate(v time.Time) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetDueDate(v)
	})
}

// UpdateDueDate sets the "due_date" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateDueDate() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateDueDate()
	})
}

// SetStatus sets the "status" field.
func (u *PromissoryNoteUpsertBulk) SetStatus(v promissorynote.Status) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateStatus() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateStatus()
	})
}

// SetPaidAt sets the "paid_at" field.
func (u *PromissoryNoteUpsertBulk) SetPaidAt(v time.Time) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetPaidAt(v)
	})
}

// UpdatePaidAt sets the "paid_at" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdatePaidAt() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdatePaidAt()
	})
}

// ClearPaidAt clears the value of the "paid_at" field.
func (u *PromissoryNoteUpsertBulk) ClearPaidAt() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.ClearPaidAt()
	})
}

// SetNotes sets the "notes" field.
func (u *PromissoryNoteUpsertBulk) SetNotes(v string) *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *PromissoryNoteUpsertBulk) UpdateNotes() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *PromissoryNoteUpsertBulk) ClearNotes() *PromissoryNoteUpsertBulk {
	return u.Update(func(s *PromissoryNoteUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *PromissoryNoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PromissoryNoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PromissoryNoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PromissoryNoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
