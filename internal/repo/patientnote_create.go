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
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientnote"
)

// PatientNoteCreate is the builder for creating a PatientNote entity.
type PatientNoteCreate struct {
	config
	mutation *PatientNoteMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *PatientNoteCreate) SetCreatedAt(v time.Time) *PatientNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillableCreatedAt(v *time.Time) *PatientNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PatientNoteCreate) SetUpdatedAt(v time.Time) *PatientNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillableUpdatedAt(v *time.Time) *PatientNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *PatientNoteCreate) SetDeletedAt(v time.Time) *PatientNoteCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillableDeletedAt(v *time.Time) *PatientNoteCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *PatientNoteCreate) SetPatientID(v uuid.UUID) *PatientNoteCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *PatientNoteCreate) SetContent(v string) *PatientNoteCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *PatientNoteCreate) SetAuthorID(v uuid.UUID) *PatientNoteCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNillableAuthorID sets the "author_id" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillableAuthorID(v *uuid.UUID) *PatientNoteCreate {
	if v != nil {
		_c.SetAuthorID(*v)
	}
	return _c
}

// SetPinned sets the "pinned" field.
func (_c *PatientNoteCreate) SetPinned(v bool) *PatientNoteCreate {
	_c.mutation.SetPinned(v)
	return _c
}

// SetNillablePinned sets the "pinned" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillablePinned(v *bool) *PatientNoteCreate {
	if v != nil {
		_c.SetPinned(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PatientNoteCreate) SetID(v uuid.UUID) *PatientNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PatientNoteCreate) SetNillableID(v *uuid.UUID) *PatientNoteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *PatientNoteCreate) SetPatient(v *Patient) *PatientNoteCreate {
	return _c.SetPatientID(v.ID)
}

// Mutation returns the PatientNoteMutation object of the builder.
func (_c *PatientNoteCreate) Mutation() *PatientNoteMutation {
	return _c.mutation
}

// Save creates the PatientNote in the database.
func (_c *PatientNoteCreate) Save(ctx context.Context) (*PatientNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PatientNoteCreate) SaveX(ctx context.Context) *PatientNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PatientNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := patientnote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := patientnote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		v := patientnote.DefaultPinned
		_c.mutation.SetPinned(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := patientnote.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PatientNoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "PatientNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "PatientNote.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "PatientNote.patient_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`repo: missing required field "PatientNote.content"`)}
	}
	if _, ok := _c.mutation.Pinned(); !ok {
		return &ValidationError{Name: "pinned", err: errors.New(`repo: missing required field "PatientNote.pinned"`)}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "PatientNote.patient"`)}
	}
	return nil
}

func (_c *PatientNoteCreate) sqlSave(ctx context.Context) (*PatientNote, error) {
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

func (_c *PatientNoteCreate) createSpec() (*PatientNote, *sqlgraph.CreateSpec) {
	var (
		_node = &PatientNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(patientnote.Table, sqlgraph.NewFieldSpec(patientnote.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(patientnote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(patientnote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(patientnote.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(patientnote.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(patientnote.FieldAuthorID, field.TypeUUID, value)
		_node.AuthorID = &value
	}
	if value, ok := _c.mutation.Pinned(); ok {
		_spec.SetField(patientnote.FieldPinned, field.TypeBool, value)
		_node.Pinned = value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientNote.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientNoteCreate) OnConflict(opts ...sql.ConflictOption) *PatientNoteUpsertOne {
	_c.conflict = opts
	return &PatientNoteUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientNoteCreate) OnConflictColumns(columns ...string) *PatientNoteUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientNoteUpsertOne{
		create: _c,
	}
}

type (
	// PatientNoteUpsertOne is the builder for "upsert"-ing
	//  one PatientNote node.
	PatientNoteUpsertOne struct {
		create *PatientNoteCreate
	}

	// PatientNoteUpsert is the "OnConflict" setter.
	PatientNoteUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientNoteUpsert) SetUpdatedAt(v time.Time) *PatientNoteUpsert {
	u.Set(patientnote.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdateUpdatedAt() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientNoteUpsert) SetDeletedAt(v time.Time) *PatientNoteUpsert {
	u.Set(patientnote.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdateDeletedAt() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientNoteUpsert) ClearDeletedAt() *PatientNoteUpsert {
	u.SetNull(patientnote.FieldDeletedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *PatientNoteUpsert) SetPatientID(v uuid.UUID) *PatientNoteUpsert {
	u.Set(patientnote.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdatePatientID() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldPatientID)
	return u
}

// SetContent sets the "content" field.
func (u *PatientNoteUpsert) SetContent(v string) *PatientNoteUpsert {
	u.Set(patientnote.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdateContent() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldContent)
	return u
}

// SetAuthorID sets the "author_id" field.
func (u *PatientNoteUpsert) SetAuthorID(v uuid.UUID) *PatientNoteUpsert {
	u.Set(patientnote.FieldAuthorID, v)
	return u
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdateAuthorID() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldAuthorID)
	return u
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *PatientNoteUpsert) ClearAuthorID() *PatientNoteUpsert {
	u.SetNull(patientnote.FieldAuthorID)
	return u
}

// SetPinned sets the "pinned" field.
func (u *PatientNoteUpsert) SetPinned(v bool) *PatientNoteUpsert {
	u.Set(patientnote.FieldPinned, v)
	return u
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *PatientNoteUpsert) UpdatePinned() *PatientNoteUpsert {
	u.SetExcluded(patientnote.FieldPinned)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientnote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientNoteUpsertOne) UpdateNewValues() *PatientNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(patientnote.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(patientnote.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PatientNoteUpsertOne) Ignore() *PatientNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientNoteUpsertOne) DoNothing() *PatientNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientNoteCreate.OnConflict
// documentation for more info.
func (u *PatientNoteUpsertOne) Update(set func(*PatientNoteUpsert)) *PatientNoteUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientNoteUpsertOne) SetUpdatedAt(v time.Time) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdateUpdatedAt() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientNoteUpsertOne) SetDeletedAt(v time.Time) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdateDeletedAt() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientNoteUpsertOne) ClearDeletedAt() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientNoteUpsertOne) SetPatientID(v uuid.UUID) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdatePatientID() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdatePatientID()
	})
}

// SetContent sets the "content" field.
func (u *PatientNoteUpsertOne) SetContent(v string) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdateContent() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateContent()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *PatientNoteUpsertOne) SetAuthorID(v uuid.UUID) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdateAuthorID() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *PatientNoteUpsertOne) ClearAuthorID() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.ClearAuthorID()
	})
}

// SetPinned sets the "pinned" field.
func (u *PatientNoteUpsertOne) SetPinned(v bool) *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *PatientNoteUpsertOne) UpdatePinned() *PatientNoteUpsertOne {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdatePinned()
	})
}

// Exec executes the query.
func (u *PatientNoteUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientNoteCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientNoteUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PatientNoteUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: PatientNoteUpsertOne.ID is not supported by MySQL driver. Use PatientNoteUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PatientNoteUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PatientNoteCreateBulk is the builder for creating many PatientNote entities in bulk.
type PatientNoteCreateBulk struct {
	config
	err      error
	builders []*PatientNoteCreate
	conflict []sql.ConflictOption
}

// Save creates the PatientNote entities in the database.
func (_c *PatientNoteCreateBulk) Save(ctx context.Context) ([]*PatientNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PatientNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PatientNoteMutation)
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
func (_c *PatientNoteCreateBulk) SaveX(ctx context.Context) []*PatientNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PatientNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PatientNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PatientNote.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PatientNoteUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *PatientNoteCreateBulk) OnConflict(opts ...sql.ConflictOption) *PatientNoteUpsertBulk {
	_c.conflict = opts
	return &PatientNoteUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PatientNoteCreateBulk) OnConflictColumns(columns ...string) *PatientNoteUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PatientNoteUpsertBulk{
		create: _c,
	}
}

// PatientNoteUpsertBulk is the builder for "upsert"-ing
// a bulk of PatientNote nodes.
type PatientNoteUpsertBulk struct {
	create *PatientNoteCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(patientnote.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PatientNoteUpsertBulk) UpdateNewValues() *PatientNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(patientnote.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(patientnote.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PatientNote.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PatientNoteUpsertBulk) Ignore() *PatientNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PatientNoteUpsertBulk) DoNothing() *PatientNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PatientNoteCreateBulk.OnConflict
// documentation for more info.
func (u *PatientNoteUpsertBulk) Update(set func(*PatientNoteUpsert)) *PatientNoteUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PatientNoteUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *PatientNoteUpsertBulk) SetUpdatedAt(v time.Time) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdateUpdatedAt() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *PatientNoteUpsertBulk) SetDeletedAt(v time.Time) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdateDeletedAt() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *PatientNoteUpsertBulk) ClearDeletedAt() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *PatientNoteUpsertBulk) SetPatientID(v uuid.UUID) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdatePatientID() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdatePatientID()
	})
}

// SetContent sets the "content" field.
func (u *PatientNoteUpsertBulk) SetContent(v string) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdateContent() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateContent()
	})
}

// SetAuthorID sets the "author_id" field.
func (u *PatientNoteUpsertBulk) SetAuthorID(v uuid.UUID) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetAuthorID(v)
	})
}

// UpdateAuthorID sets the "author_id" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdateAuthorID() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdateAuthorID()
	})
}

// ClearAuthorID clears the value of the "author_id" field.
func (u *PatientNoteUpsertBulk) ClearAuthorID() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.ClearAuthorID()
	})
}

// SetPinned sets the "pinned" field.
func (u *PatientNoteUpsertBulk) SetPinned(v bool) *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.SetPinned(v)
	})
}

// UpdatePinned sets the "pinned" field to the value that was provided on create.
func (u *PatientNoteUpsertBulk) UpdatePinned() *PatientNoteUpsertBulk {
	return u.Update(func(s *PatientNoteUpsert) {
		s.UpdatePinned()
	})
}

// Exec executes the query.
func (u *PatientNoteUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the PatientNoteCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for PatientNoteCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PatientNoteUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
