// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// DeviceAssignmentDelete is the builder for deleting a DeviceAssignment entity.
type DeviceAssignmentDelete struct {
	config
	hooks    []Hook
	mutation *DeviceAssignmentMutation
}

// Where appends a list predicates to the DeviceAssignmentDelete builder.
func (_d *DeviceAssignmentDelete) Where(ps ...predicate.DeviceAssignment) *DeviceAssignmentDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DeviceAssignmentDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeviceAssignmentDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DeviceAssignmentDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(deviceassignment.Table, sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DeviceAssignmentDeleteOne is the builder for deleting a single DeviceAssignment entity.
type DeviceAssignmentDeleteOne struct {
	_d *DeviceAssignmentDelete
}

// Where appends a list predicates to the DeviceAssignmentDelete builder.
func (_d *DeviceAssignmentDeleteOne) Where(ps ...predicate.DeviceAssignment) *DeviceAssignmentDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DeviceAssignmentDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{deviceassignment.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DeviceAssignmentDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
