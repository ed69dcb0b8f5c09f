// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// LoanerDeviceDelete is the builder for deleting a LoanerDevice entity.
type LoanerDeviceDelete struct {
	config
	hooks    []Hook
	mutation *LoanerDeviceMutation
}

// Where appends a list predicates to the LoanerDeviceDelete builder.
func (_d *LoanerDeviceDelete) Where(ps ...predicate.LoanerDevice) *LoanerDeviceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LoanerDeviceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LoanerDeviceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LoanerDeviceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(loanerdevice.Table, sqlgraph.NewFieldSpec(loanerdevice.FieldID, field.TypeUUID))
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

// LoanerDeviceDeleteOne is the builder for deleting a single LoanerDevice entity.
type LoanerDeviceDeleteOne struct {
	_d *LoanerDeviceDelete
}

// Where appends a list predicates to the LoanerDeviceDelete builder.
func (_d *LoanerDeviceDeleteOne) Where(ps ...predicate.LoanerDevice) *LoanerDeviceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LoanerDeviceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{loanerdevice.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LoanerDeviceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
