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
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
)

// DeviceAssignmentUpdate is the builder for updating DeviceAssignment entities.
type DeviceAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *DeviceAssignmentMutation
}

// Where appends a list predicates to the DeviceAssignmentUpdate builder.
func (_u *DeviceAssignmentUpdate) Where(ps ...predicate.DeviceAssignment) *DeviceAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceAssignmentUpdate) SetUpdatedAt(v time.Time) *DeviceAssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeviceAssignmentUpdate) SetDeletedAt(v time.Time) *DeviceAssignmentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableDeletedAt(v *time.Time) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DeviceAssignmentUpdate) ClearDeletedAt() *DeviceAssignmentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DeviceAssignmentUpdate) SetPatientID(v uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillablePatientID(v *uuid.UUID) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *DeviceAssignmentUpdate) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableInventoryItemID(v *uuid.UUID) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *DeviceAssignmentUpdate) SetSerialNumber(v string) *DeviceAssignmentUpdate {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableSerialNumber(v *string) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *DeviceAssignmentUpdate) ClearSerialNumber() *DeviceAssignmentUpdate {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetEar sets the "ear" field.
func (_u *DeviceAssignmentUpdate) SetEar(v deviceassignment.Ear) *DeviceAssignmentUpdate {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableEar(v *deviceassignment.Ear) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetListPrice sets the "list_price" field.
func (_u *DeviceAssignmentUpdate) SetListPrice(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetListPrice()
	_u.mutation.SetListPrice(v)
	return _u
}

// SetNillableListPrice sets the "list_price" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableListPrice(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetListPrice(*v)
	}
	return _u
}

// AddListPrice adds value to the "list_price" field.
func (_u *DeviceAssignmentUpdate) AddListPrice(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddListPrice(v)
	return _u
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (_u *DeviceAssignmentUpdate) SetSgkSchemeKey(v string) *DeviceAssignmentUpdate {
	_u.mutation.SetSgkSchemeKey(v)
	return _u
}

// SetNillableSgkSchemeKey sets the "sgk_scheme_key" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableSgkSchemeKey(v *string) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetSgkSchemeKey(*v)
	}
	return _u
}

// SetSgkReduction sets the "sgk_reduction" field.
func (_u *DeviceAssignmentUpdate) SetSgkReduction(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetSgkReduction()
	_u.mutation.SetSgkReduction(v)
	return _u
}

// SetNillableSgkReduction sets the "sgk_reduction" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableSgkReduction(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetSgkReduction(*v)
	}
	return _u
}

// AddSgkReduction adds value to the "sgk_reduction" field.
func (_u *DeviceAssignmentUpdate) AddSgkReduction(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddSgkReduction(v)
	return _u
}

// SetDiscountType sets the "discount_type" field.
func (_u *DeviceAssignmentUpdate) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentUpdate {
	_u.mutation.SetDiscountType(v)
	return _u
}

// SetNillableDiscountType sets the "discount_type" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableDiscountType(v *deviceassignment.DiscountType) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetDiscountType(*v)
	}
	return _u
}

// SetDiscountValue sets the "discount_value" field.
func (_u *DeviceAssignmentUpdate) SetDiscountValue(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetDiscountValue()
	_u.mutation.SetDiscountValue(v)
	return _u
}

// SetNillableDiscountValue sets the "discount_value" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableDiscountValue(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetDiscountValue(*v)
	}
	return _u
}

// AddDiscountValue adds value to the "discount_value" field.
func (_u *DeviceAssignmentUpdate) AddDiscountValue(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddDiscountValue(v)
	return _u
}

// SetSalePrice sets the "sale_price" field.
func (_u *DeviceAssignmentUpdate) SetSalePrice(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetSalePrice()
	_u.mutation.SetSalePrice(v)
	return _u
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableSalePrice(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetSalePrice(*v)
	}
	return _u
}

// AddSalePrice adds value to the "sale_price" field.
func (_u *DeviceAssignmentUpdate) AddSalePrice(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddSalePrice(v)
	return _u
}

// SetPatientPayment sets the "patient_payment" field.
func (_u *DeviceAssignmentUpdate) SetPatientPayment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetPatientPayment()
	_u.mutation.SetPatientPayment(v)
	return _u
}

// SetNillablePatientPayment sets the "patient_payment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillablePatientPayment(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetPatientPayment(*v)
	}
	return _u
}

// AddPatientPayment adds value to the "patient_payment" field.
func (_u *DeviceAssignmentUpdate) AddPatientPayment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddPatientPayment(v)
	return _u
}

// SetDownPayment sets the "down_payment" field.
func (_u *DeviceAssignmentUpdate) SetDownPayment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetDownPayment()
	_u.mutation.SetDownPayment(v)
	return _u
}

// SetNillableDownPayment sets the "down_payment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableDownPayment(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetDownPayment(*v)
	}
	return _u
}

// AddDownPayment adds value to the "down_payment" field.
func (_u *DeviceAssignmentUpdate) AddDownPayment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddDownPayment(v)
	return _u
}

// SetRemainingAmount sets the "remaining_amount" field.
func (_u *DeviceAssignmentUpdate) SetRemainingAmount(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetRemainingAmount()
	_u.mutation.SetRemainingAmount(v)
	return _u
}

// SetNillableRemainingAmount sets the "remaining_amount" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableRemainingAmount(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetRemainingAmount(*v)
	}
	return _u
}

// AddRemainingAmount adds value to the "remaining_amount" field.
func (_u *DeviceAssignmentUpdate) AddRemainingAmount(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddRemainingAmount(v)
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *DeviceAssignmentUpdate) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentUpdate {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillablePaymentMethod(v *deviceassignment.PaymentMethod) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetInstallmentCount sets the "installment_count" field.
func (_u *DeviceAssignmentUpdate) SetInstallmentCount(v int) *DeviceAssignmentUpdate {
	_u.mutation.ResetInstallmentCount()
	_u.mutation.SetInstallmentCount(v)
	return _u
}

// SetNillableInstallmentCount sets the "installment_count" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableInstallmentCount(v *int) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetInstallmentCount(*v)
	}
	return _u
}

// AddInstallmentCount adds value to the "installment_count" field.
func (_u *DeviceAssignmentUpdate) AddInstallmentCount(v int) *DeviceAssignmentUpdate {
	_u.mutation.AddInstallmentCount(v)
	return _u
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (_u *DeviceAssignmentUpdate) SetMonthlyInstallment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.ResetMonthlyInstallment()
	_u.mutation.SetMonthlyInstallment(v)
	return _u
}

// SetNillableMonthlyInstallment sets the "monthly_installment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableMonthlyInstallment(v *float64) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetMonthlyInstallment(*v)
	}
	return _u
}

// AddMonthlyInstallment adds value to the "monthly_installment" field.
func (_u *DeviceAssignmentUpdate) AddMonthlyInstallment(v float64) *DeviceAssignmentUpdate {
	_u.mutation.AddMonthlyInstallment(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceAssignmentUpdate) SetStatus(v deviceassignment.Status) *DeviceAssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableStatus(v *deviceassignment.Status) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReplacedByID sets the "replaced_by_id" field.
func (_u *DeviceAssignmentUpdate) SetReplacedByID(v uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.SetReplacedByID(v)
	return _u
}

// SetNillableReplacedByID sets the "replaced_by_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableReplacedByID(v *uuid.UUID) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetReplacedByID(*v)
	}
	return _u
}

// ClearReplacedByID clears the value of the "replaced_by_id" field.
func (_u *DeviceAssignmentUpdate) ClearReplacedByID() *DeviceAssignmentUpdate {
	_u.mutation.ClearReplacedByID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DeviceAssignmentUpdate) SetNotes(v string) *DeviceAssignmentUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DeviceAssignmentUpdate) SetNillableNotes(v *string) *DeviceAssignmentUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DeviceAssignmentUpdate) ClearNotes() *DeviceAssignmentUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DeviceAssignmentUpdate) SetPatient(v *Patient) *DeviceAssignmentUpdate {
	return _u.SetPatientID(v.ID)
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *DeviceAssignmentUpdate) SetInventoryItem(v *InventoryItem) *DeviceAssignmentUpdate {
	return _u.SetInventoryItemID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_u *DeviceAssignmentUpdate) AddPaymentIDs(ids ...uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_u *DeviceAssignmentUpdate) AddPayments(v ...*PaymentRecord) *DeviceAssignmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddPromissoryNoteIDs adds the "promissory_notes" edge to the PromissoryNote entity by IDs.
func (_u *DeviceAssignmentUpdate) AddPromissoryNoteIDs(ids ...uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.AddPromissoryNoteIDs(ids...)
	return _u
}

// AddPromissoryNotes adds the "promissory_notes" edges to the PromissoryNote entity.
func (_u *DeviceAssignmentUpdate) AddPromissoryNotes(v ...*PromissoryNote) *DeviceAssignmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromissoryNoteIDs(ids...)
}

// Mutation returns the DeviceAssignmentMutation object of the builder.
func (_u *DeviceAssignmentUpdate) Mutation() *DeviceAssignmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DeviceAssignmentUpdate) ClearPatient() *DeviceAssignmentUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *DeviceAssignmentUpdate) ClearInventoryItem() *DeviceAssignmentUpdate {
	_u.mutation.ClearInventoryItem()
	return _u
}

// ClearPayments clears all "payments" edges to the PaymentRecord entity.
func (_u *DeviceAssignmentUpdate) ClearPayments() *DeviceAssignmentUpdate {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to PaymentRecord entities by IDs.
func (_u *DeviceAssignmentUpdate) RemovePaymentIDs(ids ...uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to PaymentRecord entities.
func (_u *DeviceAssignmentUpdate) RemovePayments(v ...*PaymentRecord) *DeviceAssignmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearPromissoryNotes clears all "promissory_notes" edges to the PromissoryNote entity.
func (_u *DeviceAssignmentUpdate) ClearPromissoryNotes() *DeviceAssignmentUpdate {
	_u.mutation.ClearPromissoryNotes()
	return _u
}

// RemovePromissoryNoteIDs removes the "promissory_notes" edge to PromissoryNote entities by IDs.
func (_u *DeviceAssignmentUpdate) RemovePromissoryNoteIDs(ids ...uuid.UUID) *DeviceAssignmentUpdate {
	_u.mutation.RemovePromissoryNoteIDs(ids...)
	return _u
}

// RemovePromissoryNotes removes "promissory_notes" edges to PromissoryNote entities.
func (_u *DeviceAssignmentUpdate) RemovePromissoryNotes(v ...*PromissoryNote) *DeviceAssignmentUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromissoryNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeviceAssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeviceAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceAssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deviceassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceAssignmentUpdate) check() error {
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := deviceassignment.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := deviceassignment.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SgkSchemeKey(); ok {
		if err := deviceassignment.SgkSchemeKeyValidator(v); err != nil {
			return &ValidationError{Name: "sgk_scheme_key", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.sgk_scheme_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountType(); ok {
		if err := deviceassignment.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.discount_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := deviceassignment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := deviceassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DeviceAssignment.patient"`)
	}
	if _u.mutation.InventoryItemCleared() && len(_u.mutation.InventoryItemIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DeviceAssignment.inventory_item"`)
	}
	return nil
}

func (_u *DeviceAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deviceassignment.Table, deviceassignment.Columns, sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(deviceassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deviceassignment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deviceassignment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(deviceassignment.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(deviceassignment.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(deviceassignment.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ListPrice(); ok {
		_spec.SetField(deviceassignment.FieldListPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListPrice(); ok {
		_spec.AddField(deviceassignment.FieldListPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SgkSchemeKey(); ok {
		_spec.SetField(deviceassignment.FieldSgkSchemeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SgkReduction(); ok {
		_spec.SetField(deviceassignment.FieldSgkReduction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSgkReduction(); ok {
		_spec.AddField(deviceassignment.FieldSgkReduction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountType(); ok {
		_spec.SetField(deviceassignment.FieldDiscountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscountValue(); ok {
		_spec.SetField(deviceassignment.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountValue(); ok {
		_spec.AddField(deviceassignment.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalePrice(); ok {
		_spec.SetField(deviceassignment.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalePrice(); ok {
		_spec.AddField(deviceassignment.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PatientPayment(); ok {
		_spec.SetField(deviceassignment.FieldPatientPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPatientPayment(); ok {
		_spec.AddField(deviceassignment.FieldPatientPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DownPayment(); ok {
		_spec.SetField(deviceassignment.FieldDownPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDownPayment(); ok {
		_spec.AddField(deviceassignment.FieldDownPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RemainingAmount(); ok {
		_spec.SetField(deviceassignment.FieldRemainingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRemainingAmount(); ok {
		_spec.AddField(deviceassignment.FieldRemainingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(deviceassignment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InstallmentCount(); ok {
		_spec.SetField(deviceassignment.FieldInstallmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstallmentCount(); ok {
		_spec.AddField(deviceassignment.FieldInstallmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyInstallment(); ok {
		_spec.SetField(deviceassignment.FieldMonthlyInstallment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyInstallment(); ok {
		_spec.AddField(deviceassignment.FieldMonthlyInstallment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deviceassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReplacedByID(); ok {
		_spec.SetField(deviceassignment.FieldReplacedByID, field.TypeUUID, value)
	}
	if _u.mutation.ReplacedByIDCleared() {
		_spec.ClearField(deviceassignment.FieldReplacedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(deviceassignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(deviceassignment.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.PatientTable,
			Columns: []string{deviceassignment.PatientColumn},
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
			Table:   deviceassignment.PatientTable,
			Columns: []string{deviceassignment.PatientColumn},
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
	if _u.mutation.InventoryItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.InventoryItemTable,
			Columns: []string{deviceassignment.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.InventoryItemTable,
			Columns: []string{deviceassignment.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromissoryNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromissoryNotesIDs(); len(nodes) > 0 && !_u.mutation.PromissoryNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromissoryNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deviceassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeviceAssignmentUpdateOne is the builder for updating a single DeviceAssignment entity.
type DeviceAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeviceAssignmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DeviceAssignmentUpdateOne) SetUpdatedAt(v time.Time) *DeviceAssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DeviceAssignmentUpdateOne) SetDeletedAt(v time.Time) *DeviceAssignmentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableDeletedAt(v *time.Time) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DeviceAssignmentUpdateOne) ClearDeletedAt() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *DeviceAssignmentUpdateOne) SetPatientID(v uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillablePatientID(v *uuid.UUID) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_u *DeviceAssignmentUpdateOne) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.SetInventoryItemID(v)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableInventoryItemID(v *uuid.UUID) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetInventoryItemID(*v)
	}
	return _u
}

// SetSerialNumber sets the "serial_number" field.
func (_u *DeviceAssignmentUpdateOne) SetSerialNumber(v string) *DeviceAssignmentUpdateOne {
	_u.mutation.SetSerialNumber(v)
	return _u
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableSerialNumber(v *string) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetSerialNumber(*v)
	}
	return _u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (_u *DeviceAssignmentUpdateOne) ClearSerialNumber() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearSerialNumber()
	return _u
}

// SetEar sets the "ear" field.
func (_u *DeviceAssignmentUpdateOne) SetEar(v deviceassignment.Ear) *DeviceAssignmentUpdateOne {
	_u.mutation.SetEar(v)
	return _u
}

// SetNillableEar sets the "ear" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableEar(v *deviceassignment.Ear) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetEar(*v)
	}
	return _u
}

// SetListPrice sets the "list_price" field.
func (_u *DeviceAssignmentUpdateOne) SetListPrice(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetListPrice()
	_u.mutation.SetListPrice(v)
	return _u
}

// SetNillableListPrice sets the "list_price" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableListPrice(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetListPrice(*v)
	}
	return _u
}

// AddListPrice adds value to the "list_price" field.
func (_u *DeviceAssignmentUpdateOne) AddListPrice(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddListPrice(v)
	return _u
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (_u *DeviceAssignmentUpdateOne) SetSgkSchemeKey(v string) *DeviceAssignmentUpdateOne {
	_u.mutation.SetSgkSchemeKey(v)
	return _u
}

// SetNillableSgkSchemeKey sets the "sgk_scheme_key" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableSgkSchemeKey(v *string) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetSgkSchemeKey(*v)
	}
	return _u
}

// SetSgkReduction sets the "sgk_reduction" field.
func (_u *DeviceAssignmentUpdateOne) SetSgkReduction(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetSgkReduction()
	_u.mutation.SetSgkReduction(v)
	return _u
}

// SetNillableSgkReduction sets the "sgk_reduction" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableSgkReduction(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetSgkReduction(*v)
	}
	return _u
}

// AddSgkReduction adds value to the "sgk_reduction" field.
func (_u *DeviceAssignmentUpdateOne) AddSgkReduction(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddSgkReduction(v)
	return _u
}

// SetDiscountType sets the "discount_type" field.
func (_u *DeviceAssignmentUpdateOne) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentUpdateOne {
	_u.mutation.SetDiscountType(v)
	return _u
}

// SetNillableDiscountType sets the "discount_type" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableDiscountType(v *deviceassignment.DiscountType) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetDiscountType(*v)
	}
	return _u
}

// SetDiscountValue sets the "discount_value" field.
func (_u *DeviceAssignmentUpdateOne) SetDiscountValue(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetDiscountValue()
	_u.mutation.SetDiscountValue(v)
	return _u
}

// SetNillableDiscountValue sets the "discount_value" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableDiscountValue(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetDiscountValue(*v)
	}
	return _u
}

// AddDiscountValue adds value to the "discount_value" field.
func (_u *DeviceAssignmentUpdateOne) AddDiscountValue(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddDiscountValue(v)
	return _u
}

// SetSalePrice sets the "sale_price" field.
func (_u *DeviceAssignmentUpdateOne) SetSalePrice(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetSalePrice()
	_u.mutation.SetSalePrice(v)
	return _u
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableSalePrice(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetSalePrice(*v)
	}
	return _u
}

// AddSalePrice adds value to the "sale_price" field.
func (_u *DeviceAssignmentUpdateOne) AddSalePrice(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddSalePrice(v)
	return _u
}

// SetPatientPayment sets the "patient_payment" field.
func (_u *DeviceAssignmentUpdateOne) SetPatientPayment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetPatientPayment()
	_u.mutation.SetPatientPayment(v)
	return _u
}

// SetNillablePatientPayment sets the "patient_payment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillablePatientPayment(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetPatientPayment(*v)
	}
	return _u
}

// AddPatientPayment adds value to the "patient_payment" field.
func (_u *DeviceAssignmentUpdateOne) AddPatientPayment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddPatientPayment(v)
	return _u
}

// SetDownPayment sets the "down_payment" field.
func (_u *DeviceAssignmentUpdateOne) SetDownPayment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetDownPayment()
	_u.mutation.SetDownPayment(v)
	return _u
}

// SetNillableDownPayment sets the "down_payment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableDownPayment(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetDownPayment(*v)
	}
	return _u
}

// AddDownPayment adds value to the "down_payment" field.
func (_u *DeviceAssignmentUpdateOne) AddDownPayment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddDownPayment(v)
	return _u
}

// SetRemainingAmount sets the "remaining_amount" field.
func (_u *DeviceAssignmentUpdateOne) SetRemainingAmount(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetRemainingAmount()
	_u.mutation.SetRemainingAmount(v)
	return _u
}

// SetNillableRemainingAmount sets the "remaining_amount" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableRemainingAmount(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetRemainingAmount(*v)
	}
	return _u
}

// AddRemainingAmount adds value to the "remaining_amount" field.
func (_u *DeviceAssignmentUpdateOne) AddRemainingAmount(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddRemainingAmount(v)
	return _u
}

// SetPaymentMethod sets the "payment_method" field.
func (_u *DeviceAssignmentUpdateOne) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentUpdateOne {
	_u.mutation.SetPaymentMethod(v)
	return _u
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillablePaymentMethod(v *deviceassignment.PaymentMethod) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetPaymentMethod(*v)
	}
	return _u
}

// SetInstallmentCount sets the "installment_count" field.
func (_u *DeviceAssignmentUpdateOne) SetInstallmentCount(v int) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetInstallmentCount()
	_u.mutation.SetInstallmentCount(v)
	return _u
}

// SetNillableInstallmentCount sets the "installment_count" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableInstallmentCount(v *int) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetInstallmentCount(*v)
	}
	return _u
}

// AddInstallmentCount adds value to the "installment_count" field.
func (_u *DeviceAssignmentUpdateOne) AddInstallmentCount(v int) *DeviceAssignmentUpdateOne {
	_u.mutation.AddInstallmentCount(v)
	return _u
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (_u *DeviceAssignmentUpdateOne) SetMonthlyInstallment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.ResetMonthlyInstallment()
	_u.mutation.SetMonthlyInstallment(v)
	return _u
}

// SetNillableMonthlyInstallment sets the "monthly_installment" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableMonthlyInstallment(v *float64) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetMonthlyInstallment(*v)
	}
	return _u
}

// AddMonthlyInstallment adds value to the "monthly_installment" field.
func (_u *DeviceAssignmentUpdateOne) AddMonthlyInstallment(v float64) *DeviceAssignmentUpdateOne {
	_u.mutation.AddMonthlyInstallment(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeviceAssignmentUpdateOne) SetStatus(v deviceassignment.Status) *DeviceAssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableStatus(v *deviceassignment.Status) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetReplacedByID sets the "replaced_by_id" field.
func (_u *DeviceAssignmentUpdateOne) SetReplacedByID(v uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.SetReplacedByID(v)
	return _u
}

// SetNillableReplacedByID sets the "replaced_by_id" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableReplacedByID(v *uuid.UUID) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetReplacedByID(*v)
	}
	return _u
}

// ClearReplacedByID clears the value of the "replaced_by_id" field.
func (_u *DeviceAssignmentUpdateOne) ClearReplacedByID() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearReplacedByID()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *DeviceAssignmentUpdateOne) SetNotes(v string) *DeviceAssignmentUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *DeviceAssignmentUpdateOne) SetNillableNotes(v *string) *DeviceAssignmentUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *DeviceAssignmentUpdateOne) ClearNotes() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *DeviceAssignmentUpdateOne) SetPatient(v *Patient) *DeviceAssignmentUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *DeviceAssignmentUpdateOne) SetInventoryItem(v *InventoryItem) *DeviceAssignmentUpdateOne {
	return _u.SetInventoryItemID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_u *DeviceAssignmentUpdateOne) AddPaymentIDs(ids ...uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.AddPaymentIDs(ids...)
	return _u
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_u *DeviceAssignmentUpdateOne) AddPayments(v ...*PaymentRecord) *DeviceAssignmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentIDs(ids...)
}

// AddPromissoryNoteIDs adds the "promissory_notes" edge to the PromissoryNote entity by IDs.
func (_u *DeviceAssignmentUpdateOne) AddPromissoryNoteIDs(ids ...uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.AddPromissoryNoteIDs(ids...)
	return _u
}

// AddPromissoryNotes adds the "promissory_notes" edges to the PromissoryNote entity.
func (_u *DeviceAssignmentUpdateOne) AddPromissoryNotes(v ...*PromissoryNote) *DeviceAssignmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPromissoryNoteIDs(ids...)
}

// Mutation returns the DeviceAssignmentMutation object of the builder.
func (_u *DeviceAssignmentUpdateOne) Mutation() *DeviceAssignmentMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *DeviceAssignmentUpdateOne) ClearPatient() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *DeviceAssignmentUpdateOne) ClearInventoryItem() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearInventoryItem()
	return _u
}

// ClearPayments clears all "payments" edges to the PaymentRecord entity.
func (_u *DeviceAssignmentUpdateOne) ClearPayments() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearPayments()
	return _u
}

// RemovePaymentIDs removes the "payments" edge to PaymentRecord entities by IDs.
func (_u *DeviceAssignmentUpdateOne) RemovePaymentIDs(ids ...uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.RemovePaymentIDs(ids...)
	return _u
}

// RemovePayments removes "payments" edges to PaymentRecord entities.
func (_u *DeviceAssignmentUpdateOne) RemovePayments(v ...*PaymentRecord) *DeviceAssignmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentIDs(ids...)
}

// ClearPromissoryNotes clears all "promissory_notes" edges to the PromissoryNote entity.
func (_u *DeviceAssignmentUpdateOne) ClearPromissoryNotes() *DeviceAssignmentUpdateOne {
	_u.mutation.ClearPromissoryNotes()
	return _u
}

// RemovePromissoryNoteIDs removes the "promissory_notes" edge to PromissoryNote entities by IDs.
func (_u *DeviceAssignmentUpdateOne) RemovePromissoryNoteIDs(ids ...uuid.UUID) *DeviceAssignmentUpdateOne {
	_u.mutation.RemovePromissoryNoteIDs(ids...)
	return _u
}

// RemovePromissoryNotes removes "promissory_notes" edges to PromissoryNote entities.
func (_u *DeviceAssignmentUpdateOne) RemovePromissoryNotes(v ...*PromissoryNote) *DeviceAssignmentUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePromissoryNoteIDs(ids...)
}

// Where appends a list predicates to the DeviceAssignmentUpdate builder.
func (_u *DeviceAssignmentUpdateOne) Where(ps ...predicate.DeviceAssignment) *DeviceAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeviceAssignmentUpdateOne) Select(field string, fields ...string) *DeviceAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeviceAssignment entity.
func (_u *DeviceAssignmentUpdateOne) Save(ctx context.Context) (*DeviceAssignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeviceAssignmentUpdateOne) SaveX(ctx context.Context) *DeviceAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeviceAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeviceAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DeviceAssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := deviceassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeviceAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.SerialNumber(); ok {
		if err := deviceassignment.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.serial_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ear(); ok {
		if err := deviceassignment.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.ear": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SgkSchemeKey(); ok {
		if err := deviceassignment.SgkSchemeKeyValidator(v); err != nil {
			return &ValidationError{Name: "sgk_scheme_key", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.sgk_scheme_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DiscountType(); ok {
		if err := deviceassignment.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.discount_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PaymentMethod(); ok {
		if err := deviceassignment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.payment_method": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := deviceassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DeviceAssignment.patient"`)
	}
	if _u.mutation.InventoryItemCleared() && len(_u.mutation.InventoryItemIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "DeviceAssignment.inventory_item"`)
	}
	return nil
}

func (_u *DeviceAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *DeviceAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deviceassignment.Table, deviceassignment.Columns, sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DeviceAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deviceassignment.FieldID)
		for _, f := range fields {
			if !deviceassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != deviceassignment.FieldID {
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
		_spec.SetField(deviceassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(deviceassignment.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(deviceassignment.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SerialNumber(); ok {
		_spec.SetField(deviceassignment.FieldSerialNumber, field.TypeString, value)
	}
	if _u.mutation.SerialNumberCleared() {
		_spec.ClearField(deviceassignment.FieldSerialNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Ear(); ok {
		_spec.SetField(deviceassignment.FieldEar, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ListPrice(); ok {
		_spec.SetField(deviceassignment.FieldListPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedListPrice(); ok {
		_spec.AddField(deviceassignment.FieldListPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SgkSchemeKey(); ok {
		_spec.SetField(deviceassignment.FieldSgkSchemeKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SgkReduction(); ok {
		_spec.SetField(deviceassignment.FieldSgkReduction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSgkReduction(); ok {
		_spec.AddField(deviceassignment.FieldSgkReduction, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DiscountType(); ok {
		_spec.SetField(deviceassignment.FieldDiscountType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiscountValue(); ok {
		_spec.SetField(deviceassignment.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscountValue(); ok {
		_spec.AddField(deviceassignment.FieldDiscountValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SalePrice(); ok {
		_spec.SetField(deviceassignment.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSalePrice(); ok {
		_spec.AddField(deviceassignment.FieldSalePrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PatientPayment(); ok {
		_spec.SetField(deviceassignment.FieldPatientPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPatientPayment(); ok {
		_spec.AddField(deviceassignment.FieldPatientPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DownPayment(); ok {
		_spec.SetField(deviceassignment.FieldDownPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDownPayment(); ok {
		_spec.AddField(deviceassignment.FieldDownPayment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RemainingAmount(); ok {
		_spec.SetField(deviceassignment.FieldRemainingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRemainingAmount(); ok {
		_spec.AddField(deviceassignment.FieldRemainingAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.PaymentMethod(); ok {
		_spec.SetField(deviceassignment.FieldPaymentMethod, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.InstallmentCount(); ok {
		_spec.SetField(deviceassignment.FieldInstallmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstallmentCount(); ok {
		_spec.AddField(deviceassignment.FieldInstallmentCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MonthlyInstallment(); ok {
		_spec.SetField(deviceassignment.FieldMonthlyInstallment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMonthlyInstallment(); ok {
		_spec.AddField(deviceassignment.FieldMonthlyInstallment, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deviceassignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReplacedByID(); ok {
		_spec.SetField(deviceassignment.FieldReplacedByID, field.TypeUUID, value)
	}
	if _u.mutation.ReplacedByIDCleared() {
		_spec.ClearField(deviceassignment.FieldReplacedByID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(deviceassignment.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(deviceassignment.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.PatientTable,
			Columns: []string{deviceassignment.PatientColumn},
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
			Table:   deviceassignment.PatientTable,
			Columns: []string{deviceassignment.PatientColumn},
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
	if _u.mutation.InventoryItemCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.InventoryItemTable,
			Columns: []string{deviceassignment.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   deviceassignment.InventoryItemTable,
			Columns: []string{deviceassignment.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentsIDs(); len(nodes) > 0 && !_u.mutation.PaymentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PaymentsTable,
			Columns: []string{deviceassignment.PaymentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentrecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PromissoryNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPromissoryNotesIDs(); len(nodes) > 0 && !_u.mutation.PromissoryNotesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PromissoryNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   deviceassignment.PromissoryNotesTable,
			Columns: []string{deviceassignment.PromissoryNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(promissorynote.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DeviceAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deviceassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
