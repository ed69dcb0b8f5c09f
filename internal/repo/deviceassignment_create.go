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
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
)

// DeviceAssignmentCreate is the builder for creating a DeviceAssignment entity.
type DeviceAssignmentCreate struct {
	config
	mutation *DeviceAssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeviceAssignmentCreate) SetCreatedAt(v time.Time) *DeviceAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableCreatedAt(v *time.Time) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DeviceAssignmentCreate) SetUpdatedAt(v time.Time) *DeviceAssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableUpdatedAt(v *time.Time) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DeviceAssignmentCreate) SetDeletedAt(v time.Time) *DeviceAssignmentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableDeletedAt(v *time.Time) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetPatientID sets the "patient_id" field.
func (_c *DeviceAssignmentCreate) SetPatientID(v uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.SetPatientID(v)
	return _c
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (_c *DeviceAssignmentCreate) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.SetInventoryItemID(v)
	return _c
}

// SetSerialNumber sets the "serial_number" field.
func (_c *DeviceAssignmentCreate) SetSerialNumber(v string) *DeviceAssignmentCreate {
	_c.mutation.SetSerialNumber(v)
	return _c
}

// SetNillableSerialNumber sets the "serial_number" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableSerialNumber(v *string) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetSerialNumber(*v)
	}
	return _c
}

// SetEar sets the "ear" field.
func (_c *DeviceAssignmentCreate) SetEar(v deviceassignment.Ear) *DeviceAssignmentCreate {
	_c.mutation.SetEar(v)
	return _c
}

// SetListPrice sets the "list_price" field.
func (_c *DeviceAssignmentCreate) SetListPrice(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetListPrice(v)
	return _c
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (_c *DeviceAssignmentCreate) SetSgkSchemeKey(v string) *DeviceAssignmentCreate {
	_c.mutation.SetSgkSchemeKey(v)
	return _c
}

// SetNillableSgkSchemeKey sets the "sgk_scheme_key" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableSgkSchemeKey(v *string) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetSgkSchemeKey(*v)
	}
	return _c
}

// SetSgkReduction sets the "sgk_reduction" field.
func (_c *DeviceAssignmentCreate) SetSgkReduction(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetSgkReduction(v)
	return _c
}

// SetNillableSgkReduction sets the "sgk_reduction" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableSgkReduction(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetSgkReduction(*v)
	}
	return _c
}

// SetDiscountType sets the "discount_type" field.
func (_c *DeviceAssignmentCreate) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentCreate {
	_c.mutation.SetDiscountType(v)
	return _c
}

// SetNillableDiscountType sets the "discount_type" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableDiscountType(v *deviceassignment.DiscountType) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetDiscountType(*v)
	}
	return _c
}

// SetDiscountValue sets the "discount_value" field.
func (_c *DeviceAssignmentCreate) SetDiscountValue(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetDiscountValue(v)
	return _c
}

// SetNillableDiscountValue sets the "discount_value" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableDiscountValue(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetDiscountValue(*v)
	}
	return _c
}

// SetSalePrice sets the "sale_price" field.
func (_c *DeviceAssignmentCreate) SetSalePrice(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetSalePrice(v)
	return _c
}

// SetNillableSalePrice sets the "sale_price" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableSalePrice(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetSalePrice(*v)
	}
	return _c
}

// SetPatientPayment sets the "patient_payment" field.
func (_c *DeviceAssignmentCreate) SetPatientPayment(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetPatientPayment(v)
	return _c
}

// SetNillablePatientPayment sets the "patient_payment" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillablePatientPayment(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetPatientPayment(*v)
	}
	return _c
}

// SetDownPayment sets the "down_payment" field.
func (_c *DeviceAssignmentCreate) SetDownPayment(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetDownPayment(v)
	return _c
}

// SetNillableDownPayment sets the "down_payment" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableDownPayment(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetDownPayment(*v)
	}
	return _c
}

// SetRemainingAmount sets the "remaining_amount" field.
func (_c *DeviceAssignmentCreate) SetRemainingAmount(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetRemainingAmount(v)
	return _c
}

// SetNillableRemainingAmount sets the "remaining_amount" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableRemainingAmount(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetRemainingAmount(*v)
	}
	return _c
}

// SetPaymentMethod sets the "payment_method" field.
func (_c *DeviceAssignmentCreate) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentCreate {
	_c.mutation.SetPaymentMethod(v)
	return _c
}

// SetNillablePaymentMethod sets the "payment_method" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillablePaymentMethod(v *deviceassignment.PaymentMethod) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetPaymentMethod(*v)
	}
	return _c
}

// SetInstallmentCount sets the "installment_count" field.
func (_c *DeviceAssignmentCreate) SetInstallmentCount(v int) *DeviceAssignmentCreate {
	_c.mutation.SetInstallmentCount(v)
	return _c
}

// SetNillableInstallmentCount sets the "installment_count" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableInstallmentCount(v *int) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetInstallmentCount(*v)
	}
	return _c
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (_c *DeviceAssignmentCreate) SetMonthlyInstallment(v float64) *DeviceAssignmentCreate {
	_c.mutation.SetMonthlyInstallment(v)
	return _c
}

// SetNillableMonthlyInstallment sets the "monthly_installment" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableMonthlyInstallment(v *float64) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetMonthlyInstallment(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeviceAssignmentCreate) SetStatus(v deviceassignment.Status) *DeviceAssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableStatus(v *deviceassignment.Status) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetReplacedByID sets the "replaced_by_id" field.
func (_c *DeviceAssignmentCreate) SetReplacedByID(v uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.SetReplacedByID(v)
	return _c
}

// SetNillableReplacedByID sets the "replaced_by_id" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableReplacedByID(v *uuid.UUID) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetReplacedByID(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *DeviceAssignmentCreate) SetNotes(v string) *DeviceAssignmentCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableNotes(v *string) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeviceAssignmentCreate) SetID(v uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DeviceAssignmentCreate) SetNillableID(v *uuid.UUID) *DeviceAssignmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_c *DeviceAssignmentCreate) SetPatient(v *Patient) *DeviceAssignmentCreate {
	return _c.SetPatientID(v.ID)
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_c *DeviceAssignmentCreate) SetInventoryItem(v *InventoryItem) *DeviceAssignmentCreate {
	return _c.SetInventoryItemID(v.ID)
}

// AddPaymentIDs adds the "payments" edge to the PaymentRecord entity by IDs.
func (_c *DeviceAssignmentCreate) AddPaymentIDs(ids ...uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.AddPaymentIDs(ids...)
	return _c
}

// AddPayments adds the "payments" edges to the PaymentRecord entity.
func (_c *DeviceAssignmentCreate) AddPayments(v ...*PaymentRecord) *DeviceAssignmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentIDs(ids...)
}

// AddPromissoryNoteIDs adds the "promissory_notes" edge to the PromissoryNote entity by IDs.
func (_c *DeviceAssignmentCreate) AddPromissoryNoteIDs(ids ...uuid.UUID) *DeviceAssignmentCreate {
	_c.mutation.AddPromissoryNoteIDs(ids...)
	return _c
}

// AddPromissoryNotes adds the "promissory_notes" edges to the PromissoryNote entity.
func (_c *DeviceAssignmentCreate) AddPromissoryNotes(v ...*PromissoryNote) *DeviceAssignmentCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPromissoryNoteIDs(ids...)
}

// Mutation returns the DeviceAssignmentMutation object of the builder.
func (_c *DeviceAssignmentCreate) Mutation() *DeviceAssignmentMutation {
	return _c.mutation
}

// Save creates the DeviceAssignment in the database.
func (_c *DeviceAssignmentCreate) Save(ctx context.Context) (*DeviceAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeviceAssignmentCreate) SaveX(ctx context.Context) *DeviceAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeviceAssignmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deviceassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := deviceassignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.SgkSchemeKey(); !ok {
		v := deviceassignment.DefaultSgkSchemeKey
		_c.mutation.SetSgkSchemeKey(v)
	}
	if _, ok := _c.mutation.SgkReduction(); !ok {
		v := deviceassignment.DefaultSgkReduction
		_c.mutation.SetSgkReduction(v)
	}
	if _, ok := _c.mutation.DiscountType(); !ok {
		v := deviceassignment.DefaultDiscountType
		_c.mutation.SetDiscountType(v)
	}
	if _, ok := _c.mutation.DiscountValue(); !ok {
		v := deviceassignment.DefaultDiscountValue
		_c.mutation.SetDiscountValue(v)
	}
	if _, ok := _c.mutation.SalePrice(); !ok {
		v := deviceassignment.DefaultSalePrice
		_c.mutation.SetSalePrice(v)
	}
	if _, ok := _c.mutation.PatientPayment(); !ok {
		v := deviceassignment.DefaultPatientPayment
		_c.mutation.SetPatientPayment(v)
	}
	if _, ok := _c.mutation.DownPayment(); !ok {
		v := deviceassignment.DefaultDownPayment
		_c.mutation.SetDownPayment(v)
	}
	if _, ok := _c.mutation.RemainingAmount(); !ok {
		v := deviceassignment.DefaultRemainingAmount
		_c.mutation.SetRemainingAmount(v)
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		v := deviceassignment.DefaultPaymentMethod
		_c.mutation.SetPaymentMethod(v)
	}
	if _, ok := _c.mutation.InstallmentCount(); !ok {
		v := deviceassignment.DefaultInstallmentCount
		_c.mutation.SetInstallmentCount(v)
	}
	if _, ok := _c.mutation.MonthlyInstallment(); !ok {
		v := deviceassignment.DefaultMonthlyInstallment
		_c.mutation.SetMonthlyInstallment(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := deviceassignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := deviceassignment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeviceAssignmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DeviceAssignment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DeviceAssignment.updated_at"`)}
	}
	if _, ok := _c.mutation.PatientID(); !ok {
		return &ValidationError{Name: "patient_id", err: errors.New(`repo: missing required field "DeviceAssignment.patient_id"`)}
	}
	if _, ok := _c.mutation.InventoryItemID(); !ok {
		return &ValidationError{Name: "inventory_item_id", err: errors.New(`repo: missing required field "DeviceAssignment.inventory_item_id"`)}
	}
	if v, ok := _c.mutation.SerialNumber(); ok {
		if err := deviceassignment.SerialNumberValidator(v); err != nil {
			return &ValidationError{Name: "serial_number", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.serial_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Ear(); !ok {
		return &ValidationError{Name: "ear", err: errors.New(`repo: missing required field "DeviceAssignment.ear"`)}
	}
	if v, ok := _c.mutation.Ear(); ok {
		if err := deviceassignment.EarValidator(v); err != nil {
			return &ValidationError{Name: "ear", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.ear": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ListPrice(); !ok {
		return &ValidationError{Name: "list_price", err: errors.New(`repo: missing required field "DeviceAssignment.list_price"`)}
	}
	if _, ok := _c.mutation.SgkSchemeKey(); !ok {
		return &ValidationError{Name: "sgk_scheme_key", err: errors.New(`repo: missing required field "DeviceAssignment.sgk_scheme_key"`)}
	}
	if v, ok := _c.mutation.SgkSchemeKey(); ok {
		if err := deviceassignment.SgkSchemeKeyValidator(v); err != nil {
			return &ValidationError{Name: "sgk_scheme_key", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.sgk_scheme_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SgkReduction(); !ok {
		return &ValidationError{Name: "sgk_reduction", err: errors.New(`repo: missing required field "DeviceAssignment.sgk_reduction"`)}
	}
	if _, ok := _c.mutation.DiscountType(); !ok {
		return &ValidationError{Name: "discount_type", err: errors.New(`repo: missing required field "DeviceAssignment.discount_type"`)}
	}
	if v, ok := _c.mutation.DiscountType(); ok {
		if err := deviceassignment.DiscountTypeValidator(v); err != nil {
			return &ValidationError{Name: "discount_type", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.discount_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DiscountValue(); !ok {
		return &ValidationError{Name: "discount_value", err: errors.New(`repo: missing required field "DeviceAssignment.discount_value"`)}
	}
	if _, ok := _c.mutation.SalePrice(); !ok {
		return &ValidationError{Name: "sale_price", err: errors.New(`repo: missing required field "DeviceAssignment.sale_price"`)}
	}
	if _, ok := _c.mutation.PatientPayment(); !ok {
		return &ValidationError{Name: "patient_payment", err: errors.New(`repo: missing required field "DeviceAssignment.patient_payment"`)}
	}
	if _, ok := _c.mutation.DownPayment(); !ok {
		return &ValidationError{Name: "down_payment", err: errors.New(`repo: missing required field "DeviceAssignment.down_payment"`)}
	}
	if _, ok := _c.mutation.RemainingAmount(); !ok {
		return &ValidationError{Name: "remaining_amount", err: errors.New(`repo: missing required field "DeviceAssignment.remaining_amount"`)}
	}
	if _, ok := _c.mutation.PaymentMethod(); !ok {
		return &ValidationError{Name: "payment_method", err: errors.New(`repo: missing required field "DeviceAssignment.payment_method"`)}
	}
	if v, ok := _c.mutation.PaymentMethod(); ok {
		if err := deviceassignment.PaymentMethodValidator(v); err != nil {
			return &ValidationError{Name: "payment_method", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.payment_method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InstallmentCount(); !ok {
		return &ValidationError{Name: "installment_count", err: errors.New(`repo: missing required field "DeviceAssignment.installment_count"`)}
	}
	if _, ok := _c.mutation.MonthlyInstallment(); !ok {
		return &ValidationError{Name: "monthly_installment", err: errors.New(`repo: missing required field "DeviceAssignment.monthly_installment"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "DeviceAssignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deviceassignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "DeviceAssignment.status": %w`, err)}
		}
	}
	if len(_c.mutation.PatientIDs()) == 0 {
		return &ValidationError{Name: "patient", err: errors.New(`repo: missing required edge "DeviceAssignment.patient"`)}
	}
	if len(_c.mutation.InventoryItemIDs()) == 0 {
		return &ValidationError{Name: "inventory_item", err: errors.New(`repo: missing required edge "DeviceAssignment.inventory_item"`)}
	}
	return nil
}

func (_c *DeviceAssignmentCreate) sqlSave(ctx context.Context) (*DeviceAssignment, error) {
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

func (_c *DeviceAssignmentCreate) createSpec() (*DeviceAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &DeviceAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deviceassignment.Table, sqlgraph.NewFieldSpec(deviceassignment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deviceassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(deviceassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(deviceassignment.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.SerialNumber(); ok {
		_spec.SetField(deviceassignment.FieldSerialNumber, field.TypeString, value)
		_node.SerialNumber = &value
	}
	if value, ok := _c.mutation.Ear(); ok {
		_spec.SetField(deviceassignment.FieldEar, field.TypeEnum, value)
		_node.Ear = value
	}
	if value, ok := _c.mutation.ListPrice(); ok {
		_spec.SetField(deviceassignment.FieldListPrice, field.TypeFloat64, value)
		_node.ListPrice = value
	}
	if value, ok := _c.mutation.SgkSchemeKey(); ok {
		_spec.SetField(deviceassignment.FieldSgkSchemeKey, field.TypeString, value)
		_node.SgkSchemeKey = value
	}
	if value, ok := _c.mutation.SgkReduction(); ok {
		_spec.SetField(deviceassignment.FieldSgkReduction, field.TypeFloat64, value)
		_node.SgkReduction = value
	}
	if value, ok := _c.mutation.DiscountType(); ok {
		_spec.SetField(deviceassignment.FieldDiscountType, field.TypeEnum, value)
		_node.DiscountType = value
	}
	if value, ok := _c.mutation.DiscountValue(); ok {
		_spec.SetField(deviceassignment.FieldDiscountValue, field.TypeFloat64, value)
		_node.DiscountValue = value
	}
	if value, ok := _c.mutation.SalePrice(); ok {
		_spec.SetField(deviceassignment.FieldSalePrice, field.TypeFloat64, value)
		_node.SalePrice = value
	}
	if value, ok := _c.mutation.PatientPayment(); ok {
		_spec.SetField(deviceassignment.FieldPatientPayment, field.TypeFloat64, value)
		_node.PatientPayment = value
	}
	if value, ok := _c.mutation.DownPayment(); ok {
		_spec.SetField(deviceassignment.FieldDownPayment, field.TypeFloat64, value)
		_node.DownPayment = value
	}
	if value, ok := _c.mutation.RemainingAmount(); ok {
		_spec.SetField(deviceassignment.FieldRemainingAmount, field.TypeFloat64, value)
		_node.RemainingAmount = value
	}
	if value, ok := _c.mutation.PaymentMethod(); ok {
		_spec.SetField(deviceassignment.FieldPaymentMethod, field.TypeEnum, value)
		_node.PaymentMethod = value
	}
	if value, ok := _c.mutation.InstallmentCount(); ok {
		_spec.SetField(deviceassignment.FieldInstallmentCount, field.TypeInt, value)
		_node.InstallmentCount = value
	}
	if value, ok := _c.mutation.MonthlyInstallment(); ok {
		_spec.SetField(deviceassignment.FieldMonthlyInstallment, field.TypeFloat64, value)
		_node.MonthlyInstallment = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deviceassignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ReplacedByID(); ok {
		_spec.SetField(deviceassignment.FieldReplacedByID, field.TypeUUID, value)
		_node.ReplacedByID = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(deviceassignment.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.PatientIDs(); len(nodes) > 0 {
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
		_node.PatientID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InventoryItemIDs(); len(nodes) > 0 {
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
		_node.InventoryItemID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PromissoryNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceAssignment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceAssignmentCreate) OnConflict(opts ...sql.ConflictOption) *DeviceAssignmentUpsertOne {
	_c.conflict = opts
	return &DeviceAssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceAssignmentCreate) OnConflictColumns(columns ...string) *DeviceAssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceAssignmentUpsertOne{
		create: _c,
	}
}

type (
	// DeviceAssignmentUpsertOne is the builder for "upsert"-ing
	//  one DeviceAssignment node.
	DeviceAssignmentUpsertOne struct {
		create *DeviceAssignmentCreate
	}

	// DeviceAssignmentUpsert is the "OnConflict" setter.
	DeviceAssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DeviceAssignmentUpsert) SetUpdatedAt(v time.Time) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateUpdatedAt() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeviceAssignmentUpsert) SetDeletedAt(v time.Time) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateDeletedAt() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DeviceAssignmentUpsert) ClearDeletedAt() *DeviceAssignmentUpsert {
	u.SetNull(deviceassignment.FieldDeletedAt)
	return u
}

// SetPatientID sets the "patient_id" field.
func (u *DeviceAssignmentUpsert) SetPatientID(v uuid.UUID) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldPatientID, v)
	return u
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdatePatientID() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldPatientID)
	return u
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *DeviceAssignmentUpsert) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldInventoryItemID, v)
	return u
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateInventoryItemID() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldInventoryItemID)
	return u
}

// SetSerialNumber sets the "serial_number" field.
func (u *DeviceAssignmentUpsert) SetSerialNumber(v string) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldSerialNumber, v)
	return u
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateSerialNumber() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldSerialNumber)
	return u
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *DeviceAssignmentUpsert) ClearSerialNumber() *DeviceAssignmentUpsert {
	u.SetNull(deviceassignment.FieldSerialNumber)
	return u
}

// SetEar sets the "ear" field.
func (u *DeviceAssignmentUpsert) SetEar(v deviceassignment.Ear) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldEar, v)
	return u
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateEar() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldEar)
	return u
}

// SetListPrice sets the "list_price" field.
func (u *DeviceAssignmentUpsert) SetListPrice(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldListPrice, v)
	return u
}

// UpdateListPrice sets the "list_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateListPrice() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldListPrice)
	return u
}

// AddListPrice adds v to the "list_price" field.
func (u *DeviceAssignmentUpsert) AddListPrice(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldListPrice, v)
	return u
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (u *DeviceAssignmentUpsert) SetSgkSchemeKey(v string) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldSgkSchemeKey, v)
	return u
}

// UpdateSgkSchemeKey sets the "sgk_scheme_key" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateSgkSchemeKey() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldSgkSchemeKey)
	return u
}

// SetSgkReduction sets the "sgk_reduction" field.
func (u *DeviceAssignmentUpsert) SetSgkReduction(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldSgkReduction, v)
	return u
}

// UpdateSgkReduction sets the "sgk_reduction" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateSgkReduction() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldSgkReduction)
	return u
}

// AddSgkReduction adds v to the "sgk_reduction" field.
func (u *DeviceAssignmentUpsert) AddSgkReduction(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldSgkReduction, v)
	return u
}

// SetDiscountType sets the "discount_type" field.
func (u *DeviceAssignmentUpsert) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldDiscountType, v)
	return u
}

// UpdateDiscountType sets the "discount_type" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateDiscountType() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldDiscountType)
	return u
}

// SetDiscountValue sets the "discount_value" field.
func (u *DeviceAssignmentUpsert) SetDiscountValue(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldDiscountValue, v)
	return u
}

// UpdateDiscountValue sets the "discount_value" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateDiscountValue() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldDiscountValue)
	return u
}

// AddDiscountValue adds v to the "discount_value" field.
func (u *DeviceAssignmentUpsert) AddDiscountValue(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldDiscountValue, v)
	return u
}

// SetSalePrice sets the "sale_price" field.
func (u *DeviceAssignmentUpsert) SetSalePrice(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldSalePrice, v)
	return u
}

// UpdateSalePrice sets the "sale_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateSalePrice() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldSalePrice)
	return u
}

// AddSalePrice adds v to the "sale_price" field.
func (u *DeviceAssignmentUpsert) AddSalePrice(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldSalePrice, v)
	return u
}

// SetPatientPayment sets the "patient_payment" field.
func (u *DeviceAssignmentUpsert) SetPatientPayment(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldPatientPayment, v)
	return u
}

// UpdatePatientPayment sets the "patient_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdatePatientPayment() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldPatientPayment)
	return u
}

// AddPatientPayment adds v to the "patient_payment" field.
func (u *DeviceAssignmentUpsert) AddPatientPayment(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldPatientPayment, v)
	return u
}

// SetDownPayment sets the "down_payment" field.
func (u *DeviceAssignmentUpsert) SetDownPayment(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldDownPayment, v)
	return u
}

// UpdateDownPayment sets the "down_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateDownPayment() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldDownPayment)
	return u
}

// AddDownPayment adds v to the "down_payment" field.
func (u *DeviceAssignmentUpsert) AddDownPayment(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldDownPayment, v)
	return u
}

// SetRemainingAmount sets the "remaining_amount" field.
func (u *DeviceAssignmentUpsert) SetRemainingAmount(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldRemainingAmount, v)
	return u
}

// UpdateRemainingAmount sets the "remaining_amount" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateRemainingAmount() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldRemainingAmount)
	return u
}

// AddRemainingAmount adds v to the "remaining_amount" field.
func (u *DeviceAssignmentUpsert) AddRemainingAmount(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldRemainingAmount, v)
	return u
}

// SetPaymentMethod sets the "payment_method" field.
func (u *DeviceAssignmentUpsert) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldPaymentMethod, v)
	return u
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdatePaymentMethod() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldPaymentMethod)
	return u
}

// SetInstallmentCount sets the "installment_count" field.
func (u *DeviceAssignmentUpsert) SetInstallmentCount(v int) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldInstallmentCount, v)
	return u
}

// UpdateInstallmentCount sets the "installment_count" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateInstallmentCount() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldInstallmentCount)
	return u
}

// AddInstallmentCount adds v to the "installment_count" field.
func (u *DeviceAssignmentUpsert) AddInstallmentCount(v int) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldInstallmentCount, v)
	return u
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (u *DeviceAssignmentUpsert) SetMonthlyInstallment(v float64) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldMonthlyInstallment, v)
	return u
}

// UpdateMonthlyInstallment sets the "monthly_installment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateMonthlyInstallment() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldMonthlyInstallment)
	return u
}

// AddMonthlyInstallment adds v to the "monthly_installment" field.
func (u *DeviceAssignmentUpsert) AddMonthlyInstallment(v float64) *DeviceAssignmentUpsert {
	u.Add(deviceassignment.FieldMonthlyInstallment, v)
	return u
}

// SetStatus sets the "status" field.
func (u *DeviceAssignmentUpsert) SetStatus(v deviceassignment.Status) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateStatus() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldStatus)
	return u
}

// SetReplacedByID sets the "replaced_by_id" field.
func (u *DeviceAssignmentUpsert) SetReplacedByID(v uuid.UUID) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldReplacedByID, v)
	return u
}

// UpdateReplacedByID sets the "replaced_by_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateReplacedByID() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldReplacedByID)
	return u
}

// ClearReplacedByID clears the value of the "replaced_by_id" field.
func (u *DeviceAssignmentUpsert) ClearReplacedByID() *DeviceAssignmentUpsert {
	u.SetNull(deviceassignment.FieldReplacedByID)
	return u
}

// SetNotes sets the "notes" field.
func (u *DeviceAssignmentUpsert) SetNotes(v string) *DeviceAssignmentUpsert {
	u.Set(deviceassignment.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DeviceAssignmentUpsert) UpdateNotes() *DeviceAssignmentUpsert {
	u.SetExcluded(deviceassignment.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *DeviceAssignmentUpsert) ClearNotes() *DeviceAssignmentUpsert {
	u.SetNull(deviceassignment.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deviceassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeviceAssignmentUpsertOne) UpdateNewValues() *DeviceAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(deviceassignment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(deviceassignment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DeviceAssignmentUpsertOne) Ignore() *DeviceAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceAssignmentUpsertOne) DoNothing() *DeviceAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceAssignmentCreate.OnConflict
// documentation for more info.
func (u *DeviceAssignmentUpsertOne) Update(set func(*DeviceAssignmentUpsert)) *DeviceAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DeviceAssignmentUpsertOne) SetUpdatedAt(v time.Time) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateUpdatedAt() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeviceAssignmentUpsertOne) SetDeletedAt(v time.Time) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateDeletedAt() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DeviceAssignmentUpsertOne) ClearDeletedAt() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DeviceAssignmentUpsertOne) SetPatientID(v uuid.UUID) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdatePatientID() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *DeviceAssignmentUpsertOne) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateInventoryItemID() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateInventoryItemID()
	})
}

// SetSerialNumber sets the "serial_number" field.
func (u *DeviceAssignmentUpsertOne) SetSerialNumber(v string) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSerialNumber(v)
	})
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateSerialNumber() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSerialNumber()
	})
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *DeviceAssignmentUpsertOne) ClearSerialNumber() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearSerialNumber()
	})
}

// SetEar sets the "ear" field.
func (u *DeviceAssignmentUpsertOne) SetEar(v deviceassignment.Ear) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateEar() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateEar()
	})
}

// SetListPrice sets the "list_price" field.
func (u *DeviceAssignmentUpsertOne) SetListPrice(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetListPrice(v)
	})
}

// AddListPrice adds v to the "list_price" field.
func (u *DeviceAssignmentUpsertOne) AddListPrice(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddListPrice(v)
	})
}

// UpdateListPrice sets the "list_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateListPrice() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateListPrice()
	})
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (u *DeviceAssignmentUpsertOne) SetSgkSchemeKey(v string) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSgkSchemeKey(v)
	})
}

// UpdateSgkSchemeKey sets the "sgk_scheme_key" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateSgkSchemeKey() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSgkSchemeKey()
	})
}

// SetSgkReduction sets the "sgk_reduction" field.
func (u *DeviceAssignmentUpsertOne) SetSgkReduction(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSgkReduction(v)
	})
}

// AddSgkReduction adds v to the "sgk_reduction" field.
func (u *DeviceAssignmentUpsertOne) AddSgkReduction(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddSgkReduction(v)
	})
}

// UpdateSgkReduction sets the "sgk_reduction" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateSgkReduction() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSgkReduction()
	})
}

// SetDiscountType sets the "discount_type" field.
func (u *DeviceAssignmentUpsertOne) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDiscountType(v)
	})
}

// UpdateDiscountType sets the "discount_type" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateDiscountType() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDiscountType()
	})
}

// SetDiscountValue sets the "discount_value" field.
func (u *DeviceAssignmentUpsertOne) SetDiscountValue(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDiscountValue(v)
	})
}

// AddDiscountValue adds v to the "discount_value" field.
func (u *DeviceAssignmentUpsertOne) AddDiscountValue(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddDiscountValue(v)
	})
}

// UpdateDiscountValue sets the "discount_value" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateDiscountValue() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDiscountValue()
	})
}

// SetSalePrice sets the "sale_price" field.
func (u *DeviceAssignmentUpsertOne) SetSalePrice(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSalePrice(v)
	})
}

// AddSalePrice adds v to the "sale_price" field.
func (u *DeviceAssignmentUpsertOne) AddSalePrice(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddSalePrice(v)
	})
}

// UpdateSalePrice sets the "sale_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateSalePrice() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSalePrice()
	})
}

// SetPatientPayment sets the "patient_payment" field.
func (u *DeviceAssignmentUpsertOne) SetPatientPayment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPatientPayment(v)
	})
}

// AddPatientPayment adds v to the "patient_payment" field.
func (u *DeviceAssignmentUpsertOne) AddPatientPayment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddPatientPayment(v)
	})
}

// UpdatePatientPayment sets the "patient_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdatePatientPayment() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePatientPayment()
	})
}

// SetDownPayment sets the "down_payment" field.
func (u *DeviceAssignmentUpsertOne) SetDownPayment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDownPayment(v)
	})
}

// AddDownPayment adds v to the "down_payment" field.
func (u *DeviceAssignmentUpsertOne) AddDownPayment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddDownPayment(v)
	})
}

// UpdateDownPayment sets the "down_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateDownPayment() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDownPayment()
	})
}

// SetRemainingAmount sets the "remaining_amount" field.
func (u *DeviceAssignmentUpsertOne) SetRemainingAmount(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetRemainingAmount(v)
	})
}

// AddRemainingAmount adds v to the "remaining_amount" field.
func (u *DeviceAssignmentUpsertOne) AddRemainingAmount(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddRemainingAmount(v)
	})
}

// UpdateRemainingAmount sets the "remaining_amount" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateRemainingAmount() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateRemainingAmount()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *DeviceAssignmentUpsertOne) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdatePaymentMethod() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetInstallmentCount sets the "installment_count" field.
func (u *DeviceAssignmentUpsertOne) SetInstallmentCount(v int) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetInstallmentCount(v)
	})
}

// AddInstallmentCount adds v to the "installment_count" field.
func (u *DeviceAssignmentUpsertOne) AddInstallmentCount(v int) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddInstallmentCount(v)
	})
}

// UpdateInstallmentCount sets the "installment_count" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateInstallmentCount() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateInstallmentCount()
	})
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (u *DeviceAssignmentUpsertOne) SetMonthlyInstallment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetMonthlyInstallment(v)
	})
}

// AddMonthlyInstallment adds v to the "monthly_installment" field.
func (u *DeviceAssignmentUpsertOne) AddMonthlyInstallment(v float64) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddMonthlyInstallment(v)
	})
}

// UpdateMonthlyInstallment sets the "monthly_installment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateMonthlyInstallment() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateMonthlyInstallment()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceAssignmentUpsertOne) SetStatus(v deviceassignment.Status) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateStatus() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReplacedByID sets the "replaced_by_id" field.
func (u *DeviceAssignmentUpsertOne) SetReplacedByID(v uuid.UUID) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetReplacedByID(v)
	})
}

// UpdateReplacedByID sets the "replaced_by_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateReplacedByID() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateReplacedByID()
	})
}

// ClearReplacedByID clears the value of the "replaced_by_id" field.
func (u *DeviceAssignmentUpsertOne) ClearReplacedByID() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearReplacedByID()
	})
}

// SetNotes sets the "notes" field.
func (u *DeviceAssignmentUpsertOne) SetNotes(v string) *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertOne) UpdateNotes() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *DeviceAssignmentUpsertOne) ClearNotes() *DeviceAssignmentUpsertOne {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *DeviceAssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DeviceAssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceAssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DeviceAssignmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DeviceAssignmentUpsertOne.ID is not supported by MySQL driver. Use DeviceAssignmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DeviceAssignmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DeviceAssignmentCreateBulk is the builder for creating many DeviceAssignment entities in bulk.
type DeviceAssignmentCreateBulk struct {
	config
	err      error
	builders []*DeviceAssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the DeviceAssignment entities in the database.
func (_c *DeviceAssignmentCreateBulk) Save(ctx context.Context) ([]*DeviceAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeviceAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeviceAssignmentMutation)
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
func (_c *DeviceAssignmentCreateBulk) SaveX(ctx context.Context) []*DeviceAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeviceAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeviceAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DeviceAssignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DeviceAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DeviceAssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DeviceAssignmentUpsertBulk {
	_c.conflict = opts
	return &DeviceAssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DeviceAssignmentCreateBulk) OnConflictColumns(columns ...string) *DeviceAssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DeviceAssignmentUpsertBulk{
		create: _c,
	}
}

// DeviceAssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of DeviceAssignment nodes.
type DeviceAssignmentUpsertBulk struct {
	create *DeviceAssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(deviceassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DeviceAssignmentUpsertBulk) UpdateNewValues() *DeviceAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(deviceassignment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(deviceassignment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DeviceAssignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DeviceAssignmentUpsertBulk) Ignore() *DeviceAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DeviceAssignmentUpsertBulk) DoNothing() *DeviceAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DeviceAssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *DeviceAssignmentUpsertBulk) Update(set func(*DeviceAssignmentUpsert)) *DeviceAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DeviceAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DeviceAssignmentUpsertBulk) SetUpdatedAt(v time.Time) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateUpdatedAt() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DeviceAssignmentUpsertBulk) SetDeletedAt(v time.Time) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateDeletedAt() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DeviceAssignmentUpsertBulk) ClearDeletedAt() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetPatientID sets the "patient_id" field.
func (u *DeviceAssignmentUpsertBulk) SetPatientID(v uuid.UUID) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPatientID(v)
	})
}

// UpdatePatientID sets the "patient_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdatePatientID() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePatientID()
	})
}

// SetInventoryItemID sets the "inventory_item_id" field.
func (u *DeviceAssignmentUpsertBulk) SetInventoryItemID(v uuid.UUID) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetInventoryItemID(v)
	})
}

// UpdateInventoryItemID sets the "inventory_item_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateInventoryItemID() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateInventoryItemID()
	})
}

// SetSerialNumber sets the "serial_number" field.
func (u *DeviceAssignmentUpsertBulk) SetSerialNumber(v string) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSerialNumber(v)
	})
}

// UpdateSerialNumber sets the "serial_number" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateSerialNumber() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSerialNumber()
	})
}

// ClearSerialNumber clears the value of the "serial_number" field.
func (u *DeviceAssignmentUpsertBulk) ClearSerialNumber() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearSerialNumber()
	})
}

// SetEar sets the "ear" field.
func (u *DeviceAssignmentUpsertBulk) SetEar(v deviceassignment.Ear) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetEar(v)
	})
}

// UpdateEar sets the "ear" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateEar() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateEar()
	})
}

// SetListPrice sets the "list_price" field.
func (u *DeviceAssignmentUpsertBulk) SetListPrice(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetListPrice(v)
	})
}

// AddListPrice adds v to the "list_price" field.
func (u *DeviceAssignmentUpsertBulk) AddListPrice(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddListPrice(v)
	})
}

// UpdateListPrice sets the "list_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateListPrice() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateListPrice()
	})
}

// SetSgkSchemeKey sets the "sgk_scheme_key" field.
func (u *DeviceAssignmentUpsertBulk) SetSgkSchemeKey(v string) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSgkSchemeKey(v)
	})
}

// UpdateSgkSchemeKey sets the "sgk_scheme_key" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateSgkSchemeKey() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSgkSchemeKey()
	})
}

// SetSgkReduction sets the "sgk_reduction" field.
func (u *DeviceAssignmentUpsertBulk) SetSgkReduction(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSgkReduction(v)
	})
}

// AddSgkReduction adds v to the "sgk_reduction" field.
func (u *DeviceAssignmentUpsertBulk) AddSgkReduction(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddSgkReduction(v)
	})
}

// UpdateSgkReduction sets the "sgk_reduction" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateSgkReduction() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSgkReduction()
	})
}

// SetDiscountType sets the "discount_type" field.
func (u *DeviceAssignmentUpsertBulk) SetDiscountType(v deviceassignment.DiscountType) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDiscountType(v)
	})
}

// UpdateDiscountType sets the "discount_type" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateDiscountType() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDiscountType()
	})
}

// SetDiscountValue sets the "discount_value" field.
func (u *DeviceAssignmentUpsertBulk) SetDiscountValue(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDiscountValue(v)
	})
}

// AddDiscountValue adds v to the "discount_value" field.
func (u *DeviceAssignmentUpsertBulk) AddDiscountValue(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddDiscountValue(v)
	})
}

// UpdateDiscountValue sets the "discount_value" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateDiscountValue() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDiscountValue()
	})
}

// SetSalePrice sets the "sale_price" field.
func (u *DeviceAssignmentUpsertBulk) SetSalePrice(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetSalePrice(v)
	})
}

// AddSalePrice adds v to the "sale_price" field.
func (u *DeviceAssignmentUpsertBulk) AddSalePrice(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddSalePrice(v)
	})
}

// UpdateSalePrice sets the "sale_price" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateSalePrice() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateSalePrice()
	})
}

// SetPatientPayment sets the "patient_payment" field.
func (u *DeviceAssignmentUpsertBulk) SetPatientPayment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPatientPayment(v)
	})
}

// AddPatientPayment adds v to the "patient_payment" field.
func (u *DeviceAssignmentUpsertBulk) AddPatientPayment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddPatientPayment(v)
	})
}

// UpdatePatientPayment sets the "patient_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdatePatientPayment() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePatientPayment()
	})
}

// SetDownPayment sets the "down_payment" field.
func (u *DeviceAssignmentUpsertBulk) SetDownPayment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetDownPayment(v)
	})
}

// AddDownPayment adds v to the "down_payment" field.
func (u *DeviceAssignmentUpsertBulk) AddDownPayment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddDownPayment(v)
	})
}

// UpdateDownPayment sets the "down_payment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateDownPayment() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateDownPayment()
	})
}

// SetRemainingAmount sets the "remaining_amount" field.
func (u *DeviceAssignmentUpsertBulk) SetRemainingAmount(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetRemainingAmount(v)
	})
}

// AddRemainingAmount adds v to the "remaining_amount" field.
func (u *DeviceAssignmentUpsertBulk) AddRemainingAmount(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddRemainingAmount(v)
	})
}

// UpdateRemainingAmount sets the "remaining_amount" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateRemainingAmount() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateRemainingAmount()
	})
}

// SetPaymentMethod sets the "payment_method" field.
func (u *DeviceAssignmentUpsertBulk) SetPaymentMethod(v deviceassignment.PaymentMethod) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetPaymentMethod(v)
	})
}

// UpdatePaymentMethod sets the "payment_method" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdatePaymentMethod() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdatePaymentMethod()
	})
}

// SetInstallmentCount sets the "installment_count" field.
func (u *DeviceAssignmentUpsertBulk) SetInstallmentCount(v int) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetInstallmentCount(v)
	})
}

// AddInstallmentCount adds v to the "installment_count" field.
func (u *DeviceAssignmentUpsertBulk) AddInstallmentCount(v int) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddInstallmentCount(v)
	})
}

// UpdateInstallmentCount sets the "installment_count" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateInstallmentCount() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateInstallmentCount()
	})
}

// SetMonthlyInstallment sets the "monthly_installment" field.
func (u *DeviceAssignmentUpsertBulk) SetMonthlyInstallment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetMonthlyInstallment(v)
	})
}

// AddMonthlyInstallment adds v to the "monthly_installment" field.
func (u *DeviceAssignmentUpsertBulk) AddMonthlyInstallment(v float64) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.AddMonthlyInstallment(v)
	})
}

// UpdateMonthlyInstallment sets the "monthly_installment" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateMonthlyInstallment() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateMonthlyInstallment()
	})
}

// SetStatus sets the "status" field.
func (u *DeviceAssignmentUpsertBulk) SetStatus(v deviceassignment.Status) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateStatus() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateStatus()
	})
}

// SetReplacedByID sets the "replaced_by_id" field.
func (u *DeviceAssignmentUpsertBulk) SetReplacedByID(v uuid.UUID) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetReplacedByID(v)
	})
}

// UpdateReplacedByID sets the "replaced_by_id" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateReplacedByID() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateReplacedByID()
	})
}

// ClearReplacedByID clears the value of the "replaced_by_id" field.
func (u *DeviceAssignmentUpsertBulk) ClearReplacedByID() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearReplacedByID()
	})
}

// SetNotes sets the "notes" field.
func (u *DeviceAssignmentUpsertBulk) SetNotes(v string) *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *DeviceAssignmentUpsertBulk) UpdateNotes() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *DeviceAssignmentUpsertBulk) ClearNotes() *DeviceAssignmentUpsertBulk {
	return u.Update(func(s *DeviceAssignmentUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *DeviceAssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DeviceAssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DeviceAssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DeviceAssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
