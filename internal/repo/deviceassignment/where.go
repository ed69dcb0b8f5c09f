// Code generated by ent, DO NOT EDIT.

package deviceassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDeletedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldPatientID, v))
}

// InventoryItemID applies equality check predicate on the "inventory_item_id" field. It's identical to InventoryItemIDEQ.
func InventoryItemID(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldInventoryItemID, v))
}

// SerialNumber applies equality check predicate on the "serial_number" field. It's identical to SerialNumberEQ.
func SerialNumber(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSerialNumber, v))
}

// ListPrice applies equality check predicate on the "list_price" field. It's identical to ListPriceEQ.
func ListPrice(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldListPrice, v))
}

// SgkSchemeKey applies equality check predicate on the "sgk_scheme_key" field. It's identical to SgkSchemeKeyEQ.
func SgkSchemeKey(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSgkSchemeKey, v))
}

// SgkReduction applies equality check predicate on the "sgk_reduction" field. It's identical to SgkReductionEQ.
func SgkReduction(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSgkReduction, v))
}

// DiscountValue applies equality check predicate on the "discount_value" field. It's identical to DiscountValueEQ.
func DiscountValue(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDiscountValue, v))
}

// SalePrice applies equality check predicate on the "sale_price" field. It's identical to SalePriceEQ.
func SalePrice(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSalePrice, v))
}

// PatientPayment applies equality check predicate on the "patient_payment" field. It's identical to PatientPaymentEQ.
func PatientPayment(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldPatientPayment, v))
}

// DownPayment applies equality check predicate on the "down_payment" field. It's identical to DownPaymentEQ.
func DownPayment(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDownPayment, v))
}

// RemainingAmount applies equality check predicate on the "remaining_amount" field. It's identical to RemainingAmountEQ.
func RemainingAmount(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldRemainingAmount, v))
}

// InstallmentCount applies equality check predicate on the "installment_count" field. It's identical to InstallmentCountEQ.
func InstallmentCount(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldInstallmentCount, v))
}

// MonthlyInstallment applies equality check predicate on the "monthly_installment" field. It's identical to MonthlyInstallmentEQ.
func MonthlyInstallment(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldMonthlyInstallment, v))
}

// ReplacedByID applies equality check predicate on the "replaced_by_id" field. It's identical to ReplacedByIDEQ.
func ReplacedByID(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldReplacedByID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotNull(FieldDeletedAt))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldPatientID, vs...))
}

// InventoryItemIDEQ applies the EQ predicate on the "inventory_item_id" field.
func InventoryItemIDEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldInventoryItemID, v))
}

// InventoryItemIDNEQ applies the NEQ predicate on the "inventory_item_id" field.
func InventoryItemIDNEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldInventoryItemID, v))
}

// InventoryItemIDIn applies the In predicate on the "inventory_item_id" field.
func InventoryItemIDIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDNotIn applies the NotIn predicate on the "inventory_item_id" field.
func InventoryItemIDNotIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldInventoryItemID, vs...))
}

// SerialNumberEQ applies the EQ predicate on the "serial_number" field.
func SerialNumberEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSerialNumber, v))
}

// SerialNumberNEQ applies the NEQ predicate on the "serial_number" field.
func SerialNumberNEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldSerialNumber, v))
}

// SerialNumberIn applies the In predicate on the "serial_number" field.
func SerialNumberIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldSerialNumber, vs...))
}

// SerialNumberNotIn applies the NotIn predicate on the "serial_number" field.
func SerialNumberNotIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldSerialNumber, vs...))
}

// SerialNumberGT applies the GT predicate on the "serial_number" field.
func SerialNumberGT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldSerialNumber, v))
}

// SerialNumberGTE applies the GTE predicate on the "serial_number" field.
func SerialNumberGTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldSerialNumber, v))
}

// SerialNumberLT applies the LT predicate on the "serial_number" field.
func SerialNumberLT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldSerialNumber, v))
}

// SerialNumberLTE applies the LTE predicate on the "serial_number" field.
func SerialNumberLTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldSerialNumber, v))
}

// SerialNumberContains applies the Contains predicate on the "serial_number" field.
func SerialNumberContains(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContains(FieldSerialNumber, v))
}

// SerialNumberHasPrefix applies the HasPrefix predicate on the "serial_number" field.
func SerialNumberHasPrefix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasPrefix(FieldSerialNumber, v))
}

// SerialNumberHasSuffix applies the HasSuffix predicate on the "serial_number" field.
func SerialNumberHasSuffix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasSuffix(FieldSerialNumber, v))
}

// SerialNumberIsNil applies the IsNil predicate on the "serial_number" field.
func SerialNumberIsNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIsNull(FieldSerialNumber))
}

// SerialNumberNotNil applies the NotNil predicate on the "serial_number" field.
func SerialNumberNotNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotNull(FieldSerialNumber))
}

// SerialNumberEqualFold applies the EqualFold predicate on the "serial_number" field.
func SerialNumberEqualFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEqualFold(FieldSerialNumber, v))
}

// SerialNumberContainsFold applies the ContainsFold predicate on the "serial_number" field.
func SerialNumberContainsFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContainsFold(FieldSerialNumber, v))
}

// EarEQ applies the EQ predicate on the "ear" field.
func EarEQ(v Ear) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldEar, v))
}

// EarNEQ applies the NEQ predicate on the "ear" field.
func EarNEQ(v Ear) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldEar, v))
}

// EarIn applies the In predicate on the "ear" field.
func EarIn(vs ...Ear) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldEar, vs...))
}

// EarNotIn applies the NotIn predicate on the "ear" field.
func EarNotIn(vs ...Ear) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldEar, vs...))
}

// ListPriceEQ applies the EQ predicate on the "list_price" field.
func ListPriceEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldListPrice, v))
}

// ListPriceNEQ applies the NEQ predicate on the "list_price" field.
func ListPriceNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldListPrice, v))
}

// ListPriceIn applies the In predicate on the "list_price" field.
func ListPriceIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldListPrice, vs...))
}

// ListPriceNotIn applies the NotIn predicate on the "list_price" field.
func ListPriceNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldListPrice, vs...))
}

// ListPriceGT applies the GT predicate on the "list_price" field.
func ListPriceGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldListPrice, v))
}

// ListPriceGTE applies the GTE predicate on the "list_price" field.
func ListPriceGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldListPrice, v))
}

// ListPriceLT applies the LT predicate on the "list_price" field.
func ListPriceLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldListPrice, v))
}

// ListPriceLTE applies the LTE predicate on the "list_price" field.
func ListPriceLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldListPrice, v))
}

// SgkSchemeKeyEQ applies the EQ predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyNEQ applies the NEQ predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyNEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyIn applies the In predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldSgkSchemeKey, vs...))
}

// SgkSchemeKeyNotIn applies the NotIn predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyNotIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldSgkSchemeKey, vs...))
}

// SgkSchemeKeyGT applies the GT predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyGT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyGTE applies the GTE predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyGTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyLT applies the LT predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyLT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyLTE applies the LTE predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyLTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyContains applies the Contains predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyContains(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContains(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyHasPrefix applies the HasPrefix predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyHasPrefix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasPrefix(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyHasSuffix applies the HasSuffix predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyHasSuffix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasSuffix(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyEqualFold applies the EqualFold predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyEqualFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEqualFold(FieldSgkSchemeKey, v))
}

// SgkSchemeKeyContainsFold applies the ContainsFold predicate on the "sgk_scheme_key" field.
func SgkSchemeKeyContainsFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContainsFold(FieldSgkSchemeKey, v))
}

// SgkReductionEQ applies the EQ predicate on the "sgk_reduction" field.
func SgkReductionEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSgkReduction, v))
}

// SgkReductionNEQ applies the NEQ predicate on the "sgk_reduction" field.
func SgkReductionNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldSgkReduction, v))
}

// SgkReductionIn applies the In predicate on the "sgk_reduction" field.
func SgkReductionIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldSgkReduction, vs...))
}

// SgkReductionNotIn applies the NotIn predicate on the "sgk_reduction" field.
func SgkReductionNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldSgkReduction, vs...))
}

// SgkReductionGT applies the GT predicate on the "sgk_reduction" field.
func SgkReductionGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldSgkReduction, v))
}

// SgkReductionGTE applies the GTE predicate on the "sgk_reduction" field.
func SgkReductionGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldSgkReduction, v))
}

// SgkReductionLT applies the LT predicate on the "sgk_reduction" field.
func SgkReductionLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldSgkReduction, v))
}

// SgkReductionLTE applies the LTE predicate on the "sgk_reduction" field.
func SgkReductionLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldSgkReduction, v))
}

// DiscountTypeEQ applies the EQ predicate on the "discount_type" field.
func DiscountTypeEQ(v DiscountType) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDiscountType, v))
}

// DiscountTypeNEQ applies the NEQ predicate on the "discount_type" field.
func DiscountTypeNEQ(v DiscountType) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldDiscountType, v))
}

// DiscountTypeIn applies the In predicate on the "discount_type" field.
func DiscountTypeIn(vs ...DiscountType) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldDiscountType, vs...))
}

// DiscountTypeNotIn applies the NotIn predicate on the "discount_type" field.
func DiscountTypeNotIn(vs ...DiscountType) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldDiscountType, vs...))
}

// DiscountValueEQ applies the EQ predicate on the "discount_value" field.
func DiscountValueEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDiscountValue, v))
}

// DiscountValueNEQ applies the NEQ predicate on the "discount_value" field.
func DiscountValueNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldDiscountValue, v))
}

// DiscountValueIn applies the In predicate on the "discount_value" field.
func DiscountValueIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldDiscountValue, vs...))
}

// DiscountValueNotIn applies the NotIn predicate on the "discount_value" field.
func DiscountValueNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldDiscountValue, vs...))
}

// DiscountValueGT applies the GT predicate on the "discount_value" field.
func DiscountValueGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldDiscountValue, v))
}

// DiscountValueGTE applies the GTE predicate on the "discount_value" field.
func DiscountValueGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldDiscountValue, v))
}

// DiscountValueLT applies the LT predicate on the "discount_value" field.
func DiscountValueLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldDiscountValue, v))
}

// DiscountValueLTE applies the LTE predicate on the "discount_value" field.
func DiscountValueLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldDiscountValue, v))
}

// SalePriceEQ applies the EQ predicate on the "sale_price" field.
func SalePriceEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldSalePrice, v))
}

// SalePriceNEQ applies the NEQ predicate on the "sale_price" field.
func SalePriceNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldSalePrice, v))
}

// SalePriceIn applies the In predicate on the "sale_price" field.
func SalePriceIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldSalePrice, vs...))
}

// SalePriceNotIn applies the NotIn predicate on the "sale_price" field.
func SalePriceNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldSalePrice, vs...))
}

// SalePriceGT applies the GT predicate on the "sale_price" field.
func SalePriceGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldSalePrice, v))
}

// SalePriceGTE applies the GTE predicate on the "sale_price" field.
func SalePriceGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldSalePrice, v))
}

// SalePriceLT applies the LT predicate on the "sale_price" field.
func SalePriceLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldSalePrice, v))
}

// SalePriceLTE applies the LTE predicate on the "sale_price" field.
func SalePriceLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldSalePrice, v))
}

// PatientPaymentEQ applies the EQ predicate on the "patient_payment" field.
func PatientPaymentEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldPatientPayment, v))
}

// PatientPaymentNEQ applies the NEQ predicate on the "patient_payment" field.
func PatientPaymentNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldPatientPayment, v))
}

// PatientPaymentIn applies the In predicate on the "patient_payment" field.
func PatientPaymentIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldPatientPayment, vs...))
}

// PatientPaymentNotIn applies the NotIn predicate on the "patient_payment" field.
func PatientPaymentNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldPatientPayment, vs...))
}

// PatientPaymentGT applies the GT predicate on the "patient_payment" field.
func PatientPaymentGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldPatientPayment, v))
}

// PatientPaymentGTE applies the GTE predicate on the "patient_payment" field.
func PatientPaymentGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldPatientPayment, v))
}

// PatientPaymentLT applies the LT predicate on the "patient_payment" field.
func PatientPaymentLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldPatientPayment, v))
}

// PatientPaymentLTE applies the LTE predicate on the "patient_payment" field.
func PatientPaymentLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldPatientPayment, v))
}

// DownPaymentEQ applies the EQ predicate on the "down_payment" field.
func DownPaymentEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldDownPayment, v))
}

// DownPaymentNEQ applies the NEQ predicate on the "down_payment" field.
func DownPaymentNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldDownPayment, v))
}

// DownPaymentIn applies the In predicate on the "down_payment" field.
func DownPaymentIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldDownPayment, vs...))
}

// DownPaymentNotIn applies the NotIn predicate on the "down_payment" field.
func DownPaymentNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldDownPayment, vs...))
}

// DownPaymentGT applies the GT predicate on the "down_payment" field.
func DownPaymentGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldDownPayment, v))
}

// DownPaymentGTE applies the GTE predicate on the "down_payment" field.
func DownPaymentGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldDownPayment, v))
}

// DownPaymentLT applies the LT predicate on the "down_payment" field.
func DownPaymentLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldDownPayment, v))
}

// DownPaymentLTE applies the LTE predicate on the "down_payment" field.
func DownPaymentLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldDownPayment, v))
}

// RemainingAmountEQ applies the EQ predicate on the "remaining_amount" field.
func RemainingAmountEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldRemainingAmount, v))
}

// RemainingAmountNEQ applies the NEQ predicate on the "remaining_amount" field.
func RemainingAmountNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldRemainingAmount, v))
}

// RemainingAmountIn applies the In predicate on the "remaining_amount" field.
func RemainingAmountIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldRemainingAmount, vs...))
}

// RemainingAmountNotIn applies the NotIn predicate on the "remaining_amount" field.
func RemainingAmountNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldRemainingAmount, vs...))
}

// RemainingAmountGT applies the GT predicate on the "remaining_amount" field.
func RemainingAmountGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldRemainingAmount, v))
}

// RemainingAmountGTE applies the GTE predicate on the "remaining_amount" field.
func RemainingAmountGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldRemainingAmount, v))
}

// RemainingAmountLT applies the LT predicate on the "remaining_amount" field.
func RemainingAmountLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldRemainingAmount, v))
}

// RemainingAmountLTE applies the LTE predicate on the "remaining_amount" field.
func RemainingAmountLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldRemainingAmount, v))
}

// PaymentMethodEQ applies the EQ predicate on the "payment_method" field.
func PaymentMethodEQ(v PaymentMethod) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldPaymentMethod, v))
}

// PaymentMethodNEQ applies the NEQ predicate on the "payment_method" field.
func PaymentMethodNEQ(v PaymentMethod) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldPaymentMethod, v))
}

// PaymentMethodIn applies the In predicate on the "payment_method" field.
func PaymentMethodIn(vs ...PaymentMethod) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldPaymentMethod, vs...))
}

// PaymentMethodNotIn applies the NotIn predicate on the "payment_method" field.
func PaymentMethodNotIn(vs ...PaymentMethod) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldPaymentMethod, vs...))
}

// InstallmentCountEQ applies the EQ predicate on the "installment_count" field.
func InstallmentCountEQ(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldInstallmentCount, v))
}

// InstallmentCountNEQ applies the NEQ predicate on the "installment_count" field.
func InstallmentCountNEQ(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldInstallmentCount, v))
}

// InstallmentCountIn applies the In predicate on the "installment_count" field.
func InstallmentCountIn(vs ...int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldInstallmentCount, vs...))
}

// InstallmentCountNotIn applies the NotIn predicate on the "installment_count" field.
func InstallmentCountNotIn(vs ...int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldInstallmentCount, vs...))
}

// InstallmentCountGT applies the GT predicate on the "installment_count" field.
func InstallmentCountGT(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldInstallmentCount, v))
}

// InstallmentCountGTE applies the GTE predicate on the "installment_count" field.
func InstallmentCountGTE(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldInstallmentCount, v))
}

// InstallmentCountLT applies the LT predicate on the "installment_count" field.
func InstallmentCountLT(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldInstallmentCount, v))
}

// InstallmentCountLTE applies the LTE predicate on the "installment_count" field.
func InstallmentCountLTE(v int) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldInstallmentCount, v))
}

// MonthlyInstallmentEQ applies the EQ predicate on the "monthly_installment" field.
func MonthlyInstallmentEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldMonthlyInstallment, v))
}

// MonthlyInstallmentNEQ applies the NEQ predicate on the "monthly_installment" field.
func MonthlyInstallmentNEQ(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldMonthlyInstallment, v))
}

// MonthlyInstallmentIn applies the In predicate on the "monthly_installment" field.
func MonthlyInstallmentIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldMonthlyInstallment, vs...))
}

// MonthlyInstallmentNotIn applies the NotIn predicate on the "monthly_installment" field.
func MonthlyInstallmentNotIn(vs ...float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldMonthlyInstallment, vs...))
}

// MonthlyInstallmentGT applies the GT predicate on the "monthly_installment" field.
func MonthlyInstallmentGT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldMonthlyInstallment, v))
}

// MonthlyInstallmentGTE applies the GTE predicate on the "monthly_installment" field.
func MonthlyInstallmentGTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldMonthlyInstallment, v))
}

// MonthlyInstallmentLT applies the LT predicate on the "monthly_installment" field.
func MonthlyInstallmentLT(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldMonthlyInstallment, v))
}

// MonthlyInstallmentLTE applies the LTE predicate on the "monthly_installment" field.
func MonthlyInstallmentLTE(v float64) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldMonthlyInstallment, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldStatus, vs...))
}

// ReplacedByIDEQ applies the EQ predicate on the "replaced_by_id" field.
func ReplacedByIDEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldReplacedByID, v))
}

// ReplacedByIDNEQ applies the NEQ predicate on the "replaced_by_id" field.
func ReplacedByIDNEQ(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldReplacedByID, v))
}

// ReplacedByIDIn applies the In predicate on the "replaced_by_id" field.
func ReplacedByIDIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldReplacedByID, vs...))
}

// ReplacedByIDNotIn applies the NotIn predicate on the "replaced_by_id" field.
func ReplacedByIDNotIn(vs ...uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldReplacedByID, vs...))
}

// ReplacedByIDGT applies the GT predicate on the "replaced_by_id" field.
func ReplacedByIDGT(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldReplacedByID, v))
}

// ReplacedByIDGTE applies the GTE predicate on the "replaced_by_id" field.
func ReplacedByIDGTE(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldReplacedByID, v))
}

// ReplacedByIDLT applies the LT predicate on the "replaced_by_id" field.
func ReplacedByIDLT(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldReplacedByID, v))
}

// ReplacedByIDLTE applies the LTE predicate on the "replaced_by_id" field.
func ReplacedByIDLTE(v uuid.UUID) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldReplacedByID, v))
}

// ReplacedByIDIsNil applies the IsNil predicate on the "replaced_by_id" field.
func ReplacedByIDIsNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIsNull(FieldReplacedByID))
}

// ReplacedByIDNotNil applies the NotNil predicate on the "replaced_by_id" field.
func ReplacedByIDNotNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotNull(FieldReplacedByID))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasInventoryItem applies the HasEdge predicate on the "inventory_item" edge.
func HasInventoryItem() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, InventoryItemTable, InventoryItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInventoryItemWith applies the HasEdge predicate on the "inventory_item" edge with a given conditions (other predicates).
func HasInventoryItemWith(preds ...predicate.InventoryItem) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := newInventoryItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPayments applies the HasEdge predicate on the "payments" edge.
func HasPayments() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentsWith applies the HasEdge predicate on the "payments" edge with a given conditions (other predicates).
func HasPaymentsWith(preds ...predicate.PaymentRecord) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := newPaymentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPromissoryNotes applies the HasEdge predicate on the "promissory_notes" edge.
func HasPromissoryNotes() predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PromissoryNotesTable, PromissoryNotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPromissoryNotesWith applies the HasEdge predicate on the "promissory_notes" edge with a given conditions (other predicates).
func HasPromissoryNotesWith(preds ...predicate.PromissoryNote) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(func(s *sql.Selector) {
		step := newPromissoryNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeviceAssignment) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeviceAssignment) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeviceAssignment) predicate.DeviceAssignment {
	return predicate.DeviceAssignment(sql.NotPredicates(p))
}
