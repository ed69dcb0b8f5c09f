// Code generated by ent, DO NOT EDIT.

package deviceassignment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the deviceassignment type in the database.
	Label = "device_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldPatientID holds the string denoting the patient_id field in the database.
	FieldPatientID = "patient_id"
	// FieldInventoryItemID holds the string denoting the inventory_item_id field in the database.
	FieldInventoryItemID = "inventory_item_id"
	// FieldSerialNumber holds the string denoting the serial_number field in the database.
	FieldSerialNumber = "serial_number"
	// FieldEar holds the string denoting the ear field in the database.
	FieldEar = "ear"
	// FieldListPrice holds the string denoting the list_price field in the database.
	FieldListPrice = "list_price"
	// FieldSgkSchemeKey holds the string denoting the sgk_scheme_key field in the database.
	FieldSgkSchemeKey = "sgk_scheme_key"
	// FieldSgkReduction holds the string denoting the sgk_reduction field in the database.
	FieldSgkReduction = "sgk_reduction"
	// FieldDiscountType holds the string denoting the discount_type field in the database.
	FieldDiscountType = "discount_type"
	// FieldDiscountValue holds the string denoting the discount_value field in the database.
	FieldDiscountValue = "discount_value"
	// FieldSalePrice holds the string denoting the sale_price field in the database.
	FieldSalePrice = "sale_price"
	// FieldPatientPayment holds the string denoting the patient_payment field in the database.
	FieldPatientPayment = "patient_payment"
	// FieldDownPayment holds the string denoting the down_payment field in the database.
	FieldDownPayment = "down_payment"
	// FieldRemainingAmount holds the string denoting the remaining_amount field in the database.
	FieldRemainingAmount = "remaining_amount"
	// FieldPaymentMethod holds the string denoting the payment_method field in the database.
	FieldPaymentMethod = "payment_method"
	// FieldInstallmentCount holds the string denoting the installment_count field in the database.
	FieldInstallmentCount = "installment_count"
	// FieldMonthlyInstallment holds the string denoting the monthly_installment field in the database.
	FieldMonthlyInstallment = "monthly_installment"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldReplacedByID holds the string denoting the replaced_by_id field in the database.
	FieldReplacedByID = "replaced_by_id"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// EdgePatient holds the string denoting the patient edge name in mutations.
	EdgePatient = "patient"
	// EdgeInventoryItem holds the string denoting the inventory_item edge name in mutations.
	EdgeInventoryItem = "inventory_item"
	// EdgePayments holds the string denoting the payments edge name in mutations.
	EdgePayments = "payments"
	// EdgePromissoryNotes holds the string denoting the promissory_notes edge name in mutations.
	EdgePromissoryNotes = "promissory_notes"
	// Table holds the table name of the deviceassignment in the database.
	Table = "device_assignments"
	// PatientTable is the table that holds the patient relation/edge.
	PatientTable = "device_assignments"
	// PatientInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientInverseTable = "patients"
	// PatientColumn is the table column denoting the patient relation/edge.
	PatientColumn = "patient_id"
	// InventoryItemTable is the table that holds the inventory_item relation/edge.
	InventoryItemTable = "device_assignments"
	// InventoryItemInverseTable is the table name for the InventoryItem entity.
	// It exists in this package in order to avoid circular dependency with the "inventoryitem" package.
	InventoryItemInverseTable = "inventory_items"
	// InventoryItemColumn is the table column denoting the inventory_item relation/edge.
	InventoryItemColumn = "inventory_item_id"
	// PaymentsTable is the table that holds the payments relation/edge.
	PaymentsTable = "payment_records"
	// PaymentsInverseTable is the table name for the PaymentRecord entity.
	// It exists in this package in order to avoid circular dependency with the "paymentrecord" package.
	PaymentsInverseTable = "payment_records"
	// PaymentsColumn is the table column denoting the payments relation/edge.
	PaymentsColumn = "assignment_id"
	// PromissoryNotesTable is the table that holds the promissory_notes relation/edge.
	PromissoryNotesTable = "promissory_notes"
	// PromissoryNotesInverseTable is the table name for the PromissoryNote entity.
	// It exists in this package in order to avoid circular dependency with the "promissorynote" package.
	PromissoryNotesInverseTable = "promissory_notes"
	// PromissoryNotesColumn is the table column denoting the promissory_notes relation/edge.
	PromissoryNotesColumn = "assignment_id"
)

// Columns holds all SQL columns for deviceassignment fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldPatientID,
	FieldInventoryItemID,
	FieldSerialNumber,
	FieldEar,
	FieldListPrice,
	FieldSgkSchemeKey,
	FieldSgkReduction,
	FieldDiscountType,
	FieldDiscountValue,
	FieldSalePrice,
	FieldPatientPayment,
	FieldDownPayment,
	FieldRemainingAmount,
	FieldPaymentMethod,
	FieldInstallmentCount,
	FieldMonthlyInstallment,
	FieldStatus,
	FieldReplacedByID,
	FieldNotes,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	SerialNumberValidator func(string) error
	// DefaultSgkSchemeKey holds the default value on creation for the "sgk_scheme_key" field.
	DefaultSgkSchemeKey string
	// SgkSchemeKeyValidator is a validator for the "sgk_scheme_key" field. It is called by the builders before save.
	SgkSchemeKeyValidator func(string) error
	// DefaultSgkReduction holds the default value on creation for the "sgk_reduction" field.
	DefaultSgkReduction float64
	// DefaultDiscountValue holds the default value on creation for the "discount_value" field.
	DefaultDiscountValue float64
	// DefaultSalePrice holds the default value on creation for the "sale_price" field.
	DefaultSalePrice float64
	// DefaultPatientPayment holds the default value on creation for the "patient_payment" field.
	DefaultPatientPayment float64
	// DefaultDownPayment holds the default value on creation for the "down_payment" field.
	DefaultDownPayment float64
	// DefaultRemainingAmount holds the default value on creation for the "remaining_amount" field.
	DefaultRemainingAmount float64
	// DefaultInstallmentCount holds the default value on creation for the "installment_count" field.
	DefaultInstallmentCount int
	// DefaultMonthlyInstallment holds the default value on creation for the "monthly_installment" field.
	DefaultMonthlyInstallment float64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Ear defines the type for the "ear" enum field.
type Ear string

// Ear values.
const (
	EarLeft  Ear = "left"
	EarRight Ear = "right"
	EarBoth  Ear = "both"
)

func (e Ear) String() string {
	return string(e)
}

// EarValidator is a validator for the "ear" field enum values. It is called by the builders before save.
func EarValidator(e Ear) error {
	switch e {
	case EarLeft, EarRight, EarBoth:
		return nil
	default:
		return fmt.Errorf("deviceassignment: invalid enum value for ear field: %q", e)
	}
}

// DiscountType defines the type for the "discount_type" enum field.
type DiscountType string

// DiscountTypeNone is the default value of the DiscountType enum.
const DefaultDiscountType = DiscountTypeNone

// DiscountType values.
const (
	DiscountTypeNone       DiscountType = "none"
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeAmount     DiscountType = "amount"
)

func (dt DiscountType) String() string {
	return string(dt)
}

// DiscountTypeValidator is a validator for the "discount_type" field enum values. It is called by the builders before save.
func DiscountTypeValidator(dt DiscountType) error {
	switch dt {
	case DiscountTypeNone, DiscountTypePercentage, DiscountTypeAmount:
		return nil
	default:
		return fmt.Errorf("deviceassignment: invalid enum value for discount_type field: %q", dt)
	}
}

// PaymentMethod defines the type for the "payment_method" enum field.
type PaymentMethod string

// PaymentMethodCash is the default value of the PaymentMethod enum.
const DefaultPaymentMethod = PaymentMethodCash

// PaymentMethod values.
const (
	PaymentMethodCash           PaymentMethod = "cash"
	PaymentMethodCard           PaymentMethod = "card"
	PaymentMethodTransfer       PaymentMethod = "transfer"
	PaymentMethodInstallment    PaymentMethod = "installment"
	PaymentMethodPromissoryNote PaymentMethod = "promissory_note"
)

func (pm PaymentMethod) String() string {
	return string(pm)
}

// PaymentMethodValidator is a validator for the "payment_method" field enum values. It is called by the builders before save.
func PaymentMethodValidator(pm PaymentMethod) error {
	switch pm {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodInstallment, PaymentMethodPromissoryNote:
		return nil
	default:
		return fmt.Errorf("deviceassignment: invalid enum value for payment_method field: %q", pm)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusReplaced Status = "replaced"
	StatusReturned Status = "returned"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusReplaced, StatusReturned:
		return nil
	default:
		return fmt.Errorf("deviceassignment: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeviceAssignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByPatientID orders the results by the patient_id field.
func ByPatientID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientID, opts...).ToFunc()
}

// ByInventoryItemID orders the results by the inventory_item_id field.
func ByInventoryItemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInventoryItemID, opts...).ToFunc()
}

// BySerialNumber orders the results by the serial_number field.
func BySerialNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSerialNumber, opts...).ToFunc()
}

// ByEar orders the results by the ear field.
func ByEar(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEar, opts...).ToFunc()
}

// ByListPrice orders the results by the list_price field.
func ByListPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldListPrice, opts...).ToFunc()
}

// BySgkSchemeKey orders the results by the sgk_scheme_key field.
func BySgkSchemeKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSgkSchemeKey, opts...).ToFunc()
}

// BySgkReduction orders the results by the sgk_reduction field.
func BySgkReduction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSgkReduction, opts...).ToFunc()
}

// ByDiscountType orders the results by the discount_type field.
func ByDiscountType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountType, opts...).ToFunc()
}

// ByDiscountValue orders the results by the discount_value field.
func ByDiscountValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscountValue, opts...).ToFunc()
}

// BySalePrice orders the results by the sale_price field.
func BySalePrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSalePrice, opts...).ToFunc()
}

// ByPatientPayment orders the results by the patient_payment field.
func ByPatientPayment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatientPayment, opts...).ToFunc()
}

// ByDownPayment orders the results by the down_payment field.
func ByDownPayment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDownPayment, opts...).ToFunc()
}

// ByRemainingAmount orders the results by the remaining_amount field.
func ByRemainingAmount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemainingAmount, opts...).ToFunc()
}

// ByPaymentMethod orders the results by the payment_method field.
func ByPaymentMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPaymentMethod, opts...).ToFunc()
}

// ByInstallmentCount orders the results by the installment_count field.
func ByInstallmentCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallmentCount, opts...).ToFunc()
}

// ByMonthlyInstallment orders the results by the monthly_installment field.
func ByMonthlyInstallment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMonthlyInstallment, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByReplacedByID orders the results by the replaced_by_id field.
func ByReplacedByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplacedByID, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByPatientField orders the results by patient field.
func ByPatientField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientStep(), sql.OrderByField(field, opts...))
	}
}

// ByInventoryItemField orders the results by inventory_item field.
func ByInventoryItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInventoryItemStep(), sql.OrderByField(field, opts...))
	}
}

// ByPaymentsCount orders the results by payments count.
func ByPaymentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaymentsStep(), opts...)
	}
}

// ByPayments orders the results by payments terms.
func ByPayments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPromissoryNotesCount orders the results by promissory_notes count.
func ByPromissoryNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPromissoryNotesStep(), opts...)
	}
}

// ByPromissoryNotes orders the results by promissory_notes terms.
func ByPromissoryNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPromissoryNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
	)
}
func newInventoryItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InventoryItemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, InventoryItemTable, InventoryItemColumn),
	)
}
func newPaymentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaymentsTable, PaymentsColumn),
	)
}
func newPromissoryNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PromissoryNotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PromissoryNotesTable, PromissoryNotesColumn),
	)
}
