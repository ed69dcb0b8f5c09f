// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
)

// DeviceAssignment is the model entity for the DeviceAssignment schema.
type DeviceAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// InventoryItemID holds the value of the "inventory_item_id" field.
	InventoryItemID uuid.UUID `json:"inventory_item_id,omitempty"`
	// SerialNumber holds the value of the "serial_number" field.
	SerialNumber *string `json:"serial_number,omitempty"`
	// Ear holds the value of the "ear" field.
	Ear deviceassignment.Ear `json:"ear,omitempty"`
	// Catalog price at assignment time
	ListPrice float64 `json:"list_price,omitempty"`
	// SgkSchemeKey holds the value of the "sgk_scheme_key" field.
	SgkSchemeKey string `json:"sgk_scheme_key,omitempty"`
	// Derived: total subsidy over all units
	SgkReduction float64 `json:"sgk_reduction,omitempty"`
	// DiscountType holds the value of the "discount_type" field.
	DiscountType deviceassignment.DiscountType `json:"discount_type,omitempty"`
	// DiscountValue holds the value of the "discount_value" field.
	DiscountValue float64 `json:"discount_value,omitempty"`
	// Derived: per-unit price after subsidy and discount
	SalePrice float64 `json:"sale_price,omitempty"`
	// Derived: total owed by the patient
	PatientPayment float64 `json:"patient_payment,omitempty"`
	// DownPayment holds the value of the "down_payment" field.
	DownPayment float64 `json:"down_payment,omitempty"`
	// Derived: max(0, patient_payment - down_payment)
	RemainingAmount float64 `json:"remaining_amount,omitempty"`
	// PaymentMethod holds the value of the "payment_method" field.
	PaymentMethod deviceassignment.PaymentMethod `json:"payment_method,omitempty"`
	// InstallmentCount holds the value of the "installment_count" field.
	InstallmentCount int `json:"installment_count,omitempty"`
	// Derived: remaining_amount / installment_count
	MonthlyInstallment float64 `json:"monthly_installment,omitempty"`
	// Status holds the value of the "status" field.
	Status deviceassignment.Status `json:"status,omitempty"`
	// Set on the old assignment when a replacement is created
	ReplacedByID *uuid.UUID `json:"replaced_by_id,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DeviceAssignmentQuery when eager-loading is set.
	Edges        DeviceAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DeviceAssignmentEdges holds the relations/edges for other nodes in the graph.
type DeviceAssignmentEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// InventoryItem holds the value of the inventory_item edge.
	InventoryItem *InventoryItem `json:"inventory_item,omitempty"`
	// Payments holds the value of the payments edge.
	Payments []*PaymentRecord `json:"payments,omitempty"`
	// PromissoryNotes holds the value of the promissory_notes edge.
	PromissoryNotes []*PromissoryNote `json:"promissory_notes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeviceAssignmentEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// InventoryItemOrErr returns the InventoryItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DeviceAssignmentEdges) InventoryItemOrErr() (*InventoryItem, error) {
	if e.InventoryItem != nil {
		return e.InventoryItem, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: inventoryitem.Label}
	}
	return nil, &NotLoadedError{edge: "inventory_item"}
}

// PaymentsOrErr returns the Payments value or an error if the edge
// was not loaded in eager-loading.
func (e DeviceAssignmentEdges) PaymentsOrErr() ([]*PaymentRecord, error) {
	if e.loadedTypes[2] {
		return e.Payments, nil
	}
	return nil, &NotLoadedError{edge: "payments"}
}

// PromissoryNotesOrErr returns the PromissoryNotes value or an error if the edge
// was not loaded in eager-loading.
func (e DeviceAssignmentEdges) PromissoryNotesOrErr() ([]*PromissoryNote, error) {
	if e.loadedTypes[3] {
		return e.PromissoryNotes, nil
	}
	return nil, &NotLoadedError{edge: "promissory_notes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeviceAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deviceassignment.FieldReplacedByID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case deviceassignment.FieldListPrice, deviceassignment.FieldSgkReduction, deviceassignment.FieldDiscountValue, deviceassignment.FieldSalePrice, deviceassignment.FieldPatientPayment, deviceassignment.FieldDownPayment, deviceassignment.FieldRemainingAmount, deviceassignment.FieldMonthlyInstallment:
			values[i] = new(sql.NullFloat64)
		case deviceassignment.FieldInstallmentCount:
			values[i] = new(sql.NullInt64)
		case deviceassignment.FieldSerialNumber, deviceassignment.FieldEar, deviceassignment.FieldSgkSchemeKey, deviceassignment.FieldDiscountType, deviceassignment.FieldPaymentMethod, deviceassignment.FieldStatus, deviceassignment.FieldNotes:
			values[i] = new(sql.NullString)
		case deviceassignment.FieldCreatedAt, deviceassignment.FieldUpdatedAt, deviceassignment.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		case deviceassignment.FieldID, deviceassignment.FieldPatientID, deviceassignment.FieldInventoryItemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeviceAssignment fields.
func (_m *DeviceAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deviceassignment.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case deviceassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case deviceassignment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case deviceassignment.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case deviceassignment.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case deviceassignment.FieldInventoryItemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field inventory_item_id", values[i])
			} else if value != nil {
				_m.InventoryItemID = *value
			}
		case deviceassignment.FieldSerialNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial_number", values[i])
			} else if value.Valid {
				_m.SerialNumber = new(string)
				*_m.SerialNumber = value.String
			}
		case deviceassignment.FieldEar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ear", values[i])
			} else if value.Valid {
				_m.Ear = deviceassignment.Ear(value.String)
			}
		case deviceassignment.FieldListPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field list_price", values[i])
			} else if value.Valid {
				_m.ListPrice = value.Float64
			}
		case deviceassignment.FieldSgkSchemeKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sgk_scheme_key", values[i])
			} else if value.Valid {
				_m.SgkSchemeKey = value.String
			}
		case deviceassignment.FieldSgkReduction:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sgk_reduction", values[i])
			} else if value.Valid {
				_m.SgkReduction = value.Float64
			}
		case deviceassignment.FieldDiscountType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field discount_type", values[i])
			} else if value.Valid {
				_m.DiscountType = deviceassignment.DiscountType(value.String)
			}
		case deviceassignment.FieldDiscountValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discount_value", values[i])
			} else if value.Valid {
				_m.DiscountValue = value.Float64
			}
		case deviceassignment.FieldSalePrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field sale_price", values[i])
			} else if value.Valid {
				_m.SalePrice = value.Float64
			}
		case deviceassignment.FieldPatientPayment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field patient_payment", values[i])
			} else if value.Valid {
				_m.PatientPayment = value.Float64
			}
		case deviceassignment.FieldDownPayment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field down_payment", values[i])
			} else if value.Valid {
				_m.DownPayment = value.Float64
			}
		case deviceassignment.FieldRemainingAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field remaining_amount", values[i])
			} else if value.Valid {
				_m.RemainingAmount = value.Float64
			}
		case deviceassignment.FieldPaymentMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payment_method", values[i])
			} else if value.Valid {
				_m.PaymentMethod = deviceassignment.PaymentMethod(value.String)
			}
		case deviceassignment.FieldInstallmentCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installment_count", values[i])
			} else if value.Valid {
				_m.InstallmentCount = int(value.Int64)
			}
		case deviceassignment.FieldMonthlyInstallment:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field monthly_installment", values[i])
			} else if value.Valid {
				_m.MonthlyInstallment = value.Float64
			}
		case deviceassignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deviceassignment.Status(value.String)
			}
		case deviceassignment.FieldReplacedByID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field replaced_by_id", values[i])
			} else if value.Valid {
				_m.ReplacedByID = new(uuid.UUID)
				*_m.ReplacedByID = *value.S.(*uuid.UUID)
			}
		case deviceassignment.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeviceAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *DeviceAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the DeviceAssignment entity.
func (_m *DeviceAssignment) QueryPatient() *PatientQuery {
	return NewDeviceAssignmentClient(_m.config).QueryPatient(_m)
}

// QueryInventoryItem queries the "inventory_item" edge of the DeviceAssignment entity.
func (_m *DeviceAssignment) QueryInventoryItem() *InventoryItemQuery {
	return NewDeviceAssignmentClient(_m.config).QueryInventoryItem(_m)
}

// QueryPayments queries the "payments" edge of the DeviceAssignment entity.
func (_m *DeviceAssignment) QueryPayments() *PaymentRecordQuery {
	return NewDeviceAssignmentClient(_m.config).QueryPayments(_m)
}

// QueryPromissoryNotes queries the "promissory_notes" edge of the DeviceAssignment entity.
func (_m *DeviceAssignment) QueryPromissoryNotes() *PromissoryNoteQuery {
	return NewDeviceAssignmentClient(_m.config).QueryPromissoryNotes(_m)
}

// Update returns a builder for updating this DeviceAssignment.
// Note that you need to call DeviceAssignment.Unwrap() before calling this method if this DeviceAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeviceAssignment) Update() *DeviceAssignmentUpdateOne {
	return NewDeviceAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeviceAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeviceAssignment) Unwrap() *DeviceAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: DeviceAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeviceAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("DeviceAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("patient_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientID))
	builder.WriteString(", ")
	builder.WriteString("inventory_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.InventoryItemID))
	builder.WriteString(", ")
	if v := _m.SerialNumber; v != nil {
		builder.WriteString("serial_number=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("ear=")
	builder.WriteString(fmt.Sprintf("%v", _m.Ear))
	builder.WriteString(", ")
	builder.WriteString("list_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.ListPrice))
	builder.WriteString(", ")
	builder.WriteString("sgk_scheme_key=")
	builder.WriteString(_m.SgkSchemeKey)
	builder.WriteString(", ")
	builder.WriteString("sgk_reduction=")
	builder.WriteString(fmt.Sprintf("%v", _m.SgkReduction))
	builder.WriteString(", ")
	builder.WriteString("discount_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountType))
	builder.WriteString(", ")
	builder.WriteString("discount_value=")
	builder.WriteString(fmt.Sprintf("%v", _m.DiscountValue))
	builder.WriteString(", ")
	builder.WriteString("sale_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.SalePrice))
	builder.WriteString(", ")
	builder.WriteString("patient_payment=")
	builder.WriteString(fmt.Sprintf("%v", _m.PatientPayment))
	builder.WriteString(", ")
	builder.WriteString("down_payment=")
	builder.WriteString(fmt.Sprintf("%v", _m.DownPayment))
	builder.WriteString(", ")
	builder.WriteString("remaining_amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemainingAmount))
	builder.WriteString(", ")
	builder.WriteString("payment_method=")
	builder.WriteString(fmt.Sprintf("%v", _m.PaymentMethod))
	builder.WriteString(", ")
	builder.WriteString("installment_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.InstallmentCount))
	builder.WriteString(", ")
	builder.WriteString("monthly_installment=")
	builder.WriteString(fmt.Sprintf("%v", _m.MonthlyInstallment))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ReplacedByID; v != nil {
		builder.WriteString("replaced_by_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// DeviceAssignments is a parsable slice of DeviceAssignment.
type DeviceAssignments []*DeviceAssignment
