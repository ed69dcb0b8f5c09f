// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
)

// LoanerDevice is the model entity for the LoanerDevice schema.
type LoanerDevice struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// PatientID holds the value of the "patient_id" field.
	PatientID uuid.UUID `json:"patient_id,omitempty"`
	// InventoryItemID holds the value of the "inventory_item_id" field.
	InventoryItemID uuid.UUID `json:"inventory_item_id,omitempty"`
	// SerialNumber holds the value of the "serial_number" field.
	SerialNumber *string `json:"serial_number,omitempty"`
	// Ear holds the value of the "ear" field.
	Ear loanerdevice.Ear `json:"ear,omitempty"`
	// Status holds the value of the "status" field.
	Status loanerdevice.Status `json:"status,omitempty"`
	// IssuedAt holds the value of the "issued_at" field.
	IssuedAt time.Time `json:"issued_at,omitempty"`
	// ReturnedAt holds the value of the "returned_at" field.
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LoanerDeviceQuery when eager-loading is set.
	Edges        LoanerDeviceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LoanerDeviceEdges holds the relations/edges for other nodes in the graph.
type LoanerDeviceEdges struct {
	// Patient holds the value of the patient edge.
	Patient *Patient `json:"patient,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PatientOrErr returns the Patient value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LoanerDeviceEdges) PatientOrErr() (*Patient, error) {
	if e.Patient != nil {
		return e.Patient, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: patient.Label}
	}
	return nil, &NotLoadedError{edge: "patient"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LoanerDevice) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case loanerdevice.FieldSerialNumber, loanerdevice.FieldEar, loanerdevice.FieldStatus, loanerdevice.FieldNotes:
			values[i] = new(sql.NullString)
		case loanerdevice.FieldCreatedAt, loanerdevice.FieldUpdatedAt, loanerdevice.FieldIssuedAt, loanerdevice.FieldReturnedAt:
			values[i] = new(sql.NullTime)
		case loanerdevice.FieldID, loanerdevice.FieldPatientID, loanerdevice.FieldInventoryItemID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LoanerDevice fields.
func (_m *LoanerDevice) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case loanerdevice.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case loanerdevice.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case loanerdevice.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case loanerdevice.FieldPatientID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field patient_id", values[i])
			} else if value != nil {
				_m.PatientID = *value
			}
		case loanerdevice.FieldInventoryItemID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field inventory_item_id", values[i])
			} else if value != nil {
				_m.InventoryItemID = *value
			}
		case loanerdevice.FieldSerialNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field serial_number", values[i])
			} else if value.Valid {
				_m.SerialNumber = new(string)
				*_m.SerialNumber = value.String
			}
		case loanerdevice.FieldEar:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ear", values[i])
			} else if value.Valid {
				_m.Ear = loanerdevice.Ear(value.String)
			}
		case loanerdevice.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = loanerdevice.Status(value.String)
			}
		case loanerdevice.FieldIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field issued_at", values[i])
			} else if value.Valid {
				_m.IssuedAt = value.Time
			}
		case loanerdevice.FieldReturnedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field returned_at", values[i])
			} else if value.Valid {
				_m.ReturnedAt = new(time.Time)
				*_m.ReturnedAt = value.Time
			}
		case loanerdevice.FieldNotes:
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

// Value returns the ent.Value that was dynamically selected and assigned to the LoanerDevice.
// This includes values selected through modifiers, order, etc.
func (_m *LoanerDevice) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPatient queries the "patient" edge of the LoanerDevice entity.
func (_m *LoanerDevice) QueryPatient() *PatientQuery {
	return NewLoanerDeviceClient(_m.config).QueryPatient(_m)
}

// Update returns a builder for updating this LoanerDevice.
// Note that you need to call LoanerDevice.Unwrap() before calling this method if this LoanerDevice
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LoanerDevice) Update() *LoanerDeviceUpdateOne {
	return NewLoanerDeviceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LoanerDevice entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LoanerDevice) Unwrap() *LoanerDevice {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: LoanerDevice is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LoanerDevice) String() string {
	var builder strings.Builder
	builder.WriteString("LoanerDevice(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
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
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("issued_at=")
	builder.WriteString(_m.IssuedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ReturnedAt; v != nil {
		builder.WriteString("returned_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// LoanerDevices is a parsable slice of LoanerDevice.
type LoanerDevices []*LoanerDevice
