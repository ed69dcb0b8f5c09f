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
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
)

// PaymentRecord is the model entity for the PaymentRecord schema.
type PaymentRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID uuid.UUID `json:"assignment_id,omitempty"`
	// Amount holds the value of the "amount" field.
	Amount float64 `json:"amount,omitempty"`
	// Method holds the value of the "method" field.
	Method paymentrecord.Method `json:"method,omitempty"`
	// PaidAt holds the value of the "paid_at" field.
	PaidAt time.Time `json:"paid_at,omitempty"`
	// POS slip / transfer reference
	Reference *string `json:"reference,omitempty"`
	// RecordedBy holds the value of the "recorded_by" field.
	RecordedBy *uuid.UUID `json:"recorded_by,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentRecordQuery when eager-loading is set.
	Edges        PaymentRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentRecordEdges holds the relations/edges for other nodes in the graph.
type PaymentRecordEdges struct {
	// Assignment holds the value of the assignment edge.
	Assignment *DeviceAssignment `json:"assignment,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AssignmentOrErr returns the Assignment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentRecordEdges) AssignmentOrErr() (*DeviceAssignment, error) {
	if e.Assignment != nil {
		return e.Assignment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: deviceassignment.Label}
	}
	return nil, &NotLoadedError{edge: "assignment"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldRecordedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case paymentrecord.FieldAmount:
			values[i] = new(sql.NullFloat64)
		case paymentrecord.FieldMethod, paymentrecord.FieldReference:
			values[i] = new(sql.NullString)
		case paymentrecord.FieldCreatedAt, paymentrecord.FieldPaidAt:
			values[i] = new(sql.NullTime)
		case paymentrecord.FieldID, paymentrecord.FieldAssignmentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentRecord fields.
func (_m *PaymentRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentrecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paymentrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paymentrecord.FieldAssignmentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value != nil {
				_m.AssignmentID = *value
			}
		case paymentrecord.FieldAmount:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field amount", values[i])
			} else if value.Valid {
				_m.Amount = value.Float64
			}
		case paymentrecord.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = paymentrecord.Method(value.String)
			}
		case paymentrecord.FieldPaidAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field paid_at", values[i])
			} else if value.Valid {
				_m.PaidAt = value.Time
			}
		case paymentrecord.FieldReference:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reference", values[i])
			} else if value.Valid {
				_m.Reference = new(string)
				*_m.Reference = value.String
			}
		case paymentrecord.FieldRecordedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_by", values[i])
			} else if value.Valid {
				_m.RecordedBy = new(uuid.UUID)
				*_m.RecordedBy = *value.S.(*uuid.UUID)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAssignment queries the "assignment" edge of the PaymentRecord entity.
func (_m *PaymentRecord) QueryAssignment() *DeviceAssignmentQuery {
	return NewPaymentRecordClient(_m.config).QueryAssignment(_m)
}

// Update returns a builder for updating this PaymentRecord.
// Note that you need to call PaymentRecord.Unwrap() before calling this method if this PaymentRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentRecord) Update() *PaymentRecordUpdateOne {
	return NewPaymentRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentRecord) Unwrap() *PaymentRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: PaymentRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.AssignmentID))
	builder.WriteString(", ")
	builder.WriteString("amount=")
	builder.WriteString(fmt.Sprintf("%v", _m.Amount))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(fmt.Sprintf("%v", _m.Method))
	builder.WriteString(", ")
	builder.WriteString("paid_at=")
	builder.WriteString(_m.PaidAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.Reference; v != nil {
		builder.WriteString("reference=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RecordedBy; v != nil {
		builder.WriteString("recorded_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// PaymentRecords is a parsable slice of PaymentRecord.
type PaymentRecords []*PaymentRecord
