// Code generated by ent, DO NOT EDIT.

package loanerdevice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldUpdatedAt, v))
}

// PatientID applies equality check predicate on the "patient_id" field. It's identical to PatientIDEQ.
func PatientID(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldPatientID, v))
}

// InventoryItemID applies equality check predicate on the "inventory_item_id" field. It's identical to InventoryItemIDEQ.
func InventoryItemID(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldInventoryItemID, v))
}

// SerialNumber applies equality check predicate on the "serial_number" field. It's identical to SerialNumberEQ.
func SerialNumber(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldSerialNumber, v))
}

// IssuedAt applies equality check predicate on the "issued_at" field. It's identical to IssuedAtEQ.
func IssuedAt(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldIssuedAt, v))
}

// ReturnedAt applies equality check predicate on the "returned_at" field. It's identical to ReturnedAtEQ.
func ReturnedAt(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldReturnedAt, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldUpdatedAt, v))
}

// PatientIDEQ applies the EQ predicate on the "patient_id" field.
func PatientIDEQ(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldPatientID, v))
}

// PatientIDNEQ applies the NEQ predicate on the "patient_id" field.
func PatientIDNEQ(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldPatientID, v))
}

// PatientIDIn applies the In predicate on the "patient_id" field.
func PatientIDIn(vs ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldPatientID, vs...))
}

// PatientIDNotIn applies the NotIn predicate on the "patient_id" field.
func PatientIDNotIn(vs ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldPatientID, vs...))
}

// InventoryItemIDEQ applies the EQ predicate on the "inventory_item_id" field.
func InventoryItemIDEQ(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldInventoryItemID, v))
}

// InventoryItemIDNEQ applies the NEQ predicate on the "inventory_item_id" field.
func InventoryItemIDNEQ(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldInventoryItemID, v))
}

// InventoryItemIDIn applies the In predicate on the "inventory_item_id" field.
func InventoryItemIDIn(vs ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDNotIn applies the NotIn predicate on the "inventory_item_id" field.
func InventoryItemIDNotIn(vs ...uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldInventoryItemID, vs...))
}

// InventoryItemIDGT applies the GT predicate on the "inventory_item_id" field.
func InventoryItemIDGT(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldInventoryItemID, v))
}

// InventoryItemIDGTE applies the GTE predicate on the "inventory_item_id" field.
func InventoryItemIDGTE(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldInventoryItemID, v))
}

// InventoryItemIDLT applies the LT predicate on the "inventory_item_id" field.
func InventoryItemIDLT(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldInventoryItemID, v))
}

// InventoryItemIDLTE applies the LTE predicate on the "inventory_item_id" field.
func InventoryItemIDLTE(v uuid.UUID) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldInventoryItemID, v))
}

// SerialNumberEQ applies the EQ predicate on the "serial_number" field.
func SerialNumberEQ(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldSerialNumber, v))
}

// SerialNumberNEQ applies the NEQ predicate on the "serial_number" field.
func SerialNumberNEQ(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldSerialNumber, v))
}

// SerialNumberIn applies the In predicate on the "serial_number" field.
func SerialNumberIn(vs ...string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldSerialNumber, vs...))
}

// SerialNumberNotIn applies the NotIn predicate on the "serial_number" field.
func SerialNumberNotIn(vs ...string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldSerialNumber, vs...))
}

// SerialNumberGT applies the GT predicate on the "serial_number" field.
func SerialNumberGT(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldSerialNumber, v))
}

// SerialNumberGTE applies the GTE predicate on the "serial_number" field.
func SerialNumberGTE(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldSerialNumber, v))
}

// SerialNumberLT applies the LT predicate on the "serial_number" field.
func SerialNumberLT(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldSerialNumber, v))
}

// SerialNumberLTE applies the LTE predicate on the "serial_number" field.
func SerialNumberLTE(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldSerialNumber, v))
}

// SerialNumberContains applies the Contains predicate on the "serial_number" field.
func SerialNumberContains(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldContains(FieldSerialNumber, v))
}

// SerialNumberHasPrefix applies the HasPrefix predicate on the "serial_number" field.
func SerialNumberHasPrefix(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldHasPrefix(FieldSerialNumber, v))
}

// SerialNumberHasSuffix applies the HasSuffix predicate on the "serial_number" field.
func SerialNumberHasSuffix(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldHasSuffix(FieldSerialNumber, v))
}

// SerialNumberIsNil applies the IsNil predicate on the "serial_number" field.
func SerialNumberIsNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIsNull(FieldSerialNumber))
}

// SerialNumberNotNil applies the NotNil predicate on the "serial_number" field.
func SerialNumberNotNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotNull(FieldSerialNumber))
}

// SerialNumberEqualFold applies the EqualFold predicate on the "serial_number" field.
func SerialNumberEqualFold(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEqualFold(FieldSerialNumber, v))
}

// SerialNumberContainsFold applies the ContainsFold predicate on the "serial_number" field.
func SerialNumberContainsFold(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldContainsFold(FieldSerialNumber, v))
}

// EarEQ applies the EQ predicate on the "ear" field.
func EarEQ(v Ear) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldEar, v))
}

// EarNEQ applies the NEQ predicate on the "ear" field.
func EarNEQ(v Ear) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldEar, v))
}

// EarIn applies the In predicate on the "ear" field.
func EarIn(vs ...Ear) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldEar, vs...))
}

// EarNotIn applies the NotIn predicate on the "ear" field.
func EarNotIn(vs ...Ear) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldEar, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldStatus, vs...))
}

// IssuedAtEQ applies the EQ predicate on the "issued_at" field.
func IssuedAtEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldIssuedAt, v))
}

// IssuedAtNEQ applies the NEQ predicate on the "issued_at" field.
func IssuedAtNEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldIssuedAt, v))
}

// IssuedAtIn applies the In predicate on the "issued_at" field.
func IssuedAtIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldIssuedAt, vs...))
}

// IssuedAtNotIn applies the NotIn predicate on the "issued_at" field.
func IssuedAtNotIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldIssuedAt, vs...))
}

// IssuedAtGT applies the GT predicate on the "issued_at" field.
func IssuedAtGT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldIssuedAt, v))
}

// IssuedAtGTE applies the GTE predicate on the "issued_at" field.
func IssuedAtGTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldIssuedAt, v))
}

// IssuedAtLT applies the LT predicate on the "issued_at" field.
func IssuedAtLT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldIssuedAt, v))
}

// IssuedAtLTE applies the LTE predicate on the "issued_at" field.
func IssuedAtLTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldIssuedAt, v))
}

// ReturnedAtEQ applies the EQ predicate on the "returned_at" field.
func ReturnedAtEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldReturnedAt, v))
}

// ReturnedAtNEQ applies the NEQ predicate on the "returned_at" field.
func ReturnedAtNEQ(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldReturnedAt, v))
}

// ReturnedAtIn applies the In predicate on the "returned_at" field.
func ReturnedAtIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldReturnedAt, vs...))
}

// ReturnedAtNotIn applies the NotIn predicate on the "returned_at" field.
func ReturnedAtNotIn(vs ...time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldReturnedAt, vs...))
}

// ReturnedAtGT applies the GT predicate on the "returned_at" field.
func ReturnedAtGT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldReturnedAt, v))
}

// ReturnedAtGTE applies the GTE predicate on the "returned_at" field.
func ReturnedAtGTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldReturnedAt, v))
}

// ReturnedAtLT applies the LT predicate on the "returned_at" field.
func ReturnedAtLT(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldReturnedAt, v))
}

// ReturnedAtLTE applies the LTE predicate on the "returned_at" field.
func ReturnedAtLTE(v time.Time) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldReturnedAt, v))
}

// ReturnedAtIsNil applies the IsNil predicate on the "returned_at" field.
func ReturnedAtIsNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIsNull(FieldReturnedAt))
}

// ReturnedAtNotNil applies the NotNil predicate on the "returned_at" field.
func ReturnedAtNotNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotNull(FieldReturnedAt))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.FieldContainsFold(FieldNotes, v))
}

// HasPatient applies the HasEdge predicate on the "patient" edge.
func HasPatient() predicate.LoanerDevice {
	return predicate.LoanerDevice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PatientTable, PatientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPatientWith applies the HasEdge predicate on the "patient" edge with a given conditions (other predicates).
func HasPatientWith(preds ...predicate.Patient) predicate.LoanerDevice {
	return predicate.LoanerDevice(func(s *sql.Selector) {
		step := newPatientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LoanerDevice) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LoanerDevice) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LoanerDevice) predicate.LoanerDevice {
	return predicate.LoanerDevice(sql.NotPredicates(p))
}
