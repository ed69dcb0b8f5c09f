// Code generated by ent, DO NOT EDIT.

package patient

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the patient type in the database.
	Label = "patient"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldBranchID holds the string denoting the branch_id field in the database.
	FieldBranchID = "branch_id"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldTaxIDEncrypted holds the string denoting the tax_id_encrypted field in the database.
	FieldTaxIDEncrypted = "tax_id_encrypted"
	// FieldBirthDate holds the string denoting the birth_date field in the database.
	FieldBirthDate = "birth_date"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldFileNumber holds the string denoting the file_number field in the database.
	FieldFileNumber = "file_number"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldSgkStatus holds the string denoting the sgk_status field in the database.
	FieldSgkStatus = "sgk_status"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldNotesSummary holds the string denoting the notes_summary field in the database.
	FieldNotesSummary = "notes_summary"
	// EdgeBranch holds the string denoting the branch edge name in mutations.
	EdgeBranch = "branch"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeLoaners holds the string denoting the loaners edge name in mutations.
	EdgeLoaners = "loaners"
	// EdgeNotes holds the string denoting the notes edge name in mutations.
	EdgeNotes = "notes"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeAppointments holds the string denoting the appointments edge name in mutations.
	EdgeAppointments = "appointments"
	// EdgeTimeline holds the string denoting the timeline edge name in mutations.
	EdgeTimeline = "timeline"
	// Table holds the table name of the patient in the database.
	Table = "patients"
	// BranchTable is the table that holds the branch relation/edge.
	BranchTable = "patients"
	// BranchInverseTable is the table name for the Branch entity.
	// It exists in this package in order to avoid circular dependency with the "branch" package.
	BranchInverseTable = "branches"
	// BranchColumn is the table column denoting the branch relation/edge.
	BranchColumn = "branch_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "device_assignments"
	// AssignmentsInverseTable is the table name for the DeviceAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "deviceassignment" package.
	AssignmentsInverseTable = "device_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "patient_id"
	// LoanersTable is the table that holds the loaners relation/edge.
	LoanersTable = "loaner_devices"
	// LoanersInverseTable is the table name for the LoanerDevice entity.
	// It exists in this package in order to avoid circular dependency with the "loanerdevice" package.
	LoanersInverseTable = "loaner_devices"
	// LoanersColumn is the table column denoting the loaners relation/edge.
	LoanersColumn = "patient_id"
	// NotesTable is the table that holds the notes relation/edge.
	NotesTable = "patient_notes"
	// NotesInverseTable is the table name for the PatientNote entity.
	// It exists in this package in order to avoid circular dependency with the "patientnote" package.
	NotesInverseTable = "patient_notes"
	// NotesColumn is the table column denoting the notes relation/edge.
	NotesColumn = "patient_id"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "patient_documents"
	// DocumentsInverseTable is the table name for the PatientDocument entity.
	// It exists in this package in order to avoid circular dependency with the "patientdocument" package.
	DocumentsInverseTable = "patient_documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "patient_id"
	// AppointmentsTable is the table that holds the appointments relation/edge.
	AppointmentsTable = "appointments"
	// AppointmentsInverseTable is the table name for the Appointment entity.
	// It exists in this package in order to avoid circular dependency with the "appointment" package.
	AppointmentsInverseTable = "appointments"
	// AppointmentsColumn is the table column denoting the appointments relation/edge.
	AppointmentsColumn = "patient_id"
	// TimelineTable is the table that holds the timeline relation/edge.
	TimelineTable = "timeline_events"
	// TimelineInverseTable is the table name for the TimelineEvent entity.
	// It exists in this package in order to avoid circular dependency with the "timelineevent" package.
	TimelineInverseTable = "timeline_events"
	// TimelineColumn is the table column denoting the timeline relation/edge.
	TimelineColumn = "patient_id"
)

// Columns holds all SQL columns for patient fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldBranchID,
	FieldFirstName,
	FieldLastName,
	FieldPhone,
	FieldEmail,
	FieldTaxIDEncrypted,
	FieldBirthDate,
	FieldAddress,
	FieldFileNumber,
	FieldStatus,
	FieldSgkStatus,
	FieldTags,
	FieldNotesSummary,
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
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	FileNumberValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusLead is the default value of the Status enum.
const DefaultStatus = StatusLead

// Status values.
const (
	StatusLead     Status = "lead"
	StatusActive   Status = "active"
	StatusTrial    Status = "trial"
	StatusFitted   Status = "fitted"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusLead, StatusActive, StatusTrial, StatusFitted, StatusInactive:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for status field: %q", s)
	}
}

// SgkStatus defines the type for the "sgk_status" enum field.
type SgkStatus string

// SgkStatusUnknown is the default value of the SgkStatus enum.
const DefaultSgkStatus = SgkStatusUnknown

// SgkStatus values.
const (
	SgkStatusEligible    SgkStatus = "eligible"
	SgkStatusNotEligible SgkStatus = "not_eligible"
	SgkStatusUnknown     SgkStatus = "unknown"
)

func (ss SgkStatus) String() string {
	return string(ss)
}

// SgkStatusValidator is a validator for the "sgk_status" field enum values. It is called by the builders before save.
func SgkStatusValidator(ss SgkStatus) error {
	switch ss {
	case SgkStatusEligible, SgkStatusNotEligible, SgkStatusUnknown:
		return nil
	default:
		return fmt.Errorf("patient: invalid enum value for sgk_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Patient queries.
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

// ByBranchID orders the results by the branch_id field.
func ByBranchID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBranchID, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByTaxIDEncrypted orders the results by the tax_id_encrypted field.
func ByTaxIDEncrypted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTaxIDEncrypted, opts...).ToFunc()
}

// ByBirthDate orders the results by the birth_date field.
func ByBirthDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBirthDate, opts...).ToFunc()
}

// ByAddress orders the results by the address field.
func ByAddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAddress, opts...).ToFunc()
}

// ByFileNumber orders the results by the file_number field.
func ByFileNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileNumber, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// BySgkStatus orders the results by the sgk_status field.
func BySgkStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSgkStatus, opts...).ToFunc()
}

// ByNotesSummary orders the results by the notes_summary field.
func ByNotesSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotesSummary, opts...).ToFunc()
}

// ByBranchField orders the results by branch field.
func ByBranchField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBranchStep(), sql.OrderByField(field, opts...))
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLoanersCount orders the results by loaners count.
func ByLoanersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newLoanersStep(), opts...)
	}
}

// ByLoaners orders the results by loaners terms.
func ByLoaners(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLoanersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByNotesCount orders the results by notes count.
func ByNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newNotesStep(), opts...)
	}
}

// ByNotes orders the results by notes terms.
func ByNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAppointmentsCount orders the results by appointments count.
func ByAppointmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAppointmentsStep(), opts...)
	}
}

// ByAppointments orders the results by appointments terms.
func ByAppointments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAppointmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTimelineCount orders the results by timeline count.
func ByTimelineCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTimelineStep(), opts...)
	}
}

// ByTimeline orders the results by timeline terms.
func ByTimeline(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTimelineStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBranchStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BranchInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BranchTable, BranchColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newLoanersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LoanersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, LoanersTable, LoanersColumn),
	)
}
func newNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(NotesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
	)
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newAppointmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AppointmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AppointmentsTable, AppointmentsColumn),
	)
}
func newTimelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TimelineInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TimelineTable, TimelineColumn),
	)
}
