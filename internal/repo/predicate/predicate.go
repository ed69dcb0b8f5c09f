// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Appointment is the predicate function for appointment builders.
type Appointment func(*sql.Selector)

// Branch is the predicate function for branch builders.
type Branch func(*sql.Selector)

// ClinicSetting is the predicate function for clinicsetting builders.
type ClinicSetting func(*sql.Selector)

// DeviceAssignment is the predicate function for deviceassignment builders.
type DeviceAssignment func(*sql.Selector)

// InventoryItem is the predicate function for inventoryitem builders.
type InventoryItem func(*sql.Selector)

// LoanerDevice is the predicate function for loanerdevice builders.
type LoanerDevice func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientDocument is the predicate function for patientdocument builders.
type PatientDocument func(*sql.Selector)

// PatientNote is the predicate function for patientnote builders.
type PatientNote func(*sql.Selector)

// PaymentRecord is the predicate function for paymentrecord builders.
type PaymentRecord func(*sql.Selector)

// PromissoryNote is the predicate function for promissorynote builders.
type PromissoryNote func(*sql.Selector)

// SmsMessage is the predicate function for smsmessage builders.
type SmsMessage func(*sql.Selector)

// TimelineEvent is the predicate function for timelineevent builders.
type TimelineEvent func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// UserSession is the predicate function for usersession builders.
type UserSession func(*sql.Selector)
