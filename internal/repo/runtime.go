// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/google/uuid"
	"github.com/omrozmn/x-ear-sub003/internal/repo/appointment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/branch"
	"github.com/omrozmn/x-ear-sub003/internal/repo/clinicsetting"
	"github.com/omrozmn/x-ear-sub003/internal/repo/deviceassignment"
	"github.com/omrozmn/x-ear-sub003/internal/repo/inventoryitem"
	"github.com/omrozmn/x-ear-sub003/internal/repo/loanerdevice"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patient"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientdocument"
	"github.com/omrozmn/x-ear-sub003/internal/repo/patientnote"
	"github.com/omrozmn/x-ear-sub003/internal/repo/paymentrecord"
	"github.com/omrozmn/x-ear-sub003/internal/repo/promissorynote"
	"github.com/omrozmn/x-ear-sub003/internal/repo/smsmessage"
	"github.com/omrozmn/x-ear-sub003/internal/repo/timelineevent"
	"github.com/omrozmn/x-ear-sub003/internal/repo/user"
	"github.com/omrozmn/x-ear-sub003/internal/repo/usersession"
	"github.com/omrozmn/x-ear-sub003/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentMixinFields1 := appointmentMixin[1].Fields()
	_ = appointmentMixinFields1
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields1[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields1[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescDurationMinutes is the schema descriptor for duration_minutes field.
	appointmentDescDurationMinutes := appointmentFields[4].Descriptor()
	// appointment.DefaultDurationMinutes holds the default value on creation for the duration_minutes field.
	appointment.DefaultDurationMinutes = appointmentDescDurationMinutes.Default.(int)
	// appointmentDescID is the schema descriptor for id field.
	appointmentDescID := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultID holds the default value on creation for the id field.
	appointment.DefaultID = appointmentDescID.Default.(func() uuid.UUID)
	branchMixin := schema.Branch{}.Mixin()
	branchMixinFields0 := branchMixin[0].Fields()
	_ = branchMixinFields0
	branchMixinFields1 := branchMixin[1].Fields()
	_ = branchMixinFields1
	branchFields := schema.Branch{}.Fields()
	_ = branchFields
	// branchDescCreatedAt is the schema descriptor for created_at field.
	branchDescCreatedAt := branchMixinFields1[0].Descriptor()
	// branch.DefaultCreatedAt holds the default value on creation for the created_at field.
	branch.DefaultCreatedAt = branchDescCreatedAt.Default.(func() time.Time)
	// branchDescUpdatedAt is the schema descriptor for updated_at field.
	branchDescUpdatedAt := branchMixinFields1[1].Descriptor()
	// branch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	branch.DefaultUpdatedAt = branchDescUpdatedAt.Default.(func() time.Time)
	// branch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	branch.UpdateDefaultUpdatedAt = branchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// branchDescName is the schema descriptor for name field.
	branchDescName := branchFields[0].Descriptor()
	// branch.NameValidator is a validator for the "name" field. It is called by the builders before save.
	branch.NameValidator = branchDescName.Validators[0].(func(string) error)
	// branchDescCity is the schema descriptor for city field.
	branchDescCity := branchFields[1].Descriptor()
	// branch.CityValidator is a validator for the "city" field. It is called by the builders before save.
	branch.CityValidator = branchDescCity.Validators[0].(func(string) error)
	// branchDescPhone is the schema descriptor for phone field.
	branchDescPhone := branchFields[2].Descriptor()
	// branch.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	branch.PhoneValidator = branchDescPhone.Validators[0].(func(string) error)
	// branchDescIsActive is the schema descriptor for is_active field.
	branchDescIsActive := branchFields[4].Descriptor()
	// branch.DefaultIsActive holds the default value on creation for the is_active field.
	branch.DefaultIsActive = branchDescIsActive.Default.(bool)
	// branchDescID is the schema descriptor for id field.
	branchDescID := branchMixinFields0[0].Descriptor()
	// branch.DefaultID holds the default value on creation for the id field.
	branch.DefaultID = branchDescID.Default.(func() uuid.UUID)
	clinicsettingMixin := schema.ClinicSetting{}.Mixin()
	clinicsettingMixinFields0 := clinicsettingMixin[0].Fields()
	_ = clinicsettingMixinFields0
	clinicsettingMixinFields1 := clinicsettingMixin[1].Fields()
	_ = clinicsettingMixinFields1
	clinicsettingFields := schema.ClinicSetting{}.Fields()
	_ = clinicsettingFields
	// clinicsettingDescCreatedAt is the schema descriptor for created_at field.
	clinicsettingDescCreatedAt := clinicsettingMixinFields1[0].Descriptor()
	// clinicsetting.DefaultCreatedAt holds the default value on creation for the created_at field.
	clinicsetting.DefaultCreatedAt = clinicsettingDescCreatedAt.Default.(func() time.Time)
	// clinicsettingDescUpdatedAt is the schema descriptor for updated_at field.
	clinicsettingDescUpdatedAt := clinicsettingMixinFields1[1].Descriptor()
	// clinicsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clinicsetting.DefaultUpdatedAt = clinicsettingDescUpdatedAt.Default.(func() time.Time)
	// clinicsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clinicsetting.UpdateDefaultUpdatedAt = clinicsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// clinicsettingDescKey is the schema descriptor for key field.
	clinicsettingDescKey := clinicsettingFields[0].Descriptor()
	// clinicsetting.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	clinicsetting.KeyValidator = clinicsettingDescKey.Validators[0].(func(string) error)
	// clinicsettingDescID is the schema descriptor for id field.
	clinicsettingDescID := clinicsettingMixinFields0[0].Descriptor()
	// clinicsetting.DefaultID holds the default value on creation for the id field.
	clinicsetting.DefaultID = clinicsettingDescID.Default.(func() uuid.UUID)
	deviceassignmentMixin := schema.DeviceAssignment{}.Mixin()
	deviceassignmentMixinFields0 := deviceassignmentMixin[0].Fields()
	_ = deviceassignmentMixinFields0
	deviceassignmentMixinFields1 := deviceassignmentMixin[1].Fields()
	_ = deviceassignmentMixinFields1
	deviceassignmentFields := schema.DeviceAssignment{}.Fields()
	_ = deviceassignmentFields
	// deviceassignmentDescCreatedAt is the schema descriptor for created_at field.
	deviceassignmentDescCreatedAt := deviceassignmentMixinFields1[0].Descriptor()
	// deviceassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	deviceassignment.DefaultCreatedAt = deviceassignmentDescCreatedAt.Default.(func() time.Time)
	// deviceassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	deviceassignmentDescUpdatedAt := deviceassignmentMixinFields1[1].Descriptor()
	// deviceassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	deviceassignment.DefaultUpdatedAt = deviceassignmentDescUpdatedAt.Default.(func() time.Time)
	// deviceassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	deviceassignment.UpdateDefaultUpdatedAt = deviceassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// deviceassignmentDescSerialNumber is the schema descriptor for serial_number field.
	deviceassignmentDescSerialNumber := deviceassignmentFields[2].Descriptor()
	// deviceassignment.SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	deviceassignment.SerialNumberValidator = deviceassignmentDescSerialNumber.Validators[0].(func(string) error)
	// deviceassignmentDescSgkSchemeKey is the schema descriptor for sgk_scheme_key field.
	deviceassignmentDescSgkSchemeKey := deviceassignmentFields[5].Descriptor()
	// deviceassignment.DefaultSgkSchemeKey holds the default value on creation for the sgk_scheme_key field.
	deviceassignment.DefaultSgkSchemeKey = deviceassignmentDescSgkSchemeKey.Default.(string)
	// deviceassignment.SgkSchemeKeyValidator is a validator for the "sgk_scheme_key" field. It is called by the builders before save.
	deviceassignment.SgkSchemeKeyValidator = deviceassignmentDescSgkSchemeKey.Validators[0].(func(string) error)
	// deviceassignmentDescSgkReduction is the schema descriptor for sgk_reduction field.
	deviceassignmentDescSgkReduction := deviceassignmentFields[6].Descriptor()
	// deviceassignment.DefaultSgkReduction holds the default value on creation for the sgk_reduction field.
	deviceassignment.DefaultSgkReduction = deviceassignmentDescSgkReduction.Default.(float64)
	// deviceassignmentDescDiscountValue is the schema descriptor for discount_value field.
	deviceassignmentDescDiscountValue := deviceassignmentFields[8].Descriptor()
	// deviceassignment.DefaultDiscountValue holds the default value on creation for the discount_value field.
	deviceassignment.DefaultDiscountValue = deviceassignmentDescDiscountValue.Default.(float64)
	// deviceassignmentDescSalePrice is the schema descriptor for sale_price field.
	deviceassignmentDescSalePrice := deviceassignmentFields[9].Descriptor()
	// deviceassignment.DefaultSalePrice holds the default value on creation for the sale_price field.
	deviceassignment.DefaultSalePrice = deviceassignmentDescSalePrice.Default.(float64)
	// deviceassignmentDescPatientPayment is the schema descriptor for patient_payment field.
	deviceassignmentDescPatientPayment := deviceassignmentFields[10].Descriptor()
	// deviceassignment.DefaultPatientPayment holds the default value on creation for the patient_payment field.
	deviceassignment.DefaultPatientPayment = deviceassignmentDescPatientPayment.Default.(float64)
	// deviceassignmentDescDownPayment is the schema descriptor for down_payment field.
	deviceassignmentDescDownPayment := deviceassignmentFields[11].Descriptor()
	// deviceassignment.DefaultDownPayment holds the default value on creation for the down_payment field.
	deviceassignment.DefaultDownPayment = deviceassignmentDescDownPayment.Default.(float64)
	// deviceassignmentDescRemainingAmount is the schema descriptor for remaining_amount field.
	deviceassignmentDescRemainingAmount := deviceassignmentFields[12].Descriptor()
	// deviceassignment.DefaultRemainingAmount holds the default value on creation for the remaining_amount field.
	deviceassignment.DefaultRemainingAmount = deviceassignmentDescRemainingAmount.Default.(float64)
	// deviceassignmentDescInstallmentCount is the schema descriptor for installment_count field.
	deviceassignmentDescInstallmentCount := deviceassignmentFields[14].Descriptor()
	// deviceassignment.DefaultInstallmentCount holds the default value on creation for the installment_count field.
	deviceassignment.DefaultInstallmentCount = deviceassignmentDescInstallmentCount.Default.(int)
	// deviceassignmentDescMonthlyInstallment is the schema descriptor for monthly_installment field.
	deviceassignmentDescMonthlyInstallment := deviceassignmentFields[15].Descriptor()
	// deviceassignment.DefaultMonthlyInstallment holds the default value on creation for the monthly_installment field.
	deviceassignment.DefaultMonthlyInstallment = deviceassignmentDescMonthlyInstallment.Default.(float64)
	// deviceassignmentDescID is the schema descriptor for id field.
	deviceassignmentDescID := deviceassignmentMixinFields0[0].Descriptor()
	// deviceassignment.DefaultID holds the default value on creation for the id field.
	deviceassignment.DefaultID = deviceassignmentDescID.Default.(func() uuid.UUID)
	inventoryitemMixin := schema.InventoryItem{}.Mixin()
	inventoryitemMixinFields0 := inventoryitemMixin[0].Fields()
	_ = inventoryitemMixinFields0
	inventoryitemMixinFields1 := inventoryitemMixin[1].Fields()
	_ = inventoryitemMixinFields1
	inventoryitemFields := schema.InventoryItem{}.Fields()
	_ = inventoryitemFields
	// inventoryitemDescCreatedAt is the schema descriptor for created_at field.
	inventoryitemDescCreatedAt := inventoryitemMixinFields1[0].Descriptor()
	// inventoryitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	inventoryitem.DefaultCreatedAt = inventoryitemDescCreatedAt.Default.(func() time.Time)
	// inventoryitemDescUpdatedAt is the schema descriptor for updated_at field.
	inventoryitemDescUpdatedAt := inventoryitemMixinFields1[1].Descriptor()
	// inventoryitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	inventoryitem.DefaultUpdatedAt = inventoryitemDescUpdatedAt.Default.(func() time.Time)
	// inventoryitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	inventoryitem.UpdateDefaultUpdatedAt = inventoryitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// inventoryitemDescBrand is the schema descriptor for brand field.
	inventoryitemDescBrand := inventoryitemFields[1].Descriptor()
	// inventoryitem.BrandValidator is a validator for the "brand" field. It is called by the builders before save.
	inventoryitem.BrandValidator = inventoryitemDescBrand.Validators[0].(func(string) error)
	// inventoryitemDescModel is the schema descriptor for model field.
	inventoryitemDescModel := inventoryitemFields[2].Descriptor()
	// inventoryitem.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	inventoryitem.ModelValidator = inventoryitemDescModel.Validators[0].(func(string) error)
	// inventoryitemDescPrice is the schema descriptor for price field.
	inventoryitemDescPrice := inventoryitemFields[5].Descriptor()
	// inventoryitem.DefaultPrice holds the default value on creation for the price field.
	inventoryitem.DefaultPrice = inventoryitemDescPrice.Default.(float64)
	// inventoryitemDescBarcode is the schema descriptor for barcode field.
	inventoryitemDescBarcode := inventoryitemFields[6].Descriptor()
	// inventoryitem.BarcodeValidator is a validator for the "barcode" field. It is called by the builders before save.
	inventoryitem.BarcodeValidator = inventoryitemDescBarcode.Validators[0].(func(string) error)
	// inventoryitemDescAvailableQuantity is the schema descriptor for available_quantity field.
	inventoryitemDescAvailableQuantity := inventoryitemFields[7].Descriptor()
	// inventoryitem.DefaultAvailableQuantity holds the default value on creation for the available_quantity field.
	inventoryitem.DefaultAvailableQuantity = inventoryitemDescAvailableQuantity.Default.(int)
	// inventoryitemDescID is the schema descriptor for id field.
	inventoryitemDescID := inventoryitemMixinFields0[0].Descriptor()
	// inventoryitem.DefaultID holds the default value on creation for the id field.
	inventoryitem.DefaultID = inventoryitemDescID.Default.(func() uuid.UUID)
	loanerdeviceMixin := schema.LoanerDevice{}.Mixin()
	loanerdeviceMixinFields0 := loanerdeviceMixin[0].Fields()
	_ = loanerdeviceMixinFields0
	loanerdeviceMixinFields1 := loanerdeviceMixin[1].Fields()
	_ = loanerdeviceMixinFields1
	loanerdeviceFields := schema.LoanerDevice{}.Fields()
	_ = loanerdeviceFields
	// loanerdeviceDescCreatedAt is the schema descriptor for created_at field.
	loanerdeviceDescCreatedAt := loanerdeviceMixinFields1[0].Descriptor()
	// loanerdevice.DefaultCreatedAt holds the default value on creation for the created_at field.
	loanerdevice.DefaultCreatedAt = loanerdeviceDescCreatedAt.Default.(func() time.Time)
	// loanerdeviceDescUpdatedAt is the schema descriptor for updated_at field.
	loanerdeviceDescUpdatedAt := loanerdeviceMixinFields1[1].Descriptor()
	// loanerdevice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	loanerdevice.DefaultUpdatedAt = loanerdeviceDescUpdatedAt.Default.(func() time.Time)
	// loanerdevice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	loanerdevice.UpdateDefaultUpdatedAt = loanerdeviceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// loanerdeviceDescSerialNumber is the schema descriptor for serial_number field.
	loanerdeviceDescSerialNumber := loanerdeviceFields[2].Descriptor()
	// loanerdevice.SerialNumberValidator is a validator for the "serial_number" field. It is called by the builders before save.
	loanerdevice.SerialNumberValidator = loanerdeviceDescSerialNumber.Validators[0].(func(string) error)
	// loanerdeviceDescID is the schema descriptor for id field.
	loanerdeviceDescID := loanerdeviceMixinFields0[0].Descriptor()
	// loanerdevice.DefaultID holds the default value on creation for the id field.
	loanerdevice.DefaultID = loanerdeviceDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescFirstName is the schema descriptor for first_name field.
	patientDescFirstName := patientFields[1].Descriptor()
	// patient.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	patient.FirstNameValidator = patientDescFirstName.Validators[0].(func(string) error)
	// patientDescLastName is the schema descriptor for last_name field.
	patientDescLastName := patientFields[2].Descriptor()
	// patient.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	patient.LastNameValidator = patientDescLastName.Validators[0].(func(string) error)
	// patientDescPhone is the schema descriptor for phone field.
	patientDescPhone := patientFields[3].Descriptor()
	// patient.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	patient.PhoneValidator = patientDescPhone.Validators[0].(func(string) error)
	// patientDescEmail is the schema descriptor for email field.
	patientDescEmail := patientFields[4].Descriptor()
	// patient.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	patient.EmailValidator = patientDescEmail.Validators[0].(func(string) error)
	// patientDescFileNumber is the schema descriptor for file_number field.
	patientDescFileNumber := patientFields[8].Descriptor()
	// patient.FileNumberValidator is a validator for the "file_number" field. It is called by the builders before save.
	patient.FileNumberValidator = patientDescFileNumber.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	patientdocumentMixin := schema.PatientDocument{}.Mixin()
	patientdocumentMixinFields0 := patientdocumentMixin[0].Fields()
	_ = patientdocumentMixinFields0
	patientdocumentMixinFields1 := patientdocumentMixin[1].Fields()
	_ = patientdocumentMixinFields1
	patientdocumentFields := schema.PatientDocument{}.Fields()
	_ = patientdocumentFields
	// patientdocumentDescCreatedAt is the schema descriptor for created_at field.
	patientdocumentDescCreatedAt := patientdocumentMixinFields1[0].Descriptor()
	// patientdocument.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientdocument.DefaultCreatedAt = patientdocumentDescCreatedAt.Default.(func() time.Time)
	// patientdocumentDescUpdatedAt is the schema descriptor for updated_at field.
	patientdocumentDescUpdatedAt := patientdocumentMixinFields1[1].Descriptor()
	// patientdocument.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientdocument.DefaultUpdatedAt = patientdocumentDescUpdatedAt.Default.(func() time.Time)
	// patientdocument.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientdocument.UpdateDefaultUpdatedAt = patientdocumentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientdocumentDescStorageKey is the schema descriptor for storage_key field.
	patientdocumentDescStorageKey := patientdocumentFields[1].Descriptor()
	// patientdocument.StorageKeyValidator is a validator for the "storage_key" field. It is called by the builders before save.
	patientdocument.StorageKeyValidator = patientdocumentDescStorageKey.Validators[0].(func(string) error)
	// patientdocumentDescFileName is the schema descriptor for file_name field.
	patientdocumentDescFileName := patientdocumentFields[2].Descriptor()
	// patientdocument.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	patientdocument.FileNameValidator = patientdocumentDescFileName.Validators[0].(func(string) error)
	// patientdocumentDescMimeType is the schema descriptor for mime_type field.
	patientdocumentDescMimeType := patientdocumentFields[4].Descriptor()
	// patientdocument.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	patientdocument.MimeTypeValidator = patientdocumentDescMimeType.Validators[0].(func(string) error)
	// patientdocumentDescID is the schema descriptor for id field.
	patientdocumentDescID := patientdocumentMixinFields0[0].Descriptor()
	// patientdocument.DefaultID holds the default value on creation for the id field.
	patientdocument.DefaultID = patientdocumentDescID.Default.(func() uuid.UUID)
	patientnoteMixin := schema.PatientNote{}.Mixin()
	patientnoteMixinFields0 := patientnoteMixin[0].Fields()
	_ = patientnoteMixinFields0
	patientnoteMixinFields1 := patientnoteMixin[1].Fields()
	_ = patientnoteMixinFields1
	patientnoteFields := schema.PatientNote{}.Fields()
	_ = patientnoteFields
	// patientnoteDescCreatedAt is the schema descriptor for created_at field.
	patientnoteDescCreatedAt := patientnoteMixinFields1[0].Descriptor()
	// patientnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientnote.DefaultCreatedAt = patientnoteDescCreatedAt.Default.(func() time.Time)
	// patientnoteDescUpdatedAt is the schema descriptor for updated_at field.
	patientnoteDescUpdatedAt := patientnoteMixinFields1[1].Descriptor()
	// patientnote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientnote.DefaultUpdatedAt = patientnoteDescUpdatedAt.Default.(func() time.Time)
	// patientnote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientnote.UpdateDefaultUpdatedAt = patientnoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientnoteDescPinned is the schema descriptor for pinned field.
	patientnoteDescPinned := patientnoteFields[3].Descriptor()
	// patientnote.DefaultPinned holds the default value on creation for the pinned field.
	patientnote.DefaultPinned = patientnoteDescPinned.Default.(bool)
	// patientnoteDescID is the schema descriptor for id field.
	patientnoteDescID := patientnoteMixinFields0[0].Descriptor()
	// patientnote.DefaultID holds the default value on creation for the id field.
	patientnote.DefaultID = patientnoteDescID.Default.(func() uuid.UUID)
	paymentrecordMixin := schema.PaymentRecord{}.Mixin()
	paymentrecordMixinFields0 := paymentrecordMixin[0].Fields()
	_ = paymentrecordMixinFields0
	paymentrecordMixinFields1 := paymentrecordMixin[1].Fields()
	_ = paymentrecordMixinFields1
	paymentrecordFields := schema.PaymentRecord{}.Fields()
	_ = paymentrecordFields
	// paymentrecordDescCreatedAt is the schema descriptor for created_at field.
	paymentrecordDescCreatedAt := paymentrecordMixinFields1[0].Descriptor()
	// paymentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	paymentrecord.DefaultCreatedAt = paymentrecordDescCreatedAt.Default.(func() time.Time)
	// paymentrecordDescReference is the schema descriptor for reference field.
	paymentrecordDescReference := paymentrecordFields[4].Descriptor()
	// paymentrecord.ReferenceValidator is a validator for the "reference" field. It is called by the builders before save.
	paymentrecord.ReferenceValidator = paymentrecordDescReference.Validators[0].(func(string) error)
	// paymentrecordDescID is the schema descriptor for id field.
	paymentrecordDescID := paymentrecordMixinFields0[0].Descriptor()
	// paymentrecord.DefaultID holds the default value on creation for the id field.
	paymentrecord.DefaultID = paymentrecordDescID.Default.(func() uuid.UUID)
	promissorynoteMixin := schema.PromissoryNote{}.Mixin()
	promissorynoteMixinFields0 := promissorynoteMixin[0].Fields()
	_ = promissorynoteMixinFields0
	promissorynoteMixinFields1 := promissorynoteMixin[1].Fields()
	_ = promissorynoteMixinFields1
	promissorynoteFields := schema.PromissoryNote{}.Fields()
	_ = promissorynoteFields
	// promissorynoteDescCreatedAt is the schema descriptor for created_at field.
	promissorynoteDescCreatedAt := promissorynoteMixinFields1[0].Descriptor()
	// promissorynote.DefaultCreatedAt holds the default value on creation for the created_at field.
	promissorynote.DefaultCreatedAt = promissorynoteDescCreatedAt.Default.(func() time.Time)
	// promissorynoteDescUpdatedAt is the schema descriptor for updated_at field.
	promissorynoteDescUpdatedAt := promissorynoteMixinFields1[1].Descriptor()
	// promissorynote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	promissorynote.DefaultUpdatedAt = promissorynoteDescUpdatedAt.Default.(func() time.Time)
	// promissorynote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	promissorynote.UpdateDefaultUpdatedAt = promissorynoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// promissorynoteDescID is the schema descriptor for id field.
	promissorynoteDescID := promissorynoteMixinFields0[0].Descriptor()
	// promissorynote.DefaultID holds the default value on creation for the id field.
	promissorynote.DefaultID = promissorynoteDescID.Default.(func() uuid.UUID)
	smsmessageMixin := schema.SmsMessage{}.Mixin()
	smsmessageMixinFields0 := smsmessageMixin[0].Fields()
	_ = smsmessageMixinFields0
	smsmessageMixinFields1 := smsmessageMixin[1].Fields()
	_ = smsmessageMixinFields1
	smsmessageFields := schema.SmsMessage{}.Fields()
	_ = smsmessageFields
	// smsmessageDescCreatedAt is the schema descriptor for created_at field.
	smsmessageDescCreatedAt := smsmessageMixinFields1[0].Descriptor()
	// smsmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	smsmessage.DefaultCreatedAt = smsmessageDescCreatedAt.Default.(func() time.Time)
	// smsmessageDescPhone is the schema descriptor for phone field.
	smsmessageDescPhone := smsmessageFields[1].Descriptor()
	// smsmessage.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	smsmessage.PhoneValidator = smsmessageDescPhone.Validators[0].(func(string) error)
	// smsmessageDescError is the schema descriptor for error field.
	smsmessageDescError := smsmessageFields[4].Descriptor()
	// smsmessage.ErrorValidator is a validator for the "error" field. It is called by the builders before save.
	smsmessage.ErrorValidator = smsmessageDescError.Validators[0].(func(string) error)
	// smsmessageDescBatchID is the schema descriptor for batch_id field.
	smsmessageDescBatchID := smsmessageFields[5].Descriptor()
	// smsmessage.BatchIDValidator is a validator for the "batch_id" field. It is called by the builders before save.
	smsmessage.BatchIDValidator = smsmessageDescBatchID.Validators[0].(func(string) error)
	// smsmessageDescID is the schema descriptor for id field.
	smsmessageDescID := smsmessageMixinFields0[0].Descriptor()
	// smsmessage.DefaultID holds the default value on creation for the id field.
	smsmessage.DefaultID = smsmessageDescID.Default.(func() uuid.UUID)
	timelineeventMixin := schema.TimelineEvent{}.Mixin()
	timelineeventMixinFields0 := timelineeventMixin[0].Fields()
	_ = timelineeventMixinFields0
	timelineeventMixinFields1 := timelineeventMixin[1].Fields()
	_ = timelineeventMixinFields1
	timelineeventFields := schema.TimelineEvent{}.Fields()
	_ = timelineeventFields
	// timelineeventDescCreatedAt is the schema descriptor for created_at field.
	timelineeventDescCreatedAt := timelineeventMixinFields1[0].Descriptor()
	// timelineevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	timelineevent.DefaultCreatedAt = timelineeventDescCreatedAt.Default.(func() time.Time)
	// timelineeventDescEventType is the schema descriptor for event_type field.
	timelineeventDescEventType := timelineeventFields[1].Descriptor()
	// timelineevent.EventTypeValidator is a validator for the "event_type" field. It is called by the builders before save.
	timelineevent.EventTypeValidator = timelineeventDescEventType.Validators[0].(func(string) error)
	// timelineeventDescTitle is the schema descriptor for title field.
	timelineeventDescTitle := timelineeventFields[2].Descriptor()
	// timelineevent.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	timelineevent.TitleValidator = timelineeventDescTitle.Validators[0].(func(string) error)
	// timelineeventDescID is the schema descriptor for id field.
	timelineeventDescID := timelineeventMixinFields0[0].Descriptor()
	// timelineevent.DefaultID holds the default value on creation for the id field.
	timelineevent.DefaultID = timelineeventDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[2].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[3].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[7].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescPhoneVerified is the schema descriptor for phone_verified field.
	userDescPhoneVerified := userFields[8].Descriptor()
	// user.DefaultPhoneVerified holds the default value on creation for the phone_verified field.
	user.DefaultPhoneVerified = userDescPhoneVerified.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[10].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	usersessionMixin := schema.UserSession{}.Mixin()
	usersessionMixinFields0 := usersessionMixin[0].Fields()
	_ = usersessionMixinFields0
	usersessionMixinFields1 := usersessionMixin[1].Fields()
	_ = usersessionMixinFields1
	usersessionFields := schema.UserSession{}.Fields()
	_ = usersessionFields
	// usersessionDescCreatedAt is the schema descriptor for created_at field.
	usersessionDescCreatedAt := usersessionMixinFields1[0].Descriptor()
	// usersession.DefaultCreatedAt holds the default value on creation for the created_at field.
	usersession.DefaultCreatedAt = usersessionDescCreatedAt.Default.(func() time.Time)
	// usersessionDescUserAgent is the schema descriptor for user_agent field.
	usersessionDescUserAgent := usersessionFields[2].Descriptor()
	// usersession.UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	usersession.UserAgentValidator = usersessionDescUserAgent.Validators[0].(func(string) error)
	// usersessionDescIP is the schema descriptor for ip field.
	usersessionDescIP := usersessionFields[3].Descriptor()
	// usersession.IPValidator is a validator for the "ip" field. It is called by the builders before save.
	usersession.IPValidator = usersessionDescIP.Validators[0].(func(string) error)
	// usersessionDescID is the schema descriptor for id field.
	usersessionDescID := usersessionMixinFields0[0].Descriptor()
	// usersession.DefaultID holds the default value on creation for the id field.
	usersession.DefaultID = usersessionDescID.Default.(func() uuid.UUID)
}
