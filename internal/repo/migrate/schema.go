// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AppointmentsColumns holds the columns for the "appointments" table.
	AppointmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "staff_id", Type: field.TypeUUID, Nullable: true},
		{Name: "scheduled_at", Type: field.TypeTime},
		{Name: "duration_minutes", Type: field.TypeInt, Default: 30},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"first_visit", "fitting", "control", "repair", "other"}, Default: "other"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"scheduled", "completed", "cancelled", "no_show"}, Default: "scheduled"},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "reminder_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "branch_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// AppointmentsTable holds the schema information for the "appointments" table.
	AppointmentsTable = &schema.Table{
		Name:       "appointments",
		Columns:    AppointmentsColumns,
		PrimaryKey: []*schema.Column{AppointmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "appointments_branches_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[11]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "appointments_patients_appointments",
				Columns:    []*schema.Column{AppointmentsColumns[12]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "appointment_branch_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[11], AppointmentsColumns[5]},
			},
			{
				Name:    "appointment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[12]},
			},
			{
				Name:    "appointment_staff_id_scheduled_at",
				Unique:  false,
				Columns: []*schema.Column{AppointmentsColumns[4], AppointmentsColumns[5]},
			},
		},
	}
	// BranchesColumns holds the columns for the "branches" table.
	BranchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "city", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_active", Type: field.TypeBool, Default: true},
	}
	// BranchesTable holds the schema information for the "branches" table.
	BranchesTable = &schema.Table{
		Name:       "branches",
		Columns:    BranchesColumns,
		PrimaryKey: []*schema.Column{BranchesColumns[0]},
	}
	// ClinicSettingsColumns holds the columns for the "clinic_settings" table.
	ClinicSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "key", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "value", Type: field.TypeJSON},
	}
	// ClinicSettingsTable holds the schema information for the "clinic_settings" table.
	ClinicSettingsTable = &schema.Table{
		Name:       "clinic_settings",
		Columns:    ClinicSettingsColumns,
		PrimaryKey: []*schema.Column{ClinicSettingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clinicsetting_key",
				Unique:  true,
				Columns: []*schema.Column{ClinicSettingsColumns[3]},
			},
		},
	}
	// DeviceAssignmentsColumns holds the columns for the "device_assignments" table.
	DeviceAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "serial_number", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "ear", Type: field.TypeEnum, Enums: []string{"left", "right", "both"}},
		{Name: "list_price", Type: field.TypeFloat64},
		{Name: "sgk_scheme_key", Type: field.TypeString, Size: 50, Default: "no_coverage"},
		{Name: "sgk_reduction", Type: field.TypeFloat64, Default: 0},
		{Name: "discount_type", Type: field.TypeEnum, Enums: []string{"none", "percentage", "amount"}, Default: "none"},
		{Name: "discount_value", Type: field.TypeFloat64, Default: 0},
		{Name: "sale_price", Type: field.TypeFloat64, Default: 0},
		{Name: "patient_payment", Type: field.TypeFloat64, Default: 0},
		{Name: "down_payment", Type: field.TypeFloat64, Default: 0},
		{Name: "remaining_amount", Type: field.TypeFloat64, Default: 0},
		{Name: "payment_method", Type: field.TypeEnum, Enums: []string{"cash", "card", "transfer", "installment", "promissory_note"}, Default: "cash"},
		{Name: "installment_count", Type: field.TypeInt, Default: 0},
		{Name: "monthly_installment", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "replaced", "returned"}, Default: "active"},
		{Name: "replaced_by_id", Type: field.TypeUUID, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "inventory_item_id", Type: field.TypeUUID},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// DeviceAssignmentsTable holds the schema information for the "device_assignments" table.
	DeviceAssignmentsTable = &schema.Table{
		Name:       "device_assignments",
		Columns:    DeviceAssignmentsColumns,
		PrimaryKey: []*schema.Column{DeviceAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "device_assignments_inventory_items_assignments",
				Columns:    []*schema.Column{DeviceAssignmentsColumns[21]},
				RefColumns: []*schema.Column{InventoryItemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "device_assignments_patients_assignments",
				Columns:    []*schema.Column{DeviceAssignmentsColumns[22]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "deviceassignment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{DeviceAssignmentsColumns[22]},
			},
			{
				Name:    "deviceassignment_inventory_item_id",
				Unique:  false,
				Columns: []*schema.Column{DeviceAssignmentsColumns[21]},
			},
			{
				Name:    "deviceassignment_patient_id_status",
				Unique:  false,
				Columns: []*schema.Column{DeviceAssignmentsColumns[22], DeviceAssignmentsColumns[18]},
			},
		},
	}
	// InventoryItemsColumns holds the columns for the "inventory_items" table.
	InventoryItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "brand", Type: field.TypeString, Size: 100},
		{Name: "model", Type: field.TypeString, Size: 100},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"hearing_aid", "earmold", "battery", "accessory"}, Default: "hearing_aid"},
		{Name: "ear", Type: field.TypeEnum, Enums: []string{"left", "right", "both"}, Default: "both"},
		{Name: "price", Type: field.TypeFloat64, Default: 0},
		{Name: "barcode", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "available_quantity", Type: field.TypeInt, Default: 0},
		{Name: "available_serials", Type: field.TypeJSON, Nullable: true},
		{Name: "branch_id", Type: field.TypeUUID},
	}
	// InventoryItemsTable holds the schema information for the "inventory_items" table.
	InventoryItemsTable = &schema.Table{
		Name:       "inventory_items",
		Columns:    InventoryItemsColumns,
		PrimaryKey: []*schema.Column{InventoryItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "inventory_items_branches_inventory_items",
				Columns:    []*schema.Column{InventoryItemsColumns[12]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "inventoryitem_branch_id",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[12]},
			},
			{
				Name:    "inventoryitem_branch_id_brand_model",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[12], InventoryItemsColumns[4], InventoryItemsColumns[5]},
			},
			{
				Name:    "inventoryitem_barcode",
				Unique:  false,
				Columns: []*schema.Column{InventoryItemsColumns[9]},
			},
		},
	}
	// LoanerDevicesColumns holds the columns for the "loaner_devices" table.
	LoanerDevicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "inventory_item_id", Type: field.TypeUUID},
		{Name: "serial_number", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "ear", Type: field.TypeEnum, Enums: []string{"left", "right", "both"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"issued", "returned"}, Default: "issued"},
		{Name: "issued_at", Type: field.TypeTime},
		{Name: "returned_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// LoanerDevicesTable holds the schema information for the "loaner_devices" table.
	LoanerDevicesTable = &schema.Table{
		Name:       "loaner_devices",
		Columns:    LoanerDevicesColumns,
		PrimaryKey: []*schema.Column{LoanerDevicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "loaner_devices_patients_loaners",
				Columns:    []*schema.Column{LoanerDevicesColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "loanerdevice_patient_id",
				Unique:  false,
				Columns: []*schema.Column{LoanerDevicesColumns[10]},
			},
			{
				Name:    "loanerdevice_inventory_item_id",
				Unique:  false,
				Columns: []*schema.Column{LoanerDevicesColumns[3]},
			},
			{
				Name:    "loanerdevice_status",
				Unique:  false,
				Columns: []*schema.Column{LoanerDevicesColumns[6]},
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "tax_id_encrypted", Type: field.TypeString, Nullable: true},
		{Name: "birth_date", Type: field.TypeTime, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "file_number", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"lead", "active", "trial", "fitted", "inactive"}, Default: "lead"},
		{Name: "sgk_status", Type: field.TypeEnum, Enums: []string{"eligible", "not_eligible", "unknown"}, Default: "unknown"},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "notes_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "branch_id", Type: field.TypeUUID},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_branches_patients",
				Columns:    []*schema.Column{PatientsColumns[16]},
				RefColumns: []*schema.Column{BranchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_branch_id",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[16]},
			},
			{
				Name:    "patient_branch_id_phone",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[16], PatientsColumns[6]},
			},
			{
				Name:    "patient_branch_id_status",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[16], PatientsColumns[12]},
			},
			{
				Name:    "patient_file_number",
				Unique:  false,
				Columns: []*schema.Column{PatientsColumns[11]},
			},
		},
	}
	// PatientDocumentsColumns holds the columns for the "patient_documents" table.
	PatientDocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "storage_key", Type: field.TypeString, Size: 512},
		{Name: "file_name", Type: field.TypeString, Size: 255},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "mime_type", Type: field.TypeString, Size: 100},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"audiogram", "sgk_report", "contract", "other"}, Default: "other"},
		{Name: "uploaded_by", Type: field.TypeUUID, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PatientDocumentsTable holds the schema information for the "patient_documents" table.
	PatientDocumentsTable = &schema.Table{
		Name:       "patient_documents",
		Columns:    PatientDocumentsColumns,
		PrimaryKey: []*schema.Column{PatientDocumentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_documents_patients_documents",
				Columns:    []*schema.Column{PatientDocumentsColumns[11]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientdocument_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[11]},
			},
			{
				Name:    "patientdocument_storage_key",
				Unique:  false,
				Columns: []*schema.Column{PatientDocumentsColumns[4]},
			},
		},
	}
	// PatientNotesColumns holds the columns for the "patient_notes" table.
	PatientNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "author_id", Type: field.TypeUUID, Nullable: true},
		{Name: "pinned", Type: field.TypeBool, Default: false},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// PatientNotesTable holds the schema information for the "patient_notes" table.
	PatientNotesTable = &schema.Table{
		Name:       "patient_notes",
		Columns:    PatientNotesColumns,
		PrimaryKey: []*schema.Column{PatientNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patient_notes_patients_notes",
				Columns:    []*schema.Column{PatientNotesColumns[7]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patientnote_patient_id",
				Unique:  false,
				Columns: []*schema.Column{PatientNotesColumns[7]},
			},
		},
	}
	// PaymentRecordsColumns holds the columns for the "payment_records" table.
	PaymentRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "method", Type: field.TypeEnum, Enums: []string{"cash", "card", "transfer"}},
		{Name: "paid_at", Type: field.TypeTime},
		{Name: "reference", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "recorded_by", Type: field.TypeUUID, Nullable: true},
		{Name: "assignment_id", Type: field.TypeUUID},
	}
	// PaymentRecordsTable holds the schema information for the "payment_records" table.
	PaymentRecordsTable = &schema.Table{
		Name:       "payment_records",
		Columns:    PaymentRecordsColumns,
		PrimaryKey: []*schema.Column{PaymentRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "payment_records_device_assignments_payments",
				Columns:    []*schema.Column{PaymentRecordsColumns[7]},
				RefColumns: []*schema.Column{DeviceAssignmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paymentrecord_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[7]},
			},
			{
				Name:    "paymentrecord_paid_at",
				Unique:  false,
				Columns: []*schema.Column{PaymentRecordsColumns[4]},
			},
		},
	}
	// PromissoryNotesColumns holds the columns for the "promissory_notes" table.
	PromissoryNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "amount", Type: field.TypeFloat64},
		{Name: "due_date", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "paid", "overdue", "cancelled"}, Default: "pending"},
		{Name: "paid_at", Type: field.TypeTime, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "assignment_id", Type: field.TypeUUID},
	}
	// PromissoryNotesTable holds the schema information for the "promissory_notes" table.
	PromissoryNotesTable = &schema.Table{
		Name:       "promissory_notes",
		Columns:    PromissoryNotesColumns,
		PrimaryKey: []*schema.Column{PromissoryNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "promissory_notes_device_assignments_promissory_notes",
				Columns:    []*schema.Column{PromissoryNotesColumns[8]},
				RefColumns: []*schema.Column{DeviceAssignmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promissorynote_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{PromissoryNotesColumns[8]},
			},
			{
				Name:    "promissorynote_due_date",
				Unique:  false,
				Columns: []*schema.Column{PromissoryNotesColumns[4]},
			},
			{
				Name:    "promissorynote_status",
				Unique:  false,
				Columns: []*schema.Column{PromissoryNotesColumns[5]},
			},
		},
	}
	// SmsMessagesColumns holds the columns for the "sms_messages" table.
	SmsMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "patient_id", Type: field.TypeUUID, Nullable: true},
		{Name: "phone", Type: field.TypeString, Size: 20},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"queued", "sent", "failed"}, Default: "queued"},
		{Name: "error", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "batch_id", Type: field.TypeString, Nullable: true, Size: 36},
		{Name: "sent_at", Type: field.TypeTime, Nullable: true},
	}
	// SmsMessagesTable holds the schema information for the "sms_messages" table.
	SmsMessagesTable = &schema.Table{
		Name:       "sms_messages",
		Columns:    SmsMessagesColumns,
		PrimaryKey: []*schema.Column{SmsMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "smsmessage_patient_id",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[2]},
			},
			{
				Name:    "smsmessage_batch_id",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[7]},
			},
			{
				Name:    "smsmessage_status",
				Unique:  false,
				Columns: []*schema.Column{SmsMessagesColumns[5]},
			},
		},
	}
	// TimelineEventsColumns holds the columns for the "timeline_events" table.
	TimelineEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "event_type", Type: field.TypeString, Size: 50},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "actor_id", Type: field.TypeUUID, Nullable: true},
		{Name: "patient_id", Type: field.TypeUUID},
	}
	// TimelineEventsTable holds the schema information for the "timeline_events" table.
	TimelineEventsTable = &schema.Table{
		Name:       "timeline_events",
		Columns:    TimelineEventsColumns,
		PrimaryKey: []*schema.Column{TimelineEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "timeline_events_patients_timeline",
				Columns:    []*schema.Column{TimelineEventsColumns[6]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "timelineevent_patient_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[6], TimelineEventsColumns[1]},
			},
			{
				Name:    "timelineevent_event_type",
				Unique:  false,
				Columns: []*schema.Column{TimelineEventsColumns[2]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "phone", Type: field.TypeString, Unique: true, Size: 20},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"admin", "audiologist", "frontdesk"}, Default: "frontdesk"},
		{Name: "branch_id", Type: field.TypeUUID, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "phone_verified", Type: field.TypeBool, Default: false},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_phone",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[6]},
			},
			{
				Name:    "user_branch_id",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[10]},
			},
		},
	}
	// UserSessionsColumns holds the columns for the "user_sessions" table.
	UserSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "refresh_token_hash", Type: field.TypeString},
		{Name: "user_agent", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "ip", Type: field.TypeString, Nullable: true, Size: 45},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "revoked_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// UserSessionsTable holds the schema information for the "user_sessions" table.
	UserSessionsTable = &schema.Table{
		Name:       "user_sessions",
		Columns:    UserSessionsColumns,
		PrimaryKey: []*schema.Column{UserSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "user_sessions_users_sessions",
				Columns:    []*schema.Column{UserSessionsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "usersession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[7]},
			},
			{
				Name:    "usersession_expires_at",
				Unique:  false,
				Columns: []*schema.Column{UserSessionsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AppointmentsTable,
		BranchesTable,
		ClinicSettingsTable,
		DeviceAssignmentsTable,
		InventoryItemsTable,
		LoanerDevicesTable,
		PatientsTable,
		PatientDocumentsTable,
		PatientNotesTable,
		PaymentRecordsTable,
		PromissoryNotesTable,
		SmsMessagesTable,
		TimelineEventsTable,
		UsersTable,
		UserSessionsTable,
	}
)

func init() {
	AppointmentsTable.ForeignKeys[0].RefTable = BranchesTable
	AppointmentsTable.ForeignKeys[1].RefTable = PatientsTable
	DeviceAssignmentsTable.ForeignKeys[0].RefTable = InventoryItemsTable
	DeviceAssignmentsTable.ForeignKeys[1].RefTable = PatientsTable
	InventoryItemsTable.ForeignKeys[0].RefTable = BranchesTable
	LoanerDevicesTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = BranchesTable
	PatientDocumentsTable.ForeignKeys[0].RefTable = PatientsTable
	PatientNotesTable.ForeignKeys[0].RefTable = PatientsTable
	PaymentRecordsTable.ForeignKeys[0].RefTable = DeviceAssignmentsTable
	PromissoryNotesTable.ForeignKeys[0].RefTable = DeviceAssignmentsTable
	TimelineEventsTable.ForeignKeys[0].RefTable = PatientsTable
	UserSessionsTable.ForeignKeys[0].RefTable = UsersTable
}
