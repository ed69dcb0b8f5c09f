package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DeviceAssignment is a per-device pricing and sale record for a patient.
// All pricing fields marked "derived" are recomputed server-side on every
// create/update; values sent by clients for them are ignored.
type DeviceAssignment struct {
	ent.Schema
}

func (DeviceAssignment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (DeviceAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("inventory_item_id", uuid.UUID{}),

		field.String("serial_number").
			Optional().
			Nillable().
			MaxLen(64),

		field.Enum("ear").
			Values("left", "right", "both"),

		field.Float("list_price").
			Comment("Catalog price at assignment time"),

		field.String("sgk_scheme_key").
			Default("no_coverage").
			MaxLen(50),

		field.Float("sgk_reduction").
			Default(0).
			Comment("Derived: total subsidy over all units"),

		field.Enum("discount_type").
			Values("none", "percentage", "amount").
			Default("none"),

		field.Float("discount_value").
			Default(0),

		field.Float("sale_price").
			Default(0).
			Comment("Derived: per-unit price after subsidy and discount"),

		field.Float("patient_payment").
			Default(0).
			Comment("Derived: total owed by the patient"),

		field.Float("down_payment").
			Default(0),

		field.Float("remaining_amount").
			Default(0).
			Comment("Derived: max(0, patient_payment - down_payment)"),

		field.Enum("payment_method").
			Values("cash", "card", "transfer", "installment", "promissory_note").
			Default("cash"),

		field.Int("installment_count").
			Default(0),

		field.Float("monthly_installment").
			Default(0).
			Comment("Derived: remaining_amount / installment_count"),

		field.Enum("status").
			Values("active", "replaced", "returned").
			Default("active"),

		field.UUID("replaced_by_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Set on the old assignment when a replacement is created"),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (DeviceAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("patient_id"),
		edge.From("inventory_item", InventoryItem.Type).
			Ref("assignments").
			Unique().
			Required().
			Field("inventory_item_id"),
		edge.To("payments", PaymentRecord.Type),
		edge.To("promissory_notes", PromissoryNote.Type),
	}
}

func (DeviceAssignment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("inventory_item_id"),
		index.Fields("patient_id", "status"),
	}
}
