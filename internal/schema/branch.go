package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Branch is a clinic location. Every patient-facing record is scoped to a
// branch via the X-Branch-ID header.
type Branch struct {
	ent.Schema
}

func (Branch) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Branch) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			MaxLen(255),

		field.String("city").
			Optional().
			Nillable().
			MaxLen(100),

		field.String("phone").
			Optional().
			Nillable().
			MaxLen(20),

		field.Text("address").
			Optional().
			Nillable(),

		field.Bool("is_active").
			Default(true),
	}
}

func (Branch) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("patients", Patient.Type),
		edge.To("inventory_items", InventoryItem.Type),
		edge.To("appointments", Appointment.Type),
	}
}
