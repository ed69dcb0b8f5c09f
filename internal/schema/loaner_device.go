package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// LoanerDevice is a temporarily issued device, tracked separately from the
// sold assignment and returnable to inventory.
type LoanerDevice struct {
	ent.Schema
}

func (LoanerDevice) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (LoanerDevice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("inventory_item_id", uuid.UUID{}),

		field.String("serial_number").
			Optional().
			Nillable().
			MaxLen(64),

		field.Enum("ear").
			Values("left", "right", "both"),

		field.Enum("status").
			Values("issued", "returned").
			Default("issued"),

		field.Time("issued_at"),

		field.Time("returned_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (LoanerDevice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("loaners").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (LoanerDevice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("inventory_item_id"),
		index.Fields("status"),
	}
}
