package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PromissoryNote is a deferred-payment instrument (senet) tracked alongside
// cash/card payment records.
type PromissoryNote struct {
	ent.Schema
}

func (PromissoryNote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (PromissoryNote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("assignment_id", uuid.UUID{}),

		field.Float("amount"),

		field.Time("due_date"),

		field.Enum("status").
			Values("pending", "paid", "overdue", "cancelled").
			Default("pending"),

		field.Time("paid_at").
			Optional().
			Nillable(),

		field.Text("notes").
			Optional().
			Nillable(),
	}
}

func (PromissoryNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", DeviceAssignment.Type).
			Ref("promissory_notes").
			Unique().
			Required().
			Field("assignment_id"),
	}
}

func (PromissoryNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id"),
		index.Fields("due_date"),
		index.Fields("status"),
	}
}
