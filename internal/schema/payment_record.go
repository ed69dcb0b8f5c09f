package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PaymentRecord is one received payment against an assignment. Payments are
// recorded, not processed; there is no gateway integration.
type PaymentRecord struct {
	ent.Schema
}

func (PaymentRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (PaymentRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("assignment_id", uuid.UUID{}),

		field.Float("amount"),

		field.Enum("method").
			Values("cash", "card", "transfer"),

		field.Time("paid_at"),

		field.String("reference").
			Optional().
			Nillable().
			MaxLen(100).
			Comment("POS slip / transfer reference"),

		field.UUID("recorded_by", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (PaymentRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("assignment", DeviceAssignment.Type).
			Ref("payments").
			Unique().
			Required().
			Field("assignment_id"),
	}
}

func (PaymentRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("assignment_id"),
		index.Fields("paid_at"),
	}
}
