package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// TimelineEvent is an append-only audit entry shown on the patient detail
// timeline. Rows are written by the timeline worker off the request path.
type TimelineEvent struct {
	ent.Schema
}

func (TimelineEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (TimelineEvent) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.String("event_type").
			MaxLen(50).
			Comment("e.g. assignment.created, payment.recorded, sms.sent"),

		field.String("title").
			MaxLen(255),

		field.JSON("payload", map[string]any{}).
			Optional(),

		field.UUID("actor_id", uuid.UUID{}).
			Optional().
			Nillable(),
	}
}

func (TimelineEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("timeline").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (TimelineEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id", "created_at"),
		index.Fields("event_type"),
	}
}
