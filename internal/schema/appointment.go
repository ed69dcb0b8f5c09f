package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("branch_id", uuid.UUID{}),

		field.UUID("patient_id", uuid.UUID{}),

		field.UUID("staff_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Assigned audiologist"),

		field.Time("scheduled_at"),

		field.Int("duration_minutes").
			Default(30),

		field.Enum("kind").
			Values("first_visit", "fitting", "control", "repair", "other").
			Default("other"),

		field.Enum("status").
			Values("scheduled", "completed", "cancelled", "no_show").
			Default("scheduled"),

		field.Text("notes").
			Optional().
			Nillable(),

		field.Time("reminder_sent_at").
			Optional().
			Nillable().
			Comment("Set once the reminder email for this appointment went out"),
	}
}

func (Appointment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("branch_id"),
		edge.From("patient", Patient.Type).
			Ref("appointments").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("branch_id", "scheduled_at"),
		index.Fields("patient_id"),
		index.Fields("staff_id", "scheduled_at"),
	}
}
