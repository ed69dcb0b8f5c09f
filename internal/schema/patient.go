package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Patient is a hearing-aid clinic patient record.
type Patient struct {
	ent.Schema
}

func (Patient) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Patient) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("branch_id", uuid.UUID{}).
			Comment("FK → branches.id"),

		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("phone").
			MaxLen(20).
			Comment("E.164; upsert key for bulk import"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("tax_id_encrypted").
			Optional().
			Nillable().
			Sensitive().
			Comment("TC kimlik no, AES-256-GCM encrypted at rest"),

		field.Time("birth_date").
			Optional().
			Nillable(),

		field.Text("address").
			Optional().
			Nillable(),

		field.String("file_number").
			Optional().
			Nillable().
			MaxLen(20).
			Comment("Human-facing record code, generated at create"),

		field.Enum("status").
			Values("lead", "active", "trial", "fitted", "inactive").
			Default("lead"),

		field.Enum("sgk_status").
			Values("eligible", "not_eligible", "unknown").
			Default("unknown"),

		field.JSON("tags", []string{}).
			Optional(),

		field.Text("notes_summary").
			Optional().
			Nillable(),
	}
}

func (Patient) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("patients").
			Unique().
			Required().
			Field("branch_id"),
		edge.To("assignments", DeviceAssignment.Type),
		edge.To("loaners", LoanerDevice.Type),
		edge.To("notes", PatientNote.Type),
		edge.To("documents", PatientDocument.Type),
		edge.To("appointments", Appointment.Type),
		edge.To("timeline", TimelineEvent.Type),
	}
}

func (Patient) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("branch_id"),
		index.Fields("branch_id", "phone").Unique(),
		index.Fields("branch_id", "status"),
		index.Fields("file_number"),
	}
}
