package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type PatientNote struct {
	ent.Schema
}

func (PatientNote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (PatientNote) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.Text("content"),

		field.UUID("author_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Bool("pinned").
			Default(false),
	}
}

func (PatientNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("notes").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (PatientNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
	}
}
