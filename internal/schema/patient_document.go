package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// PatientDocument is an uploaded file (audiogram, SGK report, contract).
// The binary lives in S3; this row holds the key and metadata.
type PatientDocument struct {
	ent.Schema
}

func (PatientDocument) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (PatientDocument) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}),

		field.String("storage_key").
			MaxLen(512),

		field.String("file_name").
			MaxLen(255),

		field.Int64("size_bytes"),

		field.String("mime_type").
			MaxLen(100),

		field.Enum("kind").
			Values("audiogram", "sgk_report", "contract", "other").
			Default("other"),

		field.UUID("uploaded_by", uuid.UUID{}).
			Optional().
			Nillable(),

		field.Text("description").
			Optional().
			Nillable(),
	}
}

func (PatientDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("patient", Patient.Type).
			Ref("documents").
			Unique().
			Required().
			Field("patient_id"),
	}
}

func (PatientDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("storage_key"),
	}
}
