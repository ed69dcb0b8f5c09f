package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// SmsMessage logs one outbound SMS, bulk or transactional.
type SmsMessage struct {
	ent.Schema
}

func (SmsMessage) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		CreatedAtMixin{},
	}
}

func (SmsMessage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("patient_id", uuid.UUID{}).
			Optional().
			Nillable(),

		field.String("phone").
			MaxLen(20),

		field.Text("body"),

		field.Enum("status").
			Values("queued", "sent", "failed").
			Default("queued"),

		field.String("error").
			Optional().
			Nillable().
			MaxLen(512),

		field.String("batch_id").
			Optional().
			Nillable().
			MaxLen(36).
			Comment("Groups messages from one bulk send"),

		field.Time("sent_at").
			Optional().
			Nillable(),
	}
}

func (SmsMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("patient_id"),
		index.Fields("batch_id"),
		index.Fields("status"),
	}
}
