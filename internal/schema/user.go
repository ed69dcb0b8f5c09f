package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// User is a staff account (audiologist, front desk, admin). Patients do not
// log in; they exist only as records.
type User struct {
	ent.Schema
}

func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			MaxLen(100),

		field.String("last_name").
			MaxLen(100),

		field.String("phone").
			MaxLen(20).
			Unique().
			Comment("E.164, login identifier"),

		field.String("email").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("password_hash").
			Sensitive(),

		field.Enum("role").
			Values("admin", "audiologist", "frontdesk").
			Default("frontdesk"),

		field.UUID("branch_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Home branch; admins may operate across branches"),

		field.Bool("is_active").
			Default(true),

		field.Bool("phone_verified").
			Default(false),

		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0),

		field.Time("locked_until").
			Optional().
			Nillable(),
	}
}

func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("sessions", UserSession.Type),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("phone").Unique(),
		index.Fields("branch_id"),
	}
}
