package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClinicSetting is a key → JSON settings row. The SGK scheme table lives
// here under the key "sgk_schemes"; when it is absent or empty the pricing
// package falls back to its built-in legacy table.
type ClinicSetting struct {
	ent.Schema
}

func (ClinicSetting) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ClinicSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			MaxLen(100).
			Unique(),

		field.JSON("value", map[string]any{}),
	}
}

func (ClinicSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("key").Unique(),
	}
}
