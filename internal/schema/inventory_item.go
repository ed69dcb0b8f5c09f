package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// InventoryItem is a sellable device model held in branch stock.
type InventoryItem struct {
	ent.Schema
}

func (InventoryItem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (InventoryItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("branch_id", uuid.UUID{}).
			Comment("FK → branches.id"),

		field.String("brand").
			MaxLen(100),

		field.String("model").
			MaxLen(100),

		field.Enum("category").
			Values("hearing_aid", "earmold", "battery", "accessory").
			Default("hearing_aid"),

		field.Enum("ear").
			Values("left", "right", "both").
			Default("both").
			Comment("Which side this model fits; 'both' = side-agnostic"),

		field.Float("price").
			Default(0).
			Comment("Catalog list price, TRY"),

		field.String("barcode").
			Optional().
			Nillable().
			MaxLen(64),

		field.Int("available_quantity").
			Default(0),

		field.JSON("available_serials", []string{}).
			Optional(),
	}
}

func (InventoryItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("branch", Branch.Type).
			Ref("inventory_items").
			Unique().
			Required().
			Field("branch_id"),
		edge.To("assignments", DeviceAssignment.Type),
	}
}

func (InventoryItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("branch_id"),
		index.Fields("branch_id", "brand", "model"),
		index.Fields("barcode"),
	}
}
