package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ReceiptItem is one line item exploded from a parsed extraction. The unique
// index on (extraction_id, line_index) makes explosion idempotent: a retry
// that re-inserts an existing line is a no-op.
type ReceiptItem struct{ ent.Schema }

func (ReceiptItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_items"},
	}
}

func (ReceiptItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define a composite unique index
		field.UUID("extraction_id", uuid.UUID{}),
		field.UUID("account_id", uuid.UUID{}),
		field.Int("line_index").NonNegative().Immutable(),
		field.String("name").NotEmpty(),
		field.String("item_key").NotEmpty(),
		field.Float("quantity").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,3)"}),
		field.Float("unit_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("line_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("purchased_at").
			SchemaType(map[string]string{dialect.Postgres: "date"}).
			Immutable(),
	}
}

func (ReceiptItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", Extraction.Type).
			Ref("items").
			Field("extraction_id").
			Unique().
			Required(),
		edge.From("account", Account.Type).
			Ref("items").
			Field("account_id").
			Unique().
			Required(),
	}
}

func (ReceiptItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("extraction_id", "line_index").Unique(),
		index.Fields("account_id", "item_key"),
	}
}
