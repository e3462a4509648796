package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ItemStat is the running aggregate for one item key within one scope.
// Scope is an account UUID string or the reserved global scope. Updates go
// through a compare-and-set cycle keyed on count, so no edges and no FK: the
// row is contended by unrelated receipts and stays deliberately narrow.
type ItemStat struct{ ent.Schema }

func (ItemStat) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "item_stats"},
	}
}

func (ItemStat) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("scope").NotEmpty().Immutable(),
		field.String("item_key").NotEmpty().Immutable(),
		field.Int64("count").NonNegative(),
		field.Float("total_spend").
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
		field.Float("min_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("max_price").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("last_seen").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ItemStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("scope", "item_key").Unique(),
		index.Fields("item_key"),
	}
}
