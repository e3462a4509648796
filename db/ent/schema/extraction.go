package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/db/ent/schema/utils"
)

// Extraction records one processing attempt for an uploaded document,
// identified by (bucket, object_name, generation). The unique index on that
// tuple is the synchronization point for idempotent processing.
type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("account_id", uuid.UUID{}),
		field.String("bucket").NotEmpty().Immutable(),
		field.String("object_name").NotEmpty().Immutable(),
		field.String("generation").NotEmpty().Immutable(),
		field.String("metageneration").Optional().Nillable(),
		field.String("content_type").Optional().Nillable(),
		field.Int64("size").Optional().Nillable(),
		field.String("status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ExtractionStatuses...)),
		field.String("failure_reason").Optional().Nillable(),
		field.String("raw_output").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("extractions").
			Field("account_id").
			Unique().
			Required(),
		edge.To("items", ReceiptItem.Type),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bucket", "object_name", "generation").Unique(),
		index.Fields("account_id", "status", "created_at"),
	}
}
