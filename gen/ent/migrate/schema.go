// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AccountsColumns holds the columns for the "accounts" table.
	AccountsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AccountsTable holds the schema information for the "accounts" table.
	AccountsTable = &schema.Table{
		Name:       "accounts",
		Columns:    AccountsColumns,
		PrimaryKey: []*schema.Column{AccountsColumns[0]},
	}
	// ExtractionsColumns holds the columns for the "extractions" table.
	ExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bucket", Type: field.TypeString},
		{Name: "object_name", Type: field.TypeString},
		{Name: "generation", Type: field.TypeString},
		{Name: "metageneration", Type: field.TypeString, Nullable: true},
		{Name: "content_type", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeInt64, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "raw_output", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "account_id", Type: field.TypeUUID},
	}
	// ExtractionsTable holds the schema information for the "extractions" table.
	ExtractionsTable = &schema.Table{
		Name:       "extractions",
		Columns:    ExtractionsColumns,
		PrimaryKey: []*schema.Column{ExtractionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extractions_accounts_extractions",
				Columns:    []*schema.Column{ExtractionsColumns[13]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_bucket_object_name_generation",
				Unique:  true,
				Columns: []*schema.Column{ExtractionsColumns[1], ExtractionsColumns[2], ExtractionsColumns[3]},
			},
			{
				Name:    "extraction_account_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionsColumns[13], ExtractionsColumns[7], ExtractionsColumns[11]},
			},
		},
	}
	// ItemStatsColumns holds the columns for the "item_stats" table.
	ItemStatsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "scope", Type: field.TypeString},
		{Name: "item_key", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt64},
		{Name: "total_spend", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(14,2)"}},
		{Name: "min_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "max_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "last_seen", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemStatsTable holds the schema information for the "item_stats" table.
	ItemStatsTable = &schema.Table{
		Name:       "item_stats",
		Columns:    ItemStatsColumns,
		PrimaryKey: []*schema.Column{ItemStatsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "itemstat_scope_item_key",
				Unique:  true,
				Columns: []*schema.Column{ItemStatsColumns[1], ItemStatsColumns[2]},
			},
			{
				Name:    "itemstat_item_key",
				Unique:  false,
				Columns: []*schema.Column{ItemStatsColumns[2]},
			},
		},
	}
	// ReceiptItemsColumns holds the columns for the "receipt_items" table.
	ReceiptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "line_index", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "item_key", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,3)"}},
		{Name: "unit_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "purchased_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "account_id", Type: field.TypeUUID},
		{Name: "extraction_id", Type: field.TypeUUID},
	}
	// ReceiptItemsTable holds the schema information for the "receipt_items" table.
	ReceiptItemsTable = &schema.Table{
		Name:       "receipt_items",
		Columns:    ReceiptItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_items_accounts_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[8]},
				RefColumns: []*schema.Column{AccountsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "receipt_items_extractions_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[9]},
				RefColumns: []*schema.Column{ExtractionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptitem_extraction_id_line_index",
				Unique:  true,
				Columns: []*schema.Column{ReceiptItemsColumns[9], ReceiptItemsColumns[1]},
			},
			{
				Name:    "receiptitem_account_id_item_key",
				Unique:  false,
				Columns: []*schema.Column{ReceiptItemsColumns[8], ReceiptItemsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AccountsTable,
		ExtractionsTable,
		ItemStatsTable,
		ReceiptItemsTable,
	}
)

func init() {
	AccountsTable.Annotation = &entsql.Annotation{
		Table: "accounts",
	}
	ExtractionsTable.ForeignKeys[0].RefTable = AccountsTable
	ExtractionsTable.Annotation = &entsql.Annotation{
		Table: "extractions",
	}
	ItemStatsTable.Annotation = &entsql.Annotation{
		Table: "item_stats",
	}
	ReceiptItemsTable.ForeignKeys[0].RefTable = AccountsTable
	ReceiptItemsTable.ForeignKeys[1].RefTable = ExtractionsTable
	ReceiptItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_items",
	}
}
