// Code generated by ent, DO NOT EDIT.

package itemstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the itemstat type in the database.
	Label = "item_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldScope holds the string denoting the scope field in the database.
	FieldScope = "scope"
	// FieldItemKey holds the string denoting the item_key field in the database.
	FieldItemKey = "item_key"
	// FieldCount holds the string denoting the count field in the database.
	FieldCount = "count"
	// FieldTotalSpend holds the string denoting the total_spend field in the database.
	FieldTotalSpend = "total_spend"
	// FieldMinPrice holds the string denoting the min_price field in the database.
	FieldMinPrice = "min_price"
	// FieldMaxPrice holds the string denoting the max_price field in the database.
	FieldMaxPrice = "max_price"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the itemstat in the database.
	Table = "item_stats"
)

// Columns holds all SQL columns for itemstat fields.
var Columns = []string{
	FieldID,
	FieldScope,
	FieldItemKey,
	FieldCount,
	FieldTotalSpend,
	FieldMinPrice,
	FieldMaxPrice,
	FieldLastSeen,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ScopeValidator is a validator for the "scope" field. It is called by the builders before save.
	ScopeValidator func(string) error
	// ItemKeyValidator is a validator for the "item_key" field. It is called by the builders before save.
	ItemKeyValidator func(string) error
	// CountValidator is a validator for the "count" field. It is called by the builders before save.
	CountValidator func(int64) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ItemStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByScope orders the results by the scope field.
func ByScope(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScope, opts...).ToFunc()
}

// ByItemKey orders the results by the item_key field.
func ByItemKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldItemKey, opts...).ToFunc()
}

// ByCount orders the results by the count field.
func ByCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCount, opts...).ToFunc()
}

// ByTotalSpend orders the results by the total_spend field.
func ByTotalSpend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalSpend, opts...).ToFunc()
}

// ByMinPrice orders the results by the min_price field.
func ByMinPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinPrice, opts...).ToFunc()
}

// ByMaxPrice orders the results by the max_price field.
func ByMaxPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxPrice, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
