// Code generated by ent, DO NOT EDIT.

package itemstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldID, id))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldScope, v))
}

// ItemKey applies equality check predicate on the "item_key" field. It's identical to ItemKeyEQ.
func ItemKey(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldItemKey, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldCount, v))
}

// TotalSpend applies equality check predicate on the "total_spend" field. It's identical to TotalSpendEQ.
func TotalSpend(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldTotalSpend, v))
}

// MinPrice applies equality check predicate on the "min_price" field. It's identical to MinPriceEQ.
func MinPrice(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldMinPrice, v))
}

// MaxPrice applies equality check predicate on the "max_price" field. It's identical to MaxPriceEQ.
func MaxPrice(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldMaxPrice, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldLastSeen, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContainsFold(FieldScope, v))
}

// ItemKeyEQ applies the EQ predicate on the "item_key" field.
func ItemKeyEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldItemKey, v))
}

// ItemKeyNEQ applies the NEQ predicate on the "item_key" field.
func ItemKeyNEQ(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldItemKey, v))
}

// ItemKeyIn applies the In predicate on the "item_key" field.
func ItemKeyIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldItemKey, vs...))
}

// ItemKeyNotIn applies the NotIn predicate on the "item_key" field.
func ItemKeyNotIn(vs ...string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldItemKey, vs...))
}

// ItemKeyGT applies the GT predicate on the "item_key" field.
func ItemKeyGT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldItemKey, v))
}

// ItemKeyGTE applies the GTE predicate on the "item_key" field.
func ItemKeyGTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldItemKey, v))
}

// ItemKeyLT applies the LT predicate on the "item_key" field.
func ItemKeyLT(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldItemKey, v))
}

// ItemKeyLTE applies the LTE predicate on the "item_key" field.
func ItemKeyLTE(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldItemKey, v))
}

// ItemKeyContains applies the Contains predicate on the "item_key" field.
func ItemKeyContains(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContains(FieldItemKey, v))
}

// ItemKeyHasPrefix applies the HasPrefix predicate on the "item_key" field.
func ItemKeyHasPrefix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasPrefix(FieldItemKey, v))
}

// ItemKeyHasSuffix applies the HasSuffix predicate on the "item_key" field.
func ItemKeyHasSuffix(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldHasSuffix(FieldItemKey, v))
}

// ItemKeyEqualFold applies the EqualFold predicate on the "item_key" field.
func ItemKeyEqualFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEqualFold(FieldItemKey, v))
}

// ItemKeyContainsFold applies the ContainsFold predicate on the "item_key" field.
func ItemKeyContainsFold(v string) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldContainsFold(FieldItemKey, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldCount, v))
}

// TotalSpendEQ applies the EQ predicate on the "total_spend" field.
func TotalSpendEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldTotalSpend, v))
}

// TotalSpendNEQ applies the NEQ predicate on the "total_spend" field.
func TotalSpendNEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldTotalSpend, v))
}

// TotalSpendIn applies the In predicate on the "total_spend" field.
func TotalSpendIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldTotalSpend, vs...))
}

// TotalSpendNotIn applies the NotIn predicate on the "total_spend" field.
func TotalSpendNotIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldTotalSpend, vs...))
}

// TotalSpendGT applies the GT predicate on the "total_spend" field.
func TotalSpendGT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldTotalSpend, v))
}

// TotalSpendGTE applies the GTE predicate on the "total_spend" field.
func TotalSpendGTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldTotalSpend, v))
}

// TotalSpendLT applies the LT predicate on the "total_spend" field.
func TotalSpendLT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldTotalSpend, v))
}

// TotalSpendLTE applies the LTE predicate on the "total_spend" field.
func TotalSpendLTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldTotalSpend, v))
}

// MinPriceEQ applies the EQ predicate on the "min_price" field.
func MinPriceEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldMinPrice, v))
}

// MinPriceNEQ applies the NEQ predicate on the "min_price" field.
func MinPriceNEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldMinPrice, v))
}

// MinPriceIn applies the In predicate on the "min_price" field.
func MinPriceIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldMinPrice, vs...))
}

// MinPriceNotIn applies the NotIn predicate on the "min_price" field.
func MinPriceNotIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldMinPrice, vs...))
}

// MinPriceGT applies the GT predicate on the "min_price" field.
func MinPriceGT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldMinPrice, v))
}

// MinPriceGTE applies the GTE predicate on the "min_price" field.
func MinPriceGTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldMinPrice, v))
}

// MinPriceLT applies the LT predicate on the "min_price" field.
func MinPriceLT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldMinPrice, v))
}

// MinPriceLTE applies the LTE predicate on the "min_price" field.
func MinPriceLTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldMinPrice, v))
}

// MaxPriceEQ applies the EQ predicate on the "max_price" field.
func MaxPriceEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldMaxPrice, v))
}

// MaxPriceNEQ applies the NEQ predicate on the "max_price" field.
func MaxPriceNEQ(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldMaxPrice, v))
}

// MaxPriceIn applies the In predicate on the "max_price" field.
func MaxPriceIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldMaxPrice, vs...))
}

// MaxPriceNotIn applies the NotIn predicate on the "max_price" field.
func MaxPriceNotIn(vs ...float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldMaxPrice, vs...))
}

// MaxPriceGT applies the GT predicate on the "max_price" field.
func MaxPriceGT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldMaxPrice, v))
}

// MaxPriceGTE applies the GTE predicate on the "max_price" field.
func MaxPriceGTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldMaxPrice, v))
}

// MaxPriceLT applies the LT predicate on the "max_price" field.
func MaxPriceLT(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldMaxPrice, v))
}

// MaxPriceLTE applies the LTE predicate on the "max_price" field.
func MaxPriceLTE(v float64) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldMaxPrice, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldLastSeen, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ItemStat {
	return predicate.ItemStat(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ItemStat) predicate.ItemStat {
	return predicate.ItemStat(sql.NotPredicates(p))
}
