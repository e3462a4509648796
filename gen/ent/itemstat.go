// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/itemstat"
)

// ItemStat is the model entity for the ItemStat schema.
type ItemStat struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Scope holds the value of the "scope" field.
	Scope string `json:"scope,omitempty"`
	// ItemKey holds the value of the "item_key" field.
	ItemKey string `json:"item_key,omitempty"`
	// Count holds the value of the "count" field.
	Count int64 `json:"count,omitempty"`
	// TotalSpend holds the value of the "total_spend" field.
	TotalSpend float64 `json:"total_spend,omitempty"`
	// MinPrice holds the value of the "min_price" field.
	MinPrice float64 `json:"min_price,omitempty"`
	// MaxPrice holds the value of the "max_price" field.
	MaxPrice float64 `json:"max_price,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen time.Time `json:"last_seen,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ItemStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case itemstat.FieldTotalSpend, itemstat.FieldMinPrice, itemstat.FieldMaxPrice:
			values[i] = new(sql.NullFloat64)
		case itemstat.FieldCount:
			values[i] = new(sql.NullInt64)
		case itemstat.FieldScope, itemstat.FieldItemKey:
			values[i] = new(sql.NullString)
		case itemstat.FieldLastSeen, itemstat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case itemstat.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ItemStat fields.
func (_m *ItemStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case itemstat.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case itemstat.FieldScope:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field scope", values[i])
			} else if value.Valid {
				_m.Scope = value.String
			}
		case itemstat.FieldItemKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field item_key", values[i])
			} else if value.Valid {
				_m.ItemKey = value.String
			}
		case itemstat.FieldCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field count", values[i])
			} else if value.Valid {
				_m.Count = value.Int64
			}
		case itemstat.FieldTotalSpend:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_spend", values[i])
			} else if value.Valid {
				_m.TotalSpend = value.Float64
			}
		case itemstat.FieldMinPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_price", values[i])
			} else if value.Valid {
				_m.MinPrice = value.Float64
			}
		case itemstat.FieldMaxPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_price", values[i])
			} else if value.Valid {
				_m.MaxPrice = value.Float64
			}
		case itemstat.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case itemstat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ItemStat.
// This includes values selected through modifiers, order, etc.
func (_m *ItemStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ItemStat.
// Note that you need to call ItemStat.Unwrap() before calling this method if this ItemStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ItemStat) Update() *ItemStatUpdateOne {
	return NewItemStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ItemStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ItemStat) Unwrap() *ItemStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ItemStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ItemStat) String() string {
	var builder strings.Builder
	builder.WriteString("ItemStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("scope=")
	builder.WriteString(_m.Scope)
	builder.WriteString(", ")
	builder.WriteString("item_key=")
	builder.WriteString(_m.ItemKey)
	builder.WriteString(", ")
	builder.WriteString("count=")
	builder.WriteString(fmt.Sprintf("%v", _m.Count))
	builder.WriteString(", ")
	builder.WriteString("total_spend=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalSpend))
	builder.WriteString(", ")
	builder.WriteString("min_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinPrice))
	builder.WriteString(", ")
	builder.WriteString("max_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxPrice))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ItemStats is a parsable slice of ItemStat.
type ItemStats []*ItemStat
