package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReceiptItem is one denormalized line item exploded from a parsed
// extraction. Items are written once, keyed by (extraction_id, line_index),
// and never mutated.
type ReceiptItem struct {
	ID           uuid.UUID
	ExtractionID uuid.UUID
	AccountID    uuid.UUID
	LineIndex    int
	Name         string
	ItemKey      string
	Quantity     float64
	UnitPrice    float64
	LineTotal    float64
	PurchasedAt  time.Time
}
