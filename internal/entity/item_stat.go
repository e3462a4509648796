package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemStat is the running aggregate for one item key within one scope.
// Scope is either an account UUID string or constants.GlobalScope.
type ItemStat struct {
	ID         uuid.UUID
	Scope      string
	ItemKey    string
	Count      int64
	TotalSpend float64
	MinPrice   float64
	MaxPrice   float64
	LastSeen   time.Time
	UpdatedAt  time.Time
}
