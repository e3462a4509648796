package aggregate

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
)

// ItemStore persists exploded line items.
type ItemStore interface {
	// InsertIgnore writes the item unless a row with the same
	// (extraction_id, line_index) already exists. It reports whether a new
	// row was written.
	InsertIgnore(ctx context.Context, item *entity.ReceiptItem) (bool, error)
}

// StatStore persists running item statistics. Implementations back the
// compare-and-set cycle the engine runs under contention.
type StatStore interface {
	// Get returns the statistic for (scope, itemKey), or nil when none
	// exists yet.
	Get(ctx context.Context, scope, itemKey string) (*entity.ItemStat, error)
	// Init creates the statistic row unless one already exists for its
	// (scope, item_key). It reports whether the row was created.
	Init(ctx context.Context, stat *entity.ItemStat) (bool, error)
	// CompareAndUpdate replaces the mutable fields of the row identified by
	// id, but only if its count still equals expectedCount. It reports
	// whether the update applied.
	CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedCount int64, next *entity.ItemStat) (bool, error)
}

// NormalizeItemKey folds an item name into its aggregation grouping key:
// lower-cased, with runs of whitespace collapsed to single spaces.
func NormalizeItemKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
