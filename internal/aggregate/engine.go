package aggregate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/parse"
)

// casAttempts bounds the compare-and-set cycle per statistic row. Each retry
// re-reads the row, so losing the race repeatedly means heavy contention on
// one item key, not a correctness problem.
const casAttempts = 10

// Engine explodes a parsed extraction into item rows and folds each newly
// written row into the owner-scoped and global statistics.
type Engine struct {
	items  ItemStore
	stats  StatStore
	logger *slog.Logger
}

func NewEngine(items ItemStore, stats StatStore, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{items: items, stats: stats, logger: logger}
}

// Apply writes the line items for rec and updates statistics. It is safe to
// re-run for the same extraction: items are keyed by (extraction_id,
// line_index) and statistics are only touched for items written this call.
func (e *Engine) Apply(ctx context.Context, rec *entity.Extraction, lines []parse.LineItem) error {
	for i, line := range lines {
		key := NormalizeItemKey(line.Name)
		if line.Quantity <= 0 || line.UnitPrice <= 0 || key == "" {
			e.logger.Warn("skipping unaggregatable line",
				"extraction_id", rec.ID, "line_index", i,
				"name", line.Name, "quantity", line.Quantity, "unit_price", line.UnitPrice)
			continue
		}

		item := &entity.ReceiptItem{
			ID:           uuid.New(),
			ExtractionID: rec.ID,
			AccountID:    rec.AccountID,
			LineIndex:    i,
			Name:         line.Name,
			ItemKey:      key,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			LineTotal:    line.LineTotal,
			PurchasedAt:  line.PurchasedAt,
		}
		inserted, err := e.items.InsertIgnore(ctx, item)
		if err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
		if !inserted {
			e.logger.Debug("line already applied", "extraction_id", rec.ID, "line_index", i)
			continue
		}

		// The owner-scoped and global rows are distinct, so both updates can
		// run at once.
		g, gctx := errgroup.WithContext(ctx)
		for _, scope := range []string{rec.AccountID.String(), constants.GlobalScope} {
			g.Go(func() error {
				return e.applyStat(gctx, scope, item)
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("aggregate item %d: %w", i, err)
		}
	}
	return nil
}

// applyStat folds one item into one (scope, item_key) statistic using a
// read, increment, compare-and-set cycle. A lost race re-reads and retries.
func (e *Engine) applyStat(ctx context.Context, scope string, item *entity.ReceiptItem) error {
	for attempt := 0; attempt < casAttempts; attempt++ {
		cur, err := e.stats.Get(ctx, scope, item.ItemKey)
		if err != nil {
			return err
		}
		if cur == nil {
			created, err := e.stats.Init(ctx, &entity.ItemStat{
				ID:         uuid.New(),
				Scope:      scope,
				ItemKey:    item.ItemKey,
				Count:      1,
				TotalSpend: item.LineTotal,
				MinPrice:   item.UnitPrice,
				MaxPrice:   item.UnitPrice,
				LastSeen:   item.PurchasedAt,
			})
			if err != nil {
				return err
			}
			if created {
				return nil
			}
			// Another writer created the row first; fresh read next round.
			continue
		}

		next := increment(cur, item)
		ok, err := e.stats.CompareAndUpdate(ctx, cur.ID, cur.Count, next)
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		e.logger.Debug("stat update conflict, retrying",
			"scope", scope, "item_key", item.ItemKey, "attempt", attempt+1)
	}
	return common.WrapError(common.ErrConflict,
		fmt.Sprintf("stat %s/%s: %d attempts exhausted", scope, item.ItemKey, casAttempts))
}

func increment(cur *entity.ItemStat, item *entity.ReceiptItem) *entity.ItemStat {
	next := *cur
	next.Count = cur.Count + 1
	next.TotalSpend = cur.TotalSpend + item.LineTotal
	if item.UnitPrice < next.MinPrice {
		next.MinPrice = item.UnitPrice
	}
	if item.UnitPrice > next.MaxPrice {
		next.MaxPrice = item.UnitPrice
	}
	if item.PurchasedAt.After(next.LastSeen) {
		next.LastSeen = item.PurchasedAt
	}
	return &next
}
