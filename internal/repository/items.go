package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/gen/ent"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/receiptitem"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/utils"
)

// ItemRepository is the ent-backed aggregate.ItemStore plus the read surface
// for the query API.
type ItemRepository interface {
	InsertIgnore(ctx context.Context, item *entity.ReceiptItem) (bool, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, itemKey string) ([]*entity.ReceiptItem, error)
}

type itemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewItemRepository(entc *ent.Client, log *slog.Logger) ItemRepository {
	return &itemRepo{ent: entc, log: log}
}

// InsertIgnore writes the item row. A constraint collision on
// (extraction_id, line_index) means the line was already applied by an
// earlier attempt; that is reported, not treated as an error.
func (r *itemRepo) InsertIgnore(ctx context.Context, item *entity.ReceiptItem) (bool, error) {
	err := r.ent.ReceiptItem.Create().
		SetID(item.ID).
		SetExtractionID(item.ExtractionID).
		SetAccountID(item.AccountID).
		SetLineIndex(item.LineIndex).
		SetName(item.Name).
		SetItemKey(item.ItemKey).
		SetQuantity(item.Quantity).
		SetUnitPrice(item.UnitPrice).
		SetLineTotal(item.LineTotal).
		SetPurchasedAt(item.PurchasedAt).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return false, nil
	}
	if err != nil {
		r.log.Error("insert item failed", "extraction_id", item.ExtractionID, "line_index", item.LineIndex, "err", err)
		return false, err
	}
	return true, nil
}

func (r *itemRepo) ListByAccount(ctx context.Context, accountID uuid.UUID, itemKey string) ([]*entity.ReceiptItem, error) {
	q := r.ent.ReceiptItem.Query().Where(receiptitem.AccountID(accountID))
	if itemKey != "" {
		q = q.Where(receiptitem.ItemKey(itemKey))
	}
	rows, err := q.Order(receiptitem.ByPurchasedAt()).All(ctx)
	if err != nil {
		r.log.Error("failed to list items", "account_id", accountID, "error", err)
		return nil, err
	}
	result := make([]*entity.ReceiptItem, len(rows))
	for i, row := range rows {
		result[i] = utils.ToReceiptItem(row)
	}
	return result, nil
}
