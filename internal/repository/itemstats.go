package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/gen/ent"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/itemstat"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/utils"
)

// StatRepository is the ent-backed aggregate.StatStore plus the read surface
// for the query API.
type StatRepository interface {
	Get(ctx context.Context, scope, itemKey string) (*entity.ItemStat, error)
	Init(ctx context.Context, stat *entity.ItemStat) (bool, error)
	CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedCount int64, next *entity.ItemStat) (bool, error)
	ListByScope(ctx context.Context, scope string) ([]*entity.ItemStat, error)
}

type statRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewStatRepository(entc *ent.Client, log *slog.Logger) StatRepository {
	return &statRepo{ent: entc, log: log}
}

func (r *statRepo) Get(ctx context.Context, scope, itemKey string) (*entity.ItemStat, error) {
	row, err := r.ent.ItemStat.Query().
		Where(itemstat.Scope(scope), itemstat.ItemKey(itemKey)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("stat lookup failed", "scope", scope, "item_key", itemKey, "err", err)
		return nil, err
	}
	return utils.ToItemStat(row), nil
}

// Init creates the first row for a (scope, item_key). Losing the creation
// race surfaces as created=false and the caller re-reads.
func (r *statRepo) Init(ctx context.Context, stat *entity.ItemStat) (bool, error) {
	err := r.ent.ItemStat.Create().
		SetID(stat.ID).
		SetScope(stat.Scope).
		SetItemKey(stat.ItemKey).
		SetCount(stat.Count).
		SetTotalSpend(stat.TotalSpend).
		SetMinPrice(stat.MinPrice).
		SetMaxPrice(stat.MaxPrice).
		SetLastSeen(stat.LastSeen).
		Exec(ctx)
	if ent.IsConstraintError(err) {
		return false, nil
	}
	if err != nil {
		r.log.Error("init stat failed", "scope", stat.Scope, "item_key", stat.ItemKey, "err", err)
		return false, err
	}
	return true, nil
}

// CompareAndUpdate applies the increment only if the row's count is still
// what the caller read. Zero affected rows means a concurrent writer won.
func (r *statRepo) CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedCount int64, next *entity.ItemStat) (bool, error) {
	n, err := r.ent.ItemStat.Update().
		Where(itemstat.ID(id), itemstat.Count(expectedCount)).
		SetCount(next.Count).
		SetTotalSpend(next.TotalSpend).
		SetMinPrice(next.MinPrice).
		SetMaxPrice(next.MaxPrice).
		SetLastSeen(next.LastSeen).
		Save(ctx)
	if err != nil {
		r.log.Error("stat update failed", "stat_id", id, "err", err)
		return false, err
	}
	return n > 0, nil
}

func (r *statRepo) ListByScope(ctx context.Context, scope string) ([]*entity.ItemStat, error) {
	rows, err := r.ent.ItemStat.Query().
		Where(itemstat.Scope(scope)).
		Order(itemstat.ByItemKey()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list stats", "scope", scope, "error", err)
		return nil, err
	}
	result := make([]*entity.ItemStat, len(rows))
	for i, row := range rows {
		result[i] = utils.ToItemStat(row)
	}
	return result, nil
}
