package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/gen/ent"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/account"
)

// AccountRepository creates and reads accounts. Accounts arrive implicitly
// with the first notification that references them.
type AccountRepository interface {
	Ensure(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type accountRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewAccountRepository(entc *ent.Client, log *slog.Logger) AccountRepository {
	return &accountRepo{ent: entc, log: log}
}

// Ensure creates the account row if it does not exist yet.
func (r *accountRepo) Ensure(ctx context.Context, id uuid.UUID) error {
	err := r.ent.Account.
		Create().
		SetID(id).
		OnConflictColumns(account.FieldID).
		Ignore().
		Exec(ctx)
	if err != nil {
		r.log.Error("ensure account failed", "account_id", id, "err", err)
		return err
	}
	return nil
}

func (r *accountRepo) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.ent.Account.Query().Where(account.ID(id)).Exist(ctx)
}
