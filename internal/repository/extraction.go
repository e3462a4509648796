package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent"
	"github.com/joseph-ayodele/receipts-pipeline/gen/ent/extraction"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
	"github.com/joseph-ayodele/receipts-pipeline/internal/utils"
)

// ExtractionRepository is the ent-backed pipeline.ExtractionStore plus the
// read surface for the query API.
type ExtractionRepository interface {
	FindByIdentity(ctx context.Context, id notify.Identity) (*entity.Extraction, error)
	CreatePending(ctx context.Context, msg notify.ProcessingMessage, accountID uuid.UUID) (*entity.Extraction, bool, error)
	MarkParsed(ctx context.Context, id uuid.UUID, extracted json.RawMessage, rawOutput string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Extraction, error)
}

type extractionRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewExtractionRepository(entc *ent.Client, log *slog.Logger) ExtractionRepository {
	return &extractionRepo{ent: entc, log: log}
}

func (r *extractionRepo) FindByIdentity(ctx context.Context, id notify.Identity) (*entity.Extraction, error) {
	row, err := r.ent.Extraction.Query().
		Where(
			extraction.Bucket(id.Bucket),
			extraction.ObjectName(id.ObjectName),
			extraction.Generation(id.Generation),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("extraction lookup failed", "identity", id.String(), "err", err)
		return nil, err
	}
	return utils.ToExtraction(row), nil
}

// CreatePending claims the identity. A unique-constraint collision means
// another delivery claimed it first; the existing row is returned instead.
func (r *extractionRepo) CreatePending(ctx context.Context, msg notify.ProcessingMessage, accountID uuid.UUID) (*entity.Extraction, bool, error) {
	builder := r.ent.Extraction.Create().
		SetAccountID(accountID).
		SetBucket(msg.Bucket).
		SetObjectName(msg.ObjectName).
		SetGeneration(msg.Generation).
		SetStatus(string(constants.StatusPending))
	if msg.Metageneration != "" {
		builder = builder.SetMetageneration(msg.Metageneration)
	}
	if msg.ContentType != "" {
		builder = builder.SetContentType(msg.ContentType)
	}
	if msg.Size > 0 {
		builder = builder.SetSize(msg.Size)
	}

	row, err := builder.Save(ctx)
	if ent.IsConstraintError(err) {
		existing, lerr := r.FindByIdentity(ctx, msg.Identity())
		if lerr != nil {
			return nil, false, lerr
		}
		if existing == nil {
			return nil, false, common.WrapError(common.ErrDatabase, "identity vanished after conflict")
		}
		return existing, false, nil
	}
	if err != nil {
		r.log.Error("create pending extraction failed", "identity", msg.Identity().String(), "err", err)
		return nil, false, err
	}
	r.log.Info("extraction created", "extraction_id", row.ID, "identity", msg.Identity().String())
	return utils.ToExtraction(row), true, nil
}

func (r *extractionRepo) MarkParsed(ctx context.Context, id uuid.UUID, extracted json.RawMessage, rawOutput string) error {
	n, err := r.ent.Extraction.Update().
		Where(extraction.ID(id), extraction.Status(string(constants.StatusPending))).
		SetStatus(string(constants.StatusParsed)).
		SetExtractedJSON(extracted).
		SetRawOutput(rawOutput).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction finish(PARSED) failed", "extraction_id", id, "err", err)
		return err
	}
	if n == 0 {
		// Terminal rows never transition again.
		return common.WrapError(common.ErrConflict, "extraction not pending")
	}
	r.log.Info("extraction finished (PARSED)", "extraction_id", id)
	return nil
}

func (r *extractionRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	n, err := r.ent.Extraction.Update().
		Where(extraction.ID(id), extraction.Status(string(constants.StatusPending))).
		SetStatus(string(constants.StatusFailed)).
		SetFailureReason(reason).
		Save(ctx)
	if err != nil {
		r.log.Error("extraction finish(FAILED) failed", "extraction_id", id, "err", err)
		return err
	}
	if n == 0 {
		return common.WrapError(common.ErrConflict, "extraction not pending")
	}
	r.log.Warn("extraction finished (FAILED)", "extraction_id", id, "reason", reason)
	return nil
}

func (r *extractionRepo) ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Extraction, error) {
	rows, err := r.ent.Extraction.Query().
		Where(extraction.AccountID(accountID)).
		Order(extraction.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list extractions", "account_id", accountID, "error", err)
		return nil, err
	}
	result := make([]*entity.Extraction, len(rows))
	for i, row := range rows {
		result[i] = utils.ToExtraction(row)
	}
	return result, nil
}
