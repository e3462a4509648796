package pipeline

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
	"github.com/joseph-ayodele/receipts-pipeline/internal/parse"
)

// ExtractionStore owns Extraction rows. The identity unique index behind
// FindByIdentity/CreatePending is the pipeline's synchronization point.
type ExtractionStore interface {
	// FindByIdentity returns the record for an identity, or nil when none.
	FindByIdentity(ctx context.Context, id notify.Identity) (*entity.Extraction, error)
	// CreatePending creates a PENDING record for the message, or returns the
	// existing record when the identity is already taken. The bool reports
	// whether a new row was created.
	CreatePending(ctx context.Context, msg notify.ProcessingMessage, accountID uuid.UUID) (*entity.Extraction, bool, error)
	// MarkParsed transitions PENDING -> PARSED and attaches outputs.
	MarkParsed(ctx context.Context, id uuid.UUID, extracted json.RawMessage, rawOutput string) error
	// MarkFailed transitions PENDING -> FAILED with a reason.
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
}

// AccountStore creates owner accounts on first sight.
type AccountStore interface {
	Ensure(ctx context.Context, id uuid.UUID) error
}

// Aggregator folds a parsed extraction into items and statistics.
type Aggregator interface {
	Apply(ctx context.Context, rec *entity.Extraction, lines []parse.LineItem) error
}
