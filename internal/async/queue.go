package async

import (
	"context"
	"time"

	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
)

// Job is the smallest useful unit. Extend as needed later (trace, retry, etc).
type Job struct {
	Message     notify.ProcessingMessage
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Processor runs one Processing Message to a terminal extraction state.
type Processor interface {
	Process(ctx context.Context, msg notify.ProcessingMessage) error
}
