package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
)

// Extraction is the durable record of one attempt to turn an uploaded
// document into structured data. Exactly one exists per
// (bucket, object_name, generation) identity.
type Extraction struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	Bucket         string
	ObjectName     string
	Generation     string
	Metageneration *string
	ContentType    *string
	Size           *int64
	Status         constants.ExtractionStatus
	FailureReason  *string
	RawOutput      *string
	ExtractedJSON  json.RawMessage
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Terminal reports whether the record has reached a final status.
func (e *Extraction) Terminal() bool {
	return e != nil && e.Status.IsTerminal()
}
