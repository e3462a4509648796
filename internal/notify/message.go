package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
)

// MetadataAccountKey overrides path-based owner resolution when present.
const MetadataAccountKey = "account_id"

// Envelope is the raw JSON body of a storage-change notification. The object
// name arrives as either "objectName" or the GCS-style "name".
type Envelope struct {
	Bucket         string            `json:"bucket"`
	ObjectName     string            `json:"objectName"`
	Name           string            `json:"name"`
	ContentType    string            `json:"contentType"`
	Size           int64             `json:"size,string"`
	Generation     string            `json:"generation"`
	Metageneration string            `json:"metageneration"`
	TimeCreated    time.Time         `json:"timeCreated"`
	Metadata       map[string]string `json:"metadata"`
}

// Identity is the deduplication key for one object change.
type Identity struct {
	Bucket     string
	ObjectName string
	Generation string
}

func (id Identity) String() string {
	return fmt.Sprintf("%s/%s#%s", id.Bucket, id.ObjectName, id.Generation)
}

// ProcessingMessage is the canonical, normalized form of one notification.
// It is transient: only the Extraction record derived from it is persisted.
type ProcessingMessage struct {
	Bucket         string
	ObjectName     string
	ContentType    string
	Size           int64
	Generation     string
	Metageneration string
	TimeCreated    time.Time
	Metadata       map[string]string
}

// Identity returns the (bucket, objectName, generation) tuple.
func (m ProcessingMessage) Identity() Identity {
	return Identity{Bucket: m.Bucket, ObjectName: m.ObjectName, Generation: m.Generation}
}

// AccountID resolves the owning account from the metadata override or the
// leading object-path segment. Either must be a UUID.
func (m ProcessingMessage) AccountID() (uuid.UUID, error) {
	raw := m.Metadata[MetadataAccountKey]
	if raw == "" {
		raw, _, _ = strings.Cut(m.ObjectName, "/")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.WrapError(common.ErrInvalidNotification, fmt.Sprintf("no account owns object %q", m.ObjectName))
	}
	return id, nil
}

// Normalize converts a raw envelope into a ProcessingMessage. It fails with
// ErrInvalidNotification when bucket or object name is missing, and folds an
// empty metadata map to nil so redeliveries compare equal.
func Normalize(env Envelope) (ProcessingMessage, error) {
	objectName := env.ObjectName
	if objectName == "" {
		objectName = env.Name
	}
	if strings.TrimSpace(env.Bucket) == "" || strings.TrimSpace(objectName) == "" {
		return ProcessingMessage{}, common.WrapError(common.ErrInvalidNotification, "bucket and objectName are required")
	}

	metadata := env.Metadata
	if len(metadata) == 0 {
		metadata = nil
	}

	return ProcessingMessage{
		Bucket:         env.Bucket,
		ObjectName:     objectName,
		ContentType:    env.ContentType,
		Size:           env.Size,
		Generation:     env.Generation,
		Metageneration: env.Metageneration,
		TimeCreated:    env.TimeCreated,
		Metadata:       metadata,
	}, nil
}
