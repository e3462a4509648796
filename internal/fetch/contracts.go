package fetch

import (
	"context"
	"errors"
)

// ObjectFetcher retrieves the raw bytes of one storage object, pinned to a
// specific generation so redeliveries read the same content.
type ObjectFetcher interface {
	Fetch(ctx context.Context, bucket, objectName, generation string) ([]byte, error)
}

// Error carries the transient/permanent classification the pipeline needs to
// decide between retrying and failing the extraction.
type Error struct {
	Transient bool
	Cause     error
}

func (e *Error) Error() string {
	return "fetch: " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Transient reports whether err is worth retrying. Context deadlines count:
// a per-attempt timeout is a timeout, not a verdict on the object.
func Transient(err error) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Transient
	}
	return errors.Is(err, context.DeadlineExceeded)
}
