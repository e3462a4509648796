package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GCSFetcher reads objects from Google Cloud Storage.
type GCSFetcher struct {
	client *storage.Client
	logger *slog.Logger
}

func NewGCSFetcher(ctx context.Context, logger *slog.Logger) (*GCSFetcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSFetcher{client: client, logger: logger}, nil
}

// Fetch reads the full object content. When the notification carries a
// numeric generation the read is pinned to it, so a later overwrite of the
// same object name cannot change what a redelivered notification sees.
func (f *GCSFetcher) Fetch(ctx context.Context, bucket, objectName, generation string) ([]byte, error) {
	obj := f.client.Bucket(bucket).Object(objectName)
	if gen, err := strconv.ParseInt(generation, 10, 64); err == nil && gen > 0 {
		obj = obj.Generation(gen)
	}

	r, err := obj.NewReader(ctx)
	if err != nil {
		return nil, classify(err)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			f.logger.Warn("closing object reader", "bucket", bucket, "object", objectName, "error", cerr)
		}
	}()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, classify(err)
	}
	f.logger.Debug("object fetched", "bucket", bucket, "object", objectName, "generation", generation, "bytes", len(data))
	return data, nil
}

// classify wraps storage errors with a retryability verdict. Rate limits and
// server-side errors are transient; missing objects and bad requests are not.
func classify(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		transient := gerr.Code == 429 || gerr.Code >= 500
		return &Error{Transient: transient, Cause: err}
	}
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return &Error{Transient: false, Cause: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Transient: true, Cause: err}
	}
	// Network-level failures without an HTTP status are assumed transient.
	return &Error{Transient: true, Cause: err}
}
