// receipts-fn is the Cloud Functions deployment of the pipeline: Eventarc
// delivers GCS object-finalized events directly, so there is no HTTP
// receiver and no worker queue. One invocation drives one notification to a
// terminal extraction state.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"

	"github.com/joseph-ayodele/receipts-pipeline/internal/aggregate"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/fetch"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
	"github.com/joseph-ayodele/receipts-pipeline/internal/pipeline"
	"github.com/joseph-ayodele/receipts-pipeline/internal/repository"
)

var (
	pipelineInstance *pipeline.Pipeline
	once             sync.Once
	initErr          error
)

func init() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	functions.CloudEvent("ProcessReceiptUpload", processReceiptUpload)
}

// main is required by the Go Functions Framework.
func main() {}

func initPipeline(ctx context.Context) (*pipeline.Pipeline, error) {
	logger := slog.Default()

	// The function never serves HTTP itself, so only the database part of the
	// config matters here.
	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	entc, _, err := repository.Open(ctx, repository.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	fetcher, err := fetch.NewGCSFetcher(ctx, logger)
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}

	itemsRepo := repository.NewItemRepository(entc, logger)
	statsRepo := repository.NewStatRepository(entc, logger)
	engine := aggregate.NewEngine(itemsRepo, statsRepo, logger)

	return pipeline.New(
		repository.NewExtractionRepository(entc, logger),
		repository.NewAccountRepository(entc, logger),
		fetcher,
		engine,
		pipeline.Config{
			FetchTimeout:     cfg.Fetch.Timeout,
			FetchMaxAttempts: cfg.Fetch.MaxAttempts,
			FetchBackoffBase: cfg.Fetch.BackoffBase,
			ParseTimeout:     cfg.Parse.Timeout,
		},
		logger,
	), nil
}

func processReceiptUpload(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		pipelineInstance, initErr = initPipeline(context.Background())
	})
	if initErr != nil {
		slog.Error("critical error during function initialization", "error", initErr)
		return initErr
	}

	var env notify.Envelope
	if err := json.Unmarshal(e.Data(), &env); err != nil {
		slog.Error("failed to unmarshal event data", "error", err, "data", string(e.Data()))
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	msg, err := notify.Normalize(env)
	if err != nil {
		// Malformed events cannot succeed on redelivery; drop them.
		slog.Error("dropping invalid event", "error", err)
		return nil
	}

	return pipelineInstance.Process(ctx, msg)
}
