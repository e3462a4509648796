package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/fetch"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
	"github.com/joseph-ayodele/receipts-pipeline/internal/parse"
)

// Config bounds the fetch and parse stages.
type Config struct {
	FetchTimeout     time.Duration // per attempt
	FetchMaxAttempts int
	FetchBackoffBase time.Duration // doubles per attempt
	ParseTimeout     time.Duration
}

// Pipeline drives one Processing Message from notification to a terminal
// Extraction record: find-or-create PENDING, fetch, parse, then either
// PARSED plus aggregation or FAILED with a reason.
type Pipeline struct {
	store     ExtractionStore
	accounts  AccountStore
	fetcher   fetch.ObjectFetcher
	engine    Aggregator
	cfg       Config
	logger    *slog.Logger
	parserFor func(constants.Format) (parse.Parser, error)
}

func New(store ExtractionStore, accounts AccountStore, fetcher fetch.ObjectFetcher, engine Aggregator, cfg Config, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.FetchMaxAttempts < 1 {
		cfg.FetchMaxAttempts = 1
	}
	return &Pipeline{
		store:     store,
		accounts:  accounts,
		fetcher:   fetcher,
		engine:    engine,
		cfg:       cfg,
		logger:    logger,
		parserFor: parse.ForFormat,
	}
}

// extractedDoc is the persisted shape of a parse result.
type extractedDoc struct {
	Fields map[string]string `json:"fields"`
	Lines  []parse.LineItem  `json:"lines"`
}

// Process runs the pipeline for one message. A message whose identity
// already has a record (PENDING or terminal) is a no-op: the existing record
// owns that identity and redelivery must not re-run fetch or parse.
func (p *Pipeline) Process(ctx context.Context, msg notify.ProcessingMessage) error {
	identity := msg.Identity()

	if existing, err := p.store.FindByIdentity(ctx, identity); err != nil {
		return fmt.Errorf("lookup %s: %w", identity, err)
	} else if existing != nil {
		p.logger.Info("identity already claimed, skipping", "identity", identity.String(), "status", existing.Status)
		return nil
	}

	accountID, err := msg.AccountID()
	if err != nil {
		return err
	}
	if err := p.accounts.Ensure(ctx, accountID); err != nil {
		return fmt.Errorf("ensure account %s: %w", accountID, err)
	}

	rec, created, err := p.store.CreatePending(ctx, msg, accountID)
	if err != nil {
		return fmt.Errorf("create pending %s: %w", identity, err)
	}
	if !created {
		// Lost the creation race; the winner runs the pipeline.
		p.logger.Info("identity claimed concurrently, skipping", "identity", identity.String(), "status", rec.Status)
		return nil
	}
	p.logger.Info("extraction started", "extraction_id", rec.ID, "identity", identity.String(), "account_id", accountID)

	data, err := p.fetchWithRetry(ctx, identity)
	if err != nil {
		reason := fmt.Sprintf("FetchFailed: %v", err)
		if ferr := p.store.MarkFailed(ctx, rec.ID, reason); ferr != nil {
			p.logger.Error("recording fetch failure", "extraction_id", rec.ID, "error", ferr)
		}
		p.logger.Error("pipeline.fetch.failed", "extraction_id", rec.ID, "identity", identity.String(), "error", err)
		return common.WrapError(common.ErrFetchFailed, identity.String())
	}

	format := constants.FormatForObject(msg.ObjectName, msg.Metadata)
	res, err := p.runParser(ctx, format, data, msg.ObjectName)
	if err != nil {
		reason := fmt.Sprintf("ParseFailed: %v", err)
		if ferr := p.store.MarkFailed(ctx, rec.ID, reason); ferr != nil {
			p.logger.Error("recording parse failure", "extraction_id", rec.ID, "error", ferr)
		}
		p.logger.Error("pipeline.parse.failed", "extraction_id", rec.ID, "format", format, "error", err)
		return common.WrapError(common.ErrParseFailed, identity.String())
	}

	extracted, err := json.Marshal(extractedDoc{Fields: res.Fields, Lines: res.Lines})
	if err != nil {
		return fmt.Errorf("encode extracted data: %w", err)
	}
	if err := p.store.MarkParsed(ctx, rec.ID, extracted, res.RawOutput); err != nil {
		return fmt.Errorf("mark parsed %s: %w", rec.ID, err)
	}
	rec.Status = constants.StatusParsed
	p.logger.Info("pipeline.parse.ok", "extraction_id", rec.ID, "format", format, "lines", len(res.Lines))

	if err := p.engine.Apply(ctx, rec, res.Lines); err != nil {
		// The record is already terminal; aggregation errors are logged,
		// not re-thrown to the notification sender.
		p.logger.Error("pipeline.aggregate.failed", "extraction_id", rec.ID, "error", err)
		return err
	}
	return nil
}

// fetchWithRetry retries transient failures with doubling backoff. Permanent
// failures and exhausted budgets both surface as fetch failures.
func (p *Pipeline) fetchWithRetry(ctx context.Context, id notify.Identity) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.FetchMaxAttempts; attempt++ {
		actx := ctx
		cancel := context.CancelFunc(func() {})
		if p.cfg.FetchTimeout > 0 {
			actx, cancel = context.WithTimeout(ctx, p.cfg.FetchTimeout)
		}
		data, err := p.fetcher.Fetch(actx, id.Bucket, id.ObjectName, id.Generation)
		cancel()
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !fetch.Transient(err) {
			return nil, err
		}
		if attempt < p.cfg.FetchMaxAttempts {
			backoff := p.cfg.FetchBackoffBase << (attempt - 1)
			p.logger.Warn("transient fetch failure, backing off",
				"identity", id.String(), "attempt", attempt, "backoff", backoff, "error", err)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return nil, fmt.Errorf("%d attempts exhausted: %w", p.cfg.FetchMaxAttempts, lastErr)
}

func (p *Pipeline) runParser(ctx context.Context, format constants.Format, data []byte, filenameHint string) (parse.Result, error) {
	parser, err := p.parserFor(format)
	if err != nil {
		return parse.Result{}, err
	}
	if p.cfg.ParseTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.ParseTimeout)
		defer cancel()
	}
	return parser.Parse(ctx, data, filenameHint)
}
