package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/fetch"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
	"github.com/joseph-ayodele/receipts-pipeline/internal/parse"
)

type memExtractionStore struct {
	mu   sync.Mutex
	recs map[notify.Identity]*entity.Extraction
}

func newMemExtractionStore() *memExtractionStore {
	return &memExtractionStore{recs: map[notify.Identity]*entity.Extraction{}}
}

func (s *memExtractionStore) FindByIdentity(_ context.Context, id notify.Identity) (*entity.Extraction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recs[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (s *memExtractionStore) CreatePending(_ context.Context, msg notify.ProcessingMessage, accountID uuid.UUID) (*entity.Extraction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := msg.Identity()
	if existing, ok := s.recs[id]; ok {
		cp := *existing
		return &cp, false, nil
	}
	rec := &entity.Extraction{
		ID:         uuid.New(),
		AccountID:  accountID,
		Bucket:     msg.Bucket,
		ObjectName: msg.ObjectName,
		Generation: msg.Generation,
		Status:     constants.StatusPending,
	}
	s.recs[id] = rec
	cp := *rec
	return &cp, true, nil
}

func (s *memExtractionStore) MarkParsed(_ context.Context, id uuid.UUID, extracted json.RawMessage, rawOutput string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.ID != id {
			continue
		}
		if rec.Status != constants.StatusPending {
			return common.WrapError(common.ErrConflict, "extraction not pending")
		}
		rec.Status = constants.StatusParsed
		rec.ExtractedJSON = extracted
		rec.RawOutput = &rawOutput
		return nil
	}
	return common.WrapError(common.ErrNotFound, id.String())
}

func (s *memExtractionStore) MarkFailed(_ context.Context, id uuid.UUID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.recs {
		if rec.ID != id {
			continue
		}
		if rec.Status != constants.StatusPending {
			return common.WrapError(common.ErrConflict, "extraction not pending")
		}
		rec.Status = constants.StatusFailed
		rec.FailureReason = &reason
		return nil
	}
	return common.WrapError(common.ErrNotFound, id.String())
}

func (s *memExtractionStore) byIdentity(id notify.Identity) *entity.Extraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recs[id]
}

func (s *memExtractionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

type memAccountStore struct {
	mu  sync.Mutex
	ids map[uuid.UUID]bool
}

func newMemAccountStore() *memAccountStore {
	return &memAccountStore{ids: map[uuid.UUID]bool{}}
}

func (s *memAccountStore) Ensure(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = true
	return nil
}

type scriptedFetcher struct {
	mu       sync.Mutex
	attempts int
	fn       func(attempt int) ([]byte, error)
}

func (f *scriptedFetcher) Fetch(context.Context, string, string, string) ([]byte, error) {
	f.mu.Lock()
	f.attempts++
	n := f.attempts
	f.mu.Unlock()
	return f.fn(n)
}

func (f *scriptedFetcher) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attempts
}

type recordingAggregator struct {
	mu    sync.Mutex
	calls [][]parse.LineItem
	err   error
}

func (a *recordingAggregator) Apply(_ context.Context, _ *entity.Extraction, lines []parse.LineItem) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, lines)
	return a.err
}

func (a *recordingAggregator) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.calls)
}

const receiptDoc = `{
	"merchant": "Corner Grocer",
	"purchase_date": "2026-03-14",
	"items": [{"name": "Milk", "quantity": 1, "unit_price": 2.50}]
}`

var testOwner = uuid.MustParse("3f7c0a4e-9b1d-4e5a-8c2f-1d6e7b8a9c0d")

func testMessage(objectName string) notify.ProcessingMessage {
	return notify.ProcessingMessage{
		Bucket:     "receipts",
		ObjectName: objectName,
		Generation: "1700000000000001",
	}
}

func testConfig(maxAttempts int) Config {
	return Config{
		FetchTimeout:     time.Second,
		FetchMaxAttempts: maxAttempts,
		FetchBackoffBase: time.Millisecond,
		ParseTimeout:     time.Second,
	}
}

func TestProcessSuccess(t *testing.T) {
	store := newMemExtractionStore()
	accounts := newMemAccountStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte(receiptDoc), nil }}
	agg := &recordingAggregator{}
	p := New(store, accounts, fetcher, agg, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/receipts/r1.json")
	if err := p.Process(context.Background(), msg); err != nil {
		t.Fatalf("Process: %v", err)
	}

	rec := store.byIdentity(msg.Identity())
	if rec == nil {
		t.Fatal("no record created")
	}
	if rec.Status != constants.StatusParsed {
		t.Errorf("status = %s, want PARSED", rec.Status)
	}
	if rec.AccountID != testOwner {
		t.Errorf("account = %s, want %s", rec.AccountID, testOwner)
	}
	if !accounts.ids[testOwner] {
		t.Error("owner account was not ensured")
	}
	if len(rec.ExtractedJSON) == 0 {
		t.Error("extracted JSON not persisted")
	}
	if agg.callCount() != 1 || len(agg.calls[0]) != 1 || agg.calls[0][0].Name != "Milk" {
		t.Errorf("aggregator calls = %+v", agg.calls)
	}
}

func TestProcessSkipsClaimedIdentity(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte(receiptDoc), nil }}
	agg := &recordingAggregator{}
	p := New(store, newMemAccountStore(), fetcher, agg, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/receipts/r1.json")
	if err := p.Process(context.Background(), msg); err != nil {
		t.Fatalf("first Process: %v", err)
	}
	// terminal and pending records alike block redelivery
	if err := p.Process(context.Background(), msg); err != nil {
		t.Fatalf("redelivered Process: %v", err)
	}

	if got := fetcher.count(); got != 1 {
		t.Errorf("fetch attempts = %d, want 1 (no re-fetch on redelivery)", got)
	}
	if got := agg.callCount(); got != 1 {
		t.Errorf("aggregator calls = %d, want 1", got)
	}
	if store.len() != 1 {
		t.Errorf("records = %d, want 1", store.len())
	}
}

func TestProcessRetriesTransientFetch(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(attempt int) ([]byte, error) {
		if attempt < 3 {
			return nil, &fetch.Error{Transient: true, Cause: errors.New("storage 503")}
		}
		return []byte(receiptDoc), nil
	}}
	p := New(store, newMemAccountStore(), fetcher, &recordingAggregator{}, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/r1.json")
	if err := p.Process(context.Background(), msg); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := fetcher.count(); got != 3 {
		t.Errorf("fetch attempts = %d, want 3", got)
	}
	if rec := store.byIdentity(msg.Identity()); rec.Status != constants.StatusParsed {
		t.Errorf("status = %s, want PARSED", rec.Status)
	}
}

func TestProcessFailsWhenRetriesExhausted(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) {
		return nil, &fetch.Error{Transient: true, Cause: errors.New("storage 503")}
	}}
	agg := &recordingAggregator{}
	p := New(store, newMemAccountStore(), fetcher, agg, testConfig(2), nil)

	msg := testMessage(testOwner.String() + "/r1.json")
	err := p.Process(context.Background(), msg)
	if !errors.Is(err, common.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
	if got := fetcher.count(); got != 2 {
		t.Errorf("fetch attempts = %d, want 2", got)
	}

	rec := store.byIdentity(msg.Identity())
	if rec.Status != constants.StatusFailed {
		t.Fatalf("status = %s, want FAILED", rec.Status)
	}
	if rec.FailureReason == nil || !strings.HasPrefix(*rec.FailureReason, "FetchFailed:") {
		t.Errorf("failure reason = %v", rec.FailureReason)
	}
	if agg.callCount() != 0 {
		t.Error("aggregator must not run for a failed extraction")
	}
}

func TestProcessDoesNotRetryPermanentFetchFailure(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) {
		return nil, &fetch.Error{Transient: false, Cause: errors.New("object not found")}
	}}
	p := New(store, newMemAccountStore(), fetcher, &recordingAggregator{}, testConfig(5), nil)

	msg := testMessage(testOwner.String() + "/r1.json")
	if err := p.Process(context.Background(), msg); !errors.Is(err, common.ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
	if got := fetcher.count(); got != 1 {
		t.Errorf("fetch attempts = %d, want 1 for a permanent failure", got)
	}
}

func TestProcessParseFailureIsTerminal(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte("not a receipt"), nil }}
	agg := &recordingAggregator{}
	p := New(store, newMemAccountStore(), fetcher, agg, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/r1.json")
	err := p.Process(context.Background(), msg)
	if !errors.Is(err, common.ErrParseFailed) {
		t.Fatalf("error = %v, want ErrParseFailed", err)
	}

	rec := store.byIdentity(msg.Identity())
	if rec.Status != constants.StatusFailed {
		t.Fatalf("status = %s, want FAILED", rec.Status)
	}
	if rec.FailureReason == nil || !strings.HasPrefix(*rec.FailureReason, "ParseFailed:") {
		t.Errorf("failure reason = %v", rec.FailureReason)
	}
	if got := fetcher.count(); got != 1 {
		t.Errorf("fetch attempts = %d, parse failures must not trigger refetch", got)
	}
	if agg.callCount() != 0 {
		t.Error("failed extraction must contribute no items")
	}
}

func TestProcessRejectsUnownedObject(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte(receiptDoc), nil }}
	p := New(store, newMemAccountStore(), fetcher, &recordingAggregator{}, testConfig(3), nil)

	err := p.Process(context.Background(), testMessage("uploads/r1.json"))
	if !errors.Is(err, common.ErrInvalidNotification) {
		t.Fatalf("error = %v, want ErrInvalidNotification", err)
	}
	if store.len() != 0 {
		t.Error("no record should exist for an unowned object")
	}
	if fetcher.count() != 0 {
		t.Error("no fetch should run for an unowned object")
	}
}

func TestProcessSelectsLegacyFormatByExtension(t *testing.T) {
	store := newMemExtractionStore()
	legacyDoc := "# purchase_date: 2026-03-14\nMilk\t1\t2.50\n"
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte(legacyDoc), nil }}
	agg := &recordingAggregator{}
	p := New(store, newMemAccountStore(), fetcher, agg, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/r1.txt")
	if err := p.Process(context.Background(), msg); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec := store.byIdentity(msg.Identity()); rec.Status != constants.StatusParsed {
		t.Errorf("status = %s, want PARSED", rec.Status)
	}
	if agg.callCount() != 1 || agg.calls[0][0].Name != "Milk" {
		t.Errorf("aggregator calls = %+v", agg.calls)
	}
}

func TestProcessAggregateErrorLeavesRecordParsed(t *testing.T) {
	store := newMemExtractionStore()
	fetcher := &scriptedFetcher{fn: func(int) ([]byte, error) { return []byte(receiptDoc), nil }}
	agg := &recordingAggregator{err: common.WrapError(common.ErrConflict, "stat contention")}
	p := New(store, newMemAccountStore(), fetcher, agg, testConfig(3), nil)

	msg := testMessage(testOwner.String() + "/r1.json")
	err := p.Process(context.Background(), msg)
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("error = %v, want the aggregation error", err)
	}
	if rec := store.byIdentity(msg.Identity()); rec.Status != constants.StatusParsed {
		t.Errorf("status = %s, the parse outcome must stand", rec.Status)
	}
}
