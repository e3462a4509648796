package aggregate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/receipts-pipeline/constants"
	"github.com/joseph-ayodele/receipts-pipeline/internal/common"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/parse"
)

type memItemStore struct {
	mu   sync.Mutex
	rows map[string]*entity.ReceiptItem
}

func newMemItemStore() *memItemStore {
	return &memItemStore{rows: map[string]*entity.ReceiptItem{}}
}

func (s *memItemStore) InsertIgnore(_ context.Context, item *entity.ReceiptItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := fmt.Sprintf("%s/%d", item.ExtractionID, item.LineIndex)
	if _, ok := s.rows[key]; ok {
		return false, nil
	}
	cp := *item
	s.rows[key] = &cp
	return true, nil
}

func (s *memItemStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

type memStatStore struct {
	mu   sync.Mutex
	rows map[string]*entity.ItemStat
}

func newMemStatStore() *memStatStore {
	return &memStatStore{rows: map[string]*entity.ItemStat{}}
}

func statKey(scope, itemKey string) string { return scope + "|" + itemKey }

func (s *memStatStore) Get(_ context.Context, scope, itemKey string) (*entity.ItemStat, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[statKey(scope, itemKey)]
	if !ok {
		return nil, nil
	}
	cp := *row
	return &cp, nil
}

func (s *memStatStore) Init(_ context.Context, stat *entity.ItemStat) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := statKey(stat.Scope, stat.ItemKey)
	if _, ok := s.rows[key]; ok {
		return false, nil
	}
	cp := *stat
	s.rows[key] = &cp
	return true, nil
}

func (s *memStatStore) CompareAndUpdate(_ context.Context, id uuid.UUID, expectedCount int64, next *entity.ItemStat) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, row := range s.rows {
		if row.ID != id {
			continue
		}
		if row.Count != expectedCount {
			return false, nil
		}
		cp := *next
		cp.ID = id
		s.rows[key] = &cp
		return true, nil
	}
	return false, nil
}

func (s *memStatStore) get(scope, itemKey string) *entity.ItemStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[statKey(scope, itemKey)]
}

func newRecord(accountID uuid.UUID) *entity.Extraction {
	return &entity.Extraction{
		ID:        uuid.New(),
		AccountID: accountID,
		Status:    constants.StatusParsed,
	}
}

func milkLine(price float64) parse.LineItem {
	return parse.LineItem{
		Name:        "Milk",
		Quantity:    1,
		UnitPrice:   price,
		LineTotal:   price,
		PurchasedAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

func TestApplyUpdatesOwnerAndGlobalScopes(t *testing.T) {
	items, stats := newMemItemStore(), newMemStatStore()
	engine := NewEngine(items, stats, nil)

	accountID := uuid.New()
	rec := newRecord(accountID)
	if err := engine.Apply(context.Background(), rec, []parse.LineItem{milkLine(2.50)}); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	for _, scope := range []string{accountID.String(), constants.GlobalScope} {
		st := stats.get(scope, "milk")
		if st == nil {
			t.Fatalf("no stat for scope %s", scope)
		}
		if st.Count != 1 || st.TotalSpend != 2.50 || st.MinPrice != 2.50 || st.MaxPrice != 2.50 {
			t.Errorf("scope %s stat = %+v", scope, st)
		}
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	items, stats := newMemItemStore(), newMemStatStore()
	engine := NewEngine(items, stats, nil)

	rec := newRecord(uuid.New())
	lines := []parse.LineItem{milkLine(2.50), {
		Name: "Bread", Quantity: 2, UnitPrice: 1.75, LineTotal: 3.50,
		PurchasedAt: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	}}

	for i := 0; i < 3; i++ {
		if err := engine.Apply(context.Background(), rec, lines); err != nil {
			t.Fatalf("Apply #%d: %v", i+1, err)
		}
	}

	if got := items.len(); got != 2 {
		t.Errorf("items = %d, want 2", got)
	}
	milk := stats.get(constants.GlobalScope, "milk")
	if milk.Count != 1 || milk.TotalSpend != 2.50 {
		t.Errorf("milk stat after replays = %+v", milk)
	}
}

func TestApplySkipsUnaggregatableLines(t *testing.T) {
	items, stats := newMemItemStore(), newMemStatStore()
	engine := NewEngine(items, stats, nil)

	rec := newRecord(uuid.New())
	lines := []parse.LineItem{
		{Name: "Free Sample", Quantity: 1, UnitPrice: 0, LineTotal: 0},
		{Name: "Refund", Quantity: -1, UnitPrice: 2.00, LineTotal: -2.00},
		{Name: "   ", Quantity: 1, UnitPrice: 1.00, LineTotal: 1.00},
		milkLine(2.50),
	}
	if err := engine.Apply(context.Background(), rec, lines); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got := items.len(); got != 1 {
		t.Errorf("items = %d, want only the aggregatable line", got)
	}
	if st := stats.get(constants.GlobalScope, "milk"); st == nil || st.Count != 1 {
		t.Errorf("milk stat = %+v", st)
	}
}

func TestApplyConcurrentExtractions(t *testing.T) {
	items, stats := newMemItemStore(), newMemStatStore()
	engine := NewEngine(items, stats, nil)

	// Fewer writers than casAttempts: every lost compare-and-set implies
	// another writer won, so no writer can exhaust its retry budget.
	const n = 8
	const price = 2.50
	accountID := uuid.New()

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- engine.Apply(context.Background(), newRecord(accountID), []parse.LineItem{milkLine(price)})
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}

	st := stats.get(constants.GlobalScope, "milk")
	if st == nil {
		t.Fatal("no global milk stat")
	}
	if st.Count != n {
		t.Errorf("Count = %d, want %d", st.Count, n)
	}
	if math.Abs(st.TotalSpend-n*price) > 1e-9 {
		t.Errorf("TotalSpend = %v, want %v", st.TotalSpend, n*price)
	}
}

func TestGlobalScopeEqualsSumOfOwners(t *testing.T) {
	items, stats := newMemItemStore(), newMemStatStore()
	engine := NewEngine(items, stats, nil)

	a, b := uuid.New(), uuid.New()
	for i, acc := range []uuid.UUID{a, a, b} {
		if err := engine.Apply(context.Background(), newRecord(acc), []parse.LineItem{milkLine(2.50)}); err != nil {
			t.Fatalf("Apply #%d: %v", i+1, err)
		}
	}

	sa, sb := stats.get(a.String(), "milk"), stats.get(b.String(), "milk")
	global := stats.get(constants.GlobalScope, "milk")
	if sa.Count != 2 || sb.Count != 1 {
		t.Errorf("owner counts = %d, %d", sa.Count, sb.Count)
	}
	if global.Count != sa.Count+sb.Count {
		t.Errorf("global count %d != owner sum %d", global.Count, sa.Count+sb.Count)
	}
	if math.Abs(global.TotalSpend-(sa.TotalSpend+sb.TotalSpend)) > 1e-9 {
		t.Errorf("global spend %v != owner sum", global.TotalSpend)
	}
}

// contentiousStatStore fails the first n compare-and-set calls so the retry
// path runs even without real concurrency.
type contentiousStatStore struct {
	*memStatStore
	mu       sync.Mutex
	failures int
}

func (s *contentiousStatStore) CompareAndUpdate(ctx context.Context, id uuid.UUID, expectedCount int64, next *entity.ItemStat) (bool, error) {
	s.mu.Lock()
	fail := s.failures > 0
	if fail {
		s.failures--
	}
	s.mu.Unlock()
	if fail {
		return false, nil
	}
	return s.memStatStore.CompareAndUpdate(ctx, id, expectedCount, next)
}

func TestApplyRetriesLostCompareAndSet(t *testing.T) {
	items := newMemItemStore()
	stats := &contentiousStatStore{memStatStore: newMemStatStore(), failures: 4}
	engine := NewEngine(items, stats, nil)

	rec := newRecord(uuid.New())
	if err := engine.Apply(context.Background(), rec, []parse.LineItem{milkLine(2.50)}); err != nil {
		t.Fatalf("first Apply: %v", err)
	}
	if err := engine.Apply(context.Background(), newRecord(rec.AccountID), []parse.LineItem{milkLine(2.50)}); err != nil {
		t.Fatalf("second Apply: %v", err)
	}
	if st := stats.get(constants.GlobalScope, "milk"); st.Count != 2 {
		t.Errorf("Count = %d, want 2 after retried updates", st.Count)
	}
}

func TestApplyGivesUpAfterExhaustedRetries(t *testing.T) {
	items := newMemItemStore()
	stats := &contentiousStatStore{memStatStore: newMemStatStore(), failures: 1 << 30}
	engine := NewEngine(items, stats, nil)

	rec := newRecord(uuid.New())
	if err := engine.Apply(context.Background(), rec, []parse.LineItem{milkLine(2.50)}); err != nil {
		t.Fatalf("initial Apply: %v", err)
	}
	err := engine.Apply(context.Background(), newRecord(rec.AccountID), []parse.LineItem{milkLine(2.50)})
	if err == nil {
		t.Fatal("expected conflict error, got nil")
	}
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("error = %v, want ErrConflict", err)
	}
}

func TestNormalizeItemKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Milk", "milk"},
		{"  Whole   MILK  ", "whole milk"},
		{"", ""},
		{"\t \n", ""},
	}
	for _, tt := range tests {
		if got := NormalizeItemKey(tt.in); got != tt.want {
			t.Errorf("NormalizeItemKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
