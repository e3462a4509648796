package async

import (
	"context"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"log/slog"

	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingProcessor struct {
	mu   sync.Mutex
	seen map[string]int
}

func (p *countingProcessor) Process(_ context.Context, msg notify.ProcessingMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.seen == nil {
		p.seen = map[string]int{}
	}
	p.seen[msg.Identity().String()]++
	return nil
}

func TestProcessorQueueDrainsAllJobs(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(3), WithQueueSize(16))

	const n = 20
	for i := 0; i < n; i++ {
		job := Job{Message: notify.ProcessingMessage{
			Bucket:     "receipts",
			ObjectName: fmt.Sprintf("a/r%d.json", i),
			Generation: "1",
		}}
		if err := q.Enqueue(context.Background(), job); err != nil {
			t.Fatalf("Enqueue #%d: %v", i, err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.seen) != n {
		t.Errorf("processed %d distinct jobs, want %d", len(proc.seen), n)
	}
	for id, count := range proc.seen {
		if count != 1 {
			t.Errorf("job %s processed %d times", id, count)
		}
	}
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	proc := &countingProcessor{}
	q := NewProcessorQueue(proc, testLogger(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	job := Job{Message: notify.ProcessingMessage{Bucket: "b", ObjectName: "o", Generation: "1"}}
	if err := q.Enqueue(context.Background(), job); err != nil {
		t.Fatalf("Enqueue after shutdown: %v", err)
	}
	proc.mu.Lock()
	defer proc.mu.Unlock()
	if len(proc.seen) != 0 {
		t.Error("jobs enqueued after shutdown must be dropped")
	}
}
