package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/joseph-ayodele/receipts-pipeline/internal/async"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/health"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
)

const testToken = "test-verification-token"

type fakeFinder struct {
	existing map[notify.Identity]*entity.Extraction
	err      error
}

func (f *fakeFinder) FindByIdentity(_ context.Context, id notify.Identity) (*entity.Extraction, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.existing[id], nil
}

type fakeQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *fakeQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *fakeQueue) Shutdown(context.Context) {}

func (q *fakeQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.jobs)
}

func newTestServer(finder *fakeFinder, queue *fakeQueue) (*NotificationServer, *health.Guard) {
	guard := health.NewGuard(nil)
	return NewNotificationServer(testToken, finder, queue, guard, nil), guard
}

const validBody = `{
	"bucket": "receipts",
	"name": "3f7c0a4e-9b1d-4e5a-8c2f-1d6e7b8a9c0d/r1.json",
	"generation": "1700000000000001",
	"size": "123",
	"contentType": "application/json"
}`

func postNotification(t *testing.T, srv *NotificationServer, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/notifications", strings.NewReader(body))
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}
	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, req)
	return w
}

func TestNotificationRejectsBadToken(t *testing.T) {
	queue := &fakeQueue{}
	srv, _ := newTestServer(&fakeFinder{}, queue)

	for _, token := range []string{"", "wrong-token"} {
		w := postNotification(t, srv, validBody, token)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("token %q: status = %d, want 401", token, w.Code)
		}
	}
	if queue.len() != 0 {
		t.Error("nothing may be enqueued without a valid token")
	}
}

func TestNotificationAcceptsTokenQueryParam(t *testing.T) {
	queue := &fakeQueue{}
	srv, _ := newTestServer(&fakeFinder{}, queue)

	req := httptest.NewRequest(http.MethodPost, "/v1/notifications?token="+testToken, strings.NewReader(validBody))
	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, req)
	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", w.Code)
	}
}

func TestNotificationRejectsInvalidBodies(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"bucket":`},
		{"missing bucket", `{"name": "a/b.json", "generation": "1"}`},
		{"missing object name", `{"bucket": "receipts", "generation": "1"}`},
		{"unowned object", `{"bucket": "receipts", "name": "uploads/r1.json", "generation": "1"}`},
	}
	queue := &fakeQueue{}
	srv, _ := newTestServer(&fakeFinder{}, queue)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postNotification(t, srv, tt.body, testToken)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
	if queue.len() != 0 {
		t.Error("invalid notifications must not be enqueued")
	}
}

func TestNotificationAccepted(t *testing.T) {
	queue := &fakeQueue{}
	srv, _ := newTestServer(&fakeFinder{}, queue)

	w := postNotification(t, srv, validBody, testToken)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}
	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["status"] != "accepted" {
		t.Errorf("status field = %q, want accepted", resp["status"])
	}
	if queue.len() != 1 {
		t.Fatalf("enqueued = %d, want 1", queue.len())
	}
	if queue.jobs[0].Message.Size != 123 {
		t.Errorf("size = %d, want 123 from string-encoded field", queue.jobs[0].Message.Size)
	}
}

func TestNotificationDuplicateAcknowledgedWithoutEnqueue(t *testing.T) {
	id := notify.Identity{
		Bucket:     "receipts",
		ObjectName: "3f7c0a4e-9b1d-4e5a-8c2f-1d6e7b8a9c0d/r1.json",
		Generation: "1700000000000001",
	}
	finder := &fakeFinder{existing: map[notify.Identity]*entity.Extraction{
		id: {Status: "PARSED"},
	}}
	queue := &fakeQueue{}
	srv, _ := newTestServer(finder, queue)

	w := postNotification(t, srv, validBody, testToken)
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202 for duplicates", w.Code)
	}
	var resp map[string]string
	_ = json.NewDecoder(w.Body).Decode(&resp)
	if resp["status"] != "duplicate" {
		t.Errorf("status field = %q, want duplicate", resp["status"])
	}
	if queue.len() != 0 {
		t.Error("duplicates must not be enqueued")
	}
}

func TestCostGuardTripFlipsHealth(t *testing.T) {
	srv, guard := newTestServer(&fakeFinder{}, &fakeQueue{})
	mux := srv.Mux()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz before trip = %d, want 200", w.Code)
	}

	// trip requires the token too
	req := httptest.NewRequest(http.MethodPost, "/v1/costguard/trip", strings.NewReader(`{"reason": "budget exceeded"}`))
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated trip = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/v1/costguard/trip", strings.NewReader(`{"reason": "budget exceeded"}`))
	req.Header.Set(TokenHeader, testToken)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusAccepted {
		t.Fatalf("trip = %d, want 202", w.Code)
	}

	if guard.Healthy() {
		t.Fatal("guard should be tripped")
	}
	if guard.Reason() != "budget exceeded" {
		t.Errorf("reason = %q", guard.Reason())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("healthz after trip = %d, want 503", w.Code)
	}
}
