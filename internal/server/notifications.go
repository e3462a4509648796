package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/joseph-ayodele/receipts-pipeline/internal/async"
	"github.com/joseph-ayodele/receipts-pipeline/internal/entity"
	"github.com/joseph-ayodele/receipts-pipeline/internal/health"
	"github.com/joseph-ayodele/receipts-pipeline/internal/notify"
)

// TokenHeader carries the out-of-band verification token. The "token" query
// parameter is accepted as a fallback for push endpoints that cannot set
// headers.
const TokenHeader = "X-Notification-Token"

// ExtractionFinder is the slice of the extraction store the receiver needs
// for its duplicate check.
type ExtractionFinder interface {
	FindByIdentity(ctx context.Context, id notify.Identity) (*entity.Extraction, error)
}

// NotificationServer is the HTTP boundary: it verifies, normalizes,
// deduplicates, and enqueues storage-change notifications. All pipeline
// work happens after the 202 is written.
type NotificationServer struct {
	token  string
	store  ExtractionFinder
	queue  async.Queue
	guard  *health.Guard
	logger *slog.Logger
}

func NewNotificationServer(token string, store ExtractionFinder, queue async.Queue, guard *health.Guard, logger *slog.Logger) *NotificationServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationServer{token: token, store: store, queue: queue, guard: guard, logger: logger}
}

// Mux returns the HTTP routes.
func (s *NotificationServer) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/notifications", s.handleNotification)
	mux.HandleFunc("POST /v1/costguard/trip", s.handleCostGuardTrip)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return mux
}

func (s *NotificationServer) authorized(r *http.Request) bool {
	token := r.Header.Get(TokenHeader)
	if token == "" {
		token = r.URL.Query().Get("token")
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}

func (s *NotificationServer) handleNotification(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		s.logger.Warn("rejecting notification with bad token", "remote", r.RemoteAddr)
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		return
	}

	var env notify.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		s.logger.Warn("rejecting unparseable notification", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed notification body"})
		return
	}

	msg, err := notify.Normalize(env)
	if err != nil {
		s.logger.Warn("rejecting invalid notification", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if _, err := msg.AccountID(); err != nil {
		s.logger.Warn("rejecting unowned notification", "object", msg.ObjectName, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	identity := msg.Identity()
	existing, err := s.store.FindByIdentity(r.Context(), identity)
	if err != nil {
		s.logger.Error("duplicate check failed", "identity", identity.String(), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "lookup failed"})
		return
	}
	if existing != nil {
		// Redelivery of a claimed identity; acknowledge so the sender stops.
		s.logger.Info("acknowledging duplicate notification", "identity", identity.String(), "status", existing.Status)
		writeJSON(w, http.StatusAccepted, map[string]string{"status": "duplicate"})
		return
	}

	if err := s.queue.Enqueue(r.Context(), async.Job{Message: msg, SubmittedAt: time.Now()}); err != nil {
		s.logger.Error("enqueue failed", "identity", identity.String(), "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "enqueue failed"})
		return
	}
	s.logger.Info("notification accepted", "identity", identity.String())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// handleCostGuardTrip is the billing signal. One call flips the process to
// unhealthy until restart.
func (s *NotificationServer) handleCostGuardTrip(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token"})
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&body)
	if body.Reason == "" {
		body.Reason = "billing signal"
	}
	s.guard.Trip(body.Reason)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "tripped"})
}

func (s *NotificationServer) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	if !s.guard.Healthy() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "reason": s.guard.Reason()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
