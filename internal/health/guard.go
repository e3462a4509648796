package health

import (
	"log/slog"
	"sync"
)

// Guard is the cost-control switch. An external billing signal trips it
// once; from then on the process reports unhealthy until it is restarted.
// There is deliberately no way to reset a tripped guard at runtime.
type Guard struct {
	logger *slog.Logger

	mu      sync.Mutex
	tripped bool
	reason  string
	onTrip  []func(reason string)
}

func NewGuard(logger *slog.Logger) *Guard {
	if logger == nil {
		logger = slog.Default()
	}
	return &Guard{logger: logger}
}

// OnTrip registers a callback invoked exactly once when the guard trips.
// Callbacks registered after the trip fire immediately.
func (g *Guard) OnTrip(fn func(reason string)) {
	g.mu.Lock()
	if g.tripped {
		reason := g.reason
		g.mu.Unlock()
		fn(reason)
		return
	}
	g.onTrip = append(g.onTrip, fn)
	g.mu.Unlock()
}

// Trip flips the guard to unhealthy. Later calls are no-ops.
func (g *Guard) Trip(reason string) {
	g.mu.Lock()
	if g.tripped {
		g.mu.Unlock()
		return
	}
	g.tripped = true
	g.reason = reason
	callbacks := g.onTrip
	g.onTrip = nil
	g.mu.Unlock()

	g.logger.Warn("cost guard tripped, service now unhealthy", "reason", reason)
	for _, fn := range callbacks {
		fn(reason)
	}
}

// Healthy reports whether the guard has not been tripped.
func (g *Guard) Healthy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return !g.tripped
}

// Reason returns the trip reason, or "" while healthy.
func (g *Guard) Reason() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reason
}
