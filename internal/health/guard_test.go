package health

import "testing"

func TestGuardTripsOnce(t *testing.T) {
	g := NewGuard(nil)
	if !g.Healthy() {
		t.Fatal("new guard must be healthy")
	}

	g.Trip("budget exceeded")
	if g.Healthy() {
		t.Fatal("tripped guard must report unhealthy")
	}
	if g.Reason() != "budget exceeded" {
		t.Errorf("reason = %q", g.Reason())
	}

	// later trips keep the first reason
	g.Trip("second signal")
	if g.Reason() != "budget exceeded" {
		t.Errorf("reason after second trip = %q, want the first", g.Reason())
	}
}

func TestGuardCallbacks(t *testing.T) {
	g := NewGuard(nil)

	var calls []string
	g.OnTrip(func(reason string) { calls = append(calls, "before:"+reason) })
	g.Trip("budget exceeded")
	g.Trip("ignored")
	g.OnTrip(func(reason string) { calls = append(calls, "after:"+reason) })

	want := []string{"before:budget exceeded", "after:budget exceeded"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}
