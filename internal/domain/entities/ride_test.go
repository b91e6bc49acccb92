package entities

import "testing"

func TestRide_TransitionTable(t *testing.T) {
	cases := []struct {
		from    RideStatus
		to      RideStatus
		allowed bool
	}{
		{RideStatusPending, RideStatusInProgress, true},
		{RideStatusPending, RideStatusCompleted, true},
		{RideStatusPending, RideStatusCancelled, true},
		{RideStatusInProgress, RideStatusCompleted, true},
		{RideStatusInProgress, RideStatusCancelled, true},
		{RideStatusInProgress, RideStatusPending, false},
		{RideStatusCompleted, RideStatusPending, false},
		{RideStatusCompleted, RideStatusInProgress, false},
		{RideStatusCancelled, RideStatusInProgress, false},
		{RideStatusCancelled, RideStatusCompleted, false},
		// re-asserting the current status is a no-op
		{RideStatusPending, RideStatusPending, true},
		{RideStatusCompleted, RideStatusCompleted, true},
	}

	for _, tc := range cases {
		ride := NewRide(1, "Main St", "Oak Ave")
		ride.Status = tc.from
		if got := ride.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestRide_CompletedAtStampedOnce(t *testing.T) {
	ride := NewRide(1, "Main St", "Oak Ave")

	if ride.CompletedAt != nil {
		t.Fatal("new ride should not have CompletedAt set")
	}

	if err := ride.TransitionTo(RideStatusCompleted); err != nil {
		t.Fatalf("pending -> completed failed: %v", err)
	}
	if ride.CompletedAt == nil {
		t.Fatal("CompletedAt not stamped on transition to completed")
	}

	stamped := *ride.CompletedAt
	ride.Cancel()
	if ride.Status != RideStatusCancelled {
		t.Errorf("expected status cancelled, got %s", ride.Status)
	}
	if ride.CompletedAt == nil || !ride.CompletedAt.Equal(stamped) {
		t.Error("CompletedAt must survive a later cancel")
	}
}

func TestRide_CancelIsUnconditional(t *testing.T) {
	for _, from := range []RideStatus{RideStatusPending, RideStatusInProgress, RideStatusCompleted, RideStatusCancelled} {
		ride := NewRide(1, "A", "B")
		ride.Status = from
		ride.Cancel()
		if ride.Status != RideStatusCancelled {
			t.Errorf("cancel from %s: expected cancelled, got %s", from, ride.Status)
		}
	}
}

func TestRide_InvalidTransitionRejected(t *testing.T) {
	ride := NewRide(1, "A", "B")
	if err := ride.TransitionTo(RideStatusCompleted); err != nil {
		t.Fatalf("pending -> completed failed: %v", err)
	}
	if err := ride.TransitionTo(RideStatusInProgress); err == nil {
		t.Error("completed -> in_progress should be rejected")
	}
	if ride.Status != RideStatusCompleted {
		t.Errorf("status must not change on rejected transition, got %s", ride.Status)
	}
}

func TestRideStatus_Valid(t *testing.T) {
	if !RideStatusInProgress.Valid() {
		t.Error("in_progress should be valid")
	}
	if RideStatus("teleporting").Valid() {
		t.Error("unknown status should be invalid")
	}
}
