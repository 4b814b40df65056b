package cart

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSettleTrackerDebounces(t *testing.T) {
	t.Parallel()

	tracker := NewSettleTracker(time.Second)
	current := time.Unix(1700000000, 0)
	tracker.now = func() time.Time { return current }

	cartID := uuid.New()

	if !tracker.Settled(cartID) {
		t.Fatalf("untouched cart should be settled")
	}

	tracker.Touch(cartID)
	if tracker.Settled(cartID) {
		t.Fatalf("cart should be unsettled immediately after a touch")
	}

	// Another mutation before the window passes re-arms the debounce.
	current = current.Add(800 * time.Millisecond)
	tracker.Touch(cartID)
	current = current.Add(800 * time.Millisecond)
	if tracker.Settled(cartID) {
		t.Fatalf("window should restart on every touch")
	}

	current = current.Add(250 * time.Millisecond)
	if !tracker.Settled(cartID) {
		t.Fatalf("cart should settle after a quiet window")
	}
}

func TestSettleTrackerForget(t *testing.T) {
	t.Parallel()

	tracker := NewSettleTracker(time.Second)
	current := time.Unix(1700000000, 0)
	tracker.now = func() time.Time { return current }

	cartID := uuid.New()
	tracker.Touch(cartID)
	tracker.Forget(cartID)

	if !tracker.Settled(cartID) {
		t.Fatalf("forgotten cart should be settled")
	}
}
