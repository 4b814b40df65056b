package checkout

import (
	"sync"
	"time"
)

// PresenceWidget is the production PaymentWidget: the actual payment
// surface lives in the shopper's browser, so the backend tracks its
// presence through periodic heartbeats. A surface that stops beating is
// treated as gone, the same as a closed widget.
type PresenceWidget struct {
	mu       sync.Mutex
	mounted  bool
	lastSeen time.Time
	ttl      time.Duration
	now      func() time.Time
}

// NewPresenceWidget builds a widget handle whose presence expires ttl
// after the last heartbeat.
func NewPresenceWidget(ttl time.Duration) *PresenceWidget {
	if ttl <= 0 {
		ttl = 3 * time.Second
	}
	return &PresenceWidget{ttl: ttl, now: time.Now}
}

// Mount marks the surface live and starts the presence clock.
func (w *PresenceWidget) Mount(checkoutToken string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mounted = true
	w.lastSeen = w.now()
	return nil
}

// Unmount marks the surface gone.
func (w *PresenceWidget) Unmount() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mounted = false
}

// Beat refreshes the presence clock. Beats after unmount are ignored.
func (w *PresenceWidget) Beat() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.mounted {
		w.lastSeen = w.now()
	}
}

// Mounted reports whether the surface has been heard from recently.
func (w *PresenceWidget) Mounted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mounted && w.now().Sub(w.lastSeen) <= w.ttl
}
