package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SettleTracker debounces cart mutations. Every Touch re-arms a quiet window
// for the cart; Settled only reports true once the window has passed with no
// further touches. The checkout gate uses this to avoid pricing a cart whose
// server-side mutations are still in flight.
type SettleTracker struct {
	mu     sync.Mutex
	window time.Duration
	last   map[uuid.UUID]time.Time
	now    func() time.Time
}

// NewSettleTracker builds a tracker with the given quiet window.
func NewSettleTracker(window time.Duration) *SettleTracker {
	if window <= 0 {
		window = time.Second
	}
	return &SettleTracker{
		window: window,
		last:   make(map[uuid.UUID]time.Time),
		now:    time.Now,
	}
}

// Touch records a cart mutation and re-arms the quiet window.
func (t *SettleTracker) Touch(cartID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last[cartID] = t.now()
}

// Settled reports whether the cart has been quiet for a full window.
// A cart that was never touched counts as settled.
func (t *SettleTracker) Settled(cartID uuid.UUID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	last, ok := t.last[cartID]
	if !ok {
		return true
	}
	return t.now().Sub(last) >= t.window
}

// Forget drops tracking state for a cart, typically after checkout completes.
func (t *SettleTracker) Forget(cartID uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.last, cartID)
}
