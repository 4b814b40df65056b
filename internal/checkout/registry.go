package checkout

import (
	"sync"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/pkg/helcim"
)

// Registry indexes live sessions by checkout token and by cart so
// payment events can be routed and per-cart re-entrancy enforced.
type Registry struct {
	mu      sync.Mutex
	byToken map[string]*Session
	byCart  map[uuid.UUID]*Session
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byToken: make(map[string]*Session),
		byCart:  make(map[uuid.UUID]*Session),
	}
}

// reserveCart claims the cart slot for a new attempt. It fails while a
// previous attempt for the same cart is still live.
func (r *Registry) reserveCart(cartID uuid.UUID, s *Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, busy := r.byCart[cartID]; busy {
		return false
	}
	r.byCart[cartID] = s
	return true
}

// bindToken makes the session routable by its checkout token. This
// happens before the widget mounts so no event can arrive unrouted.
func (r *Registry) bindToken(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[s.Token()] = s
}

// remove drops the session from both indexes. Safe to call repeatedly.
func (r *Registry) remove(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token := s.Token(); token != "" {
		if current, ok := r.byToken[token]; ok && current == s {
			delete(r.byToken, token)
		}
	}
	if current, ok := r.byCart[s.CartID()]; ok && current == s {
		delete(r.byCart, s.CartID())
	}
}

// Lookup returns the live session for a checkout token.
func (r *Registry) Lookup(checkoutToken string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byToken[checkoutToken]
	return s, ok
}

// ActiveForCart returns the live session holding a cart, if any.
func (r *Registry) ActiveForCart(cartID uuid.UUID) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byCart[cartID]
	return s, ok
}

// Deliver routes a payment event to the session its token names.
// Events carrying an unknown or stale token are dropped.
func (r *Registry) Deliver(event helcim.PayEvent) bool {
	token, ok := helcim.TokenFromEventName(event.EventName)
	if !ok {
		return false
	}
	s, ok := r.Lookup(token)
	if !ok {
		return false
	}
	return s.deliver(event)
}
