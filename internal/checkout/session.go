package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/pkg/enums"
	"github.com/skyburst/storefront-backend/pkg/helcim"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// Session is one ephemeral checkout attempt. It is created when the
// shopper commits to pay and destroyed on completion, abort, or timeout.
type Session struct {
	mu          sync.Mutex
	status      enums.SessionStatus
	finalizeErr error

	token             string
	cartID            uuid.UUID
	userID            uuid.UUID
	shippingAddressID uuid.UUID
	amounts           types.Amounts
	startedAt         time.Time
	widget            PaymentWidget

	events  chan helcim.PayEvent
	resumec chan struct{}
	cancelc chan struct{}
	done    chan struct{}
	cleanup sync.Once
}

func newSession(in StartInput) *Session {
	return &Session{
		status:            enums.SessionStatusIdle,
		cartID:            in.CartID,
		userID:            in.UserID,
		shippingAddressID: in.ShippingAddressID,
		amounts:           in.Amounts,
		startedAt:         time.Now(),
		events:            make(chan helcim.PayEvent, 8),
		resumec:           make(chan struct{}, 1),
		cancelc:           make(chan struct{}, 1),
		done:              make(chan struct{}),
	}
}

// Token returns the checkout token scoping this attempt. Empty until the
// token source has answered.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Session) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// CartID returns the cart this attempt is charging.
func (s *Session) CartID() uuid.UUID {
	return s.cartID
}

// Amounts returns the frozen pricing snapshot for this attempt.
func (s *Session) Amounts() types.Amounts {
	return s.amounts
}

// Status returns the current lifecycle state and, once terminal, any
// finalization error that followed a captured payment.
func (s *Session) Status() (enums.SessionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.finalizeErr
}

func (s *Session) setStatus(status enums.SessionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

func (s *Session) setFinalizeErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalizeErr = err
}

// Done closes when the session reaches a terminal state and its cleanup
// has run.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Cancel requests an explicit abort. Safe to call any number of times,
// including after the session has already terminated.
func (s *Session) Cancel() {
	select {
	case s.cancelc <- struct{}{}:
	case <-s.done:
	default:
	}
}

// Resume signals that the shopper's context regained visibility while a
// payment was pending. The run loop aborts after a short grace window
// unless a completion event lands first.
func (s *Session) Resume() {
	select {
	case s.resumec <- struct{}{}:
	case <-s.done:
	default:
	}
}

// deliver hands a payment event to the run loop. Events that do not
// carry this session's token are dropped.
func (s *Session) deliver(event helcim.PayEvent) bool {
	if !event.Matches(s.Token()) {
		return false
	}
	select {
	case s.events <- event:
		return true
	case <-s.done:
		return false
	default:
		return false
	}
}
