package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/pkg/config"
	"github.com/skyburst/storefront-backend/pkg/enums"
	"github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/helcim"
	"github.com/skyburst/storefront-backend/pkg/logger"
	"github.com/skyburst/storefront-backend/pkg/metrics"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// CoordinatorParams configure the checkout coordinator.
type CoordinatorParams struct {
	Logger    *logger.Logger
	Config    config.CheckoutConfig
	Tokens    TokenSource
	NewWidget WidgetFactory
	Finalizer PurchaseFinalizer
	Cache     QuoteCache
	Metrics   *metrics.CheckoutMetrics
}

// Coordinator drives hosted-payment checkout attempts. Each attempt is
// an isolated Session; the coordinator owns token acquisition, widget
// lifecycle, event routing, timeouts, and exactly-once finalization.
type Coordinator struct {
	logg      *logger.Logger
	cfg       config.CheckoutConfig
	tokens    TokenSource
	newWidget WidgetFactory
	finalizer PurchaseFinalizer
	cache     QuoteCache
	metrics   *metrics.CheckoutMetrics
	registry  *Registry
}

// NewCoordinator builds a coordinator.
func NewCoordinator(params CoordinatorParams) (*Coordinator, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Tokens == nil {
		return nil, fmt.Errorf("token source required")
	}
	if params.NewWidget == nil {
		return nil, fmt.Errorf("widget factory required")
	}
	if params.Finalizer == nil {
		return nil, fmt.Errorf("finalizer required")
	}
	cfg := params.Config
	if cfg.PaymentTimeout <= 0 {
		cfg.PaymentTimeout = 5 * time.Minute
	}
	if cfg.WidgetPollInterval <= 0 {
		cfg.WidgetPollInterval = 500 * time.Millisecond
	}
	if cfg.ResumeGrace <= 0 {
		cfg.ResumeGrace = time.Second
	}
	return &Coordinator{
		logg:      params.Logger,
		cfg:       cfg,
		tokens:    params.Tokens,
		newWidget: params.NewWidget,
		finalizer: params.Finalizer,
		cache:     params.Cache,
		metrics:   params.Metrics,
		registry:  NewRegistry(),
	}, nil
}

// StartInput identifies the shopper and carries the frozen pricing
// snapshot for one attempt.
type StartInput struct {
	CartID            uuid.UUID
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	Amounts           types.Amounts
	InvoiceNumber     string
}

// Start begins a checkout attempt: requests a checkout token, installs
// event routing, mounts the payment widget, and hands the session to a
// background run loop. A cart with a live attempt cannot start another.
// Token or mount failure returns the cart to a fresh state immediately.
func (c *Coordinator) Start(ctx context.Context, in StartInput) (*Session, error) {
	if in.CartID == uuid.Nil || in.UserID == uuid.Nil || in.ShippingAddressID == uuid.Nil {
		return nil, errors.New(errors.CodeValidation, "cart, user, and shipping address are required")
	}
	if in.Amounts.GrandTotalCents <= 0 || !in.Amounts.Consistent() {
		return nil, errors.New(errors.CodeValidation, "pricing snapshot is incomplete")
	}

	s := newSession(in)
	if !c.registry.reserveCart(in.CartID, s) {
		return nil, errors.New(errors.CodeStateConflict, "a checkout is already in progress for this cart")
	}

	ctx = c.logg.WithCartID(ctx, in.CartID.String())
	s.setStatus(enums.SessionStatusAwaitingToken)
	resp, err := c.tokens.Initialize(ctx, helcim.InitializeParams{
		AmountCents:   in.Amounts.GrandTotalCents,
		Currency:      "USD",
		InvoiceNumber: in.InvoiceNumber,
	})
	if err != nil {
		c.registry.remove(s)
		s.setStatus(enums.SessionStatusIdle)
		return nil, errors.Wrap(errors.CodeDependency, err, "requesting checkout token")
	}
	s.setToken(resp.CheckoutToken)
	ctx = c.logg.WithCheckoutToken(ctx, resp.CheckoutToken)

	widget := c.newWidget()
	s.widget = widget

	// Event routing must be live before the widget mounts, otherwise a
	// fast completion event would have nowhere to land.
	c.registry.bindToken(s)

	if err := widget.Mount(resp.CheckoutToken); err != nil {
		c.registry.remove(s)
		s.setStatus(enums.SessionStatusIdle)
		return nil, errors.Wrap(errors.CodeDependency, err, "mounting payment widget")
	}
	s.setStatus(enums.SessionStatusAwaitingPayment)
	c.metrics.IncStarted()
	c.logg.Info(ctx, "checkout attempt started")

	// The attempt outlives the request that started it, so the loop
	// runs on a detached context that keeps the log fields.
	go c.run(context.WithoutCancel(ctx), s, widget)
	return s, nil
}

// Deliver routes a hosted-payment event to the session its token names.
// Returns false for unknown, stale, or malformed event names.
func (c *Coordinator) Deliver(event helcim.PayEvent) bool {
	return c.registry.Deliver(event)
}

// Lookup returns the live session for a checkout token.
func (c *Coordinator) Lookup(checkoutToken string) (*Session, bool) {
	return c.registry.Lookup(checkoutToken)
}

// ActiveForCart returns the live session holding a cart, if any.
func (c *Coordinator) ActiveForCart(cartID uuid.UUID) (*Session, bool) {
	return c.registry.ActiveForCart(cartID)
}

// Heartbeat reports continued presence of the payment surface for a
// live attempt. Returns false when no session holds the token.
func (c *Coordinator) Heartbeat(checkoutToken string) bool {
	s, ok := c.registry.Lookup(checkoutToken)
	if !ok {
		return false
	}
	if beater, ok := s.widget.(interface{ Beat() }); ok {
		beater.Beat()
	}
	return true
}

func (c *Coordinator) run(ctx context.Context, s *Session, widget PaymentWidget) {
	timeout := time.NewTimer(c.cfg.PaymentTimeout)
	defer timeout.Stop()
	poll := time.NewTicker(c.cfg.WidgetPollInterval)
	defer poll.Stop()

	var grace *time.Timer
	var graceC <-chan time.Time
	defer func() {
		if grace != nil {
			grace.Stop()
		}
	}()

	for {
		select {
		case event := <-s.events:
			if !event.Matches(s.Token()) {
				continue
			}
			switch event.EventStatus {
			case helcim.EventStatusSuccess:
				c.finalize(ctx, s, widget)
				return
			case helcim.EventStatusAborted, helcim.EventStatusHide:
				c.logg.Info(ctx, "payment aborted by shopper")
				c.finish(ctx, s, widget, enums.SessionStatusAborted)
				return
			}
		case <-poll.C:
			if !widget.Mounted() {
				c.logg.Info(ctx, "payment widget disappeared without a completion event")
				c.finish(ctx, s, widget, enums.SessionStatusAborted)
				return
			}
		case <-timeout.C:
			c.logg.Warn(ctx, "checkout attempt timed out awaiting payment")
			c.finish(ctx, s, widget, enums.SessionStatusTimedOut)
			return
		case <-s.resumec:
			// Visibility came back mid-payment. If no completion event
			// lands within the grace window the attempt is abandoned.
			if graceC == nil {
				grace = time.NewTimer(c.cfg.ResumeGrace)
				graceC = grace.C
			}
		case <-graceC:
			c.logg.Info(ctx, "no completion event after resume; treating as abandoned")
			c.finish(ctx, s, widget, enums.SessionStatusAborted)
			return
		case <-s.cancelc:
			c.logg.Info(ctx, "checkout attempt canceled")
			c.finish(ctx, s, widget, enums.SessionStatusAborted)
			return
		case <-ctx.Done():
			c.finish(ctx, s, widget, enums.SessionStatusAborted)
			return
		}
	}
}

// finalize runs exactly once per captured payment. A failure to write
// the purchase record is surfaced on the session but never retried: the
// charge already landed, and compensation is a product decision.
func (c *Coordinator) finalize(ctx context.Context, s *Session, widget PaymentWidget) {
	s.setStatus(enums.SessionStatusFinalizing)
	err := c.finalizer.MakePurchase(ctx, FinalizeInput{
		UserID:            s.userID,
		ShippingAddressID: s.shippingAddressID,
		Amounts:           s.amounts,
	})
	if err != nil {
		c.logg.Error(ctx, "purchase finalization failed after captured payment", err)
		s.setFinalizeErr(err)
		c.metrics.IncFinalizeFailure()
		c.finish(ctx, s, widget, enums.SessionStatusCompleted)
		return
	}
	if c.cache != nil {
		if cacheErr := c.cache.InvalidateQuote(ctx, s.cartID.String()); cacheErr != nil {
			c.logg.Warn(ctx, "failed to invalidate quote cache after purchase")
		}
	}
	c.logg.Info(ctx, "checkout attempt completed")
	c.finish(ctx, s, widget, enums.SessionStatusCompleted)
}

// finish performs the idempotent terminal transition: unmount the
// widget, deregister routing, record the outcome, and release the cart
// for a fresh attempt.
func (c *Coordinator) finish(ctx context.Context, s *Session, widget PaymentWidget, status enums.SessionStatus) {
	s.cleanup.Do(func() {
		s.setStatus(status)
		widget.Unmount()
		c.registry.remove(s)
		c.metrics.ObserveOutcome(status.String(), time.Since(s.startedAt))
		close(s.done)
	})
}
