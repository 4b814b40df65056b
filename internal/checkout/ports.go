package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/skyburst/storefront-backend/pkg/helcim"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// TokenSource obtains the hosted-payment tokens that scope one attempt.
// pkg/helcim.Client satisfies it.
type TokenSource interface {
	Initialize(ctx context.Context, params helcim.InitializeParams) (*helcim.InitializeResponse, error)
}

// PaymentWidget is the mounted payment surface for one attempt. Mounted
// reports whether the surface is still present; a widget that vanishes
// without a completion event means the shopper backed out.
type PaymentWidget interface {
	Mount(checkoutToken string) error
	Unmount()
	Mounted() bool
}

// WidgetFactory produces a fresh widget per checkout attempt.
type WidgetFactory func() PaymentWidget

// FinalizeInput is the frozen purchase payload. Amounts is the snapshot
// captured when the attempt started, regardless of later cart changes.
type FinalizeInput struct {
	UserID            uuid.UUID
	ShippingAddressID uuid.UUID
	Amounts           types.Amounts
}

// PurchaseFinalizer writes the purchase record after a captured payment.
// internal/orders.Finalizer satisfies it.
type PurchaseFinalizer interface {
	MakePurchase(ctx context.Context, in FinalizeInput) error
}

// QuoteCache invalidates a cart's cached quote once a purchase lands.
// pkg/redis.Client satisfies it.
type QuoteCache interface {
	InvalidateQuote(ctx context.Context, cartID string) error
}
