package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/skyburst/storefront-backend/pkg/enums"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// QuoteInput is one pricing computation over an immutable cart snapshot.
type QuoteInput struct {
	Lines        []types.CartLine
	Destination  enums.Destination
	StateCode    string
	NeedLiftGate bool
}

// Quote is the derived pricing state for a cart and destination.
type Quote struct {
	OrderType enums.OrderType `json:"order_type"`
	Amounts   types.Amounts   `json:"amounts"`
	Shippable bool            `json:"shippable"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// ComputeQuote classifies the cart, prices shipping and tax, and freezes the
// result into an Amounts snapshot. Show orders ship free and skip the rate
// tables entirely. A non-shippable destination yields Shippable false with
// zero tax rather than an error.
func ComputeQuote(in QuoteInput) (*Quote, error) {
	orderType, err := Classify(in.Lines)
	if err != nil {
		return nil, err
	}
	if !in.Destination.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid shipping destination")
	}

	subtotal := 0
	for _, line := range in.Lines {
		subtotal += line.SubtotalCents()
	}

	shipping := 0
	liftGateFee := 0
	if orderType != enums.OrderTypeShow {
		shipping = Shipping(subtotal, orderType, in.Destination, false)
		if in.NeedLiftGate && orderType != enums.OrderTypeApparelOnly {
			liftGateFee = LiftGateFeeCents
		}
	}

	taxResult := StateTax(in.StateCode, subtotal)

	amounts := types.Amounts{
		SubtotalCents:    subtotal,
		ShippingCents:    shipping,
		TaxCents:         taxResult.TaxCents,
		LiftGateFeeCents: liftGateFee,
	}
	amounts.GrandTotalCents = amounts.SubtotalCents + amounts.ShippingCents + amounts.TaxCents + amounts.LiftGateFeeCents

	return &Quote{
		OrderType: orderType,
		Amounts:   amounts,
		Shippable: taxResult.Shippable,
		TaxRate:   taxResult.Rate,
	}, nil
}
