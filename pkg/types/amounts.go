package types

// Amounts is the frozen output of one pricing computation. All values are
// integer cents. Once handed to a checkout session it is never mutated:
// the snapshot captured at pay time is what gets charged and finalized.
type Amounts struct {
	SubtotalCents    int `json:"subtotal_cents"`
	ShippingCents    int `json:"shipping_cents"`
	TaxCents         int `json:"tax_cents"`
	LiftGateFeeCents int `json:"lift_gate_fee_cents"`
	GrandTotalCents  int `json:"grand_total_cents"`
}

// Consistent reports whether the grand total equals the sum of its parts.
func (a Amounts) Consistent() bool {
	return a.GrandTotalCents == a.SubtotalCents+a.ShippingCents+a.TaxCents+a.LiftGateFeeCents
}
