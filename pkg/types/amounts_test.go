package types

import "testing"

func TestAmountsConsistent(t *testing.T) {
	t.Parallel()

	a := Amounts{
		SubtotalCents:    52500,
		ShippingCents:    30000,
		TaxCents:         2218,
		LiftGateFeeCents: 10000,
		GrandTotalCents:  94718,
	}
	if !a.Consistent() {
		t.Fatalf("expected amounts to be consistent")
	}

	a.GrandTotalCents++
	if a.Consistent() {
		t.Fatalf("expected inconsistent amounts to be rejected")
	}
}

func TestCartLineSubtotal(t *testing.T) {
	t.Parallel()

	fireworks := CartLine{
		Product: CartProduct{
			CasePriceCents: 24000,
			UnitProduct:    &UnitProduct{UnitPriceCents: 1500},
		},
		CaseQuantity: 2,
		UnitQuantity: 3,
	}
	if got := fireworks.SubtotalCents(); got != 52500 {
		t.Fatalf("firework line subtotal mismatch: %d", got)
	}

	apparel := CartLine{
		Product:      CartProduct{IsApparel: true, CasePriceCents: 24000},
		UnitQuantity: 2,
		Variant:      &ApparelVariant{UnitPriceCents: 2200, Size: "L"},
	}
	if got := apparel.SubtotalCents(); got != 4400 {
		t.Fatalf("apparel line subtotal mismatch: %d", got)
	}

	missingVariant := CartLine{
		Product:      CartProduct{IsApparel: true},
		UnitQuantity: 2,
	}
	if got := missingVariant.SubtotalCents(); got != 0 {
		t.Fatalf("apparel line without variant should price to zero, got %d", got)
	}
}
