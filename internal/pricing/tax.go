package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxResult is the outcome of a destination tax lookup. Shippable false means
// the business does not deliver to the state at all; callers branch on the
// flag instead of matching error strings.
type TaxResult struct {
	Shippable bool
	Rate      decimal.Decimal
	TaxCents  int
}

// stateTaxRates is the shipping footprint. States absent from this table are
// outside the delivery area (consumer fireworks cannot be shipped there).
// Montana is in-footprint with a zero rate, so a 0% tax result is still
// distinct from a non-shippable one.
var stateTaxRates = map[string]decimal.Decimal{
	"AL": decimal.New(4000, -5),
	"AR": decimal.New(6500, -5),
	"AZ": decimal.New(5600, -5),
	"CO": decimal.New(2900, -5),
	"FL": decimal.New(6000, -5),
	"GA": decimal.New(4000, -5),
	"IA": decimal.New(6000, -5),
	"IN": decimal.New(7000, -5),
	"KS": decimal.New(6500, -5),
	"KY": decimal.New(6000, -5),
	"LA": decimal.New(4450, -5),
	"MI": decimal.New(6000, -5),
	"MO": decimal.New(4225, -5),
	"MS": decimal.New(7000, -5),
	"MT": decimal.Zero,
	"ND": decimal.New(5000, -5),
	"NE": decimal.New(5500, -5),
	"NM": decimal.New(5125, -5),
	"NV": decimal.New(6850, -5),
	"OK": decimal.New(4500, -5),
	"PA": decimal.New(6000, -5),
	"SC": decimal.New(6000, -5),
	"SD": decimal.New(4200, -5),
	"TN": decimal.New(7000, -5),
	"TX": decimal.New(6250, -5),
	"UT": decimal.New(4850, -5),
	"VA": decimal.New(4300, -5),
	"WI": decimal.New(5000, -5),
	"WY": decimal.New(4000, -5),
}

// StateTax looks up the destination state and computes sales tax on the
// subtotal, rounded to whole cents.
func StateTax(stateCode string, subtotalCents int) TaxResult {
	rate, ok := stateTaxRates[strings.ToUpper(strings.TrimSpace(stateCode))]
	if !ok {
		return TaxResult{Shippable: false}
	}

	tax := decimal.NewFromInt(int64(subtotalCents)).Mul(rate).Round(0)
	return TaxResult{
		Shippable: true,
		Rate:      rate,
		TaxCents:  int(tax.IntPart()),
	}
}

// Shippable reports whether the state is inside the delivery footprint.
func Shippable(stateCode string) bool {
	_, ok := stateTaxRates[strings.ToUpper(strings.TrimSpace(stateCode))]
	return ok
}
