package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/skyburst/storefront-backend/pkg/enums"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/types"
)

// wholesaleRatioCeiling is the unit share below which a mixed cart is still
// priced as wholesale. Exactly 0.25 falls on the combo side.
var wholesaleRatioCeiling = decimal.New(25, -2)

// Classify derives the order type for a cart snapshot.
//
// A single show line classifies the whole cart as a show order, regardless of
// every other line. Failing that, a cart of nothing but apparel is
// apparel-only. Otherwise the case/unit revenue split decides: apparel lines
// are excluded from the split because they price through variants and do not
// participate in wholesale tiers.
func Classify(lines []types.CartLine) (enums.OrderType, error) {
	if len(lines) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "cannot classify an empty cart")
	}

	apparelOnly := true
	for _, line := range lines {
		if line.Product.IsShow {
			return enums.OrderTypeShow, nil
		}
		if !line.Product.IsApparel {
			apparelOnly = false
		}
	}
	if apparelOnly {
		return enums.OrderTypeApparelOnly, nil
	}

	var caseSubtotal, unitSubtotal int
	for _, line := range lines {
		if line.Product.IsApparel {
			continue
		}
		caseSubtotal += line.Product.CasePriceCents * line.CaseQuantity
		if line.Product.UnitProduct != nil {
			unitSubtotal += line.Product.UnitProduct.UnitPriceCents * line.UnitQuantity
		}
	}

	combined := caseSubtotal + unitSubtotal
	switch {
	case combined == unitSubtotal:
		return enums.OrderTypeRetail, nil
	case unitSubtotal == 0:
		return enums.OrderTypeWholesale, nil
	}

	ratio := decimal.NewFromInt(int64(unitSubtotal)).Div(decimal.NewFromInt(int64(combined)))
	if ratio.LessThan(wholesaleRatioCeiling) {
		return enums.OrderTypeWholesale, nil
	}
	return enums.OrderTypeCombo, nil
}
