package pricing

import (
	"testing"

	"github.com/skyburst/storefront-backend/pkg/enums"
	pkgerrors "github.com/skyburst/storefront-backend/pkg/errors"
	"github.com/skyburst/storefront-backend/pkg/types"
)

func caseLine(casePriceCents, caseQty int) types.CartLine {
	return types.CartLine{
		Product:      types.CartProduct{CasePriceCents: casePriceCents},
		CaseQuantity: caseQty,
	}
}

func unitLine(unitPriceCents, unitQty int) types.CartLine {
	return types.CartLine{
		Product:      types.CartProduct{UnitProduct: &types.UnitProduct{UnitPriceCents: unitPriceCents}},
		UnitQuantity: unitQty,
	}
}

func showLine() types.CartLine {
	return types.CartLine{
		Product:      types.CartProduct{IsShow: true, CasePriceCents: 50000},
		CaseQuantity: 1,
	}
}

func apparelLine(unitPriceCents, qty int) types.CartLine {
	return types.CartLine{
		Product:      types.CartProduct{IsApparel: true},
		UnitQuantity: qty,
		Variant:      &types.ApparelVariant{UnitPriceCents: unitPriceCents},
	}
}

func TestClassifyEmptyCartRejected(t *testing.T) {
	t.Parallel()

	_, err := Classify(nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestClassifyShowOverridesEverything(t *testing.T) {
	t.Parallel()

	lines := []types.CartLine{showLine()}
	for i := 0; i < 10; i++ {
		lines = append(lines, caseLine(30000, 4))
	}

	got, err := Classify(lines)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if got != enums.OrderTypeShow {
		t.Fatalf("expected show, got %s", got)
	}
}

func TestClassifyApparelOnly(t *testing.T) {
	t.Parallel()

	got, err := Classify([]types.CartLine{apparelLine(2200, 1), apparelLine(1800, 3)})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if got != enums.OrderTypeApparelOnly {
		t.Fatalf("expected apparelOnly, got %s", got)
	}
}

func TestClassifyCaseUnitSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		lines []types.CartLine
		want  enums.OrderType
	}{
		{
			name:  "pure unit sales are retail",
			lines: []types.CartLine{unitLine(10000, 1)},
			want:  enums.OrderTypeRetail,
		},
		{
			name:  "pure case sales are wholesale",
			lines: []types.CartLine{caseLine(10000, 1)},
			want:  enums.OrderTypeWholesale,
		},
		{
			name:  "unit share under a quarter stays wholesale",
			lines: []types.CartLine{caseLine(30100, 1), unitLine(10000, 1)},
			want:  enums.OrderTypeWholesale,
		},
		{
			name:  "unit share of exactly a quarter is combo",
			lines: []types.CartLine{caseLine(30000, 1), unitLine(10000, 1)},
			want:  enums.OrderTypeCombo,
		},
		{
			name:  "unit-heavy mix is combo",
			lines: []types.CartLine{caseLine(10000, 1), unitLine(10000, 1)},
			want:  enums.OrderTypeCombo,
		},
		{
			name:  "apparel lines do not move the split",
			lines: []types.CartLine{caseLine(30100, 1), unitLine(10000, 1), apparelLine(99999, 5)},
			want:  enums.OrderTypeWholesale,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Classify(tc.lines)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if got != tc.want {
				t.Fatalf("classification mismatch: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	lines := []types.CartLine{caseLine(27500, 2), unitLine(3500, 4), apparelLine(2200, 1)}
	first, err := Classify(lines)
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	for i := 0; i < 50; i++ {
		again, err := Classify(lines)
		if err != nil {
			t.Fatalf("classify: %v", err)
		}
		if again != first {
			t.Fatalf("classification changed between calls: %s vs %s", first, again)
		}
	}
}
