package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyburst/storefront-backend/pkg/enums"
)

func TestShippingRetailThresholds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amountCents int
		anywhere    int
		terminal    int
	}{
		{34999, 35900, 35900},
		{35000, 35000, 30000},
		{49999, 35000, 30000},
		{50000, 30000, 25000},
		{75000, 25000, 20000},
		{100000, 15000, 15000},
		{125000, 10000, 0},
		{149999, 10000, 0},
		{150000, 0, 0},
		{900000, 0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.anywhere, Shipping(tc.amountCents, enums.OrderTypeRetail, enums.DestinationAnywhere, false),
			"anywhere cost at %d", tc.amountCents)
		assert.Equal(t, tc.terminal, Shipping(tc.amountCents, enums.OrderTypeRetail, enums.DestinationTerminal, false),
			"terminal cost at %d", tc.amountCents)
	}
}

func TestShippingMonotonicNonIncreasing(t *testing.T) {
	t.Parallel()

	orderTypes := []enums.OrderType{
		enums.OrderTypeRetail,
		enums.OrderTypeWholesale,
		enums.OrderTypeCombo,
		enums.OrderTypeApparelOnly,
	}
	destinations := []enums.Destination{enums.DestinationAnywhere, enums.DestinationTerminal}

	for _, orderType := range orderTypes {
		for _, dest := range destinations {
			prev := Shipping(0, orderType, dest, false)
			for amount := 0; amount <= 400000; amount += 2500 {
				cost := Shipping(amount, orderType, dest, false)
				require.LessOrEqual(t, cost, prev,
					"%s/%s: cost rose from %d to %d at amount %d", orderType, dest, prev, cost, amount)
				prev = cost
			}
		}
	}
}

func TestShippingHighVolumeFloorIsFree(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Shipping(300000, enums.OrderTypeWholesale, enums.DestinationAnywhere, false))
	assert.Zero(t, Shipping(200000, enums.OrderTypeCombo, enums.DestinationAnywhere, false))
}

func TestShippingLiftGateAdditivity(t *testing.T) {
	t.Parallel()

	for amount := 0; amount <= 350000; amount += 12500 {
		for _, orderType := range []enums.OrderType{enums.OrderTypeRetail, enums.OrderTypeWholesale, enums.OrderTypeCombo} {
			for _, dest := range []enums.Destination{enums.DestinationAnywhere, enums.DestinationTerminal} {
				base := Shipping(amount, orderType, dest, false)
				withGate := Shipping(amount, orderType, dest, true)
				require.Equal(t, base+LiftGateFeeCents, withGate,
					"%s/%s at %d", orderType, dest, amount)
			}
		}
	}
}

func TestShippingWithTablesOverride(t *testing.T) {
	t.Parallel()

	tables := RateTables{
		enums.OrderTypeApparelOnly: {
			{MinCents: 5000, AnywhereCents: 0, TerminalCents: 0},
			{MinCents: 0, AnywhereCents: 999, TerminalCents: 999},
		},
	}

	assert.Equal(t, 999, ShippingWithTables(tables, 4999, enums.OrderTypeApparelOnly, enums.DestinationAnywhere, false))
	assert.Equal(t, 0, ShippingWithTables(tables, 5000, enums.OrderTypeApparelOnly, enums.DestinationAnywhere, false))
}
