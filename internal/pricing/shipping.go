package pricing

import "github.com/skyburst/storefront-backend/pkg/enums"

// LiftGateFeeCents is the flat freight accessorial surcharge.
const LiftGateFeeCents = 10000

// RateBand maps a minimum subtotal to the shipping cost per destination.
type RateBand struct {
	MinCents      int
	AnywhereCents int
	TerminalCents int
}

// RateTables holds one descending threshold table per freight order type.
// Show orders never consult a table; they ship free.
type RateTables map[enums.OrderType][]RateBand

// DefaultRateTables returns the built-in rate policy. Each table is walked
// from highest threshold to lowest and the first band at or under the order
// amount wins; the zero-threshold band guarantees a match.
func DefaultRateTables() RateTables {
	return RateTables{
		enums.OrderTypeRetail: {
			{MinCents: 150000, AnywhereCents: 0, TerminalCents: 0},
			{MinCents: 125000, AnywhereCents: 10000, TerminalCents: 0},
			{MinCents: 100000, AnywhereCents: 15000, TerminalCents: 15000},
			{MinCents: 75000, AnywhereCents: 25000, TerminalCents: 20000},
			{MinCents: 50000, AnywhereCents: 30000, TerminalCents: 25000},
			{MinCents: 35000, AnywhereCents: 35000, TerminalCents: 30000},
			{MinCents: 0, AnywhereCents: 35900, TerminalCents: 35900},
		},
		enums.OrderTypeWholesale: {
			{MinCents: 300000, AnywhereCents: 0, TerminalCents: 0},
			{MinCents: 250000, AnywhereCents: 10000, TerminalCents: 0},
			{MinCents: 200000, AnywhereCents: 20000, TerminalCents: 15000},
			{MinCents: 150000, AnywhereCents: 30000, TerminalCents: 25000},
			{MinCents: 100000, AnywhereCents: 40000, TerminalCents: 35000},
			{MinCents: 50000, AnywhereCents: 45000, TerminalCents: 40000},
			{MinCents: 0, AnywhereCents: 45900, TerminalCents: 45900},
		},
		enums.OrderTypeCombo: {
			{MinCents: 200000, AnywhereCents: 0, TerminalCents: 0},
			{MinCents: 150000, AnywhereCents: 15000, TerminalCents: 10000},
			{MinCents: 100000, AnywhereCents: 25000, TerminalCents: 20000},
			{MinCents: 75000, AnywhereCents: 35000, TerminalCents: 30000},
			{MinCents: 50000, AnywhereCents: 40000, TerminalCents: 35000},
			{MinCents: 0, AnywhereCents: 40900, TerminalCents: 40900},
		},
		enums.OrderTypeApparelOnly: {
			{MinCents: 20000, AnywhereCents: 0, TerminalCents: 0},
			{MinCents: 10000, AnywhereCents: 1500, TerminalCents: 1500},
			{MinCents: 0, AnywhereCents: 2500, TerminalCents: 2500},
		},
	}
}

// Shipping resolves the shipping cost for a non-show order using the default
// rate tables. If needLiftGate is set a flat surcharge is added on top.
func Shipping(orderAmountCents int, orderType enums.OrderType, destination enums.Destination, needLiftGate bool) int {
	return ShippingWithTables(DefaultRateTables(), orderAmountCents, orderType, destination, needLiftGate)
}

// ShippingWithTables is Shipping against a caller-supplied rate policy, for
// deployments that source the apparel table (or any table) from config.
func ShippingWithTables(tables RateTables, orderAmountCents int, orderType enums.OrderType, destination enums.Destination, needLiftGate bool) int {
	cost := 0
	for _, band := range tables[orderType] {
		if orderAmountCents >= band.MinCents {
			if destination == enums.DestinationTerminal {
				cost = band.TerminalCents
			} else {
				cost = band.AnywhereCents
			}
			break
		}
	}
	if needLiftGate {
		cost += LiftGateFeeCents
	}
	return cost
}
