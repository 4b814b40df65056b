package types

import (
	"testing"

	"github.com/skyburst/storefront-backend/pkg/enums"
)

func TestAddressCompleteness(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		addr Address
		want enums.AddressCompleteness
	}{
		{
			name: "all blank",
			addr: Address{},
			want: enums.AddressEmpty,
		},
		{
			name: "whitespace only is empty",
			addr: Address{Street1: "  ", City: "\t"},
			want: enums.AddressEmpty,
		},
		{
			name: "street only",
			addr: Address{Street1: "12 Roman Candle Rd"},
			want: enums.AddressPartial,
		},
		{
			name: "missing postal code",
			addr: Address{Street1: "12 Roman Candle Rd", City: "Sparta", State: "MO"},
			want: enums.AddressPartial,
		},
		{
			name: "complete",
			addr: Address{Street1: "12 Roman Candle Rd", City: "Sparta", State: "MO", PostalCode: "65753"},
			want: enums.AddressComplete,
		},
		{
			name: "street2 alone is partial",
			addr: Address{Street2: "Suite 4"},
			want: enums.AddressPartial,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.addr.Completeness(); got != tc.want {
				t.Fatalf("completeness mismatch: got %s want %s", got, tc.want)
			}
		})
	}
}

func TestNormalizedState(t *testing.T) {
	t.Parallel()

	addr := Address{State: " mo "}
	if got := addr.NormalizedState(); got != "MO" {
		t.Fatalf("unexpected state: %q", got)
	}
}
