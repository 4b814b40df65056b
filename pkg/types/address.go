package types

import (
	"strings"

	"github.com/skyburst/storefront-backend/pkg/enums"
)

// Address is a shipping destination. State is a 2-letter code.
type Address struct {
	Street1    string `json:"street1"`
	Street2    string `json:"street2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
}

// NormalizedState returns the trimmed, uppercased 2-letter state code.
func (a Address) NormalizedState() string {
	return strings.ToUpper(strings.TrimSpace(a.State))
}

// Completeness derives the fill state of the address. Complete requires
// street1, city, state and postal code all non-empty after trimming.
func (a Address) Completeness() enums.AddressCompleteness {
	street1 := strings.TrimSpace(a.Street1)
	street2 := strings.TrimSpace(a.Street2)
	city := strings.TrimSpace(a.City)
	state := strings.TrimSpace(a.State)
	postal := strings.TrimSpace(a.PostalCode)

	if street1 != "" && city != "" && state != "" && postal != "" {
		return enums.AddressComplete
	}
	if street1 == "" && street2 == "" && city == "" && state == "" && postal == "" {
		return enums.AddressEmpty
	}
	return enums.AddressPartial
}

// IsComplete reports whether the address can receive a shipment.
func (a Address) IsComplete() bool {
	return a.Completeness() == enums.AddressComplete
}
