package pricing

// EligibilityInput holds the four independent checkout preconditions.
type EligibilityInput struct {
	AddressComplete bool
	StateShippable  bool
	TOSAccepted     bool
	CartSettled     bool
}

// EligibilityReason is one user-facing blocker with its own message.
type EligibilityReason struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Eligibility is the conjunction of the four preconditions plus the
// individual reasons that currently fail.
type Eligibility struct {
	CanCheckout bool                `json:"can_checkout"`
	Reasons     []EligibilityReason `json:"reasons,omitempty"`
}

const (
	ReasonAddressIncomplete = "address_incomplete"
	ReasonStateNotShippable = "state_not_shippable"
	ReasonTOSNotAccepted    = "tos_not_accepted"
	ReasonCartUpdating      = "cart_updating"
)

// CheckEligibility evaluates the checkout gate. Every failing condition is
// reported separately so the storefront can show each message on its own.
func CheckEligibility(in EligibilityInput) Eligibility {
	var reasons []EligibilityReason
	if !in.AddressComplete {
		reasons = append(reasons, EligibilityReason{
			Code:    ReasonAddressIncomplete,
			Message: "complete your shipping address before checking out",
		})
	}
	if !in.StateShippable {
		reasons = append(reasons, EligibilityReason{
			Code:    ReasonStateNotShippable,
			Message: "sorry, we don't ship to your state",
		})
	}
	if !in.TOSAccepted {
		reasons = append(reasons, EligibilityReason{
			Code:    ReasonTOSNotAccepted,
			Message: "accept the terms of service to continue",
		})
	}
	if !in.CartSettled {
		reasons = append(reasons, EligibilityReason{
			Code:    ReasonCartUpdating,
			Message: "your cart is still updating, hang tight",
		})
	}
	return Eligibility{
		CanCheckout: len(reasons) == 0,
		Reasons:     reasons,
	}
}
