package helcim

import "strings"

// eventNamePrefix scopes HelcimPay.js window messages to one checkout token.
const eventNamePrefix = "helcim-pay-js-"

// Event statuses relayed by the HelcimPay.js widget.
const (
	EventStatusSuccess = "SUCCESS"
	EventStatusAborted = "ABORTED"
	EventStatusHide    = "HIDE"
)

// PayEvent is one message relayed from the embedded payment widget.
type PayEvent struct {
	EventName   string `json:"event_name"`
	EventStatus string `json:"event_status"`
}

// EventName returns the token-scoped channel name for a checkout token.
func EventName(checkoutToken string) string {
	return eventNamePrefix + checkoutToken
}

// TokenFromEventName extracts the checkout token from a channel name.
// The second return is false for names outside the HelcimPay convention.
func TokenFromEventName(eventName string) (string, bool) {
	if !strings.HasPrefix(eventName, eventNamePrefix) {
		return "", false
	}
	token := strings.TrimPrefix(eventName, eventNamePrefix)
	if token == "" {
		return "", false
	}
	return token, true
}

// Matches reports whether the event belongs to the given checkout token.
func (e PayEvent) Matches(checkoutToken string) bool {
	return e.EventName == EventName(checkoutToken)
}
