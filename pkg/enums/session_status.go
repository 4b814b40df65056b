package enums

import "fmt"

// SessionStatus tracks the lifecycle of a hosted-payment checkout session.
type SessionStatus string

const (
	SessionStatusIdle            SessionStatus = "idle"
	SessionStatusAwaitingToken   SessionStatus = "awaiting_token"
	SessionStatusAwaitingPayment SessionStatus = "awaiting_payment"
	SessionStatusFinalizing      SessionStatus = "finalizing"
	SessionStatusCompleted       SessionStatus = "completed"
	SessionStatusAborted         SessionStatus = "aborted"
	SessionStatusTimedOut        SessionStatus = "timed_out"
)

var validSessionStatuses = []SessionStatus{
	SessionStatusIdle,
	SessionStatusAwaitingToken,
	SessionStatusAwaitingPayment,
	SessionStatusFinalizing,
	SessionStatusCompleted,
	SessionStatusAborted,
	SessionStatusTimedOut,
}

// String implements fmt.Stringer.
func (s SessionStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SessionStatus.
func (s SessionStatus) IsValid() bool {
	for _, candidate := range validSessionStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the session can no longer make progress.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionStatusCompleted, SessionStatusAborted, SessionStatusTimedOut:
		return true
	}
	return false
}

// ParseSessionStatus converts raw input into a SessionStatus.
func ParseSessionStatus(value string) (SessionStatus, error) {
	for _, candidate := range validSessionStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid session status %q", value)
}
