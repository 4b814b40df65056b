package enums

import "fmt"

// OrderType is the derived classification of a cart, recomputed whenever
// cart contents or destination change. It is never persisted.
type OrderType string

const (
	OrderTypeRetail      OrderType = "retail"
	OrderTypeWholesale   OrderType = "wholesale"
	OrderTypeCombo       OrderType = "combo"
	OrderTypeShow        OrderType = "show"
	OrderTypeApparelOnly OrderType = "apparelOnly"
)

var validOrderTypes = []OrderType{
	OrderTypeRetail,
	OrderTypeWholesale,
	OrderTypeCombo,
	OrderTypeShow,
	OrderTypeApparelOnly,
}

// String implements fmt.Stringer.
func (o OrderType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OrderType.
func (o OrderType) IsValid() bool {
	for _, candidate := range validOrderTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOrderType converts raw input into an OrderType.
func ParseOrderType(value string) (OrderType, error) {
	for _, candidate := range validOrderTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order type %q", value)
}
