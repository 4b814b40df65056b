package enums

import "fmt"

// Destination selects which column of a shipping rate table applies:
// delivery to the buyer's address or pickup at a freight terminal.
type Destination string

const (
	DestinationAnywhere Destination = "anywhere"
	DestinationTerminal Destination = "terminal"
)

var validDestinations = []Destination{
	DestinationAnywhere,
	DestinationTerminal,
}

// String implements fmt.Stringer.
func (d Destination) String() string {
	return string(d)
}

// IsValid reports whether the value is a known Destination.
func (d Destination) IsValid() bool {
	for _, candidate := range validDestinations {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDestination converts raw input into a Destination.
func ParseDestination(value string) (Destination, error) {
	for _, candidate := range validDestinations {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid destination %q", value)
}
