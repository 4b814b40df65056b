package enums

// AddressCompleteness is the derived fill state of a shipping address.
type AddressCompleteness string

const (
	AddressEmpty    AddressCompleteness = "empty"
	AddressPartial  AddressCompleteness = "partial"
	AddressComplete AddressCompleteness = "complete"
)

// String implements fmt.Stringer.
func (a AddressCompleteness) String() string {
	return string(a)
}
