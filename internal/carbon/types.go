// Package carbon translates activity descriptions into Carbon Interface
// estimate requests, executes them, and extracts the emission value from the
// service response.
//
// The package splits into three layers: the request types (normalization and
// validation, no network access), the extractor (response parsing at the
// untrusted service boundary), and the Client (HTTP transport).
package carbon

import "fmt"

// Category identifies one of the activity kinds the estimation service
// supports. The set is closed: it drives both request validation and the
// label stored in the emissions ledger.
type Category int

const (
	// Electricity estimates grid electricity consumption.
	Electricity Category = iota

	// Flight estimates passenger air travel over one or more legs.
	Flight

	// Shipping estimates freight transport.
	Shipping

	// FuelCombustion estimates direct combustion of a catalogued fuel.
	FuelCombustion

	// Vehicle estimates a trip in a specific vehicle model.
	Vehicle
)

// String returns the ledger label for the category.
func (c Category) String() string {
	switch c {
	case Electricity:
		return "Electricity"
	case Flight:
		return "Flight"
	case Shipping:
		return "Shipping"
	case FuelCombustion:
		return "Fuel Combustion"
	case Vehicle:
		return "Vehicle"
	default:
		return fmt.Sprintf("Category(%d)", c)
	}
}

// apiType returns the "type" discriminator the estimation service expects
// in the request body.
func (c Category) apiType() string {
	switch c {
	case Electricity:
		return "electricity"
	case Flight:
		return "flight"
	case Shipping:
		return "shipping"
	case FuelCombustion:
		return "fuel_combustion"
	case Vehicle:
		return "vehicle"
	default:
		return ""
	}
}

// Categories returns all supported categories in declaration order.
func Categories() []Category {
	return []Category{Electricity, Flight, Shipping, FuelCombustion, Vehicle}
}

// ParseCategory resolves a category from its ledger label or API type name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == c.String() || s == c.apiType() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown estimate category %q", s)
}

// ValidationError reports a request field that violates a category
// constraint. It is caller-correctable: the field name says what to fix.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// validationErr is shorthand for constructing a *ValidationError.
func validationErr(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
