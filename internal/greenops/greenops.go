// Package greenops turns abstract carbon footprint values (kg CO2e) into
// relatable real-world equivalencies such as "miles driven" or "smartphones
// charged", using EPA-published conversion factors. The CLI appends these to
// estimate results and ledger totals.
package greenops

import (
	"math"
	"strings"
)

// EPA equivalency factors (2024 edition). Each is the kg CO2e per unit of
// the activity; equivalency = kg_CO2e / factor.
// Source: https://www.epa.gov/energy/greenhouse-gas-equivalencies-calculator
const (
	// MilesDrivenFactor is kg CO2e per mile in an average passenger vehicle.
	MilesDrivenFactor = 0.192

	// SmartphoneChargeFactor is kg CO2e per full smartphone charge.
	SmartphoneChargeFactor = 0.00822

	// TreeSeedlingFactor is kg CO2e absorbed per seedling grown for 10 years.
	TreeSeedlingFactor = 60.0
)

// Unit conversion factors to kilograms.
const (
	gramsToKg  = 0.001
	kgToKg     = 1.0
	tonsToKg   = 1000.0
	poundsToKg = 0.453592
)

// MinEquivalencyThresholdKg is the minimum footprint for which equivalencies
// are shown. Below it the numbers are meaninglessly small.
const MinEquivalencyThresholdKg = 1.0

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is.
const (
	// ErrInvalidUnit indicates an unrecognized carbon unit.
	ErrInvalidUnit = constError("invalid carbon unit")

	// ErrNegativeValue indicates a negative carbon value.
	ErrNegativeValue = constError("negative carbon value")

	// ErrNotFinite indicates an Inf or NaN carbon value.
	ErrNotFinite = constError("carbon value is not finite")
)

// unitFactor returns the kilograms-per-unit factor for a carbon unit.
// Matching is case-insensitive and accepts the CO2e-suffixed spellings.
func unitFactor(unit string) (float64, bool) {
	switch strings.ToLower(unit) {
	case "g", "gco2e":
		return gramsToKg, true
	case "kg", "kgco2e":
		return kgToKg, true
	case "t", "mt", "tco2e":
		return tonsToKg, true
	case "lb", "lbco2e":
		return poundsToKg, true
	default:
		return 0, false
	}
}

// NormalizeToKg converts a carbon quantity in any recognized unit (g, kg,
// t/mt, lb, plus CO2e-suffixed variants) to kilograms.
func NormalizeToKg(value float64, unit string) (float64, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, ErrNotFinite
	}
	if value < 0 {
		return 0, ErrNegativeValue
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return value * factor, nil
}

// ConvertKg converts a kilogram value into another recognized unit, for
// display purposes (e.g. `ledger total --unit lb`).
func ConvertKg(kg float64, unit string) (float64, error) {
	if math.IsInf(kg, 0) || math.IsNaN(kg) {
		return 0, ErrNotFinite
	}
	factor, ok := unitFactor(unit)
	if !ok {
		return 0, ErrInvalidUnit
	}
	return kg / factor, nil
}

// IsRecognizedUnit reports whether unit is a supported carbon unit.
func IsRecognizedUnit(unit string) bool {
	_, ok := unitFactor(unit)
	return ok
}
