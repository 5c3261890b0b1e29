package greenops

import (
	"fmt"
	"math"
)

// Equivalency is one calculated real-world comparison.
type Equivalency struct {
	// Value is the raw calculated equivalency value.
	Value float64 `json:"value"`

	// Formatted is the display-ready value with separators.
	Formatted string `json:"formatted"`

	// Label is the descriptive phrase, e.g. "miles driven".
	Label string `json:"label"`
}

// Summary holds all equivalencies for one footprint value.
type Summary struct {
	// InputKg is the footprint being described, in kg CO2e.
	InputKg float64 `json:"input_kg"`

	// Items lists the equivalencies in display priority order.
	Items []Equivalency `json:"items"`

	// Text is the prose form for CLI output, e.g.
	// "Equivalent to driving ~781 miles or charging ~18,248 smartphones".
	Text string `json:"text"`

	// IsEmpty is true when the footprint was below the display threshold.
	IsEmpty bool `json:"is_empty"`
}

// ForKg computes the equivalency summary for a footprint in kilograms.
// Footprints below MinEquivalencyThresholdKg, and non-finite or negative
// inputs, yield an empty summary rather than an error: equivalencies are
// decoration, never a reason to fail a command.
func ForKg(kg float64) Summary {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < MinEquivalencyThresholdKg {
		return Summary{InputKg: kg, IsEmpty: true}
	}

	miles := kg / MilesDrivenFactor
	phones := kg / SmartphoneChargeFactor
	seedlings := kg / TreeSeedlingFactor

	items := []Equivalency{
		{Value: miles, Formatted: FormatFloat(miles, 0), Label: "miles driven"},
		{Value: phones, Formatted: FormatFloat(phones, 0), Label: "smartphones charged"},
		{Value: seedlings, Formatted: FormatFloat(seedlings, 1), Label: "tree seedlings grown for 10 years"},
	}

	text := fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
		items[0].Formatted, items[1].Formatted)

	return Summary{InputKg: kg, Items: items, Text: text}
}
