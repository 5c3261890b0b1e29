package greenops

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Abbreviation thresholds for large values.
const (
	millionThreshold = 1_000_000
	billionThreshold = 1_000_000_000
)

// printer is the locale-aware message printer for number formatting.
// English locale gives consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats a float with the given precision and thousand
// separators. Precision zero rounds to a grouped integer.
func FormatFloat(f float64, precision int) string {
	if precision == 0 {
		return FormatNumber(int64(math.Round(f)))
	}
	return printer.Sprintf("%.*f", precision, f)
}

// FormatLarge abbreviates million- and billion-scale values.
// Example: FormatLarge(1500000000) returns "~1.5 billion".
func FormatLarge(n float64) string {
	if n >= billionThreshold {
		return fmt.Sprintf("~%.1f billion", n/billionThreshold)
	}
	if n >= millionThreshold {
		return fmt.Sprintf("~%.1f million", n/millionThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}
