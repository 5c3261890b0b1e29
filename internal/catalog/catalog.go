// Package catalog holds the static reference data used to validate and
// annotate estimate requests: the supported fuel sources and the country
// codes recognized by the estimation service.
package catalog

import "sort"

// FuelSource describes one combustible fuel the estimation service accepts,
// together with the measurement units valid for it.
type FuelSource struct {
	// Key is the short API identifier, e.g. "ng" for natural gas.
	Key string

	// Name is the human-readable fuel name.
	Name string

	// Units lists the accepted units for this fuel, in preference order.
	Units []string
}

// fuelSources is keyed by the API fuel identifier.
//
//nolint:gochecknoglobals // Compile-time reference data.
var fuelSources = map[string]FuelSource{
	"bit": {Key: "bit", Name: "Bituminous Coal", Units: []string{"short_ton", "btu"}},
	"dfo": {Key: "dfo", Name: "Home Heating and Diesel Fuel (Distillate)", Units: []string{"gallon", "btu"}},
	"jf":  {Key: "jf", Name: "Jet Fuel", Units: []string{"gallon", "btu"}},
	"ker": {Key: "ker", Name: "Kerosene", Units: []string{"gallon", "btu"}},
	"lig": {Key: "lig", Name: "Lignite Coal", Units: []string{"short_ton", "btu"}},
	"msw": {Key: "msw", Name: "Municipal Solid Waste", Units: []string{"short_ton", "btu"}},
	"ng":  {Key: "ng", Name: "Natural Gas", Units: []string{"thousand_cubic_feet", "btu"}},
	"pc":  {Key: "pc", Name: "Petroleum Coke", Units: []string{"gallon", "btu"}},
	"pg":  {Key: "pg", Name: "Propane Gas", Units: []string{"gallon", "btu"}},
	"rfo": {Key: "rfo", Name: "Residual Fuel Oil", Units: []string{"gallon", "btu"}},
	"sub": {Key: "sub", Name: "Subbituminous Coal", Units: []string{"short_ton", "btu"}},
	"tdf": {Key: "tdf", Name: "Tire-Derived Fuel", Units: []string{"short_ton", "btu"}},
	"wo":  {Key: "wo", Name: "Waste Oil", Units: []string{"barrel", "btu"}},
}

// countryCodes maps service-recognized country codes to display names.
//
//nolint:gochecknoglobals // Compile-time reference data.
var countryCodes = map[string]string{
	"US":      "United States of America",
	"CA":      "Canada",
	"AT":      "Austria",
	"BE":      "Belgium",
	"BG":      "Bulgaria",
	"HR":      "Croatia",
	"CY":      "Cyprus",
	"CZ":      "Czechia",
	"DK":      "Denmark",
	"EU-27":   "EU-27",
	"EU-27+1": "EU27+1",
	"EE":      "Estonia",
	"FI":      "Finland",
	"FR":      "France",
	"DE":      "Germany",
	"GR":      "Greece",
	"GU":      "Hungary",
	"IE":      "Ireland",
	"IT":      "Italy",
	"LV":      "Latvia",
	"LT":      "Lithuania",
	"LU":      "Luxembourg",
	"MT":      "Malta",
	"NL":      "Netherlands",
	"PL":      "Poland",
	"PT":      "Portugal",
	"RO":      "Romania",
	"SK":      "Slovakia",
	"SI":      "Slovenia",
	"ES":      "Spain",
	"SE":      "Sweden",
	"GB":      "United Kingdom",
}

// LookupFuel returns the fuel source for the given API key.
func LookupFuel(key string) (FuelSource, bool) {
	fs, ok := fuelSources[key]
	return fs, ok
}

// ValidFuelUnit reports whether unit is an accepted unit for the fuel
// identified by key. Unknown fuel keys always return false.
func ValidFuelUnit(key, unit string) bool {
	fs, ok := fuelSources[key]
	if !ok {
		return false
	}
	for _, u := range fs.Units {
		if u == unit {
			return true
		}
	}
	return false
}

// Fuels returns all fuel sources sorted by key.
func Fuels() []FuelSource {
	fuels := make([]FuelSource, 0, len(fuelSources))
	for _, fs := range fuelSources {
		fuels = append(fuels, fs)
	}
	sort.Slice(fuels, func(i, j int) bool { return fuels[i].Key < fuels[j].Key })
	return fuels
}

// IsCountry reports whether code is a recognized country code.
func IsCountry(code string) bool {
	_, ok := countryCodes[code]
	return ok
}

// CountryName returns the display name for a country code.
func CountryName(code string) (string, bool) {
	name, ok := countryCodes[code]
	return name, ok
}

// Country pairs a service country code with its display name.
type Country struct {
	Code string
	Name string
}

// Countries returns all recognized countries sorted by code.
func Countries() []Country {
	countries := make([]Country, 0, len(countryCodes))
	for code, name := range countryCodes {
		countries = append(countries, Country{Code: code, Name: name})
	}
	sort.Slice(countries, func(i, j int) bool { return countries[i].Code < countries[j].Code })
	return countries
}
