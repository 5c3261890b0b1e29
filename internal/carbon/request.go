package carbon

import (
	"fmt"

	"github.com/tiro27cbs/carbontrack/internal/catalog"
)

// Defaults applied when a request omits an optional unit.
const (
	DefaultElectricityUnit = "kwh"
	DefaultDistanceUnit    = "km"
)

// Country code length bounds accepted by the estimation service.
const (
	minCountryCodeLen = 2
	maxCountryCodeLen = 6
)

// Request is one category-tagged estimate request. Validate enforces the
// category-specific field constraints; payload produces the request body
// fields (without the "type" discriminator). Neither touches the network.
type Request interface {
	Category() Category
	Validate() error
	payload() map[string]any
}

// Body validates req and assembles the full JSON-ready request body,
// including the category discriminator.
func Body(req Request) (map[string]any, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body := map[string]any{"type": req.Category().apiType()}
	for k, v := range req.payload() {
		body[k] = v
	}
	return body, nil
}

// ElectricityRequest estimates emissions for electricity consumption in a
// given country (and optionally a state within it).
type ElectricityRequest struct {
	// Value is the amount of electricity consumed, in Unit.
	Value float64

	// Country is a catalogued country code, e.g. "US" or "EU-27".
	Country string

	// State optionally narrows the grid region, e.g. "ca".
	State string

	// Unit defaults to kwh when empty.
	Unit string
}

// Category implements Request.
func (r ElectricityRequest) Category() Category { return Electricity }

// Validate implements Request.
func (r ElectricityRequest) Validate() error {
	if r.Value <= 0 {
		return validationErr("electricity_value", "must be greater than zero")
	}
	if len(r.Country) < minCountryCodeLen || len(r.Country) > maxCountryCodeLen {
		return validationErr("country", fmt.Sprintf("code must be %d-%d characters", minCountryCodeLen, maxCountryCodeLen))
	}
	if !catalog.IsCountry(r.Country) {
		return validationErr("country", fmt.Sprintf("unknown country code %q", r.Country))
	}
	return nil
}

func (r ElectricityRequest) payload() map[string]any {
	unit := r.Unit
	if unit == "" {
		unit = DefaultElectricityUnit
	}
	return map[string]any{
		"electricity_value": r.Value,
		"electricity_unit":  unit,
		"country":           r.Country,
		"state":             r.State,
	}
}

// FlightLeg is a single segment of a flight, identified by IATA airport codes.
type FlightLeg struct {
	Departure   string `json:"departure_airport"`
	Destination string `json:"destination_airport"`
}

// FlightRequest estimates emissions for passenger air travel.
type FlightRequest struct {
	Passengers int
	Legs       []FlightLeg

	// DistanceUnit defaults to km when empty.
	DistanceUnit string
}

// Category implements Request.
func (r FlightRequest) Category() Category { return Flight }

// Validate implements Request.
func (r FlightRequest) Validate() error {
	if r.Passengers <= 0 {
		return validationErr("passengers", "must be greater than zero")
	}
	if len(r.Legs) == 0 {
		return validationErr("legs", "at least one leg is required")
	}
	for i, leg := range r.Legs {
		if leg.Departure == "" {
			return validationErr("legs", fmt.Sprintf("leg %d is missing a departure airport", i+1))
		}
		if leg.Destination == "" {
			return validationErr("legs", fmt.Sprintf("leg %d is missing a destination airport", i+1))
		}
	}
	return nil
}

func (r FlightRequest) payload() map[string]any {
	unit := r.DistanceUnit
	if unit == "" {
		unit = DefaultDistanceUnit
	}
	return map[string]any{
		"passengers":    r.Passengers,
		"legs":          r.Legs,
		"distance_unit": unit,
	}
}

// Shipping weight and distance units, and transport methods, accepted by the
// estimation service.
var (
	//nolint:gochecknoglobals // Closed enum reference data.
	shippingWeightUnits = map[string]bool{"g": true, "lb": true, "kg": true, "mt": true}
	//nolint:gochecknoglobals // Closed enum reference data.
	distanceUnits = map[string]bool{"km": true, "mi": true}
	//nolint:gochecknoglobals // Closed enum reference data.
	transportMethods = map[string]bool{"ship": true, "train": true, "truck": true, "plane": true}
)

// ShippingRequest estimates emissions for moving freight.
type ShippingRequest struct {
	WeightValue     float64
	WeightUnit      string // g, lb, kg, mt
	DistanceValue   float64
	DistanceUnit    string // km, mi
	TransportMethod string // ship, train, truck, plane
}

// Category implements Request.
func (r ShippingRequest) Category() Category { return Shipping }

// Validate implements Request.
func (r ShippingRequest) Validate() error {
	if r.WeightValue <= 0 {
		return validationErr("weight_value", "must be greater than zero")
	}
	if !shippingWeightUnits[r.WeightUnit] {
		return validationErr("weight_unit", fmt.Sprintf("%q is not one of g, lb, kg, mt", r.WeightUnit))
	}
	if r.DistanceValue <= 0 {
		return validationErr("distance_value", "must be greater than zero")
	}
	if !distanceUnits[r.DistanceUnit] {
		return validationErr("distance_unit", fmt.Sprintf("%q is not one of km, mi", r.DistanceUnit))
	}
	if !transportMethods[r.TransportMethod] {
		return validationErr("transport_method", fmt.Sprintf("%q is not one of ship, train, truck, plane", r.TransportMethod))
	}
	return nil
}

func (r ShippingRequest) payload() map[string]any {
	return map[string]any{
		"weight_value":     r.WeightValue,
		"weight_unit":      r.WeightUnit,
		"distance_value":   r.DistanceValue,
		"distance_unit":    r.DistanceUnit,
		"transport_method": r.TransportMethod,
	}
}

// FuelCombustionRequest estimates emissions for burning a catalogued fuel.
type FuelCombustionRequest struct {
	// FuelKey is a catalog fuel identifier, e.g. "ng".
	FuelKey string

	// FuelUnit must be one of the catalogued units for FuelKey.
	FuelUnit string

	FuelValue float64
}

// Category implements Request.
func (r FuelCombustionRequest) Category() Category { return FuelCombustion }

// Validate implements Request.
func (r FuelCombustionRequest) Validate() error {
	fuel, ok := catalog.LookupFuel(r.FuelKey)
	if !ok {
		return validationErr("fuel_source_type", fmt.Sprintf("unknown fuel key %q", r.FuelKey))
	}
	if !catalog.ValidFuelUnit(r.FuelKey, r.FuelUnit) {
		return validationErr("fuel_source_unit",
			fmt.Sprintf("%q is not a valid unit for %s", r.FuelUnit, fuel.Name))
	}
	if r.FuelValue <= 0 {
		return validationErr("fuel_source_value", "must be greater than zero")
	}
	return nil
}

func (r FuelCombustionRequest) payload() map[string]any {
	return map[string]any{
		"fuel_source_type":  r.FuelKey,
		"fuel_source_unit":  r.FuelUnit,
		"fuel_source_value": r.FuelValue,
	}
}

// VehicleRequest estimates emissions for a trip in a specific vehicle model.
// The model ID comes from the service's make/model lookup and is opaque here.
type VehicleRequest struct {
	DistanceValue  float64
	DistanceUnit   string // km, mi
	VehicleModelID string
}

// Category implements Request.
func (r VehicleRequest) Category() Category { return Vehicle }

// Validate implements Request.
func (r VehicleRequest) Validate() error {
	if r.DistanceValue <= 0 {
		return validationErr("distance_value", "must be greater than zero")
	}
	if !distanceUnits[r.DistanceUnit] {
		return validationErr("distance_unit", fmt.Sprintf("%q is not one of km, mi", r.DistanceUnit))
	}
	if r.VehicleModelID == "" {
		return validationErr("vehicle_model_id", "must not be empty")
	}
	return nil
}

func (r VehicleRequest) payload() map[string]any {
	return map[string]any{
		"distance_value":   r.DistanceValue,
		"distance_unit":    r.DistanceUnit,
		"vehicle_model_id": r.VehicleModelID,
	}
}
