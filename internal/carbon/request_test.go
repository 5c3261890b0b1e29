package carbon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElectricityRequestValidate(t *testing.T) {
	tests := []struct {
		name      string
		req       ElectricityRequest
		wantField string
	}{
		{
			name: "valid request",
			req:  ElectricityRequest{Value: 42, Country: "US"},
		},
		{
			name: "valid with state and unit",
			req:  ElectricityRequest{Value: 1, Country: "CA", State: "on", Unit: "mwh"},
		},
		{
			name:      "zero value",
			req:       ElectricityRequest{Value: 0, Country: "US"},
			wantField: "electricity_value",
		},
		{
			name:      "negative value",
			req:       ElectricityRequest{Value: -3, Country: "US"},
			wantField: "electricity_value",
		},
		{
			name:      "country code too short",
			req:       ElectricityRequest{Value: 1, Country: "U"},
			wantField: "country",
		},
		{
			name:      "country code too long",
			req:       ElectricityRequest{Value: 1, Country: "EU-27+1X"},
			wantField: "country",
		},
		{
			name:      "unknown country",
			req:       ElectricityRequest{Value: 1, Country: "ZZ"},
			wantField: "country",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestFlightRequestValidate(t *testing.T) {
	valid := FlightRequest{
		Passengers: 2,
		Legs:       []FlightLeg{{Departure: "SFO", Destination: "YYZ"}},
	}
	assert.NoError(t, valid.Validate())

	var vErr *ValidationError

	noPassengers := valid
	noPassengers.Passengers = 0
	require.ErrorAs(t, noPassengers.Validate(), &vErr)
	assert.Equal(t, "passengers", vErr.Field)

	noLegs := valid
	noLegs.Legs = nil
	require.ErrorAs(t, noLegs.Validate(), &vErr)
	assert.Equal(t, "legs", vErr.Field)

	emptyAirport := valid
	emptyAirport.Legs = []FlightLeg{{Departure: "SFO", Destination: ""}}
	require.ErrorAs(t, emptyAirport.Validate(), &vErr)
	assert.Equal(t, "legs", vErr.Field)
}

func TestShippingRequestValidate(t *testing.T) {
	valid := ShippingRequest{
		WeightValue:     100,
		WeightUnit:      "kg",
		DistanceValue:   250,
		DistanceUnit:    "km",
		TransportMethod: "truck",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		mutate    func(*ShippingRequest)
		wantField string
	}{
		{name: "zero weight", mutate: func(r *ShippingRequest) { r.WeightValue = 0 }, wantField: "weight_value"},
		{name: "bad weight unit", mutate: func(r *ShippingRequest) { r.WeightUnit = "oz" }, wantField: "weight_unit"},
		{name: "zero distance", mutate: func(r *ShippingRequest) { r.DistanceValue = 0 }, wantField: "distance_value"},
		{name: "bad distance unit", mutate: func(r *ShippingRequest) { r.DistanceUnit = "furlong" }, wantField: "distance_unit"},
		{name: "bad transport", mutate: func(r *ShippingRequest) { r.TransportMethod = "drone" }, wantField: "transport_method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			var vErr *ValidationError
			require.ErrorAs(t, req.Validate(), &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestFuelCombustionRequestValidate(t *testing.T) {
	valid := FuelCombustionRequest{FuelKey: "ng", FuelUnit: "btu", FuelValue: 10}
	assert.NoError(t, valid.Validate())

	var vErr *ValidationError

	unknownFuel := FuelCombustionRequest{FuelKey: "xx", FuelUnit: "btu", FuelValue: 10}
	require.ErrorAs(t, unknownFuel.Validate(), &vErr)
	assert.Equal(t, "fuel_source_type", vErr.Field)

	wrongUnit := FuelCombustionRequest{FuelKey: "ng", FuelUnit: "gallon", FuelValue: 10}
	require.ErrorAs(t, wrongUnit.Validate(), &vErr)
	assert.Equal(t, "fuel_source_unit", vErr.Field)

	zeroValue := FuelCombustionRequest{FuelKey: "ng", FuelUnit: "btu", FuelValue: 0}
	require.ErrorAs(t, zeroValue.Validate(), &vErr)
	assert.Equal(t, "fuel_source_value", vErr.Field)
}

func TestVehicleRequestValidate(t *testing.T) {
	valid := VehicleRequest{DistanceValue: 120, DistanceUnit: "mi", VehicleModelID: "abc-123"}
	assert.NoError(t, valid.Validate())

	var vErr *ValidationError

	noModel := valid
	noModel.VehicleModelID = ""
	require.ErrorAs(t, noModel.Validate(), &vErr)
	assert.Equal(t, "vehicle_model_id", vErr.Field)
}

func TestBodyAppliesDefaults(t *testing.T) {
	body, err := Body(ElectricityRequest{Value: 12.5, Country: "DE"})
	require.NoError(t, err)
	assert.Equal(t, "electricity", body["type"])
	assert.Equal(t, DefaultElectricityUnit, body["electricity_unit"])
	assert.Equal(t, "DE", body["country"])

	body, err = Body(FlightRequest{
		Passengers: 1,
		Legs:       []FlightLeg{{Departure: "LHR", Destination: "JFK"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "flight", body["type"])
	assert.Equal(t, DefaultDistanceUnit, body["distance_unit"])
}

func TestBodyRejectsInvalidRequest(t *testing.T) {
	_, err := Body(ShippingRequest{})
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("fuel_combustion")
	require.NoError(t, err)
	assert.Equal(t, FuelCombustion, got)

	_, err = ParseCategory("teleportation")
	assert.Error(t, err)
}
