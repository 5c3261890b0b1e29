package carbon

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEstimate(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/estimates", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"e1","attributes":{"carbon_kg":98.2}}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "test-key", BaseURL: server.URL})

	result, err := client.CreateEstimate(context.Background(), ElectricityRequest{
		Value:   500,
		Country: "US",
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "electricity", gotBody["type"])
	assert.Equal(t, "US", gotBody["country"])

	assert.Equal(t, Electricity, result.Category)
	assert.InDelta(t, 98.2, result.CarbonKg, 1e-9)
	assert.Equal(t, "alice", result.UserID)
	assert.NotEmpty(t, result.Raw)
}

func TestCreateEstimateValidatesBeforeCalling(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "k", BaseURL: server.URL})
	_, err := client.CreateEstimate(context.Background(), ShippingRequest{}, "alice")

	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.False(t, called, "invalid requests must not reach the service")
}

func TestCreateEstimateServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid API token"}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "bad", BaseURL: server.URL})
	_, err := client.CreateEstimate(context.Background(), ElectricityRequest{Value: 1, Country: "US"}, "alice")

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusUnauthorized, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, "Invalid API token")
}

func TestGetEstimate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/estimates/e42", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"e42","attributes":{"carbon_kg":7.75}}}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "k", BaseURL: server.URL})
	result, err := client.GetEstimate(context.Background(), "e42")
	require.NoError(t, err)
	assert.InDelta(t, 7.75, result.CarbonKg, 1e-9)

	_, err = client.GetEstimate(context.Background(), "")
	var vErr *ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestVehicleLookups(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vehicle_makes":
			_, _ = w.Write([]byte(`[
				{"data":{"id":"m1","attributes":{"name":"Toyota","number_of_models":40}}},
				{"data":{"id":"m2","attributes":{"name":"Honda","number_of_models":35}}}
			]`))
		case "/vehicle_makes/m1/vehicle_models":
			_, _ = w.Write([]byte(`[
				{"data":{"id":"v1","attributes":{"name":"Corolla","year":2019}}}
			]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "k", BaseURL: server.URL})

	makes, err := client.VehicleMakes(context.Background())
	require.NoError(t, err)
	require.Len(t, makes, 2)
	assert.Equal(t, VehicleMake{ID: "m1", Name: "Toyota"}, makes[0])

	models, err := client.VehicleModels(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, models, 1)
	assert.Equal(t, VehicleModel{ID: "v1", Name: "Corolla", Year: 2019}, models[0])
}
