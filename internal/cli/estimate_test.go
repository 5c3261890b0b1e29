package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiro27cbs/carbontrack/internal/config"
)

// newEstimateServer serves a canned estimate response and captures the
// request body for assertions.
func newEstimateServer(t *testing.T, carbonKg float64, gotBody *map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/estimates", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(gotBody))

		w.WriteHeader(http.StatusCreated)
		resp := map[string]any{
			"data": map[string]any{
				"id":         "e1",
				"attributes": map[string]any{"carbon_kg": carbonKg},
			},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(server.Close)
	return server
}

// executeEstimate runs an estimate command against a stub service with an
// isolated config directory and ledger.
func executeEstimate(t *testing.T, server *httptest.Server, ledgerPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigDir, t.TempDir())
	t.Setenv(config.EnvAPIKey, "test-key")
	t.Setenv(config.EnvAPIBaseURL, server.URL)

	root := NewRootCmd("test")
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(append(args, "--ledger", ledgerPath))
	err := root.Execute()
	return buf.String(), err
}

func TestEstimateElectricityEndToEnd(t *testing.T) {
	var gotBody map[string]any
	server := newEstimateServer(t, 125.4, &gotBody)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	out, err := executeEstimate(t, server, ledgerPath,
		"estimate", "electricity", "--value", "500", "--country", "DE", "--user", "alice")
	require.NoError(t, err)

	assert.Equal(t, "electricity", gotBody["type"])
	assert.Equal(t, "DE", gotBody["country"])
	assert.InDelta(t, 500.0, gotBody["electricity_value"], 1e-9)

	assert.Contains(t, out, "Electricity estimate for alice: 125.40 kg CO2e")
	assert.Contains(t, out, "Equivalent to driving")

	// The estimate landed in the ledger.
	showOut, err := execute(t, "ledger", "show", "--ledger", ledgerPath)
	require.NoError(t, err)
	assert.Contains(t, showOut, "125.40")
	assert.Contains(t, showOut, "alice")
}

func TestEstimateFlightLegsWireFormat(t *testing.T) {
	var gotBody map[string]any
	server := newEstimateServer(t, 980.0, &gotBody)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	_, err := executeEstimate(t, server, ledgerPath,
		"estimate", "flight", "--passengers", "2", "--leg", "muc-sfo", "--leg", "SFO-MUC", "--user", "bob")
	require.NoError(t, err)

	assert.Equal(t, "flight", gotBody["type"])
	legs, ok := gotBody["legs"].([]any)
	require.True(t, ok)
	require.Len(t, legs, 2)
	first, ok := legs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "MUC", first["departure_airport"])
	assert.Equal(t, "SFO", first["destination_airport"])
}

func TestEstimateValidationFailsBeforeServiceCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	t.Cleanup(server.Close)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	_, err := executeEstimate(t, server, ledgerPath,
		"estimate", "electricity", "--value", "-5", "--country", "DE", "--user", "alice")
	require.Error(t, err)
	assert.False(t, called)
}

func TestEstimateRequiresUser(t *testing.T) {
	var gotBody map[string]any
	server := newEstimateServer(t, 10, &gotBody)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	_, err := executeEstimate(t, server, ledgerPath,
		"estimate", "electricity", "--value", "500", "--country", "DE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no user id")
}

func TestEstimateUsesConfiguredDefaultUser(t *testing.T) {
	var gotBody map[string]any
	server := newEstimateServer(t, 10, &gotBody)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	t.Setenv(config.EnvUser, "carol")

	out, err := executeEstimate(t, server, ledgerPath,
		"estimate", "electricity", "--value", "500", "--country", "DE")
	require.NoError(t, err)
	assert.Contains(t, out, "carol")
}

func TestEstimateJSONOutput(t *testing.T) {
	var gotBody map[string]any
	server := newEstimateServer(t, 125.4, &gotBody)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	out, err := executeEstimate(t, server, ledgerPath,
		"estimate", "electricity", "--value", "500", "--country", "DE", "--user", "alice", "-o", "json")
	require.NoError(t, err)

	var decoded estimateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "Electricity", decoded.Category)
	assert.InDelta(t, 125.4, decoded.CarbonKg, 1e-9)
	assert.Equal(t, "alice", decoded.UserID)
	assert.Equal(t, 1, decoded.LedgerLength)
	require.NotNil(t, decoded.Equivalency)
}

func TestVehicleLookupCommands(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/vehicle_makes":
			_, _ = w.Write([]byte(`[{"data":{"id":"m1","attributes":{"name":"Toyota"}}}]`))
		case "/vehicle_makes/m1/vehicle_models":
			_, _ = w.Write([]byte(`[{"data":{"id":"v1","attributes":{"name":"Corolla","year":2020}}}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	t.Cleanup(server.Close)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	out, err := executeEstimate(t, server, ledgerPath, "vehicles", "makes")
	require.NoError(t, err)
	assert.Contains(t, out, "Toyota")
	assert.Contains(t, out, "m1")

	out, err = executeEstimate(t, server, ledgerPath, "vehicles", "models", "m1")
	require.NoError(t, err)
	assert.Contains(t, out, "Corolla")
	assert.Contains(t, out, "2020")
}

func TestEstimateLookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/estimates/e42", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"e42","attributes":{"carbon_kg":7.75}}}`))
	}))
	t.Cleanup(server.Close)
	ledgerPath := filepath.Join(t.TempDir(), "emissions_data.csv")

	out, err := executeEstimate(t, server, ledgerPath, "estimate", "lookup", "e42")
	require.NoError(t, err)
	assert.Contains(t, out, "7.75")
}
