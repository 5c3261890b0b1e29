package carbon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tiro27cbs/carbontrack/internal/logging"
)

// DefaultBaseURL is the production Carbon Interface API endpoint.
const DefaultBaseURL = "https://www.carboninterface.com/api/v1"

// defaultTimeout bounds each service call. The estimation flow is fully
// synchronous, so a hung call would otherwise block the whole session.
const defaultTimeout = 30 * time.Second

// maxErrorBodyBytes caps how much of an error response body is retained
// for diagnostics.
const maxErrorBodyBytes = 4 * 1024

// ClientOptions configures a Client.
type ClientOptions struct {
	// APIKey is the bearer token for the estimation service. Required.
	APIKey string

	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// Timeout overrides the default per-call timeout when positive.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client issues estimate and lookup calls against the Carbon Interface API.
// It owns transport policy (auth header, base URL, timeout); request
// validation happens before it and response extraction after.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client from opts, applying defaults for anything unset.
func NewClient(opts ClientOptions) *Client {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: httpClient,
	}
}

// CreateEstimate validates req, posts it to the estimation service, and
// extracts the emission value. The result is attributed to userID so the
// caller can append it to the ledger directly.
func (c *Client) CreateEstimate(ctx context.Context, req Request, userID string) (*EstimateResult, error) {
	log := logging.FromContext(ctx)

	body, err := Body(req)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("component", "carbon").
		Str("operation", "create_estimate").
		Str("category", req.Category().String()).
		Msg("posting estimate request")

	start := time.Now()
	raw, err := c.do(ctx, http.MethodPost, "/estimates", body)
	if err != nil {
		log.Error().
			Str("component", "carbon").
			Str("category", req.Category().String()).
			Err(err).
			Msg("estimate request failed")
		return nil, err
	}

	kg, err := Extract(raw)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("component", "carbon").
		Str("operation", "create_estimate").
		Str("category", req.Category().String()).
		Float64("carbon_kg", kg).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("estimate complete")

	return &EstimateResult{
		Category: req.Category(),
		CarbonKg: kg,
		UserID:   userID,
		Raw:      raw,
	}, nil
}

// GetEstimate retrieves a previously created estimate by ID. The category of
// the returned result is not recoverable from the service response and is
// left at its zero value.
func (c *Client) GetEstimate(ctx context.Context, id string) (*EstimateResult, error) {
	if id == "" {
		return nil, validationErr("estimate_id", "must not be empty")
	}

	raw, err := c.do(ctx, http.MethodGet, "/estimates/"+id, nil)
	if err != nil {
		return nil, err
	}

	kg, err := Extract(raw)
	if err != nil {
		return nil, err
	}
	return &EstimateResult{CarbonKg: kg, Raw: raw}, nil
}

// VehicleMake is one entry from the service's vehicle make catalogue.
type VehicleMake struct {
	ID   string
	Name string
}

// VehicleModel is one entry from the service's vehicle model catalogue.
type VehicleModel struct {
	ID   string
	Name string
	Year int
}

// vehicleEntry mirrors the service's list item shape for makes and models:
//
//	{"data": {"id": "...", "attributes": {"name": "...", "year": 1999}}}
type vehicleEntry struct {
	Data struct {
		ID         string `json:"id"`
		Attributes struct {
			Name string `json:"name"`
			Year int    `json:"year"`
		} `json:"attributes"`
	} `json:"data"`
}

// VehicleMakes fetches the vehicle make catalogue.
func (c *Client) VehicleMakes(ctx context.Context) ([]VehicleMake, error) {
	raw, err := c.do(ctx, http.MethodGet, "/vehicle_makes", nil)
	if err != nil {
		return nil, err
	}

	var entries []vehicleEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("unparseable vehicle makes response: %v", err)}
	}

	makes := make([]VehicleMake, 0, len(entries))
	for _, e := range entries {
		makes = append(makes, VehicleMake{ID: e.Data.ID, Name: e.Data.Attributes.Name})
	}
	return makes, nil
}

// VehicleModels fetches the vehicle models for a make.
func (c *Client) VehicleModels(ctx context.Context, makeID string) ([]VehicleModel, error) {
	if makeID == "" {
		return nil, validationErr("vehicle_make_id", "must not be empty")
	}

	raw, err := c.do(ctx, http.MethodGet, "/vehicle_makes/"+makeID+"/vehicle_models", nil)
	if err != nil {
		return nil, err
	}

	var entries []vehicleEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, &ServiceError{Message: fmt.Sprintf("unparseable vehicle models response: %v", err)}
	}

	models := make([]VehicleModel, 0, len(entries))
	for _, e := range entries {
		models = append(models, VehicleModel{
			ID:   e.Data.ID,
			Name: e.Data.Attributes.Name,
			Year: e.Data.Attributes.Year,
		})
	}
	return models, nil
}

// do executes one HTTP call and returns the response body. Non-2xx statuses
// become *ServiceError values carrying the (truncated) response text.
func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling estimation service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &ServiceError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(snippet)),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return raw, nil
}
