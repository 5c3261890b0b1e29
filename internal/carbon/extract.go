package carbon

import (
	"encoding/json"
	"fmt"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrMissingField indicates a structurally valid service response that lacks
// the nested carbon_kg value. Comparable with errors.Is.
const ErrMissingField = constError("response is missing carbon_kg")

// ServiceError is a failure object returned by the estimation service
// instead of estimate data (auth failures, validation rejections, outages).
type ServiceError struct {
	// StatusCode is the HTTP status, or 0 when the failure came from the
	// response body rather than the transport.
	StatusCode int

	Message string
}

func (e *ServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("estimation service error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("estimation service error: %s", e.Message)
}

// EstimateResult is a successfully extracted estimate, ready to be recorded
// in the ledger.
type EstimateResult struct {
	// Category is the activity kind the estimate was requested for.
	Category Category

	// CarbonKg is the emission value in kilograms CO2e. Never negative.
	CarbonKg float64

	// UserID identifies who the emission is attributed to.
	UserID string

	// Raw is the unmodified service response, kept for display and debugging.
	Raw json.RawMessage
}

// estimateEnvelope mirrors the service's response shape:
//
//	{"data": {"id": "...", "attributes": {"carbon_kg": 12.5, ...}}}
type estimateEnvelope struct {
	Data *struct {
		ID         string                     `json:"id"`
		Attributes map[string]json.RawMessage `json:"attributes"`
	} `json:"data"`
	ErrorMsg json.RawMessage `json:"error"`
}

// Extract validates the shape of a raw service response and pulls out the
// emission value in kilograms.
//
// A response with a nested numeric carbon_kg yields that value. A response
// with an "error" member (the service's failure object) yields a
// *ServiceError. A response missing the carbon_kg field yields
// ErrMissingField. Extract never panics on malformed input: unparseable
// bytes are reported as a *ServiceError describing the parse failure.
func Extract(raw []byte) (float64, error) {
	var envelope estimateEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return 0, &ServiceError{Message: fmt.Sprintf("unparseable response: %v", err)}
	}

	if len(envelope.ErrorMsg) > 0 {
		return 0, &ServiceError{Message: decodeErrorMessage(envelope.ErrorMsg)}
	}

	if envelope.Data == nil || envelope.Data.Attributes == nil {
		return 0, ErrMissingField
	}

	rawKg, ok := envelope.Data.Attributes["carbon_kg"]
	if !ok {
		return 0, ErrMissingField
	}

	var kg float64
	if err := json.Unmarshal(rawKg, &kg); err != nil {
		return 0, ErrMissingField
	}
	return kg, nil
}

// decodeErrorMessage renders the service's "error" member as text. The
// service sometimes nests structured detail here, so fall back to the raw
// JSON when it is not a plain string.
func decodeErrorMessage(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err == nil {
		return msg
	}
	return string(raw)
}
