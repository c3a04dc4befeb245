package api

import "printcost/core/types"

// EstimateRequest is the estimation request payload. The specification
// arrives in raw string form and goes through full validation; nothing is
// trusted at this boundary.
type EstimateRequest struct {
	Specification types.RawJobSpecification `json:"specification"`
}

// EstimateResponse carries one cost result per requested quantity
type EstimateResponse struct {
	RequestID string              `json:"request_id"`
	Results   []*types.CostResult `json:"results"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// VersionResponse reports the API version
type VersionResponse struct {
	Version string `json:"version"`
}

// ErrorBody is the standard error envelope body
type ErrorBody struct {
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
	RequestID  string   `json:"request_id,omitempty"`
}

// ErrorResponse wraps every error reply
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
