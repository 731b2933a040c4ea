package api

import "github.com/rpgo/dividend-projector/internal/domain"

// ProjectionRequest is the body of POST /api/v1/projections.
type ProjectionRequest struct {
	Name       string                      `json:"name"`
	Fund       string                      `json:"fund,omitempty"`
	Parameters domain.ProjectionParameters `json:"parameters"`
}

// CompareRequest is the body of POST /api/v1/projections/compare.
type CompareRequest struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

// FundsResponse lists the catalog with its summary statistics.
type FundsResponse struct {
	Source     string        `json:"source"`
	Funds      []domain.Fund `json:"funds"`
	Statistics any           `json:"statistics"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
