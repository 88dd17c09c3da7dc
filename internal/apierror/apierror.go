// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// Conflict carries the quantity still available when a stock invariant would
// be violated, so clients can show it without a second round trip.
type Conflict struct {
	Detail    string `json:"detail"`
	Available int    `json:"available"`
}

func NewConflict(msg string, available int) *Conflict {
	return &Conflict{Detail: msg, Available: available}
}
