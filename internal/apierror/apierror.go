// Package apierror defines the error envelopes every 4xx/5xx response uses.
// Handlers never write raw error strings or internal detail (DB errors, stack
// traces) to clients; they go through these types.
package apierror

// APIError carries a single human-readable message, in Spanish, ready to be
// shown to the operator as-is.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError reports per-field failures from struct tag validation.
// Fields maps the offending field name to the failed rule.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
