package common

import "time"

// Error categories returned in the "error" field. These are the discriminants
// the frontend switches on, so the strings are part of the API contract.
const (
	ErrInvalidRequest     = "Invalid request"
	ErrValidation         = "Validation failed"
	ErrRateLimited        = "Rate limit exceeded"
	ErrServiceUnavailable = "Email service unavailable"
	ErrConfiguration      = "Email service configuration error"
	ErrInternal           = "Internal server error"
)

// Health status values
const (
	StatusOperational = "operational"
	StatusDegraded    = "degraded"
	StatusError       = "error"
)

// SuccessResponse is returned when a submission was dispatched
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the standardized failure shape. Details carries structured
// metadata (e.g. rate-limit retry info); Issues carries field-level validation
// problems.
type ErrorResponse struct {
	Success   bool                   `json:"success"`
	Error     string                 `json:"error"`
	Message   string                 `json:"message"`
	Timestamp string                 `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Issues    []Issue                `json:"issues,omitempty"`
}

// Issue represents a single field-level validation problem
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// HealthResponse reports the operational state of the contact pipeline
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message,omitempty"`
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// NewSuccessResponse creates a success response with an optional message id
func NewSuccessResponse(message, messageID string) SuccessResponse {
	return SuccessResponse{
		Success:   true,
		Message:   message,
		MessageID: messageID,
		Timestamp: now(),
	}
}

// NewErrorResponse creates an error response with optional structured details
func NewErrorResponse(category, message string, details map[string]interface{}) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     category,
		Message:   message,
		Timestamp: now(),
		Details:   details,
	}
}

// NewValidationErrorResponse creates an error response listing every field issue
func NewValidationErrorResponse(issues []Issue) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     ErrValidation,
		Message:   "Please check your input and try again.",
		Timestamp: now(),
		Issues:    issues,
	}
}

// NewHealthResponse creates a health response for the contact pipeline
func NewHealthResponse(status, message string) HealthResponse {
	return HealthResponse{
		Status:    status,
		Service:   "contact-api",
		Timestamp: now(),
		Message:   message,
	}
}
