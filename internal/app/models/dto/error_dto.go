package dto

// ErrorResponse is the standard error body. Clients surface Message verbatim
// in a notification, so it must stay human readable and must not leak
// internals on server faults.
type ErrorResponse struct {
	Message string `json:"message" example:"name must be between 3 and 100 characters"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}
