package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "DUPLICATE_FIELD"
	Message string `json:"message"`           // Raw error text
	Details any    `json:"details,omitempty"` // Detailed error information (optional)
}

// ErrorResponse is the body of every API error.
// Error and Stack are only filled in development mode.
type ErrorResponse struct {
	Status  string     `json:"status"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
	Stack   string     `json:"stack,omitempty"`
}
