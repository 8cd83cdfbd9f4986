package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "AGENCY_NOT_FOUND"
	Details any    `json:"details,omitempty"` // Structured error details (optional)
}

// Response is the unified envelope the error handler writes for failures.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
