package errors

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`          // Client-facing message
	Code  string `json:"code,omitempty"` // Business error code, e.g. "ITEM_NOT_FOUND"
}
