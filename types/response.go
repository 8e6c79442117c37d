package types

// StatusResponse is a generic success payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend,omitempty"`
}

// ErrorResponse is the generic error payload produced by the error handler
// middleware.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}
