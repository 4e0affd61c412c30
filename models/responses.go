package models

// APIResponse is the success envelope used by auth and mutation endpoints.
type APIResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// APIError carries a stable, human-readable failure. Internal detail never
// travels in Error; it goes to the log instead.
type APIError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
