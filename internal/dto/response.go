package dto

// APIResponse is the envelope returned by every endpoint.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// HealthResponse is the payload of the health check.
type HealthResponse struct {
	Timestamp string `json:"timestamp"`
}
