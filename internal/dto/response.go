// Package dto holds the request and response shapes shared by the API server and its client.
package dto

// BackendStatus is returned by GET /api/health.
type BackendStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the body of every error reply. Message is only set by the
// users and sum endpoints, which put a generic title into Error.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// ValidationError is the 400 body of POST /api/users.
type ValidationError struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type SumRequest struct {
	Numbers []float64 `json:"numbers"`
}

type SumResponse struct {
	Sum float64 `json:"sum"`
}
