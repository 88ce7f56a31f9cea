// File: internal/api/error_response.go
package api

// ErrorResponse is the uniform error payload for every non-2xx status.
// swagger:model api.ErrorResponse
type ErrorResponse struct {
	Message string `json:"message" example:"not authorized"`
}
