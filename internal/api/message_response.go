// File: internal/api/message_response.go
package api

// MessageResponse confirms an operation that returns no resource.
// swagger:model api.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"project removed"`
}
