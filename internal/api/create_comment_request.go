// File: internal/api/create_comment_request.go
package api

// swagger:model api.CreateCommentRequest
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required" example:"Great project!"`
}
