// File: internal/api/update_comment_request.go
package api

// UpdateCommentRequest is a partial update: an absent text keeps the prior
// value.
// swagger:model api.UpdateCommentRequest
type UpdateCommentRequest struct {
	Text *string `json:"text" validate:"omitempty,min=1" example:"Great project!"`
}
