// File: internal/api/comment_response.go
package api

import (
	"time"

	"devconnect/internal/model"
)

// swagger:model api.CommentResponse
type CommentResponse struct {
	ID        int       `json:"id" example:"1"`
	User      UserRef   `json:"user"`
	ProjectID int       `json:"project_id" example:"1"`
	Text      string    `json:"text" example:"Great project!"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewCommentResponse(cm *model.Comment) CommentResponse {
	return CommentResponse{
		ID: cm.ID,
		User: UserRef{
			ID:           cm.UserID,
			Name:         cm.OwnerName,
			ProfileImage: cm.OwnerProfileImage,
		},
		ProjectID: cm.ProjectID,
		Text:      cm.Text,
		CreatedAt: cm.CreatedAt,
	}
}

func NewCommentResponses(comments []model.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for i := range comments {
		out = append(out, NewCommentResponse(&comments[i]))
	}
	return out
}
