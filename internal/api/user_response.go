// File: internal/api/user_response.go
package api

import (
	"time"

	"devconnect/internal/model"
)

// UserResponse never carries the password hash.
// swagger:model api.UserResponse
type UserResponse struct {
	ID           int       `json:"id" example:"1"`
	Name         string    `json:"name" example:"Alice"`
	Email        string    `json:"email" example:"alice@example.com"`
	Phone        string    `json:"phone" example:"+1-555-0100"`
	Bio          string    `json:"bio" example:"Full stack developer"`
	ProfileImage *string   `json:"profileImage" example:"https://cdn.example.com/alice.png"`
	CreatedAt    time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// UserRef is the owner summary embedded in project and comment responses.
// swagger:model api.UserRef
type UserRef struct {
	ID           int     `json:"id" example:"1"`
	Name         string  `json:"name" example:"Alice"`
	ProfileImage *string `json:"profileImage" example:"https://cdn.example.com/alice.png"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Bio:          u.Bio,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}
