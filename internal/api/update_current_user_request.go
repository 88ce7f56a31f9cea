// File: internal/api/update_current_user_request.go
package api

// UpdateCurrentUserRequest is a partial update: absent fields keep their
// prior values.
// swagger:model api.UpdateCurrentUserRequest
type UpdateCurrentUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1" example:"Alice"`
	Email        *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Bio          *string `json:"bio" example:"Full stack developer"`
	ProfileImage *string `json:"profileImage" example:"https://cdn.example.com/alice.png"`
}
