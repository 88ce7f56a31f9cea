// File: internal/api/register_request.go
package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Phone    string `json:"phone" example:"+1-555-0100"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123!"`
	Bio      string `json:"bio" example:"Full stack developer"`
}
