// File: internal/api/auth_response.go
package api

// AuthResponse is returned by register and login: the identity plus a bearer
// token the client stores locally and attaches to subsequent requests.
// swagger:model api.AuthResponse
type AuthResponse struct {
	ID    int    `json:"id" example:"1"`
	Name  string `json:"name" example:"Alice"`
	Email string `json:"email" example:"alice@example.com"`
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiJ9..."`
}
