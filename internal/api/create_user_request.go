// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name  *string `json:"name" example:"Alice"`
	Email *string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
}
