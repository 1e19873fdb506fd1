// File: internal/api/user_response.go
package api

// swagger:model api.UserResponse
type UserResponse struct {
	ID    string  `json:"id" example:"5dc7d990-4e98-4e92-9033-316ad9fd9af7"`
	Name  *string `json:"name" example:"Alice"`
	Email *string `json:"email" example:"alice@example.com"`
}
