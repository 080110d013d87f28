package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Name     string `json:"name" validate:"required" example:"Alice"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}
