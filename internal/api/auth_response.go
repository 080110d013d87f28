package api

// swagger:model api.AuthResponse
type AuthResponse struct {
	AccessToken string       `json:"access_token" example:"eyJhbGciOi..."`
	User        UserResponse `json:"user"`
}
