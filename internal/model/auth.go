package model

// LoginRequest is the body of the login API.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// RegisterRequest is the body of the registration API.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=20"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateSettingsRequest is the body of the account settings API.
type UpdateSettingsRequest struct {
	RemindersEnabled *bool `json:"reminders_enabled" validate:"required"`
}
