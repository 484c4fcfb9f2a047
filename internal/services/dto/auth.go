package dto

// ==========================
// Requests
// ==========================

type RegisterRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=8"`
	Role         string `json:"role" validate:"required,is-user-role"`
	BusinessName string `json:"business_name" validate:"omitempty,min=2"` // только для роли provider
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// ==========================
// Responses
// ==========================

type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         *ProfileResponse `json:"user"`
}
