package dto

import "time"

// RegisterRequest represents the API request for creating an account
type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterResponse represents the API response for a created account
type RegisterResponse struct {
	UserID    uint64    `json:"userId"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest represents the API request for password authentication
type LoginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest represents the API request for rotating a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutResponse represents the API response for a completed logout
type LogoutResponse struct {
	Message string `json:"message"`
}

// TokenResponse represents the API response carrying a fresh token pair
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
