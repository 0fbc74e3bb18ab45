package dto

import "github.com/cohort-tools/api/internal/app/models"

// SignupRequest represents the body of POST /auth/signup
type SignupRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"Secret123"`
	Name     string `json:"name" example:"Ada"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" example:"ada@example.com"`
	Password string `json:"password" example:"Secret123"`
}

// TokenResponse carries a freshly issued token
type TokenResponse struct {
	AuthToken string `json:"authToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// UserResponse represents public user information
type UserResponse struct {
	ID    string `json:"_id" example:"665f1c2e8b3f4a2d9c0e1a33"`
	Email string `json:"email" example:"ada@example.com"`
	Name  string `json:"name" example:"Ada"`
}

// SignupResponse wraps the created user
type SignupResponse struct {
	User UserResponse `json:"user"`
}

// NewUserResponse strips a user down to its public fields
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}
