package dto

import authdomain "mindcare-client/internal/auth/domain"

type LoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role"`
}

// LoginResponse mirrors the auth service's login payload.
type LoginResponse struct {
	Token     string          `json:"token"`
	TokenType string          `json:"tokenType"`
	Username  string          `json:"username"`
	Role      authdomain.Role `json:"role"`
}
