package dto

import authdomain "chat-backend/internal/auth/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *authdomain.PublicUser `json:"data,omitempty"`
}
