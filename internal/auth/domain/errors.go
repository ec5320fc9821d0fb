package domain

import "chat-backend/pkg/apperror"

var (
	ErrMissingFields      = apperror.Validation("All fields are required")
	ErrInvalidEmail       = apperror.Validation("Invalid email address")
	ErrPasswordLength     = apperror.Validation("Password must be between 6 and 40 characters")
	ErrFullNameLength     = apperror.Validation("Full name must be between 3 and 50 characters")
	ErrEmailTaken         = apperror.Validation("Email already exists")
	ErrInvalidCredentials = apperror.Validation("Invalid credentials")

	ErrNoToken      = apperror.Unauthorized("Unauthorized - No Token Provided")
	ErrInvalidToken = apperror.Unauthorized("Unauthorized - Invalid Token")
	ErrUserGone     = apperror.Unauthorized("Unauthorized - User not found")
)
