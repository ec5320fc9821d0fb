package domain

import "chat-backend/pkg/apperror"

var (
	ErrUserNotFound       = apperror.NotFound("User not found")
	ErrInvalidEmailFormat = apperror.Validation("Invalid email format")
	ErrEmailInUse         = apperror.Validation("Email already in use")
	ErrPictureUpload      = apperror.Validation("Error uploading profile picture")
)
