package domain

import "chat-backend/pkg/apperror"

var (
	ErrOtherUserRequired = apperror.Validation("You must provide a valid otherUserId")
	ErrReceiverRequired  = apperror.Validation("Receiver ID is required")
	ErrReceiverNotFound  = apperror.Validation("Receiver not found")
	ErrEmptyMessage      = apperror.Validation("Please provide either text or image or both")
	ErrImageUpload       = apperror.Validation("Error uploading image")
)
