package repository

//go:generate mockgen -source=repository.go -destination=../../mocks/mock_device_token_repository.go -package=mocks

import (
	"context"

	"chat-backend/internal/notification/domain"
)

// DeviceTokenRepository stores push registrations.
type DeviceTokenRepository interface {
	// Save registers token for userID, moving it over if another user held it.
	Save(ctx context.Context, userID, token, deviceInfo string) error
	TokensForUser(ctx context.Context, userID string) ([]domain.DeviceToken, error)
	// DeleteForUser removes token only if it belongs to userID.
	DeleteForUser(ctx context.Context, userID, token string) error
	DeleteTokens(ctx context.Context, tokens []string) error
}
