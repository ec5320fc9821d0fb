package usecase

//go:generate mockgen -source=usecase.go -destination=../../mocks/mock_profile_usecase.go -package=mocks

import (
	"context"

	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/user/dto"
)

// ProfileUsecase reads and edits the caller's own profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*authdomain.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*authdomain.User, error)
}
