package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	authdomain "chat-backend/internal/auth/domain"
	authrepo "chat-backend/internal/auth/repository"
	authusecase "chat-backend/internal/auth/usecase"
	"chat-backend/internal/user/domain"
	"chat-backend/internal/user/dto"
	"chat-backend/pkg/imagestore"
)

type profileUsecase struct {
	userRepo authrepo.UserRepository
	images   imagestore.Store
	log      *slog.Logger
}

func NewProfileUsecase(userRepo authrepo.UserRepository, images imagestore.Store, log *slog.Logger) ProfileUsecase {
	return &profileUsecase{
		userRepo: userRepo,
		images:   images,
		log:      log,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile validates the text fields before the image is uploaded. The
// previous picture is deleted only after the new one is saved.
func (u *profileUsecase) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if req.FullName != "" {
		fullName := strings.TrimSpace(req.FullName)
		if err := authusecase.ValidateFullName(fullName); err != nil {
			return nil, err
		}
		user.FullName = fullName
	}

	if req.Email != "" {
		email := authusecase.NormalizeEmail(req.Email)
		if err := authusecase.ValidateEmail(email); err != nil {
			return nil, domain.ErrInvalidEmailFormat
		}
		user.Email = email
	}

	previousPic := user.ProfilePic
	var uploaded string
	if req.ImagePath != "" {
		uploaded, err = u.images.Upload(ctx, req.ImagePath, imagestore.FolderProfilePics)
		if err != nil {
			return nil, domain.ErrPictureUpload.Wrap(err)
		}
		user.ProfilePic = &uploaded
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if uploaded != "" {
			u.deleteImage(ctx, uploaded)
		}
		if errors.Is(err, authdomain.ErrEmailTaken) {
			return nil, domain.ErrEmailInUse.Wrap(err)
		}
		return nil, fmt.Errorf("save profile: %w", err)
	}

	if uploaded != "" && previousPic != nil && *previousPic != "" {
		u.deleteImage(ctx, *previousPic)
	}

	user.Password = ""
	return user, nil
}

// deleteImage is best-effort: a leftover object is not worth failing for.
func (u *profileUsecase) deleteImage(ctx context.Context, url string) {
	if err := u.images.Delete(context.WithoutCancel(ctx), url); err != nil {
		u.log.WarnContext(ctx, "delete profile picture", "url", url, "error", err)
	}
}
