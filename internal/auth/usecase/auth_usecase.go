package usecase

import (
	"context"
	"fmt"
	"strings"

	authdomain "chat-backend/internal/auth/domain"
	authdto "chat-backend/internal/auth/dto"
	"chat-backend/internal/auth/repository"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *TokenIssuer
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *TokenIssuer) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *authdto.SignupRequest) (*Session, error) {
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		return nil, authdomain.ErrMissingFields
	}

	email := NormalizeEmail(req.Email)
	fullName := strings.TrimSpace(req.FullName)

	if err := ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	if err := ValidateFullName(fullName); err != nil {
		return nil, err
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &authdomain.User{
		FullName: fullName,
		Email:    email,
		Password: hashedPassword,
	}
	// A duplicate email comes back from the store as ErrEmailTaken.
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.newSession(user)
}

func (u *authUsecase) Login(ctx context.Context, req *authdto.LoginRequest) (*Session, error) {
	if req.Email == "" || req.Password == "" {
		return nil, authdomain.ErrMissingFields
	}

	email := NormalizeEmail(req.Email)
	if err := ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, authdomain.ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, authdomain.ErrInvalidCredentials
	}

	return u.newSession(user)
}

// Authenticate distinguishes an untrusted caller (ErrInvalidToken,
// ErrUserGone) from a store failure, which is returned unwrapped.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*authdomain.User, error) {
	if token == "" {
		return nil, authdomain.ErrNoToken
	}

	userID, err := u.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load session user: %w", err)
	}
	if user == nil {
		return nil, authdomain.ErrUserGone
	}
	user.Password = ""
	return user, nil
}

func (u *authUsecase) TokenTTL() int {
	return int(u.tokens.TTL().Seconds())
}

func (u *authUsecase) newSession(user *authdomain.User) (*Session, error) {
	token, _, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &Session{User: user, Token: token}, nil
}
