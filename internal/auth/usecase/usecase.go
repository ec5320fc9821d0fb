package usecase

import (
	"context"

	authdomain "chat-backend/internal/auth/domain"
	authdto "chat-backend/internal/auth/dto"
)

// AuthUsecase defines the sign-up, login and session operations.
type AuthUsecase interface {
	// Signup validates and stores a new account and returns it with a session token.
	Signup(ctx context.Context, req *authdto.SignupRequest) (*Session, error)

	// Login checks credentials. Unknown email and wrong password fail identically.
	Login(ctx context.Context, req *authdto.LoginRequest) (*Session, error)

	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*authdomain.User, error)

	// TokenTTL is the lifetime of issued tokens, used for the cookie Max-Age.
	TokenTTL() int
}

// Session is the outcome of a successful sign-up or login.
type Session struct {
	User  *authdomain.User
	Token string
}
