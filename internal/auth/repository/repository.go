//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=../../mocks/mock_user_repository.go -package=mocks
package repository

import (
	"context"

	authdomain "chat-backend/internal/auth/domain"
)

// UserRepository defines the credential store operations. Finders return
// (nil, nil) when no record matches.
type UserRepository interface {
	Create(ctx context.Context, user *authdomain.User) error
	FindByEmail(ctx context.Context, email string) (*authdomain.User, error)
	FindByID(ctx context.Context, id string) (*authdomain.User, error)
	// ListExcept returns every user but the one with the given id, ordered by full name.
	ListExcept(ctx context.Context, id string) ([]*authdomain.User, error)
	Update(ctx context.Context, user *authdomain.User) error
}
