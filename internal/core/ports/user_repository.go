package ports

import (
	"context"

	"github.com/boardlab/repair-system/internal/core/domain"
)

// UserRepository defines the interface for user credential persistence.
// Uniqueness of username and email is enforced by the store itself; a
// violated constraint surfaces from Create as domain.ErrEmailTaken,
// domain.ErrUsernameTaken or domain.ErrUserExists.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
