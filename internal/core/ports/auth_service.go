package ports

import (
	"context"

	"github.com/boardlab/repair-system/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetSelf(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
