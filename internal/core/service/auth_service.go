package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/boardlab/repair-system/internal/core/domain"
	"github.com/boardlab/repair-system/internal/core/ports"
)

// AuthService implements registration, login and identity lookup.
type AuthService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenService) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new viewer account and returns a token for it.
// Email is checked for collision before username so the conflict message
// names the right field. The duplicate check and insert are not atomic;
// the store's unique index settles races and Create reports the same
// field-specific conflict errors.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, *domain.User, error) {
	username = strings.TrimSpace(username)
	email = domain.NormalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleViewer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(created)
	if err != nil {
		return "", nil, err
	}
	return token, created, nil
}

// Login verifies credentials and returns a fresh token. An unknown email
// and a wrong password produce the same error so the response does not
// reveal which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return "", nil, domain.ErrMissingCredentials
	}

	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GetSelf re-fetches the full record for an already-verified identity.
func (s *AuthService) GetSelf(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}
