package ports

import "github.com/boardlab/repair-system/internal/core/domain"

// TokenClaims is the decoded identity carried inside a bearer token.
type TokenClaims struct {
	UserID   string
	Username string
	Role     string
}

// TokenService issues and verifies signed, time-limited bearer tokens.
// Verify distinguishes expiry (domain.ErrTokenExpired) from every other
// failure (domain.ErrInvalidToken).
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
