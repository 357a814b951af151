package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/boardlab/repair-system/internal/core/domain"
	"github.com/boardlab/repair-system/internal/core/ports"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// JWTService issues and verifies HS256-signed tokens carrying the user's
// id, username and role. Tokens are self-contained; there is no revocation
// list, so a valid token stays valid for its full TTL.
type JWTService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTService{secret: []byte(secret), ttl: ttl}
}

type jwtClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func (s *JWTService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwtClaims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

func (s *JWTService) Verify(token string) (*ports.TokenClaims, error) {
	var claims jwtClaims
	tkn, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	// a structurally valid token with a role outside the enum is still
	// unusable: it was not issued by this service
	if !domain.ValidRole(claims.Role) {
		return nil, domain.ErrInvalidToken
	}

	return &ports.TokenClaims{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
