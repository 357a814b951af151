package domain

import (
	"errors"
	"strings"
	"time"
)

// Roles assignable to a user. New accounts default to RoleViewer.
const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleViewer     = "viewer"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("user with that email already exists")
var ErrUsernameTaken = errors.New("user with that username already exists")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingCredentials = errors.New("please provide email and password")
var ErrMissingFields = errors.New("username, email and password are required")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")

// User models an authenticated actor in the system.
// PasswordHash is excluded from JSON so it never leaks into API responses.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the enumerated role values.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleTechnician, RoleViewer:
		return true
	}
	return false
}

// NormalizeEmail lowercases and trims an email address. Applied before any
// store lookup or write so uniqueness is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
