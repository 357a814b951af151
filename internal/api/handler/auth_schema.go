package handler

import "github.com/boardlab/repair-system/internal/core/domain"

// Validation rules mirror the store's schema: username 3-30 chars,
// well-formed email, password at least 8 chars.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// loginRequest carries no validate tags: the auth service checks presence
// itself so both fields missing yields the single canonical message.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	User *domain.User `json:"user"`
}

type authResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token,omitempty"`
	Data   userPayload `json:"data"`
}

type userListPayload struct {
	Users []*domain.User `json:"users"`
}

type userListResponse struct {
	Status  string          `json:"status"`
	Results int             `json:"results"`
	Data    userListPayload `json:"data"`
}
