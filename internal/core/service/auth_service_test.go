package service

import (
	"context"
	"testing"
	"time"

	"github.com/boardlab/repair-system/internal/core/domain"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	lookups int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + copy.Username
	}
	r.users[copy.Email] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.lookups++
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.lookups++
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewBcryptHasher(), NewJWTService("secret", time.Hour))
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	token, user, err := svc.Register(context.Background(), "alice", "Alice@Example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %s", user.Email)
	}
	if user.Role != domain.RoleViewer {
		t.Fatalf("expected default role viewer, got %s", user.Role)
	}
	if user.PasswordHash == "s3cretpass" {
		t.Fatalf("expected password to be hashed")
	}

	claims, err := NewJWTService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.UserID != user.ID || claims.Username != "alice" || claims.Role != domain.RoleViewer {
		t.Fatalf("claims do not match created identity: %+v", claims)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "", "a@example.com", "password1"); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "alice", "a@example.com", ""); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "password1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// same email, different username → conflict names the email
	if _, _, err := svc.Register(context.Background(), "robert", "bob@example.com", "password2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	if _, _, err := svc.Register(context.Background(), "bob", "bob@example.com", "password1"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), "bob", "bob2@example.com", "password2"); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, registered, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "Carol@Example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID {
		t.Fatalf("login returned a different user: %s vs %s", user.ID, registered.ID)
	}

	claims, err := NewJWTService("secret", time.Hour).Verify(token)
	if err != nil {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.UserID != registered.ID {
		t.Fatalf("token claims wrong id: %s", claims.UserID)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, _, _ = svc.Register(context.Background(), "dave", "dave@example.com", "goodpass1")

	// both failures collapse to the same error
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuthService_Login_MissingFieldsSkipsStore(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@example.com", ""); err != domain.ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if repo.lookups != 0 {
		t.Fatalf("store was queried %d times before validation", repo.lookups)
	}
}

func TestAuthService_GetSelf(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, registered, err := svc.Register(context.Background(), "erin", "erin@example.com", "password1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.GetSelf(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("GetSelf returned error: %v", err)
	}
	if user.Username != "erin" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := svc.GetSelf(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
