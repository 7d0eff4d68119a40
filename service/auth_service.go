package service

import (
	"context"
	"errors"
	"strings"

	"productsiksha-backend/auth"
	"productsiksha-backend/models"
	"productsiksha-backend/repository"
)

// Validation and authentication failures surfaced to handlers.
var (
	ErrMissingFields      = errors.New("email and password required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const minPasswordLength = 6

// AuthService implements signup, login and password changes.
type AuthService struct {
	store  repository.Store
	tokens *auth.TokenService
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// WithAuthStore sets the backing store
func WithAuthStore(store repository.Store) AuthServiceOption {
	return func(s *AuthService) {
		s.store = store
	}
}

// WithTokenService sets the token service used to issue bearer tokens
func WithTokenService(tokens *auth.TokenService) AuthServiceOption {
	return func(s *AuthService) {
		s.tokens = tokens
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalizeEmail lowercases and trims an email address so lookups are
// case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token string
	User  *models.User
}

// Signup registers a new account and returns a token for auto-login.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*AuthResult, error) {
	if s.store == nil || s.tokens == nil {
		return nil, errors.New("auth service not configured")
	}

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	_, err := s.store.GetUserByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailRegistered
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user, err := s.store.CreateUser(ctx, email, auth.HashPassword(password))
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// Login authenticates by equality lookup on email and password digest.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if s.store == nil || s.tokens == nil {
		return nil, errors.New("auth service not configured")
	}

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.store.GetUserByCredentials(ctx, email, auth.HashPassword(password))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	return &AuthResult{Token: token, User: user}, nil
}

// ChangePassword verifies the current credentials and stores a new
// password digest.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if s.store == nil {
		return errors.New("auth service not configured")
	}

	email = normalizeEmail(email)
	if email == "" || currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}

	user, err := s.store.GetUserByCredentials(ctx, email, auth.HashPassword(currentPassword))
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	return s.store.UpdateUserPassword(ctx, user.ID, auth.HashPassword(newPassword))
}
