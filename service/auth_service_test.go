package service

import (
	"context"
	"testing"
	"time"

	"productsiksha-backend/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(store *memStore) *AuthService {
	return NewAuthService(
		WithAuthStore(store),
		WithTokenService(auth.NewTokenService("test-secret", 24*time.Hour)),
	)
}

func TestSignupThenLogin(t *testing.T) {
	store := newMemStore()
	svc := newTestAuthService(store)
	ctx := context.Background()

	signup, err := svc.Signup(ctx, "Alice@Example.com ", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, signup.Token)
	assert.Equal(t, "alice@example.com", signup.User.Email, "email is case-normalized")

	login, err := svc.Login(ctx, "alice@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, signup.User.ID, login.User.ID)
}

func TestSignupValidation(t *testing.T) {
	svc := newTestAuthService(newMemStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "", "secret123")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Signup(ctx, "bob@example.com", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newMemStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "bob@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "BOB@example.com", "another123")
	assert.ErrorIs(t, err, ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuthService(newMemStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "carol@example.com", "secret123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "carol@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc := newTestAuthService(newMemStore())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "dave@example.com", "original123")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, "dave@example.com", "wrong", "replacement123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = svc.ChangePassword(ctx, "dave@example.com", "original123", "tiny")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	err = svc.ChangePassword(ctx, "dave@example.com", "original123", "replacement123")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "dave@example.com", "original123")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "old password no longer works")

	_, err = svc.Login(ctx, "dave@example.com", "replacement123")
	assert.NoError(t, err)
}
