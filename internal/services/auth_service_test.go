package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/devfolio/backend/internal/models"
)

func newAuthService(t *testing.T) (*AuthService, *FakeUserStore) {
	t.Helper()
	tokens, err := NewTokenIssuer("test-secret", 24*time.Hour)
	require.NoError(t, err)
	store := NewFakeUserStore()
	return NewAuthService(store, tokens, zap.NewNop()), store
}

func TestSignUpCreatesUserAndToken(t *testing.T) {
	svc, store := newAuthService(t)

	resp, err := svc.SignUp(context.Background(), &models.SignUpRequest{
		Email:    "owner@example.com",
		Password: "hunter2",
		Name:     "Owner",
		Phone:    "555-0100",
		Linkedin: "https://linkedin.com/in/owner",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "owner@example.com", resp.User.Email)
	assert.Equal(t, "https://linkedin.com/in/owner", resp.User.LinkedinURL)

	stored, err := store.FindByEmail(context.Background(), "owner@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", stored.PasswordHash)
	assert.True(t, CheckPassword("hunter2", stored.PasswordHash))
	assert.True(t, stored.OpenToOpportunities, "openToOpportunities defaults to true")
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, store := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.SignUpRequest{Email: "owner@example.com", Password: "first", Name: "Owner"})
	require.NoError(t, err)

	first, err := store.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, &models.SignUpRequest{Email: "owner@example.com", Password: "second", Name: "Imposter"})
	assert.ErrorIs(t, err, ErrEmailExists)

	// The first account's stored hash is untouched.
	again, err := store.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, again.PasswordHash)
	assert.Equal(t, "Owner", again.Name)
}

func TestSignInSuccess(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.SignUpRequest{Email: "owner@example.com", Password: "hunter2", Name: "Owner"})
	require.NoError(t, err)

	resp, err := svc.SignIn(ctx, "owner@example.com", "hunter2")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner@example.com", resp.User.Email)
}

func TestSignInUnknownEmailAndWrongPasswordAreDistinct(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, &models.SignUpRequest{Email: "owner@example.com", Password: "hunter2", Name: "Owner"})
	require.NoError(t, err)

	_, notFound := svc.SignIn(ctx, "nobody@example.com", "hunter2")
	assert.ErrorIs(t, notFound, ErrUserNotFound)

	_, wrongPassword := svc.SignIn(ctx, "owner@example.com", "wrong")
	assert.ErrorIs(t, wrongPassword, ErrIncorrectPassword)

	assert.NotErrorIs(t, notFound, wrongPassword)
}
