package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"catalog-admin/internal/auth"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func newTestAuthService(t *testing.T) (AuthService, *auth.TokenService) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	users := &fakeUserRepo{users: map[string]*domain.User{
		"admin1": {
			ID:           1,
			Username:     "admin1",
			PasswordHash: string(hash),
			DisplayName:  "Administrador Uno",
		},
	}}
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewAuthService(users, tokens), tokens
}

func TestLoginUnknownUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "nobody", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "admin1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginEmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	svc, tokens := newTestAuthService(t)

	result, err := svc.Login(context.Background(), "admin1", "password1")
	require.NoError(t, err)
	assert.Equal(t, "Administrador Uno", result.DisplayName)
	assert.Equal(t, time.Hour, result.ExpiresIn)

	claims, err := tokens.Verify(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", claims.Username)
}

func TestIdentifyResolvesUser(t *testing.T) {
	svc, tokens := newTestAuthService(t)

	token, err := tokens.Issue("admin1")
	require.NoError(t, err)

	user, err := svc.Identify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "admin1", user.Username)
	assert.Equal(t, "Administrador Uno", user.DisplayName)
}

func TestIdentifyUnknownClaimIsInvalid(t *testing.T) {
	svc, tokens := newTestAuthService(t)

	token, err := tokens.Issue("ghost")
	require.NoError(t, err)

	_, err = svc.Identify(context.Background(), token)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestIdentifyExpiredToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	expired, err := auth.NewTokenService("test-secret", -time.Minute).Issue("admin1")
	require.NoError(t, err)

	_, err = svc.Identify(context.Background(), expired)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}
