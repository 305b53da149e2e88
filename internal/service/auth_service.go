package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"catalog-admin/internal/auth"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

// ErrInvalidCredentials indicates that provided login credentials are
// incorrect. Unknown usernames and wrong passwords are deliberately
// indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is handed to the HTTP layer so it can set the token
// cookie with a matching max-age.
type LoginResult struct {
	Token       string
	DisplayName string
	ExpiresIn   time.Duration
}

// AuthService turns login requests into session tokens and session
// tokens back into identities.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Identify(ctx context.Context, token string) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Comparator failures collapse into the same error as a mismatch.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{
		Token:       token,
		DisplayName: user.DisplayName,
		ExpiresIn:   s.tokens.TTL(),
	}, nil
}

// Identify verifies the token and resolves its username claim against
// the credential store. A claim naming an unknown user is treated as an
// invalid token, not a crash.
func (s *authService) Identify(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, auth.ErrTokenInvalid
		}
		return nil, fmt.Errorf("resolve user %q: %w", claims.Username, err)
	}
	return user, nil
}
