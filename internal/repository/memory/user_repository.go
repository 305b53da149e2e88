package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"catalog-admin/internal/config"
	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

// UserRepository is a fixed, in-memory credential store seeded once at
// construction. Lookups are case-sensitive exact matches.
type UserRepository struct {
	byUsername map[string]*domain.User
}

// NewUserRepository hashes the seed passwords and builds the store.
func NewUserRepository(accounts []config.AdminAccount) (*UserRepository, error) {
	return newUserRepository(accounts, bcrypt.DefaultCost)
}

func newUserRepository(accounts []config.AdminAccount, cost int) (*UserRepository, error) {
	byUsername := make(map[string]*domain.User, len(accounts))
	for i, account := range accounts {
		if _, exists := byUsername[account.Username]; exists {
			return nil, fmt.Errorf("duplicate admin username %q", account.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(account.Password), cost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", account.Username, err)
		}
		byUsername[account.Username] = &domain.User{
			ID:           int64(i + 1),
			Username:     account.Username,
			PasswordHash: string(hash),
			DisplayName:  account.DisplayName,
		}
	}
	return &UserRepository{byUsername: byUsername}, nil
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
