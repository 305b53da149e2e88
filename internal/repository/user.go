package repository

import (
	"context"

	"catalog-admin/internal/domain"
)

// UserRepository resolves admin accounts. The backing store is
// read-only at runtime; there are no create/update/delete operations.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
