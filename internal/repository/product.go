package repository

import (
	"context"
	"errors"

	"catalog-admin/internal/domain"
)

// ErrNotFound is returned when a lookup, update, or delete matches no record.
var ErrNotFound = errors.New("not found")

// ProductRepository defines persistence operations for Product entities.
type ProductRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, product *domain.Product) (string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}
