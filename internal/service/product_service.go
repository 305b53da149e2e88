package service

import (
	"context"
	"errors"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

// Validation failures for a submitted product payload. Checks run in a
// fixed order and the first failure wins, so a multi-field-invalid
// submission always reports exactly one of these.
var (
	ErrMissingName        = errors.New("name must not be empty")
	ErrMissingDescription = errors.New("description must not be empty")
	ErrMissingImage       = errors.New("image must not be empty")
	ErrMissingCategory    = errors.New("category must not be empty")
	ErrInvalidCategory    = errors.New("category is invalid")
	ErrMissingSize        = errors.New("size must not be empty")
	ErrInvalidSize        = errors.New("size is invalid")
	ErrMissingPrice       = errors.New("price must not be empty")
)

var validationErrors = []error{
	ErrMissingName,
	ErrMissingDescription,
	ErrMissingImage,
	ErrMissingCategory,
	ErrInvalidCategory,
	ErrMissingSize,
	ErrInvalidSize,
	ErrMissingPrice,
}

// IsValidationError reports whether err is one of the product
// validation failures, so the boundary can answer with a client error
// instead of a server error.
func IsValidationError(err error) bool {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}

// ValidateProduct checks a submitted payload against the required-field
// and enumerated-value rules, short-circuiting on the first failure.
func ValidateProduct(in domain.ProductInput) error {
	if in.Name == "" {
		return ErrMissingName
	}
	if in.Description == "" {
		return ErrMissingDescription
	}
	if in.ImageRef == "" {
		return ErrMissingImage
	}
	if in.Category == "" {
		return ErrMissingCategory
	}
	if !domain.Category(in.Category).Valid() {
		return ErrInvalidCategory
	}
	if in.Size == "" {
		return ErrMissingSize
	}
	if !domain.Size(in.Size).Valid() {
		return ErrInvalidSize
	}
	if in.Price == 0 {
		return ErrMissingPrice
	}
	return nil
}

// ProductService coordinates product CRUD backed by the repository.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) ProductService {
	return &productService{products: products}
}

func (s *productService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Get(ctx, id)
}

func (s *productService) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		ImageRef:    in.ImageRef,
		Category:    domain.Category(in.Category),
		Size:        domain.Size(in.Size),
		Price:       in.Price,
	}
	if _, err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update runs the same validation as Create and then fully replaces the
// stored fields. Existence is checked by the repository update itself.
func (s *productService) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	if err := ValidateProduct(in); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		ImageRef:    in.ImageRef,
		Category:    domain.Category(in.Category),
		Size:        domain.Size(in.Size),
		Price:       in.Price,
	}
	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}
