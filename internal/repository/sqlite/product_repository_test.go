package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-admin/internal/domain"
	"catalog-admin/internal/repository"
)

func newTestRepo(t *testing.T) repository.ProductRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewProductRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func sampleProduct() *domain.Product {
	return &domain.Product{
		Name:        "Camiseta básica",
		Description: "Algodón, manga corta",
		ImageRef:    "img-1.jpg",
		Category:    domain.CategoryShirts,
		Size:        domain.SizeM,
		Price:       19.99,
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)

	product := sampleProduct()
	id, err := repo.Create(context.Background(), product)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, product.ID)
	assert.False(t, product.CreatedAt.IsZero())
}

func TestGetRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	product := sampleProduct()
	id, err := repo.Create(context.Background(), product)
	require.NoError(t, err)

	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, product.Name, stored.Name)
	assert.Equal(t, product.Description, stored.Description)
	assert.Equal(t, product.ImageRef, stored.ImageRef)
	assert.Equal(t, product.Category, stored.Category)
	assert.Equal(t, product.Size, stored.Size)
	assert.Equal(t, product.Price, stored.Price)
}

func TestGetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListEmpty(t *testing.T) {
	repo := newTestRepo(t)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListReturnsAll(t *testing.T) {
	repo := newTestRepo(t)

	for range 3 {
		_, err := repo.Create(context.Background(), sampleProduct())
		require.NoError(t, err)
	}

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestUpdateReplacesFields(t *testing.T) {
	repo := newTestRepo(t)

	product := sampleProduct()
	id, err := repo.Create(context.Background(), product)
	require.NoError(t, err)

	replacement := &domain.Product{
		ID:          id,
		Name:        "Zapato de cuero",
		Description: "Suela de goma",
		ImageRef:    "img-2.jpg",
		Category:    domain.CategoryShoes,
		Size:        domain.SizeXL,
		Price:       59.5,
	}
	require.NoError(t, repo.Update(context.Background(), replacement))

	stored, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, replacement.Name, stored.Name)
	assert.Equal(t, replacement.Description, stored.Description)
	assert.Equal(t, replacement.ImageRef, stored.ImageRef)
	assert.Equal(t, replacement.Category, stored.Category)
	assert.Equal(t, replacement.Size, stored.Size)
	assert.Equal(t, replacement.Price, stored.Price)
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepo(t)

	product := sampleProduct()
	product.ID = "missing"
	err := repo.Update(context.Background(), product)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteRemovesRow(t *testing.T) {
	repo := newTestRepo(t)

	id, err := repo.Create(context.Background(), sampleProduct())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), id))

	_, err = repo.Get(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDeleteMissing(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
