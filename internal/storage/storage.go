package storage

import (
	"context"
	"io"
)

// Service stores uploaded product images and hands back the reference
// persisted alongside the product.
type Service interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	Remove(ctx context.Context, ref string) error
}
