package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog reads.
// Consumers define this interface, not the sqlite implementation.
type ProductRepository interface {
	ListProducts(ctx context.Context, filter Filter) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	Close() error
}
