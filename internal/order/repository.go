package order

import "context"

// Repository defines the interface for order persistence.
// Consumers define this interface, not the MongoDB implementation.
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) (*Order, error)
	ListOrders(ctx context.Context) ([]Order, error)
}
