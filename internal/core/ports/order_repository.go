package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	// Returns the complete order with its lines and current status.
	Get(ctx context.Context, orderNo kernel.OrderNo) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by fulfillment workflows to advance orders through the lifecycle.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
