package ports

import (
	"context"

	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The lifecycle and listing logic depend only on this contract, never on a
// concrete storage technology.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate and returns the
	// persisted aggregate, so callers can return the updated order without a
	// second read. Returns an ObjectNotFoundError if the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no order exists for the identity.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindAll retrieves the full order collection in stable insertion order,
	// including soft-deleted orders. Filtering and pagination happen in the
	// listing logic, not in the store.
	FindAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order record permanently.
	// Returns an ObjectNotFoundError if no order exists for the identity.
	Delete(ctx context.Context, id kernel.UUID) error
}
