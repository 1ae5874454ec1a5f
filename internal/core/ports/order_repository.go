package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate: the header row plus all line-item
	// rows. Callers run Add inside a unit of work so a failure on any row
	// rolls back the whole order — partial orders are never observable.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items by identifier.
	// Returns ObjectNotFoundError for an unknown id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its correlation code.
	GetByCode(ctx context.Context, code kernel.Code) (*order.Order, error)

	// UpdateHeader persists header changes made by the status transition
	// engine. The update predicate includes expectedVersion: when another
	// writer got there first the update matches zero rows and UpdateHeader
	// returns VersionConflictError, leaving the caller to roll back.
	UpdateHeader(ctx context.Context, aggregate *order.Order, expectedVersion int) error
}
