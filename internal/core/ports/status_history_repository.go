package ports

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
)

// StatusHistoryRepository defines the persistence contract for the append-only
// audit trail. Entries are only ever inserted; there is no update or delete.
type StatusHistoryRepository interface {
	// Append inserts one audit row. Called in the same unit of work as the
	// header change it records, so the trail never diverges from the header.
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// ListByOrder returns an order's audit rows in chronological order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
