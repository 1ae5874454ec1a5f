package ports

import (
	"context"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for the stock ledger.
// Records are keyed by (branch, part).
type InventoryRepository interface {
	// Get retrieves the record for one branch+part pair.
	// Returns ObjectNotFoundError for an unknown key.
	Get(ctx context.Context, branchCode string, partID kernel.UUID) (*inventory.Record, error)

	// ListByParts retrieves the records a branch holds for the given parts.
	// Parts without a record are simply absent from the result; the
	// availability evaluator treats them as Not Available.
	ListByParts(ctx context.Context, branchCode string, partIDs []kernel.UUID) ([]*inventory.Record, error)

	// Add persists a new stock record.
	Add(ctx context.Context, record *inventory.Record) error

	// Update persists a mutated stock record as a single-row update.
	// Returns ObjectNotFoundError when the key no longer exists.
	Update(ctx context.Context, record *inventory.Record) error
}

// BranchDirectory resolves branch metadata owned by the external
// administration module. The core only reads it for scope checks.
type BranchDirectory interface {
	// CompanyOf returns the company a branch belongs to.
	// Returns ObjectNotFoundError for an unknown branch code.
	CompanyOf(ctx context.Context, branchCode string) (kernel.UUID, error)
}
