package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetInventoryQueryIsNotConstructed = errors.New(
		"GetInventoryQuery must be created via NewGetInventoryQuery constructor",
	)
)

// GetInventoryQuery retrieves a branch's stock ledger with computed levels.
// Results can be narrowed to one part or to rack locations matching a search
// fragment.
type GetInventoryQuery struct {
	scope      kernel.Scope
	branchCode string
	partID     *kernel.UUID
	rackSearch string

	guard guard.ConstructorGuard
}

// NewGetInventoryQuery creates a validated inventory query.
// partID may be nil and rackSearch may be empty.
func NewGetInventoryQuery(scope kernel.Scope, branchCode string, partID *kernel.UUID, rackSearch string) (GetInventoryQuery, error) {
	if branchCode == "" {
		return GetInventoryQuery{}, errs.NewValueIsRequiredError("branch code")
	}
	if partID != nil {
		if err := partID.Validate(); err != nil {
			return GetInventoryQuery{}, errs.NewValueIsInvalidErrorWithCause("part filter", err)
		}
	}
	if !scope.AllowsBranch(branchCode) {
		return GetInventoryQuery{}, errs.NewAccessDeniedError("branch", branchCode)
	}

	return GetInventoryQuery{
		scope:      scope,
		branchCode: branchCode,
		partID:     partID,
		rackSearch: rackSearch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetInventoryQuery) Validate() error {
	return q.guard.Validate(ErrGetInventoryQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q GetInventoryQuery) Scope() kernel.Scope { return q.scope }

// BranchCode returns the branch whose ledger is requested.
func (q GetInventoryQuery) BranchCode() string { return q.branchCode }

// PartID returns the optional part filter.
func (q GetInventoryQuery) PartID() *kernel.UUID { return q.partID }

// RackSearch returns the optional rack-location fragment.
func (q GetInventoryQuery) RackSearch() string { return q.rackSearch }

// InventoryViewResponse is one stock record with its computed level fields.
type InventoryViewResponse struct {
	BranchCode      string
	PartID          kernel.UUID
	BucketA         int
	BucketB         int
	BucketC         int
	TotalStock      int
	MaxQuantity     int
	StockPercentage float64
	StockLevel      inventory.StockLevel
	RackLocation    string
	Note            string
	LastSaleAt      *time.Time
	LastPurchaseAt  *time.Time
	SyncedAt        time.Time
}
