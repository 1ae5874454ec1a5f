package queries

import (
	"errors"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetLowStockQueryIsNotConstructed = errors.New(
		"GetLowStockQuery must be created via NewGetLowStockQuery constructor",
	)
)

// GetLowStockQuery retrieves the records below the low-stock alert threshold
// across every branch the scope can see.
type GetLowStockQuery struct {
	scope kernel.Scope

	guard guard.ConstructorGuard
}

// NewGetLowStockQuery creates a validated low-stock query.
func NewGetLowStockQuery(scope kernel.Scope) GetLowStockQuery {
	return GetLowStockQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetLowStockQuery) Validate() error {
	return q.guard.Validate(ErrGetLowStockQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q GetLowStockQuery) Scope() kernel.Scope { return q.scope }

// LowStockAlertResponse is one record below the alert threshold.
//
// Urgency uses the two-band alert classification, not the four-tier stock
// level: every alerted record is "critical" by stock level already, so the
// alert set is split again at 10% to rank what to reorder first.
type LowStockAlertResponse struct {
	BranchCode      string
	PartID          kernel.UUID
	TotalStock      int
	MaxQuantity     int
	StockPercentage float64
	Urgency         inventory.AlertUrgency
	RackLocation    string
}
