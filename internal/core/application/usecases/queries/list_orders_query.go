package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves order summaries visible to a scope, narrowed by
// an optional typed filter.
type ListOrdersQuery struct {
	scope  kernel.Scope
	filter OrderFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a validated listing query. The filter is
// validated here so a malformed criterion fails before any SQL is built.
func NewListOrdersQuery(scope kernel.Scope, filter OrderFilter) (ListOrdersQuery, error) {
	if err := filter.validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		scope:  scope,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q ListOrdersQuery) Scope() kernel.Scope { return q.scope }

// Filter returns the listing criteria.
func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

// OrderSummaryResponse is one row of the order listing.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	Code        string
	RetailerID  kernel.UUID
	BranchCode  string
	Status      string
	Urgent      bool
	PONumber    string
	PODate      *time.Time
	PlacedAt    time.Time
	ItemCount   int
	TotalAmount float64
	Version     int
}
