package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
		"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
	)
)

// GetStatusHistoryQuery retrieves the chronological status timeline of one order.
type GetStatusHistoryQuery struct {
	scope   kernel.Scope
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a validated history query.
func NewGetStatusHistoryQuery(scope kernel.Scope, orderID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}

	return GetStatusHistoryQuery{
		scope:   scope,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q GetStatusHistoryQuery) Scope() kernel.Scope { return q.scope }

// OrderID returns the order whose timeline is requested.
func (q GetStatusHistoryQuery) OrderID() kernel.UUID { return q.orderID }

// StatusHistoryEntryResponse is one row of an order's audit timeline.
// PreviousStatus is nil on the creation row.
type StatusHistoryEntryResponse struct {
	ID             kernel.UUID
	PreviousStatus *string
	Status         string
	ActorID        kernel.UUID
	ActorName      string
	ActorRole      string
	Note           string
	ChangedAt      time.Time
	Source         string
}
