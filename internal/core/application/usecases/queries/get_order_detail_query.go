package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/services"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order in full: header, items, audit
// timeline, and a live availability evaluation against the placing branch's
// current stock.
type GetOrderDetailQuery struct {
	scope   kernel.Scope
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderDetailQuery creates a validated detail query.
func NewGetOrderDetailQuery(scope kernel.Scope, orderID kernel.UUID) (GetOrderDetailQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderDetailQuery{}, err
	}

	return GetOrderDetailQuery{
		scope:   scope,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q GetOrderDetailQuery) Scope() kernel.Scope { return q.scope }

// OrderID returns the requested order.
func (q GetOrderDetailQuery) OrderID() kernel.UUID { return q.orderID }

// OrderItemResponse is one line item of the order detail.
type OrderItemResponse struct {
	Seq                int
	PartID             kernel.UUID
	Quantity           int
	DispatchedQuantity int
	UnitPrice          float64
	BasicDiscount      float64
	SchemeDiscount     float64
	AdditionalDiscount float64
	Amount             float64
	Urgent             bool
	Status             string
}

// OrderDetailResponse is the full read model of one order.
//
// Availability is recomputed on every call; it is a point-in-time snapshot of
// the branch's stock, never a reservation.
type OrderDetailResponse struct {
	ID         kernel.UUID
	Code       string
	RetailerID kernel.UUID
	BranchCode string
	Status     string
	Urgent     bool
	PONumber   string
	PODate     *time.Time
	Remark     string
	PlacedBy   kernel.UUID
	PlacedAt   time.Time
	Synced     bool
	Version    int
	UpdatedAt  time.Time

	ConfirmedAt *time.Time
	PickedAt    *time.Time
	PackedAt    *time.Time
	DeliveredAt *time.Time

	Items        []OrderItemResponse
	History      []StatusHistoryEntryResponse
	Availability services.AvailabilitySummary
}
