package order

import (
	"errors"
	"math"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created through
// the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one ordered part within an Order. Items are immutable after
// creation except for the dispatched quantity, which fulfillment updates while
// picking. The sequence number is assigned once when the order is created and
// never reassigned.
type LineItem struct {
	seq                int
	partID             kernel.UUID
	quantity           int
	dispatchedQuantity int
	unitPrice          float64
	basicDiscount      float64
	schemeDiscount     float64
	additionalDiscount float64
	amount             float64
	urgent             bool
	status             Status

	isConstructed bool
}

// ComputeAmount applies the per-item pricing rule:
//
//	round(price * quantity * (1 - (basic+scheme+additional)/100))
//
// Discounts are summed additively, not compounded. The rule is shared with
// printed invoices, so it must not change shape.
func ComputeAmount(unitPrice float64, quantity int, basic, scheme, additional float64) float64 {
	return math.Round(unitPrice * float64(quantity) * (1 - (basic+scheme+additional)/100))
}

// NewLineItem creates a validated line item.
//
// seq must be >= 1 (contiguity across an order is enforced by NewOrder),
// quantity must be positive, unitPrice non-negative, and each discount
// percentage within [0,100]. The monetary amount is computed here and
// stored with the item.
func NewLineItem(
	seq int,
	partID kernel.UUID,
	quantity int,
	unitPrice float64,
	basicDiscount float64,
	schemeDiscount float64,
	additionalDiscount float64,
	urgent bool,
) (*LineItem, error) {
	if seq < 1 {
		return nil, errs.NewValueIsInvalidError("item sequence number")
	}
	if err := partID.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("part id", err)
	}
	if quantity < 1 {
		return nil, errs.NewValueIsInvalidError("item quantity")
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidError("item unit price")
	}
	for name, pct := range map[string]float64{
		"basic discount":      basicDiscount,
		"scheme discount":     schemeDiscount,
		"additional discount": additionalDiscount,
	} {
		if pct < 0 || pct > 100 {
			return nil, errs.NewValueIsOutOfRangeError(name, pct, 0, 100)
		}
	}

	return &LineItem{
		seq:                seq,
		partID:             partID,
		quantity:           quantity,
		unitPrice:          unitPrice,
		basicDiscount:      basicDiscount,
		schemeDiscount:     schemeDiscount,
		additionalDiscount: additionalDiscount,
		amount:             ComputeAmount(unitPrice, quantity, basicDiscount, schemeDiscount, additionalDiscount),
		urgent:             urgent,
		status:             New,
		isConstructed:      true,
	}, nil
}

// RestoreLineItem reconstructs a line item from persistence without recomputing
// the amount; the stored amount is authoritative for already-created orders.
func RestoreLineItem(
	seq int,
	partID kernel.UUID,
	quantity int,
	dispatchedQuantity int,
	unitPrice float64,
	basicDiscount float64,
	schemeDiscount float64,
	additionalDiscount float64,
	amount float64,
	urgent bool,
	status Status,
) (*LineItem, error) {
	if err := partID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &LineItem{
		seq:                seq,
		partID:             partID,
		quantity:           quantity,
		dispatchedQuantity: dispatchedQuantity,
		unitPrice:          unitPrice,
		basicDiscount:      basicDiscount,
		schemeDiscount:     schemeDiscount,
		additionalDiscount: additionalDiscount,
		amount:             amount,
		urgent:             urgent,
		status:             status,
		isConstructed:      true,
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i *LineItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// Seq returns the item's 1-based sequence number within its order.
func (i *LineItem) Seq() int {
	return i.seq
}

// PartID returns the referenced part.
func (i *LineItem) PartID() kernel.UUID {
	return i.partID
}

// Quantity returns the ordered quantity.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// DispatchedQuantity returns how many units fulfillment has dispatched so far.
func (i *LineItem) DispatchedQuantity() int {
	return i.dispatchedQuantity
}

// UnitPrice returns the unit price used for the amount computation.
func (i *LineItem) UnitPrice() float64 {
	return i.unitPrice
}

// BasicDiscount returns the basic discount percentage.
func (i *LineItem) BasicDiscount() float64 {
	return i.basicDiscount
}

// SchemeDiscount returns the scheme discount percentage.
func (i *LineItem) SchemeDiscount() float64 {
	return i.schemeDiscount
}

// AdditionalDiscount returns the additional discount percentage.
func (i *LineItem) AdditionalDiscount() float64 {
	return i.additionalDiscount
}

// Amount returns the computed monetary amount for the item.
func (i *LineItem) Amount() float64 {
	return i.amount
}

// Urgent reports whether the item was flagged urgent.
func (i *LineItem) Urgent() bool {
	return i.urgent
}

// Status returns the item's own status.
func (i *LineItem) Status() Status {
	return i.status
}

// SetDispatchedQuantity records progress during fulfillment. The value must
// stay within [0, quantity]; items are otherwise immutable after creation.
func (i *LineItem) SetDispatchedQuantity(qty int) error {
	if qty < 0 || qty > i.quantity {
		return errs.NewValueIsOutOfRangeError("dispatched quantity", qty, 0, i.quantity)
	}
	i.dispatchedQuantity = qty
	return nil
}
