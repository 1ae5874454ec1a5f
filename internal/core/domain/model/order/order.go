package order

import (
	"errors"
	"fmt"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is created with an empty item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order must contain at least one line item")
)

// Geo is an optional capture location recorded with an order,
// typically the device position of a field sales actor.
type Geo struct {
	Latitude  float64
	Longitude float64
}

// Validate checks the coordinates are within WGS84 bounds.
func (g Geo) Validate() error {
	if g.Latitude < -90 || g.Latitude > 90 {
		return errs.NewValueIsOutOfRangeError("latitude", g.Latitude, -90, 90)
	}
	if g.Longitude < -180 || g.Longitude > 180 {
		return errs.NewValueIsOutOfRangeError("longitude", g.Longitude, -180, 180)
	}
	return nil
}

// Order is the aggregate root for a retailer's parts order placed against a
// branch. It owns the header, the immutable line items, and the status state
// machine. The header is mutated only through TransitionTo after creation;
// Completed and Cancelled orders accept no further mutation.
//
// Order carries a version counter for optimistic concurrency: the persistence
// adapter includes the loaded version in its update predicate and rejects
// stale writers, so two racing transitions cannot both update the header.
type Order struct {
	id         kernel.UUID
	code       kernel.Code
	retailerID kernel.UUID
	branchCode string
	placedBy   kernel.UUID
	placedAt   time.Time
	status     Status
	urgent     bool
	poNumber   string
	poDate     *time.Time
	remark     string
	geo        *Geo
	synced     bool
	version    int
	updatedAt  time.Time

	confirmedBy *kernel.UUID
	confirmedAt *time.Time
	pickedBy    *kernel.UUID
	pickedAt    *time.Time
	packedBy    *kernel.UUID
	packedAt    *time.Time
	deliveredBy *kernel.UUID
	deliveredAt *time.Time

	items []*LineItem

	isConstructed bool
}

// NewOrder creates a new order aggregate in New status.
//
// Items must be non-empty and carry contiguous sequence numbers starting at 1;
// the creation command handler assigns them in input order. poDate and geo are
// optional. The placing branch must already be resolved by the caller — a
// branch-role actor's own branch, or an explicit override.
func NewOrder(
	id kernel.UUID,
	code kernel.Code,
	retailerID kernel.UUID,
	branchCode string,
	placedBy kernel.Actor,
	urgent bool,
	poNumber string,
	poDate *time.Time,
	remark string,
	geo *Geo,
	items []*LineItem,
) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        New,
		placedAt:      now,
		updatedAt:     now,
		version:       1,
		urgent:        urgent,
		poNumber:      poNumber,
		poDate:        poDate,
		remark:        remark,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setRetailerID(retailerID),
		o.setBranchCode(branchCode),
		o.setPlacedBy(placedBy),
		o.setGeo(geo),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order aggregate from persistence.
// All invariants are assumed to have been enforced at creation time;
// only structural validity is rechecked.
func RestoreOrder(
	id kernel.UUID,
	code kernel.Code,
	retailerID kernel.UUID,
	branchCode string,
	placedBy kernel.UUID,
	placedAt time.Time,
	status Status,
	urgent bool,
	poNumber string,
	poDate *time.Time,
	remark string,
	geo *Geo,
	synced bool,
	version int,
	updatedAt time.Time,
	items []*LineItem,
) (*Order, error) {
	if err := errors.Join(id.Validate(), code.Validate(), retailerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if branchCode == "" {
		return nil, errs.NewValueIsRequiredError("branch code")
	}
	if version < 1 {
		return nil, errs.NewValueIsInvalidError("order version")
	}

	return &Order{
		id:            id,
		code:          code,
		retailerID:    retailerID,
		branchCode:    branchCode,
		placedBy:      placedBy,
		placedAt:      placedAt,
		status:        status,
		urgent:        urgent,
		poNumber:      poNumber,
		poDate:        poDate,
		remark:        remark,
		geo:           geo,
		synced:        synced,
		version:       version,
		updatedAt:     updatedAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Code returns the human-facing correlation code.
func (o *Order) Code() kernel.Code { return o.code }

// RetailerID returns the retailer the order was placed for.
func (o *Order) RetailerID() kernel.UUID { return o.retailerID }

// BranchCode returns the placing branch.
func (o *Order) BranchCode() string { return o.branchCode }

// PlacedBy returns the id of the actor that created the order.
func (o *Order) PlacedBy() kernel.UUID { return o.placedBy }

// PlacedAt returns the creation timestamp.
func (o *Order) PlacedAt() time.Time { return o.placedAt }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Urgent reports whether the order was flagged urgent.
func (o *Order) Urgent() bool { return o.urgent }

// PONumber returns the retailer's purchase-order number, if any.
func (o *Order) PONumber() string { return o.poNumber }

// PODate returns the retailer's purchase-order date, if any.
func (o *Order) PODate() *time.Time { return o.poDate }

// Remark returns the free-text remark. Transition notes overwrite it.
func (o *Order) Remark() string { return o.remark }

// Geo returns the optional capture location.
func (o *Order) Geo() *Geo { return o.geo }

// Synced reports whether the order has been pushed to the upstream system.
func (o *Order) Synced() bool { return o.synced }

// Version returns the optimistic-concurrency version counter.
func (o *Order) Version() int { return o.version }

// UpdatedAt returns the last header modification time.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns the order's line items in sequence order.
func (o *Order) Items() []*LineItem { return o.items }

// ConfirmedBy returns who moved the order to Processing, with ConfirmedAt.
func (o *Order) ConfirmedBy() *kernel.UUID { return o.confirmedBy }

// ConfirmedAt returns when the order entered Processing.
func (o *Order) ConfirmedAt() *time.Time { return o.confirmedAt }

// PickedBy returns who moved the order to Picked, with PickedAt.
func (o *Order) PickedBy() *kernel.UUID { return o.pickedBy }

// PickedAt returns when the order entered Picked.
func (o *Order) PickedAt() *time.Time { return o.pickedAt }

// PackedBy returns who moved the order to Dispatched, with PackedAt.
func (o *Order) PackedBy() *kernel.UUID { return o.packedBy }

// PackedAt returns when the order entered Dispatched.
func (o *Order) PackedAt() *time.Time { return o.packedAt }

// DeliveredBy returns who moved the order to Completed, with DeliveredAt.
func (o *Order) DeliveredBy() *kernel.UUID { return o.deliveredBy }

// DeliveredAt returns when the order entered Completed.
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }

// RestoreStamps attaches the status-stamp pairs when reconstructing from
// persistence. Pointers may be nil for stamps the order never reached.
func (o *Order) RestoreStamps(
	confirmedBy *kernel.UUID, confirmedAt *time.Time,
	pickedBy *kernel.UUID, pickedAt *time.Time,
	packedBy *kernel.UUID, packedAt *time.Time,
	deliveredBy *kernel.UUID, deliveredAt *time.Time,
) {
	o.confirmedBy, o.confirmedAt = confirmedBy, confirmedAt
	o.pickedBy, o.pickedAt = pickedBy, pickedAt
	o.packedBy, o.packedAt = packedBy, packedAt
	o.deliveredBy, o.deliveredAt = deliveredBy, deliveredAt
}

// TransitionTo validates and applies a status change.
//
// On acceptance it updates the status, stamps the status-specific by/at pair
// (Processing: confirmed, Picked: picked, Dispatched: packed, Completed:
// delivered), overwrites the remark when a note is supplied, bumps the version
// counter, and returns the history entry that must be persisted in the same
// transaction as the header.
//
// On rejection it mutates nothing and returns an InvalidTransitionError
// naming both statuses.
func (o *Order) TransitionTo(target Status, actor kernel.Actor, note string, source string) (*HistoryEntry, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return nil, err
	}

	previous := o.status
	now := time.Now().UTC()
	actorID := actor.ID()

	switch newStatus {
	case Processing:
		o.confirmedBy, o.confirmedAt = &actorID, &now
	case Picked:
		o.pickedBy, o.pickedAt = &actorID, &now
	case Dispatched:
		o.packedBy, o.packedAt = &actorID, &now
	case Completed:
		o.deliveredBy, o.deliveredAt = &actorID, &now
	}

	o.status = newStatus
	if note != "" {
		o.remark = note
	}
	o.version++
	o.updatedAt = now

	return NewHistoryEntry(kernel.NewUUID(), o.id, &previous, newStatus, actor, note, now, source)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code kernel.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("retailer id", err)
	}
	o.retailerID = retailerID
	return nil
}

func (o *Order) setBranchCode(branchCode string) error {
	if branchCode == "" {
		return errs.NewValueIsRequiredError("branch code")
	}
	o.branchCode = branchCode
	return nil
}

func (o *Order) setPlacedBy(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	o.placedBy = actor.ID()
	return nil
}

func (o *Order) setGeo(geo *Geo) error {
	if geo == nil {
		return nil
	}
	if err := geo.Validate(); err != nil {
		return err
	}
	o.geo = geo
	return nil
}

func (o *Order) setItems(items []*LineItem) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	for i, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.Seq() != i+1 {
			return errs.NewValueIsInvalidErrorWithCause("item sequence numbers",
				fmt.Errorf("expected seq %d at position %d, got %d", i+1, i, item.Seq()))
		}
	}

	o.items = items
	return nil
}
