package commands

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderItemInput carries the raw fields of one requested line item.
// Field constraints are enforced by order.NewLineItem before anything
// touches the database.
type OrderItemInput struct {
	PartID             kernel.UUID
	Quantity           int
	UnitPrice          float64
	BasicDiscount      float64
	SchemeDiscount     float64
	AdditionalDiscount float64
	Urgent             bool
}

// CreateOrderCommand represents a request to create a new parts order.
//
// The placing branch is resolved at construction time: an explicit override
// wins, otherwise a branch-role actor's own branch is used. When neither
// yields a branch the command is rejected rather than defaulting silently.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	retailerID kernel.UUID
	branchCode string
	urgent     bool
	poNumber   string
	poDate     *time.Time
	remark     string
	geo        *order.Geo
	items      []OrderItemInput
	source     string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order-creation command.
//
// branchOverride may be empty; see CreateOrderCommand for resolution rules.
// The item list must be non-empty. source records request provenance for the
// audit trail and may be empty.
func NewCreateOrderCommand(
	actor kernel.Actor,
	retailerID kernel.UUID,
	branchOverride string,
	urgent bool,
	poNumber string,
	poDate *time.Time,
	remark string,
	geo *order.Geo,
	items []OrderItemInput,
	source string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		urgent:   urgent,
		poNumber: poNumber,
		poDate:   poDate,
		remark:   remark,
		geo:      geo,
		source:   source,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setRetailerID(retailerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	if err := cmd.resolveBranch(branchOverride); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the creating identity.
func (c CreateOrderCommand) Actor() kernel.Actor { return c.actor }

// RetailerID returns the retailer the order is placed for.
func (c CreateOrderCommand) RetailerID() kernel.UUID { return c.retailerID }

// BranchCode returns the resolved placing branch.
func (c CreateOrderCommand) BranchCode() string { return c.branchCode }

// Urgent reports the order-level urgency flag.
func (c CreateOrderCommand) Urgent() bool { return c.urgent }

// PONumber returns the optional purchase-order number.
func (c CreateOrderCommand) PONumber() string { return c.poNumber }

// PODate returns the optional purchase-order date.
func (c CreateOrderCommand) PODate() *time.Time { return c.poDate }

// Remark returns the free-text remark.
func (c CreateOrderCommand) Remark() string { return c.remark }

// Geo returns the optional capture location.
func (c CreateOrderCommand) Geo() *order.Geo { return c.geo }

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput { return c.items }

// Source returns the request provenance.
func (c CreateOrderCommand) Source() string { return c.source }

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setRetailerID(retailerID kernel.UUID) error {
	if err := retailerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("retailer id", err)
	}
	c.retailerID = retailerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) resolveBranch(override string) error {
	switch {
	case override != "":
		c.branchCode = override
	case c.actor.BranchCode() != "":
		c.branchCode = c.actor.BranchCode()
	default:
		return errs.NewValueIsRequiredError("placing branch could not be resolved")
	}
	return nil
}
