package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
)

// TransitionOrderCommand represents a request to move an order to a new status.
//
// expectedVersion optionally pins the version the caller last saw: a non-zero
// value that no longer matches the stored header is rejected with
// VersionConflictError before any write. Zero skips the caller-side pin; the
// update predicate still guards against concurrent writers either way.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	target          order.Status
	actor           kernel.Actor
	note            string
	source          string
	expectedVersion int

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a validated transition command.
// note and source may be empty; expectedVersion may be zero.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actor kernel.Actor,
	note string,
	source string,
	expectedVersion int,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		note:   note,
		source: source,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setActor(actor),
		cmd.setExpectedVersion(expectedVersion),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the target order.
func (c TransitionOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status { return c.target }

// Actor returns the acting identity.
func (c TransitionOrderCommand) Actor() kernel.Actor { return c.actor }

// Note returns the optional transition note.
func (c TransitionOrderCommand) Note() string { return c.note }

// Source returns the request provenance.
func (c TransitionOrderCommand) Source() string { return c.source }

// ExpectedVersion returns the caller's version pin, zero when unpinned.
func (c TransitionOrderCommand) ExpectedVersion() int { return c.expectedVersion }

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setExpectedVersion(v int) error {
	if v < 0 {
		return errs.NewValueIsInvalidError("expected version")
	}
	c.expectedVersion = v
	return nil
}
