package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrSetRackLocationCommandIsNotConstructed = errors.New(
	"SetRackLocationCommand must be created via NewSetRackLocationCommand constructor",
)

// SetRackLocationCommand overwrites only the rack field of one branch+part record.
type SetRackLocationCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	branchCode   string
	partID       kernel.UUID
	rackLocation string

	guard guard.ConstructorGuard
}

// NewSetRackLocationCommand creates a validated rack-change command.
func NewSetRackLocationCommand(actor kernel.Actor, branchCode string, partID kernel.UUID, rackLocation string) (SetRackLocationCommand, error) {
	if err := actor.Validate(); err != nil {
		return SetRackLocationCommand{}, err
	}
	if branchCode == "" {
		return SetRackLocationCommand{}, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return SetRackLocationCommand{}, err
	}
	if rackLocation == "" {
		return SetRackLocationCommand{}, errs.NewValueIsRequiredError("rack location")
	}

	return SetRackLocationCommand{
		actor:        actor,
		branchCode:   branchCode,
		partID:       partID,
		rackLocation: rackLocation,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetRackLocationCommand) Validate() error {
	return c.guard.Validate(ErrSetRackLocationCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SetRackLocationCommand) Actor() kernel.Actor { return c.actor }

// BranchCode returns the branch holding the record.
func (c SetRackLocationCommand) BranchCode() string { return c.branchCode }

// PartID returns the part being relocated.
func (c SetRackLocationCommand) PartID() kernel.UUID { return c.partID }

// RackLocation returns the new rack reference.
func (c SetRackLocationCommand) RackLocation() string { return c.rackLocation }
