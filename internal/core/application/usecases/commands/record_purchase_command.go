package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrRecordPurchaseCommandIsNotConstructed = errors.New(
	"RecordPurchaseCommand must be created via NewRecordPurchaseCommand constructor",
)

// RecordPurchaseCommand stamps a purchase against one branch+part stock record.
type RecordPurchaseCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	branchCode string
	partID     kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

// NewRecordPurchaseCommand creates a validated record-purchase command.
func NewRecordPurchaseCommand(actor kernel.Actor, branchCode string, partID kernel.UUID, note string) (RecordPurchaseCommand, error) {
	if err := actor.Validate(); err != nil {
		return RecordPurchaseCommand{}, err
	}
	if branchCode == "" {
		return RecordPurchaseCommand{}, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return RecordPurchaseCommand{}, err
	}

	return RecordPurchaseCommand{
		actor:      actor,
		branchCode: branchCode,
		partID:     partID,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPurchaseCommand) Validate() error {
	return c.guard.Validate(ErrRecordPurchaseCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c RecordPurchaseCommand) Actor() kernel.Actor { return c.actor }

// BranchCode returns the branch holding the record.
func (c RecordPurchaseCommand) BranchCode() string { return c.branchCode }

// PartID returns the part purchased.
func (c RecordPurchaseCommand) PartID() kernel.UUID { return c.partID }

// Note returns the purchase note.
func (c RecordPurchaseCommand) Note() string { return c.note }
