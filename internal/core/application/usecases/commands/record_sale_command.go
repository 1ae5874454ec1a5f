package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrRecordSaleCommandIsNotConstructed = errors.New(
	"RecordSaleCommand must be created via NewRecordSaleCommand constructor",
)

// RecordSaleCommand stamps a sale against one branch+part stock record.
// It does not decrement buckets; physical decrement arrives through a
// separate upstream process.
type RecordSaleCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	branchCode string
	partID     kernel.UUID
	note       string

	guard guard.ConstructorGuard
}

// NewRecordSaleCommand creates a validated record-sale command.
func NewRecordSaleCommand(actor kernel.Actor, branchCode string, partID kernel.UUID, note string) (RecordSaleCommand, error) {
	if err := actor.Validate(); err != nil {
		return RecordSaleCommand{}, err
	}
	if branchCode == "" {
		return RecordSaleCommand{}, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return RecordSaleCommand{}, err
	}

	return RecordSaleCommand{
		actor:      actor,
		branchCode: branchCode,
		partID:     partID,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordSaleCommand) Validate() error {
	return c.guard.Validate(ErrRecordSaleCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c RecordSaleCommand) Actor() kernel.Actor { return c.actor }

// BranchCode returns the branch holding the record.
func (c RecordSaleCommand) BranchCode() string { return c.branchCode }

// PartID returns the part sold.
func (c RecordSaleCommand) PartID() kernel.UUID { return c.partID }

// Note returns the sale note.
func (c RecordSaleCommand) Note() string { return c.note }
