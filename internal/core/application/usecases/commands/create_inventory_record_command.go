package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrCreateInventoryRecordCommandIsNotConstructed = errors.New(
	"CreateInventoryRecordCommand must be created via NewCreateInventoryRecordCommand constructor",
)

// CreateInventoryRecordCommand registers a new branch+part stock record,
// typically when a branch starts carrying a part.
type CreateInventoryRecordCommand struct { //nolint:recvcheck //using for validation
	actor        kernel.Actor
	branchCode   string
	partID       kernel.UUID
	bucketA      int
	bucketB      int
	bucketC      int
	maxQuantity  int
	rackLocation string

	guard guard.ConstructorGuard
}

// NewCreateInventoryRecordCommand creates a validated record-creation command.
func NewCreateInventoryRecordCommand(
	actor kernel.Actor,
	branchCode string,
	partID kernel.UUID,
	bucketA, bucketB, bucketC, maxQuantity int,
	rackLocation string,
) (CreateInventoryRecordCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateInventoryRecordCommand{}, err
	}
	if branchCode == "" {
		return CreateInventoryRecordCommand{}, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return CreateInventoryRecordCommand{}, err
	}
	if bucketA < 0 || bucketB < 0 || bucketC < 0 {
		return CreateInventoryRecordCommand{}, errs.NewValueIsInvalidError("bucket quantity")
	}
	if maxQuantity < 0 {
		return CreateInventoryRecordCommand{}, errs.NewValueIsInvalidError("max quantity")
	}

	return CreateInventoryRecordCommand{
		actor:        actor,
		branchCode:   branchCode,
		partID:       partID,
		bucketA:      bucketA,
		bucketB:      bucketB,
		bucketC:      bucketC,
		maxQuantity:  maxQuantity,
		rackLocation: rackLocation,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInventoryRecordCommand) Validate() error {
	return c.guard.Validate(ErrCreateInventoryRecordCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c CreateInventoryRecordCommand) Actor() kernel.Actor { return c.actor }

// BranchCode returns the branch that will hold the record.
func (c CreateInventoryRecordCommand) BranchCode() string { return c.branchCode }

// PartID returns the part the record tracks.
func (c CreateInventoryRecordCommand) PartID() kernel.UUID { return c.partID }

// Buckets returns the three initial bucket values.
func (c CreateInventoryRecordCommand) Buckets() (int, int, int) {
	return c.bucketA, c.bucketB, c.bucketC
}

// MaxQuantity returns the maximum threshold for classification.
func (c CreateInventoryRecordCommand) MaxQuantity() int { return c.maxQuantity }

// RackLocation returns the initial rack reference, possibly empty.
func (c CreateInventoryRecordCommand) RackLocation() string { return c.rackLocation }
