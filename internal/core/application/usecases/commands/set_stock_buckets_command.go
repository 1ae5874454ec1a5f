package commands

import (
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var ErrSetStockBucketsCommandIsNotConstructed = errors.New(
	"SetStockBucketsCommand must be created via NewSetStockBucketsCommand constructor",
)

// SetStockBucketsCommand overwrites the three stock-bucket quantities of one
// branch+part record, typically after a cycle count.
type SetStockBucketsCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	branchCode string
	partID     kernel.UUID
	bucketA    int
	bucketB    int
	bucketC    int
	note       string

	guard guard.ConstructorGuard
}

// NewSetStockBucketsCommand creates a validated bucket-overwrite command.
// Bucket values must be non-negative.
func NewSetStockBucketsCommand(
	actor kernel.Actor,
	branchCode string,
	partID kernel.UUID,
	bucketA, bucketB, bucketC int,
	note string,
) (SetStockBucketsCommand, error) {
	if err := actor.Validate(); err != nil {
		return SetStockBucketsCommand{}, err
	}
	if branchCode == "" {
		return SetStockBucketsCommand{}, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return SetStockBucketsCommand{}, err
	}
	if bucketA < 0 || bucketB < 0 || bucketC < 0 {
		return SetStockBucketsCommand{}, errs.NewValueIsInvalidError("bucket quantity")
	}

	return SetStockBucketsCommand{
		actor:      actor,
		branchCode: branchCode,
		partID:     partID,
		bucketA:    bucketA,
		bucketB:    bucketB,
		bucketC:    bucketC,
		note:       note,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetStockBucketsCommand) Validate() error {
	return c.guard.Validate(ErrSetStockBucketsCommandIsNotConstructed)
}

// Actor returns the acting identity.
func (c SetStockBucketsCommand) Actor() kernel.Actor { return c.actor }

// BranchCode returns the branch holding the record.
func (c SetStockBucketsCommand) BranchCode() string { return c.branchCode }

// PartID returns the part whose buckets are overwritten.
func (c SetStockBucketsCommand) PartID() kernel.UUID { return c.partID }

// Buckets returns the three new bucket values.
func (c SetStockBucketsCommand) Buckets() (int, int, int) { return c.bucketA, c.bucketB, c.bucketC }

// Note returns the adjustment note.
func (c SetStockBucketsCommand) Note() string { return c.note }
