package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// SetStockBucketsCommandHandler overwrites the bucket quantities of a stock record.
type SetStockBucketsCommandHandler struct {
	uowFactory      InventoryUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewSetStockBucketsCommandHandler creates a handler for bucket overwrites.
func NewSetStockBucketsCommandHandler(uowFactory InventoryUoWFactory, branchDirectory ports.BranchDirectory) SetStockBucketsCommandHandler {
	return SetStockBucketsCommandHandler{uowFactory: uowFactory, branchDirectory: branchDirectory}
}

// Handle loads the record, overwrites the three buckets, and saves.
func (h *SetStockBucketsCommandHandler) Handle(ctx context.Context, cmd SetStockBucketsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := checkBranchAccess(ctx, cmd.Actor(), cmd.BranchCode(), h.branchDirectory); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.InventoryRepository()
	record, err := repo.Get(ctx, cmd.BranchCode(), cmd.PartID())
	if err != nil {
		return err
	}

	a, b, c := cmd.Buckets()
	if err = record.SetBuckets(a, b, c, cmd.Note()); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
