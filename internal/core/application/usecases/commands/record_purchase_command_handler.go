package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// RecordPurchaseCommandHandler stamps the last-purchase marker on a stock record.
type RecordPurchaseCommandHandler struct {
	uowFactory      InventoryUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewRecordPurchaseCommandHandler creates a handler for purchase stamping.
func NewRecordPurchaseCommandHandler(uowFactory InventoryUoWFactory, branchDirectory ports.BranchDirectory) RecordPurchaseCommandHandler {
	return RecordPurchaseCommandHandler{uowFactory: uowFactory, branchDirectory: branchDirectory}
}

// Handle loads the record, stamps purchase timestamp + note + sync marker, and saves.
func (h *RecordPurchaseCommandHandler) Handle(ctx context.Context, cmd RecordPurchaseCommand) error {
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

	record.RecordPurchase(cmd.Note())

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
