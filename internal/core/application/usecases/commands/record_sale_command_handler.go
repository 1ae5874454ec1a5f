package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// RecordSaleCommandHandler stamps the last-sale marker on a stock record.
// The mutation is an independently atomic single-row update.
type RecordSaleCommandHandler struct {
	uowFactory      InventoryUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewRecordSaleCommandHandler creates a handler for sale stamping.
func NewRecordSaleCommandHandler(uowFactory InventoryUoWFactory, branchDirectory ports.BranchDirectory) RecordSaleCommandHandler {
	return RecordSaleCommandHandler{uowFactory: uowFactory, branchDirectory: branchDirectory}
}

// Handle loads the record, stamps sale timestamp + note + sync marker, and saves.
func (h *RecordSaleCommandHandler) Handle(ctx context.Context, cmd RecordSaleCommand) error {
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

	record.RecordSale(cmd.Note())

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
