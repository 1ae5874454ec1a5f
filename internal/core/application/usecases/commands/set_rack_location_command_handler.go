package commands

import (
	"context"

	"distribution/internal/core/ports"
)

// SetRackLocationCommandHandler overwrites the rack field of a stock record.
type SetRackLocationCommandHandler struct {
	uowFactory      InventoryUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewSetRackLocationCommandHandler creates a handler for rack changes.
func NewSetRackLocationCommandHandler(uowFactory InventoryUoWFactory, branchDirectory ports.BranchDirectory) SetRackLocationCommandHandler {
	return SetRackLocationCommandHandler{uowFactory: uowFactory, branchDirectory: branchDirectory}
}

// Handle loads the record, changes the rack, and saves.
func (h *SetRackLocationCommandHandler) Handle(ctx context.Context, cmd SetRackLocationCommand) error {
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

	if err = record.SetRackLocation(cmd.RackLocation()); err != nil {
		return err
	}

	if err = repo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
