package commands

import (
	"context"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/ports"
)

// CreateInventoryRecordCommandHandler registers a new stock record.
type CreateInventoryRecordCommandHandler struct {
	uowFactory      InventoryUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewCreateInventoryRecordCommandHandler creates a handler for record registration.
func NewCreateInventoryRecordCommandHandler(uowFactory InventoryUoWFactory, branchDirectory ports.BranchDirectory) CreateInventoryRecordCommandHandler {
	return CreateInventoryRecordCommandHandler{uowFactory: uowFactory, branchDirectory: branchDirectory}
}

// Handle creates and persists the record. The (branch, part) key is unique;
// a duplicate insert surfaces as a storage error and rolls back.
func (h *CreateInventoryRecordCommandHandler) Handle(ctx context.Context, cmd CreateInventoryRecordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := checkBranchAccess(ctx, cmd.Actor(), cmd.BranchCode(), h.branchDirectory); err != nil {
		return err
	}

	a, b, c := cmd.Buckets()
	record, err := inventory.NewRecord(cmd.BranchCode(), cmd.PartID(), a, b, c, cmd.MaxQuantity(), cmd.RackLocation())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.InventoryRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
