package commands

import (
	"context"

	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"
)

// TransitionOrderCommandHandler drives the order status state machine.
//
// On acceptance the header update and the audit-trail append commit together;
// on any failure both roll back, so the trail never diverges from the header.
// The header update carries the loaded version in its predicate: a concurrent
// writer that got there first makes the update match zero rows, and the whole
// transaction rolls back with VersionConflictError instead of silently
// overwriting the other writer's transition.
type TransitionOrderCommandHandler struct {
	uowFactory      OrderUoWFactory
	branchDirectory ports.BranchDirectory
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, branchDirectory ports.BranchDirectory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:      uowFactory,
		branchDirectory: branchDirectory,
	}
}

// Handle processes the transition command.
//
// Failure order: unknown order (NotFound), scope violation (AccessDenied),
// stale caller pin (VersionConflict), transition table rejection
// (InvalidTransition) — all before any write.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = checkBranchAccess(ctx, cmd.Actor(), aggregate.BranchCode(), h.branchDirectory); err != nil {
		return err
	}

	loadedVersion := aggregate.Version()
	if pin := cmd.ExpectedVersion(); pin != 0 && pin != loadedVersion {
		return errs.NewVersionConflictError("order", pin)
	}

	entry, err := aggregate.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Note(), cmd.Source())
	if err != nil {
		return err
	}

	if err = orderRepo.UpdateHeader(ctx, aggregate, loadedVersion); err != nil {
		return err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
