package queries

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler reads an order's audit timeline.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for timeline queries.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the timeline query, oldest entry first.
// An unknown order is NotFound; a known order outside the scope is AccessDenied.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]StatusHistoryEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := requireVisibleOrder(ctx, h.db, query.Scope(), query.OrderID()); err != nil {
		return nil, err
	}

	return fetchStatusHistory(ctx, h.db, query.OrderID())
}

// fetchStatusHistory reads the timeline rows for one order, oldest first.
// Shared with the order detail query; callers must have scope-checked the
// order already.
func fetchStatusHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]StatusHistoryEntryResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			previous_status,
			status,
			actor_id,
			actor_name,
			actor_role,
			note,
			changed_at,
			source
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]StatusHistoryEntryResponse, 0)

	for rows.Next() {
		var (
			resp     StatusHistoryEntryResponse
			id       uuid.UUID
			actorID  uuid.UUID
			previous *int
			status   int
		)

		if err = rows.Scan(
			&id,
			&previous,
			&status,
			&actorID,
			&resp.ActorName,
			&resp.ActorRole,
			&resp.Note,
			&resp.ChangedAt,
			&resp.Source,
		); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = entryID

		aID, idErr := kernel.UUIDFromBytes(actorID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ActorID = aID

		if previous != nil {
			name := order.Status(*previous).String()
			resp.PreviousStatus = &name
		}
		resp.Status = order.Status(status).String()

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// requireVisibleOrder confirms the order exists and the scope admits its
// branch. Shared by the per-order read queries: an unknown order is NotFound,
// a known order outside the scope is AccessDenied.
func requireVisibleOrder(ctx context.Context, db *gorm.DB, scope kernel.Scope, orderID kernel.UUID) error {
	var branchCodes []string
	err := db.WithContext(ctx).
		Raw("SELECT branch_code FROM orders WHERE id = ?", orderID.Bytes()).
		Scan(&branchCodes).Error
	if err != nil {
		return err
	}
	if len(branchCodes) == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}
	branchCode := branchCodes[0]

	switch scope.Kind() {
	case kernel.ScopeBranch:
		if scope.BranchCode() != branchCode {
			return errs.NewAccessDeniedError("order", orderID.String())
		}
	case kernel.ScopeCompany:
		var count int64
		err = db.WithContext(ctx).
			Raw("SELECT COUNT(*) FROM branches WHERE code = ? AND company_id = ?",
				branchCode, scope.CompanyID().Bytes()).
			Scan(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return errs.NewAccessDeniedError("order", orderID.String())
		}
	}

	return nil
}
