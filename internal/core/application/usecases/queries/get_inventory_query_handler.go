package queries

import (
	"context"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInventoryQueryHandler reads a branch's stock ledger.
//
// Bucket columns are legacy text and parsed at this boundary; percentage and
// level come from the domain classifier so every surface reports the same
// tiers.
type GetInventoryQueryHandler struct {
	db *gorm.DB
}

// NewGetInventoryQueryHandler creates a handler for inventory queries.
func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

// Handle executes the ledger query, ordered by rack location then part.
func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) ([]InventoryViewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := h.checkCompanyScope(ctx, query); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			branch_code,
			part_id,
			bucket_a,
			bucket_b,
			bucket_c,
			max_quantity,
			rack_location,
			note,
			last_sale_at,
			last_purchase_at,
			synced_at
		FROM stock_records
		WHERE branch_code = ?
	`
	args := []any{query.BranchCode()}

	if query.PartID() != nil {
		sql += " AND part_id = ?"
		args = append(args, query.PartID().Bytes())
	}
	if query.RackSearch() != "" {
		sql += " AND rack_location ILIKE ?"
		args = append(args, "%"+query.RackSearch()+"%")
	}
	sql += " ORDER BY rack_location, part_id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]InventoryViewResponse, 0)

	for rows.Next() {
		var (
			view    InventoryViewResponse
			partID  uuid.UUID
			rawA    string
			rawB    string
			rawC    string
		)

		if err = rows.Scan(
			&view.BranchCode,
			&partID,
			&rawA,
			&rawB,
			&rawC,
			&view.MaxQuantity,
			&view.RackLocation,
			&view.Note,
			&view.LastSaleAt,
			&view.LastPurchaseAt,
			&view.SyncedAt,
		); err != nil {
			return nil, err
		}

		pID, idErr := kernel.UUIDFromBytes(partID[:])
		if idErr != nil {
			return nil, idErr
		}
		view.PartID = pID

		if view.BucketA, err = inventory.ParseBucket(rawA); err != nil {
			return nil, err
		}
		if view.BucketB, err = inventory.ParseBucket(rawB); err != nil {
			return nil, err
		}
		if view.BucketC, err = inventory.ParseBucket(rawC); err != nil {
			return nil, err
		}

		view.TotalStock = view.BucketA + view.BucketB + view.BucketC
		view.StockPercentage = inventory.StockPercentage(view.TotalStock, view.MaxQuantity)
		view.StockLevel = inventory.ClassifyStock(view.StockPercentage)

		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// checkCompanyScope narrows company-scoped callers to branches of their
// company. Branch scope is already enforced at query construction.
func (h GetInventoryQueryHandler) checkCompanyScope(ctx context.Context, query GetInventoryQuery) error {
	if query.Scope().Kind() != kernel.ScopeCompany {
		return nil
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM branches WHERE code = ? AND company_id = ?",
			query.BranchCode(), query.Scope().CompanyID().Bytes()).
		Scan(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewAccessDeniedError("branch", query.BranchCode())
	}
	return nil
}
