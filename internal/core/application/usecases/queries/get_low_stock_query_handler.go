package queries

import (
	"context"
	"sort"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLowStockQueryHandler finds stock records below the alert threshold.
//
// Bucket columns are legacy text, so the percentage cannot be computed in
// SQL; rows are streamed out and classified in Go with the domain classifier.
type GetLowStockQueryHandler struct {
	db *gorm.DB
}

// NewGetLowStockQueryHandler creates a handler for low-stock alert queries.
func NewGetLowStockQueryHandler(db *gorm.DB) GetLowStockQueryHandler {
	return GetLowStockQueryHandler{db: db}
}

// Handle executes the alert query. Results are sorted by total stock
// ascending so the most depleted records surface first.
func (h GetLowStockQueryHandler) Handle(ctx context.Context, query GetLowStockQuery) ([]LowStockAlertResponse, error) {
	if err := query.Validate(); err != nil {
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
			rack_location
		FROM stock_records
	`
	var args []any
	if cond, scopeArgs := scopePredicate(query.Scope(), "branch_code"); cond != "" {
		sql += " WHERE " + cond
		args = scopeArgs
	}

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	alerts := make([]LowStockAlertResponse, 0)

	for rows.Next() {
		var (
			alert  LowStockAlertResponse
			partID uuid.UUID
			rawA   string
			rawB   string
			rawC   string
		)

		if err = rows.Scan(
			&alert.BranchCode,
			&partID,
			&rawA,
			&rawB,
			&rawC,
			&alert.MaxQuantity,
			&alert.RackLocation,
		); err != nil {
			return nil, err
		}

		a, parseErr := inventory.ParseBucket(rawA)
		if parseErr != nil {
			return nil, parseErr
		}
		b, parseErr := inventory.ParseBucket(rawB)
		if parseErr != nil {
			return nil, parseErr
		}
		c, parseErr := inventory.ParseBucket(rawC)
		if parseErr != nil {
			return nil, parseErr
		}

		alert.TotalStock = a + b + c
		alert.StockPercentage = inventory.StockPercentage(alert.TotalStock, alert.MaxQuantity)
		if alert.StockPercentage >= inventory.LowStockThresholdPercent {
			continue
		}

		pID, idErr := kernel.UUIDFromBytes(partID[:])
		if idErr != nil {
			return nil, idErr
		}
		alert.PartID = pID
		alert.Urgency = inventory.ClassifyAlert(alert.StockPercentage)

		alerts = append(alerts, alert)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].TotalStock < alerts[j].TotalStock
	})

	return alerts, nil
}
