package queries

import (
	"context"
	"strings"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order summaries straight from the database.
// Item counts and amounts come from a join; aggregates are never hydrated
// for listing.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Scope and filter compile into one WHERE
// clause; results are newest first with the order id as a tiebreaker.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conds, args := query.Filter().compile()
	if cond, scopeArgs := scopePredicate(query.Scope(), "o.branch_code"); cond != "" {
		conds = append(conds, cond)
		args = append(args, scopeArgs...)
	}

	where := ""
	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.code,
			o.retailer_id,
			o.branch_code,
			o.status,
			o.urgent,
			o.po_number,
			o.po_date,
			o.placed_at,
			o.version,
			COUNT(i.seq) AS item_count,
			COALESCE(SUM(i.amount), 0) AS total_amount
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		`+where+`
		GROUP BY o.id, o.code, o.retailer_id, o.branch_code, o.status, o.urgent,
			o.po_number, o.po_date, o.placed_at, o.version
		ORDER BY o.placed_at DESC, o.id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			resp       OrderSummaryResponse
			id         uuid.UUID
			retailerID uuid.UUID
			status     int
		)

		if err = rows.Scan(
			&id,
			&resp.Code,
			&retailerID,
			&resp.BranchCode,
			&status,
			&resp.Urgent,
			&resp.PONumber,
			&resp.PODate,
			&resp.PlacedAt,
			&resp.Version,
			&resp.ItemCount,
			&resp.TotalAmount,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		rID, idErr := kernel.UUIDFromBytes(retailerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RetailerID = rID

		resp.Status = order.Status(status).String()
		summaries = append(summaries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
