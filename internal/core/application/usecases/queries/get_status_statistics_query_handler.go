package queries

import (
	"context"

	"distribution/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusStatisticsQueryHandler aggregates the audit trail into per-status
// transition counts.
type GetStatusStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusStatisticsQueryHandler creates a handler for statistics queries.
func NewGetStatusStatisticsQueryHandler(db *gorm.DB) GetStatusStatisticsQueryHandler {
	return GetStatusStatisticsQueryHandler{db: db}
}

// Handle executes the aggregation. Counting happens in the database; scoping
// joins through the orders table since history rows carry no branch.
func (h GetStatusStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusStatisticsQuery,
) ([]StatusStatisticResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT hist.status, COUNT(*) AS transitions
		FROM order_status_history hist
		JOIN orders o ON o.id = hist.order_id
	`
	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if cond, scopeArgs := scopePredicate(query.Scope(), "o.branch_code"); cond != "" {
		conds = append(conds, cond)
		args = append(args, scopeArgs...)
	}
	if query.From() != nil {
		conds = append(conds, "hist.changed_at >= ?")
		args = append(args, *query.From())
	}
	if query.To() != nil {
		conds = append(conds, "hist.changed_at <= ?")
		args = append(args, *query.To())
	}

	for i, cond := range conds {
		if i == 0 {
			sql += " WHERE " + cond
		} else {
			sql += " AND " + cond
		}
	}
	sql += " GROUP BY hist.status ORDER BY hist.status"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := make([]StatusStatisticResponse, 0)

	for rows.Next() {
		var (
			status int
			count  int
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}

		stats = append(stats, StatusStatisticResponse{
			Status: order.Status(status).String(),
			Count:  count,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
