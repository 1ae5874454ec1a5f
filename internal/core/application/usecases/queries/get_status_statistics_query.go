package queries

import (
	"errors"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

var (
	ErrGetStatusStatisticsQueryIsNotConstructed = errors.New(
		"GetStatusStatisticsQuery must be created via NewGetStatusStatisticsQuery constructor",
	)
)

// GetStatusStatisticsQuery counts status transitions per target status over
// an optional date range, within the caller's scope.
type GetStatusStatisticsQuery struct {
	scope kernel.Scope
	from  *time.Time
	to    *time.Time

	guard guard.ConstructorGuard
}

// NewGetStatusStatisticsQuery creates a validated statistics query.
// Either bound may be nil for a half-open range.
func NewGetStatusStatisticsQuery(scope kernel.Scope, from, to *time.Time) (GetStatusStatisticsQuery, error) {
	if from != nil && to != nil && to.Before(*from) {
		return GetStatusStatisticsQuery{}, errs.NewValueIsInvalidError("statistics date range")
	}

	return GetStatusStatisticsQuery{
		scope: scope,
		from:  from,
		to:    to,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusStatisticsQueryIsNotConstructed)
}

// Scope returns the visibility scope.
func (q GetStatusStatisticsQuery) Scope() kernel.Scope { return q.scope }

// From returns the lower bound of the range, nil when unbounded.
func (q GetStatusStatisticsQuery) From() *time.Time { return q.from }

// To returns the upper bound of the range, nil when unbounded.
func (q GetStatusStatisticsQuery) To() *time.Time { return q.to }

// StatusStatisticResponse is the transition count for one target status.
type StatusStatisticResponse struct {
	Status string
	Count  int
}
