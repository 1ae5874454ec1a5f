package queries

import (
	"testing"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderFilter_Compile(t *testing.T) {
	t.Run("empty_filter_compiles_to_nothing", func(t *testing.T) {
		conds, args := NewOrderFilter().compile()

		assert.Empty(t, conds)
		assert.Empty(t, args)
	})

	t.Run("every_criterion_produces_one_placeholder", func(t *testing.T) {
		retailerID := kernel.NewUUID()
		from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		filter := NewOrderFilter().
			WithStatus(order.Pending).
			WithRetailer(retailerID).
			WithBranch("BR-01").
			WithUrgent(true).
			WithPlacedBetween(&from, &to).
			WithCodeSearch("ORD-2")

		conds, args := filter.compile()

		require.Len(t, conds, 7)
		require.Len(t, args, 7)
		assert.Equal(t, []string{
			"o.status = ?",
			"o.retailer_id = ?",
			"o.branch_code = ?",
			"o.urgent = ?",
			"o.placed_at >= ?",
			"o.placed_at <= ?",
			"o.code ILIKE ?",
		}, conds)
		assert.Equal(t, int(order.Pending), args[0])
		assert.Equal(t, "BR-01", args[2])
		assert.Equal(t, "%ORD-2%", args[6])
	})

	t.Run("with_methods_do_not_mutate_the_receiver", func(t *testing.T) {
		base := NewOrderFilter()
		_ = base.WithStatus(order.Hold).WithBranch("BR-01")

		conds, _ := base.compile()
		assert.Empty(t, conds)
	})
}

func TestOrderFilter_Validate(t *testing.T) {
	t.Run("inverted_date_range_is_rejected", func(t *testing.T) {
		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, -1, 0)

		err := NewOrderFilter().WithPlacedBetween(&from, &to).validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown_status_is_rejected", func(t *testing.T) {
		err := NewOrderFilter().WithStatus(order.Status(99)).validate()

		require.Error(t, err)
	})

	t.Run("invalid_retailer_is_rejected", func(t *testing.T) {
		err := NewOrderFilter().WithRetailer(kernel.UUID{}).validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestScopePredicate(t *testing.T) {
	t.Run("unrestricted_compiles_to_nothing", func(t *testing.T) {
		cond, args := scopePredicate(kernel.NewUnrestrictedScope(), "o.branch_code")

		assert.Empty(t, cond)
		assert.Empty(t, args)
	})

	t.Run("branch_scope_pins_the_column", func(t *testing.T) {
		scope, err := kernel.NewBranchScope("BR-01")
		require.NoError(t, err)

		cond, args := scopePredicate(scope, "o.branch_code")

		assert.Equal(t, "o.branch_code = ?", cond)
		assert.Equal(t, []any{"BR-01"}, args)
	})

	t.Run("company_scope_narrows_through_the_branch_directory", func(t *testing.T) {
		companyID := kernel.NewUUID()
		scope, err := kernel.NewCompanyScope(companyID)
		require.NoError(t, err)

		cond, args := scopePredicate(scope, "branch_code")

		assert.Equal(t, "branch_code IN (SELECT code FROM branches WHERE company_id = ?)", cond)
		require.Len(t, args, 1)
		assert.Equal(t, companyID.Bytes(), args[0])
	})
}
