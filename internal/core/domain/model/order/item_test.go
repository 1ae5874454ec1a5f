package order_test

import (
	"testing"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAmount(t *testing.T) {
	tests := []struct {
		name                      string
		price                     float64
		quantity                  int
		basic, scheme, additional float64
		want                      float64
	}{
		// discounts sum additively: 5+3+2 = 10% off 12990
		{"catalog example", 1299, 10, 5, 3, 2, 11691},
		{"no discounts", 100, 3, 0, 0, 0, 300},
		{"full discount", 50, 4, 100, 0, 0, 0},
		{"rounding up", 99.99, 1, 0, 0, 0, 100},
		{"additive not compounded", 1000, 1, 10, 10, 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.ComputeAmount(tt.price, tt.quantity, tt.basic, tt.scheme, tt.additional)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNewLineItem(t *testing.T) {
	partID := kernel.NewUUID()

	t.Run("valid_item_computes_amount", func(t *testing.T) {
		item, err := order.NewLineItem(1, partID, 10, 1299, 5, 3, 2, false)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, 1, item.Seq())
		assert.Equal(t, 10, item.Quantity())
		assert.Equal(t, 0, item.DispatchedQuantity())
		assert.InDelta(t, 11691, item.Amount(), 0.0001)
		assert.Equal(t, order.New, item.Status())
	})

	t.Run("zero_quantity_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(1, partID, 0, 10, 0, 0, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative_price_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(1, partID, 1, -1, 0, 0, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("discount_out_of_range_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(1, partID, 1, 10, 101, 0, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewLineItem(1, partID, 1, 10, 0, -5, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_seq_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(0, partID, 1, 10, 0, 0, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid_part_id_is_rejected", func(t *testing.T) {
		_, err := order.NewLineItem(1, kernel.UUID{}, 1, 10, 0, 0, 0, false)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestLineItem_SetDispatchedQuantity(t *testing.T) {
	item, err := order.NewLineItem(1, kernel.NewUUID(), 10, 100, 0, 0, 0, false)
	require.NoError(t, err)

	require.NoError(t, item.SetDispatchedQuantity(7))
	assert.Equal(t, 7, item.DispatchedQuantity())

	require.ErrorIs(t, item.SetDispatchedQuantity(11), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, item.SetDispatchedQuantity(-1), errs.ErrValueIsOutOfRange)
	assert.Equal(t, 7, item.DispatchedQuantity())
}

func TestLineItem_Validate(t *testing.T) {
	var item order.LineItem
	require.ErrorIs(t, item.Validate(), order.ErrLineItemIsNotConstructed)
}
