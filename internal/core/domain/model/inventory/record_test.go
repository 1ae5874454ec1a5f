package inventory_test

import (
	"testing"
	"time"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockPercentage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		max   int
		want  float64
	}{
		{"half full", 50, 100, 50},
		{"empty", 0, 100, 0},
		{"over threshold", 120, 100, 120},
		{"zero max guards divide by zero", 50, 0, 0},
		{"negative max guards too", 50, -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, inventory.StockPercentage(tt.total, tt.max), 0.0001)
		})
	}
}

func TestClassifyStock(t *testing.T) {
	tests := []struct {
		percentage float64
		want       inventory.StockLevel
	}{
		{0, inventory.StockLevelCritical},
		{19.99, inventory.StockLevelCritical},
		// boundary: exactly 20 is low, not critical
		{20, inventory.StockLevelLow},
		{39.99, inventory.StockLevelLow},
		{40, inventory.StockLevelMedium},
		{69.99, inventory.StockLevelMedium},
		{70, inventory.StockLevelGood},
		{100, inventory.StockLevelGood},
		{150, inventory.StockLevelGood},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, inventory.ClassifyStock(tt.percentage), "percentage %.2f", tt.percentage)
	}
}

func TestClassifyStock_BoundaryFixture(t *testing.T) {
	// {A=5,B=5,C=0,Max=50} -> 20% -> low
	record, err := inventory.NewRecord("BR-01", kernel.NewUUID(), 5, 5, 0, 50, "R1-A")
	require.NoError(t, err)

	assert.InDelta(t, 20, record.StockPercentage(), 0.0001)
	assert.Equal(t, inventory.StockLevelLow, record.StockLevel())
}

func TestClassifyAlert(t *testing.T) {
	assert.Equal(t, inventory.AlertCritical, inventory.ClassifyAlert(0))
	assert.Equal(t, inventory.AlertCritical, inventory.ClassifyAlert(9.99))
	assert.Equal(t, inventory.AlertLow, inventory.ClassifyAlert(10))
	assert.Equal(t, inventory.AlertLow, inventory.ClassifyAlert(19.99))
}

func TestNewRecord(t *testing.T) {
	partID := kernel.NewUUID()

	t.Run("valid_record", func(t *testing.T) {
		record, err := inventory.NewRecord("BR-01", partID, 50, 30, 20, 100, "R4-B2")

		require.NoError(t, err)
		require.NoError(t, record.Validate())
		assert.Equal(t, 100, record.TotalStock())
		assert.Equal(t, inventory.StockLevelGood, record.StockLevel())
		assert.WithinDuration(t, time.Now().UTC(), record.SyncedAt(), time.Minute)
	})

	t.Run("negative_bucket_is_rejected", func(t *testing.T) {
		_, err := inventory.NewRecord("BR-01", partID, -1, 0, 0, 100, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty_branch_is_rejected", func(t *testing.T) {
		_, err := inventory.NewRecord("", partID, 1, 0, 0, 100, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var record inventory.Record
		require.ErrorIs(t, record.Validate(), inventory.ErrRecordIsNotConstructed)
	})
}

func TestRecord_Mutations(t *testing.T) {
	newRecord := func(t *testing.T) *inventory.Record {
		t.Helper()
		record, err := inventory.NewRecord("BR-01", kernel.NewUUID(), 10, 10, 10, 100, "R1-A")
		require.NoError(t, err)
		return record
	}

	t.Run("record_sale_stamps_timestamp_without_touching_buckets", func(t *testing.T) {
		record := newRecord(t)
		before := record.TotalStock()

		record.RecordSale("sold to counter customer")

		require.NotNil(t, record.LastSaleAt())
		assert.Equal(t, before, record.TotalStock())
		assert.Equal(t, "sold to counter customer", record.Note())
		assert.Nil(t, record.LastPurchaseAt())
	})

	t.Run("record_purchase_stamps_timestamp", func(t *testing.T) {
		record := newRecord(t)

		record.RecordPurchase("replenishment GRN 5521")

		require.NotNil(t, record.LastPurchaseAt())
		assert.Nil(t, record.LastSaleAt())
	})

	t.Run("set_buckets_overwrites_all_three", func(t *testing.T) {
		record := newRecord(t)

		require.NoError(t, record.SetBuckets(5, 3, 0, "cycle count"))

		assert.Equal(t, 5, record.BucketA())
		assert.Equal(t, 3, record.BucketB())
		assert.Equal(t, 0, record.BucketC())
		assert.Equal(t, 8, record.TotalStock())
	})

	t.Run("set_buckets_rejects_negative_values", func(t *testing.T) {
		record := newRecord(t)

		require.ErrorIs(t, record.SetBuckets(-1, 0, 0, ""), errs.ErrValueIsInvalid)
		assert.Equal(t, 30, record.TotalStock())
	})

	t.Run("set_rack_location_changes_only_rack", func(t *testing.T) {
		record := newRecord(t)

		require.NoError(t, record.SetRackLocation("R9-C4"))

		assert.Equal(t, "R9-C4", record.RackLocation())
		assert.Equal(t, 30, record.TotalStock())

		require.ErrorIs(t, record.SetRackLocation(""), errs.ErrValueIsRequired)
	})

	t.Run("every_mutation_advances_sync_marker", func(t *testing.T) {
		record := newRecord(t)
		initial := record.SyncedAt()

		time.Sleep(time.Millisecond)
		record.RecordSale("")

		assert.True(t, record.SyncedAt().After(initial))
	})
}
