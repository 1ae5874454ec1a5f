// Package inventoryrepo persists the per-(branch, part) stock ledger.
//
// The stock tables are shared with a legacy system that stores bucket
// quantities as text. The DTO keeps the text columns as-is and converts at
// the mapping boundary: parse with trimming on the way in, format on the way
// out. Unparseable text surfaces as an invalid-value error instead of a
// silent zero.
package inventoryrepo

import (
	"time"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// StockRecordDTO is the database representation of one stock record.
// The primary key is (branch_code, part_id).
type StockRecordDTO struct {
	BranchCode     string    `gorm:"primaryKey"`
	PartID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	BucketA        string    `gorm:"type:text"`
	BucketB        string    `gorm:"type:text"`
	BucketC        string    `gorm:"type:text"`
	MaxQuantity    int
	RackLocation   string
	Note           string
	LastSaleAt     *time.Time
	LastPurchaseAt *time.Time
	SyncedAt       time.Time
}

// TableName overrides GORM's default naming to use "stock_records".
func (StockRecordDTO) TableName() string {
	return "stock_records"
}

func fromDomain(record *inventory.Record) StockRecordDTO {
	return StockRecordDTO{
		BranchCode:     record.BranchCode(),
		PartID:         record.PartID().Bytes(),
		BucketA:        inventory.FormatBucket(record.BucketA()),
		BucketB:        inventory.FormatBucket(record.BucketB()),
		BucketC:        inventory.FormatBucket(record.BucketC()),
		MaxQuantity:    record.MaxQuantity(),
		RackLocation:   record.RackLocation(),
		Note:           record.Note(),
		LastSaleAt:     record.LastSaleAt(),
		LastPurchaseAt: record.LastPurchaseAt(),
		SyncedAt:       record.SyncedAt(),
	}
}

func toDomain(dto StockRecordDTO) (*inventory.Record, error) {
	partID, err := kernel.UUIDFromBytes(dto.PartID[:])
	if err != nil {
		return nil, err
	}

	bucketA, err := inventory.ParseBucket(dto.BucketA)
	if err != nil {
		return nil, err
	}
	bucketB, err := inventory.ParseBucket(dto.BucketB)
	if err != nil {
		return nil, err
	}
	bucketC, err := inventory.ParseBucket(dto.BucketC)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreRecord(
		dto.BranchCode,
		partID,
		bucketA,
		bucketB,
		bucketC,
		dto.MaxQuantity,
		dto.RackLocation,
		dto.Note,
		dto.LastSaleAt,
		dto.LastPurchaseAt,
		dto.SyncedAt,
	)
}
