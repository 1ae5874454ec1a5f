package inventoryrepo

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/inventory"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM stock-ledger repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the record for one branch+part pair.
func (r *GormInventoryRepository) Get(ctx context.Context, branchCode string, partID kernel.UUID) (*inventory.Record, error) {
	if branchCode == "" {
		return nil, errs.NewValueIsRequiredError("branch code")
	}
	if err := partID.Validate(); err != nil {
		return nil, err
	}

	var dto StockRecordDTO
	err := r.db.WithContext(ctx).
		First(&dto, "branch_code = ? AND part_id = ?", branchCode, partID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("stock record", branchCode+"/"+partID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByParts retrieves the records a branch holds for the given parts.
// Parts without a record are simply absent from the result.
func (r *GormInventoryRepository) ListByParts(ctx context.Context, branchCode string, partIDs []kernel.UUID) ([]*inventory.Record, error) {
	if branchCode == "" {
		return nil, errs.NewValueIsRequiredError("branch code")
	}
	if len(partIDs) == 0 {
		return []*inventory.Record{}, nil
	}

	raw := make([][]byte, 0, len(partIDs))
	for _, partID := range partIDs {
		if err := partID.Validate(); err != nil {
			return nil, err
		}
		b := partID.Bytes()
		raw = append(raw, b[:])
	}

	var dtos []StockRecordDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "branch_code = ? AND part_id IN ?", branchCode, raw).Error
	if err != nil {
		return nil, err
	}

	records := make([]*inventory.Record, 0, len(dtos))
	for _, dto := range dtos {
		record, recordErr := toDomain(dto)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return records, nil
}

// Add persists a new stock record. A duplicate (branch, part) key surfaces as
// the database's unique violation.
func (r *GormInventoryRepository) Add(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.PartID(), record)
	return nil
}

// Update persists a mutated stock record as a single-row update.
func (r *GormInventoryRepository) Update(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	result := r.db.WithContext(ctx).
		Model(&StockRecordDTO{}).
		Where("branch_code = ? AND part_id = ?", dto.BranchCode, dto.PartID).
		Select("bucket_a", "bucket_b", "bucket_c", "max_quantity", "rack_location",
			"note", "last_sale_at", "last_purchase_at", "synced_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("stock record", dto.BranchCode+"/"+record.PartID().String())
	}

	r.tracker.TrackAggregate(record.PartID(), record)
	return nil
}
