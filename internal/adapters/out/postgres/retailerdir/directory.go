// Package retailerdir reads the retailer directory owned by the external
// administration module. This module never writes these rows; the DTO exists
// so migrations and tests can create the table.
package retailerdir

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RetailerDTO is the database representation of one retailer.
type RetailerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	City  string
	Phone string
}

// TableName overrides GORM's default naming to use "retailers".
func (RetailerDTO) TableName() string {
	return "retailers"
}

// GormRetailerDirectory implements RetailerDirectory over the retailers table.
type GormRetailerDirectory struct {
	db *gorm.DB
}

// NewGormRetailerDirectory creates a read-only retailer directory.
func NewGormRetailerDirectory(db *gorm.DB) *GormRetailerDirectory {
	return &GormRetailerDirectory{db: db}
}

// DisplayInfo returns the display fields of a retailer.
func (d *GormRetailerDirectory) DisplayInfo(ctx context.Context, retailerID kernel.UUID) (ports.RetailerInfo, error) {
	if err := retailerID.Validate(); err != nil {
		return ports.RetailerInfo{}, err
	}

	var dto RetailerDTO
	err := d.db.WithContext(ctx).First(&dto, "id = ?", retailerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.RetailerInfo{}, errs.NewObjectNotFoundError("retailer", retailerID.String())
		}
		return ports.RetailerInfo{}, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.RetailerInfo{}, err
	}

	return ports.RetailerInfo{
		ID:    id,
		Name:  dto.Name,
		City:  dto.City,
		Phone: dto.Phone,
	}, nil
}
