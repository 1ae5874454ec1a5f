// Package branchdir reads the branch directory owned by the external
// administration module. This module never writes these rows; the DTO exists
// so migrations and tests can create the table.
package branchdir

import (
	"context"
	"errors"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BranchDTO is the database representation of one branch.
type BranchDTO struct {
	Code      string    `gorm:"primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`
	Name      string
}

// TableName overrides GORM's default naming to use "branches".
func (BranchDTO) TableName() string {
	return "branches"
}

// GormBranchDirectory implements BranchDirectory over the branches table.
type GormBranchDirectory struct {
	db *gorm.DB
}

// NewGormBranchDirectory creates a read-only branch directory.
func NewGormBranchDirectory(db *gorm.DB) *GormBranchDirectory {
	return &GormBranchDirectory{db: db}
}

// CompanyOf returns the company a branch belongs to.
func (d *GormBranchDirectory) CompanyOf(ctx context.Context, branchCode string) (kernel.UUID, error) {
	if branchCode == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError("branch code")
	}

	var dto BranchDTO
	err := d.db.WithContext(ctx).First(&dto, "code = ?", branchCode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("branch", branchCode)
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.CompanyID[:])
}
