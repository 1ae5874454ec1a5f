// Package historyrepo persists the append-only status audit trail.
package historyrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusHistoryDTO is the database representation of one audit row.
// PreviousStatus is null on the creation row. Rows are insert-only.
type StatusHistoryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus *int
	Status         int
	ActorID        uuid.UUID `gorm:"type:uuid"`
	ActorName      string
	ActorRole      string
	Note           string
	ChangedAt      time.Time `gorm:"index"`
	Source         string
}

// TableName overrides GORM's default naming to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(entry *order.HistoryEntry) StatusHistoryDTO {
	var previous *int
	if p := entry.PreviousStatus(); p != nil {
		v := int(*p)
		previous = &v
	}

	return StatusHistoryDTO{
		ID:             entry.ID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		PreviousStatus: previous,
		Status:         int(entry.Status()),
		ActorID:        entry.ActorID().Bytes(),
		ActorName:      entry.ActorName(),
		ActorRole:      string(entry.ActorRole()),
		Note:           entry.Note(),
		ChangedAt:      entry.ChangedAt(),
		Source:         entry.Source(),
	}
}

func toDomain(dto StatusHistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		p := order.Status(*dto.PreviousStatus)
		previous = &p
	}

	return order.RestoreHistoryEntry(
		id,
		orderID,
		previous,
		order.Status(dto.Status),
		actorID,
		dto.ActorName,
		kernel.Role(dto.ActorRole),
		dto.Note,
		dto.ChangedAt,
		dto.Source,
	)
}
