// Package orderrepo persists order aggregates: the header row plus its line
// items mapped to relational tables, with conversion between domain entities
// and database representations.
package orderrepo

import (
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of the order header.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code       string    `gorm:"uniqueIndex"`
	RetailerID uuid.UUID `gorm:"type:uuid;index"`
	BranchCode string    `gorm:"index"`
	PlacedBy   uuid.UUID `gorm:"type:uuid"`
	PlacedAt   time.Time
	Status     int `gorm:"index"`
	Urgent     bool
	PONumber   string     `gorm:"column:po_number"`
	PODate     *time.Time `gorm:"column:po_date"`
	Remark     string
	GeoLat     *float64
	GeoLng     *float64
	Synced     bool
	Version    int
	UpdatedAt  time.Time

	ConfirmedBy *uuid.UUID `gorm:"type:uuid"`
	ConfirmedAt *time.Time
	PickedBy    *uuid.UUID `gorm:"type:uuid"`
	PickedAt    *time.Time
	PackedBy    *uuid.UUID `gorm:"type:uuid"`
	PackedAt    *time.Time
	DeliveredBy *uuid.UUID `gorm:"type:uuid"`
	DeliveredAt *time.Time

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of one line item.
// The primary key is (order_id, seq); items are immutable after creation
// except for the dispatched quantity.
type OrderItemDTO struct {
	OrderID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq                int       `gorm:"primaryKey"`
	PartID             uuid.UUID `gorm:"type:uuid;index"`
	Quantity           int
	DispatchedQuantity int
	UnitPrice          float64
	BasicDiscount      float64
	SchemeDiscount     float64
	AdditionalDiscount float64
	Amount             float64
	Urgent             bool
	Status             int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		Code:       aggregate.Code().String(),
		RetailerID: aggregate.RetailerID().Bytes(),
		BranchCode: aggregate.BranchCode(),
		PlacedBy:   aggregate.PlacedBy().Bytes(),
		PlacedAt:   aggregate.PlacedAt(),
		Status:     int(aggregate.Status()),
		Urgent:     aggregate.Urgent(),
		PONumber:   aggregate.PONumber(),
		PODate:     aggregate.PODate(),
		Remark:     aggregate.Remark(),
		Synced:     aggregate.Synced(),
		Version:    aggregate.Version(),
		UpdatedAt:  aggregate.UpdatedAt(),

		ConfirmedBy: uuidPtr(aggregate.ConfirmedBy()),
		ConfirmedAt: aggregate.ConfirmedAt(),
		PickedBy:    uuidPtr(aggregate.PickedBy()),
		PickedAt:    aggregate.PickedAt(),
		PackedBy:    uuidPtr(aggregate.PackedBy()),
		PackedAt:    aggregate.PackedAt(),
		DeliveredBy: uuidPtr(aggregate.DeliveredBy()),
		DeliveredAt: aggregate.DeliveredAt(),
	}

	if geo := aggregate.Geo(); geo != nil {
		lat, lng := geo.Latitude, geo.Longitude
		dto.GeoLat, dto.GeoLng = &lat, &lng
	}

	dto.Items = make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:            dto.ID,
			Seq:                item.Seq(),
			PartID:             item.PartID().Bytes(),
			Quantity:           item.Quantity(),
			DispatchedQuantity: item.DispatchedQuantity(),
			UnitPrice:          item.UnitPrice(),
			BasicDiscount:      item.BasicDiscount(),
			SchemeDiscount:     item.SchemeDiscount(),
			AdditionalDiscount: item.AdditionalDiscount(),
			Amount:             item.Amount(),
			Urgent:             item.Urgent(),
			Status:             int(item.Status()),
		})
	}

	return dto
}

// toDomain converts a database DTO back into an order aggregate.
// The stored amount is authoritative; nothing is recomputed on the way in.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.CodeFromString(dto.Code)
	if err != nil {
		return nil, err
	}

	retailerID, err := kernel.UUIDFromBytes(dto.RetailerID[:])
	if err != nil {
		return nil, err
	}

	placedBy, err := kernel.UUIDFromBytes(dto.PlacedBy[:])
	if err != nil {
		return nil, err
	}

	var geo *order.Geo
	if dto.GeoLat != nil && dto.GeoLng != nil {
		geo = &order.Geo{Latitude: *dto.GeoLat, Longitude: *dto.GeoLng}
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		partID, itemErr := kernel.UUIDFromBytes(itemDTO.PartID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(
			itemDTO.Seq,
			partID,
			itemDTO.Quantity,
			itemDTO.DispatchedQuantity,
			itemDTO.UnitPrice,
			itemDTO.BasicDiscount,
			itemDTO.SchemeDiscount,
			itemDTO.AdditionalDiscount,
			itemDTO.Amount,
			itemDTO.Urgent,
			order.Status(itemDTO.Status),
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	aggregate, err := order.RestoreOrder(
		id,
		code,
		retailerID,
		dto.BranchCode,
		placedBy,
		dto.PlacedAt,
		order.Status(dto.Status),
		dto.Urgent,
		dto.PONumber,
		dto.PODate,
		dto.Remark,
		geo,
		dto.Synced,
		dto.Version,
		dto.UpdatedAt,
		items,
	)
	if err != nil {
		return nil, err
	}

	aggregate.RestoreStamps(
		kernelUUIDPtr(dto.ConfirmedBy), dto.ConfirmedAt,
		kernelUUIDPtr(dto.PickedBy), dto.PickedAt,
		kernelUUIDPtr(dto.PackedBy), dto.PackedAt,
		kernelUUIDPtr(dto.DeliveredBy), dto.DeliveredAt,
	)

	return aggregate, nil
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(raw *uuid.UUID) *kernel.UUID {
	if raw == nil {
		return nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil
	}
	return &id
}
