package queries

import (
	"context"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/domain/services"
	"distribution/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler assembles the full read model of one order.
//
// Header, items and history are read directly; the availability block is
// computed by the domain evaluator against the branch's stock records, which
// are loaded through the inventory repository so legacy bucket parsing stays
// in one place.
type GetOrderDetailQueryHandler struct {
	db        *gorm.DB
	inventory ports.InventoryRepository
	evaluator services.AvailabilityEvaluator
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailQueryHandler(db *gorm.DB, inventory ports.InventoryRepository) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{
		db:        db,
		inventory: inventory,
		evaluator: services.NewAvailabilityEvaluator(),
	}
}

// Handle executes the detail query.
// An unknown order is NotFound; a known order outside the scope is AccessDenied.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	if err := requireVisibleOrder(ctx, h.db, query.Scope(), query.OrderID()); err != nil {
		return OrderDetailResponse{}, err
	}

	detail, err := h.fetchHeader(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	items, domainItems, err := h.fetchItems(ctx, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.Items = items

	detail.History, err = fetchStatusHistory(ctx, h.db, query.OrderID())
	if err != nil {
		return OrderDetailResponse{}, err
	}

	partIDs := make([]kernel.UUID, 0, len(domainItems))
	for _, item := range domainItems {
		partIDs = append(partIDs, item.PartID())
	}

	records, err := h.inventory.ListByParts(ctx, detail.BranchCode, partIDs)
	if err != nil {
		return OrderDetailResponse{}, err
	}

	detail.Availability = h.evaluator.Evaluate(domainItems, records)
	return detail, nil
}

func (h GetOrderDetailQueryHandler) fetchHeader(ctx context.Context, orderID kernel.UUID) (OrderDetailResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			retailer_id,
			branch_code,
			status,
			urgent,
			po_number,
			po_date,
			remark,
			placed_by,
			placed_at,
			synced,
			version,
			updated_at,
			confirmed_at,
			picked_at,
			packed_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	var (
		detail     OrderDetailResponse
		id         uuid.UUID
		retailerID uuid.UUID
		placedBy   uuid.UUID
		status     int
	)

	if err := row.Scan(
		&id,
		&detail.Code,
		&retailerID,
		&detail.BranchCode,
		&status,
		&detail.Urgent,
		&detail.PONumber,
		&detail.PODate,
		&detail.Remark,
		&placedBy,
		&detail.PlacedAt,
		&detail.Synced,
		&detail.Version,
		&detail.UpdatedAt,
		&detail.ConfirmedAt,
		&detail.PickedAt,
		&detail.PackedAt,
		&detail.DeliveredAt,
	); err != nil {
		return OrderDetailResponse{}, err
	}

	oID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.ID = oID

	rID, err := kernel.UUIDFromBytes(retailerID[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.RetailerID = rID

	pBy, err := kernel.UUIDFromBytes(placedBy[:])
	if err != nil {
		return OrderDetailResponse{}, err
	}
	detail.PlacedBy = pBy

	detail.Status = order.Status(status).String()
	return detail, nil
}

// fetchItems returns both the response rows and restored domain items; the
// latter feed the availability evaluator.
func (h GetOrderDetailQueryHandler) fetchItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderItemResponse, []*order.LineItem, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			part_id,
			quantity,
			dispatched_quantity,
			unit_price,
			basic_discount,
			scheme_discount,
			additional_discount,
			amount,
			urgent,
			status
		FROM order_items
		WHERE order_id = ?
		ORDER BY seq
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	responses := make([]OrderItemResponse, 0)
	domainItems := make([]*order.LineItem, 0)

	for rows.Next() {
		var (
			resp   OrderItemResponse
			partID uuid.UUID
			status int
		)

		if err = rows.Scan(
			&resp.Seq,
			&partID,
			&resp.Quantity,
			&resp.DispatchedQuantity,
			&resp.UnitPrice,
			&resp.BasicDiscount,
			&resp.SchemeDiscount,
			&resp.AdditionalDiscount,
			&resp.Amount,
			&resp.Urgent,
			&status,
		); err != nil {
			return nil, nil, err
		}

		pID, idErr := kernel.UUIDFromBytes(partID[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		resp.PartID = pID
		resp.Status = order.Status(status).String()

		item, itemErr := order.RestoreLineItem(
			resp.Seq,
			pID,
			resp.Quantity,
			resp.DispatchedQuantity,
			resp.UnitPrice,
			resp.BasicDiscount,
			resp.SchemeDiscount,
			resp.AdditionalDiscount,
			resp.Amount,
			resp.Urgent,
			order.Status(status),
		)
		if itemErr != nil {
			return nil, nil, itemErr
		}

		responses = append(responses, resp)
		domainItems = append(domainItems, item)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return responses, domainItems, nil
}
