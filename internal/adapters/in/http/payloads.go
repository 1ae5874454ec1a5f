package http

import (
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/services"
)

// Request bodies.

type GeoPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type OrderItemPayload struct {
	PartID             string  `json:"part_id"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unit_price"`
	BasicDiscount      float64 `json:"basic_discount"`
	SchemeDiscount     float64 `json:"scheme_discount"`
	AdditionalDiscount float64 `json:"additional_discount"`
	Urgent             bool    `json:"urgent"`
}

type CreateOrderRequest struct {
	RetailerID string             `json:"retailer_id"`
	BranchCode string             `json:"branch_code,omitempty"`
	Urgent     bool               `json:"urgent"`
	PONumber   string             `json:"po_number,omitempty"`
	PODate     *time.Time         `json:"po_date,omitempty"`
	Remark     string             `json:"remark,omitempty"`
	Geo        *GeoPayload        `json:"geo,omitempty"`
	Items      []OrderItemPayload `json:"items"`
}

type TransitionOrderRequest struct {
	Status          string `json:"status"`
	Note            string `json:"note,omitempty"`
	ExpectedVersion int    `json:"expected_version,omitempty"`
}

type CreateInventoryRecordRequest struct {
	BranchCode   string `json:"branch_code"`
	PartID       string `json:"part_id"`
	BucketA      int    `json:"bucket_a"`
	BucketB      int    `json:"bucket_b"`
	BucketC      int    `json:"bucket_c"`
	MaxQuantity  int    `json:"max_quantity"`
	RackLocation string `json:"rack_location"`
}

type SetStockBucketsRequest struct {
	BucketA int    `json:"bucket_a"`
	BucketB int    `json:"bucket_b"`
	BucketC int    `json:"bucket_c"`
	Note    string `json:"note,omitempty"`
}

type SetRackLocationRequest struct {
	RackLocation string `json:"rack_location"`
}

type StockMovementRequest struct {
	Note string `json:"note,omitempty"`
}

// Response bodies. Read models carry domain value objects; these payloads
// flatten them to JSON-friendly primitives.

type CreatedOrderItemPayload struct {
	Seq       int     `json:"seq"`
	PartID    string  `json:"part_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Amount    float64 `json:"amount"`
	Urgent    bool    `json:"urgent"`
}

type CreateOrderResponse struct {
	OrderID       string                    `json:"order_id"`
	Code          string                    `json:"code"`
	RetailerID    string                    `json:"retailer_id"`
	RetailerName  string                    `json:"retailer_name"`
	RetailerCity  string                    `json:"retailer_city,omitempty"`
	RetailerPhone string                    `json:"retailer_phone,omitempty"`
	BranchCode    string                    `json:"branch_code"`
	Status        string                    `json:"status"`
	Urgent        bool                      `json:"urgent"`
	PONumber      string                    `json:"po_number,omitempty"`
	PODate        *time.Time                `json:"po_date,omitempty"`
	Remark        string                    `json:"remark,omitempty"`
	PlacedAt      time.Time                 `json:"placed_at"`
	Version       int                       `json:"version"`
	TotalAmount   float64                   `json:"total_amount"`
	Items         []CreatedOrderItemPayload `json:"items"`
}

func toCreateOrderResponse(result commands.CreateOrderResult) CreateOrderResponse {
	items := make([]CreatedOrderItemPayload, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, CreatedOrderItemPayload{
			Seq:       item.Seq,
			PartID:    item.PartID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
			Urgent:    item.Urgent,
		})
	}

	return CreateOrderResponse{
		OrderID:       result.OrderID.String(),
		Code:          result.Code.String(),
		RetailerID:    result.RetailerID.String(),
		RetailerName:  result.RetailerName,
		RetailerCity:  result.RetailerCity,
		RetailerPhone: result.RetailerPhone,
		BranchCode:    result.BranchCode,
		Status:        result.Status.String(),
		Urgent:        result.Urgent,
		PONumber:      result.PONumber,
		PODate:        result.PODate,
		Remark:        result.Remark,
		PlacedAt:      result.PlacedAt,
		Version:       result.Version,
		TotalAmount:   result.TotalAmount,
		Items:         items,
	}
}

type OrderSummaryPayload struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	RetailerID  string     `json:"retailer_id"`
	BranchCode  string     `json:"branch_code"`
	Status      string     `json:"status"`
	Urgent      bool       `json:"urgent"`
	PONumber    string     `json:"po_number,omitempty"`
	PODate      *time.Time `json:"po_date,omitempty"`
	PlacedAt    time.Time  `json:"placed_at"`
	ItemCount   int        `json:"item_count"`
	TotalAmount float64    `json:"total_amount"`
	Version     int        `json:"version"`
}

type OrderItemViewPayload struct {
	Seq                int     `json:"seq"`
	PartID             string  `json:"part_id"`
	Quantity           int     `json:"quantity"`
	DispatchedQuantity int     `json:"dispatched_quantity"`
	UnitPrice          float64 `json:"unit_price"`
	BasicDiscount      float64 `json:"basic_discount"`
	SchemeDiscount     float64 `json:"scheme_discount"`
	AdditionalDiscount float64 `json:"additional_discount"`
	Amount             float64 `json:"amount"`
	Urgent             bool    `json:"urgent"`
	Status             string  `json:"status"`
}

type StatusHistoryEntryPayload struct {
	ID             string    `json:"id"`
	PreviousStatus *string   `json:"previous_status"`
	Status         string    `json:"status"`
	ActorID        string    `json:"actor_id"`
	ActorName      string    `json:"actor_name"`
	ActorRole      string    `json:"actor_role"`
	Note           string    `json:"note,omitempty"`
	ChangedAt      time.Time `json:"changed_at"`
	Source         string    `json:"source,omitempty"`
}

type ItemAvailabilityPayload struct {
	Seq             int    `json:"seq"`
	PartID          string `json:"part_id"`
	OrderedQuantity int    `json:"ordered_quantity"`
	AvailableStock  int    `json:"available_stock"`
	RackLocation    string `json:"rack_location,omitempty"`
	Status          string `json:"status"`
}

type AvailabilityPayload struct {
	Items             []ItemAvailabilityPayload `json:"items"`
	Available         int                       `json:"available"`
	InsufficientStock int                       `json:"insufficient_stock"`
	OutOfStock        int                       `json:"out_of_stock"`
	NotAvailable      int                       `json:"not_available"`
	CanFulfill        bool                      `json:"can_fulfill"`
}

type OrderDetailPayload struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	RetailerID string     `json:"retailer_id"`
	BranchCode string     `json:"branch_code"`
	Status     string     `json:"status"`
	Urgent     bool       `json:"urgent"`
	PONumber   string     `json:"po_number,omitempty"`
	PODate     *time.Time `json:"po_date,omitempty"`
	Remark     string     `json:"remark,omitempty"`
	PlacedBy   string     `json:"placed_by"`
	PlacedAt   time.Time  `json:"placed_at"`
	Synced     bool       `json:"synced"`
	Version    int        `json:"version"`
	UpdatedAt  time.Time  `json:"updated_at"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	PickedAt    *time.Time `json:"picked_at,omitempty"`
	PackedAt    *time.Time `json:"packed_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	Items        []OrderItemViewPayload      `json:"items"`
	History      []StatusHistoryEntryPayload `json:"history"`
	Availability AvailabilityPayload         `json:"availability"`
}

type StatusStatisticPayload struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type InventoryViewPayload struct {
	BranchCode      string     `json:"branch_code"`
	PartID          string     `json:"part_id"`
	BucketA         int        `json:"bucket_a"`
	BucketB         int        `json:"bucket_b"`
	BucketC         int        `json:"bucket_c"`
	TotalStock      int        `json:"total_stock"`
	MaxQuantity     int        `json:"max_quantity"`
	StockPercentage float64    `json:"stock_percentage"`
	StockLevel      string     `json:"stock_level"`
	RackLocation    string     `json:"rack_location"`
	Note            string     `json:"note,omitempty"`
	LastSaleAt      *time.Time `json:"last_sale_at,omitempty"`
	LastPurchaseAt  *time.Time `json:"last_purchase_at,omitempty"`
	SyncedAt        time.Time  `json:"synced_at"`
}

type LowStockAlertPayload struct {
	BranchCode      string  `json:"branch_code"`
	PartID          string  `json:"part_id"`
	TotalStock      int     `json:"total_stock"`
	MaxQuantity     int     `json:"max_quantity"`
	StockPercentage float64 `json:"stock_percentage"`
	Urgency         string  `json:"urgency"`
	RackLocation    string  `json:"rack_location"`
}

func toOrderSummaryPayloads(summaries []queries.OrderSummaryResponse) []OrderSummaryPayload {
	payloads := make([]OrderSummaryPayload, len(summaries))
	for i, summary := range summaries {
		payloads[i] = OrderSummaryPayload{
			ID:          summary.ID.String(),
			Code:        summary.Code,
			RetailerID:  summary.RetailerID.String(),
			BranchCode:  summary.BranchCode,
			Status:      summary.Status,
			Urgent:      summary.Urgent,
			PONumber:    summary.PONumber,
			PODate:      summary.PODate,
			PlacedAt:    summary.PlacedAt,
			ItemCount:   summary.ItemCount,
			TotalAmount: summary.TotalAmount,
			Version:     summary.Version,
		}
	}
	return payloads
}

func toHistoryPayloads(entries []queries.StatusHistoryEntryResponse) []StatusHistoryEntryPayload {
	payloads := make([]StatusHistoryEntryPayload, len(entries))
	for i, entry := range entries {
		payloads[i] = StatusHistoryEntryPayload{
			ID:             entry.ID.String(),
			PreviousStatus: entry.PreviousStatus,
			Status:         entry.Status,
			ActorID:        entry.ActorID.String(),
			ActorName:      entry.ActorName,
			ActorRole:      entry.ActorRole,
			Note:           entry.Note,
			ChangedAt:      entry.ChangedAt,
			Source:         entry.Source,
		}
	}
	return payloads
}

func toAvailabilityPayload(summary services.AvailabilitySummary) AvailabilityPayload {
	items := make([]ItemAvailabilityPayload, len(summary.Items))
	for i, item := range summary.Items {
		items[i] = ItemAvailabilityPayload{
			Seq:             item.Seq,
			PartID:          item.PartID.String(),
			OrderedQuantity: item.OrderedQuantity,
			AvailableStock:  item.AvailableStock,
			RackLocation:    item.RackLocation,
			Status:          string(item.Status),
		}
	}
	return AvailabilityPayload{
		Items:             items,
		Available:         summary.Available,
		InsufficientStock: summary.InsufficientStock,
		OutOfStock:        summary.OutOfStock,
		NotAvailable:      summary.NotAvailable,
		CanFulfill:        summary.CanFulfill,
	}
}

func toOrderDetailPayload(detail queries.OrderDetailResponse) OrderDetailPayload {
	items := make([]OrderItemViewPayload, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItemViewPayload{
			Seq:                item.Seq,
			PartID:             item.PartID.String(),
			Quantity:           item.Quantity,
			DispatchedQuantity: item.DispatchedQuantity,
			UnitPrice:          item.UnitPrice,
			BasicDiscount:      item.BasicDiscount,
			SchemeDiscount:     item.SchemeDiscount,
			AdditionalDiscount: item.AdditionalDiscount,
			Amount:             item.Amount,
			Urgent:             item.Urgent,
			Status:             item.Status,
		}
	}

	return OrderDetailPayload{
		ID:           detail.ID.String(),
		Code:         detail.Code,
		RetailerID:   detail.RetailerID.String(),
		BranchCode:   detail.BranchCode,
		Status:       detail.Status,
		Urgent:       detail.Urgent,
		PONumber:     detail.PONumber,
		PODate:       detail.PODate,
		Remark:       detail.Remark,
		PlacedBy:     detail.PlacedBy.String(),
		PlacedAt:     detail.PlacedAt,
		Synced:       detail.Synced,
		Version:      detail.Version,
		UpdatedAt:    detail.UpdatedAt,
		ConfirmedAt:  detail.ConfirmedAt,
		PickedAt:     detail.PickedAt,
		PackedAt:     detail.PackedAt,
		DeliveredAt:  detail.DeliveredAt,
		Items:        items,
		History:      toHistoryPayloads(detail.History),
		Availability: toAvailabilityPayload(detail.Availability),
	}
}

func toInventoryViewPayloads(views []queries.InventoryViewResponse) []InventoryViewPayload {
	payloads := make([]InventoryViewPayload, len(views))
	for i, view := range views {
		payloads[i] = InventoryViewPayload{
			BranchCode:      view.BranchCode,
			PartID:          view.PartID.String(),
			BucketA:         view.BucketA,
			BucketB:         view.BucketB,
			BucketC:         view.BucketC,
			TotalStock:      view.TotalStock,
			MaxQuantity:     view.MaxQuantity,
			StockPercentage: view.StockPercentage,
			StockLevel:      string(view.StockLevel),
			RackLocation:    view.RackLocation,
			Note:            view.Note,
			LastSaleAt:      view.LastSaleAt,
			LastPurchaseAt:  view.LastPurchaseAt,
			SyncedAt:        view.SyncedAt,
		}
	}
	return payloads
}

func toLowStockPayloads(alerts []queries.LowStockAlertResponse) []LowStockAlertPayload {
	payloads := make([]LowStockAlertPayload, len(alerts))
	for i, alert := range alerts {
		payloads[i] = LowStockAlertPayload{
			BranchCode:      alert.BranchCode,
			PartID:          alert.PartID.String(),
			TotalStock:      alert.TotalStock,
			MaxQuantity:     alert.MaxQuantity,
			StockPercentage: alert.StockPercentage,
			Urgency:         string(alert.Urgency),
			RackLocation:    alert.RackLocation,
		}
	}
	return payloads
}

func toItemInputs(payloads []OrderItemPayload) ([]commands.OrderItemInput, error) {
	inputs := make([]commands.OrderItemInput, len(payloads))
	for i, payload := range payloads {
		partID, err := parseUUIDField(payload.PartID, "part id")
		if err != nil {
			return nil, err
		}
		inputs[i] = commands.OrderItemInput{
			PartID:             partID,
			Quantity:           payload.Quantity,
			UnitPrice:          payload.UnitPrice,
			BasicDiscount:      payload.BasicDiscount,
			SchemeDiscount:     payload.SchemeDiscount,
			AdditionalDiscount: payload.AdditionalDiscount,
			Urgent:             payload.Urgent,
		}
	}
	return inputs, nil
}
