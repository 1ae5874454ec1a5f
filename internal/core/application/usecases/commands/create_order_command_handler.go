package commands

import (
	"context"
	"time"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
)

// CreatedOrderItem reports one persisted line item of a freshly created order.
type CreatedOrderItem struct {
	Seq       int
	PartID    kernel.UUID
	Quantity  int
	UnitPrice float64
	Amount    float64
	Urgent    bool
}

// CreateOrderResult reports the created order header enriched with the
// retailer's display fields.
type CreateOrderResult struct {
	OrderID       kernel.UUID
	Code          kernel.Code
	RetailerID    kernel.UUID
	RetailerName  string
	RetailerCity  string
	RetailerPhone string
	BranchCode    string
	Status        order.Status
	Urgent        bool
	PONumber      string
	PODate        *time.Time
	Remark        string
	PlacedAt      time.Time
	Version       int
	TotalAmount   float64
	Items         []CreatedOrderItem
}

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The whole order — header, all line items with contiguous sequence numbers,
// and the initial audit row — is persisted as one atomic unit. A failure on
// any row rolls back everything; no partial order is ever observable.
type CreateOrderCommandHandler struct {
	uowFactory        OrderUoWFactory
	branchDirectory   ports.BranchDirectory
	retailerDirectory ports.RetailerDirectory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	branchDirectory ports.BranchDirectory,
	retailerDirectory ports.RetailerDirectory,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:        uowFactory,
		branchDirectory:   branchDirectory,
		retailerDirectory: retailerDirectory,
	}
}

// Handle processes the order creation command.
//
// All domain validation and directory lookups run before the transaction
// begins, so a rejected command has zero side effects. Sequence numbers
// follow input order, 1..N.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	if err := checkBranchAccess(ctx, cmd.Actor(), cmd.BranchCode(), h.branchDirectory); err != nil {
		return CreateOrderResult{}, err
	}

	retailer, err := h.retailerDirectory.DisplayInfo(ctx, cmd.RetailerID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	items := make([]*order.LineItem, 0, len(cmd.Items()))
	for i, input := range cmd.Items() {
		item, err := order.NewLineItem(
			i+1,
			input.PartID,
			input.Quantity,
			input.UnitPrice,
			input.BasicDiscount,
			input.SchemeDiscount,
			input.AdditionalDiscount,
			input.Urgent,
		)
		if err != nil {
			return CreateOrderResult{}, err
		}
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewCode(),
		cmd.RetailerID(),
		cmd.BranchCode(),
		cmd.Actor(),
		cmd.Urgent(),
		cmd.PONumber(),
		cmd.PODate(),
		cmd.Remark(),
		cmd.Geo(),
		items,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	entry, err := order.NewCreationHistoryEntry(aggregate, cmd.Actor(), cmd.Source())
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.StatusHistoryRepository().Append(ctx, entry); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return createdOrderResult(aggregate, retailer), nil
}

func createdOrderResult(aggregate *order.Order, retailer ports.RetailerInfo) CreateOrderResult {
	createdItems := make([]CreatedOrderItem, 0, len(aggregate.Items()))
	var total float64
	for _, item := range aggregate.Items() {
		createdItems = append(createdItems, CreatedOrderItem{
			Seq:       item.Seq(),
			PartID:    item.PartID(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
			Amount:    item.Amount(),
			Urgent:    item.Urgent(),
		})
		total += item.Amount()
	}

	return CreateOrderResult{
		OrderID:       aggregate.ID(),
		Code:          aggregate.Code(),
		RetailerID:    aggregate.RetailerID(),
		RetailerName:  retailer.Name,
		RetailerCity:  retailer.City,
		RetailerPhone: retailer.Phone,
		BranchCode:    aggregate.BranchCode(),
		Status:        aggregate.Status(),
		Urgent:        aggregate.Urgent(),
		PONumber:      aggregate.PONumber(),
		PODate:        aggregate.PODate(),
		Remark:        aggregate.Remark(),
		PlacedAt:      aggregate.PlacedAt(),
		Version:       aggregate.Version(),
		TotalAmount:   total,
		Items:         createdItems,
	}
}
