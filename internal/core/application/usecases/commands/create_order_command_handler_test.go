package commands_test

import (
	"errors"
	"testing"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/core/ports"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		branchActor(t, "BR-01"), retailerID, "", true, "PO-1001", nil, "rush order", nil,
		[]commands.OrderItemInput{
			{PartID: kernel.NewUUID(), Quantity: 10, UnitPrice: 1299, BasicDiscount: 5, SchemeDiscount: 3, AdditionalDiscount: 2},
			{PartID: kernel.NewUUID(), Quantity: 2, UnitPrice: 80},
		}, "10.0.0.5")
	require.NoError(t, err)

	var persisted *order.Order
	var appended *order.HistoryEntry

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("StatusHistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Append", mock.Anything, mock.AnythingOfType("*order.HistoryEntry")).
			Run(func(args mock.Arguments) { appended = args.Get(1).(*order.HistoryEntry) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)
	retailers := new(MockRetailerDirectory)
	retailers.On("DisplayInfo", ctx, retailerID).
		Return(ports.RetailerInfo{ID: retailerID, Name: "Sharma Auto Parts", City: "Pune", Phone: "+91-9800000001"}, nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.OrderID.IsEqual(persisted.ID()))
	assert.True(t, result.Code.IsEqual(persisted.Code()))

	// returned header mirrors the persisted aggregate
	assert.Equal(t, order.New, result.Status)
	assert.Equal(t, "BR-01", result.BranchCode)
	assert.True(t, result.RetailerID.IsEqual(retailerID))
	assert.True(t, result.Urgent)
	assert.Equal(t, "PO-1001", result.PONumber)
	assert.Equal(t, persisted.PlacedAt(), result.PlacedAt)
	require.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Items[0].Seq)
	assert.Equal(t, 10, result.Items[0].Quantity)
	assert.InDelta(t, 11691, result.Items[0].Amount, 0.0001)
	assert.InDelta(t, 11691+160, result.TotalAmount, 0.0001)

	// retailer display enrichment
	assert.Equal(t, "Sharma Auto Parts", result.RetailerName)
	assert.Equal(t, "Pune", result.RetailerCity)
	assert.Equal(t, "+91-9800000001", result.RetailerPhone)

	// header + items invariants
	assert.Equal(t, order.New, persisted.Status())
	require.Len(t, persisted.Items(), 2)
	assert.Equal(t, 1, persisted.Items()[0].Seq())
	assert.Equal(t, 2, persisted.Items()[1].Seq())
	assert.InDelta(t, 11691, persisted.Items()[0].Amount(), 0.0001)

	// creation audit row
	assert.Nil(t, appended.PreviousStatus())
	assert.Equal(t, order.New, appended.Status())
	assert.Equal(t, "10.0.0.5", appended.Source())

	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	retailers.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	dir := new(MockBranchDirectory)
	retailers := new(MockRetailerDirectory)

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
	retailers.AssertNotCalled(t, "DisplayInfo", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_InvalidItemRejectedBeforeTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		branchActor(t, "BR-01"), kernel.NewUUID(), "", false, "", nil, "", nil,
		[]commands.OrderItemInput{{PartID: kernel.NewUUID(), Quantity: 0, UnitPrice: 10}}, "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	dir := new(MockBranchDirectory)
	retailers := new(MockRetailerDirectory)
	retailers.On("DisplayInfo", mock.Anything, mock.Anything).
		Return(ports.RetailerInfo{Name: "Sharma Auto Parts"}, nil).Maybe()

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RollbackOnItemInsertFailure(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		branchActor(t, "BR-01"), kernel.NewUUID(), "", false, "", nil, "", nil, singleItem(), "")
	require.NoError(t, err)

	insertErr := errors.New("item insert failed")

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.Anything).Return(insertErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)
	retailers := new(MockRetailerDirectory)
	retailers.On("DisplayInfo", ctx, mock.Anything).
		Return(ports.RetailerInfo{Name: "Sharma Auto Parts"}, nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, insertErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CompanyActorOutsideCompanyDenied(t *testing.T) {
	ctx := t.Context()
	actorCompany := kernel.NewUUID()
	branchCompany := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(
		companyActor(t, actorCompany), kernel.NewUUID(), "BR-77", false, "", nil, "", nil, singleItem(), "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	dir := new(MockBranchDirectory)
	dir.On("CompanyOf", ctx, "BR-77").Return(branchCompany, nil).Once()
	retailers := new(MockRetailerDirectory)

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	factory.AssertNotCalled(t, "Create")
	retailers.AssertNotCalled(t, "DisplayInfo", mock.Anything, mock.Anything)
	dir.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownRetailerRejectedBeforeTransaction(t *testing.T) {
	ctx := t.Context()
	retailerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		branchActor(t, "BR-01"), retailerID, "", false, "", nil, "", nil, singleItem(), "")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	dir := new(MockBranchDirectory)
	retailers := new(MockRetailerDirectory)
	retailers.On("DisplayInfo", ctx, retailerID).
		Return(ports.RetailerInfo{}, errs.NewObjectNotFoundError("retailer", retailerID.String())).Once()

	h := commands.NewCreateOrderCommandHandler(factory, dir, retailers)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
	retailers.AssertExpectations(t)
}
