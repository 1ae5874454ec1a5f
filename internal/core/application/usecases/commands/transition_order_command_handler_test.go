package commands_test

import (
	"testing"
	"time"

	"distribution/internal/core/application/usecases/commands"
	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/core/domain/model/order"
	"distribution/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedOrder(t *testing.T, branchCode string, status order.Status, version int) *order.Order {
	t.Helper()

	item, err := order.RestoreLineItem(1, kernel.NewUUID(), 5, 0, 120, 0, 0, 0, 600, false, status)
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewCode(), kernel.NewUUID(), branchCode,
		kernel.NewUUID(), now, status, false, "", nil, "", nil, false, version, now,
		[]*order.LineItem{item})
	require.NoError(t, err)
	return o
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, "BR-01", order.New, 1)
	actor := branchActor(t, "BR-01")

	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Pending, actor, "confirmed by counter", "mobile", 0)
	require.NoError(t, err)

	var appended *order.HistoryEntry

	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockStatusHistoryRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		orderRepo.On("UpdateHeader", mock.Anything, stored, 1).Return(nil).Once(),
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

	h := commands.NewTransitionOrderCommandHandler(factory, dir)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Pending, stored.Status())
	assert.Equal(t, 2, stored.Version())
	assert.Equal(t, "confirmed by counter", stored.Remark())

	require.NotNil(t, appended.PreviousStatus())
	assert.Equal(t, order.New, *appended.PreviousStatus())
	assert.Equal(t, order.Pending, appended.Status())
	assert.Equal(t, "confirmed by counter", appended.Note())
	assert.Equal(t, "mobile", appended.Source())

	orderRepo.AssertExpectations(t)
	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, "BR-01", order.Completed, 4)
	actor := branchActor(t, "BR-01")

	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Pending, actor, "", "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)

	h := commands.NewTransitionOrderCommandHandler(factory, dir)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Completed, stored.Status())
	assert.Equal(t, 4, stored.Version())
	orderRepo.AssertNotCalled(t, "UpdateHeader", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_StaleVersionPin(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, "BR-01", order.Pending, 5)
	actor := branchActor(t, "BR-01")

	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Processing, actor, "", "", 3)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)

	h := commands.NewTransitionOrderCommandHandler(factory, dir)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionConflict)
	assert.Equal(t, order.Pending, stored.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_AccessDenied(t *testing.T) {
	ctx := t.Context()
	stored := storedOrder(t, "BR-09", order.New, 1)
	actor := branchActor(t, "BR-01")

	cmd, err := commands.NewTransitionOrderCommand(stored.ID(), order.Cancelled, actor, "", "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)

	h := commands.NewTransitionOrderCommandHandler(factory, dir)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Cancelled, adminActor(t), "", "", 0)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("order id", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	dir := new(MockBranchDirectory)

	h := commands.NewTransitionOrderCommandHandler(factory, dir)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
