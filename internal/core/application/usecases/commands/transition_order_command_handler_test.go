package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/logistics"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func trackAOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()

	total, err := kernel.MoneyFromString("1200.00", kernel.CurrencyGBP)
	require.NoError(t, err)

	ord, err := order.RestoreOrder(kernel.NewUUID(), order.TrackA, state, total, nil, 0)
	require.NoError(t, err)

	return ord
}

func trackBOrder(t *testing.T, state order.State) *order.Order {
	t.Helper()

	total, err := kernel.MoneyFromString("4500.00", kernel.CurrencyAED)
	require.NoError(t, err)

	deadline := time.Now().Add(96 * time.Hour)
	ord, err := order.RestoreOrder(kernel.NewUUID(), order.TrackB, state, total, &deadline, 0)
	require.NoError(t, err)

	return ord
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := trackAOrder(t, order.StatePaid)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.StateMeasurementPending, "ops@atelier", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	logisticsRepo := new(MockLogisticsRepository)
	timelineRepo := new(MockTimelineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LogisticsRepository").Return(logisticsRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TimelineRepository").Return(timelineRepo).Once(),
		timelineRepo.On("Add", ctx, mock.AnythingOfType("*timeline.TransitionRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StateMeasurementPending, testOrder.State())
	orderRepo.AssertExpectations(t)
	timelineRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := trackAOrder(t, order.StatePaid)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.StatePatternGenerated, "ops@atelier", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	logisticsRepo := new(MockLogisticsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LogisticsRepository").Return(logisticsRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatePaid, testOrder.State())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_TerminalLock(t *testing.T) {
	ctx := t.Context()

	testOrder := trackAOrder(t, order.StateComplete)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.StatePaid, "ops@atelier", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	logisticsRepo := new(MockLogisticsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LogisticsRepository").Return(logisticsRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrTerminalStateViolation)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderCommand(orderID, order.StateMeasurementPending, "ops@atelier", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotFound)
}

func TestTransitionOrderCommandHandler_Handle_NoVanAvailable(t *testing.T) {
	ctx := t.Context()

	testOrder := trackBOrder(t, order.StateCustomsCleared)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.StateVanAssigned, "hub@atelier", "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	logisticsRepo := new(MockLogisticsRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LogisticsRepository").Return(logisticsRepo).Once(),
		logisticsRepo.On("GetAvailableVans", ctx).Return([]*logistics.Van{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrNoLogisticsResource)
	assert.Equal(t, order.StateCustomsCleared, testOrder.State())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_QCPassReleasesTailorPair(t *testing.T) {
	ctx := t.Context()

	testOrder := trackAOrder(t, order.StateQCInProgress)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.StateQCPassed, "qc@atelier", "final fitting ok")
	require.NoError(t, err)

	primaryID := kernel.NewUUID()
	backupID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("600.00", kernel.CurrencyGBP)
	require.NoError(t, err)
	item, err := order.RestoreItem(kernel.NewUUID(), testOrder.ID(), 1, price, false, &primaryID, &backupID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockItemRepository)
	tailorRepo := new(MockTailorRepository)
	logisticsRepo := new(MockLogisticsRepository)
	timelineRepo := new(MockTimelineRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("LogisticsRepository").Return(logisticsRepo).Once(),
		uow.On("ItemRepository").Return(itemRepo).Once(),
		itemRepo.On("GetByOrder", ctx, testOrder.ID()).Return([]*order.Item{item}, nil).Once(),
		uow.On("TailorRepository").Return(tailorRepo).Once(),
		tailorRepo.On("DecrementJobCount", ctx, primaryID).Return(nil).Once(),
		tailorRepo.On("DecrementJobCount", ctx, backupID).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("TimelineRepository").Return(timelineRepo).Once(),
		timelineRepo.On("Add", ctx, mock.AnythingOfType("*timeline.TransitionRecord")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransitionUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewTransitionOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StateQCPassed, testOrder.State())
	tailorRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransitionOrderCommand{} // not constructed properly

	factory := new(MockTransitionUoWFactory)
	handler := commands.NewTransitionOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrTransitionOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
