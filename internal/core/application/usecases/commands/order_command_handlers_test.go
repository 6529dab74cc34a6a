package commands_test

import (
	"errors"
	"testing"

	"courierdesk/internal/core/application/usecases/commands"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewCreateOrderCommand("12345678", order.ComboForFour, order.Cash, "", false, "2", "")
	require.NoError(t, err)

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	var saved *order.Order
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ClientRepository").Return(clientRepo).Once(),
		clientRepo.On("FindByID", ctx, "12345678").Return(mustClient("12345678", "Av. Lara 3"), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Save", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.Equal(t, cmd.OrderID(), saved.ID())
	assert.InDelta(t, 12.0, saved.Total(), 0)
	assert.Equal(t, order.Pending, saved.Status())
	assert.Equal(t, "Av. Lara 3", saved.DeliveryAddress())
	assert.Equal(t, testNow, saved.CreatedAt())
	assert.False(t, saved.HasCourier())

	clientRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_WithCourier(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCreateOrderCommand("12345678", order.ComboForTwo, order.MobilePayment, "87654321", false, "1", "")

	clientRepo := new(MockClientRepository)
	courierRepo := new(MockCourierRepository)
	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("FindByID", ctx, "12345678").Return(mustClient("12345678", "Av. Lara 3"), nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("FindByID", ctx, "87654321").Return(mustCourier("87654321", true), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Save", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.CourierID() == "87654321" && o.Total() == 6
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ClientNotFound(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCreateOrderCommand("404", order.ComboForFour, order.Cash, "", false, "2", "")

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("FindByID", ctx, "404").Return(nil, errs.NewObjectNotFoundError("client", "404")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCreateOrderCommand("12345678", order.ComboForFour, order.Cash, "V404", false, "2", "")

	clientRepo := new(MockClientRepository)
	courierRepo := new(MockCourierRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("FindByID", ctx, "12345678").Return(mustClient("12345678", "x"), nil).Once()
	uow.On("CourierRepository").Return(courierRepo).Once()
	courierRepo.On("FindByID", ctx, "V404").Return(nil, errs.NewObjectNotFoundError("courier", "V404")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})

	err := h.Handle(testContext(t), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCreateOrderCommand("12345678", order.ComboForFour, order.Cash, "", false, "2", "")

	uow, factory := newOrderUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCreateOrderCommand("12345678", order.ComboForFour, order.Cash, "", false, "2", "")

	clientRepo := new(MockClientRepository)
	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ClientRepository").Return(clientRepo).Once()
	clientRepo.On("FindByID", ctx, "12345678").Return(mustClient("12345678", "x"), nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, fixedClock{now: testNow})
	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	uow.AssertExpectations(t)
}

func TestAssignCourierCommandHandler_Handle(t *testing.T) {
	t.Run("reassigns an open order", func(t *testing.T) {
		ctx := testContext(t)
		cmd, err := commands.NewAssignCourierCommand("PED-1", "V2")
		require.NoError(t, err)

		o := mustOrder("PED-1", "12345678", order.EnRoute, "V1")
		orderRepo := new(MockOrderRepository)
		courierRepo := new(MockCourierRepository)
		uow, factory := newOrderUoW()

		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderRepository").Return(orderRepo).Once(),
			orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once(),
			uow.On("CourierRepository").Return(courierRepo).Once(),
			courierRepo.On("FindByID", ctx, "V2").Return(mustCourier("V2000", true), nil).Once(),
			orderRepo.On("Save", ctx, o).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewAssignCourierCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, "V2", o.CourierID())
		assert.Equal(t, order.EnRoute, o.Status())
		orderRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("rejects a terminal order", func(t *testing.T) {
		ctx := testContext(t)
		cmd, _ := commands.NewAssignCourierCommand("PED-1", "V2")

		o := mustOrder("PED-1", "12345678", order.Delivered, "V1")
		orderRepo := new(MockOrderRepository)
		courierRepo := new(MockCourierRepository)
		uow, factory := newOrderUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
		uow.On("CourierRepository").Return(courierRepo).Once()
		courierRepo.On("FindByID", ctx, "V2").Return(mustCourier("V2000", true), nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewAssignCourierCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderAlreadyFinalized)

		assert.Equal(t, "V1", o.CourierID())
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects blank ids up front", func(t *testing.T) {
		_, err := commands.NewAssignCourierCommand("PED-1", " ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDispatchOrderCommandHandler_Handle(t *testing.T) {
	ctx := testContext(t)
	cmd, err := commands.NewDispatchOrderCommand("PED-1")
	require.NoError(t, err)

	o := mustOrder("PED-1", "12345678", order.Pending, "V1")
	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
	orderRepo.On("Save", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDispatchOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.EnRoute, o.Status())
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewDeliverOrderCommand("PED-1")

	o := mustOrder("PED-1", "12345678", order.EnRoute, "V1")
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow, factory := newOrderUoW()

	var appended *history.Record
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once(),
		orderRepo.On("Save", ctx, o).Return(nil).Once(),
		uow.On("HistoryRepository").Return(historyRepo).Once(),
		historyRepo.On("Add", ctx, mock.AnythingOfType("*history.Record")).
			Run(func(args mock.Arguments) { appended = args.Get(1).(*history.Record) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeliverOrderCommandHandler(factory, fixedClock{now: testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Delivered, o.Status())
	require.NotNil(t, o.DeliveredAt())
	assert.Equal(t, testNow, *o.DeliveredAt())

	require.NotNil(t, appended)
	assert.Equal(t, "PED-1", appended.OrderID())
	assert.Equal(t, "V1", appended.CourierID())
	assert.Equal(t, history.Delivered, appended.Outcome())
	assert.Equal(t, "Av. Lara 3", appended.Location())
	assert.Equal(t, testNow, appended.OccurredAt())

	historyRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCancelOrderCommand("PED-1")

	o := mustOrder("PED-1", "12345678", order.Pending, "")
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
	orderRepo.On("Save", ctx, o).Return(nil).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	historyRepo.On("Add", ctx, mock.MatchedBy(func(r *history.Record) bool {
		return r.Outcome() == history.Cancelled && r.CourierID() == "" && r.OrderID() == "PED-1"
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, o.Status())
	historyRepo.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderIsRejected(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCancelOrderCommand("PED-1")

	o := mustOrder("PED-1", "12345678", order.Delivered, "V1")
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: testNow})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderAlreadyFinalized)
	assert.NotEmpty(t, err.Error())
	assert.Equal(t, order.Delivered, o.Status())
	orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	historyRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_HistoryAddErrorRollsBack(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewCancelOrderCommand("PED-1")

	o := mustOrder("PED-1", "12345678", order.Pending, "")
	orderRepo := new(MockOrderRepository)
	historyRepo := new(MockHistoryRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
	orderRepo.On("Save", ctx, o).Return(nil).Once()
	uow.On("HistoryRepository").Return(historyRepo).Once()
	historyRepo.On("Add", ctx, mock.Anything).Return(history.ErrRecordAlreadyExists).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, fixedClock{now: testNow})
	require.ErrorIs(t, h.Handle(ctx, cmd), history.ErrRecordAlreadyExists)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := testContext(t)
	cmd, _ := commands.NewDeliverOrderCommand("PED-404")

	orderRepo := new(MockOrderRepository)
	uow, factory := newOrderUoW()

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("FindByID", ctx, "PED-404").Return(nil, errs.NewObjectNotFoundError("order", "PED-404")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewDeliverOrderCommandHandler(factory, fixedClock{now: testNow})
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestOrderIDCommands_Validate(t *testing.T) {
	require.ErrorIs(t, commands.CancelOrderCommand{}.Validate(), commands.ErrCancelOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.DeliverOrderCommand{}.Validate(), commands.ErrDeliverOrderCommandIsNotConstructed)
	require.ErrorIs(t, commands.DispatchOrderCommand{}.Validate(), commands.ErrDispatchOrderCommandIsNotConstructed)

	_, err := commands.NewCancelOrderCommand("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestEditOrderCommand(t *testing.T) {
	t.Run("empty inputs are left untouched", func(t *testing.T) {
		cmd, err := commands.NewEditOrderCommand("PED-1", "", "3", "")

		require.NoError(t, err)
		_, hasAddress := cmd.Address()
		fee, hasFee := cmd.DeliveryFee()
		_, hasCombo := cmd.Combo()
		assert.False(t, hasAddress)
		assert.True(t, hasFee)
		assert.InDelta(t, 3.0, fee, 0)
		assert.False(t, hasCombo)
	})

	t.Run("nothing to edit", func(t *testing.T) {
		_, err := commands.NewEditOrderCommand("PED-1", " ", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("placeholder combo is rejected", func(t *testing.T) {
		_, err := commands.NewEditOrderCommand("PED-1", "", "", "SELECCIONAR")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("bad fee is rejected", func(t *testing.T) {
		_, err := commands.NewEditOrderCommand("PED-1", "", "-1", "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestEditOrderCommandHandler_Handle(t *testing.T) {
	t.Run("updates fields and keeps the total", func(t *testing.T) {
		ctx := testContext(t)
		cmd, err := commands.NewEditOrderCommand("PED-1", "Calle Nueva 2", "7", "PARA2")
		require.NoError(t, err)

		o := mustOrder("PED-1", "12345678", order.Pending, "")
		orderRepo := new(MockOrderRepository)
		uow, factory := newOrderUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
		orderRepo.On("Save", ctx, o).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewEditOrderCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, "Calle Nueva 2", o.DeliveryAddress())
		assert.InDelta(t, 7.0, o.DeliveryFee(), 0)
		assert.Equal(t, order.ComboForTwo, o.Combo())
		assert.InDelta(t, 12.0, o.Total(), 0)
	})

	t.Run("terminal orders cannot be edited", func(t *testing.T) {
		ctx := testContext(t)
		cmd, _ := commands.NewEditOrderCommand("PED-1", "Calle Nueva 2", "", "")

		o := mustOrder("PED-1", "12345678", order.Cancelled, "")
		orderRepo := new(MockOrderRepository)
		uow, factory := newOrderUoW()

		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		orderRepo.On("FindByID", ctx, "PED-1").Return(o, nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		h := commands.NewEditOrderCommandHandler(factory)
		require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderAlreadyFinalized)
		orderRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
