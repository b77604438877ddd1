package commands_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/services"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

type MockAssignOrderRepository struct{ mock.Mock }

func (m *MockAssignOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockAssignOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockAssignOrderRepository) GetAllConfirmedWithoutDispatcher(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAssignDeliveryRepository struct{ mock.Mock }

func (m *MockAssignDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockAssignDeliveryRepository) GetByOrderID(
	ctx context.Context, orderID kernel.UUID,
) (*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockAssignDispatcherRepository struct{ mock.Mock }

func (m *MockAssignDispatcherRepository) Add(ctx context.Context, d *dispatcher.Dispatcher) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDispatcherRepository) Update(ctx context.Context, d *dispatcher.Dispatcher) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockAssignDispatcherRepository) Get(ctx context.Context, id kernel.UUID) (*dispatcher.Dispatcher, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispatcher.Dispatcher), args.Error(1)
}

func (m *MockAssignDispatcherRepository) GetAllActiveIDs(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

func (m *MockAssignDispatcherRepository) GetWorkloads(ctx context.Context) ([]services.DispatcherWorkload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.DispatcherWorkload), args.Error(1)
}

type MockAssignUoW struct{ mock.Mock }

func (m *MockAssignUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockAssignUoW) DispatcherRepository() ports.DispatcherRepository {
	args := m.Called()
	return args.Get(0).(ports.DispatcherRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignmentUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignmentUoW)
}

type MockNotificationPublisher struct{ mock.Mock }

func (m *MockNotificationPublisher) Publish(
	ctx context.Context, userID string, n ports.Notification,
) error {
	args := m.Called(ctx, userID, n)
	return args.Error(0)
}

func confirmedOrder(t *testing.T) *order.Order {
	t.Helper()

	price, err := kernel.NewMoney(2500)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Heirloom tomatoes", price, 2, "kg")
	require.NoError(t, err)

	total, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	farmer, err := total.Percent(90)
	require.NoError(t, err)
	dispatcherShare, err := total.Percent(5)
	require.NoError(t, err)

	pickup, err := kernel.NewGeoPoint(-26.2041, 28.0473)
	require.NoError(t, err)
	dropoff, err := kernel.NewGeoPoint(-26.1076, 28.0567)
	require.NoError(t, err)

	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item},
		total, farmer, dispatcherShare,
		"5 Farm Lane, Magaliesburg", pickup,
		"12 Main Road, Soweto", dropoff,
		order.PaymentMethodCash,
	)
	require.NoError(t, err)
	require.NoError(t, ord.ChangeStatus(order.Confirmed))

	return ord
}

func TestAssignDispatcherCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := confirmedOrder(t)
	cmd, err := commands.NewAssignDispatcherCommand(testOrder.ID())
	require.NoError(t, err)

	busyID := kernel.NewUUID()
	idleID := kernel.NewUUID()
	workloads := []services.DispatcherWorkload{
		{DispatcherID: busyID, PendingOrders: 3, TotalOrders: 10},
		{DispatcherID: idleID, PendingOrders: 0, TotalOrders: 4},
	}

	orderRepo := new(MockAssignOrderRepository)
	deliveryRepo := new(MockAssignDeliveryRepository)
	dispatcherRepo := new(MockAssignDispatcherRepository)
	uow := new(MockAssignUoW)
	publisher := new(MockNotificationPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DispatcherRepository").Return(dispatcherRepo).Once(),
		dispatcherRepo.On("GetWorkloads", ctx).Return(workloads, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, testOrder.BuyerID().String(),
		mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The least loaded dispatcher was bound to the order.
	require.NotNil(t, testOrder.Dispatcher())
	assert.True(t, testOrder.Dispatcher().IsEqual(idleID))

	// The delivery opened for the order starts assigned.
	addCall := deliveryRepo.Calls[0]
	addedDelivery := addCall.Arguments[1].(*delivery.Delivery)
	assert.True(t, addedDelivery.OrderID().IsEqual(testOrder.ID()))
	assert.True(t, addedDelivery.DispatcherID().IsEqual(idleID))
	assert.Equal(t, delivery.Assigned, addedDelivery.Status())

	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	dispatcherRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAssignDispatcherCommandHandler_Handle_NoActiveDispatchers(t *testing.T) {
	ctx := t.Context()

	testOrder := confirmedOrder(t)
	cmd, err := commands.NewAssignDispatcherCommand(testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	dispatcherRepo := new(MockAssignDispatcherRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DispatcherRepository").Return(dispatcherRepo).Once(),
		dispatcherRepo.On("GetWorkloads", ctx).Return([]services.DispatcherWorkload{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrNoDispatcherAvailable)
	assert.Nil(t, testOrder.Dispatcher())
	publisher.AssertNotCalled(t, "Publish")
}

func TestAssignDispatcherCommandHandler_Handle_RandomFallback(t *testing.T) {
	ctx := t.Context()

	testOrder := confirmedOrder(t)
	cmd, err := commands.NewAssignDispatcherCommand(testOrder.ID())
	require.NoError(t, err)

	onlyID := kernel.NewUUID()

	orderRepo := new(MockAssignOrderRepository)
	deliveryRepo := new(MockAssignDeliveryRepository)
	dispatcherRepo := new(MockAssignDispatcherRepository)
	uow := new(MockAssignUoW)
	publisher := new(MockNotificationPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DispatcherRepository").Return(dispatcherRepo).Once(),
		dispatcherRepo.On("GetWorkloads", ctx).Return(nil, errors.New("workload query failed")).Once(),
		dispatcherRepo.On("GetAllActiveIDs", ctx).Return([]kernel.UUID{onlyID}, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Add", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	publisher.On("Publish", ctx, testOrder.BuyerID().String(),
		mock.AnythingOfType("ports.Notification")).Return(nil).Once()

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, testOrder.Dispatcher())
	assert.True(t, testOrder.Dispatcher().IsEqual(onlyID))
}

func TestAssignDispatcherCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewAssignDispatcherCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAssignDispatcherCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AssignDispatcherCommand{} // not constructed properly

	factory := new(MockAssignUoWFactory)
	publisher := new(MockNotificationPublisher)
	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrAssignDispatcherCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestAssignDispatcherCommandHandler_Handle_OrderAlreadyAssigned(t *testing.T) {
	ctx := t.Context()

	testOrder := confirmedOrder(t)
	require.NoError(t, testOrder.AssignDispatcher(kernel.NewUUID()))

	cmd, err := commands.NewAssignDispatcherCommand(testOrder.ID())
	require.NoError(t, err)

	workloads := []services.DispatcherWorkload{
		{DispatcherID: kernel.NewUUID(), PendingOrders: 0, TotalOrders: 0},
	}

	orderRepo := new(MockAssignOrderRepository)
	dispatcherRepo := new(MockAssignDispatcherRepository)
	uow := new(MockAssignUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("DispatcherRepository").Return(dispatcherRepo).Once(),
		dispatcherRepo.On("GetWorkloads", ctx).Return(workloads, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockNotificationPublisher)
	handler := commands.NewAssignDispatcherCommandHandler(factory, publisher, rand.New(rand.NewSource(1)))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrDispatcherAlreadyAssigned)
	publisher.AssertNotCalled(t, "Publish")
}
