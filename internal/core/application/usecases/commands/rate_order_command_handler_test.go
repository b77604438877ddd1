package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"farmmarket/internal/core/application/usecases/commands"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/rating"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"
)

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, r *rating.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByOrderAndRatedUser(
	ctx context.Context, orderID, ratedUserID kernel.UUID,
) (*rating.Rating, error) {
	args := m.Called(ctx, orderID, ratedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetAllByRatedUser(
	ctx context.Context, ratedUserID kernel.UUID,
) ([]*rating.Rating, error) {
	args := m.Called(ctx, ratedUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*rating.Rating), args.Error(1)
}

type MockRatingUoW struct{ mock.Mock }

func (m *MockRatingUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRatingUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockRatingUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockRatingUoWFactory struct{ mock.Mock }

func (m *MockRatingUoWFactory) Create() commands.RatingUoW {
	args := m.Called()
	return args.Get(0).(commands.RatingUoW)
}

// deliveredOrder walks a confirmed order through the full lifecycle so it can
// be rated.
func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()

	ord := confirmedOrder(t)
	require.NoError(t, ord.AssignDispatcher(kernel.NewUUID()))
	require.NoError(t, ord.ChangeStatus(order.Preparing))
	require.NoError(t, ord.ChangeStatus(order.Ready))
	require.NoError(t, ord.ChangeStatus(order.InTransit))
	require.NoError(t, ord.ChangeStatus(order.Delivered))

	return ord
}

func TestRateOrderCommandHandler_Handle_CreatesNewRating(t *testing.T) {
	ctx := t.Context()

	testOrder := deliveredOrder(t)
	cmd, err := commands.NewRateOrderCommand(testOrder.ID(),
		testOrder.BuyerID(), testOrder.FarmerID(), 5, "beautiful produce")
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderAndRatedUser", ctx, testOrder.ID(), testOrder.FarmerID()).
			Return(nil, errs.ErrObjectNotFound).
			Once(),
		ratingRepo.On("Add", ctx, mock.AnythingOfType("*rating.Rating")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := ratingRepo.Calls[1]
	added := addCall.Arguments[1].(*rating.Rating)
	assert.Equal(t, 5, added.Score())
	assert.Equal(t, "beautiful produce", added.Comment())
	assert.True(t, added.RaterID().IsEqual(testOrder.BuyerID()))
	assert.True(t, added.RatedUserID().IsEqual(testOrder.FarmerID()))

	ratingRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_RevisesExistingRating(t *testing.T) {
	ctx := t.Context()

	testOrder := deliveredOrder(t)
	cmd, err := commands.NewRateOrderCommand(testOrder.ID(),
		testOrder.BuyerID(), testOrder.FarmerID(), 2, "half the box was bruised")
	require.NoError(t, err)

	existing, err := rating.NewRating(kernel.NewUUID(), testOrder.ID(),
		testOrder.BuyerID(), testOrder.FarmerID(), 5, "beautiful produce")
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	ratingRepo := new(MockRatingRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("RatingRepository").Return(ratingRepo).Once(),
		ratingRepo.On("GetByOrderAndRatedUser", ctx, testOrder.ID(), testOrder.FarmerID()).
			Return(existing, nil).
			Once(),
		ratingRepo.On("Update", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// The existing rating was revised in place, no second rating created.
	assert.Equal(t, 2, existing.Score())
	assert.Equal(t, "half the box was bruised", existing.Comment())
	ratingRepo.AssertNotCalled(t, "Add")
	ratingRepo.AssertExpectations(t)
}

func TestRateOrderCommandHandler_Handle_OrderNotDelivered(t *testing.T) {
	ctx := t.Context()

	testOrder := confirmedOrder(t)
	cmd, err := commands.NewRateOrderCommand(testOrder.ID(),
		testOrder.BuyerID(), testOrder.FarmerID(), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotDelivered)
}

func TestRateOrderCommandHandler_Handle_RaterNotParticipant(t *testing.T) {
	ctx := t.Context()

	testOrder := deliveredOrder(t)
	cmd, err := commands.NewRateOrderCommand(testOrder.ID(),
		kernel.NewUUID(), testOrder.FarmerID(), 4, "")
	require.NoError(t, err)

	orderRepo := new(MockAssignOrderRepository)
	uow := new(MockRatingUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRatingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrNotOrderParticipant)
}

func TestNewRateOrderCommand_Validation(t *testing.T) {
	t.Run("score_out_of_range", func(t *testing.T) {
		_, err := commands.NewRateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 6, "")
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rater_cannot_rate_themselves", func(t *testing.T) {
		self := kernel.NewUUID()
		_, err := commands.NewRateOrderCommand(kernel.NewUUID(), self, self, 3, "")
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("not_constructed_command_fails_validation", func(t *testing.T) {
		var cmd commands.RateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrRateOrderCommandIsNotConstructed)
	})
}
