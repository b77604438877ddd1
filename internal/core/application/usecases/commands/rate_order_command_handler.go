package commands

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/domain/model/rating"
	"farmmarket/internal/pkg/errs"
)

var (
	ErrOrderNotDelivered   = errors.New("order must be delivered before it can be rated")
	ErrNotOrderParticipant = errors.New("only order participants can rate or be rated")
)

// RateOrderCommandHandler handles feedback on delivered orders.
// A rater can leave one rating per rated user per order; repeated submissions
// revise the existing rating instead of creating another one.
type RateOrderCommandHandler struct {
	uowFactory RatingUoWFactory
}

// NewRateOrderCommandHandler creates a handler for order feedback.
func NewRateOrderCommandHandler(uowFactory RatingUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the feedback command.
// The order must exist, be delivered, and both the rater and the rated user
// must be participants of it (buyer, farmer or dispatcher). An existing
// rating for the same order and rated user is revised in place.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if ord.Status() != order.Delivered {
		return ErrOrderNotDelivered
	}

	if !isParticipant(ord, cmd.RaterID()) || !isParticipant(ord, cmd.RatedUserID()) {
		return ErrNotOrderParticipant
	}

	ratingRepo := uow.RatingRepository()

	existing, err := ratingRepo.GetByOrderAndRatedUser(ctx, cmd.OrderID(), cmd.RatedUserID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		var fresh *rating.Rating
		fresh, err = rating.NewRating(kernel.NewUUID(),
			cmd.OrderID(), cmd.RaterID(), cmd.RatedUserID(),
			cmd.Score(), cmd.Comment())
		if err != nil {
			return err
		}

		if err = ratingRepo.Add(ctx, fresh); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		if err = existing.Revise(cmd.Score(), cmd.Comment()); err != nil {
			return err
		}

		if err = ratingRepo.Update(ctx, existing); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// isParticipant reports whether the user took part in the order as its buyer,
// farmer or assigned dispatcher.
func isParticipant(ord *order.Order, userID kernel.UUID) bool {
	if ord.BuyerID().IsEqual(userID) || ord.FarmerID().IsEqual(userID) {
		return true
	}

	return ord.Dispatcher() != nil && ord.Dispatcher().IsEqual(userID)
}
