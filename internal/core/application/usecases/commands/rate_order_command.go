package commands

import (
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/rating"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents feedback submitted about a participant of a
// delivered order. Submitting feedback for the same order and rated user a
// second time replaces the earlier score and comment.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	raterID     kernel.UUID
	ratedUserID kernel.UUID
	score       int
	comment     string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command submitting feedback on an order.
// The score must be between rating.ScoreMin and rating.ScoreMax; the comment
// is optional. Raters cannot rate themselves.
func NewRateOrderCommand(
	orderID, raterID, ratedUserID kernel.UUID,
	score int,
	comment string,
) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		comment: comment,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParticipants(raterID, ratedUserID),
		cmd.setScore(score),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the rated order.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RaterID returns the identifier of who leaves the feedback.
func (c RateOrderCommand) RaterID() kernel.UUID {
	return c.raterID
}

// RatedUserID returns the identifier of who the feedback is about.
func (c RateOrderCommand) RatedUserID() kernel.UUID {
	return c.ratedUserID
}

// Score returns the submitted score.
func (c RateOrderCommand) Score() int {
	return c.score
}

// Comment returns the optional free text.
func (c RateOrderCommand) Comment() string {
	return c.comment
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setParticipants(raterID, ratedUserID kernel.UUID) error {
	if err := errors.Join(raterID.Validate(), ratedUserID.Validate()); err != nil {
		return err
	}

	if raterID.IsEqual(ratedUserID) {
		return errs.NewValueIsInvalidError("ratedUserId")
	}

	c.raterID = raterID
	c.ratedUserID = ratedUserID
	return nil
}

func (c *RateOrderCommand) setScore(score int) error {
	if score < rating.ScoreMin || score > rating.ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, rating.ScoreMin, rating.ScoreMax)
	}

	c.score = score
	return nil
}
