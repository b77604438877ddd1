package rating

import (
	"errors"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/pkg/errs"
	"farmmarket/internal/pkg/guard"
)

const (
	// ScoreMin is the lowest score a rater can give.
	ScoreMin = 1
	// ScoreMax is the highest score a rater can give.
	ScoreMax = 5
)

var (
	// ErrRatingIsNotConstructed is returned when using an improperly initialized Rating.
	ErrRatingIsNotConstructed = errors.New(
		"Rating must be created via NewRating or RestoreRating constructor")
)

// Rating is feedback left on a delivered order.
//
// Business rules:
//   - score is an integer between 1 and 5 inclusive
//   - the comment is optional
//   - rating the same user on the same order again replaces the previous
//     score and comment instead of creating a second rating
type Rating struct {
	// id uniquely identifies the rating
	id kernel.UUID
	// orderID references the delivered order the feedback is about
	orderID kernel.UUID
	// raterID identifies who left the feedback
	raterID kernel.UUID
	// ratedUserID identifies who the feedback is about
	ratedUserID kernel.UUID
	// score is the 1 to 5 value of the feedback
	score int
	// comment is optional free text
	comment string
	// createdAt is when the rating was first submitted
	createdAt time.Time
	// updatedAt is when the score or comment last changed
	updatedAt time.Time
	// guard ensures the rating was created via a constructor
	guard guard.ConstructorGuard
}

// NewRating creates a new Rating submitted now.
func NewRating(
	id, orderID, raterID, ratedUserID kernel.UUID,
	score int,
	comment string,
) (*Rating, error) {
	now := time.Now().UTC()

	r := &Rating{
		comment:   comment,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setRaterID(raterID),
		r.setRatedUserID(ratedUserID),
		r.setScore(score),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a Rating aggregate from persistent storage.
func RestoreRating(
	id, orderID, raterID, ratedUserID kernel.UUID,
	score int,
	comment string,
	createdAt, updatedAt time.Time,
) (*Rating, error) {
	r, err := NewRating(id, orderID, raterID, ratedUserID, score, comment)
	if err != nil {
		return nil, err
	}

	r.createdAt = createdAt
	r.updatedAt = updatedAt
	return r, nil
}

// IsEqual compares two ratings for equality based on their unique identifiers.
func (r *Rating) IsEqual(other *Rating) bool {
	if other == nil {
		return false
	}
	return r.id.IsEqual(other.id)
}

// Validate checks if the Rating was properly constructed.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// ID returns the unique identifier of the rating.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the identifier of the order the feedback is about.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// RaterID returns the identifier of who left the feedback.
func (r *Rating) RaterID() kernel.UUID {
	return r.raterID
}

// RatedUserID returns the identifier of who the feedback is about.
func (r *Rating) RatedUserID() kernel.UUID {
	return r.ratedUserID
}

// Score returns the 1 to 5 value of the feedback.
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the optional free text of the feedback.
func (r *Rating) Comment() string {
	return r.comment
}

// CreatedAt returns when the rating was first submitted.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

// UpdatedAt returns when the score or comment last changed.
func (r *Rating) UpdatedAt() time.Time {
	return r.updatedAt
}

// Revise replaces the score and comment of an existing rating.
// The original submission time is preserved.
func (r *Rating) Revise(score int, comment string) error {
	if err := r.setScore(score); err != nil {
		return err
	}

	r.comment = comment
	r.updatedAt = time.Now().UTC()
	return nil
}

// setID sets the rating's unique identifier with validation.
func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

// setOrderID sets the order reference with validation.
func (r *Rating) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	r.orderID = orderID
	return nil
}

// setRaterID sets the rater reference with validation.
func (r *Rating) setRaterID(raterID kernel.UUID) error {
	if err := raterID.Validate(); err != nil {
		return err
	}

	r.raterID = raterID
	return nil
}

// setRatedUserID sets the rated user reference with validation.
func (r *Rating) setRatedUserID(ratedUserID kernel.UUID) error {
	if err := ratedUserID.Validate(); err != nil {
		return err
	}

	r.ratedUserID = ratedUserID
	return nil
}

// setScore sets the score with range validation.
func (r *Rating) setScore(score int) error {
	if score < ScoreMin || score > ScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score, ScoreMin, ScoreMax)
	}

	r.score = score
	return nil
}
