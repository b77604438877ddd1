package ports

import (
	"context"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for ratings.
type RatingRepository interface {
	// Add persists a new rating to storage.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// Update persists changes to an existing rating.
	Update(ctx context.Context, aggregate *rating.Rating) error

	// GetByOrderAndRatedUser retrieves an existing rating for the given order
	// and rated user. Returns errs.ObjectNotFoundError when no rating exists,
	// which tells the caller to create one instead of revising.
	GetByOrderAndRatedUser(ctx context.Context, orderID, ratedUserID kernel.UUID) (*rating.Rating, error)

	// GetAllByRatedUser retrieves every rating left about a user, newest first.
	GetAllByRatedUser(ctx context.Context, ratedUserID kernel.UUID) ([]*rating.Rating, error)
}
