package ratingrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/rating"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRatingRepository implements RatingRepository using GORM.
type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRatingRepository creates a new GORM rating repository.
func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rating to the database.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves a revised rating to the database.
// Only the revisable columns are written so an emptied comment persists.
func (r *GormRatingRepository) Update(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("id = ?", dto.ID).
		Select("score", "comment", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByOrderAndRatedUser retrieves the rating left on an order about a user.
func (r *GormRatingRepository) GetByOrderAndRatedUser(
	ctx context.Context,
	orderID, ratedUserID kernel.UUID,
) (*rating.Rating, error) {
	if err := errors.Join(orderID.Validate(), ratedUserID.Validate()); err != nil {
		return nil, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND rated_user_id = ?", orderID.Bytes(), ratedUserID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", orderID.String()+"/"+ratedUserID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRatedUser retrieves every rating left about a user, newest first.
func (r *GormRatingRepository) GetAllByRatedUser(
	ctx context.Context,
	ratedUserID kernel.UUID,
) ([]*rating.Rating, error) {
	if err := ratedUserID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RatingDTO
	err := r.db.WithContext(ctx).
		Where("rated_user_id = ?", ratedUserID.Bytes()).
		Order("updated_at DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ratings := make([]*rating.Rating, 0, len(dtos))
	for _, dto := range dtos {
		rt, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		ratings = append(ratings, rt)
	}

	return ratings, nil
}
