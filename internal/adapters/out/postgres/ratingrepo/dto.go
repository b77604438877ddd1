// Package ratingrepo provides data transfer objects and mapping functions
// for rating persistence. The unique index on (order_id, rated_user_id)
// backs the one-rating-per-order-per-user rule.
package ratingrepo

import (
	"time"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO represents the database structure for persisting ratings.
type RatingDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rated"`
	RaterID     uuid.UUID `gorm:"type:uuid;index"`
	RatedUserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ratings_order_rated;index"`
	Score       int       `gorm:"not null"`
	Comment     string
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rating entities.
func (RatingDTO) TableName() string {
	return "ratings"
}

// fromDomain converts a rating domain aggregate to its database representation.
func fromDomain(aggregate *rating.Rating) RatingDTO {
	return RatingDTO{
		ID:          aggregate.ID().Bytes(),
		OrderID:     aggregate.OrderID().Bytes(),
		RaterID:     aggregate.RaterID().Bytes(),
		RatedUserID: aggregate.RatedUserID().Bytes(),
		Score:       aggregate.Score(),
		Comment:     aggregate.Comment(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a rating domain aggregate.
func toDomain(dto RatingDTO) (*rating.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	raterID, err := kernel.UUIDFromBytes(dto.RaterID[:])
	if err != nil {
		return nil, err
	}

	ratedUserID, err := kernel.UUIDFromBytes(dto.RatedUserID[:])
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(id, orderID, raterID, ratedUserID,
		dto.Score, dto.Comment, dto.CreatedAt, dto.UpdatedAt)
}
