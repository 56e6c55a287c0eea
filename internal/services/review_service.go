package services

import (
	"context"

	"github.com/joshua-takyi/skillswap/internal/models"
)

type ReviewService struct {
	reviews models.ReviewRepo
}

func NewReviewService(reviews models.ReviewRepo) *ReviewService {
	return &ReviewService{
		reviews: reviews,
	}
}

func (rs *ReviewService) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	review.Sanitize()
	if err := review.ValidateReview(); err != nil {
		return nil, err
	}
	return rs.reviews.CreateReview(ctx, review)
}

func (rs *ReviewService) ForUser(ctx context.Context, reviewedUser string) ([]*models.Review, error) {
	return rs.reviews.GetReviewsForUser(ctx, reviewedUser)
}
