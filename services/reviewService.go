package services

import (
	"context"
	"time"

	"github.com/dukahq/duka-api/models"
	"github.com/dukahq/duka-api/store"
	"github.com/google/uuid"
)

// ReviewService appends product ratings. Reviews are write-only: no update,
// no delete, no dedupe, and no check that the user ever bought the product.
type ReviewService struct {
	store store.Store
}

func NewReviewService(s store.Store) *ReviewService {
	return &ReviewService{store: s}
}

// Rate records one review for the product. The rating must already be an
// integer (coercion from loose input is the transport layer's problem) and
// must fall in 1..5; nothing is written otherwise.
func (s *ReviewService) Rate(ctx context.Context, userID, productID string, rating int, comment string) (string, error) {
	if rating < 1 || rating > 5 {
		return "", ErrInvalidRating
	}
	review := models.Review{
		ReviewID:   uuid.NewString(),
		UserID:     userID,
		ProductID:  productID,
		Rating:     rating,
		Comment:    comment,
		ReviewDate: time.Now(),
	}
	if err := s.store.CreateReview(ctx, &review); err != nil {
		return "", err
	}
	return review.ReviewID, nil
}
