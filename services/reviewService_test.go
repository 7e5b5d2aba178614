package services_test

import (
	"context"
	"testing"

	"github.com/dukahq/duka-api/services"
	"github.com/dukahq/duka-api/store"
	"github.com/stretchr/testify/require"
)

func TestRate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the review", func(t *testing.T) {
		ms := store.NewMemoryStore()
		product := seedProduct(ms, "Blender Max")
		svc := services.NewReviewService(ms)

		reviewID, err := svc.Rate(ctx, "user-1", product.ProductID, 4, "Solid blender")
		require.NoError(t, err)
		require.NotEmpty(t, reviewID)

		reviews := ms.Reviews()
		require.Len(t, reviews, 1)
		require.Equal(t, "user-1", reviews[0].UserID)
		require.Equal(t, product.ProductID, reviews[0].ProductID)
		require.Equal(t, 4, reviews[0].Rating)
		require.Equal(t, "Solid blender", reviews[0].Comment)
	})

	t.Run("same user may rate twice", func(t *testing.T) {
		ms := store.NewMemoryStore()
		product := seedProduct(ms, "Blender Max")
		svc := services.NewReviewService(ms)

		_, err := svc.Rate(ctx, "user-1", product.ProductID, 2, "")
		require.NoError(t, err)
		_, err = svc.Rate(ctx, "user-1", product.ProductID, 5, "changed my mind")
		require.NoError(t, err)

		require.Len(t, ms.Reviews(), 2)
	})

	t.Run("out of range ratings write nothing", func(t *testing.T) {
		ms := store.NewMemoryStore()
		product := seedProduct(ms, "Blender Max")
		svc := services.NewReviewService(ms)

		for _, rating := range []int{0, -1, 6, 42} {
			_, err := svc.Rate(ctx, "user-1", product.ProductID, rating, "")
			require.ErrorIs(t, err, services.ErrInvalidRating, "rating %d", rating)
		}
		require.Empty(t, ms.Reviews())
	})
}
