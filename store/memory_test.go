package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/dukahq/duka-api/models"
	"github.com/dukahq/duka-api/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func product(ms *store.MemoryStore, name string, active bool) models.Product {
	p := models.Product{
		ProductID: uuid.NewString(),
		Name:      name,
		Category:  "Home",
		Price:     decimal.NewFromInt(50),
		CreatedAt: time.Now(),
		IsActive:  active,
	}
	ms.SeedProduct(p)
	return p
}

func review(ms *store.MemoryStore, productID string, rating int) {
	ms.SeedReview(models.Review{
		ReviewID:   uuid.NewString(),
		UserID:     uuid.NewString(),
		ProductID:  productID,
		Rating:     rating,
		ReviewDate: time.Now(),
	})
}

func orderOn(ms *store.MemoryStore, userID string, date time.Time) models.Order {
	o := models.Order{
		OrderID:     uuid.NewString(),
		UserID:      userID,
		OrderDate:   date,
		Status:      models.OrderStatusCompleted,
		TotalAmount: decimal.NewFromInt(100),
	}
	ms.SeedOrder(o)
	return o
}

func orderItem(ms *store.MemoryStore, orderID, productID string, qty int) {
	ms.SeedOrderItem(models.OrderItem{
		OrderItemID: uuid.NewString(),
		OrderID:     orderID,
		ProductID:   productID,
		Quantity:    qty,
		UnitPrice:   decimal.NewFromInt(20),
	})
}

func cartWithStatus(ms *store.MemoryStore, status string) models.Cart {
	c := models.Cart{
		CartID:    uuid.NewString(),
		UserID:    uuid.NewString(),
		CreatedAt: time.Now(),
		Status:    status,
	}
	ms.SeedCart(c)
	return c
}

func cartItem(ms *store.MemoryStore, cartID, productID string) {
	ms.SeedCartItem(models.CartItem{
		CartItemID: uuid.NewString(),
		CartID:     cartID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	})
}

func TestTopRated(t *testing.T) {
	ctx := context.Background()

	t.Run("ties break on review count", func(t *testing.T) {
		ms := store.NewMemoryStore()
		p1 := product(ms, "P1", true)
		p2 := product(ms, "P2", true)

		// Both average 4.5; P2 has more reviews and must come first.
		review(ms, p1.ProductID, 4)
		review(ms, p1.ProductID, 5)
		for _, r := range []int{5, 5, 4, 4} {
			review(ms, p2.ProductID, r)
		}

		rows, err := ms.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, "P2", rows[0].Name)
		require.EqualValues(t, 4, rows[0].NumReviews)
		require.Equal(t, 4.5, rows[0].AvgRating)
		require.Equal(t, "P1", rows[1].Name)
	})

	t.Run("higher average wins", func(t *testing.T) {
		ms := store.NewMemoryStore()
		low := product(ms, "Low", true)
		high := product(ms, "High", true)
		review(ms, low.ProductID, 2)
		review(ms, high.ProductID, 5)

		rows, err := ms.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Equal(t, "High", rows[0].Name)
	})

	t.Run("inactive products are excluded", func(t *testing.T) {
		ms := store.NewMemoryStore()
		retired := product(ms, "Retired", false)
		review(ms, retired.ProductID, 5)

		rows, err := ms.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Empty(t, rows)
	})

	t.Run("limit applies", func(t *testing.T) {
		ms := store.NewMemoryStore()
		for i := 0; i < 12; i++ {
			p := product(ms, "P", true)
			review(ms, p.ProductID, 3)
		}

		rows, err := ms.TopRated(ctx, 10)
		require.NoError(t, err)
		require.Len(t, rows, 10)
	})
}

func TestTopSelling(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()

	hot := product(ms, "Hot", true)
	slow := product(ms, "Slow", true)
	stale := product(ms, "Stale", true)

	thisQuarter := orderOn(ms, uuid.NewString(), time.Now())
	orderItem(ms, thisQuarter.OrderID, hot.ProductID, 3)
	orderItem(ms, thisQuarter.OrderID, hot.ProductID, 4)
	orderItem(ms, thisQuarter.OrderID, slow.ProductID, 2)

	// An order from two quarters ago contributes nothing.
	old := orderOn(ms, uuid.NewString(), time.Now().AddDate(0, -6, 0))
	orderItem(ms, old.OrderID, stale.ProductID, 9)

	rows, err := ms.TopSelling(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Hot", rows[0].Name)
	require.EqualValues(t, 7, rows[0].TotalSold)
	require.Equal(t, "Slow", rows[1].Name)
	require.EqualValues(t, 2, rows[1].TotalSold)
}

func TestRepeatCustomers(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()

	may := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)
	repeat := uuid.NewString()
	oneOff := uuid.NewString()

	orderOn(ms, repeat, may)
	orderOn(ms, repeat, may.AddDate(0, 0, 7))
	orderOn(ms, oneOff, may)

	// The repeat user orders only once in June.
	orderOn(ms, repeat, may.AddDate(0, 1, 0))

	rows, err := ms.RepeatCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "May 2026", rows[0].Month)
	require.EqualValues(t, 1, rows[0].RepeatCustomers)
}

func TestAbandonedProducts(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()

	left := product(ms, "Left Behind", true)
	kept := product(ms, "Kept", true)

	first := cartWithStatus(ms, models.CartStatusAbandoned)
	second := cartWithStatus(ms, models.CartStatusAbandoned)
	active := cartWithStatus(ms, models.CartStatusActive)

	cartItem(ms, first.CartID, left.ProductID)
	// Two rows in the same cart still count that cart once.
	cartItem(ms, second.CartID, left.ProductID)
	cartItem(ms, second.CartID, left.ProductID)
	cartItem(ms, active.CartID, kept.ProductID)

	rows, err := ms.AbandonedProducts(ctx, 5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Left Behind", rows[0].Name)
	require.EqualValues(t, 2, rows[0].AbandonedCount)
}

func TestInTxRollback(t *testing.T) {
	ctx := context.Background()
	ms := store.NewMemoryStore()

	err := ms.InTx(ctx, func(tx store.Store) error {
		cart := models.Cart{CartID: "c1", UserID: "u1", CreatedAt: time.Now(), Status: models.CartStatusActive}
		if err := tx.CreateCart(ctx, &cart); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = ms.GetCart(ctx, "c1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
