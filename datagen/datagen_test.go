package datagen_test

import (
	"testing"
	"time"

	"github.com/dukahq/duka-api/datagen"
	"github.com/stretchr/testify/require"
)

func smallConfig() datagen.Config {
	return datagen.Config{
		NumUsers:    10,
		NumProducts: 8,
		NumOrders:   20,
		NumReviews:  15,
		NumCarts:    12,
		NumSessions: 16,
		Seed:        42,
	}
}

func TestGenerateCounts(t *testing.T) {
	cfg := smallConfig()
	ds := datagen.Generate(cfg)

	require.Len(t, ds.Users, cfg.NumUsers)
	require.Len(t, ds.Products, cfg.NumProducts)
	require.Len(t, ds.Orders, cfg.NumOrders)
	require.Len(t, ds.Reviews, cfg.NumReviews)
	require.Len(t, ds.Carts, cfg.NumCarts)
	require.Len(t, ds.Sessions, cfg.NumSessions)

	// Every order and cart carries at least one line.
	require.GreaterOrEqual(t, len(ds.OrderItems), cfg.NumOrders)
	require.GreaterOrEqual(t, len(ds.CartItems), cfg.NumCarts)
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	ds := datagen.Generate(smallConfig())

	users := map[string]bool{}
	for _, u := range ds.Users {
		users[u.UserID] = true
	}
	products := map[string]bool{}
	for _, p := range ds.Products {
		products[p.ProductID] = true
	}
	orders := map[string]bool{}
	for _, o := range ds.Orders {
		require.True(t, users[o.UserID], "order %s references unknown user", o.OrderID)
		orders[o.OrderID] = true
	}
	for _, oi := range ds.OrderItems {
		require.True(t, orders[oi.OrderID], "order item %s references unknown order", oi.OrderItemID)
		require.True(t, products[oi.ProductID], "order item %s references unknown product", oi.OrderItemID)
	}
	for _, r := range ds.Reviews {
		require.True(t, users[r.UserID])
		require.True(t, products[r.ProductID])
		require.GreaterOrEqual(t, r.Rating, 1)
		require.LessOrEqual(t, r.Rating, 5)
	}
	carts := map[string]time.Time{}
	for _, c := range ds.Carts {
		require.True(t, users[c.UserID])
		carts[c.CartID] = c.CreatedAt
	}
	for _, ci := range ds.CartItems {
		createdAt, ok := carts[ci.CartID]
		require.True(t, ok, "cart item %s references unknown cart", ci.CartItemID)
		require.True(t, products[ci.ProductID])
		require.False(t, ci.AddedAt.Before(createdAt), "item added before its cart existed")
		if ci.RemovedAt != nil {
			require.False(t, ci.RemovedAt.Before(ci.AddedAt), "item removed before it was added")
		}
	}
	for _, s := range ds.Sessions {
		if s.UserID != nil {
			require.True(t, users[*s.UserID])
		}
		require.True(t, s.SessionEnd.After(s.SessionStart))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	cfg := smallConfig()
	first := datagen.Generate(cfg)
	second := datagen.Generate(cfg)

	// Timestamps are anchored on the wall clock, so only the drawn values
	// are compared.
	require.Equal(t, first.Users, second.Users)
	require.Equal(t, len(first.OrderItems), len(second.OrderItems))
	for i := range first.Products {
		require.Equal(t, first.Products[i].ProductID, second.Products[i].ProductID)
		require.Equal(t, first.Products[i].Name, second.Products[i].Name)
		require.True(t, first.Products[i].Price.Equal(second.Products[i].Price))
	}
	for i := range first.Orders {
		require.Equal(t, first.Orders[i].OrderID, second.Orders[i].OrderID)
	}

	// Different seeds diverge.
	cfg.Seed = 7
	other := datagen.Generate(cfg)
	require.NotEqual(t, first.Users[0].UserID, other.Users[0].UserID)
}

func TestGenerateUniqueEmails(t *testing.T) {
	ds := datagen.Generate(smallConfig())

	seen := map[string]bool{}
	for _, u := range ds.Users {
		require.False(t, seen[u.Email], "duplicate email %s", u.Email)
		seen[u.Email] = true
	}
}
