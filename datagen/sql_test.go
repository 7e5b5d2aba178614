package datagen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/dukahq/duka-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestQuoteEscapesSingleQuotes(t *testing.T) {
	require.Equal(t, "'O''Brien'", quote("O'Brien"))
	require.Equal(t, "''", quote(""))
}

func TestQuotePtrNull(t *testing.T) {
	require.Equal(t, "NULL", quotePtr(nil))
	require.Equal(t, "NULL", quoteTimePtr(nil))

	s := "user-1"
	require.Equal(t, "'user-1'", quotePtr(&s))
}

func TestBoolLit(t *testing.T) {
	require.Equal(t, "TRUE", boolLit(true))
	require.Equal(t, "FALSE", boolLit(false))
}

func TestWriteSQL(t *testing.T) {
	addedAt := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	removedAt := addedAt.Add(time.Hour)

	ds := &Dataset{
		Users: []models.User{{
			UserID:       "u1",
			Name:         "D'Angelo Reed",
			Email:        "dangelo@example.com",
			SignupSource: "organic",
		}},
		Products: []models.Product{{
			ProductID: "p1",
			Name:      "Firewall Pro",
			Category:  "Electronics",
			Price:     decimal.NewFromFloat(19.9),
			CreatedAt: addedAt,
			IsActive:  true,
		}},
		Carts: []models.Cart{{
			CartID:    "c1",
			UserID:    "u1",
			CreatedAt: addedAt,
			Status:    models.CartStatusActive,
		}},
		CartItems: []models.CartItem{
			{CartItemID: "ci1", CartID: "c1", ProductID: "p1", AddedAt: addedAt},
			{CartItemID: "ci2", CartID: "c1", ProductID: "p1", AddedAt: addedAt, RemovedAt: &removedAt},
		},
		Sessions: []models.Session{{
			SessionID:     "s1",
			TrafficSource: "Direct",
			SessionStart:  addedAt,
			SessionEnd:    removedAt,
			MadePurchase:  false,
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSQL(&buf, ds))
	out := buf.String()

	require.Contains(t, out, "-- Users\nINSERT INTO users (user_id, name, email, signup_source) VALUES")
	require.Contains(t, out, "'D''Angelo Reed'")
	require.Contains(t, out, "19.90")
	require.Contains(t, out, "'2026-05-10 12:00:00'")

	// The second cart item kept its removal timestamp, the first is NULL.
	require.Contains(t, out, "('ci1', 'c1', 'p1', '2026-05-10 12:00:00', NULL)")
	require.Contains(t, out, "('ci2', 'c1', 'p1', '2026-05-10 12:00:00', '2026-05-10 13:00:00')")

	// Anonymous session: NULL user id, FALSE purchase flag.
	require.Contains(t, out, "('s1', NULL, 'Direct'")
	require.Contains(t, out, "FALSE)")

	// Empty tables emit no batch at all.
	require.NotContains(t, out, "-- Orders")
	require.NotContains(t, out, "-- Reviews")

	// Every emitted batch is a single terminated statement.
	for _, batch := range strings.Split(strings.TrimSpace(out), "\n\n") {
		require.True(t, strings.HasSuffix(batch, ";"), "batch not terminated: %q", batch)
	}
}
