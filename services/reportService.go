package services

import (
	"context"

	"github.com/dukahq/duka-api/store"
)

const (
	topRatedLimit   = 10
	topSellingLimit = 10
	abandonedLimit  = 5
)

// ReportService exposes the read-only analytics projections. Each report is
// a single aggregation query with no state of its own.
type ReportService struct {
	store store.Store
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{store: s}
}

// TopRated lists the ten best products by average rating, ties broken by
// review count, highest first.
func (s *ReportService) TopRated(ctx context.Context) ([]store.ProductRating, error) {
	return s.store.TopRated(ctx, topRatedLimit)
}

// TopSelling lists the ten products with the most units sold in the current
// calendar quarter.
func (s *ReportService) TopSelling(ctx context.Context) ([]store.ProductSales, error) {
	return s.store.TopSelling(ctx, topSellingLimit)
}

// RepeatCustomers counts, per month, the users who placed more than one
// order that month.
func (s *ReportService) RepeatCustomers(ctx context.Context) ([]store.MonthlyRepeat, error) {
	return s.store.RepeatCustomers(ctx)
}

// AbandonedProducts lists the five products found in the most abandoned
// carts, by distinct cart count.
func (s *ReportService) AbandonedProducts(ctx context.Context) ([]store.AbandonedProduct, error) {
	return s.store.AbandonedProducts(ctx, abandonedLimit)
}
