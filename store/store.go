package store

import (
	"context"
	"errors"

	"github.com/dukahq/duka-api/models"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a looked-up row does not exist.
var ErrNotFound = errors.New("record not found")

// CartLine is one active cart item joined to its product.
type CartLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// ProductRating is a top-rated report row.
type ProductRating struct {
	Name       string  `json:"name"`
	AvgRating  float64 `json:"avgRating"`
	NumReviews int64   `json:"numReviews"`
}

// ProductSales is a top-selling report row for the current calendar quarter.
type ProductSales struct {
	Name      string `json:"name"`
	TotalSold int64  `json:"totalSold"`
}

// MonthlyRepeat counts users that placed more than one order in a month.
type MonthlyRepeat struct {
	Month           string `json:"month" gorm:"column:month_text"`
	RepeatCustomers int64  `json:"repeatCustomers"`
}

// AbandonedProduct counts distinct abandoned carts a product appears in.
type AbandonedProduct struct {
	Name           string `json:"name"`
	AbandonedCount int64  `json:"abandonedCount"`
}

// Store is the persistence collaborator for the storefront workflows.
// Every method issues parameterized statements; InTx runs its callback
// against a transaction-bound Store and rolls everything back when the
// callback errors.
type Store interface {
	ListActiveProducts(ctx context.Context) ([]models.Product, error)

	GetCart(ctx context.Context, cartID string) (models.Cart, error)
	CreateCart(ctx context.Context, cart *models.Cart) error
	UpdateCartStatus(ctx context.Context, cartID, status string) error
	CreateCartItem(ctx context.Context, item *models.CartItem) error
	ActiveCartLines(ctx context.Context, cartID string) ([]CartLine, error)
	ActiveCartProductIDs(ctx context.Context, cartID string) ([]string, error)
	CountActiveCartItems(ctx context.Context, cartID string) (int64, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	CreateOrderItem(ctx context.Context, item *models.OrderItem) error

	CreateReview(ctx context.Context, review *models.Review) error

	TopRated(ctx context.Context, limit int) ([]ProductRating, error)
	TopSelling(ctx context.Context, limit int) ([]ProductSales, error)
	RepeatCustomers(ctx context.Context) ([]MonthlyRepeat, error)
	AbandonedProducts(ctx context.Context, limit int) ([]AbandonedProduct, error)

	InTx(ctx context.Context, fn func(Store) error) error
}
