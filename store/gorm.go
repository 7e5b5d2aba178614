package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/dukahq/duka-api/models"
	"gorm.io/gorm"
)

// GormStore implements Store on top of a gorm connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) ListActiveProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&products)
	if result.Error != nil {
		return nil, fmt.Errorf("list products: %w", result.Error)
	}
	return products, nil
}

func (s *GormStore) GetCart(ctx context.Context, cartID string) (models.Cart, error) {
	var cart models.Cart
	result := s.db.WithContext(ctx).Where("cart_id = ?", cartID).First(&cart)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return models.Cart{}, ErrNotFound
		}
		return models.Cart{}, fmt.Errorf("get cart: %w", result.Error)
	}
	return cart, nil
}

func (s *GormStore) CreateCart(ctx context.Context, cart *models.Cart) error {
	if result := s.db.WithContext(ctx).Create(cart); result.Error != nil {
		return fmt.Errorf("create cart: %w", result.Error)
	}
	return nil
}

func (s *GormStore) UpdateCartStatus(ctx context.Context, cartID, status string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Cart{}).
		Where("cart_id = ?", cartID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("update cart status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	if result := s.db.WithContext(ctx).Create(item); result.Error != nil {
		return fmt.Errorf("create cart item: %w", result.Error)
	}
	return nil
}

func (s *GormStore) ActiveCartLines(ctx context.Context, cartID string) ([]CartLine, error) {
	var lines []CartLine
	result := s.db.WithContext(ctx).Raw(`
		SELECT p.product_id, p.name, p.price
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.product_id
		WHERE ci.cart_id = ?
		AND ci.removed_at IS NULL`, cartID).Scan(&lines)
	if result.Error != nil {
		return nil, fmt.Errorf("active cart lines: %w", result.Error)
	}
	return lines, nil
}

func (s *GormStore) ActiveCartProductIDs(ctx context.Context, cartID string) ([]string, error) {
	var ids []string
	result := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND removed_at IS NULL", cartID).
		Pluck("product_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("active cart product ids: %w", result.Error)
	}
	return ids, nil
}

func (s *GormStore) CountActiveCartItems(ctx context.Context, cartID string) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ? AND removed_at IS NULL", cartID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("count cart items: %w", result.Error)
	}
	return count, nil
}

func (s *GormStore) CreateOrder(ctx context.Context, order *models.Order) error {
	if result := s.db.WithContext(ctx).Create(order); result.Error != nil {
		return fmt.Errorf("create order: %w", result.Error)
	}
	return nil
}

func (s *GormStore) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	if result := s.db.WithContext(ctx).Create(item); result.Error != nil {
		return fmt.Errorf("create order item: %w", result.Error)
	}
	return nil
}

func (s *GormStore) CreateReview(ctx context.Context, review *models.Review) error {
	if result := s.db.WithContext(ctx).Create(review); result.Error != nil {
		return fmt.Errorf("create review: %w", result.Error)
	}
	return nil
}

func (s *GormStore) TopRated(ctx context.Context, limit int) ([]ProductRating, error) {
	var rows []ProductRating
	result := s.db.WithContext(ctx).Raw(`
		SELECT p.name, ROUND(AVG(r.rating), 2) AS avg_rating, COUNT(r.review_id) AS num_reviews
		FROM products p
		JOIN reviews r ON p.product_id = r.product_id
		WHERE p.is_active = TRUE
		GROUP BY p.product_id, p.name
		ORDER BY avg_rating DESC, num_reviews DESC
		LIMIT ?`, limit).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("top rated: %w", result.Error)
	}
	return rows, nil
}

func (s *GormStore) TopSelling(ctx context.Context, limit int) ([]ProductSales, error) {
	var rows []ProductSales
	result := s.db.WithContext(ctx).Raw(`
		SELECT p.name, SUM(oi.quantity) AS total_sold
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.order_id
		JOIN products p ON oi.product_id = p.product_id
		WHERE DATE_TRUNC('quarter', o.order_date) = DATE_TRUNC('quarter', CURRENT_DATE)
		GROUP BY p.product_id, p.name
		ORDER BY total_sold DESC
		LIMIT ?`, limit).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("top selling: %w", result.Error)
	}
	return rows, nil
}

func (s *GormStore) RepeatCustomers(ctx context.Context) ([]MonthlyRepeat, error) {
	var rows []MonthlyRepeat
	result := s.db.WithContext(ctx).Raw(`
		WITH monthly_orders AS (
			SELECT user_id, DATE_TRUNC('month', order_date) AS month, COUNT(order_id) AS orders_count
			FROM orders
			GROUP BY user_id, month
		)
		SELECT TO_CHAR(month, 'FMMonth YYYY') AS month_text, COUNT(user_id) AS repeat_customers
		FROM monthly_orders
		WHERE orders_count > 1
		GROUP BY month
		ORDER BY month`).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("repeat customers: %w", result.Error)
	}
	return rows, nil
}

func (s *GormStore) AbandonedProducts(ctx context.Context, limit int) ([]AbandonedProduct, error) {
	var rows []AbandonedProduct
	result := s.db.WithContext(ctx).Raw(`
		SELECT p.name, COUNT(DISTINCT ci.cart_id) AS abandoned_count
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.cart_id
		JOIN products p ON ci.product_id = p.product_id
		WHERE c.status = ?
		GROUP BY p.product_id, p.name
		ORDER BY abandoned_count DESC
		LIMIT ?`, models.CartStatusAbandoned, limit).Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("abandoned products: %w", result.Error)
	}
	return rows, nil
}

// InTx runs fn against a transaction-bound store. Any error from fn rolls
// the whole transaction back, so checkout's multi-table write sequence is
// all or nothing.
func (s *GormStore) InTx(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
