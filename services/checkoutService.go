package services

import (
	"context"
	"errors"
	"time"

	"github.com/dukahq/duka-api/models"
	"github.com/dukahq/duka-api/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// flatUnitPrice is the fixed per-item price checkout charges. It is a
// placeholder inherited from the system this replaces — the catalog price is
// deliberately not consulted, so order totals are demo numbers, not
// financial truth.
var flatUnitPrice = decimal.NewFromFloat(20.0)

// CheckoutService converts an active cart into an order: one order row, one
// order item per active cart item, and the cart status flipped to converted,
// all inside a single transaction.
type CheckoutService struct {
	store store.Store
}

func NewCheckoutService(s store.Store) *CheckoutService {
	return &CheckoutService{store: s}
}

// Checkout runs the conversion and returns the new order id. Terminal carts
// are rejected (ErrCartNotActive) and carts with no active items place no
// order (ErrCartEmpty). Any write failure rolls the whole sequence back —
// partial orders are never observable.
func (s *CheckoutService) Checkout(ctx context.Context, cartID string) (string, error) {
	if cartID == "" {
		return "", ErrCartEmpty
	}

	var orderID string
	err := s.store.InTx(ctx, func(tx store.Store) error {
		cart, err := tx.GetCart(ctx, cartID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCartNotFound
			}
			return err
		}
		if cart.Status != models.CartStatusActive {
			return ErrCartNotActive
		}

		count, err := tx.CountActiveCartItems(ctx, cartID)
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrCartEmpty
		}

		order := models.Order{
			OrderID:     uuid.NewString(),
			UserID:      cart.UserID,
			OrderDate:   time.Now(),
			Status:      models.OrderStatusCompleted,
			TotalAmount: flatUnitPrice.Mul(decimal.NewFromInt(count)),
		}
		if err := tx.CreateOrder(ctx, &order); err != nil {
			return err
		}

		productIDs, err := tx.ActiveCartProductIDs(ctx, cartID)
		if err != nil {
			return err
		}
		for _, productID := range productIDs {
			item := models.OrderItem{
				OrderItemID: uuid.NewString(),
				OrderID:     order.OrderID,
				ProductID:   productID,
				Quantity:    1,
				UnitPrice:   flatUnitPrice,
			}
			if err := tx.CreateOrderItem(ctx, &item); err != nil {
				return err
			}
		}

		if err := tx.UpdateCartStatus(ctx, cartID, models.CartStatusConverted); err != nil {
			return err
		}

		orderID = order.OrderID
		return nil
	})
	if err != nil {
		return "", err
	}
	return orderID, nil
}
