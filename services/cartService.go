package services

import (
	"context"
	"errors"
	"time"

	"github.com/dukahq/duka-api/models"
	"github.com/dukahq/duka-api/store"
	"github.com/google/uuid"
)

// CartService owns the cart lifecycle up to its terminal transition: it
// creates carts, appends items, lists what is still in the cart and marks
// carts abandoned. Conversion belongs to CheckoutService.
type CartService struct {
	store store.Store
}

func NewCartService(s store.Store) *CartService {
	return &CartService{store: s}
}

// Create inserts a fresh active cart for the given user. The user is an
// explicit parameter: attribution is the caller's job, the service never
// picks one.
func (s *CartService) Create(ctx context.Context, userID string) (models.Cart, error) {
	cart := models.Cart{
		CartID:    uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		Status:    models.CartStatusActive,
	}
	if err := s.store.CreateCart(ctx, &cart); err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

// AddItem appends a cart item with a NULL removed_at. The product id is not
// validated here; an unknown product fails at the storage layer with a
// foreign key violation and that failure propagates.
func (s *CartService) AddItem(ctx context.Context, cartID, productID string) (string, error) {
	item := models.CartItem{
		CartItemID: uuid.NewString(),
		CartID:     cartID,
		ProductID:  productID,
		AddedAt:    time.Now(),
	}
	if err := s.store.CreateCartItem(ctx, &item); err != nil {
		return "", err
	}
	return item.CartItemID, nil
}

// ActiveItems returns the cart's current lines, joined to products. An item
// is in the cart iff its removed_at is NULL. The empty binding yields an
// empty list, not an error.
func (s *CartService) ActiveItems(ctx context.Context, cartID string) ([]store.CartLine, error) {
	if cartID == "" {
		return []store.CartLine{}, nil
	}
	return s.store.ActiveCartLines(ctx, cartID)
}

// Abandon marks an active cart abandoned. Carts that already reached a
// terminal status are left untouched: abandoning a converted cart is an
// error, never a silent overwrite.
func (s *CartService) Abandon(ctx context.Context, cartID string) error {
	cart, err := s.store.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	if cart.Status != models.CartStatusActive {
		return ErrCartNotActive
	}
	return s.store.UpdateCartStatus(ctx, cartID, models.CartStatusAbandoned)
}
