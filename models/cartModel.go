package models

import "time"

// Cart statuses. A cart starts active and terminates in exactly one of
// abandoned or converted; converted only ever happens through checkout.
const (
	CartStatusActive    = "active"
	CartStatusAbandoned = "abandoned"
	CartStatusConverted = "converted"
)

type Cart struct {
	CartID    string    `json:"cartId" gorm:"column:cart_id;primaryKey"`
	UserID    string    `json:"userId" gorm:"column:user_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	Status    string    `json:"status"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem rows are soft deleted: a non-nil RemovedAt means the item has
// left the cart, the row itself is never physically deleted.
type CartItem struct {
	CartItemID string     `json:"cartItemId" gorm:"column:cart_item_id;primaryKey"`
	CartID     string     `json:"cartId" gorm:"column:cart_id"`
	ProductID  string     `json:"productId" gorm:"column:product_id"`
	AddedAt    time.Time  `json:"addedAt" gorm:"column:added_at"`
	RemovedAt  *time.Time `json:"removedAt" gorm:"column:removed_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
