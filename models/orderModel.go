package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatusCompleted is the only status checkout writes; there is no
// fulfilment pipeline behind it.
const OrderStatusCompleted = "completed"

// Orders are written once at checkout and never mutated; there is no
// cancellation or refund path.
type Order struct {
	OrderID     string          `json:"orderId" gorm:"column:order_id;primaryKey"`
	UserID      string          `json:"userId" gorm:"column:user_id"`
	OrderDate   time.Time       `json:"orderDate" gorm:"column:order_date"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount" gorm:"column:total_amount;type:numeric(10,2)"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	OrderItemID string          `json:"orderItemId" gorm:"column:order_item_id;primaryKey"`
	OrderID     string          `json:"orderId" gorm:"column:order_id"`
	ProductID   string          `json:"productId" gorm:"column:product_id"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"column:unit_price;type:numeric(10,2)"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
