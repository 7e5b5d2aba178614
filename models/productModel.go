package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ProductID string          `json:"productId" gorm:"column:product_id;primaryKey"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(10,2)"`
	CreatedAt time.Time       `json:"createdAt" gorm:"column:created_at"`
	IsActive  bool            `json:"isActive" gorm:"column:is_active"`
}

func (Product) TableName() string {
	return "products"
}
