package models

import "time"

// Review rows are append only. There is no uniqueness constraint: a user may
// rate the same product any number of times, and purchase is never checked.
type Review struct {
	ReviewID   string    `json:"reviewId" gorm:"column:review_id;primaryKey"`
	UserID     string    `json:"userId" gorm:"column:user_id"`
	ProductID  string    `json:"productId" gorm:"column:product_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"reviewDate" gorm:"column:review_date"`
}

func (Review) TableName() string {
	return "reviews"
}
