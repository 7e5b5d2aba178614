package models

import "time"

// Session is an analytics-only table populated by the data generator; the
// storefront never reads or writes it. UserID is nullable — anonymous
// traffic carries no user.
type Session struct {
	SessionID     string    `json:"sessionId" gorm:"column:session_id;primaryKey"`
	UserID        *string   `json:"userId" gorm:"column:user_id"`
	TrafficSource string    `json:"trafficSource" gorm:"column:traffic_source"`
	SessionStart  time.Time `json:"sessionStart" gorm:"column:session_start"`
	SessionEnd    time.Time `json:"sessionEnd" gorm:"column:session_end"`
	MadePurchase  bool      `json:"madePurchase" gorm:"column:made_purchase"`
}

func (Session) TableName() string {
	return "sessions"
}
