package models

// User rows are created externally (by the data generator or a registration
// flow that does not live here); the workflows only reference them.
type User struct {
	UserID       string `json:"userId" gorm:"column:user_id;primaryKey"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	SignupSource string `json:"signupSource" gorm:"column:signup_source"`
}

func (User) TableName() string {
	return "users"
}
