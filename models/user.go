package models

import "time"

// User represents a platform account. Customers, chefs, delivery staff and
// managers share one record type distinguished by UserType.
type User struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Email         string    `gorm:"index;not null" json:"email"` // sign-in key; uniqueness is not enforced
	Password      string    `gorm:"not null" json:"-"`           // stored as provided, never returned
	UserType      string    `json:"userType"`                    // "customer", "chef", "delivery" or "manager"
	Phone         string    `json:"phone"`
	WalletBalance float64   `json:"walletBalance"`
	IsVIP         bool      `json:"isVIP"`
	Approved      bool      `json:"approved"` // new signups wait for manager approval
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
