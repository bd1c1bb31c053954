package models

import "time"

// Bid is a delivery price offer against an order. The order id is a weak
// reference: placement never checks that the order exists. Status is
// "Pending" until assignment marks the winner "Won"; losing bids stay
// Pending, which after an assignment means "did not win".
type Bid struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderID          uint      `gorm:"index" json:"orderId"`
	DeliveryPersonID uint      `json:"deliveryPersonId"`
	DeliveryPerson   string    `json:"deliveryPerson"` // display name shown in bid listings
	Amount           float64   `json:"amount"`
	Status           string    `gorm:"not null" json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Bid model
func (Bid) TableName() string {
	return "bids"
}
