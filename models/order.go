package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// OrderItem is a line item exactly as the client submitted it. Item ids are
// not checked against the menu catalog.
type OrderItem struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderItems is stored as a serialized JSON column so orders echo their line
// items verbatim.
type OrderItems []OrderItem

// Value implements driver.Valuer for storing items as JSON.
func (items OrderItems) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for reading items back from the JSON column.
func (items *OrderItems) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, items)
	case string:
		return json.Unmarshal([]byte(v), items)
	default:
		return fmt.Errorf("unsupported order items column type %T", value)
	}
}

// Order represents a placed food order. Status is "Placed" on creation and
// "Assigned for Delivery" once a bid is resolved; the demo seed also uses
// "Preparing". Total is the amount actually charged: the declared total minus
// the VIP discount.
type Order struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"index;not null" json:"userId"`
	Items            OrderItems `gorm:"type:text" json:"items"`
	Subtotal         float64    `json:"subtotal"`
	Discount         float64    `json:"discount"`
	Total            float64    `json:"total"`
	Status           string     `gorm:"not null" json:"status"`
	DeliveryPersonID *uint      `json:"deliveryPersonId,omitempty"` // set when a delivery bid wins
	ManagerOverride  bool       `json:"managerOverride,omitempty"`
	Justification    string     `json:"justification,omitempty"` // required when a manager forces the assignment
	CreatedAt        time.Time  `json:"createdAt"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
