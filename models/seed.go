package models

import (
	"log"

	"gorm.io/gorm"
)

// Seed inserts the demo accounts and the demo order the frontend walkthrough
// expects. It only runs against an empty users table, so every boot of the
// default in-memory database rebuilds exactly this state.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := []User{
		{Name: "John Customer", Email: "customer@test.com", Password: "customer123", UserType: "customer", Phone: "555-0101", WalletBalance: 100.0, Approved: true},
		{Name: "Jane VIP Customer", Email: "vip@test.com", Password: "vip123", UserType: "customer", Phone: "555-0102", WalletBalance: 500.0, IsVIP: true, Approved: true},
		{Name: "Chef Mario", Email: "chef@test.com", Password: "chef123", UserType: "chef", Phone: "555-0201", Approved: true},
		{Name: "Delivery Driver", Email: "delivery@test.com", Password: "delivery123", UserType: "delivery", Phone: "555-0301", Approved: true},
		{Name: "Manager Admin", Email: "manager@test.com", Password: "manager123", UserType: "manager", Phone: "555-0401", Approved: true},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	order := Order{
		UserID: users[0].ID,
		Items: OrderItems{
			{ID: 1, Name: "Margherita Pizza", Price: 12.99, Quantity: 2},
			{ID: 2, Name: "Pepperoni Pizza", Price: 14.99, Quantity: 1},
			{ID: 3, Name: "Caesar Salad", Price: 8.99, Quantity: 1},
		},
		Subtotal: 49.96,
		Discount: 0.0,
		Total:    49.96,
		Status:   "Preparing",
	}
	if err := db.Create(&order).Error; err != nil {
		return err
	}

	log.Println("Seeded demo accounts and demo order")
	return nil
}
