package models

// Dish represents a menu catalog entry. Orders reference dishes only by the
// line items the client submits; there is no foreign key back to this table.
type Dish struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Chef        string  `json:"chef"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	Rating      float64 `json:"rating"`
}

// TableName specifies the table name for the Dish model
func (Dish) TableName() string {
	return "dishes"
}
