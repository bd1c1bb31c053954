package models

import "time"

// ReputationEntry is an append-only mark against an account: either a
// warning with a free-text reason, or a rating in some category such as
// "food" or "delivery". Entries are never mutated or deleted.
type ReputationEntry struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	UserID    uint      `gorm:"index;not null" json:"-"`
	Type      string    `gorm:"not null" json:"type"`
	Rating    *float64  `json:"rating,omitempty"`
	OrderID   *uint     `json:"orderId,omitempty"` // weak reference, never validated
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"date"`
}

// TableName specifies the table name for the ReputationEntry model
func (ReputationEntry) TableName() string {
	return "reputation_entries"
}
