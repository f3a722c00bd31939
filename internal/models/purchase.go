package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase moves through created -> paid -> delivered, never skipping or
// reversing a state. TransactionID is set exactly when Paid flips to true.
type Purchase struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Buyer         string    `gorm:"size:255;not null;index" json:"buyer"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	ItemName      string    `gorm:"size:255" json:"item_name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	Paid          bool      `gorm:"not null;default:false" json:"paid"`
	Delivery      bool      `gorm:"not null;default:false" json:"delivery"`
	TransactionID *string   `gorm:"size:255" json:"transactionId,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
