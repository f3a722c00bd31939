package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentReceipt is append-only: written exactly once per confirmed payment.
// The unique index on PurchaseID enforces the one-receipt-per-purchase
// invariant even under concurrent confirmations.
type PaymentReceipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PurchaseID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"purchase_id"`
	TransactionID string          `gorm:"size:255;not null;index" json:"transactionId"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Currency      string          `gorm:"size:10;not null" json:"currency"`
	CreatedAt     time.Time       `json:"created_at"`
}
