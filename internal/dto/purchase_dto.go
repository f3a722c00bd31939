package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePurchaseRequest struct {
	ItemID   uuid.UUID `json:"item_id"`
	Quantity int       `json:"quantity"`
}

// ConfirmPaymentRequest is what the client posts once the gateway reports a
// successful charge.
type ConfirmPaymentRequest struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
}
