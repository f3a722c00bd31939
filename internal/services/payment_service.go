package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/drilledtools/backend/internal/models"
	"github.com/drilledtools/backend/internal/payments"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentService reconciles purchases against the external gateway. The
// gateway call and the ledger write happen on separate requests; no store
// transaction ever spans the gateway.
type PaymentService struct {
	db       *gorm.DB
	gateway  payments.Gateway
	currency string
}

func NewPaymentService(db *gorm.DB, gateway payments.Gateway, currency string) *PaymentService {
	return &PaymentService{db: db, gateway: gateway, currency: currency}
}

// CreateIntent converts the decimal price to integer minor units and asks the
// gateway for a client-usable handle. Purchase state is untouched.
func (s *PaymentService) CreateIntent(ctx context.Context, price decimal.Decimal) (*payments.Intent, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	return s.gateway.CreateIntent(ctx, MinorUnits(price), s.currency)
}

// ConfirmPayment atomically writes the payment receipt and transitions the
// purchase to paid. Confirming an already-paid purchase is a no-op returning
// the existing state; exactly one receipt ever exists per purchase.
func (s *PaymentService) ConfirmPayment(purchaseID uuid.UUID, transactionID string, amount decimal.Decimal, currency string) (*models.Purchase, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("%w: transactionId is required", ErrInvalidInput)
	}
	if currency == "" {
		currency = s.currency
	}

	var purchase models.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&purchase, "id = ?", purchaseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch purchase: %w", err)
		}
		if purchase.Paid {
			return nil
		}

		// Receipt before state flip; the unique index on purchase_id keeps
		// racing confirmations down to a single receipt.
		var existing int64
		if err := tx.Model(&models.PaymentReceipt{}).
			Where("purchase_id = ?", purchaseID).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check receipts: %w", err)
		}
		if existing == 0 {
			receipt := models.PaymentReceipt{
				ID:            uuid.New(),
				PurchaseID:    purchaseID,
				TransactionID: transactionID,
				Amount:        amount,
				Currency:      currency,
			}
			if err := tx.Create(&receipt).Error; err != nil {
				return fmt.Errorf("failed to write receipt: %w", err)
			}
		}

		res := tx.Model(&models.Purchase{}).
			Where("id = ? AND paid = ?", purchaseID, false).
			Updates(map[string]interface{}{
				"paid":           true,
				"transaction_id": transactionID,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to mark purchase paid: %w", res.Error)
		}

		if err := tx.First(&purchase, "id = ?", purchaseID).Error; err != nil {
			return fmt.Errorf("failed to reload purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// ReceiptFor returns the receipt linked to a purchase, if any.
func (s *PaymentService) ReceiptFor(purchaseID uuid.UUID) (*models.PaymentReceipt, error) {
	var receipt models.PaymentReceipt
	if err := s.db.First(&receipt, "purchase_id = ?", purchaseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}
	return &receipt, nil
}
