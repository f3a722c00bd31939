package services

import (
	"errors"
	"fmt"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseService owns the purchase ledger and its lifecycle:
// created -> paid -> delivered, no skips, no reversals.
type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Create records a purchase and decrements item stock in one transaction.
// The decrement is conditional on quantity >= requested, so concurrent
// attempts against low stock can never drive quantity negative.
func (s *PurchaseService) Create(buyer string, req *dto.CreatePurchaseRequest) (*models.Purchase, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	var purchase models.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Item{}).
			Where("id = ? AND quantity >= ?", req.ItemID, req.Quantity).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", req.Quantity))
		if res.Error != nil {
			return fmt.Errorf("failed to decrement stock: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var item models.Item
			if err := tx.First(&item, "id = ?", req.ItemID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return fmt.Errorf("failed to fetch item: %w", err)
			}
			return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, req.Quantity, item.Quantity)
		}

		var item models.Item
		if err := tx.First(&item, "id = ?", req.ItemID).Error; err != nil {
			return fmt.Errorf("failed to fetch item: %w", err)
		}

		purchase = models.Purchase{
			ID:       uuid.New(),
			Buyer:    buyer,
			ItemID:   req.ItemID,
			ItemName: item.Name,
			Quantity: req.Quantity,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to create purchase: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (s *PurchaseService) Get(id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	if err := s.db.First(&purchase, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch purchase: %w", err)
	}
	return &purchase, nil
}

func (s *PurchaseService) ListByBuyer(buyer string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Where("buyer = ?", buyer).Order("created_at").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

func (s *PurchaseService) ListAll() ([]models.Purchase, error) {
	var purchases []models.Purchase
	if err := s.db.Order("created_at").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	return purchases, nil
}

// ConfirmDelivery transitions paid -> delivered. Anything else is an
// out-of-order transition.
func (s *PurchaseService) ConfirmDelivery(id uuid.UUID) (*models.Purchase, error) {
	var purchase models.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&purchase, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch purchase: %w", err)
		}
		if !purchase.Paid {
			return fmt.Errorf("%w: purchase is not paid", ErrInvalidState)
		}
		if purchase.Delivery {
			return fmt.Errorf("%w: purchase already delivered", ErrInvalidState)
		}

		res := tx.Model(&models.Purchase{}).
			Where("id = ? AND paid = ? AND delivery = ?", id, true, false).
			Update("delivery", true)
		if res.Error != nil {
			return fmt.Errorf("failed to confirm delivery: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: purchase is not awaiting delivery", ErrInvalidState)
		}
		purchase.Delivery = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// Delete removes a purchase while it is still unpaid and returns its quantity
// to the item. Paid or delivered orders are immutable history.
func (s *PurchaseService) Delete(id uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		if err := tx.First(&purchase, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to fetch purchase: %w", err)
		}
		if purchase.Paid {
			return fmt.Errorf("%w: paid purchases cannot be deleted", ErrInvalidState)
		}

		res := tx.Where("id = ? AND paid = ?", id, false).Delete(&models.Purchase{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete purchase: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: paid purchases cannot be deleted", ErrInvalidState)
		}

		// Restock so abandoned orders do not leak inventory.
		if err := tx.Model(&models.Item{}).
			Where("id = ?", purchase.ItemID).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", purchase.Quantity)).Error; err != nil {
			return fmt.Errorf("failed to restock item: %w", err)
		}
		return nil
	})
}
