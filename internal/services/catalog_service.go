package services

import (
	"errors"
	"fmt"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) Create(req *dto.CreateItemRequest) (*models.Item, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !req.Price.IsPositive() {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	item := models.Item{
		ID:       uuid.New(),
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Metadata: req.Metadata,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) List() ([]models.Item, error) {
	var items []models.Item
	if err := s.db.Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *CatalogService) Get(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return &item, nil
}

func (s *CatalogService) Update(id uuid.UUID, req *dto.UpdateItemRequest) (*models.Item, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if !req.Price.IsPositive() {
			return nil, fmt.Errorf("%w: price must be positive", ErrInvalidInput)
		}
		updates["price"] = *req.Price
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		updates["quantity"] = *req.Quantity
	}
	if len(req.Metadata) > 0 {
		updates["metadata"] = req.Metadata
	}
	if len(updates) == 0 {
		return s.Get(id)
	}

	res := s.db.Model(&models.Item{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(id)
}

func (s *CatalogService) Delete(id uuid.UUID) error {
	res := s.db.Delete(&models.Item{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// MinorUnits converts a decimal price to integer minor currency units. The
// gateway is never trusted to do this conversion.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}
