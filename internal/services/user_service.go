package services

import (
	"errors"
	"fmt"

	"github.com/drilledtools/backend/internal/dto"
	"github.com/drilledtools/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService owns the identity store. It is the only component allowed to
// write Role, and only upward: customer -> admin.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Upsert creates or updates the record keyed by email. The conflict clause
// assigns profile columns only, so an existing Role survives any upsert.
func (s *UserService) Upsert(email string, req *dto.UpsertUserRequest) (*models.User, error) {
	user := models.User{
		ID:      uuid.New(),
		Email:   email,
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Role:    models.RoleCustomer,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "phone", "address", "updated_at"}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	var stored models.User
	if err := s.db.Where("email = ?", email).First(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return &stored, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// Promote elevates the user to admin. There is no downgrade path.
func (s *UserService) Promote(email string) error {
	res := s.db.Model(&models.User{}).
		Where("email = ?", email).
		Update("role", models.RoleAdmin)
	if res.Error != nil {
		return fmt.Errorf("failed to promote user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserService) Delete(email string) error {
	res := s.db.Where("email = ?", email).Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsAdmin reports whether the email belongs to an admin. An absent record is
// simply not an admin.
func (s *UserService) IsAdmin(email string) (bool, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to fetch user: %w", err)
	}
	return user.IsAdmin(), nil
}
