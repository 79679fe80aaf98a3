package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

// Create creates a new promotion
func (r *PromotionRepository) Create(promotion *models.Promotion) error {
	return r.db.Create(promotion).Error
}

// GetByID retrieves a promotion by ID
func (r *PromotionRepository) GetByID(id uuid.UUID) (*models.Promotion, error) {
	var promotion models.Promotion
	err := r.db.Where("id = ?", id).First(&promotion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promotion, nil
}

// Update saves an existing promotion
func (r *PromotionRepository) Update(promotion *models.Promotion) error {
	return r.db.Save(promotion).Error
}

// Delete soft deletes a promotion
func (r *PromotionRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Promotion{}).Error
}

// List retrieves all promotions, newest first
func (r *PromotionRepository) List() ([]models.Promotion, error) {
	var promotions []models.Promotion
	err := r.db.Order("created_at DESC").Find(&promotions).Error
	return promotions, err
}
