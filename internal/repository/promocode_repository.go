package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type PromocodeRepository struct {
	db *gorm.DB
}

func NewPromocodeRepository(db *gorm.DB) *PromocodeRepository {
	return &PromocodeRepository{db: db}
}

// Create creates a new promocode
func (r *PromocodeRepository) Create(promocode *models.Promocode) error {
	return r.db.Create(promocode).Error
}

// GetByID retrieves a promocode by ID
func (r *PromocodeRepository) GetByID(id uuid.UUID) (*models.Promocode, error) {
	var promocode models.Promocode
	err := r.db.Where("id = ?", id).First(&promocode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promocode, nil
}

// GetByCode retrieves a promocode by its code
func (r *PromocodeRepository) GetByCode(code string) (*models.Promocode, error) {
	var promocode models.Promocode
	err := r.db.Where("code = ?", code).First(&promocode).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &promocode, nil
}

// Update saves an existing promocode
func (r *PromocodeRepository) Update(promocode *models.Promocode) error {
	return r.db.Save(promocode).Error
}

// Delete soft deletes a promocode
func (r *PromocodeRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Promocode{}).Error
}

// List retrieves a paginated list of promocodes
func (r *PromocodeRepository) List(page, limit int) ([]models.Promocode, int64, error) {
	var promocodes []models.Promocode
	var total int64

	query := r.db.Model(&models.Promocode{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&promocodes).Error; err != nil {
		return nil, 0, err
	}

	return promocodes, total, nil
}

// IncrementUsage increments the usage count of a promocode
func (r *PromocodeRepository) IncrementUsage(id uuid.UUID) error {
	return r.db.Model(&models.Promocode{}).
		Where("id = ?", id).
		UpdateColumn("current_usage_count", gorm.Expr("current_usage_count + ?", 1)).Error
}

// CreateUsage creates a new promocode usage record
func (r *PromocodeRepository) CreateUsage(usage *models.PromocodeUsage) error {
	return r.db.Create(usage).Error
}

// CountUsageByClient counts how many times a client used a promocode
func (r *PromocodeRepository) CountUsageByClient(promocodeID, clientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.PromocodeUsage{}).
		Where("promocode_id = ? AND client_id = ?", promocodeID, clientID).
		Count(&count).Error
	return count, err
}

// ListUsage retrieves paginated usage records for a promocode
func (r *PromocodeRepository) ListUsage(promocodeID uuid.UUID, page, limit int) ([]models.PromocodeUsage, int64, error) {
	var usages []models.PromocodeUsage
	var total int64

	query := r.db.Model(&models.PromocodeUsage{}).Where("promocode_id = ?", promocodeID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("used_at DESC").Find(&usages).Error; err != nil {
		return nil, 0, err
	}

	return usages, total, nil
}
