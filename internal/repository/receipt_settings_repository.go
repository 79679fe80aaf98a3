package repository

import (
	"errors"

	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type ReceiptSettingsRepository struct {
	db *gorm.DB
}

func NewReceiptSettingsRepository(db *gorm.DB) *ReceiptSettingsRepository {
	return &ReceiptSettingsRepository{db: db}
}

// GetOrCreate returns the chain receipt settings, creating defaults on first access
func (r *ReceiptSettingsRepository) GetOrCreate() (*models.ReceiptSettings, error) {
	var settings models.ReceiptSettings
	err := r.db.First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			settings = models.ReceiptSettings{
				DefaultTemplate:  models.ReceiptTemplateDefault,
				PrimaryColor:     "#1a73e8",
				ShowDiscountLine: true,
				Currency:         "RUB",
			}
			if err := r.db.Create(&settings).Error; err != nil {
				return nil, err
			}
			return &settings, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Update saves the receipt settings
func (r *ReceiptSettingsRepository) Update(settings *models.ReceiptSettings) error {
	return r.db.Save(settings).Error
}
