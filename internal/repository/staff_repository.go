package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type StaffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create creates a new staff user
func (r *StaffRepository) Create(user *models.StaffUser) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a staff user by ID
func (r *StaffRepository) GetByID(id uuid.UUID) (*models.StaffUser, error) {
	var user models.StaffUser
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a staff user by email
func (r *StaffRepository) GetByEmail(email string) (*models.StaffUser, error) {
	var user models.StaffUser
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the last successful login time
func (r *StaffRepository) UpdateLastLogin(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.StaffUser{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// Count returns the number of staff users
func (r *StaffRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.StaffUser{}).Count(&count).Error
	return count, err
}
