package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

// Update saves an existing client
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete soft deletes a client
func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Client{}).Error
}

// List retrieves a paginated list of clients with optional search and type filter
func (r *ClientRepository) List(search string, clientType *models.ClientType, page, limit int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	query := r.db.Model(&models.Client{})
	if clientType != nil {
		query = query.Where("type = ?", *clientType)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR company_name ILIKE ? OR phone ILIKE ? OR email ILIKE ?",
			like, like, like, like, like,
		)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

// ListAll retrieves all clients; used by the segmentation pass which needs
// a full snapshot rather than a page.
func (r *ClientRepository) ListAll() ([]models.Client, error) {
	var clients []models.Client
	err := r.db.Order("created_at ASC").Find(&clients).Error
	return clients, err
}

// Count returns the total number of clients
func (r *ClientRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Client{}).Count(&total).Error
	return total, err
}

// CountActiveSince counts clients with at least one order after the cutoff
func (r *ClientRepository) CountActiveSince(cutoff time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Client{}).
		Where("id IN (?)", r.db.Model(&models.Order{}).Select("client_id").Where("date >= ?", cutoff)).
		Count(&total).Error
	return total, err
}
