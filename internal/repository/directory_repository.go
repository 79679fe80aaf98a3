package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

// DirectoryRepository manages the city and point directories.
type DirectoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) *DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// CreateCity creates a new city
func (r *DirectoryRepository) CreateCity(city *models.City) error {
	return r.db.Create(city).Error
}

// ListCities retrieves all cities
func (r *DirectoryRepository) ListCities() ([]models.City, error) {
	var cities []models.City
	err := r.db.Order("name ASC").Find(&cities).Error
	return cities, err
}

// GetCityByID retrieves a city by ID
func (r *DirectoryRepository) GetCityByID(id uuid.UUID) (*models.City, error) {
	var city models.City
	err := r.db.Where("id = ?", id).First(&city).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

// DeleteCity soft deletes a city
func (r *DirectoryRepository) DeleteCity(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.City{}).Error
}

// CreatePoint creates a new point
func (r *DirectoryRepository) CreatePoint(point *models.Point) error {
	return r.db.Create(point).Error
}

// GetPointByID retrieves a point by ID
func (r *DirectoryRepository) GetPointByID(id uuid.UUID) (*models.Point, error) {
	var point models.Point
	err := r.db.Preload("City").Where("id = ?", id).First(&point).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &point, nil
}

// UpdatePoint saves an existing point
func (r *DirectoryRepository) UpdatePoint(point *models.Point) error {
	return r.db.Save(point).Error
}

// DeletePoint soft deletes a point
func (r *DirectoryRepository) DeletePoint(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&models.Point{}).Error
}

// ListPoints retrieves all points, optionally restricted to a city
func (r *DirectoryRepository) ListPoints(cityID *uuid.UUID) ([]models.Point, error) {
	var points []models.Point
	query := r.db.Preload("City")
	if cityID != nil {
		query = query.Where("city_id = ?", *cityID)
	}
	err := query.Order("name ASC").Find(&points).Error
	return points, err
}
