package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// City represents a city directory entry
type City struct {
	ID   uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name string    `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_cities_name"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the City model
func (City) TableName() string {
	return "cities"
}

// Point represents a pickup point (branch location) of the chain
type Point struct {
	ID     uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CityID uuid.UUID `json:"cityId" gorm:"type:uuid;not null;index:idx_points_city"`

	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Address  string `json:"address" gorm:"type:text;not null"`
	Phone    string `json:"phone" gorm:"type:varchar(50)"`
	Schedule string `json:"schedule" gorm:"type:varchar(255)"` // e.g. "Mon-Sat 09:00-20:00"
	IsActive bool   `json:"isActive" gorm:"default:true"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	City *City `json:"city,omitempty" gorm:"foreignKey:CityID"`
}

// TableName returns the table name for the Point model
func (Point) TableName() string {
	return "points"
}

// CreateCityRequest represents a request to create a city
type CreateCityRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreatePointRequest represents a request to create a point
type CreatePointRequest struct {
	CityID   uuid.UUID `json:"cityId" binding:"required"`
	Name     string    `json:"name" binding:"required"`
	Address  string    `json:"address" binding:"required"`
	Phone    string    `json:"phone"`
	Schedule string    `json:"schedule"`
}

// UpdatePointRequest represents a request to update a point
type UpdatePointRequest struct {
	CityID   *uuid.UUID `json:"cityId,omitempty"`
	Name     *string    `json:"name,omitempty"`
	Address  *string    `json:"address,omitempty"`
	Phone    *string    `json:"phone,omitempty"`
	Schedule *string    `json:"schedule,omitempty"`
	IsActive *bool      `json:"isActive,omitempty"`
}
