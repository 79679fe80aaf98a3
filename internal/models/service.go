package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceCategory represents the catalog category of a service
type ServiceCategory string

const (
	ServiceCategoryClothing  ServiceCategory = "CLOTHING"
	ServiceCategoryLeather   ServiceCategory = "LEATHER"
	ServiceCategoryTextile   ServiceCategory = "TEXTILE"
	ServiceCategoryCarpet    ServiceCategory = "CARPET"
	ServiceCategoryLaundry   ServiceCategory = "LAUNDRY"
	ServiceCategoryRepair    ServiceCategory = "REPAIR"
)

// Service represents a catalog entry (a cleaning service)
type Service struct {
	ID       uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name     string          `json:"name" gorm:"type:varchar(255);not null"`
	Category ServiceCategory `json:"category" gorm:"type:varchar(20);not null;index:idx_services_category"`
	Price    float64         `json:"price" gorm:"type:decimal(10,2);not null"`
	Unit     string          `json:"unit" gorm:"type:varchar(20);default:'pcs'"` // pcs, kg, m2
	IsActive bool            `json:"isActive" gorm:"default:true"`

	// PromotionID is a direct promotion link; resolved before the
	// promotion's applicableServices list.
	PromotionID *uuid.UUID `json:"promotionId,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}

// CreateServiceRequest represents a request to create a catalog entry
type CreateServiceRequest struct {
	Name        string          `json:"name" binding:"required"`
	Category    ServiceCategory `json:"category" binding:"required,oneof=CLOTHING LEATHER TEXTILE CARPET LAUNDRY REPAIR"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	Unit        string          `json:"unit"`
	PromotionID *uuid.UUID      `json:"promotionId,omitempty"`
}

// UpdateServiceRequest represents a request to update a catalog entry
type UpdateServiceRequest struct {
	Name        *string          `json:"name,omitempty"`
	Category    *ServiceCategory `json:"category,omitempty"`
	Price       *float64         `json:"price,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
	IsActive    *bool            `json:"isActive,omitempty"`
	PromotionID *uuid.UUID       `json:"promotionId,omitempty"`
}

// ServiceResponse represents a single service response
type ServiceResponse struct {
	Success bool     `json:"success"`
	Data    *Service `json:"data"`
}

// ServiceListResponse represents a list of services
type ServiceListResponse struct {
	Success    bool            `json:"success"`
	Data       []Service       `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
