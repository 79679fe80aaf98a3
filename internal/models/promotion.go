package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DiscountType represents the type of discount
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED"
)

// Promotion represents a time-boxed discount on a set of services
type Promotion struct {
	ID             uuid.UUID    `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string       `json:"name" gorm:"type:varchar(255);not null"`
	Description    string       `json:"description" gorm:"type:text"`
	DiscountType   DiscountType `json:"discountType" gorm:"type:varchar(20);not null"`
	DiscountAmount float64      `json:"discountAmount" gorm:"type:decimal(10,2);not null"`
	StartDate      time.Time    `json:"startDate" gorm:"not null"`
	EndDate        time.Time    `json:"endDate" gorm:"not null"`

	// ApplicableServices lists service ids eligible via the indirect link.
	ApplicableServices pq.StringArray `json:"applicableServices" gorm:"type:text[]"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// IsActiveAt reports whether the promotion window covers the given time.
func (p *Promotion) IsActiveAt(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// AppliesToService reports whether the promotion lists the service id.
func (p *Promotion) AppliesToService(serviceID uuid.UUID) bool {
	id := serviceID.String()
	for _, s := range p.ApplicableServices {
		if s == id {
			return true
		}
	}
	return false
}

// PriceResult is the outcome of resolving a promotional price.
// It is derived, never persisted.
type PriceResult struct {
	OriginalPrice    float64    `json:"originalPrice"`
	FinalPrice       float64    `json:"finalPrice"`
	AppliedPromotion *Promotion `json:"appliedPromotion"`
}

// CreatePromotionRequest represents a request to create a promotion
type CreatePromotionRequest struct {
	Name               string       `json:"name" binding:"required"`
	Description        string       `json:"description"`
	DiscountType       DiscountType `json:"discountType" binding:"required,oneof=PERCENTAGE FIXED"`
	DiscountAmount     float64      `json:"discountAmount" binding:"required,gt=0"`
	StartDate          time.Time    `json:"startDate" binding:"required"`
	EndDate            time.Time    `json:"endDate" binding:"required"`
	ApplicableServices []string     `json:"applicableServices,omitempty"`
}

// UpdatePromotionRequest represents a request to update a promotion
type UpdatePromotionRequest struct {
	Name               *string       `json:"name,omitempty"`
	Description        *string       `json:"description,omitempty"`
	DiscountType       *DiscountType `json:"discountType,omitempty"`
	DiscountAmount     *float64      `json:"discountAmount,omitempty"`
	StartDate          *time.Time    `json:"startDate,omitempty"`
	EndDate            *time.Time    `json:"endDate,omitempty"`
	ApplicableServices []string      `json:"applicableServices,omitempty"`
}

// PromotionResponse represents a single promotion response
type PromotionResponse struct {
	Success bool       `json:"success"`
	Data    *Promotion `json:"data"`
}

// PromotionListResponse represents a list of promotions
type PromotionListResponse struct {
	Success bool        `json:"success"`
	Data    []Promotion `json:"data"`
}
