package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PromocodeStatus represents the status of a promocode
type PromocodeStatus string

const (
	PromocodeStatusActive        PromocodeStatus = "ACTIVE"
	PromocodeStatusInactive      PromocodeStatus = "INACTIVE"
	PromocodeStatusExpired       PromocodeStatus = "EXPIRED"
	PromocodeStatusFullyRedeemed PromocodeStatus = "FULLY_REDEEMED"
)

// Promocode represents a promotional code entered at order intake
type Promocode struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Code        string    `json:"code" gorm:"type:varchar(50);not null;uniqueIndex:idx_promocodes_code"`
	Description string    `json:"description" gorm:"type:text"`

	Status   PromocodeStatus `json:"status" gorm:"type:varchar(20);not null;default:'ACTIVE'"`
	IsActive bool            `json:"isActive" gorm:"default:true"`

	DiscountType  DiscountType `json:"discountType" gorm:"type:varchar(20);not null"`
	DiscountValue float64      `json:"discountValue" gorm:"type:decimal(10,2);not null"`
	MinOrderValue *float64     `json:"minOrderValue,omitempty"`

	MaxUsageCount     *int `json:"maxUsageCount,omitempty"`
	CurrentUsageCount int  `json:"currentUsageCount" gorm:"default:0"`
	MaxUsagePerClient *int `json:"maxUsagePerClient,omitempty"`

	ValidFrom  time.Time  `json:"validFrom" gorm:"not null"`
	ValidUntil *time.Time `json:"validUntil,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the Promocode model
func (Promocode) TableName() string {
	return "promocodes"
}

// PromocodeUsage represents a usage record of a promocode
type PromocodeUsage struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	PromocodeID uuid.UUID  `json:"promocodeId" gorm:"type:uuid;not null;index:idx_promocode_usage_code"`
	ClientID    uuid.UUID  `json:"clientId" gorm:"type:uuid;not null;index:idx_promocode_usage_client"`
	OrderID     *uuid.UUID `json:"orderId,omitempty" gorm:"type:uuid"`

	DiscountAmount float64 `json:"discountAmount" gorm:"type:decimal(12,2);not null"`
	OrderValue     float64 `json:"orderValue" gorm:"type:decimal(12,2);not null"`

	UsedAt    time.Time `json:"usedAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`

	Promocode Promocode `json:"promocode,omitempty" gorm:"foreignKey:PromocodeID"`
}

// TableName returns the table name for the PromocodeUsage model
func (PromocodeUsage) TableName() string {
	return "promocode_usage"
}

// CreatePromocodeRequest represents a request to create a promocode
type CreatePromocodeRequest struct {
	Code              string       `json:"code" binding:"required"`
	Description       string       `json:"description"`
	DiscountType      DiscountType `json:"discountType" binding:"required,oneof=PERCENTAGE FIXED"`
	DiscountValue     float64      `json:"discountValue" binding:"required,gt=0"`
	MinOrderValue     *float64     `json:"minOrderValue,omitempty"`
	MaxUsageCount     *int         `json:"maxUsageCount,omitempty"`
	MaxUsagePerClient *int         `json:"maxUsagePerClient,omitempty"`
	ValidFrom         time.Time    `json:"validFrom" binding:"required"`
	ValidUntil        *time.Time   `json:"validUntil,omitempty"`
}

// UpdatePromocodeRequest represents a request to update a promocode
type UpdatePromocodeRequest struct {
	Description       *string          `json:"description,omitempty"`
	Status            *PromocodeStatus `json:"status,omitempty"`
	DiscountValue     *float64         `json:"discountValue,omitempty"`
	MinOrderValue     *float64         `json:"minOrderValue,omitempty"`
	MaxUsageCount     *int             `json:"maxUsageCount,omitempty"`
	MaxUsagePerClient *int             `json:"maxUsagePerClient,omitempty"`
	ValidUntil        *time.Time       `json:"validUntil,omitempty"`
	IsActive          *bool            `json:"isActive,omitempty"`
}

// ValidatePromocodeRequest represents a request to validate a promocode
type ValidatePromocodeRequest struct {
	Code       string     `json:"code" binding:"required"`
	ClientID   *uuid.UUID `json:"clientId,omitempty"`
	OrderValue float64    `json:"orderValue" binding:"required,gt=0"`
}

// PromocodeValidationResponse represents a promocode validation response
type PromocodeValidationResponse struct {
	Success        bool       `json:"success"`
	Valid          bool       `json:"valid"`
	DiscountAmount *float64   `json:"discountAmount,omitempty"`
	ReasonCode     *string    `json:"reasonCode,omitempty"`
	Message        *string    `json:"message,omitempty"`
	Promocode      *Promocode `json:"promocode,omitempty"`
}

// PromocodeResponse represents a single promocode response
type PromocodeResponse struct {
	Success bool       `json:"success"`
	Data    *Promocode `json:"data"`
}

// PromocodeListResponse represents a paginated list of promocodes
type PromocodeListResponse struct {
	Success    bool            `json:"success"`
	Data       []Promocode     `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
