package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffRole represents the role of a back-office user
type StaffRole string

const (
	StaffRoleAdmin    StaffRole = "ADMIN"
	StaffRoleManager  StaffRole = "MANAGER"
	StaffRoleOperator StaffRole = "OPERATOR"
)

// StaffUser represents a back-office user account
type StaffUser struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_staff_email"`
	FirstName    string    `json:"firstName" gorm:"type:varchar(100)"`
	LastName     string    `json:"lastName" gorm:"type:varchar(100)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Role         StaffRole `json:"role" gorm:"type:varchar(20);not null;default:'OPERATOR'"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`

	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for the StaffUser model
func (StaffUser) TableName() string {
	return "staff_users"
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Success   bool       `json:"success"`
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *StaffUser `json:"user"`
}
