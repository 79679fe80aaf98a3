package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClientType represents the legal form of a client
type ClientType string

const (
	ClientTypeIndividual  ClientType = "INDIVIDUAL"
	ClientTypeLegalEntity ClientType = "LEGAL_ENTITY"
)

// ClientStatus represents client status
type ClientStatus string

const (
	ClientStatusActive  ClientStatus = "ACTIVE"
	ClientStatusBlocked ClientStatus = "BLOCKED"
)

// Client represents a client of the chain (individual or legal entity)
type Client struct {
	ID   uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type ClientType `json:"type" gorm:"type:varchar(20);not null;default:'INDIVIDUAL';index:idx_clients_type"`

	// Individual fields
	FirstName  string `json:"firstName" gorm:"type:varchar(100)"`
	LastName   string `json:"lastName" gorm:"type:varchar(100)"`
	MiddleName string `json:"middleName" gorm:"type:varchar(100)"`

	// Legal entity fields
	CompanyName string `json:"companyName" gorm:"type:varchar(255)"`
	INN         string `json:"inn" gorm:"type:varchar(12);index:idx_clients_inn"`
	KPP         string `json:"kpp" gorm:"type:varchar(9)"`

	// Contact
	Phone   string `json:"phone" gorm:"type:varchar(50);index:idx_clients_phone"`
	Email   string `json:"email" gorm:"type:varchar(255)"`
	Address string `json:"address" gorm:"type:text"`

	Status           ClientStatus   `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	RegistrationDate time.Time      `json:"registrationDate" gorm:"not null"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
	Notes            string         `json:"notes" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt" gorm:"index:idx_clients_created,sort:desc"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Orders []Order `json:"orders,omitempty" gorm:"foreignKey:ClientID"`
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

// DisplayName returns a human-readable name for the client
func (c *Client) DisplayName() string {
	if c.Type == ClientTypeLegalEntity {
		return c.CompanyName
	}
	name := c.LastName
	if c.FirstName != "" {
		if name != "" {
			name += " "
		}
		name += c.FirstName
	}
	return name
}

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Type        ClientType `json:"type" binding:"required,oneof=INDIVIDUAL LEGAL_ENTITY"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	MiddleName  string     `json:"middleName"`
	CompanyName string     `json:"companyName"`
	INN         string     `json:"inn"`
	KPP         string     `json:"kpp"`
	Phone       string     `json:"phone" binding:"required"`
	Email       string     `json:"email" binding:"omitempty,email"`
	Address     string     `json:"address"`
	Tags        []string   `json:"tags,omitempty"`
	Notes       string     `json:"notes"`
}

// UpdateClientRequest represents a request to update client profile fields
type UpdateClientRequest struct {
	FirstName   *string       `json:"firstName,omitempty"`
	LastName    *string       `json:"lastName,omitempty"`
	MiddleName  *string       `json:"middleName,omitempty"`
	CompanyName *string       `json:"companyName,omitempty"`
	INN         *string       `json:"inn,omitempty"`
	KPP         *string       `json:"kpp,omitempty"`
	Phone       *string       `json:"phone,omitempty"`
	Email       *string       `json:"email,omitempty"`
	Address     *string       `json:"address,omitempty"`
	Status      *ClientStatus `json:"status,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// ClientListResponse represents a paginated list of clients
type ClientListResponse struct {
	Success    bool            `json:"success"`
	Data       []Client        `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// ClientResponse represents a single client response
type ClientResponse struct {
	Success bool    `json:"success"`
	Data    *Client `json:"data"`
}
