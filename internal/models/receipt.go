package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptFormat represents the output format for receipts
type ReceiptFormat string

const (
	ReceiptFormatPDF  ReceiptFormat = "pdf"
	ReceiptFormatHTML ReceiptFormat = "html"
)

// ReceiptTemplate represents receipt template types
type ReceiptTemplate string

const (
	ReceiptTemplateDefault ReceiptTemplate = "default"
	ReceiptTemplateSimple  ReceiptTemplate = "simple" // no header block, totals only
)

// ReceiptSettings stores chain-level receipt customization.
// A single row; created on first access.
type ReceiptSettings struct {
	ID uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`

	DefaultTemplate ReceiptTemplate `json:"defaultTemplate" gorm:"type:varchar(50);default:'default'"`
	PrimaryColor    string          `json:"primaryColor" gorm:"type:varchar(7);default:'#1a73e8'"`

	BusinessName    string `json:"businessName,omitempty" gorm:"type:varchar(255)"`
	BusinessAddress string `json:"businessAddress,omitempty" gorm:"type:text"`
	BusinessPhone   string `json:"businessPhone,omitempty" gorm:"type:varchar(50)"`
	BusinessEmail   string `json:"businessEmail,omitempty" gorm:"type:varchar(255)"`

	HeaderText string `json:"headerText,omitempty" gorm:"type:text"`
	FooterText string `json:"footerText,omitempty" gorm:"type:text"`

	ShowDiscountLine bool   `json:"showDiscountLine" gorm:"default:true"`
	Currency         string `json:"currency" gorm:"type:varchar(3);default:'RUB'"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName returns the table name for ReceiptSettings
func (ReceiptSettings) TableName() string {
	return "receipt_settings"
}

// ReceiptSettingsUpdateRequest represents a request to update receipt settings
type ReceiptSettingsUpdateRequest struct {
	DefaultTemplate  *ReceiptTemplate `json:"defaultTemplate,omitempty"`
	PrimaryColor     *string          `json:"primaryColor,omitempty"`
	BusinessName     *string          `json:"businessName,omitempty"`
	BusinessAddress  *string          `json:"businessAddress,omitempty"`
	BusinessPhone    *string          `json:"businessPhone,omitempty"`
	BusinessEmail    *string          `json:"businessEmail,omitempty"`
	HeaderText       *string          `json:"headerText,omitempty"`
	FooterText       *string          `json:"footerText,omitempty"`
	ShowDiscountLine *bool            `json:"showDiscountLine,omitempty"`
	Currency         *string          `json:"currency,omitempty"`
}

// ReceiptData represents all data needed to render a receipt
type ReceiptData struct {
	ReceiptNumber string    `json:"receiptNumber"`
	GeneratedAt   time.Time `json:"generatedAt"`

	Order    *Order           `json:"order"`
	Settings *ReceiptSettings `json:"settings"`

	Format   ReceiptFormat   `json:"format"`
	Template ReceiptTemplate `json:"template"`

	FormattedTotal    string `json:"formattedTotal"`
	FormattedDiscount string `json:"formattedDiscount"`
	FormattedFinal    string `json:"formattedFinal"`
}
