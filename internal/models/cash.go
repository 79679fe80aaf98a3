package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CashOperationType represents the direction of a cash operation
type CashOperationType string

const (
	CashOperationIncome  CashOperationType = "INCOME"
	CashOperationExpense CashOperationType = "EXPENSE"
)

// CashOperation represents a single cash register movement at a point
type CashOperation struct {
	ID      uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Type    CashOperationType `json:"type" gorm:"type:varchar(10);not null;index:idx_cash_type"`
	Amount  float64           `json:"amount" gorm:"type:decimal(12,2);not null"`
	PointID uuid.UUID         `json:"pointId" gorm:"type:uuid;not null;index:idx_cash_point"`

	// OrderID links operations produced by issuing an order.
	OrderID *uuid.UUID `json:"orderId,omitempty" gorm:"type:uuid;index:idx_cash_order"`

	Comment     string     `json:"comment" gorm:"type:text"`
	PerformedBy *uuid.UUID `json:"performedBy,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time      `json:"createdAt" gorm:"index:idx_cash_created,sort:desc"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Point *Point `json:"point,omitempty" gorm:"foreignKey:PointID"`
}

// TableName returns the table name for the CashOperation model
func (CashOperation) TableName() string {
	return "cash_operations"
}

// CreateCashOperationRequest represents a manual cash operation
type CreateCashOperationRequest struct {
	Type    CashOperationType `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Amount  float64           `json:"amount" binding:"required,gt=0"`
	PointID uuid.UUID         `json:"pointId" binding:"required"`
	Comment string            `json:"comment"`
}

// PointBalance represents the running cash balance for one point
type PointBalance struct {
	PointID   uuid.UUID `json:"pointId"`
	PointName string    `json:"pointName"`
	Income    float64   `json:"income"`
	Expense   float64   `json:"expense"`
	Balance   float64   `json:"balance"`
}

// CashOperationResponse represents a single cash operation response
type CashOperationResponse struct {
	Success bool           `json:"success"`
	Data    *CashOperation `json:"data"`
}

// CashOperationListResponse represents a paginated list of cash operations
type CashOperationListResponse struct {
	Success    bool            `json:"success"`
	Data       []CashOperation `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}
