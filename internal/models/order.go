package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusAccepted   OrderStatus = "ACCEPTED"    // Items received at the point
	OrderStatusInProgress OrderStatus = "IN_PROGRESS" // Sent to cleaning
	OrderStatusReady      OrderStatus = "READY"       // Cleaned, waiting for pickup
	OrderStatusIssued     OrderStatus = "ISSUED"      // Handed back to the client
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "CASH"
	PaymentMethodCard PaymentMethod = "CARD"
)

// Order represents a dry-cleaning order
type Order struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber string        `json:"orderNumber" gorm:"type:varchar(30);not null;uniqueIndex:idx_orders_number"`
	ClientID    uuid.UUID     `json:"clientId" gorm:"type:uuid;not null;index:idx_orders_client"`
	PointID     uuid.UUID     `json:"pointId" gorm:"type:uuid;not null;index:idx_orders_point"`
	Status      OrderStatus   `json:"status" gorm:"type:varchar(20);not null;default:'ACCEPTED';index:idx_orders_status"`
	Payment     PaymentMethod `json:"payment" gorm:"type:varchar(10);not null;default:'CASH'"`

	// Date is the order date used by segmentation; normally equals CreatedAt
	// but kept separate so imported history preserves original dates.
	Date time.Time `json:"date" gorm:"not null;index:idx_orders_date"`

	TotalAmount      float64 `json:"totalAmount" gorm:"type:decimal(12,2);not null"`
	DiscountedAmount float64 `json:"discountedAmount" gorm:"type:decimal(12,2);not null"`
	PromocodeID      *uuid.UUID `json:"promocodeId,omitempty" gorm:"type:uuid"`
	Comment          string  `json:"comment" gorm:"type:text"`

	CreatedAt time.Time      `json:"createdAt" gorm:"index:idx_orders_created,sort:desc"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Items  []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Client *Client     `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	Point  *Point      `json:"point,omitempty" gorm:"foreignKey:PointID"`
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// OrderItem represents a single service line on an order.
// Name and unit price are snapshots taken at intake so later catalog
// edits do not rewrite order history.
type OrderItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID `json:"orderId" gorm:"type:uuid;not null;index:idx_order_items_order"`
	ServiceID uuid.UUID `json:"serviceId" gorm:"type:uuid;not null"`

	ServiceName string  `json:"serviceName" gorm:"type:varchar(255);not null"`
	Quantity    int     `json:"quantity" gorm:"not null"`
	UnitPrice   float64 `json:"unitPrice" gorm:"type:decimal(10,2);not null"`
	LineTotal   float64 `json:"lineTotal" gorm:"type:decimal(12,2);not null"`
	// LineDiscounted is the line total after the applied promotion, if any.
	LineDiscounted float64    `json:"lineDiscounted" gorm:"type:decimal(12,2);not null"`
	PromotionID    *uuid.UUID `json:"promotionId,omitempty" gorm:"type:uuid"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// CreateOrderItemRequest represents one service line in an intake request
type CreateOrderItemRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,gte=1"`
}

// CreateOrderRequest represents an order intake request
type CreateOrderRequest struct {
	ClientID  uuid.UUID                `json:"clientId" binding:"required"`
	PointID   uuid.UUID                `json:"pointId" binding:"required"`
	Payment   PaymentMethod            `json:"payment" binding:"omitempty,oneof=CASH CARD"`
	Promocode string                   `json:"promocode,omitempty"`
	Comment   string                   `json:"comment"`
	Items     []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents an order status change
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required,oneof=ACCEPTED IN_PROGRESS READY ISSUED CANCELLED"`
}

// OrderResponse represents a single order response
type OrderResponse struct {
	Success bool   `json:"success"`
	Data    *Order `json:"data"`
}

// OrderListResponse represents a paginated list of orders
type OrderListResponse struct {
	Success    bool            `json:"success"`
	Data       []Order         `json:"data"`
	Pagination *PaginationInfo `json:"pagination"`
}

// OrderFilters represents filters for order list queries
type OrderFilters struct {
	ClientID *uuid.UUID
	PointID  *uuid.UUID
	Statuses []OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// allowedTransitions lists the valid status moves for an order.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusAccepted:   {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:      {OrderStatusIssued, OrderStatusCancelled},
	OrderStatusIssued:     {},
	OrderStatusCancelled:  {},
}

// CanTransitionTo reports whether the order may move to the given status.
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, s := range allowedTransitions[o.Status] {
		if s == next {
			return true
		}
	}
	return false
}
