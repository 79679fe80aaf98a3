package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates an order together with its line items
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// GetByID retrieves an order with its items, client and point
func (r *OrderRepository) GetByID(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Client").Preload("Point").
		Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNumber retrieves an order by its human-readable number
func (r *OrderRepository) GetByOrderNumber(orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Client").Preload("Point").
		Where("order_number = ?", orderNumber).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Update saves an existing order
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// List retrieves a paginated list of orders with filters
func (r *OrderRepository) List(filters *models.OrderFilters, page, limit int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	query := r.db.Model(&models.Order{})
	if filters != nil {
		if filters.ClientID != nil {
			query = query.Where("client_id = ?", *filters.ClientID)
		}
		if filters.PointID != nil {
			query = query.Where("point_id = ?", *filters.PointID)
		}
		if len(filters.Statuses) > 0 {
			query = query.Where("status IN ?", filters.Statuses)
		}
		if filters.DateFrom != nil {
			query = query.Where("date >= ?", *filters.DateFrom)
		}
		if filters.DateTo != nil {
			query = query.Where("date <= ?", *filters.DateTo)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Items").Preload("Client").
		Offset(offset).Limit(limit).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// ListAll retrieves all orders; used by the segmentation pass.
func (r *OrderRepository) ListAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("date ASC").Find(&orders).Error
	return orders, err
}

// CountSince counts non-cancelled orders dated after the cutoff
func (r *OrderRepository) CountSince(cutoff time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).
		Where("date >= ? AND status <> ?", cutoff, models.OrderStatusCancelled).
		Count(&total).Error
	return total, err
}

// RevenueSince sums discounted revenue of non-cancelled orders after the cutoff
func (r *OrderRepository) RevenueSince(cutoff time.Time) (float64, error) {
	var revenue float64
	err := r.db.Model(&models.Order{}).
		Where("date >= ? AND status <> ?", cutoff, models.OrderStatusCancelled).
		Select("COALESCE(SUM(discounted_amount), 0)").Scan(&revenue).Error
	return revenue, err
}

// CountByStatus returns order counts grouped by status
func (r *OrderRepository) CountByStatus() ([]models.OrderStatusCount, error) {
	var counts []models.OrderStatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error
	return counts, err
}

// TopServices returns the best performing services by discounted revenue
func (r *OrderRepository) TopServices(limit int) ([]models.TopService, error) {
	var top []models.TopService
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.service_id as service_id, order_items.service_name as service_name, COUNT(DISTINCT order_items.order_id) as order_count, SUM(order_items.quantity) as quantity, SUM(order_items.line_discounted) as revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id AND orders.status <> ?", models.OrderStatusCancelled).
		Group("order_items.service_id, order_items.service_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&top).Error
	return top, err
}

// NextOrderNumber allocates the next order number for the given day.
// Numbers look like ORD-20260829-0007.
func (r *OrderRepository) NextOrderNumber(now time.Time) (string, error) {
	day := now.Format("20060102")
	var count int64
	err := r.db.Model(&models.Order{}).Unscoped().
		Where("order_number LIKE ?", "ORD-"+day+"-%").
		Count(&count).Error
	if err != nil {
		return "", err
	}
	return formatOrderNumber(day, count+1), nil
}

func formatOrderNumber(day string, seq int64) string {
	return fmt.Sprintf("ORD-%s-%04d", day, seq)
}
