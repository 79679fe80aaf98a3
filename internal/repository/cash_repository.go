package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backoffice-service/internal/models"
)

type CashRepository struct {
	db *gorm.DB
}

func NewCashRepository(db *gorm.DB) *CashRepository {
	return &CashRepository{db: db}
}

// Create creates a new cash operation
func (r *CashRepository) Create(op *models.CashOperation) error {
	return r.db.Create(op).Error
}

// List retrieves a paginated list of cash operations with optional filters
func (r *CashRepository) List(pointID *uuid.UUID, opType *models.CashOperationType, from, to *time.Time, page, limit int) ([]models.CashOperation, int64, error) {
	var ops []models.CashOperation
	var total int64

	query := r.db.Model(&models.CashOperation{})
	if pointID != nil {
		query = query.Where("point_id = ?", *pointID)
	}
	if opType != nil {
		query = query.Where("type = ?", *opType)
	}
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Preload("Point").Offset(offset).Limit(limit).Order("created_at DESC").Find(&ops).Error; err != nil {
		return nil, 0, err
	}

	return ops, total, nil
}

// PointBalances returns income/expense/balance per point
func (r *CashRepository) PointBalances() ([]models.PointBalance, error) {
	var balances []models.PointBalance
	err := r.db.Model(&models.CashOperation{}).
		Select("cash_operations.point_id as point_id, points.name as point_name, " +
			"COALESCE(SUM(CASE WHEN cash_operations.type = 'INCOME' THEN cash_operations.amount ELSE 0 END), 0) as income, " +
			"COALESCE(SUM(CASE WHEN cash_operations.type = 'EXPENSE' THEN cash_operations.amount ELSE 0 END), 0) as expense, " +
			"COALESCE(SUM(CASE WHEN cash_operations.type = 'INCOME' THEN cash_operations.amount ELSE -cash_operations.amount END), 0) as balance").
		Joins("JOIN points ON points.id = cash_operations.point_id").
		Group("cash_operations.point_id, points.name").
		Order("points.name ASC").
		Scan(&balances).Error
	return balances, err
}
