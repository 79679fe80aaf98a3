package services

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

// Validation reason codes returned when a promocode is rejected.
const (
	ReasonNotFound           = "NOT_FOUND"
	ReasonInactive           = "INACTIVE"
	ReasonNotStarted         = "NOT_STARTED"
	ReasonExpired            = "EXPIRED"
	ReasonMinOrderNotMet     = "MIN_ORDER_NOT_MET"
	ReasonUsageLimitExceeded = "USAGE_LIMIT_EXCEEDED"
)

// PromocodeService validates and applies promocodes at order intake.
type PromocodeService struct {
	repo   *repository.PromocodeRepository
	logger *logrus.Logger
}

func NewPromocodeService(repo *repository.PromocodeRepository, logger *logrus.Logger) *PromocodeService {
	return &PromocodeService{repo: repo, logger: logger}
}

// Validate checks a promocode against an order value and client without
// consuming it. The returned response always has Success=true; rejection
// is expressed through Valid=false plus a reason code.
func (s *PromocodeService) Validate(req *models.ValidatePromocodeRequest) (*models.PromocodeValidationResponse, error) {
	promocode, err := s.repo.GetByCode(strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		return nil, err
	}
	if promocode == nil {
		return rejection(ReasonNotFound, "Promocode not found"), nil
	}

	now := time.Now()

	if !promocode.IsActive || promocode.Status == models.PromocodeStatusInactive {
		return rejection(ReasonInactive, "Promocode is not active"), nil
	}
	if now.Before(promocode.ValidFrom) {
		return rejection(ReasonNotStarted, "Promocode is not yet valid"), nil
	}
	if promocode.ValidUntil != nil && now.After(*promocode.ValidUntil) {
		return rejection(ReasonExpired, "Promocode has expired"), nil
	}
	if promocode.MinOrderValue != nil && req.OrderValue < *promocode.MinOrderValue {
		return rejection(ReasonMinOrderNotMet, "Order value below the promocode minimum"), nil
	}
	if promocode.MaxUsageCount != nil && promocode.CurrentUsageCount >= *promocode.MaxUsageCount {
		return rejection(ReasonUsageLimitExceeded, "Promocode usage limit reached"), nil
	}
	if promocode.MaxUsagePerClient != nil && req.ClientID != nil {
		used, err := s.repo.CountUsageByClient(promocode.ID, *req.ClientID)
		if err != nil {
			return nil, err
		}
		if used >= int64(*promocode.MaxUsagePerClient) {
			return rejection(ReasonUsageLimitExceeded, "Promocode usage limit reached for this client"), nil
		}
	}

	discount := CalculateDiscount(promocode, req.OrderValue)
	return &models.PromocodeValidationResponse{
		Success:        true,
		Valid:          true,
		DiscountAmount: &discount,
		Promocode:      promocode,
	}, nil
}

// Apply consumes a validated promocode: increments the usage counter and
// records the usage row. Callers validate first; Apply trusts the result.
func (s *PromocodeService) Apply(promocode *models.Promocode, clientID uuid.UUID, orderID *uuid.UUID, orderValue, discountAmount float64) error {
	if err := s.repo.IncrementUsage(promocode.ID); err != nil {
		return err
	}
	usage := &models.PromocodeUsage{
		PromocodeID:    promocode.ID,
		ClientID:       clientID,
		OrderID:        orderID,
		DiscountAmount: discountAmount,
		OrderValue:     orderValue,
		UsedAt:         time.Now(),
	}
	if err := s.repo.CreateUsage(usage); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"promocode_id": promocode.ID,
		"client_id":    clientID,
		"discount":     discountAmount,
	}).Info("Promocode applied")
	return nil
}

// CalculateDiscount computes the discount a promocode gives on an order
// value. Percentage discounts round to whole currency units; a fixed
// discount is capped at the order value.
func CalculateDiscount(promocode *models.Promocode, orderValue float64) float64 {
	switch promocode.DiscountType {
	case models.DiscountPercentage:
		return math.Round(orderValue * promocode.DiscountValue / 100)
	case models.DiscountFixed:
		if promocode.DiscountValue > orderValue {
			return orderValue
		}
		return promocode.DiscountValue
	}
	return 0
}

func rejection(code, message string) *models.PromocodeValidationResponse {
	return &models.PromocodeValidationResponse{
		Success:    true,
		Valid:      false,
		ReasonCode: &code,
		Message:    &message,
	}
}
