package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"backoffice-service/internal/events"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

var (
	// ErrClientNotFound is returned when the order references an unknown client.
	ErrClientNotFound = errors.New("client not found")
	// ErrPointNotFound is returned when the order references an unknown point.
	ErrPointNotFound = errors.New("point not found")
	// ErrOrderNotFound is returned when the requested order id is unknown.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidTransition is returned for a disallowed status move.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrServiceInactive is returned when an intake line references a
	// deactivated catalog entry.
	ErrServiceInactive = errors.New("service is not active")
)

// PromocodeRejectedError carries the validation reason when intake names a
// promocode that cannot be applied.
type PromocodeRejectedError struct {
	ReasonCode string
	Message    string
}

func (e *PromocodeRejectedError) Error() string {
	return fmt.Sprintf("promocode rejected: %s", e.ReasonCode)
}

// OrderService implements the order intake and lifecycle workflow.
type OrderService struct {
	orderRepo     *repository.OrderRepository
	clientRepo    *repository.ClientRepository
	serviceRepo   *repository.ServiceRepository
	promotionRepo *repository.PromotionRepository
	cashRepo      *repository.CashRepository
	directoryRepo *repository.DirectoryRepository
	promocodes    *PromocodeService
	publisher     *events.Publisher
	logger        *logrus.Logger
}

func NewOrderService(
	orderRepo *repository.OrderRepository,
	clientRepo *repository.ClientRepository,
	serviceRepo *repository.ServiceRepository,
	promotionRepo *repository.PromotionRepository,
	cashRepo *repository.CashRepository,
	directoryRepo *repository.DirectoryRepository,
	promocodes *PromocodeService,
	publisher *events.Publisher,
	logger *logrus.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		clientRepo:    clientRepo,
		serviceRepo:   serviceRepo,
		promotionRepo: promotionRepo,
		cashRepo:      cashRepo,
		directoryRepo: directoryRepo,
		promocodes:    promocodes,
		publisher:     publisher,
		logger:        logger,
	}
}

// Create runs the full intake: validates the client and point, snapshots
// and prices every line through the promotion resolver, applies an optional
// promocode to the order total, allocates the order number and persists.
func (s *OrderService) Create(req *models.CreateOrderRequest) (*models.Order, error) {
	client, err := s.clientRepo.GetByID(req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrClientNotFound
	}

	point, err := s.directoryRepo.GetPointByID(req.PointID)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, ErrPointNotFound
	}

	promotions, err := s.promotionRepo.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	active := ActivePromotions(promotions, now)

	var items []models.OrderItem
	var total, discounted float64
	for _, line := range req.Items {
		svc, err := s.serviceRepo.GetByID(line.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, ErrServiceNotFound
		}
		if !svc.IsActive {
			return nil, ErrServiceInactive
		}

		price, err := ResolvePrice(svc, line.Quantity, active)
		if err != nil {
			return nil, err
		}

		item := models.OrderItem{
			ServiceID:      svc.ID,
			ServiceName:    svc.Name,
			Quantity:       line.Quantity,
			UnitPrice:      svc.Price,
			LineTotal:      price.OriginalPrice,
			LineDiscounted: price.FinalPrice,
		}
		if price.AppliedPromotion != nil {
			item.PromotionID = &price.AppliedPromotion.ID
		}
		items = append(items, item)
		total += price.OriginalPrice
		discounted += price.FinalPrice
	}

	var appliedPromocode *models.Promocode
	var promocodeDiscount float64
	if req.Promocode != "" {
		validation, err := s.promocodes.Validate(&models.ValidatePromocodeRequest{
			Code:       req.Promocode,
			ClientID:   &req.ClientID,
			OrderValue: discounted,
		})
		if err != nil {
			return nil, err
		}
		if !validation.Valid {
			return nil, &PromocodeRejectedError{
				ReasonCode: derefString(validation.ReasonCode),
				Message:    derefString(validation.Message),
			}
		}
		appliedPromocode = validation.Promocode
		promocodeDiscount = derefFloat(validation.DiscountAmount)
		discounted -= promocodeDiscount
		if discounted < 0 {
			discounted = 0
		}
	}

	orderNumber, err := s.orderRepo.NextOrderNumber(now)
	if err != nil {
		return nil, err
	}

	payment := req.Payment
	if payment == "" {
		payment = models.PaymentMethodCash
	}

	order := &models.Order{
		OrderNumber:      orderNumber,
		ClientID:         req.ClientID,
		PointID:          req.PointID,
		Status:           models.OrderStatusAccepted,
		Payment:          payment,
		Date:             now,
		TotalAmount:      total,
		DiscountedAmount: discounted,
		Comment:          req.Comment,
		Items:            items,
	}
	if appliedPromocode != nil {
		order.PromocodeID = &appliedPromocode.ID
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if appliedPromocode != nil {
		if err := s.promocodes.Apply(appliedPromocode, req.ClientID, &order.ID, total, promocodeDiscount); err != nil {
			s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to record promocode usage")
		}
		s.publisher.Publish(events.SubjectPromocodeApplied, map[string]interface{}{
			"promocode_id": appliedPromocode.ID,
			"order_id":     order.ID,
			"client_id":    req.ClientID,
			"discount":     promocodeDiscount,
		})
	}

	s.publisher.Publish(events.SubjectOrderCreated, map[string]interface{}{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"client_id":    order.ClientID,
		"point_id":     order.PointID,
		"total":        order.DiscountedAmount,
	})

	s.logger.WithFields(logrus.Fields{
		"order_id":     order.ID,
		"order_number": order.OrderNumber,
		"items":        len(items),
		"total":        order.DiscountedAmount,
	}).Info("Order created")

	return s.orderRepo.GetByID(order.ID)
}

// UpdateStatus moves an order along its lifecycle. Issuing an order books
// the payment as a cash income operation on the order's point.
func (s *OrderService) UpdateStatus(id uuid.UUID, next models.OrderStatus, performedBy *uuid.UUID) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !order.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}

	previous := order.Status
	order.Status = next
	if err := s.orderRepo.Update(order); err != nil {
		return nil, err
	}

	if next == models.OrderStatusIssued {
		op := &models.CashOperation{
			Type:        models.CashOperationIncome,
			Amount:      order.DiscountedAmount,
			PointID:     order.PointID,
			OrderID:     &order.ID,
			Comment:     fmt.Sprintf("Payment for order %s", order.OrderNumber),
			PerformedBy: performedBy,
		}
		if err := s.cashRepo.Create(op); err != nil {
			s.logger.WithError(err).WithField("order_id", order.ID).Error("Failed to book cash income for issued order")
		}
		s.publisher.Publish(events.SubjectOrderIssued, map[string]interface{}{
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"amount":       order.DiscountedAmount,
		})
	}

	s.publisher.Publish(events.SubjectOrderStatusChanged, map[string]interface{}{
		"order_id": order.ID,
		"from":     previous,
		"to":       next,
	})

	return order, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
