package services

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"backoffice-service/internal/models"
)

var (
	// ErrServiceNotFound is returned when the requested service id is unknown.
	ErrServiceNotFound = errors.New("service not found")
	// ErrInvalidQuantity is returned for a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ResolvePrice computes the promotional price for quantity units of a
// service. Promotion lookup prefers the service's direct promotionId link;
// otherwise the first active promotion listing the service wins (first
// match, not best discount). A fixed discount never drives the final price
// below zero.
func ResolvePrice(service *models.Service, quantity int, activePromotions []models.Promotion) (*models.PriceResult, error) {
	if service == nil {
		return nil, ErrServiceNotFound
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	original := service.Price * float64(quantity)
	result := &models.PriceResult{
		OriginalPrice: original,
		FinalPrice:    original,
	}

	promo := findPromotion(service, activePromotions)
	if promo == nil {
		return result, nil
	}

	result.AppliedPromotion = promo
	switch promo.DiscountType {
	case models.DiscountPercentage:
		result.FinalPrice = math.Round(original * (1 - promo.DiscountAmount/100))
	case models.DiscountFixed:
		result.FinalPrice = original - promo.DiscountAmount
		if result.FinalPrice < 0 {
			result.FinalPrice = 0
		}
	}
	return result, nil
}

// findPromotion picks the applicable promotion for a service.
func findPromotion(service *models.Service, activePromotions []models.Promotion) *models.Promotion {
	if service.PromotionID != nil {
		for i := range activePromotions {
			if activePromotions[i].ID == *service.PromotionID {
				return &activePromotions[i]
			}
		}
	}
	for i := range activePromotions {
		if activePromotions[i].AppliesToService(service.ID) {
			return &activePromotions[i]
		}
	}
	return nil
}

// ActivePromotions filters promotions whose window covers now.
func ActivePromotions(promotions []models.Promotion, now time.Time) []models.Promotion {
	active := make([]models.Promotion, 0, len(promotions))
	for _, p := range promotions {
		if p.IsActiveAt(now) {
			active = append(active, p)
		}
	}
	return active
}

// PricingService resolves promotional prices against the catalog.
type PricingService struct {
	serviceRepo   ServiceCatalog
	promotionRepo PromotionCatalog
}

// ServiceCatalog is the catalog lookup the pricing service depends on.
type ServiceCatalog interface {
	GetByID(id uuid.UUID) (*models.Service, error)
}

// PromotionCatalog lists promotions for applicability checks.
type PromotionCatalog interface {
	List() ([]models.Promotion, error)
}

// NewPricingService creates a new pricing service
func NewPricingService(serviceRepo ServiceCatalog, promotionRepo PromotionCatalog) *PricingService {
	return &PricingService{serviceRepo: serviceRepo, promotionRepo: promotionRepo}
}

// Resolve looks up the service and resolves its price for the given quantity.
func (s *PricingService) Resolve(serviceID uuid.UUID, quantity int) (*models.PriceResult, error) {
	svc, err := s.serviceRepo.GetByID(serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	promotions, err := s.promotionRepo.List()
	if err != nil {
		return nil, err
	}

	return ResolvePrice(svc, quantity, ActivePromotions(promotions, time.Now()))
}
