package services

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"backoffice-service/internal/models"
)

func testService(price float64) *models.Service {
	return &models.Service{
		ID:       uuid.New(),
		Name:     "Coat cleaning",
		Category: models.ServiceCategoryClothing,
		Price:    price,
		Unit:     "pcs",
		IsActive: true,
	}
}

func testPromotion(dt models.DiscountType, amount float64, serviceIDs ...uuid.UUID) models.Promotion {
	ids := make([]string, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		ids = append(ids, id.String())
	}
	now := time.Now()
	return models.Promotion{
		ID:                 uuid.New(),
		Name:               "Autumn promo",
		DiscountType:       dt,
		DiscountAmount:     amount,
		StartDate:          now.AddDate(0, 0, -1),
		EndDate:            now.AddDate(0, 0, 1),
		ApplicableServices: ids,
	}
}

func TestResolvePriceNoPromotion(t *testing.T) {
	svc := testService(1000)

	result, err := ResolvePrice(svc, 2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OriginalPrice != 2000 {
		t.Fatalf("expected original price 2000, got %f", result.OriginalPrice)
	}
	if result.FinalPrice != result.OriginalPrice {
		t.Fatalf("expected final price to equal original, got %f", result.FinalPrice)
	}
	if result.AppliedPromotion != nil {
		t.Fatalf("expected no applied promotion")
	}
}

func TestResolvePricePercentageDiscount(t *testing.T) {
	svc := testService(1000)
	promo := testPromotion(models.DiscountPercentage, 20, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{promo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalPrice != 800 {
		t.Fatalf("expected final price 800, got %f", result.FinalPrice)
	}
	if result.AppliedPromotion == nil || result.AppliedPromotion.ID != promo.ID {
		t.Fatalf("expected applied promotion %s", promo.ID)
	}
}

func TestResolvePricePercentageRounds(t *testing.T) {
	svc := testService(333)
	promo := testPromotion(models.DiscountPercentage, 15, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{promo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 333 * 0.85 = 283.05, rounds to 283
	if result.FinalPrice != 283 {
		t.Fatalf("expected final price 283, got %f", result.FinalPrice)
	}
}

func TestResolvePriceFixedDiscount(t *testing.T) {
	svc := testService(1000)
	promo := testPromotion(models.DiscountFixed, 150, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{promo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalPrice != 850 {
		t.Fatalf("expected final price 850, got %f", result.FinalPrice)
	}
}

func TestResolvePriceFixedDiscountClampsAtZero(t *testing.T) {
	svc := testService(100)
	promo := testPromotion(models.DiscountFixed, 500, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{promo})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.FinalPrice != 0 {
		t.Fatalf("expected final price 0, got %f", result.FinalPrice)
	}
}

func TestResolvePriceNilService(t *testing.T) {
	_, err := ResolvePrice(nil, 1, nil)
	if !errors.Is(err, ErrServiceNotFound) {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}

func TestResolvePriceInvalidQuantity(t *testing.T) {
	svc := testService(1000)
	if _, err := ResolvePrice(svc, 0, nil); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := ResolvePrice(svc, -3, nil); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestResolvePriceDirectLinkPreferred(t *testing.T) {
	svc := testService(1000)
	listed := testPromotion(models.DiscountPercentage, 50, svc.ID)
	direct := testPromotion(models.DiscountPercentage, 10)
	svc.PromotionID = &direct.ID

	// The direct link wins even though the listed promotion gives a bigger
	// discount and appears first.
	result, err := ResolvePrice(svc, 1, []models.Promotion{listed, direct})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AppliedPromotion.ID != direct.ID {
		t.Fatalf("expected direct promotion %s, got %s", direct.ID, result.AppliedPromotion.ID)
	}
	if result.FinalPrice != 900 {
		t.Fatalf("expected final price 900, got %f", result.FinalPrice)
	}
}

func TestResolvePriceFirstMatchNotBestDiscount(t *testing.T) {
	svc := testService(1000)
	small := testPromotion(models.DiscountPercentage, 5, svc.ID)
	big := testPromotion(models.DiscountPercentage, 50, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{small, big})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AppliedPromotion.ID != small.ID {
		t.Fatalf("expected first matching promotion, got %s", result.AppliedPromotion.ID)
	}
	if result.FinalPrice != 950 {
		t.Fatalf("expected final price 950, got %f", result.FinalPrice)
	}
}

func TestResolvePriceDanglingDirectLinkFallsBack(t *testing.T) {
	svc := testService(1000)
	missing := uuid.New()
	svc.PromotionID = &missing
	listed := testPromotion(models.DiscountFixed, 100, svc.ID)

	result, err := ResolvePrice(svc, 1, []models.Promotion{listed})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AppliedPromotion == nil || result.AppliedPromotion.ID != listed.ID {
		t.Fatalf("expected fallback to listed promotion")
	}
}

func TestActivePromotionsFiltersWindow(t *testing.T) {
	now := time.Now()
	active := testPromotion(models.DiscountPercentage, 10)
	expired := testPromotion(models.DiscountPercentage, 10)
	expired.StartDate = now.AddDate(0, 0, -10)
	expired.EndDate = now.AddDate(0, 0, -5)
	upcoming := testPromotion(models.DiscountPercentage, 10)
	upcoming.StartDate = now.AddDate(0, 0, 5)
	upcoming.EndDate = now.AddDate(0, 0, 10)

	got := ActivePromotions([]models.Promotion{active, expired, upcoming}, now)
	if len(got) != 1 {
		t.Fatalf("expected 1 active promotion, got %d", len(got))
	}
	if got[0].ID != active.ID {
		t.Fatalf("expected promotion %s, got %s", active.ID, got[0].ID)
	}
}
