package services

import (
	"testing"

	"backoffice-service/internal/models"
)

func TestCalculateDiscountPercentage(t *testing.T) {
	promocode := &models.Promocode{
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 10,
	}
	if got := CalculateDiscount(promocode, 1500); got != 150 {
		t.Fatalf("expected discount 150, got %f", got)
	}
}

func TestCalculateDiscountPercentageRounds(t *testing.T) {
	promocode := &models.Promocode{
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 15,
	}
	// 333 * 0.15 = 49.95, rounds to 50
	if got := CalculateDiscount(promocode, 333); got != 50 {
		t.Fatalf("expected discount 50, got %f", got)
	}
}

func TestCalculateDiscountFixed(t *testing.T) {
	promocode := &models.Promocode{
		DiscountType:  models.DiscountFixed,
		DiscountValue: 200,
	}
	if got := CalculateDiscount(promocode, 1000); got != 200 {
		t.Fatalf("expected discount 200, got %f", got)
	}
}

func TestCalculateDiscountFixedCappedAtOrderValue(t *testing.T) {
	promocode := &models.Promocode{
		DiscountType:  models.DiscountFixed,
		DiscountValue: 500,
	}
	if got := CalculateDiscount(promocode, 300); got != 300 {
		t.Fatalf("expected discount capped at 300, got %f", got)
	}
}
