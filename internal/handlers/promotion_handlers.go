package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

type PromotionHandler struct {
	repo *repository.PromotionRepository
}

func NewPromotionHandler(repo *repository.PromotionRepository) *PromotionHandler {
	return &PromotionHandler{repo: repo}
}

// CreatePromotion creates a new promotion
// @Summary Create a promotion
// @Tags promotions
// @Accept json
// @Produce json
// @Param promotion body models.CreatePromotionRequest true "Promotion data"
// @Success 201 {object} models.PromotionResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /promotions [post]
// @Security BearerAuth
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req models.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if req.EndDate.Before(req.StartDate) {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "endDate must be after startDate")
		return
	}
	if req.DiscountType == models.DiscountPercentage && req.DiscountAmount > 100 {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "percentage discount cannot exceed 100")
		return
	}

	promotion := &models.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		DiscountType:       req.DiscountType,
		DiscountAmount:     req.DiscountAmount,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		ApplicableServices: req.ApplicableServices,
	}
	if err := h.repo.Create(promotion); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create promotion")
		return
	}

	c.JSON(http.StatusCreated, models.PromotionResponse{Success: true, Data: promotion})
}

// GetPromotion retrieves a promotion by ID
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promotion ID")
		return
	}

	promotion, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promotion")
		return
	}
	if promotion == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
		return
	}

	c.JSON(http.StatusOK, models.PromotionResponse{Success: true, Data: promotion})
}

// ListPromotions retrieves all promotions
// @Summary List promotions
// @Tags promotions
// @Produce json
// @Success 200 {object} models.PromotionListResponse
// @Router /promotions [get]
// @Security BearerAuth
func (h *PromotionHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promotions")
		return
	}

	c.JSON(http.StatusOK, models.PromotionListResponse{Success: true, Data: promotions})
}

// UpdatePromotion updates a promotion
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promotion ID")
		return
	}

	var req models.UpdatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	promotion, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promotion")
		return
	}
	if promotion == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found")
		return
	}

	if req.Name != nil {
		promotion.Name = *req.Name
	}
	if req.Description != nil {
		promotion.Description = *req.Description
	}
	if req.DiscountType != nil {
		promotion.DiscountType = *req.DiscountType
	}
	if req.DiscountAmount != nil {
		promotion.DiscountAmount = *req.DiscountAmount
	}
	if req.StartDate != nil {
		promotion.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		promotion.EndDate = *req.EndDate
	}
	if req.ApplicableServices != nil {
		promotion.ApplicableServices = req.ApplicableServices
	}

	if promotion.EndDate.Before(promotion.StartDate) {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "endDate must be after startDate")
		return
	}

	if err := h.repo.Update(promotion); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update promotion")
		return
	}

	c.JSON(http.StatusOK, models.PromotionResponse{Success: true, Data: promotion})
}

// DeletePromotion soft deletes a promotion
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promotion ID")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete promotion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
