package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/services"
)

type PromocodeHandler struct {
	repo             *repository.PromocodeRepository
	promocodeService *services.PromocodeService
}

func NewPromocodeHandler(repo *repository.PromocodeRepository, promocodeService *services.PromocodeService) *PromocodeHandler {
	return &PromocodeHandler{repo: repo, promocodeService: promocodeService}
}

// CreatePromocode creates a new promocode
// @Summary Create a promocode
// @Tags promocodes
// @Accept json
// @Produce json
// @Param promocode body models.CreatePromocodeRequest true "Promocode data"
// @Success 201 {object} models.PromocodeResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /promocodes [post]
// @Security BearerAuth
func (h *PromocodeHandler) CreatePromocode(c *gin.Context) {
	var req models.CreatePromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	existing, err := h.repo.GetByCode(code)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create promocode")
		return
	}
	if existing != nil {
		respondError(c, http.StatusConflict, "DUPLICATE_CODE", "Promocode with this code already exists")
		return
	}

	promocode := &models.Promocode{
		Code:              code,
		Description:       req.Description,
		Status:            models.PromocodeStatusActive,
		IsActive:          true,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		MinOrderValue:     req.MinOrderValue,
		MaxUsageCount:     req.MaxUsageCount,
		MaxUsagePerClient: req.MaxUsagePerClient,
		ValidFrom:         req.ValidFrom,
		ValidUntil:        req.ValidUntil,
	}
	if err := h.repo.Create(promocode); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create promocode")
		return
	}

	c.JSON(http.StatusCreated, models.PromocodeResponse{Success: true, Data: promocode})
}

// GetPromocode retrieves a promocode by ID
func (h *PromocodeHandler) GetPromocode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promocode ID")
		return
	}

	promocode, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promocode")
		return
	}
	if promocode == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Promocode not found")
		return
	}

	c.JSON(http.StatusOK, models.PromocodeResponse{Success: true, Data: promocode})
}

// ListPromocodes retrieves a paginated list of promocodes
func (h *PromocodeHandler) ListPromocodes(c *gin.Context) {
	page, limit := parsePagination(c)

	promocodes, total, err := h.repo.List(page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promocodes")
		return
	}

	c.JSON(http.StatusOK, models.PromocodeListResponse{
		Success:    true,
		Data:       promocodes,
		Pagination: buildPagination(page, limit, total),
	})
}

// UpdatePromocode updates a promocode
func (h *PromocodeHandler) UpdatePromocode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promocode ID")
		return
	}

	var req models.UpdatePromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	promocode, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promocode")
		return
	}
	if promocode == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Promocode not found")
		return
	}

	if req.Description != nil {
		promocode.Description = *req.Description
	}
	if req.Status != nil {
		promocode.Status = *req.Status
	}
	if req.DiscountValue != nil {
		promocode.DiscountValue = *req.DiscountValue
	}
	if req.MinOrderValue != nil {
		promocode.MinOrderValue = req.MinOrderValue
	}
	if req.MaxUsageCount != nil {
		promocode.MaxUsageCount = req.MaxUsageCount
	}
	if req.MaxUsagePerClient != nil {
		promocode.MaxUsagePerClient = req.MaxUsagePerClient
	}
	if req.ValidUntil != nil {
		promocode.ValidUntil = req.ValidUntil
	}
	if req.IsActive != nil {
		promocode.IsActive = *req.IsActive
	}

	if err := h.repo.Update(promocode); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update promocode")
		return
	}

	c.JSON(http.StatusOK, models.PromocodeResponse{Success: true, Data: promocode})
}

// DeletePromocode soft deletes a promocode
func (h *PromocodeHandler) DeletePromocode(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promocode ID")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete promocode")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ValidatePromocode checks a promocode against an order value
// @Summary Validate a promocode
// @Description Check whether a promocode can be applied to an order value; does not consume the code
// @Tags promocodes
// @Accept json
// @Produce json
// @Param validation body models.ValidatePromocodeRequest true "Validation data"
// @Success 200 {object} models.PromocodeValidationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /promocodes/validate [post]
// @Security BearerAuth
func (h *PromocodeHandler) ValidatePromocode(c *gin.Context) {
	var req models.ValidatePromocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	resp, err := h.promocodeService.Validate(&req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "VALIDATE_FAILED", "Failed to validate promocode")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPromocodeUsage retrieves usage records for a promocode
func (h *PromocodeHandler) ListPromocodeUsage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid promocode ID")
		return
	}
	page, limit := parsePagination(c)

	usages, total, err := h.repo.ListUsage(id, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch promocode usage")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       usages,
		"pagination": buildPagination(page, limit, total),
	})
}
