package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/services"
)

type ServiceHandler struct {
	repo    *repository.ServiceRepository
	pricing *services.PricingService
}

func NewServiceHandler(repo *repository.ServiceRepository, pricing *services.PricingService) *ServiceHandler {
	return &ServiceHandler{repo: repo, pricing: pricing}
}

// CreateService creates a catalog entry
// @Summary Create a service
// @Tags services
// @Accept json
// @Produce json
// @Param service body models.CreateServiceRequest true "Service data"
// @Success 201 {object} models.ServiceResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /services [post]
// @Security BearerAuth
func (h *ServiceHandler) CreateService(c *gin.Context) {
	var req models.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	unit := req.Unit
	if unit == "" {
		unit = "pcs"
	}

	service := &models.Service{
		Name:        req.Name,
		Category:    req.Category,
		Price:       req.Price,
		Unit:        unit,
		IsActive:    true,
		PromotionID: req.PromotionID,
	}
	if err := h.repo.Create(service); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create service")
		return
	}

	c.JSON(http.StatusCreated, models.ServiceResponse{Success: true, Data: service})
}

// GetService retrieves a service by ID
func (h *ServiceHandler) GetService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	service, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch service")
		return
	}
	if service == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		return
	}

	c.JSON(http.StatusOK, models.ServiceResponse{Success: true, Data: service})
}

// ListServices retrieves the catalog
// @Summary List services
// @Tags services
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param category query string false "Category filter"
// @Param active query bool false "Only active services"
// @Success 200 {object} models.ServiceListResponse
// @Router /services [get]
// @Security BearerAuth
func (h *ServiceHandler) ListServices(c *gin.Context) {
	page, limit := parsePagination(c)

	var category *models.ServiceCategory
	if v := c.Query("category"); v != "" {
		cat := models.ServiceCategory(v)
		category = &cat
	}
	activeOnly := c.Query("active") == "true"

	list, total, err := h.repo.List(category, activeOnly, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch services")
		return
	}

	c.JSON(http.StatusOK, models.ServiceListResponse{
		Success:    true,
		Data:       list,
		Pagination: buildPagination(page, limit, total),
	})
}

// UpdateService updates a catalog entry
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	var req models.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	service, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch service")
		return
	}
	if service == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Unit != nil {
		service.Unit = *req.Unit
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}
	if req.PromotionID != nil {
		service.PromotionID = req.PromotionID
	}

	if err := h.repo.Update(service); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update service")
		return
	}

	c.JSON(http.StatusOK, models.ServiceResponse{Success: true, Data: service})
}

// DeleteService soft deletes a catalog entry
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetServicePrice resolves the promotional price for a quantity
// @Summary Resolve a service price
// @Description Compute the promotional price for a quantity of a service
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param quantity query int false "Quantity (default 1)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /services/{id}/price [get]
// @Security BearerAuth
func (h *ServiceHandler) GetServicePrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid service ID")
		return
	}

	quantity := 1
	if v := c.Query("quantity"); v != "" {
		quantity, err = strconv.Atoi(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be an integer")
			return
		}
	}

	result, err := h.pricing.Resolve(id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
		case errors.Is(err, services.ErrInvalidQuantity):
			respondError(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1")
		default:
			respondError(c, http.StatusInternalServerError, "RESOLVE_FAILED", "Failed to resolve price")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
