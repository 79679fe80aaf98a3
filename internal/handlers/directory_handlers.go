package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

type DirectoryHandler struct {
	repo *repository.DirectoryRepository
}

func NewDirectoryHandler(repo *repository.DirectoryRepository) *DirectoryHandler {
	return &DirectoryHandler{repo: repo}
}

// CreateCity adds a city to the directory
func (h *DirectoryHandler) CreateCity(c *gin.Context) {
	var req models.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	city := &models.City{Name: req.Name}
	if err := h.repo.CreateCity(city); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create city")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": city})
}

// ListCities returns all cities
func (h *DirectoryHandler) ListCities(c *gin.Context) {
	cities, err := h.repo.ListCities()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch cities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cities})
}

// DeleteCity removes a city from the directory
func (h *DirectoryHandler) DeleteCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid city ID")
		return
	}

	if err := h.repo.DeleteCity(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete city")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreatePoint adds a pickup point
// @Summary Create a point
// @Tags directory
// @Accept json
// @Produce json
// @Param point body models.CreatePointRequest true "Point data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /points [post]
// @Security BearerAuth
func (h *DirectoryHandler) CreatePoint(c *gin.Context) {
	var req models.CreatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	city, err := h.repo.GetCityByID(req.CityID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch city")
		return
	}
	if city == nil {
		respondError(c, http.StatusNotFound, "CITY_NOT_FOUND", "City not found")
		return
	}

	point := &models.Point{
		CityID:   req.CityID,
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Schedule: req.Schedule,
		IsActive: true,
	}
	if err := h.repo.CreatePoint(point); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create point")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": point})
}

// GetPoint retrieves a point by ID
func (h *DirectoryHandler) GetPoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid point ID")
		return
	}

	point, err := h.repo.GetPointByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch point")
		return
	}
	if point == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Point not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": point})
}

// ListPoints returns all points, optionally filtered by city
func (h *DirectoryHandler) ListPoints(c *gin.Context) {
	var cityID *uuid.UUID
	if v := c.Query("cityId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid city ID")
			return
		}
		cityID = &id
	}

	points, err := h.repo.ListPoints(cityID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch points")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": points})
}

// UpdatePoint updates a point
func (h *DirectoryHandler) UpdatePoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid point ID")
		return
	}

	var req models.UpdatePointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	point, err := h.repo.GetPointByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch point")
		return
	}
	if point == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Point not found")
		return
	}

	if req.CityID != nil {
		point.CityID = *req.CityID
	}
	if req.Name != nil {
		point.Name = *req.Name
	}
	if req.Address != nil {
		point.Address = *req.Address
	}
	if req.Phone != nil {
		point.Phone = *req.Phone
	}
	if req.Schedule != nil {
		point.Schedule = *req.Schedule
	}
	if req.IsActive != nil {
		point.IsActive = *req.IsActive
	}

	if err := h.repo.UpdatePoint(point); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update point")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": point})
}

// DeletePoint soft deletes a point
func (h *DirectoryHandler) DeletePoint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid point ID")
		return
	}

	if err := h.repo.DeletePoint(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete point")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
