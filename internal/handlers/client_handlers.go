package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/events"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

type ClientHandler struct {
	repo      *repository.ClientRepository
	publisher *events.Publisher
}

func NewClientHandler(repo *repository.ClientRepository, publisher *events.Publisher) *ClientHandler {
	return &ClientHandler{repo: repo, publisher: publisher}
}

// CreateClient creates a new client
// @Summary Create a new client
// @Description Register an individual or legal entity client
// @Tags clients
// @Accept json
// @Produce json
// @Param client body models.CreateClientRequest true "Client data"
// @Success 201 {object} models.ClientResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /clients [post]
// @Security BearerAuth
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req models.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	if req.Type == models.ClientTypeLegalEntity && req.CompanyName == "" {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "companyName is required for legal entities")
		return
	}

	client := &models.Client{
		Type:             req.Type,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		MiddleName:       req.MiddleName,
		CompanyName:      req.CompanyName,
		INN:              req.INN,
		KPP:              req.KPP,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		Status:           models.ClientStatusActive,
		RegistrationDate: time.Now(),
		Tags:             req.Tags,
		Notes:            req.Notes,
	}

	if err := h.repo.Create(client); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create client")
		return
	}

	h.publisher.Publish(events.SubjectClientCreated, map[string]interface{}{
		"client_id": client.ID,
		"type":      client.Type,
	})

	c.JSON(http.StatusCreated, models.ClientResponse{Success: true, Data: client})
}

// GetClient retrieves a client by ID
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [get]
// @Security BearerAuth
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	client, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch client")
		return
	}
	if client == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return
	}

	c.JSON(http.StatusOK, models.ClientResponse{Success: true, Data: client})
}

// ListClients retrieves a paginated list of clients
// @Summary List clients
// @Tags clients
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param search query string false "Search in name, phone or email"
// @Param type query string false "Client type filter"
// @Success 200 {object} models.ClientListResponse
// @Router /clients [get]
// @Security BearerAuth
func (h *ClientHandler) ListClients(c *gin.Context) {
	page, limit := parsePagination(c)
	search := c.Query("search")

	var clientType *models.ClientType
	if t := c.Query("type"); t != "" {
		ct := models.ClientType(t)
		clientType = &ct
	}

	clients, total, err := h.repo.List(search, clientType, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch clients")
		return
	}

	c.JSON(http.StatusOK, models.ClientListResponse{
		Success:    true,
		Data:       clients,
		Pagination: buildPagination(page, limit, total),
	})
}

// UpdateClient updates client profile fields
// @Summary Update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body models.UpdateClientRequest true "Fields to update"
// @Success 200 {object} models.ClientResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [put]
// @Security BearerAuth
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	var req models.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	client, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch client")
		return
	}
	if client == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return
	}

	if req.FirstName != nil {
		client.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		client.LastName = *req.LastName
	}
	if req.MiddleName != nil {
		client.MiddleName = *req.MiddleName
	}
	if req.CompanyName != nil {
		client.CompanyName = *req.CompanyName
	}
	if req.INN != nil {
		client.INN = *req.INN
	}
	if req.KPP != nil {
		client.KPP = *req.KPP
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Status != nil {
		client.Status = *req.Status
	}
	if req.Tags != nil {
		client.Tags = req.Tags
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}

	if err := h.repo.Update(client); err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update client")
		return
	}

	c.JSON(http.StatusOK, models.ClientResponse{Success: true, Data: client})
}

// DeleteClient soft deletes a client
// @Summary Delete a client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.ErrorResponse
// @Router /clients/{id} [delete]
// @Security BearerAuth
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	client, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch client")
		return
	}
	if client == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
		return
	}

	if err := h.repo.Delete(id); err != nil {
		respondError(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete client")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
