package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
	repo         *repository.OrderRepository
}

func NewOrderHandler(orderService *services.OrderService, repo *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{orderService: orderService, repo: repo}
}

// CreateOrder runs order intake
// @Summary Create a new order
// @Description Accept items from a client, price them against active promotions and an optional promocode
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.CreateOrderRequest true "Order data"
// @Success 201 {object} models.OrderResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders [post]
// @Security BearerAuth
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		var promoErr *services.PromocodeRejectedError
		switch {
		case errors.Is(err, services.ErrClientNotFound):
			respondError(c, http.StatusNotFound, "CLIENT_NOT_FOUND", "Client not found")
		case errors.Is(err, services.ErrPointNotFound):
			respondError(c, http.StatusNotFound, "POINT_NOT_FOUND", "Point not found")
		case errors.Is(err, services.ErrServiceNotFound):
			respondError(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found")
		case errors.Is(err, services.ErrServiceInactive):
			respondError(c, http.StatusBadRequest, "SERVICE_INACTIVE", "Service is not active")
		case errors.Is(err, services.ErrInvalidQuantity):
			respondError(c, http.StatusBadRequest, "INVALID_QUANTITY", "Quantity must be at least 1")
		case errors.As(err, &promoErr):
			respondError(c, http.StatusBadRequest, promoErr.ReasonCode, promoErr.Message)
		default:
			respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create order")
		}
		return
	}

	c.JSON(http.StatusCreated, models.OrderResponse{Success: true, Data: order})
}

// GetOrder retrieves an order by ID
// @Summary Get an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id} [get]
// @Security BearerAuth
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	order, err := h.repo.GetByID(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch order")
		return
	}
	if order == nil {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{Success: true, Data: order})
}

// ListOrders retrieves a paginated list of orders
// @Summary List orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param clientId query string false "Filter by client"
// @Param pointId query string false "Filter by point"
// @Param status query string false "Comma-separated status filter"
// @Param dateFrom query string false "Start date (RFC 3339)"
// @Param dateTo query string false "End date (RFC 3339)"
// @Success 200 {object} models.OrderListResponse
// @Router /orders [get]
// @Security BearerAuth
func (h *OrderHandler) ListOrders(c *gin.Context) {
	page, limit := parsePagination(c)

	filters := &models.OrderFilters{}
	if v := c.Query("clientId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
			return
		}
		filters.ClientID = &id
	}
	if v := c.Query("pointId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid point ID")
			return
		}
		filters.PointID = &id
	}
	if v := c.Query("status"); v != "" {
		for _, s := range strings.Split(v, ",") {
			filters.Statuses = append(filters.Statuses, models.OrderStatus(strings.TrimSpace(s)))
		}
	}
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_DATE", "Invalid dateFrom")
			return
		}
		filters.DateFrom = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_DATE", "Invalid dateTo")
			return
		}
		filters.DateTo = &t
	}

	orders, total, err := h.repo.List(filters, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch orders")
		return
	}

	c.JSON(http.StatusOK, models.OrderListResponse{
		Success:    true,
		Data:       orders,
		Pagination: buildPagination(page, limit, total),
	})
}

// UpdateOrderStatus moves an order to a new status
// @Summary Update order status
// @Description Move an order along its lifecycle; issuing books a cash income operation
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} models.OrderResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /orders/{id}/status [patch]
// @Security BearerAuth
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var performedBy *uuid.UUID
	if userID, err := uuid.Parse(c.GetString("userId")); err == nil {
		performedBy = &userID
	}

	order, err := h.orderService.UpdateStatus(id, req.Status, performedBy)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			respondError(c, http.StatusConflict, "INVALID_TRANSITION", "Order cannot move to the requested status")
		default:
			respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update order status")
		}
		return
	}

	c.JSON(http.StatusOK, models.OrderResponse{Success: true, Data: order})
}
