package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
)

type CashHandler struct {
	repo *repository.CashRepository
}

func NewCashHandler(repo *repository.CashRepository) *CashHandler {
	return &CashHandler{repo: repo}
}

// CreateCashOperation records a manual cash movement
// @Summary Create a cash operation
// @Description Record a manual income or expense at a point
// @Tags cash
// @Accept json
// @Produce json
// @Param operation body models.CreateCashOperationRequest true "Operation data"
// @Success 201 {object} models.CashOperationResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /cash/operations [post]
// @Security BearerAuth
func (h *CashHandler) CreateCashOperation(c *gin.Context) {
	var req models.CreateCashOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	op := &models.CashOperation{
		Type:    req.Type,
		Amount:  req.Amount,
		PointID: req.PointID,
		Comment: req.Comment,
	}
	if userID, err := uuid.Parse(c.GetString("userId")); err == nil {
		op.PerformedBy = &userID
	}

	if err := h.repo.Create(op); err != nil {
		respondError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create cash operation")
		return
	}

	c.JSON(http.StatusCreated, models.CashOperationResponse{Success: true, Data: op})
}

// ListCashOperations retrieves cash operations with filters
// @Summary List cash operations
// @Tags cash
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Param pointId query string false "Filter by point"
// @Param type query string false "INCOME or EXPENSE"
// @Param dateFrom query string false "Start date (RFC 3339)"
// @Param dateTo query string false "End date (RFC 3339)"
// @Success 200 {object} models.CashOperationListResponse
// @Router /cash/operations [get]
// @Security BearerAuth
func (h *CashHandler) ListCashOperations(c *gin.Context) {
	page, limit := parsePagination(c)

	var pointID *uuid.UUID
	if v := c.Query("pointId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid point ID")
			return
		}
		pointID = &id
	}

	var opType *models.CashOperationType
	if v := c.Query("type"); v != "" {
		t := models.CashOperationType(v)
		opType = &t
	}

	var from, to *time.Time
	if v := c.Query("dateFrom"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_DATE", "Invalid dateFrom")
			return
		}
		from = &t
	}
	if v := c.Query("dateTo"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_DATE", "Invalid dateTo")
			return
		}
		to = &t
	}

	ops, total, err := h.repo.List(pointID, opType, from, to, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch cash operations")
		return
	}

	c.JSON(http.StatusOK, models.CashOperationListResponse{
		Success:    true,
		Data:       ops,
		Pagination: buildPagination(page, limit, total),
	})
}

// GetPointBalances returns income/expense/balance per point
// @Summary Point balances
// @Tags cash
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /cash/balances [get]
// @Security BearerAuth
func (h *CashHandler) GetPointBalances(c *gin.Context) {
	balances, err := h.repo.PointBalances()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch balances")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": balances})
}
