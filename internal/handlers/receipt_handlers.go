package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"backoffice-service/internal/models"
	"backoffice-service/internal/services"
)

type ReceiptHandler struct {
	receiptService *services.ReceiptService
}

func NewReceiptHandler(receiptService *services.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// GetOrderReceipt renders a receipt for an order
// @Summary Order receipt
// @Description Render the order receipt as PDF or HTML
// @Tags receipts
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Param format query string false "pdf or html (default pdf)"
// @Param template query string false "default or simple"
// @Success 200 {string} string "Receipt document"
// @Failure 404 {object} models.ErrorResponse
// @Router /orders/{id}/receipt [get]
// @Security BearerAuth
func (h *ReceiptHandler) GetOrderReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID")
		return
	}

	format := models.ReceiptFormat(c.Query("format"))
	tmpl := models.ReceiptTemplate(c.Query("template"))

	data, contentType, err := h.receiptService.Generate(id, format, tmpl)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "NOT_FOUND", "Order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "GENERATE_FAILED", "Failed to generate receipt")
		return
	}

	if contentType == "application/pdf" {
		c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "receipt-"+id.String()+".pdf"))
	}
	c.Data(http.StatusOK, contentType, data)
}

// GetReceiptSettings returns the chain receipt settings
// @Summary Get receipt settings
// @Tags receipts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /receipts/settings [get]
// @Security BearerAuth
func (h *ReceiptHandler) GetReceiptSettings(c *gin.Context) {
	settings, err := h.receiptService.GetSettings()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to fetch receipt settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateReceiptSettings applies partial updates to receipt settings
// @Summary Update receipt settings
// @Tags receipts
// @Accept json
// @Produce json
// @Param settings body models.ReceiptSettingsUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.ErrorResponse
// @Router /receipts/settings [put]
// @Security BearerAuth
func (h *ReceiptHandler) UpdateReceiptSettings(c *gin.Context) {
	var req models.ReceiptSettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	settings, err := h.receiptService.UpdateSettings(&req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update receipt settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
