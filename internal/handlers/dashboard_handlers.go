package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice-service/internal/services"
)

type DashboardHandler struct {
	reports *services.ReportService
}

func NewDashboardHandler(reports *services.ReportService) *DashboardHandler {
	return &DashboardHandler{reports: reports}
}

// GetDashboard returns the back-office dashboard payload
// @Summary Dashboard
// @Description Revenue, order counts, top services, point balances and segment summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardResponse
// @Router /dashboard [get]
// @Security BearerAuth
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	response, err := h.reports.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, response)
}
