package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backoffice-service/internal/models"
	"backoffice-service/internal/services"
)

type SegmentHandler struct {
	segmentation *services.SegmentationService
	export       *services.ExportService
}

func NewSegmentHandler(segmentation *services.SegmentationService, export *services.ExportService) *SegmentHandler {
	return &SegmentHandler{segmentation: segmentation, export: export}
}

// GetSegmentation returns the current RFM classification
// @Summary Client segmentation
// @Description Classify the whole client base into RFM segments
// @Tags segments
// @Produce json
// @Success 200 {object} models.SegmentationResponse
// @Router /segments [get]
// @Security BearerAuth
func (h *SegmentHandler) GetSegmentation(c *gin.Context) {
	result, err := h.segmentation.Classify(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CLASSIFY_FAILED", "Failed to classify clients")
		return
	}

	c.JSON(http.StatusOK, models.SegmentationResponse{Success: true, Data: result})
}

// RefreshSegmentation drops the cached snapshot and recomputes
// @Summary Refresh segmentation
// @Tags segments
// @Produce json
// @Success 200 {object} models.SegmentationResponse
// @Router /segments/refresh [post]
// @Security BearerAuth
func (h *SegmentHandler) RefreshSegmentation(c *gin.Context) {
	result, err := h.segmentation.Refresh(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "CLASSIFY_FAILED", "Failed to classify clients")
		return
	}

	c.JSON(http.StatusOK, models.SegmentationResponse{Success: true, Data: result})
}

// ExportSegmentationCSV exports the classification as CSV
// @Summary Export segmentation as CSV
// @Description One row per classified client; optional segment filter
// @Tags segments
// @Produce text/csv
// @Param segment query string false "Segment key filter"
// @Success 200 {string} string "CSV document"
// @Router /segments/export [get]
// @Security BearerAuth
func (h *SegmentHandler) ExportSegmentationCSV(c *gin.Context) {
	segmentKey := models.SegmentKey(c.Query("segment"))

	data, err := h.export.SegmentationCSV(c.Request.Context(), segmentKey)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "EXPORT_FAILED", "Failed to export segmentation")
		return
	}

	filename := fmt.Sprintf("segments-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
