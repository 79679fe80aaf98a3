package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"backoffice-service/internal/models"
)

// segmentColumn defines one column of the segmentation CSV export.
type segmentColumn struct {
	header string
	value  func(segment *models.SegmentReport, m models.ClientMetric) string
}

var segmentExportColumns = []segmentColumn{
	{"Segment", func(s *models.SegmentReport, _ models.ClientMetric) string {
		return s.Name
	}},
	{"Client", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return m.Client.DisplayName()
	}},
	{"Phone", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return m.Client.Phone
	}},
	{"Email", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return m.Client.Email
	}},
	{"Recency (days)", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return fmt.Sprintf("%d", m.Recency)
	}},
	{"Frequency (12m)", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return fmt.Sprintf("%d", m.Frequency)
	}},
	{"Monetary (12m)", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return fmt.Sprintf("%.2f", m.Monetary)
	}},
	{"RFM Score", func(_ *models.SegmentReport, m models.ClientMetric) string {
		return m.RFMScore
	}},
	{"Recommendation", func(s *models.SegmentReport, _ models.ClientMetric) string {
		return s.Recommendation
	}},
}

// ExportService renders segmentation snapshots as CSV for campaign tools.
type ExportService struct {
	segmentation *SegmentationService
}

func NewExportService(segmentation *SegmentationService) *ExportService {
	return &ExportService{segmentation: segmentation}
}

// SegmentationCSV exports the current classification, one row per
// classified client. An optional segment key restricts the export.
func (s *ExportService) SegmentationCSV(ctx context.Context, segmentKey models.SegmentKey) ([]byte, error) {
	result, err := s.segmentation.Classify(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(segmentExportColumns))
	for i, c := range segmentExportColumns {
		header[i] = c.header
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i := range result.Segments {
		segment := &result.Segments[i]
		if segmentKey != "" && segment.Key != segmentKey {
			continue
		}
		for _, m := range segment.Clients {
			row := make([]string, len(segmentExportColumns))
			for j, c := range segmentExportColumns {
				row[j] = c.value(segment, m)
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
