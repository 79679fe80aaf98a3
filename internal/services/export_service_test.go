package services

import (
	"testing"

	"github.com/google/uuid"

	"backoffice-service/internal/models"
)

func TestSegmentExportColumns(t *testing.T) {
	client := models.Client{
		ID:        uuid.New(),
		Type:      models.ClientTypeIndividual,
		FirstName: "Anna",
		LastName:  "Petrova",
		Phone:     "+7 900 000-00-00",
		Email:     "anna@example.com",
	}
	segment := &models.SegmentReport{
		SegmentDefinition: models.SegmentDefinition{
			Key:            models.SegmentChampions,
			Name:           "Champions",
			Recommendation: "Reward them",
		},
	}
	metric := models.ClientMetric{
		Client:    &client,
		Recency:   5,
		Frequency: 13,
		Monetary:  25000,
		RFMScore:  "555",
	}

	expected := []string{
		"Champions",
		"Petrova Anna",
		"+7 900 000-00-00",
		"anna@example.com",
		"5",
		"13",
		"25000.00",
		"555",
		"Reward them",
	}
	if len(segmentExportColumns) != len(expected) {
		t.Fatalf("expected %d columns, got %d", len(expected), len(segmentExportColumns))
	}
	for i, col := range segmentExportColumns {
		if got := col.value(segment, metric); got != expected[i] {
			t.Fatalf("column %q: expected %q, got %q", col.header, expected[i], got)
		}
	}
}
