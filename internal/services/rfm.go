package services

import (
	"fmt"
	"time"

	"backoffice-service/internal/models"
)

// twelveMonthWindow is the trailing window for frequency/monetary metrics.
const twelveMonthWindow = 365 * 24 * time.Hour

// segmentRule pairs a segment definition with its membership predicate.
// Rules are evaluated in order; the first match wins, so every predicate
// only states its own bounds and relies on the ordering for exclusion.
type segmentRule struct {
	def     models.SegmentDefinition
	matches func(m models.ClientMetric) bool
}

var segmentRules = []segmentRule{
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentChampions,
			Name:           "Champions",
			Criteria:       "Ordered within 30 days, 12+ orders and 24 000+ spent over the last year",
			Recommendation: "Reward with priority service and early access to new promotions",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency >= 0 && m.Recency <= 30 && m.Frequency >= 12 && m.Monetary >= 24000
		},
	},
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentLoyalCustomers,
			Name:           "Loyal Customers",
			Criteria:       "Ordered within 15-90 days, 7-11 orders and 14 000-23 999 spent over the last year",
			Recommendation: "Offer a loyalty discount to push them towards Champions",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency >= 15 && m.Recency <= 90 &&
				m.Frequency >= 7 && m.Frequency <= 11 &&
				m.Monetary >= 14000 && m.Monetary <= 23999
		},
	},
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentPotentialLoyalists,
			Name:           "Potential Loyalists",
			Criteria:       "Ordered within 30 days, 2-6 orders and 4 000-13 999 spent over the last year",
			Recommendation: "Suggest complementary services and a second-visit promocode",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency >= 0 && m.Recency <= 30 &&
				m.Frequency >= 2 && m.Frequency <= 6 &&
				m.Monetary >= 4000 && m.Monetary <= 13999
		},
	},
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentNewcomers,
			Name:           "Newcomers",
			Criteria:       "First and only order within the last 30 days",
			Recommendation: "Send a welcome message with a discount for the next order",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency >= 0 && m.Recency <= 30 && m.Frequency == 1 && m.Monetary >= 1
		},
	},
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentAtRisk,
			Name:           "At Risk",
			Criteria:       "No order for 31-180 days after 4-11 orders and 8 000+ spent",
			Recommendation: "Reactivate with a personal offer before they churn",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency >= 31 && m.Recency <= 180 &&
				m.Frequency >= 4 && m.Frequency <= 11 &&
				m.Monetary >= 8000
		},
	},
	{
		def: models.SegmentDefinition{
			Key:            models.SegmentLost,
			Name:           "Lost",
			Criteria:       "No order for over 360 days, 1-3 orders and under 7 999 spent",
			Recommendation: "Low-cost win-back campaign only; do not over-invest",
		},
		matches: func(m models.ClientMetric) bool {
			return m.Recency > 360 &&
				m.Frequency >= 1 && m.Frequency <= 3 &&
				m.Monetary < 7999
		},
	},
}

// ComputeMetrics derives the RFM metrics for every client from its order
// history. Recency counts whole days since the most recent order over all
// orders; frequency and monetary only look at the trailing 12 months.
// A client with no orders gets the RecencyNever sentinel and zero counts.
func ComputeMetrics(clients []models.Client, orders []models.Order, now time.Time) []models.ClientMetric {
	byClient := make(map[string][]models.Order, len(clients))
	for _, o := range orders {
		key := o.ClientID.String()
		byClient[key] = append(byClient[key], o)
	}

	windowStart := now.Add(-twelveMonthWindow)
	metrics := make([]models.ClientMetric, 0, len(clients))
	for i := range clients {
		client := &clients[i]
		m := models.ClientMetric{
			Client:  client,
			Recency: models.RecencyNever,
		}

		var latest time.Time
		for _, o := range byClient[client.ID.String()] {
			if o.Date.After(latest) {
				latest = o.Date
			}
			if !o.Date.Before(windowStart) {
				m.Frequency++
				m.Monetary += o.DiscountedAmount
			}
		}
		if !latest.IsZero() {
			m.Recency = int(now.Sub(latest).Hours() / 24)
			if m.Recency < 0 {
				m.Recency = 0
			}
		}
		m.RFMScore = rfmScore(m)
		metrics = append(metrics, m)
	}
	return metrics
}

// Classify runs the full segmentation pass: metric derivation followed by
// ordered rule evaluation with an accumulating assigned set. A client lands
// in at most one segment; clients matching no rule stay unclassified and
// are reported only as a count. The function is pure in its inputs and now.
func Classify(clients []models.Client, orders []models.Order, now time.Time) *models.ClassificationResult {
	metrics := ComputeMetrics(clients, orders, now)

	result := &models.ClassificationResult{
		Segments:     make([]models.SegmentReport, 0, len(segmentRules)),
		TotalClients: len(clients),
	}

	assigned := make(map[string]bool, len(metrics))
	for _, rule := range segmentRules {
		report := models.SegmentReport{SegmentDefinition: rule.def}
		for _, m := range metrics {
			key := m.Client.ID.String()
			if assigned[key] {
				continue
			}
			if rule.matches(m) {
				assigned[key] = true
				report.Clients = append(report.Clients, m)
			}
		}
		report.ClientsCount = len(report.Clients)
		if result.TotalClients > 0 {
			report.Percentage = float64(report.ClientsCount) / float64(result.TotalClients) * 100
		}
		result.Segments = append(result.Segments, report)
	}

	result.Unclassified = result.TotalClients - len(assigned)
	return result
}

// rfmScore builds the cosmetic 3-digit score shown next to a client.
// It uses its own fixed bucketing and never feeds classification.
func rfmScore(m models.ClientMetric) string {
	return fmt.Sprintf("%d%d%d", recencyScore(m.Recency), frequencyScore(m.Frequency), monetaryScore(m.Monetary))
}

func recencyScore(recency int) int {
	switch {
	case recency <= 30:
		return 5
	case recency <= 90:
		return 4
	case recency <= 180:
		return 3
	case recency <= 360:
		return 2
	default:
		return 1
	}
}

func frequencyScore(frequency int) int {
	switch {
	case frequency >= 12:
		return 5
	case frequency >= 7:
		return 4
	case frequency >= 4:
		return 3
	case frequency >= 2:
		return 2
	default:
		return 1
	}
}

func monetaryScore(monetary float64) int {
	switch {
	case monetary >= 24000:
		return 5
	case monetary >= 14000:
		return 4
	case monetary >= 8000:
		return 3
	case monetary >= 4000:
		return 2
	default:
		return 1
	}
}
