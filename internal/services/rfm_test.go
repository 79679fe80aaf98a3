package services

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"backoffice-service/internal/models"
)

func testClient() models.Client {
	return models.Client{
		ID:        uuid.New(),
		Type:      models.ClientTypeIndividual,
		FirstName: "Test",
		LastName:  "Client",
	}
}

func testOrder(clientID uuid.UUID, daysAgo int, amount float64, now time.Time) models.Order {
	return models.Order{
		ID:               uuid.New(),
		ClientID:         clientID,
		Date:             now.AddDate(0, 0, -daysAgo),
		TotalAmount:      amount,
		DiscountedAmount: amount,
	}
}

func repeatOrders(clientID uuid.UUID, count, daysAgo int, amount float64, now time.Time) []models.Order {
	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		orders = append(orders, testOrder(clientID, daysAgo+i, amount, now))
	}
	return orders
}

func TestComputeMetricsNoOrders(t *testing.T) {
	now := time.Now()
	client := testClient()

	metrics := ComputeMetrics([]models.Client{client}, nil, now)
	if len(metrics) != 1 {
		t.Fatalf("expected 1 metric, got %d", len(metrics))
	}

	m := metrics[0]
	if m.Recency != models.RecencyNever {
		t.Fatalf("expected recency sentinel %d, got %d", models.RecencyNever, m.Recency)
	}
	if m.Frequency != 0 || m.Monetary != 0 {
		t.Fatalf("expected zero frequency/monetary, got %d/%f", m.Frequency, m.Monetary)
	}
}

func TestComputeMetricsWindowExcludesOldOrders(t *testing.T) {
	now := time.Now()
	client := testClient()

	// One recent order plus one outside the 12-month window. The old order
	// must not count towards frequency or monetary.
	orders := []models.Order{
		testOrder(client.ID, 10, 1000, now),
		testOrder(client.ID, 400, 9000, now),
	}

	metrics := ComputeMetrics([]models.Client{client}, orders, now)
	m := metrics[0]

	if m.Recency != 10 {
		t.Fatalf("expected recency 10, got %d", m.Recency)
	}
	if m.Frequency != 1 {
		t.Fatalf("expected frequency 1, got %d", m.Frequency)
	}
	if m.Monetary != 1000 {
		t.Fatalf("expected monetary 1000, got %f", m.Monetary)
	}
}

func TestComputeMetricsFutureOrderClampsRecency(t *testing.T) {
	now := time.Now()
	client := testClient()
	orders := []models.Order{testOrder(client.ID, -1, 500, now)}

	metrics := ComputeMetrics([]models.Client{client}, orders, now)
	if metrics[0].Recency != 0 {
		t.Fatalf("expected recency clamped to 0, got %d", metrics[0].Recency)
	}
}

func TestClassifyNewcomer(t *testing.T) {
	now := time.Now()
	client := testClient()
	orders := []models.Order{testOrder(client.ID, 10, 5000, now)}

	result := Classify([]models.Client{client}, orders, now)
	if got := result.SegmentOf(client.ID); got != models.SegmentNewcomers {
		t.Fatalf("expected NEWCOMERS, got %q", got)
	}
	if result.Unclassified != 0 {
		t.Fatalf("expected 0 unclassified, got %d", result.Unclassified)
	}
}

func TestClassifyChampion(t *testing.T) {
	now := time.Now()
	client := testClient()
	orders := repeatOrders(client.ID, 13, 5, 2000, now)

	result := Classify([]models.Client{client}, orders, now)
	if got := result.SegmentOf(client.ID); got != models.SegmentChampions {
		t.Fatalf("expected CHAMPIONS, got %q", got)
	}
}

func TestClassifyNoOrdersUnclassified(t *testing.T) {
	now := time.Now()
	client := testClient()

	result := Classify([]models.Client{client}, nil, now)
	if got := result.SegmentOf(client.ID); got != "" {
		t.Fatalf("expected unclassified, got %q", got)
	}
	if result.Unclassified != 1 {
		t.Fatalf("expected 1 unclassified, got %d", result.Unclassified)
	}
	if result.TotalClients != 1 {
		t.Fatalf("expected 1 total client, got %d", result.TotalClients)
	}
}

func TestClassifyAtMostOneSegment(t *testing.T) {
	now := time.Now()

	// A mixed base: champion, newcomer, dormant heavy user, empty profile.
	champion := testClient()
	newcomer := testClient()
	atRisk := testClient()
	empty := testClient()

	var orders []models.Order
	orders = append(orders, repeatOrders(champion.ID, 13, 5, 2000, now)...)
	orders = append(orders, testOrder(newcomer.ID, 10, 5000, now))
	orders = append(orders, repeatOrders(atRisk.ID, 6, 60, 2000, now)...)

	clients := []models.Client{champion, newcomer, atRisk, empty}
	result := Classify(clients, orders, now)

	assignments := 0
	for _, seg := range result.Segments {
		assignments += seg.ClientsCount
	}
	if assignments+result.Unclassified != result.TotalClients {
		t.Fatalf("assignments %d + unclassified %d != total %d", assignments, result.Unclassified, result.TotalClients)
	}

	// Every client appears in at most one segment.
	seen := make(map[uuid.UUID]int)
	for _, seg := range result.Segments {
		for _, m := range seg.Clients {
			seen[m.Client.ID]++
		}
	}
	for id, n := range seen {
		if n > 1 {
			t.Fatalf("client %s assigned to %d segments", id, n)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	now := time.Now()
	client := testClient()
	orders := repeatOrders(client.ID, 13, 5, 2000, now)
	clients := []models.Client{client}

	first := Classify(clients, orders, now)
	second := Classify(clients, orders, now)

	if first.Unclassified != second.Unclassified {
		t.Fatalf("unclassified differs: %d vs %d", first.Unclassified, second.Unclassified)
	}
	for i := range first.Segments {
		if first.Segments[i].ClientsCount != second.Segments[i].ClientsCount {
			t.Fatalf("segment %s differs: %d vs %d",
				first.Segments[i].Key, first.Segments[i].ClientsCount, second.Segments[i].ClientsCount)
		}
	}
}

func TestClassifyReportsAllSixSegments(t *testing.T) {
	result := Classify(nil, nil, time.Now())
	if len(result.Segments) != 6 {
		t.Fatalf("expected 6 segments in the report, got %d", len(result.Segments))
	}

	expected := []models.SegmentKey{
		models.SegmentChampions,
		models.SegmentLoyalCustomers,
		models.SegmentPotentialLoyalists,
		models.SegmentNewcomers,
		models.SegmentAtRisk,
		models.SegmentLost,
	}
	for i, key := range expected {
		if result.Segments[i].Key != key {
			t.Fatalf("segment %d: expected %s, got %s", i, key, result.Segments[i].Key)
		}
	}
}

func TestRFMScoreForEmptyProfile(t *testing.T) {
	m := models.ClientMetric{Recency: models.RecencyNever}
	if got := rfmScore(m); got != "111" {
		t.Fatalf("expected score 111, got %s", got)
	}
}

func TestRFMScoreForChampionProfile(t *testing.T) {
	m := models.ClientMetric{Recency: 5, Frequency: 13, Monetary: 25000}
	if got := rfmScore(m); got != "555" {
		t.Fatalf("expected score 555, got %s", got)
	}
}
