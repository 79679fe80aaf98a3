package models

import (
	"github.com/google/uuid"
)

// SegmentKey identifies one of the six RFM segments.
type SegmentKey string

const (
	SegmentChampions          SegmentKey = "CHAMPIONS"
	SegmentLoyalCustomers     SegmentKey = "LOYAL_CUSTOMERS"
	SegmentPotentialLoyalists SegmentKey = "POTENTIAL_LOYALISTS"
	SegmentNewcomers          SegmentKey = "NEWCOMERS"
	SegmentAtRisk             SegmentKey = "AT_RISK"
	SegmentLost               SegmentKey = "LOST"
)

// RecencyNever is the sentinel recency for clients with no orders.
const RecencyNever = 999

// ClientMetric holds the derived RFM metrics for one client.
// Derived, never persisted.
type ClientMetric struct {
	Client    *Client `json:"client"`
	Recency   int     `json:"recency"`   // days since the most recent order, RecencyNever if none
	Frequency int     `json:"frequency"` // orders in the trailing 12 months
	Monetary  float64 `json:"monetary"`  // discounted revenue in the trailing 12 months
	RFMScore  string  `json:"rfmScore"`  // 3-digit display score, does not drive classification
}

// SegmentDefinition carries the authored description of a segment.
type SegmentDefinition struct {
	Key            SegmentKey `json:"key"`
	Name           string     `json:"name"`
	Criteria       string     `json:"criteria"`
	Recommendation string     `json:"recommendation"`
}

// SegmentReport is one populated segment in a classification result.
type SegmentReport struct {
	SegmentDefinition
	Clients      []ClientMetric `json:"clients"`
	ClientsCount int            `json:"clientsCount"`
	Percentage   float64        `json:"percentage"` // share of all clients, 0-100
}

// ClassificationResult is the outcome of one full segmentation pass.
type ClassificationResult struct {
	Segments     []SegmentReport `json:"segments"`
	TotalClients int             `json:"totalClients"`
	Unclassified int             `json:"unclassified"`
}

// SegmentOf returns the segment a client landed in, or "" if unclassified.
func (r *ClassificationResult) SegmentOf(clientID uuid.UUID) SegmentKey {
	for _, seg := range r.Segments {
		for _, m := range seg.Clients {
			if m.Client != nil && m.Client.ID == clientID {
				return seg.Key
			}
		}
	}
	return ""
}

// SegmentationResponse wraps a classification result for the API
type SegmentationResponse struct {
	Success bool                  `json:"success"`
	Data    *ClassificationResult `json:"data"`
}
