package models

// DashboardOverview represents the main dashboard numbers
type DashboardOverview struct {
	RevenueToday     float64 `json:"revenueToday"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`
	OrdersToday      int64   `json:"ordersToday"`
	OrdersThisMonth  int64   `json:"ordersThisMonth"`
	ActiveClients    int64   `json:"activeClients"` // clients with an order in the last 90 days
	TotalClients     int64   `json:"totalClients"`
}

// OrderStatusCount represents the number of orders in one status
type OrderStatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

// TopService represents a top performing service by revenue
type TopService struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	OrderCount  int64   `json:"orderCount"`
	Quantity    int64   `json:"quantity"`
	Revenue     float64 `json:"revenue"`
}

// SegmentSummary is the compact per-segment line shown on the dashboard
type SegmentSummary struct {
	Key          SegmentKey `json:"key"`
	Name         string     `json:"name"`
	ClientsCount int        `json:"clientsCount"`
	Percentage   float64    `json:"percentage"`
}

// DashboardResponse represents the dashboard payload
type DashboardResponse struct {
	Success        bool               `json:"success"`
	Overview       *DashboardOverview `json:"overview"`
	OrdersByStatus []OrderStatusCount `json:"ordersByStatus"`
	TopServices    []TopService       `json:"topServices"`
	PointBalances  []PointBalance     `json:"pointBalances"`
	Segments       []SegmentSummary   `json:"segments"`
}
