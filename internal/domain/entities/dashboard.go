package entities

// DashboardStats is the aggregate figure set returned by the freight
// API's analytics endpoint. The field set differs by role; absent fields
// stay zero. A failed stats fetch degrades to the zero value — the
// dashboard then renders purely client-derived series.
type DashboardStats struct {
	// Vendor figures.
	ActiveBids int `json:"active_bids"`
	WonBids    int `json:"won_bids"`

	// Shipper figures.
	TotalRFQs  int `json:"total_rfqs"`
	TotalBids  int `json:"total_bids"`
	TotalUsers int `json:"total_users"`

	PieData   []PieSlice    `json:"pie_data"`
	ChartData []SeriesPoint `json:"chart_data"`
}

// PieSlice is one wedge of the upstream status/award breakdown.
type PieSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// SeriesPoint is one day of the upstream seven-day activity series.
type SeriesPoint struct {
	Name string `json:"name"`
	Bids int    `json:"bids,omitempty"`
	RFQs int    `json:"rfqs,omitempty"`
}
