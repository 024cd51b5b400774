package response

import (
	"math"
	"sort"
	"time"

	"freightdesk/internal/domain/entities"
)

// TrendPointResponse is one weekday of the spend/savings/velocity series.
type TrendPointResponse struct {
	Name    string  `json:"name"`
	Spend   float64 `json:"spend"`
	Savings float64 `json:"savings"`
	Bids    int     `json:"bids"`
}

// VolumePointResponse is one weekday of shipped volume against the
// modelled network capacity.
type VolumePointResponse struct {
	Name     string `json:"name"`
	Volume   int    `json:"volume"`
	Capacity int    `json:"capacity"`
}

// VendorPointResponse is one bar of the vendor leaderboard.
type VendorPointResponse struct {
	Name      string `json:"name"`
	Submitted int    `json:"submitted"`
	Won       int    `json:"won"`
}

// CategoryPointResponse is one wedge of the volume-by-container chart.
type CategoryPointResponse struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// OrgDashboardResponse is the shipper command center: upstream KPI
// figures plus series derived from the tender list itself.
type OrgDashboardResponse struct {
	TotalRFQs  int     `json:"total_rfqs"`
	TotalBids  int     `json:"total_bids"`
	TotalUsers int     `json:"total_users"`
	SavingsPct float64 `json:"savings_pct"`

	Trend      []TrendPointResponse    `json:"trend"`
	Volume     []VolumePointResponse   `json:"volume"`
	Vendors    []VendorPointResponse   `json:"vendors"`
	Categories []CategoryPointResponse `json:"categories"`

	Pie      []entities.PieSlice    `json:"pie"`
	Activity []entities.SeriesPoint `json:"activity"`

	RecentRFQs []RFQSummaryResponse `json:"recent_rfqs"`
}

// VendorDashboardResponse is the carrier control center.
type VendorDashboardResponse struct {
	ActiveBids int `json:"active_bids"`
	WonBids    int `json:"won_bids"`
	WinRate    int `json:"win_rate"`
	OpenMarket int `json:"open_market"`

	Pie      []entities.PieSlice    `json:"pie"`
	Activity []entities.SeriesPoint `json:"activity"`

	RFQs []RFQSummaryResponse `json:"rfqs"`
}

var weekdays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

type dayBucket struct {
	spend   float64
	savings float64
	bids    int
	volume  int
}

// BuildOrgDashboard derives all chart series from the tender list in a
// single pass: weekday buckets for trend and volume, a vendor tally for
// the leaderboard, container-type volume for the category chart, and
// the aggregate savings percentage against target prices.
func BuildOrgDashboard(stats entities.DashboardStats, rfqs []entities.RFQ, now time.Time) OrgDashboardResponse {
	days := make(map[string]*dayBucket, len(weekdays))
	for _, d := range weekdays {
		days[d] = &dayBucket{}
	}

	var targetTotal, lowestTotal float64
	vendorIndex := map[string]*VendorPointResponse{}
	var vendorOrder []string
	categoryIndex := map[string]int{}
	var categoryOrder []string

	for _, rfq := range rfqs {
		createdAt := rfq.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		day := days[createdAt.Weekday().String()[:3]]

		for _, sh := range rfq.Shipments {
			vol := sh.Volume
			if vol == 0 {
				vol = 1
			}
			day.volume += vol

			containerType := sh.ContainerType
			if containerType == "" {
				containerType = "Standard"
			}
			if _, ok := categoryIndex[containerType]; !ok {
				categoryOrder = append(categoryOrder, containerType)
			}
			categoryIndex[containerType] += vol

			target := sh.TargetPriceValue()
			lowest := target
			hasBids := len(sh.AllBids) > 0
			if hasBids {
				day.bids += len(sh.AllBids)
				currentLowest := math.Inf(1)
				for _, b := range sh.AllBids {
					if amt := b.AmountValue(); amt < currentLowest {
						currentLowest = amt
					}
					name := b.DisplayVendor()
					v, ok := vendorIndex[name]
					if !ok {
						v = &VendorPointResponse{Name: name}
						vendorIndex[name] = v
						vendorOrder = append(vendorOrder, name)
					}
					v.Submitted++
					if b.IsWinner {
						v.Won++
					}
				}
				if !math.IsInf(currentLowest, 1) {
					lowest = currentLowest
				}
			}

			if target > 0 && hasBids {
				targetTotal += target
				// A lane whose best quote overshoots the target contributes
				// zero savings, never negative, so the aggregate percentage
				// stays within 0..100.
				lowestTotal += math.Min(lowest, target)
				day.spend += lowest
				if target > lowest {
					day.savings += target - lowest
				}
			}
		}
	}

	out := OrgDashboardResponse{
		TotalRFQs:  stats.TotalRFQs,
		TotalBids:  stats.TotalBids,
		TotalUsers: stats.TotalUsers,
		Pie:        pieOrFallback(stats.PieData),
		Activity:   stats.ChartData,
		Trend:      make([]TrendPointResponse, 0, len(weekdays)),
		Volume:     make([]VolumePointResponse, 0, len(weekdays)),
		RecentRFQs: []RFQSummaryResponse{},
	}
	if out.Activity == nil {
		out.Activity = []entities.SeriesPoint{}
	}

	if targetTotal > 0 {
		out.SavingsPct = math.Round((targetTotal-lowestTotal)/targetTotal*1000) / 10
	}

	for _, d := range weekdays {
		b := days[d]
		out.Trend = append(out.Trend, TrendPointResponse{Name: d, Spend: b.spend, Savings: b.savings, Bids: b.bids})
		out.Volume = append(out.Volume, VolumePointResponse{
			Name:     d,
			Volume:   b.volume,
			Capacity: int(math.Floor(float64(b.volume) * 1.3)),
		})
	}

	for _, name := range vendorOrder {
		out.Vendors = append(out.Vendors, *vendorIndex[name])
	}
	sort.SliceStable(out.Vendors, func(i, j int) bool {
		return out.Vendors[i].Submitted > out.Vendors[j].Submitted
	})
	if len(out.Vendors) > 5 {
		out.Vendors = out.Vendors[:5]
	}
	if len(out.Vendors) == 0 {
		out.Vendors = []VendorPointResponse{{Name: "No Bids"}}
	}

	for _, name := range categoryOrder {
		out.Categories = append(out.Categories, CategoryPointResponse{Name: name, Value: categoryIndex[name]})
	}
	if len(out.Categories) == 0 {
		out.Categories = []CategoryPointResponse{{Name: "No Lanes", Value: 1}}
	}

	for i, rfq := range rfqs {
		if i == 5 {
			break
		}
		out.RecentRFQs = append(out.RecentRFQs, summarizeRFQ(rfq))
	}
	return out
}

// BuildVendorDashboard counts the vendor's live quotes directly off the
// open market list, then blends in the upstream win figure.
func BuildVendorDashboard(stats entities.DashboardStats, rfqs []entities.RFQ) VendorDashboardResponse {
	active := 0
	for _, rfq := range rfqs {
		for _, sh := range rfq.Shipments {
			if sh.MyBid != nil {
				active++
			}
		}
	}

	out := VendorDashboardResponse{
		ActiveBids: active,
		WonBids:    stats.WonBids,
		OpenMarket: len(rfqs),
		Pie:        pieOrFallback(stats.PieData),
		Activity:   stats.ChartData,
		RFQs:       make([]RFQSummaryResponse, 0, len(rfqs)),
	}
	if out.Activity == nil {
		out.Activity = []entities.SeriesPoint{}
	}

	if participated := active + stats.WonBids; participated > 0 {
		out.WinRate = int(math.Round(float64(stats.WonBids) / float64(participated) * 100))
	}

	for _, rfq := range rfqs {
		out.RFQs = append(out.RFQs, summarizeRFQ(rfq))
	}
	return out
}

func pieOrFallback(slices []entities.PieSlice) []entities.PieSlice {
	if len(slices) == 0 {
		return []entities.PieSlice{{Name: "No Data", Value: 1}}
	}
	return slices
}
