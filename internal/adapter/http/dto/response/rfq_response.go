package response

import (
	"fmt"
	"sort"
	"time"

	"freightdesk/internal/domain/entities"
)

// RFQSummaryResponse is one row of the tender list.
type RFQSummaryResponse struct {
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	CreatedByUsername string             `json:"created_by_username"`
	Status            entities.RFQStatus `json:"status"`
	CreatedAt         time.Time          `json:"created_at"`
	Deadline          time.Time          `json:"deadline"`
	LaneCount         int                `json:"lane_count"`
	BidCount          int                `json:"bid_count"`
}

// RFQListResponse is the tender list screen. CanCreate drives whether
// the "new tender" action is rendered.
type RFQListResponse struct {
	RFQs      []RFQSummaryResponse `json:"rfqs"`
	CanCreate bool                 `json:"can_create"`
}

func summarizeRFQ(r entities.RFQ) RFQSummaryResponse {
	bidCount := 0
	for _, sh := range r.Shipments {
		bidCount += len(sh.AllBids)
	}
	return RFQSummaryResponse{
		ID:                r.ID,
		Title:             r.Title,
		CreatedByUsername: r.CreatedByUsername,
		Status:            r.Status,
		CreatedAt:         r.CreatedAt,
		Deadline:          r.Deadline,
		LaneCount:         len(r.Shipments),
		BidCount:          bidCount,
	}
}

func BuildRFQList(s entities.Session, rfqs []entities.RFQ) RFQListResponse {
	out := RFQListResponse{
		RFQs:      make([]RFQSummaryResponse, 0, len(rfqs)),
		CanCreate: s.IsOrg(),
	}
	for _, r := range rfqs {
		out.RFQs = append(out.RFQs, summarizeRFQ(r))
	}
	return out
}

// BidRowResponse is one entry of a lane's comparison board, already
// ranked by price.
type BidRowResponse struct {
	ID                 int64                       `json:"id"`
	Vendor             string                      `json:"vendor"`
	Amount             string                      `json:"amount"`
	Currency           string                      `json:"currency"`
	TransitTimeDays    int                         `json:"transit_time_days"`
	FreeDaysDemurrage  int                         `json:"free_days_demurrage"`
	ValidUntil         string                      `json:"valid_until"`
	FileURL            string                      `json:"file_url,omitempty"`
	Rank               string                      `json:"rank"`
	BestPrice          bool                        `json:"best_price"`
	SavingsVsHighest   float64                     `json:"savings_vs_highest"`
	IsWinner           bool                        `json:"is_winner"`
	ContractFileURL    string                      `json:"contract_file_url,omitempty"`
	CounterOfferAmount string                      `json:"counter_offer_amount,omitempty"`
	CounterOfferStatus entities.CounterOfferStatus `json:"counter_offer_status"`
	CanAward           bool                        `json:"can_award"`
	CanCounter         bool                        `json:"can_counter"`
}

// MyBidPanelResponse is the vendor's own quote on a lane, with the
// counter-offer banner state.
type MyBidPanelResponse struct {
	ID                 int64                       `json:"id"`
	Amount             string                      `json:"amount"`
	Currency           string                      `json:"currency"`
	TransitTimeDays    int                         `json:"transit_time_days"`
	FreeDaysDemurrage  int                         `json:"free_days_demurrage"`
	ValidUntil         string                      `json:"valid_until"`
	IsWinner           bool                        `json:"is_winner"`
	ContractFileURL    string                      `json:"contract_file_url,omitempty"`
	CounterOfferAmount string                      `json:"counter_offer_amount,omitempty"`
	CounterOfferStatus entities.CounterOfferStatus `json:"counter_offer_status"`
	CanAcceptCounter   bool                        `json:"can_accept_counter"`
	CanRejectCounter   bool                        `json:"can_reject_counter"`
}

// LaneBoardResponse is one shipment lane with its ranked bid board.
// TargetPrice is passed through as received; when the server withholds
// it the field is empty and Savings stays zero.
type LaneBoardResponse struct {
	ID              int64               `json:"id"`
	OriginPort      string              `json:"origin_port"`
	DestinationPort string              `json:"destination_port"`
	ContainerType   string              `json:"container_type"`
	Volume          int                 `json:"volume"`
	TargetPrice     string              `json:"target_price,omitempty"`
	HasWinner       bool                `json:"has_winner"`
	Savings         float64             `json:"savings"`
	CanBid          bool                `json:"can_bid"`
	Bids            []BidRowResponse    `json:"bids"`
	MyBid           *MyBidPanelResponse `json:"my_bid,omitempty"`
}

// RFQDetailResponse is the full tender screen for either role.
type RFQDetailResponse struct {
	ID                 int64               `json:"id"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	CreatedByUsername  string              `json:"created_by_username"`
	Status             entities.RFQStatus  `json:"status"`
	CreatedAt          time.Time           `json:"created_at"`
	Deadline           time.Time           `json:"deadline"`
	FileURL            string              `json:"file_url,omitempty"`
	VisibleTargetPrice bool                `json:"visible_target_price"`
	VisibleBids        bool                `json:"visible_bids"`
	CanAddLane         bool                `json:"can_add_lane"`
	Lanes              []LaneBoardResponse `json:"lanes"`
}

// rankLabel names a board position: podium slots get lane-level labels,
// the rest plain ordinals.
func rankLabel(index int) string {
	if index < 3 {
		return fmt.Sprintf("L%d", index+1)
	}
	return fmt.Sprintf("#%d", index+1)
}

func BuildRFQDetail(s entities.Session, rfq entities.RFQ, baseHost string) RFQDetailResponse {
	out := RFQDetailResponse{
		ID:                 rfq.ID,
		Title:              rfq.Title,
		Description:        rfq.Description,
		CreatedByUsername:  rfq.CreatedByUsername,
		Status:             rfq.Status,
		CreatedAt:          rfq.CreatedAt,
		Deadline:           rfq.Deadline,
		FileURL:            resolveFileURL(baseHost, rfq.FileURL),
		VisibleTargetPrice: rfq.VisibleTargetPrice,
		VisibleBids:        rfq.VisibleBids,
		CanAddLane:         s.IsOrg() && rfq.Status == entities.RFQStatusOpen,
		Lanes:              make([]LaneBoardResponse, 0, len(rfq.Shipments)),
	}
	for _, sh := range rfq.Shipments {
		out.Lanes = append(out.Lanes, buildLaneBoard(s, rfq, sh, baseHost))
	}
	return out
}

func buildLaneBoard(s entities.Session, rfq entities.RFQ, sh entities.Shipment, baseHost string) LaneBoardResponse {
	lane := LaneBoardResponse{
		ID:              sh.ID,
		OriginPort:      sh.OriginPort,
		DestinationPort: sh.DestinationPort,
		ContainerType:   sh.ContainerType,
		Volume:          sh.Volume,
		TargetPrice:     sh.TargetPrice,
		HasWinner:       sh.HasWinner(),
		CanBid:          s.IsVendor() && rfq.Status == entities.RFQStatusOpen && sh.MyBid == nil,
		Bids:            []BidRowResponse{},
	}

	sorted := make([]entities.Bid, len(sh.AllBids))
	copy(sorted, sh.AllBids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].AmountValue() < sorted[j].AmountValue()
	})

	if target := sh.TargetPriceValue(); target > 0 && len(sorted) > 0 {
		if lowest := sorted[0].AmountValue(); target > lowest {
			lane.Savings = target - lowest
		}
	}

	var highest float64
	if len(sorted) > 0 {
		highest = sorted[len(sorted)-1].AmountValue()
	}

	// Actions stay open only while the tender is OPEN and the lane has
	// no winner yet; award is terminal for the lane.
	canAct := s.IsOrg() && rfq.Status == entities.RFQStatusOpen && !lane.HasWinner

	for i, b := range sorted {
		row := BidRowResponse{
			ID:                 b.ID,
			Vendor:             b.DisplayVendor(),
			Amount:             b.Amount,
			Currency:           b.Currency,
			TransitTimeDays:    b.TransitTimeDays,
			FreeDaysDemurrage:  b.FreeDaysDemurrage,
			ValidUntil:         b.ValidUntil,
			FileURL:            resolveFileURL(baseHost, b.FileURL),
			Rank:               rankLabel(i),
			BestPrice:          i == 0,
			IsWinner:           b.IsWinner,
			CounterOfferAmount: b.CounterOfferAmount,
			CounterOfferStatus: b.CounterOfferStatus,
			CanAward:           canAct && !b.IsWinner,
			CanCounter:         canAct && !b.IsWinner && b.CounterOfferStatus != entities.CounterPending,
		}
		if i == 0 && highest > b.AmountValue() {
			row.SavingsVsHighest = highest - b.AmountValue()
		}
		if b.IsWinner {
			row.ContractFileURL = resolveFileURL(baseHost, b.ContractFileURL)
		}
		lane.Bids = append(lane.Bids, row)
	}

	if sh.MyBid != nil {
		lane.MyBid = buildMyBidPanel(s, *sh.MyBid, baseHost)
	}
	return lane
}

func buildMyBidPanel(s entities.Session, b entities.Bid, baseHost string) *MyBidPanelResponse {
	counterOpen := s.IsVendor() && b.CounterOfferStatus == entities.CounterPending
	panel := &MyBidPanelResponse{
		ID:                 b.ID,
		Amount:             b.Amount,
		Currency:           b.Currency,
		TransitTimeDays:    b.TransitTimeDays,
		FreeDaysDemurrage:  b.FreeDaysDemurrage,
		ValidUntil:         b.ValidUntil,
		IsWinner:           b.IsWinner,
		CounterOfferAmount: b.CounterOfferAmount,
		CounterOfferStatus: b.CounterOfferStatus,
		CanAcceptCounter:   counterOpen,
		CanRejectCounter:   counterOpen,
	}
	if b.IsWinner {
		panel.ContractFileURL = resolveFileURL(baseHost, b.ContractFileURL)
	}
	return panel
}
