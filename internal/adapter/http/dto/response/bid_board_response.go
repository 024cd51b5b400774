package response

import (
	"math"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
)

// MyBidRowResponse is one row of the vendor quote ledger. The upstream
// list endpoint joins in the lane routing and tender title, so the row
// carries everything the table needs.
type MyBidRowResponse struct {
	ID                 int64                       `json:"id"`
	RFQID              int64                       `json:"rfq_id"`
	RFQTitle           string                      `json:"rfq_title"`
	OriginPort         string                      `json:"origin_port"`
	DestinationPort    string                      `json:"destination_port"`
	Amount             string                      `json:"amount"`
	Currency           string                      `json:"currency"`
	TransitTimeDays    int                         `json:"transit_time_days"`
	SubmittedAt        time.Time                   `json:"submitted_at"`
	IsWinner           bool                        `json:"is_winner"`
	StatusLabel        string                      `json:"status_label"`
	CounterOfferStatus entities.CounterOfferStatus `json:"counter_offer_status"`
	ContractFileURL    string                      `json:"contract_file_url,omitempty"`
}

// MyBidsResponse is the vendor performance screen: KPIs over the full
// quote set, rows filtered by the search term.
type MyBidsResponse struct {
	Total   int                `json:"total"`
	Won     int                `json:"won"`
	Pending int                `json:"pending"`
	WinRate int                `json:"win_rate"`
	Query   string             `json:"query,omitempty"`
	Bids    []MyBidRowResponse `json:"bids"`
}

const (
	statusContractWon     = "CONTRACT WON"
	statusPendingDecision = "PENDING DECISION"
)

// BuildMyBids computes the KPIs over all bids, then applies the
// case-insensitive search across tender title and both ports. KPIs are
// deliberately unaffected by the filter.
func BuildMyBids(bids []entities.Bid, query, baseHost string) MyBidsResponse {
	out := MyBidsResponse{
		Total: len(bids),
		Query: strings.TrimSpace(query),
		Bids:  []MyBidRowResponse{},
	}
	for _, b := range bids {
		if b.IsWinner {
			out.Won++
		}
	}
	out.Pending = out.Total - out.Won
	if out.Total > 0 {
		out.WinRate = int(math.Round(float64(out.Won) / float64(out.Total) * 100))
	}

	needle := strings.ToLower(out.Query)
	for _, b := range bids {
		if needle != "" && !bidMatches(b, needle) {
			continue
		}
		row := MyBidRowResponse{
			ID:                 b.ID,
			RFQID:              b.RFQID,
			RFQTitle:           b.RFQTitle,
			OriginPort:         b.OriginPort,
			DestinationPort:    b.DestinationPort,
			Amount:             b.Amount,
			Currency:           b.Currency,
			TransitTimeDays:    b.TransitTimeDays,
			SubmittedAt:        b.CreatedAt,
			IsWinner:           b.IsWinner,
			StatusLabel:        statusPendingDecision,
			CounterOfferStatus: b.CounterOfferStatus,
		}
		if b.IsWinner {
			row.StatusLabel = statusContractWon
			row.ContractFileURL = resolveFileURL(baseHost, b.ContractFileURL)
		}
		out.Bids = append(out.Bids, row)
	}
	return out
}

func bidMatches(b entities.Bid, needle string) bool {
	return strings.Contains(strings.ToLower(b.RFQTitle), needle) ||
		strings.Contains(strings.ToLower(b.OriginPort), needle) ||
		strings.Contains(strings.ToLower(b.DestinationPort), needle)
}
