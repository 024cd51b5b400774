package entities

import (
	"strconv"
	"time"
)

// RFQStatus is the tender lifecycle as owned by the freight API. The
// portal renders it and never computes transitions.
type RFQStatus string

const (
	RFQStatusOpen   RFQStatus = "OPEN"
	RFQStatusClosed RFQStatus = "CLOSED"
	RFQStatusDraft  RFQStatus = "DRAFT"
)

// CounterOfferStatus tracks a shipper counter-offer on a bid:
// NONE -> PENDING -> ACCEPTED | REJECTED, all transitions server-side.
type CounterOfferStatus string

const (
	CounterNone     CounterOfferStatus = "NONE"
	CounterPending  CounterOfferStatus = "PENDING"
	CounterAccepted CounterOfferStatus = "ACCEPTED"
	CounterRejected CounterOfferStatus = "REJECTED"
)

// RFQ is a shipper tender as serialized by the freight API. Decimal
// fields arrive as strings on the wire and stay strings here; view code
// parses them only where arithmetic is needed.
type RFQ struct {
	ID                 int64      `json:"id"`
	CreatedBy          int64      `json:"created_by"`
	CreatedByUsername  string     `json:"created_by_username"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	FileURL            string     `json:"file"`
	Status             RFQStatus  `json:"status"`
	CreatedAt          time.Time  `json:"created_at"`
	Deadline           time.Time  `json:"deadline"`
	VisibleTargetPrice bool       `json:"visible_target_price"`
	VisibleBids        bool       `json:"visible_bids"`
	Shipments          []Shipment `json:"shipments"`
}

// Shipment is a single origin-destination lane inside an RFQ.
// TargetPrice is empty when the server withholds it (visibility rule is
// enforced upstream; the portal never tries to reconstruct it).
type Shipment struct {
	ID              int64  `json:"id"`
	RFQID           int64  `json:"rfq"`
	OriginPort      string `json:"origin_port"`
	DestinationPort string `json:"destination_port"`
	ContainerType   string `json:"container_type"`
	Volume          int    `json:"volume"`
	TargetPrice     string `json:"target_price"`
	MyBid           *Bid   `json:"my_bid"`
	AllBids         []Bid  `json:"all_bids"`
}

// TargetPriceValue parses the decimal target price, 0 when absent.
func (s Shipment) TargetPriceValue() float64 {
	v, _ := strconv.ParseFloat(s.TargetPrice, 64)
	return v
}

// HasWinner reports whether any bid in the lane has been awarded.
// Award is terminal for the lane.
func (s Shipment) HasWinner() bool {
	for _, b := range s.AllBids {
		if b.IsWinner {
			return true
		}
	}
	return s.MyBid != nil && s.MyBid.IsWinner
}

// Bid is a vendor offer against one lane. The list endpoint joins in the
// lane ports and RFQ title so the vendor board needs no extra fetches.
type Bid struct {
	ID                 int64              `json:"id"`
	ShipmentID         int64              `json:"shipment"`
	VendorID           int64              `json:"vendor"`
	VendorName         string             `json:"vendor_name"`
	VendorCompany      string             `json:"vendor_company"`
	Amount             string             `json:"amount"`
	Currency           string             `json:"currency"`
	TransitTimeDays    int                `json:"transit_time_days"`
	FreeDaysDemurrage  int                `json:"free_days_demurrage"`
	ValidUntil         string             `json:"valid_until"`
	FileURL            string             `json:"file"`
	IsWinner           bool               `json:"is_winner"`
	CreatedAt          time.Time          `json:"created_at"`
	OriginPort         string             `json:"origin_port"`
	DestinationPort    string             `json:"destination_port"`
	RFQTitle           string             `json:"rfq_title"`
	RFQID              int64              `json:"rfq_id"`
	CounterOfferAmount string             `json:"counter_offer_amount"`
	CounterOfferStatus CounterOfferStatus `json:"counter_offer_status"`
	ContractFileURL    string             `json:"contract_file"`
}

// AmountValue parses the decimal bid amount, 0 when unparseable.
func (b Bid) AmountValue() float64 {
	v, _ := strconv.ParseFloat(b.Amount, 64)
	return v
}

// DisplayVendor prefers the company name over the account username.
func (b Bid) DisplayVendor() string {
	if b.VendorCompany != "" {
		return b.VendorCompany
	}
	if b.VendorName != "" {
		return b.VendorName
	}
	return "Unknown"
}
