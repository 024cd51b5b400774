package request

import (
	"strings"

	"freightdesk/internal/infrastructure/freightapi"
)

const defaultFreeDaysDemurrage = 14

// BidCreateRequest is the vendor quote form for one lane, multipart for
// the optional rate-sheet attachment.
type BidCreateRequest struct {
	ShipmentID        int64  `form:"shipment" json:"shipment" binding:"required"`
	Amount            string `form:"amount" json:"amount" binding:"required"`
	TransitTimeDays   int    `form:"transit_time_days" json:"transit_time_days" binding:"required"`
	FreeDaysDemurrage *int   `form:"free_days_demurrage" json:"free_days_demurrage"`
	ValidUntil        string `form:"valid_until" json:"valid_until" binding:"required"`
}

func (r BidCreateRequest) ToParams(file *freightapi.Upload) freightapi.CreateBidParams {
	freeDays := defaultFreeDaysDemurrage
	if r.FreeDaysDemurrage != nil {
		freeDays = *r.FreeDaysDemurrage
	}
	return freightapi.CreateBidParams{
		ShipmentID:        r.ShipmentID,
		Amount:            strings.TrimSpace(r.Amount),
		TransitTimeDays:   r.TransitTimeDays,
		FreeDaysDemurrage: freeDays,
		ValidUntil:        strings.TrimSpace(r.ValidUntil),
		File:              file,
	}
}

// CounterOfferRequest is the shipper's proposed alternate price.
type CounterOfferRequest struct {
	CounterAmount string `json:"counter_amount" binding:"required"`
}

func (r CounterOfferRequest) ResolveAmount() string {
	return strings.TrimSpace(r.CounterAmount)
}
