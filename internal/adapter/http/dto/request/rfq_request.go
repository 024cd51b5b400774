package request

import (
	"strings"

	"freightdesk/internal/infrastructure/freightapi"
)

// RFQCreateRequest is the tender creation form, submitted as multipart
// so the optional spec attachment rides along.
type RFQCreateRequest struct {
	Title              string `form:"title" json:"title" binding:"required"`
	Description        string `form:"description" json:"description"`
	Deadline           string `form:"deadline" json:"deadline" binding:"required"`
	VisibleTargetPrice bool   `form:"visible_target_price" json:"visible_target_price"`
	VisibleBids        bool   `form:"visible_bids" json:"visible_bids"`
}

func (r RFQCreateRequest) ToParams(file *freightapi.Upload) freightapi.CreateRFQParams {
	return freightapi.CreateRFQParams{
		Title:              strings.TrimSpace(r.Title),
		Description:        strings.TrimSpace(r.Description),
		Deadline:           strings.TrimSpace(r.Deadline),
		VisibleTargetPrice: r.VisibleTargetPrice,
		VisibleBids:        r.VisibleBids,
		File:               file,
	}
}

const defaultContainerType = "40HC"

// ShipmentCreateRequest adds a lane to an RFQ.
type ShipmentCreateRequest struct {
	OriginPort      string `json:"origin_port" binding:"required"`
	DestinationPort string `json:"destination_port" binding:"required"`
	ContainerType   string `json:"container_type"`
	Volume          int    `json:"volume"`
	TargetPrice     string `json:"target_price"`
}

func (r ShipmentCreateRequest) ToParams() freightapi.CreateShipmentParams {
	containerType := strings.TrimSpace(r.ContainerType)
	if containerType == "" {
		containerType = defaultContainerType
	}
	volume := r.Volume
	if volume == 0 {
		volume = 1
	}
	return freightapi.CreateShipmentParams{
		OriginPort:      strings.TrimSpace(r.OriginPort),
		DestinationPort: strings.TrimSpace(r.DestinationPort),
		ContainerType:   containerType,
		Volume:          volume,
		TargetPrice:     strings.TrimSpace(r.TargetPrice),
	}
}
