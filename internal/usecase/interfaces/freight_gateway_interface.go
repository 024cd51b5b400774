package interfaces

import (
	"context"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
)

// IFreightGateway abstracts the external freight API. One method per
// upstream endpoint the portal consumes; the gateway owns transport,
// auth headers and error classification.
type IFreightGateway interface {
	Login(ctx context.Context, username, password string) (freightapi.LoginResult, error)

	ListRFQs(ctx context.Context, token string) ([]entities.RFQ, error)
	GetRFQ(ctx context.Context, token string, id int64) (entities.RFQ, error)
	CreateRFQ(ctx context.Context, token string, p freightapi.CreateRFQParams) (entities.RFQ, error)
	CreateShipment(ctx context.Context, token string, p freightapi.CreateShipmentParams) error

	CreateBid(ctx context.Context, token string, p freightapi.CreateBidParams) error
	ListMyBids(ctx context.Context, token string) ([]entities.Bid, error)
	AwardBid(ctx context.Context, token string, bidID int64) error
	MakeCounterOffer(ctx context.Context, token string, bidID int64, amount string) error
	AcceptCounter(ctx context.Context, token string, bidID int64) error
	RejectCounter(ctx context.Context, token string, bidID int64) error

	GetDashboardStats(ctx context.Context, token string) (entities.DashboardStats, error)

	ListBidMessages(ctx context.Context, token string, bidID int64) ([]entities.ChatMessage, error)
	PostBidMessage(ctx context.Context, token string, bidID int64, message string) error

	BaseHost() string
}
