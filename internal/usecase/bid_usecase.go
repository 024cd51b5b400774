package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase/interfaces"
)

var (
	ErrNotVendor               = errors.New("only vendors can do this")
	ErrInvalidBidID            = errors.New("invalid bid id")
	ErrInvalidBidAmount        = errors.New("bid amount must be a positive number")
	ErrInvalidTransitTime      = errors.New("transit time must be at least 1 day")
	ErrMissingValidUntil       = errors.New("valid-until date is required")
	ErrInvalidCounterAmount    = errors.New("counter amount must be a positive number")
	ErrLaneAlreadyAwarded      = errors.New("this lane already has a winning bid")
	ErrCounterAlreadyPending   = errors.New("a counter offer is already pending on this bid")
	ErrCounterNotOnWinningBid  = errors.New("cannot counter a winning bid")
	ErrNoPendingCounter        = errors.New("no pending counter offer on this bid")
	ErrBidNotInRFQ             = errors.New("bid does not belong to this rfq")
)

const defaultAwardRefreshGrace = 3 * time.Second

// IBidUseCase backs the vendor bid actions and the shipper award/counter
// actions on the RFQ detail screen, plus the vendor "my bids" board.
// Every mutation re-fetches the owning RFQ before returning.
type IBidUseCase interface {
	Submit(ctx context.Context, s entities.Session, rfqID int64, p freightapi.CreateBidParams) (entities.RFQ, error)
	Award(ctx context.Context, s entities.Session, rfqID, bidID int64) (entities.RFQ, error)
	MakeCounter(ctx context.Context, s entities.Session, rfqID, bidID int64, amount string) (entities.RFQ, error)
	RespondCounter(ctx context.Context, s entities.Session, rfqID, bidID int64, accept bool) (entities.RFQ, error)
	MyBids(ctx context.Context, s entities.Session) ([]entities.Bid, error)
}

type BidUseCase struct {
	gateway  interfaces.IFreightGateway
	sessions interfaces.ISessionRepository

	// awardGrace is how long Award waits before the post-award refetch,
	// giving the server's asynchronous contract-PDF generation a chance
	// to finish so the fresh snapshot already links the file. A missing
	// contract_file after the wait is a normal state, not an error.
	awardGrace time.Duration
}

var _ IBidUseCase = (*BidUseCase)(nil)

func NewBidUseCase(gateway interfaces.IFreightGateway, sessions interfaces.ISessionRepository, awardGrace time.Duration) *BidUseCase {
	if awardGrace < 0 {
		awardGrace = defaultAwardRefreshGrace
	}
	return &BidUseCase{gateway: gateway, sessions: sessions, awardGrace: awardGrace}
}

// Submit places the vendor's one bid on a lane. The one-bid-per-lane
// rule lives upstream; a duplicate comes back as an *APIError whose
// message the screen shows verbatim instead of retrying.
func (u *BidUseCase) Submit(ctx context.Context, s entities.Session, rfqID int64, p freightapi.CreateBidParams) (entities.RFQ, error) {
	if !s.IsVendor() {
		return entities.RFQ{}, ErrNotVendor
	}
	if rfqID <= 0 {
		return entities.RFQ{}, ErrInvalidRFQID
	}
	if p.ShipmentID <= 0 {
		return entities.RFQ{}, ErrInvalidBidID
	}
	if v, err := strconv.ParseFloat(p.Amount, 64); err != nil || v <= 0 {
		return entities.RFQ{}, ErrInvalidBidAmount
	}
	if p.TransitTimeDays < 1 {
		return entities.RFQ{}, ErrInvalidTransitTime
	}
	if strings.TrimSpace(p.ValidUntil) == "" {
		return entities.RFQ{}, ErrMissingValidUntil
	}

	if err := u.gateway.CreateBid(ctx, s.Token, p); err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return u.refetch(ctx, s, rfqID)
}

// Award locks the contract to one bid. The pre-checks mirror what the
// screen offers: no second award on a lane that already has a winner.
func (u *BidUseCase) Award(ctx context.Context, s entities.Session, rfqID, bidID int64) (entities.RFQ, error) {
	if !s.IsOrg() {
		return entities.RFQ{}, ErrNotOrganization
	}
	_, shipment, err := u.locateBid(ctx, s, rfqID, bidID)
	if err != nil {
		return entities.RFQ{}, err
	}
	if shipment.HasWinner() {
		return entities.RFQ{}, ErrLaneAlreadyAwarded
	}

	if err := u.gateway.AwardBid(ctx, s.Token, bidID); err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	log.Printf("[bid][usecase] awarded bid=%d rfq=%d, waiting %s for contract generation", bidID, rfqID, u.awardGrace)

	// Contract PDF generation is asynchronous on the server. Wait a short
	// grace period before the refetch; cancel early if the caller goes away.
	if u.awardGrace > 0 {
		select {
		case <-ctx.Done():
			return entities.RFQ{}, ctx.Err()
		case <-time.After(u.awardGrace):
		}
	}
	return u.refetch(ctx, s, rfqID)
}

// MakeCounter proposes an alternate price on a live, non-winning bid.
func (u *BidUseCase) MakeCounter(ctx context.Context, s entities.Session, rfqID, bidID int64, amount string) (entities.RFQ, error) {
	if !s.IsOrg() {
		return entities.RFQ{}, ErrNotOrganization
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(amount), 64); err != nil || v <= 0 {
		return entities.RFQ{}, ErrInvalidCounterAmount
	}
	bid, shipment, err := u.locateBid(ctx, s, rfqID, bidID)
	if err != nil {
		return entities.RFQ{}, err
	}
	if shipment.HasWinner() {
		return entities.RFQ{}, ErrLaneAlreadyAwarded
	}
	if bid.IsWinner {
		return entities.RFQ{}, ErrCounterNotOnWinningBid
	}
	if bid.CounterOfferStatus == entities.CounterPending {
		return entities.RFQ{}, ErrCounterAlreadyPending
	}

	if err := u.gateway.MakeCounterOffer(ctx, s.Token, bidID, strings.TrimSpace(amount)); err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return u.refetch(ctx, s, rfqID)
}

// RespondCounter is the vendor's accept/reject on a pending counter.
func (u *BidUseCase) RespondCounter(ctx context.Context, s entities.Session, rfqID, bidID int64, accept bool) (entities.RFQ, error) {
	if !s.IsVendor() {
		return entities.RFQ{}, ErrNotVendor
	}
	bid, _, err := u.locateBid(ctx, s, rfqID, bidID)
	if err != nil {
		return entities.RFQ{}, err
	}
	if bid.CounterOfferStatus != entities.CounterPending {
		return entities.RFQ{}, ErrNoPendingCounter
	}

	if accept {
		err = u.gateway.AcceptCounter(ctx, s.Token, bidID)
	} else {
		err = u.gateway.RejectCounter(ctx, s.Token, bidID)
	}
	if err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return u.refetch(ctx, s, rfqID)
}

func (u *BidUseCase) MyBids(ctx context.Context, s entities.Session) ([]entities.Bid, error) {
	if !s.IsVendor() {
		return nil, ErrNotVendor
	}
	bids, err := u.gateway.ListMyBids(ctx, s.Token)
	if err != nil {
		return nil, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return bids, nil
}

// locateBid fetches the RFQ and finds the bid inside it, so the
// state-machine pre-checks run against a fresh snapshot.
func (u *BidUseCase) locateBid(ctx context.Context, s entities.Session, rfqID, bidID int64) (entities.Bid, entities.Shipment, error) {
	if rfqID <= 0 {
		return entities.Bid{}, entities.Shipment{}, ErrInvalidRFQID
	}
	if bidID <= 0 {
		return entities.Bid{}, entities.Shipment{}, ErrInvalidBidID
	}
	rfq, err := u.gateway.GetRFQ(ctx, s.Token, rfqID)
	if err != nil {
		return entities.Bid{}, entities.Shipment{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	for _, shipment := range rfq.Shipments {
		for _, bid := range shipment.AllBids {
			if bid.ID == bidID {
				return bid, shipment, nil
			}
		}
		if shipment.MyBid != nil && shipment.MyBid.ID == bidID {
			return *shipment.MyBid, shipment, nil
		}
	}
	return entities.Bid{}, entities.Shipment{}, ErrBidNotInRFQ
}

func (u *BidUseCase) refetch(ctx context.Context, s entities.Session, rfqID int64) (entities.RFQ, error) {
	rfq, err := u.gateway.GetRFQ(ctx, s.Token, rfqID)
	if err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return rfq, nil
}
