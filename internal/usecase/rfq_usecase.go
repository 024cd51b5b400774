package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase/interfaces"
)

var (
	ErrInvalidRFQID       = errors.New("invalid rfq id")
	ErrNotOrganization    = errors.New("only organizations can do this")
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingDeadline    = errors.New("deadline is required")
	ErrMissingPorts       = errors.New("origin and destination ports are required")
	ErrInvalidVolume      = errors.New("volume must be at least 1")
	ErrInvalidTargetPrice = errors.New("target price must be a positive number")
)

// IRFQUseCase backs the RFQ list, detail and creation screens. Reads are
// fetch-on-entry; every mutation re-fetches the full RFQ so the caller
// always renders a fresh server snapshot.
type IRFQUseCase interface {
	List(ctx context.Context, s entities.Session) ([]entities.RFQ, error)
	Get(ctx context.Context, s entities.Session, id int64) (entities.RFQ, error)
	Create(ctx context.Context, s entities.Session, p freightapi.CreateRFQParams) (entities.RFQ, error)
	AddShipment(ctx context.Context, s entities.Session, rfqID int64, p freightapi.CreateShipmentParams) (entities.RFQ, error)
}

type RFQUseCase struct {
	gateway  interfaces.IFreightGateway
	sessions interfaces.ISessionRepository
}

var _ IRFQUseCase = (*RFQUseCase)(nil)

func NewRFQUseCase(gateway interfaces.IFreightGateway, sessions interfaces.ISessionRepository) *RFQUseCase {
	return &RFQUseCase{gateway: gateway, sessions: sessions}
}

func (u *RFQUseCase) List(ctx context.Context, s entities.Session) ([]entities.RFQ, error) {
	rfqs, err := u.gateway.ListRFQs(ctx, s.Token)
	if err != nil {
		return nil, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return rfqs, nil
}

func (u *RFQUseCase) Get(ctx context.Context, s entities.Session, id int64) (entities.RFQ, error) {
	if id <= 0 {
		return entities.RFQ{}, ErrInvalidRFQID
	}
	rfq, err := u.gateway.GetRFQ(ctx, s.Token, id)
	if err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return rfq, nil
}

// Create publishes a tender. Role gating is also enforced upstream; the
// check here just fails fast with a clear message.
func (u *RFQUseCase) Create(ctx context.Context, s entities.Session, p freightapi.CreateRFQParams) (entities.RFQ, error) {
	if !s.IsOrg() {
		return entities.RFQ{}, ErrNotOrganization
	}
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return entities.RFQ{}, ErrMissingTitle
	}
	if strings.TrimSpace(p.Deadline) == "" {
		return entities.RFQ{}, ErrMissingDeadline
	}

	created, err := u.gateway.CreateRFQ(ctx, s.Token, p)
	if err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	log.Printf("[rfq][usecase] created rfq id=%d title=%q", created.ID, created.Title)
	return created, nil
}

// AddShipment adds a lane to an open RFQ and returns the re-fetched RFQ.
func (u *RFQUseCase) AddShipment(ctx context.Context, s entities.Session, rfqID int64, p freightapi.CreateShipmentParams) (entities.RFQ, error) {
	if !s.IsOrg() {
		return entities.RFQ{}, ErrNotOrganization
	}
	if rfqID <= 0 {
		return entities.RFQ{}, ErrInvalidRFQID
	}
	p.OriginPort = strings.TrimSpace(p.OriginPort)
	p.DestinationPort = strings.TrimSpace(p.DestinationPort)
	if p.OriginPort == "" || p.DestinationPort == "" {
		return entities.RFQ{}, ErrMissingPorts
	}
	if p.Volume < 1 {
		return entities.RFQ{}, ErrInvalidVolume
	}
	if p.TargetPrice != "" {
		v, err := strconv.ParseFloat(p.TargetPrice, 64)
		if err != nil || v <= 0 {
			return entities.RFQ{}, ErrInvalidTargetPrice
		}
	}
	p.RFQID = rfqID

	if err := u.gateway.CreateShipment(ctx, s.Token, p); err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}

	rfq, err := u.gateway.GetRFQ(ctx, s.Token, rfqID)
	if err != nil {
		return entities.RFQ{}, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return rfq, nil
}
