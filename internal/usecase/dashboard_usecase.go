package usecase

import (
	"context"
	"errors"
	"log"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase/interfaces"
)

// IDashboardUseCase fetches the raw material for the dashboard: the
// upstream aggregate stats plus the role-scoped RFQ set the view layer
// derives its series from.
type IDashboardUseCase interface {
	Overview(ctx context.Context, s entities.Session) (entities.DashboardStats, []entities.RFQ, error)
}

type DashboardUseCase struct {
	gateway  interfaces.IFreightGateway
	sessions interfaces.ISessionRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(gateway interfaces.IFreightGateway, sessions interfaces.ISessionRepository) *DashboardUseCase {
	return &DashboardUseCase{gateway: gateway, sessions: sessions}
}

// Overview tolerates a failing stats endpoint: the dashboard still
// renders from client-derived series, so stats degrade to zero values
// unless the failure is an auth one (which stays global).
func (u *DashboardUseCase) Overview(ctx context.Context, s entities.Session) (entities.DashboardStats, []entities.RFQ, error) {
	stats, err := u.gateway.GetDashboardStats(ctx, s.Token)
	if err != nil {
		if errors.Is(err, freightapi.ErrUnauthorized) {
			return entities.DashboardStats{}, nil, invalidateOn401(ctx, u.sessions, s.ID, err)
		}
		log.Printf("[dashboard][usecase] stats fetch failed, rendering without: %v", err)
		stats = entities.DashboardStats{}
	}

	rfqs, err := u.gateway.ListRFQs(ctx, s.Token)
	if err != nil {
		return entities.DashboardStats{}, nil, invalidateOn401(ctx, u.sessions, s.ID, err)
	}
	return stats, rfqs, nil
}
