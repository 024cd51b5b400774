package interfaces

import (
	"context"

	"freightdesk/internal/domain/entities"
)

// ISessionRepository abstracts DynamoDB persistence for Session.
//
// The portal must be able to:
//   - persist a session atomically on successful login
//   - load it by cookie ID before rendering any protected screen
//   - delete it on logout or on any upstream auth failure
//
// GetByID returns the zero value (empty ID) for a missing session.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	Delete(ctx context.Context, id string) error
}
