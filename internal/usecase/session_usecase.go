package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"freightdesk/internal/domain/entities"
	"freightdesk/internal/infrastructure/freightapi"
	"freightdesk/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("no active session")

	// ErrSessionExpired is returned by any use case whose upstream call
	// came back 401. The stored session is already gone by the time a
	// caller sees this.
	ErrSessionExpired = errors.New("session expired")
)

const fallbackSessionLifetime = 24 * time.Hour

// ISessionUseCase owns the one-session-per-browser lifecycle: credential
// exchange, load-before-first-protected-render, and invalidation.
type ISessionUseCase interface {
	Login(ctx context.Context, username, password string) (entities.Session, error)
	Current(ctx context.Context, sessionID string) (entities.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type SessionUseCase struct {
	sessions interfaces.ISessionRepository
	gateway  interfaces.IFreightGateway
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

func NewSessionUseCase(sessions interfaces.ISessionRepository, gateway interfaces.IFreightGateway) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, gateway: gateway}
}

// Login exchanges credentials for a bearer token and persists the
// resulting session. Nothing is persisted on failure.
func (u *SessionUseCase) Login(ctx context.Context, username, password string) (entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return entities.Session{}, ErrMissingCredentials
	}

	result, err := u.gateway.Login(ctx, username, password)
	if err != nil {
		// A 401 on the credential endpoint is a bad login, not an
		// expired session; it must not trigger the global invalidation.
		if errors.Is(err, freightapi.ErrUnauthorized) {
			return entities.Session{}, ErrInvalidCredentials
		}
		return entities.Session{}, err
	}

	now := time.Now().UTC()
	s := entities.Session{
		ID:          uuid.NewString(),
		Token:       result.Access,
		Role:        result.Role,
		Username:    result.Username,
		CompanyName: result.CompanyName,
		CreatedAt:   now,
		ExpiresAt:   tokenExpiry(result.Access, now),
	}
	created, err := u.sessions.Create(ctx, s)
	if err != nil {
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] login success user=%s role=%s", created.Username, created.Role)
	return created, nil
}

// Current loads the persisted session for a cookie ID. Missing and
// expired sessions both come back as ErrNoSession so protected screens
// render the unauthenticated state.
func (u *SessionUseCase) Current(ctx context.Context, sessionID string) (entities.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return entities.Session{}, ErrNoSession
	}
	s, err := u.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID == "" {
		return entities.Session{}, ErrNoSession
	}
	if s.Expired(time.Now().UTC()) {
		if err := u.sessions.Delete(ctx, sessionID); err != nil {
			log.Printf("[session][usecase] delete expired session failed id=%s err=%v", sessionID, err)
		}
		return entities.Session{}, ErrNoSession
	}
	return s, nil
}

// Logout discards the persisted session. Idempotent: logging out twice
// is not an error.
func (u *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return nil
	}
	log.Printf("[session][usecase] logout id=%s", sessionID)
	return u.sessions.Delete(ctx, sessionID)
}

// tokenExpiry reads the exp claim from the upstream access token so the
// session dies with its token. The signature is the upstream's to
// verify, not ours, so the claims are parsed unverified; an unreadable
// token falls back to a fixed lifetime.
func tokenExpiry(token string, now time.Time) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time.UTC()
		}
	}
	return now.Add(fallbackSessionLifetime)
}

// invalidateOn401 applies the global auth-failure rule: any upstream 401
// wipes the stored session and surfaces ErrSessionExpired, regardless of
// which screen made the call. Other errors pass through untouched.
func invalidateOn401(ctx context.Context, sessions interfaces.ISessionRepository, sessionID string, err error) error {
	if err == nil || !errors.Is(err, freightapi.ErrUnauthorized) {
		return err
	}
	if dErr := sessions.Delete(ctx, sessionID); dErr != nil {
		log.Printf("[session][usecase] invalidate after 401 failed id=%s err=%v", sessionID, dErr)
	}
	return ErrSessionExpired
}
