package session

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/core/ports"
)

const DefaultCookieName = "portal_session"

// Manager builds per-request cookie stores. It owns the pieces shared across
// requests — codec, revocation list, cookie attributes — while each store is
// bound to exactly one request/response exchange. Nothing here is a
// process-wide session singleton.
type Manager struct {
	codec   ports.SessionCodec
	revoker ports.SessionRevoker
	name    string
	secure  bool
	log     zerolog.Logger
}

type ManagerOptions struct {
	CookieName string
	// Secure marks the cookie Secure; enable in production deployments.
	Secure  bool
	Revoker ports.SessionRevoker
}

func NewManager(codec ports.SessionCodec, opts ManagerOptions, log zerolog.Logger) *Manager {
	name := opts.CookieName
	if name == "" {
		name = DefaultCookieName
	}
	return &Manager{
		codec:   codec,
		revoker: opts.Revoker,
		name:    name,
		secure:  opts.Secure,
		log:     log,
	}
}

// ForRequest returns the session store scoped to this exchange.
func (m *Manager) ForRequest(w http.ResponseWriter, r *http.Request) ports.SessionStore {
	return &cookieStore{mgr: m, w: w, r: r, now: time.Now}
}

type cookieStore struct {
	mgr *Manager
	w   http.ResponseWriter
	r   *http.Request
	now func() time.Time
}

// Write encodes the record and sets the cookie. The cookie's own Expires
// mirrors the record's expiry so the browser discards it at the same instant
// we would stop accepting it.
func (s *cookieStore) Write(_ context.Context, record *domain.Session) error {
	token, err := s.mgr.codec.Encode(record)
	if err != nil {
		return err
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.mgr.name,
		Value:    token,
		Path:     "/",
		Expires:  record.ExpiresAt,
		HttpOnly: true,
		Secure:   s.mgr.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read folds four cases into one outcome: no cookie, undecodable token,
// expired record, and revoked session all return domain.ErrNoSession.
func (s *cookieStore) Read(ctx context.Context) (*domain.Session, error) {
	cookie, err := s.r.Cookie(s.mgr.name)
	if err != nil || cookie.Value == "" {
		return nil, domain.ErrNoSession
	}

	record, err := s.mgr.codec.Decode(cookie.Value)
	if err != nil {
		return nil, domain.ErrNoSession
	}

	if record.Expired(s.now()) {
		return nil, domain.ErrNoSession
	}

	if s.mgr.revoker != nil {
		revoked, err := s.mgr.revoker.IsRevoked(ctx, record.ID)
		if err != nil {
			// Revocation backend down: fail open so a cache outage does not
			// lock every user out. Revocation is defense in depth on top of
			// cookie deletion, not the primary logout mechanism.
			s.mgr.log.Warn().Err(err).Msg("revocation check failed, allowing session")
		} else if revoked {
			return nil, domain.ErrNoSession
		}
	}

	return record, nil
}

// Delete expires the cookie and revokes the session ID if one can still be
// decoded. Idempotent: deleting an absent session succeeds.
func (s *cookieStore) Delete(ctx context.Context) error {
	if s.mgr.revoker != nil {
		if cookie, err := s.r.Cookie(s.mgr.name); err == nil && cookie.Value != "" {
			if record, err := s.mgr.codec.Decode(cookie.Value); err == nil {
				if err := s.mgr.revoker.Revoke(ctx, record); err != nil {
					s.mgr.log.Warn().Err(err).Str("session_id", record.ID).Msg("session revocation failed")
				}
			}
		}
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     s.mgr.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.mgr.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
