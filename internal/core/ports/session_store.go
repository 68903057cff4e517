package ports

import (
	"context"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// SessionStore is the single session slot of one request/response exchange.
// Implementations are constructed per request; there is no cross-request
// shared state behind this interface.
type SessionStore interface {
	// Write persists the record, replacing whatever was there.
	Write(ctx context.Context, s *domain.Session) error
	// Read returns the current session. Absence, a malformed token, expiry
	// and revocation are deliberately indistinguishable: all return
	// domain.ErrNoSession.
	Read(ctx context.Context) (*domain.Session, error)
	// Delete removes the stored session. Deleting an absent session is a
	// no-op success.
	Delete(ctx context.Context) error
}

// SessionCodec converts a session record to and from its opaque wire form.
type SessionCodec interface {
	Encode(s *domain.Session) (string, error)
	// Decode fails closed: any malformed token yields domain.ErrNoSession,
	// never a partially populated record.
	Decode(token string) (*domain.Session, error)
}

// SessionRevoker denylists sessions that were logged out before their expiry.
type SessionRevoker interface {
	Revoke(ctx context.Context, s *domain.Session) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}
