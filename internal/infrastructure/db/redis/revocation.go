package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// RevocationList denylists logged-out sessions in Redis until their natural
// expiry. Key format: revoked:<session_id>. The TTL is the remaining session
// lifetime, so entries clean themselves up exactly when the token would have
// died anyway.
type RevocationList struct {
	client *redis.Client
	now    func() time.Time
}

// NewRevocationList creates a RevocationList wrapping the given Redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client, now: time.Now}
}

// Revoke marks the session dead. Revoking an already-expired session is a
// no-op: the expiry check catches it first.
func (l *RevocationList) Revoke(ctx context.Context, s *domain.Session) error {
	ttl := s.ExpiresAt.Sub(l.now())
	if ttl <= 0 {
		return nil
	}
	if err := l.client.Set(ctx, l.key(s.ID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// IsRevoked reports whether the session ID is on the denylist.
func (l *RevocationList) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (l *RevocationList) key(sessionID string) string {
	return "revoked:" + sessionID
}
