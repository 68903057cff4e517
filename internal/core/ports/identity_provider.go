package ports

import (
	"context"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

// IdentityProvider is the external service that actually verifies
// credentials. It is a collaborator: its failures surface here as plain
// errors and are collapsed to generic messages by the auth service.
type IdentityProvider interface {
	// ExchangeCredentials trades an email/password pair for an access token.
	ExchangeCredentials(ctx context.Context, email, password string) (string, error)
	// FetchProfile resolves the access token to the principal's profile.
	FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error)
}
