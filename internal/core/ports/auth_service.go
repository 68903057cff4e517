package ports

import (
	"context"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
)

type AuthService interface {
	// Login validates the credentials, exchanges them with the identity
	// provider and, on success, writes a fresh session into store. The store
	// is passed per call because it is scoped to the caller's request.
	Login(ctx context.Context, store SessionStore, email, password string) (*domain.Session, error)
	// Logout deletes and revokes the current session. It never fails from
	// the caller's point of view.
	Logout(ctx context.Context, store SessionStore)
}
