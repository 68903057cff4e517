package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/infrastructure/session"
)

// Guard is the in-handler enforcement point, independent of the Gatekeeper.
// Protected handlers call it themselves so that a route-table mistake at the
// edge is never the only thing standing between a request and sensitive
// content. It re-reads the session from the store rather than trusting
// whatever the gatekeeper put in the request context.
//
// Both methods return a *domain.Redirect as the error on failure. The caller
// is contractually required to return it immediately; none of its remaining
// logic may run after a failed guard call.
type Guard struct {
	sessions *session.Manager
	paths    Paths
}

func NewGuard(sessions *session.Manager, paths Paths) *Guard {
	return &Guard{sessions: sessions, paths: paths}
}

// RequireSession returns the current session or a redirect-to-login control
// transfer.
func (g *Guard) RequireSession(c echo.Context) (*domain.Session, error) {
	store := g.sessions.ForRequest(c.Response(), c.Request())
	record, err := store.Read(c.Request().Context())
	if err != nil {
		return nil, domain.NewRedirect(loginURL(g.paths.Login, c.Request().URL.Path))
	}
	return record, nil
}

// RequireRole returns the current session if its role is one of allowed, a
// redirect-to-login transfer when there is no session, and a
// redirect-to-landing transfer on a role mismatch.
func (g *Guard) RequireRole(c echo.Context, allowed ...string) (*domain.Session, error) {
	record, err := g.RequireSession(c)
	if err != nil {
		return nil, err
	}
	if !record.HasRole(allowed...) {
		return nil, domain.NewRedirect(g.paths.Landing)
	}
	return record, nil
}
