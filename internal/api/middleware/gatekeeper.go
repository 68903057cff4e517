package middleware

import (
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/sirpyerre/customer-portal/internal/api/metrics"
	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/infrastructure/session"
)

// ContextKeySession is where the gatekeeper stores the decoded session for
// downstream handlers.
const ContextKeySession = "session"

// ReturnToParam carries the originally requested path through the login
// redirect so the user lands where they intended after authenticating.
const ReturnToParam = "return_to"

// Paths are the two redirect targets the gatekeeper produces.
type Paths struct {
	Login   string
	Landing string
}

// Gatekeeper is the edge authorization filter. It runs before any handler,
// classifies the request path against the route table, reads the session and
// decides allow or redirect. It never mutates the session.
//
// Authorization failures are not errors: they come out as *domain.Redirect,
// which the HTTP error handler renders as a 303.
func Gatekeeper(table *domain.RouteTable, sessions *session.Manager, paths Paths, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			rule := table.Classify(path)

			store := sessions.ForRequest(c.Response(), c.Request())
			record, err := store.Read(c.Request().Context())
			if err != nil {
				record = nil // absent, malformed, expired and revoked are all the same
			}
			metrics.SessionReadsTotal.WithLabelValues(readResult(record)).Inc()

			outcome := "allow"
			defer func() {
				metrics.GatekeeperDecisionsTotal.WithLabelValues(string(rule.Class), outcome).Inc()
				log.Debug().
					Str("path", path).
					Str("class", string(rule.Class)).
					Str("outcome", outcome).
					Msg("gatekeeper decision")
			}()

			switch rule.Class {
			case domain.RoutePublic:
				// An authenticated user has no business on the login page.
				if path == paths.Login && record != nil {
					outcome = "redirect_landing"
					return domain.NewRedirect(paths.Landing)
				}

			case domain.RouteProtected, domain.RouteRestricted:
				if record == nil {
					outcome = "redirect_login"
					return domain.NewRedirect(loginURL(paths.Login, path))
				}
				if rule.Class == domain.RouteRestricted && !record.HasRole(rule.Roles...) {
					// Fail soft: wrong role means the landing page, not an
					// error page.
					outcome = "redirect_landing"
					return domain.NewRedirect(paths.Landing)
				}
			}

			if record != nil {
				c.Set(ContextKeySession, record)
			}
			return next(c)
		}
	}
}

// loginURL appends the intended path as a return target.
func loginURL(loginPath, returnTo string) string {
	return loginPath + "?" + ReturnToParam + "=" + url.QueryEscape(returnTo)
}

func readResult(record *domain.Session) string {
	if record == nil {
		return "none"
	}
	return "ok"
}
