package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/customer-portal/internal/api/metrics"
	"github.com/sirpyerre/customer-portal/internal/api/middleware"
	"github.com/sirpyerre/customer-portal/internal/core/domain"
	"github.com/sirpyerre/customer-portal/internal/core/ports"
	"github.com/sirpyerre/customer-portal/internal/infrastructure/session"
)

// AuthHandler exposes the login and logout endpoints.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
	paths       middleware.Paths
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager, paths middleware.Paths) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions, paths: paths}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	SubjectID string `json:"subject_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type redirectResponse struct {
	Redirect string           `json:"redirect"`
	User     *sessionResponse `json:"user,omitempty"`
}

// LoginPage handles GET /login. The UI rendering the actual form lives
// elsewhere; this endpoint only confirms the path exists and echoes the
// return target, so it doubles as the redirect destination for anonymous
// requests to protected pages.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":                "login required",
		middleware.ReturnToParam: c.QueryParam(middleware.ReturnToParam),
	})
}

// Login handles POST /login: authenticates against the identity provider and
// sets the session cookie. On success the response names the redirect target
// — the preserved return path when one was carried, the landing page
// otherwise.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	store := h.sessions.ForRequest(c.Response(), c.Request())
	record, err := h.authService.Login(c.Request().Context(), store, req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, redirectResponse{
		Redirect: h.successTarget(c),
		User: &sessionResponse{
			SubjectID: record.SubjectID,
			Email:     record.Email,
			Role:      record.Role,
		},
	})
}

// Logout handles POST /logout. It never fails: deleting an absent session is
// a no-op success, and the answer is always "go to the login page".
func (h *AuthHandler) Logout(c echo.Context) error {
	store := h.sessions.ForRequest(c.Response(), c.Request())
	h.authService.Logout(c.Request().Context(), store)
	metrics.LogoutsTotal.Inc()

	return c.JSON(http.StatusOK, redirectResponse{Redirect: h.paths.Login})
}

// successTarget honours a preserved return path, but only a local one: an
// absolute URL in return_to would be an open redirect.
func (h *AuthHandler) successTarget(c echo.Context) string {
	returnTo := c.QueryParam(middleware.ReturnToParam)
	if strings.HasPrefix(returnTo, "/") && !strings.HasPrefix(returnTo, "//") {
		return returnTo
	}
	return h.paths.Landing
}

func loginResult(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return "validation_failed"
	case errors.Is(err, domain.ErrProfileFetch):
		return "profile_failed"
	default:
		return "rejected"
	}
}
